package selection

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func manyFeatures(n int) []string {
	features := make([]string, n)
	for i := range features {
		features[i] = fmt.Sprintf("특징 %d", i)
	}
	return features
}

func TestSelectCountWithinBounds(t *testing.T) {
	selector := NewSelector(7, 8)
	features := manyFeatures(20)

	for seed := int64(0); seed < 50; seed++ {
		selected := selector.Select(features, rand.New(rand.NewSource(seed)))
		assert.GreaterOrEqual(t, len(selected), 7)
		assert.LessOrEqual(t, len(selected), 8)
	}
}

func TestSelectRequiredAlwaysSurvive(t *testing.T) {
	selector := NewSelector(3, 4)
	features := append([]string{"[필수] 주차 가능", "[필수] 반려동물 동반"}, manyFeatures(10)...)

	for seed := int64(0); seed < 20; seed++ {
		selected := selector.Select(features, rand.New(rand.NewSource(seed)))
		assert.Contains(t, selected, "주차 가능")
		assert.Contains(t, selected, "반려동물 동반")
	}
}

func TestSelectStripsRequiredTag(t *testing.T) {
	selector := NewSelector(1, 2)
	selected := selector.Select([]string{"[필수] 루프탑"}, rand.New(rand.NewSource(1)))
	assert.Equal(t, []string{"루프탑"}, selected)
}

func TestSelectRequiredOverflowTruncates(t *testing.T) {
	selector := NewSelector(2, 3)
	features := []string{"[필수] 하나", "[필수] 둘", "[필수] 셋", "[필수] 넷", "선택"}

	selected := selector.Select(features, rand.New(rand.NewSource(1)))
	assert.Equal(t, []string{"하나", "둘", "셋"}, selected)
}

func TestSelectFewFeaturesReturnsAll(t *testing.T) {
	selector := NewSelector(7, 8)
	features := []string{"하나", "둘", "셋"}

	selected := selector.Select(features, rand.New(rand.NewSource(1)))
	assert.Equal(t, features, selected)
}

func TestSelectEmptyInput(t *testing.T) {
	selector := NewSelector(7, 8)
	assert.Nil(t, selector.Select(nil, rand.New(rand.NewSource(1))))
}

func TestSelectSeedReproducible(t *testing.T) {
	selector := NewSelector(7, 8)
	features := manyFeatures(15)

	first := selector.Select(features, rand.New(rand.NewSource(42)))
	second := selector.Select(features, rand.New(rand.NewSource(42)))
	require.Equal(t, first, second)
}
