package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyuklee/blogforge/internal/types"
)

const sampleText = `오늘은 일산에서 유명한 칼국수집에 다녀왔어요.
국물이 정말 진하더라구요. 면발도 쫄깃해서 좋았어요.
사장님도 친절하셔서 기분이 좋았어요. 너무 맛있었어요.

(지도)

다음에 또 가고 싶네요. 정말 추천해요.

(동영상)

끝까지 읽어주셔서 감사해요.`

func TestAnalyzeEndings(t *testing.T) {
	fp := NewAnalyzer().Analyze(sampleText)

	require.NotEmpty(t, fp.Endings)
	// "좋았어요" ends two sentences, so it ranks first.
	assert.Equal(t, "좋았어요", fp.Endings[0])
	for _, ending := range fp.Endings {
		assert.LessOrEqual(t, len([]rune(ending)), 4)
		assert.NotContains(t, ending, "(")
	}
}

func TestAnalyzeExpressionsAndEmotions(t *testing.T) {
	fp := NewAnalyzer().Analyze(sampleText)

	assert.Contains(t, fp.Expressions, "정말 진하더라구요")
	assert.Contains(t, fp.Expressions, "너무 맛있었어요")

	assert.Contains(t, fp.Emotions, "맛있었어요")
	assert.Contains(t, fp.Emotions, "추천해요")
}

func TestAnalyzeExpressionsDeduplicated(t *testing.T) {
	text := strings.Repeat("정말 진하더라구요. ", 3)
	fp := NewAnalyzer().Analyze(text)

	count := 0
	for _, expr := range fp.Expressions {
		if expr == "정말 진하더라구요" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestAnalyzeMarkers(t *testing.T) {
	fp := NewAnalyzer().Analyze(sampleText)

	require.True(t, fp.HasMarker(types.MarkerMap))
	require.True(t, fp.HasMarker(types.MarkerVideo))

	mapPos, ok := fp.FirstMarkerPosition(types.MarkerMap)
	require.True(t, ok)
	videoPos, ok := fp.FirstMarkerPosition(types.MarkerVideo)
	require.True(t, ok)
	assert.Less(t, mapPos, videoPos)
	assert.Greater(t, mapPos, 0.0)
	assert.Less(t, videoPos, 1.0)

	occ := fp.Markers[types.MarkerMap].Occurrences[0]
	assert.Equal(t, 4, occ.LineIndex)
	assert.Contains(t, occ.Context, "(지도)")
}

func TestAnalyzeEmptyText(t *testing.T) {
	fp := NewAnalyzer().Analyze("")
	assert.True(t, fp.IsEmpty())
	assert.False(t, fp.HasMarker(types.MarkerMap))
}

func TestAnalyzeSentencePatterns(t *testing.T) {
	text := "오늘은 정말 날씨가 좋아서 산책했어요.\n오늘은 정말 기분이 좋아서 외식했어요.\n오늘은 정말 일찍 일어나 뿌듯했어요.\n"
	fp := NewAnalyzer().Analyze(text)

	require.NotEmpty(t, fp.SentencePatterns)
	assert.Contains(t, fp.SentencePatterns[0], "자주 시작하는 패턴")
	assert.Contains(t, fp.SentencePatterns[0], "오늘은")
	assert.Contains(t, fp.SentencePatterns[len(fp.SentencePatterns)-1], "평균 문장 길이")
}

func TestCountChars(t *testing.T) {
	assert.Equal(t, 3, CountChars("a b\nc"))
	assert.Equal(t, 0, CountChars("  \r\n"))
	assert.Equal(t, 5, CountChars("한글 텍스트"))
}
