package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProfile() *BusinessProfile {
	return &BusinessProfile{
		Name:         "맛나분식 강남점",
		Address:      "서울 강남구 테헤란로 1",
		Features:     []string{"루프탑"},
		OrderedItems: []MenuItem{{Name: "떡볶이", Price: "5,000원"}},
	}
}

func TestProfileValidate(t *testing.T) {
	assert.NoError(t, validProfile().Validate())

	missingName := validProfile()
	missingName.Name = ""
	assert.Error(t, missingName.Validate())

	missingAddress := validProfile()
	missingAddress.Address = ""
	assert.Error(t, missingAddress.Validate())

	noOrders := validProfile()
	noOrders.OrderedItems = nil
	assert.Error(t, noOrders.Validate())

	// Menu items alone satisfy the menu-or-features rule.
	menuOnly := validProfile()
	menuOnly.Features = nil
	menuOnly.MenuItems = []MenuItem{{Name: "김밥"}}
	assert.NoError(t, menuOnly.Validate())

	neither := validProfile()
	neither.Features = nil
	neither.MenuItems = nil
	assert.Error(t, neither.Validate())
}

func TestWithKeywordsSharesNothing(t *testing.T) {
	original := validProfile()
	original.Keywords = []string{"원래 키워드"}

	clone := original.WithKeywords("새 키워드")
	require.Equal(t, []string{"새 키워드"}, clone.Keywords)
	assert.Equal(t, []string{"원래 키워드"}, original.Keywords)

	clone.Features[0] = "변경됨"
	assert.Equal(t, "루프탑", original.Features[0])
	clone.OrderedItems[0].Name = "변경됨"
	assert.Equal(t, "떡볶이", original.OrderedItems[0].Name)
}

func TestTitleName(t *testing.T) {
	profile := validProfile()
	assert.Equal(t, "맛나분식 강남점", profile.TitleName())
	profile.ShortName = "맛나분식"
	assert.Equal(t, "맛나분식", profile.TitleName())
}

func TestLocationName(t *testing.T) {
	cases := []struct {
		address string
		want    string
	}{
		{"경기 고양시 일산동구 중앙로 1", "일산"},
		{"서울 강남구 테헤란로 1", "강남"},
		{"전남 목포시 평화로 1", "목포"},
		{"부산 해운대구 우동 1", "해운대"},
		{"제주 서귀포시 중문로 1", "서귀포"},
		{"단일토큰", ""},
	}
	for _, tc := range cases {
		profile := &BusinessProfile{Address: tc.address}
		assert.Equal(t, tc.want, profile.LocationName(), tc.address)
	}
}

func TestMenuItemString(t *testing.T) {
	assert.Equal(t, "떡볶이 (5,000원)", MenuItem{Name: "떡볶이", Price: "5,000원"}.String())
	assert.Equal(t, "어묵탕", MenuItem{Name: "어묵탕"}.String())
}

func TestMarkerKindTokens(t *testing.T) {
	assert.Equal(t, "(지도)", MarkerMap.Token())
	assert.Equal(t, "(동영상", MarkerVideo.VariantPrefix())
	assert.Equal(t, []MarkerKind{MarkerMap, MarkerVideo}, MarkerKinds())
}

func TestFingerprintMarkerAccessors(t *testing.T) {
	var nilFingerprint *StyleFingerprint
	assert.False(t, nilFingerprint.HasMarker(MarkerMap))
	assert.True(t, nilFingerprint.IsEmpty())

	fingerprint := &StyleFingerprint{
		Markers: map[MarkerKind]MarkerInfo{
			MarkerMap: {Present: true, Occurrences: []MarkerOccurrence{{RelativePosition: 0.8}}},
		},
	}
	assert.True(t, fingerprint.HasMarker(MarkerMap))
	assert.False(t, fingerprint.HasMarker(MarkerVideo))
	assert.False(t, fingerprint.IsEmpty())

	position, ok := fingerprint.FirstMarkerPosition(MarkerMap)
	require.True(t, ok)
	assert.InDelta(t, 0.8, position, 1e-9)
}
