package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyuklee/blogforge/internal/types"
)

const sampleDoc = `**업체명**
맛나분식 강남점

**주소**
서울 강남구 테헤란로 1

**운영시간**
매일 10:00-22:00

**전체 메뉴**
- 떡볶이 5,000원
- 김밥: 3,500원
- 어묵탕

**식사 메뉴**
- 떡볶이 5,000원

**특징**
- [필수] 24시간 주차
- 루프탑

**분위기**
아늑하고
조용한 편

**SEO 키워드**
- 강남 분식
`

func TestParseProfile(t *testing.T) {
	profile, err := ParseProfile(sampleDoc)
	require.NoError(t, err)

	assert.Equal(t, "맛나분식 강남점", profile.Name)
	assert.Equal(t, "맛나분식", profile.ShortName, "short name derived from business name")
	assert.Equal(t, "서울 강남구 테헤란로 1", profile.Address)
	assert.Equal(t, "매일 10:00-22:00", profile.Hours)
	assert.Equal(t, []string{"강남 분식"}, profile.Keywords)
	assert.Equal(t, []string{"[필수] 24시간 주차", "루프탑"}, profile.Features)
	assert.Equal(t, "아늑하고 조용한 편", profile.Atmosphere)

	assert.Equal(t, []types.MenuItem{
		{Name: "떡볶이", Price: "5,000원"},
		{Name: "김밥", Price: "3,500원"},
		{Name: "어묵탕"},
	}, profile.MenuItems)
	assert.Equal(t, []types.MenuItem{{Name: "떡볶이", Price: "5,000원"}}, profile.OrderedItems)
}

func TestParseProfileKeepsExplicitShortName(t *testing.T) {
	doc := "**업체명**\n스타벅스 강남점\n\n**약칭**\n스벅\n\n**주소**\n서울 강남구"
	profile, err := ParseProfile(doc)
	require.NoError(t, err)
	assert.Equal(t, "스벅", profile.ShortName)
}

func TestParseProfileMissingName(t *testing.T) {
	_, err := ParseProfile("**주소**\n서울 강남구\n")
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Contains(t, parseErr.Message, "업체명")
}

func TestParseProfileMissingAddress(t *testing.T) {
	_, err := ParseProfile("**업체명**\n가게\n")
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Contains(t, parseErr.Message, "주소")
}

func TestParseProfileUnknownSection(t *testing.T) {
	_, err := ParseProfile("**업체명**\n가게\n\n**이상한섹션**\n내용\n")
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 4, parseErr.Line)
}

func TestParseProfileContentBeforeHeader(t *testing.T) {
	_, err := ParseProfile("떠도는 내용\n**업체명**\n가게\n")
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 1, parseErr.Line)
}

func TestParseMenuLine(t *testing.T) {
	cases := []struct {
		line string
		want types.MenuItem
	}{
		{"갈비탕 12,000원", types.MenuItem{Name: "갈비탕", Price: "12,000원"}},
		{"커피: 4500원", types.MenuItem{Name: "커피", Price: "4500원"}},
		{"계절 한정 메뉴", types.MenuItem{Name: "계절 한정 메뉴"}},
		{"9,000원", types.MenuItem{Name: "9,000원"}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, parseMenuLine(tc.line), tc.line)
	}
}
