package markers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hyuklee/blogforge/internal/types"
)

var markerProfile = &types.BusinessProfile{
	Name:    "맛나분식",
	Address: "서울 강남구 테헤란로 1",
}

func TestEnsureMarkersIdempotent(t *testing.T) {
	text := "위치는 강남역 근처예요.\n\n(지도)\n\n메뉴가 다양해요.\n\n(동영상)\n"
	processor := NewProcessor()

	once := processor.EnsureMarkers(text, markerProfile)
	assert.Equal(t, text, once)
	assert.Equal(t, once, processor.EnsureMarkers(once, markerProfile))
}

func TestEnsureMarkersVariantSuppressesInsertion(t *testing.T) {
	text := "위치는 강남역 근처예요.\n(지도삽입)\n메뉴 이야기.\n(동영상 첨부)\n"
	processor := NewProcessor()

	result := processor.EnsureMarkers(text, markerProfile)
	assert.Equal(t, 0, strings.Count(result, "(지도)"))
	assert.Equal(t, 0, strings.Count(result, "(동영상)"))
}

func TestEnsureMarkersInsertsAfterAnchors(t *testing.T) {
	text := "오늘 다녀온 곳을 소개해요.\n주소는 강남역 바로 앞이에요.\n메뉴가 정말 다양했어요.\n마무리 인사."
	processor := NewProcessor()

	result := processor.EnsureMarkers(text, markerProfile)
	lines := strings.Split(result, "\n")

	mapIndex := indexOf(lines, "(지도)")
	videoIndex := indexOf(lines, "(동영상)")
	assert.Greater(t, mapIndex, 0)
	assert.Greater(t, videoIndex, mapIndex)
	assert.Contains(t, lines[mapIndex-2], "주소는")
	assert.Equal(t, "", lines[mapIndex-1])
	assert.Equal(t, "", lines[mapIndex+1])
}

func TestEnsureMarkersMidSentenceAnchorDefersToBlankLine(t *testing.T) {
	text := "주소는 강남역 근처인데\n골목 안쪽으로 들어가야 해요.\n\n다른 이야기."
	processor := NewProcessor()

	result := processor.EnsureMarkers(text, markerProfile)
	lines := strings.Split(result, "\n")

	mapIndex := indexOf(lines, "(지도)")
	assert.Equal(t, "골목 안쪽으로 들어가야 해요.", lines[mapIndex-2])
}

func TestEnsureMarkersFallbackAppendsAtEnd(t *testing.T) {
	text := "아무 앵커도 없는 본문이에요.\n그냥 일상 이야기뿐.\n\n\n"
	processor := NewProcessor()

	result := processor.EnsureMarkers(text, &types.BusinessProfile{Name: "가게"})
	assert.Contains(t, result, "(지도)")
	assert.Contains(t, result, "(동영상)")

	lines := strings.Split(result, "\n")
	assert.Greater(t, indexOf(lines, "(동영상)"), indexOf(lines, "(지도)"))
}

func TestEnsureMarkersAddressHeadAnchorsMap(t *testing.T) {
	text := "서울 강남구 테헤란로에 있어요.\n끝."
	processor := NewProcessor()

	result := processor.EnsureMarkers(text, markerProfile)
	lines := strings.Split(result, "\n")
	assert.Equal(t, "(지도)", lines[2])
}

func indexOf(lines []string, want string) int {
	for i, line := range lines {
		if line == want {
			return i
		}
	}
	return -1
}
