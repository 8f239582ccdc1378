package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hyuklee/blogforge/internal/types"
)

func TestPrintFingerprint(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintFingerprint(&types.StyleFingerprint{
		Endings:  []string{"더라구요", "거든요"},
		Emotions: []string{"좋았", "행복"},
		Markers: map[types.MarkerKind]types.MarkerInfo{
			types.MarkerMap: {
				Present:     true,
				Occurrences: []types.MarkerOccurrence{{RelativePosition: 0.8}},
			},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "STYLE FINGERPRINT")
	assert.Contains(t, out, "더라구요, 거든요")
	assert.Contains(t, out, "(지도)")
	assert.Contains(t, out, "80%")
}

func TestPrintFingerprintNilIsSilent(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintFingerprint(nil)
	assert.Empty(t, buf.String())
}

func TestPrintValidation(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintValidation(&types.ValidationReport{
		CharCount:     1340,
		CharDeviation: 40,
		LengthOK:      true,
		KeywordCounts: map[string]int{"일산 맛집": 6},
		KeywordTotal:  6,
		KeywordOK:     true,
	})

	out := buf.String()
	assert.Contains(t, out, "1340")
	assert.Contains(t, out, "일산 맛집: 6")
	assert.NotContains(t, out, "Repeated")
}

func TestPrintRunSummary(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintRunSummary(&types.RunSummary{
		RunID:   "run-1",
		Total:   3,
		Success: 2,
		Failed:  1,
		ByBusiness: map[string]types.BusinessSummary{
			"굴비명가": {BusinessName: "굴비명가", Total: 3, Success: 2, Failed: 1},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "BATCH RUN SUMMARY")
	assert.Contains(t, out, "success 2, failed 1")
	assert.Contains(t, out, "굴비명가: 2/3")
}
