package types

// ValidationReport holds the quality metrics computed over a generated post.
type ValidationReport struct {
	CharCount         int            `json:"char_count"`     // whitespace-stripped rune count
	CharDeviation     int            `json:"char_deviation"` // |generated - source|
	LengthOK          bool           `json:"length_ok"`
	KeywordCounts     map[string]int `json:"keyword_counts"`
	KeywordTotal      int            `json:"keyword_total"`
	KeywordOK         bool           `json:"keyword_ok"`
	RepeatedSentences []string       `json:"repeated_sentences,omitempty"`
	HasRepetition     bool           `json:"has_repetition"`
}

// GeneratedArtifact is the final product of one conversion: a title, the
// generated body, and the metrics computed over it. It is written to the
// partitioned output directory and not retained afterwards.
type GeneratedArtifact struct {
	Title      string           `json:"title"`
	Body       string           `json:"body"`
	Validation ValidationReport `json:"validation"`
}

// BusinessSummary is the per-business run summary written next to that
// business's success/ and failed/ directories.
type BusinessSummary struct {
	Total        int    `json:"total"`
	Success      int    `json:"success"`
	Failed       int    `json:"failed"`
	BusinessName string `json:"business_name"`
	Timestamp    string `json:"timestamp"`
}

// RunSummary is the aggregate result of a batch run.
type RunSummary struct {
	RunID      string                     `json:"run_id"`
	Total      int                        `json:"total"`
	Success    int                        `json:"success"`
	Failed     int                        `json:"failed"`
	ByBusiness map[string]BusinessSummary `json:"by_business"`
	Timestamp  string                     `json:"timestamp"`
}
