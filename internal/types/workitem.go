package types

// ItemStatus is the lifecycle state of a batch work item.
type ItemStatus string

// Work item statuses. Transitions are pending → processing → success|failed;
// a failed attempt may go back to processing until the retry cap is reached.
const (
	StatusPending    ItemStatus = "pending"
	StatusProcessing ItemStatus = "processing"
	StatusSuccess    ItemStatus = "success"
	StatusFailed     ItemStatus = "failed"
)

// WorkItem is one row of a batch job: a source text, a target keyword, and an
// optional business-preset reference. Run state is mutated in place by the
// orchestrator and discarded when the process exits.
type WorkItem struct {
	Index      int    `json:"index"`
	SourcePath string `json:"source_path"`
	Keyword    string `json:"keyword"`
	PresetFile string `json:"preset_file,omitempty"` // empty → run's default profile

	Status         ItemStatus `json:"status"`
	Result         string     `json:"-"`
	ErrorMessage   string     `json:"error,omitempty"`
	RetryCount     int        `json:"retry_count"`
	ElapsedSeconds float64    `json:"elapsed_seconds"`
	OutputPath     string     `json:"output_path,omitempty"`
}
