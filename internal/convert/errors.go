package convert

import "fmt"

// Stage names used in pipeline errors.
const (
	StageProfile  = "profile"
	StageGenerate = "generate"
)

// PipelineError marks which conversion stage failed. The cause is preserved
// for errors.Is/As inspection, e.g. unwrapping an llm.TimeoutError.
type PipelineError struct {
	Stage string
	Cause error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("conversion failed at %s stage: %v", e.Stage, e.Cause)
}

func (e *PipelineError) Unwrap() error {
	return e.Cause
}
