package parsing

import "fmt"

// ParseError reports where a business-info document could not be understood.
// Line is 1-based; 0 means the problem is document-wide.
type ParseError struct {
	Line    int
	Message string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("business info parse error at line %d: %s", e.Line, e.Message)
	}
	return fmt.Sprintf("business info parse error: %s", e.Message)
}
