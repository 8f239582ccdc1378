package analysis

import "strings"

// CountChars returns the rune count of s with all whitespace removed
// (spaces, newlines, carriage returns). This is the single definition of
// "length" shared by the prompt's length target and result validation.
func CountChars(s string) int {
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "\n", "")
	s = strings.ReplaceAll(s, "\r", "")
	return len([]rune(s))
}
