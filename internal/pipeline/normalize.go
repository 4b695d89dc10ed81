package pipeline

import "regexp"

// crlfOrCR matches Windows and classic Mac line endings.
var crlfOrCR = regexp.MustCompile(`\r\n?`)

// Normalize converts \r\n and \r line endings to \n so that notes imported
// from other platforms segment on the same blank lines.
func Normalize(text string) string {
	return crlfOrCR.ReplaceAllString(text, "\n")
}
