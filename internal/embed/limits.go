package embed

import (
	"unicode/utf8"
)

// Discord embed and message limits
const (
	authorNameLength    = 256
	contentLength       = 2000
	descriptionLength   = 2048
	embedCombinedLength = 6000
	embedsQuantity      = 10
	fieldNameLength     = 256
	fieldsQuantity      = 25
	fieldValueLength    = 1024
	footerTextLength    = 2048
	titleLength         = 256
	usernameLength      = 80
)

// length returns the number of runes in a string.
func length(s string) int {
	return utf8.RuneCountInString(s)
}

// Truncate shortens s to at most maxLen runes and marks a truncated string with an ellipsis.
// It reports whether s was truncated.
func Truncate(s string, maxLen int) (string, bool) {
	if maxLen < 3 {
		panic("max length can not be below 3")
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s, false
	}
	x := string(runes[0 : maxLen-3])
	return x + "...", true
}
