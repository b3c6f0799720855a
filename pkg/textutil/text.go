package textutil

import (
	"regexp"
	"strings"
)

// wordStart matches an ASCII word character that begins a word.
var wordStart = regexp.MustCompile(`\b\w`)

// CapitalizeWords upper-cases the first character of every word. Word
// boundaries follow ASCII word characters, so "hello_world" stays one word and
// "o'neil" becomes "O'Neil". The rest of each word is left as is.
func CapitalizeWords(s string) string {
	return wordStart.ReplaceAllStringFunc(s, strings.ToUpper)
}

// IsBlank reports whether s is empty or contains only whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// IsBlankPtr is IsBlank for optional strings; nil is blank.
func IsBlankPtr(s *string) bool {
	return s == nil || IsBlank(*s)
}
