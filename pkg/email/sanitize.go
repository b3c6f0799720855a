package email

import "regexp"

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// Sanitize replaces every character outside [A-Za-z0-9._-] with an
// underscore, producing a string usable as a file name or storage key.
// It is not a validator: the result is no longer an email address.
func Sanitize(address string) string {
	return unsafeChars.ReplaceAllString(address, "_")
}
