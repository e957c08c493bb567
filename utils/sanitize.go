package utils

import "github.com/microcosm-cc/bluemonday"

// strictPolicy strips all markup from user-supplied strings before they are
// stored or echoed back.
var strictPolicy = bluemonday.StrictPolicy()

// Sanitize strips unsafe markup from a user-supplied string.
func Sanitize(s string) string {
	return strictPolicy.Sanitize(s)
}

// SanitizeAll sanitizes every element of a string slice.
func SanitizeAll(items []string) []string {
	if items == nil {
		return nil
	}
	out := make([]string, len(items))
	for i, s := range items {
		out[i] = Sanitize(s)
	}
	return out
}
