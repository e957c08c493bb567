package utils

import (
	"regexp"
	"strings"
)

var (
	nonDigits  = regexp.MustCompile(`\D`)
	phoneShape = regexp.MustCompile(`^\+7\d{10}$`)
)

// NormalizePhone reduces the many ways Russian numbers get typed to the
// canonical +7XXXXXXXXXX form. Inputs that do not fit any known shape are
// returned unchanged and fail validation downstream.
func NormalizePhone(phone string) string {
	normalized := nonDigits.ReplaceAllString(phone, "")
	switch {
	case strings.HasPrefix(normalized, "8") && len(normalized) == 11:
		return "+7" + normalized[1:]
	case len(normalized) == 10:
		return "+7" + normalized
	case strings.HasPrefix(normalized, "7") && len(normalized) == 11:
		return "+" + normalized
	}
	return phone
}

// IsValidPhone reports whether phone is in canonical +7XXXXXXXXXX form.
func IsValidPhone(phone string) bool {
	return phoneShape.MatchString(phone)
}
