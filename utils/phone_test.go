package utils

import "testing"

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"89991234567", "+79991234567"},
		{"9991234567", "+79991234567"},
		{"79991234567", "+79991234567"},
		{"+79991234567", "+79991234567"},
		{"8 (999) 123-45-67", "+79991234567"},
		{"+7 999 123 45 67", "+79991234567"},
		{"12345", "12345"},
		{"abc", "abc"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := NormalizePhone(tc.in); got != tc.want {
			t.Errorf("NormalizePhone(%q): got %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizePhoneIdempotent(t *testing.T) {
	inputs := []string{"89991234567", "9991234567", "79991234567", "+79991234567"}
	for _, in := range inputs {
		once := NormalizePhone(in)
		twice := NormalizePhone(once)
		if once != twice {
			t.Errorf("NormalizePhone not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestNormalizePhoneShape(t *testing.T) {
	// Every valid 10/11-digit input must normalize to +7 followed by 10 digits.
	inputs := []string{"89991234567", "9991234567", "79991234567", "8-999-123-45-67"}
	for _, in := range inputs {
		got := NormalizePhone(in)
		if !IsValidPhone(got) {
			t.Errorf("NormalizePhone(%q) = %q, does not match +7 shape", in, got)
		}
	}
}

func TestIsValidPhoneRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "12345", "+7999123456", "+799912345678", "+89991234567"} {
		if IsValidPhone(in) {
			t.Errorf("IsValidPhone(%q) = true, want false", in)
		}
	}
}
