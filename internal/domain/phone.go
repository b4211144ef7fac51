package domain

import (
	"strings"
	"unicode"
)

// PhoneDigits strips everything except ASCII digits ("600 12-34 56" -> "600123456").
func PhoneDigits(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r <= unicode.MaxASCII && unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NationalPhone keeps the last n digits, dropping an international prefix
// such as "+34". Shorter inputs are returned unchanged.
func NationalPhone(digits string, n int) string {
	if n <= 0 || len(digits) <= n {
		return digits
	}
	return digits[len(digits)-n:]
}
