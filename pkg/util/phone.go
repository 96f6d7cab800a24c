package util

import (
	"regexp"
	"strings"
)

var (
	nonDigit     = regexp.MustCompile(`\D`)
	mobileNumber = regexp.MustCompile(`^01[0-9]-?[0-9]{4}-?[0-9]{4}$`)
)

// NormalizePhone strips every non-digit character, so "010-1234-5678" and
// "01012345678" compare equal.
func NormalizePhone(phone string) string {
	return Digits(phone)
}

// Digits keeps only the ASCII digits of s
func Digits(s string) string {
	return nonDigit.ReplaceAllString(s, "")
}

// IsMobileNumber reports whether phone is a Korean mobile number once hyphens are removed.
func IsMobileNumber(phone string) bool {
	return mobileNumber.MatchString(strings.ReplaceAll(phone, "-", ""))
}

// FormatPhone formats up to 11 digits as 3-4-4 with hyphens while the number is
// being typed. Input with more than 11 digits is returned unchanged.
func FormatPhone(text string) string {
	digits := NormalizePhone(text)
	if len(digits) > 11 {
		return text
	}

	head, mid, tail := split(digits, 3), "", ""
	if len(digits) > 3 {
		mid = split(digits[3:], 4)
	}
	if len(digits) > 7 {
		tail = digits[7:]
	}

	if mid == "" {
		return head
	}
	if tail == "" {
		return head + "-" + mid
	}
	return head + "-" + mid + "-" + tail
}

func split(s string, n int) string {
	if len(s) < n {
		return s
	}
	return s[:n]
}
