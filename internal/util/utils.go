package util

import "strings"

// DigitsOnly strips everything except ASCII digits. Mirrors the intake
// form behavior of cleaning phone numbers at input time.
func DigitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func YesNo(v string) string {
	if strings.EqualFold(strings.TrimSpace(v), "yes") {
		return "Yes"
	}
	return "No"
}
