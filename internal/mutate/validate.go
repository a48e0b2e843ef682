package mutate

import (
	"fmt"
	"regexp"
	"strings"
)

// Form-layer validation. A failed check aborts before any mutation, so a
// rejected form never leaves partial state behind.

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func ValidEmail(s string) bool {
	return emailRe.MatchString(strings.TrimSpace(s))
}

// RequireFields returns an error naming the first empty field.
func RequireFields(fields map[string]string, order ...string) error {
	for _, name := range order {
		if strings.TrimSpace(fields[name]) == "" {
			return fmt.Errorf("%s is required", name)
		}
	}
	return nil
}

// ValidDateRange checks end is not before start. Dates are YYYY-MM-DD, so
// string comparison is date comparison. Either side may be empty (open
// range).
func ValidDateRange(start, end string) error {
	if start == "" || end == "" {
		return nil
	}
	if start > end {
		return fmt.Errorf("end date %s is before start date %s", end, start)
	}
	return nil
}
