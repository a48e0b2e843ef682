package mutate

import "testing"

func TestValidEmail(t *testing.T) {
	valid := []string{"a@b.co", "lena.ortiz@example.com", " padded@example.com "}
	for _, s := range valid {
		if !ValidEmail(s) {
			t.Fatalf("expected %q valid", s)
		}
	}
	invalid := []string{"", "plain", "a@b", "a b@c.co", "@example.com"}
	for _, s := range invalid {
		if ValidEmail(s) {
			t.Fatalf("expected %q invalid", s)
		}
	}
}

func TestRequireFieldsNamesFirstMissing(t *testing.T) {
	err := RequireFields(map[string]string{"name": "x", "email": "  "}, "name", "email")
	if err == nil || err.Error() != "email is required" {
		t.Fatalf("expected 'email is required', got %v", err)
	}
	if err := RequireFields(map[string]string{"name": "x"}, "name"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidDateRange(t *testing.T) {
	if err := ValidDateRange("2026-01-01", "2026-01-01"); err != nil {
		t.Fatalf("same-day range should be valid: %v", err)
	}
	if err := ValidDateRange("2026-02-01", "2026-01-31"); err == nil {
		t.Fatalf("expected error for inverted range")
	}
	// Open ranges are fine.
	if err := ValidDateRange("2026-01-01", ""); err != nil {
		t.Fatalf("open end should be valid: %v", err)
	}
}
