package docs

import "testing"

func TestTopicsAndGet(t *testing.T) {
	topics := Topics()
	if len(topics) == 0 {
		t.Fatalf("no embedded topics")
	}
	for _, topic := range topics {
		body, ok := Get(topic)
		if !ok || body == "" {
			t.Fatalf("topic %q has no body", topic)
		}
	}
	if _, ok := Get("does-not-exist"); ok {
		t.Fatalf("unknown topic should miss")
	}
	if _, ok := Get(""); ok {
		t.Fatalf("empty topic should miss")
	}
	// Lookups are case-insensitive.
	if _, ok := Get("GUIDE"); !ok {
		t.Fatalf("uppercase lookup should hit")
	}
}
