package common

import (
	"errors"
	"strings"
	"testing"
)

func TestRunID_NewProducesDistinctIds(t *testing.T) {
	a, err := NewRunID()
	if err != nil {
		t.Fatalf("failed to generate run id: %v", err)
	}
	b, err := NewRunID()
	if err != nil {
		t.Fatalf("failed to generate run id: %v", err)
	}
	if a == b {
		t.Errorf("two generated ids are identical: %v", a)
	}
	if a.IsZero() {
		t.Errorf("generated id is zero")
	}
}

func TestRunID_StringRoundTrip(t *testing.T) {
	id, err := NewRunID()
	if err != nil {
		t.Fatalf("failed to generate run id: %v", err)
	}
	str := id.String()
	if len(str) != 2*RunIDSize {
		t.Fatalf("unexpected string length %d of %q", len(str), str)
	}
	parsed, err := ParseRunID(str)
	if err != nil {
		t.Fatalf("failed to parse %q: %v", str, err)
	}
	if parsed != id {
		t.Errorf("round trip changed the id: %v != %v", parsed, id)
	}
}

func TestRunID_ParseAcceptsUpperCase(t *testing.T) {
	str := strings.ToUpper(strings.Repeat("ab", RunIDSize))
	if _, err := ParseRunID(str); err != nil {
		t.Errorf("failed to parse %q: %v", str, err)
	}
}

func TestRunID_ParseRejectsMalformedInput(t *testing.T) {
	tests := []string{
		"",                                // empty
		"abc",                             // odd length
		strings.Repeat("ab", RunIDSize-1), // too short
		strings.Repeat("ab", RunIDSize+1), // too long
		strings.Repeat("zz", RunIDSize),   // not hex
		strings.Repeat("ab", RunIDSize) + "c",
	}
	for _, input := range tests {
		if _, err := ParseRunID(input); !errors.Is(err, ErrInvalidRunID) {
			t.Errorf("parsing %q: got %v, want ErrInvalidRunID", input, err)
		}
	}
}
