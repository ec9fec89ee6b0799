package identifier

import (
	"strings"
	"testing"
)

// TestIdentifierCreation tests identifier creation.
func TestIdentifierCreation(t *testing.T) {
	// Create a set of identifiers and ensure that they're well-formed and
	// distinct.
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		identifier, err := New(PrefixRun)
		if err != nil {
			t.Fatal("unable to create identifier:", err)
		}
		if !strings.HasPrefix(identifier, PrefixRun) {
			t.Error("identifier does not have correct prefix:", identifier)
		}
		if len(identifier) != len(PrefixRun)+targetBase62Length {
			t.Error("identifier has unexpected length:", identifier)
		}
		if !IsValid(identifier, PrefixRun) {
			t.Error("identifier considered invalid:", identifier)
		}
		if seen[identifier] {
			t.Error("duplicate identifier generated:", identifier)
		}
		seen[identifier] = true
	}
}

// TestIsValid tests IsValid with invalid identifiers.
func TestIsValid(t *testing.T) {
	// Set up test cases.
	testCases := []string{
		"",
		PrefixRun,
		"sync_0000000000000000000001",
		PrefixRun + "000000000000000000001",
		PrefixRun + "00000000000000000000-1",
	}

	// Perform tests.
	for _, identifier := range testCases {
		if IsValid(identifier, PrefixRun) {
			t.Errorf("invalid identifier %q considered valid", identifier)
		}
	}
}
