package logging

import (
	"testing"
)

// TestNameToLevel tests NameToLevel and its round trip through Level.String.
func TestNameToLevel(t *testing.T) {
	// Set up test cases.
	testCases := []struct {
		name     string
		expected Level
		valid    bool
	}{
		{"disabled", LevelDisabled, true},
		{"error", LevelError, true},
		{"warn", LevelWarn, true},
		{"info", LevelInfo, true},
		{"debug", LevelDebug, true},
		{"trace", LevelTrace, true},
		{"verbose", LevelDisabled, false},
		{"", LevelDisabled, false},
	}

	// Perform tests.
	for _, testCase := range testCases {
		level, ok := NameToLevel(testCase.name)
		if ok != testCase.valid {
			t.Errorf("validity mismatch for %q: %t != %t", testCase.name, ok, testCase.valid)
		} else if level != testCase.expected {
			t.Errorf("level mismatch for %q: %v != %v", testCase.name, level, testCase.expected)
		} else if ok && level.String() != testCase.name {
			t.Errorf("name mismatch for %v: %q != %q", level, level.String(), testCase.name)
		}
	}
}

// TestLevelUnmarshalText tests Level.UnmarshalText.
func TestLevelUnmarshalText(t *testing.T) {
	var level Level
	if err := level.UnmarshalText([]byte("debug")); err != nil {
		t.Fatal("unable to unmarshal valid level:", err)
	} else if level != LevelDebug {
		t.Error("unmarshaled level mismatch:", level)
	}
	if err := level.UnmarshalText([]byte("loud")); err == nil {
		t.Error("unmarshaling invalid level succeeded")
	} else if level != LevelDebug {
		t.Error("failed unmarshal modified level")
	}
}
