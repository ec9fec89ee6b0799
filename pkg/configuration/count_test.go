package configuration

import (
	"testing"
)

// TestParseCount tests ParseCount.
func TestParseCount(t *testing.T) {
	// Set up test cases.
	testCases := []struct {
		text        string
		expected    uint64
		expectError bool
	}{
		{"", 0, true},
		{"abc", 0, true},
		{"10", 10, false},
		{" 3000 ", 3000, false},
		{"1.5k", 1500, false},
		{"100M", 100000000, false},
		{"2G", 2000000000, false},
		{"0", 0, false},
		{"1,000,000", 1000000, false},
		{"8.3M", 8300000, false},
		{"100 MB", 100000000, false},
		{"8.5", 0, true},
		{"-5", 0, true},
		{"1.0000001k", 0, true},
		{"1Ki", 0, true},
		{"1MiB", 0, true},
		{"3q", 0, true},
		{"20E", 0, true},
	}

	// Perform tests.
	for _, testCase := range testCases {
		value, err := ParseCount(testCase.text)
		if testCase.expectError {
			if err == nil {
				t.Errorf("parsing %q succeeded unexpectedly", testCase.text)
			}
			continue
		} else if err != nil {
			t.Errorf("unable to parse %q: %v", testCase.text, err)
		} else if value != testCase.expected {
			t.Errorf("count mismatch for %q: %d != %d", testCase.text, value, testCase.expected)
		}
	}
}

// TestCountUnmarshalText tests Count.UnmarshalText.
func TestCountUnmarshalText(t *testing.T) {
	var count Count
	if err := count.UnmarshalText([]byte("8M")); err != nil {
		t.Fatal("unable to unmarshal count:", err)
	} else if count != 8000000 {
		t.Error("count mismatch:", count)
	}
	if err := count.UnmarshalText([]byte("eight")); err == nil {
		t.Error("invalid count unmarshaled successfully")
	}
}

// TestCountValue tests Count.Value and NewCount.
func TestCountValue(t *testing.T) {
	var count *Count
	if count.Value() != 0 {
		t.Error("nil count has non-zero value")
	}
	if NewCount(42).Value() != 42 {
		t.Error("count value mismatch")
	}
}
