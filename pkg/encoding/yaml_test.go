package encoding

import (
	"os"
	"testing"
)

// testMessageYAML is a test structure to use for encoding tests using YAML.
type testMessageYAML struct {
	Run struct {
		Iterations uint64 `yaml:"iterations"`
		Threads    int    `yaml:"threads"`
	} `yaml:"run"`
}

const (
	// testMessageYAMLString is the YAML-encoded form of the YAML test data.
	testMessageYAMLString = `
run:
  iterations: 1000
  threads: 4
`
	// testMessageYAMLUnknownKey is YAML test data with an unknown key.
	testMessageYAMLUnknownKey = `
run:
  iterations: 1000
  workers: 4
`
)

// writeTemporaryYAML writes YAML data to a temporary file and returns its
// path. The file is removed when the test completes.
func writeTemporaryYAML(t *testing.T, data string) string {
	t.Helper()
	file, err := os.CreateTemp("", "blockpi_encoding")
	if err != nil {
		t.Fatal("unable to create temporary file:", err)
	} else if _, err = file.Write([]byte(data)); err != nil {
		t.Fatal("unable to write data to temporary file:", err)
	} else if err = file.Close(); err != nil {
		t.Fatal("unable to close temporary file:", err)
	}
	t.Cleanup(func() { os.Remove(file.Name()) })
	return file.Name()
}

// TestLoadAndUnmarshalYAML tests that loading and unmarshaling YAML data
// succeeds.
func TestLoadAndUnmarshalYAML(t *testing.T) {
	// Attempt to load and unmarshal.
	value := &testMessageYAML{}
	if err := LoadAndUnmarshalYAML(writeTemporaryYAML(t, testMessageYAMLString), value); err != nil {
		t.Fatal("LoadAndUnmarshalYAML failed:", err)
	}

	// Verify test values.
	if value.Run.Iterations != 1000 {
		t.Error("test message iterations mismatch:", value.Run.Iterations, "!=", 1000)
	}
	if value.Run.Threads != 4 {
		t.Error("test message threads mismatch:", value.Run.Threads, "!=", 4)
	}
}

// TestLoadAndUnmarshalYAMLStrict tests that unknown keys are rejected.
func TestLoadAndUnmarshalYAMLStrict(t *testing.T) {
	value := &testMessageYAML{}
	if err := LoadAndUnmarshalYAML(writeTemporaryYAML(t, testMessageYAMLUnknownKey), value); err == nil {
		t.Error("LoadAndUnmarshalYAML accepted unknown key")
	}
}
