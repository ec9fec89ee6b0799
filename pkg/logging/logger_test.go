package logging

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"

	"github.com/fatih/color"
)

// captureLogOutput redirects the standard logger to a buffer for the duration
// of a test.
func captureLogOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	buffer := &bytes.Buffer{}
	flags, output := log.Flags(), log.Writer()
	log.SetFlags(0)
	log.SetOutput(buffer)
	noColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() {
		log.SetFlags(flags)
		log.SetOutput(output)
		color.NoColor = noColor
	})
	return buffer
}

// TestNilLogger tests that a nil logger can be used without panicking.
func TestNilLogger(t *testing.T) {
	buffer := captureLogOutput(t)
	var logger *Logger
	logger.Error(errors.New("failure"))
	logger.Warnf("warning %d", 1)
	logger.Info("information")
	logger.Debugf("debug %s", "value")
	logger.Trace("trace")
	if sublogger := logger.Sublogger("child"); sublogger != nil {
		t.Error("sublogger of nil logger is non-nil")
	}
	if level := logger.Level(); level != LevelDisabled {
		t.Error("nil logger has unexpected level:", level)
	}
	if buffer.Len() != 0 {
		t.Error("nil logger produced output:", buffer.String())
	}
}

// TestSubloggerPrefix tests that subloggers compose their prefixes.
func TestSubloggerPrefix(t *testing.T) {
	buffer := captureLogOutput(t)
	logger := &Logger{level: LevelInfo}
	logger.Sublogger("coordinator").Sublogger("worker3").Infof("folded %d", 7)
	if output := buffer.String(); output != "[coordinator.worker3] folded 7\n" {
		t.Errorf("unexpected output: %q", output)
	}
}

// TestLevelFiltering tests that messages above the logger level are dropped.
func TestLevelFiltering(t *testing.T) {
	// Set up test cases.
	testCases := []struct {
		level    Level
		expected []string
	}{
		{LevelDisabled, nil},
		{LevelError, []string{"Error: e"}},
		{LevelWarn, []string{"Error: e", "Warning: w"}},
		{LevelInfo, []string{"Error: e", "Warning: w", "i"}},
		{LevelDebug, []string{"Error: e", "Warning: w", "i", "d"}},
		{LevelTrace, []string{"Error: e", "Warning: w", "i", "d", "t"}},
	}

	// Perform tests.
	for _, testCase := range testCases {
		buffer := captureLogOutput(t)
		logger := &Logger{level: testCase.level}
		logger.Error(errors.New("e"))
		logger.Warnf("%s", "w")
		logger.Info("i")
		logger.Debug("d")
		logger.Tracef("%s", "t")
		var lines []string
		if output := strings.TrimSuffix(buffer.String(), "\n"); output != "" {
			lines = strings.Split(output, "\n")
		}
		if len(lines) != len(testCase.expected) {
			t.Errorf("level %s: line count mismatch: %d != %d", testCase.level, len(lines), len(testCase.expected))
			continue
		}
		for i, line := range lines {
			if line != testCase.expected[i] {
				t.Errorf("level %s: line %d mismatch: %q != %q", testCase.level, i, line, testCase.expected[i])
			}
		}
	}
}
