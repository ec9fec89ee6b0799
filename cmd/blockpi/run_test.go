package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/blockpi/blockpi/pkg/configuration"
	"github.com/blockpi/blockpi/pkg/logging"
)

// clearEnvironment unsets any blockpi environment variables for the duration
// of a test.
func clearEnvironment(t *testing.T) {
	t.Helper()
	for _, variable := range []string{
		configuration.EnvironmentIterations,
		configuration.EnvironmentBlockSize,
		configuration.EnvironmentThreads,
		configuration.EnvironmentLogLevel,
		configuration.EnvironmentFormat,
	} {
		t.Setenv(variable, "")
		os.Unsetenv(variable)
	}
}

// writeFile writes a file into the test's temporary directory and returns its
// path.
func writeFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0600); err != nil {
		t.Fatal("unable to write file:", err)
	}
	return path
}

// TestLoadConfigurationDefaults tests loading with no layers specified.
func TestLoadConfigurationDefaults(t *testing.T) {
	clearEnvironment(t)
	settings, err := loadConfiguration("", "", &configuration.Configuration{})
	if err != nil {
		t.Fatal("unable to load configuration:", err)
	}
	if settings.Iterations.Value() != 100000000 || settings.BlockSize.Value() != 8307040 || settings.Threads != 0 {
		t.Errorf("default mismatch: %+v", settings)
	}
}

// TestLoadConfigurationPrecedence tests layer precedence.
func TestLoadConfigurationPrecedence(t *testing.T) {
	clearEnvironment(t)
	configurationPath := writeFile(t, "blockpi.yml", "iterations: 1M\nblockSize: 1000\nthreads: 2\nformat: json\n")
	environmentPath := writeFile(t, "blockpi.env", "BLOCKPI_BLOCK_SIZE=2k\nBLOCKPI_THREADS=3\n")
	t.Setenv(configuration.EnvironmentThreads, "4")

	settings, err := loadConfiguration(configurationPath, environmentPath, &configuration.Configuration{
		LogLevel: "debug",
	})
	if err != nil {
		t.Fatal("unable to load configuration:", err)
	}
	if settings.Iterations.Value() != 1000000 {
		t.Error("file layer not applied:", settings.Iterations.Value())
	}
	if settings.BlockSize.Value() != 2000 {
		t.Error("environment file layer not applied:", settings.BlockSize.Value())
	}
	if settings.Threads != 4 {
		t.Error("process environment did not take precedence:", settings.Threads)
	}
	if settings.Level() != logging.LevelDebug || settings.Format != "json" {
		t.Errorf("name settings mismatch: %+v", settings)
	}

	// Verify that flags take precedence over everything else.
	settings, err = loadConfiguration(configurationPath, environmentPath, &configuration.Configuration{
		Threads: 9,
		Format:  "text",
	})
	if err != nil {
		t.Fatal("unable to load configuration:", err)
	}
	if settings.Threads != 9 || settings.Format != "text" {
		t.Errorf("flag layer did not take precedence: %+v", settings)
	}
}

// TestLoadConfigurationMissingFile tests that an explicitly specified but
// missing configuration file is an error.
func TestLoadConfigurationMissingFile(t *testing.T) {
	clearEnvironment(t)
	if _, err := loadConfiguration("/this/does/not/exist.yml", "", &configuration.Configuration{}); err == nil {
		t.Error("missing configuration file accepted")
	}
}

// TestLoadConfigurationInvalid tests that invalid merged settings are
// rejected.
func TestLoadConfigurationInvalid(t *testing.T) {
	clearEnvironment(t)
	if _, err := loadConfiguration("", "", &configuration.Configuration{Format: "xml"}); err == nil {
		t.Error("invalid format accepted")
	}
}

// TestLoadConfigurationExplicitZeroCount tests that explicit zero counts from
// any layer are rejected rather than replaced by defaults.
func TestLoadConfigurationExplicitZeroCount(t *testing.T) {
	clearEnvironment(t)

	// Check the command line layer.
	flags := &configuration.Configuration{Threads: 2}
	flags.Iterations = new(configuration.Count)
	if err := flags.Iterations.UnmarshalText([]byte("0")); err != nil {
		t.Fatal("unable to parse count:", err)
	}
	if settings, err := loadConfiguration("", "", flags); err == nil {
		t.Error("zero iteration count accepted:", settings.Iterations.Value())
	}
	if _, err := loadConfiguration("", "", &configuration.Configuration{BlockSize: configuration.NewCount(0)}); err == nil {
		t.Error("zero block size flag accepted")
	}

	// Check the file and environment layers.
	configurationPath := writeFile(t, "blockpi.yml", "iterations: 0\n")
	if _, err := loadConfiguration(configurationPath, "", &configuration.Configuration{}); err == nil {
		t.Error("zero iteration count in configuration file accepted")
	}
	environmentPath := writeFile(t, "blockpi.env", "BLOCKPI_BLOCK_SIZE=0\n")
	if _, err := loadConfiguration("", environmentPath, &configuration.Configuration{}); err == nil {
		t.Error("zero block size in environment file accepted")
	}
}

// TestResolveThreadsFallback tests that unprompted resolution uses the CPU
// count and that specified counts are preserved.
func TestResolveThreadsFallback(t *testing.T) {
	settings := configuration.Default()
	if err := resolveThreads(settings, false, nil); err != nil {
		t.Fatal("unable to resolve threads:", err)
	} else if settings.Threads < 1 {
		t.Error("invalid resolved thread count:", settings.Threads)
	}

	settings.Threads = 5
	if err := resolveThreads(settings, true, nil); err != nil {
		t.Fatal("unable to resolve threads:", err)
	} else if settings.Threads != 5 {
		t.Error("specified thread count overridden:", settings.Threads)
	}
}
