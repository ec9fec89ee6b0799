package configuration

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

const (
	// EnvironmentIterations is the environment variable specifying the
	// iteration count.
	EnvironmentIterations = "BLOCKPI_ITERATIONS"
	// EnvironmentBlockSize is the environment variable specifying the block
	// size.
	EnvironmentBlockSize = "BLOCKPI_BLOCK_SIZE"
	// EnvironmentThreads is the environment variable specifying the thread
	// count.
	EnvironmentThreads = "BLOCKPI_THREADS"
	// EnvironmentLogLevel is the environment variable specifying the log level.
	EnvironmentLogLevel = "BLOCKPI_LOG_LEVEL"
	// EnvironmentFormat is the environment variable specifying the report
	// format.
	EnvironmentFormat = "BLOCKPI_FORMAT"
)

// LoadEnvironment loads a "dotenv" environment variable file from disk and
// updates it to include variables from the current process' environment (with
// the current process' environment taking precedence). If path is empty or the
// target file doesn't exist, then the resulting environment will be the current
// process' environment.
func LoadEnvironment(path string) (map[string]string, error) {
	// Load the environment file (if specified and present).
	var environment map[string]string
	if path != "" {
		var err error
		environment, err = godotenv.Read(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "unable to load environment file (%s)", path)
		}
	}

	// Grab the environment from the OS.
	osEnvironment := os.Environ()

	// If the environment wasn't allocated, then do so now.
	if environment == nil {
		environment = make(map[string]string, len(osEnvironment))
	}

	// Add environment variables from the OS.
	for _, specification := range osEnvironment {
		keyValue := strings.SplitN(specification, "=", 2)
		if len(keyValue) != 2 {
			return nil, errors.Errorf("invalid OS environment variable specification: %s", specification)
		}
		environment[keyValue[0]] = keyValue[1]
	}

	// Success.
	return environment, nil
}

// FromEnvironment extracts a configuration layer from an environment map.
// Variables that are absent or empty leave the corresponding setting
// unspecified.
func FromEnvironment(environment map[string]string) (*Configuration, error) {
	// Create the result.
	result := &Configuration{}

	// Parse counts.
	if value := environment[EnvironmentIterations]; value != "" {
		result.Iterations = new(Count)
		if err := result.Iterations.UnmarshalText([]byte(value)); err != nil {
			return nil, errors.Wrapf(err, "unable to parse %s", EnvironmentIterations)
		}
	}
	if value := environment[EnvironmentBlockSize]; value != "" {
		result.BlockSize = new(Count)
		if err := result.BlockSize.UnmarshalText([]byte(value)); err != nil {
			return nil, errors.Wrapf(err, "unable to parse %s", EnvironmentBlockSize)
		}
	}

	// Parse the thread count.
	if value := environment[EnvironmentThreads]; value != "" {
		threads, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return nil, errors.Wrapf(err, "unable to parse %s", EnvironmentThreads)
		}
		result.Threads = threads
	}

	// Copy names. These are validated after merging.
	result.LogLevel = environment[EnvironmentLogLevel]
	result.Format = environment[EnvironmentFormat]

	// Success.
	return result, nil
}
