package configuration

import (
	"github.com/pkg/errors"

	"github.com/blockpi/blockpi/pkg/encoding"
	"github.com/blockpi/blockpi/pkg/integration"
	"github.com/blockpi/blockpi/pkg/logging"
	"github.com/blockpi/blockpi/pkg/report"
)

// Configuration is the layered run configuration. Nil counts and zero values
// of other settings indicate that a setting is unspecified at a particular
// layer.
type Configuration struct {
	// Iterations is the total number of sample points.
	Iterations *Count `yaml:"iterations"`
	// BlockSize is the number of sample points per block.
	BlockSize *Count `yaml:"blockSize"`
	// Threads is the number of workers. A value of 0 indicates that the thread
	// count should be resolved interactively or from the CPU count.
	Threads int `yaml:"threads"`
	// LogLevel is the log level name.
	LogLevel string `yaml:"logLevel"`
	// Format is the report format name.
	Format string `yaml:"format"`
}

// Default returns the built-in default configuration.
func Default() *Configuration {
	return &Configuration{
		Iterations: NewCount(integration.DefaultIterations),
		BlockSize:  NewCount(integration.DefaultBlockSize),
		LogLevel:   logging.LevelInfo.String(),
		Format:     report.FormatText.String(),
	}
}

// Load attempts to load a YAML-based configuration file from the specified
// path. Non-existence errors are passed through so that callers can detect them
// with os.IsNotExist.
func Load(path string) (*Configuration, error) {
	// Create the target configuration object.
	result := &Configuration{}

	// Attempt to load.
	if err := encoding.LoadAndUnmarshalYAML(path, result); err != nil {
		return nil, err
	}

	// Success.
	return result, nil
}

// Merge overrides the receiver's settings with any settings specified in other.
// A nil other is treated as an empty configuration.
func (c *Configuration) Merge(other *Configuration) {
	if other == nil {
		return
	}
	if other.Iterations != nil {
		c.Iterations = NewCount(other.Iterations.Value())
	}
	if other.BlockSize != nil {
		c.BlockSize = NewCount(other.BlockSize.Value())
	}
	if other.Threads != 0 {
		c.Threads = other.Threads
	}
	if other.LogLevel != "" {
		c.LogLevel = other.LogLevel
	}
	if other.Format != "" {
		c.Format = other.Format
	}
}

// EnsureValid ensures that Configuration's invariants are respected. Thread
// count validation is deferred to the run configuration since the thread count
// may still be unresolved.
func (c *Configuration) EnsureValid() error {
	// A nil configuration is not considered valid.
	if c == nil {
		return errors.New("nil configuration")
	}

	// Verify settings.
	if c.Iterations != nil && c.Iterations.Value() == 0 {
		return errors.New("iteration count must be positive")
	} else if c.BlockSize != nil && c.BlockSize.Value() == 0 {
		return errors.New("block size must be positive")
	} else if c.Threads < 0 {
		return errors.Errorf("thread count must not be negative (got %d)", c.Threads)
	} else if _, ok := logging.NameToLevel(c.LogLevel); !ok {
		return errors.Errorf("invalid log level: %s", c.LogLevel)
	} else if _, ok := report.NameToFormat(c.Format); !ok {
		return errors.Errorf("invalid report format: %s", c.Format)
	}

	// Success.
	return nil
}

// Level returns the configured log level, defaulting to info if invalid.
func (c *Configuration) Level() logging.Level {
	if level, ok := logging.NameToLevel(c.LogLevel); ok {
		return level
	}
	return logging.LevelInfo
}

// ReportFormat returns the configured report format.
func (c *Configuration) ReportFormat() report.Format {
	format, _ := report.NameToFormat(c.Format)
	return format
}

// Run converts the configuration to a validated run configuration.
func (c *Configuration) Run() (integration.Configuration, error) {
	result := integration.Configuration{
		Iterations: c.Iterations.Value(),
		BlockSize:  c.BlockSize.Value(),
		Threads:    c.Threads,
	}
	if err := result.EnsureValid(); err != nil {
		return integration.Configuration{}, errors.Wrap(err, "invalid run configuration")
	}
	return result, nil
}
