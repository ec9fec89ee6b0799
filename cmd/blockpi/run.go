package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/blockpi/blockpi/cmd"
	"github.com/blockpi/blockpi/pkg/configuration"
	"github.com/blockpi/blockpi/pkg/identifier"
	"github.com/blockpi/blockpi/pkg/integration"
	"github.com/blockpi/blockpi/pkg/logging"
	"github.com/blockpi/blockpi/pkg/parallelism"
	"github.com/blockpi/blockpi/pkg/prompting"
	"github.com/blockpi/blockpi/pkg/report"
)

// threadPrompt is the prompt used to request a thread count.
const threadPrompt = "Enter number of threads: "

// flagLayer builds the command line configuration layer.
func flagLayer() (*configuration.Configuration, error) {
	// Create the result and copy direct settings.
	result := &configuration.Configuration{
		Threads:  runConfiguration.threads,
		LogLevel: runConfiguration.logLevel,
		Format:   runConfiguration.format,
	}

	// Parse counts.
	if runConfiguration.iterations != "" {
		result.Iterations = new(configuration.Count)
		if err := result.Iterations.UnmarshalText([]byte(runConfiguration.iterations)); err != nil {
			return nil, errors.Wrap(err, "invalid iteration count")
		}
	}
	if runConfiguration.blockSize != "" {
		result.BlockSize = new(configuration.Count)
		if err := result.BlockSize.UnmarshalText([]byte(runConfiguration.blockSize)); err != nil {
			return nil, errors.Wrap(err, "invalid block size")
		}
	}

	// Success.
	return result, nil
}

// loadConfiguration merges the default, file, environment, and command line
// configuration layers (in increasing order of precedence) and validates the
// result.
func loadConfiguration(configurationPath, environmentPath string, flags *configuration.Configuration) (*configuration.Configuration, error) {
	// Start with defaults.
	result := configuration.Default()

	// Merge the configuration file, if any.
	if configurationPath != "" {
		file, err := configuration.Load(configurationPath)
		if err != nil {
			return nil, errors.Wrap(err, "unable to load configuration file")
		}
		result.Merge(file)
	}

	// Merge the environment.
	environment, err := configuration.LoadEnvironment(environmentPath)
	if err != nil {
		return nil, errors.Wrap(err, "unable to load environment")
	}
	environmentLayer, err := configuration.FromEnvironment(environment)
	if err != nil {
		return nil, errors.Wrap(err, "invalid environment configuration")
	}
	result.Merge(environmentLayer)

	// Merge command line flags.
	result.Merge(flags)

	// Validate the result.
	if err := result.EnsureValid(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	// Success.
	return result, nil
}

// resolveThreads resolves an unspecified thread count, either by prompting or
// by using the number of schedulable CPUs.
func resolveThreads(c *configuration.Configuration, prompt bool, logger *logging.Logger) error {
	// If the thread count is already specified, then we're done.
	if c.Threads != 0 {
		return nil
	}

	// Fall back to the CPU count if prompting isn't possible.
	if !prompt {
		c.Threads = parallelism.SchedulableCPUs()
		logger.Debugf("Using %d thread(s) based on schedulable CPUs", c.Threads)
		return nil
	}

	// Prompt for the thread count.
	prompter := &prompting.CommandLinePrompter{Mode: prompting.ResponseModeEcho}
	threads, err := prompting.PromptPositiveInteger(prompter, threadPrompt, integration.MaximumThreads)
	if err != nil {
		return errors.Wrap(err, "unable to determine thread count")
	}
	c.Threads = threads

	// Success.
	return nil
}

// runMain is the entry point for the run command.
func runMain(_ *cobra.Command, _ []string) error {
	// Load configuration.
	flags, err := flagLayer()
	if err != nil {
		return err
	}
	settings, err := loadConfiguration(
		runConfiguration.configurationFile,
		runConfiguration.environmentFile,
		flags,
	)
	if err != nil {
		return err
	}

	// Set up logging.
	logging.RootLogger = logging.NewLogger(settings.Level())

	// Generate a run identifier and create the run logger.
	runIdentifier, err := identifier.New(identifier.PrefixRun)
	if err != nil {
		return errors.Wrap(err, "unable to generate run identifier")
	}
	logger := logging.RootLogger.Sublogger(runIdentifier)

	// Resolve the thread count and compute the run configuration.
	prompt := !runConfiguration.noPrompt && cmd.StandardInputIsTerminal()
	if err := resolveThreads(settings, prompt, logger); err != nil {
		return err
	}
	run, err := settings.Run()
	if err != nil {
		return err
	}
	if cpus := parallelism.SchedulableCPUs(); run.Threads > cpus {
		cmd.Warning(fmt.Sprintf("thread count (%d) exceeds schedulable CPUs (%d)", run.Threads, cpus))
	}

	// Create the coordinator.
	coordinator, err := integration.NewCoordinator(run, nil, logger.Sublogger("coordinator"))
	if err != nil {
		return errors.Wrap(err, "unable to create coordinator")
	}

	// Create a context to regulate the run's helper Goroutines.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Abort on termination signals. Runs can't be cancelled, so we simply
	// exit.
	signalTermination := make(chan os.Signal, 1)
	signal.Notify(signalTermination, cmd.TerminationSignals...)
	defer signal.Stop(signalTermination)
	go func() {
		select {
		case s := <-signalTermination:
			cmd.Fatal(errors.Errorf("terminated by signal: %v", s))
		case <-ctx.Done():
		}
	}()

	// Start progress monitoring if requested.
	monitorDone := make(chan struct{})
	if runConfiguration.monitor && cmd.StandardOutputIsTerminal() {
		go func() {
			monitorRun(ctx, coordinator)
			close(monitorDone)
		}()
	} else {
		close(monitorDone)
	}

	// Perform the run and wait for monitoring to finish.
	result, err := coordinator.Run()
	if err != nil {
		return errors.Wrap(err, "run failed")
	}
	<-monitorDone

	// Create the report, verifying against a sequential computation if
	// requested.
	runReport := report.New(runIdentifier, result)
	if runConfiguration.verify {
		logger.Info("Performing sequential verification")
		partition := integration.NewPartition(run.Iterations, run.BlockSize)
		runReport.Verify(result, integration.Sequential(partition, integration.MidpointPi(run.Iterations)))
	}

	// Write the report.
	return runReport.Write(os.Stdout, settings.ReportFormat())
}

// runCommand is the run command.
var runCommand = &cobra.Command{
	Use:          "run",
	Short:        "Approximate pi",
	Args:         cmd.DisallowArguments,
	Run:          cmd.Mainify(runMain),
	SilenceUsage: true,
}

// runConfiguration stores configuration for the run command.
var runConfiguration struct {
	// help indicates whether or not to show help information and exit.
	help bool
	// threads is the thread count.
	threads int
	// iterations is the iteration count specification.
	iterations string
	// blockSize is the block size specification.
	blockSize string
	// configurationFile is the path to a YAML configuration file.
	configurationFile string
	// environmentFile is the path to a dotenv environment file.
	environmentFile string
	// logLevel is the log level name.
	logLevel string
	// format is the report format name.
	format string
	// monitor indicates whether or not to display a progress status line.
	monitor bool
	// noPrompt disables interactive thread count prompting.
	noPrompt bool
	// verify indicates whether or not to verify against a sequential sum.
	verify bool
}

func init() {
	// Grab a handle for the command line flags.
	flags := runCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&runConfiguration.help, "help", "h", false, "Show help information")

	// Wire up run flags.
	flags.IntVarP(&runConfiguration.threads, "threads", "t", 0, "Specify the number of worker threads")
	flags.StringVarP(&runConfiguration.iterations, "iterations", "n", "", "Specify the number of iterations (e.g. 100M)")
	flags.StringVarP(&runConfiguration.blockSize, "block-size", "b", "", "Specify the number of iterations per block")
	flags.StringVarP(&runConfiguration.configurationFile, "configuration", "c", "", "Specify a YAML configuration file")
	flags.StringVar(&runConfiguration.environmentFile, "environment-file", "", "Specify a dotenv environment file")
	flags.StringVar(&runConfiguration.logLevel, "log-level", "", "Set the log level (disabled|error|warn|info|debug|trace)")
	flags.StringVar(&runConfiguration.format, "format", "", "Set the report format (text|json)")
	flags.BoolVar(&runConfiguration.monitor, "monitor", false, "Display progress while running")
	flags.BoolVar(&runConfiguration.noPrompt, "no-prompt", false, "Disable interactive thread count prompting")
	flags.BoolVar(&runConfiguration.verify, "verify", false, "Verify the result against a sequential computation")
}
