package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/blockpi/blockpi/cmd"
	"github.com/blockpi/blockpi/pkg/blockpi"
)

// printLegal writes legal information to the specified writer. The notice
// carries its own trailing newline.
func printLegal(writer io.Writer) error {
	_, err := fmt.Fprint(writer, blockpi.LegalNotice)
	return err
}

// legalMain is the entry point for the legal command.
func legalMain(_ *cobra.Command, _ []string) error {
	// Print legal information.
	return printLegal(os.Stdout)
}

// legalCommand is the legal command.
var legalCommand = &cobra.Command{
	Use:          "legal",
	Short:        "Show legal information",
	Args:         cmd.DisallowArguments,
	Run:          cmd.Mainify(legalMain),
	SilenceUsage: true,
}

// legalConfiguration stores configuration for the legal command.
var legalConfiguration struct {
	// help indicates whether or not to show help information and exit.
	help bool
}

func init() {
	// Grab a handle for the command line flags.
	flags := legalCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag.
	flags.BoolVarP(&legalConfiguration.help, "help", "h", false, "Show help information")
}
