package prompting

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/mutagen-io/gopass"
)

// PromptCommandLineWithResponseMode performs command line prompting using the
// specified response mode.
func PromptCommandLineWithResponseMode(prompt string, mode ResponseMode) (string, error) {
	// Figure out which getter to use.
	var getter func() ([]byte, error)
	if mode == ResponseModeEcho {
		getter = gopass.GetPasswdEchoed
	} else if mode == ResponseModeMasked {
		getter = gopass.GetPasswdMasked
	} else {
		getter = gopass.GetPasswd
	}

	// Print the prompt.
	fmt.Print(prompt)

	// Get the result.
	result, err := getter()
	if err != nil {
		return "", errors.Wrap(err, "unable to read response")
	}

	// Success.
	return string(result), nil
}

// CommandLinePrompter is a Prompter that interacts with the user through the
// controlling terminal.
type CommandLinePrompter struct {
	// Mode is the response mode used for prompts.
	Mode ResponseMode
}

// Message implements Prompter.Message.
func (p *CommandLinePrompter) Message(message string) error {
	_, err := fmt.Println(message)
	return err
}

// Prompt implements Prompter.Prompt.
func (p *CommandLinePrompter) Prompt(prompt string) (string, error) {
	return PromptCommandLineWithResponseMode(prompt, p.Mode)
}
