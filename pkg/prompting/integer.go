package prompting

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// PromptPositiveInteger prompts for an integer in the range [1, maximum]. If
// maximum is non-positive, then no upper bound is enforced. Leading and
// trailing whitespace in the response is ignored.
func PromptPositiveInteger(prompter Prompter, prompt string, maximum int) (int, error) {
	// Perform prompting.
	response, err := prompter.Prompt(prompt)
	if err != nil {
		return 0, errors.Wrap(err, "unable to prompt")
	}

	// Parse the response.
	value, err := strconv.Atoi(strings.TrimSpace(response))
	if err != nil {
		return 0, errors.Errorf("invalid integer: %q", response)
	}

	// Validate the value.
	if value < 1 {
		return 0, errors.Errorf("value must be positive (got %d)", value)
	} else if maximum > 0 && value > maximum {
		return 0, errors.Errorf("value exceeds maximum (%d > %d)", value, maximum)
	}

	// Success.
	return value, nil
}
