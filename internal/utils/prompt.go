package utils

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	"github.com/baalimago/go_away_boilerplate/pkg/misc"
)

var ErrNoPrompt = errors.New("found no prompt, set args or pipe in some string")

func stdinHasPipe() bool {
	fi, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeNamedPipe != 0
}

// Prompt returns the prompt from the arguments and stdin. Piped stdin is
// appended to the arguments on a new line, or becomes the prompt when there are
// no arguments.
func Prompt(args []string) (string, error) {
	prompt := strings.TrimSpace(strings.Join(args, " "))
	if !stdinHasPipe() {
		if prompt == "" {
			return "", ErrNoPrompt
		}
		return prompt, nil
	}

	inputData, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	pipeIn := strings.TrimSpace(string(inputData))
	if misc.Truthy(os.Getenv("DEBUG")) {
		ancli.PrintOK(fmt.Sprintf("args: %v, stdin: %v\n", args, pipeIn))
	}
	switch {
	case prompt == "" && pipeIn == "":
		return "", ErrNoPrompt
	case prompt == "":
		return pipeIn, nil
	case pipeIn == "":
		return prompt, nil
	default:
		return prompt + "\n" + pipeIn, nil
	}
}
