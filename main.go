package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/pprof"

	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	"github.com/baalimago/go_away_boilerplate/pkg/misc"
	"github.com/baalimago/go_away_boilerplate/pkg/shutdown"
	"github.com/baalimago/tooloop/internal"
	"github.com/baalimago/tooloop/internal/utils"
)

const usage = `tooloop - a tool calling loop for chat models

Prerequisites:
  - Set the OPENAI_API_KEY environment variable to your OpenAI API key
  - (Optional) Use an 'ollama:<model>' chat model to run against a local ollama server
  - (Optional) Set the TOOLOOP_CONFIG_DIR environment variable to override the config directory
  - (Optional) Set the NO_COLOR environment variable to disable ansi color output
  - (Optional) Set the DEBUG environment variable to print debug logs

Usage: tooloop [flags] <command>

Flags:
  -cm, -chat-model string      Set the chat model to use. (default is found in textConfig.json)
  -r, -raw bool                Set to true to print only the answers.
  -dd, -document-dir string    Set the directory where draft mode saves documents. (default is found in textConfig.json)
  -l, -log string              Set the conversation log used by memory mode. (default is found in textConfig.json)
  -ms, -max-steps int          Set the maximum amount of model steps of one run. (default is found in textConfig.json)
  -to, -timeout string         Set the timeout of each model step, such as '30s'. (default is found in textConfig.json)

Commands:
  h|help                       Display this help message
  v|version                    Display version information
  c|compute <text>             Ask the model to compute something using the arithmetic tools
  d|draft                      Draft a document together with the model, saved once the model says so
  m|memory                     Chat with the model, keeping the conversation log between sessions
  b|bot                        Ask the model independent questions, one line at a time

Examples:
  - tooloop compute "what is 10 + 5, minus 3?"
  - echo "what is 7 - 2?" | tooloop -r compute
  - tooloop -dd ~/Documents draft
  - tooloop -l ~/notes/history.txt memory
  - tooloop -cm ollama:llama3.1 bot
`

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	ancli.SetupSlog()
	if misc.Truthy(os.Getenv("DEBUG_CPU")) {
		f, err := os.Create("cpu_profile.prof")
		if err != nil {
			ancli.PrintErr(fmt.Sprintf("failed to create profiler file: %v", err))
		} else {
			defer f.Close()
			if err := pprof.StartCPUProfile(f); err != nil {
				ancli.PrintErr(fmt.Sprintf("failed to start profiler : %v", err))
			} else {
				defer pprof.StopCPUProfile()
			}
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	runner, err := internal.Setup(ctx, usage, args)
	if err != nil {
		if errors.Is(err, utils.ErrUserInitiatedExit) {
			return 0
		}
		ancli.PrintErr(fmt.Sprintf("failed to setup: %v\n", err))
		return 1
	}
	go func() { shutdown.Monitor(cancel) }()
	err = runner.Run(ctx)
	if err != nil {
		if errors.Is(err, utils.ErrUserInitiatedExit) {
			if misc.Truthy(os.Getenv("DEBUG")) {
				ancli.Okf("Seems like you wanted out. Byebye!\n")
			}
			return 0
		}
		ancli.PrintErr(fmt.Sprintf("failed to run: %v\n", err))
		return 1
	}
	if misc.Truthy(os.Getenv("DEBUG")) {
		ancli.PrintOK("things seems to have worked out. Bye bye!\n")
	}
	return 0
}
