package internal

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/baalimago/tooloop/internal/text"
	"github.com/baalimago/tooloop/internal/utils"
)

// Configurations set by flags. Zero values mean that the config file decides.
type Configurations struct {
	ChatModel       string
	PrintRaw        bool
	DocumentDir     string
	ConversationLog string
	MaxSteps        int
	ModelTimeout    string
}

func flagError(err error, shortFlag, longFlag string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("flags: '%v' and '%v' are mutually exclusive: %w", shortFlag, longFlag, err)
}

// parseFlags parses args into Configurations, returning the remaining args
func parseFlags(defaults Configurations, args []string) (Configurations, []string, error) {
	fs := flag.NewFlagSet("tooloop", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	cmShort := fs.String("cm", defaults.ChatModel, "Set the chat model to use. Mutually exclusive with chat-model flag.")
	cmLong := fs.String("chat-model", defaults.ChatModel, "Set the chat model to use. Mutually exclusive with cm flag.")

	printRawShort := fs.Bool("r", defaults.PrintRaw, "Set to true to print only the answers.")
	printRawLong := fs.Bool("raw", defaults.PrintRaw, "Set to true to print only the answers.")

	ddShort := fs.String("dd", defaults.DocumentDir, "Set the directory where draft mode saves documents.")
	ddLong := fs.String("document-dir", defaults.DocumentDir, "Set the directory where draft mode saves documents.")

	logShort := fs.String("l", defaults.ConversationLog, "Set the conversation log used by memory mode.")
	logLong := fs.String("log", defaults.ConversationLog, "Set the conversation log used by memory mode.")

	msShort := fs.Int("ms", defaults.MaxSteps, "Set the maximum amount of model steps of one run.")
	msLong := fs.Int("max-steps", defaults.MaxSteps, "Set the maximum amount of model steps of one run.")

	toShort := fs.String("to", defaults.ModelTimeout, "Set the timeout of each model step, such as '30s'.")
	toLong := fs.String("timeout", defaults.ModelTimeout, "Set the timeout of each model step, such as '30s'.")

	if err := fs.Parse(args); err != nil {
		return Configurations{}, nil, fmt.Errorf("failed to parse args: %w", err)
	}

	chatModel, err := utils.ReturnNonDefault(*cmShort, *cmLong, defaults.ChatModel)
	errs := []error{flagError(err, "cm", "chat-model")}
	documentDir, err := utils.ReturnNonDefault(*ddShort, *ddLong, defaults.DocumentDir)
	errs = append(errs, flagError(err, "dd", "document-dir"))
	conversationLog, err := utils.ReturnNonDefault(*logShort, *logLong, defaults.ConversationLog)
	errs = append(errs, flagError(err, "l", "log"))
	maxSteps, err := utils.ReturnNonDefault(*msShort, *msLong, defaults.MaxSteps)
	errs = append(errs, flagError(err, "ms", "max-steps"))
	modelTimeout, err := utils.ReturnNonDefault(*toShort, *toLong, defaults.ModelTimeout)
	errs = append(errs, flagError(err, "to", "timeout"))
	if err := errors.Join(errs...); err != nil {
		return Configurations{}, nil, err
	}

	return Configurations{
		ChatModel:       chatModel,
		PrintRaw:        *printRawShort || *printRawLong,
		DocumentDir:     documentDir,
		ConversationLog: conversationLog,
		MaxSteps:        maxSteps,
		ModelTimeout:    modelTimeout,
	}, fs.Args(), nil
}

// applyFlagOverridesForText keeps the convention flags > file > default, by only
// overriding values where the flag differs from its default
func applyFlagOverridesForText(tConf *text.Configurations, flagSet, defaultFlags Configurations) {
	if flagSet.ChatModel != defaultFlags.ChatModel {
		tConf.Model = flagSet.ChatModel
	}
	if flagSet.PrintRaw != defaultFlags.PrintRaw {
		tConf.Raw = flagSet.PrintRaw
	}
	if flagSet.DocumentDir != defaultFlags.DocumentDir {
		tConf.DocumentDir = flagSet.DocumentDir
	}
	if flagSet.ConversationLog != defaultFlags.ConversationLog {
		tConf.ConversationLog = flagSet.ConversationLog
	}
	if flagSet.MaxSteps != defaultFlags.MaxSteps {
		tConf.MaxSteps = flagSet.MaxSteps
		tConf.DraftMaxSteps = flagSet.MaxSteps
	}
	if flagSet.ModelTimeout != defaultFlags.ModelTimeout {
		tConf.ModelTimeout = flagSet.ModelTimeout
	}
}
