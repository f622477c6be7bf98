package internal

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	"github.com/baalimago/go_away_boilerplate/pkg/debug"
	"github.com/baalimago/go_away_boilerplate/pkg/misc"
	"github.com/baalimago/tooloop/internal/models"
	"github.com/baalimago/tooloop/internal/text"
	"github.com/baalimago/tooloop/internal/utils"
)

type Mode int

const (
	HELP Mode = iota
	VERSION
	COMPUTE
	DRAFT
	MEMORY
	BOT
)

var defaultFlags = Configurations{}

func getModeFromArgs(cmd string) (Mode, error) {
	switch cmd {
	case "compute", "c":
		return COMPUTE, nil
	case "draft", "d":
		return DRAFT, nil
	case "memory", "m":
		return MEMORY, nil
	case "bot", "b":
		return BOT, nil
	case "help", "h":
		return HELP, nil
	case "version", "v":
		return VERSION, nil
	default:
		return HELP, fmt.Errorf("unknown command: '%s'", cmd)
	}
}

func loadTextConfig(flagSet Configurations) (text.Configurations, error) {
	confDir, err := utils.GetConfigDir()
	if err != nil {
		return text.Configurations{}, fmt.Errorf("failed to find config dir: %w", err)
	}
	tConf, err := utils.LoadConfigFromFile(confDir, "textConfig.json", &text.Default)
	if err != nil {
		return text.Configurations{}, fmt.Errorf("failed to load configs: %w", err)
	}
	tConf.ConfigDir = confDir
	applyFlagOverridesForText(&tConf, flagSet, defaultFlags)
	if misc.Truthy(os.Getenv("DEBUG")) {
		ancli.PrintOK(fmt.Sprintf("text config: %v\n", debug.IndentedJsonFmt(tConf)))
	}
	return tConf, nil
}

// Setup parses args and returns the runner of the selected mode. Help and
// version are printed directly and yield utils.ErrUserInitiatedExit.
func Setup(ctx context.Context, usage string, args []string) (models.Runner, error) {
	flagSet, postArgs, err := parseFlags(defaultFlags, args)
	if err != nil {
		return nil, err
	}
	if len(postArgs) == 0 {
		fmt.Print(usage)
		return nil, errors.New("no command given")
	}
	mode, err := getModeFromArgs(postArgs[0])
	if err != nil {
		return nil, err
	}

	switch mode {
	case HELP:
		fmt.Print(usage)
		return nil, utils.ErrUserInitiatedExit
	case VERSION:
		return printVersion()
	}

	tConf, err := loadTextConfig(flagSet)
	if err != nil {
		return nil, err
	}
	if mode == COMPUTE {
		tConf.Prompt, err = utils.Prompt(postArgs[1:])
		if err != nil {
			return nil, fmt.Errorf("failed to setup prompt: %w", err)
		}
	}
	completer, err := text.NewCompleter(tConf)
	if err != nil {
		return nil, fmt.Errorf("failed to create completer: %w", err)
	}

	var runner models.Runner
	switch mode {
	case COMPUTE:
		runner, err = text.NewComputer(tConf, completer)
	case DRAFT:
		runner, err = text.NewDrafter(tConf, completer)
	case MEMORY:
		runner, err = text.NewRememberer(tConf, completer)
	case BOT:
		runner, err = text.NewBot(tConf, completer)
	default:
		return nil, fmt.Errorf("unknown mode: %v", mode)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to setup mode: %w", err)
	}
	return runner, nil
}
