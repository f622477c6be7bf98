package text

import (
	"context"
	"errors"

	"github.com/baalimago/tooloop/internal/utils"
)

const (
	firstAsk = "Enter your message: "
	nextAsk  = "Enter your message (or type 'exit' to quit): "
)

// readLoop asks the user for input until they exit, calling handle for every
// non-empty line. A user initiated exit ends the loop without error.
func readLoop(ctx context.Context, conf Configurations, handle func(ctx context.Context, line string) error) error {
	ask := firstAsk
	for {
		conf.printMsg(ask)
		line, err := conf.readInput(ctx)
		if errors.Is(err, utils.ErrUserInitiatedExit) {
			return nil
		}
		if err != nil {
			return err
		}
		ask = nextAsk
		if line == "" {
			continue
		}
		if err := handle(ctx, line); err != nil {
			return err
		}
	}
}
