package utils

import (
	"fmt"
	"io"

	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	pub_models "github.com/baalimago/tooloop/pkg/text/models"
)

// AttemptPrettyPrint writes msg to out with a colored role prefix. Raw output
// is the message text only. Assistant messages without text, such as pure
// tool calls, print their calls instead.
func AttemptPrettyPrint(out io.Writer, msg pub_models.Message, username string, raw bool) error {
	content := msg.Text()
	if am, ok := msg.(pub_models.AssistantMessage); ok && content == "" {
		if raw {
			return nil
		}
		for _, c := range am.ToolCalls {
			if _, err := fmt.Fprintf(out, "%v: %v\n", ancli.ColoredMessage(ancli.MAGENTA, "tool call"), c.PrettyPrint()); err != nil {
				return fmt.Errorf("failed to print tool call: %w", err)
			}
		}
		return nil
	}
	if raw {
		_, err := fmt.Fprintln(out, content)
		return err
	}
	role := msg.Role()
	color := ancli.BLUE
	switch msg.(type) {
	case pub_models.ToolResultMessage:
		color = ancli.MAGENTA
	case pub_models.UserMessage:
		color = ancli.CYAN
		role = username
	}
	_, err := fmt.Fprintf(out, "%v: %v\n", ancli.ColoredMessage(color, role), content)
	return err
}
