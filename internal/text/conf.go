package text

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	"github.com/baalimago/tooloop/internal/utils"
)

const documentPlaceholder = "{{document}}"

// Configurations used to setup the modes
type Configurations struct {
	Model string `json:"model"`
	// URL overrides the chat completions endpoint of the vendor
	URL           string `json:"url"`
	ComputePrompt string `json:"compute-system-prompt"`
	// DraftPrompt may contain {{document}}, which is replaced with the live
	// document at every model step
	DraftPrompt  string `json:"draft-system-prompt"`
	MemoryPrompt string `json:"memory-system-prompt"`
	BotPrompt    string `json:"bot-system-prompt"`
	// ComputePolicy and DraftPolicy are one of 'tool-exhaustion' or 'content-marker'
	ComputePolicy string   `json:"compute-policy"`
	DraftPolicy   string   `json:"draft-policy"`
	SavedMarkers  []string `json:"saved-markers"`

	// MarkerTool is the tool whose results the markers are matched against
	MarkerTool  string `json:"marker-tool"`
	DocumentDir string `json:"document-dir"`
	// ConversationLog is the memory mode log, relative paths are relative to the config dir
	ConversationLog string `json:"conversation-log"`
	MaxSteps        int    `json:"max-steps"`
	DraftMaxSteps   int    `json:"draft-max-steps"`
	// ModelTimeout bounds each model step, as a duration string. Empty means no timeout.
	ModelTimeout        string `json:"model-timeout"`
	ToolOutputRuneLimit int    `json:"tool-output-rune-limit"`
	Raw                 bool   `json:"raw"`

	ConfigDir string `json:"-"`
	Prompt    string `json:"-"`
	// Out receives everything printed by the modes. Nil means stdout.
	Out io.Writer `json:"-"`
	// Input reads a line from the user. Nil means the console.
	Input func(ctx context.Context) (string, error) `json:"-"`
}

var Default = Configurations{
	Model:         "gpt-4o-mini",
	ComputePrompt: "You are a helpful assistant. Use the tools provided to answer the user's questions.",
	DraftPrompt: `You are Drafter, a helpful writing assistant. You are going to help the user update and modify documents.

- If the user wants to update or modify content, use the 'update' tool with the complete updated content.
- If the user wants to save and finish, you need to use the 'save' tool.
- Make sure to always show the current document state after modifications.

The current document content is: ` + documentPlaceholder,
	MemoryPrompt:        "You are a helpful assistant. Answer concisely.",
	BotPrompt:           "You are a helpful assistant. Answer concisely.",
	ComputePolicy:       "tool-exhaustion",
	DraftPolicy:         "content-marker",
	SavedMarkers:        []string{"saved", "document"},
	MarkerTool:          "save",
	DocumentDir:         ".",
	ConversationLog:     "conversation_history.txt",
	MaxSteps:            8,
	DraftMaxSteps:       64,
	ModelTimeout:        "2m",
	ToolOutputRuneLimit: 21600,
}

func (c Configurations) out() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

func (c Configurations) readInput(ctx context.Context) (string, error) {
	if c.Input == nil {
		return utils.ReadUserInput(ctx)
	}
	return c.Input(ctx)
}

func (c Configurations) modelTimeout() (time.Duration, error) {
	if c.ModelTimeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.ModelTimeout)
	if err != nil {
		return 0, fmt.Errorf("failed to parse model-timeout '%v': %w", c.ModelTimeout, err)
	}
	return d, nil
}

// conversationLogPath resolves the memory log against the config dir
func (c Configurations) conversationLogPath() string {
	if c.ConversationLog == "" || filepath.IsAbs(c.ConversationLog) || c.ConfigDir == "" {
		return c.ConversationLog
	}
	return filepath.Join(c.ConfigDir, c.ConversationLog)
}

// draftPrompt renders the draft system prompt with the current document
func (c Configurations) draftPrompt(document string) string {
	if strings.Contains(c.DraftPrompt, documentPlaceholder) {
		return strings.ReplaceAll(c.DraftPrompt, documentPlaceholder, document)
	}
	return c.DraftPrompt + "\n\nThe current document content is: " + document
}

func (c Configurations) printMsg(msg string) {
	if c.Raw {
		return
	}
	fmt.Fprint(c.out(), ancli.ColoredMessage(ancli.BLUE, msg))
}
