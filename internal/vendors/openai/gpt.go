package openai

import (
	"fmt"

	"github.com/baalimago/tooloop/internal/text/generic"
)

var GptDefault = ChatGPT{
	Model:       "gpt-4o-mini",
	Temperature: 1.0,
	TopP:        1.0,
	URL:         ChatURL,
}

type ChatGPT struct {
	generic.StreamCompleter
	Model       string  `json:"model"`
	MaxTokens   *int    `json:"max_tokens"` // Use a pointer to allow null value
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"top_p"`
	URL         string  `json:"url"`
}

func (g *ChatGPT) Setup() error {
	g.StreamCompleter.URL = g.URL
	err := g.StreamCompleter.Setup("OPENAI_API_KEY", ChatURL, "DEBUG_OPENAI")
	if err != nil {
		return fmt.Errorf("failed to setup stream completer: %w", err)
	}
	g.StreamCompleter.Model = g.Model
	g.StreamCompleter.MaxTokens = g.MaxTokens
	g.StreamCompleter.Temperature = &g.Temperature
	g.StreamCompleter.TopP = &g.TopP
	toolChoice := "auto"
	g.StreamCompleter.ToolChoice = &toolChoice
	return nil
}
