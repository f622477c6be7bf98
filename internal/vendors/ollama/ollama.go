package ollama

import (
	"github.com/baalimago/tooloop/internal/text/generic"
)

var OllamaDefault = Ollama{
	Model:       "llama3.1",
	Temperature: 1.0,
	TopP:        1.0,
	URL:         ChatURL,
}

// Ollama talks to a local ollama server through its OpenAI compatible endpoint
type Ollama struct {
	generic.StreamCompleter
	Model       string  `json:"model"`
	MaxTokens   *int    `json:"max_tokens"`
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"top_p"`
	URL         string  `json:"url"`
}
