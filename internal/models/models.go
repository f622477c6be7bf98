package models

import (
	"context"

	pub_models "github.com/baalimago/tooloop/pkg/text/models"
)

// Runner is a configured mode, ready to be run. Blocking operation.
type Runner interface {
	Run(ctx context.Context) error
}

// Completer is the model provider boundary. It sends the system instruction
// followed by the full chat history to a model and returns its reply.
type Completer interface {
	Setup() error
	Complete(ctx context.Context, systemPrompt string, chat pub_models.Chat) (pub_models.AssistantMessage, error)
}

// ToolBox is implemented by completers which can declare tools to their model
type ToolBox interface {
	RegisterTool(pub_models.LLMTool)
}
