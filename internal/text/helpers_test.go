package text

import (
	"context"

	"github.com/baalimago/tooloop/internal/vendors"
	pub_models "github.com/baalimago/tooloop/pkg/text/models"
)

// promptSpy records what the model is given and otherwise behaves as the mock
type promptSpy struct {
	vendors.Mock
	prompts     []string
	historyLens []int
}

func (p *promptSpy) Complete(ctx context.Context, systemPrompt string, chat pub_models.Chat) (pub_models.AssistantMessage, error) {
	p.prompts = append(p.prompts, systemPrompt)
	p.historyLens = append(p.historyLens, chat.Len())
	return p.Mock.Complete(ctx, systemPrompt, chat)
}
