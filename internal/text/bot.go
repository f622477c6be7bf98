package text

import (
	"context"
	"fmt"
	"time"

	"github.com/baalimago/tooloop/internal/chat"
	"github.com/baalimago/tooloop/internal/loop"
	"github.com/baalimago/tooloop/internal/models"
	pub_models "github.com/baalimago/tooloop/pkg/text/models"
)

// Bot answers every user input on its own, without any history
type Bot struct {
	s *session
}

func NewBot(conf Configurations, completer models.Completer) (*Bot, error) {
	s, err := newSession(conf, completer)
	if err != nil {
		return nil, err
	}
	return &Bot{s: s}, nil
}

func (b *Bot) Run(ctx context.Context) error {
	return readLoop(ctx, b.s.conf, func(ctx context.Context, line string) error {
		l, err := b.s.newLoop(loopOptions{
			systemPrompt: func() string { return b.s.conf.BotPrompt },
			policy:       loop.ToolExhaustion{},
			maxSteps:     b.s.conf.MaxSteps,
		})
		if err != nil {
			return fmt.Errorf("failed to create loop: %w", err)
		}
		res, err := l.Run(ctx, pub_models.Chat{
			Created:  time.Now(),
			ID:       chat.IDFromPrompt(line),
			Messages: []pub_models.Message{pub_models.UserMessage{Content: line}},
		})
		b.s.saveChat(res.Chat)
		if err != nil {
			return fmt.Errorf("failed to reply: %w", err)
		}
		b.s.printAnswer(res.Answer)
		return nil
	})
}
