package text

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/baalimago/tooloop/internal/chat"
	"github.com/baalimago/tooloop/internal/loop"
	"github.com/baalimago/tooloop/internal/models"
	pub_models "github.com/baalimago/tooloop/pkg/text/models"
	"github.com/baalimago/tooloop/pkg/tools"
)

// Computer answers a single prompt, letting the model use arithmetic tools
// until it stops requesting them
type Computer struct {
	s      *session
	policy loop.Policy
}

func NewComputer(conf Configurations, completer models.Completer) (*Computer, error) {
	if conf.Prompt == "" {
		return nil, errors.New("compute mode requires a prompt")
	}
	policy, err := loop.PolicyFromName(conf.ComputePolicy, conf.SavedMarkers, conf.MarkerTool)
	if err != nil {
		return nil, fmt.Errorf("failed to select compute policy: %w", err)
	}
	s, err := newSession(conf, completer, tools.Add, tools.Subtract)
	if err != nil {
		return nil, err
	}
	return &Computer{s: s, policy: policy}, nil
}

func (c *Computer) Run(ctx context.Context) error {
	l, err := c.s.newLoop(loopOptions{
		systemPrompt: func() string { return c.s.conf.ComputePrompt },
		policy:       c.policy,
		maxSteps:     c.s.conf.MaxSteps,
	})
	if err != nil {
		return fmt.Errorf("failed to create loop: %w", err)
	}
	userMsg := pub_models.UserMessage{Content: c.s.conf.Prompt}
	c.s.printMessage(userMsg)
	res, err := l.Run(ctx, pub_models.Chat{
		Created:  time.Now(),
		ID:       chat.IDFromPrompt(c.s.conf.Prompt),
		Messages: []pub_models.Message{userMsg},
	})
	c.s.saveChat(res.Chat)
	if err != nil {
		return fmt.Errorf("failed to compute: %w", err)
	}
	c.s.printAnswer(res.Answer)
	return nil
}
