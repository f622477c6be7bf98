package agent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/baalimago/tooloop/pkg/text/models"
)

// Run the agent once: the prompt is sent as a new chat, and the content of the
// last assistant message is returned.
func (a *Agent) Run(ctx context.Context) (string, error) {
	if a.querier == nil {
		return "", errors.New("agent is not setup, call Setup first")
	}
	now := time.Now()
	c := models.Chat{
		Created: now,
		ID:      fmt.Sprintf("%v_agent-%v", now.Unix(), a.name),
		Messages: []models.Message{
			models.UserMessage{Content: a.prompt},
		},
	}
	c, err := a.querier.Query(ctx, c)
	if err != nil {
		return "", fmt.Errorf("failed to Query: %w", err)
	}
	msg, ok := c.LastAssistant()
	if !ok {
		return "", errors.New("failed to find any assistant message")
	}
	return msg.Content, nil
}

// Start runs the agent every interval until ctx is done. Answers are written
// to the configured output, failed runs don't stop the agent.
func (a *Agent) Start(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		return fmt.Errorf("interval must be positive, got: %v", interval)
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			answer, err := a.Run(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				fmt.Fprintf(a.out, "%v: run failed: %v\n", a.name, err)
				continue
			}
			fmt.Fprintln(a.out, answer)
		}
	}
}
