package text

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	"github.com/baalimago/tooloop/internal/chat"
	"github.com/baalimago/tooloop/internal/loop"
	"github.com/baalimago/tooloop/internal/models"
	pub_models "github.com/baalimago/tooloop/pkg/text/models"
)

// Rememberer is a chat which keeps its history between sessions in a line
// oriented conversation log
type Rememberer struct {
	s       *session
	logPath string
}

func NewRememberer(conf Configurations, completer models.Completer) (*Rememberer, error) {
	logPath := conf.conversationLogPath()
	if logPath == "" {
		return nil, fmt.Errorf("memory mode requires a conversation log path")
	}
	s, err := newSession(conf, completer)
	if err != nil {
		return nil, err
	}
	return &Rememberer{s: s, logPath: logPath}, nil
}

// recoveryLogPath is where the history is saved when the log at p couldn't be
// loaded, so that the unreadable log is never overwritten
func recoveryLogPath(p string, t time.Time) string {
	ext := filepath.Ext(p)
	return strings.TrimSuffix(p, ext) + "_" + t.Format("20060102_150405") + ext
}

func (r *Rememberer) Run(ctx context.Context) error {
	savePath := r.logPath
	history, loadErr := chat.LoadLog(r.logPath)
	if loadErr != nil {
		savePath = recoveryLogPath(r.logPath, time.Now())
		ancli.PrintWarn(fmt.Sprintf("failed to load conversation history: %v. Starting with an empty history, which will be saved to: %v\n", loadErr, savePath))
	}
	history.Created = time.Now()
	history.ID = "memory_" + history.Created.Format("20060102_150405")

	err := readLoop(ctx, r.s.conf, func(ctx context.Context, line string) error {
		l, err := r.s.newLoop(loopOptions{
			systemPrompt: func() string { return r.s.conf.MemoryPrompt },
			policy:       loop.ToolExhaustion{},
			maxSteps:     r.s.conf.MaxSteps,
		})
		if err != nil {
			return fmt.Errorf("failed to create loop: %w", err)
		}
		history.Append(pub_models.UserMessage{Content: line})
		res, err := l.Run(ctx, history)
		history = res.Chat
		if err != nil {
			return fmt.Errorf("failed to reply: %w", err)
		}
		r.s.printAnswer(res.Answer)
		return nil
	})

	r.s.saveChat(history)
	if saveErr := chat.SaveLog(savePath, history); saveErr != nil {
		return fmt.Errorf("failed to save conversation history: %w", saveErr)
	}
	if !r.s.conf.Raw {
		ancli.PrintOK(fmt.Sprintf("conversation history saved to %v\n", savePath))
	}
	return err
}
