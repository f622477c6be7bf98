package text

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/user"
	"time"

	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	"github.com/baalimago/tooloop/internal/chat"
	"github.com/baalimago/tooloop/internal/loop"
	"github.com/baalimago/tooloop/internal/models"
	"github.com/baalimago/tooloop/internal/tools"
	"github.com/baalimago/tooloop/internal/utils"
	pub_models "github.com/baalimago/tooloop/pkg/text/models"
)

// session holds what every mode needs to run loops against one model
type session struct {
	conf      Configurations
	completer models.Completer
	registry  *tools.Registry
	username  string
	timeout   time.Duration
	log       *slog.Logger
}

func newSession(conf Configurations, completer models.Completer, llmTools ...pub_models.LLMTool) (*session, error) {
	if completer == nil {
		return nil, errors.New("completer is required")
	}
	registry, err := tools.NewRegistry(llmTools...)
	if err != nil {
		return nil, fmt.Errorf("failed to create tool registry: %w", err)
	}
	if tb, ok := completer.(models.ToolBox); ok {
		for _, name := range registry.Names() {
			t, _ := registry.Get(name)
			tb.RegisterTool(t)
		}
	}
	timeout, err := conf.modelTimeout()
	if err != nil {
		return nil, err
	}
	username := "user"
	if u, err := user.Current(); err == nil {
		username = u.Username
	}
	return &session{
		conf:      conf,
		completer: completer,
		registry:  registry,
		username:  username,
		timeout:   timeout,
		log:       utils.NewLogger(os.Stderr),
	}, nil
}

type loopOptions struct {
	systemPrompt func() string
	policy       loop.Policy
	userInput    func(ctx context.Context, chat pub_models.Chat) (pub_models.UserMessage, error)
	maxSteps     int
}

func (s *session) newLoop(opts loopOptions) (*loop.Loop, error) {
	return loop.New(loop.Config{
		Completer:    s.completer,
		Model:        s.conf.Model,
		SystemPrompt: opts.systemPrompt,
		Dispatcher: &tools.Dispatcher{
			Registry:        s.registry,
			OutputRuneLimit: s.conf.ToolOutputRuneLimit,
		},
		Policy:       opts.policy,
		UserInput:    opts.userInput,
		MaxSteps:     opts.maxSteps,
		ModelTimeout: s.timeout,
		Logger:       s.log,
		OnMessage:    s.printMessage,
	})
}

// printMessage shows every message appended by a loop, unless output is raw.
// Raw output is limited to the answers printed by the modes themselves.
func (s *session) printMessage(msg pub_models.Message) {
	if s.conf.Raw {
		return
	}
	if err := utils.AttemptPrettyPrint(s.conf.out(), msg, s.username, false); err != nil {
		ancli.PrintWarn(fmt.Sprintf("failed to print message: %v\n", err))
	}
}

func (s *session) printAnswer(answer string) {
	if !s.conf.Raw {
		return
	}
	fmt.Fprintln(s.conf.out(), answer)
}

// saveChat stores the chat in the conversations dir. Failures are printed,
// since they shouldn't fail an otherwise successful run.
func (s *session) saveChat(c pub_models.Chat) {
	if s.conf.ConfigDir == "" {
		return
	}
	if c.ID == "" {
		c.ID = fmt.Sprintf("%v_%v", c.Created.Format("20060102_150405"), "chat")
	}
	if err := chat.Save(utils.GetConversationsDir(s.conf.ConfigDir), c); err != nil {
		ancli.PrintWarn(fmt.Sprintf("failed to save chat: %v\n", err))
	}
}
