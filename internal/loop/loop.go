package loop

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"time"

	"github.com/baalimago/tooloop/internal/models"
	"github.com/baalimago/tooloop/internal/tools"
	pub_models "github.com/baalimago/tooloop/pkg/text/models"
)

const DefaultMaxSteps = 8

var (
	ErrMaxStepsExceeded = errors.New("max steps exceeded")
	ErrLoopDone         = errors.New("loop has already finished")
)

type State int

const (
	Start State = iota
	AwaitingModel
	DispatchingTools
	Done
)

func (s State) String() string {
	switch s {
	case Start:
		return "start"
	case AwaitingModel:
		return "awaiting-model"
	case DispatchingTools:
		return "dispatching-tools"
	case Done:
		return "done"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Config of a Loop. Completer and Policy are required.
type Config struct {
	Completer models.Completer
	// Model is only used to label errors and logs
	Model string
	// SystemPrompt is rebuilt at every model step, it is never stored in the chat
	SystemPrompt func() string
	// Dispatcher executes tool calls. Nil means that no tools are available and
	// every tool call gets an unknown tool result.
	Dispatcher *tools.Dispatcher
	Policy     Policy
	// UserInput, if set, is asked for a new user message before every model step
	UserInput func(ctx context.Context, chat pub_models.Chat) (pub_models.UserMessage, error)
	// MaxSteps limits the amount of model steps of one run. Zero means DefaultMaxSteps.
	MaxSteps int
	// ModelTimeout bounds each model step. Zero means no timeout.
	ModelTimeout time.Duration
	Logger       *slog.Logger
	// OnMessage is called with every message appended during the run
	OnMessage func(pub_models.Message)
}

// Loop alternates between asking the model and dispatching the tool calls it
// requests, until the Policy says End. A Loop is single use.
type Loop struct {
	conf  Config
	state State
	log   *slog.Logger
}

type Result struct {
	Chat pub_models.Chat
	// Answer is the content of the last assistant message
	Answer string
	Steps  int
}

func New(conf Config) (*Loop, error) {
	if conf.Completer == nil {
		return nil, errors.New("completer is required")
	}
	if conf.Policy == nil {
		return nil, errors.New("policy is required")
	}
	if conf.SystemPrompt == nil {
		conf.SystemPrompt = func() string { return "" }
	}
	if conf.Dispatcher == nil {
		empty, _ := tools.NewRegistry()
		conf.Dispatcher = &tools.Dispatcher{Registry: empty}
	}
	if conf.MaxSteps <= 0 {
		conf.MaxSteps = DefaultMaxSteps
	}
	log := conf.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Loop{conf: conf, state: Start, log: log}, nil
}

func (l *Loop) State() State {
	return l.state
}

// Run the loop on chat until the policy ends it. The returned chat holds
// every message appended during the run, also on error.
func (l *Loop) Run(ctx context.Context, chat pub_models.Chat) (Result, error) {
	if l.state != Start {
		return Result{Chat: chat}, ErrLoopDone
	}
	chat.Messages = slices.Clone(chat.Messages)
	res := Result{}
	finish := func(err error) (Result, error) {
		l.state = Done
		res.Chat = chat
		if am, ok := chat.LastAssistant(); ok {
			res.Answer = am.Content
		}
		l.log.Debug("loop done", "steps", res.Steps, "messages", chat.Len(), "err", err)
		return res, err
	}

	l.state = AwaitingModel
	for {
		if res.Steps >= l.conf.MaxSteps {
			return finish(fmt.Errorf("stopped after %v steps: %w", res.Steps, ErrMaxStepsExceeded))
		}
		if err := ctx.Err(); err != nil {
			return finish(err)
		}
		res.Steps++

		am, err := l.modelStep(ctx, &chat)
		if err != nil {
			return finish(err)
		}
		l.log.Debug("model step", "step", res.Steps, "tool_calls", len(am.ToolCalls))
		if l.conf.Policy.AfterModel(chat) == End {
			return finish(nil)
		}

		l.state = DispatchingTools
		results, err := l.conf.Dispatcher.Dispatch(ctx, am)
		for _, r := range results {
			l.appendMsg(&chat, r)
			l.log.Debug("tool result", "step", res.Steps, "tool", r.ToolName, "call_id", r.ToolCallID)
		}
		if err != nil {
			return finish(err)
		}
		if l.conf.Policy.AfterTools(chat) == End {
			return finish(nil)
		}
		l.state = AwaitingModel
	}
}

func (l *Loop) appendMsg(chat *pub_models.Chat, msg pub_models.Message) {
	chat.Append(msg)
	if l.conf.OnMessage != nil {
		l.conf.OnMessage(msg)
	}
}

// modelStep optionally asks for user input, then asks the model for exactly one
// reply and appends it
func (l *Loop) modelStep(ctx context.Context, chat *pub_models.Chat) (pub_models.AssistantMessage, error) {
	if l.conf.UserInput != nil {
		um, err := l.conf.UserInput(ctx, *chat)
		if err != nil {
			return pub_models.AssistantMessage{}, fmt.Errorf("failed to get user input: %w", err)
		}
		l.appendMsg(chat, um)
	}

	mCtx := ctx
	if l.conf.ModelTimeout > 0 {
		var cancel context.CancelFunc
		mCtx, cancel = context.WithTimeout(ctx, l.conf.ModelTimeout)
		defer cancel()
	}
	am, err := l.conf.Completer.Complete(mCtx, l.conf.SystemPrompt(), *chat)
	if err != nil {
		// Cancellation by the caller isn't the fault of the model
		if ctxErr := ctx.Err(); ctxErr != nil {
			return pub_models.AssistantMessage{}, ctxErr
		}
		return pub_models.AssistantMessage{}, models.NewExternalServiceError(l.conf.Model, err)
	}
	l.appendMsg(chat, am)
	return am, nil
}
