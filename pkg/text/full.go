package text

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/baalimago/tooloop/internal/loop"
	priv_models "github.com/baalimago/tooloop/internal/models"
	"github.com/baalimago/tooloop/internal/text"
	"github.com/baalimago/tooloop/internal/tools"
	"github.com/baalimago/tooloop/internal/utils"
	"github.com/baalimago/tooloop/pkg/text/models"
)

// FullResponse text querier, as opposed to returning a stream or something
type FullResponse interface {
	Setup(context.Context) error

	// Query runs the tool loop on the chat until the termination policy ends
	// it. Will cancel on context cancel.
	Query(context.Context, models.Chat) (models.Chat, error)
}

type publicQuerier struct {
	model        string
	url          string
	systemPrompt string
	policy       string
	markers      []string
	markerTool   string
	maxSteps     int
	modelTimeout time.Duration
	llmTools     []models.LLMTool

	completer  priv_models.Completer
	dispatcher *tools.Dispatcher
	pol        loop.Policy
}

// Option configures a publicQuerier.
type Option func(*publicQuerier)

func WithModel(model string) Option {
	return func(pq *publicQuerier) {
		pq.model = model
	}
}

// WithURL overrides the endpoint of the model vendor
func WithURL(url string) Option {
	return func(pq *publicQuerier) {
		pq.url = url
	}
}

func WithSystemPrompt(prompt string) Option {
	return func(pq *publicQuerier) {
		pq.systemPrompt = prompt
	}
}

// WithLLMTools injects concrete LLM tools that the model may call
func WithLLMTools(tools ...models.LLMTool) Option {
	return func(pq *publicQuerier) {
		pq.llmTools = append(pq.llmTools, tools...)
	}
}

// WithPolicy selects the termination policy by name, 'tool-exhaustion' or
// 'content-marker'. Markers are only used by 'content-marker'.
func WithPolicy(name string, markers ...string) Option {
	return func(pq *publicQuerier) {
		pq.policy = name
		pq.markers = markers
	}
}

// WithMarkerTool limits the 'content-marker' policy to results of the named
// tool, which defaults to 'save'
func WithMarkerTool(tool string) Option {
	return func(pq *publicQuerier) {
		pq.markerTool = tool
	}
}

func WithMaxSteps(steps int) Option {
	return func(pq *publicQuerier) {
		pq.maxSteps = steps
	}
}

func WithModelTimeout(timeout time.Duration) Option {
	return func(pq *publicQuerier) {
		pq.modelTimeout = timeout
	}
}

// NewFullResponseQuerier constructs a FullResponse using a default
// configuration plus optional functional options.
//
// Default configuration:
//   - Model:    "gpt-4o-mini"
//   - Policy:   "tool-exhaustion"
//   - MaxSteps: 8
//   - No tools, unless provided via options.
func NewFullResponseQuerier(opts ...Option) FullResponse {
	pq := &publicQuerier{
		model:    "gpt-4o-mini",
		policy:   "tool-exhaustion",
		maxSteps: loop.DefaultMaxSteps,
	}
	for _, opt := range opts {
		opt(pq)
	}
	return pq
}

// Setup the model vendor and register the tools. Calling it again is a no-op.
func (pq *publicQuerier) Setup(ctx context.Context) error {
	if pq.completer != nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	pol, err := loop.PolicyFromName(pq.policy, pq.markers, pq.markerTool)
	if err != nil {
		return fmt.Errorf("failed to select policy: %w", err)
	}
	registry, err := tools.NewRegistry(pq.llmTools...)
	if err != nil {
		return fmt.Errorf("failed to create tool registry: %w", err)
	}
	completer, err := text.NewCompleter(text.Configurations{Model: pq.model, URL: pq.url})
	if err != nil {
		return fmt.Errorf("publicQuerier.Setup failed to create completer: %w", err)
	}
	if tb, ok := completer.(priv_models.ToolBox); ok {
		for _, name := range registry.Names() {
			t, _ := registry.Get(name)
			tb.RegisterTool(t)
		}
	}
	pq.pol = pol
	pq.dispatcher = &tools.Dispatcher{Registry: registry, OutputRuneLimit: text.Default.ToolOutputRuneLimit}
	pq.completer = completer
	return nil
}

// Query the model with some input chat. The returned chat holds every message
// appended by the loop, also when an error is returned, as long as Setup succeeded.
func (pq *publicQuerier) Query(ctx context.Context, inpChat models.Chat) (models.Chat, error) {
	if err := pq.Setup(ctx); err != nil {
		return models.Chat{}, fmt.Errorf("pq.Query failed to Setup: %w", err)
	}
	if inpChat.Len() == 0 {
		return inpChat, errors.New("chat has no messages")
	}
	l, err := loop.New(loop.Config{
		Completer:    pq.completer,
		Model:        pq.model,
		SystemPrompt: func() string { return pq.systemPrompt },
		Dispatcher:   pq.dispatcher,
		Policy:       pq.pol,
		MaxSteps:     pq.maxSteps,
		ModelTimeout: pq.modelTimeout,
		Logger:       utils.NewLogger(os.Stderr),
	})
	if err != nil {
		return inpChat, fmt.Errorf("failed to create loop: %w", err)
	}
	res, err := l.Run(ctx, inpChat)
	if err != nil {
		return res.Chat, fmt.Errorf("failed to run loop: %w", err)
	}
	return res.Chat, nil
}
