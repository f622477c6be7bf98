package agent

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/baalimago/tooloop/pkg/text"
	"github.com/baalimago/tooloop/pkg/text/models"
)

type Agent struct {
	name         string
	model        string
	systemPrompt string
	prompt       string
	tools        []models.LLMTool
	policy       string
	markers      []string
	maxSteps     int

	querierCreator func(opts ...text.Option) text.FullResponse

	out io.Writer

	querier text.FullResponse
}

var defaultConf = Agent{
	name:           "agent",
	model:          "gpt-4o-mini",
	prompt:         "Uh-oh. Something is not quite right. Please ask the user to overlook their agentic setup, and to update the prompt.",
	tools:          make([]models.LLMTool, 0),
	policy:         "tool-exhaustion",
	querierCreator: text.NewFullResponseQuerier,
	out:            os.Stdout,
}

type Option func(*Agent)

func New(options ...Option) Agent {
	conf := defaultConf
	for _, o := range options {
		o(&conf)
	}
	return conf
}

func WithName(name string) Option {
	return func(a *Agent) {
		a.name = name
	}
}

func WithModel(model string) Option {
	return func(a *Agent) {
		a.model = model
	}
}

// WithPrompt sets the user message which starts every run
func WithPrompt(prompt string) Option {
	return func(a *Agent) {
		a.prompt = prompt
	}
}

func WithSystemPrompt(prompt string) Option {
	return func(a *Agent) {
		a.systemPrompt = prompt
	}
}

func WithTools(tools []models.LLMTool) Option {
	return func(a *Agent) {
		a.tools = tools
	}
}

// WithPolicy selects the termination policy by name, see text.WithPolicy
func WithPolicy(name string, markers ...string) Option {
	return func(a *Agent) {
		a.policy = name
		a.markers = markers
	}
}

func WithMaxSteps(am int) Option {
	return func(a *Agent) {
		a.maxSteps = am
	}
}

// WithOutputTo sets where Start writes the answer of each run
func WithOutputTo(out io.Writer) Option {
	return func(a *Agent) {
		a.out = out
	}
}

func (a *Agent) querierOptions() []text.Option {
	opts := []text.Option{
		text.WithModel(a.model),
		text.WithSystemPrompt(a.systemPrompt),
		text.WithLLMTools(a.tools...),
		text.WithPolicy(a.policy, a.markers...),
	}
	if a.maxSteps > 0 {
		opts = append(opts, text.WithMaxSteps(a.maxSteps))
	}
	return opts
}

func (a *Agent) Setup(ctx context.Context) error {
	querier := a.querierCreator(a.querierOptions()...)
	if err := querier.Setup(ctx); err != nil {
		return fmt.Errorf("agent.Setup failed to setup querier: %w", err)
	}
	a.querier = querier
	return nil
}
