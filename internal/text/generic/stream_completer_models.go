package generic

import (
	"fmt"
	"net/http"

	pub_models "github.com/baalimago/tooloop/pkg/text/models"
)

// StreamCompleter is a client for OpenAI compatible chat completion endpoints
// which stream their replies as server sent events
type StreamCompleter struct {
	Model       string
	MaxTokens   *int
	Temperature *float64
	TopP        *float64
	ToolChoice  *string
	URL         string
	// OnToken, if set, receives every content token as it arrives
	OnToken func(string) `json:"-"`

	tools  []ToolSuper
	client *http.Client
	apiKey string
	debug  bool
}

type ToolSuper struct {
	Type     string `json:"type"`
	Function Tool   `json:"function"`
}

type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Inputs      pub_models.InputSchema `json:"parameters"`
}

type chatCompletionChunk struct {
	ID      string   `json:"id"`
	Object  string   `json:"object"`
	Created int      `json:"created"`
	Model   string   `json:"model"`
	Choices []Choice `json:"choices"`
	// Error is set when the vendor fails mid stream
	Error *streamError `json:"error,omitempty"`
}

type streamError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	// Code is a string for some vendors and a number for others
	Code any `json:"code"`
}

func (e *streamError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "no message"
	}
	if e.Type != "" {
		msg = e.Type + ": " + msg
	}
	if e.Code != nil {
		msg = fmt.Sprintf("%v (code: %v)", msg, e.Code)
	}
	return msg
}

type Choice struct {
	Index        int    `json:"index"`
	Delta        Delta  `json:"delta"`
	FinishReason string `json:"finish_reason"`
}

type Delta struct {
	Content   string      `json:"content"`
	Role      string      `json:"role"`
	ToolCalls []ToolsCall `json:"tool_calls"`
}

type ToolsCall struct {
	Function Func   `json:"function"`
	ID       string `json:"id,omitempty"`
	Index    int    `json:"index"`
	Type     string `json:"type,omitempty"`
}

type Func struct {
	Arguments string `json:"arguments"`
	Name      string `json:"name,omitempty"`
}

// message is a chat message as the endpoint expects it
type message struct {
	Role       string      `json:"role"`
	Content    *string     `json:"content"`
	ToolCalls  []ToolsCall `json:"tool_calls,omitempty"`
	ToolCallID string      `json:"tool_call_id,omitempty"`
}

type req struct {
	Model       string      `json:"model,omitempty"`
	Messages    []message   `json:"messages"`
	Stream      bool        `json:"stream"`
	MaxTokens   *int        `json:"max_tokens,omitempty"`
	Temperature *float64    `json:"temperature,omitempty"`
	TopP        *float64    `json:"top_p,omitempty"`
	ToolChoice  *string     `json:"tool_choice,omitempty"`
	Tools       []ToolSuper `json:"tools,omitempty"`
}

// pendingCall is a tool call under construction. Its arguments arrive as
// fragments of a json string, spread over many chunks.
type pendingCall struct {
	id   string
	name string
	args string
}
