package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Message is one entry of a conversation. The set of implementations is
// closed: SystemMessage, UserMessage, AssistantMessage and ToolResultMessage.
type Message interface {
	// Role as the chat completions api names it
	Role() string
	// Text content of the message
	Text() string
	isMessage()
}

type SystemMessage struct {
	Content string `json:"content"`
}

type UserMessage struct {
	Content string `json:"content"`
}

// AssistantMessage is the reply of a model. ToolCalls is empty when the
// model produced a final answer.
type AssistantMessage struct {
	Content   string `json:"content,omitempty"`
	ToolCalls []Call `json:"tool_calls,omitempty"`
}

// ToolResultMessage carries the output of one tool call back to the model.
type ToolResultMessage struct {
	ToolCallID string `json:"tool_call_id"`
	ToolName   string `json:"tool_name,omitempty"`
	Content    string `json:"content"`
}

func (SystemMessage) isMessage()     {}
func (UserMessage) isMessage()       {}
func (AssistantMessage) isMessage()  {}
func (ToolResultMessage) isMessage() {}

func (SystemMessage) Role() string     { return "system" }
func (UserMessage) Role() string       { return "user" }
func (AssistantMessage) Role() string  { return "assistant" }
func (ToolResultMessage) Role() string { return "tool" }

func (m SystemMessage) Text() string     { return m.Content }
func (m UserMessage) Text() string       { return m.Content }
func (m AssistantMessage) Text() string  { return m.Content }
func (m ToolResultMessage) Text() string { return m.Content }

// HasToolCalls reports if the model asked for more work
func (m AssistantMessage) HasToolCalls() bool {
	return len(m.ToolCalls) > 0
}

// Chat is the conversation state of one run. Messages are only ever appended.
type Chat struct {
	Created  time.Time `json:"created,omitempty"`
	ID       string    `json:"id"`
	Messages []Message `json:"messages"`
}

// Append messages to the end of the chat
func (c *Chat) Append(msgs ...Message) {
	c.Messages = append(c.Messages, msgs...)
}

func (c *Chat) Len() int {
	return len(c.Messages)
}

// Last returns the most recent message, false if the chat is empty
func (c *Chat) Last() (Message, bool) {
	if len(c.Messages) == 0 {
		return nil, false
	}
	return c.Messages[len(c.Messages)-1], true
}

// LastAssistant returns the most recent AssistantMessage
func (c *Chat) LastAssistant() (AssistantMessage, bool) {
	for i := len(c.Messages) - 1; i >= 0; i-- {
		if am, ok := c.Messages[i].(AssistantMessage); ok {
			return am, true
		}
	}
	return AssistantMessage{}, false
}

// LastToolResult returns the most recent ToolResultMessage
func (c *Chat) LastToolResult() (ToolResultMessage, bool) {
	for i := len(c.Messages) - 1; i >= 0; i-- {
		if tr, ok := c.Messages[i].(ToolResultMessage); ok {
			return tr, true
		}
	}
	return ToolResultMessage{}, false
}

// FirstUserMessage returns the first encountered UserMessage
func (c *Chat) FirstUserMessage() (UserMessage, error) {
	for _, msg := range c.Messages {
		if um, ok := msg.(UserMessage); ok {
			return um, nil
		}
	}
	return UserMessage{}, errors.New("failed to find any user message")
}

// Validate checks that every tool result answers exactly one tool call of the
// preceding assistant message, and that every tool call is answered before the
// next assistant message.
func (c *Chat) Validate() error {
	pending := map[string]bool{}
	for i, msg := range c.Messages {
		switch m := msg.(type) {
		case SystemMessage, UserMessage:
		case AssistantMessage:
			if err := unansweredErr(pending); err != nil {
				return fmt.Errorf("message %v: %w", i, err)
			}
			pending = make(map[string]bool, len(m.ToolCalls))
			for _, call := range m.ToolCalls {
				if _, dup := pending[call.ID]; dup {
					return fmt.Errorf("message %v: duplicate tool call id: '%v'", i, call.ID)
				}
				pending[call.ID] = false
			}
		case ToolResultMessage:
			answered, known := pending[m.ToolCallID]
			if !known {
				return fmt.Errorf("message %v: tool result for unknown call id: '%v'", i, m.ToolCallID)
			}
			if answered {
				return fmt.Errorf("message %v: call id: '%v' answered twice", i, m.ToolCallID)
			}
			pending[m.ToolCallID] = true
		default:
			return fmt.Errorf("message %v: unknown message type: %T", i, msg)
		}
	}
	return unansweredErr(pending)
}

func unansweredErr(pending map[string]bool) error {
	for id, answered := range pending {
		if !answered {
			return fmt.Errorf("tool call: '%v' has no result", id)
		}
	}
	return nil
}

// wireMessage is the role-tagged shape used when persisting chats
type wireMessage struct {
	Role       string `json:"role"`
	Content    string `json:"content,omitempty"`
	ToolCalls  []Call `json:"tool_calls,omitempty"`
	ToolCallID string `json:"tool_call_id,omitempty"`
	ToolName   string `json:"tool_name,omitempty"`
}

func toWire(msg Message) (wireMessage, error) {
	switch m := msg.(type) {
	case SystemMessage:
		return wireMessage{Role: m.Role(), Content: m.Content}, nil
	case UserMessage:
		return wireMessage{Role: m.Role(), Content: m.Content}, nil
	case AssistantMessage:
		return wireMessage{Role: m.Role(), Content: m.Content, ToolCalls: m.ToolCalls}, nil
	case ToolResultMessage:
		return wireMessage{Role: m.Role(), Content: m.Content, ToolCallID: m.ToolCallID, ToolName: m.ToolName}, nil
	default:
		return wireMessage{}, fmt.Errorf("unknown message type: %T", msg)
	}
}

func fromWire(w wireMessage) (Message, error) {
	switch w.Role {
	case "system":
		return SystemMessage{Content: w.Content}, nil
	case "user":
		return UserMessage{Content: w.Content}, nil
	case "assistant":
		return AssistantMessage{Content: w.Content, ToolCalls: w.ToolCalls}, nil
	case "tool":
		return ToolResultMessage{ToolCallID: w.ToolCallID, ToolName: w.ToolName, Content: w.Content}, nil
	default:
		return nil, fmt.Errorf("unknown role: '%v'", w.Role)
	}
}

func (c Chat) MarshalJSON() ([]byte, error) {
	msgs := make([]wireMessage, 0, len(c.Messages))
	for _, m := range c.Messages {
		w, err := toWire(m)
		if err != nil {
			return nil, err
		}
		msgs = append(msgs, w)
	}
	return json.Marshal(struct {
		Created  time.Time     `json:"created,omitempty"`
		ID       string        `json:"id"`
		Messages []wireMessage `json:"messages"`
	}{
		Created:  c.Created,
		ID:       c.ID,
		Messages: msgs,
	})
}

func (c *Chat) UnmarshalJSON(b []byte) error {
	var raw struct {
		Created  time.Time     `json:"created,omitempty"`
		ID       string        `json:"id"`
		Messages []wireMessage `json:"messages"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	msgs := make([]Message, 0, len(raw.Messages))
	for i, w := range raw.Messages {
		m, err := fromWire(w)
		if err != nil {
			return fmt.Errorf("message %v: %w", i, err)
		}
		msgs = append(msgs, m)
	}
	c.Created = raw.Created
	c.ID = raw.ID
	c.Messages = msgs
	return nil
}
