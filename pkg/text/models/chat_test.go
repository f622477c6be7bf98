package models

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestChatJSON(t *testing.T) {
	orig := Chat{
		Created: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		ID:      "my_chat",
		Messages: []Message{
			SystemMessage{Content: "be helpful"},
			UserMessage{Content: "what is 10 + 5?"},
			AssistantMessage{ToolCalls: []Call{{ID: "c1", Name: "add", Inputs: Input{"a": 10.0, "b": 5.0}}}},
			ToolResultMessage{ToolCallID: "c1", ToolName: "add", Content: "15"},
			AssistantMessage{Content: "15"},
		},
	}
	b, err := json.Marshal(orig)
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}
	if !strings.Contains(string(b), `"role":"tool"`) {
		t.Fatalf("expected role tag in output, got: %s", b)
	}
	var got Chat
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}
	if !reflect.DeepEqual(got, orig) {
		t.Fatalf("roundtrip mismatch.\ngot:  %+v\nwant: %+v", got, orig)
	}
}

func TestChatJSON_UnknownRole(t *testing.T) {
	var c Chat
	err := json.Unmarshal([]byte(`{"id":"x","messages":[{"role":"wizard","content":"hi"}]}`), &c)
	if err == nil {
		t.Fatal("expected error for unknown role")
	}
}

func TestChatHelpers(t *testing.T) {
	c := Chat{}
	if _, ok := c.Last(); ok {
		t.Fatal("expected no last message on empty chat")
	}
	if _, ok := c.LastAssistant(); ok {
		t.Fatal("expected no assistant message on empty chat")
	}
	c.Append(
		UserMessage{Content: "hi"},
		AssistantMessage{Content: "first"},
		ToolResultMessage{ToolCallID: "1", Content: "res"},
		AssistantMessage{Content: "second"},
	)
	if c.Len() != 4 {
		t.Fatalf("expected 4 messages, got: %v", c.Len())
	}
	last, _ := c.Last()
	if last.Text() != "second" || last.Role() != "assistant" {
		t.Fatalf("unexpected last message: %+v", last)
	}
	am, _ := c.LastAssistant()
	if am.Content != "second" {
		t.Fatalf("unexpected last assistant: %+v", am)
	}
	tr, ok := c.LastToolResult()
	if !ok || tr.Content != "res" {
		t.Fatalf("unexpected last tool result: %+v", tr)
	}
	um, err := c.FirstUserMessage()
	if err != nil || um.Content != "hi" {
		t.Fatalf("unexpected first user message: %+v, err: %v", um, err)
	}
}

func TestChatValidate(t *testing.T) {
	call := func(id string) Call { return Call{ID: id, Name: "add"} }
	tcs := []struct {
		desc    string
		given   []Message
		wantErr bool
	}{
		{
			desc:  "empty chat",
			given: nil,
		},
		{
			desc: "all calls answered in order",
			given: []Message{
				UserMessage{Content: "q"},
				AssistantMessage{ToolCalls: []Call{call("a"), call("b")}},
				ToolResultMessage{ToolCallID: "a"},
				ToolResultMessage{ToolCallID: "b"},
				AssistantMessage{Content: "done"},
			},
		},
		{
			desc: "result without call",
			given: []Message{
				UserMessage{Content: "q"},
				ToolResultMessage{ToolCallID: "a"},
			},
			wantErr: true,
		},
		{
			desc: "call answered twice",
			given: []Message{
				AssistantMessage{ToolCalls: []Call{call("a")}},
				ToolResultMessage{ToolCallID: "a"},
				ToolResultMessage{ToolCallID: "a"},
			},
			wantErr: true,
		},
		{
			desc: "unanswered call before next assistant message",
			given: []Message{
				AssistantMessage{ToolCalls: []Call{call("a"), call("b")}},
				ToolResultMessage{ToolCallID: "a"},
				AssistantMessage{Content: "done"},
			},
			wantErr: true,
		},
		{
			desc: "unanswered trailing call",
			given: []Message{
				AssistantMessage{ToolCalls: []Call{call("a")}},
			},
			wantErr: true,
		},
	}
	for _, tc := range tcs {
		t.Run(tc.desc, func(t *testing.T) {
			c := Chat{Messages: tc.given}
			err := c.Validate()
			if tc.wantErr && err == nil {
				t.Fatal("expected error, got nil")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
