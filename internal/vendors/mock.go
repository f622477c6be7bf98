package vendors

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	pub_models "github.com/baalimago/tooloop/pkg/text/models"
)

const mockToolPrefix = "tool "

// Mock is a deterministic Completer. A last user message of the form
// 'tool <name> <json-arguments>' makes it request that tool call. After tool
// results it answers with the content of the last result, otherwise it echoes
// the last user message.
type Mock struct {
	tools []string
}

func (m *Mock) Setup() error {
	return nil
}

func (m *Mock) RegisterTool(tool pub_models.LLMTool) {
	m.tools = append(m.tools, tool.Specification().Name)
}

// Tools returns the names of the registered tools, in registration order
func (m *Mock) Tools() []string {
	return m.tools
}

func (m *Mock) Complete(ctx context.Context, _ string, chat pub_models.Chat) (pub_models.AssistantMessage, error) {
	if err := ctx.Err(); err != nil {
		return pub_models.AssistantMessage{}, err
	}
	last, ok := chat.Last()
	if !ok {
		return pub_models.AssistantMessage{}, nil
	}
	switch msg := last.(type) {
	case pub_models.ToolResultMessage:
		return pub_models.AssistantMessage{Content: msg.Content}, nil
	case pub_models.UserMessage:
		if !strings.HasPrefix(msg.Content, mockToolPrefix) {
			return pub_models.AssistantMessage{Content: msg.Content}, nil
		}
		call, err := parseMockCall(msg.Content, chat.Len())
		if err != nil {
			return pub_models.AssistantMessage{}, err
		}
		return pub_models.AssistantMessage{ToolCalls: []pub_models.Call{call}}, nil
	default:
		return pub_models.AssistantMessage{Content: last.Text()}, nil
	}
}

func parseMockCall(line string, seq int) (pub_models.Call, error) {
	rest := strings.TrimSpace(strings.TrimPrefix(line, mockToolPrefix))
	name, args, _ := strings.Cut(rest, " ")
	if name == "" {
		return pub_models.Call{}, fmt.Errorf("mock tool call without name: '%v'", line)
	}
	input := pub_models.Input{}
	if args = strings.TrimSpace(args); args != "" {
		if err := json.Unmarshal([]byte(args), &input); err != nil {
			return pub_models.Call{}, fmt.Errorf("failed to unmarshal mock tool arguments: %w", err)
		}
	}
	return pub_models.Call{
		ID:     fmt.Sprintf("call_%d", seq),
		Name:   name,
		Inputs: input,
	}, nil
}
