package generic

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"slices"
	"strings"

	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	"github.com/baalimago/go_away_boilerplate/pkg/debug"
	pub_models "github.com/baalimago/tooloop/pkg/text/models"
)

var dataPrefix = []byte("data: ")

// Complete sends the system prompt followed by the chat and collects the
// streamed reply into a single assistant message
func (s *StreamCompleter) Complete(ctx context.Context, systemPrompt string, chat pub_models.Chat) (pub_models.AssistantMessage, error) {
	req, err := s.createRequest(ctx, systemPrompt, chat)
	if err != nil {
		return pub_models.AssistantMessage{}, fmt.Errorf("failed to create request: %w", err)
	}
	res, err := s.client.Do(req)
	if err != nil {
		return pub_models.AssistantMessage{}, fmt.Errorf("failed to execute request: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(res.Body)
		return pub_models.AssistantMessage{}, fmt.Errorf("unexpected status code: %v, body: %v", res.Status, string(body))
	}
	am, err := s.readStream(res.Body)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return pub_models.AssistantMessage{}, ctxErr
		}
		return pub_models.AssistantMessage{}, fmt.Errorf("failed to read stream: %w", err)
	}
	return am, nil
}

func toWireMessages(systemPrompt string, chat pub_models.Chat) ([]message, error) {
	ret := make([]message, 0, len(chat.Messages)+1)
	if systemPrompt != "" {
		ret = append(ret, message{Role: "system", Content: &systemPrompt})
	}
	for _, msg := range chat.Messages {
		content := msg.Text()
		switch m := msg.(type) {
		case pub_models.SystemMessage, pub_models.UserMessage:
			ret = append(ret, message{Role: m.Role(), Content: &content})
		case pub_models.AssistantMessage:
			wm := message{Role: m.Role()}
			if content != "" || !m.HasToolCalls() {
				wm.Content = &content
			}
			for i, c := range m.ToolCalls {
				wm.ToolCalls = append(wm.ToolCalls, ToolsCall{
					ID:    c.ID,
					Index: i,
					Type:  "function",
					Function: Func{
						Name:      c.Name,
						Arguments: c.ArgumentsJSON(),
					},
				})
			}
			ret = append(ret, wm)
		case pub_models.ToolResultMessage:
			ret = append(ret, message{Role: m.Role(), Content: &content, ToolCallID: m.ToolCallID})
		default:
			return nil, fmt.Errorf("unknown message type: %T", msg)
		}
	}
	return ret, nil
}

func (s *StreamCompleter) createRequest(ctx context.Context, systemPrompt string, chat pub_models.Chat) (*http.Request, error) {
	msgs, err := toWireMessages(systemPrompt, chat)
	if err != nil {
		return nil, fmt.Errorf("failed to convert messages: %w", err)
	}
	reqData := req{
		Model:       s.Model,
		Messages:    msgs,
		Stream:      true,
		MaxTokens:   s.MaxTokens,
		Temperature: s.Temperature,
		TopP:        s.TopP,
	}
	if len(s.tools) > 0 {
		reqData.Tools = s.tools
		reqData.ToolChoice = s.ToolChoice
	}
	if s.debug {
		ancli.PrintOK(fmt.Sprintf("generic streamcompleter request: %v\n", debug.IndentedJsonFmt(reqData)))
	}
	jsonData, err := json.Marshal(reqData)
	if err != nil {
		return nil, fmt.Errorf("failed to encode JSON: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.URL, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %v", s.apiKey))
	req.Header.Set("Accept", "text/event-stream")
	req.Header.Set("Connection", "keep-alive")
	return req, nil
}

// readStream consumes server sent events until [DONE] or EOF
func (s *StreamCompleter) readStream(body io.Reader) (pub_models.AssistantMessage, error) {
	var content strings.Builder
	pending := make(map[int]*pendingCall)
	br := bufio.NewReader(body)
	for {
		token, err := br.ReadBytes('\n')
		if len(token) > 0 {
			done, chunkErr := s.handleStreamChunk(token, &content, pending)
			if chunkErr != nil {
				return pub_models.AssistantMessage{}, chunkErr
			}
			if done {
				break
			}
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return pub_models.AssistantMessage{}, fmt.Errorf("failed to read line: %w", err)
		}
	}
	calls, err := collectCalls(pending)
	if err != nil {
		return pub_models.AssistantMessage{}, err
	}
	return pub_models.AssistantMessage{Content: content.String(), ToolCalls: calls}, nil
}

// handleStreamChunk folds one event line into the reply under construction.
// It returns true once the stream signals that it's done.
func (s *StreamCompleter) handleStreamChunk(token []byte, content *strings.Builder, pending map[int]*pendingCall) (bool, error) {
	token = bytes.TrimSpace(token)
	if !bytes.HasPrefix(token, dataPrefix) {
		// Comments, event names and keep-alives
		return false, nil
	}
	token = bytes.TrimSpace(bytes.TrimPrefix(token, dataPrefix))
	if string(token) == "[DONE]" {
		return true, nil
	}
	if s.debug {
		ancli.PrintOK(fmt.Sprintf("token: %+v\n", string(token)))
	}
	var chunk chatCompletionChunk
	if err := json.Unmarshal(token, &chunk); err != nil {
		if s.debug {
			ancli.PrintWarn(fmt.Sprintf("failed to unmarshal token: %v, err: %v\n", string(token), err))
		}
		return false, nil
	}
	if chunk.Error != nil {
		return false, fmt.Errorf("stream returned error: %w", chunk.Error)
	}
	for _, choice := range chunk.Choices {
		if choice.Delta.Content != "" {
			content.WriteString(choice.Delta.Content)
			if s.OnToken != nil {
				s.OnToken(choice.Delta.Content)
			}
		}
		for _, tc := range choice.Delta.ToolCalls {
			p, exists := pending[tc.Index]
			if !exists {
				p = &pendingCall{}
				pending[tc.Index] = p
			}
			// Id and name are only present in the first chunk of each call
			if tc.ID != "" {
				p.id = tc.ID
			}
			if tc.Function.Name != "" {
				p.name = tc.Function.Name
			}
			p.args += tc.Function.Arguments
		}
	}
	return false, nil
}

// collectCalls decodes the pending calls in index order. Arguments which
// aren't valid JSON are kept raw on the call, for the dispatcher to reject.
func collectCalls(pending map[int]*pendingCall) ([]pub_models.Call, error) {
	if len(pending) == 0 {
		return nil, nil
	}
	indices := make([]int, 0, len(pending))
	for i := range pending {
		indices = append(indices, i)
	}
	slices.Sort(indices)
	calls := make([]pub_models.Call, 0, len(indices))
	for _, i := range indices {
		p := pending[i]
		call := pub_models.Call{ID: p.id, Name: p.name, Inputs: pub_models.Input{}}
		if strings.TrimSpace(p.args) != "" {
			if err := json.Unmarshal([]byte(p.args), &call.Inputs); err != nil {
				call.Inputs = nil
				call.RawArguments = p.args
			}
		}
		calls = append(calls, call)
	}
	return calls, nil
}
