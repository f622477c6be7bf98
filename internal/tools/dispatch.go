package tools

import (
	"context"
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	"github.com/baalimago/go_away_boilerplate/pkg/debug"
	"github.com/baalimago/go_away_boilerplate/pkg/misc"
	pub_models "github.com/baalimago/tooloop/pkg/text/models"
)

// EmptyResponse is sent instead of empty tool output, which some vendors reject
const EmptyResponse = "<EMPTY-RESPONSE>"

// Dispatcher executes the tool calls of an assistant message against a Registry
type Dispatcher struct {
	Registry *Registry
	// OutputRuneLimit truncates tool output longer than this. Zero means no limit.
	OutputRuneLimit int
}

func limitToolOutput(out string, limit int) string {
	if limit <= 0 {
		return out
	}
	amRunes := utf8.RuneCountInString(out)
	if amRunes <= limit {
		return out
	}
	return fmt.Sprintf(
		"%v... and %v more characters. The tool's output has been restricted as it's too long. Please concentrate your tool calls to reduce the amount of tokens used!",
		string([]rune(out)[:limit]), amRunes-limit)
}

// Invoke a single call, returning the error typed as either UnknownToolError
// or ToolExecutionError
func (d *Dispatcher) Invoke(call pub_models.Call) (string, error) {
	t, exists := d.Registry.Get(call.Name)
	if !exists {
		return "", &UnknownToolError{Name: call.Name}
	}
	if misc.Truthy(os.Getenv("DEBUG_CALL")) {
		ancli.Noticef("Invoke call: %v", debug.IndentedJsonFmt(call))
	}
	if err := call.DecodeArguments(); err != nil {
		return "", &ToolExecutionError{Name: call.Name, Binding: true, Err: err}
	}
	inp := call.Inputs
	if inp == nil {
		inp = pub_models.Input{}
	}
	if err := Validate(t.Specification(), inp); err != nil {
		return "", &ToolExecutionError{Name: call.Name, Binding: true, Err: err}
	}
	out, err := t.Call(inp)
	if err != nil {
		return "", &ToolExecutionError{Name: call.Name, Err: err}
	}
	return out, nil
}

// Dispatch every tool call of am, sequentially and in the order they were
// requested. Exactly one result is produced per call. Tool failures are
// returned to the model as error text, only context cancellation aborts.
func (d *Dispatcher) Dispatch(ctx context.Context, am pub_models.AssistantMessage) ([]pub_models.ToolResultMessage, error) {
	results := make([]pub_models.ToolResultMessage, 0, len(am.ToolCalls))
	for _, call := range am.ToolCalls {
		if err := ctx.Err(); err != nil {
			return results, fmt.Errorf("dispatch aborted before tool: '%v': %w", call.Name, err)
		}
		out, err := d.Invoke(call)
		if err != nil {
			var unknown *UnknownToolError
			if errors.As(err, &unknown) {
				ancli.PrintWarn(fmt.Sprintf("model requested unknown tool: '%v'\n", call.Name))
			}
			out = "ERROR: " + err.Error()
		}
		out = limitToolOutput(out, d.OutputRuneLimit)
		if out == "" {
			out = EmptyResponse
		}
		results = append(results, pub_models.ToolResultMessage{
			ToolCallID: call.ID,
			ToolName:   call.Name,
			Content:    out,
		})
	}
	return results, nil
}
