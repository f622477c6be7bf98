package loop

import (
	"fmt"
	"strings"

	pub_models "github.com/baalimago/tooloop/pkg/text/models"
)

type Decision int

const (
	Continue Decision = iota
	End
)

func (d Decision) String() string {
	switch d {
	case Continue:
		return "continue"
	case End:
		return "end"
	default:
		return fmt.Sprintf("Decision(%d)", int(d))
	}
}

// Policy decides if the loop should keep going. AfterModel is consulted once
// the model has replied, AfterTools once every tool call of the turn has a result.
type Policy interface {
	AfterModel(chat pub_models.Chat) Decision
	AfterTools(chat pub_models.Chat) Decision
}

// ToolExhaustion ends the loop as soon as the model answers without tool calls.
type ToolExhaustion struct{}

func (ToolExhaustion) AfterModel(chat pub_models.Chat) Decision {
	am, ok := chat.LastAssistant()
	if !ok || !am.HasToolCalls() {
		return End
	}
	return Continue
}

func (ToolExhaustion) AfterTools(pub_models.Chat) Decision {
	return Continue
}

// ContentMarker ends the loop once the latest tool result contains every
// marker, compared case-insensitively. The model is prompted again otherwise,
// whether or not it called any tools.
type ContentMarker struct {
	// Tool limits the match to results of this tool. Empty matches any tool.
	Tool    string
	Markers []string
}

func (ContentMarker) AfterModel(pub_models.Chat) Decision {
	return Continue
}

func (c ContentMarker) AfterTools(chat pub_models.Chat) Decision {
	last, ok := chat.Last()
	if !ok {
		return Continue
	}
	tr, isToolResult := last.(pub_models.ToolResultMessage)
	if !isToolResult || len(c.Markers) == 0 {
		return Continue
	}
	if c.Tool != "" && tr.ToolName != c.Tool {
		return Continue
	}
	content := strings.ToLower(tr.Content)
	for _, m := range c.Markers {
		if !strings.Contains(content, strings.ToLower(m)) {
			return Continue
		}
	}
	return End
}

// SavedDocumentMarkers match the result of a successful save
var SavedDocumentMarkers = []string{"saved", "document"}

// SavedDocumentTool is the tool whose result the default markers are matched against
const SavedDocumentTool = "save"

// PolicyFromName resolves the policy selector used in configuration files.
// The content-marker policy defaults to the saved document markers, matched
// against results of tool, or of SavedDocumentTool if tool is empty.
func PolicyFromName(name string, markers []string, tool string) (Policy, error) {
	switch name {
	case "", "tool-exhaustion":
		return ToolExhaustion{}, nil
	case "content-marker":
		if len(markers) == 0 {
			markers = SavedDocumentMarkers
		}
		if tool == "" {
			tool = SavedDocumentTool
		}
		return ContentMarker{Tool: tool, Markers: markers}, nil
	default:
		return nil, fmt.Errorf("unknown termination policy: '%v'", name)
	}
}
