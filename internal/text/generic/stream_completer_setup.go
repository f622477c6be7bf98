package generic

import (
	"fmt"
	"net/http"
	"os"

	"github.com/baalimago/go_away_boilerplate/pkg/misc"
	pub_models "github.com/baalimago/tooloop/pkg/text/models"
)

// Setup the completer with the api key found in apiKeyEnv. url is used unless
// URL already is set.
func (s *StreamCompleter) Setup(apiKeyEnv, url, debugEnv string) error {
	apiKey := os.Getenv(apiKeyEnv)
	if apiKey == "" {
		return fmt.Errorf("environment variable '%v' not set", apiKeyEnv)
	}
	if s.client == nil {
		s.client = &http.Client{}
	}
	s.apiKey = apiKey
	if s.URL == "" {
		s.URL = url
	}

	if misc.Truthy(os.Getenv("DEBUG")) || misc.Truthy(os.Getenv(debugEnv)) {
		s.debug = true
	}
	return nil
}

func (s *StreamCompleter) RegisterTool(tool pub_models.LLMTool) {
	s.tools = append(s.tools, ToolSuper{
		Type:     "function",
		Function: convertToGenericTool(tool.Specification()),
	})
}

func convertToGenericTool(spec pub_models.Specification) Tool {
	inputs := pub_models.InputSchema{}
	if spec.Inputs != nil {
		inputs = *spec.Inputs
	}
	inputs.Patch()
	return Tool{
		Name:        spec.Name,
		Description: spec.Description,
		Inputs:      inputs,
	}
}
