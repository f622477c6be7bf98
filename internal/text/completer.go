package text

import (
	"errors"
	"fmt"
	"strings"

	"github.com/baalimago/tooloop/internal/models"
	"github.com/baalimago/tooloop/internal/vendors"
	"github.com/baalimago/tooloop/internal/vendors/ollama"
	"github.com/baalimago/tooloop/internal/vendors/openai"
)

// NewCompleter selects a vendor from the model name and sets it up. 'test' and
// 'mock' select the deterministic mock, 'ollama:<model>' a local ollama
// server, and everything else an OpenAI compatible endpoint.
func NewCompleter(conf Configurations) (models.Completer, error) {
	var c models.Completer
	switch {
	case conf.Model == "":
		return nil, errors.New("no model configured")
	case conf.Model == "test" || conf.Model == "mock":
		c = &vendors.Mock{}
	case strings.HasPrefix(conf.Model, "ollama:"):
		v := ollama.OllamaDefault
		v.Model = strings.TrimPrefix(conf.Model, "ollama:")
		if conf.URL != "" {
			v.URL = conf.URL
		}
		c = &v
	default:
		v := openai.GptDefault
		v.Model = conf.Model
		if conf.URL != "" {
			v.URL = conf.URL
		}
		c = &v
	}
	if err := c.Setup(); err != nil {
		return nil, fmt.Errorf("failed to setup model '%v': %w", conf.Model, err)
	}
	return c, nil
}
