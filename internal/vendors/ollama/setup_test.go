package ollama

import (
	"testing"

	"github.com/baalimago/tooloop/internal/models"
	"github.com/baalimago/tooloop/internal/vendors/vendorstest"
)

func TestSetup(t *testing.T) {
	vendorstest.RunSetupTests(t, "OLLAMA_API_KEY", false, func() models.Completer {
		v := OllamaDefault
		return &v
	})
}

func TestSetup_WithoutKey(t *testing.T) {
	t.Setenv("OLLAMA_API_KEY", "")
	v := OllamaDefault
	if err := v.Setup(); err != nil {
		t.Fatalf("expected setup without key to work, got: %v", err)
	}
}
