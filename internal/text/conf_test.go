package text

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/baalimago/go_away_boilerplate/pkg/testboil"
	"github.com/baalimago/tooloop/internal/vendors"
	"github.com/baalimago/tooloop/internal/vendors/ollama"
	"github.com/baalimago/tooloop/internal/vendors/openai"
)

func TestDraftPrompt(t *testing.T) {
	c := Configurations{DraftPrompt: "doc: {{document}}!"}
	testboil.FailTestIfDiff(t, c.draftPrompt("hello"), "doc: hello!")
	c.DraftPrompt = "no placeholder"
	testboil.FailTestIfDiff(t, c.draftPrompt("hello"), "no placeholder\n\nThe current document content is: hello")
}

func TestModelTimeout(t *testing.T) {
	got, err := Configurations{ModelTimeout: "90s"}.modelTimeout()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testboil.FailTestIfDiff(t, got, 90*time.Second)
	got, err = Configurations{}.modelTimeout()
	if err != nil || got != 0 {
		t.Fatalf("expected no timeout, got: %v, err: %v", got, err)
	}
	if _, err := (Configurations{ModelTimeout: "later"}).modelTimeout(); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestConversationLogPath(t *testing.T) {
	c := Configurations{ConfigDir: "/conf", ConversationLog: "log.txt"}
	testboil.FailTestIfDiff(t, c.conversationLogPath(), filepath.Join("/conf", "log.txt"))
	c.ConversationLog = "/abs/log.txt"
	testboil.FailTestIfDiff(t, c.conversationLogPath(), "/abs/log.txt")
}

func TestNewCompleter(t *testing.T) {
	t.Run("mock", func(t *testing.T) {
		c, err := NewCompleter(Configurations{Model: "test"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := c.(*vendors.Mock); !ok {
			t.Fatalf("expected mock, got: %T", c)
		}
	})
	t.Run("no model", func(t *testing.T) {
		if _, err := NewCompleter(Configurations{}); err == nil {
			t.Fatal("expected error")
		}
	})
	t.Run("openai without key", func(t *testing.T) {
		t.Setenv("OPENAI_API_KEY", "")
		if _, err := NewCompleter(Configurations{Model: "gpt-4o-mini"}); err == nil {
			t.Fatal("expected error without api key")
		}
	})
	t.Run("openai", func(t *testing.T) {
		t.Setenv("OPENAI_API_KEY", "k")
		c, err := NewCompleter(Configurations{Model: "gpt-4o", URL: "http://localhost:9999"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		gpt, ok := c.(*openai.ChatGPT)
		if !ok {
			t.Fatalf("expected ChatGPT, got: %T", c)
		}
		testboil.FailTestIfDiff(t, gpt.Model, "gpt-4o")
		testboil.FailTestIfDiff(t, gpt.StreamCompleter.URL, "http://localhost:9999")
	})
	t.Run("ollama", func(t *testing.T) {
		t.Setenv("OLLAMA_API_KEY", "")
		c, err := NewCompleter(Configurations{Model: "ollama:qwen3"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		o, ok := c.(*ollama.Ollama)
		if !ok {
			t.Fatalf("expected Ollama, got: %T", c)
		}
		testboil.FailTestIfDiff(t, o.Model, "qwen3")
	})
}
