package internal

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/baalimago/tooloop/internal/text"
	"github.com/baalimago/tooloop/internal/utils"
)

func TestGetModeFromArgs(t *testing.T) {
	tcs := map[string]Mode{
		"compute": COMPUTE, "c": COMPUTE,
		"draft": DRAFT, "d": DRAFT,
		"memory": MEMORY, "m": MEMORY,
		"bot": BOT, "b": BOT,
		"help": HELP, "h": HELP,
		"version": VERSION, "v": VERSION,
	}
	for cmd, want := range tcs {
		got, err := getModeFromArgs(cmd)
		if err != nil || got != want {
			t.Errorf("getModeFromArgs(%q) = %v, %v, want %v", cmd, got, err, want)
		}
	}
	if _, err := getModeFromArgs("photo"); err == nil {
		t.Error("expected error for unknown command")
	}
}

func TestSetup_Modes(t *testing.T) {
	t.Setenv("TOOLOOP_CONFIG_DIR", t.TempDir())
	tcs := []struct {
		args []string
		want any
	}{
		{args: []string{"-cm", "test", "compute", "hello"}, want: &text.Computer{}},
		{args: []string{"-cm", "test", "draft"}, want: &text.Drafter{}},
		{args: []string{"-cm", "test", "memory"}, want: &text.Rememberer{}},
		{args: []string{"-cm", "test", "bot"}, want: &text.Bot{}},
	}
	for _, tc := range tcs {
		t.Run(tc.args[2], func(t *testing.T) {
			r, err := Setup(context.Background(), "usage", tc.args)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			switch tc.want.(type) {
			case *text.Computer:
				_, ok := r.(*text.Computer)
				if !ok {
					t.Fatalf("expected computer, got: %T", r)
				}
			case *text.Drafter:
				if _, ok := r.(*text.Drafter); !ok {
					t.Fatalf("expected drafter, got: %T", r)
				}
			case *text.Rememberer:
				if _, ok := r.(*text.Rememberer); !ok {
					t.Fatalf("expected rememberer, got: %T", r)
				}
			case *text.Bot:
				if _, ok := r.(*text.Bot); !ok {
					t.Fatalf("expected bot, got: %T", r)
				}
			}
		})
	}
}

func TestSetup_CreatesConfig(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "tooloop")
	t.Setenv("TOOLOOP_CONFIG_DIR", dir)
	if _, err := Setup(context.Background(), "usage", []string{"-cm", "test", "bot"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "textConfig.json")); err != nil {
		t.Fatalf("expected config file: %v", err)
	}
}

func TestSetup_HelpExits(t *testing.T) {
	_, err := Setup(context.Background(), "", []string{"help"})
	if !errors.Is(err, utils.ErrUserInitiatedExit) {
		t.Fatalf("expected user initiated exit, got: %v", err)
	}
}

func TestSetup_Errors(t *testing.T) {
	t.Setenv("TOOLOOP_CONFIG_DIR", t.TempDir())
	if _, err := Setup(context.Background(), "", []string{}); err == nil {
		t.Fatal("expected error without command")
	}
	if _, err := Setup(context.Background(), "", []string{"nope"}); err == nil {
		t.Fatal("expected error for unknown command")
	}
	if _, err := Setup(context.Background(), "", []string{"-cm", "test", "-to", "whenever", "bot"}); err == nil {
		t.Fatal("expected error for bad timeout")
	}
}
