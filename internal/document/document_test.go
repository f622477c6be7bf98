package document

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/baalimago/go_away_boilerplate/pkg/testboil"
)

func TestNormalizeFilename(t *testing.T) {
	tcs := []struct {
		given string
		want  string
	}{
		{given: "notes", want: "notes.txt"},
		{given: "notes.txt", want: "notes.txt"},
		{given: "notes.md", want: "notes.md.txt"},
		{given: "archive.txt.bak", want: "archive.txt.bak.txt"},
	}
	for _, tc := range tcs {
		t.Run(tc.given, func(t *testing.T) {
			testboil.FailTestIfDiff(t, NormalizeFilename(tc.given, Extension), tc.want)
		})
	}
}

func TestState_Save(t *testing.T) {
	dir := t.TempDir()
	s := New("")
	s.Set("hello")

	got, err := s.Save(dir, "notes")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testboil.FailTestIfDiff(t, got, filepath.Join(dir, "notes.txt"))
	b, err := os.ReadFile(got)
	if err != nil {
		t.Fatalf("failed to read saved file: %v", err)
	}
	testboil.FailTestIfDiff(t, string(b), "hello")
}

func TestState_Save_Errors(t *testing.T) {
	s := New("content")
	t.Run("empty name", func(t *testing.T) {
		_, err := s.Save(t.TempDir(), "  ")
		var pe *PersistenceError
		if !errors.As(err, &pe) {
			t.Fatalf("expected PersistenceError, got: %v", err)
		}
	})

	t.Run("names leaving the directory", func(t *testing.T) {
		parent := t.TempDir()
		dir := filepath.Join(parent, "docs")
		if err := os.Mkdir(dir, 0o755); err != nil {
			t.Fatalf("setup failed: %v", err)
		}
		for _, name := range []string{"../x", "a/../../x", "/etc/x"} {
			_, err := s.Save(dir, name)
			var pe *PersistenceError
			if !errors.As(err, &pe) {
				t.Fatalf("expected PersistenceError for %q, got: %v", name, err)
			}
		}
		if _, err := os.Stat(filepath.Join(parent, "x.txt")); !errors.Is(err, os.ErrNotExist) {
			t.Fatalf("expected nothing written outside dir, stat err: %v", err)
		}
	})

	t.Run("subpath inside the directory", func(t *testing.T) {
		dir := t.TempDir()
		got, err := s.Save(dir, "a/../notes")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		testboil.FailTestIfDiff(t, got, filepath.Join(dir, "notes.txt"))
	})

	t.Run("missing directory", func(t *testing.T) {
		_, err := s.Save(filepath.Join(t.TempDir(), "does", "not", "exist"), "notes")
		var pe *PersistenceError
		if !errors.As(err, &pe) {
			t.Fatalf("expected PersistenceError, got: %v", err)
		}
		if !errors.Is(err, os.ErrNotExist) {
			t.Fatalf("expected wrapped os.ErrNotExist, got: %v", err)
		}
	})
}

func TestState_ConcurrentAccess(t *testing.T) {
	s := New("")
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Set("x")
			_ = s.Content()
		}()
	}
	wg.Wait()
	testboil.FailTestIfDiff(t, s.Content(), "x")
}
