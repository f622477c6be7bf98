package document

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Extension appended to saved documents which lack it
const Extension = ".txt"

// State is the document being drafted. It is owned by the caller of the loop
// and handed to the tools which read or mutate it.
type State struct {
	mu      sync.RWMutex
	content string
}

func New(content string) *State {
	return &State{content: content}
}

func (s *State) Content() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.content
}

// Set replaces the whole document
func (s *State) Set(content string) {
	s.mu.Lock()
	s.content = content
	s.mu.Unlock()
}

// PersistenceError is returned when a document could not be written
type PersistenceError struct {
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to save document to '%v': %v", e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// NormalizeFilename appends ext to name, unless name already ends with it
func NormalizeFilename(name, ext string) string {
	if strings.HasSuffix(name, ext) {
		return name
	}
	return name + ext
}

// Save the current content to dir/name, where name is normalized to end with
// Extension. Names which would resolve outside of dir are rejected. Returns
// the path written to.
func (s *State) Save(dir, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", &PersistenceError{Path: dir, Err: fmt.Errorf("filename is empty")}
	}
	name = NormalizeFilename(name, Extension)
	if !filepath.IsLocal(name) {
		return "", &PersistenceError{Path: dir, Err: fmt.Errorf("filename '%v' must stay within the document directory", name)}
	}
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(s.Content()), 0o644); err != nil {
		return p, &PersistenceError{Path: p, Err: err}
	}
	return p, nil
}
