package utils

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"slices"
	"strings"
	"sync"

	"golang.org/x/term"
)

var ErrUserInitiatedExit = errors.New("user initiated exit")

var quitters = []string{"q", "quit", "exit"}

type line struct {
	text string
	err  error
}

// LineReader reads user input line by line. Lines are read by a single
// background goroutine, so a cancelled read never loses the line that follows.
type LineReader struct {
	src   io.Reader
	once  sync.Once
	lines chan line
}

func NewLineReader(src io.Reader) *LineReader {
	return &LineReader{src: src, lines: make(chan line)}
}

func (lr *LineReader) start() {
	go func() {
		reader := bufio.NewReader(lr.src)
		for {
			text, err := reader.ReadString('\n')
			if err != nil {
				// Deliver a final unterminated line before the error
				if text != "" {
					lr.lines <- line{text: text}
				}
				lr.lines <- line{err: err}
				return
			}
			lr.lines <- line{text: text}
		}
	}()
}

// ReadLine blocks until a line is available, the context is done or the user
// interrupts. Quit words, EOF and interrupts all yield ErrUserInitiatedExit.
func (lr *LineReader) ReadLine(ctx context.Context) (string, error) {
	lr.once.Do(lr.start)
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt)
	defer signal.Stop(sigChan)

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-sigChan:
		return "", ErrUserInitiatedExit
	case l := <-lr.lines:
		if l.err != nil {
			// Keep returning the terminal error on subsequent reads
			go func() { lr.lines <- l }()
			if errors.Is(l.err, io.EOF) {
				return "", ErrUserInitiatedExit
			}
			return "", fmt.Errorf("failed to read user input: %w", l.err)
		}
		trimmed := strings.TrimSpace(l.text)
		if slices.Contains(quitters, strings.ToLower(trimmed)) {
			return "", ErrUserInitiatedExit
		}
		return trimmed, nil
	}
}

var (
	stdinOnce   sync.Once
	stdinReader *LineReader
)

// consoleInput is the terminal when stdin is one, and stdin otherwise
func consoleInput() io.Reader {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		tty, err := os.Open("/dev/tty")
		if err == nil {
			return tty
		}
	}
	return os.Stdin
}

// ReadUserInput from the console
func ReadUserInput(ctx context.Context) (string, error) {
	stdinOnce.Do(func() {
		stdinReader = NewLineReader(consoleInput())
	})
	return stdinReader.ReadLine(ctx)
}
