package chat

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	pub_models "github.com/baalimago/tooloop/pkg/text/models"
)

const (
	userPrefix = "User:"
	aiPrefix   = "AI:"
	// EndMarker is written after the last message of a saved log
	EndMarker = "End of conversation."
)

// ErrLogUnreadable is returned by LoadLog when the log exists but couldn't be read
var ErrLogUnreadable = errors.New("conversation log is unreadable")

// LoadLog reads a conversation log written by SaveLog. A missing file yields an
// empty chat. Other read errors yield an empty chat and an error wrapping
// ErrLogUnreadable, so that the caller can start anyway without overwriting
// the log later.
func LoadLog(path string) (pub_models.Chat, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			ancli.Noticef("file %v not found. Starting with an empty conversation history.\n", path)
			return pub_models.Chat{}, nil
		}
		return pub_models.Chat{}, fmt.Errorf("%w: %w", ErrLogUnreadable, err)
	}
	defer f.Close()

	chat := pub_models.Chat{}
	br := bufio.NewReader(f)
	for {
		raw, err := br.ReadString('\n')
		line := strings.TrimSpace(raw)
		switch {
		case strings.HasPrefix(line, userPrefix):
			chat.Append(pub_models.UserMessage{Content: unescape(strings.TrimSpace(strings.TrimPrefix(line, userPrefix)))})
		case strings.HasPrefix(line, aiPrefix):
			chat.Append(pub_models.AssistantMessage{Content: unescape(strings.TrimSpace(strings.TrimPrefix(line, aiPrefix)))})
		}
		if errors.Is(err, io.EOF) {
			return chat, nil
		}
		if err != nil {
			return pub_models.Chat{}, fmt.Errorf("%w: %w", ErrLogUnreadable, err)
		}
	}
}

var (
	escaper   = strings.NewReplacer(`\`, `\\`, "\n", `\n`, "\r", `\r`)
	unescaper = strings.NewReplacer(`\\`, `\`, `\n`, "\n", `\r`, "\r")
)

// escape keeps each message on a single line of the log
func escape(s string) string {
	return escaper.Replace(s)
}

func unescape(s string) string {
	return unescaper.Replace(s)
}

// SaveLog writes the user and assistant messages of chat, one per line, followed
// by a blank line and the EndMarker. Backslashes and line breaks inside a
// message are escaped. Tool traffic is not part of the log.
func SaveLog(path string, chat pub_models.Chat) error {
	var sb strings.Builder
	for _, msg := range chat.Messages {
		switch m := msg.(type) {
		case pub_models.UserMessage:
			fmt.Fprintf(&sb, "%v %v\n", userPrefix, escape(m.Content))
		case pub_models.AssistantMessage:
			if m.Content == "" {
				continue
			}
			fmt.Fprintf(&sb, "%v %v\n", aiPrefix, escape(m.Content))
		case pub_models.SystemMessage, pub_models.ToolResultMessage:
		default:
			return fmt.Errorf("unknown message type: %T", msg)
		}
	}
	sb.WriteString("\n" + EndMarker + "\n")
	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write conversation log: %w", err)
	}
	return nil
}
