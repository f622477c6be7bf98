package chat

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	"github.com/baalimago/go_away_boilerplate/pkg/misc"
	"github.com/baalimago/tooloop/internal/utils"
	pub_models "github.com/baalimago/tooloop/pkg/text/models"
)

func FromPath(path string) (pub_models.Chat, error) {
	if misc.Truthy(os.Getenv("DEBUG")) {
		ancli.PrintOK(fmt.Sprintf("reading chat from '%v'\n", path))
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return pub_models.Chat{}, fmt.Errorf("failed to read file: %w", err)
	}
	var chat pub_models.Chat
	err = json.Unmarshal(b, &chat)
	if err != nil {
		return pub_models.Chat{}, fmt.Errorf("failed to decode JSON: %w", err)
	}
	return chat, nil
}

// Save the chat as json at <saveAt>/<chat.ID>.json
func Save(saveAt string, chat pub_models.Chat) error {
	b, err := json.Marshal(chat)
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	if err := os.MkdirAll(saveAt, 0o755); err != nil {
		return fmt.Errorf("failed to create conversations dir: %w", err)
	}
	fileName := filepath.Join(saveAt, chat.ID+".json")
	if misc.Truthy(os.Getenv("DEBUG")) {
		ancli.PrintOK(fmt.Sprintf("saving chat to: '%v', content (on new line):\n'%v'\n", fileName, string(b)))
	}
	return os.WriteFile(fileName, b, 0o644)
}

// IDFromPrompt creates a filesystem friendly id from the first tokens of the prompt
func IDFromPrompt(prompt string) string {
	id := strings.Join(utils.GetFirstTokens(strings.Split(prompt, " "), 5), "_")
	id = strings.ReplaceAll(id, "/", ".")
	id = strings.ReplaceAll(id, "\\", ".")
	return id
}
