package text

import (
	"context"
	"fmt"
	"time"

	"github.com/baalimago/tooloop/internal/document"
	"github.com/baalimago/tooloop/internal/loop"
	"github.com/baalimago/tooloop/internal/models"
	pub_models "github.com/baalimago/tooloop/pkg/text/models"
	"github.com/baalimago/tooloop/pkg/tools"
)

const (
	draftOpening = "I'm ready to start drafting. what would you like me to do?"
	draftAsk     = "What would you like me to do with the document? "
)

// Drafter edits one document together with the user. The user is asked for
// input before every model step and the session ends once the document has
// been saved.
type Drafter struct {
	s      *session
	doc    *document.State
	policy loop.Policy
}

func NewDrafter(conf Configurations, completer models.Completer) (*Drafter, error) {
	policy, err := loop.PolicyFromName(conf.DraftPolicy, conf.SavedMarkers, conf.MarkerTool)
	if err != nil {
		return nil, fmt.Errorf("failed to select draft policy: %w", err)
	}
	doc := document.New("")
	s, err := newSession(conf, completer, tools.NewUpdate(doc), tools.NewSave(doc, conf.DocumentDir))
	if err != nil {
		return nil, err
	}
	return &Drafter{s: s, doc: doc, policy: policy}, nil
}

// userInput opens with a fixed message, then asks the user
func (d *Drafter) userInput(ctx context.Context, chat pub_models.Chat) (pub_models.UserMessage, error) {
	if chat.Len() == 0 {
		return pub_models.UserMessage{Content: draftOpening}, nil
	}
	d.s.conf.printMsg("\n" + draftAsk)
	text, err := d.s.conf.readInput(ctx)
	if err != nil {
		return pub_models.UserMessage{}, err
	}
	return pub_models.UserMessage{Content: text}, nil
}

func (d *Drafter) Run(ctx context.Context) error {
	l, err := d.s.newLoop(loopOptions{
		systemPrompt: func() string { return d.s.conf.draftPrompt(d.doc.Content()) },
		policy:       d.policy,
		userInput:    d.userInput,
		maxSteps:     d.s.conf.DraftMaxSteps,
	})
	if err != nil {
		return fmt.Errorf("failed to create loop: %w", err)
	}
	d.s.conf.printMsg("===== DRAFTER =====\n")
	created := time.Now()
	res, err := l.Run(ctx, pub_models.Chat{
		Created: created,
		ID:      "draft_" + created.Format("20060102_150405"),
	})
	d.s.saveChat(res.Chat)
	if err != nil {
		return fmt.Errorf("failed to draft: %w", err)
	}
	if tr, ok := res.Chat.LastToolResult(); ok {
		d.s.printAnswer(tr.Content)
	}
	d.s.conf.printMsg("===== DRAFTER FINISHED =====\n")
	return nil
}
