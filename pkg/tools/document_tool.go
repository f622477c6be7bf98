package tools

import (
	"fmt"

	"github.com/baalimago/tooloop/internal/document"
	pub_models "github.com/baalimago/tooloop/pkg/text/models"
)

var updateSpec = pub_models.Specification{
	Name:        "update",
	Description: "Update the document with the provided content. The content replaces the whole document.",
	Inputs: &pub_models.InputSchema{
		Type: "object",
		Properties: map[string]pub_models.ParameterObject{
			"content": {
				Type:        "string",
				Description: "The complete, updated content of the document.",
			},
		},
		Required: []string{"content"},
	},
}

var saveSpec = pub_models.Specification{
	Name:        "save",
	Description: "Save the current document to a text file and finish the process.",
	Inputs: &pub_models.InputSchema{
		Type: "object",
		Properties: map[string]pub_models.ParameterObject{
			"filename": {
				Type:        "string",
				Description: "Name of the text file. '.txt' is appended if missing.",
			},
		},
		Required: []string{"filename"},
	},
}

type updateTool struct {
	doc *document.State
}

// NewUpdate returns the tool which replaces the content of doc
func NewUpdate(doc *document.State) pub_models.LLMTool {
	return &updateTool{doc: doc}
}

func (u *updateTool) Call(input pub_models.Input) (string, error) {
	content, err := str(input, "content")
	if err != nil {
		return "", err
	}
	u.doc.Set(content)
	return fmt.Sprintf("Document has been updated successfully! The current content is:\n%v", content), nil
}

func (u *updateTool) Specification() pub_models.Specification {
	return updateSpec
}

type saveTool struct {
	doc *document.State
	dir string
}

// NewSave returns the tool which writes doc to a file inside dir
func NewSave(doc *document.State, dir string) pub_models.LLMTool {
	return &saveTool{doc: doc, dir: dir}
}

func (s *saveTool) Call(input pub_models.Input) (string, error) {
	filename, err := str(input, "filename")
	if err != nil {
		return "", err
	}
	p, err := s.doc.Save(s.dir, filename)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Document has been saved successfully to '%v'.", p), nil
}

func (s *saveTool) Specification() pub_models.Specification {
	return saveSpec
}
