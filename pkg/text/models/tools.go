package models

import (
	"encoding/json"
	"fmt"
	"sort"
)

// LLMTool is a function the model may request to run.
type LLMTool interface {
	// Call the tool with the given Input. Returns output from the tool or an
	// error if the call failed.
	Call(Input) (string, error)

	// Specification of the tool, sent to the model so that it knows
	// how to request it
	Specification() Specification
}

type Input map[string]any

// Call is a tool invocation requested by the model
type Call struct {
	ID     string `json:"id,omitempty"`
	Name   string `json:"name,omitempty"`
	Inputs Input  `json:"inputs,omitempty"`
	// RawArguments holds arguments the model sent which could not be decoded
	// into Inputs. Inputs is nil when it is set.
	RawArguments string `json:"raw_arguments,omitempty"`
}

// DecodeArguments returns the error that made RawArguments undecodable, or
// nil if the arguments are decoded
func (c Call) DecodeArguments() error {
	if c.RawArguments == "" {
		return nil
	}
	var inp Input
	if err := json.Unmarshal([]byte(c.RawArguments), &inp); err != nil {
		return fmt.Errorf("arguments are not valid JSON: %w, arguments: %v", err, c.RawArguments)
	}
	return nil
}

// PrettyPrint the call, showing name and what input params is used
// on a concise way. Params are sorted to keep the output stable.
func (c Call) PrettyPrint() string {
	flags := make([]string, 0, len(c.Inputs))
	for flag := range c.Inputs {
		flags = append(flags, flag)
	}
	sort.Strings(flags)
	paramStr := ""
	for i, flag := range flags {
		paramStr += fmt.Sprintf("'%v': '%v'", flag, c.Inputs[flag])
		if i < len(flags)-1 {
			paramStr += ","
		}
	}
	return fmt.Sprintf("Call: '%s', inputs: [ %s ]", c.Name, paramStr)
}

// ArgumentsJSON is the inputs encoded the way the chat completions api wants them
func (c Call) ArgumentsJSON() string {
	if c.Inputs == nil && c.RawArguments != "" {
		return c.RawArguments
	}
	inp := c.Inputs
	if inp == nil {
		inp = Input{}
	}
	b, err := json.Marshal(inp)
	if err != nil {
		return fmt.Sprintf("ERROR: Failed to marshal: %v", err)
	}
	return string(b)
}

type Specification struct {
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Inputs      *InputSchema `json:"input_schema,omitempty"`
}

type InputSchema struct {
	Type       string                     `json:"type"`
	Required   []string                   `json:"required"`
	Properties map[string]ParameterObject `json:"properties"`
}

// Patch the input schema, initializing nil fields so that every
// vendor receives a complete object
func (is *InputSchema) Patch() {
	if is.Required == nil {
		is.Required = make([]string, 0)
	}
	if is.Properties == nil {
		is.Properties = make(map[string]ParameterObject)
	}
	if is.Type == "" {
		is.Type = "object"
	}
}

type ParameterObject struct {
	Type        string   `json:"type"`
	Description string   `json:"description"`
	Enum        []string `json:"enum,omitempty"`
}
