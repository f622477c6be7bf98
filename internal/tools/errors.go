package tools

import "fmt"

// UnknownToolError is produced when the model requests a tool which isn't registered
type UnknownToolError struct {
	Name string
}

func (e *UnknownToolError) Error() string {
	return "unknown tool call: " + e.Name
}

// ToolExecutionError wraps argument binding failures and errors returned by a tool
type ToolExecutionError struct {
	Name string
	// Binding is true if the arguments never reached the tool
	Binding bool
	Err     error
}

func (e *ToolExecutionError) Error() string {
	if e.Binding {
		return fmt.Sprintf("invalid arguments for tool: %v, error: %v", e.Name, e.Err)
	}
	return fmt.Sprintf("failed to run tool: %v, error: %v", e.Name, e.Err)
}

func (e *ToolExecutionError) Unwrap() error {
	return e.Err
}
