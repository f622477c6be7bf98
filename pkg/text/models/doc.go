// Package models contains the public data structures of a tool-augmented
// conversation.
//
// The main entry points are:
//
//   - Chat:    the conversation state, an append-only sequence of Messages.
//   - Message: a closed union of SystemMessage, UserMessage,
//     AssistantMessage and ToolResultMessage. Consumers type switch over
//     the four variants.
//   - Call:    a tool invocation requested by the model.
//   - LLMTool, Specification, InputSchema, ParameterObject: types that
//     declare the tools a model may call.
//
// Chat marshals each message with a "role" tag so that persisted
// conversations decode back into the same variants.
package models
