// Package text exposes a high-level, public API for running a tool calling
// loop against large language models (LLMs) using chat-style conversations.
//
// The package wraps the internal tooloop loop and re-exports only the pieces
// that are expected to be stable for external consumers.
//
// Typical usage is to construct a FullResponse querier with some tools and
// issue a chat style request:
//
//	ctx := context.Background()
//	q := text.NewFullResponseQuerier(
//	    text.WithModel("gpt-4o-mini"),
//	    text.WithLLMTools(tools.Add, tools.Subtract),
//	)
//
//	chat := models.Chat{Messages: []models.Message{
//	    models.UserMessage{Content: "what is 10 + 5?"},
//	}}
//	reply, err := q.Query(ctx, chat)
//	if err != nil {
//	    // handle error
//	}
//	_ = reply
//
// The querier keeps calling the model and dispatching the tools it requests
// until the termination policy ends the loop, see WithPolicy.
package text
