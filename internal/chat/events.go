// internal/chat/events.go
package chat

import (
	"proposal-assistant/internal/llm"
	"proposal-assistant/internal/pipeline"
)

// Event types streamed to the HTTP layer during one chat turn.
const (
	EventChunk      = "chunk"       // assistant text
	EventToolCall   = "tool_call"   // the assistant chose a tool
	EventToolResult = "tool_result" // the tool finished (success or error payload)
	EventPipeline   = "pipeline"    // a pipeline snapshot from proposalCreate
	EventUsage      = "usage"       // token accounting for the turn
	EventError      = "error"       // the turn failed
	EventDone       = "done"        // terminal, always last
)

// Event is one frame of a chat turn stream.
type Event struct {
	Type      string             `json:"type"`
	SessionID string             `json:"session_id,omitempty"`
	Text      string             `json:"text,omitempty"`
	Tool      string             `json:"tool,omitempty"`
	Args      interface{}        `json:"args,omitempty"`
	Result    interface{}        `json:"result,omitempty"`
	Snapshot  *pipeline.Snapshot `json:"snapshot,omitempty"`
	Usage     *llm.Usage         `json:"usage,omitempty"`
	Error     string             `json:"error,omitempty"`
}
