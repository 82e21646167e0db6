// internal/session/session.go
package session

import (
	"encoding/json"

	"github.com/google/uuid"

	"proposal-assistant/internal/llm"
)

// Turn roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"
)

// Turn is one entry in the conversation transcript. Turns are append-only;
// an assistant turn is marked done once its text is final.
type Turn struct {
	Role       string          `json:"role"`
	Content    string          `json:"content,omitempty"`
	ToolName   string          `json:"tool_name,omitempty"`
	ToolCallID string          `json:"tool_call_id,omitempty"`
	Args       json.RawMessage `json:"args,omitempty"`
	Result     json.RawMessage `json:"result,omitempty"`
	Done       bool            `json:"done"`
}

// Session is the explicit conversation state carried between turns. Nothing
// about a conversation lives outside it.
type Session struct {
	ID    string      `json:"id"`
	Turns []Turn      `json:"turns"`
	Usage []llm.Usage `json:"usage"`
}

// NewSession creates an empty session with a fresh ID.
func NewSession() *Session {
	return &Session{
		ID:    uuid.NewString(),
		Turns: []Turn{},
		Usage: []llm.Usage{},
	}
}

// AppendUser appends a user message.
func (s *Session) AppendUser(content string) {
	s.Turns = append(s.Turns, Turn{Role: RoleUser, Content: content, Done: true})
}

// AppendAssistant appends a finished assistant message.
func (s *Session) AppendAssistant(content string) {
	s.Turns = append(s.Turns, Turn{Role: RoleAssistant, Content: content, Done: true})
}

// AppendToolCall records the assistant's decision to invoke a tool.
func (s *Session) AppendToolCall(toolCallID, toolName string, args json.RawMessage) {
	s.Turns = append(s.Turns, Turn{
		Role:       RoleAssistant,
		ToolName:   toolName,
		ToolCallID: toolCallID,
		Args:       args,
		Done:       true,
	})
}

// AppendToolResult records a tool's outcome, success or error payload alike.
func (s *Session) AppendToolResult(toolCallID, toolName string, result json.RawMessage) {
	s.Turns = append(s.Turns, Turn{
		Role:       RoleTool,
		ToolName:   toolName,
		ToolCallID: toolCallID,
		Result:     result,
		Done:       true,
	})
}

// AppendUsage records the token spend of one LLM call, in order.
func (s *Session) AppendUsage(usage llm.Usage) {
	s.Usage = append(s.Usage, usage)
}

// TotalTokens sums the recorded usage entries.
func (s *Session) TotalTokens() int {
	total := 0
	for _, usage := range s.Usage {
		total += usage.TotalTokens
	}
	return total
}
