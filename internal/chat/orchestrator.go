// internal/chat/orchestrator.go
package chat

import (
	"context"
	"encoding/json"

	"proposal-assistant/internal/common/logger"
	"proposal-assistant/internal/common/metrics"
	"proposal-assistant/internal/llm"
	"proposal-assistant/internal/session"
)

// PersonaPrompt fixes the assistant's voice. It is the same for every
// session.
const PersonaPrompt = `- you are a friendly proposal assistant that helps fetch and view proposals from the proposales api
- reply in lower case
- use the tools provided to fetch and view proposals, content, companies, and attachments
- if you need to create a proposal, use the proposalCreate tool`

// Completer is the LLM call the orchestrator makes.
type Completer interface {
	Complete(ctx context.Context, request *llm.Request) (*llm.Completion, error)
}

// Orchestrator runs one chat turn: load session, complete, dispatch at most
// one tool, persist the appended turns.
type Orchestrator struct {
	completer Completer
	registry  *Registry
	store     *session.Store
	logger    logger.Logger
}

func NewOrchestrator(completer Completer, registry *Registry, store *session.Store, log logger.Logger) *Orchestrator {
	return &Orchestrator{
		completer: completer,
		registry:  registry,
		store:     store,
		logger: log.With(map[string]interface{}{
			"component": "chat",
		}),
	}
}

// HandleMessage processes one user message against a session and streams
// events for it. The returned channel is closed after the terminal done
// event. Whatever happens mid-turn, the session is saved in an appendable
// state.
func (o *Orchestrator) HandleMessage(ctx context.Context, sessionID, message string) <-chan Event {
	out := make(chan Event, 16)

	go func() {
		defer close(out)

		sess, err := o.store.Get(ctx, sessionID)
		if err != nil {
			metrics.ChatTurnsTotal.WithLabelValues("error").Inc()
			out <- Event{Type: EventError, Error: err.Error()}
			out <- Event{Type: EventDone}
			return
		}

		emit := func(event Event) {
			event.SessionID = sess.ID
			out <- event
		}

		sess.AppendUser(message)
		if err := o.runTurn(ctx, sess, emit); err != nil {
			o.logger.Error("chat turn failed", map[string]interface{}{
				"sessionId": sess.ID,
				"error":     err.Error(),
			})
			metrics.ChatTurnsTotal.WithLabelValues("error").Inc()
			// The failure is still part of the conversation.
			sess.AppendAssistant("sorry, something went wrong: " + err.Error())
			emit(Event{Type: EventError, Error: err.Error()})
		} else {
			metrics.ChatTurnsTotal.WithLabelValues("success").Inc()
		}

		if err := o.store.Save(ctx, sess); err != nil {
			o.logger.Error("failed to save session", map[string]interface{}{
				"sessionId": sess.ID,
				"error":     err.Error(),
			})
		}

		lastUsage := llm.Usage{}
		if len(sess.Usage) > 0 {
			lastUsage = sess.Usage[len(sess.Usage)-1]
		}
		emit(Event{Type: EventUsage, Usage: &lastUsage})
		emit(Event{Type: EventDone})
	}()

	return out
}

func (o *Orchestrator) runTurn(ctx context.Context, sess *session.Session, emit func(Event)) error {
	completion, err := o.completer.Complete(ctx, &llm.Request{
		Messages: o.transcript(sess),
		Tools:    o.toolDeclarations(),
	})
	if err != nil {
		return err
	}
	sess.AppendUsage(completion.Usage)

	// No tool chosen: the reply is plain text.
	if len(completion.ToolCalls) == 0 {
		sess.AppendAssistant(completion.Text)
		emit(Event{Type: EventChunk, Text: completion.Text})
		return nil
	}

	// At most one tool per turn.
	call := completion.ToolCalls[0]
	args := json.RawMessage(call.Function.Arguments)
	sess.AppendToolCall(call.ID, call.Function.Name, args)
	emit(Event{Type: EventToolCall, Tool: call.Function.Name, Args: json.RawMessage(call.Function.Arguments)})

	result := o.dispatch(ctx, call.Function.Name, args, emit)
	resultJSON, err := json.Marshal(result)
	if err != nil {
		resultJSON = []byte(`{"error":"unencodable tool result"}`)
	}
	sess.AppendToolResult(call.ID, call.Function.Name, resultJSON)
	emit(Event{Type: EventToolResult, Tool: call.Function.Name, Result: result})

	// Close the turn with a plain completion over the updated transcript.
	followUp, err := o.completer.Complete(ctx, &llm.Request{
		Messages: o.transcript(sess),
	})
	if err != nil {
		return err
	}
	sess.AppendUsage(followUp.Usage)
	sess.AppendAssistant(followUp.Text)
	emit(Event{Type: EventChunk, Text: followUp.Text})
	return nil
}

// dispatch validates and runs one tool call. Every failure becomes an
// {error: ...} result payload; nothing escapes as a turn failure.
func (o *Orchestrator) dispatch(ctx context.Context, name string, args json.RawMessage, emit func(Event)) interface{} {
	tool := o.registry.Lookup(name)
	if tool == nil {
		metrics.ToolInvocationsTotal.WithLabelValues(name, "error").Inc()
		return map[string]interface{}{"error": "unknown tool: " + name}
	}

	if err := o.registry.ValidateArgs(tool, args); err != nil {
		metrics.ToolInvocationsTotal.WithLabelValues(name, "error").Inc()
		return map[string]interface{}{"error": err.Error()}
	}

	result, err := tool.Handler(ctx, args, emit)
	if err != nil {
		o.logger.Warn("tool invocation failed", map[string]interface{}{
			"tool":  name,
			"error": err.Error(),
		})
		metrics.ToolInvocationsTotal.WithLabelValues(name, "error").Inc()
		return map[string]interface{}{"error": err.Error()}
	}

	metrics.ToolInvocationsTotal.WithLabelValues(name, "success").Inc()
	return result
}

// transcript renders the session as LLM messages, persona first.
func (o *Orchestrator) transcript(sess *session.Session) []llm.Message {
	messages := make([]llm.Message, 0, len(sess.Turns)+1)
	messages = append(messages, llm.Message{Role: "system", Content: PersonaPrompt})

	for _, turn := range sess.Turns {
		switch {
		case turn.Role == session.RoleAssistant && turn.ToolName != "":
			messages = append(messages, llm.Message{
				Role: "assistant",
				ToolCalls: []llm.ToolCall{
					{
						ID:   turn.ToolCallID,
						Type: "function",
						Function: llm.ToolCallFunction{
							Name:      turn.ToolName,
							Arguments: string(turn.Args),
						},
					},
				},
			})
		case turn.Role == session.RoleTool:
			messages = append(messages, llm.Message{
				Role:       "tool",
				ToolCallID: turn.ToolCallID,
				Content:    string(turn.Result),
			})
		default:
			messages = append(messages, llm.Message{Role: turn.Role, Content: turn.Content})
		}
	}
	return messages
}

func (o *Orchestrator) toolDeclarations() []llm.Tool {
	definitions := o.registry.Definitions()
	tools := make([]llm.Tool, 0, len(definitions))
	for _, definition := range definitions {
		tools = append(tools, llm.Tool{
			Type: "function",
			Function: llm.ToolFunction{
				Name:        definition.Name,
				Description: definition.Description,
				Parameters:  definition.Parameters,
			},
		})
	}
	return tools
}
