// internal/chat/tools.go
package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"proposal-assistant/internal/common/logger"
	"proposal-assistant/internal/common/validation"
	"proposal-assistant/internal/pipeline"
	"proposal-assistant/internal/rfp"
)

// Gateway is the slice of the remote API the read tools need.
type Gateway interface {
	GetProposal(ctx context.Context, uuid string) (interface{}, error)
	ListContent(ctx context.Context) (interface{}, error)
	ListCompanies(ctx context.Context) (interface{}, error)
	ListAttachments(ctx context.Context) (interface{}, error)
}

// Runner runs the staged creation pipeline for the proposalCreate tool.
type Runner interface {
	Run(ctx context.Context, input *rfp.Input) <-chan pipeline.Snapshot
}

// Handler executes one tool invocation. Handlers may emit intermediate
// events; the returned value is recorded as the tool-result turn.
type Handler func(ctx context.Context, args json.RawMessage, emit func(Event)) (interface{}, error)

// Tool is one member of the closed tool set: a name, a JSON-schema for its
// arguments, and a handler. Arguments are validated against the schema
// before the handler runs.
type Tool struct {
	Name        string
	Description string
	Schema      map[string]interface{}
	Handler     Handler
}

// Registry holds the closed set of tools the assistant may call.
type Registry struct {
	tools map[string]*Tool
	order []string
}

func (r *Registry) add(tool *Tool) {
	r.tools[tool.Name] = tool
	r.order = append(r.order, tool.Name)
}

// Lookup returns the named tool, or nil for anything outside the set.
func (r *Registry) Lookup(name string) *Tool {
	return r.tools[name]
}

// Names lists the tools in registration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}

// ValidateArgs checks raw arguments against the tool's schema.
func (r *Registry) ValidateArgs(tool *Tool, args json.RawMessage) error {
	document := args
	if len(strings.TrimSpace(string(document))) == 0 {
		document = json.RawMessage("{}")
	}
	result, err := validation.ValidateBytes(tool.Schema, document)
	if err != nil {
		return fmt.Errorf("validate %s arguments: %w", tool.Name, err)
	}
	if !result.Valid {
		return fmt.Errorf("invalid %s arguments: %s", tool.Name, strings.Join(result.Errors, "; "))
	}
	return nil
}

var emptySchema = map[string]interface{}{
	"type":                 "object",
	"properties":           map[string]interface{}{},
	"additionalProperties": false,
}

// NewRegistry builds the tool set over the remote gateway and the creation
// pipeline.
func NewRegistry(gateway Gateway, runner Runner, log logger.Logger) *Registry {
	r := &Registry{tools: make(map[string]*Tool)}

	r.add(&Tool{
		Name:        "proposalView",
		Description: "Fetch a proposal from the Proposales API by its UUID",
		Schema: map[string]interface{}{
			"type":     "object",
			"required": []string{"uuid"},
			"properties": map[string]interface{}{
				"uuid": map[string]interface{}{
					"type":        "string",
					"description": "The UUID of the proposal to fetch",
				},
			},
			"additionalProperties": false,
		},
		Handler: func(ctx context.Context, args json.RawMessage, emit func(Event)) (interface{}, error) {
			var params struct {
				UUID string `json:"uuid"`
			}
			if err := json.Unmarshal(args, &params); err != nil {
				return nil, fmt.Errorf("parse proposalView arguments: %w", err)
			}
			if _, err := uuid.Parse(params.UUID); err != nil {
				return nil, fmt.Errorf("the UUID must be a valid UUID format")
			}
			return gateway.GetProposal(ctx, params.UUID)
		},
	})

	r.add(&Tool{
		Name:        "listContent",
		Description: "List content from the Proposales API content endpoint",
		Schema:      emptySchema,
		Handler: func(ctx context.Context, args json.RawMessage, emit func(Event)) (interface{}, error) {
			return gateway.ListContent(ctx)
		},
	})

	r.add(&Tool{
		Name:        "listCompanies",
		Description: "List companies from the Proposales API companies endpoint",
		Schema:      emptySchema,
		Handler: func(ctx context.Context, args json.RawMessage, emit func(Event)) (interface{}, error) {
			return gateway.ListCompanies(ctx)
		},
	})

	r.add(&Tool{
		Name:        "listAttachments",
		Description: "List attachments from the Proposales API attachments endpoint",
		Schema:      emptySchema,
		Handler: func(ctx context.Context, args json.RawMessage, emit func(Event)) (interface{}, error) {
			return gateway.ListAttachments(ctx)
		},
	})

	r.add(&Tool{
		Name:        "proposalCreate",
		Description: "Generate and submit a Proposales Create Proposal payload from an RFP object.",
		Schema: map[string]interface{}{
			"type":     "object",
			"required": []string{"rfp"},
			"properties": map[string]interface{}{
				"rfp": map[string]interface{}{
					"type":     "object",
					"required": []string{"customer", "event"},
					"properties": map[string]interface{}{
						"customer": map[string]interface{}{
							"type":     "object",
							"required": []string{"customerName", "customerEmail"},
							"properties": map[string]interface{}{
								"customerName":  map[string]interface{}{"type": "string", "minLength": 1},
								"customerEmail": map[string]interface{}{"type": "string", "minLength": 1},
								"companyName":   map[string]interface{}{"type": "string"},
							},
						},
						"event": map[string]interface{}{
							"type":     "object",
							"required": []string{"eventType"},
							"properties": map[string]interface{}{
								"eventType":   map[string]interface{}{"type": "string", "minLength": 1},
								"startDate":   map[string]interface{}{"type": "string"},
								"endDate":     map[string]interface{}{"type": "string"},
								"guestCount":  map[string]interface{}{"type": "integer"},
								"roomsNeeded": map[string]interface{}{"type": "integer"},
							},
						},
						"preferences": map[string]interface{}{
							"type": "object",
							"properties": map[string]interface{}{
								"meetingSpaces":   map[string]interface{}{"type": "boolean"},
								"catering":        map[string]interface{}{"type": "boolean"},
								"tone":            map[string]interface{}{"type": "string"},
								"additionalBrief": map[string]interface{}{"type": "string"},
							},
						},
					},
				},
			},
			"additionalProperties": false,
		},
		Handler: func(ctx context.Context, args json.RawMessage, emit func(Event)) (interface{}, error) {
			var params struct {
				Rfp *rfp.Input `json:"rfp"`
			}
			if err := json.Unmarshal(args, &params); err != nil {
				return nil, fmt.Errorf("parse proposalCreate arguments: %w", err)
			}
			if !rfp.Validate(log, params.Rfp) {
				return nil, fmt.Errorf("Invalid RFP")
			}

			var final pipeline.Snapshot
			for snapshot := range runner.Run(ctx, params.Rfp) {
				snapshot := snapshot
				emit(Event{Type: EventPipeline, Snapshot: &snapshot})
				final = snapshot
			}
			if final.Error != "" {
				return nil, fmt.Errorf("%s", final.Error)
			}
			return final.Created, nil
		},
	})

	return r
}

// Definitions renders the registry as LLM tool declarations.
func (r *Registry) Definitions() []ToolDefinition {
	definitions := make([]ToolDefinition, 0, len(r.order))
	for _, name := range r.order {
		tool := r.tools[name]
		definitions = append(definitions, ToolDefinition{
			Name:        tool.Name,
			Description: tool.Description,
			Parameters:  tool.Schema,
		})
	}
	return definitions
}

// ToolDefinition is the registry view the orchestrator hands to the model.
type ToolDefinition struct {
	Name        string
	Description string
	Parameters  interface{}
}
