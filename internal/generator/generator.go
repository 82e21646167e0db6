// internal/generator/generator.go
package generator

import (
	"context"
	"encoding/json"
	"fmt"

	apperrors "proposal-assistant/internal/common/errors"
	"proposal-assistant/internal/common/logger"
	"proposal-assistant/internal/knowledge"
	"proposal-assistant/internal/llm"
	"proposal-assistant/internal/rfp"
)

// Completer is the single LLM call the generator needs.
type Completer interface {
	Complete(ctx context.Context, request *llm.Request) (*llm.Completion, error)
}

// Generator turns a validated RFP into a proposal payload through one LLM
// completion.
type Generator struct {
	completer Completer
	pack      *knowledge.Pack
	logger    logger.Logger
}

func New(completer Completer, pack *knowledge.Pack, log logger.Logger) *Generator {
	return &Generator{
		completer: completer,
		pack:      pack,
		logger: log.With(map[string]interface{}{
			"component": "generator",
		}),
	}
}

// Generate produces a proposal payload for the RFP. The model's reply must be
// a single parseable JSON object; anything else fails with
// ErrInvalidProposalPayload and the raw reply is discarded. LLM failures
// propagate unchanged.
func (g *Generator) Generate(ctx context.Context, input *rfp.Input) (*ProposalPayload, llm.Usage, error) {
	userMessage, err := json.Marshal(map[string]interface{}{
		"PROPOSALES_KNOWLEDGE_PACK": g.pack,
		"RFP":                       input,
	})
	if err != nil {
		return nil, llm.Usage{}, fmt.Errorf("marshal generation input: %w", err)
	}

	completion, err := g.completer.Complete(ctx, &llm.Request{
		Messages: []llm.Message{
			{Role: "system", Content: SystemPrompt},
			{Role: "user", Content: string(userMessage)},
		},
	})
	if err != nil {
		return nil, llm.Usage{}, err
	}

	var payload ProposalPayload
	if err := json.Unmarshal([]byte(completion.Text), &payload); err != nil {
		g.logger.Error("model reply is not a proposal payload", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, completion.Usage, apperrors.ErrInvalidProposalPayload
	}

	g.logger.Info("proposal payload generated", map[string]interface{}{
		"companyId":   payload.CompanyID,
		"blocks":      len(payload.Blocks),
		"attachments": len(payload.Attachments),
		"totalTokens": completion.Usage.TotalTokens,
	})

	return &payload, completion.Usage, nil
}
