// internal/server/handlers.go
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"proposal-assistant/internal/chat"
	apperrors "proposal-assistant/internal/common/errors"
	"proposal-assistant/internal/common/logger"
	"proposal-assistant/internal/generator"
	"proposal-assistant/internal/llm"
	"proposal-assistant/internal/pipeline"
	"proposal-assistant/internal/rfp"
)

// PayloadGenerator produces the proposal payload for the plain create
// endpoint.
type PayloadGenerator interface {
	Generate(ctx context.Context, input *rfp.Input) (*generator.ProposalPayload, llm.Usage, error)
}

// Submitter posts a payload to the remote API.
type Submitter interface {
	CreateProposal(ctx context.Context, payload interface{}) (interface{}, error)
}

// PipelineRunner runs the staged creation flow for the streaming endpoint.
type PipelineRunner interface {
	Run(ctx context.Context, input *rfp.Input) <-chan pipeline.Snapshot
}

// ChatHandler runs one conversational turn.
type ChatHandler interface {
	HandleMessage(ctx context.Context, sessionID, message string) <-chan chat.Event
}

// Handlers implements the HTTP endpoints over the domain components.
type Handlers struct {
	generator PayloadGenerator
	submitter Submitter
	runner    PipelineRunner
	chat      ChatHandler
	logger    logger.Logger
}

func NewHandlers(gen PayloadGenerator, submitter Submitter, runner PipelineRunner, chatHandler ChatHandler, log logger.Logger) *Handlers {
	return &Handlers{
		generator: gen,
		submitter: submitter,
		runner:    runner,
		chat:      chatHandler,
		logger: log.With(map[string]interface{}{
			"component": "handlers",
		}),
	}
}

type proposalRequest struct {
	Rfp json.RawMessage `json:"rfp"`
}

// parseRfp applies the shared request checks: RFP present, then schema and
// field validation. A non-nil *gin.H is the 400 response to send.
func (h *Handlers) parseRfp(c *gin.Context) (*rfp.Input, *gin.H) {
	var request proposalRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		return nil, &gin.H{"error": "RFP is required"}
	}
	if len(request.Rfp) == 0 || string(request.Rfp) == "null" {
		return nil, &gin.H{"error": "RFP is required"}
	}

	result, err := rfp.ValidateDocument(request.Rfp)
	if err != nil || !result.Valid {
		return nil, &gin.H{"error": "Invalid RFP"}
	}

	var input rfp.Input
	if err := json.Unmarshal(request.Rfp, &input); err != nil {
		return nil, &gin.H{"error": "Invalid RFP"}
	}
	if !rfp.Validate(h.logger, &input) {
		return nil, &gin.H{"error": "Invalid RFP"}
	}
	return &input, nil
}

// CreateProposal is the plain generate-then-submit endpoint. On success it
// relays the remote API's JSON response verbatim.
func (h *Handlers) CreateProposal(c *gin.Context) {
	input, badRequest := h.parseRfp(c)
	if badRequest != nil {
		c.JSON(http.StatusBadRequest, badRequest)
		return
	}

	payload, _, err := h.generator.Generate(c.Request.Context(), input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": createFailureMessage(err)})
		return
	}

	response, err := h.submitter.CreateProposal(c.Request.Context(), payload)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": createFailureMessage(err)})
		return
	}

	c.JSON(http.StatusOK, response)
}

// createFailureMessage keeps the remote failure details visible to the
// caller: status code, status text and response body for HTTP failures, the
// error text otherwise.
func createFailureMessage(err error) string {
	var apiErr *apperrors.ExternalAPIError
	if errors.As(err, &apiErr) {
		return fmt.Sprintf("Failed to create proposal: %d %s - %s", apiErr.StatusCode, apiErr.StatusText, apiErr.Body)
	}
	return fmt.Sprintf("Failed to create proposal: %s", err.Error())
}

// CreateProposalStream runs the staged pipeline and streams each snapshot as
// a server-sent event.
func (h *Handlers) CreateProposalStream(c *gin.Context) {
	input, badRequest := h.parseRfp(c)
	if badRequest != nil {
		c.JSON(http.StatusBadRequest, badRequest)
		return
	}

	sseHeaders(c)
	snapshots := h.runner.Run(c.Request.Context(), input)
	c.Stream(func(w io.Writer) bool {
		snapshot, ok := <-snapshots
		if !ok {
			return false
		}
		c.SSEvent("snapshot", snapshot)
		return true
	})
}

type chatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

// Chat runs one conversational turn and streams its events.
func (h *Handlers) Chat(c *gin.Context) {
	var request chatRequest
	if err := c.ShouldBindJSON(&request); err != nil || request.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}

	sseHeaders(c)
	events := h.chat.HandleMessage(c.Request.Context(), request.SessionID, request.Message)
	c.Stream(func(w io.Writer) bool {
		event, ok := <-events
		if !ok {
			return false
		}
		c.SSEvent(event.Type, event)
		return true
	})
}

// Suggestions returns the canned quick-start actions.
func (h *Handlers) Suggestions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": chat.SuggestedActions})
}

// Health reports liveness.
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"time":   time.Now().Format(time.RFC3339),
	})
}

// Ready reports readiness.
func (h *Handlers) Ready(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
		"time":   time.Now().Format(time.RFC3339),
	})
}

func sseHeaders(c *gin.Context) {
	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
}
