// internal/chat/tools_test.go
package chat

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"proposal-assistant/internal/common/logger"
	"proposal-assistant/internal/pipeline"
	"proposal-assistant/internal/rfp"
)

type fakeGateway struct {
	proposals   map[string]interface{}
	content     interface{}
	companies   interface{}
	attachments interface{}
	err         error
}

func (f *fakeGateway) GetProposal(ctx context.Context, uuid string) (interface{}, error) {
	if f.err != nil {
		return nil, f.err
	}
	if proposal, ok := f.proposals[uuid]; ok {
		return proposal, nil
	}
	return nil, errors.New("GET /v3/proposals: 404 Not Found - {}")
}

func (f *fakeGateway) ListContent(ctx context.Context) (interface{}, error) {
	return f.content, f.err
}

func (f *fakeGateway) ListCompanies(ctx context.Context) (interface{}, error) {
	return f.companies, f.err
}

func (f *fakeGateway) ListAttachments(ctx context.Context) (interface{}, error) {
	return f.attachments, f.err
}

type fakeRunner struct {
	snapshots []pipeline.Snapshot
	lastInput *rfp.Input
}

func (f *fakeRunner) Run(ctx context.Context, input *rfp.Input) <-chan pipeline.Snapshot {
	f.lastInput = input
	out := make(chan pipeline.Snapshot, len(f.snapshots))
	for _, snapshot := range f.snapshots {
		out <- snapshot
	}
	close(out)
	return out
}

const testUUID = "3f6fd92e-1a6f-4a3e-9a8e-04d0a2a7d9c1"

func testRegistry(t *testing.T, gateway *fakeGateway, runner *fakeRunner) *Registry {
	return NewRegistry(gateway, runner, logger.NewTestLogger(t))
}

func noEmit(Event) {}

func TestRegistry_ClosedToolSet(t *testing.T) {
	registry := testRegistry(t, &fakeGateway{}, &fakeRunner{})

	assert.Equal(t, []string{"proposalView", "listContent", "listCompanies", "listAttachments", "proposalCreate"}, registry.Names())
	assert.Nil(t, registry.Lookup("dropTables"))
	assert.Len(t, registry.Definitions(), 5)
}

func TestRegistry_ProposalView(t *testing.T) {
	gateway := &fakeGateway{
		proposals: map[string]interface{}{
			testUUID: map[string]interface{}{"data": map[string]interface{}{"title": "Offsite"}},
		},
	}
	registry := testRegistry(t, gateway, &fakeRunner{})
	tool := registry.Lookup("proposalView")
	require.NotNil(t, tool)

	args := json.RawMessage(`{"uuid":"` + testUUID + `"}`)
	require.NoError(t, registry.ValidateArgs(tool, args))

	result, err := tool.Handler(context.Background(), args, noEmit)
	require.NoError(t, err)
	assert.NotNil(t, result)
}

func TestRegistry_ProposalView_InvalidUUID(t *testing.T) {
	registry := testRegistry(t, &fakeGateway{}, &fakeRunner{})
	tool := registry.Lookup("proposalView")

	args := json.RawMessage(`{"uuid":"not-a-uuid"}`)
	require.NoError(t, registry.ValidateArgs(tool, args))

	_, err := tool.Handler(context.Background(), args, noEmit)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "valid UUID")
}

func TestRegistry_ProposalView_MissingUUIDFailsSchema(t *testing.T) {
	registry := testRegistry(t, &fakeGateway{}, &fakeRunner{})
	tool := registry.Lookup("proposalView")

	err := registry.ValidateArgs(tool, json.RawMessage(`{}`))
	assert.Error(t, err)
}

func TestRegistry_ListTools(t *testing.T) {
	gateway := &fakeGateway{
		content:     map[string]interface{}{"data": []interface{}{"room"}},
		companies:   map[string]interface{}{"data": []interface{}{"hotel"}},
		attachments: []interface{}{"menu.pdf"},
	}
	registry := testRegistry(t, gateway, &fakeRunner{})

	for _, name := range []string{"listContent", "listCompanies", "listAttachments"} {
		t.Run(name, func(t *testing.T) {
			tool := registry.Lookup(name)
			require.NotNil(t, tool)
			require.NoError(t, registry.ValidateArgs(tool, json.RawMessage(`{}`)))
			// Empty arguments are normalized to {} before validation.
			require.NoError(t, registry.ValidateArgs(tool, json.RawMessage("")))

			result, err := tool.Handler(context.Background(), json.RawMessage(`{}`), noEmit)
			require.NoError(t, err)
			assert.NotNil(t, result)
		})
	}
}

func TestRegistry_ProposalCreate_EmitsSnapshots(t *testing.T) {
	runner := &fakeRunner{
		snapshots: []pipeline.Snapshot{
			{Stages: []pipeline.StageState{{Name: pipeline.StageAnalyzing, Status: pipeline.StatusInProgress}}},
			{
				Stages:   []pipeline.StageState{{Name: pipeline.StageGenerating, Status: pipeline.StatusCompleted}},
				Created:  &pipeline.Created{UUID: "p-42", URL: "https://app.proposales.com/p/p-42"},
				Terminal: true,
			},
		},
	}
	registry := testRegistry(t, &fakeGateway{}, runner)
	tool := registry.Lookup("proposalCreate")

	sample := rfp.SampleRfps[0]
	args, err := json.Marshal(map[string]interface{}{"rfp": sample})
	require.NoError(t, err)
	require.NoError(t, registry.ValidateArgs(tool, args))

	var emitted []Event
	result, err := tool.Handler(context.Background(), args, func(event Event) {
		emitted = append(emitted, event)
	})

	require.NoError(t, err)
	created, ok := result.(*pipeline.Created)
	require.True(t, ok)
	assert.Equal(t, "p-42", created.UUID)

	require.Len(t, emitted, 2)
	for _, event := range emitted {
		assert.Equal(t, EventPipeline, event.Type)
	}
	require.NotNil(t, runner.lastInput)
	assert.Equal(t, sample.Customer.CustomerEmail, runner.lastInput.Customer.CustomerEmail)
}

func TestRegistry_ProposalCreate_PipelineError(t *testing.T) {
	runner := &fakeRunner{
		snapshots: []pipeline.Snapshot{
			{Error: "invalid proposal payload", Terminal: true},
		},
	}
	registry := testRegistry(t, &fakeGateway{}, runner)
	tool := registry.Lookup("proposalCreate")

	args, err := json.Marshal(map[string]interface{}{"rfp": rfp.SampleRfps[0]})
	require.NoError(t, err)

	_, handlerErr := tool.Handler(context.Background(), args, noEmit)
	require.Error(t, handlerErr)
	assert.Equal(t, "invalid proposal payload", handlerErr.Error())
}

func TestRegistry_ProposalCreate_InvalidRfp(t *testing.T) {
	registry := testRegistry(t, &fakeGateway{}, &fakeRunner{})
	tool := registry.Lookup("proposalCreate")

	// Schema-valid shape but a malformed email, caught by the validator.
	args := json.RawMessage(`{"rfp":{"customer":{"customerName":"Emma","customerEmail":"nope"},"event":{"eventType":"conference"}}}`)
	require.NoError(t, registry.ValidateArgs(tool, args))

	_, err := tool.Handler(context.Background(), args, noEmit)
	require.Error(t, err)
	assert.Equal(t, "Invalid RFP", err.Error())
}

func TestRegistry_ProposalCreate_MissingRfpFailsSchema(t *testing.T) {
	registry := testRegistry(t, &fakeGateway{}, &fakeRunner{})
	tool := registry.Lookup("proposalCreate")

	assert.Error(t, registry.ValidateArgs(tool, json.RawMessage(`{}`)))
	assert.Error(t, registry.ValidateArgs(tool, json.RawMessage(`{"rfp":{"customer":{}}}`)))
}
