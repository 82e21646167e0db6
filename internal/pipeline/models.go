// internal/pipeline/models.go
package pipeline

import "proposal-assistant/internal/generator"

// Stage names, in execution order.
const (
	StageAnalyzing  = "analyzing"
	StageMapping    = "mapping"
	StagePricing    = "pricing"
	StageGenerating = "generating"
)

// StageOrder is the fixed forward progression of the pipeline.
var StageOrder = []string{StageAnalyzing, StageMapping, StagePricing, StageGenerating}

// Status of a single stage. Transitions are monotonic:
// pending -> in_progress -> completed | error.
const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusError      = "error"
)

// StageState pairs a stage with its current status.
type StageState struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

// Analysis is what the pipeline extracts from the RFP without any external
// call. MeetingDays is the inclusive day difference between start and end.
type Analysis struct {
	EventType     string `json:"eventType"`
	Attendees     int    `json:"attendees"`
	MeetingDays   int    `json:"meetingDays"`
	Rooms         int    `json:"rooms"`
	Catering      bool   `json:"catering"`
	MeetingSpaces bool   `json:"meetingSpaces"`
	StartDate     string `json:"startDate,omitempty"`
	EndDate       string `json:"endDate,omitempty"`
}

// MappedProduct is a display row for one selected product.
type MappedProduct struct {
	Name      string `json:"name"`
	ContentID int    `json:"contentId"`
}

// MappedAttachment is a display row for one selected attachment.
type MappedAttachment struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Mapping summarizes the generated payload for display. It never feeds back
// into the submission.
type Mapping struct {
	Template            string             `json:"template,omitempty"`
	SelectedProducts    []MappedProduct    `json:"selectedProducts"`
	SelectedAttachments []MappedAttachment `json:"selectedAttachments"`
}

// PricingItem is one row of the price breakdown.
type PricingItem struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice int    `json:"unitPrice"`
	Total     int    `json:"total"`
}

// Pricing is the display-only estimate. It is never submitted to the remote
// API.
type Pricing struct {
	Items    []PricingItem `json:"items"`
	Subtotal int           `json:"subtotal"`
	Tax      int           `json:"tax"`
	Total    int           `json:"total"`
	Currency string        `json:"currency"`
}

// Created identifies the submitted proposal.
type Created struct {
	UUID     string      `json:"uuid,omitempty"`
	URL      string      `json:"url,omitempty"`
	Response interface{} `json:"response,omitempty"`
}

// Snapshot is one frame of pipeline progress. The sequence emitted by Run is
// finite and ordered; the last snapshot has Terminal set.
type Snapshot struct {
	Stages   []StageState               `json:"stages"`
	Analysis *Analysis                  `json:"analysis,omitempty"`
	Mapping  *Mapping                   `json:"mapping,omitempty"`
	Pricing  *Pricing                   `json:"pricing,omitempty"`
	Payload  *generator.ProposalPayload `json:"payload,omitempty"`
	Created  *Created                   `json:"created,omitempty"`
	Error    string                     `json:"error,omitempty"`
	Terminal bool                       `json:"terminal"`
}
