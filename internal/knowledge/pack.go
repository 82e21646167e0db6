// internal/knowledge/pack.go
package knowledge

import (
	"encoding/json"
	"sync"
)

// Pack is the static dataset the payload generator hands to the LLM: the
// companies it may target, the templates, products and attachments it may
// select, and the rules for choosing between them. It is loaded once and
// never mutated.
type Pack struct {
	Companies        []Company                `json:"companies"`
	Templates        []Template               `json:"templates"`
	Products         []Product                `json:"products"`
	Attachments      []Attachment             `json:"attachments"`
	MappingRules     []MappingRule            `json:"mapping_rules"`
	ProposalExamples []map[string]interface{} `json:"proposal_examples"`
}

// Company carries a target company and its proposal defaults.
type Company struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	DefaultLanguage string `json:"default_language"`
	ContactEmail    string `json:"contact_email"`
	InvoicingEnabled bool  `json:"invoicing_enabled"`
}

// Template pairs a proposal template with its background image identifiers.
type Template struct {
	Title               string `json:"title"`
	EventTypes          []string `json:"event_types"`
	BackgroundImageID   int    `json:"background_image_id"`
	BackgroundImageUUID string `json:"background_image_uuid"`
}

// Product is a sellable item. VariationID doubles as the content_id the
// remote API expects in proposal blocks.
type Product struct {
	ProductID   int    `json:"product_id"`
	VariationID int    `json:"variation_id"` // equals content_id
	Name        string `json:"name"`
	Category    string `json:"category"` // room, meeting_space, catering
	UnitPrice   int    `json:"unit_price"`
	Currency    string `json:"currency"`
}

// Attachment is a PDF or URL that can be attached to a proposal.
type Attachment struct {
	ID   int    `json:"id"`
	UUID string `json:"uuid"`
	Name string `json:"name"`
	Type string `json:"type"` // pdf, url
	URL  string `json:"url"`
}

// MappingRule tells the LLM when to select which products and attachments.
type MappingRule struct {
	When        string `json:"when"`
	SelectProducts []string `json:"select_products,omitempty"`
	SelectAttachments []string `json:"select_attachments,omitempty"`
}

var (
	once sync.Once
	pack *Pack
)

// Default returns the process-wide knowledge pack.
func Default() *Pack {
	once.Do(func() {
		pack = build()
	})
	return pack
}

// JSON serializes the pack for inclusion in the LLM user message.
func (p *Pack) JSON() ([]byte, error) {
	return json.Marshal(p)
}

func build() *Pack {
	return &Pack{
		Companies: []Company{
			{
				ID:               8079,
				Name:             "Grand Meridian Hotel",
				DefaultLanguage:  "en",
				ContactEmail:     "events@grandmeridian.example.com",
				InvoicingEnabled: true,
			},
		},
		Templates: []Template{
			{
				Title:               "Corporate Meeting Package",
				EventTypes:          []string{"corporate_meeting", "team_offsite", "launch_event"},
				BackgroundImageID:   31204,
				BackgroundImageUUID: "7c1f36d8-43a2-4a5b-b1e9-2f6d8a90c4e1",
			},
			{
				Title:               "Conference Package",
				EventTypes:          []string{"conference"},
				BackgroundImageID:   31205,
				BackgroundImageUUID: "9b82f4a1-5c6e-4d37-8e02-d1a4b7c3f590",
			},
			{
				Title:               "Wedding & Celebration Package",
				EventTypes:          []string{"wedding"},
				BackgroundImageID:   31206,
				BackgroundImageUUID: "4e53a9c7-82d1-4f08-a6b5-3c9e0d72f814",
			},
		},
		Products: []Product{
			{ProductID: 5101, VariationID: 9201, Name: "Standard Room", Category: "room", UnitPrice: 150, Currency: "USD"},
			{ProductID: 5102, VariationID: 9202, Name: "Meeting Room (full day)", Category: "meeting_space", UnitPrice: 500, Currency: "USD"},
			{ProductID: 5103, VariationID: 9203, Name: "Breakout Room (full day)", Category: "meeting_space", UnitPrice: 250, Currency: "USD"},
			{ProductID: 5104, VariationID: 9204, Name: "Conference Catering (per person)", Category: "catering", UnitPrice: 45, Currency: "USD"},
			{ProductID: 5105, VariationID: 9205, Name: "Gala Dinner (per person)", Category: "catering", UnitPrice: 95, Currency: "USD"},
		},
		Attachments: []Attachment{
			{ID: 701, UUID: "a1f09c3e-6b44-4d81-9e57-0b2c8d4f6a12", Name: "Meeting Facilities Brochure", Type: "pdf", URL: "https://cdn.proposales.com/attachments/meeting-facilities.pdf"},
			{ID: 702, UUID: "b7e24d50-19c8-4f36-8a01-5d6e9f3b2c78", Name: "Catering Menu", Type: "pdf", URL: "https://cdn.proposales.com/attachments/catering-menu.pdf"},
			{ID: 703, UUID: "c3d58a92-74f1-4b60-b5e3-8a0c1f7d4e26", Name: "Virtual Venue Tour", Type: "url", URL: "https://grandmeridian.example.com/tour"},
		},
		MappingRules: []MappingRule{
			{When: "preferences.meetingSpaces is true", SelectProducts: []string{"Meeting Room (full day)"}, SelectAttachments: []string{"Meeting Facilities Brochure"}},
			{When: "preferences.catering is true", SelectProducts: []string{"Conference Catering (per person)"}, SelectAttachments: []string{"Catering Menu"}},
			{When: "event.roomsNeeded > 0", SelectProducts: []string{"Standard Room"}},
			{When: "event.eventType is wedding", SelectProducts: []string{"Gala Dinner (per person)"}},
		},
		ProposalExamples: []map[string]interface{}{
			{
				"company_id":    8079,
				"language":      "en",
				"contact_email": "events@grandmeridian.example.com",
				"background_image": map[string]interface{}{
					"id":   31204,
					"uuid": "7c1f36d8-43a2-4a5b-b1e9-2f6d8a90c4e1",
				},
				"title_md":       "# Corporate Meeting - NorthStar Consulting",
				"description_md": "Two-day leadership retreat with meeting room, catering and accommodation.",
				"recipient": map[string]interface{}{
					"first_name": "Emma",
					"last_name":  "Lindberg",
					"email":      "emma.lindberg@northstarconsulting.com",
				},
				"invoicing_enabled": true,
				"blocks": []map[string]interface{}{
					{"content_id": 9202, "quantity": 2},
					{"content_id": 9201, "quantity": 25},
					{"content_id": 9204, "quantity": 40},
				},
				"attachments": []int{701, 702},
			},
		},
	}
}
