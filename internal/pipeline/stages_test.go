// internal/pipeline/stages_test.go
package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"proposal-assistant/internal/generator"
	"proposal-assistant/internal/knowledge"
	"proposal-assistant/internal/rfp"
)

func TestMeetingDays(t *testing.T) {
	tests := []struct {
		name      string
		startDate string
		endDate   string
		expected  int
	}{
		{name: "three days inclusive", startDate: "2024-01-15", endDate: "2024-01-17", expected: 3},
		{name: "single day", startDate: "2024-10-05", endDate: "2024-10-05", expected: 1},
		{name: "two days", startDate: "2024-09-12", endDate: "2024-09-13", expected: 2},
		{name: "missing start", startDate: "", endDate: "2024-01-17", expected: 1},
		{name: "missing end", startDate: "2024-01-15", endDate: "", expected: 1},
		{name: "malformed", startDate: "Jan 15", endDate: "Jan 17", expected: 1},
		{name: "end before start", startDate: "2024-01-17", endDate: "2024-01-15", expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MeetingDays(tt.startDate, tt.endDate))
		})
	}
}

func TestAnalyze(t *testing.T) {
	input := &rfp.Input{
		Customer: rfp.Customer{CustomerName: "Emma", CustomerEmail: "emma@example.com"},
		Event: rfp.Event{
			EventType:   "conference",
			StartDate:   "2024-01-15",
			EndDate:     "2024-01-17",
			GuestCount:  100,
			RoomsNeeded: 50,
		},
		Preferences: &rfp.Preferences{Catering: true, MeetingSpaces: true},
	}

	analysis := Analyze(input)

	assert.Equal(t, "conference", analysis.EventType)
	assert.Equal(t, 100, analysis.Attendees)
	assert.Equal(t, 3, analysis.MeetingDays)
	assert.Equal(t, 50, analysis.Rooms)
	assert.True(t, analysis.Catering)
	assert.True(t, analysis.MeetingSpaces)
}

func TestAnalyze_NoPreferences(t *testing.T) {
	input := &rfp.Input{
		Event: rfp.Event{EventType: "wedding"},
	}

	analysis := Analyze(input)

	assert.False(t, analysis.Catering)
	assert.False(t, analysis.MeetingSpaces)
	assert.Equal(t, 1, analysis.MeetingDays)
}

func TestPrice(t *testing.T) {
	tests := []struct {
		name             string
		analysis         *Analysis
		expectedSubtotal int
		expectedTax      int
		expectedTotal    int
		expectedItems    int
	}{
		{
			name: "conference with rooms and catering",
			analysis: &Analysis{
				MeetingDays: 3,
				Rooms:       50,
				Catering:    true,
				Attendees:   100,
			},
			expectedSubtotal: 13500,
			expectedTax:      1350,
			expectedTotal:    14850,
			expectedItems:    3,
		},
		{
			name: "no catering drops the per-attendee line",
			analysis: &Analysis{
				MeetingDays: 3,
				Rooms:       50,
				Catering:    false,
				Attendees:   100,
			},
			expectedSubtotal: 9000,
			expectedTax:      900,
			expectedTotal:    9900,
			expectedItems:    2,
		},
		{
			name: "single day no rooms",
			analysis: &Analysis{
				MeetingDays: 1,
				Catering:    true,
				Attendees:   120,
			},
			expectedSubtotal: 5900,
			expectedTax:      590,
			expectedTotal:    6490,
			expectedItems:    2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pricing := Price(tt.analysis)

			assert.Equal(t, tt.expectedSubtotal, pricing.Subtotal)
			assert.Equal(t, tt.expectedTax, pricing.Tax)
			assert.Equal(t, tt.expectedTotal, pricing.Total)
			assert.Len(t, pricing.Items, tt.expectedItems)
			assert.Equal(t, "USD", pricing.Currency)

			sum := 0
			for _, item := range pricing.Items {
				assert.Equal(t, item.Quantity*item.UnitPrice, item.Total)
				sum += item.Total
			}
			assert.Equal(t, pricing.Subtotal, sum)
		})
	}
}

func TestMapPayload(t *testing.T) {
	pack := knowledge.Default()
	payload := &generator.ProposalPayload{
		BackgroundImage: &generator.BackgroundImage{
			ID:   31204,
			UUID: "7c1f36d8-43a2-4a5b-b1e9-2f6d8a90c4e1",
		},
		Blocks: []generator.Block{
			{ContentID: 9202, Quantity: 2},
			{ContentID: 9201, Quantity: 25},
			{ContentID: 99999, Quantity: 1}, // not in the pack
		},
		Attachments: []int{701, 999},
	}

	mapping := MapPayload(pack, payload)

	assert.Equal(t, "Corporate Meeting Package", mapping.Template)
	require.Len(t, mapping.SelectedProducts, 3)
	assert.Equal(t, "Meeting Room (full day)", mapping.SelectedProducts[0].Name)
	assert.Equal(t, "Standard Room", mapping.SelectedProducts[1].Name)
	assert.Equal(t, "Unknown product", mapping.SelectedProducts[2].Name)

	// Unknown attachment ids are skipped.
	require.Len(t, mapping.SelectedAttachments, 1)
	assert.Equal(t, "Meeting Facilities Brochure", mapping.SelectedAttachments[0].Name)
}

func TestMapPayload_NoBackgroundImage(t *testing.T) {
	mapping := MapPayload(knowledge.Default(), &generator.ProposalPayload{})
	assert.Empty(t, mapping.Template)
	assert.Empty(t, mapping.SelectedProducts)
	assert.Empty(t, mapping.SelectedAttachments)
}
