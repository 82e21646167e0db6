// internal/pipeline/stages.go
package pipeline

import (
	"time"

	"proposal-assistant/internal/generator"
	"proposal-assistant/internal/knowledge"
	"proposal-assistant/internal/rfp"
)

// Display-only pricing rates, in whole USD.
const (
	MeetingRoomDayRate  = 500
	RoomNightRate       = 150
	CateringPerAttendee = 45
	TaxRate             = 0.10
)

const dateLayout = "2006-01-02"

// Analyze extracts requirements from the RFP. No external calls.
func Analyze(input *rfp.Input) *Analysis {
	analysis := &Analysis{
		EventType:   input.Event.EventType,
		Attendees:   input.Event.GuestCount,
		MeetingDays: MeetingDays(input.Event.StartDate, input.Event.EndDate),
		Rooms:       input.Event.RoomsNeeded,
		StartDate:   input.Event.StartDate,
		EndDate:     input.Event.EndDate,
	}
	if input.Preferences != nil {
		analysis.Catering = input.Preferences.Catering
		analysis.MeetingSpaces = input.Preferences.MeetingSpaces
	}
	return analysis
}

// MeetingDays counts days between two YYYY-MM-DD dates, inclusive of both
// ends: 2024-01-15 through 2024-01-17 is 3 days. Missing or malformed dates
// count as a single day.
func MeetingDays(startDate, endDate string) int {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return 1
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return 1
	}
	days := int(end.Sub(start).Hours()/24) + 1
	if days < 1 {
		return 1
	}
	return days
}

// MapPayload summarizes the generated payload against the knowledge pack:
// which template, products and attachments the model selected.
func MapPayload(pack *knowledge.Pack, payload *generator.ProposalPayload) *Mapping {
	mapping := &Mapping{
		SelectedProducts:    []MappedProduct{},
		SelectedAttachments: []MappedAttachment{},
	}

	if payload.BackgroundImage != nil {
		for _, template := range pack.Templates {
			if template.BackgroundImageID == payload.BackgroundImage.ID ||
				template.BackgroundImageUUID == payload.BackgroundImage.UUID {
				mapping.Template = template.Title
				break
			}
		}
	}

	productsByContentID := make(map[int]knowledge.Product, len(pack.Products))
	for _, product := range pack.Products {
		productsByContentID[product.VariationID] = product
	}
	for _, block := range payload.Blocks {
		name := "Unknown product"
		if product, ok := productsByContentID[block.ContentID]; ok {
			name = product.Name
		}
		mapping.SelectedProducts = append(mapping.SelectedProducts, MappedProduct{
			Name:      name,
			ContentID: block.ContentID,
		})
	}

	attachmentsByID := make(map[int]knowledge.Attachment, len(pack.Attachments))
	for _, attachment := range pack.Attachments {
		attachmentsByID[attachment.ID] = attachment
	}
	for _, id := range payload.Attachments {
		if attachment, ok := attachmentsByID[id]; ok {
			mapping.SelectedAttachments = append(mapping.SelectedAttachments, MappedAttachment{
				Name: attachment.Name,
				URL:  attachment.URL,
			})
		}
	}

	return mapping
}

// Price builds the display-only estimate from the analysis:
// meeting days at the meeting-room day rate, rooms at the room-night rate,
// and per-attendee catering when requested. Tax is 10% of the subtotal.
func Price(analysis *Analysis) *Pricing {
	pricing := &Pricing{
		Items:    []PricingItem{},
		Currency: "USD",
	}

	if analysis.MeetingDays > 0 {
		pricing.Items = append(pricing.Items, PricingItem{
			Name:      "Meeting room",
			Quantity:  analysis.MeetingDays,
			UnitPrice: MeetingRoomDayRate,
			Total:     analysis.MeetingDays * MeetingRoomDayRate,
		})
	}

	if analysis.Rooms > 0 {
		pricing.Items = append(pricing.Items, PricingItem{
			Name:      "Guest rooms",
			Quantity:  analysis.Rooms,
			UnitPrice: RoomNightRate,
			Total:     analysis.Rooms * RoomNightRate,
		})
	}

	if analysis.Catering && analysis.Attendees > 0 {
		pricing.Items = append(pricing.Items, PricingItem{
			Name:      "Catering",
			Quantity:  analysis.Attendees,
			UnitPrice: CateringPerAttendee,
			Total:     analysis.Attendees * CateringPerAttendee,
		})
	}

	for _, item := range pricing.Items {
		pricing.Subtotal += item.Total
	}
	pricing.Tax = int(float64(pricing.Subtotal) * TaxRate)
	pricing.Total = pricing.Subtotal + pricing.Tax

	return pricing
}
