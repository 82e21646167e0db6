// internal/rfp/models.go
package rfp

// Customer identifies who the proposal is for.
type Customer struct {
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	CompanyName   string `json:"companyName,omitempty"`
}

// Event describes the requested booking.
type Event struct {
	EventType   string `json:"eventType"`
	StartDate   string `json:"startDate,omitempty"` // YYYY-MM-DD
	EndDate     string `json:"endDate,omitempty"`   // YYYY-MM-DD
	GuestCount  int    `json:"guestCount,omitempty"`
	RoomsNeeded int    `json:"roomsNeeded,omitempty"`
}

// Preferences carries optional requirements and tone hints.
type Preferences struct {
	MeetingSpaces   bool   `json:"meetingSpaces,omitempty"`
	Catering        bool   `json:"catering,omitempty"`
	Tone            string `json:"tone,omitempty"`
	AdditionalBrief string `json:"additionalBrief,omitempty"`
}

// Input is a structured request-for-proposal.
type Input struct {
	Customer    Customer     `json:"customer"`
	Event       Event        `json:"event"`
	Preferences *Preferences `json:"preferences,omitempty"`
}
