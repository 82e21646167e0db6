// internal/rfp/samples.go
package rfp

// SampleRfps are canned requests used by the assistant's "create a proposal"
// suggestion when the user has not supplied their own RFP.
var SampleRfps = []Input{
	{
		Customer: Customer{
			CustomerName:  "Emma Lindberg",
			CustomerEmail: "emma.lindberg@northstarconsulting.com",
			CompanyName:   "NorthStar Consulting",
		},
		Event: Event{
			EventType:   "corporate_meeting",
			StartDate:   "2024-09-12",
			EndDate:     "2024-09-13",
			GuestCount:  40,
			RoomsNeeded: 25,
		},
		Preferences: &Preferences{
			MeetingSpaces:   true,
			Catering:        true,
			Tone:            "professional",
			AdditionalBrief: "This is an annual strategy retreat for the leadership team. They require a bright meeting room for 40 people, two breakout rooms, and lunch served both days. Dinner is not required. Accommodation for 25 executives is needed. They require strong WiFi and a projector for presentations.",
		},
	},
	{
		Customer: Customer{
			CustomerName:  "Lucas Meyer",
			CustomerEmail: "lucas@skygrid.io",
			CompanyName:   "SkyGrid Technologies",
		},
		Event: Event{
			EventType:   "launch_event",
			StartDate:   "2024-10-05",
			EndDate:     "2024-10-05",
			GuestCount:  120,
			RoomsNeeded: 0,
		},
		Preferences: &Preferences{
			MeetingSpaces:   true,
			Catering:        true,
			Tone:            "energetic",
			AdditionalBrief: "SkyGrid is hosting a one-day product launch with 120 guests. They need a large conference room with stage lighting, cocktail-style standing tables, coffee service throughout the day, and a buffet dinner at the end. No accommodation required.",
		},
	},
	{
		Customer: Customer{
			CustomerName:  "Dr. Helena Schmidt",
			CustomerEmail: "h.schmidt@medivision.org",
			CompanyName:   "MediVision International",
		},
		Event: Event{
			EventType:   "conference",
			StartDate:   "2025-03-20",
			EndDate:     "2025-03-22",
			GuestCount:  300,
			RoomsNeeded: 150,
		},
		Preferences: &Preferences{
			MeetingSpaces:   true,
			Catering:        true,
			Tone:            "formal",
			AdditionalBrief: "This is a large-scale medical conference requiring a main plenary hall for 300 attendees, 5 breakout rooms for parallel sessions, full catering (breakfast, lunch, and coffee) for three days, welcome dinner on day 1 and gala dinner on day 2. 150 international delegates will require accommodation. Vegan and gluten-free options must be available.",
		},
	},
	{
		Customer: Customer{
			CustomerName:  "David Wu",
			CustomerEmail: "david.wu@macrosoft.com",
			CompanyName:   "Macrosoft",
		},
		Event: Event{
			EventType:   "team_offsite",
			StartDate:   "2024-05-03",
			EndDate:     "2024-05-05",
			GuestCount:  18,
			RoomsNeeded: 18,
		},
		Preferences: &Preferences{
			MeetingSpaces:   true,
			Catering:        false,
			Tone:            "informal",
			AdditionalBrief: "This offsite is for the engineering team. They need a meeting room for 20 people for workshops and code-alongs, plus comfortable breakout areas. They will organize their own meals but need coffee/tea and snacks available throughout the day. Each guest needs their own single room. No dinners requested.",
		},
	},
	{
		Customer: Customer{
			CustomerName:  "Sarah Bennett",
			CustomerEmail: "sarah.bennett@example.com",
			CompanyName:   "Private",
		},
		Event: Event{
			EventType:   "wedding",
			StartDate:   "2024-08-10",
			EndDate:     "2024-08-11",
			GuestCount:  200,
			RoomsNeeded: 80,
		},
		Preferences: &Preferences{
			MeetingSpaces:   false,
			Catering:        true,
			Tone:            "romantic",
			AdditionalBrief: "A two-day destination wedding for 200 guests. They require an outdoor ceremony setup, indoor dining hall for a formal dinner, vegan options for at least 20 guests, brunch for all attendees the next morning, and rooms for 80 guests. The design aesthetic should feel premium and elegant.",
		},
	},
}
