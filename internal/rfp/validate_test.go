// internal/rfp/validate_test.go
package rfp

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"proposal-assistant/internal/common/logger"
)

func validInput() *Input {
	return &Input{
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
		Preferences: &Preferences{MeetingSpaces: true, Catering: true},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(input *Input)
		valid  bool
	}{
		{
			name:   "complete rfp",
			mutate: func(input *Input) {},
			valid:  true,
		},
		{
			name:   "missing preferences is still valid",
			mutate: func(input *Input) { input.Preferences = nil },
			valid:  true,
		},
		{
			name:   "missing customer name",
			mutate: func(input *Input) { input.Customer.CustomerName = "" },
			valid:  false,
		},
		{
			name:   "missing customer email",
			mutate: func(input *Input) { input.Customer.CustomerEmail = "" },
			valid:  false,
		},
		{
			name:   "malformed customer email",
			mutate: func(input *Input) { input.Customer.CustomerEmail = "not-an-email" },
			valid:  false,
		},
		{
			name:   "missing event type",
			mutate: func(input *Input) { input.Event.EventType = "" },
			valid:  false,
		},
		{
			name:   "missing dates and counts are still valid",
			mutate: func(input *Input) { input.Event = Event{EventType: "wedding"} },
			valid:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(input)
			assert.Equal(t, tt.valid, Validate(logger.NewTestLogger(t), input))
		})
	}
}

func TestValidate_NilInput(t *testing.T) {
	assert.False(t, Validate(logger.NewTestLogger(t), nil))
}

func TestValidateDocument(t *testing.T) {
	tests := []struct {
		name     string
		document string
		valid    bool
	}{
		{
			name:     "complete document",
			document: `{"customer":{"customerName":"Emma","customerEmail":"emma@example.com"},"event":{"eventType":"conference"}}`,
			valid:    true,
		},
		{
			name:     "missing customer",
			document: `{"event":{"eventType":"conference"}}`,
			valid:    false,
		},
		{
			name:     "empty event type",
			document: `{"customer":{"customerName":"Emma","customerEmail":"emma@example.com"},"event":{"eventType":""}}`,
			valid:    false,
		},
		{
			name:     "negative rooms",
			document: `{"customer":{"customerName":"Emma","customerEmail":"emma@example.com"},"event":{"eventType":"conference","roomsNeeded":-1}}`,
			valid:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ValidateDocument([]byte(tt.document))
			require.NoError(t, err)
			assert.Equal(t, tt.valid, result.Valid)
			if !tt.valid {
				assert.NotEmpty(t, result.Errors)
			}
		})
	}
}

func TestSampleRfps_AllValid(t *testing.T) {
	require.Len(t, SampleRfps, 5)
	for i := range SampleRfps {
		sample := SampleRfps[i]
		assert.True(t, Validate(logger.NewTestLogger(t), &sample))

		raw, err := json.Marshal(sample)
		require.NoError(t, err)
		result, err := ValidateDocument(raw)
		require.NoError(t, err)
		assert.True(t, result.Valid)
	}
}
