// internal/rfp/validate.go
package rfp

import (
	"proposal-assistant/internal/common/logger"
	"proposal-assistant/internal/common/validation"
)

// Validate reports whether the RFP carries the minimum fields a proposal can
// be generated from. Failures are logged with the offending field; the caller
// only sees the boolean.
func Validate(log logger.Logger, input *Input) bool {
	if input == nil {
		log.Warn("rfp validation failed", map[string]interface{}{
			"reason": "rfp is nil",
		})
		return false
	}

	if input.Customer.CustomerName == "" {
		log.Warn("rfp validation failed", map[string]interface{}{
			"field":  "customer.customerName",
			"reason": "must not be empty",
		})
		return false
	}

	if !validation.ValidateEmail(input.Customer.CustomerEmail) {
		log.Warn("rfp validation failed", map[string]interface{}{
			"field":  "customer.customerEmail",
			"reason": "not a well-formed email address",
			"value":  input.Customer.CustomerEmail,
		})
		return false
	}

	if input.Event.EventType == "" {
		log.Warn("rfp validation failed", map[string]interface{}{
			"field":  "event.eventType",
			"reason": "must not be empty",
		})
		return false
	}

	return true
}

// documentSchema is the JSON-shape check applied to raw request bodies before
// they are decoded into an Input.
var documentSchema = map[string]interface{}{
	"type":     "object",
	"required": []string{"customer", "event"},
	"properties": map[string]interface{}{
		"customer": map[string]interface{}{
			"type":     "object",
			"required": []string{"customerName", "customerEmail"},
			"properties": map[string]interface{}{
				"customerName":  map[string]interface{}{"type": "string", "minLength": 1},
				"customerEmail": map[string]interface{}{"type": "string", "minLength": 1},
				"companyName":   map[string]interface{}{"type": "string"},
			},
		},
		"event": map[string]interface{}{
			"type":     "object",
			"required": []string{"eventType"},
			"properties": map[string]interface{}{
				"eventType":   map[string]interface{}{"type": "string", "minLength": 1},
				"startDate":   map[string]interface{}{"type": "string"},
				"endDate":     map[string]interface{}{"type": "string"},
				"guestCount":  map[string]interface{}{"type": "integer", "minimum": 0},
				"roomsNeeded": map[string]interface{}{"type": "integer", "minimum": 0},
			},
		},
		"preferences": map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"meetingSpaces":   map[string]interface{}{"type": "boolean"},
				"catering":        map[string]interface{}{"type": "boolean"},
				"tone":            map[string]interface{}{"type": "string"},
				"additionalBrief": map[string]interface{}{"type": "string"},
			},
		},
	},
}

// ValidateDocument runs the JSON schema against a raw RFP document.
func ValidateDocument(document []byte) (*validation.Result, error) {
	return validation.ValidateBytes(documentSchema, document)
}
