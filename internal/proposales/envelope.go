// internal/proposales/envelope.go
package proposales

// The remote API wraps most responses in a {"data": ...} envelope, but a few
// endpoints return the payload bare. These helpers accept either shape.

// UnwrapData returns the value under "data" when the response is an enveloped
// object, otherwise the response itself.
func UnwrapData(response interface{}) interface{} {
	if obj, ok := response.(map[string]interface{}); ok {
		if data, present := obj["data"]; present {
			return data
		}
	}
	return response
}

// UnwrapList returns the enveloped or bare response as a slice. A response
// that is neither yields an empty slice.
func UnwrapList(response interface{}) []interface{} {
	switch v := UnwrapData(response).(type) {
	case []interface{}:
		return v
	default:
		return []interface{}{}
	}
}

// LocalizedString extracts a display string from a localized value such as
// {"en": "Deluxe Room", "sv": "Deluxerum"}. Plain strings pass through;
// localized objects prefer "en" then "en-US", falling back to the first
// string value found.
func LocalizedString(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case map[string]interface{}:
		for _, key := range []string{"en", "en-US"} {
			if s, ok := v[key].(string); ok && s != "" {
				return s
			}
		}
		for _, candidate := range v {
			if s, ok := candidate.(string); ok && s != "" {
				return s
			}
		}
	}
	return ""
}
