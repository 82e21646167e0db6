// internal/chat/suggestions.go
package chat

// SuggestedAction is a canned opener the UI can offer.
type SuggestedAction struct {
	Title  string `json:"title"`
	Label  string `json:"label"`
	Action string `json:"action"`
}

// SuggestedActions feed the chat UI's quick-start buttons.
var SuggestedActions = []SuggestedAction{
	{Title: "List", Label: "all content", Action: "List all content"},
	{Title: "List", Label: "all companies", Action: "List all companies"},
	{Title: "Create", Label: "a new proposal", Action: "Create a new proposal"},
	{Title: "View", Label: "a proposal by UUID", Action: "View a proposal"},
}
