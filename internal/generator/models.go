// internal/generator/models.go
package generator

// BackgroundImage references a template background by both of its remote
// identifiers.
type BackgroundImage struct {
	ID   int    `json:"id"`
	UUID string `json:"uuid"`
}

// Recipient is the proposal's addressee.
type Recipient struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// Block is one line item on the proposal; ContentID is the selected product's
// variation id.
type Block struct {
	ContentID int                    `json:"content_id"`
	Quantity  int                    `json:"quantity,omitempty"`
	Data      map[string]interface{} `json:"data,omitempty"`
}

// ProposalPayload is the document POSTed to the remote create endpoint,
// produced verbatim by the LLM.
type ProposalPayload struct {
	CompanyID        int                    `json:"company_id"`
	Language         string                 `json:"language"`
	ContactEmail     string                 `json:"contact_email"`
	BackgroundImage  *BackgroundImage       `json:"background_image,omitempty"`
	TitleMd          string                 `json:"title_md"`
	DescriptionMd    string                 `json:"description_md"`
	Recipient        *Recipient             `json:"recipient,omitempty"`
	Data             map[string]interface{} `json:"data,omitempty"`
	InvoicingEnabled bool                   `json:"invoicing_enabled"`
	Blocks           []Block                `json:"blocks"`
	Attachments      []int                  `json:"attachments,omitempty"`
}
