package models

// EmailAttachment is a file attached to an outbound email.
type EmailAttachment struct {
	Filename string `json:"filename"`
	Content  string `json:"content"` // base64
}

// EmailMessage is the payload forwarded to the transactional email provider.
type EmailMessage struct {
	To          []string          `json:"to"`
	Subject     string            `json:"subject"`
	HTML        string            `json:"html"`
	ReplyTo     string            `json:"reply_to,omitempty"`
	Attachments []EmailAttachment `json:"attachments,omitempty"`
}
