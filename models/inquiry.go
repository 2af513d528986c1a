package models

import "time"

// Inquiry types.
const (
	InquiryTypeAppointment = "appointment"
	InquiryTypeRFP         = "rfp"
	InquiryTypeContact     = "contact"
)

// Inquiry lifecycle statuses.
const (
	InquiryStatusNew      = "new"
	InquiryStatusReviewed = "reviewed"
	InquiryStatusArchived = "archived"
)

// InquiryClassification is the AI-assigned triage label. Nil when the
// classification call failed or was skipped.
type InquiryClassification struct {
	PracticeArea string `bson:"practice_area" json:"practiceArea"`
	Urgency      string `bson:"urgency" json:"urgency"`
}

// Inquiry is any inbound lead: appointment booking, RFP, or contact message.
type Inquiry struct {
	ID             string                 `bson:"id" json:"id"`
	Reference      string                 `bson:"reference" json:"reference"`
	Type           string                 `bson:"type" json:"type"`
	Name           string                 `bson:"name" json:"name"`
	Email          string                 `bson:"email" json:"email"`
	Phone          string                 `bson:"phone,omitempty" json:"phone,omitempty"`
	Details        map[string]interface{} `bson:"details,omitempty" json:"details,omitempty"`
	Classification *InquiryClassification `bson:"classification,omitempty" json:"classification,omitempty"`
	Status         string                 `bson:"status" json:"status"`
	CreatedAt      time.Time              `bson:"created_at" json:"createdAt"`
	UpdatedAt      time.Time              `bson:"updated_at" json:"updatedAt"`
}

// ValidInquiryType reports whether t is a recognized inquiry type.
func ValidInquiryType(t string) bool {
	switch t {
	case InquiryTypeAppointment, InquiryTypeRFP, InquiryTypeContact:
		return true
	}
	return false
}

// ValidInquiryStatus reports whether s is a recognized lifecycle status.
func ValidInquiryStatus(s string) bool {
	switch s {
	case InquiryStatusNew, InquiryStatusReviewed, InquiryStatusArchived:
		return true
	}
	return false
}
