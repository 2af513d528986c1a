package models

// Practice areas an inquiry may be classified into.
var PracticeAreas = []string{
	"Corporate & Commercial",
	"Dispute Resolution",
	"Real Estate & Conveyancing",
	"Employment & Labour",
	"Intellectual Property",
	"Family Law",
	"Tax",
	"Other",
}

// Urgency labels for inquiry triage.
const (
	UrgencyLow    = "low"
	UrgencyMedium = "medium"
	UrgencyHigh   = "high"
)

// ResumeExtraction is the structured result of extracting fields from an
// uploaded resume. Nil when extraction failed; the applicant falls back to
// manual entry.
type ResumeExtraction struct {
	Name       string            `json:"name"`
	Email      string            `json:"email"`
	Phone      string            `json:"phone"`
	Education  []EducationEntry  `json:"education"`
	Experience []ExperienceEntry `json:"experience"`
}
