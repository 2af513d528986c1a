package models

import "time"

// Job application pipeline statuses.
const (
	ApplicationStatusReceived    = "Received"
	ApplicationStatusUnderReview = "Under Review"
	ApplicationStatusInterview   = "Interview"
	ApplicationStatusOffered     = "Offered"
	ApplicationStatusRejected    = "Rejected"
)

// ResumeNotAttached is stored when an application is submitted without a resume.
const ResumeNotAttached = "Not Attached"

// PersonalDetails is the applicant-facing identity block of an application.
type PersonalDetails struct {
	FullName string `bson:"full_name" json:"fullName"`
	Email    string `bson:"email" json:"email"`
	Phone    string `bson:"phone" json:"phone"`
	Address  string `bson:"address,omitempty" json:"address,omitempty"`
}

// EducationEntry is one education record in an application dossier.
type EducationEntry struct {
	Institution string `bson:"institution" json:"institution"`
	Degree      string `bson:"degree" json:"degree"`
	Field       string `bson:"field,omitempty" json:"field,omitempty"`
	StartYear   string `bson:"start_year,omitempty" json:"startYear,omitempty"`
	EndYear     string `bson:"end_year,omitempty" json:"endYear,omitempty"`
}

// ExperienceEntry is one employment record in an application dossier.
type ExperienceEntry struct {
	Company     string `bson:"company" json:"company"`
	Title       string `bson:"title" json:"title"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
	StartDate   string `bson:"start_date,omitempty" json:"startDate,omitempty"`
	EndDate     string `bson:"end_date,omitempty" json:"endDate,omitempty"`
}

// JobApplication is a submitted dossier referencing a job and a user.
type JobApplication struct {
	ID          string            `bson:"id" json:"id"`
	JobID       string            `bson:"job_id" json:"jobId"`
	UserID      string            `bson:"user_id" json:"userId"`
	Personal    PersonalDetails   `bson:"personal" json:"personal"`
	Education   []EducationEntry  `bson:"education,omitempty" json:"education,omitempty"`
	Experience  []ExperienceEntry `bson:"experience,omitempty" json:"experience,omitempty"`
	ResumeURL   string            `bson:"resume_url" json:"resumeUrl"`
	CoverLetter string            `bson:"cover_letter,omitempty" json:"coverLetter,omitempty"`
	Status      string            `bson:"status" json:"status"`
	SubmittedAt time.Time         `bson:"submitted_at" json:"submittedAt"`
	UpdatedAt   time.Time         `bson:"updated_at" json:"updatedAt"`
}

// applicationTransitions maps each status to the statuses it may advance to.
var applicationTransitions = map[string][]string{
	ApplicationStatusReceived:    {ApplicationStatusUnderReview, ApplicationStatusRejected},
	ApplicationStatusUnderReview: {ApplicationStatusInterview, ApplicationStatusRejected},
	ApplicationStatusInterview:   {ApplicationStatusOffered, ApplicationStatusRejected},
}

// CanTransitionApplication reports whether an application may move from one
// pipeline status to another. Offered and Rejected are terminal.
func CanTransitionApplication(from, to string) bool {
	for _, next := range applicationTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
