package recruiting

import (
	"time"

	"github.com/recruitflow/backend/internal/domain/shared"
)

// InterviewStatus represents the scheduling state of an interview.
type InterviewStatus string

const (
	InterviewStatusScheduled InterviewStatus = "scheduled"
	InterviewStatusCompleted InterviewStatus = "completed"
	InterviewStatusCancelled InterviewStatus = "cancelled"
)

// InterviewResult represents the outcome of a completed interview.
type InterviewResult string

const (
	InterviewResultPassed  InterviewResult = "passed"
	InterviewResultFailed  InterviewResult = "failed"
	InterviewResultPending InterviewResult = "pending"
)

// Interview records an interview between an applicant and a client
// company, optionally tied to a specific job posting.
type Interview struct {
	shared.BaseEntity
	ApplicantID     uint
	JobID           *uint
	Date            *time.Time
	Status          InterviewStatus
	Result          InterviewResult
	Notes           string
	PreparationInfo string
}

// NewInterview creates a new interview for an applicant.
func NewInterview(applicantID uint) (*Interview, error) {
	i := &Interview{
		ApplicantID: applicantID,
		Status:      InterviewStatusScheduled,
	}
	if err := i.Validate(); err != nil {
		return nil, err
	}
	return i, nil
}

// Validate checks the interview's required fields and enum values.
func (i *Interview) Validate() error {
	if i.ApplicantID == 0 {
		return shared.NewDomainError("INVALID_APPLICANT", "Interview requires an applicant")
	}
	switch i.Status {
	case InterviewStatusScheduled, InterviewStatusCompleted, InterviewStatusCancelled:
	default:
		return shared.NewDomainError("INVALID_STATUS", "Unknown interview status: "+string(i.Status))
	}
	switch i.Result {
	case "", InterviewResultPassed, InterviewResultFailed, InterviewResultPending:
	default:
		return shared.NewDomainError("INVALID_RESULT", "Unknown interview result: "+string(i.Result))
	}
	return nil
}
