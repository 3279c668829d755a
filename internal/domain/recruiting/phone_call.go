package recruiting

import (
	"time"

	"github.com/recruitflow/backend/internal/domain/shared"
)

// CallStatus represents the outcome of one phone call attempt.
type CallStatus string

const (
	CallStatusScheduled CallStatus = "scheduled"
	CallStatusCompleted CallStatus = "completed"
	CallStatusNoAnswer  CallStatus = "no_answer"
	CallStatusCancelled CallStatus = "cancelled"
)

// IsValidCallStatus reports whether s is a known call status.
func IsValidCallStatus(s CallStatus) bool {
	switch s {
	case CallStatusScheduled, CallStatusCompleted, CallStatusNoAnswer, CallStatusCancelled:
		return true
	}
	return false
}

// PhoneCall records one call attempt to an applicant. The employee
// reference is the association used for per-employee KPI scopes: an
// applicant belongs to every employee who has called them, there is no
// exclusivity.
type PhoneCall struct {
	shared.BaseEntity
	ApplicantID  uint
	EmployeeID   *uint
	CallDate     time.Time
	Status       CallStatus
	Notes        string
	FollowUpDate *time.Time
}

// NewPhoneCall creates a new phone call record.
func NewPhoneCall(applicantID uint, callDate time.Time, status CallStatus) (*PhoneCall, error) {
	if status == "" {
		status = CallStatusScheduled
	}
	p := &PhoneCall{
		ApplicantID: applicantID,
		CallDate:    callDate,
		Status:      status,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks the phone call's required fields.
func (p *PhoneCall) Validate() error {
	if p.ApplicantID == 0 {
		return shared.NewDomainError("INVALID_APPLICANT", "Phone call requires an applicant")
	}
	if p.CallDate.IsZero() {
		return shared.NewDomainError("INVALID_CALL_DATE", "Phone call requires a call date")
	}
	if !IsValidCallStatus(p.Status) {
		return shared.NewDomainError("INVALID_STATUS", "Unknown call status: "+string(p.Status))
	}
	return nil
}
