package recruiting

import (
	"strings"
	"time"

	"github.com/recruitflow/backend/internal/domain/shared"
)

// Applicant represents a job seeker registered with the agency.
// It is the aggregate root for the placement pipeline: the ten nullable
// stage dates record when the applicant reached each funnel step.
type Applicant struct {
	shared.BaseEntity
	Name                  string
	Address               string
	DesiredOccupation     string
	DesiredLocation       string
	Birthdate             *time.Time
	Email                 string
	PhoneNumber           string
	Gender                string
	Nationality           string
	EmploymentStatus      string
	AvailableDate         string
	EmploymentPeriod      string
	MedicalHistory        string
	DisabilityCertificate string
	Tattoo                string
	TattooDetails         string
	CriminalRecord        string
	ClothingSize          string
	CommuteOrDormitory    string
	CommuteMethod         string
	CommuteArea           string
	FactoryExperience     string
	ExperienceDetails     string
	DesiredWorkingHours   string
	RecentApplications    string
	MostImportantPoint    string
	ImportantPointDetails string
	DesiredSalary         string
	Height                string
	Weight                string

	ApplicationDate    *time.Time
	CallDate           *time.Time
	ConnectionDate     *time.Time
	ProposalDate       *time.Time
	DocumentSentDate   *time.Time
	DocumentPassedDate *time.Time
	InterviewDate      *time.Time
	OfferDate          *time.Time
	HireDate           *time.Time
	PaymentDate        *time.Time

	ReferralFee        *int
	AssignedEmployeeID *uint
}

// NewApplicant creates a new applicant with the required name.
func NewApplicant(name string) (*Applicant, error) {
	a := &Applicant{Name: strings.TrimSpace(name)}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

// Validate checks the applicant's required fields.
func (a *Applicant) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return shared.NewDomainError("INVALID_NAME", "Applicant name is required")
	}
	return nil
}

// StageDate returns the date the applicant reached the given stage,
// or nil if the stage has not been reached.
func (a *Applicant) StageDate(s Stage) *time.Time {
	switch s {
	case StageApplication:
		return a.ApplicationDate
	case StageCall:
		return a.CallDate
	case StageConnection:
		return a.ConnectionDate
	case StageProposal:
		return a.ProposalDate
	case StageDocumentSent:
		return a.DocumentSentDate
	case StageDocumentPassed:
		return a.DocumentPassedDate
	case StageInterview:
		return a.InterviewDate
	case StageOffer:
		return a.OfferDate
	case StageHire:
		return a.HireDate
	case StagePayment:
		return a.PaymentDate
	}
	return nil
}

// SetStageDate records (or clears, when date is nil) the date for one
// pipeline stage. Unknown stage names are rejected.
func (a *Applicant) SetStageDate(s Stage, date *time.Time) error {
	switch s {
	case StageApplication:
		a.ApplicationDate = date
	case StageCall:
		a.CallDate = date
	case StageConnection:
		a.ConnectionDate = date
	case StageProposal:
		a.ProposalDate = date
	case StageDocumentSent:
		a.DocumentSentDate = date
	case StageDocumentPassed:
		a.DocumentPassedDate = date
	case StageInterview:
		a.InterviewDate = date
	case StageOffer:
		a.OfferDate = date
	case StageHire:
		a.HireDate = date
	case StagePayment:
		a.PaymentDate = date
	default:
		return shared.NewDomainError("INVALID_STAGE", "Unknown pipeline stage: "+string(s))
	}
	return nil
}

// SetReferralFee sets the expected referral fee in currency units.
// Negative fees are rejected; nil clears the fee.
func (a *Applicant) SetReferralFee(fee *int) error {
	if fee != nil && *fee < 0 {
		return shared.NewDomainError("INVALID_REFERRAL_FEE", "Referral fee cannot be negative")
	}
	a.ReferralFee = fee
	return nil
}

// AssignEmployee sets the employee responsible for this applicant.
// A nil id clears the assignment.
func (a *Applicant) AssignEmployee(employeeID *uint) {
	a.AssignedEmployeeID = employeeID
}
