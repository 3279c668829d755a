package recruiting

import "context"

// PhoneCallRepository defines the interface for phone call persistence
type PhoneCallRepository interface {
	// FindByID finds a phone call record by ID
	FindByID(ctx context.Context, id uint) (*PhoneCall, error)

	// FindAll returns all phone call records
	FindAll(ctx context.Context) ([]PhoneCall, error)

	// FindByApplicant returns all call records for one applicant
	FindByApplicant(ctx context.Context, applicantID uint) ([]PhoneCall, error)

	// FindByEmployee returns all call records made by one employee
	FindByEmployee(ctx context.Context, employeeID uint) ([]PhoneCall, error)

	// Save creates or updates a phone call record
	Save(ctx context.Context, call *PhoneCall) error

	// Delete removes a phone call record
	Delete(ctx context.Context, id uint) error
}
