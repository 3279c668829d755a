package recruiting

import "context"

// ApplicantRepository defines the interface for applicant persistence
type ApplicantRepository interface {
	// FindByID finds an applicant by ID
	FindByID(ctx context.Context, id uint) (*Applicant, error)

	// FindAll returns all applicants, newest first
	FindAll(ctx context.Context) ([]Applicant, error)

	// FindByIDs returns the applicants with the given IDs
	FindByIDs(ctx context.Context, ids []uint) ([]Applicant, error)

	// FindByEmployee returns the distinct applicants linked to an
	// employee through phone call records
	FindByEmployee(ctx context.Context, employeeID uint) ([]Applicant, error)

	// Save creates or updates an applicant
	Save(ctx context.Context, applicant *Applicant) error

	// Delete removes an applicant and its dependent call and
	// interview records
	Delete(ctx context.Context, id uint) error
}
