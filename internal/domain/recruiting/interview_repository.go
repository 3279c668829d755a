package recruiting

import "context"

// InterviewRepository defines the interface for interview persistence
type InterviewRepository interface {
	// FindByID finds an interview by ID
	FindByID(ctx context.Context, id uint) (*Interview, error)

	// FindAll returns all interviews
	FindAll(ctx context.Context) ([]Interview, error)

	// FindByApplicant returns all interviews for one applicant
	FindByApplicant(ctx context.Context, applicantID uint) ([]Interview, error)

	// Count returns the total number of interviews
	Count(ctx context.Context) (int64, error)

	// CountByResult returns the number of interviews with the given result
	CountByResult(ctx context.Context, result InterviewResult) (int64, error)

	// Save creates or updates an interview
	Save(ctx context.Context, interview *Interview) error

	// Delete removes an interview
	Delete(ctx context.Context, id uint) error
}
