package recruiting

import "context"

// JobRepository defines the interface for job posting persistence
type JobRepository interface {
	// FindByID finds a job by ID
	FindByID(ctx context.Context, id uint) (*Job, error)

	// FindAll returns all job postings, newest first
	FindAll(ctx context.Context) ([]Job, error)

	// Save creates or updates a job posting
	Save(ctx context.Context, job *Job) error

	// Delete removes a job posting
	Delete(ctx context.Context, id uint) error
}
