package persistence

import (
	"context"
	"errors"

	"github.com/recruitflow/backend/internal/domain/recruiting"
	"github.com/recruitflow/backend/internal/domain/shared"
	"github.com/recruitflow/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormJobRepository implements JobRepository using GORM
type GormJobRepository struct {
	db *gorm.DB
}

// NewGormJobRepository creates a new GormJobRepository
func NewGormJobRepository(db *gorm.DB) *GormJobRepository {
	return &GormJobRepository{db: db}
}

// FindByID finds a job by its ID
func (r *GormJobRepository) FindByID(ctx context.Context, id uint) (*recruiting.Job, error) {
	var model models.JobModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns all job postings, newest first
func (r *GormJobRepository) FindAll(ctx context.Context) ([]recruiting.Job, error) {
	var jobModels []models.JobModel
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&jobModels).Error; err != nil {
		return nil, err
	}

	jobs := make([]recruiting.Job, len(jobModels))
	for i, model := range jobModels {
		jobs[i] = *model.ToDomain()
	}
	return jobs, nil
}

// Save creates or updates a job posting
func (r *GormJobRepository) Save(ctx context.Context, job *recruiting.Job) error {
	model := models.JobModelFromDomain(job)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return err
	}
	job.BaseEntity = model.BaseModel.ToDomain()
	return nil
}

// Delete removes a job posting
func (r *GormJobRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.InterviewModel{}).
			Where("job_id = ?", id).
			Update("job_id", nil).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.JobModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}
