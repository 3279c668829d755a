package persistence

import (
	"context"
	"errors"

	"github.com/recruitflow/backend/internal/domain/recruiting"
	"github.com/recruitflow/backend/internal/domain/shared"
	"github.com/recruitflow/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormInterviewRepository implements InterviewRepository using GORM
type GormInterviewRepository struct {
	db *gorm.DB
}

// NewGormInterviewRepository creates a new GormInterviewRepository
func NewGormInterviewRepository(db *gorm.DB) *GormInterviewRepository {
	return &GormInterviewRepository{db: db}
}

// FindByID finds an interview by its ID
func (r *GormInterviewRepository) FindByID(ctx context.Context, id uint) (*recruiting.Interview, error) {
	var model models.InterviewModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns all interviews
func (r *GormInterviewRepository) FindAll(ctx context.Context) ([]recruiting.Interview, error) {
	var interviewModels []models.InterviewModel
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&interviewModels).Error; err != nil {
		return nil, err
	}

	interviews := make([]recruiting.Interview, len(interviewModels))
	for i, model := range interviewModels {
		interviews[i] = *model.ToDomain()
	}
	return interviews, nil
}

// FindByApplicant returns all interviews for one applicant
func (r *GormInterviewRepository) FindByApplicant(ctx context.Context, applicantID uint) ([]recruiting.Interview, error) {
	var interviewModels []models.InterviewModel
	if err := r.db.WithContext(ctx).
		Where("applicant_id = ?", applicantID).
		Order("created_at DESC").
		Find(&interviewModels).Error; err != nil {
		return nil, err
	}

	interviews := make([]recruiting.Interview, len(interviewModels))
	for i, model := range interviewModels {
		interviews[i] = *model.ToDomain()
	}
	return interviews, nil
}

// Count returns the total number of interviews
func (r *GormInterviewRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.InterviewModel{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByResult returns the number of interviews with the given result
func (r *GormInterviewRepository) CountByResult(ctx context.Context, result recruiting.InterviewResult) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.InterviewModel{}).
		Where("result = ?", result).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates an interview
func (r *GormInterviewRepository) Save(ctx context.Context, interview *recruiting.Interview) error {
	model := models.InterviewModelFromDomain(interview)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return err
	}
	interview.BaseEntity = model.BaseModel.ToDomain()
	return nil
}

// Delete removes an interview
func (r *GormInterviewRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.InterviewModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
