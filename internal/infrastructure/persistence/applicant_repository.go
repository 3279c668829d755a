package persistence

import (
	"context"
	"errors"

	"github.com/recruitflow/backend/internal/domain/recruiting"
	"github.com/recruitflow/backend/internal/domain/shared"
	"github.com/recruitflow/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormApplicantRepository implements ApplicantRepository using GORM
type GormApplicantRepository struct {
	db *gorm.DB
}

// NewGormApplicantRepository creates a new GormApplicantRepository
func NewGormApplicantRepository(db *gorm.DB) *GormApplicantRepository {
	return &GormApplicantRepository{db: db}
}

// FindByID finds an applicant by its ID
func (r *GormApplicantRepository) FindByID(ctx context.Context, id uint) (*recruiting.Applicant, error) {
	var model models.ApplicantModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns all applicants, newest first
func (r *GormApplicantRepository) FindAll(ctx context.Context) ([]recruiting.Applicant, error) {
	var applicantModels []models.ApplicantModel
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&applicantModels).Error; err != nil {
		return nil, err
	}

	applicants := make([]recruiting.Applicant, len(applicantModels))
	for i, model := range applicantModels {
		applicants[i] = *model.ToDomain()
	}
	return applicants, nil
}

// FindByIDs returns the applicants with the given IDs
func (r *GormApplicantRepository) FindByIDs(ctx context.Context, ids []uint) ([]recruiting.Applicant, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var applicantModels []models.ApplicantModel
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&applicantModels).Error; err != nil {
		return nil, err
	}

	applicants := make([]recruiting.Applicant, len(applicantModels))
	for i, model := range applicantModels {
		applicants[i] = *model.ToDomain()
	}
	return applicants, nil
}

// FindByEmployee returns the distinct applicants linked to an employee
// through phone call records
func (r *GormApplicantRepository) FindByEmployee(ctx context.Context, employeeID uint) ([]recruiting.Applicant, error) {
	var applicantModels []models.ApplicantModel
	if err := r.db.WithContext(ctx).
		Distinct("applicants.*").
		Joins("JOIN phone_calls ON phone_calls.applicant_id = applicants.id").
		Where("phone_calls.employee_id = ?", employeeID).
		Find(&applicantModels).Error; err != nil {
		return nil, err
	}

	applicants := make([]recruiting.Applicant, len(applicantModels))
	for i, model := range applicantModels {
		applicants[i] = *model.ToDomain()
	}
	return applicants, nil
}

// Save creates or updates an applicant
func (r *GormApplicantRepository) Save(ctx context.Context, applicant *recruiting.Applicant) error {
	model := models.ApplicantModelFromDomain(applicant)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return err
	}
	applicant.BaseEntity = model.BaseModel.ToDomain()
	return nil
}

// Delete removes an applicant and its dependent call and interview records
func (r *GormApplicantRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.PhoneCallModel{}, "applicant_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.InterviewModel{}, "applicant_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.ApplicantModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}
