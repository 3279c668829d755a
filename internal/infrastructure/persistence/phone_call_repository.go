package persistence

import (
	"context"
	"errors"

	"github.com/recruitflow/backend/internal/domain/recruiting"
	"github.com/recruitflow/backend/internal/domain/shared"
	"github.com/recruitflow/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormPhoneCallRepository implements PhoneCallRepository using GORM
type GormPhoneCallRepository struct {
	db *gorm.DB
}

// NewGormPhoneCallRepository creates a new GormPhoneCallRepository
func NewGormPhoneCallRepository(db *gorm.DB) *GormPhoneCallRepository {
	return &GormPhoneCallRepository{db: db}
}

// FindByID finds a phone call record by its ID
func (r *GormPhoneCallRepository) FindByID(ctx context.Context, id uint) (*recruiting.PhoneCall, error) {
	var model models.PhoneCallModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns all phone call records
func (r *GormPhoneCallRepository) FindAll(ctx context.Context) ([]recruiting.PhoneCall, error) {
	var callModels []models.PhoneCallModel
	if err := r.db.WithContext(ctx).
		Order("call_date DESC").
		Find(&callModels).Error; err != nil {
		return nil, err
	}

	calls := make([]recruiting.PhoneCall, len(callModels))
	for i, model := range callModels {
		calls[i] = *model.ToDomain()
	}
	return calls, nil
}

// FindByApplicant returns all call records for one applicant
func (r *GormPhoneCallRepository) FindByApplicant(ctx context.Context, applicantID uint) ([]recruiting.PhoneCall, error) {
	var callModels []models.PhoneCallModel
	if err := r.db.WithContext(ctx).
		Where("applicant_id = ?", applicantID).
		Order("call_date DESC").
		Find(&callModels).Error; err != nil {
		return nil, err
	}

	calls := make([]recruiting.PhoneCall, len(callModels))
	for i, model := range callModels {
		calls[i] = *model.ToDomain()
	}
	return calls, nil
}

// FindByEmployee returns all call records made by one employee
func (r *GormPhoneCallRepository) FindByEmployee(ctx context.Context, employeeID uint) ([]recruiting.PhoneCall, error) {
	var callModels []models.PhoneCallModel
	if err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("call_date DESC").
		Find(&callModels).Error; err != nil {
		return nil, err
	}

	calls := make([]recruiting.PhoneCall, len(callModels))
	for i, model := range callModels {
		calls[i] = *model.ToDomain()
	}
	return calls, nil
}

// Save creates or updates a phone call record
func (r *GormPhoneCallRepository) Save(ctx context.Context, call *recruiting.PhoneCall) error {
	model := models.PhoneCallModelFromDomain(call)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return err
	}
	call.BaseEntity = model.BaseModel.ToDomain()
	return nil
}

// Delete removes a phone call record
func (r *GormPhoneCallRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.PhoneCallModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
