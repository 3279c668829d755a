package persistence

import (
	"context"
	"errors"

	"github.com/recruitflow/backend/internal/domain/recruiting"
	"github.com/recruitflow/backend/internal/domain/shared"
	"github.com/recruitflow/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormEmployeeRepository implements EmployeeRepository using GORM
type GormEmployeeRepository struct {
	db *gorm.DB
}

// NewGormEmployeeRepository creates a new GormEmployeeRepository
func NewGormEmployeeRepository(db *gorm.DB) *GormEmployeeRepository {
	return &GormEmployeeRepository{db: db}
}

// FindByID finds an employee by its ID
func (r *GormEmployeeRepository) FindByID(ctx context.Context, id uint) (*recruiting.Employee, error) {
	var model models.EmployeeModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns all employees
func (r *GormEmployeeRepository) FindAll(ctx context.Context) ([]recruiting.Employee, error) {
	var employeeModels []models.EmployeeModel
	if err := r.db.WithContext(ctx).
		Order("id").
		Find(&employeeModels).Error; err != nil {
		return nil, err
	}

	employees := make([]recruiting.Employee, len(employeeModels))
	for i, model := range employeeModels {
		employees[i] = *model.ToDomain()
	}
	return employees, nil
}

// Save creates or updates an employee
func (r *GormEmployeeRepository) Save(ctx context.Context, employee *recruiting.Employee) error {
	model := models.EmployeeModelFromDomain(employee)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return err
	}
	employee.BaseEntity = model.BaseModel.ToDomain()
	return nil
}

// Delete removes an employee; call records keep a dangling NULL
// employee reference
func (r *GormEmployeeRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.PhoneCallModel{}).
			Where("employee_id = ?", id).
			Update("employee_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.ApplicantModel{}).
			Where("assigned_employee_id = ?", id).
			Update("assigned_employee_id", nil).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.EmployeeModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}
