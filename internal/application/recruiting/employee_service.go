package recruiting

import (
	"context"

	"github.com/recruitflow/backend/internal/domain/recruiting"
	"github.com/recruitflow/backend/internal/domain/shared"
)

// EmployeeService handles employee-related business operations
type EmployeeService struct {
	employeeRepo recruiting.EmployeeRepository
}

// NewEmployeeService creates a new EmployeeService
func NewEmployeeService(employeeRepo recruiting.EmployeeRepository) *EmployeeService {
	return &EmployeeService{employeeRepo: employeeRepo}
}

// Create registers a new employee
func (s *EmployeeService) Create(ctx context.Context, req CreateEmployeeRequest) (*EmployeeResponse, error) {
	employee, err := recruiting.NewEmployee(req.Name)
	if err != nil {
		return nil, err
	}

	hireDate, err := parseDate(req.HireDate)
	if err != nil {
		return nil, err
	}
	employee.Department = req.Department
	employee.Position = req.Position
	employee.Email = req.Email
	employee.PhoneNumber = req.PhoneNumber
	employee.HireDate = hireDate

	if err := employee.Validate(); err != nil {
		return nil, err
	}
	if err := s.employeeRepo.Save(ctx, employee); err != nil {
		return nil, err
	}

	resp := ToEmployeeResponse(employee)
	return &resp, nil
}

// Get fetches a single employee
func (s *EmployeeService) Get(ctx context.Context, id uint) (*EmployeeResponse, error) {
	employee, err := s.employeeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, shared.NewDomainError("NOT_FOUND", "Employee not found")
	}

	resp := ToEmployeeResponse(employee)
	return &resp, nil
}

// List returns all employees
func (s *EmployeeService) List(ctx context.Context) ([]EmployeeResponse, error) {
	employees, err := s.employeeRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]EmployeeResponse, 0, len(employees))
	for i := range employees {
		responses = append(responses, ToEmployeeResponse(&employees[i]))
	}
	return responses, nil
}

// Update applies a partial update to an employee
func (s *EmployeeService) Update(ctx context.Context, id uint, req UpdateEmployeeRequest) (*EmployeeResponse, error) {
	employee, err := s.employeeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, shared.NewDomainError("NOT_FOUND", "Employee not found")
	}

	if req.Name != nil {
		employee.Name = *req.Name
	}
	if req.Department != nil {
		employee.Department = *req.Department
	}
	if req.Position != nil {
		employee.Position = *req.Position
	}
	if req.Email != nil {
		employee.Email = *req.Email
	}
	if req.PhoneNumber != nil {
		employee.PhoneNumber = *req.PhoneNumber
	}
	if req.HireDate != nil {
		hireDate, err := parseDate(req.HireDate)
		if err != nil {
			return nil, err
		}
		employee.HireDate = hireDate
	}

	if err := employee.Validate(); err != nil {
		return nil, err
	}
	if err := s.employeeRepo.Save(ctx, employee); err != nil {
		return nil, err
	}

	resp := ToEmployeeResponse(employee)
	return &resp, nil
}

// Delete removes an employee
func (s *EmployeeService) Delete(ctx context.Context, id uint) error {
	employee, err := s.employeeRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if employee == nil {
		return shared.NewDomainError("NOT_FOUND", "Employee not found")
	}
	return s.employeeRepo.Delete(ctx, id)
}
