package recruiting

import "context"

// EmployeeRepository defines the interface for employee persistence
type EmployeeRepository interface {
	// FindByID finds an employee by ID
	FindByID(ctx context.Context, id uint) (*Employee, error)

	// FindAll returns all employees
	FindAll(ctx context.Context) ([]Employee, error)

	// Save creates or updates an employee
	Save(ctx context.Context, employee *Employee) error

	// Delete removes an employee; call records keep a dangling
	// NULL employee reference
	Delete(ctx context.Context, id uint) error
}
