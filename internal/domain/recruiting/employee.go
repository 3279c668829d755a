package recruiting

import (
	"strings"
	"time"

	"github.com/recruitflow/backend/internal/domain/shared"
)

// Employee represents an agency staff member who works applicants
// through the pipeline. Department groups employees for company-wide
// reporting; employees without a department roll up as "未分類".
type Employee struct {
	shared.BaseEntity
	Name        string
	Department  string
	Position    string
	Email       string
	PhoneNumber string
	HireDate    *time.Time
}

// NewEmployee creates a new employee with the required name.
func NewEmployee(name string) (*Employee, error) {
	e := &Employee{Name: strings.TrimSpace(name)}
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return e, nil
}

// Validate checks the employee's required fields.
func (e *Employee) Validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return shared.NewDomainError("INVALID_NAME", "Employee name is required")
	}
	return nil
}
