package analytics

import (
	"context"

	"github.com/recruitflow/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// QuarterlyTarget is the revenue goal for one calendar quarter. The
// target-vs-actual comparison reads these rows instead of carrying
// inline figures.
type QuarterlyTarget struct {
	shared.BaseEntity
	Year          int
	Quarter       int
	TargetRevenue decimal.Decimal
}

// Validate checks the target's quarter bounds.
func (t *QuarterlyTarget) Validate() error {
	if t.Quarter < 1 || t.Quarter > 4 {
		return shared.NewDomainError("INVALID_QUARTER", "Quarter must be between 1 and 4")
	}
	if t.TargetRevenue.IsNegative() {
		return shared.NewDomainError("INVALID_TARGET", "Target revenue cannot be negative")
	}
	return nil
}

// TargetRepository defines the interface for quarterly target persistence
type TargetRepository interface {
	// FindByYear returns the targets recorded for one year, ordered
	// by quarter; quarters with no row are simply absent
	FindByYear(ctx context.Context, year int) ([]QuarterlyTarget, error)

	// Save creates or updates a quarterly target
	Save(ctx context.Context, target *QuarterlyTarget) error
}
