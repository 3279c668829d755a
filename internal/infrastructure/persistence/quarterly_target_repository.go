package persistence

import (
	"context"

	"github.com/recruitflow/backend/internal/domain/analytics"
	"github.com/recruitflow/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormTargetRepository implements TargetRepository using GORM
type GormTargetRepository struct {
	db *gorm.DB
}

// NewGormTargetRepository creates a new GormTargetRepository
func NewGormTargetRepository(db *gorm.DB) *GormTargetRepository {
	return &GormTargetRepository{db: db}
}

// FindByYear returns the targets recorded for one year, ordered by quarter
func (r *GormTargetRepository) FindByYear(ctx context.Context, year int) ([]analytics.QuarterlyTarget, error) {
	var targetModels []models.QuarterlyTargetModel
	if err := r.db.WithContext(ctx).
		Where("year = ?", year).
		Order("quarter").
		Find(&targetModels).Error; err != nil {
		return nil, err
	}

	targets := make([]analytics.QuarterlyTarget, len(targetModels))
	for i, model := range targetModels {
		targets[i] = *model.ToDomain()
	}
	return targets, nil
}

// Save creates or updates a quarterly target. Each year and quarter
// pair holds at most one row.
func (r *GormTargetRepository) Save(ctx context.Context, target *analytics.QuarterlyTarget) error {
	model := models.QuarterlyTargetModelFromDomain(target)
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "year"}, {Name: "quarter"}},
			DoUpdates: clause.AssignmentColumns([]string{"target_revenue", "updated_at"}),
		}).
		Create(model).Error; err != nil {
		return err
	}
	target.BaseEntity = model.BaseModel.ToDomain()
	return nil
}
