package models

import (
	"github.com/recruitflow/backend/internal/domain/analytics"
	"github.com/shopspring/decimal"
)

// QuarterlyTargetModel is the persistence model for the QuarterlyTarget entity.
type QuarterlyTargetModel struct {
	BaseModel
	Year          int             `gorm:"not null;uniqueIndex:idx_target_year_quarter,priority:1"`
	Quarter       int             `gorm:"not null;uniqueIndex:idx_target_year_quarter,priority:2;check:quarter >= 1 AND quarter <= 4"`
	TargetRevenue decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
}

// TableName returns the table name for GORM
func (QuarterlyTargetModel) TableName() string {
	return "quarterly_targets"
}

// ToDomain converts the persistence model to a domain QuarterlyTarget entity.
func (m *QuarterlyTargetModel) ToDomain() *analytics.QuarterlyTarget {
	return &analytics.QuarterlyTarget{
		BaseEntity:    m.BaseModel.ToDomain(),
		Year:          m.Year,
		Quarter:       m.Quarter,
		TargetRevenue: m.TargetRevenue,
	}
}

// FromDomain populates the persistence model from a domain QuarterlyTarget entity.
func (m *QuarterlyTargetModel) FromDomain(t *analytics.QuarterlyTarget) {
	m.FromDomainBaseEntity(t.BaseEntity)
	m.Year = t.Year
	m.Quarter = t.Quarter
	m.TargetRevenue = t.TargetRevenue
}

// QuarterlyTargetModelFromDomain creates a new persistence model from a domain QuarterlyTarget entity.
func QuarterlyTargetModelFromDomain(t *analytics.QuarterlyTarget) *QuarterlyTargetModel {
	m := &QuarterlyTargetModel{}
	m.FromDomain(t)
	return m
}
