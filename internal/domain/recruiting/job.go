package recruiting

import (
	"strings"

	"github.com/recruitflow/backend/internal/domain/shared"
)

// Job represents an open position at a client factory or office.
// AgeLimit and Prefecture drive the matching engine; the remaining
// fields describe the posting for proposals.
type Job struct {
	shared.BaseEntity
	JobURL                  string
	JobNumber               string
	CfFc                    string
	Company                 string
	Prefecture              string
	City                    string
	Title                   string
	Salary                  string
	Fee                     string
	AgeLimit                *int
	Description             string
	Requirements            string
	Benefits                string
	WorkingHours            string
	EmploymentType          string
	Holidays                string
	Dormitory               bool
	HousingCost             string
	HousingAllowance        string
	WorkStyle               string
	AnnualHolidays          string
	Gender                  string
	MinAge                  *int
	WorkExperience          string
	OccupationExperience    string
	JapaneseRequired        bool
	CommuteMethod           string
	NearestStation          string
	SalaryType              string
	HourlyWage              *int
	Shift                   string
	Products                string
	OccupationMajorCategory string
	OccupationMinorCategory string
	Advantages              string
	SmokingMeasures         string
}

// NewJob creates a new job posting with the required fields.
func NewJob(company, title string) (*Job, error) {
	j := &Job{
		Company: strings.TrimSpace(company),
		Title:   strings.TrimSpace(title),
	}
	if err := j.Validate(); err != nil {
		return nil, err
	}
	return j, nil
}

// Validate checks the job's required fields.
func (j *Job) Validate() error {
	if strings.TrimSpace(j.Company) == "" {
		return shared.NewDomainError("INVALID_COMPANY", "Job company is required")
	}
	if strings.TrimSpace(j.Title) == "" {
		return shared.NewDomainError("INVALID_TITLE", "Job title is required")
	}
	if j.AgeLimit != nil && *j.AgeLimit < 0 {
		return shared.NewDomainError("INVALID_AGE_LIMIT", "Age limit cannot be negative")
	}
	if j.MinAge != nil && *j.MinAge < 0 {
		return shared.NewDomainError("INVALID_MIN_AGE", "Minimum age cannot be negative")
	}
	return nil
}
