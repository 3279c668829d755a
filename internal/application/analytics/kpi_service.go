package analytics

import (
	"context"
	"time"

	"github.com/recruitflow/backend/internal/domain/analytics"
	"github.com/recruitflow/backend/internal/domain/recruiting"
	"github.com/recruitflow/backend/internal/domain/shared"
)

const topPerformerLimit = 5

// KPIService computes the funnel aggregates. Every request reloads
// the full record set and recomputes in memory, so results always
// reflect the latest writes.
type KPIService struct {
	applicantRepo recruiting.ApplicantRepository
	employeeRepo  recruiting.EmployeeRepository
	phoneCallRepo recruiting.PhoneCallRepository
	targetRepo    analytics.TargetRepository
	now           func() time.Time
}

// NewKPIService creates a new KPIService
func NewKPIService(
	applicantRepo recruiting.ApplicantRepository,
	employeeRepo recruiting.EmployeeRepository,
	phoneCallRepo recruiting.PhoneCallRepository,
	targetRepo analytics.TargetRepository,
) *KPIService {
	return &KPIService{
		applicantRepo: applicantRepo,
		employeeRepo:  employeeRepo,
		phoneCallRepo: phoneCallRepo,
		targetRepo:    targetRepo,
		now:           time.Now,
	}
}

// EmployeeKPI computes one employee's funnel over the applicants they
// are linked to through phone call records.
func (s *KPIService) EmployeeKPI(ctx context.Context, employeeID uint, timeframe string) (*EmployeeKPIResponse, error) {
	employee, err := s.employeeRepo.FindByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, shared.NewDomainError("NOT_FOUND", "Employee not found")
	}

	calls, err := s.phoneCallRepo.FindByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	applicants, err := s.applicantRepo.FindByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	tf := analytics.ParseTimeframe(timeframe)
	today := s.now()
	windowStart := analytics.WindowStart(tf, today)
	snapshot := analytics.Snapshot{Applicants: applicants, Calls: calls}
	totals := snapshot.Totals(windowStart)

	return &EmployeeKPIResponse{
		Name:                 employee.Name,
		Department:           employee.Department,
		Position:             employee.Position,
		Summary:              toSummary(totals),
		ConversionRates:      toConversionRates(totals.Rates()),
		MonthlyProgress:      toProgress(snapshot.Progress(analytics.SubPeriods(tf, today))),
		PipelineDistribution: toBuckets(snapshot.PipelineDistribution()),
		TimeBetweenStages:    toStageGaps(snapshot.TimeBetweenStages()),
	}, nil
}

// CompanyKPI computes the company-wide funnel over every applicant
// and call record.
func (s *KPIService) CompanyKPI(ctx context.Context, timeframe string) (*CompanyKPIResponse, error) {
	applicants, err := s.applicantRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	calls, err := s.phoneCallRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	employees, err := s.employeeRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	tf := analytics.ParseTimeframe(timeframe)
	today := s.now()
	windowStart := analytics.WindowStart(tf, today)
	snapshot := analytics.Snapshot{Applicants: applicants, Calls: calls}
	totals := snapshot.Totals(windowStart)

	quarterly, err := s.quarterlyPerformance(ctx, snapshot, today)
	if err != nil {
		return nil, err
	}

	summary := toSummary(totals)
	overall := totals.OverallConversion()
	timeToHire := snapshot.AverageTimeToHire()
	summary.ConversionRate = &overall
	summary.AverageTimeToHire = &timeToHire

	return &CompanyKPIResponse{
		Summary:               summary,
		ConversionRates:       toConversionRates(totals.Rates()),
		MonthlyProgress:       toProgress(snapshot.Progress(analytics.SubPeriods(tf, today))),
		PipelineDistribution:  toBuckets(snapshot.PipelineDistribution()),
		DepartmentPerformance: toDepartmentRows(analytics.DepartmentPerformance(employees, snapshot, windowStart)),
		QuarterlyPerformance:  quarterly,
	}, nil
}

// TopPerformers ranks every employee by revenue realized inside the
// timeframe window.
func (s *KPIService) TopPerformers(ctx context.Context, timeframe string) ([]PerformerResponse, error) {
	applicants, err := s.applicantRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	calls, err := s.phoneCallRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	employees, err := s.employeeRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	tf := analytics.ParseTimeframe(timeframe)
	windowStart := analytics.WindowStart(tf, s.now())
	snapshot := analytics.Snapshot{Applicants: applicants, Calls: calls}

	return toPerformers(analytics.TopPerformers(employees, snapshot, windowStart, topPerformerLimit)), nil
}

// quarterlyPerformance lines up the current year's calendar quarters
// against their recorded targets. Quarters without a target row
// report a zero target.
func (s *KPIService) quarterlyPerformance(ctx context.Context, snapshot analytics.Snapshot, today time.Time) ([]QuarterRowResponse, error) {
	targets, err := s.targetRepo.FindByYear(ctx, today.Year())
	if err != nil {
		return nil, err
	}
	targetByQuarter := make(map[int]float64, len(targets))
	for _, t := range targets {
		targetByQuarter[t.Quarter] = t.TargetRevenue.InexactFloat64()
	}

	quarters := analytics.QuarterPeriods(today.Year(), today.Location())
	actuals := snapshot.QuarterlyActuals(quarters)

	rows := make([]QuarterRowResponse, 0, len(actuals))
	for i, a := range actuals {
		rows = append(rows, QuarterRowResponse{
			Quarter: a.Quarter,
			Target:  targetByQuarter[i+1],
			Actual:  a.Actual.InexactFloat64(),
		})
	}
	return rows, nil
}
