package analytics

import (
	"testing"
	"time"

	"github.com/recruitflow/backend/internal/domain/recruiting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dptr(t time.Time) *time.Time { return &t }
func iptr(i int) *int             { return &i }
func uptr(u uint) *uint           { return &u }

func applicant(id uint) recruiting.Applicant {
	a := recruiting.Applicant{Name: "applicant"}
	a.ID = id
	return a
}

func call(applicantID uint, employeeID uint, day time.Time, status recruiting.CallStatus) recruiting.PhoneCall {
	return recruiting.PhoneCall{
		ApplicantID: applicantID,
		EmployeeID:  uptr(employeeID),
		CallDate:    day,
		Status:      status,
	}
}

func TestTotals(t *testing.T) {
	windowStart := date(2024, time.May, 1)

	inWindow := applicant(1)
	inWindow.ProposalDate = dptr(date(2024, time.May, 3))
	inWindow.DocumentSentDate = dptr(date(2024, time.May, 5))
	inWindow.PaymentDate = dptr(date(2024, time.May, 20))
	inWindow.ReferralFee = iptr(300000)

	beforeWindow := applicant(2)
	beforeWindow.ProposalDate = dptr(date(2024, time.April, 10))
	beforeWindow.PaymentDate = dptr(date(2024, time.April, 28))
	beforeWindow.ReferralFee = iptr(250000)

	noFee := applicant(3)
	noFee.PaymentDate = dptr(date(2024, time.May, 10))

	s := Snapshot{
		Applicants: []recruiting.Applicant{inWindow, beforeWindow, noFee},
		Calls: []recruiting.PhoneCall{
			call(1, 1, date(2024, time.May, 2), recruiting.CallStatusCompleted),
			call(1, 1, date(2024, time.May, 1), recruiting.CallStatusNoAnswer),
			call(2, 1, date(2024, time.April, 20), recruiting.CallStatusCompleted),
		},
	}

	totals := s.Totals(windowStart)

	// applicant count ignores the window, everything else is filtered
	assert.Equal(t, 3, totals.Applicants)
	assert.Equal(t, 2, totals.Calls)
	assert.Equal(t, 1, totals.Connections)
	assert.Equal(t, 1, totals.Proposals)
	assert.Equal(t, 1, totals.DocumentsSent)
	assert.Equal(t, 2, totals.Payments)
	// null referral fee counts as zero revenue
	assert.True(t, totals.Revenue.Equal(decimal.NewFromInt(300000)))
}

func TestConversionRatesZeroDenominator(t *testing.T) {
	rates := StageTotals{}.Rates()

	assert.Zero(t, rates.CallToConnection)
	assert.Zero(t, rates.ConnectionToProposal)
	assert.Zero(t, rates.ProposalToDocument)
	assert.Zero(t, rates.DocumentToPass)
	assert.Zero(t, rates.InterviewToOffer)
	assert.Zero(t, rates.OfferToHire)
	assert.Zero(t, rates.HireToPayment)
}

func TestConversionRates(t *testing.T) {
	totals := StageTotals{
		Calls:           10,
		Connections:     5,
		Proposals:       4,
		DocumentsSent:   2,
		DocumentsPassed: 1,
		Interviews:      1,
		Offers:          1,
		Hires:           1,
		Payments:        0,
	}
	rates := totals.Rates()

	assert.InDelta(t, 50.0, rates.CallToConnection, 0.001)
	assert.InDelta(t, 80.0, rates.ConnectionToProposal, 0.001)
	assert.InDelta(t, 50.0, rates.ProposalToDocument, 0.001)
	assert.InDelta(t, 50.0, rates.DocumentToPass, 0.001)
	assert.InDelta(t, 100.0, rates.InterviewToOffer, 0.001)
	assert.InDelta(t, 100.0, rates.OfferToHire, 0.001)
	assert.Zero(t, rates.HireToPayment)

	for _, r := range []float64{rates.CallToConnection, rates.ConnectionToProposal, rates.ProposalToDocument} {
		assert.GreaterOrEqual(t, r, 0.0)
		assert.LessOrEqual(t, r, 100.0)
	}
}

func TestProgress(t *testing.T) {
	periods := []Period{
		{Label: "2024/04", Start: date(2024, time.April, 1), End: date(2024, time.April, 30)},
		{Label: "2024/05", Start: date(2024, time.May, 1), End: date(2024, time.May, 31)},
	}

	a := applicant(1)
	a.HireDate = dptr(date(2024, time.April, 15))
	a.PaymentDate = dptr(date(2024, time.May, 10))
	a.ReferralFee = iptr(400000)

	s := Snapshot{
		Applicants: []recruiting.Applicant{a},
		Calls: []recruiting.PhoneCall{
			call(1, 1, date(2024, time.April, 2), recruiting.CallStatusCompleted),
			call(1, 1, date(2024, time.May, 31), recruiting.CallStatusScheduled),
		},
	}

	rows := s.Progress(periods)
	require.Len(t, rows, 2)

	assert.Equal(t, "2024/04", rows[0].Period)
	assert.Equal(t, 1, rows[0].Calls)
	assert.Equal(t, 1, rows[0].Connections)
	assert.Equal(t, 1, rows[0].Hires)
	assert.True(t, rows[0].Revenue.IsZero())

	assert.Equal(t, "2024/05", rows[1].Period)
	assert.Equal(t, 1, rows[1].Calls)
	assert.Equal(t, 0, rows[1].Connections)
	assert.Equal(t, 1, rows[1].Payments)
	assert.True(t, rows[1].Revenue.Equal(decimal.NewFromInt(400000)))
}

func TestPipelineDistribution(t *testing.T) {
	neverCalled := applicant(1)

	calledNotConnected := applicant(2)

	hired := applicant(3)
	hired.HireDate = dptr(date(2024, time.May, 1))

	s := Snapshot{
		Applicants: []recruiting.Applicant{neverCalled, calledNotConnected, hired},
		Calls: []recruiting.PhoneCall{
			call(2, 1, date(2024, time.April, 1), recruiting.CallStatusNoAnswer),
			call(3, 1, date(2024, time.April, 1), recruiting.CallStatusCompleted),
		},
	}

	buckets := s.PipelineDistribution()
	byName := map[string]int{}
	for _, b := range buckets {
		byName[b.Name] = b.Value
	}

	assert.Equal(t, 1, byName[BucketAwaitingCall])
	assert.Equal(t, 1, byName[BucketAwaitingConnection])

	// an applicant hired but unpaid appears in both trailing buckets
	assert.Equal(t, 1, byName[BucketAwaitingCompletion])
	assert.Equal(t, 1, byName[BucketAwaitingPayment])
}

func TestTimeBetweenStagesExcludesOutOfOrderPairs(t *testing.T) {
	// document sent before the proposal: no sample, not a negative one
	backwards := applicant(1)
	backwards.ProposalDate = dptr(date(2024, time.January, 10))
	backwards.DocumentSentDate = dptr(date(2024, time.January, 5))

	forward := applicant(2)
	forward.ProposalDate = dptr(date(2024, time.January, 1))
	forward.DocumentSentDate = dptr(date(2024, time.January, 4))

	s := Snapshot{Applicants: []recruiting.Applicant{backwards, forward}}

	gaps := s.TimeBetweenStages()
	require.Len(t, gaps, 8)

	byName := map[string]float64{}
	for _, g := range gaps {
		byName[g.Name] = g.Days
	}
	assert.InDelta(t, 3.0, byName["提案→書類送付"], 0.001)
}

func TestTimeBetweenStagesCallToConnection(t *testing.T) {
	a := applicant(1)
	s := Snapshot{
		Applicants: []recruiting.Applicant{a},
		Calls: []recruiting.PhoneCall{
			// earliest call vs earliest completed call, not record order
			call(1, 1, date(2024, time.January, 5), recruiting.CallStatusCompleted),
			call(1, 1, date(2024, time.January, 1), recruiting.CallStatusNoAnswer),
			call(1, 1, date(2024, time.January, 9), recruiting.CallStatusCompleted),
		},
	}

	gaps := s.TimeBetweenStages()
	assert.Equal(t, "架電→接続", gaps[0].Name)
	assert.InDelta(t, 4.0, gaps[0].Days, 0.001)
}

func TestTimeBetweenStagesEmpty(t *testing.T) {
	s := Snapshot{}
	for _, g := range s.TimeBetweenStages() {
		assert.Zero(t, g.Days, "gap %s should be 0 with no samples", g.Name)
	}
}

func TestAverageTimeToHire(t *testing.T) {
	hired := applicant(1)
	hired.ApplicationDate = dptr(date(2024, time.January, 1))
	hired.HireDate = dptr(date(2024, time.January, 31))

	outOfOrder := applicant(2)
	outOfOrder.ApplicationDate = dptr(date(2024, time.March, 1))
	outOfOrder.HireDate = dptr(date(2024, time.February, 1))

	s := Snapshot{Applicants: []recruiting.Applicant{hired, outOfOrder}}
	assert.InDelta(t, 30.0, s.AverageTimeToHire(), 0.001)

	assert.Zero(t, Snapshot{}.AverageTimeToHire())
}

func TestOverallConversion(t *testing.T) {
	assert.InDelta(t, 25.0, StageTotals{Applicants: 4, Hires: 1}.OverallConversion(), 0.001)
	assert.Zero(t, StageTotals{}.OverallConversion())
}

func TestDepartmentPerformance(t *testing.T) {
	windowStart := date(2024, time.May, 1)

	sales := recruiting.Employee{Name: "佐藤", Department: "営業部"}
	sales.ID = 1
	noDept := recruiting.Employee{Name: "鈴木"}
	noDept.ID = 2

	hired := applicant(1)
	hired.HireDate = dptr(date(2024, time.May, 10))
	hired.PaymentDate = dptr(date(2024, time.May, 20))
	hired.ReferralFee = iptr(500000)

	other := applicant(2)

	s := Snapshot{
		Applicants: []recruiting.Applicant{hired, other},
		Calls: []recruiting.PhoneCall{
			call(1, 1, date(2024, time.May, 2), recruiting.CallStatusCompleted),
			call(2, 2, date(2024, time.May, 3), recruiting.CallStatusScheduled),
		},
	}

	stats := DepartmentPerformance([]recruiting.Employee{sales, noDept}, s, windowStart)
	require.Len(t, stats, 2)

	assert.Equal(t, "営業部", stats[0].Department)
	assert.Equal(t, 1, stats[0].Hires)
	assert.True(t, stats[0].Revenue.Equal(decimal.NewFromInt(500000)))

	// employees without a department roll up under the fallback label
	assert.Equal(t, "未分類", stats[1].Department)
	assert.Zero(t, stats[1].Hires)
	assert.True(t, stats[1].Revenue.IsZero())
}

func TestTopPerformers(t *testing.T) {
	windowStart := date(2024, time.May, 1)

	employees := make([]recruiting.Employee, 7)
	applicants := make([]recruiting.Applicant, 7)
	calls := make([]recruiting.PhoneCall, 7)
	for i := range employees {
		employees[i] = recruiting.Employee{Name: "emp"}
		employees[i].ID = uint(i + 1)
		applicants[i] = applicant(uint(i + 1))
		applicants[i].PaymentDate = dptr(date(2024, time.May, 10))
		calls[i] = call(uint(i+1), uint(i+1), date(2024, time.May, 2), recruiting.CallStatusCompleted)
	}
	// employees 1 and 2 tie on zero, 3..7 earn increasing revenue
	for i := 2; i < 7; i++ {
		applicants[i].ReferralFee = iptr((i - 1) * 100000)
	}

	s := Snapshot{Applicants: applicants, Calls: calls}
	top := TopPerformers(employees, s, windowStart, 5)
	require.Len(t, top, 5)

	// strictly descending by revenue
	for i := 1; i < len(top); i++ {
		assert.True(t, top[i].Revenue.LessThanOrEqual(top[i-1].Revenue))
	}
	assert.Equal(t, uint(7), top[0].EmployeeID)
	assert.True(t, top[0].Revenue.Equal(decimal.NewFromInt(500000)))

	// ties keep input order
	tied := TopPerformers(employees[:2], Snapshot{Applicants: applicants[:2], Calls: calls[:2]}, windowStart, 5)
	require.Len(t, tied, 2)
	assert.Equal(t, uint(1), tied[0].EmployeeID)
	assert.Equal(t, uint(2), tied[1].EmployeeID)
}

func TestQuarterlyActuals(t *testing.T) {
	quarters := QuarterPeriods(2024, time.UTC)

	q1 := applicant(1)
	q1.PaymentDate = dptr(date(2024, time.February, 15))
	q1.ReferralFee = iptr(200000)

	q3 := applicant(2)
	q3.PaymentDate = dptr(date(2024, time.August, 1))
	q3.ReferralFee = iptr(350000)

	s := Snapshot{Applicants: []recruiting.Applicant{q1, q3}}
	actuals := s.QuarterlyActuals(quarters)
	require.Len(t, actuals, 4)

	assert.True(t, actuals[0].Actual.Equal(decimal.NewFromInt(200000)))
	assert.True(t, actuals[1].Actual.IsZero())
	assert.True(t, actuals[2].Actual.Equal(decimal.NewFromInt(350000)))
	assert.True(t, actuals[3].Actual.IsZero())
}
