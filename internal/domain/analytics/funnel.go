package analytics

import (
	"sort"
	"time"

	"github.com/recruitflow/backend/internal/domain/recruiting"
	"github.com/shopspring/decimal"
)

// Snapshot is the in-memory working set the funnel computations run
// over. Applicants and Calls are pre-scoped: for an employee scope
// they hold the applicants linked to that employee through call
// records and the employee's own calls, for the company scope they
// hold everything. The aggregation is read-only over the snapshot.
type Snapshot struct {
	Applicants []recruiting.Applicant
	Calls      []recruiting.PhoneCall
}

// StageTotals holds the per-stage counts for one window plus the
// revenue realized inside it. Applicants is the distinct applicant
// count in scope and is not window-filtered.
type StageTotals struct {
	Applicants      int
	Calls           int
	Connections     int
	Proposals       int
	DocumentsSent   int
	DocumentsPassed int
	Interviews      int
	Offers          int
	Hires           int
	Payments        int
	Revenue         decimal.Decimal
}

// ConversionRates holds the stage-to-stage conversion percentages.
// Each rate is 0 when its denominator is 0.
type ConversionRates struct {
	CallToConnection     float64
	ConnectionToProposal float64
	ProposalToDocument   float64
	DocumentToPass       float64
	InterviewToOffer     float64
	OfferToHire          float64
	HireToPayment        float64
}

// ProgressRow is the stage activity inside one sub-period.
type ProgressRow struct {
	Period      string
	Calls       int
	Connections int
	Proposals   int
	Documents   int
	Passes      int
	Interviews  int
	Offers      int
	Hires       int
	Payments    int
	Revenue     decimal.Decimal
}

// BucketCount is one named pipeline distribution bucket.
type BucketCount struct {
	Name  string
	Value int
}

// StageGap is the average number of days applicants spend between two
// consecutive pipeline stages.
type StageGap struct {
	Name string
	Days float64
}

// Totals computes the stage counts and revenue for everything on or
// after windowStart.
func (s Snapshot) Totals(windowStart time.Time) StageTotals {
	t := StageTotals{
		Applicants: len(s.Applicants),
		Revenue:    decimal.Zero,
	}
	for _, c := range s.Calls {
		if c.CallDate.Before(windowStart) {
			continue
		}
		t.Calls++
		if c.Status == recruiting.CallStatusCompleted {
			t.Connections++
		}
	}
	for i := range s.Applicants {
		a := &s.Applicants[i]
		if onOrAfter(a.ProposalDate, windowStart) {
			t.Proposals++
		}
		if onOrAfter(a.DocumentSentDate, windowStart) {
			t.DocumentsSent++
		}
		if onOrAfter(a.DocumentPassedDate, windowStart) {
			t.DocumentsPassed++
		}
		if onOrAfter(a.InterviewDate, windowStart) {
			t.Interviews++
		}
		if onOrAfter(a.OfferDate, windowStart) {
			t.Offers++
		}
		if onOrAfter(a.HireDate, windowStart) {
			t.Hires++
		}
		if onOrAfter(a.PaymentDate, windowStart) {
			t.Payments++
			t.Revenue = t.Revenue.Add(referralFee(a))
		}
	}
	return t
}

// Rates derives the conversion percentages from stage totals.
func (t StageTotals) Rates() ConversionRates {
	return ConversionRates{
		CallToConnection:     rate(t.Connections, t.Calls),
		ConnectionToProposal: rate(t.Proposals, t.Connections),
		ProposalToDocument:   rate(t.DocumentsSent, t.Proposals),
		DocumentToPass:       rate(t.DocumentsPassed, t.DocumentsSent),
		InterviewToOffer:     rate(t.Offers, t.Interviews),
		OfferToHire:          rate(t.Hires, t.Offers),
		HireToPayment:        rate(t.Payments, t.Hires),
	}
}

// OverallConversion is the share of applicants in scope that reached
// the hire stage inside the window.
func (t StageTotals) OverallConversion() float64 {
	return rate(t.Hires, t.Applicants)
}

// Progress computes the stage activity for each sub-period.
func (s Snapshot) Progress(periods []Period) []ProgressRow {
	rows := make([]ProgressRow, 0, len(periods))
	for _, p := range periods {
		row := ProgressRow{Period: p.Label, Revenue: decimal.Zero}
		for _, c := range s.Calls {
			if !p.Contains(c.CallDate) {
				continue
			}
			row.Calls++
			if c.Status == recruiting.CallStatusCompleted {
				row.Connections++
			}
		}
		for i := range s.Applicants {
			a := &s.Applicants[i]
			if inPeriod(a.ProposalDate, p) {
				row.Proposals++
			}
			if inPeriod(a.DocumentSentDate, p) {
				row.Documents++
			}
			if inPeriod(a.DocumentPassedDate, p) {
				row.Passes++
			}
			if inPeriod(a.InterviewDate, p) {
				row.Interviews++
			}
			if inPeriod(a.OfferDate, p) {
				row.Offers++
			}
			if inPeriod(a.HireDate, p) {
				row.Hires++
			}
			if inPeriod(a.PaymentDate, p) {
				row.Payments++
				row.Revenue = row.Revenue.Add(referralFee(a))
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// Pipeline distribution bucket names. The hire-completion and payment
// buckets are intentionally computed identically: downstream consumers
// depend on both keys existing.
const (
	BucketAwaitingCall       = "架電待ち"
	BucketAwaitingConnection = "接続待ち"
	BucketProposed           = "提案済み"
	BucketDocumentSent       = "書類送付済み"
	BucketPassedScreening    = "選考通過"
	BucketInterviewScheduled = "面接調整中"
	BucketAwaitingHire       = "内定待ち"
	BucketAwaitingCompletion = "入社待ち"
	BucketAwaitingPayment    = "入金待ち"
)

// PipelineDistribution classifies the snapshot's applicants into the
// named funnel buckets. The buckets are not mutually exclusive: an
// applicant can appear in several at once.
func (s Snapshot) PipelineDistribution() []BucketCount {
	hasCall := make(map[uint]bool)
	hasConnection := make(map[uint]bool)
	for _, c := range s.Calls {
		hasCall[c.ApplicantID] = true
		if c.Status == recruiting.CallStatusCompleted {
			hasConnection[c.ApplicantID] = true
		}
	}

	var awaitingCall, awaitingConnection, proposed, documentSent int
	var passedScreening, interviewScheduled, awaitingHire, awaitingPayment int
	for i := range s.Applicants {
		a := &s.Applicants[i]
		if !hasCall[a.ID] {
			awaitingCall++
		}
		if hasCall[a.ID] && !hasConnection[a.ID] {
			awaitingConnection++
		}
		if a.ProposalDate != nil && a.DocumentSentDate == nil {
			proposed++
		}
		if a.DocumentSentDate != nil && a.DocumentPassedDate == nil {
			documentSent++
		}
		if a.DocumentPassedDate != nil && a.InterviewDate == nil {
			passedScreening++
		}
		if a.InterviewDate != nil && a.OfferDate == nil {
			interviewScheduled++
		}
		if a.OfferDate != nil && a.HireDate == nil {
			awaitingHire++
		}
		if a.HireDate != nil && a.PaymentDate == nil {
			awaitingPayment++
		}
	}

	return []BucketCount{
		{Name: BucketAwaitingCall, Value: awaitingCall},
		{Name: BucketAwaitingConnection, Value: awaitingConnection},
		{Name: BucketProposed, Value: proposed},
		{Name: BucketDocumentSent, Value: documentSent},
		{Name: BucketPassedScreening, Value: passedScreening},
		{Name: BucketInterviewScheduled, Value: interviewScheduled},
		{Name: BucketAwaitingHire, Value: awaitingHire},
		{Name: BucketAwaitingCompletion, Value: awaitingPayment},
		{Name: BucketAwaitingPayment, Value: awaitingPayment},
	}
}

// TimeBetweenStages computes the average days applicants spend between
// each pair of consecutive stages. Only pairs where the later date is
// strictly after the earlier one contribute a sample; averages with no
// samples report 0.
//
// The call-to-connection gap uses the applicant's earliest call record
// against the earliest completed call record; the connection-to-proposal
// gap uses the earliest completed call against the proposal date. All
// remaining gaps use the two stage date fields directly.
func (s Snapshot) TimeBetweenStages() []StageGap {
	firstCall := make(map[uint]time.Time)
	firstConnection := make(map[uint]time.Time)
	for _, c := range s.Calls {
		if t, ok := firstCall[c.ApplicantID]; !ok || c.CallDate.Before(t) {
			firstCall[c.ApplicantID] = c.CallDate
		}
		if c.Status == recruiting.CallStatusCompleted {
			if t, ok := firstConnection[c.ApplicantID]; !ok || c.CallDate.Before(t) {
				firstConnection[c.ApplicantID] = c.CallDate
			}
		}
	}

	var connectionDays, proposalDays []int
	for i := range s.Applicants {
		a := &s.Applicants[i]
		call, hasFirstCall := firstCall[a.ID]
		conn, hasConn := firstConnection[a.ID]
		if hasFirstCall && hasConn && call.Before(conn) {
			connectionDays = append(connectionDays, daysBetween(call, conn))
		}
		if hasConn && a.ProposalDate != nil {
			connDate := dateOf(conn)
			if connDate.Before(*a.ProposalDate) {
				proposalDays = append(proposalDays, daysBetween(connDate, *a.ProposalDate))
			}
		}
	}

	gaps := []StageGap{
		{Name: "架電→接続", Days: average(connectionDays)},
		{Name: "接続→提案", Days: average(proposalDays)},
	}

	stagePairs := []struct {
		name string
		from recruiting.Stage
		to   recruiting.Stage
	}{
		{"提案→書類送付", recruiting.StageProposal, recruiting.StageDocumentSent},
		{"書類送付→通過", recruiting.StageDocumentSent, recruiting.StageDocumentPassed},
		{"通過→面接", recruiting.StageDocumentPassed, recruiting.StageInterview},
		{"面接→内定", recruiting.StageInterview, recruiting.StageOffer},
		{"内定→入社", recruiting.StageOffer, recruiting.StageHire},
		{"入社→入金", recruiting.StageHire, recruiting.StagePayment},
	}
	for _, pair := range stagePairs {
		var samples []int
		for i := range s.Applicants {
			a := &s.Applicants[i]
			from, to := a.StageDate(pair.from), a.StageDate(pair.to)
			if from != nil && to != nil && from.Before(*to) {
				samples = append(samples, daysBetween(*from, *to))
			}
		}
		gaps = append(gaps, StageGap{Name: pair.name, Days: average(samples)})
	}
	return gaps
}

// AverageTimeToHire is the mean number of days between application and
// hire over applicants that reached both stages in order, 0 when none
// qualify.
func (s Snapshot) AverageTimeToHire() float64 {
	var samples []int
	for i := range s.Applicants {
		a := &s.Applicants[i]
		if a.ApplicationDate != nil && a.HireDate != nil && a.ApplicationDate.Before(*a.HireDate) {
			samples = append(samples, daysBetween(*a.ApplicationDate, *a.HireDate))
		}
	}
	return average(samples)
}

// DepartmentStats is the hires and revenue attributed to one
// department inside the window.
type DepartmentStats struct {
	Department string
	Hires      int
	Revenue    decimal.Decimal
}

// DepartmentPerformance groups employees by department and sums each
// department's windowed hires and revenue over the applicants its
// employees are linked to through call records. Employees without a
// department report under "未分類".
func DepartmentPerformance(employees []recruiting.Employee, s Snapshot, windowStart time.Time) []DepartmentStats {
	byID := make(map[uint]*recruiting.Applicant, len(s.Applicants))
	for i := range s.Applicants {
		byID[s.Applicants[i].ID] = &s.Applicants[i]
	}
	applicantsByEmployee := make(map[uint]map[uint]bool)
	for _, c := range s.Calls {
		if c.EmployeeID == nil {
			continue
		}
		set, ok := applicantsByEmployee[*c.EmployeeID]
		if !ok {
			set = make(map[uint]bool)
			applicantsByEmployee[*c.EmployeeID] = set
		}
		set[c.ApplicantID] = true
	}

	departments := make(map[string][]uint)
	var order []string
	for _, e := range employees {
		if _, ok := departments[e.Department]; !ok {
			order = append(order, e.Department)
		}
		departments[e.Department] = append(departments[e.Department], e.ID)
	}

	stats := make([]DepartmentStats, 0, len(order))
	for _, dept := range order {
		seen := make(map[uint]bool)
		d := DepartmentStats{Department: dept, Revenue: decimal.Zero}
		if d.Department == "" {
			d.Department = "未分類"
		}
		for _, empID := range departments[dept] {
			for applicantID := range applicantsByEmployee[empID] {
				if seen[applicantID] {
					continue
				}
				seen[applicantID] = true
				a, ok := byID[applicantID]
				if !ok {
					continue
				}
				if onOrAfter(a.HireDate, windowStart) {
					d.Hires++
				}
				if onOrAfter(a.PaymentDate, windowStart) {
					d.Revenue = d.Revenue.Add(referralFee(a))
				}
			}
		}
		stats = append(stats, d)
	}
	return stats
}

// Performer is one employee's windowed placement results.
type Performer struct {
	EmployeeID uint
	Name       string
	Department string
	Hires      int
	Revenue    decimal.Decimal
}

// TopPerformers ranks every employee by windowed revenue, descending,
// and returns at most limit entries. Ties keep the employees' input
// order.
func TopPerformers(employees []recruiting.Employee, s Snapshot, windowStart time.Time, limit int) []Performer {
	byID := make(map[uint]*recruiting.Applicant, len(s.Applicants))
	for i := range s.Applicants {
		byID[s.Applicants[i].ID] = &s.Applicants[i]
	}
	applicantsByEmployee := make(map[uint][]uint)
	seen := make(map[uint]map[uint]bool)
	for _, c := range s.Calls {
		if c.EmployeeID == nil {
			continue
		}
		if seen[*c.EmployeeID] == nil {
			seen[*c.EmployeeID] = make(map[uint]bool)
		}
		if !seen[*c.EmployeeID][c.ApplicantID] {
			seen[*c.EmployeeID][c.ApplicantID] = true
			applicantsByEmployee[*c.EmployeeID] = append(applicantsByEmployee[*c.EmployeeID], c.ApplicantID)
		}
	}

	performers := make([]Performer, 0, len(employees))
	for _, e := range employees {
		p := Performer{
			EmployeeID: e.ID,
			Name:       e.Name,
			Department: e.Department,
			Revenue:    decimal.Zero,
		}
		for _, applicantID := range applicantsByEmployee[e.ID] {
			a, ok := byID[applicantID]
			if !ok {
				continue
			}
			if onOrAfter(a.HireDate, windowStart) {
				p.Hires++
			}
			if onOrAfter(a.PaymentDate, windowStart) {
				p.Revenue = p.Revenue.Add(referralFee(a))
			}
		}
		performers = append(performers, p)
	}

	sort.SliceStable(performers, func(i, j int) bool {
		return performers[i].Revenue.GreaterThan(performers[j].Revenue)
	})
	if len(performers) > limit {
		performers = performers[:limit]
	}
	return performers
}

// QuarterActual is the realized revenue inside one calendar quarter.
type QuarterActual struct {
	Quarter string
	Actual  decimal.Decimal
}

// QuarterlyActuals sums the revenue whose payment date falls inside
// each of the given quarters.
func (s Snapshot) QuarterlyActuals(quarters []Period) []QuarterActual {
	actuals := make([]QuarterActual, 0, len(quarters))
	for _, q := range quarters {
		actual := QuarterActual{Quarter: q.Label, Actual: decimal.Zero}
		for i := range s.Applicants {
			a := &s.Applicants[i]
			if a.PaymentDate != nil && q.Contains(*a.PaymentDate) {
				actual.Actual = actual.Actual.Add(referralFee(a))
			}
		}
		actuals = append(actuals, actual)
	}
	return actuals
}

func onOrAfter(t *time.Time, start time.Time) bool {
	return t != nil && !t.Before(start)
}

func inPeriod(t *time.Time, p Period) bool {
	return t != nil && p.Contains(*t)
}

func referralFee(a *recruiting.Applicant) decimal.Decimal {
	if a.ReferralFee == nil {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(*a.ReferralFee))
}

func rate(numerator, denominator int) float64 {
	if denominator == 0 {
		return 0
	}
	return float64(numerator) / float64(denominator) * 100
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}

func average(samples []int) float64 {
	if len(samples) == 0 {
		return 0
	}
	sum := 0
	for _, s := range samples {
		sum += s
	}
	return float64(sum) / float64(len(samples))
}
