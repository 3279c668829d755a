package analytics

import (
	"github.com/recruitflow/backend/internal/domain/analytics"
)

// SummaryResponse carries the per-window stage totals. ConversionRate
// and AverageTimeToHire are only populated on the company payload.
type SummaryResponse struct {
	TotalApplicants      int      `json:"totalApplicants"`
	TotalCalls           int      `json:"totalCalls"`
	TotalConnections     int      `json:"totalConnections"`
	TotalProposals       int      `json:"totalProposals"`
	TotalDocumentsSent   int      `json:"totalDocumentsSent"`
	TotalDocumentsPassed int      `json:"totalDocumentsPassed"`
	TotalInterviews      int      `json:"totalInterviews"`
	TotalOffers          int      `json:"totalOffers"`
	TotalHires           int      `json:"totalHires"`
	TotalPayments        int      `json:"totalPayments"`
	TotalRevenue         float64  `json:"totalRevenue"`
	ConversionRate       *float64 `json:"conversionRate,omitempty"`
	AverageTimeToHire    *float64 `json:"averageTimeToHire,omitempty"`
}

// ConversionRatesResponse carries the stage-to-stage percentages
type ConversionRatesResponse struct {
	CallToConnection     float64 `json:"callToConnection"`
	ConnectionToProposal float64 `json:"connectionToProposal"`
	ProposalToDocument   float64 `json:"proposalToDocument"`
	DocumentToPass       float64 `json:"documentToPass"`
	InterviewToOffer     float64 `json:"interviewToOffer"`
	OfferToHire          float64 `json:"offerToHire"`
	HireToPayment        float64 `json:"hireToPayment"`
}

// ProgressRowResponse is one sub-period row of the progress chart.
// The month key names the period label whatever the timeframe is; the
// chart consumes it as-is.
type ProgressRowResponse struct {
	Month       string  `json:"month"`
	Calls       int     `json:"calls"`
	Connections int     `json:"connections"`
	Proposals   int     `json:"proposals"`
	Documents   int     `json:"documents"`
	Passes      int     `json:"passes"`
	Interviews  int     `json:"interviews"`
	Offers      int     `json:"offers"`
	Hires       int     `json:"hires"`
	Payments    int     `json:"payments"`
	Revenue     float64 `json:"revenue"`
}

// BucketResponse is one pipeline distribution slice
type BucketResponse struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// StageGapResponse is the average days spent between two stages
type StageGapResponse struct {
	Name string  `json:"name"`
	Days float64 `json:"days"`
}

// DepartmentRowResponse is one department's windowed results
type DepartmentRowResponse struct {
	Department string  `json:"department"`
	Hires      int     `json:"hires"`
	Revenue    float64 `json:"revenue"`
}

// QuarterRowResponse is one quarter's target-vs-actual comparison
type QuarterRowResponse struct {
	Quarter string  `json:"quarter"`
	Target  float64 `json:"target"`
	Actual  float64 `json:"actual"`
}

// EmployeeKPIResponse is the KPI payload for one employee
type EmployeeKPIResponse struct {
	Name                 string                  `json:"name"`
	Department           string                  `json:"department"`
	Position             string                  `json:"position"`
	Summary              SummaryResponse         `json:"summary"`
	ConversionRates      ConversionRatesResponse `json:"conversionRates"`
	MonthlyProgress      []ProgressRowResponse   `json:"monthlyProgress"`
	PipelineDistribution []BucketResponse        `json:"pipelineDistribution"`
	TimeBetweenStages    []StageGapResponse      `json:"timeBetweenStages"`
}

// CompanyKPIResponse is the company-wide KPI payload
type CompanyKPIResponse struct {
	Summary               SummaryResponse         `json:"summary"`
	ConversionRates       ConversionRatesResponse `json:"conversionRates"`
	MonthlyProgress       []ProgressRowResponse   `json:"monthlyProgress"`
	PipelineDistribution  []BucketResponse        `json:"pipelineDistribution"`
	DepartmentPerformance []DepartmentRowResponse `json:"departmentPerformance"`
	QuarterlyPerformance  []QuarterRowResponse    `json:"quarterlyPerformance"`
}

// PerformerResponse is one entry of the top performer ranking
type PerformerResponse struct {
	ID         uint    `json:"id"`
	Name       string  `json:"name"`
	Department string  `json:"department"`
	Hires      int     `json:"hires"`
	Revenue    float64 `json:"revenue"`
}

func toSummary(t analytics.StageTotals) SummaryResponse {
	return SummaryResponse{
		TotalApplicants:      t.Applicants,
		TotalCalls:           t.Calls,
		TotalConnections:     t.Connections,
		TotalProposals:       t.Proposals,
		TotalDocumentsSent:   t.DocumentsSent,
		TotalDocumentsPassed: t.DocumentsPassed,
		TotalInterviews:      t.Interviews,
		TotalOffers:          t.Offers,
		TotalHires:           t.Hires,
		TotalPayments:        t.Payments,
		TotalRevenue:         t.Revenue.InexactFloat64(),
	}
}

func toConversionRates(r analytics.ConversionRates) ConversionRatesResponse {
	return ConversionRatesResponse{
		CallToConnection:     r.CallToConnection,
		ConnectionToProposal: r.ConnectionToProposal,
		ProposalToDocument:   r.ProposalToDocument,
		DocumentToPass:       r.DocumentToPass,
		InterviewToOffer:     r.InterviewToOffer,
		OfferToHire:          r.OfferToHire,
		HireToPayment:        r.HireToPayment,
	}
}

func toProgress(rows []analytics.ProgressRow) []ProgressRowResponse {
	out := make([]ProgressRowResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, ProgressRowResponse{
			Month:       r.Period,
			Calls:       r.Calls,
			Connections: r.Connections,
			Proposals:   r.Proposals,
			Documents:   r.Documents,
			Passes:      r.Passes,
			Interviews:  r.Interviews,
			Offers:      r.Offers,
			Hires:       r.Hires,
			Payments:    r.Payments,
			Revenue:     r.Revenue.InexactFloat64(),
		})
	}
	return out
}

func toBuckets(buckets []analytics.BucketCount) []BucketResponse {
	out := make([]BucketResponse, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, BucketResponse{Name: b.Name, Value: b.Value})
	}
	return out
}

func toStageGaps(gaps []analytics.StageGap) []StageGapResponse {
	out := make([]StageGapResponse, 0, len(gaps))
	for _, g := range gaps {
		out = append(out, StageGapResponse{Name: g.Name, Days: g.Days})
	}
	return out
}

func toDepartmentRows(stats []analytics.DepartmentStats) []DepartmentRowResponse {
	out := make([]DepartmentRowResponse, 0, len(stats))
	for _, d := range stats {
		out = append(out, DepartmentRowResponse{
			Department: d.Department,
			Hires:      d.Hires,
			Revenue:    d.Revenue.InexactFloat64(),
		})
	}
	return out
}

func toPerformers(performers []analytics.Performer) []PerformerResponse {
	out := make([]PerformerResponse, 0, len(performers))
	for _, p := range performers {
		out = append(out, PerformerResponse{
			ID:         p.EmployeeID,
			Name:       p.Name,
			Department: p.Department,
			Hires:      p.Hires,
			Revenue:    p.Revenue.InexactFloat64(),
		})
	}
	return out
}
