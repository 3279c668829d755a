package matching

import (
	"context"
	"time"

	apprecruiting "github.com/recruitflow/backend/internal/application/recruiting"
	"github.com/recruitflow/backend/internal/domain/matching"
	"github.com/recruitflow/backend/internal/domain/recruiting"
	"github.com/recruitflow/backend/internal/domain/shared"
)

// JobMatchResponse is one scored job for an applicant
type JobMatchResponse struct {
	Job           apprecruiting.JobResponse `json:"job"`
	AgeMatch      bool                      `json:"age_match"`
	LocationMatch int                       `json:"location_match"`
	ApplicantAge  *int                      `json:"applicant_age"`
}

// ApplicantMatchResponse is one scored applicant for a job
type ApplicantMatchResponse struct {
	Applicant     apprecruiting.ApplicantItem `json:"applicant"`
	AgeMatch      bool                        `json:"age_match"`
	LocationMatch int                         `json:"location_match"`
	Age           *int                        `json:"age"`
}

// MatchingService scores applicants against job postings on age and
// desired location. Scoring runs over the full record set on every
// request.
type MatchingService struct {
	applicantRepo recruiting.ApplicantRepository
	jobRepo       recruiting.JobRepository
	now           func() time.Time
}

// NewMatchingService creates a new MatchingService
func NewMatchingService(applicantRepo recruiting.ApplicantRepository, jobRepo recruiting.JobRepository) *MatchingService {
	return &MatchingService{
		applicantRepo: applicantRepo,
		jobRepo:       jobRepo,
		now:           time.Now,
	}
}

// JobsForApplicant scores every job posting for one applicant. sortBy
// accepts "location"; anything else falls back to the age limit
// ordering.
func (s *MatchingService) JobsForApplicant(ctx context.Context, applicantID uint, sortBy string) ([]JobMatchResponse, error) {
	applicant, err := s.applicantRepo.FindByID(ctx, applicantID)
	if err != nil {
		return nil, err
	}
	if applicant == nil {
		return nil, shared.NewDomainError("NOT_FOUND", "Applicant not found")
	}

	jobs, err := s.jobRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	today := s.now()
	matches := matching.RankJobs(applicant, jobs, matching.JobSort(sortBy), today)

	var applicantAge *int
	if applicant.Birthdate != nil {
		age := matching.Age(*applicant.Birthdate, today)
		applicantAge = &age
	}

	responses := make([]JobMatchResponse, 0, len(matches))
	for _, m := range matches {
		responses = append(responses, JobMatchResponse{
			Job:           apprecruiting.ToJobResponse(&m.Job),
			AgeMatch:      m.AgeMatch,
			LocationMatch: m.LocationMatch,
			ApplicantAge:  applicantAge,
		})
	}
	return responses, nil
}

// ApplicantsForJob scores every applicant for one job posting. sortBy
// accepts "location"; anything else falls back to the ascending age
// ordering with unknown ages last.
func (s *MatchingService) ApplicantsForJob(ctx context.Context, jobID uint, sortBy string) ([]ApplicantMatchResponse, error) {
	job, err := s.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, shared.NewDomainError("NOT_FOUND", "Job not found")
	}

	applicants, err := s.applicantRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	today := s.now()
	matches := matching.RankApplicants(job, applicants, matching.ApplicantSort(sortBy), today)

	responses := make([]ApplicantMatchResponse, 0, len(matches))
	for _, m := range matches {
		applicant := m.Applicant
		responses = append(responses, ApplicantMatchResponse{
			Applicant:     apprecruiting.ToApplicantItem(&applicant, today),
			AgeMatch:      m.AgeMatch,
			LocationMatch: m.LocationMatch,
			Age:           m.Age,
		})
	}
	return responses, nil
}
