package recruiting

import (
	"context"

	"github.com/recruitflow/backend/internal/domain/recruiting"
	"github.com/recruitflow/backend/internal/domain/shared"
)

// InterviewService handles interview business operations
type InterviewService struct {
	interviewRepo recruiting.InterviewRepository
	applicantRepo recruiting.ApplicantRepository
	jobRepo       recruiting.JobRepository
}

// NewInterviewService creates a new InterviewService
func NewInterviewService(
	interviewRepo recruiting.InterviewRepository,
	applicantRepo recruiting.ApplicantRepository,
	jobRepo recruiting.JobRepository,
) *InterviewService {
	return &InterviewService{
		interviewRepo: interviewRepo,
		applicantRepo: applicantRepo,
		jobRepo:       jobRepo,
	}
}

// Create schedules an interview for an applicant
func (s *InterviewService) Create(ctx context.Context, req CreateInterviewRequest) (*InterviewResponse, error) {
	if err := s.checkApplicant(ctx, req.ApplicantID); err != nil {
		return nil, err
	}
	if req.JobID != nil {
		if err := s.checkJob(ctx, *req.JobID); err != nil {
			return nil, err
		}
	}

	interview, err := recruiting.NewInterview(req.ApplicantID)
	if err != nil {
		return nil, err
	}

	date, err := parseDateTime(req.Date)
	if err != nil {
		return nil, err
	}
	interview.JobID = req.JobID
	interview.Date = date
	if req.Status != "" {
		interview.Status = recruiting.InterviewStatus(req.Status)
	}
	interview.Result = recruiting.InterviewResult(req.Result)
	interview.Notes = req.Notes
	interview.PreparationInfo = req.PreparationInfo

	if err := interview.Validate(); err != nil {
		return nil, err
	}
	if err := s.interviewRepo.Save(ctx, interview); err != nil {
		return nil, err
	}

	resp := ToInterviewResponse(interview)
	return &resp, nil
}

// Get fetches a single interview
func (s *InterviewService) Get(ctx context.Context, id uint) (*InterviewResponse, error) {
	interview, err := s.interviewRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if interview == nil {
		return nil, shared.NewDomainError("NOT_FOUND", "Interview not found")
	}

	resp := ToInterviewResponse(interview)
	return &resp, nil
}

// List returns all interviews, optionally filtered by applicant
func (s *InterviewService) List(ctx context.Context, applicantID *uint) ([]InterviewResponse, error) {
	var (
		interviews []recruiting.Interview
		err        error
	)
	if applicantID != nil {
		interviews, err = s.interviewRepo.FindByApplicant(ctx, *applicantID)
	} else {
		interviews, err = s.interviewRepo.FindAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	responses := make([]InterviewResponse, 0, len(interviews))
	for i := range interviews {
		responses = append(responses, ToInterviewResponse(&interviews[i]))
	}
	return responses, nil
}

// Update applies a partial update to an interview
func (s *InterviewService) Update(ctx context.Context, id uint, req UpdateInterviewRequest) (*InterviewResponse, error) {
	interview, err := s.interviewRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if interview == nil {
		return nil, shared.NewDomainError("NOT_FOUND", "Interview not found")
	}

	if req.JobID != nil {
		if err := s.checkJob(ctx, *req.JobID); err != nil {
			return nil, err
		}
		interview.JobID = req.JobID
	}
	if req.Date != nil {
		date, err := parseDateTime(req.Date)
		if err != nil {
			return nil, err
		}
		interview.Date = date
	}
	if req.Status != nil {
		interview.Status = recruiting.InterviewStatus(*req.Status)
	}
	if req.Result != nil {
		interview.Result = recruiting.InterviewResult(*req.Result)
	}
	if req.Notes != nil {
		interview.Notes = *req.Notes
	}
	if req.PreparationInfo != nil {
		interview.PreparationInfo = *req.PreparationInfo
	}

	if err := interview.Validate(); err != nil {
		return nil, err
	}
	if err := s.interviewRepo.Save(ctx, interview); err != nil {
		return nil, err
	}

	resp := ToInterviewResponse(interview)
	return &resp, nil
}

// Delete removes an interview
func (s *InterviewService) Delete(ctx context.Context, id uint) error {
	interview, err := s.interviewRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if interview == nil {
		return shared.NewDomainError("NOT_FOUND", "Interview not found")
	}
	return s.interviewRepo.Delete(ctx, id)
}

// Statistics summarizes interview outcomes across all records. The
// pass rate is measured against every interview, not only the ones
// with a recorded result.
func (s *InterviewService) Statistics(ctx context.Context) (*InterviewStatisticsResponse, error) {
	total, err := s.interviewRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	passed, err := s.interviewRepo.CountByResult(ctx, recruiting.InterviewResultPassed)
	if err != nil {
		return nil, err
	}
	failed, err := s.interviewRepo.CountByResult(ctx, recruiting.InterviewResultFailed)
	if err != nil {
		return nil, err
	}

	var passRate float64
	if total > 0 {
		passRate = float64(passed) / float64(total) * 100
	}
	return &InterviewStatisticsResponse{
		TotalInterviews: total,
		Passed:          passed,
		Failed:          failed,
		PassRate:        passRate,
	}, nil
}

func (s *InterviewService) checkApplicant(ctx context.Context, id uint) error {
	applicant, err := s.applicantRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if applicant == nil {
		return shared.NewDomainError("NOT_FOUND", "Applicant not found")
	}
	return nil
}

func (s *InterviewService) checkJob(ctx context.Context, id uint) error {
	job, err := s.jobRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if job == nil {
		return shared.NewDomainError("NOT_FOUND", "Job not found")
	}
	return nil
}
