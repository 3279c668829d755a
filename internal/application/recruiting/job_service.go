package recruiting

import (
	"context"

	"github.com/recruitflow/backend/internal/domain/recruiting"
	"github.com/recruitflow/backend/internal/domain/shared"
)

// JobService handles job posting business operations
type JobService struct {
	jobRepo recruiting.JobRepository
}

// NewJobService creates a new JobService
func NewJobService(jobRepo recruiting.JobRepository) *JobService {
	return &JobService{jobRepo: jobRepo}
}

// Create registers a new job posting
func (s *JobService) Create(ctx context.Context, req CreateJobRequest) (*JobResponse, error) {
	job, err := recruiting.NewJob(req.Company, req.Title)
	if err != nil {
		return nil, err
	}

	applyJobFields(job, req)
	if err := job.Validate(); err != nil {
		return nil, err
	}
	if err := s.jobRepo.Save(ctx, job); err != nil {
		return nil, err
	}

	resp := ToJobResponse(job)
	return &resp, nil
}

// Get fetches a single job posting
func (s *JobService) Get(ctx context.Context, id uint) (*JobResponse, error) {
	job, err := s.jobRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, shared.NewDomainError("NOT_FOUND", "Job not found")
	}

	resp := ToJobResponse(job)
	return &resp, nil
}

// List returns all job postings
func (s *JobService) List(ctx context.Context) ([]JobResponse, error) {
	jobs, err := s.jobRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]JobResponse, 0, len(jobs))
	for i := range jobs {
		responses = append(responses, ToJobResponse(&jobs[i]))
	}
	return responses, nil
}

// Update applies a partial update to a job posting
func (s *JobService) Update(ctx context.Context, id uint, req UpdateJobRequest) (*JobResponse, error) {
	job, err := s.jobRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, shared.NewDomainError("NOT_FOUND", "Job not found")
	}

	applyJobUpdate(job, req)
	if err := job.Validate(); err != nil {
		return nil, err
	}
	if err := s.jobRepo.Save(ctx, job); err != nil {
		return nil, err
	}

	resp := ToJobResponse(job)
	return &resp, nil
}

// Delete removes a job posting
func (s *JobService) Delete(ctx context.Context, id uint) error {
	job, err := s.jobRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if job == nil {
		return shared.NewDomainError("NOT_FOUND", "Job not found")
	}
	return s.jobRepo.Delete(ctx, id)
}

func applyJobFields(j *recruiting.Job, req CreateJobRequest) {
	j.JobURL = req.JobURL
	j.JobNumber = req.JobNumber
	j.CfFc = req.CfFc
	j.Prefecture = req.Prefecture
	j.City = req.City
	j.Salary = req.Salary
	j.Fee = req.Fee
	j.AgeLimit = req.AgeLimit
	j.Description = req.Description
	j.Requirements = req.Requirements
	j.Benefits = req.Benefits
	j.WorkingHours = req.WorkingHours
	j.EmploymentType = req.EmploymentType
	j.Holidays = req.Holidays
	j.Dormitory = req.Dormitory
	j.HousingCost = req.HousingCost
	j.HousingAllowance = req.HousingAllowance
	j.WorkStyle = req.WorkStyle
	j.AnnualHolidays = req.AnnualHolidays
	j.Gender = req.Gender
	j.MinAge = req.MinAge
	j.WorkExperience = req.WorkExperience
	j.OccupationExperience = req.OccupationExperience
	j.JapaneseRequired = req.JapaneseRequired
	j.CommuteMethod = req.CommuteMethod
	j.NearestStation = req.NearestStation
	j.SalaryType = req.SalaryType
	j.HourlyWage = req.HourlyWage
	j.Shift = req.Shift
	j.Products = req.Products
	j.OccupationMajorCategory = req.OccupationMajorCategory
	j.OccupationMinorCategory = req.OccupationMinorCategory
	j.Advantages = req.Advantages
	j.SmokingMeasures = req.SmokingMeasures
}

func applyJobUpdate(j *recruiting.Job, req UpdateJobRequest) {
	if req.JobURL != nil {
		j.JobURL = *req.JobURL
	}
	if req.JobNumber != nil {
		j.JobNumber = *req.JobNumber
	}
	if req.CfFc != nil {
		j.CfFc = *req.CfFc
	}
	if req.Company != nil {
		j.Company = *req.Company
	}
	if req.Prefecture != nil {
		j.Prefecture = *req.Prefecture
	}
	if req.City != nil {
		j.City = *req.City
	}
	if req.Title != nil {
		j.Title = *req.Title
	}
	if req.Salary != nil {
		j.Salary = *req.Salary
	}
	if req.Fee != nil {
		j.Fee = *req.Fee
	}
	if req.AgeLimit != nil {
		j.AgeLimit = req.AgeLimit
	}
	if req.Description != nil {
		j.Description = *req.Description
	}
	if req.Requirements != nil {
		j.Requirements = *req.Requirements
	}
	if req.Benefits != nil {
		j.Benefits = *req.Benefits
	}
	if req.WorkingHours != nil {
		j.WorkingHours = *req.WorkingHours
	}
	if req.EmploymentType != nil {
		j.EmploymentType = *req.EmploymentType
	}
	if req.Holidays != nil {
		j.Holidays = *req.Holidays
	}
	if req.Dormitory != nil {
		j.Dormitory = *req.Dormitory
	}
	if req.HousingCost != nil {
		j.HousingCost = *req.HousingCost
	}
	if req.HousingAllowance != nil {
		j.HousingAllowance = *req.HousingAllowance
	}
	if req.WorkStyle != nil {
		j.WorkStyle = *req.WorkStyle
	}
	if req.AnnualHolidays != nil {
		j.AnnualHolidays = *req.AnnualHolidays
	}
	if req.Gender != nil {
		j.Gender = *req.Gender
	}
	if req.MinAge != nil {
		j.MinAge = req.MinAge
	}
	if req.WorkExperience != nil {
		j.WorkExperience = *req.WorkExperience
	}
	if req.OccupationExperience != nil {
		j.OccupationExperience = *req.OccupationExperience
	}
	if req.JapaneseRequired != nil {
		j.JapaneseRequired = *req.JapaneseRequired
	}
	if req.CommuteMethod != nil {
		j.CommuteMethod = *req.CommuteMethod
	}
	if req.NearestStation != nil {
		j.NearestStation = *req.NearestStation
	}
	if req.SalaryType != nil {
		j.SalaryType = *req.SalaryType
	}
	if req.HourlyWage != nil {
		j.HourlyWage = req.HourlyWage
	}
	if req.Shift != nil {
		j.Shift = *req.Shift
	}
	if req.Products != nil {
		j.Products = *req.Products
	}
	if req.OccupationMajorCategory != nil {
		j.OccupationMajorCategory = *req.OccupationMajorCategory
	}
	if req.OccupationMinorCategory != nil {
		j.OccupationMinorCategory = *req.OccupationMinorCategory
	}
	if req.Advantages != nil {
		j.Advantages = *req.Advantages
	}
	if req.SmokingMeasures != nil {
		j.SmokingMeasures = *req.SmokingMeasures
	}
}
