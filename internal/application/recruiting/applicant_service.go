package recruiting

import (
	"context"
	"time"

	"github.com/recruitflow/backend/internal/domain/recruiting"
	"github.com/recruitflow/backend/internal/domain/shared"
)

// ApplicantService handles applicant-related business operations
type ApplicantService struct {
	applicantRepo recruiting.ApplicantRepository
	employeeRepo  recruiting.EmployeeRepository
	now           func() time.Time
}

// NewApplicantService creates a new ApplicantService
func NewApplicantService(applicantRepo recruiting.ApplicantRepository, employeeRepo recruiting.EmployeeRepository) *ApplicantService {
	return &ApplicantService{
		applicantRepo: applicantRepo,
		employeeRepo:  employeeRepo,
		now:           time.Now,
	}
}

// Create registers a new applicant
func (s *ApplicantService) Create(ctx context.Context, req CreateApplicantRequest) (*ApplicantResponse, error) {
	applicant, err := recruiting.NewApplicant(req.Name)
	if err != nil {
		return nil, err
	}

	if err := s.applyCreate(applicant, req); err != nil {
		return nil, err
	}
	if err := applicant.Validate(); err != nil {
		return nil, err
	}

	if req.AssignedEmployeeID != nil {
		if err := s.checkEmployee(ctx, *req.AssignedEmployeeID); err != nil {
			return nil, err
		}
	}

	if err := s.applicantRepo.Save(ctx, applicant); err != nil {
		return nil, err
	}
	return ToApplicantResponse(applicant, s.now())
}

// Get fetches a single applicant. A row whose stored data cannot be
// serialized still comes back, as a placeholder.
func (s *ApplicantService) Get(ctx context.Context, id uint) (ApplicantItem, error) {
	applicant, err := s.applicantRepo.FindByID(ctx, id)
	if err != nil {
		return ApplicantItem{}, err
	}
	if applicant == nil {
		return ApplicantItem{}, shared.NewDomainError("NOT_FOUND", "Applicant not found")
	}
	return ToApplicantItem(applicant, s.now()), nil
}

// List returns all applicants, degrading unserializable rows to
// placeholders rather than failing the whole listing
func (s *ApplicantService) List(ctx context.Context) ([]ApplicantItem, error) {
	applicants, err := s.applicantRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]ApplicantItem, 0, len(applicants))
	for i := range applicants {
		items = append(items, ToApplicantItem(&applicants[i], s.now()))
	}
	return items, nil
}

// Update applies a partial update to an applicant
func (s *ApplicantService) Update(ctx context.Context, id uint, req UpdateApplicantRequest) (*ApplicantResponse, error) {
	applicant, err := s.applicantRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if applicant == nil {
		return nil, shared.NewDomainError("NOT_FOUND", "Applicant not found")
	}

	if err := s.applyUpdate(applicant, req); err != nil {
		return nil, err
	}
	if err := applicant.Validate(); err != nil {
		return nil, err
	}

	if req.AssignedEmployeeID != nil {
		if err := s.checkEmployee(ctx, *req.AssignedEmployeeID); err != nil {
			return nil, err
		}
		applicant.AssignEmployee(req.AssignedEmployeeID)
	}

	if err := s.applicantRepo.Save(ctx, applicant); err != nil {
		return nil, err
	}
	return ToApplicantResponse(applicant, s.now())
}

// Delete removes an applicant
func (s *ApplicantService) Delete(ctx context.Context, id uint) error {
	applicant, err := s.applicantRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if applicant == nil {
		return shared.NewDomainError("NOT_FOUND", "Applicant not found")
	}
	return s.applicantRepo.Delete(ctx, id)
}

// UpdateProgress sets or clears one pipeline stage date
func (s *ApplicantService) UpdateProgress(ctx context.Context, id uint, req UpdateProgressRequest) (*ApplicantResponse, error) {
	applicant, err := s.applicantRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if applicant == nil {
		return nil, shared.NewDomainError("NOT_FOUND", "Applicant not found")
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	if err := applicant.SetStageDate(recruiting.Stage(req.Stage), date); err != nil {
		return nil, err
	}

	if err := s.applicantRepo.Save(ctx, applicant); err != nil {
		return nil, err
	}
	return ToApplicantResponse(applicant, s.now())
}

// UpdateReferralFee sets or clears the applicant's referral fee
func (s *ApplicantService) UpdateReferralFee(ctx context.Context, id uint, req UpdateReferralFeeRequest) (*ApplicantResponse, error) {
	applicant, err := s.applicantRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if applicant == nil {
		return nil, shared.NewDomainError("NOT_FOUND", "Applicant not found")
	}

	if err := applicant.SetReferralFee(req.ReferralFee); err != nil {
		return nil, err
	}

	if err := s.applicantRepo.Save(ctx, applicant); err != nil {
		return nil, err
	}
	return ToApplicantResponse(applicant, s.now())
}

// AssignEmployee sets or clears the employee responsible for the applicant
func (s *ApplicantService) AssignEmployee(ctx context.Context, id uint, req AssignEmployeeRequest) (*ApplicantResponse, error) {
	applicant, err := s.applicantRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if applicant == nil {
		return nil, shared.NewDomainError("NOT_FOUND", "Applicant not found")
	}

	if req.EmployeeID != nil {
		if err := s.checkEmployee(ctx, *req.EmployeeID); err != nil {
			return nil, err
		}
	}
	applicant.AssignEmployee(req.EmployeeID)

	if err := s.applicantRepo.Save(ctx, applicant); err != nil {
		return nil, err
	}
	return ToApplicantResponse(applicant, s.now())
}

func (s *ApplicantService) checkEmployee(ctx context.Context, id uint) error {
	employee, err := s.employeeRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if employee == nil {
		return shared.NewDomainError("NOT_FOUND", "Employee not found")
	}
	return nil
}

func (s *ApplicantService) applyCreate(a *recruiting.Applicant, req CreateApplicantRequest) error {
	birthdate, err := parseDate(req.Birthdate)
	if err != nil {
		return err
	}
	applicationDate, err := parseDate(req.ApplicationDate)
	if err != nil {
		return err
	}

	a.Address = req.Address
	a.DesiredOccupation = req.DesiredOccupation
	a.DesiredLocation = req.DesiredLocation
	a.Birthdate = birthdate
	a.Email = req.Email
	a.PhoneNumber = req.PhoneNumber
	a.Gender = req.Gender
	a.Nationality = req.Nationality
	a.EmploymentStatus = req.EmploymentStatus
	a.AvailableDate = req.AvailableDate
	a.EmploymentPeriod = req.EmploymentPeriod
	a.MedicalHistory = req.MedicalHistory
	a.DisabilityCertificate = req.DisabilityCertificate
	a.Tattoo = req.Tattoo
	a.TattooDetails = req.TattooDetails
	a.CriminalRecord = req.CriminalRecord
	a.ClothingSize = req.ClothingSize
	a.CommuteOrDormitory = req.CommuteOrDormitory
	a.CommuteMethod = req.CommuteMethod
	a.CommuteArea = req.CommuteArea
	a.FactoryExperience = req.FactoryExperience
	a.ExperienceDetails = req.ExperienceDetails
	a.DesiredWorkingHours = req.DesiredWorkingHours
	a.RecentApplications = req.RecentApplications
	a.MostImportantPoint = req.MostImportantPoint
	a.ImportantPointDetails = req.ImportantPointDetails
	a.DesiredSalary = req.DesiredSalary
	a.Height = req.Height
	a.Weight = req.Weight
	a.ApplicationDate = applicationDate
	a.AssignedEmployeeID = req.AssignedEmployeeID

	return a.SetReferralFee(req.ReferralFee)
}

func (s *ApplicantService) applyUpdate(a *recruiting.Applicant, req UpdateApplicantRequest) error {
	if req.Name != nil {
		a.Name = *req.Name
	}
	if req.Address != nil {
		a.Address = *req.Address
	}
	if req.DesiredOccupation != nil {
		a.DesiredOccupation = *req.DesiredOccupation
	}
	if req.DesiredLocation != nil {
		a.DesiredLocation = *req.DesiredLocation
	}
	if req.Birthdate != nil {
		birthdate, err := parseDate(req.Birthdate)
		if err != nil {
			return err
		}
		a.Birthdate = birthdate
	}
	if req.Email != nil {
		a.Email = *req.Email
	}
	if req.PhoneNumber != nil {
		a.PhoneNumber = *req.PhoneNumber
	}
	if req.Gender != nil {
		a.Gender = *req.Gender
	}
	if req.Nationality != nil {
		a.Nationality = *req.Nationality
	}
	if req.EmploymentStatus != nil {
		a.EmploymentStatus = *req.EmploymentStatus
	}
	if req.AvailableDate != nil {
		a.AvailableDate = *req.AvailableDate
	}
	if req.EmploymentPeriod != nil {
		a.EmploymentPeriod = *req.EmploymentPeriod
	}
	if req.MedicalHistory != nil {
		a.MedicalHistory = *req.MedicalHistory
	}
	if req.DisabilityCertificate != nil {
		a.DisabilityCertificate = *req.DisabilityCertificate
	}
	if req.Tattoo != nil {
		a.Tattoo = *req.Tattoo
	}
	if req.TattooDetails != nil {
		a.TattooDetails = *req.TattooDetails
	}
	if req.CriminalRecord != nil {
		a.CriminalRecord = *req.CriminalRecord
	}
	if req.ClothingSize != nil {
		a.ClothingSize = *req.ClothingSize
	}
	if req.CommuteOrDormitory != nil {
		a.CommuteOrDormitory = *req.CommuteOrDormitory
	}
	if req.CommuteMethod != nil {
		a.CommuteMethod = *req.CommuteMethod
	}
	if req.CommuteArea != nil {
		a.CommuteArea = *req.CommuteArea
	}
	if req.FactoryExperience != nil {
		a.FactoryExperience = *req.FactoryExperience
	}
	if req.ExperienceDetails != nil {
		a.ExperienceDetails = *req.ExperienceDetails
	}
	if req.DesiredWorkingHours != nil {
		a.DesiredWorkingHours = *req.DesiredWorkingHours
	}
	if req.RecentApplications != nil {
		a.RecentApplications = *req.RecentApplications
	}
	if req.MostImportantPoint != nil {
		a.MostImportantPoint = *req.MostImportantPoint
	}
	if req.ImportantPointDetails != nil {
		a.ImportantPointDetails = *req.ImportantPointDetails
	}
	if req.DesiredSalary != nil {
		a.DesiredSalary = *req.DesiredSalary
	}
	if req.Height != nil {
		a.Height = *req.Height
	}
	if req.Weight != nil {
		a.Weight = *req.Weight
	}
	if req.ReferralFee != nil {
		if err := a.SetReferralFee(req.ReferralFee); err != nil {
			return err
		}
	}
	return nil
}
