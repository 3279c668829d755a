package recruiting

import (
	"context"

	"github.com/recruitflow/backend/internal/domain/recruiting"
	"github.com/recruitflow/backend/internal/domain/shared"
)

// PhoneCallService handles phone call record business operations
type PhoneCallService struct {
	phoneCallRepo recruiting.PhoneCallRepository
	applicantRepo recruiting.ApplicantRepository
	employeeRepo  recruiting.EmployeeRepository
}

// NewPhoneCallService creates a new PhoneCallService
func NewPhoneCallService(
	phoneCallRepo recruiting.PhoneCallRepository,
	applicantRepo recruiting.ApplicantRepository,
	employeeRepo recruiting.EmployeeRepository,
) *PhoneCallService {
	return &PhoneCallService{
		phoneCallRepo: phoneCallRepo,
		applicantRepo: applicantRepo,
		employeeRepo:  employeeRepo,
	}
}

// Create records a phone call against an applicant
func (s *PhoneCallService) Create(ctx context.Context, req CreatePhoneCallRequest) (*PhoneCallResponse, error) {
	if err := s.checkApplicant(ctx, req.ApplicantID); err != nil {
		return nil, err
	}
	if req.EmployeeID != nil {
		if err := s.checkEmployee(ctx, *req.EmployeeID); err != nil {
			return nil, err
		}
	}

	callDate, err := parseDateTime(&req.CallDate)
	if err != nil {
		return nil, err
	}
	if callDate == nil {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Call date is required")
	}
	followUp, err := parseDateTime(req.FollowUpDate)
	if err != nil {
		return nil, err
	}

	call, err := recruiting.NewPhoneCall(req.ApplicantID, *callDate, recruiting.CallStatus(req.Status))
	if err != nil {
		return nil, err
	}
	call.EmployeeID = req.EmployeeID
	call.Notes = req.Notes
	call.FollowUpDate = followUp

	if err := call.Validate(); err != nil {
		return nil, err
	}
	if err := s.phoneCallRepo.Save(ctx, call); err != nil {
		return nil, err
	}

	resp := ToPhoneCallResponse(call)
	return &resp, nil
}

// Get fetches a single phone call record
func (s *PhoneCallService) Get(ctx context.Context, id uint) (*PhoneCallResponse, error) {
	call, err := s.phoneCallRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if call == nil {
		return nil, shared.NewDomainError("NOT_FOUND", "Phone call not found")
	}

	resp := ToPhoneCallResponse(call)
	return &resp, nil
}

// List returns all phone call records, optionally filtered by applicant
// or by employee. The applicant filter wins when both are set.
func (s *PhoneCallService) List(ctx context.Context, applicantID, employeeID *uint) ([]PhoneCallResponse, error) {
	var (
		calls []recruiting.PhoneCall
		err   error
	)
	switch {
	case applicantID != nil:
		calls, err = s.phoneCallRepo.FindByApplicant(ctx, *applicantID)
	case employeeID != nil:
		calls, err = s.phoneCallRepo.FindByEmployee(ctx, *employeeID)
	default:
		calls, err = s.phoneCallRepo.FindAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	responses := make([]PhoneCallResponse, 0, len(calls))
	for i := range calls {
		responses = append(responses, ToPhoneCallResponse(&calls[i]))
	}
	return responses, nil
}

// Update applies a partial update to a phone call record
func (s *PhoneCallService) Update(ctx context.Context, id uint, req UpdatePhoneCallRequest) (*PhoneCallResponse, error) {
	call, err := s.phoneCallRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if call == nil {
		return nil, shared.NewDomainError("NOT_FOUND", "Phone call not found")
	}

	if req.EmployeeID != nil {
		if err := s.checkEmployee(ctx, *req.EmployeeID); err != nil {
			return nil, err
		}
		call.EmployeeID = req.EmployeeID
	}
	if req.CallDate != nil {
		callDate, err := parseDateTime(req.CallDate)
		if err != nil {
			return nil, err
		}
		if callDate == nil {
			return nil, shared.NewDomainError("VALIDATION_ERROR", "Call date cannot be cleared")
		}
		call.CallDate = *callDate
	}
	if req.Status != nil {
		call.Status = recruiting.CallStatus(*req.Status)
	}
	if req.Notes != nil {
		call.Notes = *req.Notes
	}
	if req.FollowUpDate != nil {
		followUp, err := parseDateTime(req.FollowUpDate)
		if err != nil {
			return nil, err
		}
		call.FollowUpDate = followUp
	}

	if err := call.Validate(); err != nil {
		return nil, err
	}
	if err := s.phoneCallRepo.Save(ctx, call); err != nil {
		return nil, err
	}

	resp := ToPhoneCallResponse(call)
	return &resp, nil
}

// Delete removes a phone call record
func (s *PhoneCallService) Delete(ctx context.Context, id uint) error {
	call, err := s.phoneCallRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if call == nil {
		return shared.NewDomainError("NOT_FOUND", "Phone call not found")
	}
	return s.phoneCallRepo.Delete(ctx, id)
}

func (s *PhoneCallService) checkApplicant(ctx context.Context, id uint) error {
	applicant, err := s.applicantRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if applicant == nil {
		return shared.NewDomainError("NOT_FOUND", "Applicant not found")
	}
	return nil
}

func (s *PhoneCallService) checkEmployee(ctx context.Context, id uint) error {
	employee, err := s.employeeRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if employee == nil {
		return shared.NewDomainError("NOT_FOUND", "Employee not found")
	}
	return nil
}
