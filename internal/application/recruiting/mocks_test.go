package recruiting

import (
	"context"

	"github.com/recruitflow/backend/internal/domain/recruiting"
	"github.com/stretchr/testify/mock"
)

// Mock implementations shared by the service tests in this package

type mockApplicantRepository struct {
	mock.Mock
}

func (m *mockApplicantRepository) FindByID(ctx context.Context, id uint) (*recruiting.Applicant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recruiting.Applicant), args.Error(1)
}

func (m *mockApplicantRepository) FindAll(ctx context.Context) ([]recruiting.Applicant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]recruiting.Applicant), args.Error(1)
}

func (m *mockApplicantRepository) FindByIDs(ctx context.Context, ids []uint) ([]recruiting.Applicant, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]recruiting.Applicant), args.Error(1)
}

func (m *mockApplicantRepository) FindByEmployee(ctx context.Context, employeeID uint) ([]recruiting.Applicant, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]recruiting.Applicant), args.Error(1)
}

func (m *mockApplicantRepository) Save(ctx context.Context, applicant *recruiting.Applicant) error {
	args := m.Called(ctx, applicant)
	return args.Error(0)
}

func (m *mockApplicantRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockEmployeeRepository struct {
	mock.Mock
}

func (m *mockEmployeeRepository) FindByID(ctx context.Context, id uint) (*recruiting.Employee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recruiting.Employee), args.Error(1)
}

func (m *mockEmployeeRepository) FindAll(ctx context.Context) ([]recruiting.Employee, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]recruiting.Employee), args.Error(1)
}

func (m *mockEmployeeRepository) Save(ctx context.Context, employee *recruiting.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *mockEmployeeRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockJobRepository struct {
	mock.Mock
}

func (m *mockJobRepository) FindByID(ctx context.Context, id uint) (*recruiting.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recruiting.Job), args.Error(1)
}

func (m *mockJobRepository) FindAll(ctx context.Context) ([]recruiting.Job, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]recruiting.Job), args.Error(1)
}

func (m *mockJobRepository) Save(ctx context.Context, job *recruiting.Job) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

func (m *mockJobRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockInterviewRepository struct {
	mock.Mock
}

func (m *mockInterviewRepository) FindByID(ctx context.Context, id uint) (*recruiting.Interview, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recruiting.Interview), args.Error(1)
}

func (m *mockInterviewRepository) FindAll(ctx context.Context) ([]recruiting.Interview, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]recruiting.Interview), args.Error(1)
}

func (m *mockInterviewRepository) FindByApplicant(ctx context.Context, applicantID uint) ([]recruiting.Interview, error) {
	args := m.Called(ctx, applicantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]recruiting.Interview), args.Error(1)
}

func (m *mockInterviewRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockInterviewRepository) CountByResult(ctx context.Context, result recruiting.InterviewResult) (int64, error) {
	args := m.Called(ctx, result)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockInterviewRepository) Save(ctx context.Context, interview *recruiting.Interview) error {
	args := m.Called(ctx, interview)
	return args.Error(0)
}

func (m *mockInterviewRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockPhoneCallRepository struct {
	mock.Mock
}

func (m *mockPhoneCallRepository) FindByID(ctx context.Context, id uint) (*recruiting.PhoneCall, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recruiting.PhoneCall), args.Error(1)
}

func (m *mockPhoneCallRepository) FindAll(ctx context.Context) ([]recruiting.PhoneCall, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]recruiting.PhoneCall), args.Error(1)
}

func (m *mockPhoneCallRepository) FindByApplicant(ctx context.Context, applicantID uint) ([]recruiting.PhoneCall, error) {
	args := m.Called(ctx, applicantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]recruiting.PhoneCall), args.Error(1)
}

func (m *mockPhoneCallRepository) FindByEmployee(ctx context.Context, employeeID uint) ([]recruiting.PhoneCall, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]recruiting.PhoneCall), args.Error(1)
}

func (m *mockPhoneCallRepository) Save(ctx context.Context, call *recruiting.PhoneCall) error {
	args := m.Called(ctx, call)
	return args.Error(0)
}

func (m *mockPhoneCallRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
