package recruiting

import (
	"context"
	"testing"
	"time"

	"github.com/recruitflow/backend/internal/domain/recruiting"
	"github.com/recruitflow/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newApplicantService(applicantRepo *mockApplicantRepository, employeeRepo *mockEmployeeRepository) *ApplicantService {
	svc := NewApplicantService(applicantRepo, employeeRepo)
	svc.now = func() time.Time { return time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC) }
	return svc
}

func TestApplicantServiceCreate(t *testing.T) {
	applicantRepo := new(mockApplicantRepository)
	employeeRepo := new(mockEmployeeRepository)
	svc := newApplicantService(applicantRepo, employeeRepo)

	applicantRepo.On("Save", mock.Anything, mock.AnythingOfType("*recruiting.Applicant")).Return(nil)

	birthdate := "2000-03-15"
	resp, err := svc.Create(context.Background(), CreateApplicantRequest{
		Name:            "山田太郎",
		DesiredLocation: "東京都",
		Birthdate:       &birthdate,
	})

	require.NoError(t, err)
	assert.Equal(t, "山田太郎", resp.Name)
	require.NotNil(t, resp.Birthdate)
	assert.Equal(t, "2000-03-15", *resp.Birthdate)
	require.NotNil(t, resp.Age)
	assert.Equal(t, 24, *resp.Age)
	applicantRepo.AssertExpectations(t)
}

func TestApplicantServiceCreateEmptyName(t *testing.T) {
	svc := newApplicantService(new(mockApplicantRepository), new(mockEmployeeRepository))

	_, err := svc.Create(context.Background(), CreateApplicantRequest{Name: "  "})

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_NAME", domainErr.Code)
}

func TestApplicantServiceCreateBadDate(t *testing.T) {
	svc := newApplicantService(new(mockApplicantRepository), new(mockEmployeeRepository))

	bad := "15-03-2000"
	_, err := svc.Create(context.Background(), CreateApplicantRequest{Name: "山田太郎", Birthdate: &bad})

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "VALIDATION_ERROR", domainErr.Code)
}

func TestApplicantServiceGetNotFound(t *testing.T) {
	applicantRepo := new(mockApplicantRepository)
	svc := newApplicantService(applicantRepo, new(mockEmployeeRepository))

	applicantRepo.On("FindByID", mock.Anything, uint(42)).Return(nil, nil)

	_, err := svc.Get(context.Background(), 42)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
}

func TestApplicantServiceListDegradesCorruptRows(t *testing.T) {
	applicantRepo := new(mockApplicantRepository)
	svc := newApplicantService(applicantRepo, new(mockEmployeeRepository))

	good := recruiting.Applicant{Name: "佐藤花子"}
	good.ID = 1
	corruptDate := time.Date(10000, 1, 1, 0, 0, 0, 0, time.UTC)
	bad := recruiting.Applicant{Name: "田中一郎", HireDate: &corruptDate}
	bad.ID = 2

	applicantRepo.On("FindAll", mock.Anything).Return([]recruiting.Applicant{good, bad}, nil)

	items, err := svc.List(context.Background())

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.NotNil(t, items[0].Record)
	assert.Nil(t, items[0].Placeholder)
	require.NotNil(t, items[1].Placeholder)
	assert.Equal(t, uint(2), items[1].Placeholder.ID)
	assert.Equal(t, "田中一郎", items[1].Placeholder.Name)
	assert.Contains(t, items[1].Placeholder.Error, "データ変換エラー")
}

func TestApplicantServiceUpdateProgress(t *testing.T) {
	applicantRepo := new(mockApplicantRepository)
	svc := newApplicantService(applicantRepo, new(mockEmployeeRepository))

	applicant := recruiting.Applicant{Name: "山田太郎"}
	applicant.ID = 7
	applicantRepo.On("FindByID", mock.Anything, uint(7)).Return(&applicant, nil)
	applicantRepo.On("Save", mock.Anything, &applicant).Return(nil)

	date := "2024-05-01"
	resp, err := svc.UpdateProgress(context.Background(), 7, UpdateProgressRequest{
		Stage: "offer_date",
		Date:  &date,
	})

	require.NoError(t, err)
	require.NotNil(t, resp.OfferDate)
	assert.Equal(t, "2024-05-01", *resp.OfferDate)
}

func TestApplicantServiceUpdateProgressClearsDate(t *testing.T) {
	applicantRepo := new(mockApplicantRepository)
	svc := newApplicantService(applicantRepo, new(mockEmployeeRepository))

	set := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	applicant := recruiting.Applicant{Name: "山田太郎", OfferDate: &set}
	applicant.ID = 7
	applicantRepo.On("FindByID", mock.Anything, uint(7)).Return(&applicant, nil)
	applicantRepo.On("Save", mock.Anything, &applicant).Return(nil)

	resp, err := svc.UpdateProgress(context.Background(), 7, UpdateProgressRequest{Stage: "offer_date"})

	require.NoError(t, err)
	assert.Nil(t, resp.OfferDate)
}

func TestApplicantServiceUpdateProgressUnknownStage(t *testing.T) {
	applicantRepo := new(mockApplicantRepository)
	svc := newApplicantService(applicantRepo, new(mockEmployeeRepository))

	applicant := recruiting.Applicant{Name: "山田太郎"}
	applicant.ID = 7
	applicantRepo.On("FindByID", mock.Anything, uint(7)).Return(&applicant, nil)

	_, err := svc.UpdateProgress(context.Background(), 7, UpdateProgressRequest{Stage: "bogus_date"})

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_STAGE", domainErr.Code)
}

func TestApplicantServiceUpdateReferralFeeNegative(t *testing.T) {
	applicantRepo := new(mockApplicantRepository)
	svc := newApplicantService(applicantRepo, new(mockEmployeeRepository))

	applicant := recruiting.Applicant{Name: "山田太郎"}
	applicant.ID = 7
	applicantRepo.On("FindByID", mock.Anything, uint(7)).Return(&applicant, nil)

	fee := -500
	_, err := svc.UpdateReferralFee(context.Background(), 7, UpdateReferralFeeRequest{ReferralFee: &fee})

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_REFERRAL_FEE", domainErr.Code)
}

func TestApplicantServiceAssignEmployee(t *testing.T) {
	applicantRepo := new(mockApplicantRepository)
	employeeRepo := new(mockEmployeeRepository)
	svc := newApplicantService(applicantRepo, employeeRepo)

	applicant := recruiting.Applicant{Name: "山田太郎"}
	applicant.ID = 7
	employee := recruiting.Employee{Name: "鈴木次郎"}
	employee.ID = 3

	applicantRepo.On("FindByID", mock.Anything, uint(7)).Return(&applicant, nil)
	employeeRepo.On("FindByID", mock.Anything, uint(3)).Return(&employee, nil)
	applicantRepo.On("Save", mock.Anything, &applicant).Return(nil)

	employeeID := uint(3)
	resp, err := svc.AssignEmployee(context.Background(), 7, AssignEmployeeRequest{EmployeeID: &employeeID})

	require.NoError(t, err)
	require.NotNil(t, resp.AssignedEmployeeID)
	assert.Equal(t, uint(3), *resp.AssignedEmployeeID)
}

func TestApplicantServiceAssignEmployeeUnknown(t *testing.T) {
	applicantRepo := new(mockApplicantRepository)
	employeeRepo := new(mockEmployeeRepository)
	svc := newApplicantService(applicantRepo, employeeRepo)

	applicant := recruiting.Applicant{Name: "山田太郎"}
	applicant.ID = 7
	applicantRepo.On("FindByID", mock.Anything, uint(7)).Return(&applicant, nil)
	employeeRepo.On("FindByID", mock.Anything, uint(99)).Return(nil, nil)

	employeeID := uint(99)
	_, err := svc.AssignEmployee(context.Background(), 7, AssignEmployeeRequest{EmployeeID: &employeeID})

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
}

func TestApplicantServiceAssignEmployeeClears(t *testing.T) {
	applicantRepo := new(mockApplicantRepository)
	svc := newApplicantService(applicantRepo, new(mockEmployeeRepository))

	employeeID := uint(3)
	applicant := recruiting.Applicant{Name: "山田太郎", AssignedEmployeeID: &employeeID}
	applicant.ID = 7
	applicantRepo.On("FindByID", mock.Anything, uint(7)).Return(&applicant, nil)
	applicantRepo.On("Save", mock.Anything, &applicant).Return(nil)

	resp, err := svc.AssignEmployee(context.Background(), 7, AssignEmployeeRequest{})

	require.NoError(t, err)
	assert.Nil(t, resp.AssignedEmployeeID)
}

func TestApplicantServiceDeleteNotFound(t *testing.T) {
	applicantRepo := new(mockApplicantRepository)
	svc := newApplicantService(applicantRepo, new(mockEmployeeRepository))

	applicantRepo.On("FindByID", mock.Anything, uint(42)).Return(nil, nil)

	err := svc.Delete(context.Background(), 42)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
}
