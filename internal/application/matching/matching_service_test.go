package matching

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

func newMatchingService(applicantRepo *mockApplicantRepository, jobRepo *mockJobRepository) *MatchingService {
	svc := NewMatchingService(applicantRepo, jobRepo)
	svc.now = func() time.Time { return time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC) }
	return svc
}

func iptr(i int) *int             { return &i }
func dptr(t time.Time) *time.Time { return &t }

func TestJobsForApplicant(t *testing.T) {
	applicantRepo := new(mockApplicantRepository)
	jobRepo := new(mockJobRepository)
	svc := newMatchingService(applicantRepo, jobRepo)

	applicant := recruiting.Applicant{
		Name:            "山田太郎",
		Birthdate:       dptr(time.Date(1996, 1, 10, 0, 0, 0, 0, time.UTC)),
		DesiredLocation: "東京都",
	}
	applicant.ID = 7

	within := recruiting.Job{Company: "A社", Title: "製造", Prefecture: "東京都", AgeLimit: iptr(30)}
	within.ID = 1
	over := recruiting.Job{Company: "B社", Title: "組立", Prefecture: "大阪府", AgeLimit: iptr(25)}
	over.ID = 2

	applicantRepo.On("FindByID", mock.Anything, uint(7)).Return(&applicant, nil)
	jobRepo.On("FindAll", mock.Anything).Return([]recruiting.Job{over, within}, nil)

	matches, err := svc.JobsForApplicant(context.Background(), 7, "")

	require.NoError(t, err)
	require.Len(t, matches, 2)
	// applicant is 28: the 30-limit job satisfies the age condition
	assert.Equal(t, uint(1), matches[0].Job.ID)
	assert.True(t, matches[0].AgeMatch)
	assert.Equal(t, 100, matches[0].LocationMatch)
	assert.False(t, matches[1].AgeMatch)
	require.NotNil(t, matches[0].ApplicantAge)
	assert.Equal(t, 28, *matches[0].ApplicantAge)
}

func TestJobsForApplicantNotFound(t *testing.T) {
	applicantRepo := new(mockApplicantRepository)
	svc := newMatchingService(applicantRepo, new(mockJobRepository))

	applicantRepo.On("FindByID", mock.Anything, uint(99)).Return(nil, nil)

	_, err := svc.JobsForApplicant(context.Background(), 99, "")

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
}

func TestApplicantsForJobAgeOrder(t *testing.T) {
	applicantRepo := new(mockApplicantRepository)
	jobRepo := new(mockJobRepository)
	svc := newMatchingService(applicantRepo, jobRepo)

	job := recruiting.Job{Company: "A社", Title: "製造", Prefecture: "東京都"}
	job.ID = 1

	older := recruiting.Applicant{Name: "佐藤", Birthdate: dptr(time.Date(1980, 1, 1, 0, 0, 0, 0, time.UTC))}
	older.ID = 1
	younger := recruiting.Applicant{Name: "田中", Birthdate: dptr(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC))}
	younger.ID = 2
	unknown := recruiting.Applicant{Name: "鈴木"}
	unknown.ID = 3

	jobRepo.On("FindByID", mock.Anything, uint(1)).Return(&job, nil)
	applicantRepo.On("FindAll", mock.Anything).Return([]recruiting.Applicant{older, unknown, younger}, nil)

	matches, err := svc.ApplicantsForJob(context.Background(), 1, "age")

	require.NoError(t, err)
	require.Len(t, matches, 3)
	assert.Equal(t, uint(2), matches[0].Applicant.Record.ID)
	assert.Equal(t, uint(1), matches[1].Applicant.Record.ID)
	// unknown birthdate sorts last
	assert.Equal(t, uint(3), matches[2].Applicant.Record.ID)
	assert.Nil(t, matches[2].Age)
}
