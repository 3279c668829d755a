package recruiting

import (
	"testing"
	"time"

	"github.com/recruitflow/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInterview(t *testing.T) {
	i, err := NewInterview(12)
	require.NoError(t, err)
	assert.Equal(t, uint(12), i.ApplicantID)
	assert.Equal(t, InterviewStatusScheduled, i.Status)

	_, err = NewInterview(0)
	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_APPLICANT", domainErr.Code)
}

func TestInterviewValidate(t *testing.T) {
	tests := []struct {
		name         string
		interview    Interview
		expectedCode string
	}{
		{
			name:      "completed with passed result",
			interview: Interview{ApplicantID: 1, Status: InterviewStatusCompleted, Result: InterviewResultPassed},
		},
		{
			name:      "empty result is allowed",
			interview: Interview{ApplicantID: 1, Status: InterviewStatusScheduled},
		},
		{
			name:         "unknown status",
			interview:    Interview{ApplicantID: 1, Status: InterviewStatus("postponed")},
			expectedCode: "INVALID_STATUS",
		},
		{
			name:         "unknown result",
			interview:    Interview{ApplicantID: 1, Status: InterviewStatusCompleted, Result: InterviewResult("maybe")},
			expectedCode: "INVALID_RESULT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.interview.Validate()
			if tt.expectedCode == "" {
				assert.NoError(t, err)
				return
			}
			var domainErr *shared.DomainError
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, tt.expectedCode, domainErr.Code)
		})
	}
}

func TestNewPhoneCall(t *testing.T) {
	day := time.Date(2024, time.June, 1, 10, 0, 0, 0, time.UTC)

	p, err := NewPhoneCall(5, day, "")
	require.NoError(t, err)
	assert.Equal(t, CallStatusScheduled, p.Status)

	p, err = NewPhoneCall(5, day, CallStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, CallStatusCompleted, p.Status)

	_, err = NewPhoneCall(0, day, CallStatusCompleted)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_APPLICANT", domainErr.Code)

	_, err = NewPhoneCall(5, time.Time{}, CallStatusCompleted)
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_CALL_DATE", domainErr.Code)
}

func TestNewJob(t *testing.T) {
	j, err := NewJob(" 株式会社テスト ", " 製造スタッフ ")
	require.NoError(t, err)
	assert.Equal(t, "株式会社テスト", j.Company)
	assert.Equal(t, "製造スタッフ", j.Title)

	_, err = NewJob("", "title")
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_COMPANY", domainErr.Code)

	_, err = NewJob("company", " ")
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_TITLE", domainErr.Code)

	negative := -1
	j = &Job{Company: "c", Title: "t", AgeLimit: &negative}
	err = j.Validate()
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_AGE_LIMIT", domainErr.Code)
}
