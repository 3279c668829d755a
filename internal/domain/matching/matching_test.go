package matching

import (
	"testing"
	"time"

	"github.com/recruitflow/backend/internal/domain/recruiting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func iptr(i int) *int { return &i }

func TestAge(t *testing.T) {
	birthdate := date(2000, time.March, 15)

	// the birthday itself counts, the day before does not
	assert.Equal(t, 23, Age(birthdate, date(2024, time.March, 14)))
	assert.Equal(t, 24, Age(birthdate, date(2024, time.March, 15)))
	assert.Equal(t, 24, Age(birthdate, date(2024, time.December, 31)))
}

func TestAgeMatch(t *testing.T) {
	tests := []struct {
		name     string
		age      *int
		ageLimit *int
		expected bool
	}{
		{"within limit", iptr(28), iptr(30), true},
		{"at limit", iptr(30), iptr(30), true},
		{"over limit", iptr(31), iptr(30), false},
		{"no age known", nil, iptr(30), true},
		{"no limit", iptr(50), nil, true},
		{"neither known", nil, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, AgeMatch(tt.age, tt.ageLimit))
		})
	}
}

func TestLocationScore(t *testing.T) {
	tests := []struct {
		name       string
		desired    string
		prefecture string
		expected   int
	}{
		{"substring one way", "東京都", "東京都渋谷区", LocationFull},
		{"substring other way", "東京都渋谷区", "東京都", LocationFull},
		{"identical", "大阪府", "大阪府", LocationFull},
		{"token partial match", "東京都、神奈川県", "神奈川県横浜市", LocationPartial},
		{"fullwidth comma delimiter", "東京都，神奈川県", "神奈川県横浜市", LocationPartial},
		{"no overlap", "北海道", "沖縄県", LocationNone},
		{"empty desired", "", "東京都", LocationNone},
		{"empty prefecture", "東京都", "", LocationNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, LocationScore(tt.desired, tt.prefecture))
		})
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"whitespace", "東京都 神奈川県", []string{"東京都", "神奈川県"}},
		{"ideographic comma", "東京都、埼玉県。千葉県", []string{"東京都", "埼玉県", "千葉県"}},
		{"ascii punctuation", "tokyo,osaka.nagoya", []string{"tokyo", "osaka", "nagoya"}},
		{"single rune tokens dropped", "あ 東京 い", []string{"東京"}},
		{"lowercased", "Tokyo Osaka", []string{"tokyo", "osaka"}},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := Tokenize(tt.input)
			if tt.expected == nil {
				assert.Empty(t, tokens)
				return
			}
			assert.Equal(t, tt.expected, tokens)
		})
	}
}

func newApplicant(id uint, birthdate *time.Time, desiredLocation string) recruiting.Applicant {
	a := recruiting.Applicant{Name: "applicant", DesiredLocation: desiredLocation, Birthdate: birthdate}
	a.ID = id
	return a
}

func newJob(id uint, ageLimit *int, prefecture string) recruiting.Job {
	j := recruiting.Job{Company: "会社", Title: "製造スタッフ", Prefecture: prefecture, AgeLimit: ageLimit}
	j.ID = id
	return j
}

func TestRankJobsDefaultSort(t *testing.T) {
	today := date(2024, time.June, 1)
	birthdate := date(1996, time.January, 10) // aged 28

	applicant := newApplicant(1, &birthdate, "")
	jobs := []recruiting.Job{
		newJob(1, iptr(30), ""), // matches, has limit
		newJob(2, nil, ""),      // matches, no limit
		newJob(3, iptr(25), ""), // age over limit
	}

	matches := RankJobs(&applicant, jobs, JobSortAgeLimit, today)
	require.Len(t, matches, 3)

	// eligible jobs first, limit-carrying job before the open one,
	// ineligible job last
	assert.Equal(t, uint(1), matches[0].Job.ID)
	assert.True(t, matches[0].AgeMatch)
	assert.Equal(t, uint(2), matches[1].Job.ID)
	assert.True(t, matches[1].AgeMatch)
	assert.Equal(t, uint(3), matches[2].Job.ID)
	assert.False(t, matches[2].AgeMatch)
}

func TestRankJobsLowerLimitFirst(t *testing.T) {
	today := date(2024, time.June, 1)
	birthdate := date(1996, time.January, 10) // aged 28

	applicant := newApplicant(1, &birthdate, "")
	jobs := []recruiting.Job{
		newJob(1, iptr(45), ""),
		newJob(2, iptr(30), ""),
		newJob(3, iptr(35), ""),
	}

	matches := RankJobs(&applicant, jobs, JobSortAgeLimit, today)
	require.Len(t, matches, 3)
	assert.Equal(t, uint(2), matches[0].Job.ID)
	assert.Equal(t, uint(3), matches[1].Job.ID)
	assert.Equal(t, uint(1), matches[2].Job.ID)
}

func TestRankJobsLocationSort(t *testing.T) {
	today := date(2024, time.June, 1)
	applicant := newApplicant(1, nil, "東京都")
	jobs := []recruiting.Job{
		newJob(1, nil, "大阪府"),
		newJob(2, nil, "東京都新宿区"),
	}

	matches := RankJobs(&applicant, jobs, JobSortLocation, today)
	require.Len(t, matches, 2)
	assert.Equal(t, uint(2), matches[0].Job.ID)
	assert.Equal(t, LocationFull, matches[0].LocationMatch)
	assert.Equal(t, uint(1), matches[1].Job.ID)
	assert.Equal(t, LocationNone, matches[1].LocationMatch)
}

func TestRankApplicantsAgeSort(t *testing.T) {
	today := date(2024, time.June, 1)
	young := date(2002, time.January, 1)
	old := date(1980, time.January, 1)

	job := newJob(1, nil, "")
	applicants := []recruiting.Applicant{
		newApplicant(1, nil, ""), // no birthdate sorts last
		newApplicant(2, &old, ""),
		newApplicant(3, &young, ""),
	}

	matches := RankApplicants(&job, applicants, ApplicantSortAge, today)
	require.Len(t, matches, 3)

	assert.Equal(t, uint(3), matches[0].Applicant.ID)
	assert.Equal(t, uint(2), matches[1].Applicant.ID)
	assert.Equal(t, uint(1), matches[2].Applicant.ID)
	assert.Nil(t, matches[2].Age)
}

func TestRankApplicantsAgeMatchAgainstJobLimit(t *testing.T) {
	today := date(2024, time.June, 1)
	over := date(1980, time.January, 1)

	job := newJob(1, iptr(40), "")
	applicants := []recruiting.Applicant{newApplicant(1, &over, "")}

	matches := RankApplicants(&job, applicants, ApplicantSortAge, today)
	require.Len(t, matches, 1)
	assert.False(t, matches[0].AgeMatch)
	require.NotNil(t, matches[0].Age)
	assert.Equal(t, 44, *matches[0].Age)
}

func TestRankApplicantsLocationSortStable(t *testing.T) {
	today := date(2024, time.June, 1)
	job := newJob(1, nil, "東京都")
	applicants := []recruiting.Applicant{
		newApplicant(1, nil, "東京都"),
		newApplicant(2, nil, "東京都"),
		newApplicant(3, nil, "大阪府"),
	}

	matches := RankApplicants(&job, applicants, ApplicantSortLocation, today)
	require.Len(t, matches, 3)

	// equal scores keep their input order
	assert.Equal(t, uint(1), matches[0].Applicant.ID)
	assert.Equal(t, uint(2), matches[1].Applicant.ID)
	assert.Equal(t, uint(3), matches[2].Applicant.ID)
}
