// Package matching scores and orders applicant-job pairs by age
// eligibility and location affinity.
package matching

import (
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/recruitflow/backend/internal/domain/recruiting"
	"golang.org/x/text/width"
)

// Location match levels.
const (
	LocationNone    = 0
	LocationPartial = 50
	LocationFull    = 100
)

// Age returns the whole years elapsed since birthdate as of today,
// decremented by one when the birthday has not yet occurred this year.
func Age(birthdate, today time.Time) int {
	age := today.Year() - birthdate.Year()
	if int(today.Month())*100+today.Day() < int(birthdate.Month())*100+birthdate.Day() {
		age--
	}
	return age
}

// AgeMatch reports whether the applicant is eligible for the job's
// age limit. Eligibility only fails when both the applicant age and
// the limit are known and the age exceeds the limit.
func AgeMatch(age *int, ageLimit *int) bool {
	if age == nil || ageLimit == nil {
		return true
	}
	return *age <= *ageLimit
}

// LocationScore rates how well a desired location and a job prefecture
// agree: 100 when either string contains the other, 50 when any token
// of one appears inside the other, 0 otherwise. Empty strings never
// match.
func LocationScore(desired, prefecture string) int {
	if desired == "" || prefecture == "" {
		return LocationNone
	}
	if strings.Contains(prefecture, desired) || strings.Contains(desired, prefecture) {
		return LocationFull
	}
	for _, token := range Tokenize(desired) {
		if strings.Contains(prefecture, token) {
			return LocationPartial
		}
	}
	for _, token := range Tokenize(prefecture) {
		if strings.Contains(desired, token) {
			return LocationPartial
		}
	}
	return LocationNone
}

// Tokenize splits free-form location text into comparison tokens. The
// text splits on whitespace and on full- and half-width comma and
// period characters; tokens of a single rune are discarded.
func Tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		if unicode.IsSpace(r) {
			return true
		}
		switch width.Fold.String(string(r)) {
		case ",", ".":
			return true
		}
		return r == '、' || r == '。'
	})
	tokens := fields[:0]
	for _, f := range fields {
		if len([]rune(f)) > 1 {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// JobMatch is one scored job for an applicant.
type JobMatch struct {
	Job           recruiting.Job
	AgeMatch      bool
	LocationMatch int
}

// ApplicantMatch is one scored applicant for a job.
type ApplicantMatch struct {
	Applicant     recruiting.Applicant
	AgeMatch      bool
	LocationMatch int
	Age           *int
}

// JobSort selects the ordering for RankJobs.
type JobSort string

const (
	JobSortAgeLimit JobSort = "age_limit"
	JobSortLocation JobSort = "location"
)

// ApplicantSort selects the ordering for RankApplicants.
type ApplicantSort string

const (
	ApplicantSortAge      ApplicantSort = "age"
	ApplicantSortLocation ApplicantSort = "location"
)

// RankJobs scores every job for the applicant and orders the result.
// The default ordering puts age-eligible jobs first, jobs carrying an
// age limit before those without one, and lower limits before higher
// ones; the location ordering sorts by location score alone. Both
// orderings are stable.
func RankJobs(applicant *recruiting.Applicant, jobs []recruiting.Job, sortBy JobSort, today time.Time) []JobMatch {
	age := applicantAge(applicant, today)
	matches := make([]JobMatch, 0, len(jobs))
	for _, job := range jobs {
		matches = append(matches, JobMatch{
			Job:           job,
			AgeMatch:      AgeMatch(age, job.AgeLimit),
			LocationMatch: LocationScore(applicant.DesiredLocation, job.Prefecture),
		})
	}

	if sortBy == JobSortLocation {
		sort.SliceStable(matches, func(i, j int) bool {
			return matches[i].LocationMatch > matches[j].LocationMatch
		})
		return matches
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return jobSortKey(matches[i]) > jobSortKey(matches[j])
	})
	return matches
}

// jobSortKey folds the default ordering into one descending composite:
// age eligibility, then presence of an age limit, then the negated
// limit so lower limits rank higher.
func jobSortKey(m JobMatch) int {
	key := 0
	if m.AgeMatch {
		key += 2_000_000
	}
	if m.Job.AgeLimit != nil {
		key += 1_000_000 - *m.Job.AgeLimit
	}
	return key
}

// RankApplicants scores every applicant for the job and orders the
// result. The default ordering is youngest first with applicants
// lacking a birthdate last; the location ordering sorts by location
// score alone. Both orderings are stable.
func RankApplicants(job *recruiting.Job, applicants []recruiting.Applicant, sortBy ApplicantSort, today time.Time) []ApplicantMatch {
	matches := make([]ApplicantMatch, 0, len(applicants))
	for i := range applicants {
		a := applicants[i]
		age := applicantAge(&a, today)
		matches = append(matches, ApplicantMatch{
			Applicant:     a,
			AgeMatch:      AgeMatch(age, job.AgeLimit),
			LocationMatch: LocationScore(a.DesiredLocation, job.Prefecture),
			Age:           age,
		})
	}

	if sortBy == ApplicantSortLocation {
		sort.SliceStable(matches, func(i, j int) bool {
			return matches[i].LocationMatch > matches[j].LocationMatch
		})
		return matches
	}

	sort.SliceStable(matches, func(i, j int) bool {
		a, b := matches[i].Age, matches[j].Age
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return *a < *b
		}
	})
	return matches
}

func applicantAge(a *recruiting.Applicant, today time.Time) *int {
	if a.Birthdate == nil {
		return nil
	}
	age := Age(*a.Birthdate, today)
	return &age
}
