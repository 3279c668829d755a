package analytics

import (
	"fmt"
	"time"
)

// Timeframe selects the reporting window for KPI aggregation.
type Timeframe string

const (
	TimeframeWeek    Timeframe = "week"
	TimeframeMonth   Timeframe = "month"
	TimeframeQuarter Timeframe = "quarter"
	TimeframeYear    Timeframe = "year"
)

// ParseTimeframe maps a query parameter value to a Timeframe.
// Unrecognized values fall back to the monthly window.
func ParseTimeframe(s string) Timeframe {
	switch Timeframe(s) {
	case TimeframeWeek, TimeframeMonth, TimeframeQuarter, TimeframeYear:
		return Timeframe(s)
	}
	return TimeframeMonth
}

// Period is one labeled reporting sub-period. Start and End are both
// inclusive dates at midnight.
type Period struct {
	Label string
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the period. End is treated
// as inclusive through the whole day, so timestamps with a time of
// day on the end date still count.
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && t.Before(p.End.AddDate(0, 0, 1))
}

// WindowStart returns the start date of the current reporting window
// for the given timeframe.
func WindowStart(tf Timeframe, today time.Time) time.Time {
	today = dateOf(today)
	switch tf {
	case TimeframeWeek:
		return today.AddDate(0, 0, -7)
	case TimeframeQuarter:
		quarterStartMonth := ((int(today.Month())-1)/3)*3 + 1
		return time.Date(today.Year(), time.Month(quarterStartMonth), 1, 0, 0, 0, 0, today.Location())
	case TimeframeYear:
		return time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, today.Location())
	default:
		return time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
	}
}

// SubPeriods returns the four consecutive reporting sub-periods for
// the timeframe, oldest first, the most recent one ending today.
func SubPeriods(tf Timeframe, today time.Time) []Period {
	today = dateOf(today)
	periods := make([]Period, 0, 4)
	for i := 3; i >= 0; i-- {
		periods = append(periods, subPeriod(tf, today, i))
	}
	return periods
}

// subPeriod computes the sub-period i steps back from today.
func subPeriod(tf Timeframe, today time.Time, i int) Period {
	switch tf {
	case TimeframeWeek:
		start := today.AddDate(0, 0, -(i+1)*7)
		end := today.AddDate(0, 0, -i*7)
		return Period{
			Label: fmt.Sprintf("%02d/%02d~%02d/%02d", start.Month(), start.Day(), end.Month(), end.Day()),
			Start: start,
			End:   end,
		}
	case TimeframeQuarter:
		// Quarter index may go negative when stepping back across
		// the year boundary and wraps by borrowing a year.
		quarter := (int(today.Month())-1)/3 - i
		year := today.Year()
		for quarter < 0 {
			quarter += 4
			year--
		}
		start := time.Date(year, time.Month(quarter*3+1), 1, 0, 0, 0, 0, today.Location())
		end := start.AddDate(0, 3, -1)
		return Period{
			Label: fmt.Sprintf("Q%d/%d", quarter+1, year),
			Start: start,
			End:   end,
		}
	case TimeframeYear:
		year := today.Year() - i
		return Period{
			Label: fmt.Sprintf("%d年", year),
			Start: time.Date(year, time.January, 1, 0, 0, 0, 0, today.Location()),
			End:   time.Date(year, time.December, 31, 0, 0, 0, 0, today.Location()),
		}
	default:
		month := int(today.Month()) - i
		year := today.Year()
		for month <= 0 {
			month += 12
			year--
		}
		start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, today.Location())
		end := start.AddDate(0, 1, -1)
		return Period{
			Label: fmt.Sprintf("%d/%02d", year, month),
			Start: start,
			End:   end,
		}
	}
}

// QuarterPeriods returns the four calendar quarters of the given year,
// used for the target-vs-actual comparison.
func QuarterPeriods(year int, loc *time.Location) []Period {
	periods := make([]Period, 0, 4)
	for q := 0; q < 4; q++ {
		start := time.Date(year, time.Month(q*3+1), 1, 0, 0, 0, 0, loc)
		periods = append(periods, Period{
			Label: fmt.Sprintf("Q%d", q+1),
			Start: start,
			End:   start.AddDate(0, 3, -1),
		})
	}
	return periods
}

// dateOf truncates a timestamp to midnight in its own location.
func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
