package pricing

import "time"

const dateLayout = "2006-01-02"

type ReturnStatus string

const (
	ReturnStatusEarly       ReturnStatus = "EARLY"
	ReturnStatusOnTime      ReturnStatus = "ON_TIME"
	ReturnStatusGracePeriod ReturnStatus = "GRACE_PERIOD"
	ReturnStatusLate        ReturnStatus = "LATE"
	ReturnStatusUnknown     ReturnStatus = "UNKNOWN"
)

// ReturnAnalysis classifies an actual return against the planned return date.
type ReturnAnalysis struct {
	Status ReturnStatus
	// DaysEarly is how many whole days before the planned date the return
	// happened; zero unless Status is EARLY.
	DaysEarly int
	// ExtraDays is how many whole days past the grace window the return
	// happened; zero unless Status is LATE.
	ExtraDays int
}

// parseDay parses a yyyy-mm-dd string to a midnight-normalized time.
func parseDay(s string) (time.Time, bool) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// wholeDays returns the whole-day difference between two midnight times.
func wholeDays(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}

// ChargeableDays computes the billed duration between two dates. Both
// boundary days count, so a same-day rental bills exactly one day. The
// result never drops below minimumDays, and unparseable input degrades to
// minimumDays rather than failing: billing must always produce a number.
func ChargeableDays(start, end string, minimumDays int) int {
	if minimumDays < 1 {
		minimumDays = 1
	}
	s, ok := parseDay(start)
	if !ok {
		return minimumDays
	}
	e, ok := parseDay(end)
	if !ok {
		return minimumDays
	}
	days := wholeDays(s, e) + 1
	if days < minimumDays {
		return minimumDays
	}
	return days
}

// AnalyzeReturn classifies a return as early, on time, within the grace
// period, or late. graceDays extends the planned date; a return inside the
// window costs nothing extra. Missing or malformed dates yield UNKNOWN.
func AnalyzeReturn(actual, planned string, graceDays int) ReturnAnalysis {
	a, ok := parseDay(actual)
	if !ok {
		return ReturnAnalysis{Status: ReturnStatusUnknown}
	}
	p, ok := parseDay(planned)
	if !ok {
		return ReturnAnalysis{Status: ReturnStatusUnknown}
	}
	if graceDays < 0 {
		graceDays = 0
	}

	switch {
	case a.Before(p):
		return ReturnAnalysis{Status: ReturnStatusEarly, DaysEarly: wholeDays(a, p)}
	case a.Equal(p):
		return ReturnAnalysis{Status: ReturnStatusOnTime}
	}

	graceEnd := p.AddDate(0, 0, graceDays)
	if !a.After(graceEnd) {
		return ReturnAnalysis{Status: ReturnStatusGracePeriod}
	}
	return ReturnAnalysis{Status: ReturnStatusLate, ExtraDays: wholeDays(graceEnd, a)}
}
