package validate

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

var fuzzyDateRe = regexp.MustCompile(`^(\d{4})(?:-(\d{2})(?:-(\d{2}))?)?$`)

// Granularity of a fuzzy date.
const (
	GranularityYear = iota + 1
	GranularityMonth
	GranularityDay
)

// FuzzyDate is a date given at year, year-month, or full day precision.
// Source records use partial dates when only the year (or month) of an
// event is known.
type FuzzyDate struct {
	Year, Month, Day int
	Granularity      int
}

// ParseFuzzyDate accepts YYYY, YYYY-MM, and YYYY-MM-DD.
func ParseFuzzyDate(s string) (FuzzyDate, error) {
	m := fuzzyDateRe.FindStringSubmatch(s)
	if m == nil {
		return FuzzyDate{}, fmt.Errorf("not a YYYY[-MM[-DD]] date: %q", s)
	}
	d := FuzzyDate{Granularity: GranularityYear}
	d.Year, _ = strconv.Atoi(m[1])
	if m[2] != "" {
		d.Month, _ = strconv.Atoi(m[2])
		d.Granularity = GranularityMonth
		if d.Month < 1 || d.Month > 12 {
			return FuzzyDate{}, fmt.Errorf("month out of range in %q", s)
		}
	}
	if m[3] != "" {
		d.Day, _ = strconv.Atoi(m[3])
		d.Granularity = GranularityDay
		// Round-trip through time.Date to reject day 31 in a 30-day month etc.
		t := time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
		if t.Day() != d.Day || int(t.Month()) != d.Month {
			return FuzzyDate{}, fmt.Errorf("day out of range in %q", s)
		}
	}
	return d, nil
}

// IsFuzzyDate reports whether s parses as a (possibly partial) date.
func IsFuzzyDate(s string) bool {
	_, err := ParseFuzzyDate(s)
	return err == nil
}

func (d FuzzyDate) String() string {
	switch d.Granularity {
	case GranularityDay:
		return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
	case GranularityMonth:
		return fmt.Sprintf("%04d-%02d", d.Year, d.Month)
	default:
		return fmt.Sprintf("%04d", d.Year)
	}
}

// Compare orders two fuzzy dates at their common granularity: components
// beyond the coarser date's precision are ignored, so "2020" and
// "2020-12-31" compare equal. Returns -1, 0, or +1.
func (d FuzzyDate) Compare(other FuzzyDate) int {
	g := d.Granularity
	if other.Granularity < g {
		g = other.Granularity
	}
	if c := cmpInt(d.Year, other.Year); c != 0 {
		return c
	}
	if g >= GranularityMonth {
		if c := cmpInt(d.Month, other.Month); c != 0 {
			return c
		}
	}
	if g >= GranularityDay {
		if c := cmpInt(d.Day, other.Day); c != 0 {
			return c
		}
	}
	return 0
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// rangeOrdered reports whether start <= end at their common granularity.
// Empty or malformed values pass: required/format problems are reported
// separately and must not double up as range violations.
func rangeOrdered(start, end string) bool {
	if start == "" || end == "" {
		return true
	}
	s, err := ParseFuzzyDate(start)
	if err != nil {
		return true
	}
	e, err := ParseFuzzyDate(end)
	if err != nil {
		return true
	}
	return s.Compare(e) <= 0
}

// checkRange appends a BAD_DATE_RANGE violation when end precedes start.
// startField/endField name the pair in the message; the violation lands
// on the end field's path.
func checkRange(res *Result, base, startField, endField, start, end string) {
	if rangeOrdered(start, end) {
		return
	}
	path := endField
	if base != "" {
		path = base + "." + endField
	}
	res.Add(errorf(CodeBadDateRange, path, "%s %q precedes %s %q", endField, end, startField, start))
}

// Today returns the current UTC date as YYYY-MM-DD.
func Today() string {
	return time.Now().UTC().Format("2006-01-02")
}

// SpanActive reports whether a role/membership span is still open: no end
// date, or an end date after the given day.
func SpanActive(endDate, today string) bool {
	return endDate == "" || endDate > today
}
