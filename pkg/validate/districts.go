package validate

import (
	"fmt"
	"sort"

	"github.com/civicdata/roster/pkg/schema"
)

// SeatCounts maps chamber -> district -> expected seat count.
type SeatCounts map[string]map[string]int

// ActiveSeats indexes people by the chamber and district of their first
// active chamber role, for comparison against a jurisdiction's expected
// seats. Executive roles carry no district and are skipped.
func ActiveSeats(persons []*schema.Person, today string) map[string]map[string][]*schema.Person {
	actual := make(map[string]map[string][]*schema.Person)
	for _, p := range persons {
		for _, role := range p.Roles {
			if !IsChamber(role.Type) || !SpanActive(role.EndDate, today) {
				continue
			}
			if actual[role.Type] == nil {
				actual[role.Type] = make(map[string][]*schema.Person)
			}
			actual[role.Type][role.District] = append(actual[role.Type][role.District], p)
			break
		}
	}
	return actual
}

// CompareDistricts checks the active legislators against the expected
// seats. An empty seat is a warning (vacancies happen); a legislator in a
// seat or chamber that shouldn't exist, or more legislators than a seat
// holds, is an error.
func CompareDistricts(expected SeatCounts, actual map[string]map[string][]*schema.Person) []*Violation {
	res := &Result{}

	for _, chamber := range sortedKeys(expected) {
		for _, district := range sortedKeys(expected[chamber]) {
			want := expected[chamber][district]
			have := len(actual[chamber][district])
			path := fmt.Sprintf("%s.%s", chamber, district)
			if have < want {
				res.Add(warningf(CodeMissingSeat, path, "missing legislator for %s %s", chamber, district))
			}
			if have > want {
				res.Add(errorf(CodeUnexpectedSeat, path, "%d legislators for %s %s, expected %d", have, chamber, district, want))
			}
		}
		for _, district := range sortedKeys(actual[chamber]) {
			if _, ok := expected[chamber][district]; !ok {
				res.Add(errorf(CodeUnexpectedSeat, fmt.Sprintf("%s.%s", chamber, district),
					"legislator for unexpected seat %s %s", chamber, district))
			}
		}
	}

	for _, chamber := range sortedKeys(actual) {
		if _, ok := expected[chamber]; !ok {
			res.Add(errorf(CodeUnexpectedSeat, chamber, "legislators for unexpected chamber %s", chamber))
		}
	}

	return res.Violations
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
