package validate

import (
	"testing"

	"github.com/civicdata/roster/pkg/schema"
)

func seatedPerson(id, district string) *schema.Person {
	return &schema.Person{
		ID:    id,
		Name:  "Member " + district,
		Party: []schema.PartySpan{{Name: "Independent"}},
		Roles: []schema.Role{
			{Type: "upper", District: district, Jurisdiction: ksJurisdiction},
		},
	}
}

func TestActiveSeatsSkipsClosedAndExecutiveRoles(t *testing.T) {
	today := "2026-08-30"

	closed := seatedPerson(janeID, "1")
	closed.Roles[0].EndDate = "2020-01-01"

	gov := &schema.Person{
		ID:    johnID,
		Name:  "Governor",
		Roles: []schema.Role{{Type: "gov", Jurisdiction: ksJurisdiction}},
	}

	actual := ActiveSeats([]*schema.Person{closed, gov}, today)
	if len(actual) != 0 {
		t.Fatalf("expected no active seats, got %v", actual)
	}
}

func TestCompareDistricts(t *testing.T) {
	expected := SeatCounts{
		"upper": {"1": 1, "2": 1},
	}
	today := "2026-08-30"

	// District 2 vacant: warning only.
	actual := ActiveSeats([]*schema.Person{seatedPerson(janeID, "1")}, today)
	vs := CompareDistricts(expected, actual)
	if len(vs) != 1 || vs[0].Code != CodeMissingSeat || vs[0].Severity != SeverityWarning {
		t.Fatalf("expected one MISSING_SEAT warning, got %v", vs)
	}

	// Two people in district 1: error.
	actual = ActiveSeats([]*schema.Person{seatedPerson(janeID, "1"), seatedPerson(johnID, "1")}, today)
	vs = CompareDistricts(expected, actual)
	if len(codesIn(vs, CodeUnexpectedSeat)) != 1 {
		t.Fatalf("expected UNEXPECTED_SEAT for overfilled district, got %v", vs)
	}

	// A district that shouldn't exist: error.
	actual = ActiveSeats([]*schema.Person{seatedPerson(janeID, "1"), seatedPerson(johnID, "99")}, today)
	vs = CompareDistricts(expected, actual)
	found := false
	for _, v := range codesIn(vs, CodeUnexpectedSeat) {
		if v.Path == "upper.99" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected UNEXPECTED_SEAT at upper.99, got %v", vs)
	}
}

func TestCompareDistrictsUnexpectedChamber(t *testing.T) {
	expected := SeatCounts{"legislature": {"1": 1}}
	p := seatedPerson(janeID, "1") // upper role
	vs := CompareDistricts(expected, ActiveSeats([]*schema.Person{p}, "2026-08-30"))
	found := false
	for _, v := range codesIn(vs, CodeUnexpectedSeat) {
		if v.Path == "upper" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected unexpected-chamber error, got %v", vs)
	}
}
