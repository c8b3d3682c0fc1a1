package normalize

import (
	"reflect"
	"testing"

	"github.com/civicdata/roster/pkg/schema"
)

func TestPhone(t *testing.T) {
	cases := map[string]string{
		"(785) 296-2456":           "785-296-2456",
		"785.296.2456":             "785-296-2456",
		"785 296 2456":             "785-296-2456",
		"1-785-296-2456":           "1-785-296-2456",
		"(785) 296-2456 ext 7":     "785-296-2456 ext. 7",
		"785.296.2456 Ext. 42":     "785-296-2456 ext. 42",
		"785-296-2456":             "785-296-2456",
		"785-296-2456 ext. 7":      "785-296-2456 ext. 7",
		"":                         "",
		"call the capitol":         "call the capitol", // unrecognizable: unchanged
	}
	for in, want := range cases {
		if got := Phone(in); got != want {
			t.Errorf("Phone(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestPhoneIdempotent(t *testing.T) {
	for _, in := range []string{"(785) 296-2456 ext 7", "1 785 296 2456"} {
		once := Phone(in)
		if twice := Phone(once); twice != once {
			t.Errorf("Phone not idempotent: %q -> %q -> %q", in, once, twice)
		}
	}
}

func TestAddress(t *testing.T) {
	got := Address("300 SW 10th Ave.\n  Room 236\nTopeka, KS 66612")
	want := "300 SW 10th Ave.;Room 236;Topeka, KS 66612"
	if got != want {
		t.Errorf("Address = %q, want %q", got, want)
	}
	if again := Address(got); again != got {
		t.Errorf("Address not idempotent: %q -> %q", got, again)
	}
}

func TestPersonSortName(t *testing.T) {
	p := &schema.Person{
		ID:         "ocd-person/11111111-1111-1111-1111-111111111111",
		Name:       "Jane  Doe",
		GivenName:  "Jane",
		FamilyName: "Doe",
	}
	q := Person(p)
	if q.SortName != "Doe, Jane" {
		t.Errorf("sort_name = %q, want %q", q.SortName, "Doe, Jane")
	}
	if q.Name != "Jane Doe" {
		t.Errorf("name whitespace not collapsed: %q", q.Name)
	}

	// Explicit sort_name is never overwritten.
	p.SortName = "Doe Jr., Jane"
	if q := Person(p); q.SortName != "Doe Jr., Jane" {
		t.Errorf("explicit sort_name overwritten: %q", q.SortName)
	}

	// A bare name is left alone.
	bare := &schema.Person{Name: "Jane Doe"}
	if q := Person(bare); q.SortName != "" {
		t.Errorf("sort_name derived without name parts: %q", q.SortName)
	}
}

func TestPersonLeavesSummaryAndExtrasAlone(t *testing.T) {
	p := &schema.Person{
		Name:       "Jane  Doe",
		GivenName:  "Jane",
		FamilyName: "Doe",
		Summary:    "Senator  for the  3rd district", // free text, never reformatted
		Extras: map[string]any{
			"scraped_phone": "(785)  296-2456",
		},
	}
	q := Person(p)
	if q.Summary != "Senator  for the  3rd district" {
		t.Errorf("summary rewritten: %q", q.Summary)
	}
	if !reflect.DeepEqual(q.Extras, p.Extras) {
		t.Errorf("extras rewritten: %v", q.Extras)
	}
}

func TestPersonDoesNotMutateInput(t *testing.T) {
	p := &schema.Person{
		Name: "Jane  Doe",
		ContactDetails: []schema.ContactDetail{
			{Note: "Capitol Office", Voice: "(785) 296-2456"},
		},
	}
	Person(p)
	if p.Name != "Jane  Doe" || p.ContactDetails[0].Voice != "(785) 296-2456" {
		t.Error("input record was mutated")
	}
}

func TestPersonIdempotent(t *testing.T) {
	p := &schema.Person{
		Name:       " Jane   Doe ",
		GivenName:  "Jane",
		FamilyName: "Doe",
		ContactDetails: []schema.ContactDetail{
			{Note: "Capitol  Office", Voice: "(785) 296.2456 ext 7", Address: "Room 236\nTopeka, KS"},
		},
		Roles: []schema.Role{
			{Type: "upper", ContactDetails: []schema.ContactDetail{{Note: "District Office", Fax: "785 296 0000"}}},
		},
	}
	once := Person(p)
	twice := Person(once)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("normalization not idempotent:\n once: %+v\ntwice: %+v", once, twice)
	}
	if once.ContactDetails[0].Voice != "785-296-2456 ext. 7" {
		t.Errorf("voice = %q", once.ContactDetails[0].Voice)
	}
	if once.Roles[0].ContactDetails[0].Fax != "785-296-0000" {
		t.Errorf("fax = %q", once.Roles[0].ContactDetails[0].Fax)
	}
}

func TestOrganizationDefaultsMembershipRole(t *testing.T) {
	org := &schema.Organization{
		Name: "Ways  and Means",
		Memberships: []schema.Membership{
			{Name: "Jane  Doe"},
			{Name: "John Roe", Role: "chair"},
		},
	}
	q := Organization(org)
	if q.Name != "Ways and Means" {
		t.Errorf("name = %q", q.Name)
	}
	if q.Memberships[0].Role != "member" {
		t.Errorf("default role = %q, want member", q.Memberships[0].Role)
	}
	if q.Memberships[1].Role != "chair" {
		t.Errorf("explicit role overwritten: %q", q.Memberships[1].Role)
	}
	if org.Memberships[0].Role != "" {
		t.Error("input record was mutated")
	}
}
