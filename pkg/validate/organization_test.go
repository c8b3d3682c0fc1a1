package validate

import (
	"testing"

	"github.com/civicdata/roster/pkg/schema"
)

func validCommittee() *schema.Organization {
	return &schema.Organization{
		ID:             committeeID,
		Name:           "Ways and Means",
		Jurisdiction:   ksJurisdiction,
		Parent:         "upper",
		Classification: "committee",
		Memberships: []schema.Membership{
			{ID: janeID, Name: "Jane Doe", Role: "chair"},
		},
	}
}

func TestValidCommitteeHasNoErrors(t *testing.T) {
	res := ValidateOrganization(validCommittee(), nil)
	if len(res.Violations) != 0 {
		t.Fatalf("expected clean record, got %v", res.Violations)
	}
}

func TestOrganizationRequiredFields(t *testing.T) {
	res := ValidateOrganization(&schema.Organization{}, nil)
	for _, path := range []string{"id", "name", "jurisdiction", "parent", "classification"} {
		if len(violationsAt(res.Errors(), path)) != 1 {
			t.Errorf("expected one error at %s, got %v", path, violationsAt(res.Errors(), path))
		}
	}
}

func TestParentChamberOrOrganizationID(t *testing.T) {
	org := validCommittee()
	org.Parent = "lower"
	if res := ValidateOrganization(org, nil); len(res.Violations) != 0 {
		t.Errorf("chamber parent should pass, got %v", res.Violations)
	}

	org.Parent = senateID
	if res := ValidateOrganization(org, nil); len(res.Violations) != 0 {
		t.Errorf("ocd-organization parent should pass, got %v", res.Violations)
	}

	org.Parent = "senate"
	res := ValidateOrganization(org, nil)
	vs := violationsAt(res.Errors(), "parent")
	if len(vs) != 1 || vs[0].Code != CodeNotInEnum {
		t.Fatalf("expected NOT_IN_ENUM at parent, got %v", res.Errors())
	}
}

func TestClassificationEnumIsInjectable(t *testing.T) {
	org := validCommittee()
	org.Classification = "caucus"

	res := ValidateOrganization(org, nil)
	vs := violationsAt(res.Errors(), "classification")
	if len(vs) != 1 || vs[0].Code != CodeNotInEnum {
		t.Fatalf("caucus should fail with defaults, got %v", res.Errors())
	}

	opts := &Options{Classifications: map[string]bool{"committee": true, "caucus": true}}
	if res := ValidateOrganization(org, opts); len(res.Violations) != 0 {
		t.Errorf("caucus should pass with widened enum, got %v", res.Violations)
	}
}

func TestMembershipChecks(t *testing.T) {
	org := validCommittee()
	org.Memberships = []schema.Membership{
		{Name: ""},
		{ID: "not-an-id", Name: "John Roe"},
		{Name: "Jan Smith", StartDate: "2024-05", EndDate: "2024-01"},
	}
	res := ValidateOrganization(org, nil)
	if len(violationsAt(res.Errors(), "memberships[0].name")) != 1 {
		t.Errorf("expected error at memberships[0].name, got %v", res.Errors())
	}
	vs := violationsAt(res.Errors(), "memberships[1].id")
	if len(vs) != 1 || vs[0].Code != CodeNotUUID {
		t.Errorf("expected NOT_UUID at memberships[1].id, got %v", res.Errors())
	}
	vs = violationsAt(res.Errors(), "memberships[2].end_date")
	if len(vs) != 1 || vs[0].Code != CodeBadDateRange {
		t.Errorf("expected BAD_DATE_RANGE at memberships[2].end_date, got %v", res.Errors())
	}
}

func TestFoundingDissolutionOrdering(t *testing.T) {
	org := validCommittee()
	org.FoundingDate = "2020"
	org.DissolutionDate = "2019"
	res := ValidateOrganization(org, nil)
	vs := violationsAt(res.Errors(), "dissolution_date")
	if len(vs) != 1 || vs[0].Code != CodeBadDateRange {
		t.Fatalf("expected BAD_DATE_RANGE at dissolution_date, got %v", res.Errors())
	}
}
