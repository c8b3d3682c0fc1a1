package validate

import (
	"strings"
	"testing"
)

func TestCustomCheckPassAndFail(t *testing.T) {
	checks := []CustomCheck{
		{
			Name:      "image-required",
			AppliesTo: AppliesToPerson,
			Expr:      `person.Image != ""`,
			Message:   "people should carry a portrait image",
		},
	}

	p := validPerson()
	vs := RunPersonChecks(checks, p)
	if len(vs) != 1 || vs[0].Code != CodeCustom {
		t.Fatalf("expected one CUSTOM_CHECK, got %v", vs)
	}
	if vs[0].Severity != SeverityWarning {
		t.Errorf("default severity should be warning, got %s", vs[0].Severity)
	}
	if vs[0].Message != "people should carry a portrait image" {
		t.Errorf("unexpected message %q", vs[0].Message)
	}

	p.Image = "https://example.com/jane.jpg"
	if vs := RunPersonChecks(checks, p); len(vs) != 0 {
		t.Fatalf("satisfied check still fired: %v", vs)
	}
}

func TestCustomCheckErrorSeverity(t *testing.T) {
	checks := []CustomCheck{
		{
			Name:      "need-sources",
			AppliesTo: AppliesToPerson,
			Expr:      `len(person.Sources) > 0`,
			Severity:  "error",
		},
	}
	vs := RunPersonChecks(checks, validPerson())
	if len(vs) != 1 || vs[0].Severity != SeverityError {
		t.Fatalf("expected blocking violation, got %v", vs)
	}
}

func TestCustomCheckCompileErrorIsReported(t *testing.T) {
	checks := []CustomCheck{
		{Name: "broken", AppliesTo: AppliesToPerson, Expr: `person.Image !=`},
	}
	vs := RunPersonChecks(checks, validPerson())
	if len(vs) != 1 || vs[0].Severity != SeverityError {
		t.Fatalf("broken expression should be a blocking violation, got %v", vs)
	}
	if !strings.Contains(vs[0].Message, "broken") {
		t.Errorf("message should name the check, got %q", vs[0].Message)
	}
}

func TestCustomCheckScoping(t *testing.T) {
	checks := []CustomCheck{
		{Name: "org-only", AppliesTo: AppliesToOrganization, Expr: `organization.Name != ""`},
	}
	if vs := RunPersonChecks(checks, validPerson()); len(vs) != 0 {
		t.Fatalf("organization check ran against a person: %v", vs)
	}
	if vs := RunOrganizationChecks(checks, validCommittee()); len(vs) != 0 {
		t.Fatalf("satisfied organization check fired: %v", vs)
	}
}
