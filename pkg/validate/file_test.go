package validate

import (
	"os"
	"path/filepath"
	"testing"
)

func writeRecord(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestValidatePersonFileClean(t *testing.T) {
	path := writeRecord(t, "Jane-Doe.yml", `
id: ocd-person/11111111-1111-1111-1111-111111111111
name: Jane Doe
party:
  - name: Democratic
roles:
  - type: upper
    district: "3"
    jurisdiction: ocd-jurisdiction/country:us/state:ks/government
`)
	p, res := ValidatePersonFile(path)
	if p == nil {
		t.Fatal("record not returned")
	}
	if len(res.Violations) != 0 {
		t.Fatalf("clean file flagged: %v", res.Violations)
	}
}

func TestValidatePersonFileShapeMismatch(t *testing.T) {
	// roles should be a list; the record must still come back with a
	// TYPE_MISMATCH instead of aborting the run.
	path := writeRecord(t, "bad.yml", `
id: ocd-person/11111111-1111-1111-1111-111111111111
name: Jane Doe
roles: senator
`)
	p, res := ValidatePersonFile(path)
	if p == nil {
		t.Fatal("partially decoded record should be returned")
	}
	if p.Name != "Jane Doe" {
		t.Errorf("well-formed fields should survive, name = %q", p.Name)
	}
	if len(codesIn(res.Violations, CodeTypeMismatch)) == 0 {
		t.Fatalf("expected TYPE_MISMATCH, got %v", res.Violations)
	}
}

func TestValidatePersonFileUnknownField(t *testing.T) {
	path := writeRecord(t, "unknown.yml", `
id: ocd-person/11111111-1111-1111-1111-111111111111
name: Jane Doe
nickname: Janie
`)
	_, res := ValidatePersonFile(path)
	if len(codesIn(res.Violations, CodeTypeMismatch)) == 0 {
		t.Fatalf("unknown key should be a TYPE_MISMATCH, got %v", res.Violations)
	}
}

func TestValidatePersonFileSemanticPhase(t *testing.T) {
	path := writeRecord(t, "noname.yml", `
id: ocd-person/11111111-1111-1111-1111-111111111111
name: ""
`)
	_, res := ValidatePersonFile(path)
	if !res.HasErrors() {
		t.Fatal("blank name should fail")
	}
	if len(codesIn(res.Violations, CodeSchema)) == 0 {
		t.Fatalf("expected SCHEMA_VIOLATION from the semantic phase, got %v", res.Violations)
	}
}

func TestValidateOrganizationFile(t *testing.T) {
	path := writeRecord(t, "Ways-and-Means.yml", `
id: ocd-organization/44444444-4444-4444-4444-444444444444
name: Ways and Means
jurisdiction: ocd-jurisdiction/country:us/state:ks/government
parent: upper
classification: committee
memberships:
  - id: ocd-person/11111111-1111-1111-1111-111111111111
    name: Jane Doe
`)
	org, res := ValidateOrganizationFile(path, nil)
	if org == nil {
		t.Fatal("record not returned")
	}
	if len(res.Violations) != 0 {
		t.Fatalf("clean file flagged: %v", res.Violations)
	}
}

func TestValidatePersonFileMissing(t *testing.T) {
	_, res := ValidatePersonFile(filepath.Join(t.TempDir(), "absent.yml"))
	if !res.HasErrors() {
		t.Fatal("missing file should produce an error result")
	}
}
