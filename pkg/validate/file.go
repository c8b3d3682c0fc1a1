package validate

import (
	"github.com/civicdata/roster/pkg/schema"
)

// File pipeline: structural (strict YAML decode) → semantic (JSON Schema)
// → domain (hand-coded rules). A shape problem in the source becomes a
// TYPE_MISMATCH violation on that record instead of aborting the run, so
// one broken file never hides its siblings' reports.

// ValidatePersonFile loads and fully validates one person YAML file.
// The record is returned even when violations are present, unless the
// file could not be decoded at all.
func ValidatePersonFile(path string) (*schema.Person, *Result) {
	p, mismatches, err := schema.LoadPersonFile(path)
	if err != nil {
		return nil, &Result{Violations: []*Violation{
			errorf(CodeTypeMismatch, "", "%v", err),
		}}
	}
	res := &Result{EntityID: p.ID}
	for _, m := range mismatches {
		res.Add(errorf(CodeTypeMismatch, "", "%s", m))
	}
	res.Add(ValidatePersonSchema(p)...)
	if res.HasErrors() {
		// Structural/semantic defects make domain output noisy duplicates.
		return p, res
	}
	res.Add(ValidatePerson(p).Violations...)
	return p, res
}

// ValidateOrganizationFile loads and fully validates one organization
// YAML file; same contract as ValidatePersonFile.
func ValidateOrganizationFile(path string, opts *Options) (*schema.Organization, *Result) {
	org, mismatches, err := schema.LoadOrganizationFile(path)
	if err != nil {
		return nil, &Result{Violations: []*Violation{
			errorf(CodeTypeMismatch, "", "%v", err),
		}}
	}
	res := &Result{EntityID: org.ID}
	for _, m := range mismatches {
		res.Add(errorf(CodeTypeMismatch, "", "%s", m))
	}
	res.Add(ValidateOrganizationSchema(org)...)
	if res.HasErrors() {
		return org, res
	}
	res.Add(ValidateOrganization(org, opts).Violations...)
	return org, res
}
