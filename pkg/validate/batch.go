package validate

import "github.com/civicdata/roster/pkg/schema"

// BatchResult pairs per-record validation results with the batch-level
// resolution result. PerRecord holds one Result per input record, persons
// first, in input order.
type BatchResult struct {
	PerRecord  []*Result `json:"per_record"`
	Resolution *Result   `json:"resolution"`
}

// ValidateBatch runs per-record validation over every person and
// organization, then resolves cross-record references. One record's
// failures never block validation of its siblings; the resolution pass
// always runs so dangling references surface even in broken batches.
func ValidateBatch(persons []*schema.Person, orgs []*schema.Organization, opts *Options) *BatchResult {
	br := &BatchResult{}
	for _, p := range persons {
		br.PerRecord = append(br.PerRecord, ValidatePerson(p))
	}
	for _, org := range orgs {
		br.PerRecord = append(br.PerRecord, ValidateOrganization(org, opts))
	}
	br.Resolution = Resolve(&Batch{Persons: persons, Organizations: orgs}, opts)
	return br
}

// HasErrors reports whether any record or the resolution pass produced a
// blocking violation.
func (br *BatchResult) HasErrors() bool {
	for _, r := range br.PerRecord {
		if r.HasErrors() {
			return true
		}
	}
	return br.Resolution != nil && br.Resolution.HasErrors()
}

// Accepted returns the persons whose per-record result and whose entries
// in the resolution pass have no errors. Warnings are tolerated. Only
// accepted records should be normalized and persisted.
func (br *BatchResult) Accepted(persons []*schema.Person) []*schema.Person {
	blocked := make(map[string]bool)
	for _, r := range br.PerRecord {
		if r.HasErrors() {
			blocked[r.EntityID] = true
		}
	}
	if br.Resolution != nil {
		for _, v := range br.Resolution.Violations {
			if v.Severity == SeverityError {
				blocked[v.EntityID] = true
			}
		}
	}
	var out []*schema.Person
	for _, p := range persons {
		if !blocked[p.ID] {
			out = append(out, p)
		}
	}
	return out
}
