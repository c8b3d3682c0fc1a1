package validate

import (
	"fmt"

	"github.com/civicdata/roster/pkg/schema"
)

// Options configures per-record validation. The classification enum is
// injectable so it can grow without touching validator control flow.
type Options struct {
	// Classifications is the allowed organization classification set.
	// Nil means DefaultClassifications.
	Classifications map[string]bool
}

// DefaultClassifications is the current organization classification enum.
var DefaultClassifications = map[string]bool{
	"committee": true,
}

func (o *Options) classifications() map[string]bool {
	if o == nil || o.Classifications == nil {
		return DefaultClassifications
	}
	return o.Classifications
}

// ValidateOrganization checks one organization record in isolation.
// Parent is only checked structurally here (chamber literal or
// ocd-organization UUID); whether a referenced parent exists needs batch
// context and is Resolve's job.
func ValidateOrganization(org *schema.Organization, opts *Options) *Result {
	res := &Result{EntityID: org.ID}

	if !IsNonemptyString(org.ID) {
		res.Add(errorf(CodeEmpty, "id", "required field is missing or empty"))
	} else if !IsOrganizationID(org.ID) {
		res.Add(errorf(CodeNotUUID, "id", "%q is not an ocd-organization UUID", org.ID))
	}
	requireString(res, "name", org.Name)

	if !IsNonemptyString(org.Jurisdiction) {
		res.Add(errorf(CodeEmpty, "jurisdiction", "required field is missing or empty"))
	} else if !IsJurisdictionID(org.Jurisdiction) {
		res.Add(errorf(CodeNotUUID, "jurisdiction", "%q is not an ocd-jurisdiction identifier", org.Jurisdiction))
	}

	if !IsNonemptyString(org.Parent) {
		res.Add(errorf(CodeEmpty, "parent", "required field is missing or empty"))
	} else if !IsChamber(org.Parent) && !IsOrganizationID(org.Parent) {
		res.Add(errorf(CodeNotInEnum, "parent",
			"%q is neither a chamber (upper, lower, legislature) nor an ocd-organization UUID", org.Parent))
	}

	if !IsNonemptyString(org.Classification) {
		res.Add(errorf(CodeEmpty, "classification", "required field is missing or empty"))
	} else if !IsEnumMember(org.Classification, opts.classifications()) {
		res.Add(errorf(CodeNotInEnum, "classification", "invalid classification %q", org.Classification))
	}

	optionalDate(res, "founding_date", org.FoundingDate)
	optionalDate(res, "dissolution_date", org.DissolutionDate)
	checkRange(res, "", "founding_date", "dissolution_date", org.FoundingDate, org.DissolutionDate)

	for i, m := range org.Memberships {
		base := fmt.Sprintf("memberships[%d]", i)
		requireString(res, base+".name", m.Name)
		// Membership IDs are resolved against the batch later; only the
		// shape is checked here.
		if m.ID != "" && !IsPersonID(m.ID) {
			res.Add(errorf(CodeNotUUID, base+".id", "%q is not an ocd-person UUID", m.ID))
		}
		optionalString(res, base+".role", m.Role)
		optionalDate(res, base+".start_date", m.StartDate)
		optionalDate(res, base+".end_date", m.EndDate)
		checkRange(res, base, "start_date", "end_date", m.StartDate, m.EndDate)
	}

	res.Add(ValidateLinks("links", org.Links)...)
	res.Add(ValidateLinks("sources", org.Sources)...)

	return res
}
