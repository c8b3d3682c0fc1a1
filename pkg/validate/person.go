package validate

import (
	"fmt"

	"github.com/civicdata/roster/pkg/schema"
)

// knownIDSchemes is the fixed key set for the ids mapping. Unknown schemes
// are warnings, not errors: new services legitimately appear before the
// schema catches up.
var knownIDSchemes = map[string]bool{
	"twitter":           true,
	"youtube":           true,
	"instagram":         true,
	"facebook":          true,
	"legacy_openstates": true,
}

// districtRequired is the conditional-requirement table for roles, keyed
// by role type. Adding a role type means adding a row here, not a branch.
var districtRequired = map[string]bool{
	"upper":       true,
	"lower":       true,
	"legislature": true,
	"gov":         false,
	"lt_gov":      false,
}

// roleTypes is the closed role type enum, derived from the rule table.
var roleTypes = func() map[string]bool {
	m := make(map[string]bool, len(districtRequired))
	for t := range districtRequired {
		m[t] = true
	}
	return m
}()

// ValidatePerson checks one person record in isolation and returns every
// violation found in a single pass. Cross-record checks (membership
// references) belong to Resolve.
func ValidatePerson(p *schema.Person) *Result {
	res := &Result{EntityID: p.ID}

	if !IsNonemptyString(p.ID) {
		res.Add(errorf(CodeEmpty, "id", "required field is missing or empty"))
	} else if !IsPersonID(p.ID) {
		res.Add(errorf(CodeNotUUID, "id", "%q is not an ocd-person UUID", p.ID))
	}
	requireString(res, "name", p.Name)

	optionalString(res, "sort_name", p.SortName)
	optionalString(res, "given_name", p.GivenName)
	optionalString(res, "family_name", p.FamilyName)
	optionalString(res, "gender", p.Gender)
	optionalString(res, "summary", p.Summary)
	optionalString(res, "biography", p.Biography)

	optionalDate(res, "birth_date", p.BirthDate)
	optionalDate(res, "death_date", p.DeathDate)
	checkRange(res, "", "birth_date", "death_date", p.BirthDate, p.DeathDate)

	optionalURL(res, "image", p.Image)

	validateIDs(res, p.IDs)

	for i, span := range p.Party {
		base := fmt.Sprintf("party[%d]", i)
		requireString(res, base+".name", span.Name)
		optionalDate(res, base+".start_date", span.StartDate)
		optionalDate(res, base+".end_date", span.EndDate)
		checkRange(res, base, "start_date", "end_date", span.StartDate, span.EndDate)
	}

	for i, role := range p.Roles {
		validateRole(res, fmt.Sprintf("roles[%d]", i), role)
	}

	res.Add(ValidateContactDetails("contact_details", p.ContactDetails)...)
	res.Add(ValidateLinks("links", p.Links)...)
	res.Add(ValidateOtherIdentifiers("other_identifiers", p.OtherIdentifiers)...)
	res.Add(ValidateOtherNames("other_names", p.OtherNames)...)
	res.Add(ValidateLinks("sources", p.Sources)...)

	return res
}

// validateIDs checks the ids mapping against the known scheme set and the
// per-scheme value shapes.
func validateIDs(res *Result, ids map[string]string) {
	for scheme, value := range ids {
		p := "ids." + scheme
		if !knownIDSchemes[scheme] {
			res.Add(warningf(CodeNotInEnum, p, "unknown id scheme %q", scheme))
			continue
		}
		switch scheme {
		case "legacy_openstates":
			if !IsLegacyOpenStates(value) {
				res.Add(errorf(CodeBadSocial, p, "%q is not a legacy Open States ID", value))
			}
		default:
			if !IsSocial(value) {
				res.Add(errorf(CodeBadSocial, p, "%q is not a bare handle (no URL, no @)", value))
			}
		}
	}
}

func validateRole(res *Result, base string, role schema.Role) {
	if !IsEnumMember(role.Type, roleTypes) {
		res.Add(errorf(CodeNotInEnum, base+".type", "invalid role type %q", role.Type))
	} else if districtRequired[role.Type] && !IsNonemptyString(role.District) {
		// Missing district on a chamber role is structurally invalid data,
		// not a style problem.
		res.Add(errorf(CodeEmpty, base+".district", "district is required for %s roles", role.Type))
	}
	optionalString(res, base+".district", role.District)

	if !IsNonemptyString(role.Jurisdiction) {
		res.Add(errorf(CodeEmpty, base+".jurisdiction", "required field is missing or empty"))
	} else if !IsJurisdictionID(role.Jurisdiction) {
		res.Add(errorf(CodeNotUUID, base+".jurisdiction", "%q is not an ocd-jurisdiction identifier", role.Jurisdiction))
	}

	optionalDate(res, base+".start_date", role.StartDate)
	optionalDate(res, base+".end_date", role.EndDate)
	checkRange(res, base, "start_date", "end_date", role.StartDate, role.EndDate)

	res.Add(ValidateContactDetails(base+".contact_details", role.ContactDetails)...)
}

// CheckRolePolicy applies the active-role rules used by lint: an active
// person holds exactly one open role and at least one open party span; a
// retired person holds none. Kept out of ValidatePerson because it depends
// on the day of the check and on retired status, which is positional (the
// retired/ directory), not part of the record.
func CheckRolePolicy(p *schema.Person, retired bool, today string) []*Violation {
	res := &Result{EntityID: p.ID}

	active := 0
	for _, role := range p.Roles {
		if SpanActive(role.EndDate, today) {
			active++
		}
	}
	switch {
	case retired && active > 0:
		res.Add(errorf(CodeExtraActiveRole, "roles", "%d active roles on retired person", active))
	case !retired && active == 0:
		res.Add(errorf(CodeNoActiveRole, "roles", "no active roles"))
	case active > 1:
		res.Add(errorf(CodeExtraActiveRole, "roles", "%d active roles", active))
	}

	activeParty := 0
	for _, span := range p.Party {
		if SpanActive(span.EndDate, today) {
			activeParty++
		}
	}
	switch {
	case retired && activeParty > 0:
		res.Add(errorf(CodeExtraActiveRole, "party", "%d active party spans on retired person", activeParty))
	case !retired && activeParty == 0:
		res.Add(errorf(CodeNoActiveRole, "party", "no active party"))
	}

	return res.Violations
}
