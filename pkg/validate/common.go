package validate

import (
	"fmt"

	"github.com/civicdata/roster/pkg/schema"
)

// Common element validators. Each element of a list is validated
// independently: an invalid entry at index i never blocks checking
// index i+1. Paths carry the element type and index, e.g.
// "contact_details[0].note".

// ValidateContactDetails checks a contact_details list rooted at base.
func ValidateContactDetails(base string, items []schema.ContactDetail) []*Violation {
	res := &Result{}
	for i, cd := range items {
		p := fmt.Sprintf("%s[%d]", base, i)
		requireString(res, p+".note", cd.Note)
		optionalString(res, p+".address", cd.Address)
		optionalString(res, p+".email", cd.Email)
		optionalPhone(res, p+".voice", cd.Voice)
		optionalPhone(res, p+".fax", cd.Fax)
	}
	return res.Violations
}

// ValidateLinks checks a links or sources list rooted at base: url is
// required, note optional.
func ValidateLinks(base string, items []schema.Link) []*Violation {
	res := &Result{}
	for i, l := range items {
		p := fmt.Sprintf("%s[%d]", base, i)
		optionalString(res, p+".note", l.Note)
		if !IsNonemptyString(l.URL) {
			res.Add(errorf(CodeEmpty, p+".url", "required field is missing or empty"))
		} else if !IsURL(l.URL) {
			res.Add(errorf(CodeNotURL, p+".url", "%q is not a URL", l.URL))
		}
	}
	return res.Violations
}

// ValidateOtherIdentifiers checks an other_identifiers list.
func ValidateOtherIdentifiers(base string, items []schema.OtherIdentifier) []*Violation {
	res := &Result{}
	for i, oi := range items {
		p := fmt.Sprintf("%s[%d]", base, i)
		requireString(res, p+".scheme", oi.Scheme)
		requireString(res, p+".identifier", oi.Identifier)
		optionalDate(res, p+".start_date", oi.StartDate)
		optionalDate(res, p+".end_date", oi.EndDate)
		checkRange(res, p, "start_date", "end_date", oi.StartDate, oi.EndDate)
	}
	return res.Violations
}

// ValidateOtherNames checks an other_names list.
func ValidateOtherNames(base string, items []schema.OtherName) []*Violation {
	res := &Result{}
	for i, on := range items {
		p := fmt.Sprintf("%s[%d]", base, i)
		requireString(res, p+".name", on.Name)
		optionalDate(res, p+".start_date", on.StartDate)
		optionalDate(res, p+".end_date", on.EndDate)
		checkRange(res, p, "start_date", "end_date", on.StartDate, on.EndDate)
	}
	return res.Violations
}
