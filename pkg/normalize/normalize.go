// Package normalize derives conventional fields and canonical formatting
// for records that already validated clean. Normalization is pure (the
// input record is never touched) and idempotent.
package normalize

import (
	"regexp"
	"strings"

	"github.com/civicdata/roster/pkg/schema"
)

var (
	phoneRe    = regexp.MustCompile(`^\D*(1?)\D*(\d{3})\D*(\d{3})\D*(\d{4})`)
	phoneExtRe = regexp.MustCompile(`(?i)\bext\.?\s*(\d{1,4})\s*$`)
	addressNL  = regexp.MustCompile(`\s*\n\s*`)
	spaceRun   = regexp.MustCompile(`\s+`)
)

// Person returns a normalized copy of p:
//
//   - sort_name is derived as "family_name, given_name" when both are
//     present and no explicit sort_name was given; with only a bare name
//     the record is left alone
//   - whitespace in name-ish fields is collapsed
//   - phone numbers and addresses are reformatted canonically
//
// Explicit sort_name, summary, and extras are never overwritten.
func Person(p *schema.Person) *schema.Person {
	q := p.Clone()

	q.Name = collapse(q.Name)
	q.GivenName = collapse(q.GivenName)
	q.FamilyName = collapse(q.FamilyName)
	q.SortName = collapse(q.SortName)
	q.Gender = collapse(q.Gender)

	if q.SortName == "" && q.FamilyName != "" && q.GivenName != "" {
		q.SortName = q.FamilyName + ", " + q.GivenName
	}

	normalizeContactDetails(q.ContactDetails)
	for i := range q.Roles {
		normalizeContactDetails(q.Roles[i].ContactDetails)
	}
	for i := range q.OtherNames {
		q.OtherNames[i].Name = collapse(q.OtherNames[i].Name)
	}
	for i := range q.Party {
		q.Party[i].Name = collapse(q.Party[i].Name)
	}

	return q
}

// Organization returns a normalized copy of org: collapsed whitespace and
// the conventional default membership role of "member".
func Organization(org *schema.Organization) *schema.Organization {
	q := org.Clone()
	q.Name = collapse(q.Name)
	for i := range q.Memberships {
		q.Memberships[i].Name = collapse(q.Memberships[i].Name)
		if q.Memberships[i].Role == "" {
			q.Memberships[i].Role = "member"
		}
	}
	return q
}

func normalizeContactDetails(cds []schema.ContactDetail) {
	for i := range cds {
		cds[i].Note = collapse(cds[i].Note)
		cds[i].Address = Address(cds[i].Address)
		cds[i].Voice = Phone(cds[i].Voice)
		cds[i].Fax = Phone(cds[i].Fax)
	}
}

// collapse trims and squeezes interior whitespace runs to single spaces.
func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Phone reformats a phone number to 555-123-4567 form, with an optional
// "1-" country prefix and " ext. N" suffix. Unrecognizable input is
// returned unchanged rather than mangled.
func Phone(phone string) string {
	if phone == "" {
		return phone
	}

	ext := ""
	rest := phone
	if m := phoneExtRe.FindStringSubmatch(phone); m != nil {
		ext = " ext. " + m[1]
		rest = phone[:len(phone)-len(m[0])]
	}

	m := phoneRe.FindStringSubmatch(rest)
	if m == nil {
		return phone
	}
	parts := []string{m[2], m[3], m[4]}
	if m[1] != "" {
		parts = append([]string{"1"}, parts...)
	}
	return strings.Join(parts, "-") + ext
}

// Address flattens a multi-line address into "line;line" form with
// collapsed whitespace.
func Address(address string) string {
	return strings.TrimSpace(spaceRun.ReplaceAllString(addressNL.ReplaceAllString(address, ";"), " "))
}
