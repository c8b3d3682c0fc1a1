package validate

import (
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/civicdata/roster/pkg/schema"
)

// Field rule library: independent checks over scalar values. Each check is
// side-effect free; the caller attaches the matching reason code when a
// check fails.

var (
	phoneRe            = regexp.MustCompile(`^(1-)?\d{3}-\d{3}-\d{4}( ext\. \d+)?$`)
	legacyOpenStatesRe = regexp.MustCompile(`^[A-Z]{2}L\d{6}$`)
)

// IsNonemptyString reports whether s has visible content.
// Failure code: EMPTY.
func IsNonemptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsString reports whether s is single-line free text. Multi-line values
// indicate a scraping artifact. Failure code: BAD_STRING.
func IsString(s string) bool {
	return !strings.Contains(s, "\n")
}

// IsURL reports whether s looks like a fetchable URL.
// Failure code: NOT_URL.
func IsURL(s string) bool {
	return IsString(s) && strings.HasPrefix(s, "http")
}

// IsEnumMember reports whether s is one of the allowed values.
// Failure code: NOT_IN_ENUM.
func IsEnumMember(s string, allowed map[string]bool) bool {
	return allowed[s]
}

// IsPhone reports whether s is a formatted North American phone number,
// optionally with extension. Failure code: BAD_PHONE.
func IsPhone(s string) bool {
	return IsString(s) && phoneRe.MatchString(s)
}

// IsSocial reports whether s is a bare social-media handle: no URL, no
// leading @. Failure code: BAD_SOCIAL.
func IsSocial(s string) bool {
	return IsString(s) &&
		!strings.HasPrefix(s, "http://") &&
		!strings.HasPrefix(s, "https://") &&
		!strings.HasPrefix(s, "@")
}

// IsLegacyOpenStates reports whether s is a legacy Open States ID
// (two-letter state, L, six digits). Failure code: BAD_SOCIAL.
func IsLegacyOpenStates(s string) bool {
	return legacyOpenStatesRe.MatchString(s)
}

// IsUUID reports whether s is a bare RFC 4122 UUID.
// Failure code: NOT_UUID.
func IsUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}

// ocdUUID checks the "<prefix><uuid>" form shared by ocd-person and
// ocd-organization identifiers.
func ocdUUID(s, prefix string) bool {
	if !strings.HasPrefix(s, prefix) {
		return false
	}
	return IsUUID(strings.TrimPrefix(s, prefix))
}

// IsPersonID reports whether s is an ocd-person identifier.
// Failure code: NOT_UUID.
func IsPersonID(s string) bool {
	return ocdUUID(s, schema.PersonIDPrefix)
}

// IsOrganizationID reports whether s is an ocd-organization identifier.
// Failure code: NOT_UUID.
func IsOrganizationID(s string) bool {
	return ocdUUID(s, schema.OrganizationIDPrefix)
}

// IsJurisdictionID reports whether s is an ocd-jurisdiction identifier.
// The tail is treated as an opaque token. Failure code: NOT_UUID.
func IsJurisdictionID(s string) bool {
	return IsString(s) && strings.HasPrefix(s, schema.JurisdictionIDPrefix) &&
		len(s) > len(schema.JurisdictionIDPrefix)
}

// Chamber literals accepted as role types and organization parents.
var chamberTypes = map[string]bool{
	"upper":       true,
	"lower":       true,
	"legislature": true,
}

// IsChamber reports whether s is one of the chamber literals.
func IsChamber(s string) bool {
	return chamberTypes[s]
}

// requireString flags a missing/blank required field, and a multi-line
// value in a field that must be single-line text.
func requireString(res *Result, path, val string) {
	switch {
	case !IsNonemptyString(val):
		res.Add(errorf(CodeEmpty, path, "required field is missing or empty"))
	case !IsString(val):
		res.Add(errorf(CodeBadString, path, "value must be single-line text"))
	}
}

// optionalString flags only malformed (multi-line) optional values.
func optionalString(res *Result, path, val string) {
	if val != "" && !IsString(val) {
		res.Add(errorf(CodeBadString, path, "value must be single-line text"))
	}
}

// optionalDate flags a malformed optional fuzzy date.
func optionalDate(res *Result, path, val string) {
	if val != "" && !IsFuzzyDate(val) {
		res.Add(errorf(CodeBadDateFormat, path, "%q is not a YYYY[-MM[-DD]] date", val))
	}
}

// optionalURL flags a malformed optional URL.
func optionalURL(res *Result, path, val string) {
	if val != "" && !IsURL(val) {
		res.Add(errorf(CodeNotURL, path, "%q is not a URL", val))
	}
}

// optionalPhone flags a malformed optional phone number.
func optionalPhone(res *Result, path, val string) {
	if val != "" && !IsPhone(val) {
		res.Add(errorf(CodeBadPhone, path, "%q is not a formatted phone number (785-296-2456 [ext. 7])", val))
	}
}
