package schema

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// OCD identifier prefixes used by the people data set.
const (
	PersonIDPrefix       = "ocd-person/"
	OrganizationIDPrefix = "ocd-organization/"
	JurisdictionIDPrefix = "ocd-jurisdiction/"
)

// NewPersonID mints an ocd-person identifier with a random UUID tail.
func NewPersonID() string {
	return PersonIDPrefix + uuid.NewString()
}

// NewOrganizationID mints an ocd-organization identifier.
func NewOrganizationID() string {
	return OrganizationIDPrefix + uuid.NewString()
}

// JurisdictionID returns the ocd-jurisdiction identifier for a US state,
// territory, or district postal abbreviation.
func JurisdictionID(abbr string) string {
	abbr = strings.ToLower(abbr)
	switch abbr {
	case "dc":
		return JurisdictionIDPrefix + "country:us/district:dc/government"
	case "pr", "vi":
		return fmt.Sprintf("%scountry:us/territory:%s/government", JurisdictionIDPrefix, abbr)
	default:
		return fmt.Sprintf("%scountry:us/state:%s/government", JurisdictionIDPrefix, abbr)
	}
}

var filenameScrubRe = regexp.MustCompile(`[^a-zA-Z-]`)
var filenameSpaceRe = regexp.MustCompile(`\s+`)

// Filename derives the canonical on-disk name for a record:
// the record's name with whitespace dashed and punctuation dropped,
// followed by the UUID tail of its id.
func Filename(id, name string) string {
	tail := id
	if i := strings.IndexByte(id, '/'); i >= 0 {
		tail = id[i+1:]
	}
	name = filenameSpaceRe.ReplaceAllString(name, "-")
	name = filenameScrubRe.ReplaceAllString(name, "")
	return fmt.Sprintf("%s-%s.yml", name, tail)
}
