// Package schema defines the Go struct types for person and organization
// YAML records and provides strict YAML parsing and dumping.
package schema

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Person is a legislator or executive tracked in the people data set.
type Person struct {
	ID         string `yaml:"id"                    json:"id"                    jsonschema:"required,minLength=1"`
	Name       string `yaml:"name"                  json:"name"                  jsonschema:"required,minLength=1"`
	SortName   string `yaml:"sort_name,omitempty"   json:"sort_name,omitempty"`
	GivenName  string `yaml:"given_name,omitempty"  json:"given_name,omitempty"`
	FamilyName string `yaml:"family_name,omitempty" json:"family_name,omitempty"`
	Gender     string `yaml:"gender,omitempty"      json:"gender,omitempty"`
	Summary    string `yaml:"summary,omitempty"     json:"summary,omitempty"`
	Biography  string `yaml:"biography,omitempty"   json:"biography,omitempty"`
	BirthDate  string `yaml:"birth_date,omitempty"  json:"birth_date,omitempty"  jsonschema:"pattern=^[0-9]{4}(-[0-9]{2}(-[0-9]{2})?)?$"`
	DeathDate  string `yaml:"death_date,omitempty"  json:"death_date,omitempty"  jsonschema:"pattern=^[0-9]{4}(-[0-9]{2}(-[0-9]{2})?)?$"`
	Image      string `yaml:"image,omitempty"       json:"image,omitempty"`

	// IDs maps a known scheme (twitter, youtube, instagram, facebook,
	// legacy_openstates) to an external username or identifier.
	IDs map[string]string `yaml:"ids,omitempty" json:"ids,omitempty"`

	ContactDetails   []ContactDetail   `yaml:"contact_details,omitempty"   json:"contact_details,omitempty"`
	Links            []Link            `yaml:"links,omitempty"             json:"links,omitempty"`
	OtherIdentifiers []OtherIdentifier `yaml:"other_identifiers,omitempty" json:"other_identifiers,omitempty"`
	OtherNames       []OtherName       `yaml:"other_names,omitempty"       json:"other_names,omitempty"`
	Sources          []Link            `yaml:"sources,omitempty"           json:"sources,omitempty"`
	Party            []PartySpan       `yaml:"party,omitempty"             json:"party,omitempty"`
	Roles            []Role            `yaml:"roles,omitempty"             json:"roles,omitempty"`

	// Extras is an opaque pass-through bag. Validation and normalization
	// never look inside it.
	Extras map[string]any `yaml:"extras,omitempty" json:"extras,omitempty"`
}

// Organization is a committee or similar body within a jurisdiction.
type Organization struct {
	ID              string       `yaml:"id"                         json:"id"             jsonschema:"required,minLength=1"`
	Name            string       `yaml:"name"                       json:"name"           jsonschema:"required,minLength=1"`
	Jurisdiction    string       `yaml:"jurisdiction"               json:"jurisdiction"   jsonschema:"required,minLength=1"`
	Parent          string       `yaml:"parent"                     json:"parent"         jsonschema:"required,minLength=1"`
	Classification  string       `yaml:"classification"             json:"classification" jsonschema:"required,minLength=1"`
	FoundingDate    string       `yaml:"founding_date,omitempty"    json:"founding_date,omitempty"    jsonschema:"pattern=^[0-9]{4}(-[0-9]{2}(-[0-9]{2})?)?$"`
	DissolutionDate string       `yaml:"dissolution_date,omitempty" json:"dissolution_date,omitempty" jsonschema:"pattern=^[0-9]{4}(-[0-9]{2}(-[0-9]{2})?)?$"`
	Memberships     []Membership `yaml:"memberships,omitempty"      json:"memberships,omitempty"`
	Sources         []Link       `yaml:"sources,omitempty"          json:"sources,omitempty"`
	Links           []Link       `yaml:"links,omitempty"            json:"links,omitempty"`
}

// Role is a legislative or executive post held by a person.
// District is required for chamber roles but not for executive ones;
// that rule lives in the validate package.
type Role struct {
	Type           string          `yaml:"type"                      json:"type"         jsonschema:"required,enum=upper,enum=lower,enum=legislature,enum=gov,enum=lt_gov"`
	District       string          `yaml:"district,omitempty"        json:"district,omitempty"`
	Jurisdiction   string          `yaml:"jurisdiction"              json:"jurisdiction" jsonschema:"required,minLength=1"`
	StartDate      string          `yaml:"start_date,omitempty"      json:"start_date,omitempty" jsonschema:"pattern=^[0-9]{4}(-[0-9]{2}(-[0-9]{2})?)?$"`
	EndDate        string          `yaml:"end_date,omitempty"        json:"end_date,omitempty"   jsonschema:"pattern=^[0-9]{4}(-[0-9]{2}(-[0-9]{2})?)?$"`
	ContactDetails []ContactDetail `yaml:"contact_details,omitempty" json:"contact_details,omitempty"`
}

// Membership ties a person to an organization. ID is optional because
// scrapers often only know the member's name; when present it must
// resolve to a person record in the same batch.
type Membership struct {
	ID        string `yaml:"id,omitempty"         json:"id,omitempty"`
	Name      string `yaml:"name"                 json:"name" jsonschema:"required,minLength=1"`
	Role      string `yaml:"role,omitempty"       json:"role,omitempty"`
	StartDate string `yaml:"start_date,omitempty" json:"start_date,omitempty" jsonschema:"pattern=^[0-9]{4}(-[0-9]{2}(-[0-9]{2})?)?$"`
	EndDate   string `yaml:"end_date,omitempty"   json:"end_date,omitempty"   jsonschema:"pattern=^[0-9]{4}(-[0-9]{2}(-[0-9]{2})?)?$"`
}

// PartySpan is one stretch of party affiliation.
type PartySpan struct {
	Name      string `yaml:"name"                 json:"name" jsonschema:"required,minLength=1"`
	StartDate string `yaml:"start_date,omitempty" json:"start_date,omitempty" jsonschema:"pattern=^[0-9]{4}(-[0-9]{2}(-[0-9]{2})?)?$"`
	EndDate   string `yaml:"end_date,omitempty"   json:"end_date,omitempty"   jsonschema:"pattern=^[0-9]{4}(-[0-9]{2}(-[0-9]{2})?)?$"`
}

// ContactDetail is one set of contact information, labeled by Note
// (e.g. "Capitol Office").
type ContactDetail struct {
	Note    string `yaml:"note"              json:"note" jsonschema:"required,minLength=1"`
	Address string `yaml:"address,omitempty" json:"address,omitempty"`
	Email   string `yaml:"email,omitempty"   json:"email,omitempty"`
	Voice   string `yaml:"voice,omitempty"   json:"voice,omitempty"`
	Fax     string `yaml:"fax,omitempty"     json:"fax,omitempty"`
}

// Link is a URL with an optional note. Used for both links and sources.
type Link struct {
	Note string `yaml:"note,omitempty" json:"note,omitempty"`
	URL  string `yaml:"url"            json:"url" jsonschema:"required,minLength=1"`
}

// OtherIdentifier records an identifier assigned by an external scheme.
type OtherIdentifier struct {
	Scheme     string `yaml:"scheme"               json:"scheme"     jsonschema:"required,minLength=1"`
	Identifier string `yaml:"identifier"           json:"identifier" jsonschema:"required,minLength=1"`
	StartDate  string `yaml:"start_date,omitempty" json:"start_date,omitempty" jsonschema:"pattern=^[0-9]{4}(-[0-9]{2}(-[0-9]{2})?)?$"`
	EndDate    string `yaml:"end_date,omitempty"   json:"end_date,omitempty"   jsonschema:"pattern=^[0-9]{4}(-[0-9]{2}(-[0-9]{2})?)?$"`
}

// OtherName records a former or alternate name.
type OtherName struct {
	Name      string `yaml:"name"                 json:"name" jsonschema:"required,minLength=1"`
	StartDate string `yaml:"start_date,omitempty" json:"start_date,omitempty" jsonschema:"pattern=^[0-9]{4}(-[0-9]{2}(-[0-9]{2})?)?$"`
	EndDate   string `yaml:"end_date,omitempty"   json:"end_date,omitempty"   jsonschema:"pattern=^[0-9]{4}(-[0-9]{2}(-[0-9]{2})?)?$"`
}

// Clone returns a copy of p with its own slices and maps, so normalization
// can rewrite the copy without touching the input. Extras is shared: it is
// an opaque bag that nothing in this module mutates.
func (p *Person) Clone() *Person {
	q := *p
	q.IDs = cloneMap(p.IDs)
	q.ContactDetails = cloneSlice(p.ContactDetails)
	q.Links = cloneSlice(p.Links)
	q.OtherIdentifiers = cloneSlice(p.OtherIdentifiers)
	q.OtherNames = cloneSlice(p.OtherNames)
	q.Sources = cloneSlice(p.Sources)
	q.Party = cloneSlice(p.Party)
	q.Roles = cloneSlice(p.Roles)
	for i := range q.Roles {
		q.Roles[i].ContactDetails = cloneSlice(p.Roles[i].ContactDetails)
	}
	return &q
}

// Clone returns a copy of o with its own slices.
func (o *Organization) Clone() *Organization {
	q := *o
	q.Memberships = cloneSlice(o.Memberships)
	q.Sources = cloneSlice(o.Sources)
	q.Links = cloneSlice(o.Links)
	return &q
}

func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s))
	copy(out, s)
	return out
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	if m == nil {
		return nil
	}
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// LoadPerson decodes a person record with strict unknown-field rejection.
// Shape problems (a scalar where a list belongs, unknown keys) come back as
// TypeMismatches rather than a hard error: yaml.v3 keeps decoding the rest
// of the document, so the partially decoded record is still returned for
// further validation.
func LoadPerson(r io.Reader) (*Person, []string, error) {
	var p Person
	mismatches, err := decodeStrict(r, &p)
	if err != nil {
		return nil, nil, err
	}
	return &p, mismatches, nil
}

// LoadPersonFile reads and decodes a person YAML file.
func LoadPersonFile(path string) (*Person, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open person record: %w", err)
	}
	defer f.Close()
	return LoadPerson(f)
}

// LoadOrganization decodes an organization record; same contract as LoadPerson.
func LoadOrganization(r io.Reader) (*Organization, []string, error) {
	var o Organization
	mismatches, err := decodeStrict(r, &o)
	if err != nil {
		return nil, nil, err
	}
	return &o, mismatches, nil
}

// LoadOrganizationFile reads and decodes an organization YAML file.
func LoadOrganizationFile(path string) (*Organization, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open organization record: %w", err)
	}
	defer f.Close()
	return LoadOrganization(f)
}

// decodeStrict decodes with KnownFields(true). A *yaml.TypeError is turned
// into the list of its per-field messages; any other decode error is fatal.
func decodeStrict(r io.Reader, out any) ([]string, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	err := dec.Decode(out)
	if err == nil {
		return nil, nil
	}
	var typeErr *yaml.TypeError
	if errors.As(err, &typeErr) {
		return typeErr.Errors, nil
	}
	return nil, fmt.Errorf("decode record: %w", err)
}

// DumpFile writes a record back as YAML with two-space indentation.
func DumpFile(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write record: %w", err)
	}
	defer f.Close()

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode record: %w", err)
	}
	return enc.Close()
}
