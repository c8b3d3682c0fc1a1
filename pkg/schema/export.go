package schema

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// GeneratePersonJSONSchema produces a JSON Schema Draft 2020-12 document
// from the Go Person struct using invopop/jsonschema.
func GeneratePersonJSONSchema() ([]byte, error) {
	r := new(jsonschema.Reflector)
	r.DoNotReference = false

	s := r.Reflect(&Person{})
	s.ID = "https://github.com/civicdata/roster/schemas/person-v1.json"
	s.Title = "Person"
	s.Description = "Schema for legislative person YAML records (Draft 2020-12)"

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal person schema: %w", err)
	}
	return data, nil
}

// GenerateOrganizationJSONSchema produces a JSON Schema Draft 2020-12
// document from the Go Organization struct.
func GenerateOrganizationJSONSchema() ([]byte, error) {
	r := new(jsonschema.Reflector)
	r.DoNotReference = false

	s := r.Reflect(&Organization{})
	s.ID = "https://github.com/civicdata/roster/schemas/organization-v1.json"
	s.Title = "Organization"
	s.Description = "Schema for committee/organization YAML records (Draft 2020-12)"

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal organization schema: %w", err)
	}
	return data, nil
}
