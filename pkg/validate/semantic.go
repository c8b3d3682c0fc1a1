package validate

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	sjsonschema "github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/civicdata/roster/pkg/schema"
)

// Semantic phase: the record is round-tripped through JSON and checked
// against the JSON Schema generated from the entity structs. Cheap
// structural problems (bad enum members, malformed dates, blank required
// strings) are caught here before the domain validators run.

var (
	personSchemaOnce sync.Once
	personSchema     *sjsonschema.Schema
	personSchemaErr  error

	orgSchemaOnce sync.Once
	orgSchema     *sjsonschema.Schema
	orgSchemaErr  error
)

func compiledPersonSchema() (*sjsonschema.Schema, error) {
	personSchemaOnce.Do(func() {
		personSchema, personSchemaErr = compileSchema("person-v1.json", schema.GeneratePersonJSONSchema)
	})
	return personSchema, personSchemaErr
}

func compiledOrganizationSchema() (*sjsonschema.Schema, error) {
	orgSchemaOnce.Do(func() {
		orgSchema, orgSchemaErr = compileSchema("organization-v1.json", schema.GenerateOrganizationJSONSchema)
	})
	return orgSchema, orgSchemaErr
}

func compileSchema(name string, generate func() ([]byte, error)) (*sjsonschema.Schema, error) {
	raw, err := generate()
	if err != nil {
		return nil, fmt.Errorf("generate schema: %w", err)
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal schema: %w", err)
	}
	c := sjsonschema.NewCompiler()
	if err := c.AddResource(name, doc); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}
	return c.Compile(name)
}

// ValidatePersonSchema runs the semantic phase on a person record.
func ValidatePersonSchema(p *schema.Person) []*Violation {
	sch, err := compiledPersonSchema()
	if err != nil {
		return []*Violation{errorf(CodeSchema, "", "person schema unavailable: %v", err)}
	}
	return validateAgainst(sch, p)
}

// ValidateOrganizationSchema runs the semantic phase on an organization.
func ValidateOrganizationSchema(org *schema.Organization) []*Violation {
	sch, err := compiledOrganizationSchema()
	if err != nil {
		return []*Violation{errorf(CodeSchema, "", "organization schema unavailable: %v", err)}
	}
	return validateAgainst(sch, org)
}

func validateAgainst(sch *sjsonschema.Schema, record any) []*Violation {
	data, err := json.Marshal(record)
	if err != nil {
		return []*Violation{errorf(CodeSchema, "", "marshal for schema validation: %v", err)}
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return []*Violation{errorf(CodeSchema, "", "unmarshal document: %v", err)}
	}

	err = sch.Validate(doc)
	if err == nil {
		return nil
	}
	ve, ok := err.(*sjsonschema.ValidationError)
	if !ok {
		return []*Violation{errorf(CodeSchema, "", "%v", err)}
	}
	var out []*Violation
	for _, cause := range flattenSchemaErrors(ve) {
		out = append(out, errorf(CodeSchema,
			strings.Join(cause.InstanceLocation, "."),
			"%v", cause.ErrorKind))
	}
	return out
}

// flattenSchemaErrors recursively collects all leaf validation errors.
func flattenSchemaErrors(ve *sjsonschema.ValidationError) []*sjsonschema.ValidationError {
	if len(ve.Causes) == 0 {
		return []*sjsonschema.ValidationError{ve}
	}
	var flat []*sjsonschema.ValidationError
	for _, cause := range ve.Causes {
		flat = append(flat, flattenSchemaErrors(cause)...)
	}
	return flat
}
