package validate

import (
	"github.com/expr-lang/expr"

	"github.com/civicdata/roster/pkg/schema"
)

// CustomCheck is a user-defined lint rule from settings.yml. The
// expression is evaluated with expr-lang against the record and must be
// true for the record to pass.
//
// Example:
//
//	custom_checks:
//	  - name: image-required
//	    applies_to: person
//	    expr: person.Image != ""
//	    message: people should carry a portrait image
//	    severity: warning
type CustomCheck struct {
	Name      string `yaml:"name"`
	AppliesTo string `yaml:"applies_to"` // person or organization
	Expr      string `yaml:"expr"`
	Message   string `yaml:"message,omitempty"`
	Severity  string `yaml:"severity,omitempty"` // default warning
}

const (
	AppliesToPerson       = "person"
	AppliesToOrganization = "organization"
)

func (c *CustomCheck) severity() Severity {
	if c.Severity == string(SeverityError) {
		return SeverityError
	}
	return SeverityWarning
}

func (c *CustomCheck) message() string {
	if c.Message != "" {
		return c.Message
	}
	return "custom check " + c.Name + " failed"
}

// RunPersonChecks evaluates the person-scoped custom checks against one
// record. A check that fails to compile or run is itself reported as an
// error so typos in settings.yml don't pass silently.
func RunPersonChecks(checks []CustomCheck, p *schema.Person) []*Violation {
	return runChecks(checks, AppliesToPerson, p.ID, map[string]any{"person": p})
}

// RunOrganizationChecks evaluates the organization-scoped custom checks.
func RunOrganizationChecks(checks []CustomCheck, org *schema.Organization) []*Violation {
	return runChecks(checks, AppliesToOrganization, org.ID, map[string]any{"organization": org})
}

func runChecks(checks []CustomCheck, appliesTo, entityID string, env map[string]any) []*Violation {
	var out []*Violation
	for i := range checks {
		c := &checks[i]
		if c.AppliesTo != appliesTo {
			continue
		}
		program, err := expr.Compile(c.Expr, expr.Env(env), expr.AsBool())
		if err != nil {
			out = append(out, &Violation{
				EntityID: entityID,
				Code:     CodeCustom,
				Message:  "compile check " + c.Name + ": " + err.Error(),
				Severity: SeverityError,
			})
			continue
		}
		result, err := expr.Run(program, env)
		if err != nil {
			out = append(out, &Violation{
				EntityID: entityID,
				Code:     CodeCustom,
				Message:  "run check " + c.Name + ": " + err.Error(),
				Severity: SeverityError,
			})
			continue
		}
		if ok, _ := result.(bool); !ok {
			out = append(out, &Violation{
				EntityID: entityID,
				Code:     CodeCustom,
				Message:  c.message(),
				Severity: c.severity(),
			})
		}
	}
	return out
}
