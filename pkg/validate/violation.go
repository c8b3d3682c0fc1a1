// Package validate implements the schema and cross-reference validation
// engine for person and organization records. Per-record validation is a
// pure function over one record tree; reference resolution needs the whole
// batch and runs separately.
package validate

import "fmt"

// Code names the reason a check failed.
type Code string

// Reason codes attached to violations.
const (
	CodeEmpty         Code = "EMPTY"
	CodeNotUUID       Code = "NOT_UUID"
	CodeBadDateFormat Code = "BAD_DATE_FORMAT"
	CodeNotURL        Code = "NOT_URL"
	CodeNotInEnum     Code = "NOT_IN_ENUM"
	CodeBadString     Code = "BAD_STRING"
	CodeBadPhone      Code = "BAD_PHONE"
	CodeBadSocial     Code = "BAD_SOCIAL"
	CodeTypeMismatch  Code = "TYPE_MISMATCH"
	CodeBadDateRange  Code = "BAD_DATE_RANGE"

	CodeDuplicateID    Code = "DUPLICATE_ID"
	CodeDanglingMember Code = "DANGLING_MEMBER"
	CodeDanglingParent Code = "DANGLING_PARENT"
	CodeParentCycle    Code = "PARENT_CYCLE"
	CodeBadParent      Code = "BAD_PARENT"
	CodeNameMismatch   Code = "NAME_MISMATCH"

	CodeNoActiveRole    Code = "NO_ACTIVE_ROLE"
	CodeExtraActiveRole Code = "EXTRA_ACTIVE_ROLE"
	CodeMissingSeat     Code = "MISSING_SEAT"
	CodeUnexpectedSeat  Code = "UNEXPECTED_SEAT"
	CodeHTTPURL         Code = "HTTP_URL"
	CodeSchema          Code = "SCHEMA_VIOLATION"
	CodeCustom          Code = "CUSTOM_CHECK"
)

// Severity of a violation. Errors block acceptance; warnings do not.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Violation is one validation failure or warning with location context.
// Path uses dotted/indexed notation (e.g. "roles[2].district") so the
// offending node can be pinpointed.
type Violation struct {
	EntityID string   `json:"entity_id,omitempty"`
	Path     string   `json:"path"`
	Code     Code     `json:"code"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

func (v *Violation) Error() string {
	if v.Path != "" {
		return fmt.Sprintf("[%s] %s at %s", v.Code, v.Message, v.Path)
	}
	return fmt.Sprintf("[%s] %s", v.Code, v.Message)
}

func errorf(code Code, path, msg string, args ...any) *Violation {
	return &Violation{
		Path:     path,
		Code:     code,
		Message:  fmt.Sprintf(msg, args...),
		Severity: SeverityError,
	}
}

func warningf(code Code, path, msg string, args ...any) *Violation {
	return &Violation{
		Path:     path,
		Code:     code,
		Message:  fmt.Sprintf(msg, args...),
		Severity: SeverityWarning,
	}
}

// Result collects the ordered violations for one record (or for the batch
// resolution pass). Validation never short-circuits: the full set for a
// record is computed in one pass.
type Result struct {
	EntityID   string       `json:"entity_id,omitempty"`
	Violations []*Violation `json:"violations,omitempty"`
}

// Add appends violations, stamping the result's entity id on any that
// lack one.
func (r *Result) Add(vs ...*Violation) {
	for _, v := range vs {
		if v.EntityID == "" {
			v.EntityID = r.EntityID
		}
		r.Violations = append(r.Violations, v)
	}
}

// Errors returns the blocking violations.
func (r *Result) Errors() []*Violation {
	return r.filter(SeverityError)
}

// Warnings returns the non-blocking violations.
func (r *Result) Warnings() []*Violation {
	return r.filter(SeverityWarning)
}

func (r *Result) filter(sev Severity) []*Violation {
	var out []*Violation
	for _, v := range r.Violations {
		if v.Severity == sev {
			out = append(out, v)
		}
	}
	return out
}

// HasErrors reports whether any blocking violation is present.
func (r *Result) HasErrors() bool {
	for _, v := range r.Violations {
		if v.Severity == SeverityError {
			return true
		}
	}
	return false
}
