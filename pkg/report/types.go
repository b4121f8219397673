// Package report defines the structures for contact validation and store audit reports.
package report

import "strings"

// Severity levels used by ValidationIssue.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// ValidationResult contains every issue found while validating a contact or a store file.
type ValidationResult struct {
	Success bool              `json:"success" yaml:"success"`
	Issues  []ValidationIssue `json:"issues" yaml:"issues"`
}

// ValidationIssue represents a specific problem found during validation.
type ValidationIssue struct {
	Code     string `json:"code" yaml:"code"`
	Message  string `json:"message" yaml:"message"`
	Severity string `json:"severity" yaml:"severity"` // "error" or "warning"
	Field    string `json:"field,omitempty" yaml:"field,omitempty"`
	// Record is the id (or position) of the stored contact the issue belongs to.
	Record string `json:"record,omitempty" yaml:"record,omitempty"`
}

// NewResult returns a passing result with no issues.
func NewResult() *ValidationResult {
	return &ValidationResult{Success: true, Issues: []ValidationIssue{}}
}

// AddError adds an error issue to the result.
func (r *ValidationResult) AddError(code, message, field string) {
	r.Issues = append(r.Issues, ValidationIssue{
		Code:     code,
		Message:  message,
		Severity: SeverityError,
		Field:    field,
	})
	r.Success = false
}

// AddWarning adds a warning issue to the result.
func (r *ValidationResult) AddWarning(code, message, field string) {
	r.Issues = append(r.Issues, ValidationIssue{
		Code:     code,
		Message:  message,
		Severity: SeverityWarning,
		Field:    field,
	})
}

// Merge appends the issues of other to r, tagging each with record.
func (r *ValidationResult) Merge(record string, other *ValidationResult) {
	if other == nil {
		return
	}
	for _, issue := range other.Issues {
		issue.Record = record
		r.Issues = append(r.Issues, issue)
	}
	if !other.Success {
		r.Success = false
	}
}

// Errors returns only the issues with error severity.
func (r *ValidationResult) Errors() []ValidationIssue {
	var out []ValidationIssue
	for _, issue := range r.Issues {
		if issue.Severity == SeverityError {
			out = append(out, issue)
		}
	}
	return out
}

// Fields returns the distinct field names carrying an issue, in order of first appearance.
func (r *ValidationResult) Fields() []string {
	seen := make(map[string]bool, len(r.Issues))
	var out []string
	for _, issue := range r.Issues {
		if issue.Field == "" || seen[issue.Field] {
			continue
		}
		seen[issue.Field] = true
		out = append(out, issue.Field)
	}
	return out
}

// String summarizes the issues on one line, e.g. "EMAIL_INVALID(email); PHONE_INVALID(phone)".
func (r *ValidationResult) String() string {
	if len(r.Issues) == 0 {
		return "ok"
	}
	parts := make([]string, 0, len(r.Issues))
	for _, issue := range r.Issues {
		part := issue.Code
		if issue.Field != "" {
			part += "(" + issue.Field + ")"
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, "; ")
}
