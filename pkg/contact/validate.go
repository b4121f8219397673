package contact

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/contactbook/contactbook/pkg/report"
)

// Issue codes reported by Check.
const (
	CodeFieldRequired = "FIELD_REQUIRED"
	CodeEmailInvalid  = "EMAIL_INVALID"
	CodePhoneInvalid  = "PHONE_INVALID"
)

// whitespace is the body of a character class for ASCII whitespace, vertical
// tab, the Unicode space separators, line/paragraph separators and BOM.
// RE2's \s alone covers only [\t\n\f\r ].
const whitespace = `\s\v\x{00A0}\x{1680}\x{2000}-\x{200A}\x{2028}\x{2029}\x{202F}\x{205F}\x{3000}\x{FEFF}`

var (
	// local part (dot-separated atoms or a quoted string) @ bracketed IPv4 or dotted host name
	emailPattern = regexp.MustCompile(`^(([^<>()\[\]\\.,;:` + whitespace + `@"]+(\.[^<>()\[\]\\.,;:` + whitespace + `@"]+)*)|(".+"))@((\[[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\])|(([a-zA-Z\-0-9]+\.)+[a-zA-Z]{2,}))$`)

	// (XXX) XXX-XXXX
	phoneUSPattern = regexp.MustCompile(`^\(\d{3}\)[` + whitespace + `]?\d{3}-\d{4}$`)
	// XXX-XX-XX
	phoneShortPattern = regexp.MustCompile(`^\d{3}-\d{2}-\d{2}$`)
)

// isWhitespace reports whether r belongs to the whitespace class.
func isWhitespace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ',
		'\u00A0', '\u1680', '\u2028', '\u2029', '\u202F', '\u205F', '\u3000', '\uFEFF':
		return true
	}
	return r >= '\u2000' && r <= '\u200A'
}

// ValidateEmail reports whether s looks like local@domain. Matching is case-insensitive.
func ValidateEmail(s string) bool {
	return emailPattern.MatchString(strings.ToLower(s))
}

// ValidatePhoneInput reports whether s, once trimmed, is "(XXX) XXX-XXXX" or "XXX-XX-XX".
func ValidatePhoneInput(s string) bool {
	s = strings.TrimFunc(s, isWhitespace)
	return phoneUSPattern.MatchString(s) || phoneShortPattern.MatchString(s)
}

// Check validates every field of c and collects all issues.
// Format checks are skipped for empty fields, which only report FIELD_REQUIRED.
func Check(c NewContact) *report.ValidationResult {
	res := report.NewResult()

	for _, f := range []struct{ name, value string }{
		{"name", c.Name},
		{"email", c.Email},
		{"phone", c.Phone},
	} {
		if f.value == "" {
			res.AddError(CodeFieldRequired, f.name+" is required", f.name)
		}
	}

	if c.Email != "" && !ValidateEmail(c.Email) {
		res.AddError(CodeEmailInvalid, fmt.Sprintf("email %q is not a valid address", c.Email), "email")
	}
	if c.Phone != "" && !ValidatePhoneInput(c.Phone) {
		res.AddError(CodePhoneInvalid, fmt.Sprintf("phone %q must be (XXX) XXX-XXXX or XXX-XX-XX", c.Phone), "phone")
	}

	return res
}
