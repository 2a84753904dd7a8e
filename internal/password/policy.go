// Package password implements the registration password policy.
package password

import "unicode"

// Policy rule messages. These are part of the public API contract and are
// matched verbatim by clients; do not reword them.
const (
	MsgTooShort    = "Password must be at least 6 characters long"
	MsgNoUppercase = "Password must contain at least one uppercase letter"
	MsgNoNumber    = "Password must contain at least one number"
)

// PolicyError carries the message of the first violated rule.
type PolicyError struct {
	Message string
}

func (e *PolicyError) Error() string {
	return e.Message
}

// Validate checks a candidate password against the policy rules in fixed
// order and returns a PolicyError naming the first violated rule, or nil
// if all rules pass. Pure function, no side effects.
func Validate(candidate string) error {
	if len(candidate) < 6 {
		return &PolicyError{Message: MsgTooShort}
	}
	if !containsFunc(candidate, unicode.IsUpper) {
		return &PolicyError{Message: MsgNoUppercase}
	}
	if !containsFunc(candidate, unicode.IsDigit) {
		return &PolicyError{Message: MsgNoNumber}
	}
	return nil
}

func containsFunc(s string, f func(rune) bool) bool {
	for _, r := range s {
		if f(r) {
			return true
		}
	}
	return false
}
