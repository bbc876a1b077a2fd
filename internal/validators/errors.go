package validators

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrInvalidRequest  = errors.New("invalid request")

	ErrResourceDeleted      = errors.New("resource is deleted")
	ErrOwnershipMismatch    = errors.New("ownership mismatch")
	ErrProfileLimitExceeded = errors.New("profile limit exceeded")
	ErrInvalidCredential    = errors.New("invalid credential")
	ErrPasswordFormat       = errors.New("password format violation")
)

// Rule names reported in RuleViolation.Rule.
const (
	RuleIsDeleted      = "IS_DELETED"
	RuleIDEqual        = "ID_EQUAL"
	RuleProfileNumber  = "PROFILE_NUMBER"
	RulePassword       = "PASSWORD"
	RulePasswordFormat = "PASSWORD_FORMAT"
)

// RuleViolation is returned by a failed Rule.
// It unwraps to one of the Err* sentinels of this package.
type RuleViolation struct {
	Rule   string
	Domain string
	Values []any

	err error
}

func newRuleViolation(err error, rule, domain string, values ...any) *RuleViolation {
	return &RuleViolation{Rule: rule, Domain: domain, Values: values, err: err}
}

func (v *RuleViolation) Error() string {
	if len(v.Values) == 0 {
		return fmt.Sprintf("%s: rule %s failed on %s", v.err, v.Rule, v.Domain)
	}
	return fmt.Sprintf("%s: rule %s failed on %s %v", v.err, v.Rule, v.Domain, v.Values)
}

// Message describes the violation without Values, which may carry ids of
// other users. It is what clients see.
func (v *RuleViolation) Message() string {
	return fmt.Sprintf("%s: rule %s failed on %s", v.err, v.Rule, v.Domain)
}

func (v *RuleViolation) Unwrap() error {
	return v.err
}
