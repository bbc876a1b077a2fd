package validators

import (
	"context"
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/MKhiriev/go-media-hub/internal/utils"
	"github.com/MKhiriev/go-media-hub/models"
	"github.com/google/uuid"
)

// DefaultMaxProfiles is the number of profiles a user may own
// when no limit is configured.
const DefaultMaxProfiles = 4

// IsDeleted fails with ErrResourceDeleted when state is terminal.
// It guards every mutation of a soft-deletable entity.
func IsDeleted(state models.LifecycleState, domain string) Rule {
	return RuleFunc(func(context.Context) error {
		if state.IsDeleted() {
			return newRuleViolation(ErrResourceDeleted, RuleIsDeleted, domain, state)
		}
		return nil
	})
}

// IDEqual fails with ErrOwnershipMismatch when expected and actual differ.
// expected is the authenticated caller, actual is the owner of the target.
func IDEqual(expected, actual uuid.UUID) Rule {
	return RuleFunc(func(context.Context) error {
		if expected != actual {
			return newRuleViolation(ErrOwnershipMismatch, RuleIDEqual, models.ProfileDomain, expected, actual)
		}
		return nil
	})
}

// ProfileNumber fails with ErrProfileLimitExceeded when currentCount has
// reached maxProfiles. A non-positive maxProfiles means DefaultMaxProfiles.
func ProfileNumber(currentCount int, ownerID uuid.UUID, maxProfiles int) Rule {
	if maxProfiles <= 0 {
		maxProfiles = DefaultMaxProfiles
	}
	return RuleFunc(func(context.Context) error {
		if currentCount >= maxProfiles {
			return newRuleViolation(ErrProfileLimitExceeded, RuleProfileNumber, models.ProfileDomain, ownerID, currentCount)
		}
		return nil
	})
}

// Password fails with ErrInvalidCredential when candidate does not match
// storedHash under the same bcrypt procedure used at sign-up.
// The candidate is never included in the violation.
func Password(candidate, storedHash string) Rule {
	return RuleFunc(func(context.Context) error {
		ok, err := utils.ComparePassword(storedHash, candidate)
		if err != nil {
			return fmt.Errorf("error comparing password hash: %w", err)
		}
		if !ok {
			return newRuleViolation(ErrInvalidCredential, RulePassword, "USER")
		}
		return nil
	})
}

// MaxPasswordBytes is the longest input bcrypt accepts. A policy never
// admits a password longer than this, whatever MaxLength says.
const MaxPasswordBytes = 72

// PasswordPolicy is the format a new password must satisfy.
type PasswordPolicy struct {
	MinLength      int
	MaxLength      int
	RequireLetter  bool
	RequireDigit   bool
	RequireSpecial bool
}

// DefaultPasswordPolicy requires 8 to 20 characters with at least one
// letter, one digit and one special character.
var DefaultPasswordPolicy = PasswordPolicy{
	MinLength:      8,
	MaxLength:      20,
	RequireLetter:  true,
	RequireDigit:   true,
	RequireSpecial: true,
}

// PasswordFormat fails with ErrPasswordFormat when candidate does not
// satisfy policy. Used only when a new password is being set.
func PasswordFormat(candidate string, policy PasswordPolicy) Rule {
	return RuleFunc(func(context.Context) error {
		if reason := policy.check(candidate); reason != "" {
			return newRuleViolation(ErrPasswordFormat, RulePasswordFormat, "USER", reason)
		}
		return nil
	})
}

func (p PasswordPolicy) check(candidate string) string {
	length := utf8.RuneCountInString(candidate)
	if p.MinLength > 0 && length < p.MinLength {
		return fmt.Sprintf("shorter than %d characters", p.MinLength)
	}
	if p.MaxLength > 0 && length > p.MaxLength {
		return fmt.Sprintf("longer than %d characters", p.MaxLength)
	}
	if len(candidate) > MaxPasswordBytes {
		return fmt.Sprintf("longer than %d bytes", MaxPasswordBytes)
	}

	var hasLetter, hasDigit, hasSpecial bool
	for _, r := range candidate {
		switch {
		case unicode.IsSpace(r):
			return "contains whitespace"
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}

	switch {
	case p.RequireLetter && !hasLetter:
		return "no letter"
	case p.RequireDigit && !hasDigit:
		return "no digit"
	case p.RequireSpecial && !hasSpecial:
		return "no special character"
	}
	return ""
}
