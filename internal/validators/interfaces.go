// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides abstractions for input validation and
// enforcement of business rules across the application.
//
// Core concepts:
//   - Validator: field-level validation of inbound request payloads.
//     Supports optional field-level scoping for targeted validation.
//   - Rule: a single business-rule check over values captured at construction.
//   - Chain: an ordered sequence of rules evaluated until the first failure.
//
// Usage patterns:
//  1. Load the entities an operation touches.
//  2. Build a Chain from the rules that guard the operation.
//  3. Call Validate once and mutate state only when it returns nil.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}

// Rule is a single business-rule check.
//
// Validate either returns nil or a *RuleViolation that identifies the rule,
// the domain and the offending values. Rules carry no state beyond the
// values captured at construction and are discarded after use.
type Rule interface {
	Validate(ctx context.Context) error
}

// RuleFunc adapts an ordinary function to the Rule interface.
type RuleFunc func(ctx context.Context) error

// Validate calls f(ctx).
func (f RuleFunc) Validate(ctx context.Context) error {
	return f(ctx)
}
