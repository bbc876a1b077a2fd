// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// LifecycleState is the two-state lifecycle of soft-deletable entities
// (Profile, WishContent, MediaContents, MediaSeries).
//
// The only legal transition is StateActive -> StateDeleted; a deleted record
// never returns to the active state.
type LifecycleState string

const (
	// StateActive marks a record visible to active-state queries.
	StateActive LifecycleState = "ACTIVE"
	// StateDeleted marks a soft-deleted record. Terminal.
	StateDeleted LifecycleState = "DELETED"
)

// StateFromDeleted converts the persisted is_deleted flag into a LifecycleState.
func StateFromDeleted(isDeleted bool) LifecycleState {
	if isDeleted {
		return StateDeleted
	}
	return StateActive
}

// IsDeleted reports whether the state is terminal.
func (s LifecycleState) IsDeleted() bool {
	return s == StateDeleted
}
