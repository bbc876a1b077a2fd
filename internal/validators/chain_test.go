// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-media-hub/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// countingRule records how many times it ran and returns err.
type countingRule struct {
	calls int
	err   error
}

func (r *countingRule) Validate(context.Context) error {
	r.calls++
	return r.err
}

var errStub = errors.New("stub failure")

// ---------------------------------------------------------------------------
// Chain
// ---------------------------------------------------------------------------

func TestChain_AllPass(t *testing.T) {
	first, second, third := &countingRule{}, &countingRule{}, &countingRule{}

	err := NewChain(first).LinkWith(second).LinkWith(third).Validate(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 1, second.calls)
	assert.Equal(t, 1, third.calls)
}

func TestChain_HeadFailureShortCircuits(t *testing.T) {
	head := &countingRule{err: errStub}
	next := &countingRule{}
	last := &countingRule{}

	err := NewChain(head).LinkWith(next).LinkWith(last).Validate(context.Background())

	require.ErrorIs(t, err, errStub)
	assert.Equal(t, 1, head.calls)
	assert.Zero(t, next.calls, "rules after a failure must not run")
	assert.Zero(t, last.calls, "rules after a failure must not run")
}

func TestChain_MiddleFailureWins(t *testing.T) {
	first := &countingRule{}
	middle := &countingRule{err: errStub}
	last := &countingRule{err: errors.New("never reported")}

	err := NewChain(first).LinkWith(middle).LinkWith(last).Validate(context.Background())

	require.ErrorIs(t, err, errStub)
	assert.Equal(t, 1, first.calls)
	assert.Zero(t, last.calls)
}

func TestChain_NilLinkIgnored(t *testing.T) {
	chain := NewChain(&countingRule{}).LinkWith(nil)
	assert.Equal(t, 1, chain.Len())
	assert.NoError(t, chain.Validate(context.Background()))
}

func TestChain_Nested(t *testing.T) {
	inner := NewChain(&countingRule{}).LinkWith(&countingRule{err: errStub})
	tail := &countingRule{}

	err := NewChain(inner).LinkWith(tail).Validate(context.Background())

	require.ErrorIs(t, err, errStub)
	assert.Zero(t, tail.calls)
}

// ---------------------------------------------------------------------------
// Ordering used by profile mutations: IsDeleted -> IDEqual
// ---------------------------------------------------------------------------

func TestDeletedCheckTakesPrecedenceOverOwnership(t *testing.T) {
	caller, owner := uuid.New(), uuid.New()

	tests := []struct {
		name    string
		state   models.LifecycleState
		caller  uuid.UUID
		wantErr error
	}{
		{"deleted and owned", models.StateDeleted, owner, ErrResourceDeleted},
		{"deleted and not owned", models.StateDeleted, caller, ErrResourceDeleted},
		{"active and not owned", models.StateActive, caller, ErrOwnershipMismatch},
		{"active and owned", models.StateActive, owner, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewChain(IsDeleted(tt.state, models.ProfileDomain)).
				LinkWith(IDEqual(tt.caller, owner)).
				Validate(context.Background())

			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}
