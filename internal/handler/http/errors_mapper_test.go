// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-media-hub/internal/adapter"
	"github.com/MKhiriev/go-media-hub/internal/service"
	"github.com/MKhiriev/go-media-hub/internal/store"
	"github.com/MKhiriev/go-media-hub/internal/utils"
	"github.com/MKhiriev/go-media-hub/internal/validators"
	"github.com/MKhiriev/go-media-hub/models"
)

func TestErrorResponseFrom(t *testing.T) {
	profile := models.Profile{ID: utils.NewID(), UserID: utils.NewID(), State: models.StateDeleted}
	ctx := context.Background()

	deleted := validators.IsDeleted(profile.State, models.ProfileDomain).Validate(ctx)
	notOwner := validators.IDEqual(utils.NewID(), profile.UserID).Validate(ctx)
	limit := validators.ProfileNumber(4, profile.UserID, 4).Validate(ctx)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"user not found", fmt.Errorf("%w: id", service.ErrUserNotFound), http.StatusNotFound, codeRowDoesNotExist},
		{"wish not found", service.ErrWishNotFound, http.StatusNotFound, codeRowDoesNotExist},
		{"duplicate email", service.ErrDuplicateEmail, http.StatusConflict, codeRowAlreadyExist},
		{"like exists", service.ErrLikeAlreadyExists, http.StatusConflict, codeRowAlreadyExist},
		{"not accessible", service.ErrNotAccessible, http.StatusBadRequest, codeNotAccessible},
		{"wrong email", service.ErrInvalidSignIn, http.StatusUnauthorized, codeInvalidSignIn},
		{"deleted resource", deleted, http.StatusBadRequest, validators.RuleIsDeleted},
		{"ownership mismatch", notOwner, http.StatusForbidden, validators.RuleIDEqual},
		{"profile limit", limit, http.StatusBadRequest, validators.RuleProfileNumber},
		{"invalid request", validators.ErrInvalidRequest, http.StatusBadRequest, codeInvalidRequest},
		{"store unavailable", fmt.Errorf("find: %w", store.ErrUnavailable), http.StatusServiceUnavailable, codeUnavailable},
		{"mail delivery", adapter.ErrDelivery, http.StatusBadGateway, codeMailDelivery},
		{"mail gateway error reply", fmt.Errorf("%w: %w: down", adapter.ErrDelivery, adapter.ErrInternalServerError), http.StatusBadGateway, codeMailDelivery},
		{"checked row vanished", service.ErrCheckedRowVanished, http.StatusInternalServerError, codeInternalServer},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, codeInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := errorResponseFrom(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCode, body.Code)
		})
	}
}

func TestErrorResponseFrom_HidesInternalMessage(t *testing.T) {
	_, body := errorResponseFrom(errors.New("pq: password authentication failed"))
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), body.Message)
}

func TestErrorResponseFrom_OwnershipHidesIDs(t *testing.T) {
	caller, owner := utils.NewID(), utils.NewID()
	err := validators.IDEqual(caller, owner).Validate(context.Background())

	status, body := errorResponseFrom(err)

	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, validators.RuleIDEqual, body.Code)
	assert.NotContains(t, body.Message, caller.String())
	assert.NotContains(t, body.Message, owner.String())
	assert.Contains(t, err.Error(), owner.String())
}
