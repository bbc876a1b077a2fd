// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-media-hub/models"
	"github.com/google/uuid"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestUserIDCtxKey(t *testing.T) {
	if UserIDCtxKey.String() != "userID" {
		t.Errorf("expected 'userID', got '%s'", UserIDCtxKey.String())
	}
}

func TestWithUser_RoundTrip(t *testing.T) {
	id := uuid.New()
	ctx := WithUser(context.Background(), id, models.RoleAdmin)

	userID, ok := GetUserIDFromContext(ctx)
	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if userID != id {
		t.Errorf("expected userID=%s, got %s", id, userID)
	}

	role, ok := GetRoleFromContext(ctx)
	if !ok || role != models.RoleAdmin {
		t.Errorf("expected ADMIN role, got %q (ok=%v)", role, ok)
	}
}

func TestGetUserIDFromContext_Missing(t *testing.T) {
	_, ok := GetUserIDFromContext(context.Background())
	if ok {
		t.Error("expected ok=false for missing value")
	}
}

func TestGetUserIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserIDCtxKey, "not-a-uuid")

	_, ok := GetUserIDFromContext(ctx)
	if ok {
		t.Error("expected ok=false for wrong type")
	}
}

func TestGetUserIDFromContext_NilUUID(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserIDCtxKey, uuid.Nil)

	_, ok := GetUserIDFromContext(ctx)
	if ok {
		t.Error("expected ok=false for uuid.Nil")
	}
}
