// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

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

func TestGetUserIDFromContext_Success(t *testing.T) {
	id := uuid.New()
	ctx := context.WithValue(context.Background(), UserIDCtxKey, id)

	userID, ok := GetUserIDFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if userID != id {
		t.Errorf("expected userID=%s, got %s", id, userID)
	}
}

func TestGetUserIDFromContext_Missing(t *testing.T) {
	userID, ok := GetUserIDFromContext(context.Background())

	if ok {
		t.Fatal("expected ok=false, got true")
	}
	if userID != uuid.Nil {
		t.Errorf("expected nil uuid, got %s", userID)
	}
}

func TestGetUserIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserIDCtxKey, "not-a-uuid")

	if _, ok := GetUserIDFromContext(ctx); ok {
		t.Fatal("expected ok=false for wrong type, got true")
	}
}

func TestGetUserIDFromContext_DifferentKey(t *testing.T) {
	otherKey := contextKey("otherKey")
	ctx := context.WithValue(context.Background(), otherKey, uuid.New())

	if _, ok := GetUserIDFromContext(ctx); ok {
		t.Fatal("expected ok=false for different key, got true")
	}
}

func TestWithUser(t *testing.T) {
	id := uuid.New()
	ctx := WithUser(context.Background(), id, "Ann")

	gotID, ok := GetUserIDFromContext(ctx)
	if !ok || gotID != id {
		t.Errorf("expected userID=%s, got %s (ok=%v)", id, gotID, ok)
	}

	name, ok := GetUserNameFromContext(ctx)
	if !ok || name != "Ann" {
		t.Errorf("expected name 'Ann', got '%s' (ok=%v)", name, ok)
	}
}
