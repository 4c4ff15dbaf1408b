// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"

	"github.com/canonical/tenant-manager/internal/types"
)

type ServiceInterface interface {
	ValidateUser(ctx context.Context, email, password string) (*types.SanitizedUser, error)
}

type StorageInterface interface {
	GetUserByEmail(ctx context.Context, email string) (*types.User, error)
}

// PasswordHasherInterface hides the hashing scheme from callers that only
// need to produce or check a credential.
type PasswordHasherInterface interface {
	Hash(password string) (string, error)
	Compare(hash, password string) bool
}
