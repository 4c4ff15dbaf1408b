// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package user

import (
	"context"
	"time"

	"github.com/canonical/tenant-manager/internal/types"
)

type ServiceInterface interface {
	CreateUser(ctx context.Context, input *CreateUserRequest) (*types.SanitizedUser, error)
	GetUser(ctx context.Context, id string) (*types.SanitizedUser, error)
	ListUsers(ctx context.Context, page, size int64) ([]*types.SanitizedUser, error)
	UpdateUser(ctx context.Context, id string, input *UpdateUserRequest) (*types.SanitizedUser, error)
	DeleteUser(ctx context.Context, id string) error
	SendVerificationEmail(ctx context.Context, userID string) error
	ConfirmPrimaryEmail(ctx context.Context, token string) (*types.SanitizedUser, error)
}

type StorageInterface interface {
	CreateUser(ctx context.Context, u *types.User) (*types.User, error)
	GetUserByID(ctx context.Context, id string) (*types.User, error)
	ListUsers(ctx context.Context, page, size int64) ([]*types.User, error)
	UpdateUser(ctx context.Context, user *types.User, paths []string) error
	DeleteUser(ctx context.Context, id string) error
	SetVerificationToken(ctx context.Context, userID, token string, expiresAt time.Time) error
	GetUserByVerificationToken(ctx context.Context, token string) (*types.User, error)
	MarkPrimaryEmailVerified(ctx context.Context, userID string) error
}

// PasswordHasherInterface is satisfied by the authentication package hasher.
type PasswordHasherInterface interface {
	Hash(password string) (string, error)
}
