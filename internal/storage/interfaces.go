// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"time"

	"github.com/canonical/tenant-manager/internal/types"
)

type TenantStorageInterface interface {
	CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error)
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
	GetTenantByUniqueName(ctx context.Context, uniqueName string) (*types.Tenant, error)
	ListTenants(ctx context.Context, page, size int64, active *bool) ([]*types.Tenant, error)
	UpdateTenant(ctx context.Context, tenant *types.Tenant, paths []string) error
	DeleteTenant(ctx context.Context, id string) error
	SetTenantPrimaryContact(ctx context.Context, tenantID string, userID *string) error
	SetTenantCustomTheme(ctx context.Context, tenantID string, themeID *string) error
	SetTenantConnectionResource(ctx context.Context, tenantID string, resourceID *string) error
	SetTenantLogo(ctx context.Context, tenantID, fileName, mimeType string) error
	ListActiveTenantsByAccountOfficer(ctx context.Context, userID string) ([]*types.Tenant, error)
}

type UserStorageInterface interface {
	CreateUser(ctx context.Context, u *types.User) (*types.User, error)
	GetUserByID(ctx context.Context, id string) (*types.User, error)
	GetUserByEmail(ctx context.Context, email string) (*types.User, error)
	ListUsers(ctx context.Context, page, size int64) ([]*types.User, error)
	UpdateUser(ctx context.Context, user *types.User, paths []string) error
	DeleteUser(ctx context.Context, id string) error
	SetVerificationToken(ctx context.Context, userID, token string, expiresAt time.Time) error
	GetUserByVerificationToken(ctx context.Context, token string) (*types.User, error)
	MarkPrimaryEmailVerified(ctx context.Context, userID string) error
}

type RelationStorageInterface interface {
	AddTeamMember(ctx context.Context, tenantID, userID string, roles types.RoleList) (string, error)
	UpdateTeamMemberRoles(ctx context.Context, tenantID, userID string, roles types.RoleList) error
	RemoveTeamMember(ctx context.Context, tenantID, userID string) error
	ListTeamMembersByTenantID(ctx context.Context, tenantID string) ([]*types.TenantTeam, error)
	AddAccountOfficer(ctx context.Context, tenantID, userID string, roles types.RoleList) (string, error)
	UpdateAccountOfficerRoles(ctx context.Context, tenantID, userID string, roles types.RoleList) error
	RemoveAccountOfficer(ctx context.Context, tenantID, userID string) error
	ListAccountOfficersByTenantID(ctx context.Context, tenantID string) ([]*types.AccountOfficerDetail, error)
}

type ThemeStorageInterface interface {
	CreateTheme(ctx context.Context, t *types.Theme) (*types.Theme, error)
	GetThemeByID(ctx context.Context, id string) (*types.Theme, error)
	DeleteTheme(ctx context.Context, id string) error
	AddThemeToTenant(ctx context.Context, tenantID, themeID string) error
	RemoveThemeFromTenant(ctx context.Context, tenantID, themeID string) error
	ListThemesByTenantID(ctx context.Context, tenantID string) ([]*types.Theme, error)
	CreateCustomTheme(ctx context.Context, t *types.CustomTheme) (*types.CustomTheme, error)
	GetCustomThemeByID(ctx context.Context, id string) (*types.CustomTheme, error)
	UpdateCustomTheme(ctx context.Context, t *types.CustomTheme, paths []string) error
	DeleteCustomTheme(ctx context.Context, id string) error
}

type BillingStorageInterface interface {
	CreateBilling(ctx context.Context, b *types.Billing) (*types.Billing, error)
	GetBillingByID(ctx context.Context, id string) (*types.Billing, error)
	ListBillingsByTenantID(ctx context.Context, tenantID string) ([]*types.Billing, error)
	SetBillingTenant(ctx context.Context, billingID string, tenantID *string) error
}

type ConnectionResourceStorageInterface interface {
	CreateConnectionResource(ctx context.Context, r *types.ConnectionResource) (*types.ConnectionResource, error)
	GetConnectionResourceByID(ctx context.Context, id string) (*types.ConnectionResource, error)
	ListConnectionResources(ctx context.Context, page, size int64) ([]*types.ConnectionResource, error)
	UpdateConnectionResource(ctx context.Context, r *types.ConnectionResource, paths []string) error
	DeleteConnectionResource(ctx context.Context, id string) error
}

// StorageInterface is the full persistence surface, implemented by Storage.
// Services depend on the narrower per-entity interfaces above.
type StorageInterface interface {
	TenantStorageInterface
	UserStorageInterface
	RelationStorageInterface
	ThemeStorageInterface
	BillingStorageInterface
	ConnectionResourceStorageInterface
}
