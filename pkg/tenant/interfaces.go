// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"
	"io"

	"github.com/canonical/tenant-manager/internal/types"
)

type ServiceInterface interface {
	CreateTenant(ctx context.Context, req *CreateTenantRequest) (*types.Tenant, error)
	GetTenant(ctx context.Context, id string) (*types.Tenant, error)
	GetTenantByUniqueName(ctx context.Context, uniqueName string) (*types.Tenant, error)
	ListTenants(ctx context.Context, page, size int64, active *bool) ([]*types.Tenant, error)
	UpdateTenant(ctx context.Context, id string, req *UpdateTenantRequest) (*types.Tenant, error)
	DeleteTenant(ctx context.Context, id string) error

	LinkUser(ctx context.Context, tenantID string, kind types.RelationKind, req *LinkUserRequest) (*types.SanitizedUser, error)
	UnlinkUser(ctx context.Context, tenantID string, kind types.RelationKind, userID string) error
	UpdateRelationRoles(ctx context.Context, tenantID string, kind types.RelationKind, userID string, roles types.RoleList) error
	ListTeamMembers(ctx context.Context, tenantID string) ([]*types.TenantTeam, error)
	ListAccountOfficers(ctx context.Context, tenantID string) ([]*types.AccountOfficerDetail, error)
	ListTenantsByAccountOfficer(ctx context.Context, userID string) ([]*types.Tenant, error)

	SetCustomTheme(ctx context.Context, tenantID string, req *CustomThemeRequest) (*types.CustomTheme, error)
	UpdateCustomTheme(ctx context.Context, themeID string, req *CustomThemeRequest) (*types.CustomTheme, error)
	UnsetCustomTheme(ctx context.Context, tenantID string) error

	AddTheme(ctx context.Context, tenantID string, req *ThemeRequest) (*types.Theme, error)
	LinkTheme(ctx context.Context, tenantID, themeID string) error
	UnlinkTheme(ctx context.Context, tenantID, themeID string) error
	ListThemes(ctx context.Context, tenantID string) ([]*types.Theme, error)

	AddBilling(ctx context.Context, tenantID string, req *BillingRequest) (*types.Billing, error)
	LinkBilling(ctx context.Context, tenantID, billingID string) error
	RemoveBilling(ctx context.Context, billingID string) error
	ListBillings(ctx context.Context, tenantID string) ([]*types.Billing, error)

	SetConnectionResource(ctx context.Context, tenantID, resourceID string) error
	UnsetConnectionResource(ctx context.Context, tenantID string) error

	UploadLogo(ctx context.Context, tenantID string, r io.Reader, mimeType string) error
	DownloadLogo(ctx context.Context, tenantID string) (io.ReadCloser, string, error)
}

type StorageInterface interface {
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

	CreateUser(ctx context.Context, u *types.User) (*types.User, error)
	GetUserByID(ctx context.Context, id string) (*types.User, error)

	AddTeamMember(ctx context.Context, tenantID, userID string, roles types.RoleList) (string, error)
	UpdateTeamMemberRoles(ctx context.Context, tenantID, userID string, roles types.RoleList) error
	RemoveTeamMember(ctx context.Context, tenantID, userID string) error
	ListTeamMembersByTenantID(ctx context.Context, tenantID string) ([]*types.TenantTeam, error)
	AddAccountOfficer(ctx context.Context, tenantID, userID string, roles types.RoleList) (string, error)
	UpdateAccountOfficerRoles(ctx context.Context, tenantID, userID string, roles types.RoleList) error
	RemoveAccountOfficer(ctx context.Context, tenantID, userID string) error
	ListAccountOfficersByTenantID(ctx context.Context, tenantID string) ([]*types.AccountOfficerDetail, error)

	CreateCustomTheme(ctx context.Context, t *types.CustomTheme) (*types.CustomTheme, error)
	UpdateCustomTheme(ctx context.Context, t *types.CustomTheme, paths []string) error
	DeleteCustomTheme(ctx context.Context, id string) error

	CreateTheme(ctx context.Context, t *types.Theme) (*types.Theme, error)
	AddThemeToTenant(ctx context.Context, tenantID, themeID string) error
	RemoveThemeFromTenant(ctx context.Context, tenantID, themeID string) error
	ListThemesByTenantID(ctx context.Context, tenantID string) ([]*types.Theme, error)

	CreateBilling(ctx context.Context, b *types.Billing) (*types.Billing, error)
	SetBillingTenant(ctx context.Context, billingID string, tenantID *string) error
	ListBillingsByTenantID(ctx context.Context, tenantID string) ([]*types.Billing, error)
}

// TxRunnerInterface runs a function inside a database transaction.
type TxRunnerInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
}

// PasswordHasherInterface is satisfied by the authentication package hasher.
type PasswordHasherInterface interface {
	Hash(password string) (string, error)
}

// EmailVerifierInterface issues verification mails, satisfied by the user
// service.
type EmailVerifierInterface interface {
	SendVerificationEmail(ctx context.Context, userID string) error
}
