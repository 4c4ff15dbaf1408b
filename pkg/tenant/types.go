// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"time"

	"github.com/canonical/tenant-manager/internal/types"
)

// CreateTenantRequest is the validated payload for creating a tenant,
// optionally carrying a primary contact to link in the same transaction.
type CreateTenantRequest struct {
	UniqueName         string     `json:"unique_name" validate:"required"`
	Address            string     `json:"address" validate:"required"`
	MoreInfo           *string    `json:"more_info,omitempty"`
	DateOfRegistration *time.Time `json:"date_of_registration,omitempty"`
	Status             *string    `json:"status,omitempty" validate:"omitempty,oneof=active suspended owing"`
	CustomURLSlug      *string    `json:"custom_url_slug,omitempty"`
	UniqueSchema       bool       `json:"unique_schema"`

	PrimaryContact *LinkUserRequest `json:"primary_contact,omitempty"`
}

// UpdateTenantRequest carries PATCH semantics: only non-nil fields are applied.
type UpdateTenantRequest struct {
	UniqueName         *string    `json:"unique_name,omitempty"`
	Address            *string    `json:"address,omitempty"`
	MoreInfo           *string    `json:"more_info,omitempty"`
	Active             *bool      `json:"active,omitempty"`
	DateOfRegistration *time.Time `json:"date_of_registration,omitempty"`
	Status             *string    `json:"status,omitempty" validate:"omitempty,oneof=active suspended owing"`
	CustomURLSlug      *string    `json:"custom_url_slug,omitempty"`
	UniqueSchema       *bool      `json:"unique_schema,omitempty"`
}

// NewUserInput describes a user to create while linking. The plaintext
// password is hashed before anything touches the database.
type NewUserInput struct {
	FirstName           string  `json:"first_name" validate:"required"`
	MiddleName          *string `json:"middle_name,omitempty"`
	LastName            string  `json:"last_name" validate:"required"`
	PrimaryEmailAddress string  `json:"primary_email_address" validate:"required,email"`
	BackupEmailAddress  *string `json:"backup_email_address,omitempty" validate:"omitempty,email"`
	Phone               *string `json:"phone,omitempty"`
	Password            string  `json:"password" validate:"required,min=8"`
}

// LinkUserRequest links a user to a tenant, either by creating the user or by
// referencing an existing one. Exactly one of new_user and user_id must be
// set.
type LinkUserRequest struct {
	NewUser *NewUserInput  `json:"new_user,omitempty"`
	UserID  *string        `json:"user_id,omitempty"`
	Roles   types.RoleList `json:"roles,omitempty"`
}

// UpdateRolesRequest replaces the role set on an existing relation.
type UpdateRolesRequest struct {
	Roles types.RoleList `json:"roles" validate:"required,min=1"`
}

type CustomThemeRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description,omitempty"`
	Properties  *string `json:"properties,omitempty"`
}

type ThemeRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description,omitempty"`
	Properties  *string `json:"properties,omitempty"`
}

type BillingRequest struct {
	Code        string  `json:"code" validate:"required"`
	Description *string `json:"description,omitempty"`
	Type        string  `json:"type" validate:"required"`
	Status      string  `json:"status" validate:"required"`
}
