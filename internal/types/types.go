// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// TenantStatus is the closed set of lifecycle states a tenant can be in.
type TenantStatus string

const (
	TenantStatusActive    TenantStatus = "active"
	TenantStatusSuspended TenantStatus = "suspended"
	TenantStatusOwing     TenantStatus = "owing"
)

func (s TenantStatus) Valid() bool {
	switch s {
	case TenantStatusActive, TenantStatusSuspended, TenantStatusOwing:
		return true
	}
	return false
}

// RelationKind names the ways a user can be linked to a tenant.
type RelationKind string

const (
	RelationPrimaryContact RelationKind = "primaryContact"
	RelationTeamMember     RelationKind = "teamMember"
	RelationAccountOfficer RelationKind = "accountOfficer"
)

// Team member role tags.
const (
	TeamRoleAdmin          = "admin"
	TeamRoleMarketing      = "marketing"
	TeamRoleContentManager = "content-manager"
)

// Account officer role tags.
const (
	OfficerRoleManager     = "manager"
	OfficerRoleTechSupport = "tech-support"
)

// RoleList is a set of role tags persisted as a JSONB column.
type RoleList []string

func (r RoleList) Value() (driver.Value, error) {
	if r == nil {
		r = RoleList{}
	}
	return json.Marshal(r)
}

func (r *RoleList) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, r)
	case string:
		return json.Unmarshal([]byte(v), r)
	case nil:
		*r = nil
		return nil
	}
	return fmt.Errorf("cannot scan %T into RoleList", src)
}

type Tenant struct {
	ID                   string       `db:"id"`
	UniqueName           string       `db:"unique_name"`
	Address              string       `db:"address"`
	MoreInfo             *string      `db:"more_info"`
	Logo                 *string      `db:"logo"`
	LogoMimeType         *string      `db:"logo_mime_type"`
	Active               bool         `db:"active"`
	DateOfRegistration   time.Time    `db:"date_of_registration"`
	Status               TenantStatus `db:"status"`
	CustomURLSlug        *string      `db:"custom_url_slug"`
	UniqueSchema         bool         `db:"unique_schema"`
	PrimaryContactID     *string      `db:"primary_contact_id"`
	CustomThemeID        *string      `db:"custom_theme_id"`
	ConnectionResourceID *string      `db:"connection_resource_id"`
	CreatedAt            time.Time    `db:"created_at"`
	UpdatedAt            time.Time    `db:"updated_at"`
}

type User struct {
	ID                  string  `db:"id"`
	FirstName           string  `db:"first_name"`
	MiddleName          *string `db:"middle_name"`
	LastName            string  `db:"last_name"`
	PrimaryEmailAddress string  `db:"primary_email_address"`
	BackupEmailAddress  *string `db:"backup_email_address"`
	Phone               *string `db:"phone"`
	IsActive            bool    `db:"is_active"`

	// Secret fields, never serialized outward. See SanitizedUser.
	PasswordHash       string  `db:"password_hash"`
	PasswordSalt       *string `db:"password_salt"`
	OTPSecret          *string `db:"otp_secret"`
	ResetPasswordToken *string `db:"reset_password_token"`

	IsPasswordChangeRequired bool `db:"is_password_change_required"`

	PrimaryEmailVerificationToken    *string    `db:"primary_email_verification_token"`
	EmailVerificationTokenExpiration *time.Time `db:"email_verification_token_expiration"`
	IsPrimaryEmailAddressVerified    bool       `db:"is_primary_email_address_verified"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// SanitizedUser is the outward-facing shape of a user record with every
// secret and token field stripped.
type SanitizedUser struct {
	ID                            string    `json:"id"`
	FirstName                     string    `json:"first_name"`
	MiddleName                    *string   `json:"middle_name,omitempty"`
	LastName                      string    `json:"last_name"`
	PrimaryEmailAddress           string    `json:"primary_email_address"`
	BackupEmailAddress            *string   `json:"backup_email_address,omitempty"`
	Phone                         *string   `json:"phone,omitempty"`
	IsActive                      bool      `json:"is_active"`
	IsPasswordChangeRequired      bool      `json:"is_password_change_required"`
	IsPrimaryEmailAddressVerified bool      `json:"is_primary_email_address_verified"`
	CreatedAt                     time.Time `json:"created_at"`
	UpdatedAt                     time.Time `json:"updated_at"`
}

// Sanitize strips secret and token fields off a user record.
func (u *User) Sanitize() *SanitizedUser {
	if u == nil {
		return nil
	}
	return &SanitizedUser{
		ID:                            u.ID,
		FirstName:                     u.FirstName,
		MiddleName:                    u.MiddleName,
		LastName:                      u.LastName,
		PrimaryEmailAddress:           u.PrimaryEmailAddress,
		BackupEmailAddress:            u.BackupEmailAddress,
		Phone:                         u.Phone,
		IsActive:                      u.IsActive,
		IsPasswordChangeRequired:      u.IsPasswordChangeRequired,
		IsPrimaryEmailAddressVerified: u.IsPrimaryEmailAddressVerified,
		CreatedAt:                     u.CreatedAt,
		UpdatedAt:                     u.UpdatedAt,
	}
}

// TenantTeam is the join row for a user holding team roles on a tenant. Each
// pairing owns its own role list, which is why this is not a plain
// many-to-many.
type TenantTeam struct {
	ID        string    `db:"id"`
	TenantID  string    `db:"tenant_id"`
	UserID    string    `db:"user_id"`
	Roles     RoleList  `db:"roles"`
	CreatedAt time.Time `db:"created_at"`
}

// TenantAccountOfficer is the join row for a user assigned operational roles
// over a tenant.
type TenantAccountOfficer struct {
	ID        string    `db:"id"`
	TenantID  string    `db:"tenant_id"`
	UserID    string    `db:"user_id"`
	Roles     RoleList  `db:"roles"`
	CreatedAt time.Time `db:"created_at"`
}

// AccountOfficerDetail pairs the join row with the sanitized user it points at.
type AccountOfficerDetail struct {
	ID    string         `json:"id"`
	Roles RoleList       `json:"roles"`
	User  *SanitizedUser `json:"user"`
}

type Theme struct {
	ID          string    `db:"id"`
	Name        string    `db:"name"`
	Description *string   `db:"description"`
	Properties  *string   `db:"properties"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

type CustomTheme struct {
	ID          string    `db:"id"`
	Name        string    `db:"name"`
	Description *string   `db:"description"`
	Properties  *string   `db:"properties"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

type Billing struct {
	ID          string    `db:"id"`
	TenantID    *string   `db:"tenant_id"`
	Code        string    `db:"code"`
	Description *string   `db:"description"`
	Type        string    `db:"type"`
	Status      string    `db:"status"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// ConnectionProperties describes where a tenant's dedicated data lives.
type ConnectionProperties struct {
	Type     string `json:"type"`
	Host     string `json:"host"`
	Port     string `json:"port"`
	Username string `json:"username"`
	Password string `json:"password"`
	Database string `json:"database"`
	Schema   string `json:"schema"`
}

func (p ConnectionProperties) Value() (driver.Value, error) {
	return json.Marshal(p)
}

func (p *ConnectionProperties) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	case nil:
		return nil
	}
	return fmt.Errorf("cannot scan %T into ConnectionProperties", src)
}

type ConnectionResource struct {
	ID                   string               `db:"id"`
	Name                 string               `db:"name"`
	Description          string               `db:"description"`
	Active               bool                 `db:"active"`
	Platform             string               `db:"platform"`
	ConnectionProperties ConnectionProperties `db:"connection_properties"`
	RootFileSystem       string               `db:"root_file_system"`
	CreatedAt            time.Time            `db:"created_at"`
	UpdatedAt            time.Time            `db:"updated_at"`
}
