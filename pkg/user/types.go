// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package user

// CreateUserRequest is the validated payload for creating a user. The
// plaintext password only ever lives in this struct and in the hasher call.
type CreateUserRequest struct {
	FirstName           string  `json:"first_name" validate:"required"`
	MiddleName          *string `json:"middle_name,omitempty"`
	LastName            string  `json:"last_name" validate:"required"`
	PrimaryEmailAddress string  `json:"primary_email_address" validate:"required,email"`
	BackupEmailAddress  *string `json:"backup_email_address,omitempty" validate:"omitempty,email"`
	Phone               *string `json:"phone,omitempty"`
	Password            string  `json:"password" validate:"required,min=8"`
}

// UpdateUserRequest carries PATCH semantics: only non-nil fields are applied.
type UpdateUserRequest struct {
	FirstName          *string `json:"first_name,omitempty"`
	MiddleName         *string `json:"middle_name,omitempty"`
	LastName           *string `json:"last_name,omitempty"`
	BackupEmailAddress *string `json:"backup_email_address,omitempty" validate:"omitempty,email"`
	Phone              *string `json:"phone,omitempty"`
	IsActive           *bool   `json:"is_active,omitempty"`
	Password           *string `json:"password,omitempty" validate:"omitempty,min=8"`
}
