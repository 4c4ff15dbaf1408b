// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/canonical/tenant-manager/internal/db"
	"github.com/canonical/tenant-manager/internal/types"
)

var userColumns = []string{
	"id", "first_name", "middle_name", "last_name", "primary_email_address",
	"backup_email_address", "phone", "is_active", "password_hash",
	"password_salt", "otp_secret", "reset_password_token",
	"is_password_change_required", "primary_email_verification_token",
	"email_verification_token_expiration", "is_primary_email_address_verified",
	"created_at", "updated_at",
}

func scanUser(row sq.RowScanner) (*types.User, error) {
	var u types.User
	err := row.Scan(
		&u.ID, &u.FirstName, &u.MiddleName, &u.LastName, &u.PrimaryEmailAddress,
		&u.BackupEmailAddress, &u.Phone, &u.IsActive, &u.PasswordHash,
		&u.PasswordSalt, &u.OTPSecret, &u.ResetPasswordToken,
		&u.IsPasswordChangeRequired, &u.PrimaryEmailVerificationToken,
		&u.EmailVerificationTokenExpiration, &u.IsPrimaryEmailAddressVerified,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *Storage) CreateUser(ctx context.Context, u *types.User) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateUser")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate user ID: %w", err)
	}

	row := s.db.Statement(ctx).
		Insert("users").
		Columns("id", "first_name", "middle_name", "last_name",
			"primary_email_address", "backup_email_address", "phone",
			"is_active", "password_hash", "password_salt",
			"is_password_change_required").
		Values(id.String(), u.FirstName, u.MiddleName, u.LastName,
			u.PrimaryEmailAddress, u.BackupEmailAddress, u.Phone,
			u.IsActive, u.PasswordHash, u.PasswordSalt,
			u.IsPasswordChangeRequired).
		Suffix(fmt.Sprintf("RETURNING %s", joinColumns(userColumns))).
		QueryRowContext(ctx)

	newUser, err := scanUser(row)
	if err != nil {
		if err := classifyWriteError(err); errors.Is(err, ErrDuplicateKey) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}

	return newUser, nil
}

func (s *Storage) GetUserByID(ctx context.Context, id string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserByID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(userColumns...).
		From("users").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx)

	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return u, nil
}

func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserByEmail")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(userColumns...).
		From("users").
		Where(sq.Eq{"primary_email_address": email}).
		QueryRowContext(ctx)

	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return u, nil
}

func (s *Storage) ListUsers(ctx context.Context, page, size int64) ([]*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListUsers")
	defer span.End()

	pageSize := db.PageSize(size)

	rows, err := s.db.Statement(ctx).
		Select(userColumns...).
		From("users").
		OrderBy("created_at DESC").
		Offset(db.Offset(page, pageSize)).
		Limit(pageSize).
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := make([]*types.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return users, nil
}

// UpdateUser updates only the fields named in paths, following PATCH
// semantics. Secret fields must be updated through their dedicated paths so a
// handler can never overwrite them by accident.
func (s *Storage) UpdateUser(ctx context.Context, user *types.User, paths []string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateUser")
	defer span.End()

	if len(paths) == 0 {
		return nil
	}

	updateMap := make(map[string]interface{})
	for _, p := range paths {
		switch p {
		case "first_name":
			updateMap["first_name"] = user.FirstName
		case "middle_name":
			updateMap["middle_name"] = user.MiddleName
		case "last_name":
			updateMap["last_name"] = user.LastName
		case "primary_email_address":
			updateMap["primary_email_address"] = user.PrimaryEmailAddress
		case "backup_email_address":
			updateMap["backup_email_address"] = user.BackupEmailAddress
		case "phone":
			updateMap["phone"] = user.Phone
		case "is_active":
			updateMap["is_active"] = user.IsActive
		case "password_hash":
			updateMap["password_hash"] = user.PasswordHash
		case "is_password_change_required":
			updateMap["is_password_change_required"] = user.IsPasswordChangeRequired
		}
	}

	if len(updateMap) == 0 {
		return nil
	}
	updateMap["updated_at"] = sq.Expr("NOW()")

	res, err := s.db.Statement(ctx).
		Update("users").
		SetMap(updateMap).
		Where(sq.Eq{"id": user.ID}).
		ExecContext(ctx)

	if err != nil {
		if err := classifyWriteError(err); errors.Is(err, ErrDuplicateKey) {
			return err
		}
		return fmt.Errorf("failed to update user: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Storage) DeleteUser(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteUser")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("users").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

// SetVerificationToken stores a fresh verification token on the user row.
// Re-issuing overwrites the previous token, which invalidates it.
func (s *Storage) SetVerificationToken(ctx context.Context, userID, token string, expiresAt time.Time) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetVerificationToken")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("users").
		Set("primary_email_verification_token", token).
		Set("email_verification_token_expiration", expiresAt).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": userID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to set verification token: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Storage) GetUserByVerificationToken(ctx context.Context, token string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserByVerificationToken")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(userColumns...).
		From("users").
		Where(sq.Eq{"primary_email_verification_token": token}).
		QueryRowContext(ctx)

	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by token: %w", err)
	}

	return u, nil
}

// MarkPrimaryEmailVerified flags the email as verified and clears the token
// fields so the link cannot be replayed.
func (s *Storage) MarkPrimaryEmailVerified(ctx context.Context, userID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.MarkPrimaryEmailVerified")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("users").
		Set("is_primary_email_address_verified", true).
		Set("primary_email_verification_token", nil).
		Set("email_verification_token_expiration", nil).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": userID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to mark email verified: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}
