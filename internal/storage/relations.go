// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/canonical/tenant-manager/internal/types"
)

func (s *Storage) AddTeamMember(ctx context.Context, tenantID, userID string, roles types.RoleList) (string, error) {
	return s.addRelation(ctx, "storage.AddTeamMember", "tenant_teams", tenantID, userID, roles)
}

func (s *Storage) AddAccountOfficer(ctx context.Context, tenantID, userID string, roles types.RoleList) (string, error) {
	return s.addRelation(ctx, "storage.AddAccountOfficer", "tenant_account_officers", tenantID, userID, roles)
}

// addRelation inserts a (tenant, user, roles) join row. The unique constraint
// on (tenant_id, user_id) turns repeated linking into ErrDuplicateKey.
func (s *Storage) addRelation(ctx context.Context, spanName, table, tenantID, userID string, roles types.RoleList) (string, error) {
	ctx, span := s.tracer.Start(ctx, spanName)
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate relation ID: %w", err)
	}

	_, err = s.db.Statement(ctx).
		Insert(table).
		Columns("id", "tenant_id", "user_id", "roles").
		Values(id.String(), tenantID, userID, roles).
		ExecContext(ctx)

	if err != nil {
		if err := classifyWriteError(err); errors.Is(err, ErrDuplicateKey) || errors.Is(err, ErrForeignKeyViolation) {
			return "", err
		}
		return "", fmt.Errorf("failed to add relation: %w", err)
	}

	return id.String(), nil
}

func (s *Storage) UpdateTeamMemberRoles(ctx context.Context, tenantID, userID string, roles types.RoleList) error {
	return s.updateRelationRoles(ctx, "storage.UpdateTeamMemberRoles", "tenant_teams", tenantID, userID, roles)
}

func (s *Storage) UpdateAccountOfficerRoles(ctx context.Context, tenantID, userID string, roles types.RoleList) error {
	return s.updateRelationRoles(ctx, "storage.UpdateAccountOfficerRoles", "tenant_account_officers", tenantID, userID, roles)
}

func (s *Storage) updateRelationRoles(ctx context.Context, spanName, table, tenantID, userID string, roles types.RoleList) error {
	ctx, span := s.tracer.Start(ctx, spanName)
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update(table).
		Set("roles", roles).
		Where(sq.Eq{
			"tenant_id": tenantID,
			"user_id":   userID,
		}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update relation roles: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotLinked
	}

	return nil
}

func (s *Storage) RemoveTeamMember(ctx context.Context, tenantID, userID string) error {
	return s.removeRelation(ctx, "storage.RemoveTeamMember", "tenant_teams", tenantID, userID)
}

func (s *Storage) RemoveAccountOfficer(ctx context.Context, tenantID, userID string) error {
	return s.removeRelation(ctx, "storage.RemoveAccountOfficer", "tenant_account_officers", tenantID, userID)
}

func (s *Storage) removeRelation(ctx context.Context, spanName, table, tenantID, userID string) error {
	ctx, span := s.tracer.Start(ctx, spanName)
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete(table).
		Where(sq.Eq{
			"tenant_id": tenantID,
			"user_id":   userID,
		}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to remove relation: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotLinked
	}

	return nil
}

func (s *Storage) ListTeamMembersByTenantID(ctx context.Context, tenantID string) ([]*types.TenantTeam, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListTeamMembersByTenantID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "tenant_id", "user_id", "roles", "created_at").
		From("tenant_teams").
		Where(sq.Eq{"tenant_id": tenantID}).
		OrderBy("created_at").
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list team members: %w", err)
	}
	defer rows.Close()

	members := make([]*types.TenantTeam, 0)
	for rows.Next() {
		var m types.TenantTeam
		if err := rows.Scan(&m.ID, &m.TenantID, &m.UserID, &m.Roles, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan team member: %w", err)
		}
		members = append(members, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return members, nil
}

// ListAccountOfficersByTenantID joins the officer rows with their users so the
// API can return role tags and contact details in one response.
func (s *Storage) ListAccountOfficersByTenantID(ctx context.Context, tenantID string) ([]*types.AccountOfficerDetail, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListAccountOfficersByTenantID")
	defer span.End()

	columns := append([]string{"o.id", "o.roles"}, prefixColumns("u", userColumns)...)

	rows, err := s.db.Statement(ctx).
		Select(columns...).
		From("tenant_account_officers o").
		Join("users u ON u.id = o.user_id").
		Where(sq.Eq{"o.tenant_id": tenantID}).
		OrderBy("o.created_at").
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list account officers: %w", err)
	}
	defer rows.Close()

	officers := make([]*types.AccountOfficerDetail, 0)
	for rows.Next() {
		var (
			d types.AccountOfficerDetail
			u types.User
		)
		err := rows.Scan(
			&d.ID, &d.Roles,
			&u.ID, &u.FirstName, &u.MiddleName, &u.LastName, &u.PrimaryEmailAddress,
			&u.BackupEmailAddress, &u.Phone, &u.IsActive, &u.PasswordHash,
			&u.PasswordSalt, &u.OTPSecret, &u.ResetPasswordToken,
			&u.IsPasswordChangeRequired, &u.PrimaryEmailVerificationToken,
			&u.EmailVerificationTokenExpiration, &u.IsPrimaryEmailAddressVerified,
			&u.CreatedAt, &u.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account officer: %w", err)
		}
		d.User = u.Sanitize()
		officers = append(officers, &d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return officers, nil
}
