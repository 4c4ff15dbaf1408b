// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/canonical/tenant-manager/internal/db"
	"github.com/canonical/tenant-manager/internal/types"
)

var tenantColumns = []string{
	"id", "unique_name", "address", "more_info", "logo", "logo_mime_type",
	"active", "date_of_registration", "status", "custom_url_slug",
	"unique_schema", "primary_contact_id", "custom_theme_id",
	"connection_resource_id", "created_at", "updated_at",
}

func scanTenant(row sq.RowScanner) (*types.Tenant, error) {
	var t types.Tenant
	err := row.Scan(
		&t.ID, &t.UniqueName, &t.Address, &t.MoreInfo, &t.Logo, &t.LogoMimeType,
		&t.Active, &t.DateOfRegistration, &t.Status, &t.CustomURLSlug,
		&t.UniqueSchema, &t.PrimaryContactID, &t.CustomThemeID,
		&t.ConnectionResourceID, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *Storage) CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateTenant")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate tenant ID: %w", err)
	}

	status := t.Status
	if status == "" {
		status = types.TenantStatusActive
	}

	row := s.db.Statement(ctx).
		Insert("tenants").
		Columns("id", "unique_name", "address", "more_info", "active",
			"date_of_registration", "status", "custom_url_slug", "unique_schema").
		Values(id.String(), t.UniqueName, t.Address, t.MoreInfo, t.Active,
			t.DateOfRegistration, status, t.CustomURLSlug, t.UniqueSchema).
		Suffix(fmt.Sprintf("RETURNING %s", joinColumns(tenantColumns))).
		QueryRowContext(ctx)

	newTenant, err := scanTenant(row)
	if err != nil {
		if err := classifyWriteError(err); errors.Is(err, ErrDuplicateKey) || errors.Is(err, ErrForeignKeyViolation) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to insert tenant: %w", err)
	}

	return newTenant, nil
}

func (s *Storage) GetTenantByID(ctx context.Context, id string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTenantByID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(tenantColumns...).
		From("tenants").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx)

	t, err := scanTenant(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}

	return t, nil
}

func (s *Storage) GetTenantByUniqueName(ctx context.Context, uniqueName string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTenantByUniqueName")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(tenantColumns...).
		From("tenants").
		Where(sq.Eq{"unique_name": uniqueName}).
		QueryRowContext(ctx)

	t, err := scanTenant(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}

	return t, nil
}

// ListTenants pages through tenants, optionally filtered on active status.
func (s *Storage) ListTenants(ctx context.Context, page, size int64, active *bool) ([]*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListTenants")
	defer span.End()

	pageSize := db.PageSize(size)

	query := s.db.Statement(ctx).
		Select(tenantColumns...).
		From("tenants").
		OrderBy("created_at DESC").
		Offset(db.Offset(page, pageSize)).
		Limit(pageSize)

	if active != nil {
		query = query.Where(sq.Eq{"active": *active})
	}

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}
	defer rows.Close()

	tenants := make([]*types.Tenant, 0)
	for rows.Next() {
		t, err := scanTenant(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tenant: %w", err)
		}
		tenants = append(tenants, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return tenants, nil
}

// UpdateTenant updates only the fields named in paths, following PATCH
// semantics. Unknown paths are ignored.
func (s *Storage) UpdateTenant(ctx context.Context, tenant *types.Tenant, paths []string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateTenant")
	defer span.End()

	if len(paths) == 0 {
		return nil
	}

	updateMap := make(map[string]interface{})
	for _, p := range paths {
		switch p {
		case "unique_name":
			updateMap["unique_name"] = tenant.UniqueName
		case "address":
			updateMap["address"] = tenant.Address
		case "more_info":
			updateMap["more_info"] = tenant.MoreInfo
		case "active":
			updateMap["active"] = tenant.Active
		case "date_of_registration":
			updateMap["date_of_registration"] = tenant.DateOfRegistration
		case "status":
			updateMap["status"] = tenant.Status
		case "custom_url_slug":
			updateMap["custom_url_slug"] = tenant.CustomURLSlug
		case "unique_schema":
			updateMap["unique_schema"] = tenant.UniqueSchema
		}
	}

	if len(updateMap) == 0 {
		return nil
	}
	updateMap["updated_at"] = sq.Expr("NOW()")

	res, err := s.db.Statement(ctx).
		Update("tenants").
		SetMap(updateMap).
		Where(sq.Eq{"id": tenant.ID}).
		ExecContext(ctx)

	if err != nil {
		if err := classifyWriteError(err); errors.Is(err, ErrDuplicateKey) {
			return err
		}
		return fmt.Errorf("failed to update tenant: %w", err)
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

func (s *Storage) DeleteTenant(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteTenant")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("tenants").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete tenant: %w", err)
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

func (s *Storage) SetTenantPrimaryContact(ctx context.Context, tenantID string, userID *string) error {
	return s.setTenantFK(ctx, "storage.SetTenantPrimaryContact", tenantID, "primary_contact_id", userID)
}

func (s *Storage) SetTenantCustomTheme(ctx context.Context, tenantID string, themeID *string) error {
	return s.setTenantFK(ctx, "storage.SetTenantCustomTheme", tenantID, "custom_theme_id", themeID)
}

func (s *Storage) SetTenantConnectionResource(ctx context.Context, tenantID string, resourceID *string) error {
	return s.setTenantFK(ctx, "storage.SetTenantConnectionResource", tenantID, "connection_resource_id", resourceID)
}

// setTenantFK points one of the tenant's nullable FK columns at a row, or
// clears it when id is nil.
func (s *Storage) setTenantFK(ctx context.Context, spanName, tenantID, column string, id *string) error {
	ctx, span := s.tracer.Start(ctx, spanName)
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("tenants").
		Set(column, id).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": tenantID}).
		ExecContext(ctx)

	if err != nil {
		if err := classifyWriteError(err); errors.Is(err, ErrForeignKeyViolation) {
			return err
		}
		return fmt.Errorf("failed to update tenant %s: %w", column, err)
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

func (s *Storage) SetTenantLogo(ctx context.Context, tenantID, fileName, mimeType string) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetTenantLogo")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("tenants").
		Set("logo", fileName).
		Set("logo_mime_type", mimeType).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": tenantID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update tenant logo: %w", err)
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

func (s *Storage) ListActiveTenantsByAccountOfficer(ctx context.Context, userID string) ([]*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListActiveTenantsByAccountOfficer")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(prefixColumns("t", tenantColumns)...).
		From("tenants t").
		Join("tenant_account_officers o ON t.id = o.tenant_id").
		Where(sq.Eq{"o.user_id": userID, "t.active": true}).
		OrderBy("t.created_at DESC").
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}
	defer rows.Close()

	tenants := make([]*types.Tenant, 0)
	for rows.Next() {
		t, err := scanTenant(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tenant: %w", err)
		}
		tenants = append(tenants, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return tenants, nil
}
