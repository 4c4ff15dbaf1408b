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

	"github.com/canonical/tenant-manager/internal/types"
)

var themeColumns = []string{"id", "name", "description", "properties", "created_at", "updated_at"}

func (s *Storage) CreateTheme(ctx context.Context, t *types.Theme) (*types.Theme, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateTheme")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate theme ID: %w", err)
	}

	var newTheme types.Theme
	err = s.db.Statement(ctx).
		Insert("themes").
		Columns("id", "name", "description", "properties").
		Values(id.String(), t.Name, t.Description, t.Properties).
		Suffix(fmt.Sprintf("RETURNING %s", joinColumns(themeColumns))).
		QueryRowContext(ctx).
		Scan(&newTheme.ID, &newTheme.Name, &newTheme.Description,
			&newTheme.Properties, &newTheme.CreatedAt, &newTheme.UpdatedAt)

	if err != nil {
		if err := classifyWriteError(err); errors.Is(err, ErrDuplicateKey) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to insert theme: %w", err)
	}

	return &newTheme, nil
}

func (s *Storage) GetThemeByID(ctx context.Context, id string) (*types.Theme, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetThemeByID")
	defer span.End()

	var t types.Theme
	err := s.db.Statement(ctx).
		Select(themeColumns...).
		From("themes").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&t.ID, &t.Name, &t.Description, &t.Properties, &t.CreatedAt, &t.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get theme: %w", err)
	}

	return &t, nil
}

func (s *Storage) DeleteTheme(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteTheme")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("themes").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete theme: %w", err)
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

func (s *Storage) AddThemeToTenant(ctx context.Context, tenantID, themeID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.AddThemeToTenant")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("failed to generate ID: %w", err)
	}

	_, err = s.db.Statement(ctx).
		Insert("tenant_themes").
		Columns("id", "tenant_id", "theme_id").
		Values(id.String(), tenantID, themeID).
		ExecContext(ctx)

	if err != nil {
		if err := classifyWriteError(err); errors.Is(err, ErrDuplicateKey) || errors.Is(err, ErrForeignKeyViolation) {
			return err
		}
		return fmt.Errorf("failed to add theme to tenant: %w", err)
	}

	return nil
}

func (s *Storage) RemoveThemeFromTenant(ctx context.Context, tenantID, themeID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.RemoveThemeFromTenant")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("tenant_themes").
		Where(sq.Eq{
			"tenant_id": tenantID,
			"theme_id":  themeID,
		}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to remove theme from tenant: %w", err)
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

func (s *Storage) ListThemesByTenantID(ctx context.Context, tenantID string) ([]*types.Theme, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListThemesByTenantID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(prefixColumns("t", themeColumns)...).
		From("themes t").
		Join("tenant_themes tt ON t.id = tt.theme_id").
		Where(sq.Eq{"tt.tenant_id": tenantID}).
		OrderBy("t.created_at").
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list themes: %w", err)
	}
	defer rows.Close()

	themes := make([]*types.Theme, 0)
	for rows.Next() {
		var t types.Theme
		if err := rows.Scan(&t.ID, &t.Name, &t.Description, &t.Properties, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan theme: %w", err)
		}
		themes = append(themes, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return themes, nil
}

func (s *Storage) CreateCustomTheme(ctx context.Context, t *types.CustomTheme) (*types.CustomTheme, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateCustomTheme")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate custom theme ID: %w", err)
	}

	var newTheme types.CustomTheme
	err = s.db.Statement(ctx).
		Insert("custom_themes").
		Columns("id", "name", "description", "properties").
		Values(id.String(), t.Name, t.Description, t.Properties).
		Suffix(fmt.Sprintf("RETURNING %s", joinColumns(themeColumns))).
		QueryRowContext(ctx).
		Scan(&newTheme.ID, &newTheme.Name, &newTheme.Description,
			&newTheme.Properties, &newTheme.CreatedAt, &newTheme.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("failed to insert custom theme: %w", err)
	}

	return &newTheme, nil
}

func (s *Storage) GetCustomThemeByID(ctx context.Context, id string) (*types.CustomTheme, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetCustomThemeByID")
	defer span.End()

	var t types.CustomTheme
	err := s.db.Statement(ctx).
		Select(themeColumns...).
		From("custom_themes").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&t.ID, &t.Name, &t.Description, &t.Properties, &t.CreatedAt, &t.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get custom theme: %w", err)
	}

	return &t, nil
}

func (s *Storage) UpdateCustomTheme(ctx context.Context, t *types.CustomTheme, paths []string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateCustomTheme")
	defer span.End()

	if len(paths) == 0 {
		return nil
	}

	updateMap := make(map[string]interface{})
	for _, p := range paths {
		switch p {
		case "name":
			updateMap["name"] = t.Name
		case "description":
			updateMap["description"] = t.Description
		case "properties":
			updateMap["properties"] = t.Properties
		}
	}

	if len(updateMap) == 0 {
		return nil
	}
	updateMap["updated_at"] = sq.Expr("NOW()")

	res, err := s.db.Statement(ctx).
		Update("custom_themes").
		SetMap(updateMap).
		Where(sq.Eq{"id": t.ID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update custom theme: %w", err)
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

func (s *Storage) DeleteCustomTheme(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteCustomTheme")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("custom_themes").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete custom theme: %w", err)
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
