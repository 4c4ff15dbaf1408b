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

var connectionResourceColumns = []string{
	"id", "name", "description", "active", "platform",
	"connection_properties", "root_file_system", "created_at", "updated_at",
}

func scanConnectionResource(row sq.RowScanner) (*types.ConnectionResource, error) {
	var r types.ConnectionResource
	err := row.Scan(
		&r.ID, &r.Name, &r.Description, &r.Active, &r.Platform,
		&r.ConnectionProperties, &r.RootFileSystem, &r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *Storage) CreateConnectionResource(ctx context.Context, r *types.ConnectionResource) (*types.ConnectionResource, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateConnectionResource")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate connection resource ID: %w", err)
	}

	row := s.db.Statement(ctx).
		Insert("connection_resources").
		Columns("id", "name", "description", "active", "platform",
			"connection_properties", "root_file_system").
		Values(id.String(), r.Name, r.Description, r.Active, r.Platform,
			r.ConnectionProperties, r.RootFileSystem).
		Suffix(fmt.Sprintf("RETURNING %s", joinColumns(connectionResourceColumns))).
		QueryRowContext(ctx)

	newResource, err := scanConnectionResource(row)
	if err != nil {
		if err := classifyWriteError(err); errors.Is(err, ErrDuplicateKey) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to insert connection resource: %w", err)
	}

	return newResource, nil
}

func (s *Storage) GetConnectionResourceByID(ctx context.Context, id string) (*types.ConnectionResource, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetConnectionResourceByID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(connectionResourceColumns...).
		From("connection_resources").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx)

	r, err := scanConnectionResource(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get connection resource: %w", err)
	}

	return r, nil
}

func (s *Storage) ListConnectionResources(ctx context.Context, page, size int64) ([]*types.ConnectionResource, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListConnectionResources")
	defer span.End()

	pageSize := db.PageSize(size)

	rows, err := s.db.Statement(ctx).
		Select(connectionResourceColumns...).
		From("connection_resources").
		OrderBy("created_at DESC").
		Offset(db.Offset(page, pageSize)).
		Limit(pageSize).
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list connection resources: %w", err)
	}
	defer rows.Close()

	resources := make([]*types.ConnectionResource, 0)
	for rows.Next() {
		r, err := scanConnectionResource(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan connection resource: %w", err)
		}
		resources = append(resources, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return resources, nil
}

func (s *Storage) UpdateConnectionResource(ctx context.Context, r *types.ConnectionResource, paths []string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateConnectionResource")
	defer span.End()

	if len(paths) == 0 {
		return nil
	}

	updateMap := make(map[string]interface{})
	for _, p := range paths {
		switch p {
		case "name":
			updateMap["name"] = r.Name
		case "description":
			updateMap["description"] = r.Description
		case "active":
			updateMap["active"] = r.Active
		case "platform":
			updateMap["platform"] = r.Platform
		case "connection_properties":
			updateMap["connection_properties"] = r.ConnectionProperties
		case "root_file_system":
			updateMap["root_file_system"] = r.RootFileSystem
		}
	}

	if len(updateMap) == 0 {
		return nil
	}
	updateMap["updated_at"] = sq.Expr("NOW()")

	res, err := s.db.Statement(ctx).
		Update("connection_resources").
		SetMap(updateMap).
		Where(sq.Eq{"id": r.ID}).
		ExecContext(ctx)

	if err != nil {
		if err := classifyWriteError(err); errors.Is(err, ErrDuplicateKey) {
			return err
		}
		return fmt.Errorf("failed to update connection resource: %w", err)
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

func (s *Storage) DeleteConnectionResource(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteConnectionResource")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("connection_resources").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete connection resource: %w", err)
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
