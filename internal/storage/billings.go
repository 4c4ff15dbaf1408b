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

var billingColumns = []string{"id", "tenant_id", "code", "description", "type", "status", "created_at", "updated_at"}

func (s *Storage) CreateBilling(ctx context.Context, b *types.Billing) (*types.Billing, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateBilling")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate billing ID: %w", err)
	}

	var newBilling types.Billing
	err = s.db.Statement(ctx).
		Insert("billings").
		Columns("id", "tenant_id", "code", "description", "type", "status").
		Values(id.String(), b.TenantID, b.Code, b.Description, b.Type, b.Status).
		Suffix(fmt.Sprintf("RETURNING %s", joinColumns(billingColumns))).
		QueryRowContext(ctx).
		Scan(&newBilling.ID, &newBilling.TenantID, &newBilling.Code,
			&newBilling.Description, &newBilling.Type, &newBilling.Status,
			&newBilling.CreatedAt, &newBilling.UpdatedAt)

	if err != nil {
		if err := classifyWriteError(err); errors.Is(err, ErrDuplicateKey) || errors.Is(err, ErrForeignKeyViolation) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to insert billing: %w", err)
	}

	return &newBilling, nil
}

func (s *Storage) GetBillingByID(ctx context.Context, id string) (*types.Billing, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetBillingByID")
	defer span.End()

	var b types.Billing
	err := s.db.Statement(ctx).
		Select(billingColumns...).
		From("billings").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&b.ID, &b.TenantID, &b.Code, &b.Description, &b.Type, &b.Status,
			&b.CreatedAt, &b.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get billing: %w", err)
	}

	return &b, nil
}

func (s *Storage) ListBillingsByTenantID(ctx context.Context, tenantID string) ([]*types.Billing, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListBillingsByTenantID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(billingColumns...).
		From("billings").
		Where(sq.Eq{"tenant_id": tenantID}).
		OrderBy("created_at").
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list billings: %w", err)
	}
	defer rows.Close()

	billings := make([]*types.Billing, 0)
	for rows.Next() {
		var b types.Billing
		err := rows.Scan(&b.ID, &b.TenantID, &b.Code, &b.Description, &b.Type,
			&b.Status, &b.CreatedAt, &b.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan billing: %w", err)
		}
		billings = append(billings, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return billings, nil
}

// SetBillingTenant points the billing record at a tenant, or detaches it when
// tenantID is nil. The record survives a detach.
func (s *Storage) SetBillingTenant(ctx context.Context, billingID string, tenantID *string) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetBillingTenant")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("billings").
		Set("tenant_id", tenantID).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": billingID}).
		ExecContext(ctx)

	if err != nil {
		if err := classifyWriteError(err); errors.Is(err, ErrForeignKeyViolation) {
			return err
		}
		return fmt.Errorf("failed to update billing: %w", err)
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
