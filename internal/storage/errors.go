// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateKey is returned when a unique constraint is violated.
	ErrDuplicateKey = errors.New("record already exists")
	// ErrForeignKeyViolation is returned when a referenced record does not exist.
	ErrForeignKeyViolation = errors.New("referenced record not found")
	// ErrNotLinked is returned when an unlink operation targets a relation
	// that does not exist.
	ErrNotLinked = errors.New("records are not linked")
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// IsDuplicateKeyError reports whether err is a postgres unique violation.
func IsDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	return false
}

// IsForeignKeyViolationError reports whether err is a postgres foreign key violation.
func IsForeignKeyViolationError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgForeignKeyViolation
	}
	return false
}

// ConstraintName extracts the violated constraint name from a postgres error,
// empty if not available.
func ConstraintName(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}

// classifyWriteError maps low level postgres errors to the storage sentinels,
// leaving unrecognized errors untouched.
func classifyWriteError(err error) error {
	if err == nil {
		return nil
	}

	if IsDuplicateKeyError(err) {
		return ErrDuplicateKey
	}

	if IsForeignKeyViolationError(err) {
		return ErrForeignKeyViolation
	}

	return err
}
