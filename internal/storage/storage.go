// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"fmt"
	"strings"

	"github.com/canonical/tenant-manager/internal/db"
	"github.com/canonical/tenant-manager/internal/logging"
	"github.com/canonical/tenant-manager/internal/monitoring"
	"github.com/canonical/tenant-manager/internal/tracing"
)

var _ StorageInterface = (*Storage)(nil)

// Storage is the postgres-backed implementation of every entity store. The
// per-entity methods live in sibling files (tenants.go, users.go, ...).
type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

func joinColumns(columns []string) string {
	return strings.Join(columns, ", ")
}

// prefixColumns qualifies every column with a table alias for joined queries.
func prefixColumns(alias string, columns []string) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = fmt.Sprintf("%s.%s", alias, c)
	}
	return out
}
