// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
	"fmt"

	"github.com/canonical/tenant-manager/internal/logging"
	"github.com/canonical/tenant-manager/internal/monitoring"
	"github.com/canonical/tenant-manager/internal/storage"
	"github.com/canonical/tenant-manager/internal/tracing"
	"github.com/canonical/tenant-manager/internal/types"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage StorageInterface
	hasher  PasswordHasherInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	hasher PasswordHasherInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		hasher:  hasher,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// ValidateUser checks a credential pair and returns the sanitized user on
// success. Unknown email and wrong password both return (nil, nil) so callers
// cannot tell the two cases apart.
func (s *Service) ValidateUser(ctx context.Context, email, password string) (*types.SanitizedUser, error) {
	ctx, span := s.tracer.Start(ctx, "authentication.Service.ValidateUser")
	defer span.End()

	user, err := s.storage.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.logger.Security().AuthenticationFailed(email)
			return nil, nil
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !s.hasher.Compare(user.PasswordHash, password) {
		s.logger.Security().AuthenticationFailed(email)
		return nil, nil
	}

	s.logger.Security().AuthenticationSucceeded(user.ID)
	return user.Sanitize(), nil
}
