// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package connection

import (
	"context"

	"github.com/canonical/tenant-manager/internal/logging"
	"github.com/canonical/tenant-manager/internal/monitoring"
	"github.com/canonical/tenant-manager/internal/tracing"
	"github.com/canonical/tenant-manager/internal/types"
)

var _ ServiceInterface = (*Service)(nil)

// ResourceRequest is the validated payload for creating a connection
// resource. The (name, platform) pair must be unique across resources.
type ResourceRequest struct {
	Name                 string                     `json:"name" validate:"required"`
	Description          string                     `json:"description"`
	Active               *bool                      `json:"active,omitempty"`
	Platform             string                     `json:"platform" validate:"required"`
	ConnectionProperties types.ConnectionProperties `json:"connection_properties"`
	RootFileSystem       string                     `json:"root_file_system"`
}

// UpdateResourceRequest carries PATCH semantics: only non-nil fields are
// applied.
type UpdateResourceRequest struct {
	Name                 *string                     `json:"name,omitempty"`
	Description          *string                     `json:"description,omitempty"`
	Active               *bool                       `json:"active,omitempty"`
	Platform             *string                     `json:"platform,omitempty"`
	ConnectionProperties *types.ConnectionProperties `json:"connection_properties,omitempty"`
	RootFileSystem       *string                     `json:"root_file_system,omitempty"`
}

type Service struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (s *Service) CreateResource(ctx context.Context, req *ResourceRequest) (*types.ConnectionResource, error) {
	ctx, span := s.tracer.Start(ctx, "connection.Service.CreateResource")
	defer span.End()

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	return s.storage.CreateConnectionResource(ctx, &types.ConnectionResource{
		Name:                 req.Name,
		Description:          req.Description,
		Active:               active,
		Platform:             req.Platform,
		ConnectionProperties: req.ConnectionProperties,
		RootFileSystem:       req.RootFileSystem,
	})
}

func (s *Service) GetResource(ctx context.Context, id string) (*types.ConnectionResource, error) {
	ctx, span := s.tracer.Start(ctx, "connection.Service.GetResource")
	defer span.End()

	return s.storage.GetConnectionResourceByID(ctx, id)
}

func (s *Service) ListResources(ctx context.Context, page, size int64) ([]*types.ConnectionResource, error) {
	ctx, span := s.tracer.Start(ctx, "connection.Service.ListResources")
	defer span.End()

	return s.storage.ListConnectionResources(ctx, page, size)
}

func (s *Service) UpdateResource(ctx context.Context, id string, req *UpdateResourceRequest) (*types.ConnectionResource, error) {
	ctx, span := s.tracer.Start(ctx, "connection.Service.UpdateResource")
	defer span.End()

	update := &types.ConnectionResource{ID: id}
	var paths []string

	if req.Name != nil {
		update.Name = *req.Name
		paths = append(paths, "name")
	}
	if req.Description != nil {
		update.Description = *req.Description
		paths = append(paths, "description")
	}
	if req.Active != nil {
		update.Active = *req.Active
		paths = append(paths, "active")
	}
	if req.Platform != nil {
		update.Platform = *req.Platform
		paths = append(paths, "platform")
	}
	if req.ConnectionProperties != nil {
		update.ConnectionProperties = *req.ConnectionProperties
		paths = append(paths, "connection_properties")
	}
	if req.RootFileSystem != nil {
		update.RootFileSystem = *req.RootFileSystem
		paths = append(paths, "root_file_system")
	}

	if err := s.storage.UpdateConnectionResource(ctx, update, paths); err != nil {
		return nil, err
	}

	return s.storage.GetConnectionResourceByID(ctx, id)
}

func (s *Service) DeleteResource(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "connection.Service.DeleteResource")
	defer span.End()

	return s.storage.DeleteConnectionResource(ctx, id)
}
