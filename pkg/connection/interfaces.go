// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package connection

import (
	"context"

	"github.com/canonical/tenant-manager/internal/types"
)

type ServiceInterface interface {
	CreateResource(ctx context.Context, req *ResourceRequest) (*types.ConnectionResource, error)
	GetResource(ctx context.Context, id string) (*types.ConnectionResource, error)
	ListResources(ctx context.Context, page, size int64) ([]*types.ConnectionResource, error)
	UpdateResource(ctx context.Context, id string, req *UpdateResourceRequest) (*types.ConnectionResource, error)
	DeleteResource(ctx context.Context, id string) error
}

type StorageInterface interface {
	CreateConnectionResource(ctx context.Context, r *types.ConnectionResource) (*types.ConnectionResource, error)
	GetConnectionResourceByID(ctx context.Context, id string) (*types.ConnectionResource, error)
	ListConnectionResources(ctx context.Context, page, size int64) ([]*types.ConnectionResource, error)
	UpdateConnectionResource(ctx context.Context, r *types.ConnectionResource, paths []string) error
	DeleteConnectionResource(ctx context.Context, id string) error
}
