// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package connection

//go:generate mockgen -build_flags=--mod=mod -package connection -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package connection -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package connection -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package connection -destination ./mock_connection.go -source=./interfaces.go

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/tenant-manager/internal/storage"
	"github.com/canonical/tenant-manager/internal/types"
)

func strPtr(s string) *string {
	return &s
}

func boolPtr(b bool) *bool {
	return &b
}

func TestService_CreateResource(t *testing.T) {
	testCases := []struct {
		name        string
		input       *ResourceRequest
		setupMocks  func(*MockStorageInterface, *MockTracingInterface)
		expectedErr error
	}{
		{
			name: "SuccessDefaultsToActive",
			input: &ResourceRequest{
				Name:     "warehouse",
				Platform: "postgres",
				ConnectionProperties: types.ConnectionProperties{
					Type: "postgres",
					Host: "10.0.0.5",
					Port: "5432",
				},
			},
			setupMocks: func(storageMock *MockStorageInterface, tracer *MockTracingInterface) {
				tracer.EXPECT().Start(gomock.Any(), "connection.Service.CreateResource").Return(context.Background(), trace.SpanFromContext(context.Background()))
				storageMock.EXPECT().CreateConnectionResource(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, r *types.ConnectionResource) (*types.ConnectionResource, error) {
						if !r.Active {
							t.Fatal("expected resource to default to active")
						}
						if r.ConnectionProperties.Host != "10.0.0.5" {
							t.Fatalf("unexpected host %q", r.ConnectionProperties.Host)
						}
						r.ID = "resource-1"
						return r, nil
					},
				)
			},
		},
		{
			name: "ExplicitInactive",
			input: &ResourceRequest{
				Name:     "warehouse",
				Platform: "postgres",
				Active:   boolPtr(false),
			},
			setupMocks: func(storageMock *MockStorageInterface, tracer *MockTracingInterface) {
				tracer.EXPECT().Start(gomock.Any(), "connection.Service.CreateResource").Return(context.Background(), trace.SpanFromContext(context.Background()))
				storageMock.EXPECT().CreateConnectionResource(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, r *types.ConnectionResource) (*types.ConnectionResource, error) {
						if r.Active {
							t.Fatal("expected resource to stay inactive")
						}
						r.ID = "resource-1"
						return r, nil
					},
				)
			},
		},
		{
			name: "DuplicateNamePlatform",
			input: &ResourceRequest{
				Name:     "warehouse",
				Platform: "postgres",
			},
			setupMocks: func(storageMock *MockStorageInterface, tracer *MockTracingInterface) {
				tracer.EXPECT().Start(gomock.Any(), "connection.Service.CreateResource").Return(context.Background(), trace.SpanFromContext(context.Background()))
				storageMock.EXPECT().CreateConnectionResource(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey)
			},
			expectedErr: storage.ErrDuplicateKey,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			tc.setupMocks(mockStorage, mockTracer)

			s := NewService(mockStorage, mockTracer, mockMonitor, mockLogger)

			resource, err := s.CreateResource(context.Background(), tc.input)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if resource.ID != "resource-1" {
				t.Fatalf("expected resource-1, got %q", resource.ID)
			}
		})
	}
}

func TestService_UpdateResource(t *testing.T) {
	testCases := []struct {
		name          string
		input         *UpdateResourceRequest
		expectedPaths []string
		setupMocks    func(*MockStorageInterface, *MockTracingInterface, []string)
		expectedErr   error
	}{
		{
			name: "Success",
			input: &UpdateResourceRequest{
				Name:   strPtr("warehouse-v2"),
				Active: boolPtr(false),
			},
			expectedPaths: []string{"name", "active"},
			setupMocks: func(storageMock *MockStorageInterface, tracer *MockTracingInterface, paths []string) {
				tracer.EXPECT().Start(gomock.Any(), "connection.Service.UpdateResource").Return(context.Background(), trace.SpanFromContext(context.Background()))
				storageMock.EXPECT().UpdateConnectionResource(gomock.Any(), gomock.Any(), paths).Return(nil)
				storageMock.EXPECT().GetConnectionResourceByID(gomock.Any(), "resource-1").Return(
					&types.ConnectionResource{ID: "resource-1", Name: "warehouse-v2"}, nil,
				)
			},
		},
		{
			name: "AllFields",
			input: &UpdateResourceRequest{
				Name:                 strPtr("warehouse-v2"),
				Description:          strPtr("primary analytics store"),
				Active:               boolPtr(true),
				Platform:             strPtr("mysql"),
				ConnectionProperties: &types.ConnectionProperties{Type: "mysql", Host: "10.0.0.6"},
				RootFileSystem:       strPtr("/srv/data"),
			},
			expectedPaths: []string{"name", "description", "active", "platform", "connection_properties", "root_file_system"},
			setupMocks: func(storageMock *MockStorageInterface, tracer *MockTracingInterface, paths []string) {
				tracer.EXPECT().Start(gomock.Any(), "connection.Service.UpdateResource").Return(context.Background(), trace.SpanFromContext(context.Background()))
				storageMock.EXPECT().UpdateConnectionResource(gomock.Any(), gomock.Any(), paths).Return(nil)
				storageMock.EXPECT().GetConnectionResourceByID(gomock.Any(), "resource-1").Return(
					&types.ConnectionResource{ID: "resource-1"}, nil,
				)
			},
		},
		{
			name:          "NotFound",
			input:         &UpdateResourceRequest{Name: strPtr("warehouse-v2")},
			expectedPaths: []string{"name"},
			setupMocks: func(storageMock *MockStorageInterface, tracer *MockTracingInterface, paths []string) {
				tracer.EXPECT().Start(gomock.Any(), "connection.Service.UpdateResource").Return(context.Background(), trace.SpanFromContext(context.Background()))
				storageMock.EXPECT().UpdateConnectionResource(gomock.Any(), gomock.Any(), paths).Return(storage.ErrNotFound)
			},
			expectedErr: storage.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			tc.setupMocks(mockStorage, mockTracer, tc.expectedPaths)

			s := NewService(mockStorage, mockTracer, mockMonitor, mockLogger)

			_, err := s.UpdateResource(context.Background(), "resource-1", tc.input)

			if !errors.Is(err, tc.expectedErr) {
				t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
			}
		})
	}
}

func TestService_GetResource(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	mockTracer.EXPECT().Start(gomock.Any(), "connection.Service.GetResource").Return(context.Background(), trace.SpanFromContext(context.Background()))
	mockStorage.EXPECT().GetConnectionResourceByID(gomock.Any(), "resource-1").Return(
		&types.ConnectionResource{ID: "resource-1", Name: "warehouse"}, nil,
	)

	s := NewService(mockStorage, mockTracer, mockMonitor, mockLogger)

	resource, err := s.GetResource(context.Background(), "resource-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if resource.Name != "warehouse" {
		t.Fatalf("unexpected name %q", resource.Name)
	}
}

func TestService_DeleteResource(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	mockTracer.EXPECT().Start(gomock.Any(), "connection.Service.DeleteResource").Return(context.Background(), trace.SpanFromContext(context.Background()))
	mockStorage.EXPECT().DeleteConnectionResource(gomock.Any(), "resource-1").Return(storage.ErrNotFound)

	s := NewService(mockStorage, mockTracer, mockMonitor, mockLogger)

	if err := s.DeleteResource(context.Background(), "resource-1"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
