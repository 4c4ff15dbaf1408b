// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_authentication.go -source=./interfaces.go

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/tenant-manager/internal/logging"
	"github.com/canonical/tenant-manager/internal/storage"
	"github.com/canonical/tenant-manager/internal/types"
)

func TestService_ValidateUser(t *testing.T) {
	testCases := []struct {
		name         string
		setupMocks   func(*MockStorageInterface, *MockPasswordHasherInterface, *MockTracingInterface, *MockLoggerInterface)
		expectedUser bool
		expectedErr  bool
	}{
		{
			name: "Success",
			setupMocks: func(storageMock *MockStorageInterface, hasher *MockPasswordHasherInterface, tracer *MockTracingInterface, logger *MockLoggerInterface) {
				tracer.EXPECT().Start(gomock.Any(), "authentication.Service.ValidateUser").Return(context.Background(), trace.SpanFromContext(context.Background()))
				storageMock.EXPECT().GetUserByEmail(gomock.Any(), "ada@example.com").Return(
					&types.User{ID: "user-1", PrimaryEmailAddress: "ada@example.com", PasswordHash: "stored-hash"}, nil,
				)
				hasher.EXPECT().Compare("stored-hash", "password123").Return(true)
				logger.EXPECT().Security().Return(logging.NewNoopLogger().Security())
			},
			expectedUser: true,
		},
		{
			name: "UnknownEmail",
			setupMocks: func(storageMock *MockStorageInterface, hasher *MockPasswordHasherInterface, tracer *MockTracingInterface, logger *MockLoggerInterface) {
				tracer.EXPECT().Start(gomock.Any(), "authentication.Service.ValidateUser").Return(context.Background(), trace.SpanFromContext(context.Background()))
				storageMock.EXPECT().GetUserByEmail(gomock.Any(), "ada@example.com").Return(nil, storage.ErrNotFound)
				logger.EXPECT().Security().Return(logging.NewNoopLogger().Security())
			},
		},
		{
			name: "WrongPassword",
			setupMocks: func(storageMock *MockStorageInterface, hasher *MockPasswordHasherInterface, tracer *MockTracingInterface, logger *MockLoggerInterface) {
				tracer.EXPECT().Start(gomock.Any(), "authentication.Service.ValidateUser").Return(context.Background(), trace.SpanFromContext(context.Background()))
				storageMock.EXPECT().GetUserByEmail(gomock.Any(), "ada@example.com").Return(
					&types.User{ID: "user-1", PasswordHash: "stored-hash"}, nil,
				)
				hasher.EXPECT().Compare("stored-hash", "password123").Return(false)
				logger.EXPECT().Security().Return(logging.NewNoopLogger().Security())
			},
		},
		{
			name: "StorageFailure",
			setupMocks: func(storageMock *MockStorageInterface, hasher *MockPasswordHasherInterface, tracer *MockTracingInterface, logger *MockLoggerInterface) {
				tracer.EXPECT().Start(gomock.Any(), "authentication.Service.ValidateUser").Return(context.Background(), trace.SpanFromContext(context.Background()))
				storageMock.EXPECT().GetUserByEmail(gomock.Any(), "ada@example.com").Return(nil, errors.New("connection refused"))
			},
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockHasher := NewMockPasswordHasherInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			tc.setupMocks(mockStorage, mockHasher, mockTracer, mockLogger)

			s := NewService(mockStorage, mockHasher, mockTracer, mockMonitor, mockLogger)

			u, err := s.ValidateUser(context.Background(), "ada@example.com", "password123")

			if tc.expectedErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			if tc.expectedUser {
				if u == nil {
					t.Fatal("expected a user, got nil")
				}
				if u.ID != "user-1" {
					t.Fatalf("expected user-1, got %q", u.ID)
				}
			} else if u != nil {
				t.Fatalf("expected nil user, got %v", u)
			}
		})
	}
}
