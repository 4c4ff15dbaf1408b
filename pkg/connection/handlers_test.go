// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package connection

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/tenant-manager/internal/storage"
	"github.com/canonical/tenant-manager/internal/types"
)

func TestAPI_CreateResource(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		setupMocks   func(*MockServiceInterface, *MockTracingInterface, *MockLoggerInterface)
		expectedCode int
	}{
		{
			name: "Success",
			body: `{"name":"warehouse","platform":"postgres","connection_properties":{"type":"postgres","host":"10.0.0.5","port":"5432"}}`,
			setupMocks: func(service *MockServiceInterface, tracer *MockTracingInterface, logger *MockLoggerInterface) {
				tracer.EXPECT().Start(gomock.Any(), "connection.API.createResource").Return(context.Background(), trace.SpanFromContext(context.Background()))
				service.EXPECT().CreateResource(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, req *ResourceRequest) (*types.ConnectionResource, error) {
						if req.ConnectionProperties.Host != "10.0.0.5" {
							t.Fatalf("unexpected host %q", req.ConnectionProperties.Host)
						}
						return &types.ConnectionResource{ID: "resource-1", Name: req.Name}, nil
					},
				)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "MissingPlatform",
			body: `{"name":"warehouse"}`,
			setupMocks: func(service *MockServiceInterface, tracer *MockTracingInterface, logger *MockLoggerInterface) {
				tracer.EXPECT().Start(gomock.Any(), "connection.API.createResource").Return(context.Background(), trace.SpanFromContext(context.Background()))
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "DuplicateResource",
			body: `{"name":"warehouse","platform":"postgres"}`,
			setupMocks: func(service *MockServiceInterface, tracer *MockTracingInterface, logger *MockLoggerInterface) {
				tracer.EXPECT().Start(gomock.Any(), "connection.API.createResource").Return(context.Background(), trace.SpanFromContext(context.Background()))
				service.EXPECT().CreateResource(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey)
				logger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			tc.setupMocks(mockService, mockTracer, mockLogger)

			mux := chi.NewMux()
			NewAPI(mockService, mockTracer, mockMonitor, mockLogger).RegisterEndpoints(mux)

			req := httptest.NewRequest(http.MethodPost, "/api/v0/connection-resources", strings.NewReader(tc.body))
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != tc.expectedCode {
				t.Fatalf("expected status %d, got %d: %s", tc.expectedCode, w.Code, w.Body.String())
			}
		})
	}
}

func TestAPI_GetResource(t *testing.T) {
	testCases := []struct {
		name         string
		setupMocks   func(*MockServiceInterface, *MockTracingInterface)
		expectedCode int
	}{
		{
			name: "Success",
			setupMocks: func(service *MockServiceInterface, tracer *MockTracingInterface) {
				tracer.EXPECT().Start(gomock.Any(), "connection.API.getResource").Return(context.Background(), trace.SpanFromContext(context.Background()))
				service.EXPECT().GetResource(gomock.Any(), "resource-1").Return(&types.ConnectionResource{ID: "resource-1"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "NotFound",
			setupMocks: func(service *MockServiceInterface, tracer *MockTracingInterface) {
				tracer.EXPECT().Start(gomock.Any(), "connection.API.getResource").Return(context.Background(), trace.SpanFromContext(context.Background()))
				service.EXPECT().GetResource(gomock.Any(), "resource-1").Return(nil, storage.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			tc.setupMocks(mockService, mockTracer)

			mux := chi.NewMux()
			NewAPI(mockService, mockTracer, mockMonitor, mockLogger).RegisterEndpoints(mux)

			req := httptest.NewRequest(http.MethodGet, "/api/v0/connection-resources/resource-1", nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != tc.expectedCode {
				t.Fatalf("expected status %d, got %d", tc.expectedCode, w.Code)
			}
		})
	}
}

func TestAPI_UpdateResource(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockServiceInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	mockTracer.EXPECT().Start(gomock.Any(), "connection.API.updateResource").Return(context.Background(), trace.SpanFromContext(context.Background()))
	mockService.EXPECT().UpdateResource(gomock.Any(), "resource-1", gomock.Any()).DoAndReturn(
		func(ctx context.Context, id string, req *UpdateResourceRequest) (*types.ConnectionResource, error) {
			if req.Name == nil || *req.Name != "warehouse-v2" {
				t.Fatalf("unexpected name %v", req.Name)
			}
			return &types.ConnectionResource{ID: id, Name: *req.Name}, nil
		},
	)

	mux := chi.NewMux()
	NewAPI(mockService, mockTracer, mockMonitor, mockLogger).RegisterEndpoints(mux)

	req := httptest.NewRequest(http.MethodPatch, "/api/v0/connection-resources/resource-1", strings.NewReader(`{"name":"warehouse-v2"}`))
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestAPI_ListResources(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockServiceInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	mockTracer.EXPECT().Start(gomock.Any(), "connection.API.listResources").Return(context.Background(), trace.SpanFromContext(context.Background()))
	mockService.EXPECT().ListResources(gomock.Any(), int64(1), int64(20)).Return([]*types.ConnectionResource{{ID: "resource-1"}}, nil)

	mux := chi.NewMux()
	NewAPI(mockService, mockTracer, mockMonitor, mockLogger).RegisterEndpoints(mux)

	req := httptest.NewRequest(http.MethodGet, "/api/v0/connection-resources?page=1&size=20", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
}

func TestAPI_DeleteResource(t *testing.T) {
	testCases := []struct {
		name         string
		setupMocks   func(*MockServiceInterface, *MockTracingInterface)
		expectedCode int
	}{
		{
			name: "Success",
			setupMocks: func(service *MockServiceInterface, tracer *MockTracingInterface) {
				tracer.EXPECT().Start(gomock.Any(), "connection.API.deleteResource").Return(context.Background(), trace.SpanFromContext(context.Background()))
				service.EXPECT().DeleteResource(gomock.Any(), "resource-1").Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "StillReferenced",
			setupMocks: func(service *MockServiceInterface, tracer *MockTracingInterface) {
				tracer.EXPECT().Start(gomock.Any(), "connection.API.deleteResource").Return(context.Background(), trace.SpanFromContext(context.Background()))
				service.EXPECT().DeleteResource(gomock.Any(), "resource-1").Return(storage.ErrForeignKeyViolation)
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			tc.setupMocks(mockService, mockTracer)

			mux := chi.NewMux()
			NewAPI(mockService, mockTracer, mockMonitor, mockLogger).RegisterEndpoints(mux)

			req := httptest.NewRequest(http.MethodDelete, "/api/v0/connection-resources/resource-1", nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != tc.expectedCode {
				t.Fatalf("expected status %d, got %d", tc.expectedCode, w.Code)
			}
		})
	}
}
