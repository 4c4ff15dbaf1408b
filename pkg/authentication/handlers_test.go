// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	httpTypes "github.com/canonical/tenant-manager/internal/http/types"
	"github.com/canonical/tenant-manager/internal/types"
)

func TestAPI_Login(t *testing.T) {
	testCases := []struct {
		name            string
		body            string
		setupMocks      func(*MockServiceInterface, *MockTracingInterface, *MockLoggerInterface)
		expectedCode    int
		expectedMessage string
	}{
		{
			name: "Success",
			body: `{"email":"ada@example.com","password":"password123"}`,
			setupMocks: func(service *MockServiceInterface, tracer *MockTracingInterface, logger *MockLoggerInterface) {
				tracer.EXPECT().Start(gomock.Any(), "authentication.API.login").Return(context.Background(), trace.SpanFromContext(context.Background()))
				service.EXPECT().ValidateUser(gomock.Any(), "ada@example.com", "password123").Return(
					&types.SanitizedUser{ID: "user-1", PrimaryEmailAddress: "ada@example.com"}, nil,
				)
			},
			expectedCode:    http.StatusOK,
			expectedMessage: "login successful",
		},
		{
			name: "InvalidCredentials",
			body: `{"email":"ada@example.com","password":"wrong"}`,
			setupMocks: func(service *MockServiceInterface, tracer *MockTracingInterface, logger *MockLoggerInterface) {
				tracer.EXPECT().Start(gomock.Any(), "authentication.API.login").Return(context.Background(), trace.SpanFromContext(context.Background()))
				service.EXPECT().ValidateUser(gomock.Any(), "ada@example.com", "wrong").Return(nil, nil)
			},
			expectedCode:    http.StatusUnauthorized,
			expectedMessage: "invalid credentials",
		},
		{
			name: "InvalidJSON",
			body: `{"email":`,
			setupMocks: func(service *MockServiceInterface, tracer *MockTracingInterface, logger *MockLoggerInterface) {
				tracer.EXPECT().Start(gomock.Any(), "authentication.API.login").Return(context.Background(), trace.SpanFromContext(context.Background()))
			},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "invalid request body",
		},
		{
			name: "MissingPassword",
			body: `{"email":"ada@example.com"}`,
			setupMocks: func(service *MockServiceInterface, tracer *MockTracingInterface, logger *MockLoggerInterface) {
				tracer.EXPECT().Start(gomock.Any(), "authentication.API.login").Return(context.Background(), trace.SpanFromContext(context.Background()))
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "MalformedEmail",
			body: `{"email":"not-an-email","password":"password123"}`,
			setupMocks: func(service *MockServiceInterface, tracer *MockTracingInterface, logger *MockLoggerInterface) {
				tracer.EXPECT().Start(gomock.Any(), "authentication.API.login").Return(context.Background(), trace.SpanFromContext(context.Background()))
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "ServiceError",
			body: `{"email":"ada@example.com","password":"password123"}`,
			setupMocks: func(service *MockServiceInterface, tracer *MockTracingInterface, logger *MockLoggerInterface) {
				tracer.EXPECT().Start(gomock.Any(), "authentication.API.login").Return(context.Background(), trace.SpanFromContext(context.Background()))
				service.EXPECT().ValidateUser(gomock.Any(), "ada@example.com", "password123").Return(nil, errors.New("storage down"))
				logger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			expectedCode:    http.StatusInternalServerError,
			expectedMessage: "internal server error",
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

			req := httptest.NewRequest(http.MethodPost, "/api/v0/auth/login", strings.NewReader(tc.body))
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != tc.expectedCode {
				t.Fatalf("expected status %d, got %d: %s", tc.expectedCode, w.Code, w.Body.String())
			}

			if tc.expectedMessage != "" {
				var resp httpTypes.Response
				if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
					t.Fatalf("failed to decode response: %v", err)
				}
				if resp.Message != tc.expectedMessage {
					t.Fatalf("expected message %q, got %q", tc.expectedMessage, resp.Message)
				}
			}
		})
	}
}
