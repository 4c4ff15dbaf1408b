// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/tenant-manager/internal/storage"
	"github.com/canonical/tenant-manager/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package tenant -destination ./mock_tenant.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package tenant -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package tenant -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package tenant -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func strPtr(s string) *string {
	return &s
}

func TestService_CreateTenant(t *testing.T) {
	createdTenant := &types.Tenant{ID: "tenant-123", UniqueName: "acme", Active: true}
	newUser := &NewUserInput{
		FirstName:           "Jane",
		LastName:            "Doe",
		PrimaryEmailAddress: "jane@example.com",
		Password:            "password123",
	}

	testCases := []struct {
		name        string
		req         *CreateTenantRequest
		setupMocks  func(*MockStorageInterface, *MockTxRunnerInterface, *MockPasswordHasherInterface, *MockEmailVerifierInterface)
		expectedErr error
	}{
		{
			name: "success - no primary contact",
			req:  &CreateTenantRequest{UniqueName: "acme", Address: "1 Main St"},
			setupMocks: func(mockStorage *MockStorageInterface, mockTx *MockTxRunnerInterface, mockHasher *MockPasswordHasherInterface, mockVerifier *MockEmailVerifierInterface) {
				mockTx.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, fn func(context.Context) error) error {
						return fn(ctx)
					})
				mockStorage.EXPECT().CreateTenant(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, tenant *types.Tenant) (*types.Tenant, error) {
						if tenant.UniqueName != "acme" {
							return nil, errors.New("wrong unique name")
						}
						if !tenant.Active {
							return nil, errors.New("should be active")
						}
						if tenant.Status != types.TenantStatusActive {
							return nil, errors.New("should default to active status")
						}
						return createdTenant, nil
					})
			},
		},
		{
			name: "success - primary contact created in the same transaction",
			req: &CreateTenantRequest{
				UniqueName:     "acme",
				Address:        "1 Main St",
				PrimaryContact: &LinkUserRequest{NewUser: newUser},
			},
			setupMocks: func(mockStorage *MockStorageInterface, mockTx *MockTxRunnerInterface, mockHasher *MockPasswordHasherInterface, mockVerifier *MockEmailVerifierInterface) {
				mockHasher.EXPECT().Hash("password123").Return("hashed", nil)
				mockTx.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, fn func(context.Context) error) error {
						return fn(ctx)
					})
				mockStorage.EXPECT().CreateTenant(gomock.Any(), gomock.Any()).Return(createdTenant, nil)
				mockStorage.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, u *types.User) (*types.User, error) {
						if u.PasswordHash != "hashed" {
							return nil, errors.New("expected prehashed password")
						}
						u.ID = "user-1"
						return u, nil
					})
				mockStorage.EXPECT().SetTenantPrimaryContact(gomock.Any(), "tenant-123", gomock.Any()).Return(nil)
				mockVerifier.EXPECT().SendVerificationEmail(gomock.Any(), "user-1").Return(nil)
			},
		},
		{
			name: "error - primary contact with roles",
			req: &CreateTenantRequest{
				UniqueName: "acme",
				Address:    "1 Main St",
				PrimaryContact: &LinkUserRequest{
					NewUser: newUser,
					Roles:   types.RoleList{types.TeamRoleAdmin},
				},
			},
			setupMocks:  func(*MockStorageInterface, *MockTxRunnerInterface, *MockPasswordHasherInterface, *MockEmailVerifierInterface) {},
			expectedErr: ErrInvalidRole,
		},
		{
			name: "error - duplicate unique name",
			req:  &CreateTenantRequest{UniqueName: "acme", Address: "1 Main St"},
			setupMocks: func(mockStorage *MockStorageInterface, mockTx *MockTxRunnerInterface, mockHasher *MockPasswordHasherInterface, mockVerifier *MockEmailVerifierInterface) {
				mockTx.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, fn func(context.Context) error) error {
						return fn(ctx)
					})
				mockStorage.EXPECT().CreateTenant(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey)
			},
			expectedErr: storage.ErrDuplicateKey,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockTx := NewMockTxRunnerInterface(ctrl)
			mockHasher := NewMockPasswordHasherInterface(ctrl)
			mockVerifier := NewMockEmailVerifierInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			s := NewService(mockStorage, mockTx, mockHasher, mockVerifier, Config{AutoSendVerification: true}, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "tenant.Service.CreateTenant").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage, mockTx, mockHasher, mockVerifier)

			tenant, err := s.CreateTenant(context.Background(), tc.req)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if tenant == nil {
				t.Error("expected tenant but got nil")
			}
		})
	}
}

func TestService_LinkUser(t *testing.T) {
	tenantID := "tenant-123"
	userID := "user-456"
	newUser := &NewUserInput{
		FirstName:           "Jane",
		LastName:            "Doe",
		PrimaryEmailAddress: "jane@example.com",
		Password:            "password123",
	}

	testCases := []struct {
		name        string
		kind        types.RelationKind
		req         *LinkUserRequest
		setupMocks  func(*MockStorageInterface, *MockTxRunnerInterface, *MockPasswordHasherInterface, *MockEmailVerifierInterface, *MockLoggerInterface)
		expectedErr error
	}{
		{
			name: "success - new user as team member",
			kind: types.RelationTeamMember,
			req: &LinkUserRequest{
				NewUser: newUser,
				Roles:   types.RoleList{types.TeamRoleAdmin, types.TeamRoleMarketing},
			},
			setupMocks: func(mockStorage *MockStorageInterface, mockTx *MockTxRunnerInterface, mockHasher *MockPasswordHasherInterface, mockVerifier *MockEmailVerifierInterface, mockLogger *MockLoggerInterface) {
				mockHasher.EXPECT().Hash("password123").Return("hashed", nil)
				mockTx.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, fn func(context.Context) error) error {
						return fn(ctx)
					})
				mockStorage.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, u *types.User) (*types.User, error) {
						u.ID = userID
						return u, nil
					})
				mockStorage.EXPECT().AddTeamMember(gomock.Any(), tenantID, userID, types.RoleList{types.TeamRoleAdmin, types.TeamRoleMarketing}).Return("relation-1", nil)
				mockVerifier.EXPECT().SendVerificationEmail(gomock.Any(), userID).Return(nil)
			},
		},
		{
			name: "success - existing user as account officer",
			kind: types.RelationAccountOfficer,
			req: &LinkUserRequest{
				UserID: strPtr(userID),
				Roles:  types.RoleList{types.OfficerRoleManager},
			},
			setupMocks: func(mockStorage *MockStorageInterface, mockTx *MockTxRunnerInterface, mockHasher *MockPasswordHasherInterface, mockVerifier *MockEmailVerifierInterface, mockLogger *MockLoggerInterface) {
				mockTx.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, fn func(context.Context) error) error {
						return fn(ctx)
					})
				mockStorage.EXPECT().GetUserByID(gomock.Any(), userID).Return(&types.User{ID: userID, PrimaryEmailAddress: "jane@example.com"}, nil)
				mockStorage.EXPECT().AddAccountOfficer(gomock.Any(), tenantID, userID, types.RoleList{types.OfficerRoleManager}).Return("relation-1", nil)
			},
		},
		{
			name: "success - verification mail failure only logged",
			kind: types.RelationTeamMember,
			req: &LinkUserRequest{
				NewUser: newUser,
				Roles:   types.RoleList{types.TeamRoleAdmin},
			},
			setupMocks: func(mockStorage *MockStorageInterface, mockTx *MockTxRunnerInterface, mockHasher *MockPasswordHasherInterface, mockVerifier *MockEmailVerifierInterface, mockLogger *MockLoggerInterface) {
				mockHasher.EXPECT().Hash("password123").Return("hashed", nil)
				mockTx.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, fn func(context.Context) error) error {
						return fn(ctx)
					})
				mockStorage.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, u *types.User) (*types.User, error) {
						u.ID = userID
						return u, nil
					})
				mockStorage.EXPECT().AddTeamMember(gomock.Any(), tenantID, userID, gomock.Any()).Return("relation-1", nil)
				mockVerifier.EXPECT().SendVerificationEmail(gomock.Any(), userID).Return(errors.New("smtp down"))
				mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any(), gomock.Any())
			},
		},
		{
			name:        "error - neither new user nor user id",
			kind:        types.RelationTeamMember,
			req:         &LinkUserRequest{Roles: types.RoleList{types.TeamRoleAdmin}},
			setupMocks:  func(*MockStorageInterface, *MockTxRunnerInterface, *MockPasswordHasherInterface, *MockEmailVerifierInterface, *MockLoggerInterface) {},
			expectedErr: ErrInvalidLinkRequest,
		},
		{
			name: "error - both new user and user id",
			kind: types.RelationTeamMember,
			req: &LinkUserRequest{
				NewUser: newUser,
				UserID:  strPtr(userID),
				Roles:   types.RoleList{types.TeamRoleAdmin},
			},
			setupMocks:  func(*MockStorageInterface, *MockTxRunnerInterface, *MockPasswordHasherInterface, *MockEmailVerifierInterface, *MockLoggerInterface) {},
			expectedErr: ErrInvalidLinkRequest,
		},
		{
			name: "error - role not allowed for kind",
			kind: types.RelationTeamMember,
			req: &LinkUserRequest{
				UserID: strPtr(userID),
				Roles:  types.RoleList{types.OfficerRoleManager},
			},
			setupMocks:  func(*MockStorageInterface, *MockTxRunnerInterface, *MockPasswordHasherInterface, *MockEmailVerifierInterface, *MockLoggerInterface) {},
			expectedErr: ErrInvalidRole,
		},
		{
			name: "error - no roles for team member",
			kind: types.RelationTeamMember,
			req: &LinkUserRequest{
				UserID: strPtr(userID),
			},
			setupMocks:  func(*MockStorageInterface, *MockTxRunnerInterface, *MockPasswordHasherInterface, *MockEmailVerifierInterface, *MockLoggerInterface) {},
			expectedErr: ErrInvalidRole,
		},
		{
			name: "error - relation already exists rolls back the new user",
			kind: types.RelationTeamMember,
			req: &LinkUserRequest{
				NewUser: newUser,
				Roles:   types.RoleList{types.TeamRoleAdmin},
			},
			setupMocks: func(mockStorage *MockStorageInterface, mockTx *MockTxRunnerInterface, mockHasher *MockPasswordHasherInterface, mockVerifier *MockEmailVerifierInterface, mockLogger *MockLoggerInterface) {
				mockHasher.EXPECT().Hash("password123").Return("hashed", nil)
				mockTx.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, fn func(context.Context) error) error {
						return fn(ctx)
					})
				mockStorage.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, u *types.User) (*types.User, error) {
						u.ID = userID
						return u, nil
					})
				mockStorage.EXPECT().AddTeamMember(gomock.Any(), tenantID, userID, gomock.Any()).Return("", storage.ErrDuplicateKey)
			},
			expectedErr: storage.ErrDuplicateKey,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockTx := NewMockTxRunnerInterface(ctrl)
			mockHasher := NewMockPasswordHasherInterface(ctrl)
			mockVerifier := NewMockEmailVerifierInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			s := NewService(mockStorage, mockTx, mockHasher, mockVerifier, Config{AutoSendVerification: true}, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "tenant.Service.LinkUser").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage, mockTx, mockHasher, mockVerifier, mockLogger)

			user, err := s.LinkUser(context.Background(), tenantID, tc.kind, tc.req)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if user == nil {
				t.Fatal("expected sanitized user but got nil")
			}
			if user.ID != userID {
				t.Errorf("expected user ID %s, got %s", userID, user.ID)
			}
		})
	}
}

func TestService_UnlinkUser(t *testing.T) {
	tenantID := "tenant-123"
	userID := "user-456"

	testCases := []struct {
		name        string
		kind        types.RelationKind
		setupMocks  func(*MockStorageInterface)
		expectedErr error
	}{
		{
			name: "primary contact cleared on the tenant row",
			kind: types.RelationPrimaryContact,
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().SetTenantPrimaryContact(gomock.Any(), tenantID, nil).Return(nil)
			},
		},
		{
			name: "team member removed",
			kind: types.RelationTeamMember,
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().RemoveTeamMember(gomock.Any(), tenantID, userID).Return(nil)
			},
		},
		{
			name: "account officer removed",
			kind: types.RelationAccountOfficer,
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().RemoveAccountOfficer(gomock.Any(), tenantID, userID).Return(nil)
			},
		},
		{
			name: "not linked",
			kind: types.RelationTeamMember,
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().RemoveTeamMember(gomock.Any(), tenantID, userID).Return(storage.ErrNotLinked)
			},
			expectedErr: storage.ErrNotLinked,
		},
		{
			name:        "invalid kind",
			kind:        types.RelationKind("owner"),
			setupMocks:  func(*MockStorageInterface) {},
			expectedErr: ErrInvalidRelationKind,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockTx := NewMockTxRunnerInterface(ctrl)
			mockHasher := NewMockPasswordHasherInterface(ctrl)
			mockVerifier := NewMockEmailVerifierInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			s := NewService(mockStorage, mockTx, mockHasher, mockVerifier, Config{}, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "tenant.Service.UnlinkUser").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage)

			err := s.UnlinkUser(context.Background(), tenantID, tc.kind, userID)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestService_UpdateRelationRoles(t *testing.T) {
	tenantID := "tenant-123"
	userID := "user-456"

	testCases := []struct {
		name        string
		kind        types.RelationKind
		roles       types.RoleList
		setupMocks  func(*MockStorageInterface)
		expectedErr error
	}{
		{
			name:  "team member roles replaced",
			kind:  types.RelationTeamMember,
			roles: types.RoleList{types.TeamRoleContentManager},
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().UpdateTeamMemberRoles(gomock.Any(), tenantID, userID, types.RoleList{types.TeamRoleContentManager}).Return(nil)
			},
		},
		{
			name:  "account officer roles replaced",
			kind:  types.RelationAccountOfficer,
			roles: types.RoleList{types.OfficerRoleTechSupport},
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().UpdateAccountOfficerRoles(gomock.Any(), tenantID, userID, types.RoleList{types.OfficerRoleTechSupport}).Return(nil)
			},
		},
		{
			name:        "primary contact carries no roles",
			kind:        types.RelationPrimaryContact,
			roles:       types.RoleList{types.TeamRoleAdmin},
			setupMocks:  func(*MockStorageInterface) {},
			expectedErr: ErrInvalidRole,
		},
		{
			name:        "role outside the closed set",
			kind:        types.RelationAccountOfficer,
			roles:       types.RoleList{"superuser"},
			setupMocks:  func(*MockStorageInterface) {},
			expectedErr: ErrInvalidRole,
		},
		{
			name:  "relation missing",
			kind:  types.RelationTeamMember,
			roles: types.RoleList{types.TeamRoleAdmin},
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().UpdateTeamMemberRoles(gomock.Any(), tenantID, userID, gomock.Any()).Return(storage.ErrNotLinked)
			},
			expectedErr: storage.ErrNotLinked,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockTx := NewMockTxRunnerInterface(ctrl)
			mockHasher := NewMockPasswordHasherInterface(ctrl)
			mockVerifier := NewMockEmailVerifierInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			s := NewService(mockStorage, mockTx, mockHasher, mockVerifier, Config{}, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "tenant.Service.UpdateRelationRoles").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage)

			err := s.UpdateRelationRoles(context.Background(), tenantID, tc.kind, userID, tc.roles)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestService_UpdateTenant(t *testing.T) {
	tenantID := "tenant-123"
	updated := &types.Tenant{ID: tenantID, UniqueName: "acme-renamed", Active: true}

	testCases := []struct {
		name        string
		setupMocks  func(*MockStorageInterface)
		expectedErr bool
	}{
		{
			name: "success",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().UpdateTenant(gomock.Any(), gomock.Any(), []string{"unique_name", "status"}).Return(nil)
				mockStorage.EXPECT().GetTenantByID(gomock.Any(), tenantID).Return(updated, nil)
			},
		},
		{
			name: "update error",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().UpdateTenant(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("storage error"))
			},
			expectedErr: true,
		},
		{
			name: "get error",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().UpdateTenant(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				mockStorage.EXPECT().GetTenantByID(gomock.Any(), tenantID).Return(nil, storage.ErrNotFound)
			},
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockTx := NewMockTxRunnerInterface(ctrl)
			mockHasher := NewMockPasswordHasherInterface(ctrl)
			mockVerifier := NewMockEmailVerifierInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			s := NewService(mockStorage, mockTx, mockHasher, mockVerifier, Config{}, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "tenant.Service.UpdateTenant").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage)

			result, err := s.UpdateTenant(context.Background(), tenantID, &UpdateTenantRequest{
				UniqueName: strPtr("acme-renamed"),
				Status:     strPtr("suspended"),
			})

			if tc.expectedErr {
				if err == nil {
					t.Error("expected error but got none")
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if result == nil {
				t.Error("expected tenant but got nil")
			}
		})
	}
}

func TestService_SetCustomTheme(t *testing.T) {
	tenantID := "tenant-123"
	created := &types.CustomTheme{ID: "theme-1", Name: "corporate"}

	testCases := []struct {
		name        string
		setupMocks  func(*MockStorageInterface, *MockTxRunnerInterface)
		expectedErr bool
	}{
		{
			name: "success",
			setupMocks: func(mockStorage *MockStorageInterface, mockTx *MockTxRunnerInterface) {
				mockTx.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, fn func(context.Context) error) error {
						return fn(ctx)
					})
				mockStorage.EXPECT().CreateCustomTheme(gomock.Any(), gomock.Any()).Return(created, nil)
				mockStorage.EXPECT().SetTenantCustomTheme(gomock.Any(), tenantID, &created.ID).Return(nil)
			},
		},
		{
			name: "create error aborts the transaction",
			setupMocks: func(mockStorage *MockStorageInterface, mockTx *MockTxRunnerInterface) {
				mockTx.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, fn func(context.Context) error) error {
						return fn(ctx)
					})
				mockStorage.EXPECT().CreateCustomTheme(gomock.Any(), gomock.Any()).Return(nil, errors.New("storage error"))
			},
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockTx := NewMockTxRunnerInterface(ctrl)
			mockHasher := NewMockPasswordHasherInterface(ctrl)
			mockVerifier := NewMockEmailVerifierInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			s := NewService(mockStorage, mockTx, mockHasher, mockVerifier, Config{}, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "tenant.Service.SetCustomTheme").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage, mockTx)

			theme, err := s.SetCustomTheme(context.Background(), tenantID, &CustomThemeRequest{Name: "corporate"})

			if tc.expectedErr {
				if err == nil {
					t.Error("expected error but got none")
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if theme == nil || theme.ID != created.ID {
				t.Errorf("expected theme %v, got %v", created, theme)
			}
		})
	}
}

func TestService_UnsetCustomTheme(t *testing.T) {
	tenantID := "tenant-123"
	themeID := "theme-1"

	testCases := []struct {
		name        string
		setupMocks  func(*MockStorageInterface, *MockTxRunnerInterface)
		expectedErr bool
	}{
		{
			name: "success - theme detached and deleted",
			setupMocks: func(mockStorage *MockStorageInterface, mockTx *MockTxRunnerInterface) {
				mockStorage.EXPECT().GetTenantByID(gomock.Any(), tenantID).Return(&types.Tenant{ID: tenantID, CustomThemeID: &themeID}, nil)
				mockTx.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, fn func(context.Context) error) error {
						return fn(ctx)
					})
				mockStorage.EXPECT().SetTenantCustomTheme(gomock.Any(), tenantID, nil).Return(nil)
				mockStorage.EXPECT().DeleteCustomTheme(gomock.Any(), themeID).Return(nil)
			},
		},
		{
			name: "no custom theme is a no-op",
			setupMocks: func(mockStorage *MockStorageInterface, mockTx *MockTxRunnerInterface) {
				mockStorage.EXPECT().GetTenantByID(gomock.Any(), tenantID).Return(&types.Tenant{ID: tenantID}, nil)
			},
		},
		{
			name: "tenant not found",
			setupMocks: func(mockStorage *MockStorageInterface, mockTx *MockTxRunnerInterface) {
				mockStorage.EXPECT().GetTenantByID(gomock.Any(), tenantID).Return(nil, storage.ErrNotFound)
			},
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockTx := NewMockTxRunnerInterface(ctrl)
			mockHasher := NewMockPasswordHasherInterface(ctrl)
			mockVerifier := NewMockEmailVerifierInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			s := NewService(mockStorage, mockTx, mockHasher, mockVerifier, Config{}, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "tenant.Service.UnsetCustomTheme").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage, mockTx)

			err := s.UnsetCustomTheme(context.Background(), tenantID)

			if tc.expectedErr {
				if err == nil {
					t.Error("expected error but got none")
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestService_AddBilling(t *testing.T) {
	tenantID := "tenant-123"
	created := &types.Billing{ID: "billing-1", TenantID: &tenantID, Code: "INV-001"}

	testCases := []struct {
		name        string
		setupMocks  func(*MockStorageInterface)
		expectedErr error
	}{
		{
			name: "success",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().CreateBilling(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, b *types.Billing) (*types.Billing, error) {
						if b.TenantID == nil || *b.TenantID != tenantID {
							return nil, errors.New("wrong tenant id")
						}
						return created, nil
					})
			},
		},
		{
			name: "duplicate code",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().CreateBilling(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey)
			},
			expectedErr: storage.ErrDuplicateKey,
		},
		{
			name: "unknown tenant",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().CreateBilling(gomock.Any(), gomock.Any()).Return(nil, storage.ErrForeignKeyViolation)
			},
			expectedErr: storage.ErrForeignKeyViolation,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockTx := NewMockTxRunnerInterface(ctrl)
			mockHasher := NewMockPasswordHasherInterface(ctrl)
			mockVerifier := NewMockEmailVerifierInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			s := NewService(mockStorage, mockTx, mockHasher, mockVerifier, Config{}, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "tenant.Service.AddBilling").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage)

			billing, err := s.AddBilling(context.Background(), tenantID, &BillingRequest{Code: "INV-001", Type: "invoice", Status: "pending"})

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if billing == nil {
				t.Error("expected billing but got nil")
			}
		})
	}
}

func TestService_LinkBilling(t *testing.T) {
	tenantID := "tenant-123"

	testCases := []struct {
		name        string
		setupMocks  func(*MockStorageInterface)
		expectedErr error
	}{
		{
			name: "success",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().SetBillingTenant(gomock.Any(), "billing-1", gomock.Any()).DoAndReturn(
					func(_ context.Context, billingID string, id *string) error {
						if id == nil || *id != tenantID {
							return errors.New("wrong tenant id")
						}
						return nil
					})
			},
		},
		{
			name: "unknown billing",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().SetBillingTenant(gomock.Any(), "billing-1", gomock.Any()).Return(storage.ErrNotFound)
			},
			expectedErr: storage.ErrNotFound,
		},
		{
			name: "unknown tenant",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().SetBillingTenant(gomock.Any(), "billing-1", gomock.Any()).Return(storage.ErrForeignKeyViolation)
			},
			expectedErr: storage.ErrForeignKeyViolation,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockTx := NewMockTxRunnerInterface(ctrl)
			mockHasher := NewMockPasswordHasherInterface(ctrl)
			mockVerifier := NewMockEmailVerifierInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			s := NewService(mockStorage, mockTx, mockHasher, mockVerifier, Config{}, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "tenant.Service.LinkBilling").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage)

			err := s.LinkBilling(context.Background(), tenantID, "billing-1")

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestService_RemoveBilling(t *testing.T) {
	testCases := []struct {
		name        string
		setupMocks  func(*MockStorageInterface)
		expectedErr error
	}{
		{
			name: "detaches without deleting",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().SetBillingTenant(gomock.Any(), "billing-1", gomock.Nil()).Return(nil)
			},
		},
		{
			name: "unknown billing",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().SetBillingTenant(gomock.Any(), "billing-1", gomock.Nil()).Return(storage.ErrNotFound)
			},
			expectedErr: storage.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockTx := NewMockTxRunnerInterface(ctrl)
			mockHasher := NewMockPasswordHasherInterface(ctrl)
			mockVerifier := NewMockEmailVerifierInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			s := NewService(mockStorage, mockTx, mockHasher, mockVerifier, Config{}, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "tenant.Service.RemoveBilling").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage)

			err := s.RemoveBilling(context.Background(), "billing-1")

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestService_UploadLogo(t *testing.T) {
	tenantID := "tenant-123"

	testCases := []struct {
		name        string
		setupMocks  func(*MockStorageInterface)
		expectedErr bool
	}{
		{
			name: "success",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetTenantByID(gomock.Any(), tenantID).Return(&types.Tenant{ID: tenantID}, nil)
				mockStorage.EXPECT().SetTenantLogo(gomock.Any(), tenantID, gomock.Any(), "image/png").Return(nil)
			},
		},
		{
			name: "tenant not found before anything hits disk",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetTenantByID(gomock.Any(), tenantID).Return(nil, storage.ErrNotFound)
			},
			expectedErr: true,
		},
		{
			name: "storage failure removes the written file",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetTenantByID(gomock.Any(), tenantID).Return(&types.Tenant{ID: tenantID}, nil)
				mockStorage.EXPECT().SetTenantLogo(gomock.Any(), tenantID, gomock.Any(), "image/png").Return(errors.New("storage error"))
			},
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockTx := NewMockTxRunnerInterface(ctrl)
			mockHasher := NewMockPasswordHasherInterface(ctrl)
			mockVerifier := NewMockEmailVerifierInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			uploadDir := t.TempDir()
			s := NewService(mockStorage, mockTx, mockHasher, mockVerifier, Config{UploadDir: uploadDir}, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "tenant.Service.UploadLogo").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage)

			err := s.UploadLogo(context.Background(), tenantID, strings.NewReader("png-bytes"), "image/png")

			if tc.expectedErr {
				if err == nil {
					t.Error("expected error but got none")
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}

			entries, readErr := os.ReadDir(filepath.Join(uploadDir, "logos"))
			if readErr != nil {
				t.Fatalf("failed to read upload dir: %v", readErr)
			}
			if len(entries) != 1 {
				t.Errorf("expected 1 stored logo, got %d", len(entries))
			}
		})
	}
}

func TestService_DownloadLogo(t *testing.T) {
	tenantID := "tenant-123"
	fileName := "logo-file"
	mimeType := "image/png"

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStorage := NewMockStorageInterface(ctrl)
		mockTx := NewMockTxRunnerInterface(ctrl)
		mockHasher := NewMockPasswordHasherInterface(ctrl)
		mockVerifier := NewMockEmailVerifierInterface(ctrl)
		mockTracer := NewMockTracingInterface(ctrl)
		mockLogger := NewMockLoggerInterface(ctrl)
		mockMonitor := NewMockMonitorInterface(ctrl)

		uploadDir := t.TempDir()
		if err := os.MkdirAll(filepath.Join(uploadDir, "logos"), 0o750); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(uploadDir, "logos", fileName), []byte("png-bytes"), 0o600); err != nil {
			t.Fatal(err)
		}

		s := NewService(mockStorage, mockTx, mockHasher, mockVerifier, Config{UploadDir: uploadDir}, mockTracer, mockMonitor, mockLogger)

		mockTracer.EXPECT().Start(gomock.Any(), "tenant.Service.DownloadLogo").Return(context.Background(), trace.SpanFromContext(context.Background()))
		mockStorage.EXPECT().GetTenantByID(gomock.Any(), tenantID).Return(&types.Tenant{ID: tenantID, Logo: &fileName, LogoMimeType: &mimeType}, nil)

		logo, gotMime, err := s.DownloadLogo(context.Background(), tenantID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer logo.Close()

		if gotMime != mimeType {
			t.Errorf("expected mime type %s, got %s", mimeType, gotMime)
		}
	})

	t.Run("no logo stored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStorage := NewMockStorageInterface(ctrl)
		mockTx := NewMockTxRunnerInterface(ctrl)
		mockHasher := NewMockPasswordHasherInterface(ctrl)
		mockVerifier := NewMockEmailVerifierInterface(ctrl)
		mockTracer := NewMockTracingInterface(ctrl)
		mockLogger := NewMockLoggerInterface(ctrl)
		mockMonitor := NewMockMonitorInterface(ctrl)

		s := NewService(mockStorage, mockTx, mockHasher, mockVerifier, Config{UploadDir: t.TempDir()}, mockTracer, mockMonitor, mockLogger)

		mockTracer.EXPECT().Start(gomock.Any(), "tenant.Service.DownloadLogo").Return(context.Background(), trace.SpanFromContext(context.Background()))
		mockStorage.EXPECT().GetTenantByID(gomock.Any(), tenantID).Return(&types.Tenant{ID: tenantID}, nil)

		_, _, err := s.DownloadLogo(context.Background(), tenantID)
		if !errors.Is(err, ErrNoLogo) {
			t.Errorf("expected ErrNoLogo, got %v", err)
		}
	})

	t.Run("stored file missing on disk", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStorage := NewMockStorageInterface(ctrl)
		mockTx := NewMockTxRunnerInterface(ctrl)
		mockHasher := NewMockPasswordHasherInterface(ctrl)
		mockVerifier := NewMockEmailVerifierInterface(ctrl)
		mockTracer := NewMockTracingInterface(ctrl)
		mockLogger := NewMockLoggerInterface(ctrl)
		mockMonitor := NewMockMonitorInterface(ctrl)

		s := NewService(mockStorage, mockTx, mockHasher, mockVerifier, Config{UploadDir: t.TempDir()}, mockTracer, mockMonitor, mockLogger)

		mockTracer.EXPECT().Start(gomock.Any(), "tenant.Service.DownloadLogo").Return(context.Background(), trace.SpanFromContext(context.Background()))
		mockStorage.EXPECT().GetTenantByID(gomock.Any(), tenantID).Return(&types.Tenant{ID: tenantID, Logo: &fileName}, nil)

		_, _, err := s.DownloadLogo(context.Background(), tenantID)
		if !errors.Is(err, ErrNoLogo) {
			t.Errorf("expected ErrNoLogo, got %v", err)
		}
	})
}
