// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/canonical/tenant-manager/internal/logging"
	"github.com/canonical/tenant-manager/internal/monitoring"
	"github.com/canonical/tenant-manager/internal/tracing"
	"github.com/canonical/tenant-manager/internal/types"
)

var (
	// ErrInvalidRelationKind is returned for a kind outside the closed set.
	ErrInvalidRelationKind = errors.New("invalid relation kind")
	// ErrInvalidRole is returned when a role tag is not allowed for the kind.
	ErrInvalidRole = errors.New("invalid role for relation kind")
	// ErrInvalidLinkRequest is returned when the link payload names neither or
	// both of a new user and an existing one.
	ErrInvalidLinkRequest = errors.New("exactly one of new_user and user_id must be provided")
)

var _ ServiceInterface = (*Service)(nil)

// Config carries the tenant-facing tunables the service needs.
type Config struct {
	UploadDir            string
	LogoSizeLimit        int64
	AutoSendVerification bool
}

type Service struct {
	storage  StorageInterface
	tx       TxRunnerInterface
	hasher   PasswordHasherInterface
	verifier EmailVerifierInterface
	config   Config

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	tx TxRunnerInterface,
	hasher PasswordHasherInterface,
	verifier EmailVerifierInterface,
	config Config,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:  storage,
		tx:       tx,
		hasher:   hasher,
		verifier: verifier,
		config:   config,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

// CreateTenant creates a tenant and, when the payload carries a primary
// contact, links it in the same transaction so a failed link leaves no
// half-created tenant behind.
func (s *Service) CreateTenant(ctx context.Context, req *CreateTenantRequest) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.CreateTenant")
	defer span.End()

	var prehashed string
	if req.PrimaryContact != nil {
		if err := validateLinkRequest(types.RelationPrimaryContact, req.PrimaryContact); err != nil {
			return nil, err
		}
		if req.PrimaryContact.NewUser != nil {
			hash, err := s.hasher.Hash(req.PrimaryContact.NewUser.Password)
			if err != nil {
				return nil, err
			}
			prehashed = hash
		}
	}

	registered := time.Now()
	if req.DateOfRegistration != nil {
		registered = *req.DateOfRegistration
	}

	status := types.TenantStatusActive
	if req.Status != nil {
		status = types.TenantStatus(*req.Status)
	}

	var (
		newTenant  *types.Tenant
		linkedUser *types.User
	)
	err := s.tx.WithTx(ctx, func(txCtx context.Context) error {
		t, err := s.storage.CreateTenant(txCtx, &types.Tenant{
			UniqueName:         req.UniqueName,
			Address:            req.Address,
			MoreInfo:           req.MoreInfo,
			Active:             true,
			DateOfRegistration: registered,
			Status:             status,
			CustomURLSlug:      req.CustomURLSlug,
			UniqueSchema:       req.UniqueSchema,
		})
		if err != nil {
			return err
		}
		newTenant = t

		if req.PrimaryContact != nil {
			u, err := s.linkUserTx(txCtx, t.ID, types.RelationPrimaryContact, req.PrimaryContact, prehashed)
			if err != nil {
				return err
			}
			linkedUser = u
			newTenant.PrimaryContactID = &u.ID
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.afterLink(ctx, req.PrimaryContact, linkedUser)

	return newTenant, nil
}

func (s *Service) GetTenant(ctx context.Context, id string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.GetTenant")
	defer span.End()

	return s.storage.GetTenantByID(ctx, id)
}

func (s *Service) GetTenantByUniqueName(ctx context.Context, uniqueName string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.GetTenantByUniqueName")
	defer span.End()

	return s.storage.GetTenantByUniqueName(ctx, uniqueName)
}

func (s *Service) ListTenants(ctx context.Context, page, size int64, active *bool) ([]*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.ListTenants")
	defer span.End()

	return s.storage.ListTenants(ctx, page, size, active)
}

func (s *Service) UpdateTenant(ctx context.Context, id string, req *UpdateTenantRequest) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.UpdateTenant")
	defer span.End()

	update := &types.Tenant{ID: id}
	var paths []string

	if req.UniqueName != nil {
		update.UniqueName = *req.UniqueName
		paths = append(paths, "unique_name")
	}
	if req.Address != nil {
		update.Address = *req.Address
		paths = append(paths, "address")
	}
	if req.MoreInfo != nil {
		update.MoreInfo = req.MoreInfo
		paths = append(paths, "more_info")
	}
	if req.Active != nil {
		update.Active = *req.Active
		paths = append(paths, "active")
	}
	if req.DateOfRegistration != nil {
		update.DateOfRegistration = *req.DateOfRegistration
		paths = append(paths, "date_of_registration")
	}
	if req.Status != nil {
		update.Status = types.TenantStatus(*req.Status)
		paths = append(paths, "status")
	}
	if req.CustomURLSlug != nil {
		update.CustomURLSlug = req.CustomURLSlug
		paths = append(paths, "custom_url_slug")
	}
	if req.UniqueSchema != nil {
		update.UniqueSchema = *req.UniqueSchema
		paths = append(paths, "unique_schema")
	}

	if err := s.storage.UpdateTenant(ctx, update, paths); err != nil {
		return nil, err
	}

	return s.storage.GetTenantByID(ctx, id)
}

func (s *Service) DeleteTenant(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.DeleteTenant")
	defer span.End()

	return s.storage.DeleteTenant(ctx, id)
}

// LinkUser links a user to a tenant as its primary contact, a team member or
// an account officer. A new user is created inside the same transaction as
// the relation row, so either both exist afterwards or neither does.
func (s *Service) LinkUser(ctx context.Context, tenantID string, kind types.RelationKind, req *LinkUserRequest) (*types.SanitizedUser, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.LinkUser")
	defer span.End()

	if err := validateLinkRequest(kind, req); err != nil {
		return nil, err
	}

	// bcrypt is deliberately slow, keep it outside the transaction.
	var prehashed string
	if req.NewUser != nil {
		hash, err := s.hasher.Hash(req.NewUser.Password)
		if err != nil {
			return nil, err
		}
		prehashed = hash
	}

	var linkedUser *types.User
	err := s.tx.WithTx(ctx, func(txCtx context.Context) error {
		u, err := s.linkUserTx(txCtx, tenantID, kind, req, prehashed)
		if err != nil {
			return err
		}
		linkedUser = u
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.afterLink(ctx, req, linkedUser)

	return linkedUser.Sanitize(), nil
}

// linkUserTx performs the linking steps and must run inside a transaction
// context.
func (s *Service) linkUserTx(txCtx context.Context, tenantID string, kind types.RelationKind, req *LinkUserRequest, prehashed string) (*types.User, error) {
	var (
		u   *types.User
		err error
	)

	if req.NewUser != nil {
		u, err = s.storage.CreateUser(txCtx, &types.User{
			FirstName:           req.NewUser.FirstName,
			MiddleName:          req.NewUser.MiddleName,
			LastName:            req.NewUser.LastName,
			PrimaryEmailAddress: req.NewUser.PrimaryEmailAddress,
			BackupEmailAddress:  req.NewUser.BackupEmailAddress,
			Phone:               req.NewUser.Phone,
			IsActive:            true,
			PasswordHash:        prehashed,
		})
	} else {
		u, err = s.storage.GetUserByID(txCtx, *req.UserID)
	}
	if err != nil {
		return nil, err
	}

	switch kind {
	case types.RelationPrimaryContact:
		err = s.storage.SetTenantPrimaryContact(txCtx, tenantID, &u.ID)
	case types.RelationTeamMember:
		_, err = s.storage.AddTeamMember(txCtx, tenantID, u.ID, req.Roles)
	case types.RelationAccountOfficer:
		_, err = s.storage.AddAccountOfficer(txCtx, tenantID, u.ID, req.Roles)
	default:
		err = ErrInvalidRelationKind
	}
	if err != nil {
		return nil, err
	}

	return u, nil
}

// afterLink runs post-commit side effects: the verification mail for a newly
// created user. Failures are logged, never unwound.
func (s *Service) afterLink(ctx context.Context, req *LinkUserRequest, linkedUser *types.User) {
	if req == nil || req.NewUser == nil || linkedUser == nil {
		return
	}
	if !s.config.AutoSendVerification || linkedUser.PrimaryEmailAddress == "" {
		return
	}

	if err := s.verifier.SendVerificationEmail(ctx, linkedUser.ID); err != nil {
		s.logger.Errorf("failed to send verification email to user %s: %v", linkedUser.ID, err)
	}
}

func (s *Service) UnlinkUser(ctx context.Context, tenantID string, kind types.RelationKind, userID string) error {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.UnlinkUser")
	defer span.End()

	switch kind {
	case types.RelationPrimaryContact:
		return s.storage.SetTenantPrimaryContact(ctx, tenantID, nil)
	case types.RelationTeamMember:
		return s.storage.RemoveTeamMember(ctx, tenantID, userID)
	case types.RelationAccountOfficer:
		return s.storage.RemoveAccountOfficer(ctx, tenantID, userID)
	}

	return ErrInvalidRelationKind
}

func (s *Service) UpdateRelationRoles(ctx context.Context, tenantID string, kind types.RelationKind, userID string, roles types.RoleList) error {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.UpdateRelationRoles")
	defer span.End()

	if err := validateRoles(kind, roles); err != nil {
		return err
	}

	switch kind {
	case types.RelationTeamMember:
		return s.storage.UpdateTeamMemberRoles(ctx, tenantID, userID, roles)
	case types.RelationAccountOfficer:
		return s.storage.UpdateAccountOfficerRoles(ctx, tenantID, userID, roles)
	}

	// The primary contact relation carries no roles.
	return ErrInvalidRelationKind
}

func (s *Service) ListTeamMembers(ctx context.Context, tenantID string) ([]*types.TenantTeam, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.ListTeamMembers")
	defer span.End()

	return s.storage.ListTeamMembersByTenantID(ctx, tenantID)
}

func (s *Service) ListAccountOfficers(ctx context.Context, tenantID string) ([]*types.AccountOfficerDetail, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.ListAccountOfficers")
	defer span.End()

	return s.storage.ListAccountOfficersByTenantID(ctx, tenantID)
}

func (s *Service) ListTenantsByAccountOfficer(ctx context.Context, userID string) ([]*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.ListTenantsByAccountOfficer")
	defer span.End()

	return s.storage.ListActiveTenantsByAccountOfficer(ctx, userID)
}

// SetCustomTheme creates a custom theme and points the tenant at it in one
// transaction.
func (s *Service) SetCustomTheme(ctx context.Context, tenantID string, req *CustomThemeRequest) (*types.CustomTheme, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.SetCustomTheme")
	defer span.End()

	var newTheme *types.CustomTheme
	err := s.tx.WithTx(ctx, func(txCtx context.Context) error {
		t, err := s.storage.CreateCustomTheme(txCtx, &types.CustomTheme{
			Name:        req.Name,
			Description: req.Description,
			Properties:  req.Properties,
		})
		if err != nil {
			return err
		}
		newTheme = t

		return s.storage.SetTenantCustomTheme(txCtx, tenantID, &t.ID)
	})
	if err != nil {
		return nil, err
	}

	return newTheme, nil
}

func (s *Service) UpdateCustomTheme(ctx context.Context, themeID string, req *CustomThemeRequest) (*types.CustomTheme, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.UpdateCustomTheme")
	defer span.End()

	update := &types.CustomTheme{
		ID:          themeID,
		Name:        req.Name,
		Description: req.Description,
		Properties:  req.Properties,
	}
	paths := []string{"name", "description", "properties"}

	if err := s.storage.UpdateCustomTheme(ctx, update, paths); err != nil {
		return nil, err
	}

	return update, nil
}

// UnsetCustomTheme detaches the tenant's custom theme and deletes the theme
// row, since a custom theme belongs to exactly one tenant.
func (s *Service) UnsetCustomTheme(ctx context.Context, tenantID string) error {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.UnsetCustomTheme")
	defer span.End()

	t, err := s.storage.GetTenantByID(ctx, tenantID)
	if err != nil {
		return err
	}

	if t.CustomThemeID == nil {
		return nil
	}
	themeID := *t.CustomThemeID

	return s.tx.WithTx(ctx, func(txCtx context.Context) error {
		if err := s.storage.SetTenantCustomTheme(txCtx, tenantID, nil); err != nil {
			return err
		}
		return s.storage.DeleteCustomTheme(txCtx, themeID)
	})
}

// AddTheme creates a theme and attaches it to the tenant in one transaction.
func (s *Service) AddTheme(ctx context.Context, tenantID string, req *ThemeRequest) (*types.Theme, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.AddTheme")
	defer span.End()

	var newTheme *types.Theme
	err := s.tx.WithTx(ctx, func(txCtx context.Context) error {
		t, err := s.storage.CreateTheme(txCtx, &types.Theme{
			Name:        req.Name,
			Description: req.Description,
			Properties:  req.Properties,
		})
		if err != nil {
			return err
		}
		newTheme = t

		return s.storage.AddThemeToTenant(txCtx, tenantID, t.ID)
	})
	if err != nil {
		return nil, err
	}

	return newTheme, nil
}

func (s *Service) LinkTheme(ctx context.Context, tenantID, themeID string) error {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.LinkTheme")
	defer span.End()

	return s.storage.AddThemeToTenant(ctx, tenantID, themeID)
}

func (s *Service) UnlinkTheme(ctx context.Context, tenantID, themeID string) error {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.UnlinkTheme")
	defer span.End()

	return s.storage.RemoveThemeFromTenant(ctx, tenantID, themeID)
}

func (s *Service) ListThemes(ctx context.Context, tenantID string) ([]*types.Theme, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.ListThemes")
	defer span.End()

	return s.storage.ListThemesByTenantID(ctx, tenantID)
}

func (s *Service) AddBilling(ctx context.Context, tenantID string, req *BillingRequest) (*types.Billing, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.AddBilling")
	defer span.End()

	return s.storage.CreateBilling(ctx, &types.Billing{
		TenantID:    &tenantID,
		Code:        req.Code,
		Description: req.Description,
		Type:        req.Type,
		Status:      req.Status,
	})
}

// LinkBilling attaches an existing billing record to the tenant.
func (s *Service) LinkBilling(ctx context.Context, tenantID, billingID string) error {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.LinkBilling")
	defer span.End()

	return s.storage.SetBillingTenant(ctx, billingID, &tenantID)
}

// RemoveBilling detaches the billing record from its tenant. The record itself
// is kept.
func (s *Service) RemoveBilling(ctx context.Context, billingID string) error {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.RemoveBilling")
	defer span.End()

	return s.storage.SetBillingTenant(ctx, billingID, nil)
}

func (s *Service) ListBillings(ctx context.Context, tenantID string) ([]*types.Billing, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.ListBillings")
	defer span.End()

	return s.storage.ListBillingsByTenantID(ctx, tenantID)
}

func (s *Service) SetConnectionResource(ctx context.Context, tenantID, resourceID string) error {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.SetConnectionResource")
	defer span.End()

	return s.storage.SetTenantConnectionResource(ctx, tenantID, &resourceID)
}

func (s *Service) UnsetConnectionResource(ctx context.Context, tenantID string) error {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.UnsetConnectionResource")
	defer span.End()

	return s.storage.SetTenantConnectionResource(ctx, tenantID, nil)
}

func validateLinkRequest(kind types.RelationKind, req *LinkUserRequest) error {
	if (req.NewUser == nil) == (req.UserID == nil) {
		return ErrInvalidLinkRequest
	}

	return validateRoles(kind, req.Roles)
}

func validateRoles(kind types.RelationKind, roles types.RoleList) error {
	var allowed map[string]bool

	switch kind {
	case types.RelationPrimaryContact:
		if len(roles) > 0 {
			return fmt.Errorf("%w: primary contact carries no roles", ErrInvalidRole)
		}
		return nil
	case types.RelationTeamMember:
		allowed = map[string]bool{
			types.TeamRoleAdmin:          true,
			types.TeamRoleMarketing:      true,
			types.TeamRoleContentManager: true,
		}
	case types.RelationAccountOfficer:
		allowed = map[string]bool{
			types.OfficerRoleManager:     true,
			types.OfficerRoleTechSupport: true,
		}
	default:
		return ErrInvalidRelationKind
	}

	if len(roles) == 0 {
		return fmt.Errorf("%w: at least one role is required", ErrInvalidRole)
	}

	for _, r := range roles {
		if !allowed[r] {
			return fmt.Errorf("%w: %q", ErrInvalidRole, r)
		}
	}

	return nil
}
