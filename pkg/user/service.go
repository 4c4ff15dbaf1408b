// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package user

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	httpTypes "github.com/canonical/tenant-manager/internal/http/types"
	"github.com/canonical/tenant-manager/internal/logging"
	"github.com/canonical/tenant-manager/internal/monitoring"
	"github.com/canonical/tenant-manager/internal/tracing"
	"github.com/canonical/tenant-manager/internal/types"
	"github.com/canonical/tenant-manager/pkg/mail"
)

// ErrTokenExpired is returned when a verification link is past its expiry.
var ErrTokenExpired = errors.New("verification token has expired")

const verificationTokenBytes = 256

var _ ServiceInterface = (*Service)(nil)

// Config carries the user-facing tunables the service needs.
type Config struct {
	// BaseURL is the address confirmation links fall back to when the
	// triggering request carried no usable Host header.
	BaseURL string
	// TokenTTL bounds how long a verification link stays valid.
	TokenTTL time.Duration
	// AutoSendVerification issues a verification mail right after a user with
	// a primary email is created.
	AutoSendVerification bool
}

type Service struct {
	storage    StorageInterface
	hasher     PasswordHasherInterface
	dispatcher mail.DispatcherInterface
	config     Config

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	hasher PasswordHasherInterface,
	dispatcher mail.DispatcherInterface,
	config Config,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:    storage,
		hasher:     hasher,
		dispatcher: dispatcher,
		config:     config,
		tracer:     tracer,
		monitor:    monitor,
		logger:     logger,
	}
}

func (s *Service) CreateUser(ctx context.Context, input *CreateUserRequest) (*types.SanitizedUser, error) {
	ctx, span := s.tracer.Start(ctx, "user.Service.CreateUser")
	defer span.End()

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	newUser, err := s.storage.CreateUser(ctx, &types.User{
		FirstName:           input.FirstName,
		MiddleName:          input.MiddleName,
		LastName:            input.LastName,
		PrimaryEmailAddress: input.PrimaryEmailAddress,
		BackupEmailAddress:  input.BackupEmailAddress,
		Phone:               input.Phone,
		IsActive:            true,
		PasswordHash:        hash,
	})
	if err != nil {
		return nil, err
	}

	if s.config.AutoSendVerification {
		if err := s.SendVerificationEmail(ctx, newUser.ID); err != nil {
			// The account exists either way, so a failed mail only gets logged.
			s.logger.Errorf("failed to send verification email to user %s: %v", newUser.ID, err)
		}
	}

	return newUser.Sanitize(), nil
}

func (s *Service) GetUser(ctx context.Context, id string) (*types.SanitizedUser, error) {
	ctx, span := s.tracer.Start(ctx, "user.Service.GetUser")
	defer span.End()

	u, err := s.storage.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return u.Sanitize(), nil
}

func (s *Service) ListUsers(ctx context.Context, page, size int64) ([]*types.SanitizedUser, error) {
	ctx, span := s.tracer.Start(ctx, "user.Service.ListUsers")
	defer span.End()

	users, err := s.storage.ListUsers(ctx, page, size)
	if err != nil {
		return nil, err
	}

	sanitized := make([]*types.SanitizedUser, len(users))
	for i, u := range users {
		sanitized[i] = u.Sanitize()
	}

	return sanitized, nil
}

func (s *Service) UpdateUser(ctx context.Context, id string, input *UpdateUserRequest) (*types.SanitizedUser, error) {
	ctx, span := s.tracer.Start(ctx, "user.Service.UpdateUser")
	defer span.End()

	update := &types.User{ID: id}
	var paths []string

	if input.FirstName != nil {
		update.FirstName = *input.FirstName
		paths = append(paths, "first_name")
	}
	if input.MiddleName != nil {
		update.MiddleName = input.MiddleName
		paths = append(paths, "middle_name")
	}
	if input.LastName != nil {
		update.LastName = *input.LastName
		paths = append(paths, "last_name")
	}
	if input.BackupEmailAddress != nil {
		update.BackupEmailAddress = input.BackupEmailAddress
		paths = append(paths, "backup_email_address")
	}
	if input.Phone != nil {
		update.Phone = input.Phone
		paths = append(paths, "phone")
	}
	if input.IsActive != nil {
		update.IsActive = *input.IsActive
		paths = append(paths, "is_active")
	}
	if input.Password != nil {
		hash, err := s.hasher.Hash(*input.Password)
		if err != nil {
			return nil, err
		}
		update.PasswordHash = hash
		paths = append(paths, "password_hash")
	}

	if err := s.storage.UpdateUser(ctx, update, paths); err != nil {
		return nil, err
	}

	u, err := s.storage.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return u.Sanitize(), nil
}

func (s *Service) DeleteUser(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "user.Service.DeleteUser")
	defer span.End()

	return s.storage.DeleteUser(ctx, id)
}

// SendVerificationEmail issues a fresh verification token for the user's
// primary email and queues the confirmation mail. Re-issuing invalidates any
// earlier token.
func (s *Service) SendVerificationEmail(ctx context.Context, userID string) error {
	ctx, span := s.tracer.Start(ctx, "user.Service.SendVerificationEmail")
	defer span.End()

	u, err := s.storage.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}

	if u.PrimaryEmailAddress == "" {
		return fmt.Errorf("user %s has no primary email address", userID)
	}

	token, err := generateVerificationToken()
	if err != nil {
		return fmt.Errorf("failed to generate verification token: %w", err)
	}

	expiresAt := time.Now().Add(s.config.TokenTTL)
	if err := s.storage.SetVerificationToken(ctx, userID, token, expiresAt); err != nil {
		return err
	}

	s.logger.Security().VerificationTokenIssued(userID)

	base := httpTypes.BaseURL(ctx)
	if base == "" {
		base = s.config.BaseURL
	}
	url := fmt.Sprintf("%s/api/v0/users/confirm-primary-email/%s", strings.TrimRight(base, "/"), token)
	msg := mail.Message{
		To:      u.PrimaryEmailAddress,
		Subject: "Confirm your email address",
		Body: fmt.Sprintf(`<html><body>
			<h2>Confirm your email address</h2>
			<p>Hello %s, please confirm your primary email address.</p>
			<p><a href="%s">Click here to confirm your email</a></p>
			<p>Or copy this link to your browser: %s</p>
			<p>This link expires in %s.</p>
		</body></html>`, u.FirstName, url, url, s.config.TokenTTL),
	}

	if err := s.dispatcher.Enqueue(msg); err != nil {
		// Token stays valid, the user can request another mail.
		s.logger.Errorf("failed to enqueue verification mail for user %s: %v", userID, err)
	}

	return nil
}

// ConfirmPrimaryEmail validates a verification token, marks the email
// verified and burns the token.
func (s *Service) ConfirmPrimaryEmail(ctx context.Context, token string) (*types.SanitizedUser, error) {
	ctx, span := s.tracer.Start(ctx, "user.Service.ConfirmPrimaryEmail")
	defer span.End()

	u, err := s.storage.GetUserByVerificationToken(ctx, token)
	if err != nil {
		return nil, err
	}

	if u.EmailVerificationTokenExpiration == nil || time.Now().After(*u.EmailVerificationTokenExpiration) {
		return nil, ErrTokenExpired
	}

	if err := s.storage.MarkPrimaryEmailVerified(ctx, u.ID); err != nil {
		return nil, err
	}

	u.IsPrimaryEmailAddressVerified = true
	return u.Sanitize(), nil
}

func generateVerificationToken() (string, error) {
	buf := make([]byte, verificationTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
