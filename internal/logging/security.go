// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
)

// SecurityLogger emits structured audit events that security tooling keys on.
type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) SystemStartup() {
	s.l.Info("system startup", zap.String("event", "sys_startup"))
}

func (s *SecurityLogger) SystemShutdown() {
	s.l.Info("system shutdown", zap.String("event", "sys_shutdown"))
}

func (s *SecurityLogger) AuthenticationFailed(email string) {
	s.l.Warn("authentication failed", zap.String("event", "authn_fail"), zap.String("email", email))
}

func (s *SecurityLogger) AuthenticationSucceeded(userID string) {
	s.l.Info("authentication succeeded", zap.String("event", "authn_ok"), zap.String("user_id", userID))
}

func (s *SecurityLogger) VerificationTokenIssued(userID string) {
	s.l.Info("verification token issued", zap.String("event", "verify_issue"), zap.String("user_id", userID))
}
