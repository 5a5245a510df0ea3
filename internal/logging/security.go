// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"fmt"

	"go.uber.org/zap"
)

const securityAppID = "workspace-service"

type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) log(event, description string, fields ...zap.Field) {
	fields = append(
		fields,
		zap.String("type", "security"),
		zap.String("appid", securityAppID),
		zap.String("event", event),
		zap.String("description", description),
	)
	s.l.Warn(description, fields...)
}

func (s *SecurityLogger) SystemStartup() {
	s.log("sys_startup", "workspace service is starting")
}

func (s *SecurityLogger) SystemShutdown() {
	s.log("sys_shutdown", "workspace service is shutting down")
}

func (s *SecurityLogger) AuthnFailure(subject, reason string) {
	s.log(
		fmt.Sprintf("authn_login_fail:%s", subject),
		"authentication failed",
		zap.String("reason", reason),
	)
}

func (s *SecurityLogger) AuthzFailure(subject, resource string) {
	s.log(
		fmt.Sprintf("authz_fail:%s,%s", subject, resource),
		fmt.Sprintf("user %s attempted to access %s without entitlement", subject, resource),
	)
}

func (s *SecurityLogger) AdminAction(subject, action, resource string) {
	s.log(
		fmt.Sprintf("%s:%s,%s", action, subject, resource),
		fmt.Sprintf("user %s performed %s on %s", subject, action, resource),
	)
}

func newSecurityLogger(l *zap.Logger) *SecurityLogger {
	return &SecurityLogger{l: l.Named("security")}
}
