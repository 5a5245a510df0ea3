// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	KratosAdminURL string `envconfig:"kratos_admin_url" required:"true"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port int `envconfig:"port" default:"8080"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`
	DBTxTimeout       time.Duration `envconfig:"db_tx_timeout" default:"60s"`

	AuthenticationEnabled         bool     `envconfig:"authentication_enabled" default:"true"`
	AuthenticationMode            string   `envconfig:"authentication_mode" default:"oidc"`
	AuthenticationIssuer          string   `envconfig:"authentication_issuer"`
	AuthenticationJWKSURL         string   `envconfig:"authentication_jwks_url"`
	AuthenticationAllowedSubjects []string `envconfig:"authentication_allowed_subjects"`
	AuthenticationRequiredScope   string   `envconfig:"authentication_required_scope"`
	JWTSecret                     string   `envconfig:"jwt_secret"`

	WebhookAPIToken string `envconfig:"webhook_api_token"`

	EncryptionKey  string `envconfig:"encryption_key" required:"true"`
	EncryptionSalt string `envconfig:"encryption_salt" default:"salt"`

	VendorTimeout        time.Duration `envconfig:"vendor_timeout" default:"10s"`
	ReconcileConcurrency int           `envconfig:"reconcile_concurrency" default:"4"`

	RateLimitRPS   float64 `envconfig:"rate_limit_rps" default:"20"`
	RateLimitBurst int     `envconfig:"rate_limit_burst" default:"40"`

	CORSAllowedOrigins []string `envconfig:"cors_allowed_origins" default:"*"`

	NATSURL string `envconfig:"nats_url"`
}
