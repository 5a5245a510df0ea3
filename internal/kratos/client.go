// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package kratos

import (
	"context"
	"fmt"
	"net/http"

	ory "github.com/ory/client-go"

	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/tracing"
)

var _ ClientInterface = (*Client)(nil)

type Client struct {
	client *ory.APIClient

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// GetIdentityIDByEmail returns an empty id when no identity owns the address.
func (c *Client) GetIdentityIDByEmail(ctx context.Context, email string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.Client.GetIdentityIDByEmail")
	defer span.End()

	// NOTE: empty page token because of https://github.com/ory/sdk/issues/461
	ids, r, err := c.client.IdentityAPI.ListIdentities(ctx).CredentialsIdentifier(email).PageToken("").Execute()
	c.recordAvailability(r, err)
	if err != nil {
		if r != nil && r.StatusCode == http.StatusNotFound {
			return "", nil
		}
		return "", fmt.Errorf("failed to list identities: %w", err)
	}

	if len(ids) == 0 {
		return "", nil
	}

	return ids[0].Id, nil
}

// GetIdentityEmail returns the email trait of the identity, empty when the
// schema does not carry one.
func (c *Client) GetIdentityEmail(ctx context.Context, id string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.Client.GetIdentityEmail")
	defer span.End()

	identity, r, err := c.client.IdentityAPI.GetIdentity(ctx, id).Execute()
	c.recordAvailability(r, err)
	if err != nil {
		return "", fmt.Errorf("failed to get identity: %w", err)
	}

	traits, ok := identity.Traits.(map[string]interface{})
	if !ok {
		return "", nil
	}

	email, _ := traits["email"].(string)

	return email, nil
}

func (c *Client) recordAvailability(r *http.Response, err error) {
	availability := 1.0
	if err != nil && (r == nil || r.StatusCode >= http.StatusInternalServerError) {
		availability = 0
	}

	if merr := c.monitor.SetDependencyAvailability(map[string]string{"component": "kratos"}, availability); merr != nil {
		c.logger.Debugf("failed to record kratos availability: %v", merr)
	}
}

func NewClient(kratosAdminURL string, httpClient *http.Client, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Client {
	conf := ory.NewConfiguration()
	conf.Servers = ory.ServerConfigurations{{URL: kratosAdminURL}}
	if httpClient != nil {
		conf.HTTPClient = httpClient
	}

	c := new(Client)
	c.client = ory.NewAPIClient(conf)

	c.tracer = tracer
	c.monitor = monitor
	c.logger = logger

	return c
}
