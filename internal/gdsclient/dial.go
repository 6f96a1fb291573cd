// Copyright (C) 2021~2040 EdgeGo
//
// SPDX-License-Identifier: Apache-2.0

package gdsclient

import (
	"context"
	"fmt"

	"github.com/gopcua/opcua"
	"github.com/gopcua/opcua/ua"
)

// Config describes how to reach a GDS endpoint.
type Config struct {
	Endpoint string
	Policy   string
	Mode     string
	CertFile string
	KeyFile  string
	Username string
	Password string
}

// Validate ensures the configuration can be used to dial.
func (cfg Config) Validate() error {
	if cfg.Endpoint == "" {
		return fmt.Errorf("%w: endpoint is empty", ErrInvalidConfig)
	}
	if (cfg.CertFile == "") != (cfg.KeyFile == "") {
		return fmt.Errorf("%w: certificate and key file must be set together", ErrInvalidConfig)
	}
	if cfg.Password != "" && cfg.Username == "" {
		return fmt.Errorf("%w: password without username", ErrInvalidConfig)
	}
	return nil
}

// Options builds the client options for an endpoint picked from the
// server's endpoint list.
func (cfg Config) Options(ep *ua.EndpointDescription) []opcua.Option {
	opts := []opcua.Option{
		opcua.SecurityPolicy(cfg.Policy),
		opcua.SecurityModeString(cfg.Mode),
	}
	if cfg.CertFile != "" {
		opts = append(opts,
			opcua.CertificateFile(cfg.CertFile),
			opcua.PrivateKeyFile(cfg.KeyFile),
		)
	}
	if cfg.Username != "" {
		opts = append(opts,
			opcua.AuthUsername(cfg.Username, cfg.Password),
			opcua.SecurityFromEndpoint(ep, ua.UserTokenTypeUserName),
		)
	} else {
		opts = append(opts,
			opcua.AuthAnonymous(),
			opcua.SecurityFromEndpoint(ep, ua.UserTokenTypeAnonymous),
		)
	}
	return opts
}

// Dial discovers the endpoints of cfg.Endpoint, picks the one matching the
// configured policy and mode and connects to it.
func Dial(ctx context.Context, cfg Config) (*opcua.Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	endpoints, err := opcua.GetEndpoints(ctx, cfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("get endpoints of %s: %w", cfg.Endpoint, err)
	}

	ep := opcua.SelectEndpoint(endpoints, cfg.Policy, ua.MessageSecurityModeFromString(cfg.Mode))
	if ep == nil {
		return nil, fmt.Errorf("no endpoint of %s matches policy %q mode %q", cfg.Endpoint, cfg.Policy, cfg.Mode)
	}
	// servers often advertise a hostname the client cannot resolve
	ep.EndpointURL = cfg.Endpoint

	client := opcua.NewClient(ep.EndpointURL, cfg.Options(ep)...)
	if err := client.Connect(ctx); err != nil {
		return nil, fmt.Errorf("connect %s: %w", cfg.Endpoint, err)
	}
	return client, nil
}
