// Copyright (C) 2021~2040 EdgeGo
//
// SPDX-License-Identifier: Apache-2.0

package driver

import (
	"testing"

	"github.com/edgexfoundry/go-mod-core-contracts/v2/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDriverConfig(t *testing.T) {
	config, err := loadDriverConfig(map[string]string{"ResponseFetchInterval": "2000"})
	require.NoError(t, err)
	assert.Equal(t, 2000, config.ResponseFetchInterval)
	assert.Equal(t, defaultAuditInterval, config.AuditInterval)
	assert.Equal(t, defaultDiscoveryTimeout, config.DiscoveryTimeout)
	assert.Empty(t, config.DiscoveryInterface)

	config, err = loadDriverConfig(map[string]string{"ResponseFetchInterval": "2000", "AuditInterval": "250"})
	require.NoError(t, err)
	assert.Equal(t, 250, config.AuditInterval)
}

func TestLoadDriverConfigErrors(t *testing.T) {
	tests := []struct {
		name   string
		config map[string]string
	}{
		{"missing interval", map[string]string{}},
		{"not a number", map[string]string{"ResponseFetchInterval": "soon"}},
		{"zero interval", map[string]string{"ResponseFetchInterval": "0"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadDriverConfig(tt.config)
			assert.Error(t, err)
		})
	}
}

func TestCreateGdsInfo(t *testing.T) {
	p := protocols()
	p[Protocol]["Username"] = "operator"
	p[Protocol]["Password"] = "secret"
	p[Protocol]["AuditEvents"] = "true"

	info, err := CreateGdsInfo(p)
	require.NoError(t, err)
	assert.Equal(t, testEndpoint, info.Endpoint)
	assert.Equal(t, "None", info.Policy)
	assert.True(t, info.AuditEvents)

	cfg := info.ClientConfig()
	assert.Equal(t, "operator", cfg.Username)
	assert.Equal(t, "secret", cfg.Password)
}

func TestCreateGdsInfoErrors(t *testing.T) {
	_, err := CreateGdsInfo(map[string]models.ProtocolProperties{})
	assert.Error(t, err, "no opcua protocol")

	p := protocols()
	delete(p[Protocol], "Mode")
	_, err = CreateGdsInfo(p)
	assert.Error(t, err, "missing mode")

	p = protocols()
	p[Protocol]["CertFile"] = "cert.pem"
	_, err = CreateGdsInfo(p)
	assert.Error(t, err, "certificate without key")

	p = protocols()
	p[Protocol]["AuditEvents"] = "sometimes"
	_, err = CreateGdsInfo(p)
	assert.Error(t, err, "invalid bool")
}
