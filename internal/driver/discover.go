// Copyright (C) 2021~2040 EdgeGo
//
// SPDX-License-Identifier: Apache-2.0

package driver

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/edgego/device-opcua-gds/internal/discovery"
	sdkModel "github.com/edgexfoundry/device-sdk-go/v2/pkg/models"
	"github.com/edgexfoundry/go-mod-core-contracts/v2/models"
)

// Discover browses mDNS for Global Discovery Servers and reports them to
// the SDK as devices with anonymous, unsecured protocol properties.
func (d *Driver) Discover() {
	servers, err := discovery.Browse(context.Background(), d.discoveryConfig())
	if err != nil {
		d.Logger.Errorf("Driver.Discover: %v", err)
		return
	}

	devices := discoveredDevices(servers)
	d.Logger.Infof("Driver.Discover: %d of %d announced servers are GDS", len(devices), len(servers))
	if d.DeviceCh != nil {
		d.DeviceCh <- devices
	}
}

func (d *Driver) discoveryConfig() discovery.Config {
	if d.serviceConfig == nil {
		return discovery.Config{}
	}
	return discovery.Config{
		Interface: d.serviceConfig.DiscoveryInterface,
		Timeout:   time.Duration(d.serviceConfig.DiscoveryTimeout) * time.Millisecond,
	}
}

func discoveredDevices(servers []discovery.Server) []sdkModel.DiscoveredDevice {
	devices := []sdkModel.DiscoveredDevice{}
	for _, s := range servers {
		if !s.HasCapability(discovery.CapabilityGDS) {
			continue
		}
		url := s.DiscoveryURL()
		devices = append(devices, sdkModel.DiscoveredDevice{
			Name: deviceName(s.Instance),
			Protocols: map[string]models.ProtocolProperties{
				Protocol: {
					ENDPOINT:   url,
					"Policy":   "None",
					"Mode":     "None",
					"CertFile": "",
					"KeyFile":  "",
				},
			},
			Description: fmt.Sprintf("OPC-UA Global Discovery Server at %s", url),
			Labels:      []string{"OPC-UA", discovery.CapabilityGDS},
		})
	}
	return devices
}

// deviceName turns an mDNS instance name into an EdgeX device name.
func deviceName(instance string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r == '.', r == '~':
			return r
		}
		return '-'
	}, instance)
}
