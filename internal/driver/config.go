// Package driver
// Copyright (C) 2021~2040 EdgeGo
//
// SPDX-License-Identifier: Apache-2.0
package driver

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/edgego/device-opcua-gds/internal/gdsclient"
	"github.com/edgexfoundry/go-mod-core-contracts/v2/errors"
	"github.com/edgexfoundry/go-mod-core-contracts/v2/models"
)

// Configuration is the driver section of the service configuration.
type Configuration struct {
	// ResponseFetchInterval bounds a single read or write, in milliseconds.
	ResponseFetchInterval int
	// AuditInterval is the publishing interval of audit subscriptions, in milliseconds.
	AuditInterval int `config:"optional"`
	// DiscoveryTimeout bounds an mDNS browse, in milliseconds.
	DiscoveryTimeout   int    `config:"optional"`
	DiscoveryInterface string `config:"optional"`
}

// GdsInfo holds the protocol properties of a GDS device.
type GdsInfo struct {
	Endpoint    string
	Policy      string
	Mode        string
	CertFile    string
	KeyFile     string
	Username    string `config:"optional"`
	Password    string `config:"optional"`
	AuditEvents bool   `config:"optional"`
}

// Validate ensures your custom configuration has proper values.
func (info *GdsInfo) Validate() errors.EdgeX {
	if err := info.ClientConfig().Validate(); err != nil {
		return errors.NewCommonEdgeX(errors.KindContractInvalid, "invalid GDS protocol properties", err)
	}
	return nil
}

// ClientConfig converts the protocol properties into a GDS client configuration.
func (info *GdsInfo) ClientConfig() gdsclient.Config {
	return gdsclient.Config{
		Endpoint: info.Endpoint,
		Policy:   info.Policy,
		Mode:     info.Mode,
		CertFile: info.CertFile,
		KeyFile:  info.KeyFile,
		Username: info.Username,
		Password: info.Password,
	}
}

// CreateGdsInfo use to load GDS info for read and write command
func CreateGdsInfo(protocols map[string]models.ProtocolProperties) (*GdsInfo, error) {
	info := new(GdsInfo)
	protocol, ok := protocols[Protocol]
	if !ok {
		return info, fmt.Errorf("unable to load config, '%s' not exist", Protocol)
	}

	if err := load(protocol, info); err != nil {
		return info, err
	}
	if err := info.Validate(); err != nil {
		return info, err
	}
	return info, nil
}

// loadDriverConfig loads the driver configuration
func loadDriverConfig(configMap map[string]string) (*Configuration, error) {
	config := new(Configuration)
	err := load(configMap, config)
	if err != nil {
		return config, err
	}
	if config.ResponseFetchInterval <= 0 {
		return config, fmt.Errorf("ResponseFetchInterval must be positive, got %d", config.ResponseFetchInterval)
	}
	if config.AuditInterval <= 0 {
		config.AuditInterval = defaultAuditInterval
	}
	if config.DiscoveryTimeout <= 0 {
		config.DiscoveryTimeout = defaultDiscoveryTimeout
	}
	return config, nil
}

// load by reflect to check map key and then fetch the value
func load(config map[string]string, des interface{}) error {
	errorMessage := "unable to load config, '%s' not exist"
	val := reflect.ValueOf(des).Elem()
	for i := 0; i < val.NumField(); i++ {
		typeField := val.Type().Field(i)
		valueField := val.Field(i)

		val, ok := config[typeField.Name]
		if !ok {
			if typeField.Tag.Get("config") == "optional" {
				continue
			}
			return fmt.Errorf(errorMessage, typeField.Name)
		}

		switch valueField.Kind() {
		case reflect.Int, reflect.Int32, reflect.Int64:
			intVal, err := strconv.ParseInt(val, 10, valueField.Type().Bits())
			if err != nil {
				return fmt.Errorf("invalid value %q for %s: %w", val, typeField.Name, err)
			}
			valueField.SetInt(intVal)
		case reflect.Bool:
			boolVal, err := strconv.ParseBool(val)
			if err != nil {
				return fmt.Errorf("invalid value %q for %s: %w", val, typeField.Name, err)
			}
			valueField.SetBool(boolVal)
		case reflect.String:
			valueField.SetString(val)
		default:
			return fmt.Errorf("none supported value type %v ,%v", valueField.Kind(), typeField.Name)
		}
	}
	return nil
}
