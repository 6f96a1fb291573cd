// Copyright (C) 2018 EdgeGo
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/edgego/device-opcua-gds"
	"github.com/edgego/device-opcua-gds/internal/driver"
	"github.com/edgexfoundry/device-sdk-go/v2/pkg/startup"
)

const (
	serviceName string = "edge-device-opcua-gds"
)

func main() {
	sd := driver.NewProtocolDriver()
	startup.Bootstrap(serviceName, device_opcua_gds.Version, sd)
}
