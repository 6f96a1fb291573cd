// Package driver
// Copyright (C) 2021~2040 EdgeGo
//
// SPDX-License-Identifier: Apache-2.0
package driver

// Constants related to protocol properties
const (
	Protocol = "opcua"
	ENDPOINT = "Endpoint"
)

// Device resource attributes
const (
	AttrSymbol             = "symbol"
	AttrApplicationURI     = "applicationUri"
	AttrApplicationID      = "applicationId"
	AttrCertificateGroupID = "certificateGroupId"
	AttrCertificateTypeID  = "certificateTypeId"
	AttrMaxRecords         = "maxRecords"
	AttrServerCapabilities = "serverCapabilities"
)

// AuditEventResource is the device resource audit events are published on.
const AuditEventResource = "AuditEvent"
