// Copyright (C) 2021~2040 EdgeGo
//
// SPDX-License-Identifier: Apache-2.0

// Package browsename holds the browse names the GDS information model
// defines in its own namespace.
package browsename

const (
	AccessTokenIssuedAuditEventType              = "AccessTokenIssuedAuditEventType"
	ApplicationRecordDataType                    = "ApplicationRecordDataType"
	ApplicationRegistrationChangedAuditEventType = "ApplicationRegistrationChangedAuditEventType"
	Applications                                 = "Applications"
	AuthorizationServiceType                     = "AuthorizationServiceType"
	AuthorizationServices                        = "AuthorizationServices"
	AuthorizationServicesConfigurationFolderType = "AuthorizationServicesConfigurationFolderType"
	CertificateDeliveredAuditEventType           = "CertificateDeliveredAuditEventType"
	CertificateDirectoryType                     = "CertificateDirectoryType"
	CertificateGroup                             = "CertificateGroup"
	CertificateRequestedAuditEventType           = "CertificateRequestedAuditEventType"
	CertificateType                              = "CertificateType"
	Directory                                    = "Directory"
	DirectoryType                                = "DirectoryType"
	FindApplications                             = "FindApplications"
	FinishRequest                                = "FinishRequest"
	GetApplication                               = "GetApplication"
	GetCertificateGroups                         = "GetCertificateGroups"
	GetCertificateStatus                         = "GetCertificateStatus"
	GetServiceDescription                        = "GetServiceDescription"
	GetTrustList                                 = "GetTrustList"
	KeyCredentialDeliveredAuditEventType         = "KeyCredentialDeliveredAuditEventType"
	KeyCredentialManagement                      = "KeyCredentialManagement"
	KeyCredentialManagementFolderType            = "KeyCredentialManagementFolderType"
	KeyCredentialRequestedAuditEventType         = "KeyCredentialRequestedAuditEventType"
	KeyCredentialRevokedAuditEventType           = "KeyCredentialRevokedAuditEventType"
	KeyCredentialServiceType                     = "KeyCredentialServiceType"
	OpcUaGds                                     = "Opc.Ua.Gds"
	ProfileUris                                  = "ProfileUris"
	QueryApplications                            = "QueryApplications"
	QueryServers                                 = "QueryServers"
	RegisterApplication                          = "RegisterApplication"
	RequestAccessToken                           = "RequestAccessToken"
	ResourceUri                                  = "ResourceUri"
	Revoke                                       = "Revoke"
	RevokeCertificate                            = "RevokeCertificate"
	ServiceCertificate                           = "ServiceCertificate"
	ServiceUri                                   = "ServiceUri"
	StartNewKeyPairRequest                       = "StartNewKeyPairRequest"
	StartRequest                                 = "StartRequest"
	StartSigningRequest                          = "StartSigningRequest"
	UnregisterApplication                        = "UnregisterApplication"
	UpdateApplication                            = "UpdateApplication"
	UserTokenPolicies                            = "UserTokenPolicies"
)
