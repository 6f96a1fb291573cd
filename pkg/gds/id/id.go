// Copyright (C) 2021~2040 EdgeGo
//
// SPDX-License-Identifier: Apache-2.0

// Package id defines the numeric identifiers of the nodes in the OPC-UA
// Global Discovery Server namespace (http://opcfoundation.org/UA/GDS/).
//
// The values are namespace-local. Use gds.Expanded or gds.Resolve to turn
// them into NodeIds a particular server understands.
package id

// DataTypes
const (
	ApplicationRecordDataType = 1
)

// ObjectTypes
const (
	DirectoryType                                = 13
	ApplicationRegistrationChangedAuditEventType = 26
	KeyCredentialManagementFolderType            = 55
	CertificateDirectoryType                     = 63
	CertificateRequestedAuditEventType           = 91
	CertificateDeliveredAuditEventType           = 109
	AuthorizationServicesConfigurationFolderType = 233
	AuthorizationServiceType                     = 966
	AccessTokenIssuedAuditEventType              = 975
	KeyCredentialServiceType                     = 1020
	KeyCredentialRequestedAuditEventType         = 1039
	KeyCredentialDeliveredAuditEventType         = 1057
	KeyCredentialRevokedAuditEventType           = 1075
)

// Objects
const (
	DirectoryType_Applications                                                   = 14
	ApplicationRecordDataType_Encoding_DefaultXml                                = 127
	ApplicationRecordDataType_Encoding_DefaultBinary                             = 134
	Directory                                                                    = 141
	Directory_Applications                                                       = 142
	CertificateDirectoryType_CertificateGroups                                   = 511
	CertificateDirectoryType_CertificateGroups_DefaultApplicationGroup           = 512
	CertificateDirectoryType_CertificateGroups_DefaultApplicationGroup_TrustList = 513
	Directory_CertificateGroups                                                  = 614
	Directory_CertificateGroups_DefaultApplicationGroup                          = 615
	Directory_CertificateGroups_DefaultApplicationGroup_TrustList                = 616
	AuthorizationServices                                                        = 959
	KeyCredentialManagement                                                      = 1008
	ApplicationRecordDataType_Encoding_DefaultJson                               = 8001
)

// Methods
const (
	DirectoryType_FindApplications                  = 15
	DirectoryType_RegisterApplication               = 18
	DirectoryType_UnregisterApplication             = 21
	DirectoryType_QueryServers                      = 23
	CertificateDirectoryType_StartNewKeyPairRequest = 76
	CertificateDirectoryType_StartSigningRequest    = 79
	CertificateDirectoryType_FinishRequest          = 85
	Directory_FindApplications                      = 143
	Directory_RegisterApplication                   = 146
	Directory_UnregisterApplication                 = 149
	Directory_QueryServers                          = 151
	Directory_StartNewKeyPairRequest                = 154
	Directory_StartSigningRequest                   = 157
	Directory_FinishRequest                         = 163
	DirectoryType_UpdateApplication                 = 188
	CertificateDirectoryType_GetTrustList           = 197
	Directory_UpdateApplication                     = 200
	Directory_GetTrustList                          = 204
	DirectoryType_GetApplication                    = 210
	Directory_GetApplication                        = 216
	CertificateDirectoryType_GetCertificateStatus   = 222
	Directory_GetCertificateStatus                  = 225
	CertificateDirectoryType_GetCertificateGroups   = 369
	Directory_GetCertificateGroups                  = 508
	DirectoryType_QueryApplications                 = 868
	AuthorizationServiceType_RequestAccessToken     = 969
	Directory_QueryApplications                     = 992
	AuthorizationServiceType_GetServiceDescription  = 1004
	KeyCredentialServiceType_StartRequest           = 1023
	KeyCredentialServiceType_FinishRequest          = 1026
	KeyCredentialServiceType_Revoke                 = 1029
	CertificateDirectoryType_RevokeCertificate      = 15003
	Directory_RevokeCertificate                     = 15005
)

// Variables
const (
	DirectoryType_FindApplications_InputArguments                   = 16
	DirectoryType_FindApplications_OutputArguments                  = 17
	DirectoryType_RegisterApplication_InputArguments                = 19
	DirectoryType_RegisterApplication_OutputArguments               = 20
	DirectoryType_UnregisterApplication_InputArguments              = 22
	DirectoryType_QueryServers_InputArguments                       = 24
	DirectoryType_QueryServers_OutputArguments                      = 25
	CertificateDirectoryType_StartNewKeyPairRequest_InputArguments  = 77
	CertificateDirectoryType_StartNewKeyPairRequest_OutputArguments = 78
	CertificateDirectoryType_StartSigningRequest_InputArguments     = 80
	CertificateDirectoryType_StartSigningRequest_OutputArguments    = 81
	CertificateDirectoryType_FinishRequest_InputArguments           = 86
	CertificateDirectoryType_FinishRequest_OutputArguments          = 87
	OpcUaGds_XmlSchema                                              = 128
	OpcUaGds_XmlSchema_NamespaceUri                                 = 130
	OpcUaGds_XmlSchema_ApplicationRecordDataType                    = 131
	OpcUaGds_BinarySchema                                           = 135
	OpcUaGds_BinarySchema_NamespaceUri                              = 137
	OpcUaGds_BinarySchema_ApplicationRecordDataType                 = 138
	Directory_FindApplications_InputArguments                       = 144
	Directory_FindApplications_OutputArguments                      = 145
	Directory_RegisterApplication_InputArguments                    = 147
	Directory_RegisterApplication_OutputArguments                   = 148
	Directory_UnregisterApplication_InputArguments                  = 150
	Directory_QueryServers_InputArguments                           = 152
	Directory_QueryServers_OutputArguments                          = 153
	Directory_StartNewKeyPairRequest_InputArguments                 = 155
	Directory_StartNewKeyPairRequest_OutputArguments                = 156
	Directory_StartSigningRequest_InputArguments                    = 158
	Directory_StartSigningRequest_OutputArguments                   = 159
	Directory_FinishRequest_InputArguments                          = 164
	Directory_FinishRequest_OutputArguments                         = 165
	DirectoryType_UpdateApplication_InputArguments                  = 189
	CertificateDirectoryType_GetTrustList_InputArguments            = 198
	CertificateDirectoryType_GetTrustList_OutputArguments           = 199
	Directory_UpdateApplication_InputArguments                      = 201
	Directory_GetTrustList_InputArguments                           = 205
	Directory_GetTrustList_OutputArguments                          = 206
	DirectoryType_GetApplication_InputArguments                     = 211
	DirectoryType_GetApplication_OutputArguments                    = 212
	Directory_GetApplication_InputArguments                         = 217
	Directory_GetApplication_OutputArguments                        = 218
	CertificateDirectoryType_GetCertificateStatus_InputArguments    = 223
	CertificateDirectoryType_GetCertificateStatus_OutputArguments   = 224
	Directory_GetCertificateStatus_InputArguments                   = 226
	Directory_GetCertificateStatus_OutputArguments                  = 227
	CertificateDirectoryType_GetCertificateGroups_InputArguments    = 370
	CertificateDirectoryType_GetCertificateGroups_OutputArguments   = 371
	Directory_GetCertificateGroups_InputArguments                   = 509
	Directory_GetCertificateGroups_OutputArguments                  = 510
	CertificateRequestedAuditEventType_CertificateGroup             = 717
	CertificateRequestedAuditEventType_CertificateType              = 718
	CertificateDeliveredAuditEventType_CertificateGroup             = 735
	CertificateDeliveredAuditEventType_CertificateType              = 736
	DirectoryType_QueryApplications_InputArguments                  = 869
	DirectoryType_QueryApplications_OutputArguments                 = 870
	AuthorizationServiceType_UserTokenPolicies                      = 967
	AuthorizationServiceType_ServiceCertificate                     = 968
	AuthorizationServiceType_RequestAccessToken_InputArguments      = 970
	AuthorizationServiceType_RequestAccessToken_OutputArguments     = 971
	Directory_QueryApplications_InputArguments                      = 993
	Directory_QueryApplications_OutputArguments                     = 994
	AuthorizationServiceType_ServiceUri                             = 1003
	AuthorizationServiceType_GetServiceDescription_OutputArguments  = 1005
	KeyCredentialServiceType_ResourceUri                            = 1021
	KeyCredentialServiceType_ProfileUris                            = 1022
	KeyCredentialServiceType_StartRequest_InputArguments            = 1024
	KeyCredentialServiceType_StartRequest_OutputArguments           = 1025
	KeyCredentialServiceType_FinishRequest_InputArguments           = 1027
	KeyCredentialServiceType_FinishRequest_OutputArguments          = 1028
	KeyCredentialServiceType_Revoke_InputArguments                  = 1030
	OpcUaGds_BinarySchema_Deprecated                                = 8002
	OpcUaGds_XmlSchema_Deprecated                                   = 8004
	CertificateDirectoryType_RevokeCertificate_InputArguments       = 15004
	Directory_RevokeCertificate_InputArguments                      = 15006
)
