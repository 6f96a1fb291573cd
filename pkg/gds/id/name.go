// Copyright (C) 2021~2040 EdgeGo
//
// SPDX-License-Identifier: Apache-2.0

package id

var name = map[uint32]string{
	ApplicationRecordDataType:                                                    "ApplicationRecordDataType",
	DirectoryType:                                                                "DirectoryType",
	DirectoryType_Applications:                                                   "DirectoryType_Applications",
	DirectoryType_FindApplications:                                               "DirectoryType_FindApplications",
	DirectoryType_FindApplications_InputArguments:                                "DirectoryType_FindApplications_InputArguments",
	DirectoryType_FindApplications_OutputArguments:                               "DirectoryType_FindApplications_OutputArguments",
	DirectoryType_RegisterApplication:                                            "DirectoryType_RegisterApplication",
	DirectoryType_RegisterApplication_InputArguments:                             "DirectoryType_RegisterApplication_InputArguments",
	DirectoryType_RegisterApplication_OutputArguments:                            "DirectoryType_RegisterApplication_OutputArguments",
	DirectoryType_UnregisterApplication:                                          "DirectoryType_UnregisterApplication",
	DirectoryType_UnregisterApplication_InputArguments:                           "DirectoryType_UnregisterApplication_InputArguments",
	DirectoryType_QueryServers:                                                   "DirectoryType_QueryServers",
	DirectoryType_QueryServers_InputArguments:                                    "DirectoryType_QueryServers_InputArguments",
	DirectoryType_QueryServers_OutputArguments:                                   "DirectoryType_QueryServers_OutputArguments",
	ApplicationRegistrationChangedAuditEventType:                                 "ApplicationRegistrationChangedAuditEventType",
	KeyCredentialManagementFolderType:                                            "KeyCredentialManagementFolderType",
	CertificateDirectoryType:                                                     "CertificateDirectoryType",
	CertificateDirectoryType_StartNewKeyPairRequest:                              "CertificateDirectoryType_StartNewKeyPairRequest",
	CertificateDirectoryType_StartNewKeyPairRequest_InputArguments:               "CertificateDirectoryType_StartNewKeyPairRequest_InputArguments",
	CertificateDirectoryType_StartNewKeyPairRequest_OutputArguments:              "CertificateDirectoryType_StartNewKeyPairRequest_OutputArguments",
	CertificateDirectoryType_StartSigningRequest:                                 "CertificateDirectoryType_StartSigningRequest",
	CertificateDirectoryType_StartSigningRequest_InputArguments:                  "CertificateDirectoryType_StartSigningRequest_InputArguments",
	CertificateDirectoryType_StartSigningRequest_OutputArguments:                 "CertificateDirectoryType_StartSigningRequest_OutputArguments",
	CertificateDirectoryType_FinishRequest:                                       "CertificateDirectoryType_FinishRequest",
	CertificateDirectoryType_FinishRequest_InputArguments:                        "CertificateDirectoryType_FinishRequest_InputArguments",
	CertificateDirectoryType_FinishRequest_OutputArguments:                       "CertificateDirectoryType_FinishRequest_OutputArguments",
	CertificateRequestedAuditEventType:                                           "CertificateRequestedAuditEventType",
	CertificateDeliveredAuditEventType:                                           "CertificateDeliveredAuditEventType",
	ApplicationRecordDataType_Encoding_DefaultXml:                                "ApplicationRecordDataType_Encoding_DefaultXml",
	OpcUaGds_XmlSchema:                                                           "OpcUaGds_XmlSchema",
	OpcUaGds_XmlSchema_NamespaceUri:                                              "OpcUaGds_XmlSchema_NamespaceUri",
	OpcUaGds_XmlSchema_ApplicationRecordDataType:                                 "OpcUaGds_XmlSchema_ApplicationRecordDataType",
	ApplicationRecordDataType_Encoding_DefaultBinary:                             "ApplicationRecordDataType_Encoding_DefaultBinary",
	OpcUaGds_BinarySchema:                                                        "OpcUaGds_BinarySchema",
	OpcUaGds_BinarySchema_NamespaceUri:                                           "OpcUaGds_BinarySchema_NamespaceUri",
	OpcUaGds_BinarySchema_ApplicationRecordDataType:                              "OpcUaGds_BinarySchema_ApplicationRecordDataType",
	Directory:                                                                    "Directory",
	Directory_Applications:                                                       "Directory_Applications",
	Directory_FindApplications:                                                   "Directory_FindApplications",
	Directory_FindApplications_InputArguments:                                    "Directory_FindApplications_InputArguments",
	Directory_FindApplications_OutputArguments:                                   "Directory_FindApplications_OutputArguments",
	Directory_RegisterApplication:                                                "Directory_RegisterApplication",
	Directory_RegisterApplication_InputArguments:                                 "Directory_RegisterApplication_InputArguments",
	Directory_RegisterApplication_OutputArguments:                                "Directory_RegisterApplication_OutputArguments",
	Directory_UnregisterApplication:                                              "Directory_UnregisterApplication",
	Directory_UnregisterApplication_InputArguments:                               "Directory_UnregisterApplication_InputArguments",
	Directory_QueryServers:                                                       "Directory_QueryServers",
	Directory_QueryServers_InputArguments:                                        "Directory_QueryServers_InputArguments",
	Directory_QueryServers_OutputArguments:                                       "Directory_QueryServers_OutputArguments",
	Directory_StartNewKeyPairRequest:                                             "Directory_StartNewKeyPairRequest",
	Directory_StartNewKeyPairRequest_InputArguments:                              "Directory_StartNewKeyPairRequest_InputArguments",
	Directory_StartNewKeyPairRequest_OutputArguments:                             "Directory_StartNewKeyPairRequest_OutputArguments",
	Directory_StartSigningRequest:                                                "Directory_StartSigningRequest",
	Directory_StartSigningRequest_InputArguments:                                 "Directory_StartSigningRequest_InputArguments",
	Directory_StartSigningRequest_OutputArguments:                                "Directory_StartSigningRequest_OutputArguments",
	Directory_FinishRequest:                                                      "Directory_FinishRequest",
	Directory_FinishRequest_InputArguments:                                       "Directory_FinishRequest_InputArguments",
	Directory_FinishRequest_OutputArguments:                                      "Directory_FinishRequest_OutputArguments",
	DirectoryType_UpdateApplication:                                              "DirectoryType_UpdateApplication",
	DirectoryType_UpdateApplication_InputArguments:                               "DirectoryType_UpdateApplication_InputArguments",
	CertificateDirectoryType_GetTrustList:                                        "CertificateDirectoryType_GetTrustList",
	CertificateDirectoryType_GetTrustList_InputArguments:                         "CertificateDirectoryType_GetTrustList_InputArguments",
	CertificateDirectoryType_GetTrustList_OutputArguments:                        "CertificateDirectoryType_GetTrustList_OutputArguments",
	Directory_UpdateApplication:                                                  "Directory_UpdateApplication",
	Directory_UpdateApplication_InputArguments:                                   "Directory_UpdateApplication_InputArguments",
	Directory_GetTrustList:                                                       "Directory_GetTrustList",
	Directory_GetTrustList_InputArguments:                                        "Directory_GetTrustList_InputArguments",
	Directory_GetTrustList_OutputArguments:                                       "Directory_GetTrustList_OutputArguments",
	DirectoryType_GetApplication:                                                 "DirectoryType_GetApplication",
	DirectoryType_GetApplication_InputArguments:                                  "DirectoryType_GetApplication_InputArguments",
	DirectoryType_GetApplication_OutputArguments:                                 "DirectoryType_GetApplication_OutputArguments",
	Directory_GetApplication:                                                     "Directory_GetApplication",
	Directory_GetApplication_InputArguments:                                      "Directory_GetApplication_InputArguments",
	Directory_GetApplication_OutputArguments:                                     "Directory_GetApplication_OutputArguments",
	CertificateDirectoryType_GetCertificateStatus:                                "CertificateDirectoryType_GetCertificateStatus",
	CertificateDirectoryType_GetCertificateStatus_InputArguments:                 "CertificateDirectoryType_GetCertificateStatus_InputArguments",
	CertificateDirectoryType_GetCertificateStatus_OutputArguments:                "CertificateDirectoryType_GetCertificateStatus_OutputArguments",
	Directory_GetCertificateStatus:                                               "Directory_GetCertificateStatus",
	Directory_GetCertificateStatus_InputArguments:                                "Directory_GetCertificateStatus_InputArguments",
	Directory_GetCertificateStatus_OutputArguments:                               "Directory_GetCertificateStatus_OutputArguments",
	AuthorizationServicesConfigurationFolderType:                                 "AuthorizationServicesConfigurationFolderType",
	CertificateDirectoryType_GetCertificateGroups:                                "CertificateDirectoryType_GetCertificateGroups",
	CertificateDirectoryType_GetCertificateGroups_InputArguments:                 "CertificateDirectoryType_GetCertificateGroups_InputArguments",
	CertificateDirectoryType_GetCertificateGroups_OutputArguments:                "CertificateDirectoryType_GetCertificateGroups_OutputArguments",
	Directory_GetCertificateGroups:                                               "Directory_GetCertificateGroups",
	Directory_GetCertificateGroups_InputArguments:                                "Directory_GetCertificateGroups_InputArguments",
	Directory_GetCertificateGroups_OutputArguments:                               "Directory_GetCertificateGroups_OutputArguments",
	CertificateDirectoryType_CertificateGroups:                                   "CertificateDirectoryType_CertificateGroups",
	CertificateDirectoryType_CertificateGroups_DefaultApplicationGroup:           "CertificateDirectoryType_CertificateGroups_DefaultApplicationGroup",
	CertificateDirectoryType_CertificateGroups_DefaultApplicationGroup_TrustList: "CertificateDirectoryType_CertificateGroups_DefaultApplicationGroup_TrustList",
	Directory_CertificateGroups:                                                  "Directory_CertificateGroups",
	Directory_CertificateGroups_DefaultApplicationGroup:                          "Directory_CertificateGroups_DefaultApplicationGroup",
	Directory_CertificateGroups_DefaultApplicationGroup_TrustList:                "Directory_CertificateGroups_DefaultApplicationGroup_TrustList",
	CertificateRequestedAuditEventType_CertificateGroup:                          "CertificateRequestedAuditEventType_CertificateGroup",
	CertificateRequestedAuditEventType_CertificateType:                           "CertificateRequestedAuditEventType_CertificateType",
	CertificateDeliveredAuditEventType_CertificateGroup:                          "CertificateDeliveredAuditEventType_CertificateGroup",
	CertificateDeliveredAuditEventType_CertificateType:                           "CertificateDeliveredAuditEventType_CertificateType",
	DirectoryType_QueryApplications:                                              "DirectoryType_QueryApplications",
	DirectoryType_QueryApplications_InputArguments:                               "DirectoryType_QueryApplications_InputArguments",
	DirectoryType_QueryApplications_OutputArguments:                              "DirectoryType_QueryApplications_OutputArguments",
	AuthorizationServices:                                                        "AuthorizationServices",
	AuthorizationServiceType:                                                     "AuthorizationServiceType",
	AuthorizationServiceType_UserTokenPolicies:                                   "AuthorizationServiceType_UserTokenPolicies",
	AuthorizationServiceType_ServiceCertificate:                                  "AuthorizationServiceType_ServiceCertificate",
	AuthorizationServiceType_RequestAccessToken:                                  "AuthorizationServiceType_RequestAccessToken",
	AuthorizationServiceType_RequestAccessToken_InputArguments:                   "AuthorizationServiceType_RequestAccessToken_InputArguments",
	AuthorizationServiceType_RequestAccessToken_OutputArguments:                  "AuthorizationServiceType_RequestAccessToken_OutputArguments",
	AccessTokenIssuedAuditEventType:                                              "AccessTokenIssuedAuditEventType",
	Directory_QueryApplications:                                                  "Directory_QueryApplications",
	Directory_QueryApplications_InputArguments:                                   "Directory_QueryApplications_InputArguments",
	Directory_QueryApplications_OutputArguments:                                  "Directory_QueryApplications_OutputArguments",
	AuthorizationServiceType_ServiceUri:                                          "AuthorizationServiceType_ServiceUri",
	AuthorizationServiceType_GetServiceDescription:                               "AuthorizationServiceType_GetServiceDescription",
	AuthorizationServiceType_GetServiceDescription_OutputArguments:               "AuthorizationServiceType_GetServiceDescription_OutputArguments",
	KeyCredentialManagement:                                                      "KeyCredentialManagement",
	KeyCredentialServiceType:                                                     "KeyCredentialServiceType",
	KeyCredentialServiceType_ResourceUri:                                         "KeyCredentialServiceType_ResourceUri",
	KeyCredentialServiceType_ProfileUris:                                         "KeyCredentialServiceType_ProfileUris",
	KeyCredentialServiceType_StartRequest:                                        "KeyCredentialServiceType_StartRequest",
	KeyCredentialServiceType_StartRequest_InputArguments:                         "KeyCredentialServiceType_StartRequest_InputArguments",
	KeyCredentialServiceType_StartRequest_OutputArguments:                        "KeyCredentialServiceType_StartRequest_OutputArguments",
	KeyCredentialServiceType_FinishRequest:                                       "KeyCredentialServiceType_FinishRequest",
	KeyCredentialServiceType_FinishRequest_InputArguments:                        "KeyCredentialServiceType_FinishRequest_InputArguments",
	KeyCredentialServiceType_FinishRequest_OutputArguments:                       "KeyCredentialServiceType_FinishRequest_OutputArguments",
	KeyCredentialServiceType_Revoke:                                              "KeyCredentialServiceType_Revoke",
	KeyCredentialServiceType_Revoke_InputArguments:                               "KeyCredentialServiceType_Revoke_InputArguments",
	KeyCredentialRequestedAuditEventType:                                         "KeyCredentialRequestedAuditEventType",
	KeyCredentialDeliveredAuditEventType:                                         "KeyCredentialDeliveredAuditEventType",
	KeyCredentialRevokedAuditEventType:                                           "KeyCredentialRevokedAuditEventType",
	ApplicationRecordDataType_Encoding_DefaultJson:                               "ApplicationRecordDataType_Encoding_DefaultJson",
	OpcUaGds_BinarySchema_Deprecated:                                             "OpcUaGds_BinarySchema_Deprecated",
	OpcUaGds_XmlSchema_Deprecated:                                                "OpcUaGds_XmlSchema_Deprecated",
	CertificateDirectoryType_RevokeCertificate:                                   "CertificateDirectoryType_RevokeCertificate",
	CertificateDirectoryType_RevokeCertificate_InputArguments:                    "CertificateDirectoryType_RevokeCertificate_InputArguments",
	Directory_RevokeCertificate:                                                  "Directory_RevokeCertificate",
	Directory_RevokeCertificate_InputArguments:                                   "Directory_RevokeCertificate_InputArguments",
}

// Name returns the symbolic name of a GDS node id or an empty string.
func Name(id uint32) string {
	return name[id]
}
