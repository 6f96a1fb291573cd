// Copyright (C) 2021~2040 EdgeGo
//
// SPDX-License-Identifier: Apache-2.0

package gds

import (
	"github.com/edgego/device-opcua-gds/pkg/gds/browsename"
	"github.com/edgego/device-opcua-gds/pkg/gds/id"
	"github.com/gopcua/opcua/ua"
)

// browse names of GDS nodes that are qualified by the core namespace
const (
	bnInputArguments          = "InputArguments"
	bnOutputArguments         = "OutputArguments"
	bnDefaultBinary           = "Default Binary"
	bnDefaultXML              = "Default XML"
	bnDefaultJSON             = "Default JSON"
	bnNamespaceURI            = "NamespaceUri"
	bnDeprecated              = "Deprecated"
	bnCertificateGroups       = "CertificateGroups"
	bnDefaultApplicationGroup = "DefaultApplicationGroup"
	bnTrustList               = "TrustList"
)

// symbols is ordered by id.
var symbols = []Symbol{
	{Name: "ApplicationRecordDataType", ID: id.ApplicationRecordDataType, Class: ua.NodeClassDataType, BrowseName: browsename.ApplicationRecordDataType, BrowseNamespace: OpcUaGds},
	{Name: "DirectoryType", ID: id.DirectoryType, Class: ua.NodeClassObjectType, BrowseName: browsename.DirectoryType, BrowseNamespace: OpcUaGds},
	{Name: "DirectoryType_Applications", ID: id.DirectoryType_Applications, Class: ua.NodeClassObject, BrowseName: browsename.Applications, BrowseNamespace: OpcUaGds},
	{Name: "DirectoryType_FindApplications", ID: id.DirectoryType_FindApplications, Class: ua.NodeClassMethod, BrowseName: browsename.FindApplications, BrowseNamespace: OpcUaGds},
	{Name: "DirectoryType_FindApplications_InputArguments", ID: id.DirectoryType_FindApplications_InputArguments, Class: ua.NodeClassVariable, BrowseName: bnInputArguments, BrowseNamespace: OpcUa},
	{Name: "DirectoryType_FindApplications_OutputArguments", ID: id.DirectoryType_FindApplications_OutputArguments, Class: ua.NodeClassVariable, BrowseName: bnOutputArguments, BrowseNamespace: OpcUa},
	{Name: "DirectoryType_RegisterApplication", ID: id.DirectoryType_RegisterApplication, Class: ua.NodeClassMethod, BrowseName: browsename.RegisterApplication, BrowseNamespace: OpcUaGds},
	{Name: "DirectoryType_RegisterApplication_InputArguments", ID: id.DirectoryType_RegisterApplication_InputArguments, Class: ua.NodeClassVariable, BrowseName: bnInputArguments, BrowseNamespace: OpcUa},
	{Name: "DirectoryType_RegisterApplication_OutputArguments", ID: id.DirectoryType_RegisterApplication_OutputArguments, Class: ua.NodeClassVariable, BrowseName: bnOutputArguments, BrowseNamespace: OpcUa},
	{Name: "DirectoryType_UnregisterApplication", ID: id.DirectoryType_UnregisterApplication, Class: ua.NodeClassMethod, BrowseName: browsename.UnregisterApplication, BrowseNamespace: OpcUaGds},
	{Name: "DirectoryType_UnregisterApplication_InputArguments", ID: id.DirectoryType_UnregisterApplication_InputArguments, Class: ua.NodeClassVariable, BrowseName: bnInputArguments, BrowseNamespace: OpcUa},
	{Name: "DirectoryType_QueryServers", ID: id.DirectoryType_QueryServers, Class: ua.NodeClassMethod, BrowseName: browsename.QueryServers, BrowseNamespace: OpcUaGds},
	{Name: "DirectoryType_QueryServers_InputArguments", ID: id.DirectoryType_QueryServers_InputArguments, Class: ua.NodeClassVariable, BrowseName: bnInputArguments, BrowseNamespace: OpcUa},
	{Name: "DirectoryType_QueryServers_OutputArguments", ID: id.DirectoryType_QueryServers_OutputArguments, Class: ua.NodeClassVariable, BrowseName: bnOutputArguments, BrowseNamespace: OpcUa},
	{Name: "ApplicationRegistrationChangedAuditEventType", ID: id.ApplicationRegistrationChangedAuditEventType, Class: ua.NodeClassObjectType, BrowseName: browsename.ApplicationRegistrationChangedAuditEventType, BrowseNamespace: OpcUaGds},
	{Name: "KeyCredentialManagementFolderType", ID: id.KeyCredentialManagementFolderType, Class: ua.NodeClassObjectType, BrowseName: browsename.KeyCredentialManagementFolderType, BrowseNamespace: OpcUaGds},
	{Name: "CertificateDirectoryType", ID: id.CertificateDirectoryType, Class: ua.NodeClassObjectType, BrowseName: browsename.CertificateDirectoryType, BrowseNamespace: OpcUaGds},
	{Name: "CertificateDirectoryType_StartNewKeyPairRequest", ID: id.CertificateDirectoryType_StartNewKeyPairRequest, Class: ua.NodeClassMethod, BrowseName: browsename.StartNewKeyPairRequest, BrowseNamespace: OpcUaGds},
	{Name: "CertificateDirectoryType_StartNewKeyPairRequest_InputArguments", ID: id.CertificateDirectoryType_StartNewKeyPairRequest_InputArguments, Class: ua.NodeClassVariable, BrowseName: bnInputArguments, BrowseNamespace: OpcUa},
	{Name: "CertificateDirectoryType_StartNewKeyPairRequest_OutputArguments", ID: id.CertificateDirectoryType_StartNewKeyPairRequest_OutputArguments, Class: ua.NodeClassVariable, BrowseName: bnOutputArguments, BrowseNamespace: OpcUa},
	{Name: "CertificateDirectoryType_StartSigningRequest", ID: id.CertificateDirectoryType_StartSigningRequest, Class: ua.NodeClassMethod, BrowseName: browsename.StartSigningRequest, BrowseNamespace: OpcUaGds},
	{Name: "CertificateDirectoryType_StartSigningRequest_InputArguments", ID: id.CertificateDirectoryType_StartSigningRequest_InputArguments, Class: ua.NodeClassVariable, BrowseName: bnInputArguments, BrowseNamespace: OpcUa},
	{Name: "CertificateDirectoryType_StartSigningRequest_OutputArguments", ID: id.CertificateDirectoryType_StartSigningRequest_OutputArguments, Class: ua.NodeClassVariable, BrowseName: bnOutputArguments, BrowseNamespace: OpcUa},
	{Name: "CertificateDirectoryType_FinishRequest", ID: id.CertificateDirectoryType_FinishRequest, Class: ua.NodeClassMethod, BrowseName: browsename.FinishRequest, BrowseNamespace: OpcUaGds},
	{Name: "CertificateDirectoryType_FinishRequest_InputArguments", ID: id.CertificateDirectoryType_FinishRequest_InputArguments, Class: ua.NodeClassVariable, BrowseName: bnInputArguments, BrowseNamespace: OpcUa},
	{Name: "CertificateDirectoryType_FinishRequest_OutputArguments", ID: id.CertificateDirectoryType_FinishRequest_OutputArguments, Class: ua.NodeClassVariable, BrowseName: bnOutputArguments, BrowseNamespace: OpcUa},
	{Name: "CertificateRequestedAuditEventType", ID: id.CertificateRequestedAuditEventType, Class: ua.NodeClassObjectType, BrowseName: browsename.CertificateRequestedAuditEventType, BrowseNamespace: OpcUaGds},
	{Name: "CertificateDeliveredAuditEventType", ID: id.CertificateDeliveredAuditEventType, Class: ua.NodeClassObjectType, BrowseName: browsename.CertificateDeliveredAuditEventType, BrowseNamespace: OpcUaGds},
	{Name: "ApplicationRecordDataType_Encoding_DefaultXml", ID: id.ApplicationRecordDataType_Encoding_DefaultXml, Class: ua.NodeClassObject, BrowseName: bnDefaultXML, BrowseNamespace: OpcUa},
	{Name: "OpcUaGds_XmlSchema", ID: id.OpcUaGds_XmlSchema, Class: ua.NodeClassVariable, BrowseName: browsename.OpcUaGds, BrowseNamespace: OpcUaGds},
	{Name: "OpcUaGds_XmlSchema_NamespaceUri", ID: id.OpcUaGds_XmlSchema_NamespaceUri, Class: ua.NodeClassVariable, BrowseName: bnNamespaceURI, BrowseNamespace: OpcUa},
	{Name: "OpcUaGds_XmlSchema_ApplicationRecordDataType", ID: id.OpcUaGds_XmlSchema_ApplicationRecordDataType, Class: ua.NodeClassVariable, BrowseName: browsename.ApplicationRecordDataType, BrowseNamespace: OpcUaGds},
	{Name: "ApplicationRecordDataType_Encoding_DefaultBinary", ID: id.ApplicationRecordDataType_Encoding_DefaultBinary, Class: ua.NodeClassObject, BrowseName: bnDefaultBinary, BrowseNamespace: OpcUa},
	{Name: "OpcUaGds_BinarySchema", ID: id.OpcUaGds_BinarySchema, Class: ua.NodeClassVariable, BrowseName: browsename.OpcUaGds, BrowseNamespace: OpcUaGds},
	{Name: "OpcUaGds_BinarySchema_NamespaceUri", ID: id.OpcUaGds_BinarySchema_NamespaceUri, Class: ua.NodeClassVariable, BrowseName: bnNamespaceURI, BrowseNamespace: OpcUa},
	{Name: "OpcUaGds_BinarySchema_ApplicationRecordDataType", ID: id.OpcUaGds_BinarySchema_ApplicationRecordDataType, Class: ua.NodeClassVariable, BrowseName: browsename.ApplicationRecordDataType, BrowseNamespace: OpcUaGds},
	{Name: "Directory", ID: id.Directory, Class: ua.NodeClassObject, BrowseName: browsename.Directory, BrowseNamespace: OpcUaGds},
	{Name: "Directory_Applications", ID: id.Directory_Applications, Class: ua.NodeClassObject, BrowseName: browsename.Applications, BrowseNamespace: OpcUaGds},
	{Name: "Directory_FindApplications", ID: id.Directory_FindApplications, Class: ua.NodeClassMethod, BrowseName: browsename.FindApplications, BrowseNamespace: OpcUaGds},
	{Name: "Directory_FindApplications_InputArguments", ID: id.Directory_FindApplications_InputArguments, Class: ua.NodeClassVariable, BrowseName: bnInputArguments, BrowseNamespace: OpcUa},
	{Name: "Directory_FindApplications_OutputArguments", ID: id.Directory_FindApplications_OutputArguments, Class: ua.NodeClassVariable, BrowseName: bnOutputArguments, BrowseNamespace: OpcUa},
	{Name: "Directory_RegisterApplication", ID: id.Directory_RegisterApplication, Class: ua.NodeClassMethod, BrowseName: browsename.RegisterApplication, BrowseNamespace: OpcUaGds},
	{Name: "Directory_RegisterApplication_InputArguments", ID: id.Directory_RegisterApplication_InputArguments, Class: ua.NodeClassVariable, BrowseName: bnInputArguments, BrowseNamespace: OpcUa},
	{Name: "Directory_RegisterApplication_OutputArguments", ID: id.Directory_RegisterApplication_OutputArguments, Class: ua.NodeClassVariable, BrowseName: bnOutputArguments, BrowseNamespace: OpcUa},
	{Name: "Directory_UnregisterApplication", ID: id.Directory_UnregisterApplication, Class: ua.NodeClassMethod, BrowseName: browsename.UnregisterApplication, BrowseNamespace: OpcUaGds},
	{Name: "Directory_UnregisterApplication_InputArguments", ID: id.Directory_UnregisterApplication_InputArguments, Class: ua.NodeClassVariable, BrowseName: bnInputArguments, BrowseNamespace: OpcUa},
	{Name: "Directory_QueryServers", ID: id.Directory_QueryServers, Class: ua.NodeClassMethod, BrowseName: browsename.QueryServers, BrowseNamespace: OpcUaGds},
	{Name: "Directory_QueryServers_InputArguments", ID: id.Directory_QueryServers_InputArguments, Class: ua.NodeClassVariable, BrowseName: bnInputArguments, BrowseNamespace: OpcUa},
	{Name: "Directory_QueryServers_OutputArguments", ID: id.Directory_QueryServers_OutputArguments, Class: ua.NodeClassVariable, BrowseName: bnOutputArguments, BrowseNamespace: OpcUa},
	{Name: "Directory_StartNewKeyPairRequest", ID: id.Directory_StartNewKeyPairRequest, Class: ua.NodeClassMethod, BrowseName: browsename.StartNewKeyPairRequest, BrowseNamespace: OpcUaGds},
	{Name: "Directory_StartNewKeyPairRequest_InputArguments", ID: id.Directory_StartNewKeyPairRequest_InputArguments, Class: ua.NodeClassVariable, BrowseName: bnInputArguments, BrowseNamespace: OpcUa},
	{Name: "Directory_StartNewKeyPairRequest_OutputArguments", ID: id.Directory_StartNewKeyPairRequest_OutputArguments, Class: ua.NodeClassVariable, BrowseName: bnOutputArguments, BrowseNamespace: OpcUa},
	{Name: "Directory_StartSigningRequest", ID: id.Directory_StartSigningRequest, Class: ua.NodeClassMethod, BrowseName: browsename.StartSigningRequest, BrowseNamespace: OpcUaGds},
	{Name: "Directory_StartSigningRequest_InputArguments", ID: id.Directory_StartSigningRequest_InputArguments, Class: ua.NodeClassVariable, BrowseName: bnInputArguments, BrowseNamespace: OpcUa},
	{Name: "Directory_StartSigningRequest_OutputArguments", ID: id.Directory_StartSigningRequest_OutputArguments, Class: ua.NodeClassVariable, BrowseName: bnOutputArguments, BrowseNamespace: OpcUa},
	{Name: "Directory_FinishRequest", ID: id.Directory_FinishRequest, Class: ua.NodeClassMethod, BrowseName: browsename.FinishRequest, BrowseNamespace: OpcUaGds},
	{Name: "Directory_FinishRequest_InputArguments", ID: id.Directory_FinishRequest_InputArguments, Class: ua.NodeClassVariable, BrowseName: bnInputArguments, BrowseNamespace: OpcUa},
	{Name: "Directory_FinishRequest_OutputArguments", ID: id.Directory_FinishRequest_OutputArguments, Class: ua.NodeClassVariable, BrowseName: bnOutputArguments, BrowseNamespace: OpcUa},
	{Name: "DirectoryType_UpdateApplication", ID: id.DirectoryType_UpdateApplication, Class: ua.NodeClassMethod, BrowseName: browsename.UpdateApplication, BrowseNamespace: OpcUaGds},
	{Name: "DirectoryType_UpdateApplication_InputArguments", ID: id.DirectoryType_UpdateApplication_InputArguments, Class: ua.NodeClassVariable, BrowseName: bnInputArguments, BrowseNamespace: OpcUa},
	{Name: "CertificateDirectoryType_GetTrustList", ID: id.CertificateDirectoryType_GetTrustList, Class: ua.NodeClassMethod, BrowseName: browsename.GetTrustList, BrowseNamespace: OpcUaGds},
	{Name: "CertificateDirectoryType_GetTrustList_InputArguments", ID: id.CertificateDirectoryType_GetTrustList_InputArguments, Class: ua.NodeClassVariable, BrowseName: bnInputArguments, BrowseNamespace: OpcUa},
	{Name: "CertificateDirectoryType_GetTrustList_OutputArguments", ID: id.CertificateDirectoryType_GetTrustList_OutputArguments, Class: ua.NodeClassVariable, BrowseName: bnOutputArguments, BrowseNamespace: OpcUa},
	{Name: "Directory_UpdateApplication", ID: id.Directory_UpdateApplication, Class: ua.NodeClassMethod, BrowseName: browsename.UpdateApplication, BrowseNamespace: OpcUaGds},
	{Name: "Directory_UpdateApplication_InputArguments", ID: id.Directory_UpdateApplication_InputArguments, Class: ua.NodeClassVariable, BrowseName: bnInputArguments, BrowseNamespace: OpcUa},
	{Name: "Directory_GetTrustList", ID: id.Directory_GetTrustList, Class: ua.NodeClassMethod, BrowseName: browsename.GetTrustList, BrowseNamespace: OpcUaGds},
	{Name: "Directory_GetTrustList_InputArguments", ID: id.Directory_GetTrustList_InputArguments, Class: ua.NodeClassVariable, BrowseName: bnInputArguments, BrowseNamespace: OpcUa},
	{Name: "Directory_GetTrustList_OutputArguments", ID: id.Directory_GetTrustList_OutputArguments, Class: ua.NodeClassVariable, BrowseName: bnOutputArguments, BrowseNamespace: OpcUa},
	{Name: "DirectoryType_GetApplication", ID: id.DirectoryType_GetApplication, Class: ua.NodeClassMethod, BrowseName: browsename.GetApplication, BrowseNamespace: OpcUaGds},
	{Name: "DirectoryType_GetApplication_InputArguments", ID: id.DirectoryType_GetApplication_InputArguments, Class: ua.NodeClassVariable, BrowseName: bnInputArguments, BrowseNamespace: OpcUa},
	{Name: "DirectoryType_GetApplication_OutputArguments", ID: id.DirectoryType_GetApplication_OutputArguments, Class: ua.NodeClassVariable, BrowseName: bnOutputArguments, BrowseNamespace: OpcUa},
	{Name: "Directory_GetApplication", ID: id.Directory_GetApplication, Class: ua.NodeClassMethod, BrowseName: browsename.GetApplication, BrowseNamespace: OpcUaGds},
	{Name: "Directory_GetApplication_InputArguments", ID: id.Directory_GetApplication_InputArguments, Class: ua.NodeClassVariable, BrowseName: bnInputArguments, BrowseNamespace: OpcUa},
	{Name: "Directory_GetApplication_OutputArguments", ID: id.Directory_GetApplication_OutputArguments, Class: ua.NodeClassVariable, BrowseName: bnOutputArguments, BrowseNamespace: OpcUa},
	{Name: "CertificateDirectoryType_GetCertificateStatus", ID: id.CertificateDirectoryType_GetCertificateStatus, Class: ua.NodeClassMethod, BrowseName: browsename.GetCertificateStatus, BrowseNamespace: OpcUaGds},
	{Name: "CertificateDirectoryType_GetCertificateStatus_InputArguments", ID: id.CertificateDirectoryType_GetCertificateStatus_InputArguments, Class: ua.NodeClassVariable, BrowseName: bnInputArguments, BrowseNamespace: OpcUa},
	{Name: "CertificateDirectoryType_GetCertificateStatus_OutputArguments", ID: id.CertificateDirectoryType_GetCertificateStatus_OutputArguments, Class: ua.NodeClassVariable, BrowseName: bnOutputArguments, BrowseNamespace: OpcUa},
	{Name: "Directory_GetCertificateStatus", ID: id.Directory_GetCertificateStatus, Class: ua.NodeClassMethod, BrowseName: browsename.GetCertificateStatus, BrowseNamespace: OpcUaGds},
	{Name: "Directory_GetCertificateStatus_InputArguments", ID: id.Directory_GetCertificateStatus_InputArguments, Class: ua.NodeClassVariable, BrowseName: bnInputArguments, BrowseNamespace: OpcUa},
	{Name: "Directory_GetCertificateStatus_OutputArguments", ID: id.Directory_GetCertificateStatus_OutputArguments, Class: ua.NodeClassVariable, BrowseName: bnOutputArguments, BrowseNamespace: OpcUa},
	{Name: "AuthorizationServicesConfigurationFolderType", ID: id.AuthorizationServicesConfigurationFolderType, Class: ua.NodeClassObjectType, BrowseName: browsename.AuthorizationServicesConfigurationFolderType, BrowseNamespace: OpcUaGds},
	{Name: "CertificateDirectoryType_GetCertificateGroups", ID: id.CertificateDirectoryType_GetCertificateGroups, Class: ua.NodeClassMethod, BrowseName: browsename.GetCertificateGroups, BrowseNamespace: OpcUaGds},
	{Name: "CertificateDirectoryType_GetCertificateGroups_InputArguments", ID: id.CertificateDirectoryType_GetCertificateGroups_InputArguments, Class: ua.NodeClassVariable, BrowseName: bnInputArguments, BrowseNamespace: OpcUa},
	{Name: "CertificateDirectoryType_GetCertificateGroups_OutputArguments", ID: id.CertificateDirectoryType_GetCertificateGroups_OutputArguments, Class: ua.NodeClassVariable, BrowseName: bnOutputArguments, BrowseNamespace: OpcUa},
	{Name: "Directory_GetCertificateGroups", ID: id.Directory_GetCertificateGroups, Class: ua.NodeClassMethod, BrowseName: browsename.GetCertificateGroups, BrowseNamespace: OpcUaGds},
	{Name: "Directory_GetCertificateGroups_InputArguments", ID: id.Directory_GetCertificateGroups_InputArguments, Class: ua.NodeClassVariable, BrowseName: bnInputArguments, BrowseNamespace: OpcUa},
	{Name: "Directory_GetCertificateGroups_OutputArguments", ID: id.Directory_GetCertificateGroups_OutputArguments, Class: ua.NodeClassVariable, BrowseName: bnOutputArguments, BrowseNamespace: OpcUa},
	{Name: "CertificateDirectoryType_CertificateGroups", ID: id.CertificateDirectoryType_CertificateGroups, Class: ua.NodeClassObject, BrowseName: bnCertificateGroups, BrowseNamespace: OpcUa},
	{Name: "CertificateDirectoryType_CertificateGroups_DefaultApplicationGroup", ID: id.CertificateDirectoryType_CertificateGroups_DefaultApplicationGroup, Class: ua.NodeClassObject, BrowseName: bnDefaultApplicationGroup, BrowseNamespace: OpcUa},
	{Name: "CertificateDirectoryType_CertificateGroups_DefaultApplicationGroup_TrustList", ID: id.CertificateDirectoryType_CertificateGroups_DefaultApplicationGroup_TrustList, Class: ua.NodeClassObject, BrowseName: bnTrustList, BrowseNamespace: OpcUa},
	{Name: "Directory_CertificateGroups", ID: id.Directory_CertificateGroups, Class: ua.NodeClassObject, BrowseName: bnCertificateGroups, BrowseNamespace: OpcUa},
	{Name: "Directory_CertificateGroups_DefaultApplicationGroup", ID: id.Directory_CertificateGroups_DefaultApplicationGroup, Class: ua.NodeClassObject, BrowseName: bnDefaultApplicationGroup, BrowseNamespace: OpcUa},
	{Name: "Directory_CertificateGroups_DefaultApplicationGroup_TrustList", ID: id.Directory_CertificateGroups_DefaultApplicationGroup_TrustList, Class: ua.NodeClassObject, BrowseName: bnTrustList, BrowseNamespace: OpcUa},
	{Name: "CertificateRequestedAuditEventType_CertificateGroup", ID: id.CertificateRequestedAuditEventType_CertificateGroup, Class: ua.NodeClassVariable, BrowseName: browsename.CertificateGroup, BrowseNamespace: OpcUaGds},
	{Name: "CertificateRequestedAuditEventType_CertificateType", ID: id.CertificateRequestedAuditEventType_CertificateType, Class: ua.NodeClassVariable, BrowseName: browsename.CertificateType, BrowseNamespace: OpcUaGds},
	{Name: "CertificateDeliveredAuditEventType_CertificateGroup", ID: id.CertificateDeliveredAuditEventType_CertificateGroup, Class: ua.NodeClassVariable, BrowseName: browsename.CertificateGroup, BrowseNamespace: OpcUaGds},
	{Name: "CertificateDeliveredAuditEventType_CertificateType", ID: id.CertificateDeliveredAuditEventType_CertificateType, Class: ua.NodeClassVariable, BrowseName: browsename.CertificateType, BrowseNamespace: OpcUaGds},
	{Name: "DirectoryType_QueryApplications", ID: id.DirectoryType_QueryApplications, Class: ua.NodeClassMethod, BrowseName: browsename.QueryApplications, BrowseNamespace: OpcUaGds},
	{Name: "DirectoryType_QueryApplications_InputArguments", ID: id.DirectoryType_QueryApplications_InputArguments, Class: ua.NodeClassVariable, BrowseName: bnInputArguments, BrowseNamespace: OpcUa},
	{Name: "DirectoryType_QueryApplications_OutputArguments", ID: id.DirectoryType_QueryApplications_OutputArguments, Class: ua.NodeClassVariable, BrowseName: bnOutputArguments, BrowseNamespace: OpcUa},
	{Name: "AuthorizationServices", ID: id.AuthorizationServices, Class: ua.NodeClassObject, BrowseName: browsename.AuthorizationServices, BrowseNamespace: OpcUaGds},
	{Name: "AuthorizationServiceType", ID: id.AuthorizationServiceType, Class: ua.NodeClassObjectType, BrowseName: browsename.AuthorizationServiceType, BrowseNamespace: OpcUaGds},
	{Name: "AuthorizationServiceType_UserTokenPolicies", ID: id.AuthorizationServiceType_UserTokenPolicies, Class: ua.NodeClassVariable, BrowseName: browsename.UserTokenPolicies, BrowseNamespace: OpcUaGds},
	{Name: "AuthorizationServiceType_ServiceCertificate", ID: id.AuthorizationServiceType_ServiceCertificate, Class: ua.NodeClassVariable, BrowseName: browsename.ServiceCertificate, BrowseNamespace: OpcUaGds},
	{Name: "AuthorizationServiceType_RequestAccessToken", ID: id.AuthorizationServiceType_RequestAccessToken, Class: ua.NodeClassMethod, BrowseName: browsename.RequestAccessToken, BrowseNamespace: OpcUaGds},
	{Name: "AuthorizationServiceType_RequestAccessToken_InputArguments", ID: id.AuthorizationServiceType_RequestAccessToken_InputArguments, Class: ua.NodeClassVariable, BrowseName: bnInputArguments, BrowseNamespace: OpcUa},
	{Name: "AuthorizationServiceType_RequestAccessToken_OutputArguments", ID: id.AuthorizationServiceType_RequestAccessToken_OutputArguments, Class: ua.NodeClassVariable, BrowseName: bnOutputArguments, BrowseNamespace: OpcUa},
	{Name: "AccessTokenIssuedAuditEventType", ID: id.AccessTokenIssuedAuditEventType, Class: ua.NodeClassObjectType, BrowseName: browsename.AccessTokenIssuedAuditEventType, BrowseNamespace: OpcUaGds},
	{Name: "Directory_QueryApplications", ID: id.Directory_QueryApplications, Class: ua.NodeClassMethod, BrowseName: browsename.QueryApplications, BrowseNamespace: OpcUaGds},
	{Name: "Directory_QueryApplications_InputArguments", ID: id.Directory_QueryApplications_InputArguments, Class: ua.NodeClassVariable, BrowseName: bnInputArguments, BrowseNamespace: OpcUa},
	{Name: "Directory_QueryApplications_OutputArguments", ID: id.Directory_QueryApplications_OutputArguments, Class: ua.NodeClassVariable, BrowseName: bnOutputArguments, BrowseNamespace: OpcUa},
	{Name: "AuthorizationServiceType_ServiceUri", ID: id.AuthorizationServiceType_ServiceUri, Class: ua.NodeClassVariable, BrowseName: browsename.ServiceUri, BrowseNamespace: OpcUaGds},
	{Name: "AuthorizationServiceType_GetServiceDescription", ID: id.AuthorizationServiceType_GetServiceDescription, Class: ua.NodeClassMethod, BrowseName: browsename.GetServiceDescription, BrowseNamespace: OpcUaGds},
	{Name: "AuthorizationServiceType_GetServiceDescription_OutputArguments", ID: id.AuthorizationServiceType_GetServiceDescription_OutputArguments, Class: ua.NodeClassVariable, BrowseName: bnOutputArguments, BrowseNamespace: OpcUa},
	{Name: "KeyCredentialManagement", ID: id.KeyCredentialManagement, Class: ua.NodeClassObject, BrowseName: browsename.KeyCredentialManagement, BrowseNamespace: OpcUaGds},
	{Name: "KeyCredentialServiceType", ID: id.KeyCredentialServiceType, Class: ua.NodeClassObjectType, BrowseName: browsename.KeyCredentialServiceType, BrowseNamespace: OpcUaGds},
	{Name: "KeyCredentialServiceType_ResourceUri", ID: id.KeyCredentialServiceType_ResourceUri, Class: ua.NodeClassVariable, BrowseName: browsename.ResourceUri, BrowseNamespace: OpcUaGds},
	{Name: "KeyCredentialServiceType_ProfileUris", ID: id.KeyCredentialServiceType_ProfileUris, Class: ua.NodeClassVariable, BrowseName: browsename.ProfileUris, BrowseNamespace: OpcUaGds},
	{Name: "KeyCredentialServiceType_StartRequest", ID: id.KeyCredentialServiceType_StartRequest, Class: ua.NodeClassMethod, BrowseName: browsename.StartRequest, BrowseNamespace: OpcUaGds},
	{Name: "KeyCredentialServiceType_StartRequest_InputArguments", ID: id.KeyCredentialServiceType_StartRequest_InputArguments, Class: ua.NodeClassVariable, BrowseName: bnInputArguments, BrowseNamespace: OpcUa},
	{Name: "KeyCredentialServiceType_StartRequest_OutputArguments", ID: id.KeyCredentialServiceType_StartRequest_OutputArguments, Class: ua.NodeClassVariable, BrowseName: bnOutputArguments, BrowseNamespace: OpcUa},
	{Name: "KeyCredentialServiceType_FinishRequest", ID: id.KeyCredentialServiceType_FinishRequest, Class: ua.NodeClassMethod, BrowseName: browsename.FinishRequest, BrowseNamespace: OpcUaGds},
	{Name: "KeyCredentialServiceType_FinishRequest_InputArguments", ID: id.KeyCredentialServiceType_FinishRequest_InputArguments, Class: ua.NodeClassVariable, BrowseName: bnInputArguments, BrowseNamespace: OpcUa},
	{Name: "KeyCredentialServiceType_FinishRequest_OutputArguments", ID: id.KeyCredentialServiceType_FinishRequest_OutputArguments, Class: ua.NodeClassVariable, BrowseName: bnOutputArguments, BrowseNamespace: OpcUa},
	{Name: "KeyCredentialServiceType_Revoke", ID: id.KeyCredentialServiceType_Revoke, Class: ua.NodeClassMethod, BrowseName: browsename.Revoke, BrowseNamespace: OpcUaGds},
	{Name: "KeyCredentialServiceType_Revoke_InputArguments", ID: id.KeyCredentialServiceType_Revoke_InputArguments, Class: ua.NodeClassVariable, BrowseName: bnInputArguments, BrowseNamespace: OpcUa},
	{Name: "KeyCredentialRequestedAuditEventType", ID: id.KeyCredentialRequestedAuditEventType, Class: ua.NodeClassObjectType, BrowseName: browsename.KeyCredentialRequestedAuditEventType, BrowseNamespace: OpcUaGds},
	{Name: "KeyCredentialDeliveredAuditEventType", ID: id.KeyCredentialDeliveredAuditEventType, Class: ua.NodeClassObjectType, BrowseName: browsename.KeyCredentialDeliveredAuditEventType, BrowseNamespace: OpcUaGds},
	{Name: "KeyCredentialRevokedAuditEventType", ID: id.KeyCredentialRevokedAuditEventType, Class: ua.NodeClassObjectType, BrowseName: browsename.KeyCredentialRevokedAuditEventType, BrowseNamespace: OpcUaGds},
	{Name: "ApplicationRecordDataType_Encoding_DefaultJson", ID: id.ApplicationRecordDataType_Encoding_DefaultJson, Class: ua.NodeClassObject, BrowseName: bnDefaultJSON, BrowseNamespace: OpcUa},
	{Name: "OpcUaGds_BinarySchema_Deprecated", ID: id.OpcUaGds_BinarySchema_Deprecated, Class: ua.NodeClassVariable, BrowseName: bnDeprecated, BrowseNamespace: OpcUa},
	{Name: "OpcUaGds_XmlSchema_Deprecated", ID: id.OpcUaGds_XmlSchema_Deprecated, Class: ua.NodeClassVariable, BrowseName: bnDeprecated, BrowseNamespace: OpcUa},
	{Name: "CertificateDirectoryType_RevokeCertificate", ID: id.CertificateDirectoryType_RevokeCertificate, Class: ua.NodeClassMethod, BrowseName: browsename.RevokeCertificate, BrowseNamespace: OpcUaGds},
	{Name: "CertificateDirectoryType_RevokeCertificate_InputArguments", ID: id.CertificateDirectoryType_RevokeCertificate_InputArguments, Class: ua.NodeClassVariable, BrowseName: bnInputArguments, BrowseNamespace: OpcUa},
	{Name: "Directory_RevokeCertificate", ID: id.Directory_RevokeCertificate, Class: ua.NodeClassMethod, BrowseName: browsename.RevokeCertificate, BrowseNamespace: OpcUaGds},
	{Name: "Directory_RevokeCertificate_InputArguments", ID: id.Directory_RevokeCertificate_InputArguments, Class: ua.NodeClassVariable, BrowseName: bnInputArguments, BrowseNamespace: OpcUa},
}
