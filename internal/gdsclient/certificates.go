// Copyright (C) 2021~2040 EdgeGo
//
// SPDX-License-Identifier: Apache-2.0

package gdsclient

import (
	"fmt"

	gdsid "github.com/edgego/device-opcua-gds/pkg/gds/id"
	"github.com/gopcua/opcua/ua"
)

// StartSigningRequest asks the GDS to sign a PKCS #10 certificate request.
// A nil group or type selects the defaults of the GDS.
func (c *Client) StartSigningRequest(applicationID, certificateGroupID, certificateTypeID *ua.NodeID, csr []byte) (*ua.NodeID, error) {
	out, err := c.call(gdsid.Directory_StartSigningRequest, 1,
		nodeVariant(applicationID),
		nodeVariant(certificateGroupID),
		nodeVariant(certificateTypeID),
		ua.MustVariant(csr),
	)
	if err != nil {
		return nil, err
	}
	return toNodeID("StartSigningRequest", out[0])
}

// NewKeyPairRequest holds the arguments of StartNewKeyPairRequest.
type NewKeyPairRequest struct {
	ApplicationID      *ua.NodeID
	CertificateGroupID *ua.NodeID
	CertificateTypeID  *ua.NodeID
	SubjectName        string
	DomainNames        []string
	// PrivateKeyFormat is "PFX" or "PEM".
	PrivateKeyFormat   string
	PrivateKeyPassword string
}

// StartNewKeyPairRequest asks the GDS to generate a key pair and a
// certificate for an application.
func (c *Client) StartNewKeyPairRequest(req NewKeyPairRequest) (*ua.NodeID, error) {
	names := req.DomainNames
	if names == nil {
		names = []string{}
	}
	out, err := c.call(gdsid.Directory_StartNewKeyPairRequest, 1,
		nodeVariant(req.ApplicationID),
		nodeVariant(req.CertificateGroupID),
		nodeVariant(req.CertificateTypeID),
		ua.MustVariant(req.SubjectName),
		ua.MustVariant(names),
		ua.MustVariant(req.PrivateKeyFormat),
		ua.MustVariant(req.PrivateKeyPassword),
	)
	if err != nil {
		return nil, err
	}
	return toNodeID("StartNewKeyPairRequest", out[0])
}

// IssuedCertificate is the result of FinishRequest.
type IssuedCertificate struct {
	Certificate        []byte
	PrivateKey         []byte
	IssuerCertificates [][]byte
}

// FinishRequest collects the outcome of a previous Start*Request. The GDS
// answers with Bad_NothingToDo while the request is still pending.
func (c *Client) FinishRequest(applicationID, requestID *ua.NodeID) (*IssuedCertificate, error) {
	out, err := c.call(gdsid.Directory_FinishRequest, 3,
		nodeVariant(applicationID),
		nodeVariant(requestID),
	)
	if err != nil {
		return nil, err
	}

	res := &IssuedCertificate{}
	if b, ok := out[0].Value().([]byte); ok {
		res.Certificate = b
	}
	if b, ok := out[1].Value().([]byte); ok {
		res.PrivateKey = b
	}
	switch x := out[2].Value().(type) {
	case [][]byte:
		res.IssuerCertificates = x
	case []byte:
		res.IssuerCertificates = [][]byte{x}
	case nil:
	default:
		return nil, fmt.Errorf("FinishRequest: %w: issuer certificates %T", ErrUnexpectedOutput, x)
	}
	return res, nil
}

// GetCertificateGroups returns the certificate groups assigned to an application.
func (c *Client) GetCertificateGroups(applicationID *ua.NodeID) ([]*ua.NodeID, error) {
	out, err := c.call(gdsid.Directory_GetCertificateGroups, 1, nodeVariant(applicationID))
	if err != nil {
		return nil, err
	}
	switch x := out[0].Value().(type) {
	case []*ua.NodeID:
		return x, nil
	case *ua.NodeID:
		return []*ua.NodeID{x}, nil
	case nil:
		return nil, nil
	}
	return nil, fmt.Errorf("GetCertificateGroups: %w: %T", ErrUnexpectedOutput, out[0].Value())
}

// GetTrustList returns the id of the TrustList object of a certificate group.
func (c *Client) GetTrustList(applicationID, certificateGroupID *ua.NodeID) (*ua.NodeID, error) {
	out, err := c.call(gdsid.Directory_GetTrustList, 1,
		nodeVariant(applicationID),
		nodeVariant(certificateGroupID),
	)
	if err != nil {
		return nil, err
	}
	return toNodeID("GetTrustList", out[0])
}

// GetCertificateStatus reports whether an application has to update a
// certificate.
func (c *Client) GetCertificateStatus(applicationID, certificateGroupID, certificateTypeID *ua.NodeID) (bool, error) {
	out, err := c.call(gdsid.Directory_GetCertificateStatus, 1,
		nodeVariant(applicationID),
		nodeVariant(certificateGroupID),
		nodeVariant(certificateTypeID),
	)
	if err != nil {
		return false, err
	}
	b, ok := out[0].Value().(bool)
	if !ok {
		return false, fmt.Errorf("GetCertificateStatus: %w: %T", ErrUnexpectedOutput, out[0].Value())
	}
	return b, nil
}

// RevokeCertificate revokes a certificate issued to an application.
func (c *Client) RevokeCertificate(applicationID *ua.NodeID, certificate []byte) error {
	_, err := c.call(gdsid.Directory_RevokeCertificate, 0,
		nodeVariant(applicationID),
		ua.MustVariant(certificate),
	)
	return err
}
