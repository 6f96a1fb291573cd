// Copyright (C) 2021~2040 EdgeGo
//
// SPDX-License-Identifier: Apache-2.0

package gdsclient

import (
	"fmt"
	"time"

	gdsid "github.com/edgego/device-opcua-gds/pkg/gds/id"
	"github.com/gopcua/opcua/ua"
)

// FindApplications returns the registered applications with the given
// ApplicationUri.
func (c *Client) FindApplications(applicationURI string) ([]*ApplicationRecord, error) {
	out, err := c.call(gdsid.Directory_FindApplications, 1, ua.MustVariant(applicationURI))
	if err != nil {
		return nil, err
	}
	recs, err := toRecords(out[0].Value())
	if err != nil {
		return nil, fmt.Errorf("FindApplications: %w", err)
	}
	return recs, nil
}

// RegisterApplication registers an application and returns the id the GDS
// assigned to it.
func (c *Client) RegisterApplication(rec *ApplicationRecord) (*ua.NodeID, error) {
	arg, err := c.recordVariant(rec)
	if err != nil {
		return nil, fmt.Errorf("RegisterApplication: %w", err)
	}
	out, err := c.call(gdsid.Directory_RegisterApplication, 1, arg)
	if err != nil {
		return nil, err
	}
	return toNodeID("RegisterApplication", out[0])
}

// UpdateApplication replaces the record of an already registered application.
func (c *Client) UpdateApplication(rec *ApplicationRecord) error {
	if rec == nil || rec.ApplicationID == nil {
		return fmt.Errorf("UpdateApplication: application id required")
	}
	arg, err := c.recordVariant(rec)
	if err != nil {
		return fmt.Errorf("UpdateApplication: %w", err)
	}
	_, err = c.call(gdsid.Directory_UpdateApplication, 0, arg)
	return err
}

// UnregisterApplication removes an application from the directory.
func (c *Client) UnregisterApplication(applicationID *ua.NodeID) error {
	_, err := c.call(gdsid.Directory_UnregisterApplication, 0, nodeVariant(applicationID))
	return err
}

// GetApplication returns the record of a registered application.
func (c *Client) GetApplication(applicationID *ua.NodeID) (*ApplicationRecord, error) {
	out, err := c.call(gdsid.Directory_GetApplication, 1, nodeVariant(applicationID))
	if err != nil {
		return nil, err
	}
	rec, err := toRecord(out[0].Value())
	if err != nil {
		return nil, fmt.Errorf("GetApplication: %w", err)
	}
	return rec, nil
}

// QueryServersRequest holds the filters of QueryServers. Empty fields match
// everything.
type QueryServersRequest struct {
	StartingRecordID   uint32
	MaxRecordsToReturn uint32
	ApplicationName    string
	ApplicationURI     string
	ProductURI         string
	ServerCapabilities []string
}

// QueryServersResult is the answer to QueryServers.
type QueryServersResult struct {
	LastCounterResetTime time.Time
	Servers              []*ua.ServerOnNetwork
}

// QueryServers returns the servers known to the GDS.
func (c *Client) QueryServers(req QueryServersRequest) (*QueryServersResult, error) {
	caps := req.ServerCapabilities
	if caps == nil {
		caps = []string{}
	}
	out, err := c.call(gdsid.Directory_QueryServers, 2,
		ua.MustVariant(req.StartingRecordID),
		ua.MustVariant(req.MaxRecordsToReturn),
		ua.MustVariant(req.ApplicationName),
		ua.MustVariant(req.ApplicationURI),
		ua.MustVariant(req.ProductURI),
		ua.MustVariant(caps),
	)
	if err != nil {
		return nil, err
	}

	res := &QueryServersResult{}
	if t, ok := out[0].Value().(time.Time); ok {
		res.LastCounterResetTime = t
	}
	servers, err := extensionValues(out[1].Value())
	if err != nil {
		return nil, fmt.Errorf("QueryServers: %w", err)
	}
	for _, v := range servers {
		switch s := v.(type) {
		case *ua.ServerOnNetwork:
			res.Servers = append(res.Servers, s)
		case ua.ServerOnNetwork:
			res.Servers = append(res.Servers, &s)
		default:
			return nil, fmt.Errorf("QueryServers: %w: %T", ErrUnexpectedOutput, v)
		}
	}
	return res, nil
}

// QueryApplicationsRequest holds the filters of QueryApplications.
type QueryApplicationsRequest struct {
	StartingRecordID   uint32
	MaxRecordsToReturn uint32
	ApplicationName    string
	ApplicationURI     string
	// ApplicationType is a mask: 0 any, 1 servers, 2 clients.
	ApplicationType    uint32
	ProductURI         string
	ServerCapabilities []string
}

// QueryApplicationsResult is the answer to QueryApplications.
type QueryApplicationsResult struct {
	LastCounterResetTime time.Time
	NextRecordID         uint32
	Applications         []*ua.ApplicationDescription
}

// QueryApplications returns the applications known to the GDS.
func (c *Client) QueryApplications(req QueryApplicationsRequest) (*QueryApplicationsResult, error) {
	caps := req.ServerCapabilities
	if caps == nil {
		caps = []string{}
	}
	out, err := c.call(gdsid.Directory_QueryApplications, 3,
		ua.MustVariant(req.StartingRecordID),
		ua.MustVariant(req.MaxRecordsToReturn),
		ua.MustVariant(req.ApplicationName),
		ua.MustVariant(req.ApplicationURI),
		ua.MustVariant(req.ApplicationType),
		ua.MustVariant(req.ProductURI),
		ua.MustVariant(caps),
	)
	if err != nil {
		return nil, err
	}

	res := &QueryApplicationsResult{}
	if t, ok := out[0].Value().(time.Time); ok {
		res.LastCounterResetTime = t
	}
	if n, ok := out[1].Value().(uint32); ok {
		res.NextRecordID = n
	}
	apps, err := extensionValues(out[2].Value())
	if err != nil {
		return nil, fmt.Errorf("QueryApplications: %w", err)
	}
	for _, v := range apps {
		switch a := v.(type) {
		case *ua.ApplicationDescription:
			res.Applications = append(res.Applications, a)
		case ua.ApplicationDescription:
			res.Applications = append(res.Applications, &a)
		default:
			return nil, fmt.Errorf("QueryApplications: %w: %T", ErrUnexpectedOutput, v)
		}
	}
	return res, nil
}

func extensionValues(v interface{}) ([]interface{}, error) {
	switch x := v.(type) {
	case nil:
		return nil, nil
	case []*ua.ExtensionObject:
		out := make([]interface{}, 0, len(x))
		for _, eo := range x {
			if eo != nil && eo.Value != nil {
				out = append(out, eo.Value)
			}
		}
		return out, nil
	case *ua.ExtensionObject:
		if x == nil || x.Value == nil {
			return nil, nil
		}
		return []interface{}{x.Value}, nil
	}
	return nil, fmt.Errorf("%w: %T is not an extension object array", ErrUnexpectedOutput, v)
}

func nodeVariant(n *ua.NodeID) *ua.Variant {
	if n == nil {
		n = ua.NewTwoByteNodeID(0)
	}
	return ua.MustVariant(n)
}

func toNodeID(method string, v *ua.Variant) (*ua.NodeID, error) {
	n, ok := v.Value().(*ua.NodeID)
	if !ok {
		return nil, fmt.Errorf("%s: %w: %T is not a NodeId", method, ErrUnexpectedOutput, v.Value())
	}
	return n, nil
}
