// Package gdsclient
// Copyright (C) 2021~2040 EdgeGo
//
// SPDX-License-Identifier: Apache-2.0
package gdsclient

import (
	"fmt"
	"sync"

	"github.com/edgego/device-opcua-gds/pkg/gds"
	gdsid "github.com/edgego/device-opcua-gds/pkg/gds/id"
	"github.com/edgexfoundry/go-mod-core-contracts/v2/clients/logger"
	"github.com/gopcua/opcua/id"
	"github.com/gopcua/opcua/ua"
)

// Session is the part of an OPC-UA client the GDS client needs.
// *opcua.Client implements it.
type Session interface {
	Read(req *ua.ReadRequest) (*ua.ReadResponse, error)
	Write(req *ua.WriteRequest) (*ua.WriteResponse, error)
	Call(req *ua.CallMethodRequest) (*ua.CallMethodResult, error)
}

// Client talks to the Directory object of a Global Discovery Server.
type Client struct {
	session Session
	lc      logger.LoggingClient

	mutex      sync.Mutex
	namespaces []string
}

// New returns a Client on top of an established session.
func New(session Session, lc logger.LoggingClient) *Client {
	return &Client{session: session, lc: lc}
}

// Namespaces returns the server NamespaceArray. It is read once per Client.
func (c *Client) Namespaces() ([]string, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if c.namespaces != nil {
		return c.namespaces, nil
	}

	v, err := c.readValue(ua.NewNumericNodeID(0, id.Server_NamespaceArray))
	if err != nil {
		return nil, fmt.Errorf("read namespace array: %w", err)
	}
	ns, ok := v.([]string)
	if !ok {
		return nil, fmt.Errorf("read namespace array: %w: got %T", ErrUnexpectedOutput, v)
	}
	c.namespaces = ns
	c.lc.Debugf("GDS client: server namespace array %v", ns)
	return ns, nil
}

// Reset drops the cached NamespaceArray, e.g. after a reconnect.
func (c *Client) Reset() {
	c.mutex.Lock()
	c.namespaces = nil
	c.mutex.Unlock()
}

// NamespaceIndex returns the index the server assigned to the GDS namespace.
func (c *Client) NamespaceIndex() (uint16, error) {
	ns, err := c.Namespaces()
	if err != nil {
		return 0, err
	}
	idx, err := gds.NamespaceIndex(gds.OpcUaGds, ns)
	if err != nil {
		return 0, err
	}
	registerApplicationRecord(idx)
	return idx, nil
}

// NodeID resolves a registry symbol to the NodeId the server uses.
func (c *Client) NodeID(symbol string) (*ua.NodeID, error) {
	ex, ok := gds.ExpandedID(symbol)
	if !ok {
		return nil, fmt.Errorf("%w: %s", gds.ErrUnknownSymbol, symbol)
	}
	return c.resolve(ex)
}

func (c *Client) nodeID(localID uint32) (*ua.NodeID, error) {
	return c.resolve(gds.Expanded(localID))
}

func (c *Client) resolve(ex *ua.ExpandedNodeID) (*ua.NodeID, error) {
	ns, err := c.Namespaces()
	if err != nil {
		return nil, err
	}
	return gds.Resolve(ex, ns)
}

// ReadValue reads the Value attribute of the Variable named by symbol.
func (c *Client) ReadValue(symbol string) (interface{}, error) {
	s, ok := gds.Lookup(symbol)
	if !ok {
		return nil, fmt.Errorf("%w: %s", gds.ErrUnknownSymbol, symbol)
	}
	if s.Class != ua.NodeClassVariable {
		return nil, fmt.Errorf("read %s: %w", symbol, ErrNotVariable)
	}
	n, err := c.nodeID(s.ID)
	if err != nil {
		return nil, err
	}
	v, err := c.readValue(n)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", symbol, err)
	}
	return v, nil
}

// WriteValue writes the Value attribute of the Variable named by symbol.
func (c *Client) WriteValue(symbol string, value interface{}) error {
	s, ok := gds.Lookup(symbol)
	if !ok {
		return fmt.Errorf("%w: %s", gds.ErrUnknownSymbol, symbol)
	}
	if s.Class != ua.NodeClassVariable {
		return fmt.Errorf("write %s: %w", symbol, ErrNotVariable)
	}
	n, err := c.nodeID(s.ID)
	if err != nil {
		return err
	}
	v, err := ua.NewVariant(value)
	if err != nil {
		return fmt.Errorf("write %s: invalid value: %w", symbol, err)
	}

	resp, err := c.session.Write(&ua.WriteRequest{
		NodesToWrite: []*ua.WriteValue{
			{
				NodeID:      n,
				AttributeID: ua.AttributeIDValue,
				Value: &ua.DataValue{
					EncodingMask: ua.DataValueValue,
					Value:        v,
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("write %s: %w", symbol, err)
	}
	if resp == nil || len(resp.Results) == 0 {
		return fmt.Errorf("write %s: %w", symbol, ErrUnexpectedOutput)
	}
	if resp.Results[0] != ua.StatusOK {
		return &StatusError{Node: symbol, Status: resp.Results[0]}
	}
	c.lc.Debugf("GDS client: wrote %v to %s (%s)", value, symbol, n)
	return nil
}

func (c *Client) readValue(n *ua.NodeID) (interface{}, error) {
	req := &ua.ReadRequest{
		NodesToRead: []*ua.ReadValueID{
			{NodeID: n, AttributeID: ua.AttributeIDValue},
		},
		TimestampsToReturn: ua.TimestampsToReturnNeither,
	}
	resp, err := c.session.Read(req)
	if err != nil {
		return nil, err
	}
	if resp == nil || len(resp.Results) == 0 {
		return nil, ErrUnexpectedOutput
	}
	res := resp.Results[0]
	if res.Status != ua.StatusOK {
		return nil, &StatusError{Node: n.String(), Status: res.Status}
	}
	if res.Value == nil {
		return nil, nil
	}
	return res.Value.Value(), nil
}

// call invokes a method of the Directory object and returns its output
// arguments after checking their count.
func (c *Client) call(method uint32, outputs int, args ...*ua.Variant) ([]*ua.Variant, error) {
	name := gdsid.Name(method)

	// registers the ApplicationRecord codec for this server
	if _, err := c.NamespaceIndex(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	obj, err := c.nodeID(gdsid.Directory)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	mid, err := c.nodeID(method)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	c.lc.Debugf("GDS client: calling %s (%s) with %d arguments", name, mid, len(args))
	res, err := c.session.Call(&ua.CallMethodRequest{
		ObjectID:       obj,
		MethodID:       mid,
		InputArguments: args,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if res.StatusCode != ua.StatusOK {
		return nil, &StatusError{Node: name, Status: res.StatusCode}
	}
	if len(res.OutputArguments) != outputs {
		return nil, fmt.Errorf("%s: %w: want %d output arguments, got %d",
			name, ErrUnexpectedOutput, outputs, len(res.OutputArguments))
	}
	return res.OutputArguments, nil
}
