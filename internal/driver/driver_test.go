// Copyright (C) 2021~2040 EdgeGo
//
// SPDX-License-Identifier: Apache-2.0

package driver

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/edgego/device-opcua-gds/internal/gdsclient"
	"github.com/edgego/device-opcua-gds/pkg/gds"
	gdsid "github.com/edgego/device-opcua-gds/pkg/gds/id"
	sdkModel "github.com/edgexfoundry/device-sdk-go/v2/pkg/models"
	"github.com/edgexfoundry/go-mod-core-contracts/v2/clients/logger"
	"github.com/edgexfoundry/go-mod-core-contracts/v2/common"
	"github.com/edgexfoundry/go-mod-core-contracts/v2/models"
	"github.com/gopcua/opcua/id"
	"github.com/gopcua/opcua/ua"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testEndpoint = "opc.tcp://gds:58810"
	gdsIndex     = 1
)

type fakeSession struct {
	namespaces []string
	values     map[string]*ua.Variant
	methods    map[uint32]func(req *ua.CallMethodRequest) *ua.CallMethodResult
	calls      []*ua.CallMethodRequest
	// err fails every service call, like a session that is gone
	err    error
	closed bool
}

func newFakeSession() *fakeSession {
	return &fakeSession{
		namespaces: []string{gds.OpcUa, gds.OpcUaGds},
		values:     map[string]*ua.Variant{},
		methods:    map[uint32]func(req *ua.CallMethodRequest) *ua.CallMethodResult{},
	}
}

func (f *fakeSession) Close() error {
	f.closed = true
	return nil
}

func (f *fakeSession) gdsIndex() uint16 {
	for i, ns := range f.namespaces {
		if ns == gds.OpcUaGds {
			return uint16(i)
		}
	}
	return 0
}

func (f *fakeSession) Read(req *ua.ReadRequest) (*ua.ReadResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	n := req.NodesToRead[0].NodeID
	if n.Namespace() == 0 && n.IntID() == id.Server_NamespaceArray {
		return &ua.ReadResponse{Results: []*ua.DataValue{
			{Status: ua.StatusOK, Value: ua.MustVariant(f.namespaces)},
		}}, nil
	}
	if v, ok := f.values[n.String()]; ok {
		return &ua.ReadResponse{Results: []*ua.DataValue{{Status: ua.StatusOK, Value: v}}}, nil
	}
	return &ua.ReadResponse{Results: []*ua.DataValue{{Status: ua.StatusBadNodeIDUnknown}}}, nil
}

func (f *fakeSession) Write(req *ua.WriteRequest) (*ua.WriteResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	res := make([]ua.StatusCode, len(req.NodesToWrite))
	for i, w := range req.NodesToWrite {
		f.values[w.NodeID.String()] = w.Value.Value
		res[i] = ua.StatusOK
	}
	return &ua.WriteResponse{Results: res}, nil
}

func (f *fakeSession) Call(req *ua.CallMethodRequest) (*ua.CallMethodResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.calls = append(f.calls, req)
	if req.MethodID.Namespace() != f.gdsIndex() {
		return &ua.CallMethodResult{StatusCode: ua.StatusBadNodeIDUnknown}, nil
	}
	h, ok := f.methods[req.MethodID.IntID()]
	if !ok {
		return &ua.CallMethodResult{StatusCode: ua.StatusBadMethodInvalid}, nil
	}
	return h(req), nil
}

func protocols() map[string]models.ProtocolProperties {
	return protocolsFor(testEndpoint)
}

func protocolsFor(endpoint string) map[string]models.ProtocolProperties {
	return map[string]models.ProtocolProperties{
		Protocol: {
			ENDPOINT:   endpoint,
			"Policy":   "None",
			"Mode":     "None",
			"CertFile": "",
			"KeyFile":  "",
		},
	}
}

// newTestDriver returns a driver whose endpoint client is already cached,
// so no connection is dialed.
func newTestDriver(f *fakeSession) *Driver {
	lc := logger.NewMockClient()
	d := &Driver{
		Logger:        lc,
		serviceConfig: &Configuration{ResponseFetchInterval: 100, AuditInterval: defaultAuditInterval},
		clients:       map[string]*deviceClient{},
		devices:       map[string]string{},
		dial: func(ctx context.Context, cfg gdsclient.Config) (conn, error) {
			return nil, fmt.Errorf("no server at %s", cfg.Endpoint)
		},
	}
	d.listeners = newManager(d.newAuditListener)
	d.clients[testEndpoint] = &deviceClient{gds: gdsclient.New(f, lc)}
	return d
}

func TestHandleReadCommandsVariable(t *testing.T) {
	f := newFakeSession()
	f.values["ns=1;i=137"] = ua.MustVariant(gds.OpcUaGds)
	d := newTestDriver(f)

	reqs := []sdkModel.CommandRequest{{
		DeviceResourceName: "BinarySchemaNamespace",
		Attributes:         map[string]interface{}{AttrSymbol: "OpcUaGds_BinarySchema_NamespaceUri"},
		Type:               common.ValueTypeString,
	}}
	res, err := d.HandleReadCommands("gds", protocols(), reqs)
	require.NoError(t, err)
	require.Len(t, res, 1)
	v, err := res[0].StringValue()
	require.NoError(t, err)
	assert.Equal(t, gds.OpcUaGds, v)
	assert.Equal(t, "BinarySchemaNamespace", res[0].DeviceResourceName)
}

func TestHandleReadCommandsMethod(t *testing.T) {
	f := newFakeSession()
	f.methods[gdsid.Directory_FindApplications] = func(req *ua.CallMethodRequest) *ua.CallMethodResult {
		uri, _ := req.InputArguments[0].Value().(string)
		return &ua.CallMethodResult{StatusCode: ua.StatusOK, OutputArguments: []*ua.Variant{
			ua.MustVariant([]*ua.ExtensionObject{
				{Value: &gdsclient.ApplicationRecord{
					ApplicationID:    ua.NewNumericNodeID(gdsIndex, 5001),
					ApplicationURI:   uri,
					ApplicationType:  ua.ApplicationTypeServer,
					ApplicationNames: []*ua.LocalizedText{ua.NewLocalizedText("PLC")},
				}},
			}),
		}}
	}
	d := newTestDriver(f)

	reqs := []sdkModel.CommandRequest{{
		DeviceResourceName: "Directory_FindApplications",
		Attributes:         map[string]interface{}{AttrApplicationURI: "urn:plc"},
		Type:               common.ValueTypeString,
	}}
	res, err := d.HandleReadCommands("gds", protocols(), reqs)
	require.NoError(t, err)
	s, err := res[0].StringValue()
	require.NoError(t, err)

	var views []applicationView
	require.NoError(t, json.Unmarshal([]byte(s), &views))
	require.Len(t, views, 1)
	assert.Equal(t, "urn:plc", views[0].ApplicationURI)
	assert.Equal(t, "Server", views[0].ApplicationType)
	assert.Equal(t, []string{"PLC"}, views[0].ApplicationNames)
	assert.Equal(t, "ns=1;i=5001", views[0].ApplicationID)
}

func TestHandleReadCommandsErrors(t *testing.T) {
	d := newTestDriver(newFakeSession())

	tests := []struct {
		name string
		req  sdkModel.CommandRequest
	}{
		{"unknown symbol", sdkModel.CommandRequest{DeviceResourceName: "Bogus", Type: common.ValueTypeString}},
		{"object", sdkModel.CommandRequest{DeviceResourceName: "Directory", Type: common.ValueTypeString}},
		{"write only method", sdkModel.CommandRequest{DeviceResourceName: "Directory_RegisterApplication", Type: common.ValueTypeString}},
		{"missing argument", sdkModel.CommandRequest{DeviceResourceName: "Directory_GetApplication", Type: common.ValueTypeString}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := d.HandleReadCommands("gds", protocols(), []sdkModel.CommandRequest{tt.req})
			assert.Error(t, err)
		})
	}
}

func TestHandleWriteCommandsVariable(t *testing.T) {
	f := newFakeSession()
	d := newTestDriver(f)

	param, err := sdkModel.NewCommandValue("ServiceUri", common.ValueTypeString, "urn:auth")
	require.NoError(t, err)
	reqs := []sdkModel.CommandRequest{{
		DeviceResourceName: "ServiceUri",
		Attributes:         map[string]interface{}{AttrSymbol: "AuthorizationServiceType_ServiceUri"},
		Type:               common.ValueTypeString,
	}}
	require.NoError(t, d.HandleWriteCommands("gds", protocols(), reqs, []*sdkModel.CommandValue{param}))
	require.Contains(t, f.values, "ns=1;i=1003")
	assert.Equal(t, "urn:auth", f.values["ns=1;i=1003"].Value())
}

func TestHandleWriteCommandsMethod(t *testing.T) {
	f := newFakeSession()
	f.methods[gdsid.Directory_RegisterApplication] = func(req *ua.CallMethodRequest) *ua.CallMethodResult {
		return &ua.CallMethodResult{StatusCode: ua.StatusOK, OutputArguments: []*ua.Variant{
			ua.MustVariant(ua.NewNumericNodeID(gdsIndex, 7)),
		}}
	}
	f.methods[gdsid.Directory_UnregisterApplication] = func(req *ua.CallMethodRequest) *ua.CallMethodResult {
		return &ua.CallMethodResult{StatusCode: ua.StatusOK}
	}
	d := newTestDriver(f)

	register, err := sdkModel.NewCommandValue("Register", common.ValueTypeString,
		`{"applicationUri":"urn:plc","applicationType":"ClientAndServer","applicationNames":["PLC"]}`)
	require.NoError(t, err)
	unregister, err := sdkModel.NewCommandValue("Unregister", common.ValueTypeString, "ns=1;i=7")
	require.NoError(t, err)

	reqs := []sdkModel.CommandRequest{
		{DeviceResourceName: "Register", Attributes: map[string]interface{}{AttrSymbol: "Directory_RegisterApplication"}, Type: common.ValueTypeString},
		{DeviceResourceName: "Unregister", Attributes: map[string]interface{}{AttrSymbol: "Directory_UnregisterApplication"}, Type: common.ValueTypeString},
	}
	require.NoError(t, d.HandleWriteCommands("gds", protocols(), reqs, []*sdkModel.CommandValue{register, unregister}))
	require.Len(t, f.calls, 2)

	eo, ok := f.calls[0].InputArguments[0].Value().(*ua.ExtensionObject)
	require.True(t, ok)
	rec, ok := eo.Value.(gdsclient.ApplicationRecord)
	require.True(t, ok)
	assert.Equal(t, "urn:plc", rec.ApplicationURI)
	assert.Equal(t, ua.ApplicationTypeClientAndServer, rec.ApplicationType)

	assert.Equal(t, "ns=1;i=7", f.calls[1].InputArguments[0].Value().(*ua.NodeID).String())
}

func TestHandleWriteCommandsErrors(t *testing.T) {
	d := newTestDriver(newFakeSession())

	param, err := sdkModel.NewCommandValue("Register", common.ValueTypeString, "not json")
	require.NoError(t, err)
	reqs := []sdkModel.CommandRequest{{DeviceResourceName: "Directory_RegisterApplication", Type: common.ValueTypeString}}

	assert.Error(t, d.HandleWriteCommands("gds", protocols(), reqs, []*sdkModel.CommandValue{param}))
	assert.Error(t, d.HandleWriteCommands("gds", protocols(), reqs, nil), "parameter count mismatch")
}

func TestRemoveDeviceDropsClient(t *testing.T) {
	d := newTestDriver(newFakeSession())

	require.NoError(t, d.RemoveDevice("gds", protocols()))
	assert.NotContains(t, d.clients, testEndpoint)

	assert.Error(t, d.RemoveDevice("gds", map[string]models.ProtocolProperties{}))
}

func TestStopClosesClients(t *testing.T) {
	d := newTestDriver(newFakeSession())
	require.NoError(t, d.Stop(false))
	assert.Empty(t, d.clients)
}

func TestSymbolFor(t *testing.T) {
	sym, err := symbolFor(sdkModel.CommandRequest{DeviceResourceName: "Directory_QueryServers"})
	require.NoError(t, err)
	assert.Equal(t, uint32(gdsid.Directory_QueryServers), sym.ID)

	sym, err = symbolFor(sdkModel.CommandRequest{
		DeviceResourceName: "Servers",
		Attributes:         map[string]interface{}{AttrSymbol: " Directory_QueryServers "},
	})
	require.NoError(t, err)
	assert.Equal(t, "Directory_QueryServers", sym.Name)

	_, err = symbolFor(sdkModel.CommandRequest{DeviceResourceName: "Servers"})
	assert.Error(t, err)
}

func TestMethodDeclarationsAreNotCalled(t *testing.T) {
	f := newFakeSession()
	d := newTestDriver(f)

	_, err := d.HandleReadCommands("gds", protocols(), []sdkModel.CommandRequest{{
		DeviceResourceName: "DirectoryType_FindApplications",
		Attributes:         map[string]interface{}{AttrApplicationURI: "urn:plc"},
		Type:               common.ValueTypeString,
	}})
	assert.Error(t, err)

	param, err := sdkModel.NewCommandValue("Unregister", common.ValueTypeString, "ns=1;i=7")
	require.NoError(t, err)
	err = d.HandleWriteCommands("gds", protocols(), []sdkModel.CommandRequest{{
		DeviceResourceName: "DirectoryType_UnregisterApplication",
		Type:               common.ValueTypeString,
	}}, []*sdkModel.CommandValue{param})
	assert.Error(t, err)

	assert.Empty(t, f.calls)
}

func TestReadFollowsNamespaceChange(t *testing.T) {
	f := newFakeSession()
	f.values["ns=1;i=137"] = ua.MustVariant(gds.OpcUaGds)
	d := newTestDriver(f)
	reqs := []sdkModel.CommandRequest{{
		DeviceResourceName: "OpcUaGds_BinarySchema_NamespaceUri",
		Type:               common.ValueTypeString,
	}}

	_, err := d.HandleReadCommands("gds", protocols(), reqs)
	require.NoError(t, err)

	// the server restarted with another namespace in front of the GDS one
	f.namespaces = []string{gds.OpcUa, "urn:plant:server", gds.OpcUaGds}
	f.values = map[string]*ua.Variant{"ns=2;i=137": ua.MustVariant(gds.OpcUaGds)}

	res, err := d.HandleReadCommands("gds", protocols(), reqs)
	require.NoError(t, err)
	v, err := res[0].StringValue()
	require.NoError(t, err)
	assert.Equal(t, gds.OpcUaGds, v)
	assert.Contains(t, d.clients, testEndpoint)
}

func TestWriteFollowsNamespaceChange(t *testing.T) {
	f := newFakeSession()
	f.methods[gdsid.Directory_UnregisterApplication] = func(req *ua.CallMethodRequest) *ua.CallMethodResult {
		return &ua.CallMethodResult{StatusCode: ua.StatusOK}
	}
	d := newTestDriver(f)
	reqs := []sdkModel.CommandRequest{{DeviceResourceName: "Directory_UnregisterApplication", Type: common.ValueTypeString}}
	param, err := sdkModel.NewCommandValue("Directory_UnregisterApplication", common.ValueTypeString, "ns=1;i=7")
	require.NoError(t, err)

	require.NoError(t, d.HandleWriteCommands("gds", protocols(), reqs, []*sdkModel.CommandValue{param}))

	f.namespaces = []string{gds.OpcUa, "urn:plant:server", gds.OpcUaGds}
	require.NoError(t, d.HandleWriteCommands("gds", protocols(), reqs, []*sdkModel.CommandValue{param}))

	require.Len(t, f.calls, 3, "one call, then a failed and a retried call")
	assert.Equal(t, uint16(1), f.calls[1].MethodID.Namespace())
	assert.Equal(t, uint16(2), f.calls[2].MethodID.Namespace())
	assert.Equal(t, uint16(2), f.calls[2].ObjectID.Namespace())
}

func TestLostSessionDropsClient(t *testing.T) {
	f := newFakeSession()
	f.err = ua.StatusBadServerNotConnected
	d := newTestDriver(f)
	session := newFakeSession()
	d.clients[testEndpoint].conn = session

	_, err := d.HandleReadCommands("gds", protocols(), []sdkModel.CommandRequest{{
		DeviceResourceName: "OpcUaGds_BinarySchema_NamespaceUri",
		Type:               common.ValueTypeString,
	}})
	assert.ErrorIs(t, err, ua.StatusBadServerNotConnected)
	assert.NotContains(t, d.clients, testEndpoint)
	assert.True(t, session.closed)
}

func TestUnknownNodeKeepsClient(t *testing.T) {
	d := newTestDriver(newFakeSession())

	_, err := d.HandleReadCommands("gds", protocols(), []sdkModel.CommandRequest{{
		DeviceResourceName: "OpcUaGds_XmlSchema_NamespaceUri",
		Type:               common.ValueTypeString,
	}})
	assert.ErrorIs(t, err, ua.StatusBadNodeIDUnknown)
	assert.Contains(t, d.clients, testEndpoint)
}

func TestDialDoesNotBlockOtherEndpoints(t *testing.T) {
	const slowEndpoint = "opc.tcp://slow:58810"
	f := newFakeSession()
	f.values["ns=1;i=137"] = ua.MustVariant(gds.OpcUaGds)
	d := newTestDriver(f)

	dialing := make(chan struct{})
	release := make(chan struct{})
	d.dial = func(ctx context.Context, cfg gdsclient.Config) (conn, error) {
		close(dialing)
		<-release
		return newFakeSession(), nil
	}
	reqs := []sdkModel.CommandRequest{{
		DeviceResourceName: "OpcUaGds_BinarySchema_NamespaceUri",
		Type:               common.ValueTypeString,
	}}

	slowDone := make(chan struct{})
	go func() {
		defer close(slowDone)
		_, _ = d.HandleReadCommands("slow", protocolsFor(slowEndpoint), reqs)
	}()
	<-dialing

	fastDone := make(chan error, 1)
	go func() {
		_, err := d.HandleReadCommands("gds", protocols(), reqs)
		fastDone <- err
	}()
	select {
	case err := <-fastDone:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("read of a connected endpoint waited for another dial")
	}

	close(release)
	<-slowDone
	d.lock.Lock()
	assert.Contains(t, d.clients, slowEndpoint)
	d.lock.Unlock()
}

func TestConcurrentDialKeepsFirstClient(t *testing.T) {
	const endpoint = "opc.tcp://other:58810"
	d := newTestDriver(newFakeSession())
	first := &deviceClient{gds: gdsclient.New(newFakeSession(), d.Logger)}
	second := newFakeSession()
	d.dial = func(ctx context.Context, cfg gdsclient.Config) (conn, error) {
		// another command finished its dial first
		d.lock.Lock()
		d.clients[endpoint] = first
		d.lock.Unlock()
		return second, nil
	}

	info, err := CreateGdsInfo(protocolsFor(endpoint))
	require.NoError(t, err)
	c, err := d.clientFor(info)
	require.NoError(t, err)
	assert.Same(t, first, c)
	assert.True(t, second.closed)
}

func TestUpdateDeviceClosesPreviousEndpoint(t *testing.T) {
	const oldEndpoint = "opc.tcp://old-gds:58810"
	d := newTestDriver(newFakeSession())
	oldConn := newFakeSession()
	d.clients[oldEndpoint] = &deviceClient{conn: oldConn, gds: gdsclient.New(oldConn, d.Logger)}
	d.devices["gds"] = oldEndpoint

	require.NoError(t, d.UpdateDevice("gds", protocols(), models.Unlocked))
	assert.NotContains(t, d.clients, oldEndpoint)
	assert.True(t, oldConn.closed)
	assert.NotContains(t, d.clients, testEndpoint, "reconnects with the updated properties")
	assert.Equal(t, testEndpoint, d.devices["gds"])

	require.NoError(t, d.RemoveDevice("gds", protocols()))
	assert.NotContains(t, d.devices, "gds")
}
