// Package driver
// Copyright (C) 2021~2040 EdgeGo
//
// SPDX-License-Identifier: Apache-2.0
package driver

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/edgego/device-opcua-gds/internal/gdsclient"
	"github.com/edgego/device-opcua-gds/pkg/gds"
	sdkModel "github.com/edgexfoundry/device-sdk-go/v2/pkg/models"
	"github.com/edgexfoundry/device-sdk-go/v2/pkg/service"
	"github.com/edgexfoundry/go-mod-core-contracts/v2/clients/logger"
	"github.com/edgexfoundry/go-mod-core-contracts/v2/common"
	"github.com/edgexfoundry/go-mod-core-contracts/v2/errors"
	"github.com/edgexfoundry/go-mod-core-contracts/v2/models"
	"github.com/gopcua/opcua/ua"
)

const (
	defaultAuditInterval    = 500
	defaultDiscoveryTimeout = 3000
)

var once sync.Once
var driver *Driver

// conn is a dialed GDS session.
type conn interface {
	gdsclient.Session
	Close() error
}

func dialGds(ctx context.Context, cfg gdsclient.Config) (conn, error) {
	c, err := gdsclient.Dial(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// deviceClient is one connection to a GDS endpoint. conn is nil when the
// session was not dialed by the driver.
type deviceClient struct {
	conn conn
	gds  *gdsclient.Client
}

func (c *deviceClient) close() {
	if c.conn != nil {
		c.conn.Close()
	}
}

type Driver struct {
	Logger        logger.LoggingClient
	AsyncCh       chan<- *sdkModel.AsyncValues
	DeviceCh      chan<- []sdkModel.DiscoveredDevice
	serviceConfig *Configuration
	listeners     *manager

	dial func(ctx context.Context, cfg gdsclient.Config) (conn, error)

	lock    sync.Mutex
	clients map[string]*deviceClient
	// endpoint of each known device
	devices map[string]string
}

func NewProtocolDriver() sdkModel.ProtocolDriver {
	once.Do(func() {
		driver = new(Driver)
		driver.dial = dialGds
		driver.clients = make(map[string]*deviceClient)
		driver.devices = make(map[string]string)
	})
	return driver
}

// Initialize performs protocol-specific initialization for the device service.
func (d *Driver) Initialize(lc logger.LoggingClient, asyncCh chan<- *sdkModel.AsyncValues, deviceCh chan<- []sdkModel.DiscoveredDevice) error {
	d.Logger = lc
	d.AsyncCh = asyncCh
	d.DeviceCh = deviceCh

	config, err := loadDriverConfig(service.DriverConfigs())
	if err != nil {
		return errors.NewCommonEdgeX(errors.KindContractInvalid, "load GDS driver configuration failed", err)
	}
	d.serviceConfig = config
	d.listeners = newManager(d.newAuditListener)

	ds := service.RunningService()
	for _, device := range ds.Devices() {
		info, err := CreateGdsInfo(device.Protocols)
		if err != nil {
			d.Logger.Warnf("Driver.Initialize: skipping audit events of device %s: %v", device.Name, err)
			continue
		}
		d.trackDevice(device.Name, info.Endpoint)
		if info.AuditEvents {
			d.listeners.StartForDevice(device.Name, info)
		}
	}

	return nil
}

func (d *Driver) AddDevice(deviceName string, protocols map[string]models.ProtocolProperties, adminState models.AdminState) error {
	d.Logger.Debugf("Device %s is added", deviceName)
	info, err := CreateGdsInfo(protocols)
	if err != nil {
		err = fmt.Errorf("error adding device %s: %w", deviceName, err)
		d.Logger.Error(err.Error())
		return err
	}

	if _, err := d.clientFor(info); err != nil {
		err = fmt.Errorf("error adding device %s: %w", deviceName, err)
		d.Logger.Error(err.Error())
		return err
	}
	d.trackDevice(deviceName, info.Endpoint)

	if info.AuditEvents {
		d.listeners.StartForDevice(deviceName, info)
	}
	return nil
}

func (d *Driver) UpdateDevice(deviceName string, protocols map[string]models.ProtocolProperties, adminState models.AdminState) error {
	d.Logger.Debugf("Device %s is updated", deviceName)
	info, err := CreateGdsInfo(protocols)
	if err != nil {
		return fmt.Errorf("error updating device %s: %w", deviceName, err)
	}

	// the update may carry new credentials or a new endpoint
	if old := d.trackDevice(deviceName, info.Endpoint); old != "" && old != info.Endpoint {
		d.shutdownClient(old)
	}
	d.shutdownClient(info.Endpoint)
	if info.AuditEvents && adminState != models.Locked {
		d.listeners.RestartForDevice(deviceName, info)
	} else {
		d.listeners.StopForDevice(deviceName)
	}
	return nil
}

func (d *Driver) RemoveDevice(deviceName string, protocols map[string]models.ProtocolProperties) error {
	d.Logger.Debugf("Device %s is removed", deviceName)
	d.listeners.StopForDevice(deviceName)
	d.forgetDevice(deviceName)

	addr, err := d.addrFromProtocols(protocols)
	if err != nil {
		return fmt.Errorf("no address found for device: %w", err)
	}
	d.shutdownClient(addr)
	return nil
}

// Stop the protocol-specific DS code to shutdown gracefully, or
// if the force parameter is 'true', immediately. The driver is responsible
// for closing any in-use channels, including the channel used to send async
// readings (if supported).
func (d *Driver) Stop(force bool) error {
	if d.listeners != nil {
		d.listeners.StopAll()
	}

	d.lock.Lock()
	defer d.lock.Unlock()
	for addr, c := range d.clients {
		c.close()
		delete(d.clients, addr)
	}
	return nil
}

func (d *Driver) shutdownClient(addr string) {
	d.lock.Lock()
	defer d.lock.Unlock()

	if c, ok := d.clients[addr]; ok {
		c.close()
		delete(d.clients, addr)
	}
}

// dropClient closes the client of addr unless it was replaced meanwhile.
func (d *Driver) dropClient(addr string, c *deviceClient) {
	d.lock.Lock()
	defer d.lock.Unlock()

	if cur, ok := d.clients[addr]; ok && cur == c {
		c.close()
		delete(d.clients, addr)
	}
}

// trackDevice records the endpoint of a device and returns the previous one.
func (d *Driver) trackDevice(deviceName, endpoint string) string {
	d.lock.Lock()
	defer d.lock.Unlock()

	old := d.devices[deviceName]
	d.devices[deviceName] = endpoint
	return old
}

func (d *Driver) forgetDevice(deviceName string) {
	d.lock.Lock()
	delete(d.devices, deviceName)
	d.lock.Unlock()
}

// clientFor returns the cached client of an endpoint and dials one if none
// exists yet. The dial runs without holding the lock.
func (d *Driver) clientFor(info *GdsInfo) (*deviceClient, error) {
	d.lock.Lock()
	c, ok := d.clients[info.Endpoint]
	d.lock.Unlock()
	if ok {
		return c, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), d.timeout())
	defer cancel()
	conn, err := d.dial(ctx, info.ClientConfig())
	if err != nil {
		return nil, errors.NewCommonEdgeX(errors.KindCommunicationError, fmt.Sprintf("failed to connect %s", info.Endpoint), err)
	}

	d.lock.Lock()
	defer d.lock.Unlock()
	if c, ok := d.clients[info.Endpoint]; ok {
		conn.Close()
		return c, nil
	}
	c = &deviceClient{conn: conn, gds: gdsclient.New(conn, d.Logger)}
	d.clients[info.Endpoint] = c
	return c, nil
}

// withClient runs fn on the client of an endpoint. When fn fails with an
// error that a stale NamespaceArray or a lost session can cause, the array
// is read again and fn runs once more. A client whose session is still
// broken after that is dropped so the next command dials anew.
func (d *Driver) withClient(endpoint string, c *deviceClient, fn func(gc *gdsclient.Client) error) error {
	err := fn(c.gds)
	if !gdsclient.IsStale(err) {
		return err
	}

	d.Logger.Warnf("Driver: %s: %v, reloading the namespace array", endpoint, err)
	c.gds.Reset()
	err = fn(c.gds)
	if gdsclient.IsConnectionLost(err) {
		d.Logger.Errorf("Driver: %s: session lost, closing client: %v", endpoint, err)
		d.dropClient(endpoint, c)
	}
	return err
}

func (d *Driver) timeout() time.Duration {
	if d.serviceConfig == nil || d.serviceConfig.ResponseFetchInterval <= 0 {
		return 5 * time.Second
	}
	return time.Duration(d.serviceConfig.ResponseFetchInterval) * time.Millisecond
}

func (d *Driver) addrFromProtocols(protocols map[string]models.ProtocolProperties) (string, error) {
	if _, ok := protocols[Protocol]; !ok {
		d.Logger.Error("No OPCUA protocol found for device. Check configuration file.")
		return "", errors.NewCommonEdgeX(errors.KindContractInvalid, "no OPCUA protocol in protocols map", nil)
	}

	addr, ok := protocols[Protocol][ENDPOINT]
	if !ok {
		d.Logger.Error("No OPCUA endpoint found for device. Check configuration file.")
		return "", errors.NewCommonEdgeX(errors.KindContractInvalid, "no OPCUA endpoint in protocols map", nil)
	}
	return addr, nil
}

// HandleReadCommands triggers a protocol Read operation for the specified device.
// Variable resources are read, Method resources are called with the
// arguments taken from the resource attributes.
func (d *Driver) HandleReadCommands(deviceName string, protocols map[string]models.ProtocolProperties,
	reqs []sdkModel.CommandRequest) ([]*sdkModel.CommandValue, error) {

	d.Logger.Debugf("Driver.HandleReadCommands: device: %s, %d requests", deviceName, len(reqs))
	responses := make([]*sdkModel.CommandValue, len(reqs))

	info, err := CreateGdsInfo(protocols)
	if err != nil {
		return nil, fmt.Errorf("handleReadCommands: %w", err)
	}
	client, err := d.clientFor(info)
	if err != nil {
		return nil, fmt.Errorf("handleReadCommands: %w", err)
	}

	for i, req := range reqs {
		var res *sdkModel.CommandValue
		err := d.withClient(info.Endpoint, client, func(gc *gdsclient.Client) error {
			var err error
			res, err = d.handleReadCommandRequest(gc, req)
			return err
		})
		if err != nil {
			d.Logger.Errorf("Driver.HandleReadCommands: read %s failed: %v", req.DeviceResourceName, err)
			return responses, err
		}
		responses[i] = res
	}

	return responses, nil
}

func (d *Driver) handleReadCommandRequest(gc *gdsclient.Client, req sdkModel.CommandRequest) (*sdkModel.CommandValue, error) {
	sym, err := symbolFor(req)
	if err != nil {
		return nil, err
	}

	switch sym.Class {
	case ua.NodeClassVariable:
		reading, err := gc.ReadValue(sym.Name)
		if err != nil {
			return nil, errors.NewCommonEdgeX(errors.KindServerError, fmt.Sprintf("read %s failed", sym.Name), err)
		}
		result, err := newResult(req, reading)
		if err != nil {
			return nil, err
		}
		d.Logger.Debugf("Get command finished: %v", result)
		return result, nil
	case ua.NodeClassMethod:
		out, err := callMethod(gc, sym, req)
		if err != nil {
			return nil, err
		}
		b, err := json.Marshal(out)
		if err != nil {
			return nil, errors.NewCommonEdgeX(errors.KindServerError, fmt.Sprintf("encode result of %s", sym.Name), err)
		}
		return sdkModel.NewCommandValue(req.DeviceResourceName, common.ValueTypeString, string(b))
	}
	return nil, errors.NewCommonEdgeX(errors.KindContractInvalid,
		fmt.Sprintf("%s is a %s and cannot be read", sym.Name, gds.ClassName(sym.Class)), nil)
}

// HandleWriteCommands passes a slice of CommandRequest struct each representing
// a ResourceOperation for a specific device resource (aka DeviceObject).
// Since the commands are actuation commands, params provide parameters for the individual
// command.
func (d *Driver) HandleWriteCommands(deviceName string, protocols map[string]models.ProtocolProperties,
	reqs []sdkModel.CommandRequest, params []*sdkModel.CommandValue) error {

	d.Logger.Debugf("Driver.HandleWriteCommands: device: %s, %d requests", deviceName, len(reqs))
	if len(reqs) != len(params) {
		return errors.NewCommonEdgeX(errors.KindContractInvalid,
			fmt.Sprintf("%d requests but %d parameters", len(reqs), len(params)), nil)
	}

	info, err := CreateGdsInfo(protocols)
	if err != nil {
		return fmt.Errorf("handleWriteCommands: %w", err)
	}
	client, err := d.clientFor(info)
	if err != nil {
		return fmt.Errorf("handleWriteCommands: %w", err)
	}

	for i, req := range reqs {
		err := d.withClient(info.Endpoint, client, func(gc *gdsclient.Client) error {
			return d.handleWriteCommandRequest(gc, req, params[i])
		})
		if err != nil {
			d.Logger.Errorf("Driver.HandleWriteCommands: write %s failed: %v", req.DeviceResourceName, err)
			return err
		}
	}
	return nil
}

func (d *Driver) handleWriteCommandRequest(gc *gdsclient.Client, req sdkModel.CommandRequest,
	param *sdkModel.CommandValue) error {
	sym, err := symbolFor(req)
	if err != nil {
		return err
	}

	switch sym.Class {
	case ua.NodeClassVariable:
		value, err := newCommandValue(req.Type, param)
		if err != nil {
			return err
		}
		if err := gc.WriteValue(sym.Name, value); err != nil {
			return errors.NewCommonEdgeX(errors.KindServerError, fmt.Sprintf("write %s failed", sym.Name), err)
		}
		d.Logger.Infof("Driver.handleWriteCommands: wrote %v to %s", value, sym.Name)
		return nil
	case ua.NodeClassMethod:
		arg, err := param.StringValue()
		if err != nil {
			return errors.NewCommonEdgeX(errors.KindContractInvalid, fmt.Sprintf("%s expects a string parameter", sym.Name), err)
		}
		return invokeMethod(gc, sym, arg, d.Logger)
	}
	return errors.NewCommonEdgeX(errors.KindContractInvalid,
		fmt.Sprintf("%s is a %s and cannot be written", sym.Name, gds.ClassName(sym.Class)), nil)
}
