// Package driver
// Copyright (C) 2021~2040 EdgeGo
//
// SPDX-License-Identifier: Apache-2.0
package driver

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/edgego/device-opcua-gds/internal/gdsclient"
	"github.com/edgego/device-opcua-gds/pkg/gds"
	sdkModel "github.com/edgexfoundry/device-sdk-go/v2/pkg/models"
	"github.com/edgexfoundry/go-mod-core-contracts/v2/clients/logger"
	"github.com/edgexfoundry/go-mod-core-contracts/v2/common"
	"github.com/gopcua/opcua"
	"github.com/gopcua/opcua/id"
	"github.com/gopcua/opcua/ua"
)

const (
	auditClientHandle = uint32(42)
	auditRetryDelay   = 5 * time.Second
)

// auditFields are the BaseEventType fields selected from each audit event,
// in the order decodeAuditEvent expects them.
var auditFields = []string{"EventId", "EventType", "SourceName", "Time", "Message", "Severity"}

// auditListener keeps an event subscription to one GDS open and publishes
// the audit events it receives.
type auditListener struct {
	ctx        context.Context
	cancel     context.CancelFunc
	deviceName string
	info       *GdsInfo
	lc         logger.LoggingClient
	listen     func(ctx context.Context) error
}

// Run subscribes until Stop is called, reconnecting after failures.
func (l *auditListener) Run() {
	for {
		err := l.listen(l.ctx)
		if l.ctx.Err() != nil {
			return
		}
		l.lc.Errorf("[Audit listener] device %s: %v, retrying in %v", l.deviceName, err, auditRetryDelay)
		select {
		case <-l.ctx.Done():
			return
		case <-time.After(auditRetryDelay):
		}
	}
}

// Stop cancels the subscription.
func (l *auditListener) Stop() {
	l.lc.Debugf("[Audit listener] stopping audit events of device %s", l.deviceName)
	l.cancel()
}

func (d *Driver) newAuditListener(deviceName string, info *GdsInfo) *auditListener {
	ctx, cancel := context.WithCancel(context.Background())
	l := &auditListener{
		ctx:        ctx,
		cancel:     cancel,
		deviceName: deviceName,
		info:       info,
		lc:         d.Logger,
	}
	l.listen = func(ctx context.Context) error {
		return d.subscribeAuditEvents(ctx, deviceName, info)
	}
	return l
}

func (d *Driver) auditInterval() time.Duration {
	if d.serviceConfig == nil || d.serviceConfig.AuditInterval <= 0 {
		return defaultAuditInterval * time.Millisecond
	}
	return time.Duration(d.serviceConfig.AuditInterval) * time.Millisecond
}

func (d *Driver) subscribeAuditEvents(ctx context.Context, deviceName string, info *GdsInfo) error {
	dialCtx, cancel := context.WithTimeout(ctx, d.timeout())
	client, err := gdsclient.Dial(dialCtx, info.ClientConfig())
	cancel()
	if err != nil {
		return err
	}
	defer client.Close()

	gdsIndex, err := gdsclient.New(client, d.Logger).NamespaceIndex()
	if err != nil {
		return err
	}

	notifyCh := make(chan *opcua.PublishNotificationData)
	sub, err := client.Subscribe(&opcua.SubscriptionParameters{
		Interval: d.auditInterval(),
	}, notifyCh)
	if err != nil {
		return fmt.Errorf("subscribe: %w", err)
	}
	defer sub.Cancel()
	d.Logger.Infof("[Audit listener] created subscription %v for device %s", sub.SubscriptionID, deviceName)

	res, err := sub.Monitor(ua.TimestampsToReturnBoth, auditEventRequest(ua.NewNumericNodeID(0, id.Server)))
	if err != nil {
		return fmt.Errorf("monitor audit events: %w", err)
	}
	if len(res.Results) == 0 || res.Results[0].StatusCode != ua.StatusOK {
		return fmt.Errorf("monitor audit events: unexpected response %v", res.Results)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case n := <-notifyCh:
			if n.Error != nil {
				d.Logger.Debugf("[Audit listener] %v", n.Error)
				continue
			}
			events, ok := n.Value.(*ua.EventNotificationList)
			if !ok {
				d.Logger.Debugf("[Audit listener] ignoring publish result %T", n.Value)
				continue
			}
			for _, item := range events.Events {
				ev, err := decodeAuditEvent(item.EventFields, gdsIndex)
				if err != nil {
					d.Logger.Warnf("[Audit listener] device %s: %v", deviceName, err)
					continue
				}
				d.publishAuditEvent(ctx, deviceName, ev)
			}
		}
	}
}

func (d *Driver) publishAuditEvent(ctx context.Context, deviceName string, ev *auditEvent) {
	b, err := json.Marshal(ev)
	if err != nil {
		d.Logger.Errorf("[Audit listener] encode event: %v", err)
		return
	}
	cv, err := sdkModel.NewCommandValue(AuditEventResource, common.ValueTypeString, string(b))
	if err != nil {
		d.Logger.Errorf("[Audit listener] create reading: %v", err)
		return
	}

	d.Logger.Infof("[Audit listener] %s event from device %s", ev.EventType, deviceName)
	select {
	case d.AsyncCh <- &sdkModel.AsyncValues{DeviceName: deviceName, CommandValues: []*sdkModel.CommandValue{cv}}:
	case <-ctx.Done():
	}
}

// auditEventRequest monitors the events of nodeID whose type is a subtype
// of AuditEventType.
func auditEventRequest(nodeID *ua.NodeID) *ua.MonitoredItemCreateRequest {
	selects := make([]*ua.SimpleAttributeOperand, len(auditFields))
	for i, name := range auditFields {
		selects[i] = &ua.SimpleAttributeOperand{
			TypeDefinitionID: ua.NewNumericNodeID(0, id.BaseEventType),
			BrowsePath:       []*ua.QualifiedName{{NamespaceIndex: 0, Name: name}},
			AttributeID:      ua.AttributeIDValue,
		}
	}

	wheres := &ua.ContentFilter{
		Elements: []*ua.ContentFilterElement{
			{
				FilterOperator: ua.FilterOperatorOfType,
				FilterOperands: []*ua.ExtensionObject{
					{
						EncodingMask: ua.ExtensionObjectBinary,
						TypeID: &ua.ExpandedNodeID{
							NodeID: ua.NewNumericNodeID(0, id.LiteralOperand_Encoding_DefaultBinary),
						},
						Value: ua.LiteralOperand{
							Value: ua.MustVariant(ua.NewNumericNodeID(0, id.AuditEventType)),
						},
					},
				},
			},
		},
	}

	filter := ua.ExtensionObject{
		EncodingMask: ua.ExtensionObjectBinary,
		TypeID: &ua.ExpandedNodeID{
			NodeID: ua.NewNumericNodeID(0, id.EventFilter_Encoding_DefaultBinary),
		},
		Value: ua.EventFilter{
			SelectClauses: selects,
			WhereClause:   wheres,
		},
	}

	return &ua.MonitoredItemCreateRequest{
		ItemToMonitor: &ua.ReadValueID{
			NodeID:       nodeID,
			AttributeID:  ua.AttributeIDEventNotifier,
			DataEncoding: &ua.QualifiedName{},
		},
		MonitoringMode: ua.MonitoringModeReporting,
		RequestedParameters: &ua.MonitoringParameters{
			ClientHandle:     auditClientHandle,
			DiscardOldest:    true,
			Filter:           &filter,
			QueueSize:        10,
			SamplingInterval: 1.0,
		},
	}
}

// auditEvent is the reading published for each audit event.
type auditEvent struct {
	EventID    string    `json:"eventId"`
	EventType  string    `json:"eventType"`
	SourceName string    `json:"sourceName,omitempty"`
	Time       time.Time `json:"time"`
	Message    string    `json:"message,omitempty"`
	Severity   uint16    `json:"severity"`
}

// decodeAuditEvent maps the selected event fields to an auditEvent.
// gdsIndex is the server's index of the GDS namespace.
func decodeAuditEvent(fields []*ua.Variant, gdsIndex uint16) (*auditEvent, error) {
	if len(fields) != len(auditFields) {
		return nil, fmt.Errorf("audit event has %d fields, want %d", len(fields), len(auditFields))
	}
	value := func(i int) interface{} {
		if fields[i] == nil {
			return nil
		}
		return fields[i].Value()
	}

	ev := &auditEvent{}
	if b, ok := value(0).([]byte); ok {
		ev.EventID = hex.EncodeToString(b)
	}
	t, ok := value(1).(*ua.NodeID)
	if !ok {
		return nil, fmt.Errorf("audit event type is %T", value(1))
	}
	ev.EventType = eventTypeName(t, gdsIndex)
	ev.SourceName, _ = value(2).(string)
	ev.Time, _ = value(3).(time.Time)
	if m, ok := value(4).(*ua.LocalizedText); ok && m != nil {
		ev.Message = m.Text
	}
	ev.Severity, _ = value(5).(uint16)
	return ev, nil
}

// eventTypeName names GDS and core event types, falling back to the
// NodeId string.
func eventTypeName(n *ua.NodeID, gdsIndex uint16) string {
	if n.Type() == ua.NodeIDTypeTwoByte || n.Type() == ua.NodeIDTypeFourByte || n.Type() == ua.NodeIDTypeNumeric {
		switch n.Namespace() {
		case gdsIndex:
			if s, ok := gds.SymbolOf(gds.OpcUaGds, n.IntID()); ok {
				return s.Name
			}
		case 0:
			if s := id.Name(n.IntID()); s != "" {
				return s
			}
		}
	}
	return n.String()
}
