// Copyright (C) 2021~2040 EdgeGo
//
// SPDX-License-Identifier: Apache-2.0

package driver

import (
	"context"
	"testing"
	"time"

	gdsid "github.com/edgego/device-opcua-gds/pkg/gds/id"
	sdkModel "github.com/edgexfoundry/device-sdk-go/v2/pkg/models"
	"github.com/edgexfoundry/go-mod-core-contracts/v2/clients/logger"
	"github.com/gopcua/opcua/id"
	"github.com/gopcua/opcua/ua"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func auditFieldsOf(eventType *ua.NodeID) []*ua.Variant {
	return []*ua.Variant{
		ua.MustVariant([]byte{0xca, 0xfe}),
		ua.MustVariant(eventType),
		ua.MustVariant("Directory"),
		ua.MustVariant(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)),
		ua.MustVariant(ua.NewLocalizedText("application registered")),
		ua.MustVariant(uint16(500)),
	}
}

func TestDecodeAuditEvent(t *testing.T) {
	ev, err := decodeAuditEvent(auditFieldsOf(ua.NewNumericNodeID(3, gdsid.ApplicationRegistrationChangedAuditEventType)), 3)
	require.NoError(t, err)
	assert.Equal(t, "cafe", ev.EventID)
	assert.Equal(t, "ApplicationRegistrationChangedAuditEventType", ev.EventType)
	assert.Equal(t, "Directory", ev.SourceName)
	assert.Equal(t, "application registered", ev.Message)
	assert.Equal(t, uint16(500), ev.Severity)
	assert.True(t, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC).Equal(ev.Time))
}

func TestDecodeAuditEventTypeNames(t *testing.T) {
	tests := []struct {
		name      string
		eventType *ua.NodeID
		want      string
	}{
		{"gds type", ua.NewNumericNodeID(2, gdsid.CertificateDeliveredAuditEventType), "CertificateDeliveredAuditEventType"},
		{"core type", ua.NewNumericNodeID(0, id.AuditEventType), "AuditEventType"},
		{"gds id in other namespace", ua.NewNumericNodeID(5, gdsid.CertificateDeliveredAuditEventType), "ns=5;i=109"},
		{"string id", ua.NewStringNodeID(2, "CustomAudit"), "ns=2;s=CustomAudit"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, err := decodeAuditEvent(auditFieldsOf(tt.eventType), 2)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ev.EventType)
		})
	}
}

func TestDecodeAuditEventErrors(t *testing.T) {
	_, err := decodeAuditEvent(nil, 2)
	assert.Error(t, err)

	fields := auditFieldsOf(ua.NewTwoByteNodeID(0))
	fields[1] = ua.MustVariant("not a node id")
	_, err = decodeAuditEvent(fields, 2)
	assert.Error(t, err)
}

func TestAuditEventRequest(t *testing.T) {
	req := auditEventRequest(ua.NewNumericNodeID(0, id.Server))
	assert.Equal(t, ua.AttributeIDEventNotifier, req.ItemToMonitor.AttributeID)
	assert.Equal(t, auditClientHandle, req.RequestedParameters.ClientHandle)

	filter, ok := req.RequestedParameters.Filter.Value.(ua.EventFilter)
	require.True(t, ok)
	require.Len(t, filter.SelectClauses, len(auditFields))
	for i, sel := range filter.SelectClauses {
		assert.Equal(t, auditFields[i], sel.BrowsePath[0].Name)
	}
	require.Len(t, filter.WhereClause.Elements, 1)
	assert.Equal(t, ua.FilterOperatorOfType, filter.WhereClause.Elements[0].FilterOperator)
}

func TestPublishAuditEvent(t *testing.T) {
	ch := make(chan *sdkModel.AsyncValues, 1)
	d := &Driver{Logger: logger.NewMockClient(), AsyncCh: ch}

	d.publishAuditEvent(context.Background(), "gds", &auditEvent{EventID: "01", EventType: "AuditEventType"})

	got := <-ch
	assert.Equal(t, "gds", got.DeviceName)
	require.Len(t, got.CommandValues, 1)
	assert.Equal(t, AuditEventResource, got.CommandValues[0].DeviceResourceName)
	s, err := got.CommandValues[0].StringValue()
	require.NoError(t, err)
	assert.Contains(t, s, `"eventType":"AuditEventType"`)
}

func TestPublishAuditEventCancelled(t *testing.T) {
	d := &Driver{Logger: logger.NewMockClient(), AsyncCh: make(chan *sdkModel.AsyncValues)}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// must not block on the unbuffered channel
	d.publishAuditEvent(ctx, "gds", &auditEvent{EventType: "AuditEventType"})
}

func TestAuditListenerStops(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	started := make(chan struct{})
	l := &auditListener{
		ctx:        ctx,
		cancel:     cancel,
		deviceName: "gds",
		lc:         logger.NewMockClient(),
		listen: func(ctx context.Context) error {
			close(started)
			<-ctx.Done()
			return nil
		},
	}

	done := make(chan struct{})
	go func() {
		l.Run()
		close(done)
	}()
	<-started
	l.Stop()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("listener did not stop")
	}
}
