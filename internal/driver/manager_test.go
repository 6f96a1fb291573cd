// Copyright (C) 2021~2040 EdgeGo
//
// SPDX-License-Identifier: Apache-2.0

package driver

import (
	"context"
	"sync"
	"testing"

	"github.com/edgexfoundry/go-mod-core-contracts/v2/clients/logger"
	"github.com/stretchr/testify/assert"
)

// fakeListeners builds listeners that block until stopped and counts how
// many were created.
type fakeListeners struct {
	mutex   sync.Mutex
	created int
	stopped sync.WaitGroup
}

func (f *fakeListeners) factory(deviceName string, info *GdsInfo) *auditListener {
	f.mutex.Lock()
	f.created++
	f.mutex.Unlock()
	f.stopped.Add(1)

	ctx, cancel := context.WithCancel(context.Background())
	return &auditListener{
		ctx:        ctx,
		cancel:     cancel,
		deviceName: deviceName,
		info:       info,
		lc:         logger.NewMockClient(),
		listen: func(ctx context.Context) error {
			<-ctx.Done()
			f.stopped.Done()
			return nil
		},
	}
}

func TestManagerStartStop(t *testing.T) {
	f := &fakeListeners{}
	m := newManager(f.factory)
	info := &GdsInfo{Endpoint: testEndpoint, AuditEvents: true}

	m.StartForDevice("gds", info)
	m.StartForDevice("gds", info)
	assert.True(t, m.running("gds"))
	assert.Equal(t, 1, f.created, "second start is a no-op")

	m.RestartForDevice("gds", info)
	assert.True(t, m.running("gds"))
	assert.Equal(t, 2, f.created)

	m.StopForDevice("gds")
	assert.False(t, m.running("gds"))
	m.StopForDevice("gds")

	m.StartForDevice("a", info)
	m.StartForDevice("b", info)
	m.StopAll()
	assert.False(t, m.running("a"))
	assert.False(t, m.running("b"))

	f.stopped.Wait()
}
