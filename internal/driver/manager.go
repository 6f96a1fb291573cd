package driver

import (
	"sync"
)

// manager owns the audit listeners of the devices that enable AuditEvents.
type manager struct {
	mutex     sync.Mutex
	listeners map[string]*auditListener
	factory   func(deviceName string, info *GdsInfo) *auditListener
}

func newManager(factory func(deviceName string, info *GdsInfo) *auditListener) *manager {
	return &manager{
		listeners: make(map[string]*auditListener),
		factory:   factory,
	}
}

// StartForDevice starts listening for the audit events of a device. It does
// nothing if a listener is already running.
func (m *manager) StartForDevice(deviceName string, info *GdsInfo) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, ok := m.listeners[deviceName]; ok {
		return
	}
	l := m.factory(deviceName, info)
	m.listeners[deviceName] = l
	go l.Run()
}

func (m *manager) RestartForDevice(deviceName string, info *GdsInfo) {
	m.StopForDevice(deviceName)
	m.StartForDevice(deviceName, info)
}

func (m *manager) StopForDevice(deviceName string) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if l, ok := m.listeners[deviceName]; ok {
		l.Stop()
		delete(m.listeners, deviceName)
	}
}

func (m *manager) StopAll() {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	for name, l := range m.listeners {
		l.Stop()
		delete(m.listeners, name)
	}
}

func (m *manager) running(deviceName string) bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	_, ok := m.listeners[deviceName]
	return ok
}
