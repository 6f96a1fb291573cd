// Copyright (C) 2021~2040 EdgeGo
//
// SPDX-License-Identifier: Apache-2.0

// Package discovery finds OPC-UA servers announced with multicast DNS.
package discovery

import (
	"context"
	"fmt"
	"net"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/enbility/zeroconf/v3"
)

const (
	// ServiceType is the DNS-SD service of OPC-UA TCP endpoints.
	ServiceType = "_opcua-tcp._tcp"
	Domain      = "local."

	// CapabilityGDS is the server capability a Global Discovery Server announces.
	CapabilityGDS = "GDS"

	DefaultTimeout = 3 * time.Second
)

// Server is one announced OPC-UA server.
type Server struct {
	Instance     string   `json:"instance" yaml:"instance"`
	Host         string   `json:"host" yaml:"host"`
	Port         int      `json:"port" yaml:"port"`
	Path         string   `json:"path,omitempty" yaml:"path,omitempty"`
	Addresses    []string `json:"addresses,omitempty" yaml:"addresses,omitempty"`
	Capabilities []string `json:"capabilities,omitempty" yaml:"capabilities,omitempty"`
}

// DiscoveryURL returns the opc.tcp URL of the server.
func (s Server) DiscoveryURL() string {
	host := strings.TrimSuffix(s.Host, ".")
	if host == "" && len(s.Addresses) > 0 {
		host = s.Addresses[0]
	}
	url := "opc.tcp://" + net.JoinHostPort(host, strconv.Itoa(s.Port))
	if s.Path != "" {
		url += "/" + strings.TrimPrefix(s.Path, "/")
	}
	return url
}

// HasCapability reports whether the server announced capability c.
func (s Server) HasCapability(c string) bool {
	for _, sc := range s.Capabilities {
		if strings.EqualFold(sc, c) {
			return true
		}
	}
	return false
}

// Config controls a browse.
type Config struct {
	// Interface restricts the browse to one network interface.
	Interface string
	// Timeout bounds the browse. Zero means DefaultTimeout.
	Timeout time.Duration
}

// Browse collects the servers announced until the timeout expires or ctx
// is cancelled. Announcements of the same instance on several interfaces
// are merged.
func Browse(ctx context.Context, cfg Config) ([]Server, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var opts []zeroconf.ClientOption
	if cfg.Interface != "" {
		iface, err := net.InterfaceByName(cfg.Interface)
		if err != nil {
			return nil, fmt.Errorf("discovery: interface %s: %w", cfg.Interface, err)
		}
		opts = append(opts, zeroconf.SelectIfaces([]net.Interface{*iface}))
	}

	entries := make(chan *zeroconf.ServiceEntry)
	removed := make(chan *zeroconf.ServiceEntry)
	errCh := make(chan error, 1)
	go func() {
		errCh <- zeroconf.Browse(ctx, ServiceType, Domain, entries, removed, opts...)
	}()

	servers := map[string]*Server{}
	for {
		select {
		case entry, ok := <-entries:
			if !ok {
				return sorted(servers), nil
			}
			s := newServer(entry.Instance, entry.HostName, entry.Port, append(entry.AddrIPv4, entry.AddrIPv6...), entry.Text)
			if existing, found := servers[s.Instance]; found {
				existing.Addresses = mergeAddresses(existing.Addresses, s.Addresses)
				continue
			}
			servers[s.Instance] = &s
		case entry, ok := <-removed:
			if ok {
				delete(servers, entry.Instance)
			}
		case err := <-errCh:
			if err != nil {
				return nil, fmt.Errorf("discovery: browse %s: %w", ServiceType, err)
			}
		case <-ctx.Done():
			return sorted(servers), nil
		}
	}
}

// newServer builds a Server from a DNS-SD entry. The TXT keys are "path"
// and the comma separated "caps".
func newServer(instance, host string, port int, ips []net.IP, text []string) Server {
	s := Server{Instance: instance, Host: host, Port: port}
	for _, ip := range ips {
		s.Addresses = append(s.Addresses, ip.String())
	}
	for _, kv := range text {
		k, v, _ := strings.Cut(kv, "=")
		switch strings.ToLower(k) {
		case "path":
			s.Path = v
		case "caps":
			for _, c := range strings.Split(v, ",") {
				if c = strings.TrimSpace(c); c != "" {
					s.Capabilities = append(s.Capabilities, c)
				}
			}
		}
	}
	return s
}

func mergeAddresses(a, b []string) []string {
	seen := make(map[string]bool, len(a))
	for _, x := range a {
		seen[x] = true
	}
	for _, x := range b {
		if !seen[x] {
			a = append(a, x)
			seen[x] = true
		}
	}
	return a
}

func sorted(m map[string]*Server) []Server {
	out := make([]Server, 0, len(m))
	for _, s := range m {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Instance < out[j].Instance })
	return out
}
