// Copyright (C) 2021~2040 EdgeGo
//
// SPDX-License-Identifier: Apache-2.0

package gds

import (
	"sync"
	"testing"

	"github.com/edgego/device-opcua-gds/pkg/gds/browsename"
	"github.com/edgego/device-opcua-gds/pkg/gds/id"
	"github.com/gopcua/opcua/ua"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamespaces(t *testing.T) {
	assert.Equal(t, []string{
		"http://opcfoundation.org/UA/GDS/",
		"http://opcfoundation.org/UA/GDS/Types.xsd",
		"http://opcfoundation.org/UA/",
		"http://opcfoundation.org/UA/2008/02/Types.xsd",
	}, Namespaces())
}

func TestWellKnownValues(t *testing.T) {
	tests := []struct {
		name  string
		id    uint32
		class ua.NodeClass
	}{
		{"ApplicationRecordDataType", 1, ua.NodeClassDataType},
		{"DirectoryType", 13, ua.NodeClassObjectType},
		{"DirectoryType_FindApplications", 15, ua.NodeClassMethod},
		{"DirectoryType_QueryServers", 23, ua.NodeClassMethod},
		{"CertificateDirectoryType", 63, ua.NodeClassObjectType},
		{"ApplicationRecordDataType_Encoding_DefaultBinary", 134, ua.NodeClassObject},
		{"OpcUaGds_BinarySchema", 135, ua.NodeClassVariable},
		{"Directory", 141, ua.NodeClassObject},
		{"Directory_FindApplications", 143, ua.NodeClassMethod},
		{"Directory_RegisterApplication", 146, ua.NodeClassMethod},
		{"Directory_QueryServers", 151, ua.NodeClassMethod},
		{"Directory_StartSigningRequest", 157, ua.NodeClassMethod},
		{"Directory_FinishRequest", 163, ua.NodeClassMethod},
		{"Directory_GetCertificateGroups", 508, ua.NodeClassMethod},
		{"Directory_QueryApplications", 992, ua.NodeClassMethod},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, ok := Lookup(tt.name)
			require.True(t, ok)
			assert.Equal(t, tt.id, s.ID)
			assert.Equal(t, tt.class, s.Class)
			assert.Equal(t, tt.name, id.Name(tt.id))
		})
	}
}

func TestConstantsMatchTable(t *testing.T) {
	assert.Equal(t, uint32(id.Directory_GetApplication), MustLookup("Directory_GetApplication").ID)
	assert.Equal(t, uint32(id.CertificateDirectoryType_GetTrustList), MustLookup("CertificateDirectoryType_GetTrustList").ID)
	assert.Equal(t, uint32(id.KeyCredentialServiceType), MustLookup("KeyCredentialServiceType").ID)

	for _, s := range Symbols(0) {
		assert.Equal(t, s.Name, id.Name(s.ID), "id.Name disagrees for %d", s.ID)
	}
}

func TestExpandedMatchesLocal(t *testing.T) {
	for _, s := range Symbols(0) {
		local, ok := LocalID(s.Name)
		require.True(t, ok)

		ex, ok := ExpandedID(s.Name)
		require.True(t, ok)
		assert.Equal(t, local, ex.NodeID.IntID(), s.Name)
		assert.Equal(t, OpcUaGds, ex.NamespaceURI, s.Name)
		assert.Equal(t, s.NamespaceURI(), ex.NamespaceURI, s.Name)
	}
}

func TestExpandedReturnsFreshValue(t *testing.T) {
	a, _ := ExpandedID("Directory")
	a.NamespaceURI = "urn:mutated"

	b, _ := ExpandedID("Directory")
	assert.Equal(t, OpcUaGds, b.NamespaceURI)
}

func TestSymbolOfRoundTrip(t *testing.T) {
	for _, s := range Symbols(0) {
		ex := s.ExpandedNodeID()
		got, ok := SymbolOf(ex.NamespaceURI, ex.NodeID.IntID())
		require.True(t, ok, s.Name)
		assert.Equal(t, s.Name, got.Name)
	}

	_, ok := SymbolOf(OpcUa, id.Directory)
	assert.False(t, ok, "core namespace owns no GDS symbols")
	_, ok = SymbolOf(OpcUaGds, 999999)
	assert.False(t, ok)
}

func TestUnknownSymbol(t *testing.T) {
	_, ok := LocalID("NoSuchNode")
	assert.False(t, ok)
	_, ok = ExpandedID("NoSuchNode")
	assert.False(t, ok)
	_, ok = BrowseName("NoSuchNode")
	assert.False(t, ok)
	assert.Panics(t, func() { MustLookup("NoSuchNode") })
}

func TestBrowseNames(t *testing.T) {
	tests := []struct {
		symbol    string
		browse    string
		namespace string
	}{
		{"Directory", browsename.Directory, OpcUaGds},
		{"Directory_FindApplications", browsename.FindApplications, OpcUaGds},
		{"DirectoryType_FindApplications", browsename.FindApplications, OpcUaGds},
		{"Directory_FindApplications_InputArguments", "InputArguments", OpcUa},
		{"ApplicationRecordDataType_Encoding_DefaultBinary", "Default Binary", OpcUa},
		{"OpcUaGds_BinarySchema", "Opc.Ua.Gds", OpcUaGds},
		{"Directory_CertificateGroups", "CertificateGroups", OpcUa},
	}
	for _, tt := range tests {
		t.Run(tt.symbol, func(t *testing.T) {
			bn, ok := BrowseName(tt.symbol)
			require.True(t, ok)
			assert.Equal(t, tt.browse, bn)
			assert.Equal(t, tt.namespace, MustLookup(tt.symbol).BrowseNamespace)
		})
	}
}

func TestQualifiedBrowseName(t *testing.T) {
	qn, ok := QualifiedBrowseName("Directory", 3)
	require.True(t, ok)
	assert.Equal(t, uint16(3), qn.NamespaceIndex)
	assert.Equal(t, "Directory", qn.Name)

	qn, ok = QualifiedBrowseName("Directory_QueryServers_OutputArguments", 3)
	require.True(t, ok)
	assert.Equal(t, uint16(0), qn.NamespaceIndex)
	assert.Equal(t, "OutputArguments", qn.Name)
}

func TestSymbolsByClass(t *testing.T) {
	methods := Symbols(ua.NodeClassMethod)
	require.NotEmpty(t, methods)
	for i, s := range methods {
		assert.Equal(t, ua.NodeClassMethod, s.Class)
		if i > 0 {
			assert.Less(t, methods[i-1].ID, s.ID)
		}
	}

	total := 0
	for _, c := range []ua.NodeClass{ua.NodeClassDataType, ua.NodeClassMethod, ua.NodeClassObject, ua.NodeClassObjectType, ua.NodeClassVariable} {
		total += len(Symbols(c))
	}
	assert.Equal(t, len(Symbols(0)), total)
}

func TestResolve(t *testing.T) {
	serverNamespaces := []string{OpcUa, "urn:vendor:server", OpcUaGds}

	n, err := Resolve(Expanded(id.Directory_FindApplications), serverNamespaces)
	require.NoError(t, err)
	assert.Equal(t, uint16(2), n.Namespace())
	assert.Equal(t, uint32(id.Directory_FindApplications), n.IntID())

	_, err = Resolve(Expanded(id.Directory), []string{OpcUa})
	assert.ErrorIs(t, err, ErrNamespaceNotFound)

	local := &ua.ExpandedNodeID{NodeID: ua.NewStringNodeID(4, "Demo")}
	n, err = Resolve(local, serverNamespaces)
	require.NoError(t, err)
	assert.Equal(t, uint16(4), n.Namespace())
	assert.Equal(t, "Demo", n.StringID())

	_, err = Resolve(nil, serverNamespaces)
	assert.ErrorIs(t, err, ErrUnsupportedNodeID)
}

func TestParseClass(t *testing.T) {
	for _, name := range []string{"Object", "Variable", "Method", "ObjectType", "DataType"} {
		c, err := ParseClass(name)
		require.NoError(t, err)
		assert.Equal(t, name, ClassName(c))
	}
	_, err := ParseClass("Widget")
	assert.Error(t, err)
}

func TestConcurrentLookup(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, s := range Symbols(0) {
				got, ok := Lookup(s.Name)
				if !ok || got.ID != s.ID {
					t.Errorf("lookup %s failed", s.Name)
				}
			}
		}()
	}
	wg.Wait()
}
