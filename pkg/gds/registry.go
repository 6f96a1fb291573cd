// Copyright (C) 2021~2040 EdgeGo
//
// SPDX-License-Identifier: Apache-2.0

// Package gds is a read-only registry of the well-known nodes of the OPC-UA
// Global Discovery Server information model.
//
// The numeric ids live in package id as constants, so referencing an unknown
// node is a compile error. This package adds the lookups that need more than
// the number: the owning namespace, the node class and the browse name of
// each node, and the translation of an ExpandedNodeId into the NodeId a
// given server uses.
//
// All tables are built at init and never modified; every function is safe
// for concurrent use.
package gds

import (
	"errors"
	"fmt"
	"sort"

	"github.com/gopcua/opcua/ua"
)

// Namespace URIs referenced by the GDS information model.
const (
	OpcUaGds    = "http://opcfoundation.org/UA/GDS/"
	OpcUaGdsXsd = "http://opcfoundation.org/UA/GDS/Types.xsd"
	OpcUa       = "http://opcfoundation.org/UA/"
	OpcUaXsd    = "http://opcfoundation.org/UA/2008/02/Types.xsd"
)

var (
	// ErrNamespaceNotFound is returned when a server does not publish the
	// namespace of an ExpandedNodeId in its NamespaceArray.
	ErrNamespaceNotFound = errors.New("namespace not found in server namespace array")

	// ErrUnknownSymbol is returned when a symbolic name is not in the registry.
	ErrUnknownSymbol = errors.New("unknown GDS symbol")

	// ErrUnsupportedNodeID is returned for identifier types Resolve does not map.
	ErrUnsupportedNodeID = errors.New("unsupported node id type")
)

// Namespaces returns the namespace URIs of the model, owning namespace first.
func Namespaces() []string {
	return []string{OpcUaGds, OpcUaGdsXsd, OpcUa, OpcUaXsd}
}

// Symbol describes one well-known node.
type Symbol struct {
	// Name is the symbolic name, e.g. "Directory_FindApplications".
	Name string
	// ID is the numeric identifier, local to OpcUaGds.
	ID    uint32
	Class ua.NodeClass
	// BrowseName is the name part of the node's qualified name.
	BrowseName string
	// BrowseNamespace is the namespace that qualifies BrowseName. It is
	// OpcUa for nodes such as InputArguments that reuse core browse names.
	BrowseNamespace string
}

// NamespaceURI returns the namespace owning the node id.
func (s Symbol) NamespaceURI() string {
	return OpcUaGds
}

// ExpandedNodeID returns a new ExpandedNodeId for the symbol.
func (s Symbol) ExpandedNodeID() *ua.ExpandedNodeID {
	return Expanded(s.ID)
}

var (
	byName = make(map[string]int, len(symbols))
	byID   = make(map[uint32]int, len(symbols))
)

func init() {
	for i, s := range symbols {
		if _, dup := byName[s.Name]; dup {
			panic(fmt.Sprintf("gds: duplicate symbol %s", s.Name))
		}
		if _, dup := byID[s.ID]; dup {
			panic(fmt.Sprintf("gds: duplicate id %d (%s)", s.ID, s.Name))
		}
		byName[s.Name] = i
		byID[s.ID] = i
	}
}

// Lookup returns the registry entry for a symbolic name.
func Lookup(name string) (Symbol, bool) {
	i, ok := byName[name]
	if !ok {
		return Symbol{}, false
	}
	return symbols[i], true
}

// MustLookup is like Lookup but panics if the name is unknown.
func MustLookup(name string) Symbol {
	s, ok := Lookup(name)
	if !ok {
		panic(fmt.Sprintf("gds: %v: %s", ErrUnknownSymbol, name))
	}
	return s
}

// LocalID returns the namespace-local numeric id of a symbol.
func LocalID(name string) (uint32, bool) {
	s, ok := Lookup(name)
	return s.ID, ok
}

// ExpandedID returns the ExpandedNodeId of a symbol. It always carries
// LocalID(name) and the OpcUaGds namespace URI.
func ExpandedID(name string) (*ua.ExpandedNodeID, bool) {
	s, ok := Lookup(name)
	if !ok {
		return nil, false
	}
	return s.ExpandedNodeID(), true
}

// BrowseName returns the browse name of a symbol.
func BrowseName(name string) (string, bool) {
	s, ok := Lookup(name)
	return s.BrowseName, ok
}

// QualifiedBrowseName returns the qualified browse name of a symbol for a
// server that maps the browse namespace to nsIndex.
func QualifiedBrowseName(name string, nsIndex uint16) (*ua.QualifiedName, bool) {
	s, ok := Lookup(name)
	if !ok {
		return nil, false
	}
	if s.BrowseNamespace == OpcUa {
		nsIndex = 0
	}
	return &ua.QualifiedName{NamespaceIndex: nsIndex, Name: s.BrowseName}, true
}

// SymbolOf is the reverse lookup. Only OpcUaGds owns symbols.
func SymbolOf(namespaceURI string, localID uint32) (Symbol, bool) {
	if namespaceURI != OpcUaGds {
		return Symbol{}, false
	}
	i, ok := byID[localID]
	if !ok {
		return Symbol{}, false
	}
	return symbols[i], true
}

// Symbols returns the entries of the given node class ordered by id.
// A zero class returns every entry.
func Symbols(class ua.NodeClass) []Symbol {
	var out []Symbol
	for _, s := range symbols {
		if class == 0 || s.Class == class {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Expanded returns a new ExpandedNodeId for a local GDS id.
func Expanded(localID uint32) *ua.ExpandedNodeID {
	n := ua.NewNumericNodeID(0, localID)
	n.SetURIFlag()
	return &ua.ExpandedNodeID{
		NodeID:       n,
		NamespaceURI: OpcUaGds,
	}
}

// Resolve maps an ExpandedNodeId onto the NodeId used by a server whose
// NamespaceArray is namespaces. An ExpandedNodeId without a namespace URI
// keeps its namespace index.
func Resolve(ex *ua.ExpandedNodeID, namespaces []string) (*ua.NodeID, error) {
	if ex == nil || ex.NodeID == nil {
		return nil, fmt.Errorf("resolve: %w: nil", ErrUnsupportedNodeID)
	}

	ns := ex.NodeID.Namespace()
	if ex.NamespaceURI != "" {
		idx, err := NamespaceIndex(ex.NamespaceURI, namespaces)
		if err != nil {
			return nil, err
		}
		ns = idx
	}

	switch ex.NodeID.Type() {
	case ua.NodeIDTypeTwoByte, ua.NodeIDTypeFourByte, ua.NodeIDTypeNumeric:
		return ua.NewNumericNodeID(ns, ex.NodeID.IntID()), nil
	case ua.NodeIDTypeString:
		return ua.NewStringNodeID(ns, ex.NodeID.StringID()), nil
	default:
		return nil, fmt.Errorf("resolve %s: %w", ex.NodeID, ErrUnsupportedNodeID)
	}
}

// NamespaceIndex returns the position of uri in a server NamespaceArray.
func NamespaceIndex(uri string, namespaces []string) (uint16, error) {
	for i, ns := range namespaces {
		if ns == uri {
			return uint16(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %s", ErrNamespaceNotFound, uri)
}

// ClassName returns the display name of a node class.
func ClassName(c ua.NodeClass) string {
	switch c {
	case ua.NodeClassObject:
		return "Object"
	case ua.NodeClassVariable:
		return "Variable"
	case ua.NodeClassMethod:
		return "Method"
	case ua.NodeClassObjectType:
		return "ObjectType"
	case ua.NodeClassVariableType:
		return "VariableType"
	case ua.NodeClassReferenceType:
		return "ReferenceType"
	case ua.NodeClassDataType:
		return "DataType"
	case ua.NodeClassView:
		return "View"
	}
	return fmt.Sprintf("NodeClass(%d)", uint32(c))
}

// ParseClass is the inverse of ClassName.
func ParseClass(name string) (ua.NodeClass, error) {
	for _, c := range []ua.NodeClass{
		ua.NodeClassObject, ua.NodeClassVariable, ua.NodeClassMethod,
		ua.NodeClassObjectType, ua.NodeClassVariableType,
		ua.NodeClassReferenceType, ua.NodeClassDataType, ua.NodeClassView,
	} {
		if ClassName(c) == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown node class %q", name)
}
