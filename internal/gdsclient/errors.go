// Copyright (C) 2021~2040 EdgeGo
//
// SPDX-License-Identifier: Apache-2.0

package gdsclient

import (
	"errors"
	"fmt"
	"io"

	"github.com/gopcua/opcua/ua"
)

var (
	// ErrUnexpectedOutput is returned when a server answers with output
	// arguments of the wrong count or type.
	ErrUnexpectedOutput = errors.New("unexpected output")

	// ErrNotVariable is returned by ReadValue for symbols that are not Variables.
	ErrNotVariable = errors.New("symbol is not a variable")

	// ErrInvalidConfig is returned by Config.Validate.
	ErrInvalidConfig = errors.New("invalid GDS client configuration")
)

// StatusError reports a bad status code returned for a node or method.
type StatusError struct {
	Node   string
	Status ua.StatusCode
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: %v", e.Node, e.Status)
}

// Unwrap exposes the status code so callers can use errors.Is against
// gopcua status constants.
func (e *StatusError) Unwrap() error {
	return e.Status
}

// Status codes a server or gopcua answers with once the session or its
// secure channel is gone.
var connectionLost = []ua.StatusCode{
	ua.StatusBadServerNotConnected,
	ua.StatusBadConnectionClosed,
	ua.StatusBadCommunicationError,
	ua.StatusBadSecureChannelIDInvalid,
	ua.StatusBadSecureChannelClosed,
	ua.StatusBadSessionIDInvalid,
	ua.StatusBadSessionClosed,
}

// IsConnectionLost reports whether err means the session to the server is
// broken.
func IsConnectionLost(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, io.EOF) {
		return true
	}
	for _, s := range connectionLost {
		if errors.Is(err, s) {
			return true
		}
	}
	return false
}

// IsStale reports whether err may come from a cached NamespaceArray that no
// longer matches the server, either because the session was lost or because
// the server does not know a resolved node. A restarted server can assign
// the GDS namespace a different index.
func IsStale(err error) bool {
	return IsConnectionLost(err) || errors.Is(err, ua.StatusBadNodeIDUnknown)
}
