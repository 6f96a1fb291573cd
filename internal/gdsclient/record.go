// Copyright (C) 2021~2040 EdgeGo
//
// SPDX-License-Identifier: Apache-2.0

package gdsclient

import (
	"fmt"
	"sync"

	gdsid "github.com/edgego/device-opcua-gds/pkg/gds/id"
	"github.com/gopcua/opcua/ua"
)

// ApplicationRecord is the ApplicationRecordDataType structure. Field order
// is the binary encoding order.
type ApplicationRecord struct {
	ApplicationID      *ua.NodeID
	ApplicationURI     string
	ApplicationType    ua.ApplicationType
	ApplicationNames   []*ua.LocalizedText
	ProductURI         string
	DiscoveryURLs      []string
	ServerCapabilities []string
}

var (
	recordMu         sync.Mutex
	recordRegistered = map[uint16]bool{}
)

// registerApplicationRecord makes the gopcua codec decode ExtensionObjects
// carrying ApplicationRecordDataType for a server that maps the GDS
// namespace to nsIndex. The type registry is process wide and panics on
// duplicates, so each index is registered once.
func registerApplicationRecord(nsIndex uint16) {
	recordMu.Lock()
	defer recordMu.Unlock()

	if recordRegistered[nsIndex] {
		return
	}
	ua.RegisterExtensionObject(
		ua.NewNumericNodeID(nsIndex, gdsid.ApplicationRecordDataType_Encoding_DefaultBinary),
		new(ApplicationRecord),
	)
	recordRegistered[nsIndex] = true
}

func (c *Client) recordVariant(rec *ApplicationRecord) (*ua.Variant, error) {
	if rec == nil {
		return nil, fmt.Errorf("%w: nil application record", ErrUnexpectedOutput)
	}
	idx, err := c.NamespaceIndex()
	if err != nil {
		return nil, err
	}
	r := *rec
	if r.ApplicationID == nil {
		r.ApplicationID = ua.NewTwoByteNodeID(0)
	}
	eo := &ua.ExtensionObject{
		EncodingMask: ua.ExtensionObjectBinary,
		TypeID: &ua.ExpandedNodeID{
			NodeID: ua.NewNumericNodeID(idx, gdsid.ApplicationRecordDataType_Encoding_DefaultBinary),
		},
		Value: r,
	}
	return ua.NewVariant(eo)
}

func toRecord(v interface{}) (*ApplicationRecord, error) {
	switch x := v.(type) {
	case *ua.ExtensionObject:
		if x == nil {
			return nil, nil
		}
		return toRecord(x.Value)
	case *ApplicationRecord:
		return x, nil
	case ApplicationRecord:
		return &x, nil
	case nil:
		return nil, nil
	}
	return nil, fmt.Errorf("%w: %T is not an application record", ErrUnexpectedOutput, v)
}

func toRecords(v interface{}) ([]*ApplicationRecord, error) {
	switch x := v.(type) {
	case []*ua.ExtensionObject:
		out := make([]*ApplicationRecord, 0, len(x))
		for _, eo := range x {
			r, err := toRecord(eo)
			if err != nil {
				return nil, err
			}
			if r != nil {
				out = append(out, r)
			}
		}
		return out, nil
	case nil:
		return nil, nil
	default:
		r, err := toRecord(v)
		if err != nil || r == nil {
			return nil, err
		}
		return []*ApplicationRecord{r}, nil
	}
}
