// Copyright (C) 2021~2040 EdgeGo
//
// SPDX-License-Identifier: Apache-2.0

package driver

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/edgego/device-opcua-gds/internal/gdsclient"
	"github.com/edgego/device-opcua-gds/pkg/gds"
	gdsid "github.com/edgego/device-opcua-gds/pkg/gds/id"
	sdkModel "github.com/edgexfoundry/device-sdk-go/v2/pkg/models"
	"github.com/edgexfoundry/go-mod-core-contracts/v2/clients/logger"
	"github.com/edgexfoundry/go-mod-core-contracts/v2/errors"
	"github.com/gopcua/opcua/ua"
	"github.com/spf13/cast"
)

// symbolFor resolves the registry entry a device resource refers to.
func symbolFor(req sdkModel.CommandRequest) (gds.Symbol, error) {
	name := attr(req, AttrSymbol)
	if name == "" {
		name = req.DeviceResourceName
	}
	sym, ok := gds.Lookup(name)
	if !ok {
		return gds.Symbol{}, errors.NewCommonEdgeX(errors.KindContractInvalid,
			fmt.Sprintf("resource %s: unknown GDS symbol %q", req.DeviceResourceName, name), gds.ErrUnknownSymbol)
	}
	return sym, nil
}

func attr(req sdkModel.CommandRequest, key string) string {
	return strings.TrimSpace(cast.ToString(req.Attributes[key]))
}

func nodeAttr(req sdkModel.CommandRequest, key string) (*ua.NodeID, error) {
	s := attr(req, key)
	if s == "" {
		return nil, nil
	}
	n, err := ua.ParseNodeID(s)
	if err != nil {
		return nil, errors.NewCommonEdgeX(errors.KindContractInvalid, fmt.Sprintf("attribute %s: invalid node id %q", key, s), err)
	}
	return n, nil
}

func listAttr(req sdkModel.CommandRequest, key string) []string {
	s := attr(req, key)
	if s == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// callMethod runs the read-only methods of the Directory object. Method
// declarations of the directory types are not callable. The result is
// marshalled to JSON by the caller.
func callMethod(gc *gdsclient.Client, sym gds.Symbol, req sdkModel.CommandRequest) (interface{}, error) {
	appID, err := nodeAttr(req, AttrApplicationID)
	if err != nil {
		return nil, err
	}
	groupID, err := nodeAttr(req, AttrCertificateGroupID)
	if err != nil {
		return nil, err
	}
	typeID, err := nodeAttr(req, AttrCertificateTypeID)
	if err != nil {
		return nil, err
	}

	var out interface{}
	switch sym.ID {
	case gdsid.Directory_FindApplications:
		var recs []*gdsclient.ApplicationRecord
		recs, err = gc.FindApplications(attr(req, AttrApplicationURI))
		views := make([]applicationView, 0, len(recs))
		for _, r := range recs {
			views = append(views, newApplicationView(r))
		}
		out = views
	case gdsid.Directory_GetApplication:
		if appID == nil {
			return nil, missingAttr(sym, AttrApplicationID)
		}
		var rec *gdsclient.ApplicationRecord
		rec, err = gc.GetApplication(appID)
		if rec != nil {
			out = newApplicationView(rec)
		}
	case gdsid.Directory_QueryServers:
		var res *gdsclient.QueryServersResult
		res, err = gc.QueryServers(gdsclient.QueryServersRequest{
			MaxRecordsToReturn: cast.ToUint32(attr(req, AttrMaxRecords)),
			ApplicationURI:     attr(req, AttrApplicationURI),
			ServerCapabilities: listAttr(req, AttrServerCapabilities),
		})
		if res != nil {
			out = newServersView(res)
		}
	case gdsid.Directory_QueryApplications:
		var res *gdsclient.QueryApplicationsResult
		res, err = gc.QueryApplications(gdsclient.QueryApplicationsRequest{
			MaxRecordsToReturn: cast.ToUint32(attr(req, AttrMaxRecords)),
			ApplicationURI:     attr(req, AttrApplicationURI),
			ServerCapabilities: listAttr(req, AttrServerCapabilities),
		})
		if res != nil {
			out = newApplicationsView(res)
		}
	case gdsid.Directory_GetCertificateGroups:
		if appID == nil {
			return nil, missingAttr(sym, AttrApplicationID)
		}
		var groups []*ua.NodeID
		groups, err = gc.GetCertificateGroups(appID)
		out = nodeStrings(groups)
	case gdsid.Directory_GetTrustList:
		if appID == nil {
			return nil, missingAttr(sym, AttrApplicationID)
		}
		var n *ua.NodeID
		n, err = gc.GetTrustList(appID, groupID)
		if n != nil {
			out = n.String()
		}
	case gdsid.Directory_GetCertificateStatus:
		if appID == nil {
			return nil, missingAttr(sym, AttrApplicationID)
		}
		out, err = gc.GetCertificateStatus(appID, groupID, typeID)
	default:
		return nil, errors.NewCommonEdgeX(errors.KindContractInvalid,
			fmt.Sprintf("method %s cannot be used in a read command", sym.Name), nil)
	}
	if err != nil {
		return nil, errors.NewCommonEdgeX(errors.KindServerError, fmt.Sprintf("call %s failed", sym.Name), err)
	}
	return out, nil
}

// invokeMethod runs the GDS methods that change the directory. arg is the
// string parameter of the write command.
func invokeMethod(gc *gdsclient.Client, sym gds.Symbol, arg string, lc logger.LoggingClient) error {
	var err error
	switch sym.ID {
	case gdsid.Directory_RegisterApplication, gdsid.Directory_UpdateApplication:
		var view applicationView
		if err := json.Unmarshal([]byte(arg), &view); err != nil {
			return errors.NewCommonEdgeX(errors.KindContractInvalid, fmt.Sprintf("%s: invalid application record", sym.Name), err)
		}
		rec, recErr := view.record()
		if recErr != nil {
			return errors.NewCommonEdgeX(errors.KindContractInvalid, fmt.Sprintf("%s: invalid application record", sym.Name), recErr)
		}
		if sym.ID == gdsid.Directory_UpdateApplication {
			err = gc.UpdateApplication(rec)
			break
		}
		var appID *ua.NodeID
		if appID, err = gc.RegisterApplication(rec); err == nil {
			lc.Infof("registered application %s as %s", rec.ApplicationURI, appID)
		}
	case gdsid.Directory_UnregisterApplication:
		var appID *ua.NodeID
		if appID, err = ua.ParseNodeID(strings.TrimSpace(arg)); err != nil {
			return errors.NewCommonEdgeX(errors.KindContractInvalid, fmt.Sprintf("%s: invalid application id %q", sym.Name, arg), err)
		}
		err = gc.UnregisterApplication(appID)
	default:
		return errors.NewCommonEdgeX(errors.KindContractInvalid,
			fmt.Sprintf("method %s cannot be used in a write command", sym.Name), nil)
	}
	if err != nil {
		return errors.NewCommonEdgeX(errors.KindServerError, fmt.Sprintf("call %s failed", sym.Name), err)
	}
	return nil
}

func missingAttr(sym gds.Symbol, key string) error {
	return errors.NewCommonEdgeX(errors.KindContractInvalid, fmt.Sprintf("%s requires attribute %s", sym.Name, key), nil)
}

var applicationTypes = map[ua.ApplicationType]string{
	ua.ApplicationTypeServer:          "Server",
	ua.ApplicationTypeClient:          "Client",
	ua.ApplicationTypeClientAndServer: "ClientAndServer",
	ua.ApplicationTypeDiscoveryServer: "DiscoveryServer",
}

func applicationTypeName(t ua.ApplicationType) string {
	if s, ok := applicationTypes[t]; ok {
		return s
	}
	return fmt.Sprintf("ApplicationType(%d)", uint32(t))
}

func parseApplicationType(s string) (ua.ApplicationType, error) {
	if s == "" {
		return ua.ApplicationTypeServer, nil
	}
	for t, name := range applicationTypes {
		if strings.EqualFold(name, s) {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown application type %q", s)
}

// applicationView is the JSON form of an application record.
type applicationView struct {
	ApplicationID      string   `json:"applicationId,omitempty"`
	ApplicationURI     string   `json:"applicationUri"`
	ApplicationType    string   `json:"applicationType"`
	ApplicationNames   []string `json:"applicationNames,omitempty"`
	ProductURI         string   `json:"productUri,omitempty"`
	DiscoveryURLs      []string `json:"discoveryUrls,omitempty"`
	ServerCapabilities []string `json:"serverCapabilities,omitempty"`
}

func newApplicationView(r *gdsclient.ApplicationRecord) applicationView {
	v := applicationView{
		ApplicationURI:     r.ApplicationURI,
		ApplicationType:    applicationTypeName(r.ApplicationType),
		ProductURI:         r.ProductURI,
		DiscoveryURLs:      r.DiscoveryURLs,
		ServerCapabilities: r.ServerCapabilities,
	}
	if r.ApplicationID != nil {
		v.ApplicationID = r.ApplicationID.String()
	}
	for _, n := range r.ApplicationNames {
		if n != nil {
			v.ApplicationNames = append(v.ApplicationNames, n.Text)
		}
	}
	return v
}

func (v applicationView) record() (*gdsclient.ApplicationRecord, error) {
	if v.ApplicationURI == "" {
		return nil, fmt.Errorf("applicationUri is required")
	}
	t, err := parseApplicationType(v.ApplicationType)
	if err != nil {
		return nil, err
	}
	rec := &gdsclient.ApplicationRecord{
		ApplicationURI:     v.ApplicationURI,
		ApplicationType:    t,
		ProductURI:         v.ProductURI,
		DiscoveryURLs:      v.DiscoveryURLs,
		ServerCapabilities: v.ServerCapabilities,
	}
	if v.ApplicationID != "" {
		if rec.ApplicationID, err = ua.ParseNodeID(v.ApplicationID); err != nil {
			return nil, err
		}
	}
	for _, n := range v.ApplicationNames {
		rec.ApplicationNames = append(rec.ApplicationNames, ua.NewLocalizedText(n))
	}
	return rec, nil
}

type serverView struct {
	RecordID           uint32   `json:"recordId"`
	ServerName         string   `json:"serverName"`
	DiscoveryURL       string   `json:"discoveryUrl"`
	ServerCapabilities []string `json:"serverCapabilities,omitempty"`
}

type serversView struct {
	LastCounterResetTime time.Time    `json:"lastCounterResetTime"`
	Servers              []serverView `json:"servers"`
}

func newServersView(res *gdsclient.QueryServersResult) serversView {
	v := serversView{LastCounterResetTime: res.LastCounterResetTime, Servers: []serverView{}}
	for _, s := range res.Servers {
		v.Servers = append(v.Servers, serverView{
			RecordID:           s.RecordID,
			ServerName:         s.ServerName,
			DiscoveryURL:       s.DiscoveryURL,
			ServerCapabilities: s.ServerCapabilities,
		})
	}
	return v
}

type descriptionView struct {
	ApplicationURI  string   `json:"applicationUri"`
	ProductURI      string   `json:"productUri,omitempty"`
	ApplicationName string   `json:"applicationName,omitempty"`
	ApplicationType string   `json:"applicationType"`
	DiscoveryURLs   []string `json:"discoveryUrls,omitempty"`
}

type applicationsView struct {
	LastCounterResetTime time.Time         `json:"lastCounterResetTime"`
	NextRecordID         uint32            `json:"nextRecordId"`
	Applications         []descriptionView `json:"applications"`
}

func newApplicationsView(res *gdsclient.QueryApplicationsResult) applicationsView {
	v := applicationsView{
		LastCounterResetTime: res.LastCounterResetTime,
		NextRecordID:         res.NextRecordID,
		Applications:         []descriptionView{},
	}
	for _, a := range res.Applications {
		d := descriptionView{
			ApplicationURI:  a.ApplicationURI,
			ProductURI:      a.ProductURI,
			ApplicationType: applicationTypeName(a.ApplicationType),
			DiscoveryURLs:   a.DiscoveryURLs,
		}
		if a.ApplicationName != nil {
			d.ApplicationName = a.ApplicationName.Text
		}
		v.Applications = append(v.Applications, d)
	}
	return v
}

func nodeStrings(ns []*ua.NodeID) []string {
	out := make([]string, 0, len(ns))
	for _, n := range ns {
		if n != nil {
			out = append(out, n.String())
		}
	}
	return out
}
