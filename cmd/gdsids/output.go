// Copyright (C) 2021~2040 EdgeGo
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/edgego/device-opcua-gds/internal/discovery"
	"github.com/edgego/device-opcua-gds/pkg/gds"
	"gopkg.in/yaml.v3"
)

// symbolOutput is the printable form of a registry entry.
type symbolOutput struct {
	Name            string `json:"name" yaml:"name"`
	ID              uint32 `json:"id" yaml:"id"`
	ExpandedID      string `json:"expandedId" yaml:"expandedId"`
	Class           string `json:"class" yaml:"class"`
	BrowseName      string `json:"browseName" yaml:"browseName"`
	BrowseNamespace string `json:"browseNamespace" yaml:"browseNamespace"`
	NodeID          string `json:"nodeId,omitempty" yaml:"nodeId,omitempty"`
}

func newSymbolOutput(s gds.Symbol) symbolOutput {
	return symbolOutput{
		Name:            s.Name,
		ID:              s.ID,
		ExpandedID:      fmt.Sprintf("nsu=%s;i=%d", s.NamespaceURI(), s.ID),
		Class:           gds.ClassName(s.Class),
		BrowseName:      s.BrowseName,
		BrowseNamespace: s.BrowseNamespace,
	}
}

// serverOutput is the printable form of an announced server.
type serverOutput struct {
	discovery.Server `yaml:",inline"`
	URL              string `json:"url" yaml:"url"`
}

var headerStyle = lipgloss.NewStyle().Bold(true)

func writeSymbols(w io.Writer, format string, out []symbolOutput) error {
	if format != "table" && format != "" {
		return writeEncoded(w, format, out)
	}

	withNodeID := false
	for _, o := range out {
		withNodeID = withNodeID || o.NodeID != ""
	}
	headers := []string{"NAME", "ID", "CLASS", "BROWSE NAME"}
	if withNodeID {
		headers = append(headers, "NODE ID")
	}
	rows := make([][]string, 0, len(out))
	for _, o := range out {
		row := []string{o.Name, strconv.FormatUint(uint64(o.ID), 10), o.Class, o.BrowseName}
		if withNodeID {
			row = append(row, o.NodeID)
		}
		rows = append(rows, row)
	}
	return writeTable(w, headers, rows)
}

func writeServers(w io.Writer, format string, out []serverOutput) error {
	if format != "table" && format != "" {
		return writeEncoded(w, format, out)
	}

	rows := make([][]string, 0, len(out))
	for _, o := range out {
		rows = append(rows, []string{o.Instance, o.URL, strings.Join(o.Capabilities, ",")})
	}
	return writeTable(w, []string{"INSTANCE", "URL", "CAPABILITIES"}, rows)
}

func writeEncoded(w io.Writer, format string, v interface{}) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "yaml":
		data, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	default:
		return fmt.Errorf("unknown output format %q (table, json, yaml)", format)
	}
}

func writeTable(w io.Writer, headers []string, rows [][]string) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return lipgloss.NewStyle()
		}).
		Headers(headers...).
		Rows(rows...)
	_, err := fmt.Fprintln(w, t.Render())
	return err
}
