// Copyright (C) 2021~2040 EdgeGo
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/edgego/device-opcua-gds/internal/discovery"
	"github.com/edgego/device-opcua-gds/internal/gdsclient"
	"github.com/edgego/device-opcua-gds/pkg/gds"
	"github.com/edgexfoundry/go-mod-core-contracts/v2/clients/logger"
	"github.com/edgexfoundry/go-mod-core-contracts/v2/models"
	"github.com/gopcua/opcua/ua"
	"github.com/spf13/cobra"
)

func lookupCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "lookup SYMBOL...",
		Short: "Show the ids of registry symbols",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := lookupSymbols(args)
			if err != nil {
				return err
			}
			return writeSymbols(cmd.OutOrStdout(), format, out)
		},
	}
	cmd.Flags().StringVarP(&format, "output", "o", "table", "Output format (table, json, yaml)")
	return cmd
}

func lookupSymbols(names []string) ([]symbolOutput, error) {
	out := make([]symbolOutput, 0, len(names))
	for _, name := range names {
		s, ok := gds.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("%w: %s", gds.ErrUnknownSymbol, name)
		}
		out = append(out, newSymbolOutput(s))
	}
	return out, nil
}

func listCmd() *cobra.Command {
	var (
		class  string
		format string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the registry, optionally filtered by node class",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var c ua.NodeClass
			if class != "" {
				var err error
				if c, err = gds.ParseClass(class); err != nil {
					return err
				}
			}
			var out []symbolOutput
			for _, s := range gds.Symbols(c) {
				out = append(out, newSymbolOutput(s))
			}
			return writeSymbols(cmd.OutOrStdout(), format, out)
		},
	}
	cmd.Flags().StringVar(&class, "class", "", "Node class (Object, Variable, Method, ObjectType, DataType)")
	cmd.Flags().StringVarP(&format, "output", "o", "table", "Output format (table, json, yaml)")
	return cmd
}

func nameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "name ID",
		Short: "Print the symbol of a numeric id in the GDS namespace",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseLocalID(args[0])
			if err != nil {
				return err
			}
			s, ok := gds.SymbolOf(gds.OpcUaGds, id)
			if !ok {
				return fmt.Errorf("%w: i=%d", gds.ErrUnknownSymbol, id)
			}
			fmt.Fprintln(cmd.OutOrStdout(), s.Name)
			return nil
		},
	}
}

// parseLocalID accepts "15005" and "i=15005".
func parseLocalID(s string) (uint32, error) {
	v, err := strconv.ParseUint(strings.TrimPrefix(s, "i="), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return uint32(v), nil
}

func resolveCmd() *cobra.Command {
	var (
		cfg      gdsclient.Config
		format   string
		timeout  time.Duration
		logLevel string
	)

	cmd := &cobra.Command{
		Use:   "resolve SYMBOL...",
		Short: "Resolve symbols to the NodeIds used by a server",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := lookupSymbols(args)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()
			conn, err := gdsclient.Dial(ctx, cfg)
			if err != nil {
				return err
			}
			defer conn.Close()

			if err := resolveSymbols(gdsclient.New(conn, logger.NewClient(appName, logLevel)), out); err != nil {
				return err
			}
			return writeSymbols(cmd.OutOrStdout(), format, out)
		},
	}
	cmd.Flags().StringVar(&cfg.Endpoint, "endpoint", "", "GDS endpoint URL, e.g. opc.tcp://localhost:58810")
	cmd.Flags().StringVar(&cfg.Policy, "policy", "None", "Security policy")
	cmd.Flags().StringVar(&cfg.Mode, "mode", "None", "Security mode")
	cmd.Flags().StringVar(&cfg.CertFile, "cert", "", "Client certificate file")
	cmd.Flags().StringVar(&cfg.KeyFile, "key", "", "Client private key file")
	cmd.Flags().StringVar(&cfg.Username, "username", "", "User name, anonymous if empty")
	cmd.Flags().StringVar(&cfg.Password, "password", "", "Password")
	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "Connect timeout")
	cmd.Flags().StringVar(&logLevel, "log-level", models.ErrorLog, "Log level (TRACE, DEBUG, INFO, WARN, ERROR)")
	cmd.Flags().StringVarP(&format, "output", "o", "table", "Output format (table, json, yaml)")
	_ = cmd.MarkFlagRequired("endpoint")
	return cmd
}

// resolveSymbols fills in the server-local NodeId of each entry.
func resolveSymbols(c *gdsclient.Client, out []symbolOutput) error {
	for i := range out {
		n, err := c.NodeID(out[i].Name)
		if err != nil {
			return err
		}
		out[i].NodeID = n.String()
	}
	return nil
}

func discoverCmd() *cobra.Command {
	var (
		cfg    discovery.Config
		all    bool
		format string
	)

	cmd := &cobra.Command{
		Use:   "discover",
		Short: "Find Global Discovery Servers announced with mDNS",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			servers, err := discovery.Browse(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			return writeServers(cmd.OutOrStdout(), format, filterServers(servers, all))
		},
	}
	cmd.Flags().StringVar(&cfg.Interface, "interface", "", "Network interface to browse on, all if empty")
	cmd.Flags().DurationVar(&cfg.Timeout, "timeout", discovery.DefaultTimeout, "How long to listen for announcements")
	cmd.Flags().BoolVar(&all, "all", false, "Include OPC-UA servers without the GDS capability")
	cmd.Flags().StringVarP(&format, "output", "o", "table", "Output format (table, json, yaml)")
	return cmd
}

func filterServers(servers []discovery.Server, all bool) []serverOutput {
	out := []serverOutput{}
	for _, s := range servers {
		if all || s.HasCapability(discovery.CapabilityGDS) {
			out = append(out, serverOutput{Server: s, URL: s.DiscoveryURL()})
		}
	}
	return out
}
