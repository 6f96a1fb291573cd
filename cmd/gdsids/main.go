// Copyright (C) 2021~2040 EdgeGo
//
// SPDX-License-Identifier: Apache-2.0

// Command gdsids inspects the GDS NodeId registry and resolves its
// symbols against a running server.
package main

import (
	"fmt"
	"os"

	"github.com/edgego/device-opcua-gds"
	"github.com/spf13/cobra"
)

const appName = "gdsids"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   appName,
		Short: "Well-known NodeIds of the OPC-UA Global Discovery Server",
		Long: `gdsids looks up the well-known nodes of the OPC-UA GDS information model.

Symbols are the names used by the registry, e.g. Directory_FindApplications.
Their ids are local to the namespace http://opcfoundation.org/UA/GDS/ and
resolve translates them to the namespace index a given server uses.`,
		SilenceUsage: true,
	}

	cmd.AddCommand(lookupCmd(), listCmd(), nameCmd(), resolveCmd(), discoverCmd())
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, device_opcua_gds.Version)
		},
	})

	return cmd
}
