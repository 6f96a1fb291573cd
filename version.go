// Copyright (C) 2021~2040 EdgeGo
//
// SPDX-License-Identifier: Apache-2.0

package device_opcua_gds

// Version is overwritten at build time with -ldflags.
var Version string = "to be replaced by makefile"
