// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the sync client runtime.
//
// It wires the durable queue, the remote adapter, the connectivity monitor
// and the sync machinery into one process lifecycle, and presents the
// status either in the terminal UI or through the local status API.
package client
