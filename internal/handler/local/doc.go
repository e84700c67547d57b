// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package local implements the client's UI-facing HTTP API. It binds to a
// loopback address and serves the sync status (also as a websocket stream),
// the queue contents, the sync actions and the wallet producers to the TUI
// companion tools such as walletctl.
package local
