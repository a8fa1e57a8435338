// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the ucip command-line client.
//
// It talks to the HTTP API through [adapter.ServerAdapter], mints development
// tokens, and converts context documents between their JSON and binary
// protobuf forms offline.
package client
