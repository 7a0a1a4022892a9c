// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the HTTP and gRPC transports of the vault server.
//
// Each enabled transport is started in its own goroutine. When the run
// context is cancelled, or any transport fails, all of them are shut down
// gracefully within a bounded time.
package server
