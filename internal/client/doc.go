// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client wires the terminal vault client together.
//
// The server adapter, the codec, the vault and the session are built from
// the client configuration and handed to the terminal UI. The session owns
// login state; logging out always locks the vault and forgets fetched
// records, even when the server cannot be reached.
package client
