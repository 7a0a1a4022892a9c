// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport of the vault server.
//
// Routes live under /api. Sign-up, login, logout and version are public;
// every /api/vault route requires a session token, read from the "token"
// cookie or an "Authorization: Bearer" header. Request bodies and
// responses are JSON; vault fields are opaque ciphertext and pass through
// unchanged.
package http
