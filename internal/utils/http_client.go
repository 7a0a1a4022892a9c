// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around resty.Client.
// resty.New installs a cookie jar, so session cookies set by the server are
// replayed automatically on later requests made through the same client.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an independent HTTPClient with its own connection
// pool and cookie jar.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}
