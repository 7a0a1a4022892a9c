// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	defaultTokenIssuer    = "go-pass-vault"
	defaultTokenDuration  = 24 * time.Hour
	defaultRequestTimeout = 15 * time.Second
	defaultAdapterAddress = "http://localhost:8080"
	defaultLogLevel       = "debug"
	defaultVersion        = "dev"

	defaultKDFTime    = 1
	defaultKDFMemory  = 64 * 1024
	defaultKDFThreads = 4
)

// defaults is merged last, so it only fills fields no other source set.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   defaultTokenIssuer,
			TokenDuration: defaultTokenDuration,
			BcryptCost:    bcrypt.DefaultCost,
			LogLevel:      defaultLogLevel,
			Version:       defaultVersion,
		},
		Server: Server{
			RequestTimeout: defaultRequestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    defaultAdapterAddress,
			RequestTimeout: defaultRequestTimeout,
		},
		Crypto: Crypto{
			KDFTime:    defaultKDFTime,
			KDFMemory:  defaultKDFMemory,
			KDFThreads: defaultKDFThreads,
		},
	}
}
