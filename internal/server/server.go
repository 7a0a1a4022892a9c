// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/handler"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

const shutdownTimeout = 10 * time.Second

// transport is one listening server managed by server.
type transport interface {
	listen() (net.Listener, error)
	serve(lis net.Listener) error
	Shutdown(ctx context.Context) error
}

type server struct {
	transports []transport
	logger     *logger.Logger
}

// NewServer creates a transport per handler present in handlers.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	s := &server{logger: logger}

	if handlers.HTTP != nil {
		s.transports = append(s.transports, newHTTPServer(handlers.HTTP.Init(), cfg, logger))
	}
	if handlers.GRPC != nil {
		s.transports = append(s.transports, newGRPCServer(handlers.GRPC, cfg, logger))
	}

	if len(s.transports) == 0 {
		return nil, errNoServersAreCreated
	}

	return s, nil
}

// RunServer binds every transport first, so an address conflict fails fast
// before anything is served.
func (s *server) RunServer(ctx context.Context) error {
	listeners := make([]net.Listener, 0, len(s.transports))
	for _, t := range s.transports {
		lis, err := t.listen()
		if err != nil {
			for _, l := range listeners {
				l.Close()
			}
			return fmt.Errorf("error binding listener: %w", err)
		}
		listeners = append(listeners, lis)
	}

	return s.serve(ctx, listeners)
}

func (s *server) serve(ctx context.Context, listeners []net.Listener) error {
	errs := make(chan error, len(s.transports))
	for i, t := range s.transports {
		go func() {
			errs <- t.serve(listeners[i])
		}()
	}

	var runErr error
	select {
	case <-ctx.Done():
		s.logger.Info().Msg("stop signal received")
	case runErr = <-errs:
		s.logger.Err(runErr).Msg("transport stopped unexpectedly")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.Shutdown(shutdownCtx); err != nil {
		runErr = errors.Join(runErr, err)
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return runErr
}

func (s *server) Shutdown(ctx context.Context) error {
	var errs []error
	for _, t := range s.transports {
		if err := t.Shutdown(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
