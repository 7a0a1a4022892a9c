// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal interface of the vault client, built on
// Bubble Tea.
//
// Two programs run in turn: the login flow (menu, login and sign-up pages)
// and the vault main loop. Logging out returns to the login flow.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
	tea "github.com/charmbracelet/bubbletea"
)

var (
	ErrUserQuit      = errors.New("user quit")
	ErrNilDependency = errors.New("tui dependency is nil")
)

type TUI struct {
	session   Session
	vault     Vault
	generator PasswordGenerator
	buildInfo models.AppBuildInfo

	// options are appended to every tea.NewProgram call.
	options []tea.ProgramOption

	logger *logger.Logger
}

func New(session Session, v Vault, gen PasswordGenerator, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if session == nil || v == nil || gen == nil {
		return nil, ErrNilDependency
	}

	return &TUI{
		session:   session,
		vault:     v,
		generator: gen,
		buildInfo: buildInfo,
		options:   []tea.ProgramOption{tea.WithAltScreen()},
		logger:    logger,
	}, nil
}

// Run alternates between the login flow and the vault until the user quits.
func (t *TUI) Run(ctx context.Context) error {
	for {
		email, err := t.LoginFlow(ctx)
		if errors.Is(err, ErrUserQuit) {
			return nil
		}
		if err != nil {
			return err
		}

		logout, err := t.MainLoop(ctx, email)
		if err != nil {
			return err
		}
		if !logout {
			return nil
		}
		t.logger.Info().Msg("back to login")
	}
}

// LoginFlow runs the menu until a login succeeds and returns the email of
// the account.
func (t *TUI) LoginFlow(ctx context.Context) (string, error) {
	pages := map[string]tea.Model{
		pageMenu:     NewMenuModel(),
		pageLogin:    NewLoginModel(ctx, t.session),
		pageRegister: NewRegisterModel(ctx, t.session),
	}

	root := NewRootModel(pages, pageMenu, t.buildInfo)
	finalModel, err := t.program(ctx, root).Run()
	if err != nil {
		return "", err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return "", tea.ErrProgramKilled
	}
	if result.quitByUser {
		return "", ErrUserQuit
	}

	return result.email, nil
}

// MainLoop runs the vault screens. logout reports whether the user logged
// out rather than quit.
func (t *TUI) MainLoop(ctx context.Context, email string) (logout bool, err error) {
	model := newMainLoopModel(ctx, t.vault, t.session, t.generator, email)
	finalModel, err := t.program(ctx, model).Run()
	if err != nil {
		return false, err
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}

func (t *TUI) program(ctx context.Context, model tea.Model) *tea.Program {
	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, t.options...)
	return tea.NewProgram(model, opts...)
}
