// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package generator produces random passwords from configurable character sets.
package generator

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"strings"
)

const (
	charsetLowercase = "abcdefghijklmnopqrstuvwxyz"
	charsetUppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	charsetDigits    = "0123456789"
	charsetSymbols   = "!@#$%^&*()_+[]{}|;:,.<>?"
	lookAlikes       = "l1Io0O"

	MinLength     = 8
	MaxLength     = 32
	DefaultLength = 16
)

// ErrInvalidLength is returned when the requested length is outside MinLength..MaxLength.
var ErrInvalidLength = errors.New("invalid password length")

// Options selects the character classes of a generated password.
// Lowercase letters are always included.
type Options struct {
	Length            int
	Uppercase         bool
	Digits            bool
	Symbols           bool
	ExcludeLookAlikes bool
}

// DefaultOptions enables every class and drops look-alike characters.
func DefaultOptions() Options {
	return Options{
		Length:            DefaultLength,
		Uppercase:         true,
		Digits:            true,
		Symbols:           true,
		ExcludeLookAlikes: true,
	}
}

// Generator draws passwords from a random source.
type Generator struct {
	random io.Reader
}

// New returns a Generator backed by crypto/rand.
func New() *Generator {
	return &Generator{random: rand.Reader}
}

// Generate returns a password of opts.Length characters containing at least
// one character of every enabled class.
func (g *Generator) Generate(opts Options) (string, error) {
	if opts.Length < MinLength || opts.Length > MaxLength {
		return "", fmt.Errorf("%w: %d, must be %d..%d", ErrInvalidLength, opts.Length, MinLength, MaxLength)
	}

	classes := opts.classes()

	var all strings.Builder
	for _, class := range classes {
		all.WriteString(class)
	}
	charset := all.String()

	password := make([]byte, 0, opts.Length)
	for _, class := range classes {
		c, err := g.pick(class)
		if err != nil {
			return "", err
		}
		password = append(password, c)
	}
	for len(password) < opts.Length {
		c, err := g.pick(charset)
		if err != nil {
			return "", err
		}
		password = append(password, c)
	}

	if err := g.shuffle(password); err != nil {
		return "", err
	}
	return string(password), nil
}

func (o Options) classes() []string {
	classes := []string{charsetLowercase}
	if o.Uppercase {
		classes = append(classes, charsetUppercase)
	}
	if o.Digits {
		classes = append(classes, charsetDigits)
	}
	if o.Symbols {
		classes = append(classes, charsetSymbols)
	}

	if o.ExcludeLookAlikes {
		for i, class := range classes {
			classes[i] = removeChars(class, lookAlikes)
		}
	}
	return classes
}

func (g *Generator) pick(charset string) (byte, error) {
	n, err := g.intn(len(charset))
	if err != nil {
		return 0, err
	}
	return charset[n], nil
}

// shuffle is a Fisher-Yates pass so the guaranteed characters do not sit at
// fixed positions.
func (g *Generator) shuffle(b []byte) error {
	for i := len(b) - 1; i > 0; i-- {
		j, err := g.intn(i + 1)
		if err != nil {
			return err
		}
		b[i], b[j] = b[j], b[i]
	}
	return nil
}

func (g *Generator) intn(n int) (int, error) {
	v, err := rand.Int(g.random, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("read random: %w", err)
	}
	return int(v.Int64()), nil
}

func removeChars(s, chars string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(chars, r) {
			return -1
		}
		return r
	}, s)
}
