// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package generator

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("no entropy") }

func TestGenerate_Length(t *testing.T) {
	g := New()

	for _, length := range []int{MinLength, DefaultLength, MaxLength} {
		opts := DefaultOptions()
		opts.Length = length

		p, err := g.Generate(opts)
		require.NoError(t, err)
		assert.Len(t, p, length)
	}
}

func TestGenerate_InvalidLength(t *testing.T) {
	g := New()

	for _, length := range []int{0, MinLength - 1, MaxLength + 1} {
		opts := DefaultOptions()
		opts.Length = length

		_, err := g.Generate(opts)
		assert.ErrorIs(t, err, ErrInvalidLength)
	}
}

func TestGenerate_CharacterClasses(t *testing.T) {
	tests := []struct {
		name      string
		opts      Options
		mustHave  []string
		forbidden string
	}{
		{
			name:      "lowercase only",
			opts:      Options{Length: 16},
			mustHave:  []string{charsetLowercase},
			forbidden: charsetUppercase + charsetDigits + charsetSymbols,
		},
		{
			name:      "all classes",
			opts:      Options{Length: 16, Uppercase: true, Digits: true, Symbols: true},
			mustHave:  []string{charsetLowercase, charsetUppercase, charsetDigits, charsetSymbols},
			forbidden: "",
		},
		{
			name:      "no look-alikes",
			opts:      DefaultOptions(),
			mustHave:  []string{charsetLowercase, charsetUppercase, charsetDigits, charsetSymbols},
			forbidden: lookAlikes,
		},
	}

	g := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for range 50 {
				p, err := g.Generate(tt.opts)
				require.NoError(t, err)

				for _, class := range tt.mustHave {
					assert.True(t, strings.ContainsAny(p, class), "password %q misses class %q", p, class)
				}
				if tt.forbidden != "" {
					assert.False(t, strings.ContainsAny(p, tt.forbidden), "password %q has forbidden chars", p)
				}
			}
		})
	}
}

func TestGenerate_Differs(t *testing.T) {
	g := New()
	a, err := g.Generate(DefaultOptions())
	require.NoError(t, err)
	b, err := g.Generate(DefaultOptions())
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestGenerate_RandomFailure(t *testing.T) {
	g := &Generator{random: failingReader{}}
	_, err := g.Generate(DefaultOptions())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read random")
}

func TestRemoveChars(t *testing.T) {
	assert.Equal(t, "abcdefghijkmnpqrstuvwxyz", removeChars(charsetLowercase, lookAlikes))
	assert.Equal(t, "23456789", removeChars(charsetDigits, lookAlikes))
}
