// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBootstrap(t *testing.T) {
	tests := []struct {
		name         string
		rawURL       string
		wantCaptured bool
		wantToken    string
		wantURL      string
	}{
		{
			name:         "token captured and stripped",
			rawURL:       "http://localhost:8081/callback?access_token=abc",
			wantCaptured: true,
			wantToken:    "abc",
			wantURL:      "http://localhost:8081/callback",
		},
		{
			name:         "other params kept",
			rawURL:       "http://localhost:8081/callback?state=x&access_token=abc&b=2",
			wantCaptured: true,
			wantToken:    "abc",
			wantURL:      "http://localhost:8081/callback?b=2&state=x",
		},
		{
			name:    "no token",
			rawURL:  "http://localhost:8081/callback?state=x",
			wantURL: "http://localhost:8081/callback?state=x",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession(&memoryStore{})
			u, err := url.Parse(tt.rawURL)
			require.NoError(t, err)

			cleaned, captured, err := Bootstrap(context.Background(), s, u)

			require.NoError(t, err)
			assert.Equal(t, tt.wantCaptured, captured)
			assert.Equal(t, tt.wantToken, s.Token())
			assert.Equal(t, tt.wantURL, cleaned.String())
			assert.Equal(t, tt.rawURL, u.String(), "input must not be modified")
		})
	}
}

func TestBootstrap_EmptyToken(t *testing.T) {
	s := NewSession(&memoryStore{})
	u, _ := url.Parse("http://localhost:8081/callback?access_token=")

	_, captured, err := Bootstrap(context.Background(), s, u)

	assert.ErrorIs(t, err, ErrEmptyToken)
	assert.False(t, captured)
}
