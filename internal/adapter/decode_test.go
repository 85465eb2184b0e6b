// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"testing"

	"github.com/kevinlebrun/pocket-triage/models"
	"github.com/stretchr/testify/assert"
)

func TestDecodeRawLink(t *testing.T) {
	tests := []struct {
		name string
		raw  models.RawLink
		want models.Link
	}{
		{
			name: "all fields",
			raw:  models.RawLink{ItemID: "1", GivenURL: "https://go.dev", GivenTitle: "Go", Excerpt: "lang", Favorite: "1"},
			want: models.Link{ID: "1", Title: "Go", URL: "https://go.dev", Excerpt: "lang", Favorite: true},
		},
		{
			name: "title falls back to url",
			raw:  models.RawLink{ItemID: "2", GivenURL: "https://go.dev"},
			want: models.Link{ID: "2", Title: "https://go.dev", URL: "https://go.dev"},
		},
		{
			name: "favorite only on exact flag",
			raw:  models.RawLink{ItemID: "3", Favorite: "true"},
			want: models.Link{ID: "3"},
		},
		{
			name: "empty record",
			raw:  models.RawLink{},
			want: models.Link{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DecodeRawLink(tt.raw))
		})
	}
}

func TestDecodeLinks_KeepsOrder(t *testing.T) {
	links := DecodeLinks([]models.RawLink{{ItemID: "b"}, {ItemID: "a"}})
	assert.Equal(t, []string{"b", "a"}, ExtractIDs(links))
}

func TestDecodeLinks_SkipsRecordsWithoutID(t *testing.T) {
	links := DecodeLinks([]models.RawLink{
		{GivenURL: "https://no-id.example"},
		{ItemID: "1", GivenURL: "https://one.example"},
		{GivenURL: "https://other-no-id.example"},
	})

	assert.Equal(t, []string{"1"}, ExtractIDs(links))
}

func TestExtractIDs(t *testing.T) {
	assert.Empty(t, ExtractIDs(nil))
	assert.Equal(t, []string{"3", "1", "3", ""}, ExtractIDs([]models.Link{{ID: "3"}, {ID: "1"}, {ID: "3"}, {}}))
}
