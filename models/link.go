// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Link is a saved article as seen by the triage client. It is decoded once
// from a [RawLink] and never mutated afterwards.
type Link struct {
	// ID is the Pocket item id. It is the identity used by the review keep
	// set and the only field sent back to the server on delete.
	ID string `json:"id"`

	// Title is the user-given title, or the URL when the title is empty.
	Title string `json:"title"`

	URL     string `json:"url"`
	Excerpt string `json:"excerpt"`

	// Favorite links are never deleted by a review session.
	Favorite bool `json:"favorite"`
}

// RawLink is a single record of the `list` object returned by GET /links.
// Every field is optional and string-typed on the wire.
type RawLink struct {
	ItemID     string `json:"item_id"`
	GivenURL   string `json:"given_url"`
	GivenTitle string `json:"given_title"`
	Excerpt    string `json:"excerpt"`
	Favorite   string `json:"favorite"`
}

// LinksResponse is the body of GET /links: `{"list": {"<any key>": RawLink}}`.
//
// The mapping keys are ignored but their order is kept, so List holds the
// records in the order the server sent them.
type LinksResponse struct {
	List RawLinkList `json:"list"`
}

// RawLinkList is an ordered view over the `list` object.
type RawLinkList []RawLink

var errUnexpectedListToken = errors.New("unexpected token in links list")

// UnmarshalJSON decodes the `list` object preserving key order. An empty
// JSON array and null are accepted as an empty list, as the upstream API
// sends `[]` when nothing is saved.
func (l *RawLinkList) UnmarshalJSON(b []byte) error {
	trimmed := bytes.TrimSpace(b)
	if bytes.Equal(trimmed, []byte("null")) {
		*l = nil
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("decode links list: %w", err)
	}

	delim, ok := tok.(json.Delim)
	if !ok {
		return fmt.Errorf("%w: %v", errUnexpectedListToken, tok)
	}

	switch delim {
	case '[':
		var items []RawLink
		if err = json.Unmarshal(trimmed, &items); err != nil {
			return fmt.Errorf("decode links array: %w", err)
		}
		*l = items
		return nil
	case '{':
	default:
		return fmt.Errorf("%w: %v", errUnexpectedListToken, delim)
	}

	items := make([]RawLink, 0)
	for dec.More() {
		// key, ignored
		if _, err = dec.Token(); err != nil {
			return fmt.Errorf("decode links key: %w", err)
		}

		var raw RawLink
		if err = dec.Decode(&raw); err != nil {
			return fmt.Errorf("decode raw link: %w", err)
		}
		items = append(items, raw)
	}

	if _, err = dec.Token(); err != nil {
		return fmt.Errorf("decode links list end: %w", err)
	}

	*l = items
	return nil
}
