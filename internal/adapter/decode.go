// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "github.com/kevinlebrun/pocket-triage/models"

// FavoriteFlag is the wire value of a favorited link.
const FavoriteFlag = "1"

// DecodeRawLink converts a wire record into a [models.Link].
// The title falls back to the URL when empty.
func DecodeRawLink(raw models.RawLink) models.Link {
	title := raw.GivenTitle
	if title == "" {
		title = raw.GivenURL
	}

	return models.Link{
		ID:       raw.ItemID,
		Title:    title,
		URL:      raw.GivenURL,
		Excerpt:  raw.Excerpt,
		Favorite: raw.Favorite == FavoriteFlag,
	}
}

// DecodeLinks decodes the records of the list, keeping order. Records
// without an item_id are skipped: they cannot be deleted and the review
// tells links apart by id.
func DecodeLinks(raws []models.RawLink) []models.Link {
	links := make([]models.Link, 0, len(raws))
	for _, raw := range raws {
		if raw.ItemID == "" {
			continue
		}
		links = append(links, DecodeRawLink(raw))
	}
	return links
}

// ExtractIDs returns the id of every link, one per link, in order.
func ExtractIDs(links []models.Link) []string {
	ids := make([]string, 0, len(links))
	for _, l := range links {
		ids = append(ids, l.ID)
	}
	return ids
}
