// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Request bodies sent by the server to the Pocket v3 API.

// PocketAuth identifies the application and the user on every Pocket call.
type PocketAuth struct {
	ConsumerKey string `json:"consumer_key"`
	AccessToken string `json:"access_token"`
}

// PocketGetRequest is the body of POST /v3/get.
type PocketGetRequest struct {
	PocketAuth
	State      string `json:"state"`
	DetailType string `json:"detailType"`
	Count      int    `json:"count"`
	Offset     int    `json:"offset"`
}

// PocketAction is one entry of a /v3/send batch.
type PocketAction struct {
	ItemID string `json:"item_id"`
	Action string `json:"action"`
}

// PocketSendRequest is the body of POST /v3/send.
type PocketSendRequest struct {
	PocketAuth
	Actions []PocketAction `json:"actions"`
}

const (
	// PocketActionDelete removes an item from the user's list.
	PocketActionDelete = "delete"

	// PocketStateUnread selects items that are not archived.
	PocketStateUnread = "unread"

	// PocketDetailComplete requests every field of an item.
	PocketDetailComplete = "complete"

	// PocketMaxCount is the number of items fetched in one go.
	PocketMaxCount = 5000
)

// NewDeleteActions builds one delete action per id, keeping order.
func NewDeleteActions(ids []string) []PocketAction {
	actions := make([]PocketAction, 0, len(ids))
	for _, id := range ids {
		actions = append(actions, PocketAction{ItemID: id, Action: PocketActionDelete})
	}
	return actions
}

// DeleteResult is the body answered by a dry-run DELETE /links.
type DeleteResult struct {
	Done bool `json:"done"`
}
