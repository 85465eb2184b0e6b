// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package pocket

import (
	"context"
	"encoding/json"

	"github.com/kevinlebrun/pocket-triage/internal/logger"
	"github.com/kevinlebrun/pocket-triage/models"
)

type dryRunClient struct {
	Client
	logger *logger.Logger
}

// NewDryRunClient wraps next so that Send only logs the actions and answers
// {"done": true}. Every other call goes through.
func NewDryRunClient(next Client, log *logger.Logger) Client {
	return &dryRunClient{Client: next, logger: log.Component("pocket-dry-run")}
}

func (c *dryRunClient) Send(_ context.Context, _ string, actions []models.PocketAction) ([]byte, error) {
	ids := make([]string, 0, len(actions))
	for _, a := range actions {
		ids = append(ids, a.ItemID)
	}
	c.logger.Info().Strs("ids", ids).Msg("dry run: send skipped")

	return json.Marshal(models.DeleteResult{Done: true})
}
