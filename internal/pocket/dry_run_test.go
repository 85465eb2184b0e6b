// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package pocket

import (
	"context"
	"testing"

	"github.com/kevinlebrun/pocket-triage/internal/logger"
	"github.com/kevinlebrun/pocket-triage/internal/mock"
	"github.com/kevinlebrun/pocket-triage/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDryRunClient_SendIsSkipped(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mock.NewMockClient(ctrl)
	// no Send expectation: a call would fail the test

	c := NewDryRunClient(next, logger.Nop())

	body, err := c.Send(context.Background(), "acc", models.NewDeleteActions([]string{"1"}))

	require.NoError(t, err)
	assert.JSONEq(t, `{"done": true}`, string(body))
}

func TestDryRunClient_GetGoesThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mock.NewMockClient(ctrl)
	ctx := context.Background()

	next.EXPECT().Get(ctx, "acc").Return([]byte(`{"list":[]}`), nil)

	body, err := NewDryRunClient(next, logger.Nop()).Get(ctx, "acc")

	require.NoError(t, err)
	assert.Equal(t, `{"list":[]}`, string(body))
}
