// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"time"

	"github.com/kevinlebrun/pocket-triage/internal/adapter"
	"github.com/kevinlebrun/pocket-triage/internal/auth"
	"github.com/kevinlebrun/pocket-triage/internal/logger"
	"github.com/kevinlebrun/pocket-triage/internal/store"
)

type ClientServices struct {
	LinkService LinkService
	RetryJob    RetryJob
}

func NewClientServices(
	storages *store.ClientStorages,
	linksAdapter adapter.LinksAdapter,
	session *auth.Session,
	retryInterval time.Duration,
	log *logger.Logger,
) *ClientServices {
	linkSvc := NewLinkService(linksAdapter, storages.PendingDeleteRepository, session, log)

	return &ClientServices{
		LinkService: linkSvc,
		RetryJob:    NewRetryJob(linkSvc, retryInterval, log),
	}
}
