// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/kevinlebrun/pocket-triage/internal/logger"
)

// DefaultRetryInterval is used when the job is built with a non-positive
// interval.
const DefaultRetryInterval = time.Minute

type retryJob struct {
	links    LinkService
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRetryJob creates a RetryJob that calls links.RetryPending on a ticker.
// The job is idle until Start is called.
func NewRetryJob(links LinkService, interval time.Duration, log *logger.Logger) RetryJob {
	if interval <= 0 {
		interval = DefaultRetryInterval
	}
	return &retryJob{
		links:    links,
		interval: interval,
		logger:   log.Component("retry-job"),
	}
}

func (j *retryJob) Start(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		j.retry(jobCtx)
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.retry(jobCtx)
			}
		}
	}()
}

// Stop is a no-op when the job is not running.
func (j *retryJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *retryJob) retry(ctx context.Context) {
	delivered, err := j.links.RetryPending(ctx)
	if err != nil {
		if ctx.Err() == nil {
			j.logger.Err(err).Str("func", "retryJob.retry").Msg("retrying queued deletes failed")
		}
		return
	}
	if delivered > 0 {
		j.logger.Info().Int("delivered", delivered).Msg("retry round finished")
	}
}
