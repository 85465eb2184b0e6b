// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/kevinlebrun/pocket-triage/internal/logger"
	"github.com/kevinlebrun/pocket-triage/internal/utils"
	"github.com/kevinlebrun/pocket-triage/models"
)

// getLinks answers with Pocket's unread listing as is.
func (h *Handler) getLinks(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	token, _ := utils.GetAccessTokenFromContext(r.Context())

	body, err := h.pocket.Get(r.Context(), token)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getLinks").Msg("error fetching links")
		h.writeError(w, err)
		return
	}

	writeRawJSON(w, body)
}

// deleteLinks turns a JSON array of item ids into Pocket delete actions.
func (h *Handler) deleteLinks(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	token, _ := utils.GetAccessTokenFromContext(r.Context())

	var ids []string
	if err := json.NewDecoder(r.Body).Decode(&ids); err != nil {
		err = fmt.Errorf("%w: %w", ErrInvalidBody, err)
		log.Err(err).Str("func", "*Handler.deleteLinks").Send()
		h.writeError(w, err)
		return
	}

	if len(ids) == 0 {
		_, _ = utils.WriteJSON(w, models.DeleteResult{Done: true}, http.StatusOK)
		return
	}

	if err := h.validator.Validate(r.Context(), ids); err != nil {
		err = fmt.Errorf("%w: %w", ErrInvalidIDs, err)
		log.Err(err).Str("func", "*Handler.deleteLinks").Send()
		h.writeError(w, err)
		return
	}

	body, err := h.pocket.Send(r.Context(), token, models.NewDeleteActions(ids))
	if err != nil {
		log.Err(err).Str("func", "*Handler.deleteLinks").Int("count", len(ids)).Msg("error deleting links")
		h.writeError(w, err)
		return
	}

	log.Info().Int("count", len(ids)).Msg("links deleted")
	writeRawJSON(w, body)
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	utils.WriteError(w, messageFromError(err), statusFromError(err))
}

func writeRawJSON(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
