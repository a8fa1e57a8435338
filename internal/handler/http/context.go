// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/MKhiriev/ucip-keeper/internal/utils"
	"github.com/MKhiriev/ucip-keeper/models"
)

// getContext serves GET /getContext/{user_id}.
//
// The stored document is answered as its JSON projection wrapped in a
// string: {"data": "<json>"}.
func (h *Handler) getContext(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)

	doc, err := h.services.ContextService.GetContext(ctx, userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	data, err := h.codec.ToJSON(doc)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ContextResponse{Data: string(data)}, http.StatusOK)
}

// updateContext serves POST /updateContext/{user_id}.
//
// The consent gate runs on the raw body before the document is parsed, so
// a payload without a granted consent is never decoded nor encrypted.
//
// The stored document always names its owner: a body without "userId" is
// saved with the {user_id} from the path, so a later GET returns it with
// "userId" set. A body naming a different user is rejected with 400
// "Invalid request". Other fields, timestamp included, are stored as sent.
func (h *Handler) updateContext(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err != nil {
		writeError(w, r, err)
		return
	}
	if len(bytes.TrimSpace(body)) == 0 {
		writeError(w, r, ErrEmptyBody)
		return
	}

	if err = h.consentValidator.Validate(ctx, json.RawMessage(body)); err != nil {
		writeError(w, r, err)
		return
	}

	doc, err := h.codec.FromJSON(body)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.ContextService.UpdateContext(ctx, userID, doc); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "Updated"}, http.StatusOK)
}
