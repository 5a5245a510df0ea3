// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"net/http"
)

// Response is the envelope for successful replies.
type Response struct {
	Data    any         `json:"data"`
	Message string      `json:"message"`
	Status  int         `json:"status"`
	Meta    *Pagination `json:"_meta,omitempty"`
}

type Pagination struct {
	Page int64 `json:"page"`
	Size int64 `json:"size"`
}

// ErrorResponse is the envelope for every failed reply.
type ErrorResponse struct {
	Status  int            `json:"status"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, body any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if body == nil {
		return nil
	}

	return json.NewEncoder(w).Encode(body)
}

func WriteData(w http.ResponseWriter, status int, message string, data any) error {
	return WriteJSON(w, status, Response{Data: data, Message: message, Status: status})
}

func WritePage(w http.ResponseWriter, message string, data any, page, size int64) error {
	return WriteJSON(w, http.StatusOK, Response{
		Data:    data,
		Message: message,
		Status:  http.StatusOK,
		Meta:    &Pagination{Page: page, Size: size},
	})
}

func WriteError(w http.ResponseWriter, status int, message string, details map[string]any) error {
	return WriteJSON(w, status, ErrorResponse{Status: status, Message: message, Details: details})
}
