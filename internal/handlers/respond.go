// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers serves the content store over HTTP: a cached public read
// API and an authenticated admin API that applies overrides.
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"marketsite/internal/content"
)

// maxBodyBytes caps the size of an admin request body.
const maxBodyBytes = 1 << 20

// errorBody is the JSON shape of every error response. Value carries the
// applied entity when a write-through failed after the change was made.
type errorBody struct {
	Error string `json:"error"`
	Value any    `json:"value,omitempty"`
}

// writeJSON encodes v with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		slog.Error("encode response failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeRaw(w, status, body)
}

// writeRaw writes an already encoded JSON body.
func writeRaw(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	w.Write(body)
	w.Write([]byte("\n"))
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorBody{Error: msg})
}

// writeStoreError maps a content store error to a response. A PersistError
// means the change was applied locally but the remote write failed, so the
// applied value is returned alongside a 502.
func writeStoreError(w http.ResponseWriter, err error, applied any) {
	var perr *content.PersistError
	switch {
	case errors.As(err, &perr):
		slog.Warn("write-through failed", "domain", perr.Domain, "id", perr.ID, "op", perr.Op, "error", perr.Err)
		writeJSON(w, http.StatusBadGateway, errorBody{Error: err.Error(), Value: applied})
	case errors.Is(err, content.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, content.ErrIDMismatch), errors.Is(err, content.ErrExists):
		writeError(w, http.StatusConflict, err.Error())
	default:
		slog.Error("content store failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// decodeBody reads a JSON override from the request. Unknown fields and
// trailing data are rejected.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decode body: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errors.New("decode body: trailing data after JSON value")
	}
	return nil
}
