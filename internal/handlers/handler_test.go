// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for the handler tests.
// Handlers run against a real content store seeded from the built-in catalog;
// the remote store is an in-memory Backend with injectable failures.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"marketsite/internal/catalog"
	"marketsite/internal/content"
	"marketsite/internal/models"
	"marketsite/internal/syncgw"
)

var errRemoteDown = errors.New("remote store down")

// memBackend is a syncgw.Backend holding rows in memory.
type memBackend struct {
	mu   sync.Mutex
	rows map[models.Collection]map[string]syncgw.Record
	fail bool
}

func newMemBackend() *memBackend {
	return &memBackend{rows: make(map[models.Collection]map[string]syncgw.Record)}
}

func (b *memBackend) List(_ context.Context, c models.Collection) ([]syncgw.Record, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []syncgw.Record
	for _, r := range b.rows[c] {
		out = append(out, r)
	}
	return out, nil
}

func (b *memBackend) Put(_ context.Context, r syncgw.Record) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.fail {
		return errRemoteDown
	}
	if b.rows[r.Collection] == nil {
		b.rows[r.Collection] = make(map[string]syncgw.Record)
	}
	b.rows[r.Collection][r.ID] = r
	return nil
}

func (b *memBackend) Remove(_ context.Context, c models.Collection, id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.fail {
		return errRemoteDown
	}
	delete(b.rows[c], id)
	return nil
}

func (b *memBackend) setFail(fail bool) {
	b.mu.Lock()
	b.fail = fail
	b.mu.Unlock()
}

func (b *memBackend) row(c models.Collection, id string) (syncgw.Record, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	r, ok := b.rows[c][id]
	return r, ok
}

// newTestStore returns a loaded store over a fresh memBackend.
func newTestStore(t *testing.T) (*content.Store, *memBackend) {
	t.Helper()
	backend := newMemBackend()
	now := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	store := content.New(catalog.Default(), syncgw.New(backend),
		content.WithClock(func() time.Time { return now }),
	)
	if err := store.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	t.Cleanup(store.Wait)
	return store, backend
}

// do runs a request against h mounted at pattern.
func do(t *testing.T, method, pattern, path string, body string, h http.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	r := chi.NewRouter()
	r.MethodFunc(method, pattern, h)

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

// decode unmarshals a response body into v.
func decode(t *testing.T, rr *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(rr.Body.Bytes(), v); err != nil {
		t.Fatalf("decode %q: %v", rr.Body.String(), err)
	}
}
