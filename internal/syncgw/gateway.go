// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package syncgw is the single point of contact with the remote content
// store. A Gateway wraps a storage Backend (PostgreSQL or S3) behind one
// interface; an unconfigured Gateway reports itself unavailable and turns
// every call into a no-op so the site runs on defaults and local edits.
package syncgw

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"marketsite/internal/models"
)

// Record is one stored row. Data is the row's JSON: the entity itself for
// entity collections, the settings object for site_settings (ID is the
// setting key) and a models.PricingPageRow for pricing_pages.
type Record struct {
	Collection models.Collection `json:"collection"`
	ID         string            `json:"id"`
	Data       json.RawMessage   `json:"data"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

// Backend is a storage technology able to hold Records.
type Backend interface {
	List(ctx context.Context, c models.Collection) ([]Record, error)
	Put(ctx context.Context, r Record) error
	Remove(ctx context.Context, c models.Collection, id string) error
}

// Gateway is what the content store talks to.
type Gateway interface {
	// Available reports whether a remote store was configured at startup.
	Available() bool
	// LoadAll reads every collection concurrently. A collection that fails
	// to load yields an empty slice; it never blocks the others.
	LoadAll(ctx context.Context) map[models.Collection][]Record
	// Upsert writes a single row. There is no retry.
	Upsert(ctx context.Context, r Record) error
	// Delete removes a single row. There is no retry.
	Delete(ctx context.Context, c models.Collection, id string) error
}

// LoadError is a per-collection read failure during LoadAll. It is logged,
// never returned.
type LoadError struct {
	Collection models.Collection
	Err        error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Collection, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Remote is the Gateway implementation over a Backend.
type Remote struct {
	backend Backend
}

// New returns a Gateway over b. A nil backend yields an unavailable gateway.
func New(b Backend) *Remote {
	return &Remote{backend: b}
}

// Unconfigured returns a gateway for running without a remote store.
func Unconfigured() *Remote {
	return &Remote{}
}

// Available reports whether a backend is configured.
func (g *Remote) Available() bool {
	return g != nil && g.backend != nil
}

// LoadAll reads every known collection concurrently.
func (g *Remote) LoadAll(ctx context.Context) map[models.Collection][]Record {
	out := make(map[models.Collection][]Record, len(models.Collections))
	for _, c := range models.Collections {
		out[c] = []Record{}
	}
	if !g.Available() {
		return out
	}

	var (
		mu  sync.Mutex
		grp errgroup.Group
	)
	for _, c := range models.Collections {
		grp.Go(func() error {
			start := time.Now()
			records, err := g.backend.List(ctx, c)
			if err != nil {
				slog.Warn("remote load failed, using defaults",
					"error", &LoadError{Collection: c, Err: err},
					"collection", c,
				)
				return nil
			}
			for i := range records {
				records[i].Collection = c
			}
			mu.Lock()
			out[c] = records
			mu.Unlock()
			slog.Debug("remote collection loaded", "collection", c, "rows", len(records), "duration", time.Since(start).String())
			return nil
		})
	}
	// Every task returns nil: failures stay local to their collection.
	_ = grp.Wait()
	return out
}

// Upsert writes r through to the backend. It is a no-op when unavailable.
func (g *Remote) Upsert(ctx context.Context, r Record) error {
	if !g.Available() {
		return nil
	}
	if r.UpdatedAt.IsZero() {
		r.UpdatedAt = time.Now().UTC()
	}
	if err := g.backend.Put(ctx, r); err != nil {
		return fmt.Errorf("upsert %s/%s: %w", r.Collection, r.ID, err)
	}
	return nil
}

// Delete removes a row from the backend. It is a no-op when unavailable.
func (g *Remote) Delete(ctx context.Context, c models.Collection, id string) error {
	if !g.Available() {
		return nil
	}
	if err := g.backend.Remove(ctx, c, id); err != nil {
		return fmt.Errorf("delete %s/%s: %w", c, id, err)
	}
	return nil
}
