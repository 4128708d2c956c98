// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package content holds the current, fully merged value of every content
// domain. The Store is seeded from the default catalog, overlaid once with
// the rows of the remote store, and then edited in place by mutations.
//
// Mutations are optimistic: the in-memory value is replaced before the
// write-through to the remote store starts, and a failed write never rolls
// it back. Whether a caller sees that failure is decided by the domain's
// Policy. Without a configured remote store the write-through is skipped and
// the store optionally keeps a snapshot in a LocalCache instead.
package content

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"marketsite/internal/catalog"
	"marketsite/internal/merge"
	"marketsite/internal/models"
	"marketsite/internal/syncgw"
)

// Snapshot is the complete content state. It is also the document kept in
// the LocalCache when running without a remote store.
type Snapshot struct {
	HomepageSettings models.HomepageSettings     `json:"homepage"`
	HomepageContent  models.HomepageContent      `json:"homepage_content"`
	SocialLinks      models.SocialLinks          `json:"social_links"`
	AboutPage        models.AboutPageSettings    `json:"about_page"`
	ServiceDetails   []models.ServiceDetail      `json:"service_details"`
	PricingPages     []models.PricingPageContent `json:"pricing_pages"`
	Testimonials     []models.Testimonial        `json:"testimonials"`
	PricingTiers     []models.PricingTier        `json:"pricing_tiers"`
	FAQs             []models.FAQ                `json:"faqs"`
	Projects         []models.Project            `json:"projects"`
	BlogPosts        []models.BlogPost           `json:"blog_posts"`
}

// LocalCache persists the Snapshot between restarts in local-only mode.
// LoadSnapshot returns nil data when nothing has been saved.
type LocalCache interface {
	LoadSnapshot(ctx context.Context) ([]byte, error)
	SaveSnapshot(ctx context.Context, data []byte) error
	ClearSnapshot(ctx context.Context) error
}

// Store is the ContentStore. It is safe for concurrent use.
type Store struct {
	catalog        *catalog.Catalog
	gateway        syncgw.Gateway
	cache          LocalCache
	policies       map[models.Domain]Policy
	persistTimeout time.Duration
	now            func() time.Time
	newID          func() string

	mu      sync.RWMutex
	state   Snapshot
	loaded  atomic.Bool
	version atomic.Uint64

	subsMu sync.Mutex
	subs   map[chan Change]struct{}

	inflight sync.WaitGroup
}

// Option configures a Store.
type Option func(*Store)

// WithPolicies overrides the persistence policy of the given domains.
func WithPolicies(p map[models.Domain]Policy) Option {
	return func(s *Store) {
		for d, pol := range p {
			s.policies[d] = pol
		}
	}
}

// WithLocalCache sets where local-only mode keeps its snapshot.
func WithLocalCache(c LocalCache) Option {
	return func(s *Store) { s.cache = c }
}

// WithPersistTimeout bounds each write-through. Zero means no bound.
func WithPersistTimeout(d time.Duration) Option {
	return func(s *Store) { s.persistTimeout = d }
}

// WithClock replaces time.Now, used for blog timestamps and row times.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator replaces the generator of ids for added entities.
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) { s.newID = gen }
}

// New creates a Store seeded from cat. A nil gateway runs the store in
// local-only mode.
func New(cat *catalog.Catalog, gw syncgw.Gateway, opts ...Option) *Store {
	if gw == nil {
		gw = syncgw.Unconfigured()
	}
	s := &Store{
		catalog:  cat,
		gateway:  gw,
		policies: DefaultPolicies(),
		now:      time.Now,
		newID:    uuid.NewString,
		subs:     make(map[chan Change]struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.state = seed(cat)
	return s
}

func seed(cat *catalog.Catalog) Snapshot {
	return Snapshot{
		HomepageSettings: cat.HomepageSettings(),
		HomepageContent:  cat.HomepageContent(),
		SocialLinks:      cat.SocialLinks(),
		AboutPage:        cat.AboutPage(),
		ServiceDetails:   cat.ServiceDetails(),
		PricingPages:     cat.PricingPages(),
		Testimonials:     cat.Testimonials(),
		PricingTiers:     cat.PricingTiers(),
		FAQs:             cat.FAQs(),
		Projects:         cat.Projects(),
		BlogPosts:        cat.BlogPosts(),
	}
}

// Version counts the changes published so far. Readers compare it before
// and after deriving data from the store to detect a concurrent change.
func (s *Store) Version() uint64 {
	return s.version.Load()
}

// Remote reports whether a remote store is configured.
func (s *Store) Remote() bool {
	return s.gateway.Available()
}

// Load overlays the remote rows onto the seeded content. Only the first call
// does anything. Every row is merged over its catalog default, replacing
// whatever the store holds for that key, edits made before Load included.
// In local-only mode the last saved snapshot is restored instead.
func (s *Store) Load(ctx context.Context) error {
	if !s.loaded.CompareAndSwap(false, true) {
		return nil
	}
	if !s.gateway.Available() {
		return s.loadLocal(ctx)
	}

	start := time.Now()
	batch := s.gateway.LoadAll(ctx)
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("load content: %w", err)
	}

	s.mu.Lock()
	n := s.applyBatch(batch)
	s.mu.Unlock()

	s.publish(Change{Op: OpLoad})
	slog.Info("content loaded from remote store", "rows", n, "duration", time.Since(start).String())
	return nil
}

// applyBatch merges every row over its default. Caller holds s.mu.
func (s *Store) applyBatch(batch map[models.Collection][]syncgw.Record) int {
	n := 0
	for _, c := range models.Collections {
		for _, rec := range batch[c] {
			a, ok := rowApplierFor(c, rec.ID)
			if !ok {
				slog.Warn("unknown content row skipped", "collection", c, "id", rec.ID)
				continue
			}
			if err := a.applyRow(s, rec); err != nil {
				slog.Warn("malformed content row skipped", "collection", c, "id", rec.ID, "error", err)
				continue
			}
			n++
		}
	}
	return n
}

func (s *Store) loadLocal(ctx context.Context) error {
	if s.cache == nil {
		slog.Info("no remote store configured, serving default content")
		return nil
	}
	data, err := s.cache.LoadSnapshot(ctx)
	if err != nil {
		slog.Warn("local snapshot unavailable, serving default content", "error", err)
		return nil
	}
	if data == nil {
		return nil
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		slog.Warn("local snapshot unreadable, serving default content", "error", err)
		return nil
	}

	s.mu.Lock()
	s.state = merge.Normalize(snap)
	s.mu.Unlock()

	s.publish(Change{Op: OpLoad})
	slog.Info("content restored from local snapshot", "bytes", len(data))
	return nil
}

func (s *Store) saveLocal(ctx context.Context) {
	if s.cache == nil {
		return
	}
	s.mu.RLock()
	data, err := json.Marshal(s.state)
	s.mu.RUnlock()
	if err != nil {
		slog.Warn("encode local snapshot", "error", err)
		return
	}
	if err := s.cache.SaveSnapshot(ctx, data); err != nil {
		slog.Warn("save local snapshot", "error", err)
	}
}

// Reset discards every edit and loaded row, reseeds from the catalog and
// clears the local snapshot. The remote store is left untouched.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	s.state = seed(s.catalog)
	s.mu.Unlock()

	s.publish(Change{Op: OpReset})
	slog.Info("content reset to defaults")

	if s.cache != nil {
		if err := s.cache.ClearSnapshot(ctx); err != nil {
			return fmt.Errorf("clear local snapshot: %w", err)
		}
	}
	return nil
}

// Wait blocks until every background write-through has finished.
func (s *Store) Wait() {
	s.inflight.Wait()
}

func (s *Store) policy(d models.Domain) Policy {
	if p, ok := s.policies[d]; ok {
		return p
	}
	return Policy{Await: true}
}

// persist runs a write-through according to the domain's policy. In
// local-only mode it saves the local snapshot instead.
func (s *Store) persist(ctx context.Context, domain models.Domain, id string, op Op, write func(context.Context) error) error {
	if !s.gateway.Available() {
		s.saveLocal(ctx)
		return nil
	}

	if s.policy(domain).Await {
		wctx, cancel := s.writeContext(ctx)
		defer cancel()
		if err := write(wctx); err != nil {
			return &PersistError{Domain: domain, ID: id, Op: op, Err: err}
		}
		return nil
	}

	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()
		wctx, cancel := s.writeContext(context.WithoutCancel(ctx))
		defer cancel()
		if err := write(wctx); err != nil {
			slog.Warn("background write-through failed",
				"error", &PersistError{Domain: domain, ID: id, Op: op, Err: err},
				"domain", domain,
				"id", id,
			)
		}
	}()
	return nil
}

func (s *Store) writeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.persistTimeout > 0 {
		return context.WithTimeout(ctx, s.persistTimeout)
	}
	return context.WithCancel(ctx)
}
