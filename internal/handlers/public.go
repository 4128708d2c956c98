// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"cmp"
	"encoding/json"
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/go-chi/chi/v5"

	"marketsite/internal/cache"
	"marketsite/internal/content"
	"marketsite/internal/markdown"
	"marketsite/internal/models"
)

// excerptLen is the length of an excerpt derived from a post body.
const excerptLen = 200

// Public groups the read-only JSON endpoints of the marketing site. Encoded
// responses are kept in the Valkey response cache, keyed by path, until the
// store reports a change.
type Public struct {
	store *content.Store
	cache *cache.ResponseCache
}

// NewPublic creates the public handler group. rc may be nil.
func NewPublic(store *content.Store, rc *cache.ResponseCache) *Public {
	return &Public{store: store, cache: rc}
}

// serve writes the cached body for the request path, or builds, encodes and
// caches it. build reports false when the resource does not exist; misses
// are not cached. A body built while the store changed is served but not
// kept, since the change may already have cleared the cache.
func (p *Public) serve(w http.ResponseWriter, r *http.Request, build func() (any, bool)) {
	ctx := r.Context()
	key := r.URL.Path

	if body, ok := p.cache.Get(ctx, key); ok {
		w.Header().Set("X-Cache", "HIT")
		writeRaw(w, http.StatusOK, body)
		return
	}

	version := p.store.Version()
	v, ok := build()
	if !ok {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	body, err := json.Marshal(v)
	if err != nil {
		slog.Error("encode response failed", "path", key, "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if p.store.Version() == version {
		p.cache.Set(ctx, key, body)
		if p.store.Version() != version {
			p.cache.Invalidate(ctx, key)
		}
	}
	w.Header().Set("X-Cache", "MISS")
	writeRaw(w, http.StatusOK, body)
}

// found adapts a value-only reader to serve.
func found[T any](read func() T) func() (any, bool) {
	return func() (any, bool) { return read(), true }
}

// ordered adapts a list reader to serve, sorting by display order.
func ordered[T any](read func() []T, order func(T) int) func() (any, bool) {
	return func() (any, bool) { return byOrder(read(), order), true }
}

func (p *Public) HomepageSettings(w http.ResponseWriter, r *http.Request) {
	p.serve(w, r, found(p.store.HomepageSettings))
}

func (p *Public) HomepageContent(w http.ResponseWriter, r *http.Request) {
	p.serve(w, r, found(p.store.HomepageContent))
}

func (p *Public) SocialLinks(w http.ResponseWriter, r *http.Request) {
	p.serve(w, r, found(p.store.SocialLinks))
}

func (p *Public) AboutPage(w http.ResponseWriter, r *http.Request) {
	p.serve(w, r, found(p.store.AboutPage))
}

func (p *Public) ServiceDetails(w http.ResponseWriter, r *http.Request) {
	p.serve(w, r, found(p.store.ServiceDetails))
}

func (p *Public) ServiceDetail(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	p.serve(w, r, func() (any, bool) { return p.store.ServiceDetail(id) })
}

func (p *Public) PricingPages(w http.ResponseWriter, r *http.Request) {
	p.serve(w, r, found(p.store.PricingPages))
}

func (p *Public) PricingPage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	p.serve(w, r, func() (any, bool) { return p.store.PricingPage(id) })
}

// PricingTiers lists the price cards in display order.
func (p *Public) PricingTiers(w http.ResponseWriter, r *http.Request) {
	p.serve(w, r, ordered(p.store.PricingTiers, func(t models.PricingTier) int { return t.Order }))
}

func (p *Public) Testimonials(w http.ResponseWriter, r *http.Request) {
	p.serve(w, r, ordered(p.store.Testimonials, func(t models.Testimonial) int { return t.Order }))
}

func (p *Public) FAQs(w http.ResponseWriter, r *http.Request) {
	p.serve(w, r, ordered(p.store.FAQs, func(f models.FAQ) int { return f.Order }))
}

func (p *Public) Projects(w http.ResponseWriter, r *http.Request) {
	p.serve(w, r, ordered(p.store.Projects, func(pr models.Project) int { return pr.Order }))
}

// blogSummary is a blog post as listed on the index page.
type blogSummary struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Excerpt   string    `json:"excerpt"`
	Author    string    `json:"author"`
	ImageURL  string    `json:"image_url"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// blogArticle is a published post with its body rendered to HTML.
type blogArticle struct {
	models.BlogPost
	HTML string `json:"html"`
}

// BlogPosts lists published posts, newest first. Posts without an excerpt
// get one derived from their body.
func (p *Public) BlogPosts(w http.ResponseWriter, r *http.Request) {
	p.serve(w, r, func() (any, bool) {
		out := []blogSummary{}
		for _, post := range p.store.BlogPosts() {
			if !post.IsPublished() {
				continue
			}
			excerpt := post.Excerpt
			if excerpt == "" {
				excerpt = markdown.Excerpt(post.Content, excerptLen)
			}
			out = append(out, blogSummary{
				ID:        post.ID,
				Title:     post.Title,
				Slug:      post.Slug,
				Excerpt:   excerpt,
				Author:    post.Author,
				ImageURL:  post.ImageURL,
				Tags:      post.Tags,
				CreatedAt: post.CreatedAt,
				UpdatedAt: post.UpdatedAt,
			})
		}
		slices.SortStableFunc(out, func(a, b blogSummary) int {
			return b.CreatedAt.Compare(a.CreatedAt)
		})
		return out, true
	})
}

// BlogPost returns a published post by slug. Drafts are not found.
func (p *Public) BlogPost(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	p.serve(w, r, func() (any, bool) {
		post, ok := p.store.BlogPostBySlug(slug)
		if !ok || !post.IsPublished() {
			return nil, false
		}
		html, err := markdown.ToHTML(post.Content)
		if err != nil {
			slog.Warn("render blog post failed", "slug", slug, "error", err)
		}
		return blogArticle{BlogPost: post, HTML: html}, true
	})
}

// byOrder sorts items by their display order, keeping store order on ties.
func byOrder[T any](items []T, order func(T) int) []T {
	slices.SortStableFunc(items, func(a, b T) int {
		return cmp.Compare(order(a), order(b))
	})
	return items
}
