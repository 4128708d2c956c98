// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"time"

	"marketsite/internal/catalog"
	"marketsite/internal/merge"
	"marketsite/internal/models"
	"marketsite/internal/slug"
	"marketsite/internal/syncgw"
)

// rowApplier merges one remote row into the state. Callers hold s.mu.
type rowApplier interface {
	applyRow(s *Store, rec syncgw.Record) error
}

// setting describes a singleton domain stored in site_settings under its
// own name.
type setting[T, O any] struct {
	domain models.Domain
	field  func(*Snapshot) *T
	base   func(*catalog.Catalog) T
	merge  func(T, *O) T
}

func (d setting[T, O]) applyRow(s *Store, rec syncgw.Record) error {
	o, err := decodeJSON[O](rec.Data)
	if err != nil {
		return err
	}
	*d.field(&s.state) = d.merge(d.base(s.catalog), o)
	return nil
}

func (d setting[T, O]) get(s *Store) T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return merge.Clone(*d.field(&s.state))
}

func (d setting[T, O]) update(ctx context.Context, s *Store, o *O) (T, error) {
	s.mu.Lock()
	ptr := d.field(&s.state)
	*ptr = d.merge(*ptr, o)
	v := merge.Clone(*ptr)
	s.mu.Unlock()

	key := string(d.domain)
	s.publish(Change{Domain: d.domain, ID: key, Op: OpUpdate})
	return v, s.persist(ctx, d.domain, key, OpUpdate, func(ctx context.Context) error {
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("encode %s: %w", key, err)
		}
		return s.gateway.Upsert(ctx, syncgw.Record{
			Collection: models.CollectionSiteSettings,
			ID:         key,
			Data:       data,
			UpdatedAt:  s.now(),
		})
	})
}

// collection describes a domain holding many entities keyed by id.
type collection[T, O any] struct {
	domain models.Domain
	field  func(*Snapshot) *[]T
	id     func(*T) *string
	overID func(*O) *string
	lookup func(*catalog.Catalog, string) (T, bool)
	merge  func(T, *O) T

	// keyed domains accept updates for ids they do not hold yet, starting
	// from a synthesized base the same way Load does for unknown rows.
	keyed bool

	// encode and decode convert between an entity and its row. Nil means
	// the row is the entity's JSON.
	encode func(v T, now time.Time) ([]byte, error)
	decode func(data []byte) (*O, error)

	// prepare runs under the lock after merging and before the value is
	// stored.
	prepare func(st *Snapshot, v *T, o *O, now time.Time, created bool)
}

// apply merges o into current. An override naming an id other than
// current's is refused.
func (d collection[T, O]) apply(current T, o *O) (T, bool) {
	if o != nil {
		if id := d.overID(o); id != nil && *id != *d.id(&current) {
			return current, false
		}
	}
	return d.merge(current, o), true
}

func (d collection[T, O]) index(list []T, id string) int {
	return slices.IndexFunc(list, func(v T) bool { return *d.id(&v) == id })
}

// defaultFor returns the catalog entry for id, or a completed zero value
// carrying id when the catalog has none.
func (d collection[T, O]) defaultFor(cat *catalog.Catalog, id string) T {
	if v, ok := d.lookup(cat, id); ok {
		return v
	}
	var v T
	*d.id(&v) = id
	return merge.Complete(v)
}

func (d collection[T, O]) decodeRow(data []byte) (*O, error) {
	if d.decode != nil {
		return d.decode(data)
	}
	return decodeJSON[O](data)
}

func (d collection[T, O]) encodeRow(v T, now time.Time) ([]byte, error) {
	if d.encode != nil {
		return d.encode(v, now)
	}
	return json.Marshal(v)
}

func (d collection[T, O]) applyRow(s *Store, rec syncgw.Record) error {
	if rec.ID == "" {
		return errors.New("row without id")
	}
	o, err := d.decodeRow(rec.Data)
	if err != nil {
		return err
	}
	v, ok := d.apply(d.defaultFor(s.catalog, rec.ID), o)
	if !ok {
		return fmt.Errorf("row data names a different id than key %q", rec.ID)
	}
	list := d.field(&s.state)
	if i := d.index(*list, rec.ID); i >= 0 {
		(*list)[i] = v
	} else {
		*list = append(*list, v)
	}
	return nil
}

func (d collection[T, O]) list(s *Store) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return merge.Clone(*d.field(&s.state))
}

func (d collection[T, O]) get(s *Store, id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := *d.field(&s.state)
	if i := d.index(list, id); i >= 0 {
		return merge.Clone(list[i]), true
	}
	var zero T
	return zero, false
}

func (d collection[T, O]) update(ctx context.Context, s *Store, id string, o *O) (T, error) {
	var zero T
	now := s.now()

	s.mu.Lock()
	list := d.field(&s.state)
	i := d.index(*list, id)
	var current T
	switch {
	case i >= 0:
		current = (*list)[i]
	case d.keyed:
		current = d.defaultFor(s.catalog, id)
	default:
		s.mu.Unlock()
		return zero, ErrNotFound
	}
	v, ok := d.apply(current, o)
	if !ok {
		s.mu.Unlock()
		return zero, ErrIDMismatch
	}
	if d.prepare != nil {
		d.prepare(&s.state, &v, o, now, false)
	}
	if i >= 0 {
		(*list)[i] = v
	} else {
		*list = append(*list, v)
	}
	out := merge.Clone(v)
	s.mu.Unlock()

	s.publish(Change{Domain: d.domain, ID: id, Op: OpUpdate})
	return out, s.persist(ctx, d.domain, id, OpUpdate, d.upsert(s, out))
}

// add stores a new entity. The id comes from the override when it names
// one, otherwise it is generated before anything is persisted.
func (d collection[T, O]) add(ctx context.Context, s *Store, o *O) (T, error) {
	var zero T
	id := ""
	if o != nil {
		if p := d.overID(o); p != nil {
			id = *p
		}
	}
	if id == "" {
		id = s.newID()
	}
	now := s.now()

	var base T
	*d.id(&base) = id
	v := d.merge(merge.Complete(base), o)

	s.mu.Lock()
	list := d.field(&s.state)
	if d.index(*list, id) >= 0 {
		s.mu.Unlock()
		return zero, ErrExists
	}
	if d.prepare != nil {
		d.prepare(&s.state, &v, o, now, true)
	}
	*list = append(*list, v)
	out := merge.Clone(v)
	s.mu.Unlock()

	s.publish(Change{Domain: d.domain, ID: id, Op: OpAdd})
	return out, s.persist(ctx, d.domain, id, OpAdd, d.upsert(s, out))
}

func (d collection[T, O]) remove(ctx context.Context, s *Store, id string) error {
	s.mu.Lock()
	list := d.field(&s.state)
	i := d.index(*list, id)
	if i < 0 {
		s.mu.Unlock()
		return ErrNotFound
	}
	*list = slices.Delete(*list, i, i+1)
	s.mu.Unlock()

	s.publish(Change{Domain: d.domain, ID: id, Op: OpDelete})
	return s.persist(ctx, d.domain, id, OpDelete, func(ctx context.Context) error {
		return s.gateway.Delete(ctx, d.domain.Collection(), id)
	})
}

// upsert returns the write-through of v as its canonical row.
func (d collection[T, O]) upsert(s *Store, v T) func(context.Context) error {
	id := *d.id(&v)
	return func(ctx context.Context) error {
		now := s.now()
		data, err := d.encodeRow(v, now)
		if err != nil {
			return fmt.Errorf("encode %s/%s: %w", d.domain, id, err)
		}
		return s.gateway.Upsert(ctx, syncgw.Record{
			Collection: d.domain.Collection(),
			ID:         id,
			Data:       data,
			UpdatedAt:  now,
		})
	}
}

func decodeJSON[O any](data []byte) (*O, error) {
	o := new(O)
	if err := json.Unmarshal(data, o); err != nil {
		return nil, fmt.Errorf("decode row: %w", err)
	}
	return o, nil
}

// pricingPageRow is the encoded form of models.PricingPageRow for a fully
// merged page.
type pricingPageRow struct {
	ID        string                    `json:"id"`
	Content   models.PricingPageContent `json:"content"`
	UpdatedAt time.Time                 `json:"updated_at"`
}

func encodePricingPage(v models.PricingPageContent, now time.Time) ([]byte, error) {
	return json.Marshal(pricingPageRow{ID: v.ID, Content: v, UpdatedAt: now})
}

func decodePricingPage(data []byte) (*models.PricingPageContentOverride, error) {
	var row models.PricingPageRow
	if err := json.Unmarshal(data, &row); err != nil {
		return nil, fmt.Errorf("decode pricing page row: %w", err)
	}
	return &row.Content, nil
}

// prepareBlogPost fills the slug, status and timestamps of a post.
func prepareBlogPost(st *Snapshot, p *models.BlogPost, o *models.BlogPostOverride, now time.Time, created bool) {
	if p.Status == "" {
		p.Status = models.BlogStatusDraft
	}
	if p.Slug == "" {
		p.Slug = slug.Unique(slug.Generate(p.Title), func(candidate string) bool {
			for _, other := range st.BlogPosts {
				if other.ID != p.ID && other.Slug == candidate {
					return true
				}
			}
			return false
		})
	}
	if created && p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if o == nil || o.UpdatedAt == nil {
		p.UpdatedAt = now
	}
}

var (
	homepageSettings = setting[models.HomepageSettings, models.HomepageSettingsOverride]{
		domain: models.DomainHomepageSettings,
		field:  func(s *Snapshot) *models.HomepageSettings { return &s.HomepageSettings },
		base:   (*catalog.Catalog).HomepageSettings,
		merge:  merge.MergeHomepageSettings,
	}
	homepageContent = setting[models.HomepageContent, models.HomepageContentOverride]{
		domain: models.DomainHomepageContent,
		field:  func(s *Snapshot) *models.HomepageContent { return &s.HomepageContent },
		base:   (*catalog.Catalog).HomepageContent,
		merge:  merge.MergeHomepageContent,
	}
	socialLinks = setting[models.SocialLinks, models.SocialLinksOverride]{
		domain: models.DomainSocialLinks,
		field:  func(s *Snapshot) *models.SocialLinks { return &s.SocialLinks },
		base:   (*catalog.Catalog).SocialLinks,
		merge:  merge.MergeSocialLinks,
	}
	aboutPage = setting[models.AboutPageSettings, models.AboutPageSettingsOverride]{
		domain: models.DomainAboutPage,
		field:  func(s *Snapshot) *models.AboutPageSettings { return &s.AboutPage },
		base:   (*catalog.Catalog).AboutPage,
		merge:  merge.MergeAboutPage,
	}

	serviceDetails = collection[models.ServiceDetail, models.ServiceDetailOverride]{
		domain: models.DomainServiceDetails,
		field:  func(s *Snapshot) *[]models.ServiceDetail { return &s.ServiceDetails },
		id:     func(v *models.ServiceDetail) *string { return &v.ID },
		overID: func(o *models.ServiceDetailOverride) *string { return o.ID },
		lookup: (*catalog.Catalog).ServiceDetail,
		merge:  merge.MergeServiceDetail,
		keyed:  true,
	}
	pricingPages = collection[models.PricingPageContent, models.PricingPageContentOverride]{
		domain: models.DomainPricingPages,
		field:  func(s *Snapshot) *[]models.PricingPageContent { return &s.PricingPages },
		id:     func(v *models.PricingPageContent) *string { return &v.ID },
		overID: func(o *models.PricingPageContentOverride) *string { return o.ID },
		lookup: (*catalog.Catalog).PricingPage,
		merge:  merge.MergePricingPage,
		keyed:  true,
		encode: encodePricingPage,
		decode: decodePricingPage,
	}
	testimonials = collection[models.Testimonial, models.TestimonialOverride]{
		domain: models.DomainTestimonials,
		field:  func(s *Snapshot) *[]models.Testimonial { return &s.Testimonials },
		id:     func(v *models.Testimonial) *string { return &v.ID },
		overID: func(o *models.TestimonialOverride) *string { return o.ID },
		lookup: (*catalog.Catalog).Testimonial,
		merge:  merge.MergeTestimonial,
	}
	pricingTiers = collection[models.PricingTier, models.PricingTierOverride]{
		domain: models.DomainPricingTiers,
		field:  func(s *Snapshot) *[]models.PricingTier { return &s.PricingTiers },
		id:     func(v *models.PricingTier) *string { return &v.ID },
		overID: func(o *models.PricingTierOverride) *string { return o.ID },
		lookup: (*catalog.Catalog).PricingTier,
		merge:  merge.MergePricingTier,
	}
	faqs = collection[models.FAQ, models.FAQOverride]{
		domain: models.DomainFAQs,
		field:  func(s *Snapshot) *[]models.FAQ { return &s.FAQs },
		id:     func(v *models.FAQ) *string { return &v.ID },
		overID: func(o *models.FAQOverride) *string { return o.ID },
		lookup: (*catalog.Catalog).FAQ,
		merge:  merge.MergeFAQ,
	}
	projects = collection[models.Project, models.ProjectOverride]{
		domain: models.DomainProjects,
		field:  func(s *Snapshot) *[]models.Project { return &s.Projects },
		id:     func(v *models.Project) *string { return &v.ID },
		overID: func(o *models.ProjectOverride) *string { return o.ID },
		lookup: (*catalog.Catalog).Project,
		merge:  merge.MergeProject,
	}
	blogPosts = collection[models.BlogPost, models.BlogPostOverride]{
		domain:  models.DomainBlogPosts,
		field:   func(s *Snapshot) *[]models.BlogPost { return &s.BlogPosts },
		id:      func(v *models.BlogPost) *string { return &v.ID },
		overID:  func(o *models.BlogPostOverride) *string { return o.ID },
		lookup:  (*catalog.Catalog).BlogPost,
		merge:   merge.MergeBlogPost,
		prepare: prepareBlogPost,
	}
)

var (
	settingAppliers = map[string]rowApplier{
		string(models.DomainHomepageSettings): homepageSettings,
		string(models.DomainHomepageContent):  homepageContent,
		string(models.DomainSocialLinks):      socialLinks,
		string(models.DomainAboutPage):        aboutPage,
	}
	collectionAppliers = map[models.Collection]rowApplier{
		models.CollectionServiceDetails: serviceDetails,
		models.CollectionPricingPages:   pricingPages,
		models.CollectionTestimonials:   testimonials,
		models.CollectionPricingTiers:   pricingTiers,
		models.CollectionFAQs:           faqs,
		models.CollectionProjects:       projects,
		models.CollectionBlogPosts:      blogPosts,
	}
)

func rowApplierFor(c models.Collection, id string) (rowApplier, bool) {
	if c == models.CollectionSiteSettings {
		a, ok := settingAppliers[id]
		return a, ok
	}
	a, ok := collectionAppliers[c]
	return a, ok
}
