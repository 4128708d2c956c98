// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package catalog provides the DefaultCatalog: the baseline value of every
// content domain, decoded once from an embedded YAML document. Accessors
// return deep copies so the catalog itself is never mutated.
package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"marketsite/internal/merge"
	"marketsite/internal/models"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// document is the YAML layout of the catalog.
type document struct {
	HomepageSettings models.HomepageSettings     `yaml:"homepage"`
	HomepageContent  models.HomepageContent      `yaml:"homepage_content"`
	SocialLinks      models.SocialLinks          `yaml:"social_links"`
	AboutPage        models.AboutPageSettings    `yaml:"about_page"`
	ServiceDetails   []models.ServiceDetail      `yaml:"service_details"`
	PricingPages     []models.PricingPageContent `yaml:"pricing_pages"`
	Testimonials     []models.Testimonial        `yaml:"testimonials"`
	PricingTiers     []models.PricingTier        `yaml:"pricing_tiers"`
	FAQs             []models.FAQ                `yaml:"faqs"`
	Projects         []models.Project            `yaml:"projects"`
	BlogPosts        []models.BlogPost           `yaml:"blog_posts"`
}

// Catalog is an immutable set of default content.
type Catalog struct {
	doc document
}

var defaultCatalog = sync.OnceValue(func() *Catalog {
	c, err := Parse(defaultsYAML)
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded defaults: %v", err))
	}
	return c
})

// Default returns the catalog built into the binary.
func Default() *Catalog {
	return defaultCatalog()
}

// Parse decodes a catalog document. Unknown keys and duplicate ids are
// rejected. Nested blocks are completed with their neutral defaults so that
// every value handed out is fully populated.
func Parse(data []byte) (*Catalog, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	doc = merge.Complete(doc)

	checks := map[string][]string{
		"service_details": ids(doc.ServiceDetails, func(v models.ServiceDetail) string { return v.ID }),
		"pricing_pages":   ids(doc.PricingPages, func(v models.PricingPageContent) string { return v.ID }),
		"testimonials":    ids(doc.Testimonials, func(v models.Testimonial) string { return v.ID }),
		"pricing_tiers":   ids(doc.PricingTiers, func(v models.PricingTier) string { return v.ID }),
		"faqs":            ids(doc.FAQs, func(v models.FAQ) string { return v.ID }),
		"projects":        ids(doc.Projects, func(v models.Project) string { return v.ID }),
		"blog_posts":      ids(doc.BlogPosts, func(v models.BlogPost) string { return v.ID }),
	}
	for section, list := range checks {
		seen := make(map[string]bool, len(list))
		for _, id := range list {
			if id == "" {
				return nil, fmt.Errorf("catalog %s: entry without id", section)
			}
			if seen[id] {
				return nil, fmt.Errorf("catalog %s: duplicate id %q", section, id)
			}
			seen[id] = true
		}
	}

	return &Catalog{doc: doc}, nil
}

func ids[T any](items []T, id func(T) string) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = id(item)
	}
	return out
}

func find[T any](items []T, id string, idOf func(T) string) (T, bool) {
	for _, item := range items {
		if idOf(item) == id {
			return merge.Clone(item), true
		}
	}
	var zero T
	return zero, false
}

func (c *Catalog) HomepageSettings() models.HomepageSettings {
	return merge.Clone(c.doc.HomepageSettings)
}

func (c *Catalog) HomepageContent() models.HomepageContent {
	return merge.Clone(c.doc.HomepageContent)
}

func (c *Catalog) SocialLinks() models.SocialLinks {
	return merge.Clone(c.doc.SocialLinks)
}

func (c *Catalog) AboutPage() models.AboutPageSettings {
	return merge.Clone(c.doc.AboutPage)
}

// ServiceDetails returns every default service page in catalog order.
func (c *Catalog) ServiceDetails() []models.ServiceDetail {
	return merge.Clone(c.doc.ServiceDetails)
}

// ServiceDetail returns the default page for id.
func (c *Catalog) ServiceDetail(id string) (models.ServiceDetail, bool) {
	return find(c.doc.ServiceDetails, id, func(v models.ServiceDetail) string { return v.ID })
}

func (c *Catalog) PricingPages() []models.PricingPageContent {
	return merge.Clone(c.doc.PricingPages)
}

func (c *Catalog) PricingPage(id string) (models.PricingPageContent, bool) {
	return find(c.doc.PricingPages, id, func(v models.PricingPageContent) string { return v.ID })
}

func (c *Catalog) Testimonials() []models.Testimonial {
	return merge.Clone(c.doc.Testimonials)
}

func (c *Catalog) Testimonial(id string) (models.Testimonial, bool) {
	return find(c.doc.Testimonials, id, func(v models.Testimonial) string { return v.ID })
}

func (c *Catalog) PricingTiers() []models.PricingTier {
	return merge.Clone(c.doc.PricingTiers)
}

func (c *Catalog) PricingTier(id string) (models.PricingTier, bool) {
	return find(c.doc.PricingTiers, id, func(v models.PricingTier) string { return v.ID })
}

func (c *Catalog) FAQs() []models.FAQ {
	return merge.Clone(c.doc.FAQs)
}

func (c *Catalog) FAQ(id string) (models.FAQ, bool) {
	return find(c.doc.FAQs, id, func(v models.FAQ) string { return v.ID })
}

func (c *Catalog) Projects() []models.Project {
	return merge.Clone(c.doc.Projects)
}

func (c *Catalog) Project(id string) (models.Project, bool) {
	return find(c.doc.Projects, id, func(v models.Project) string { return v.ID })
}

func (c *Catalog) BlogPosts() []models.BlogPost {
	return merge.Clone(c.doc.BlogPosts)
}

func (c *Catalog) BlogPost(id string) (models.BlogPost, bool) {
	return find(c.doc.BlogPosts, id, func(v models.BlogPost) string { return v.ID })
}
