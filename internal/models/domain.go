// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the content value types served by the site, the
// partial Override shapes used to edit them, and the row shapes exchanged
// with the remote store.
package models

// Domain identifies one editable category of site content.
type Domain string

const (
	DomainHomepageSettings Domain = "homepage"
	DomainHomepageContent  Domain = "homepageContent"
	DomainSocialLinks      Domain = "socialLinks"
	DomainAboutPage        Domain = "aboutPage"
	DomainServiceDetails   Domain = "service_details"
	DomainPricingPages     Domain = "pricing_pages"
	DomainTestimonials     Domain = "testimonials"
	DomainPricingTiers     Domain = "pricing_tiers"
	DomainFAQs             Domain = "faqs"
	DomainProjects         Domain = "projects"
	DomainBlogPosts        Domain = "blog_posts"
)

// Domains lists every domain in a stable order.
var Domains = []Domain{
	DomainHomepageSettings,
	DomainHomepageContent,
	DomainSocialLinks,
	DomainAboutPage,
	DomainServiceDetails,
	DomainPricingPages,
	DomainTestimonials,
	DomainPricingTiers,
	DomainFAQs,
	DomainProjects,
	DomainBlogPosts,
}

// Collection names a group of rows in the remote store. The four settings
// domains share the site_settings collection, keyed by the domain name.
type Collection string

const (
	CollectionSiteSettings   Collection = "site_settings"
	CollectionServiceDetails Collection = "service_details"
	CollectionPricingPages   Collection = "pricing_pages"
	CollectionTestimonials   Collection = "testimonials"
	CollectionPricingTiers   Collection = "pricing_tiers"
	CollectionFAQs           Collection = "faqs"
	CollectionProjects       Collection = "projects"
	CollectionBlogPosts      Collection = "blog_posts"
)

// Collections lists every collection the remote store holds.
var Collections = []Collection{
	CollectionSiteSettings,
	CollectionServiceDetails,
	CollectionPricingPages,
	CollectionTestimonials,
	CollectionPricingTiers,
	CollectionFAQs,
	CollectionProjects,
	CollectionBlogPosts,
}

// IsSetting reports whether the domain is a singleton stored as a site setting.
func (d Domain) IsSetting() bool {
	switch d {
	case DomainHomepageSettings, DomainHomepageContent, DomainSocialLinks, DomainAboutPage:
		return true
	}
	return false
}

// Collection returns the remote collection that stores rows of this domain.
func (d Domain) Collection() Collection {
	if d.IsSetting() {
		return CollectionSiteSettings
	}
	return Collection(d)
}

// Valid reports whether d is a known domain.
func (d Domain) Valid() bool {
	for _, known := range Domains {
		if d == known {
			return true
		}
	}
	return false
}
