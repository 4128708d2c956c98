// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package content

import (
	"context"

	"marketsite/internal/models"
)

// Readers. Every value returned is a deep copy the caller may modify.

func (s *Store) HomepageSettings() models.HomepageSettings { return homepageSettings.get(s) }
func (s *Store) HomepageContent() models.HomepageContent   { return homepageContent.get(s) }
func (s *Store) SocialLinks() models.SocialLinks           { return socialLinks.get(s) }
func (s *Store) AboutPage() models.AboutPageSettings       { return aboutPage.get(s) }

func (s *Store) ServiceDetails() []models.ServiceDetail { return serviceDetails.list(s) }

func (s *Store) ServiceDetail(id string) (models.ServiceDetail, bool) {
	return serviceDetails.get(s, id)
}

func (s *Store) PricingPages() []models.PricingPageContent { return pricingPages.list(s) }

func (s *Store) PricingPage(id string) (models.PricingPageContent, bool) {
	return pricingPages.get(s, id)
}

func (s *Store) Testimonials() []models.Testimonial { return testimonials.list(s) }

func (s *Store) Testimonial(id string) (models.Testimonial, bool) {
	return testimonials.get(s, id)
}

func (s *Store) PricingTiers() []models.PricingTier { return pricingTiers.list(s) }

func (s *Store) PricingTier(id string) (models.PricingTier, bool) {
	return pricingTiers.get(s, id)
}

func (s *Store) FAQs() []models.FAQ { return faqs.list(s) }

func (s *Store) FAQ(id string) (models.FAQ, bool) { return faqs.get(s, id) }

func (s *Store) Projects() []models.Project { return projects.list(s) }

func (s *Store) Project(id string) (models.Project, bool) { return projects.get(s, id) }

func (s *Store) BlogPosts() []models.BlogPost { return blogPosts.list(s) }

func (s *Store) BlogPost(id string) (models.BlogPost, bool) { return blogPosts.get(s, id) }

// BlogPostBySlug finds a post by its URL slug, whatever its status.
func (s *Store) BlogPostBySlug(slug string) (models.BlogPost, bool) {
	for _, p := range s.BlogPosts() {
		if p.Slug == slug {
			return p, true
		}
	}
	return models.BlogPost{}, false
}

// Settings mutations. The returned value is the new in-memory value, also
// when the error is a *PersistError.

func (s *Store) UpdateHomepageSettings(ctx context.Context, o *models.HomepageSettingsOverride) (models.HomepageSettings, error) {
	return homepageSettings.update(ctx, s, o)
}

func (s *Store) UpdateHomepageContent(ctx context.Context, o *models.HomepageContentOverride) (models.HomepageContent, error) {
	return homepageContent.update(ctx, s, o)
}

func (s *Store) UpdateSocialLinks(ctx context.Context, o *models.SocialLinksOverride) (models.SocialLinks, error) {
	return socialLinks.update(ctx, s, o)
}

func (s *Store) UpdateAboutPage(ctx context.Context, o *models.AboutPageSettingsOverride) (models.AboutPageSettings, error) {
	return aboutPage.update(ctx, s, o)
}

// Service pages and pricing pages are keyed: updating an id the store does
// not hold creates the page.

func (s *Store) UpdateServiceDetail(ctx context.Context, id string, o *models.ServiceDetailOverride) (models.ServiceDetail, error) {
	return serviceDetails.update(ctx, s, id, o)
}

func (s *Store) DeleteServiceDetail(ctx context.Context, id string) error {
	return serviceDetails.remove(ctx, s, id)
}

func (s *Store) UpdatePricingPage(ctx context.Context, id string, o *models.PricingPageContentOverride) (models.PricingPageContent, error) {
	return pricingPages.update(ctx, s, id, o)
}

func (s *Store) DeletePricingPage(ctx context.Context, id string) error {
	return pricingPages.remove(ctx, s, id)
}

// Entity collections.

func (s *Store) AddTestimonial(ctx context.Context, o *models.TestimonialOverride) (models.Testimonial, error) {
	return testimonials.add(ctx, s, o)
}

func (s *Store) UpdateTestimonial(ctx context.Context, id string, o *models.TestimonialOverride) (models.Testimonial, error) {
	return testimonials.update(ctx, s, id, o)
}

func (s *Store) DeleteTestimonial(ctx context.Context, id string) error {
	return testimonials.remove(ctx, s, id)
}

func (s *Store) AddPricingTier(ctx context.Context, o *models.PricingTierOverride) (models.PricingTier, error) {
	return pricingTiers.add(ctx, s, o)
}

// UpdatePricingTier edits a price card. BulletsText, when set, replaces the
// bullet list.
func (s *Store) UpdatePricingTier(ctx context.Context, id string, o *models.PricingTierOverride) (models.PricingTier, error) {
	return pricingTiers.update(ctx, s, id, o)
}

func (s *Store) DeletePricingTier(ctx context.Context, id string) error {
	return pricingTiers.remove(ctx, s, id)
}

func (s *Store) AddFAQ(ctx context.Context, o *models.FAQOverride) (models.FAQ, error) {
	return faqs.add(ctx, s, o)
}

func (s *Store) UpdateFAQ(ctx context.Context, id string, o *models.FAQOverride) (models.FAQ, error) {
	return faqs.update(ctx, s, id, o)
}

func (s *Store) DeleteFAQ(ctx context.Context, id string) error {
	return faqs.remove(ctx, s, id)
}

func (s *Store) AddProject(ctx context.Context, o *models.ProjectOverride) (models.Project, error) {
	return projects.add(ctx, s, o)
}

func (s *Store) UpdateProject(ctx context.Context, id string, o *models.ProjectOverride) (models.Project, error) {
	return projects.update(ctx, s, id, o)
}

func (s *Store) DeleteProject(ctx context.Context, id string) error {
	return projects.remove(ctx, s, id)
}

// AddBlogPost creates a post. A missing slug is derived from the title and
// a missing status defaults to draft.
func (s *Store) AddBlogPost(ctx context.Context, o *models.BlogPostOverride) (models.BlogPost, error) {
	return blogPosts.add(ctx, s, o)
}

func (s *Store) UpdateBlogPost(ctx context.Context, id string, o *models.BlogPostOverride) (models.BlogPost, error) {
	return blogPosts.update(ctx, s, id, o)
}

func (s *Store) DeleteBlogPost(ctx context.Context, id string) error {
	return blogPosts.remove(ctx, s, id)
}
