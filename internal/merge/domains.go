// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package merge

import (
	"reflect"

	"marketsite/internal/models"
)

// Every value/override pair is compiled at init so that a tag mistake in
// the models package fails at startup instead of during a request.
func init() {
	pairs := [][2]reflect.Type{
		{reflect.TypeFor[models.HomepageSettings](), reflect.TypeFor[models.HomepageSettingsOverride]()},
		{reflect.TypeFor[models.HomepageContent](), reflect.TypeFor[models.HomepageContentOverride]()},
		{reflect.TypeFor[models.SocialLinks](), reflect.TypeFor[models.SocialLinksOverride]()},
		{reflect.TypeFor[models.AboutPageSettings](), reflect.TypeFor[models.AboutPageSettingsOverride]()},
		{reflect.TypeFor[models.ServiceDetail](), reflect.TypeFor[models.ServiceDetailOverride]()},
		{reflect.TypeFor[models.PricingPageContent](), reflect.TypeFor[models.PricingPageContentOverride]()},
		{reflect.TypeFor[models.Testimonial](), reflect.TypeFor[models.TestimonialOverride]()},
		{reflect.TypeFor[models.PricingTier](), reflect.TypeFor[models.PricingTierOverride]()},
		{reflect.TypeFor[models.FAQ](), reflect.TypeFor[models.FAQOverride]()},
		{reflect.TypeFor[models.Project](), reflect.TypeFor[models.ProjectOverride]()},
		{reflect.TypeFor[models.BlogPost](), reflect.TypeFor[models.BlogPostOverride]()},
	}
	for _, pair := range pairs {
		mustPlan(pair[0], pair[1])
	}
}

func MergeHomepageSettings(base models.HomepageSettings, override *models.HomepageSettingsOverride) models.HomepageSettings {
	return Apply(base, override)
}

func MergeHomepageContent(base models.HomepageContent, override *models.HomepageContentOverride) models.HomepageContent {
	return Apply(base, override)
}

func MergeSocialLinks(base models.SocialLinks, override *models.SocialLinksOverride) models.SocialLinks {
	return Apply(base, override)
}

func MergeAboutPage(base models.AboutPageSettings, override *models.AboutPageSettingsOverride) models.AboutPageSettings {
	return Apply(base, override)
}

// MergeServiceDetail merges a service page. The hero, challenge and CTA
// blocks merge recursively; the feature lists are replaced when non-empty.
func MergeServiceDetail(base models.ServiceDetail, override *models.ServiceDetailOverride) models.ServiceDetail {
	return Apply(base, override)
}

// MergePricingPage merges a pricing page. Plans and FAQs are replaced
// wholesale, an empty list included.
func MergePricingPage(base models.PricingPageContent, override *models.PricingPageContentOverride) models.PricingPageContent {
	return Apply(base, override)
}

func MergeTestimonial(base models.Testimonial, override *models.TestimonialOverride) models.Testimonial {
	return Apply(base, override)
}

func MergePricingTier(base models.PricingTier, override *models.PricingTierOverride) models.PricingTier {
	return Apply(base, override)
}

func MergeFAQ(base models.FAQ, override *models.FAQOverride) models.FAQ {
	return Apply(base, override)
}

func MergeProject(base models.Project, override *models.ProjectOverride) models.Project {
	return Apply(base, override)
}

func MergeBlogPost(base models.BlogPost, override *models.BlogPostOverride) models.BlogPost {
	return Apply(base, override)
}
