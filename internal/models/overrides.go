// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// Override types mirror the value types with every field optional. A nil
// pointer or nil slice means "not supplied"; a non-nil empty slice is an
// explicit empty list.
//
// The `merge` tag declares how the merge engine combines each field:
//
//	id                must match the base id, never overwritten
//	scalar            a set pointer replaces the base value
//	replace           a non-nil slice replaces the base slice, even when empty
//	replace,nonempty  only a non-empty slice replaces the base slice
//	nested            recurse into the block, field by field
//	lines,<Field>     newline-separated text parsed into the named slice field

type HeroContentOverride struct {
	Badge          *string  `json:"badge,omitempty" merge:"scalar"`
	Title          *string  `json:"title,omitempty" merge:"scalar"`
	Highlight      *string  `json:"highlight,omitempty" merge:"scalar"`
	Subtitle       *string  `json:"subtitle,omitempty" merge:"scalar"`
	PrimaryLabel   *string  `json:"primary_label,omitempty" merge:"scalar"`
	PrimaryLink    *string  `json:"primary_link,omitempty" merge:"scalar"`
	SecondaryLabel *string  `json:"secondary_label,omitempty" merge:"scalar"`
	SecondaryLink  *string  `json:"secondary_link,omitempty" merge:"scalar"`
	Bullets        []string `json:"bullets" merge:"replace,nonempty"`
}

type ChallengeContentOverride struct {
	Heading         *string  `json:"heading,omitempty" merge:"scalar"`
	Intro           *string  `json:"intro,omitempty" merge:"scalar"`
	Problems        []string `json:"problems" merge:"replace,nonempty"`
	SolutionHeading *string  `json:"solution_heading,omitempty" merge:"scalar"`
	Solutions       []string `json:"solutions" merge:"replace,nonempty"`
}

type CTAContentOverride struct {
	Heading     *string `json:"heading,omitempty" merge:"scalar"`
	Body        *string `json:"body,omitempty" merge:"scalar"`
	ButtonLabel *string `json:"button_label,omitempty" merge:"scalar"`
	ButtonLink  *string `json:"button_link,omitempty" merge:"scalar"`
}

type CTABannerOverride struct {
	Heading      *string `json:"heading,omitempty" merge:"scalar"`
	Body         *string `json:"body,omitempty" merge:"scalar"`
	PrimaryLabel *string `json:"primary_label,omitempty" merge:"scalar"`
	PrimaryLink  *string `json:"primary_link,omitempty" merge:"scalar"`
}

type PricingHeroOverride struct {
	Badge     *string `json:"badge,omitempty" merge:"scalar"`
	Title     *string `json:"title,omitempty" merge:"scalar"`
	Highlight *string `json:"highlight,omitempty" merge:"scalar"`
	Subtitle  *string `json:"subtitle,omitempty" merge:"scalar"`
}

type PricingROIOverride struct {
	Heading     *string     `json:"heading,omitempty" merge:"scalar"`
	Subheading  *string     `json:"subheading,omitempty" merge:"scalar"`
	Sliders     []ROISlider `json:"sliders" merge:"replace,nonempty"`
	ResultLabel *string     `json:"result_label,omitempty" merge:"scalar"`
	Currency    *string     `json:"currency,omitempty" merge:"scalar"`
	Footnote    *string     `json:"footnote,omitempty" merge:"scalar"`
}

// PricingPlanOverride edits a plan card. BulletsText, when set, is the
// admin form's textarea and takes precedence over Bullets.
type PricingPlanOverride struct {
	ID          *string  `json:"id,omitempty" merge:"id"`
	Name        *string  `json:"name,omitempty" merge:"scalar"`
	Price       *string  `json:"price,omitempty" merge:"scalar"`
	Note        *string  `json:"note,omitempty" merge:"scalar"`
	Description *string  `json:"description,omitempty" merge:"scalar"`
	Bullets     []string `json:"bullets" merge:"replace,nonempty"`
	BulletsText *string  `json:"bullets_text,omitempty" merge:"lines,Bullets"`
	CTALabel    *string  `json:"cta_label,omitempty" merge:"scalar"`
	CTALink     *string  `json:"cta_link,omitempty" merge:"scalar"`
	Featured    *bool    `json:"featured,omitempty" merge:"scalar"`
}

type HomepageSettingsOverride struct {
	Hero                *HeroContentOverride `json:"hero,omitempty" merge:"nested"`
	Stats               []Stat               `json:"stats" merge:"replace,nonempty"`
	AnnouncementEnabled *bool                `json:"announcement_enabled,omitempty" merge:"scalar"`
	AnnouncementText    *string              `json:"announcement_text,omitempty" merge:"scalar"`
	SEOTitle            *string              `json:"seo_title,omitempty" merge:"scalar"`
	SEODescription      *string              `json:"seo_description,omitempty" merge:"scalar"`
}

type HomepageContentOverride struct {
	ServicesHeading *string            `json:"services_heading,omitempty" merge:"scalar"`
	ServicesIntro   *string            `json:"services_intro,omitempty" merge:"scalar"`
	Services        []ServiceCard      `json:"services" merge:"replace,nonempty"`
	ProcessHeading  *string            `json:"process_heading,omitempty" merge:"scalar"`
	Process         []ProcessStep      `json:"process" merge:"replace,nonempty"`
	WhyUs           []Highlight        `json:"why_us" merge:"replace,nonempty"`
	CTABanner       *CTABannerOverride `json:"cta_banner,omitempty" merge:"nested"`
}

type SocialLinksOverride struct {
	Facebook  *string `json:"facebook,omitempty" merge:"scalar"`
	Instagram *string `json:"instagram,omitempty" merge:"scalar"`
	LinkedIn  *string `json:"linkedin,omitempty" merge:"scalar"`
	Twitter   *string `json:"twitter,omitempty" merge:"scalar"`
	YouTube   *string `json:"youtube,omitempty" merge:"scalar"`
	TikTok    *string `json:"tiktok,omitempty" merge:"scalar"`
	WhatsApp  *string `json:"whatsapp,omitempty" merge:"scalar"`
	Email     *string `json:"email,omitempty" merge:"scalar"`
}

type AboutPageSettingsOverride struct {
	Heading    *string            `json:"heading,omitempty" merge:"scalar"`
	Intro      *string            `json:"intro,omitempty" merge:"scalar"`
	Story      *string            `json:"story,omitempty" merge:"scalar"`
	Mission    *string            `json:"mission,omitempty" merge:"scalar"`
	Vision     *string            `json:"vision,omitempty" merge:"scalar"`
	Values     []Highlight        `json:"values" merge:"replace,nonempty"`
	Team       []TeamMember       `json:"team" merge:"replace,nonempty"`
	Milestones []Milestone        `json:"milestones" merge:"replace,nonempty"`
	CTABanner  *CTABannerOverride `json:"cta_banner,omitempty" merge:"nested"`
}

// ServiceDetailOverride matches the service_details row shape.
type ServiceDetailOverride struct {
	ID               *string                   `json:"id,omitempty" merge:"id"`
	Title            *string                   `json:"title,omitempty" merge:"scalar"`
	Tagline          *string                   `json:"tagline,omitempty" merge:"scalar"`
	LongDescription  *string                   `json:"long_description,omitempty" merge:"scalar"`
	Benefits         []string                  `json:"benefits" merge:"replace,nonempty"`
	Process          []string                  `json:"process" merge:"replace,nonempty"`
	Technologies     []string                  `json:"technologies" merge:"replace,nonempty"`
	HeroContent      *HeroContentOverride      `json:"hero_content,omitempty" merge:"nested"`
	ChallengeContent *ChallengeContentOverride `json:"challenge_content,omitempty" merge:"nested"`
	CTAContent       *CTAContentOverride       `json:"cta_content,omitempty" merge:"nested"`
	FAQItems         []FAQItem                 `json:"faq_items" merge:"replace"`
}

type PricingPageContentOverride struct {
	ID         *string               `json:"id,omitempty" merge:"id"`
	Hero       *PricingHeroOverride  `json:"hero,omitempty" merge:"nested"`
	Plans      []PricingPlanOverride `json:"plans" merge:"replace"`
	FAQs       []FAQItem             `json:"faqs" merge:"replace"`
	ROI        *PricingROIOverride   `json:"roi,omitempty" merge:"nested"`
	CTABanner  *CTABannerOverride    `json:"cta_banner,omitempty" merge:"nested"`
	Disclaimer *string               `json:"disclaimer,omitempty" merge:"scalar"`
}

type TestimonialOverride struct {
	ID        *string `json:"id,omitempty" merge:"id"`
	Name      *string `json:"name,omitempty" merge:"scalar"`
	Role      *string `json:"role,omitempty" merge:"scalar"`
	Company   *string `json:"company,omitempty" merge:"scalar"`
	Quote     *string `json:"quote,omitempty" merge:"scalar"`
	Rating    *int    `json:"rating,omitempty" merge:"scalar"`
	AvatarURL *string `json:"avatar_url,omitempty" merge:"scalar"`
	Order     *int    `json:"order,omitempty" merge:"scalar"`
}

// PricingTierOverride edits a price card. BulletsText behaves as in
// PricingPlanOverride.
type PricingTierOverride struct {
	ID          *string  `json:"id,omitempty" merge:"id"`
	Name        *string  `json:"name,omitempty" merge:"scalar"`
	Price       *string  `json:"price,omitempty" merge:"scalar"`
	Note        *string  `json:"note,omitempty" merge:"scalar"`
	Description *string  `json:"description,omitempty" merge:"scalar"`
	Bullets     []string `json:"bullets" merge:"replace,nonempty"`
	BulletsText *string  `json:"bullets_text,omitempty" merge:"lines,Bullets"`
	CTALabel    *string  `json:"cta_label,omitempty" merge:"scalar"`
	CTALink     *string  `json:"cta_link,omitempty" merge:"scalar"`
	Featured    *bool    `json:"featured,omitempty" merge:"scalar"`
	Order       *int     `json:"order,omitempty" merge:"scalar"`
}

type FAQOverride struct {
	ID       *string `json:"id,omitempty" merge:"id"`
	Question *string `json:"question,omitempty" merge:"scalar"`
	Answer   *string `json:"answer,omitempty" merge:"scalar"`
	Category *string `json:"category,omitempty" merge:"scalar"`
	Order    *int    `json:"order,omitempty" merge:"scalar"`
}

type ProjectOverride struct {
	ID             *string  `json:"id,omitempty" merge:"id"`
	Title          *string  `json:"title,omitempty" merge:"scalar"`
	Summary        *string  `json:"summary,omitempty" merge:"scalar"`
	Category       *string  `json:"category,omitempty" merge:"scalar"`
	Tech           []string `json:"tech" merge:"replace"`
	DurationDays   *int     `json:"duration_days,omitempty" merge:"scalar"`
	Link           *string  `json:"link,omitempty" merge:"scalar"`
	Image          *string  `json:"image,omitempty" merge:"scalar"`
	ShowcaseImages []string `json:"showcase_images" merge:"replace"`
	Featured       *bool    `json:"featured,omitempty" merge:"scalar"`
	Order          *int     `json:"order,omitempty" merge:"scalar"`
}

type BlogPostOverride struct {
	ID            *string     `json:"id,omitempty" merge:"id"`
	Title         *string     `json:"title,omitempty" merge:"scalar"`
	Slug          *string     `json:"slug,omitempty" merge:"scalar"`
	Content       *string     `json:"content,omitempty" merge:"scalar"`
	Excerpt       *string     `json:"excerpt,omitempty" merge:"scalar"`
	Author        *string     `json:"author,omitempty" merge:"scalar"`
	ImageURL      *string     `json:"image_url,omitempty" merge:"scalar"`
	Status        *BlogStatus `json:"status,omitempty" merge:"scalar"`
	Tags          []string    `json:"tags" merge:"replace"`
	GeneratedFrom *string     `json:"generated_from,omitempty" merge:"scalar"`
	CreatedAt     *time.Time  `json:"created_at,omitempty" merge:"scalar"`
	UpdatedAt     *time.Time  `json:"updated_at,omitempty" merge:"scalar"`
}

// Ptr returns a pointer to v. It keeps override literals short.
func Ptr[T any](v T) *T {
	return &v
}
