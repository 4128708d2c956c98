// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// HomepageSettings holds the homepage hero and headline settings.
type HomepageSettings struct {
	Hero                HeroContent `json:"hero" yaml:"hero"`
	Stats               []Stat      `json:"stats" yaml:"stats"`
	AnnouncementEnabled bool        `json:"announcement_enabled" yaml:"announcement_enabled"`
	AnnouncementText    string      `json:"announcement_text" yaml:"announcement_text"`
	SEOTitle            string      `json:"seo_title" yaml:"seo_title"`
	SEODescription      string      `json:"seo_description" yaml:"seo_description"`
}

// HomepageContent holds the homepage sections below the hero.
type HomepageContent struct {
	ServicesHeading string        `json:"services_heading" yaml:"services_heading"`
	ServicesIntro   string        `json:"services_intro" yaml:"services_intro"`
	Services        []ServiceCard `json:"services" yaml:"services"`
	ProcessHeading  string        `json:"process_heading" yaml:"process_heading"`
	Process         []ProcessStep `json:"process" yaml:"process"`
	WhyUs           []Highlight   `json:"why_us" yaml:"why_us"`
	CTABanner       *CTABanner    `json:"cta_banner,omitempty" yaml:"cta_banner"`
}

// SocialLinks holds the site's external profile links.
type SocialLinks struct {
	Facebook  string `json:"facebook" yaml:"facebook"`
	Instagram string `json:"instagram" yaml:"instagram"`
	LinkedIn  string `json:"linkedin" yaml:"linkedin"`
	Twitter   string `json:"twitter" yaml:"twitter"`
	YouTube   string `json:"youtube" yaml:"youtube"`
	TikTok    string `json:"tiktok" yaml:"tiktok"`
	WhatsApp  string `json:"whatsapp" yaml:"whatsapp"`
	Email     string `json:"email" yaml:"email"`
}

// AboutPageSettings holds the about page copy.
type AboutPageSettings struct {
	Heading    string       `json:"heading" yaml:"heading"`
	Intro      string       `json:"intro" yaml:"intro"`
	Story      string       `json:"story" yaml:"story"`
	Mission    string       `json:"mission" yaml:"mission"`
	Vision     string       `json:"vision" yaml:"vision"`
	Values     []Highlight  `json:"values" yaml:"values"`
	Team       []TeamMember `json:"team" yaml:"team"`
	Milestones []Milestone  `json:"milestones" yaml:"milestones"`
	CTABanner  *CTABanner   `json:"cta_banner,omitempty" yaml:"cta_banner"`
}

// ServiceDetail is the detail page of one service, keyed by ID.
type ServiceDetail struct {
	ID               string            `json:"id" yaml:"id"`
	Title            string            `json:"title" yaml:"title"`
	Tagline          string            `json:"tagline" yaml:"tagline"`
	LongDescription  string            `json:"long_description" yaml:"long_description"`
	Benefits         []string          `json:"benefits" yaml:"benefits"`
	Process          []string          `json:"process" yaml:"process"`
	Technologies     []string          `json:"technologies" yaml:"technologies"`
	HeroContent      *HeroContent      `json:"hero_content,omitempty" yaml:"hero_content"`
	ChallengeContent *ChallengeContent `json:"challenge_content,omitempty" yaml:"challenge_content"`
	CTAContent       *CTAContent       `json:"cta_content,omitempty" yaml:"cta_content"`
	FAQItems         []FAQItem         `json:"faq_items" yaml:"faq_items"`
}

// PricingPageContent is one pricing page, keyed by ID.
type PricingPageContent struct {
	ID         string        `json:"id" yaml:"id"`
	Hero       PricingHero   `json:"hero" yaml:"hero"`
	Plans      []PricingPlan `json:"plans" yaml:"plans"`
	FAQs       []FAQItem     `json:"faqs" yaml:"faqs"`
	ROI        *PricingROI   `json:"roi,omitempty" yaml:"roi"`
	CTABanner  *CTABanner    `json:"cta_banner,omitempty" yaml:"cta_banner"`
	Disclaimer string        `json:"disclaimer" yaml:"disclaimer"`
}
