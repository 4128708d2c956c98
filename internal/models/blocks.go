// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// Nested content blocks. The `default` tag holds the neutral value a merged
// block falls back to when neither the base nor the override sets a field.

// HeroContent is the hero block at the top of a page.
type HeroContent struct {
	Badge          string   `json:"badge" yaml:"badge" default:"Digital Studio"`
	Title          string   `json:"title" yaml:"title" default:"Build something remarkable"`
	Highlight      string   `json:"highlight" yaml:"highlight" default:""`
	Subtitle       string   `json:"subtitle" yaml:"subtitle" default:""`
	PrimaryLabel   string   `json:"primary_label" yaml:"primary_label" default:"Chat with us"`
	PrimaryLink    string   `json:"primary_link" yaml:"primary_link" default:"/contact"`
	SecondaryLabel string   `json:"secondary_label" yaml:"secondary_label" default:"See our work"`
	SecondaryLink  string   `json:"secondary_link" yaml:"secondary_link" default:"/projects"`
	Bullets        []string `json:"bullets" yaml:"bullets"`
}

// ChallengeContent describes the problem a service solves and how.
type ChallengeContent struct {
	Heading         string   `json:"heading" yaml:"heading" default:"The challenge"`
	Intro           string   `json:"intro" yaml:"intro" default:""`
	Problems        []string `json:"problems" yaml:"problems"`
	SolutionHeading string   `json:"solution_heading" yaml:"solution_heading" default:"Our approach"`
	Solutions       []string `json:"solutions" yaml:"solutions"`
}

// CTAContent is the closing call to action on a service page.
type CTAContent struct {
	Heading     string `json:"heading" yaml:"heading" default:"Ready to get started?"`
	Body        string `json:"body" yaml:"body" default:""`
	ButtonLabel string `json:"button_label" yaml:"button_label" default:"Chat with us"`
	ButtonLink  string `json:"button_link" yaml:"button_link" default:"/contact"`
}

// CTABanner is the full-width banner shared by several pages.
type CTABanner struct {
	Heading      string `json:"heading" yaml:"heading" default:"Let's build something together"`
	Body         string `json:"body" yaml:"body" default:""`
	PrimaryLabel string `json:"primary_label" yaml:"primary_label" default:"Chat with us"`
	PrimaryLink  string `json:"primary_link" yaml:"primary_link" default:"/contact"`
}

// PricingHero is the heading block of a pricing page.
type PricingHero struct {
	Badge     string `json:"badge" yaml:"badge" default:"Pricing"`
	Title     string `json:"title" yaml:"title" default:"Simple, transparent pricing"`
	Highlight string `json:"highlight" yaml:"highlight" default:""`
	Subtitle  string `json:"subtitle" yaml:"subtitle" default:""`
}

// PricingROI is the return-on-investment calculator of a pricing page.
type PricingROI struct {
	Heading     string      `json:"heading" yaml:"heading" default:"Estimate your return"`
	Subheading  string      `json:"subheading" yaml:"subheading" default:""`
	Sliders     []ROISlider `json:"sliders" yaml:"sliders"`
	ResultLabel string      `json:"result_label" yaml:"result_label" default:"Estimated monthly savings"`
	Currency    string      `json:"currency" yaml:"currency" default:"RM"`
	Footnote    string      `json:"footnote" yaml:"footnote" default:""`
}

// ROISlider is one input of the ROI calculator.
type ROISlider struct {
	ID      string  `json:"id" yaml:"id"`
	Label   string  `json:"label" yaml:"label"`
	Min     float64 `json:"min" yaml:"min"`
	Max     float64 `json:"max" yaml:"max"`
	Step    float64 `json:"step" yaml:"step"`
	Default float64 `json:"default" yaml:"default"`
	Unit    string  `json:"unit" yaml:"unit"`
}

// FAQItem is a question embedded in a page, as opposed to the FAQ collection.
type FAQItem struct {
	Question string `json:"question" yaml:"question"`
	Answer   string `json:"answer" yaml:"answer"`
}

// Stat is a headline number such as "120+ projects".
type Stat struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

// Highlight is a titled paragraph with an optional icon name.
type Highlight struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Icon        string `json:"icon" yaml:"icon"`
}

// ProcessStep is one stage of the delivery process.
type ProcessStep struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
}

// ServiceCard is the homepage teaser for a service.
type ServiceCard struct {
	ID      string `json:"id" yaml:"id"`
	Title   string `json:"title" yaml:"title"`
	Summary string `json:"summary" yaml:"summary"`
	Icon    string `json:"icon" yaml:"icon"`
	Link    string `json:"link" yaml:"link"`
}

// TeamMember is a person shown on the about page.
type TeamMember struct {
	Name     string `json:"name" yaml:"name"`
	Role     string `json:"role" yaml:"role"`
	Bio      string `json:"bio" yaml:"bio"`
	PhotoURL string `json:"photo_url" yaml:"photo_url"`
}

// Milestone is a dated entry on the about page timeline.
type Milestone struct {
	Year  string `json:"year" yaml:"year"`
	Title string `json:"title" yaml:"title"`
}

// PricingPlan is a plan card on a pricing page.
type PricingPlan struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Price       string   `json:"price" yaml:"price"`
	Note        string   `json:"note" yaml:"note"`
	Description string   `json:"description" yaml:"description"`
	Bullets     []string `json:"bullets" yaml:"bullets"`
	CTALabel    string   `json:"cta_label" yaml:"cta_label"`
	CTALink     string   `json:"cta_link" yaml:"cta_link"`
	Featured    bool     `json:"featured" yaml:"featured"`
}
