// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// Testimonial is a client quote.
type Testimonial struct {
	ID        string `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	Role      string `json:"role" yaml:"role"`
	Company   string `json:"company" yaml:"company"`
	Quote     string `json:"quote" yaml:"quote"`
	Rating    int    `json:"rating" yaml:"rating"`
	AvatarURL string `json:"avatar_url" yaml:"avatar_url"`
	Order     int    `json:"order" yaml:"order"`
}

// PricingTier is a standalone price card shown outside the pricing pages.
type PricingTier struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Price       string   `json:"price" yaml:"price"`
	Note        string   `json:"note" yaml:"note"`
	Description string   `json:"description" yaml:"description"`
	Bullets     []string `json:"bullets" yaml:"bullets"`
	CTALabel    string   `json:"cta_label" yaml:"cta_label"`
	CTALink     string   `json:"cta_link" yaml:"cta_link"`
	Featured    bool     `json:"featured" yaml:"featured"`
	Order       int      `json:"order" yaml:"order"`
}

// FAQ is an entry of the site-wide FAQ collection.
type FAQ struct {
	ID       string `json:"id" yaml:"id"`
	Question string `json:"question" yaml:"question"`
	Answer   string `json:"answer" yaml:"answer"`
	Category string `json:"category" yaml:"category"`
	Order    int    `json:"order" yaml:"order"`
}

// Project is a portfolio entry.
type Project struct {
	ID             string   `json:"id" yaml:"id"`
	Title          string   `json:"title" yaml:"title"`
	Summary        string   `json:"summary" yaml:"summary"`
	Category       string   `json:"category" yaml:"category"`
	Tech           []string `json:"tech" yaml:"tech"`
	DurationDays   int      `json:"duration_days" yaml:"duration_days"`
	Link           string   `json:"link" yaml:"link"`
	Image          string   `json:"image" yaml:"image"`
	ShowcaseImages []string `json:"showcase_images" yaml:"showcase_images"`
	Featured       bool     `json:"featured" yaml:"featured"`
	Order          int      `json:"order" yaml:"order"`
}

// BlogStatus is the publishing state of a blog post.
type BlogStatus string

const (
	BlogStatusDraft     BlogStatus = "draft"
	BlogStatusPublished BlogStatus = "published"
)

// BlogPost is an article. Content is Markdown.
type BlogPost struct {
	ID            string     `json:"id" yaml:"id"`
	Title         string     `json:"title" yaml:"title"`
	Slug          string     `json:"slug" yaml:"slug"`
	Content       string     `json:"content" yaml:"content"`
	Excerpt       string     `json:"excerpt" yaml:"excerpt"`
	Author        string     `json:"author" yaml:"author"`
	ImageURL      string     `json:"image_url" yaml:"image_url"`
	Status        BlogStatus `json:"status" yaml:"status"`
	Tags          []string   `json:"tags" yaml:"tags"`
	GeneratedFrom string     `json:"generated_from" yaml:"generated_from"`
	CreatedAt     time.Time  `json:"created_at" yaml:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" yaml:"updated_at"`
}

// IsPublished returns true if the post is visible on the public site.
func (p *BlogPost) IsPublished() bool {
	return p.Status == BlogStatusPublished
}
