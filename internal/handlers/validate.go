// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"strings"
	"unicode/utf8"

	"marketsite/internal/models"
)

// Validation limits for editable text fields.
const (
	maxTitleLen   = 300
	maxSlugLen    = 300
	maxBodyLen    = 100_000
	maxExcerptLen = 1_000
	maxQuoteLen   = 2_000
	maxAnswerLen  = 5_000
)

// validateBlogPost checks a blog post override and returns the first error
// found. A title is required when the post is being created.
func validateBlogPost(o *models.BlogPostOverride, creating bool) string {
	if creating && (o.Title == nil || strings.TrimSpace(*o.Title) == "") {
		return "Title is required."
	}
	if o.Title != nil {
		if strings.TrimSpace(*o.Title) == "" {
			return "Title cannot be empty."
		}
		if utf8.RuneCountInString(*o.Title) > maxTitleLen {
			return "Title is too long (max 300 characters)."
		}
	}
	if o.Slug != nil && utf8.RuneCountInString(*o.Slug) > maxSlugLen {
		return "Slug is too long (max 300 characters)."
	}
	if o.Content != nil && utf8.RuneCountInString(*o.Content) > maxBodyLen {
		return "Content is too long (max 100,000 characters)."
	}
	if o.Excerpt != nil && utf8.RuneCountInString(*o.Excerpt) > maxExcerptLen {
		return "Excerpt is too long (max 1,000 characters)."
	}
	if o.Status != nil {
		switch *o.Status {
		case models.BlogStatusDraft, models.BlogStatusPublished:
		default:
			return "Status must be draft or published."
		}
	}
	return ""
}

// validateTestimonial checks a testimonial override.
func validateTestimonial(o *models.TestimonialOverride) string {
	if o.Rating != nil && (*o.Rating < 1 || *o.Rating > 5) {
		return "Rating must be between 1 and 5."
	}
	if o.Quote != nil && utf8.RuneCountInString(*o.Quote) > maxQuoteLen {
		return "Quote is too long (max 2,000 characters)."
	}
	return ""
}

// validateFAQ checks an FAQ override.
func validateFAQ(o *models.FAQOverride) string {
	if o.Question != nil && utf8.RuneCountInString(*o.Question) > maxTitleLen {
		return "Question is too long (max 300 characters)."
	}
	if o.Answer != nil && utf8.RuneCountInString(*o.Answer) > maxAnswerLen {
		return "Answer is too long (max 5,000 characters)."
	}
	return ""
}
