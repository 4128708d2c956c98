// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and middleware chains of the
// content API. It organizes routes into a public read group and an admin
// group with its own authentication stack.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"marketsite/internal/handlers"
	"marketsite/internal/middleware"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up. limiter guards the admin API only.
func New(public *handlers.Public, admin *handlers.Admin, creds middleware.Credentials, limiter *middleware.RateLimiter) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.SecureHeaders)

	r.Get("/health", healthHandler)

	// Public read API, served from the store and the response cache.
	r.Route("/api", func(r chi.Router) {
		r.Get("/homepage", public.HomepageSettings)
		r.Get("/homepage/content", public.HomepageContent)
		r.Get("/social", public.SocialLinks)
		r.Get("/about", public.AboutPage)
		r.Get("/services", public.ServiceDetails)
		r.Get("/services/{id}", public.ServiceDetail)
		r.Get("/pricing", public.PricingPages)
		r.Get("/pricing/{id}", public.PricingPage)
		r.Get("/pricing-tiers", public.PricingTiers)
		r.Get("/testimonials", public.Testimonials)
		r.Get("/faqs", public.FAQs)
		r.Get("/projects", public.Projects)
		r.Get("/blog", public.BlogPosts)
		r.Get("/blog/{slug}", public.BlogPost)
	})

	// Admin API: rate limited, authenticated, same-origin only.
	r.Route("/admin/api", func(r chi.Router) {
		r.Use(limiter.Middleware)
		r.Use(middleware.AdminAuth(creds))
		r.Use(middleware.SameOrigin)

		r.Route("/settings", func(r chi.Router) {
			r.Patch("/homepage", admin.UpdateHomepageSettings)
			r.Patch("/homepageContent", admin.UpdateHomepageContent)
			r.Patch("/socialLinks", admin.UpdateSocialLinks)
			r.Patch("/aboutPage", admin.UpdateAboutPage)
		})

		r.Patch("/services/{id}", admin.UpdateServiceDetail)
		r.Delete("/services/{id}", admin.DeleteServiceDetail)
		r.Patch("/pricing/{id}", admin.UpdatePricingPage)
		r.Delete("/pricing/{id}", admin.DeletePricingPage)

		r.Route("/pricing-tiers", func(r chi.Router) {
			r.Post("/", admin.AddPricingTier)
			r.Patch("/{id}", admin.UpdatePricingTier)
			r.Delete("/{id}", admin.DeletePricingTier)
		})
		r.Route("/testimonials", func(r chi.Router) {
			r.Post("/", admin.AddTestimonial)
			r.Patch("/{id}", admin.UpdateTestimonial)
			r.Delete("/{id}", admin.DeleteTestimonial)
		})
		r.Route("/faqs", func(r chi.Router) {
			r.Post("/", admin.AddFAQ)
			r.Patch("/{id}", admin.UpdateFAQ)
			r.Delete("/{id}", admin.DeleteFAQ)
		})
		r.Route("/projects", func(r chi.Router) {
			r.Post("/", admin.AddProject)
			r.Patch("/{id}", admin.UpdateProject)
			r.Delete("/{id}", admin.DeleteProject)
		})
		r.Route("/blog", func(r chi.Router) {
			r.Post("/", admin.AddBlogPost)
			r.Patch("/{id}", admin.UpdateBlogPost)
			r.Delete("/{id}", admin.DeleteBlogPost)
		})

		r.Post("/reset", admin.Reset)
		r.Get("/schema/{domain}", admin.Schema)
		r.Get("/2fa/qr.png", admin.TwoFAQRCode)
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
