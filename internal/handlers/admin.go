// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/pquerna/otp"
	qrcode "github.com/skip2/go-qrcode"

	"marketsite/internal/content"
	"marketsite/internal/middleware"
	"marketsite/internal/models"
	"marketsite/internal/schema"
)

// Admin groups the authenticated endpoints that edit content. Every body is
// a partial Override: omitted fields keep their current value.
type Admin struct {
	store      *content.Store
	issuer     string
	account    string
	totpSecret string
}

// NewAdmin creates the admin handler group. totpSecret is the base32 secret
// shown by the enrolment QR code; it may be empty.
func NewAdmin(store *content.Store, account, totpSecret string) *Admin {
	return &Admin{store: store, issuer: "Marketsite", account: account, totpSecret: totpSecret}
}

// validator returns a user-facing message for an invalid override, or "".
type validator[O any] func(*O) string

// patch decodes an override, validates it and hands it to apply. The
// resulting value is returned; see writeStoreError for failures.
func patch[O, T any](domain models.Domain, id string, validate validator[O], apply func(context.Context, *O) (T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var o O
		if err := decodeBody(w, r, &o); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if validate != nil {
			if msg := validate(&o); msg != "" {
				writeError(w, http.StatusUnprocessableEntity, msg)
				return
			}
		}
		v, err := apply(r.Context(), &o)
		if err != nil {
			writeStoreError(w, err, v)
			return
		}
		slog.Info("content updated", "domain", domain, "id", id, "admin", middleware.AdminFromCtx(r.Context()))
		status := http.StatusOK
		if r.Method == http.MethodPost {
			status = http.StatusCreated
		}
		writeJSON(w, status, v)
	}
}

// patchByID is patch for an entity addressed by the {id} URL parameter.
func patchByID[O, T any](domain models.Domain, validate validator[O], apply func(context.Context, string, *O) (T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		patch(domain, id, validate, func(ctx context.Context, o *O) (T, error) {
			return apply(ctx, id, o)
		})(w, r)
	}
}

// remove deletes the entity addressed by {id}.
func remove(domain models.Domain, apply func(context.Context, string) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if err := apply(r.Context(), id); err != nil {
			writeStoreError(w, err, nil)
			return
		}
		slog.Info("content deleted", "domain", domain, "id", id, "admin", middleware.AdminFromCtx(r.Context()))
		w.WriteHeader(http.StatusNoContent)
	}
}

// --- Settings ---

func (a *Admin) UpdateHomepageSettings(w http.ResponseWriter, r *http.Request) {
	patch(models.DomainHomepageSettings, "", nil, a.store.UpdateHomepageSettings)(w, r)
}

func (a *Admin) UpdateHomepageContent(w http.ResponseWriter, r *http.Request) {
	patch(models.DomainHomepageContent, "", nil, a.store.UpdateHomepageContent)(w, r)
}

func (a *Admin) UpdateSocialLinks(w http.ResponseWriter, r *http.Request) {
	patch(models.DomainSocialLinks, "", nil, a.store.UpdateSocialLinks)(w, r)
}

func (a *Admin) UpdateAboutPage(w http.ResponseWriter, r *http.Request) {
	patch(models.DomainAboutPage, "", nil, a.store.UpdateAboutPage)(w, r)
}

// --- Keyed pages ---

func (a *Admin) UpdateServiceDetail(w http.ResponseWriter, r *http.Request) {
	patchByID(models.DomainServiceDetails, nil, a.store.UpdateServiceDetail)(w, r)
}

func (a *Admin) DeleteServiceDetail(w http.ResponseWriter, r *http.Request) {
	remove(models.DomainServiceDetails, a.store.DeleteServiceDetail)(w, r)
}

func (a *Admin) UpdatePricingPage(w http.ResponseWriter, r *http.Request) {
	patchByID(models.DomainPricingPages, nil, a.store.UpdatePricingPage)(w, r)
}

func (a *Admin) DeletePricingPage(w http.ResponseWriter, r *http.Request) {
	remove(models.DomainPricingPages, a.store.DeletePricingPage)(w, r)
}

// --- Collections ---

func (a *Admin) AddTestimonial(w http.ResponseWriter, r *http.Request) {
	patch(models.DomainTestimonials, "", validateTestimonial, a.store.AddTestimonial)(w, r)
}

func (a *Admin) UpdateTestimonial(w http.ResponseWriter, r *http.Request) {
	patchByID(models.DomainTestimonials, validateTestimonial, a.store.UpdateTestimonial)(w, r)
}

func (a *Admin) DeleteTestimonial(w http.ResponseWriter, r *http.Request) {
	remove(models.DomainTestimonials, a.store.DeleteTestimonial)(w, r)
}

func (a *Admin) AddPricingTier(w http.ResponseWriter, r *http.Request) {
	patch(models.DomainPricingTiers, "", nil, a.store.AddPricingTier)(w, r)
}

func (a *Admin) UpdatePricingTier(w http.ResponseWriter, r *http.Request) {
	patchByID(models.DomainPricingTiers, nil, a.store.UpdatePricingTier)(w, r)
}

func (a *Admin) DeletePricingTier(w http.ResponseWriter, r *http.Request) {
	remove(models.DomainPricingTiers, a.store.DeletePricingTier)(w, r)
}

func (a *Admin) AddFAQ(w http.ResponseWriter, r *http.Request) {
	patch(models.DomainFAQs, "", validateFAQ, a.store.AddFAQ)(w, r)
}

func (a *Admin) UpdateFAQ(w http.ResponseWriter, r *http.Request) {
	patchByID(models.DomainFAQs, validateFAQ, a.store.UpdateFAQ)(w, r)
}

func (a *Admin) DeleteFAQ(w http.ResponseWriter, r *http.Request) {
	remove(models.DomainFAQs, a.store.DeleteFAQ)(w, r)
}

func (a *Admin) AddProject(w http.ResponseWriter, r *http.Request) {
	patch(models.DomainProjects, "", nil, a.store.AddProject)(w, r)
}

func (a *Admin) UpdateProject(w http.ResponseWriter, r *http.Request) {
	patchByID(models.DomainProjects, nil, a.store.UpdateProject)(w, r)
}

func (a *Admin) DeleteProject(w http.ResponseWriter, r *http.Request) {
	remove(models.DomainProjects, a.store.DeleteProject)(w, r)
}

func (a *Admin) AddBlogPost(w http.ResponseWriter, r *http.Request) {
	validate := func(o *models.BlogPostOverride) string { return validateBlogPost(o, true) }
	patch(models.DomainBlogPosts, "", validate, a.store.AddBlogPost)(w, r)
}

func (a *Admin) UpdateBlogPost(w http.ResponseWriter, r *http.Request) {
	validate := func(o *models.BlogPostOverride) string { return validateBlogPost(o, false) }
	patchByID(models.DomainBlogPosts, validate, a.store.UpdateBlogPost)(w, r)
}

func (a *Admin) DeleteBlogPost(w http.ResponseWriter, r *http.Request) {
	remove(models.DomainBlogPosts, a.store.DeleteBlogPost)(w, r)
}

// Reset discards every edit and returns the store to the built-in defaults.
// Remote rows are left untouched.
func (a *Admin) Reset(w http.ResponseWriter, r *http.Request) {
	if err := a.store.Reset(r.Context()); err != nil {
		writeStoreError(w, err, nil)
		return
	}
	slog.Info("admin reset content", "admin", middleware.AdminFromCtx(r.Context()))
	writeJSON(w, http.StatusOK, map[string]string{"status": "reset"})
}

// Schema returns the JSON Schema of the edit payload of a domain.
func (a *Admin) Schema(w http.ResponseWriter, r *http.Request) {
	d := models.Domain(chi.URLParam(r, "domain"))
	if !d.Valid() {
		writeError(w, http.StatusNotFound, "unknown domain")
		return
	}
	data, err := schema.JSON(d)
	if err != nil {
		slog.Error("build schema failed", "domain", d, "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Header().Set("Content-Type", "application/schema+json")
	w.Write(data)
}

// TwoFAQRCode renders the enrolment QR code of the configured TOTP secret
// as a PNG, for scanning into an authenticator app.
func (a *Admin) TwoFAQRCode(w http.ResponseWriter, r *http.Request) {
	if a.totpSecret == "" {
		writeError(w, http.StatusNotFound, "two-factor authentication is not configured")
		return
	}

	key, err := a.otpKey()
	if err != nil {
		slog.Error("totp key invalid", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	png, err := qrcode.Encode(key.URL(), qrcode.Medium, 256)
	if err != nil {
		slog.Error("qr code generation failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.Write(png)
}

// otpKey builds the otpauth key of the configured secret.
func (a *Admin) otpKey() (*otp.Key, error) {
	q := url.Values{}
	q.Set("secret", a.totpSecret)
	q.Set("issuer", a.issuer)
	u := url.URL{
		Scheme:   "otpauth",
		Host:     "totp",
		Path:     "/" + a.issuer + ":" + a.account,
		RawQuery: q.Encode(),
	}
	return otp.NewKeyFromURL(u.String())
}
