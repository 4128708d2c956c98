// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/pquerna/otp/totp"
	"golang.org/x/crypto/bcrypt"
)

// OTPHeader carries the current TOTP code when two-factor auth is enabled.
const OTPHeader = "X-OTP-Code"

// contextKey is an unexported type for context keys to prevent collisions.
type contextKey string

// AdminKey is the context key for the authenticated admin user name.
const AdminKey contextKey = "admin"

// Credentials describes the single administrator account.
type Credentials struct {
	User         string
	PasswordHash string // bcrypt
	TOTPSecret   string // empty disables the second factor
}

// AdminAuth guards the admin API with HTTP basic auth against a bcrypt hash
// and, when a TOTP secret is configured, a one-time code in X-OTP-Code. An
// empty password hash refuses every request.
func AdminAuth(creds Credentials) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, pass, ok := r.BasicAuth()
			if !ok || !creds.check(user, pass) {
				w.Header().Set("WWW-Authenticate", `Basic realm="admin", charset="UTF-8"`)
				writeError(w, http.StatusUnauthorized, "authentication required")
				return
			}

			if creds.TOTPSecret != "" && !totp.Validate(r.Header.Get(OTPHeader), creds.TOTPSecret) {
				slog.Warn("admin otp rejected", "user", user, "remote", clientIP(r))
				writeError(w, http.StatusUnauthorized, "invalid one-time code")
				return
			}

			ctx := context.WithValue(r.Context(), AdminKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// check compares the user in constant time and the password against the
// bcrypt hash. The hash is always evaluated so that timing does not reveal
// whether the user name matched.
func (c Credentials) check(user, pass string) bool {
	if c.PasswordHash == "" {
		return false
	}
	userOK := subtle.ConstantTimeCompare([]byte(user), []byte(c.User)) == 1
	passOK := bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(pass)) == nil
	return userOK && passOK
}

// AdminFromCtx returns the authenticated admin user name, or "".
func AdminFromCtx(ctx context.Context) string {
	user, _ := ctx.Value(AdminKey).(string)
	return user
}

// writeError writes a JSON error body with the given status.
func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
