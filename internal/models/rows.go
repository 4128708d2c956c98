// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// Entity collections store the JSON of the entity itself and site settings
// store the JSON of the setting under its domain name. Pricing pages are
// wrapped.

// PricingPageRow wraps a partial pricing page.
type PricingPageRow struct {
	ID        string                     `json:"id"`
	Content   PricingPageContentOverride `json:"content"`
	UpdatedAt time.Time                  `json:"updated_at"`
}
