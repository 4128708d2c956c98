// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package content

import "marketsite/internal/models"

// Policy controls how a domain's write-through is run.
//
// With Await set the mutation waits for the remote write and returns a
// *PersistError when it fails. Without it the write runs in the background
// and failures are only logged. Either way the in-memory change is kept.
type Policy struct {
	Await bool
}

// DefaultPolicies awaits persistence for primary content and runs it in the
// background for testimonials and FAQs.
func DefaultPolicies() map[models.Domain]Policy {
	return map[models.Domain]Policy{
		models.DomainHomepageSettings: {Await: true},
		models.DomainHomepageContent:  {Await: true},
		models.DomainSocialLinks:      {Await: true},
		models.DomainAboutPage:        {Await: true},
		models.DomainServiceDetails:   {Await: true},
		models.DomainPricingPages:     {Await: true},
		models.DomainPricingTiers:     {Await: true},
		models.DomainProjects:         {Await: true},
		models.DomainBlogPosts:        {Await: true},
		models.DomainTestimonials:     {Await: false},
		models.DomainFAQs:             {Await: false},
	}
}
