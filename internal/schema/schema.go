// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package schema publishes the JSON Schema of each domain's edit payload so
// the admin UI can build its forms from the same types the server decodes.
package schema

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/invopop/jsonschema"

	"marketsite/internal/models"
)

// payloads maps each domain to the Override type its edits are decoded into.
var payloads = map[models.Domain]reflect.Type{
	models.DomainHomepageSettings: reflect.TypeFor[models.HomepageSettingsOverride](),
	models.DomainHomepageContent:  reflect.TypeFor[models.HomepageContentOverride](),
	models.DomainSocialLinks:      reflect.TypeFor[models.SocialLinksOverride](),
	models.DomainAboutPage:        reflect.TypeFor[models.AboutPageSettingsOverride](),
	models.DomainServiceDetails:   reflect.TypeFor[models.ServiceDetailOverride](),
	models.DomainPricingPages:     reflect.TypeFor[models.PricingPageContentOverride](),
	models.DomainTestimonials:     reflect.TypeFor[models.TestimonialOverride](),
	models.DomainPricingTiers:     reflect.TypeFor[models.PricingTierOverride](),
	models.DomainFAQs:             reflect.TypeFor[models.FAQOverride](),
	models.DomainProjects:         reflect.TypeFor[models.ProjectOverride](),
	models.DomainBlogPosts:        reflect.TypeFor[models.BlogPostOverride](),
}

var (
	mu    sync.Mutex
	cache = make(map[models.Domain][]byte)
)

// For returns the schema of the edit payload of d. Every property is
// optional: an absent property keeps the current value.
func For(d models.Domain) (*jsonschema.Schema, error) {
	t, ok := payloads[d]
	if !ok {
		return nil, fmt.Errorf("schema: unknown domain %q", d)
	}
	r := jsonschema.Reflector{
		Anonymous:                  true,
		DoNotReference:             true,
		RequiredFromJSONSchemaTags: true,
	}
	s := r.ReflectFromType(t)
	s.Title = string(d)
	s.Description = fmt.Sprintf("Partial update of %s. Omitted properties keep their current value.", d)
	describe(s, t)
	return s, nil
}

// describe documents how each property of s merges, from the `merge` tag of
// the matching field of the Override type t.
func describe(s *jsonschema.Schema, t reflect.Type) {
	if s == nil || s.Properties == nil {
		return
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			continue
		}
		prop, ok := s.Properties.Get(name)
		if !ok {
			continue
		}
		policy, arg, _ := strings.Cut(f.Tag.Get("merge"), ",")
		switch policy {
		case "id":
			prop.Description = "Identifies the entry. Must match the entry being edited."
		case "scalar":
			prop.Description = "Replaces the current value."
			if f.Type.Elem().Kind() == reflect.String {
				prop.Description += " An empty string clears it."
			}
		case "replace":
			if arg == "nonempty" {
				prop.Description = "Replaces the current list when non-empty. An empty list keeps the current one."
			} else {
				prop.Description = "Replaces the current list. An empty list clears it."
			}
			if elem := f.Type.Elem(); elem.Kind() == reflect.Struct {
				describe(prop.Items, elem)
			}
		case "nested":
			prop.Description = "Merged property by property. A block the entry lacks starts from its defaults."
			describe(prop, f.Type.Elem())
		case "lines":
			prop.Description = fmt.Sprintf("One entry per line. When set, replaces %s.", jsonName(t, arg))
		}
	}
}

// jsonName returns the JSON property name of the field of t named field.
func jsonName(t reflect.Type, field string) string {
	f, ok := t.FieldByName(field)
	if !ok {
		return field
	}
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	return name
}

// JSON returns the encoded schema of d, computed once per domain.
func JSON(d models.Domain) ([]byte, error) {
	mu.Lock()
	defer mu.Unlock()
	if data, ok := cache[d]; ok {
		return data, nil
	}
	s, err := For(d)
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("schema: encode %s: %w", d, err)
	}
	cache[d] = data
	return data, nil
}
