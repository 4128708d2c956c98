package schema

import (
	"encoding/json"
	"testing"

	"marketsite/internal/models"
)

func TestEveryDomainHasSchema(t *testing.T) {
	for _, d := range models.Domains {
		t.Run(string(d), func(t *testing.T) {
			data, err := JSON(d)
			if err != nil {
				t.Fatalf("JSON: %v", err)
			}
			var doc map[string]any
			if err := json.Unmarshal(data, &doc); err != nil {
				t.Fatalf("schema is not JSON: %v", err)
			}
			if doc["type"] != "object" {
				t.Errorf("type: got %v, want object", doc["type"])
			}
			if _, ok := doc["required"]; ok {
				t.Error("edit payloads should have no required properties")
			}
		})
	}
}

func TestSchemaProperties(t *testing.T) {
	s, err := For(models.DomainPricingTiers)
	if err != nil {
		t.Fatalf("For: %v", err)
	}
	for _, name := range []string{"id", "price", "bullets", "bullets_text", "order"} {
		if _, ok := s.Properties.Get(name); !ok {
			t.Errorf("missing property %q", name)
		}
	}

	s, err = For(models.DomainServiceDetails)
	if err != nil {
		t.Fatalf("For: %v", err)
	}
	hero, ok := s.Properties.Get("hero_content")
	if !ok {
		t.Fatal("missing hero_content")
	}
	if _, ok := hero.Properties.Get("title"); !ok {
		t.Error("nested block should be inlined with its properties")
	}
}

func TestUnknownDomain(t *testing.T) {
	if _, err := JSON("nope"); err == nil {
		t.Error("expected error for unknown domain")
	}
}

func TestPropertyDescriptionsFollowMergeTags(t *testing.T) {
	s, err := For(models.DomainServiceDetails)
	if err != nil {
		t.Fatalf("For: %v", err)
	}

	tests := []struct {
		property string
		want     string
	}{
		{property: "benefits", want: "Replaces the current list when non-empty. An empty list keeps the current one."},
		{property: "faq_items", want: "Replaces the current list. An empty list clears it."},
		{property: "tagline", want: "Replaces the current value. An empty string clears it."},
	}
	for _, tt := range tests {
		prop, ok := s.Properties.Get(tt.property)
		if !ok {
			t.Errorf("missing property %q", tt.property)
			continue
		}
		if prop.Description != tt.want {
			t.Errorf("%s: got %q, want %q", tt.property, prop.Description, tt.want)
		}
	}

	hero, _ := s.Properties.Get("hero_content")
	label, ok := hero.Properties.Get("secondary_label")
	if !ok || label.Description != "Replaces the current value. An empty string clears it." {
		t.Errorf("hero_content.secondary_label description: %+v", label)
	}

	page, err := For(models.DomainPricingPages)
	if err != nil {
		t.Fatalf("For: %v", err)
	}
	plans, _ := page.Properties.Get("plans")
	if plans.Items == nil {
		t.Fatal("plans has no item schema")
	}
	bullets, ok := plans.Items.Properties.Get("bullets")
	if !ok || bullets.Description != "Replaces the current list when non-empty. An empty list keeps the current one." {
		t.Errorf("plans[].bullets description: %+v", bullets)
	}
	text, ok := plans.Items.Properties.Get("bullets_text")
	if !ok || text.Description != "One entry per line. When set, replaces bullets." {
		t.Errorf("plans[].bullets_text description: %+v", text)
	}
}
