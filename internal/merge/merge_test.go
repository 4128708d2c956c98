// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package merge

import (
	"reflect"
	"testing"

	"marketsite/internal/models"
)

// fullService returns a service detail with every block populated.
func fullService() models.ServiceDetail {
	return Complete(models.ServiceDetail{
		ID:              "web",
		Title:           "Web Development",
		Tagline:         "Fast sites",
		LongDescription: "We build websites.",
		Benefits:        []string{"Speed", "SEO"},
		Process:         []string{"Discover", "Build"},
		Technologies:    []string{"Go", "React"},
		HeroContent: &models.HeroContent{
			Badge:    "Web",
			Title:    "Websites that sell",
			Subtitle: "From landing pages to platforms",
			Bullets:  []string{"Responsive"},
		},
		ChallengeContent: &models.ChallengeContent{
			Heading:   "Slow sites lose customers",
			Problems:  []string{"Slow"},
			Solutions: []string{"Fast"},
		},
		CTAContent: &models.CTAContent{Heading: "Start today"},
		FAQItems:   []models.FAQItem{{Question: "How long?", Answer: "Four weeks."}},
	})
}

func TestApplyIdentity(t *testing.T) {
	base := fullService()

	t.Run("nil override", func(t *testing.T) {
		got := MergeServiceDetail(base, nil)
		if !reflect.DeepEqual(got, base) {
			t.Errorf("merge(base, nil) = %+v, want %+v", got, base)
		}
	})

	t.Run("empty override", func(t *testing.T) {
		got := MergeServiceDetail(base, &models.ServiceDetailOverride{})
		if !reflect.DeepEqual(got, base) {
			t.Errorf("merge(base, {}) = %+v, want %+v", got, base)
		}
	})

	t.Run("empty block fields survive", func(t *testing.T) {
		base := fullService()
		base.HeroContent.SecondaryLabel = ""
		base.CTAContent.ButtonLabel = ""

		viaNil := MergeServiceDetail(base, nil)
		viaEmpty := MergeServiceDetail(base, &models.ServiceDetailOverride{})
		if !reflect.DeepEqual(viaNil, viaEmpty) {
			t.Errorf("merge(base, nil) = %+v, merge(base, {}) = %+v", viaNil, viaEmpty)
		}
		if viaEmpty.CTAContent.ButtonLabel != "" {
			t.Errorf("CTA ButtonLabel: got %q, want empty", viaEmpty.CTAContent.ButtonLabel)
		}
		if viaEmpty.HeroContent.SecondaryLabel != "" {
			t.Errorf("hero SecondaryLabel: got %q, want empty", viaEmpty.HeroContent.SecondaryLabel)
		}
	})

	t.Run("nil lists become empty either way", func(t *testing.T) {
		base := models.ServiceDetail{ID: "web"}
		viaNil := MergeServiceDetail(base, nil)
		viaEmpty := MergeServiceDetail(base, &models.ServiceDetailOverride{})
		if !reflect.DeepEqual(viaNil, viaEmpty) {
			t.Errorf("merge(base, nil) = %+v, merge(base, {}) = %+v", viaNil, viaEmpty)
		}
		if viaNil.Benefits == nil {
			t.Error("Benefits: got nil, want empty list")
		}
	})

	t.Run("result does not share slices with base", func(t *testing.T) {
		got := MergeServiceDetail(base, nil)
		got.Benefits[0] = "changed"
		got.HeroContent.Title = "changed"
		if base.Benefits[0] != "Speed" {
			t.Error("mutating the result changed base.Benefits")
		}
		if base.HeroContent.Title != "Websites that sell" {
			t.Error("mutating the result changed base.HeroContent")
		}
	})
}

func TestApplyScalarPrecedence(t *testing.T) {
	base := fullService()
	base.HeroContent.SecondaryLabel = "Work"

	tagline := func(v models.ServiceDetail) string { return v.Tagline }
	secondary := func(v models.ServiceDetail) string { return v.HeroContent.SecondaryLabel }
	buttonLabel := func(v models.ServiceDetail) string { return v.CTAContent.ButtonLabel }

	tests := []struct {
		name     string
		override *models.ServiceDetailOverride
		field    func(models.ServiceDetail) string
		want     string
	}{
		{name: "override set", override: &models.ServiceDetailOverride{Tagline: models.Ptr("Faster sites")}, field: tagline, want: "Faster sites"},
		{name: "override unset", override: &models.ServiceDetailOverride{Title: models.Ptr("Other")}, field: tagline, want: "Fast sites"},
		{name: "override empty string wins", override: &models.ServiceDetailOverride{Tagline: models.Ptr("")}, field: tagline, want: ""},
		{
			name:     "nested override set",
			override: &models.ServiceDetailOverride{HeroContent: &models.HeroContentOverride{SecondaryLabel: models.Ptr("Cases")}},
			field:    secondary,
			want:     "Cases",
		},
		{
			name:     "nested override unset",
			override: &models.ServiceDetailOverride{HeroContent: &models.HeroContentOverride{Badge: models.Ptr("New")}},
			field:    secondary,
			want:     "Work",
		},
		{
			name:     "nested override empty string wins",
			override: &models.ServiceDetailOverride{HeroContent: &models.HeroContentOverride{SecondaryLabel: models.Ptr("")}},
			field:    secondary,
			want:     "",
		},
		{
			name:     "nested empty string over default",
			override: &models.ServiceDetailOverride{CTAContent: &models.CTAContentOverride{ButtonLabel: models.Ptr("")}},
			field:    buttonLabel,
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MergeServiceDetail(base, tt.override)
			if v := tt.field(got); v != tt.want {
				t.Errorf("got %q, want %q", v, tt.want)
			}
		})
	}
}

func TestApplyArrayReplacement(t *testing.T) {
	base := fullService()

	t.Run("non-empty override replaces", func(t *testing.T) {
		got := MergeServiceDetail(base, &models.ServiceDetailOverride{Benefits: []string{"Support"}})
		if !reflect.DeepEqual(got.Benefits, []string{"Support"}) {
			t.Errorf("Benefits: got %v, want [Support]", got.Benefits)
		}
	})

	t.Run("empty feature list keeps base", func(t *testing.T) {
		got := MergeServiceDetail(base, &models.ServiceDetailOverride{Benefits: []string{}})
		if !reflect.DeepEqual(got.Benefits, base.Benefits) {
			t.Errorf("Benefits: got %v, want %v", got.Benefits, base.Benefits)
		}
	})

	t.Run("empty faq list replaces", func(t *testing.T) {
		got := MergeServiceDetail(base, &models.ServiceDetailOverride{FAQItems: []models.FAQItem{}})
		if got.FAQItems == nil || len(got.FAQItems) != 0 {
			t.Errorf("FAQItems: got %v, want empty list", got.FAQItems)
		}
	})

	t.Run("pricing plan bullets are not concatenated", func(t *testing.T) {
		plan := models.PricingPlan{ID: "pro", Bullets: []string{"a", "b"}}
		got := Apply(plan, &models.PricingPlanOverride{Bullets: []string{"c"}})
		if !reflect.DeepEqual(got.Bullets, []string{"c"}) {
			t.Errorf("Bullets: got %v, want [c]", got.Bullets)
		}
	})
}

// Scenario: base {id:"web", tagline:"A", benefits:[]} + {tagline:"B"}.
func TestMergeServiceDetailScenario(t *testing.T) {
	base := models.ServiceDetail{ID: "web", Tagline: "A", Benefits: []string{}}
	got := MergeServiceDetail(base, &models.ServiceDetailOverride{Tagline: models.Ptr("B")})

	if got.ID != "web" {
		t.Errorf("ID: got %q, want %q", got.ID, "web")
	}
	if got.Tagline != "B" {
		t.Errorf("Tagline: got %q, want %q", got.Tagline, "B")
	}
	if got.Benefits == nil || len(got.Benefits) != 0 {
		t.Errorf("Benefits: got %v, want []", got.Benefits)
	}
	if got.HeroContent != nil {
		t.Errorf("HeroContent: got %+v, want nil", got.HeroContent)
	}
}

// Scenario: base plan {bullets:[x,y]} + {bulletsText:"z"}.
func TestMergePricingPlanBulletsText(t *testing.T) {
	base := models.PricingPlan{ID: "starter", Bullets: []string{"x", "y"}}
	got := Apply(base, &models.PricingPlanOverride{BulletsText: models.Ptr("z")})
	if !reflect.DeepEqual(got.Bullets, []string{"z"}) {
		t.Errorf("Bullets: got %v, want [z]", got.Bullets)
	}

	t.Run("text wins over list", func(t *testing.T) {
		got := Apply(base, &models.PricingPlanOverride{
			Bullets:     []string{"ignored"},
			BulletsText: models.Ptr("one\n\n- two\n"),
		})
		if !reflect.DeepEqual(got.Bullets, []string{"one", "two"}) {
			t.Errorf("Bullets: got %v, want [one two]", got.Bullets)
		}
	})

	t.Run("override is not mutated", func(t *testing.T) {
		o := &models.PricingPlanOverride{BulletsText: models.Ptr("z")}
		Apply(base, o)
		if o.Bullets != nil {
			t.Errorf("override Bullets: got %v, want nil", o.Bullets)
		}
	})
}

// Scenario: banner absent in base, override supplies only the heading.
func TestCTABannerNeutralDefaults(t *testing.T) {
	got := MergeHomepageContent(models.HomepageContent{}, &models.HomepageContentOverride{
		CTABanner: &models.CTABannerOverride{Heading: models.Ptr("Book now")},
	})
	want := &models.CTABanner{
		Heading:      "Book now",
		Body:         "",
		PrimaryLabel: "Chat with us",
		PrimaryLink:  "/contact",
	}
	if !reflect.DeepEqual(got.CTABanner, want) {
		t.Errorf("banner: got %+v, want %+v", got.CTABanner, want)
	}

	t.Run("override empty string wins over default", func(t *testing.T) {
		got := MergeHomepageContent(models.HomepageContent{}, &models.HomepageContentOverride{
			CTABanner: &models.CTABannerOverride{PrimaryLabel: models.Ptr("")},
		})
		if got.CTABanner.PrimaryLabel != "" {
			t.Errorf("PrimaryLabel: got %q, want empty", got.CTABanner.PrimaryLabel)
		}
		if got.CTABanner.PrimaryLink != "/contact" {
			t.Errorf("PrimaryLink: got %q, want neutral default", got.CTABanner.PrimaryLink)
		}
	})
}

func TestBlockAbsentOnlyWhenBothNil(t *testing.T) {
	got := MergeServiceDetail(models.ServiceDetail{ID: "x"}, &models.ServiceDetailOverride{Title: models.Ptr("X")})
	if got.HeroContent != nil || got.ChallengeContent != nil || got.CTAContent != nil {
		t.Errorf("blocks absent on both sides: got %+v %+v %+v", got.HeroContent, got.ChallengeContent, got.CTAContent)
	}
	page := MergePricingPage(models.PricingPageContent{ID: "x"}, &models.PricingPageContentOverride{})
	if page.ROI != nil {
		t.Errorf("ROI: got %+v, want nil", page.ROI)
	}

	// A block the base supplies is kept as it is, empty fields included.
	base := models.ServiceDetail{ID: "x", HeroContent: &models.HeroContent{Title: "Hi"}}
	got = MergeServiceDetail(base, &models.ServiceDetailOverride{})
	if got.HeroContent == nil || got.HeroContent.Title != "Hi" {
		t.Fatalf("HeroContent: got %+v, want title Hi", got.HeroContent)
	}
	if got.HeroContent.PrimaryLink != "" {
		t.Errorf("PrimaryLink: got %q, want the base's empty value", got.HeroContent.PrimaryLink)
	}
	if got.HeroContent.Bullets == nil {
		t.Error("Bullets: got nil, want empty list")
	}
}

func TestNestedMergeKeepsUnsetFields(t *testing.T) {
	base := fullService()
	got := MergeServiceDetail(base, &models.ServiceDetailOverride{
		HeroContent: &models.HeroContentOverride{Badge: models.Ptr("New")},
	})

	if got.HeroContent.Badge != "New" {
		t.Errorf("Badge: got %q, want %q", got.HeroContent.Badge, "New")
	}
	if got.HeroContent.Title != base.HeroContent.Title {
		t.Errorf("Title: got %q, want %q", got.HeroContent.Title, base.HeroContent.Title)
	}
	if !reflect.DeepEqual(got.HeroContent.Bullets, base.HeroContent.Bullets) {
		t.Errorf("Bullets: got %v, want %v", got.HeroContent.Bullets, base.HeroContent.Bullets)
	}
	if !reflect.DeepEqual(got.ChallengeContent, base.ChallengeContent) {
		t.Errorf("ChallengeContent changed: got %+v", got.ChallengeContent)
	}
}

// Every leaf of a merged block must be filled even if neither side sets it.
func TestNestedBlockCompleteness(t *testing.T) {
	base := models.ServiceDetail{ID: "seo"}
	got := MergeServiceDetail(base, &models.ServiceDetailOverride{
		HeroContent:      &models.HeroContentOverride{},
		ChallengeContent: &models.ChallengeContentOverride{},
		CTAContent:       &models.CTAContentOverride{},
	})

	for name, block := range map[string]any{
		"hero":      got.HeroContent,
		"challenge": got.ChallengeContent,
		"cta":       got.CTAContent,
	} {
		v := reflect.ValueOf(block).Elem()
		for i := 0; i < v.NumField(); i++ {
			f := v.Field(i)
			sf := v.Type().Field(i)
			if f.Kind() == reflect.Slice && f.IsNil() {
				t.Errorf("%s.%s is nil", name, sf.Name)
			}
			if def := sf.Tag.Get("default"); def != "" && f.String() != def {
				t.Errorf("%s.%s: got %q, want default %q", name, sf.Name, f.String(), def)
			}
		}
	}
}

func TestApplyIdempotent(t *testing.T) {
	base := fullService()
	o := &models.ServiceDetailOverride{
		Tagline:     models.Ptr("B"),
		HeroContent: &models.HeroContentOverride{Badge: models.Ptr("New")},
		CTAContent:  &models.CTAContentOverride{Body: models.Ptr("Talk to us")},
	}
	once := MergeServiceDetail(base, o)
	twice := MergeServiceDetail(once, nil)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("merge(merge(base, o), nil) = %+v, want %+v", twice, once)
	}
	again := MergeServiceDetail(base, o)
	if !reflect.DeepEqual(once, again) {
		t.Error("merge is not deterministic for identical inputs")
	}
}

func TestApplyIDMismatch(t *testing.T) {
	base := fullService()
	got, ok := applyID(base, &models.ServiceDetailOverride{
		ID:      models.Ptr("seo"),
		Tagline: models.Ptr("Hijacked"),
	})
	if ok {
		t.Error("applyID reported success for a different id")
	}
	if !reflect.DeepEqual(got, base) {
		t.Errorf("mismatched id modified the entry: got %+v", got)
	}

	got, ok = applyID(base, &models.ServiceDetailOverride{ID: models.Ptr("web"), Tagline: models.Ptr("Same")})
	if !ok || got.Tagline != "Same" {
		t.Errorf("matching id: ok=%v tagline=%q, want true %q", ok, got.Tagline, "Same")
	}
}

func TestMergePricingPage(t *testing.T) {
	base := Complete(models.PricingPageContent{
		ID:    "ai",
		Hero:  models.PricingHero{Title: "AI pricing"},
		Plans: []models.PricingPlan{{ID: "basic", Name: "Basic", Bullets: []string{"x"}}},
		FAQs:  []models.FAQItem{{Question: "Q", Answer: "A"}},
		ROI: &models.PricingROI{
			Sliders: []models.ROISlider{{ID: "hours", Label: "Hours saved", Max: 100}},
		},
	})

	t.Run("partial hero keeps other fields", func(t *testing.T) {
		got := MergePricingPage(base, &models.PricingPageContentOverride{
			Hero: &models.PricingHeroOverride{Badge: models.Ptr("Sale")},
		})
		if got.Hero.Badge != "Sale" || got.Hero.Title != "AI pricing" {
			t.Errorf("Hero: got %+v", got.Hero)
		}
	})

	t.Run("empty plan list replaces", func(t *testing.T) {
		got := MergePricingPage(base, &models.PricingPageContentOverride{Plans: []models.PricingPlanOverride{}})
		if got.Plans == nil || len(got.Plans) != 0 {
			t.Errorf("Plans: got %v, want []", got.Plans)
		}
	})

	t.Run("nil plan list keeps base", func(t *testing.T) {
		got := MergePricingPage(base, &models.PricingPageContentOverride{Disclaimer: models.Ptr("T&C")})
		if !reflect.DeepEqual(got.Plans, base.Plans) {
			t.Errorf("Plans: got %v, want %v", got.Plans, base.Plans)
		}
		if got.Disclaimer != "T&C" {
			t.Errorf("Disclaimer: got %q", got.Disclaimer)
		}
	})

	t.Run("plan list is materialized, not element-merged", func(t *testing.T) {
		got := MergePricingPage(base, &models.PricingPageContentOverride{
			Plans: []models.PricingPlanOverride{{ID: models.Ptr("basic"), Price: models.Ptr("RM10")}},
		})
		if len(got.Plans) != 1 {
			t.Fatalf("Plans: got %d, want 1", len(got.Plans))
		}
		if got.Plans[0].Name != "" {
			t.Errorf("Name: got %q, want empty (no element merge)", got.Plans[0].Name)
		}
		if got.Plans[0].Price != "RM10" || got.Plans[0].ID != "basic" {
			t.Errorf("plan: got %+v", got.Plans[0])
		}
	})

	t.Run("roi sliders replaced when non-empty", func(t *testing.T) {
		got := MergePricingPage(base, &models.PricingPageContentOverride{
			ROI: &models.PricingROIOverride{Sliders: []models.ROISlider{{ID: "staff"}}},
		})
		if len(got.ROI.Sliders) != 1 || got.ROI.Sliders[0].ID != "staff" {
			t.Errorf("Sliders: got %+v", got.ROI.Sliders)
		}
		if got.ROI.Heading != "Estimate your return" {
			t.Errorf("ROI heading: got %q", got.ROI.Heading)
		}
	})
}

func TestNormalizeKeepsEmptyFields(t *testing.T) {
	v := models.ServiceDetail{
		ID:         "web",
		CTAContent: &models.CTAContent{Heading: "Go"},
	}
	got := Normalize(v)
	if got.CTAContent.ButtonLabel != "" {
		t.Errorf("ButtonLabel: got %q, want empty", got.CTAContent.ButtonLabel)
	}
	if got.Benefits == nil || got.FAQItems == nil {
		t.Error("nil lists should become empty")
	}
	if got.HeroContent != nil {
		t.Errorf("HeroContent: got %+v, want nil", got.HeroContent)
	}

	completed := Complete(v)
	if completed.CTAContent.ButtonLabel != "Chat with us" {
		t.Errorf("Complete ButtonLabel: got %q, want neutral default", completed.CTAContent.ButtonLabel)
	}
}

func TestParseBullets(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{name: "single", in: "z", want: []string{"z"}},
		{name: "blank lines dropped", in: "a\n\n  \nb", want: []string{"a", "b"}},
		{name: "markers stripped", in: "- a\n* b\n• c", want: []string{"a", "b", "c"}},
		{name: "empty", in: "", want: []string{}},
		{name: "windows newlines", in: "a\r\nb", want: []string{"a", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseBullets(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseBullets(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
