package services

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateThemeSelection(t *testing.T) {
	g := NewGenerator()

	tests := []struct {
		name   string
		prompt string
		theme  string
	}{
		{
			name:   "Empty prompt falls back to fintech",
			prompt: "",
			theme:  "fintech",
		},
		{
			name:   "Bank keyword selects fintech",
			prompt: "bank app for freelancers",
			theme:  "fintech",
		},
		{
			name:   "Design keyword selects sunset",
			prompt: "creative design studio portfolio",
			theme:  "sunset",
		},
		{
			name:   "Wellness keyword selects mint",
			prompt: "wellness garden planner",
			theme:  "mint",
		},
		{
			name:   "Mint wins over fintech when both match",
			prompt: "AI bank for wellness",
			theme:  "mint",
		},
		{
			name:   "Sunset wins over fintech when both match",
			prompt: "sunset analytics agency",
			theme:  "sunset",
		},
		{
			name:   "Mint wins over sunset when both match",
			prompt: "eco-friendly brand studio",
			theme:  "mint",
		},
		{
			name:   "Keyword matches as substring",
			prompt: "我们的 fintech 产品",
			theme:  "fintech",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, theme := g.Generate(tt.prompt)
			assert.Equal(t, tt.theme, theme)
		})
	}
}

func TestGenerateNameExtraction(t *testing.T) {
	g := NewGenerator()

	tests := []struct {
		name   string
		prompt string
		title  string
	}{
		{
			name:   "First three tokens title-cased",
			prompt: "  rocket ship builder extra words",
			title:  "Rocket Ship Builder: launch faster with clarity",
		},
		{
			name:   "Empty prompt uses default name",
			prompt: "",
			title:  "Your Product: launch faster with clarity",
		},
		{
			name:   "Whitespace-only prompt uses default name",
			prompt: "   \n  ",
			title:  "Your Product: launch faster with clarity",
		},
		{
			name:   "Newlines treated as token separators",
			prompt: "one\ntwo three four",
			title:  "One Two Three: launch faster with clarity",
		},
		{
			name:   "Single token",
			prompt: "launchpad",
			title:  "Launchpad: launch faster with clarity",
		},
		{
			name:   "Uppercase tokens are normalized",
			prompt: "ROCKET SHIP builder",
			title:  "Rocket Ship Builder: launch faster with clarity",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, _ := g.Generate(tt.prompt)
			assert.Equal(t, tt.title, page.Hero.Title)
		})
	}
}

func TestGenerateFeatureFallback(t *testing.T) {
	g := NewGenerator()

	page, theme := g.Generate("hello world")

	expected := []string{
		"Clean, modern UI built for conversion",
		"Lightning-fast performance and SEO",
		"Effortless setup — launch in minutes",
	}
	assert.Equal(t, expected, page.Features.Items)
	assert.Equal(t, "fintech", theme)
	assert.Equal(t, "A minimal landing that explains your value clearly.", page.Hero.Subtitle)
}

func TestGenerateSubtitleTags(t *testing.T) {
	g := NewGenerator()

	page, _ := g.Generate("AI dashboard for analytics")

	assert.Equal(t, "AI-powered, analytics platform to help you move faster", page.Hero.Subtitle)
	assert.Equal(t, []string{
		"AI-assisted workflows that learn from your usage",
		"Real-time analytics dashboards with actionable insights",
	}, page.Features.Items)
}

// 协作类关键词只贡献功能要点、不贡献副标题标签
// 这是对外输出的既定行为，改动会破坏前端快照，勿"修复"
func TestGenerateCollaborationHasNoSubtitleTag(t *testing.T) {
	g := NewGenerator()

	page, _ := g.Generate("team collab share tool")

	assert.Contains(t, page.Features.Items, "Team collaboration with comments and shared libraries")
	assert.Equal(t, "A minimal landing that explains your value clearly.", page.Hero.Subtitle)
	assert.NotContains(t, page.Hero.Subtitle, "collaboration")
}

func TestGenerateDeduplicatesFeatures(t *testing.T) {
	g := NewGenerator()

	// 同一规则的多个关键词命中只产生一条功能要点
	page, _ := g.Generate("chat gpt ai ml")

	assert.Equal(t, []string{"AI-assisted workflows that learn from your usage"}, page.Features.Items)
	assert.Equal(t, "AI-powered platform to help you move faster", page.Hero.Subtitle)
}

func TestGenerateIdempotent(t *testing.T) {
	g := NewGenerator()
	prompt := "AI analytics dashboard for secure mobile teams with api integrations"

	page1, theme1 := g.Generate(prompt)
	page2, theme2 := g.Generate(prompt)

	if theme1 != theme2 {
		t.Errorf("Expected identical themes, got '%s' and '%s'", theme1, theme2)
	}
	if !reflect.DeepEqual(page1, page2) {
		t.Errorf("Expected identical pages for identical prompt")
	}

	// 六条规则全部命中
	if len(page1.Features.Items) != 6 {
		t.Errorf("Expected 6 features, got %d: %v", len(page1.Features.Items), page1.Features.Items)
	}
}

func TestGenerateAlwaysProducesValidPage(t *testing.T) {
	g := NewGenerator()
	validThemes := map[string]bool{"fintech": true, "sunset": true, "mint": true}

	prompts := []string{
		"",
		"   ",
		"\n\n\n",
		"hello world",
		"!!! ??? ...",
		"健康 生活 方式",
		"a very long prompt with many many words that keeps going on and on",
		"AI bank for wellness with secure mobile api team dashboards",
	}

	for _, prompt := range prompts {
		page, theme := g.Generate(prompt)

		if !validThemes[theme] {
			t.Errorf("Prompt '%s': unexpected theme '%s'", prompt, theme)
		}
		if len(page.Features.Items) == 0 {
			t.Errorf("Prompt '%s': feature list is empty", prompt)
		}
		if page.Hero.Title == "" || page.Hero.Subtitle == "" || page.Hero.CTA == "" {
			t.Errorf("Prompt '%s': hero has empty fields: %+v", prompt, page.Hero)
		}
		if page.CTA.Title != "Ready to launch your landing?" || page.CTA.Button != "Generate Page" {
			t.Errorf("Prompt '%s': unexpected CTA copy: %+v", prompt, page.CTA)
		}
	}
}

func TestThemes(t *testing.T) {
	g := NewGenerator()

	themes := g.Themes()

	assert.Len(t, themes, 3)
	assert.Equal(t, "fintech", themes[0].ID)
	assert.Equal(t, "sunset", themes[1].ID)
	assert.Equal(t, "mint", themes[2].ID)
	assert.Contains(t, themes[2].Keywords, "wellness")
}
