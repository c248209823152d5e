package services

import (
	"strings"

	"landing-page-service/models"
	"landing-page-service/utils"
)

// 主题关键词规则，按源顺序依次求值；后匹配的规则覆盖前者
// （mint > sunset > fintech > 默认 fintech），不要改写成 else-if 分支
var themeRules = []models.Theme{
	{ID: "fintech", Keywords: []string{"bank", "fintech", "saas", "analytics", "ai", "ml"}},
	{ID: "sunset", Keywords: []string{"sunset", "creative", "design", "marketing", "brand", "portfolio"}},
	{ID: "mint", Keywords: []string{"health", "calm", "wellness", "eco", "green", "garden"}},
}

// featureRule 功能要点规则：命中任一关键词则追加 feature，部分规则同时贡献副标题标签
type featureRule struct {
	keywords []string
	feature  string
	tag      string
}

var featureRules = []featureRule{
	{
		keywords: []string{"ai", "ml", "gpt", "chat"},
		feature:  "AI-assisted workflows that learn from your usage",
		tag:      "AI-powered",
	},
	{
		keywords: []string{"analytics", "insight", "metric", "dashboard"},
		feature:  "Real-time analytics dashboards with actionable insights",
		tag:      "analytics",
	},
	{
		// 该规则历史上从不贡献副标题标签，线上前端依赖现状，保持不变
		keywords: []string{"team", "collab", "share"},
		feature:  "Team collaboration with comments and shared libraries",
	},
	{
		keywords: []string{"mobile", "ios", "android", "responsive"},
		feature:  "Responsive by default — perfect on mobile and desktop",
	},
	{
		keywords: []string{"secure", "privacy", "gdpr", "auth"},
		feature:  "Enterprise-grade security and role-based access",
	},
	{
		keywords: []string{"api", "integrations", "zapier", "slack", "notion"},
		feature:  "One-click integrations with your favorite tools",
	},
}

// 无关键词命中时的兜底功能列表
var defaultFeatures = []string{
	"Clean, modern UI built for conversion",
	"Lightning-fast performance and SEO",
	"Effortless setup — launch in minutes",
}

const (
	defaultName     = "Your Product"
	defaultTheme    = "fintech"
	defaultSubtitle = "A minimal landing that explains your value clearly."
)

// Generator 提示词启发式生成器（纯函数，无外部调用，无共享状态）
type Generator struct{}

// NewGenerator 创建生成器
func NewGenerator() *Generator {
	return &Generator{}
}

// Generate 根据提示词生成落地页描述和主题 ID
// 对任意输入（包括空串）都返回完整结构，不会失败
func (g *Generator) Generate(prompt string) (*models.GeneratedPage, string) {
	prompt = strings.TrimSpace(prompt)
	lower := strings.ToLower(prompt)

	// 主题：顺序求值，后命中者覆盖
	theme := defaultTheme
	for _, rule := range themeRules {
		if containsAny(lower, rule.Keywords) {
			theme = rule.ID
		}
	}

	// 产品名：取前 3 个非空 token，标题化
	name := defaultName
	tokens := splitTokens(prompt)
	if len(tokens) > 0 {
		cand := strings.Join(tokens[:utils.Min(len(tokens), 3)], " ")
		if cand != "" {
			name = utils.TitleCase(cand)
		}
	}

	// 功能要点与副标题标签：逐条规则累加，按值去重
	var features []string
	var subtitleBits []string
	for _, rule := range featureRules {
		if !containsAny(lower, rule.keywords) {
			continue
		}
		features = addFeature(features, rule.feature)
		if rule.tag != "" {
			subtitleBits = append(subtitleBits, rule.tag)
		}
	}
	if len(features) == 0 {
		features = append([]string{}, defaultFeatures...)
	}

	subtitle := defaultSubtitle
	if len(subtitleBits) > 0 {
		subtitle = strings.Join(utils.UniqueInOrder(subtitleBits), ", ") + " platform to help you move faster"
	}

	page := &models.GeneratedPage{
		Hero: models.Hero{
			Title:    name + ": launch faster with clarity",
			Subtitle: subtitle,
			CTA:      "Get Started",
		},
		Features: models.Features{
			Items: features,
		},
		CTA: models.CallToAction{
			Title:  "Ready to launch your landing?",
			Button: "Generate Page",
		},
	}

	return page, theme
}

// Themes 返回主题目录（按求值顺序）
func (g *Generator) Themes() []models.Theme {
	themes := make([]models.Theme, len(themeRules))
	copy(themes, themeRules)
	return themes
}

// containsAny 检查 s 是否包含任一关键词子串
func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

// splitTokens 换行归一为空格后按单个空格切分，丢弃空 token
func splitTokens(prompt string) []string {
	var tokens []string
	for _, t := range strings.Split(strings.ReplaceAll(prompt, "\n", " "), " ") {
		if t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// addFeature 追加功能要点（按值精确去重）
func addFeature(features []string, text string) []string {
	if text == "" {
		return features
	}
	for _, f := range features {
		if f == text {
			return features
		}
	}
	return append(features, text)
}
