package models

// Hero 首屏大标题区块
type Hero struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	CTA      string `json:"cta"`
}

// Features 功能要点区块
type Features struct {
	Items []string `json:"items"`
}

// CallToAction 页面底部行动号召区块
type CallToAction struct {
	Title  string `json:"title"`
	Button string `json:"button"`
}

// GeneratedPage 生成的落地页描述（每次请求重新生成，不持久化）
type GeneratedPage struct {
	Hero     Hero         `json:"hero"`
	Features Features     `json:"features"`
	CTA      CallToAction `json:"cta"`
}

// GenerateResponse /api/generate 响应
type GenerateResponse struct {
	Data    *GeneratedPage `json:"data"`
	ThemeID string         `json:"themeId"`
}

// Theme 主题条目（符号标识，不携带样式数据）
type Theme struct {
	ID       string   `json:"id"`
	Keywords []string `json:"keywords"`
}
