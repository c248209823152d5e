package models

// FieldError 请求体字段级校验错误（与前端既有的错误解析格式保持一致）
type FieldError struct {
	Type string   `json:"type"`
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
}

// ValidationError 422 响应体
type ValidationError struct {
	Detail []FieldError `json:"detail"`
}
