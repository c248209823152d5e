package utils

import (
	"encoding/json"

	"landing-page-service/models"
)

// ValidateGenerateRequest 校验 /api/generate 请求体
// 返回 prompt 值和字段级错误列表；空字符串是合法输入，缺失或非字符串则不是
func ValidateGenerateRequest(body []byte) (string, []models.FieldError) {
	var raw map[string]interface{}
	if err := json.Unmarshal(body, &raw); err != nil {
		return "", []models.FieldError{
			{
				Type: "json_invalid",
				Loc:  []string{"body"},
				Msg:  "Input should be a valid dictionary or object to extract fields from",
			},
		}
	}

	value, ok := raw["prompt"]
	if !ok {
		return "", []models.FieldError{
			{
				Type: "missing",
				Loc:  []string{"body", "prompt"},
				Msg:  "Field required",
			},
		}
	}

	prompt, ok := value.(string)
	if !ok {
		return "", []models.FieldError{
			{
				Type: "string_type",
				Loc:  []string{"body", "prompt"},
				Msg:  "Input should be a valid string",
			},
		}
	}

	return prompt, nil
}
