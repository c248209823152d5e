package api

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"os"

	"landing-page-service/db"
	"landing-page-service/models"
	"landing-page-service/services"
	"landing-page-service/utils"
)

var (
	generator   *services.Generator
	database    db.Database
	databaseErr error
)

// SetGenerator 设置生成器依赖
func SetGenerator(g *services.Generator) {
	generator = g
}

// SetDatabase 设置数据库协作方依赖
// database 为 nil 表示未配置；openErr 记录打开失败的原因
func SetDatabase(d db.Database, openErr error) {
	database = d
	databaseErr = openErr
}

// HandleRoot 根路径欢迎信息
// 注意 ServeMux 的 "/" 会兜底所有未注册路径，这里必须精确匹配
func HandleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		writeDetail(w, http.StatusNotFound, "Not Found")
		return
	}
	if r.Method != http.MethodGet {
		writeDetail(w, http.StatusMethodNotAllowed, "Method Not Allowed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Hello from FastAPI Backend!"})
}

// HandleHello API 欢迎信息
func HandleHello(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeDetail(w, http.StatusMethodNotAllowed, "Method Not Allowed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Hello from the backend API!"})
}

// HandleHealth 健康检查端点（不限流）
func HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// HandleGenerate 根据提示词生成落地页描述
func HandleGenerate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeDetail(w, http.StatusMethodNotAllowed, "Method Not Allowed")
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Printf("❌ 读取请求体失败: %v", err)
		writeDetail(w, http.StatusBadRequest, "Bad Request")
		return
	}

	// 空字符串是合法输入；缺失或非字符串的 prompt 返回字段级 422
	prompt, fieldErrors := utils.ValidateGenerateRequest(body)
	if fieldErrors != nil {
		writeJSON(w, http.StatusUnprocessableEntity, models.ValidationError{Detail: fieldErrors})
		return
	}

	page, themeID := generator.Generate(prompt)
	writeJSON(w, http.StatusOK, models.GenerateResponse{Data: page, ThemeID: themeID})
}

// HandleTest 数据库诊断探针
// 无论数据库是否可达都返回 200，所有失败都转为状态描述字符串
func HandleTest(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"backend":           "✅ Running",
		"database":          "❌ Not Available",
		"database_url":      nil,
		"database_name":     nil,
		"connection_status": "Not Connected",
		"collections":       []string{},
	}

	switch {
	case databaseErr != nil:
		response["database"] = "❌ Error: " + utils.Truncate(databaseErr.Error(), 50)
	case database == nil:
		response["database"] = "❌ Database module not found (run enable-database first)"
	case !database.IsAvailable():
		response["database"] = "⚠️  Available but not initialized"
	default:
		response["database"] = "✅ Available"
		response["database_url"] = "✅ Configured"
		if name := database.Name(); name != "" {
			response["database_name"] = name
		} else {
			response["database_name"] = "✅ Connected"
		}
		response["connection_status"] = "Connected"

		// 列出集合以验证连通性，最多展示前 10 个
		collections, err := database.ListCollections()
		if err != nil {
			response["database"] = "⚠️  Connected but Error: " + utils.Truncate(err.Error(), 50)
		} else {
			if collections == nil {
				collections = []string{}
			}
			response["collections"] = collections[:utils.Min(len(collections), 10)]
			response["database"] = "✅ Connected & Working"
		}
	}

	// 环境变量只报告是否设置，不泄露取值
	response["database_url"] = presence(os.Getenv("DATABASE_URL"))
	response["database_name"] = presence(os.Getenv("DATABASE_NAME"))

	writeJSON(w, http.StatusOK, response)
}

// presence 环境变量是否设置的状态描述
func presence(value string) string {
	if value != "" {
		return "✅ Set"
	}
	return "❌ Not Set"
}

// writeJSON 写 JSON 响应
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("❌ 写响应失败: %v", err)
	}
}

// writeDetail 写 {"detail": "..."} 形式的错误响应（既有客户端按该格式解析错误）
func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}
