package main

import (
	"log"
	"net/http"

	"landing-page-service/api"
	"landing-page-service/config"
	"landing-page-service/db"
	"landing-page-service/mcp"
	"landing-page-service/services"

	"github.com/mark3labs/mcp-go/server"
)

var (
	cfg         *config.Config
	generator   *services.Generator
	rateLimiter *api.RateLimiter
)

func main() {
	// 1. 加载配置
	var err error
	cfg, err = config.Load()
	if err != nil {
		log.Fatalf("❌ 加载配置失败: %v", err)
	}

	log.Printf("✅ 配置加载成功")
	log.Printf("📊 限流启用: %v", cfg.RateLimitEnabled)
	log.Printf("📊 MCP启用: %v", cfg.MCPEnabled)

	// 2. 初始化数据库协作方（可选，缺失或失败都不阻止启动）
	var database db.Database
	var dbErr error
	if cfg.DatabaseURL != "" {
		sqliteDB, err := db.Open(cfg.DatabasePath(), cfg.DatabaseName)
		if err != nil {
			log.Printf("⚠️ 数据库打开失败（服务继续运行）: %v", err)
			dbErr = err
		} else {
			database = sqliteDB
			defer sqliteDB.Close()
			log.Printf("✅ 数据库已连接: %s", sqliteDB.Name())
		}
	} else {
		log.Printf("ℹ️ 未配置 DATABASE_URL，数据库诊断将报告不可用")
	}

	// 3. 初始化生成器
	generator = services.NewGenerator()

	// 4. 设置 API 处理器依赖
	api.SetGenerator(generator)
	api.SetDatabase(database, dbErr)

	// 5. 初始化限流器
	if cfg.RateLimitEnabled {
		rateLimiter = api.NewRateLimiter(cfg.RateLimitPerIP, cfg.RateLimitBurst)
	}

	// 6. 初始化 MCP 服务器
	var mcpHandler http.Handler
	if cfg.MCPEnabled {
		mcpSrv := mcp.NewMCPServer(generator)
		mcpHandler = server.NewStreamableHTTPServer(mcpSrv.Server())
		log.Printf("✅ MCP 服务器初始化成功")
	}

	// 7. 设置路由并应用中间件
	mux := setupRoutes(mcpHandler)
	handler := applyMiddleware(mux, rateLimiter)

	// 8. 启动服务器
	log.Printf("🚀 服务器启动: http://0.0.0.0:%s", cfg.Port)
	log.Printf("📝 生成端点: http://localhost:%s/api/generate", cfg.Port)
	if cfg.MCPEnabled {
		log.Printf("🔗 MCP 端点: http://localhost:%s/mcp", cfg.Port)
	}
	if err := http.ListenAndServe("0.0.0.0:"+cfg.Port, handler); err != nil {
		log.Fatalf("❌ 服务器启动失败: %v", err)
	}
}

// setupRoutes 注册所有路由
func setupRoutes(mcpHandler http.Handler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/", api.HandleRoot)
	mux.HandleFunc("/api/hello", api.HandleHello)
	mux.HandleFunc("/api/generate", api.HandleGenerate)
	mux.HandleFunc("/test", api.HandleTest)

	// 健康检查端点(不需要限流)
	mux.HandleFunc("/health", api.HandleHealth)

	// MCP HTTP 端点 - 使用 StreamableHTTPServer
	if mcpHandler != nil {
		mux.Handle("/mcp/", http.StripPrefix("/mcp", mcpHandler))
	}

	return mux
}

// applyMiddleware 按固定顺序包裹中间件（CORS 必须在 Recovery 之内、业务之外）
func applyMiddleware(mux *http.ServeMux, limiter *api.RateLimiter) http.Handler {
	handler := api.LoggingMiddleware(mux)
	handler = api.RateLimitMiddleware(limiter)(handler)
	handler = api.CORSMiddleware(handler)
	handler = api.RecoveryMiddleware(handler)
	return handler
}
