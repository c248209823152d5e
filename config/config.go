package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config 应用配置
type Config struct {
	Port             string
	DatabaseURL      string
	DatabaseName     string
	RateLimitEnabled bool
	RateLimitPerIP   int
	RateLimitBurst   int
	MCPEnabled       bool
}

// Load 加载配置（从 .env 文件和环境变量）
func Load() (*Config, error) {
	// 尝试加载 .env 文件（如果不存在也不报错）
	_ = godotenv.Load()

	cfg := &Config{
		Port:             getEnv("PORT", "8000"),
		DatabaseURL:      getEnv("DATABASE_URL", ""),
		DatabaseName:     getEnv("DATABASE_NAME", ""),
		RateLimitEnabled: getEnvBool("RATE_LIMIT_ENABLED", true),
		RateLimitPerIP:   getEnvInt("RATE_LIMIT_PER_IP", 120),
		RateLimitBurst:   getEnvInt("RATE_LIMIT_BURST", 30),
		MCPEnabled:       getEnvBool("MCP_ENABLED", true),
	}

	return cfg, nil
}

// DatabasePath 返回数据库文件路径（兼容 sqlite:/// 前缀）
func (c *Config) DatabasePath() string {
	return strings.TrimPrefix(c.DatabaseURL, "sqlite:///")
}

// getEnv 获取环境变量（带默认值）
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool 获取布尔环境变量（带默认值）
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1"
}

// getEnvInt 获取整数环境变量（带默认值）
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}
