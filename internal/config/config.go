package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// Config 聚合整个服务的配置项。
type Config struct {
	Server ServerConfig
	Azure  AzureConfig
}

// Load 从环境变量加载配置。
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	azure, err := loadAzureConfig()
	if err != nil {
		return nil, err
	}

	return &Config{Server: server, Azure: azure}, nil
}

// ServerConfig 描述 HTTP 服务配置。
type ServerConfig struct {
	Addr          string
	StaticDir     string
	SessionSecret string
}

// AzureConfig carries the OpenAI deployment and the search index that
// grounds its replies. Both API keys are mandatory.
type AzureConfig struct {
	OpenAIEndpoint string
	Deployment     string
	OpenAIKey      string
	SearchEndpoint string
	SearchIndex    string
	SearchKey      string
}

// loadServerConfig 解析服务器监听地址。
func loadServerConfig() (ServerConfig, error) {
	cfg := ServerConfig{
		StaticDir:     getEnvOrDefault("STATIC_DIR", "web"),
		SessionSecret: getEnvOrDefault("SESSION_SECRET", "change-this-secret"),
	}

	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "5000"
	}

	if strings.Contains(port, ":") {
		// 允许用户直接传入 ":5000" 或 "127.0.0.1:5000"。
		cfg.Addr = port
		return cfg, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	cfg.Addr = ":" + port
	return cfg, nil
}

func loadAzureConfig() (AzureConfig, error) {
	cfg := AzureConfig{
		OpenAIEndpoint: strings.TrimSpace(os.Getenv("ENDPOINT_URL")),
		Deployment:     strings.TrimSpace(os.Getenv("DEPLOYMENT_NAME")),
		OpenAIKey:      strings.TrimSpace(os.Getenv("AZURE_OPENAI_API_KEY")),
		SearchEndpoint: strings.TrimSpace(os.Getenv("SEARCH_ENDPOINT")),
		SearchIndex:    strings.TrimSpace(os.Getenv("SEARCH_INDEX_NAME")),
		SearchKey:      strings.TrimSpace(os.Getenv("SEARCH_KEY")),
	}

	if cfg.OpenAIKey == "" {
		return AzureConfig{}, errors.New("AZURE_OPENAI_API_KEY is required but not set")
	}
	if cfg.SearchKey == "" {
		return AzureConfig{}, errors.New("SEARCH_KEY is required but not set")
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}
