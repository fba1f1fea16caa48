package config

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/cloudwego/eino-ext/components/model/ark"
	"github.com/cloudwego/eino/components/model"
)

// Temperature 是所有请求共用的固定采样温度。
const Temperature float32 = 0.7

const (
	defaultModel       = "doubao-1-5-pro-32k-250115"
	defaultBaseURL     = "https://ark.cn-beijing.volces.com/api/v3"
	defaultRegion      = "cn-beijing"
	defaultSecretsFile = ".secrets/secrets.toml"
)

// credentialKeys 按优先级排列，环境变量和密钥文件使用同样的键名。
var credentialKeys = []string{"ARK_API_KEY", "OPENAI_API_KEY"}

// Config 聚合整个服务的配置项。
type Config struct {
	Server ServerConfig
	AI     AIConfig
}

// Load 从环境变量加载配置，凭证缺失时再读取密钥文件。
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	ai, err := loadAIConfig()
	if err != nil {
		return nil, err
	}
	if warning := ai.EndpointWarning(); warning != "" {
		log.Printf("[config] warning: %s", warning)
	}

	return &Config{Server: server, AI: ai}, nil
}

// ServerConfig 描述 HTTP 服务配置。
type ServerConfig struct {
	Addr string
}

// loadServerConfig 解析服务器监听地址。
func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	if strings.Contains(port, ":") {
		// 允许用户直接传入 ":8080" 或 "127.0.0.1:8080"。
		return ServerConfig{Addr: port}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port}, nil
}

// AIConfig 描述大模型相关配置。进程启动后不再变化。
type AIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	Region  string

	// CredentialKey 是提供凭证的键名（ARK_API_KEY 或 OPENAI_API_KEY）。
	CredentialKey string
	// CredentialSource 记录凭证来源（环境变量名或密钥文件路径），仅用于日志。
	CredentialSource string
}

// EndpointWarning 在 OpenAI 凭证搭配默认 Ark 端点时返回提示，其他情况返回空串。
func (c AIConfig) EndpointWarning() string {
	if c.CredentialKey != "OPENAI_API_KEY" || c.BaseURL != defaultBaseURL {
		return ""
	}
	return fmt.Sprintf("credential from OPENAI_API_KEY (%s) is sent to the default Ark endpoint %s, set ARK_BASE_URL and ARK_MODEL for an OpenAI-compatible provider", c.CredentialSource, defaultBaseURL)
}

// HasCredential 表示是否解析到了 API 凭证。
func (c AIConfig) HasCredential() bool {
	return c.APIKey != ""
}

// NewChatModel 使用配置创建一个模型实例。重试次数固定为 0，每次调用最多一次网络请求。
func (c AIConfig) NewChatModel(ctx context.Context) (model.ChatModel, error) {
	if !c.HasCredential() {
		return nil, fmt.Errorf("api key is not configured, set one of %s", strings.Join(credentialKeys, ", "))
	}

	temperature := Temperature
	retryTimes := 0

	cfg := &ark.ChatModelConfig{
		BaseURL:     c.BaseURL,
		Region:      c.Region,
		APIKey:      c.APIKey,
		Model:       c.Model,
		Temperature: &temperature,
		RetryTimes:  &retryTimes,
	}

	return ark.NewChatModel(ctx, cfg)
}

func loadAIConfig() (AIConfig, error) {
	apiKey, keyName := credentialFromEnv()
	source := keyName
	if apiKey == "" {
		path := getEnvOrDefault("SECRETS_FILE", defaultSecretsFile)
		secrets, err := LoadSecrets(path)
		if err != nil {
			return AIConfig{}, err
		}
		if value, name := secrets.Credential(); value != "" {
			apiKey, keyName, source = value, name, path
		}
	}

	return AIConfig{
		APIKey:           apiKey,
		Model:            getEnvOrDefault("ARK_MODEL", defaultModel),
		BaseURL:          getEnvOrDefault("ARK_BASE_URL", defaultBaseURL),
		Region:           getEnvOrDefault("ARK_REGION", defaultRegion),
		CredentialKey:    keyName,
		CredentialSource: source,
	}, nil
}

func credentialFromEnv() (string, string) {
	for _, key := range credentialKeys {
		if value := strings.TrimSpace(os.Getenv(key)); value != "" {
			return value, key
		}
	}
	return "", ""
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}
