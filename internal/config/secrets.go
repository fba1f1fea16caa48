package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Secrets 对应部署环境中的密钥文件（TOML），键名与环境变量一致。
type Secrets struct {
	ArkAPIKey    string `toml:"ARK_API_KEY"`
	OpenAIAPIKey string `toml:"OPENAI_API_KEY"`
}

// Credential 返回文件中第一个非空凭证及其键名。
func (s Secrets) Credential() (string, string) {
	if v := strings.TrimSpace(s.ArkAPIKey); v != "" {
		return v, "ARK_API_KEY"
	}
	if v := strings.TrimSpace(s.OpenAIAPIKey); v != "" {
		return v, "OPENAI_API_KEY"
	}
	return "", ""
}

// LoadSecrets 读取密钥文件。文件不存在时返回空值，格式错误时返回错误。
func LoadSecrets(path string) (Secrets, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Secrets{}, nil
		}
		return Secrets{}, fmt.Errorf("failed to read secrets file %s: %w", path, err)
	}

	var secrets Secrets
	if err := toml.Unmarshal(data, &secrets); err != nil {
		return Secrets{}, fmt.Errorf("failed to parse secrets file %s: %w", path, err)
	}
	return secrets, nil
}
