package auth

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	"TTSConverter/internal/config"
	"TTSConverter/internal/service/tts"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
)

const scopeCloudPlatform = "https://www.googleapis.com/auth/cloud-platform"

// ClientOptions собирает опции SDK-клиента из учётных данных конфигурации.
// Порядок источников: base64-ключ сервисного аккаунта (GOOGLE_CREDENTIALS),
// затем файл ключа, затем API-ключ; если не задано ничего — пустой список,
// и SDK сам попробует Application Default Credentials.
// Негодный материал — ErrCredential: без учётных данных сессия не имеет смысла.
func ClientOptions(ctx context.Context, cfg config.GoogleTTSConfig) ([]option.ClientOption, error) {
	if b64 := strings.TrimSpace(cfg.CredentialsB64); b64 != "" {
		raw, err := base64.StdEncoding.DecodeString(b64)
		if err != nil {
			return nil, fmt.Errorf("%w: GOOGLE_CREDENTIALS is not valid base64: %v", tts.ErrCredential, err)
		}
		creds, err := google.CredentialsFromJSON(ctx, raw, scopeCloudPlatform)
		if err != nil {
			return nil, fmt.Errorf("%w: GOOGLE_CREDENTIALS does not contain a valid key: %v", tts.ErrCredential, err)
		}
		return []option.ClientOption{option.WithCredentials(creds)}, nil
	}

	if path := strings.TrimSpace(cfg.CredentialsPath); path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("%w: credentials file not found: %s", tts.ErrCredential, path)
		}
		return []option.ClientOption{option.WithCredentialsFile(path)}, nil
	}

	if key := strings.TrimSpace(cfg.APIKey); key != "" {
		return []option.ClientOption{option.WithAPIKey(key)}, nil
	}

	return nil, nil
}
