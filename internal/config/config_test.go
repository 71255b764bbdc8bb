package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const sample = `
server:
  port: "9090"
log:
  mode: prod
  level: info
catalog:
  id: default
  ttl: 5m
ai:
  backend: protalk
  protalk:
    base_url: https://example.test
    bot_token: file-token
    bot_id: "7"
`

func TestLoadReadsSections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(sample), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("BOT_TOKEN", "env-token")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != "9090" || cfg.Log.Mode != "prod" || cfg.Catalog.ID != "default" {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.AI.ProTalk.BotToken != "env-token" {
		t.Fatalf("expected env override, got %q", cfg.AI.ProTalk.BotToken)
	}
	if cfg.AI.ProTalk.BotID != "7" || cfg.AI.ProTalk.BaseURL != "https://example.test" {
		t.Fatalf("unexpected protalk config %+v", cfg.AI.ProTalk)
	}
}

func TestApplyEnvPrecedence(t *testing.T) {
	env := map[string]string{
		"AI_BACKEND":     "gemini",
		"API_KEY":        "fallback",
		"GEMINI_API_KEY": "primary",
		"BOT_ID":         "",
	}
	cfg := Config{}
	cfg.AI.ProTalk.BotID = "from-file"
	ApplyEnv(&cfg, func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	})

	if cfg.AI.Backend != BackendGemini {
		t.Fatalf("expected gemini backend, got %q", cfg.AI.Backend)
	}
	if cfg.AI.Gemini.APIKey != "primary" {
		t.Fatalf("expected GEMINI_API_KEY to win, got %q", cfg.AI.Gemini.APIKey)
	}
	if cfg.AI.ProTalk.BotID != "" {
		t.Fatalf("expected empty env var to override file, got %q", cfg.AI.ProTalk.BotID)
	}
}

func TestApplyEnvDefaultsBackend(t *testing.T) {
	cfg := Config{}
	ApplyEnv(&cfg, func(string) (string, bool) { return "", false })
	if cfg.AI.Backend != BackendProTalk {
		t.Fatalf("expected protalk default, got %q", cfg.AI.Backend)
	}
}

func TestTTLDuration(t *testing.T) {
	if got := TTLDuration("", time.Minute); got != time.Minute {
		t.Fatalf("expected fallback, got %v", got)
	}
	if got := TTLDuration("bogus", time.Minute); got != time.Minute {
		t.Fatalf("expected fallback for bad input, got %v", got)
	}
	if got := TTLDuration("90s", time.Minute); got != 90*time.Second {
		t.Fatalf("expected 90s, got %v", got)
	}
}
