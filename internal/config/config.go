package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
	Log struct {
		Mode  string `yaml:"mode"`
		Level string `yaml:"level"`
	} `yaml:"log"`
	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`
	Postgres struct {
		URL string `yaml:"url"`
	} `yaml:"postgres"`
	Catalog struct {
		ID  string `yaml:"id"`
		TTL string `yaml:"ttl"`
	} `yaml:"catalog"`
	AI AI `yaml:"ai"`
}

// AI selects and configures the completion backend.
type AI struct {
	Backend string `yaml:"backend"`
	ProTalk struct {
		BaseURL  string `yaml:"base_url"`
		BotToken string `yaml:"bot_token"`
		BotID    string `yaml:"bot_id"`
	} `yaml:"protalk"`
	Gemini struct {
		APIKey string `yaml:"api_key"`
		Model  string `yaml:"model"`
	} `yaml:"gemini"`
}

const (
	BackendProTalk = "protalk"
	BackendGemini  = "gemini"
)

// Load reads YAML config from path and applies environment overrides.
func Load(path string) (Config, error) {
	cfg := Config{}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	ApplyEnv(&cfg, os.LookupEnv)
	return cfg, nil
}

// ApplyEnv overrides AI credentials from the environment. A set but empty
// variable still wins over the file.
func ApplyEnv(cfg *Config, lookup func(string) (string, bool)) {
	if v, ok := lookup("AI_BACKEND"); ok && v != "" {
		cfg.AI.Backend = v
	}
	if v, ok := lookup("BOT_TOKEN"); ok {
		cfg.AI.ProTalk.BotToken = v
	}
	if v, ok := lookup("BOT_ID"); ok {
		cfg.AI.ProTalk.BotID = v
	}
	if v, ok := lookup("API_KEY"); ok {
		cfg.AI.Gemini.APIKey = v
	}
	if v, ok := lookup("GEMINI_API_KEY"); ok {
		cfg.AI.Gemini.APIKey = v
	}
	if cfg.AI.Backend == "" {
		cfg.AI.Backend = BackendProTalk
	}
}

// TTLDuration parses a duration string or returns the fallback if empty.
func TTLDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	return fallback
}
