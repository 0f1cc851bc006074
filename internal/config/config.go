package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DefaultBaseURL     = "https://generativelanguage.googleapis.com"
	DefaultVisionModel = "gemini-pro-vision"
	DefaultChatModel   = "gemini-pro"
)

type Config struct {
	Port        string
	APIKey      string
	BaseURL     string
	VisionModel string
	ChatModel   string

	AllowedOrigins []string

	LogLevel  string
	LogFormat string
}

// Load reads .env (if any) and the process environment.
// A missing GEMINI_API_KEY is not an error here: the relay refuses calls instead.
func Load() *Config {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("GEMINI_BASE_URL", DefaultBaseURL)
	v.SetDefault("GEMINI_VISION_MODEL", DefaultVisionModel)
	v.SetDefault("GEMINI_CHAT_MODEL", DefaultChatModel)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")

	return &Config{
		Port:           v.GetString("PORT"),
		APIKey:         strings.TrimSpace(v.GetString("GEMINI_API_KEY")),
		BaseURL:        strings.TrimRight(v.GetString("GEMINI_BASE_URL"), "/"),
		VisionModel:    v.GetString("GEMINI_VISION_MODEL"),
		ChatModel:      v.GetString("GEMINI_CHAT_MODEL"),
		AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		LogLevel:       v.GetString("LOG_LEVEL"),
		LogFormat:      v.GetString("LOG_FORMAT"),
	}
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
