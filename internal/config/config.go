package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	NewsAPIKey     string
	NewsAPIBaseURL string

	DefaultLeague       string
	DefaultLookbackDays int
	MinRelevanceScore   int
	TrendingCap         int
	DomainFilterEnabled bool
	ImportantInjuryOnly bool
	FetchTimeout        time.Duration
	DigestCacheTTL      time.Duration
	RulesConfigPath     string

	OpenAIAPIKey   string
	TelegramToken  string
	TelegramChatID int64
	ServerPort     string
	LogLevel       string
}

func Load() *Config {
	return &Config{
		NewsAPIKey:     getEnv("NEWS_API_KEY", ""),
		NewsAPIBaseURL: getEnv("NEWS_API_BASE_URL", "https://newsapi.org"),

		DefaultLeague:       getEnv("DEFAULT_LEAGUE", "NFL"),
		DefaultLookbackDays: getEnvAsInt("DEFAULT_LOOKBACK_DAYS", 7),
		MinRelevanceScore:   getEnvAsInt("MIN_RELEVANCE_SCORE", 2),
		TrendingCap:         getEnvAsInt("TRENDING_CAP", 10),
		DomainFilterEnabled: getEnvAsBool("DOMAIN_FILTER_ENABLED", false),
		ImportantInjuryOnly: getEnvAsBool("IMPORTANT_INJURIES_ONLY", true),
		FetchTimeout:        getEnvAsDuration("FETCH_TIMEOUT", 10*time.Second),
		DigestCacheTTL:      getEnvAsDuration("DIGEST_CACHE_TTL", 60*time.Second),
		RulesConfigPath:     getEnv("RULES_CONFIG", ""),

		OpenAIAPIKey:   getEnv("OPENAI_API_KEY", ""),
		TelegramToken:  getEnv("TELEGRAM_BOT_TOKEN", ""),
		TelegramChatID: getEnvAsInt64("TELEGRAM_CHAT_ID", 0),
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
