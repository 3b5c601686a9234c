package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds all application configuration
type Config struct {
	// API Configuration
	APIPort        string
	APIHost        string
	APIEnvironment string

	// Redis
	RedisURL string

	// Sentry
	SentryDSN         string
	SentryEnvironment string

	// CORS
	CORSAllowedOrigins []string

	// Rate Limiting
	RateLimitRequestsPerMinute int
	RateLimitBurst             int
	SubmitRateLimitPerMinute   int
	SubmitRateLimitBurst       int

	// Email (SendGrid)
	SendGridAPIKey string
	EmailFrom      string
	EmailFromName  string

	// WhatsApp provider
	WhatsAppAPIURL   string
	WhatsAppToken    string
	WhatsAppLanguage string

	// Admin notification targets
	AdminEmail string
	AdminPhone string

	// Bot check
	CaptchaVerifyURL string

	// Processing endpoint. Empty means submissions are accepted in-process.
	ProcessingBaseURL string

	// Wizard sessions
	WizardSessionTTLMinutes int

	// Frontend
	FrontendURL string

	// Logging
	LogLevel  string
	LogFormat string
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		// API
		APIPort:        getEnv("API_PORT", "8080"),
		APIHost:        getEnv("API_HOST", "0.0.0.0"),
		APIEnvironment: getEnv("API_ENVIRONMENT", "development"),

		// Redis
		RedisURL: getEnv("REDIS_URL", "redis://localhost:6379"),

		// Sentry
		SentryDSN:         getEnv("SENTRY_DSN", ""),
		SentryEnvironment: getEnv("SENTRY_ENVIRONMENT", getEnv("API_ENVIRONMENT", "development")),

		// CORS
		CORSAllowedOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS", []string{
			"http://localhost:3000",
			"https://tvsmotor.com",
			"https://www.tvsmotor.com",
		}),

		// Rate Limiting
		RateLimitRequestsPerMinute: getEnvAsInt("RATE_LIMIT_REQUESTS_PER_MINUTE", 60),
		RateLimitBurst:             getEnvAsInt("RATE_LIMIT_BURST", 10),
		SubmitRateLimitPerMinute:   getEnvAsInt("SUBMIT_RATE_LIMIT_PER_MINUTE", 10),
		SubmitRateLimitBurst:       getEnvAsInt("SUBMIT_RATE_LIMIT_BURST", 3),

		// Email
		SendGridAPIKey: getEnv("SENDGRID_API_KEY", ""),
		EmailFrom:      getEnv("EMAIL_FROM", "noreply@tvsmotor.com"),
		EmailFromName:  getEnv("EMAIL_FROM_NAME", "TVS Motor"),

		// WhatsApp
		WhatsAppAPIURL:   getEnv("WHATSAPP_API_URL", ""),
		WhatsAppToken:    getEnv("WHATSAPP_TOKEN", ""),
		WhatsAppLanguage: getEnv("WHATSAPP_LANGUAGE", "en"),

		// Admin targets
		AdminEmail: getEnv("ADMIN_EMAIL", "leads@tvsmotor.com"),
		AdminPhone: getEnv("ADMIN_PHONE", ""),

		// Bot check
		CaptchaVerifyURL: getEnv("CAPTCHA_VERIFY_URL", ""),

		// Processing
		ProcessingBaseURL: getEnv("PROCESSING_BASE_URL", ""),

		// Wizard
		WizardSessionTTLMinutes: getEnvAsInt("WIZARD_SESSION_TTL_MINUTES", 30),

		// Frontend
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),

		// Logging
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),
	}
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	parts := strings.Split(valueStr, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
