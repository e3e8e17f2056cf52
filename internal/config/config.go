package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	DatabaseURL     string
	SecretKey       string
	SendGridAPIKey  string
	FromEmail       string
	OpenAIAPIKey    string
	RedisURL        string
	AllowOrigins    []string
	LogstashTCPAddr string
	OTPTTL          time.Duration
	OTPLength       int
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	otpLen := 6
	if v, err := strconv.Atoi(getenv("OTP_LENGTH", "6")); err == nil && v > 0 {
		otpLen = v
	}

	otpTTL := 10 * time.Minute
	if v, err := time.ParseDuration(getenv("OTP_TTL", "10m")); err == nil && v > 0 {
		otpTTL = v
	}

	return Config{
		Port:            getenv("PORT", "8080"),
		DatabaseURL:     must("DATABASE_URL"),
		SecretKey:       getenv("SECRET_KEY", "your-secret-key-here"),
		SendGridAPIKey:  getenv("SENDGRID_API_KEY", ""),
		FromEmail:       getenv("FROM_EMAIL", "noreply@hrbot.com"),
		OpenAIAPIKey:    getenv("OPENAI_API_KEY", ""),
		RedisURL:        getenv("REDIS_URL", "redis://localhost:6379"),
		AllowOrigins:    splitAndTrim(getenv("ALLOW_ORIGINS", "http://localhost:3000")),
		LogstashTCPAddr: getenv("LOGSTASH_TCP_ADDR", ""),
		OTPTTL:          otpTTL,
		OTPLength:       otpLen,
	}
}

func splitAndTrim(input string) []string {
	parts := strings.Split(input, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func must(k string) string {
	v := os.Getenv(k)
	if v == "" {
		panic("missing env: " + k)
	}
	return v
}
