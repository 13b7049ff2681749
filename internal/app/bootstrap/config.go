package bootstrap

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	ServiceID string

	HTTPPort int

	DatabaseURL  string
	RedisURL     string
	KafkaBrokers []string

	KafkaTopicSubmissionSubmitted string
	KafkaTopicDashboardReviewed   string

	MaxDBConns         int32
	OutboxPollInterval time.Duration
	OutboxBatchSize    int

	SocialsCacheTTL time.Duration
	DefaultPerPage  int
	MaxPerPage      int
	HistoryLimit    int

	JWTSecret string

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string
	SMTPTo       []string

	SlackWebhookURL string
}

type configFile struct {
	Service struct {
		ID       string `yaml:"id"`
		HTTPPort int    `yaml:"http_port"`
	} `yaml:"service"`
	Dependencies struct {
		PostgresURL                   string   `yaml:"postgres_url"`
		RedisURL                      string   `yaml:"redis_url"`
		KafkaBrokers                  []string `yaml:"kafka_brokers"`
		KafkaTopicSubmissionSubmitted string   `yaml:"kafka_topic_submission_submitted"`
		KafkaTopicDashboardReviewed   string   `yaml:"kafka_topic_dashboard_reviewed"`
		SlackWebhookURL               string   `yaml:"slack_webhook_url"`
	} `yaml:"dependencies"`
	SMTP struct {
		Host     string   `yaml:"host"`
		Port     int      `yaml:"port"`
		Username string   `yaml:"username"`
		Password string   `yaml:"password"`
		From     string   `yaml:"from"`
		To       []string `yaml:"to"`
	} `yaml:"smtp"`
}

func LoadConfig(path string) (Config, error) {
	cfg := Config{
		ServiceID:                     "dashboard-service",
		HTTPPort:                      8080,
		KafkaTopicSubmissionSubmitted: "dashboard.submission_submitted",
		KafkaTopicDashboardReviewed:   "dashboard.reviewed",
		MaxDBConns:                    20,
		OutboxPollInterval:            2 * time.Second,
		OutboxBatchSize:               100,
		SocialsCacheTTL:               5 * time.Minute,
		DefaultPerPage:                20,
		MaxPerPage:                    100,
		HistoryLimit:                  100,
		JWTSecret:                     "dashboard-dev-secret",
		SMTPPort:                      587,
	}

	raw, err := os.ReadFile(path)
	if err == nil {
		var f configFile
		if unmarshalErr := yaml.Unmarshal(raw, &f); unmarshalErr != nil {
			return Config{}, fmt.Errorf("parse config file: %w", unmarshalErr)
		}
		if f.Service.ID != "" {
			cfg.ServiceID = f.Service.ID
		}
		if f.Service.HTTPPort > 0 {
			cfg.HTTPPort = f.Service.HTTPPort
		}
		if f.Dependencies.PostgresURL != "" {
			cfg.DatabaseURL = f.Dependencies.PostgresURL
		}
		if f.Dependencies.RedisURL != "" {
			cfg.RedisURL = f.Dependencies.RedisURL
		}
		if len(f.Dependencies.KafkaBrokers) > 0 {
			cfg.KafkaBrokers = trimNonEmpty(f.Dependencies.KafkaBrokers)
		}
		if f.Dependencies.KafkaTopicSubmissionSubmitted != "" {
			cfg.KafkaTopicSubmissionSubmitted = f.Dependencies.KafkaTopicSubmissionSubmitted
		}
		if f.Dependencies.KafkaTopicDashboardReviewed != "" {
			cfg.KafkaTopicDashboardReviewed = f.Dependencies.KafkaTopicDashboardReviewed
		}
		cfg.SlackWebhookURL = f.Dependencies.SlackWebhookURL
		cfg.SMTPHost = f.SMTP.Host
		if f.SMTP.Port > 0 {
			cfg.SMTPPort = f.SMTP.Port
		}
		cfg.SMTPUsername = f.SMTP.Username
		cfg.SMTPPassword = f.SMTP.Password
		cfg.SMTPFrom = f.SMTP.From
		cfg.SMTPTo = trimNonEmpty(f.SMTP.To)
	}

	cfg.DatabaseURL = envOrDefault("DB_URL", envOrDefault("POSTGRES_URL", cfg.DatabaseURL))
	cfg.RedisURL = envOrDefault("REDIS_URL", cfg.RedisURL)
	cfg.KafkaBrokers = envCSV("KAFKA_BROKERS", cfg.KafkaBrokers)
	cfg.KafkaTopicSubmissionSubmitted = envOrDefault("KAFKA_TOPIC_SUBMISSION_SUBMITTED", cfg.KafkaTopicSubmissionSubmitted)
	cfg.KafkaTopicDashboardReviewed = envOrDefault("KAFKA_TOPIC_DASHBOARD_REVIEWED", cfg.KafkaTopicDashboardReviewed)
	cfg.HTTPPort = envInt("HTTP_PORT", cfg.HTTPPort)
	cfg.MaxDBConns = int32(envInt("DB_MAX_CONNS", int(cfg.MaxDBConns)))
	cfg.OutboxPollInterval = time.Duration(envInt("OUTBOX_POLL_SECONDS", int(cfg.OutboxPollInterval.Seconds()))) * time.Second
	cfg.OutboxBatchSize = envInt("OUTBOX_BATCH_SIZE", cfg.OutboxBatchSize)
	cfg.SocialsCacheTTL = time.Duration(envInt("SOCIALS_CACHE_SECONDS", int(cfg.SocialsCacheTTL.Seconds()))) * time.Second
	cfg.DefaultPerPage = envInt("DEFAULT_PER_PAGE", cfg.DefaultPerPage)
	cfg.MaxPerPage = envInt("MAX_PER_PAGE", cfg.MaxPerPage)
	cfg.HistoryLimit = envInt("HISTORY_LIMIT", cfg.HistoryLimit)
	cfg.JWTSecret = envOrDefault("JWT_SECRET", cfg.JWTSecret)
	cfg.SMTPHost = envOrDefault("SMTP_HOST", cfg.SMTPHost)
	cfg.SMTPPort = envInt("SMTP_PORT", cfg.SMTPPort)
	cfg.SMTPUsername = envOrDefault("SMTP_USERNAME", cfg.SMTPUsername)
	cfg.SMTPPassword = envOrDefault("SMTP_PASSWORD", cfg.SMTPPassword)
	cfg.SMTPFrom = envOrDefault("SMTP_FROM", cfg.SMTPFrom)
	cfg.SMTPTo = envCSV("SMTP_TO", cfg.SMTPTo)
	cfg.SlackWebhookURL = envOrDefault("SLACK_WEBHOOK_URL", cfg.SlackWebhookURL)

	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("missing DB_URL/POSTGRES_URL")
	}
	return cfg, nil
}

func envOrDefault(name, fallback string) string {
	if value := os.Getenv(name); value != "" {
		return value
	}
	return fallback
}

func envInt(name string, fallback int) int {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

func envCSV(name string, fallback []string) []string {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback
	}
	return trimNonEmpty(strings.Split(raw, ","))
}

func trimNonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
