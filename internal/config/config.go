package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads environment variables from a .env file if present.
// Existing environment variables are not overwritten.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return godotenv.Load(path)
}

const (
	SourceAI     = "ai"
	SourceStatic = "static"
)

type Config struct {
	QuestionsPerGame         int
	QuestionSeconds          int
	QuestionSource           string
	QuestionLocale           string
	GameMode                 string
	AITimeoutSeconds         int
	SlowCallSeconds          int
	DatabaseURL              string
	DBMaxOpenConns           int
	DBMaxIdleConns           int
	DBConnMaxLifetimeSeconds int
	DBConnMaxIdleTimeSeconds int
	OpenAIAPIKey             string
	OpenAIModel              string
	OpenAIBaseURL            string
	OTelEnabled              bool
	OTelEndpoint             string
	LogLevel                 string
}

func Default() Config {
	return Config{
		QuestionsPerGame:         10,
		QuestionSeconds:          30,
		QuestionSource:           SourceAI,
		QuestionLocale:           "en",
		GameMode:                 "free-for-all",
		AITimeoutSeconds:         45,
		SlowCallSeconds:          8,
		DBMaxOpenConns:           10,
		DBMaxIdleConns:           10,
		DBConnMaxLifetimeSeconds: 300,
		DBConnMaxIdleTimeSeconds: 60,
		OpenAIModel:              "gpt-4o-mini",
		LogLevel:                 "info",
	}
}

func Load() Config {
	cfg := Default()
	positiveInt("QUESTIONS_PER_GAME", &cfg.QuestionsPerGame)
	positiveInt("QUESTION_SECONDS", &cfg.QuestionSeconds)
	positiveInt("AI_TIMEOUT_SECONDS", &cfg.AITimeoutSeconds)
	positiveInt("SLOW_CALL_SECONDS", &cfg.SlowCallSeconds)
	positiveInt("DB_MAX_OPEN_CONNS", &cfg.DBMaxOpenConns)
	positiveInt("DB_MAX_IDLE_CONNS", &cfg.DBMaxIdleConns)
	positiveInt("DB_CONN_MAX_LIFETIME_SECONDS", &cfg.DBConnMaxLifetimeSeconds)
	positiveInt("DB_CONN_MAX_IDLE_SECONDS", &cfg.DBConnMaxIdleTimeSeconds)
	if raw := strings.ToLower(os.Getenv("QUESTION_SOURCE")); raw == SourceAI || raw == SourceStatic {
		cfg.QuestionSource = raw
	}
	if raw := os.Getenv("QUESTION_LOCALE"); raw != "" {
		cfg.QuestionLocale = strings.ToLower(raw)
	}
	if raw := os.Getenv("GAME_MODE"); raw != "" {
		cfg.GameMode = raw
	}
	if raw := os.Getenv("DATABASE_URL"); raw != "" {
		cfg.DatabaseURL = raw
	}
	if raw := os.Getenv("OPENAI_API_KEY"); raw != "" {
		cfg.OpenAIAPIKey = raw
	}
	if raw := os.Getenv("OPENAI_MODEL"); raw != "" {
		cfg.OpenAIModel = raw
	}
	if raw := os.Getenv("OPENAI_BASE_URL"); raw != "" {
		cfg.OpenAIBaseURL = raw
	}
	if raw := os.Getenv("OTEL_ENABLED"); raw != "" {
		if value, err := strconv.ParseBool(raw); err == nil {
			cfg.OTelEnabled = value
		}
	}
	if raw := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); raw != "" {
		cfg.OTelEndpoint = raw
	}
	if raw := os.Getenv("LOG_LEVEL"); raw != "" {
		cfg.LogLevel = raw
	}
	return cfg
}

func positiveInt(key string, dst *int) {
	raw := os.Getenv(key)
	if raw == "" {
		return
	}
	if value, err := strconv.Atoi(raw); err == nil && value > 0 {
		*dst = value
	}
}

func (c Config) AITimeout() time.Duration {
	return time.Duration(c.AITimeoutSeconds) * time.Second
}

func (c Config) SlowCallAfter() time.Duration {
	return time.Duration(c.SlowCallSeconds) * time.Second
}

func (c Config) DBConnMaxLifetime() time.Duration {
	return time.Duration(c.DBConnMaxLifetimeSeconds) * time.Second
}

func (c Config) DBConnMaxIdleTime() time.Duration {
	return time.Duration(c.DBConnMaxIdleTimeSeconds) * time.Second
}
