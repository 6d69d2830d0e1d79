package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// #region config

// Config holds process-level settings for the CLI tools.
type Config struct {
	OpenAIAPIKey   string
	OpenAIModel    string
	CorpusSnapshot string // SQLite snapshot path; empty = use corpus file or seed
	CorpusFile     string // YAML corpus path; empty = use built-in seed
	LexiconFile    string // YAML lexicon override; empty = built-in defaults
	MaxSources     int
	MinCredibility float64
	DedupThreshold float64
	UseMock        bool
	TrendCapacity  int
}

func init() {
	if os.Getenv("GO_ENVIRONMENT") == "test" {
		return
	}
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Println("Warning: error loading .env file:", err)
	}
}

// Load reads configuration from the environment.
func Load() Config {
	return Config{
		OpenAIAPIKey:   getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:    getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		CorpusSnapshot: getEnv("CORPUS_SNAPSHOT", ""),
		CorpusFile:     getEnv("CORPUS_FILE", ""),
		LexiconFile:    getEnv("LEXICON_FILE", ""),
		MaxSources:     getEnvAsInt("MAX_SOURCES", 8),
		MinCredibility: getEnvAsFloat("MIN_CREDIBILITY", 0.4),
		DedupThreshold: getEnvAsFloat("DEDUP_THRESHOLD", 0.6),
		UseMock:        getEnvAsBool("USE_MOCK_SUMMARIZER", false),
		TrendCapacity:  getEnvAsInt("TREND_CAPACITY", 100),
	}
}

// #endregion config

// #region helpers

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}

// #endregion helpers
