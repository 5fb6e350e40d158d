package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Ollama   OllamaConfig
	Logger   LoggerConfig
}

type LoggerConfig struct {
	Level string
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// OllamaConfig holds everything the completion backend adapter needs.
// The adapter never reads the environment itself; all knobs arrive here.
type OllamaConfig struct {
	BaseURL       string
	Model         string
	Timeout       time.Duration // wall-clock budget per attempt
	RetryAttempts int
	RetryMinWait  time.Duration
	RetryMaxWait  time.Duration
	Temperature   float64
	MaxTokens     int
}

func Load() (*Config, error) {
	// Try to load .env file from current directory or project root
	envFiles := []string{".env", "../.env", "../../.env"}
	for _, envFile := range envFiles {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}
	// No .env file is fine, environment variables are used directly
	// (useful for Docker/K8s)

	readTimeout := getEnvInt("SERVER_READ_TIMEOUT", 30)
	writeTimeout := getEnvInt("SERVER_WRITE_TIMEOUT", 30)

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  time.Duration(readTimeout) * time.Second,
			WriteTimeout: time.Duration(writeTimeout) * time.Second,
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "home_energy_advisor"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Ollama: OllamaConfig{
			BaseURL:       getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			Model:         getEnv("OLLAMA_MODEL", "llama3.2"),
			Timeout:       time.Duration(getEnvInt("OLLAMA_TIMEOUT", 120)) * time.Second,
			RetryAttempts: getEnvInt("OLLAMA_RETRY_ATTEMPTS", 3),
			RetryMinWait:  time.Duration(getEnvInt("OLLAMA_RETRY_MIN_WAIT", 1)) * time.Second,
			RetryMaxWait:  time.Duration(getEnvInt("OLLAMA_RETRY_MAX_WAIT", 10)) * time.Second,
			Temperature:   getEnvFloat("OLLAMA_TEMPERATURE", 0.7),
			MaxTokens:     getEnvInt("OLLAMA_MAX_TOKENS", 4000),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}
