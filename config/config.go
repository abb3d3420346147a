package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Library Assistant specifics
	Mongo  MongoConfig
	Koha   KohaConfig
	Qdrant QdrantConfig
	Voyage VoyageConfig
	Gemini GeminiConfig

	// Security
	JWT       JWTConfig
	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type MongoConfig struct {
	URI      string
	Database string
}

type KohaConfig struct {
	BaseURL  string
	Username string
	Password string
}

type QdrantConfig struct {
	URL             string
	BooksCollection string
	WebCollection   string
}

type VoyageConfig struct {
	APIKey string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type JWTConfig struct {
	Secret string
}

type RateLimitConfig struct {
	RequestsPerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Mongo
	cfg.Mongo.URI = viper.GetString("mongo.uri")
	cfg.Mongo.Database = viper.GetString("mongo.database")
	if mongoURI := viper.GetString("mongo_uri"); mongoURI != "" {
		cfg.Mongo.URI = mongoURI
	}

	// Koha catalog
	cfg.Koha.BaseURL = viper.GetString("koha.base_url")
	cfg.Koha.Username = viper.GetString("koha.username")
	cfg.Koha.Password = viper.GetString("koha.password")
	if kohaURL := viper.GetString("koha_base_url"); kohaURL != "" {
		cfg.Koha.BaseURL = kohaURL
	}
	if kohaPass := viper.GetString("koha_password"); kohaPass != "" {
		cfg.Koha.Password = kohaPass
	}

	// Qdrant
	cfg.Qdrant.URL = viper.GetString("qdrant.url")
	cfg.Qdrant.BooksCollection = viper.GetString("qdrant.books_collection")
	cfg.Qdrant.WebCollection = viper.GetString("qdrant.web_collection")
	if qdrantURL := viper.GetString("qdrant_url"); qdrantURL != "" {
		cfg.Qdrant.URL = qdrantURL
	}

	// Voyage AI
	cfg.Voyage.APIKey = viper.GetString("voyage.api_key")
	if voyageKey := viper.GetString("voyage_api_key"); voyageKey != "" {
		cfg.Voyage.APIKey = voyageKey
	}

	// Gemini
	cfg.Gemini.APIKey = viper.GetString("gemini.api_key")
	cfg.Gemini.Model = viper.GetString("gemini.model")
	if geminiKey := viper.GetString("gemini_api_key"); geminiKey != "" {
		cfg.Gemini.APIKey = geminiKey
	}

	// Security
	cfg.JWT.Secret = viper.GetString("jwt.secret")
	if jwtSecret := viper.GetString("jwt_secret"); jwtSecret != "" {
		cfg.JWT.Secret = jwtSecret
	}
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("jwt.secret is required")
	}
	if c.Mongo.URI == "" {
		return fmt.Errorf("mongo.uri is required")
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("mongo.database", "library_assistant")
	viper.SetDefault("koha.base_url", "http://localhost:8081")
	viper.SetDefault("qdrant.url", "http://localhost:6333")
	viper.SetDefault("qdrant.books_collection", "books")
	viper.SetDefault("qdrant.web_collection", "web_data")
	viper.SetDefault("gemini.model", "gemini-2.0-flash")
	viper.SetDefault("rate_limit.requests_per_min", 120)
}
