package config

import (
	"os"
	"strconv"
)

// Config holds the configuration values for the application.
type Config struct {
	MongoURI      string
	MongoDatabase string
	APIPort       string
	JWTSecret     []byte
	HashingCost   int
	Environment   string
	FrontendURL   string
}

// Load reads configuration from environment variables or uses default values.
func Load() (*Config, error) {
	port := os.Getenv("API_PORT")
	if port == "" {
		port = "7000"
	}

	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}

	mongoDatabase := os.Getenv("MONGO_DATABASE")
	if mongoDatabase == "" {
		mongoDatabase = "clinic"
	}

	cost := 10
	if v := os.Getenv("HASHING_COST"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cost = parsed
		}
	}

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}

	return &Config{
		MongoURI:      mongoURI,
		MongoDatabase: mongoDatabase,
		APIPort:       port,
		JWTSecret:     []byte(os.Getenv("JWT_SECRET")),
		HashingCost:   cost,
		Environment:   env,
		FrontendURL:   os.Getenv("FRONTEND_URL"),
	}, nil
}

// IsProduction reports whether the app runs in production mode. Cookie
// attributes and error responses change with it.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
