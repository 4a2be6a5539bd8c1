package config

import (
	"os"
	"strconv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort      string
	MongoURI        string
	MongoDatabase   string
	RedisAddr       string
	RedisDB         int
	RedisPass       string
	JWTSecret       string
	BcryptCost      int
	TMDBBaseURL     string
	TMDBAccessToken string
	CORSOrigins     string
	SwaggerHost     string
}

// Load builds Config from environment with sensible defaults.
// JWTSecret has no usable default; main refuses to start without it.
func Load() *Config {
	return &Config{
		ServerPort:      getEnv("SERVER_PORT", "5000"),
		MongoURI:        getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:   getEnv("MONGO_DB", "movienuts"),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:         getEnvInt("REDIS_DB", 0),
		RedisPass:       os.Getenv("REDIS_PASSWORD"),
		JWTSecret:       os.Getenv("SECRET_KEY"),
		BcryptCost:      getEnvInt("BCRYPT_COST", 10),
		TMDBBaseURL:     getEnv("TMDB_BASE_URL", "https://api.themoviedb.org/3"),
		TMDBAccessToken: os.Getenv("TMDB_ACCESS_TOKEN"),
		CORSOrigins:     getEnv("CORS_ORIGINS", "*"),
		SwaggerHost:     os.Getenv("SWAGGER_HOST"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}
