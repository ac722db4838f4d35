package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      string
	DBPath    string
	JWTSecret string

	// Redis cache (optional; empty addr disables caching)
	RedisAddr string
	RedisPass string
	RedisDB   int

	// Optimizer defaults
	MaxClusters int   // upper bound on candidate sites per run
	ClusterSeed int64 // k-means initialization seed

	// Rate limiting
	RateLimit int // requests per minute per IP
}

// Load loads configuration from environment variables
func Load() *Config {
	// Optional .env file for local development
	_ = godotenv.Load(".env")

	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./data/planner/planner.db"
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "your-secret-key-change-in-production"
	}

	return &Config{
		Port:        port,
		DBPath:      dbPath,
		JWTSecret:   jwtSecret,
		RedisAddr:   os.Getenv("REDIS_ADDR"),
		RedisPass:   os.Getenv("REDIS_PASS"),
		RedisDB:     envInt("REDIS_DB", 0),
		MaxClusters: envInt("MAX_CLUSTERS", 10),
		ClusterSeed: int64(envInt("CLUSTER_SEED", 42)),
		RateLimit:   envInt("RATE_LIMIT", 120),
	}
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
