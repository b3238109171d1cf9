// Package config provides configuration management for the rate service.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the complete application configuration.
type Config struct {
	Server   ServerConfig
	Cache    CacheConfig
	Carrier  CarrierConfig
	Auth     AuthConfig
	Database DatabaseConfig
	Methods  MethodsConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port           string
	RateLimit      int
	RateWindow     time.Duration
	RequestTimeout time.Duration
	CORSOrigins    []string
	SwaggerUser    string
	SwaggerPass    string
}

// CacheConfig holds tariff cache configuration.
type CacheConfig struct {
	// Backend selects the cache implementation: "memory" or "redis".
	Backend string
	Enabled bool
	Size    int
	TTL     time.Duration

	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// CarrierConfig holds the carrier web service credentials and endpoint.
type CarrierConfig struct {
	URL      string
	Username string
	Password string
	Timeout  time.Duration

	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// AuthConfig holds authentication configuration.
type AuthConfig struct {
	APIKeys   map[string]bool
	JWTSecret string
}

// DatabaseConfig holds MongoDB configuration.
type DatabaseConfig struct {
	URI          string
	DatabaseName string
	LogsTTL      time.Duration
	Enabled      bool
}

// MethodsConfig holds deploy-time defaults for the shipping method
// variants, applied when no stored settings document exists.
type MethodsConfig struct {
	OriginPostcode  string
	DefaultPostcode string
	FallbackRate    string
	TaxEnabled      bool
}

// Load creates a Config from environment variables.
func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			RateLimit:      getEnvInt("RATE_LIMIT", 100),
			RateWindow:     getEnvDuration("RATE_WINDOW", time.Minute),
			RequestTimeout: getEnvDuration("REQUEST_TIMEOUT", 30*time.Second),
			CORSOrigins:    parseList(os.Getenv("CORS_ORIGINS")),
			SwaggerUser:    getEnv("SWAGGER_USER", ""),
			SwaggerPass:    getEnv("SWAGGER_PASS", ""),
		},
		Cache: CacheConfig{
			Backend:       getEnv("CACHE_BACKEND", "memory"),
			Enabled:       getEnvBool("CACHE_ENABLED", true),
			Size:          getEnvInt("CACHE_SIZE", 1000),
			TTL:           getEnvDuration("CACHE_TTL", 600*time.Second),
			RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       getEnvInt("REDIS_DB", 0),
		},
		Carrier: CarrierConfig{
			URL:                            getEnv("CARRIER_WS_URL", ""),
			Username:                       getEnv("CARRIER_WS_USER", ""),
			Password:                       getEnv("CARRIER_WS_PASSWORD", ""),
			Timeout:                        getEnvDuration("CARRIER_WS_TIMEOUT", 15*time.Second),
			CircuitBreakerFailureThreshold: getEnvInt("CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5),
			CircuitBreakerSuccessThreshold: getEnvInt("CIRCUIT_BREAKER_SUCCESS_THRESHOLD", 2),
			CircuitBreakerTimeout:          getEnvDuration("CIRCUIT_BREAKER_TIMEOUT", 30*time.Second),
		},
		Auth: AuthConfig{
			APIKeys:   parseAPIKeys(os.Getenv("API_KEYS")),
			JWTSecret: getEnv("JWT_SECRET_KEY", ""),
		},
		Database: DatabaseConfig{
			URI:          getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			DatabaseName: getEnv("MONGODB_DATABASE", "rate_service"),
			LogsTTL:      getEnvDuration("MONGODB_LOGS_TTL", 30*24*time.Hour),
			Enabled:      getEnvBool("MONGODB_ENABLED", false),
		},
		Methods: MethodsConfig{
			OriginPostcode:  getEnv("ORIGIN_POSTCODE", ""),
			DefaultPostcode: getEnv("DEFAULT_POSTCODE", ""),
			FallbackRate:    getEnv("FALLBACK_RATE", ""),
			TaxEnabled:      getEnvBool("TAX_ENABLED", false),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}

// parseList splits a comma-separated environment value.
func parseList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// parseAPIKeys turns a comma-separated key list into a lookup set.
func parseAPIKeys(s string) map[string]bool {
	keys := parseList(s)
	if len(keys) == 0 {
		return nil
	}
	result := make(map[string]bool, len(keys))
	for _, k := range keys {
		result[k] = true
	}
	return result
}
