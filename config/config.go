package config

import (
	"os"
	"strconv"
	"time"
)

// Config is populated once at process start. Every field has a named
// environment source and a default; nothing reads os.Getenv after Load.
type Config struct {
	Port     string // PORT
	LogLevel string // LOG_LEVEL

	PostgresURI string // POSTGRES_URI
	MongoURI    string // MONGO_URI
	MongoDB     string // MONGO_DB
	RedisAddr   string // REDIS_ADDR (or REDIS_URI/REDIS_URL)

	JWTSecret string        // JWT_SECRET_KEY
	JWTExpiry time.Duration // JWT_EXPIRY_DAYS

	// Object storage. Driver is "s3" or "gcs".
	StorageDriver string // STORAGE_DRIVER
	S3Bucket      string // AWS_S3_BUCKET_NAME
	S3Region      string // AWS_REGION
	S3AccessKey   string // AWS_ACCESS_KEY_ID
	S3SecretKey   string // AWS_SECRET_ACCESS_KEY
	S3Endpoint    string // AWS_S3_ENDPOINT (optional, for R2/minio-style hosts)
	GCSBucket     string // GCS_BUCKET
	GCSCredsFile  string // GCS_CREDENTIALS_FILE (optional, falls back to ADC)

	// Generation backend. Provider is "remote" or "vertex".
	GenProvider    string        // GEN_PROVIDER
	GenEndpoint    string        // GEN_ENDPOINT (remote)
	GenToken       string        // GEN_TOKEN (remote, optional)
	VertexProject  string        // VERTEX_PROJECT (vertex)
	VertexLocation string        // VERTEX_LOCATION (vertex)
	VertexModel    string        // VERTEX_MODEL (vertex)
	GenTimeout     time.Duration // GEN_TIMEOUT_SECONDS

	ResumeCacheTTL time.Duration // RESUME_CACHE_TTL_SECONDS
}

func Load() *Config {
	return &Config{
		Port:     getenv("PORT", "8080"),
		LogLevel: getenv("LOG_LEVEL", "info"),

		PostgresURI: os.Getenv("POSTGRES_URI"),
		MongoURI:    os.Getenv("MONGO_URI"),
		MongoDB:     getenv("MONGO_DB", "foliochat"),
		RedisAddr:   firstenv("REDIS_ADDR", "REDIS_URI", "REDIS_URL"),

		JWTSecret: os.Getenv("JWT_SECRET_KEY"),
		JWTExpiry: time.Duration(getint("JWT_EXPIRY_DAYS", 15)) * 24 * time.Hour,

		StorageDriver: getenv("STORAGE_DRIVER", "s3"),
		S3Bucket:      os.Getenv("AWS_S3_BUCKET_NAME"),
		S3Region:      getenv("AWS_REGION", "us-east-1"),
		S3AccessKey:   os.Getenv("AWS_ACCESS_KEY_ID"),
		S3SecretKey:   os.Getenv("AWS_SECRET_ACCESS_KEY"),
		S3Endpoint:    os.Getenv("AWS_S3_ENDPOINT"),
		GCSBucket:     os.Getenv("GCS_BUCKET"),
		GCSCredsFile:  os.Getenv("GCS_CREDENTIALS_FILE"),

		GenProvider:    getenv("GEN_PROVIDER", "remote"),
		GenEndpoint:    os.Getenv("GEN_ENDPOINT"),
		GenToken:       os.Getenv("GEN_TOKEN"),
		VertexProject:  os.Getenv("VERTEX_PROJECT"),
		VertexLocation: getenv("VERTEX_LOCATION", "us-central1"),
		VertexModel:    getenv("VERTEX_MODEL", "gemini-1.5-flash"),
		GenTimeout:     time.Duration(getint("GEN_TIMEOUT_SECONDS", 60)) * time.Second,

		ResumeCacheTTL: time.Duration(getint("RESUME_CACHE_TTL_SECONDS", 3600)) * time.Second,
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func firstenv(keys ...string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return ""
}

func getint(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}
