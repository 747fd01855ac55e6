package config

import (
	"errors"
	"os"
)

// Config holds runtime settings for the blog backend.
//
// Fields:
//   - Port: HTTP listen port.
//   - DatabaseDSN: PostgreSQL DSN.
//   - JWTSecret: HMAC secret for signing session tokens (HS256).
//   - S3Bucket / S3Region / S3AccessKeyID / S3SecretAccessKey: object storage settings.
//   - S3Endpoint: optional custom endpoint for S3-compatible backends (MinIO etc.).
type Config struct {
	Port              string
	DatabaseDSN       string
	JWTSecret         string
	S3Bucket          string
	S3Region          string
	S3AccessKeyID     string
	S3SecretAccessKey string
	S3Endpoint        string
}

// Load reads configuration from environment variables. DATABASE_URL and
// JWT_SECRET are required; everything else has a usable default or is optional.
func Load() (*Config, error) {
	cfg := &Config{
		Port:              os.Getenv("PORT"),
		DatabaseDSN:       os.Getenv("DATABASE_URL"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		S3Bucket:          os.Getenv("S3_BUCKET"),
		S3Region:          os.Getenv("S3_REGION"),
		S3AccessKeyID:     os.Getenv("S3_ACCESS_KEY_ID"),
		S3SecretAccessKey: os.Getenv("S3_SECRET_ACCESS_KEY"),
		S3Endpoint:        os.Getenv("S3_ENDPOINT"),
	}

	if cfg.Port == "" {
		cfg.Port = "5050"
	}
	if cfg.DatabaseDSN == "" {
		return nil, errors.New("DATABASE_URL is empty")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is empty")
	}

	return cfg, nil
}
