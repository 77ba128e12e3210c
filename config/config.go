package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"culturefest-api/internal/util"

	"github.com/joho/godotenv"
)

const (
	MediaBackendGCS = "gcs"
	MediaBackendS3  = "s3"

	defaultPort        = "8080"
	defaultOrigin      = "http://localhost:3000"
	defaultMaxUploadMB = 5
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	JWTSecret      string
	Port           string
	AllowedOrigins []string

	MediaBackend   string
	GCSBucket      string
	GCSEndpoint    string
	S3AccountID    string
	S3AccessKeyID  string
	S3SecretKey    string
	S3Bucket       string
	S3PublicBase   string
	MaxUploadBytes int64
}

// LoadConfig reads the process environment, after merging a local .env file when one exists.
func LoadConfig() Config {
	_ = godotenv.Load()

	return Config{
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBSSLMode:  os.Getenv("DB_SSLMODE"),

		JWTSecret:      os.Getenv("JWT_SECRET"),
		Port:           getOr("PORT", defaultPort),
		AllowedOrigins: util.SplitCSV(getOr("ALLOWED_ORIGINS", defaultOrigin)),

		MediaBackend:   strings.ToLower(getOr("MEDIA_BACKEND", MediaBackendGCS)),
		GCSBucket:      os.Getenv("GCS_BUCKET"),
		GCSEndpoint:    os.Getenv("GCS_ENDPOINT"),
		S3AccountID:    os.Getenv("S3_ACCOUNT_ID"),
		S3AccessKeyID:  os.Getenv("S3_ACCESS_KEY_ID"),
		S3SecretKey:    os.Getenv("S3_SECRET_ACCESS_KEY"),
		S3Bucket:       os.Getenv("S3_BUCKET"),
		S3PublicBase:   os.Getenv("S3_PUBLIC_BASE_URL"),
		MaxUploadBytes: maxUploadBytes(os.Getenv("MAX_UPLOAD_MB")),
	}
}

// DSN builds the postgres connection string gorm opens.
func (c Config) DSN() string {
	sslmode := c.DBSSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, sslmode,
	)
}

func getOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func maxUploadBytes(raw string) int64 {
	mb, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || mb <= 0 {
		mb = defaultMaxUploadMB
	}
	return int64(mb) << 20
}
