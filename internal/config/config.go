// internal/config/config.go
package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port    string
	BaseURL string

	DataDir  string
	MediaDir string

	JWTSecret         string
	AdminEmail        string
	AdminPasswordHash string
	CookieDomain      string

	MaxImageUploadBytes int64
	MaxVideoUploadBytes int64
	ThumbnailWidth      int

	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	ContactTo    string

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioUseSSL    bool
}

func Load() *Config {
	return &Config{
		Port:    env("PORT", "8080"),
		BaseURL: env("BASE_URL", "http://localhost:8080"),

		DataDir:  env("DATA_DIR", "data"),
		MediaDir: env("MEDIA_DIR", "public/images"),

		JWTSecret:         env("JWT_SECRET", "change-me-in-production"),
		AdminEmail:        env("ADMIN_EMAIL", "admin@localhost"),
		AdminPasswordHash: env("ADMIN_PASSWORD_HASH", ""),
		CookieDomain:      env("COOKIE_DOMAIN", ""),

		MaxImageUploadBytes: envInt64("MAX_IMAGE_UPLOAD_BYTES", 15<<20),
		MaxVideoUploadBytes: envInt64("MAX_VIDEO_UPLOAD_BYTES", 200<<20),
		ThumbnailWidth:      envInt("THUMBNAIL_WIDTH", 600),

		SMTPHost:     env("SMTP_HOST", ""),
		SMTPPort:     envInt("SMTP_PORT", 587),
		SMTPUser:     env("SMTP_USER", ""),
		SMTPPassword: env("SMTP_PASSWORD", ""),
		ContactTo:    env("CONTACT_TO", ""),

		MinioEndpoint:  env("MINIO_ENDPOINT", ""),
		MinioAccessKey: env("MINIO_ACCESS_KEY", ""),
		MinioSecretKey: env("MINIO_SECRET_KEY", ""),
		MinioBucket:    env("MINIO_BUCKET", "wedding-backup"),
		MinioUseSSL:    env("MINIO_USE_SSL", "") == "true",
	}
}

// MailEnabled reports whether the contact form can actually send email.
func (c *Config) MailEnabled() bool {
	return c.SMTPHost != "" && c.ContactTo != ""
}

// BackupEnabled reports whether off-site backup is configured.
func (c *Config) BackupEnabled() bool {
	return c.MinioEndpoint != ""
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.ParseInt(v, 10, 64); err == nil {
			return i
		}
	}
	return fallback
}
