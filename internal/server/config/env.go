package config

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
)

// loadDotEnv reads .env into the process environment without overriding
// variables that are already set. A missing file is not an error.
func loadDotEnv() error {
	err := godotenv.Load()
	if err != nil && errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// parseEnv overlays values taken from the environment. lookup is
// os.LookupEnv in production and a map in tests.
func parseEnv(config *Config, dotenv func() error, lookup func(string) (string, bool)) {
	if err := dotenv(); err != nil {
		panic(err)
	}

	for _, key := range []string{"APP_ENV", "NODE_ENV"} {
		if v, ok := lookup(key); ok && v != "" {
			config.Production = strings.EqualFold(v, "production")
			break
		}
	}

	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}

	str("HTTP_ADDR", &config.HTTPAddr)
	str("DATABASE_URL", &config.DatabaseDSN)
	str("JWT_SECRET", &config.SecretKey)
	str("S3_ACCESS_KEY_ID", &config.S3AccessKeyID)
	str("S3_SECRET_ACCESS_KEY", &config.S3SecretAccessKey)
	str("S3_BUCKET", &config.S3Bucket)
	str("S3_REGION", &config.S3Region)
	str("S3_ENDPOINT", &config.S3BaseEndpoint)
	str("S3_PUBLIC_BASE_URL", &config.S3PublicBaseURL)
	str("UPLOAD_DIR", &config.UploadDir)

	if v, ok := lookup("CORS_ALLOWED_ORIGINS"); ok && v != "" {
		config.CORSAllowedOrigins = splitList(v)
	}
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
