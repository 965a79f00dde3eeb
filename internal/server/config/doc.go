// Package config loads runtime configuration for the artfolio server.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, after loading an optional .env file from the
//     working directory (see parseEnv).
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Environment
//
//	APP_ENV / NODE_ENV      "production" enables production mode
//	HTTP_ADDR               bind address
//	DATABASE_URL            PostgreSQL DSN
//	JWT_SECRET              admin token signing secret
//	S3_ACCESS_KEY_ID        blob storage credential (key id)
//	S3_SECRET_ACCESS_KEY    blob storage credential (secret)
//	S3_BUCKET, S3_REGION, S3_ENDPOINT, S3_PUBLIC_BASE_URL
//	UPLOAD_DIR              local upload directory
//	CORS_ALLOWED_ORIGINS    comma-separated list
//
// # JSON schema
//
// Durations use timex.Duration, so "12h" and integer nanoseconds both work:
//
//	{
//	  "http_addr": ":8080",
//	  "production": true,
//	  "access_token_validity_duration": "12h",
//	  "s3_bucket": "artfolio"
//	}
package config
