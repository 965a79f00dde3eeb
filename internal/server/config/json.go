package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/artfolio/internal/flagx"
	"github.com/dmitrijs2005/artfolio/internal/timex"
)

// JsonConfig is the on-disk shape of the configuration file. It is only used
// for unmarshalling; values are copied into Config afterwards.
type JsonConfig struct {
	HTTPAddr                    string         `json:"http_addr"`
	DatabaseDSN                 string         `json:"database_dsn"`
	SecretKey                   string         `json:"secret_key"`
	AccessTokenValidityDuration timex.Duration `json:"access_token_validity_duration"`
	Production                  *bool          `json:"production"`
	S3AccessKeyID               string         `json:"s3_access_key_id"`
	S3SecretAccessKey           string         `json:"s3_secret_access_key"`
	S3Bucket                    string         `json:"s3_bucket"`
	S3Region                    string         `json:"s3_region"`
	S3BaseEndpoint              string         `json:"s3_base_endpoint"`
	S3PublicBaseURL             string         `json:"s3_public_base_url"`
	UploadDir                   string         `json:"upload_dir"`
	ImageQuality                int            `json:"image_quality"`
	MaxImageDimension           int            `json:"max_image_dimension"`
	CORSAllowedOrigins          []string       `json:"cors_allowed_origins"`
}

// parseJson overlays the JSON file named by -c/-config in args. Fields that
// are absent from the file keep their current value. Unreadable files and
// invalid JSON panic: the server must not start half-configured.
func parseJson(config *Config, args []string) {
	path := flagx.ConfigPath(args)
	if path == "" {
		return
	}

	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	setString(&config.HTTPAddr, c.HTTPAddr)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.SecretKey, c.SecretKey)
	if c.AccessTokenValidityDuration.Duration != 0 {
		config.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Duration
	}
	if c.Production != nil {
		config.Production = *c.Production
	}
	setString(&config.S3AccessKeyID, c.S3AccessKeyID)
	setString(&config.S3SecretAccessKey, c.S3SecretAccessKey)
	setString(&config.S3Bucket, c.S3Bucket)
	setString(&config.S3Region, c.S3Region)
	setString(&config.S3BaseEndpoint, c.S3BaseEndpoint)
	setString(&config.S3PublicBaseURL, c.S3PublicBaseURL)
	setString(&config.UploadDir, c.UploadDir)
	if c.ImageQuality != 0 {
		config.ImageQuality = c.ImageQuality
	}
	if c.MaxImageDimension != 0 {
		config.MaxImageDimension = c.MaxImageDimension
	}
	if len(c.CORSAllowedOrigins) > 0 {
		config.CORSAllowedOrigins = c.CORSAllowedOrigins
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
