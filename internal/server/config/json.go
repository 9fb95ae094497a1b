package config

import (
	"encoding/json"
	"os"

	"noteshare/internal/flagx"
	"noteshare/internal/timex"
)

// JsonConfig is the intermediate DTO for the optional JSON overlay. It
// uses timex.Duration so the TTL can be written either as "30m" or as
// integer nanoseconds.
type JsonConfig struct {
	EndpointAddr       string         `json:"endpoint_addr"`
	DatabaseDSN        string         `json:"database_dsn"`
	AccessTokenSecret  string         `json:"access_token_secret"`
	RefreshTokenSecret string         `json:"refresh_token_secret"`
	AccessTokenTTL     timex.Duration `json:"access_token_ttl"`
}

// parseJson loads configuration from the JSON file given via -c/-config.
// If no file is given, nothing happens. Only non-zero values from the
// file are copied into the target Config, so the file can override a
// subset of fields. An unreadable or invalid file panics: a config that
// was explicitly pointed at must not be half-applied.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	parsed := &JsonConfig{}
	if err := json.Unmarshal(data, parsed); err != nil {
		panic(err)
	}

	if parsed.EndpointAddr != "" {
		config.EndpointAddr = parsed.EndpointAddr
	}
	if parsed.DatabaseDSN != "" {
		config.DatabaseDSN = parsed.DatabaseDSN
	}
	if parsed.AccessTokenSecret != "" {
		config.AccessTokenSecret = parsed.AccessTokenSecret
	}
	if parsed.RefreshTokenSecret != "" {
		config.RefreshTokenSecret = parsed.RefreshTokenSecret
	}
	if parsed.AccessTokenTTL.Duration != 0 {
		config.AccessTokenTTL = parsed.AccessTokenTTL.Duration
	}
}
