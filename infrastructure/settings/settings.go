package settings

import (
	"errors"
	"fmt"
	"time"

	"nhrsa/core"

	"github.com/spf13/viper"
)

const (
	defaultContextTimeout = 31 * time.Second
	defaultHTTPTimeout    = 30 * time.Second
	defaultRawPathPrefix  = "raw"
	settingsName          = "settings"
)

type Settings struct {
	TOCURL         string        `mapstructure:"TOC_URL"`
	FixturePath    string        `mapstructure:"FIXTURE_PATH"`
	OutPath        string        `mapstructure:"OUT_PATH"`
	HTTPTimeout    time.Duration `mapstructure:"HTTP_TIMEOUT"`
	ContextTimeout time.Duration `mapstructure:"CONTEXT_TIMEOUT"`
	DoLogToStdout  bool          `mapstructure:"LOG_TO_STDOUT"`
	LogLevel       string        `mapstructure:"LOG_LEVEL"`
	LocalEndpoint  *string       `mapstructure:"LOCAL_ENDPOINT"`
	BucketName     string        `mapstructure:"BUCKET_NAME"`
	RawPathPrefix  string        `mapstructure:"RAW_PATH_PREFIX"`
}

// GetSettings reads an optional settings.env from configPath, then the environment.
func GetSettings(configPath string) (*Settings, error) {
	v := viper.New()
	v.AddConfigPath(configPath)
	v.SetConfigName(settingsName)
	v.SetConfigType("env")

	v.AutomaticEnv()
	v.SetDefault("TOC_URL", core.DefaultTOCURL)
	v.SetDefault("FIXTURE_PATH", core.DefaultFixturePath)
	v.SetDefault("OUT_PATH", core.DefaultOutPath)
	v.SetDefault("HTTP_TIMEOUT", defaultHTTPTimeout)
	v.SetDefault("CONTEXT_TIMEOUT", defaultContextTimeout)
	v.SetDefault("LOG_TO_STDOUT", true)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("BUCKET_NAME", "")
	v.SetDefault("RAW_PATH_PREFIX", defaultRawPathPrefix)
	if err := v.BindEnv("LOCAL_ENDPOINT"); err != nil {
		return nil, fmt.Errorf("error binding env LOCAL_ENDPOINT: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading in config: %w", err)
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("error unmarshalling settings: %w", err)
	}
	return &settings, nil
}
