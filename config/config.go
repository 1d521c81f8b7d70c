// Copyright (c) 2021-present Mattermost, Inc. All Rights Reserved.
// See License for license information.

package config

import (
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/mattermost/mattermost-apps-actions/utils"
)

const (
	EnvPrefix = "MM_ACTIONS"

	DefaultCallTimeout  = 30 * time.Second
	DefaultFetchTimeout = 10 * time.Second
	DefaultLogLevel     = "info"
)

// Config represents the settings of the actions menu client.
//
// Config should be abbreviated as `conf`.
type Config struct {
	// MattermostSiteURL is the Mattermost server, e.g. "http://localhost:8065".
	MattermostSiteURL string `mapstructure:"site_url"`

	// AccessToken authenticates the acting user with the Mattermost server
	// and the apps plugin.
	AccessToken string `mapstructure:"access_token"`

	// UserID and Locale of the acting user.
	UserID string `mapstructure:"user_id"`
	Locale string `mapstructure:"locale"`

	// AppsEnabled controls whether App bindings are shown in the menu.
	AppsEnabled bool `mapstructure:"apps_enabled"`

	// CallTimeout bounds a single call submission, FetchTimeout a bindings
	// fetch.
	CallTimeout  time.Duration `mapstructure:"call_timeout"`
	FetchTimeout time.Duration `mapstructure:"fetch_timeout"`

	LogLevel string `mapstructure:"log_level"`
}

func Default() Config {
	return Config{
		AppsEnabled:  true,
		CallTimeout:  DefaultCallTimeout,
		FetchTimeout: DefaultFetchTimeout,
		LogLevel:     DefaultLogLevel,
	}
}

// Load reads the configuration from the optional yaml file at path, and the
// environment. Environment variables use the MM_ACTIONS_ prefix, e.g.
// MM_ACTIONS_SITE_URL, and override the file.
func Load(path string) (*Config, error) {
	v := viper.New()

	def := Default()
	v.SetDefault("site_url", def.MattermostSiteURL)
	v.SetDefault("access_token", def.AccessToken)
	v.SetDefault("user_id", def.UserID)
	v.SetDefault("locale", def.Locale)
	v.SetDefault("apps_enabled", def.AppsEnabled)
	v.SetDefault("call_timeout", def.CallTimeout)
	v.SetDefault("fetch_timeout", def.FetchTimeout)
	v.SetDefault("log_level", def.LogLevel)

	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", path)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	conf := Config{}
	if err := v.Unmarshal(&conf); err != nil {
		return nil, errors.Wrap(err, "failed to decode config")
	}

	if conf.MattermostSiteURL != "" {
		siteURL, err := utils.NormalizeSiteURL(conf.MattermostSiteURL)
		if err != nil {
			return nil, err
		}
		conf.MattermostSiteURL = siteURL
	}
	return &conf, nil
}

// Validate checks that conf can be used to talk to a Mattermost server. All
// problems are reported at once.
func (conf Config) Validate() error {
	var result *multierror.Error
	if conf.MattermostSiteURL == "" {
		result = multierror.Append(result, utils.NewInvalidError("site_url must be set"))
	} else if err := utils.IsValidHTTPURL(conf.MattermostSiteURL); err != nil {
		result = multierror.Append(result, utils.NewInvalidError("site_url: %v", err))
	}
	if conf.AccessToken == "" {
		result = multierror.Append(result, utils.NewInvalidError("access_token must be set"))
	}
	if conf.UserID == "" {
		result = multierror.Append(result, utils.NewInvalidError("user_id must be set"))
	}
	if conf.CallTimeout <= 0 {
		result = multierror.Append(result, utils.NewInvalidError("call_timeout must be positive, got %v", conf.CallTimeout))
	}
	if conf.FetchTimeout <= 0 {
		result = multierror.Append(result, utils.NewInvalidError("fetch_timeout must be positive, got %v", conf.FetchTimeout))
	}
	if _, err := conf.ZapLevel(); err != nil {
		result = multierror.Append(result, err)
	}
	return result.ErrorOrNil()
}

func (conf Config) ZapLevel() (zapcore.Level, error) {
	level, err := zapcore.ParseLevel(conf.LogLevel)
	if err != nil {
		return zapcore.InfoLevel, utils.NewInvalidError("log_level: %v", err)
	}
	return level, nil
}

func (conf Config) Loggable() []interface{} {
	return []interface{}{
		"site_url", conf.MattermostSiteURL,
		"user_id", conf.UserID,
		"locale", conf.Locale,
		"apps_enabled", conf.AppsEnabled,
		"call_timeout", conf.CallTimeout.String(),
	}
}
