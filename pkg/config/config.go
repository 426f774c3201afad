// Package config loads the bot credentials and endpoints cordinfo talks to.
package config

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/swgillespie/cordinfo/pkg/cdn"
	"github.com/swgillespie/cordinfo/pkg/discord"
)

const (
	DefaultPath = "config.json"

	envPrefix = "CORDINFO"
)

// Config is read once at startup and never modified afterwards.
type Config struct {
	Token      string `mapstructure:"token"        validate:"required"`
	APIBaseURL string `mapstructure:"api_base_url" validate:"required,url,endswith=/"`
	CDNBaseURL string `mapstructure:"cdn_base_url" validate:"required,url,endswith=/"`
	UserAgent  string `mapstructure:"user_agent"`
}

// Load reads the JSON config file at path. CORDINFO_* environment variables
// override values from the file. A missing file, malformed JSON or a missing
// token are all errors.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")

	v.SetDefault("token", "")
	v.SetDefault("api_base_url", discord.DefaultBaseURL)
	v.SetDefault("cdn_base_url", cdn.DefaultBaseURL)
	v.SetDefault("user_agent", "")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", path)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to parse config file %s", path)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, errors.Wrapf(err, "invalid config in %s", path)
	}
	return &cfg, nil
}
