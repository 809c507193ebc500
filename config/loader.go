package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the global application configuration
var Config AppConfig

// Default values applied after load when the file leaves them unset.
const (
	DefaultPort          = 16510
	DefaultWindowMinutes = 60

	DefaultBaseMin     = 0
	DefaultBaseMax     = 25
	DefaultFilteredMin = 3
	DefaultFilteredMax = 50
)

// LoadAppConfig loads and validates the application configuration. When no
// explicit paths are given it falls back to config.yml in the working
// directory.
func LoadAppConfig(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{"config.yml", "./config/config.yml"}
	}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		return err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return err
	}
	v := validator.New()
	if err := v.Struct(cfg.Data); err != nil {
		return err
	}
	applyDefaults(&cfg)
	if err := v.Struct(cfg); err != nil {
		return err
	}
	Config = cfg
	return nil
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = DefaultPort
	}
	if cfg.Filter.WindowMinutes == 0 {
		cfg.Filter.WindowMinutes = DefaultWindowMinutes
	}
	if cfg.Radius.BaseMax == 0 {
		cfg.Radius.BaseMin = DefaultBaseMin
		cfg.Radius.BaseMax = DefaultBaseMax
	}
	if cfg.Radius.FilteredMax == 0 {
		cfg.Radius.FilteredMin = DefaultFilteredMin
		cfg.Radius.FilteredMax = DefaultFilteredMax
	}
}
