package config

import (
	"errors"
	"strings"
	"time"

	"github.com/samber/oops"
	"github.com/spf13/viper"
)

const envPrefix = "HUB"

// LoadConfig reads configuration from hub.yaml (working directory or
// /etc/agenthub) with HUB_* environment variables taking precedence.
func LoadConfig(paths ...string) (*Config, error) {
	v := viper.New()

	v.SetConfigName("hub")
	v.SetConfigType("yaml")

	if len(paths) == 0 {
		paths = []string{".", "/etc/agenthub"}
	}

	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	err := v.ReadInConfig()
	if err != nil {
		// Missing config file is fine, env vars and defaults still apply.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, oops.Wrapf(err, "failed to read config file")
		}
	}

	cfg := &Config{}

	err = v.Unmarshal(cfg)
	if err != nil {
		return nil, oops.Wrapf(err, "failed to unmarshal config")
	}

	err = cfg.Validate()
	if err != nil {
		return nil, oops.Wrapf(err, "failed to validate config")
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("http.address", ":8080")
	v.SetDefault("http.readHeaderTimeout", 5*time.Second)
	v.SetDefault("http.shutdownTimeout", 10*time.Second)
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("resolver.cacheTTL", 30*time.Second)
	v.SetDefault("resolver.cacheSize", 1024)
	v.SetDefault("logging.level", "info")
}
