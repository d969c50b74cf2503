package main

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const envPrefix = "MODELMAP"

// flagKeys maps flag names onto configuration keys where they differ.
var flagKeys = map[string]string{
	"log-level":   "log.level",
	"log-format":  "log.format",
	"metrics-out": "metrics.out",
}

func configKey(flagName string) string {
	if key, ok := flagKeys[flagName]; ok {
		return key
	}
	return flagName
}

// loadConfig layers explicitly set flags over the config file and MODELMAP_*
// environment variables. An explicit -config must exist; the implicit
// modelmap.yaml in the working directory is optional.
func loadConfig(fs *flag.FlagSet, configPath string) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", configPath, err)
		}
	} else {
		v.SetConfigName("modelmap")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("config: %w", err)
			}
		}
	}

	fs.VisitAll(func(f *flag.Flag) {
		if f.DefValue == "" {
			return
		}
		if getter, ok := f.Value.(flag.Getter); ok {
			v.SetDefault(configKey(f.Name), getter.Get())
		}
	})
	fs.Visit(func(f *flag.Flag) {
		if getter, ok := f.Value.(flag.Getter); ok {
			v.Set(configKey(f.Name), getter.Get())
		}
	})
	return v, nil
}
