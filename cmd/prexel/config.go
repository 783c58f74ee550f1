package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// defaultKind is the numeric kind used when --kind is not given. It can
// be overridden by a `kind:` entry in ~/.prexel.yaml.
var defaultKind = "decimal"

// initConfig loads an optional ~/.prexel.yaml holding a default numeric
// kind, mirroring the convenience a calculator CLI's config file
// provides over repeating --kind on every invocation.
func initConfig() {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}

	viper.SetConfigName(".prexel")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(home)
	viper.SetDefault("kind", defaultKind)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
	}

	if kind := viper.GetString("kind"); kind != "" {
		defaultKind = kind
	}
}

// configFilePath returns the path initConfig looked for, for diagnostics.
func configFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".prexel.yaml")
}
