package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	configFileName = "config"
	configFileType = "yaml"

	cfgKeyCredentials = "credentials"
	cfgKeyTokens      = "tokens"
)

// loadConfig reads config.yaml from the workdir (default ~/.sheet-cli),
// overlaying SHEET_CLI_* environment variables. A missing config file is
// not an error.
func loadConfig(workdir string) (*viper.Viper, error) {
	if workdir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}

		workdir = filepath.Join(home, ".sheet-cli")
	}

	if err := os.MkdirAll(workdir, 0o700); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetDefault(cfgKeyCredentials, filepath.Join(workdir, "credentials.json"))
	v.SetDefault(cfgKeyTokens, filepath.Join(workdir, "tokens.json"))
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(workdir)
	v.SetEnvPrefix("SHEET_CLI")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	return v, nil
}
