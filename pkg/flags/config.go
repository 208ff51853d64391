package flags

import (
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config carries the three external knobs: where the content bundle lives,
// which home timezone "today" is computed in, and where flags persist.
type Config interface {
	BasePath() string
	ContentURL() string
	Timezone() string
}

// LoadConfig reads .floof.yaml from the working directory (or
// FLOOF_CONFIG_PATH), with FLOOF_* environment variables taking precedence.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.floof.db")
	viper.SetDefault("timezone", "Asia/Shanghai")
	viper.SetConfigName(".floof") // .yaml is implicit
	viper.SetEnvPrefix("FLOOF")
	viper.AutomaticEnv()

	if override := os.Getenv("FLOOF_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	return &fileConfig{
		Path: viper.GetString("path"),
		URL:  viper.GetString("content_url"),
		TZ:   viper.GetString("timezone"),
	}, nil
}

type fileConfig struct {
	Path string `json:"path"`
	URL  string `json:"content_url"`
	TZ   string `json:"timezone"`
}

func (f *fileConfig) BasePath() string {
	expanded, err := homedir.Expand(f.Path)
	if err != nil {
		return f.Path
	}
	return expanded
}

func (f *fileConfig) ContentURL() string { return f.URL }

func (f *fileConfig) Timezone() string { return f.TZ }
