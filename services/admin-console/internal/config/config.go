package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const DefaultBaseURL = "https://backend-carniceria-la-bendicion-qcvr.onrender.com"

// Config holds console settings.
type Config struct {
	BaseURL      string        `mapstructure:"base_url"`
	Timeout      time.Duration `mapstructure:"timeout"`
	SnapshotPath string        `mapstructure:"snapshot_path"`
	Environment  string        `mapstructure:"environment"`
}

// Load merges, lowest priority first: defaults, ~/.carniceria/console.yaml,
// ./.carniceria/console.yaml, CONSOLE_* environment variables.
func Load() (*Config, error) {
	home, _ := os.UserHomeDir()
	cwd, _ := os.Getwd()

	var paths []string
	if home != "" {
		paths = append(paths, filepath.Join(home, ".carniceria", "console.yaml"))
	}
	if cwd != "" {
		paths = append(paths, filepath.Join(cwd, ".carniceria", "console.yaml"))
	}

	return LoadFrom(home, paths...)
}

// LoadFrom is Load with explicit file paths; missing files are skipped.
func LoadFrom(home string, paths ...string) (*Config, error) {
	v := viper.New()
	setDefaults(v, home)

	v.SetConfigType("yaml")
	for _, path := range paths {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}
		v.SetConfigFile(path)
		if err := v.MergeInConfig(); err != nil {
			return nil, err
		}
	}

	v.SetEnvPrefix("CONSOLE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, home string) {
	v.SetDefault("base_url", DefaultBaseURL)
	v.SetDefault("timeout", 15*time.Second)
	v.SetDefault("snapshot_path", filepath.Join(home, ".carniceria", "tipopago.db"))
	v.SetDefault("environment", "production")
}
