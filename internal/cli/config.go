package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config holds everything the dashboard needs at startup. Values are
// resolved flag > environment (SYSMON_*) > config file > default.
type Config struct {
	DockerHost string
	DiskPath   string

	History int

	Refresh         time.Duration
	FastPeriod      time.Duration
	ContainerPeriod time.Duration
	DiskPeriod      time.Duration

	LogLevel  string
	LogFormat string
	LogFile   string
}

// configDir is where the optional config file and default log file live.
const configDir = ".sysmon"

func setDefaults(v *viper.Viper) {
	v.SetDefault("docker-host", "unix:///var/run/docker.sock")
	v.SetDefault("disk-path", "/")
	v.SetDefault("history", 60)
	v.SetDefault("refresh", time.Second)
	v.SetDefault("fast-period", time.Second)
	v.SetDefault("container-period", 2*time.Second)
	v.SetDefault("disk-period", time.Minute)
	v.SetDefault("log-level", "warn")
	v.SetDefault("log-format", "text")
	v.SetDefault("log-file", "")
}

// loadConfig merges the optional config file into viper and validates
// the result. A missing config file is fine; a broken one is fatal.
func loadConfig(v *viper.Viper, explicitFile string) (Config, error) {
	setDefaults(v)

	if explicitFile != "" {
		v.SetConfigFile(explicitFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	} else if home, err := os.UserHomeDir(); err == nil {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(filepath.Join(home, configDir))
		if err := v.ReadInConfig(); err != nil {
			if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
				return Config{}, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	cfg := Config{
		DockerHost:      v.GetString("docker-host"),
		DiskPath:        v.GetString("disk-path"),
		History:         v.GetInt("history"),
		Refresh:         v.GetDuration("refresh"),
		FastPeriod:      v.GetDuration("fast-period"),
		ContainerPeriod: v.GetDuration("container-period"),
		DiskPeriod:      v.GetDuration("disk-period"),
		LogLevel:        v.GetString("log-level"),
		LogFormat:       v.GetString("log-format"),
		LogFile:         v.GetString("log-file"),
	}

	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if c.History < 2 {
		return fmt.Errorf("history must be at least 2 samples, got %d", c.History)
	}
	for name, period := range map[string]time.Duration{
		"refresh":          c.Refresh,
		"fast-period":      c.FastPeriod,
		"container-period": c.ContainerPeriod,
		"disk-period":      c.DiskPeriod,
	} {
		if period < 100*time.Millisecond {
			return fmt.Errorf("%s must be at least 100ms, got %s", name, period)
		}
	}
	return nil
}
