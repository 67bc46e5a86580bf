package config

import (
	"errors"
	"os"
	"time"

	"github.com/NChechulin/poker-sequence-search/internal/util"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// FileEnv names the environment variable holding the config file path
const FileEnv = "PSS_CONFIG_FILE"

const defaultFile = "config.yaml"

// Config provides configuration for the poker sequence search tools
type Config struct {
	loaded bool
	Log    Log    `yaml:"log"`
	Server Server `yaml:"server"`
	Deal   Deal   `yaml:"deal"`
}

// Log configures logrus
type Log struct {
	Level             string `yaml:"level" envconfig:"level"`
	Format            string `yaml:"format" envconfig:"format"`
	DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
}

// Server configures the HTTP service
type Server struct {
	Addr         string        `yaml:"addr" envconfig:"addr"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"read_timeout"`
	WriteTimeout time.Duration `yaml:"writeTimeout" envconfig:"write_timeout"`
}

// Deal configures randomly dealt rounds
type Deal struct {
	ComputerCards int `yaml:"computerCards" envconfig:"computer_cards"`
	PlayerCards   int `yaml:"playerCards" envconfig:"player_cards"`
	Jokers        int `yaml:"jokers" envconfig:"jokers"`
	// Seed makes deals reproducible. Zero uses crypto/rand.
	Seed int64 `yaml:"seed" envconfig:"seed"`
}

// DefaultConfig returns the configuration used when nothing overrides it
func DefaultConfig() Config {
	return Config{
		Log: Log{
			Level:  "info",
			Format: "text",
		},
		Server: Server{
			Addr:         ":5000",
			ReadTimeout:  time.Second * 5,
			WriteTimeout: time.Second * 10,
		},
		Deal: Deal{
			ComputerCards: 12,
			PlayerCards:   3,
			Jokers:        1,
		},
	}
}

var config Config

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration.
// The file named by PSS_CONFIG_FILE is optional unless the variable is set.
func Load() error {
	cfg := DefaultConfig()

	_, explicit := os.LookupEnv(FileEnv)
	configFile := util.Getenv(FileEnv, defaultFile)

	file, err := os.Open(configFile)
	switch {
	case err == nil:
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return err
		}
	case explicit || !errors.Is(err, os.ErrNotExist):
		return err
	}

	if err := envconfig.Process("pss", &cfg); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}
