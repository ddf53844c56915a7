package config

import (
	"fmt"
	"net"
	"time"

	"github.com/Mshel/falke-snake/internal/game"
	"github.com/charmbracelet/log"
	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds operator settings. Game rules are compile-time constants in the game package.
type Config struct {
	LogLevel string `yaml:"log-level" env:"SNAKE_LOG_LEVEL" env-default:"info"`
	LogFile  string `yaml:"log-file" env:"SNAKE_LOG_FILE"`
	Seed     uint64 `yaml:"seed" env:"SNAKE_SEED" env-default:"0"`
	Server   Server `yaml:"server"`
}

type Server struct {
	Host                string        `yaml:"host" env:"SNAKE_HOST" env-default:"0.0.0.0"`
	Port                string        `yaml:"port" env:"SNAKE_PORT" env-default:"6996"`
	HostKeyPath         string        `yaml:"host-key-path" env:"SNAKE_HOST_KEY_PATH" env-default:".ssh/id_ed25519"`
	MaxConnectionsPerIP int           `yaml:"max-connections-per-ip" env:"SNAKE_MAX_CONNECTIONS_PER_IP" env-default:"2"`
	ShutdownTimeout     time.Duration `yaml:"shutdown-timeout" env:"SNAKE_SHUTDOWN_TIMEOUT" env-default:"30s"`
}

// Load reads the YAML file at path, with environment overrides. An empty path reads the
// environment only.
func Load(path string) (*Config, error) {
	conf := &Config{}

	if path == "" {
		if err := cleanenv.ReadEnv(conf); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}
		return conf, nil
	}

	if err := cleanenv.ReadConfig(path, conf); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}
	return conf, nil
}

// MustLoad - load configuration or panic.
func MustLoad(path string) *Config {
	conf, err := Load(path)
	if err != nil {
		panic(err)
	}
	return conf
}

func (that *Server) Addr() string {
	return net.JoinHostPort(that.Host, that.Port)
}

// Level parses LogLevel, falling back to info.
func (that *Config) Level() log.Level {
	level, err := log.ParseLevel(that.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// GameOptions turns the settings into options for a new game. A zero seed leaves the
// clock-based default in place.
func (that *Config) GameOptions(logger *log.Logger) []game.Option {
	opts := []game.Option{game.WithLogger(logger)}
	if that.Seed != 0 {
		opts = append(opts, game.WithSeed(that.Seed))
	}
	return opts
}
