package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jsphweid/songsheet/constants"
	"github.com/jsphweid/songsheet/logging"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

var ErrInvalid = errors.New("invalid config")

type Config struct {
	Server ServerConfig `yaml:"server"`
	Midi   MidiConfig   `yaml:"midi"`
	// parallel sheets in batch mode, 0 means one per CPU
	Workers  int    `yaml:"workers"`
	LogLevel string `yaml:"log_level"`
}

type ServerConfig struct {
	Port           int      `yaml:"port"`
	AllowedOrigins []string `yaml:"allowed_origins"`
	// requests per second per process
	RateLimit float64 `yaml:"rate_limit"`
	Burst     int     `yaml:"burst"`
}

type MidiConfig struct {
	Tempo         float64 `yaml:"tempo"`
	Octave        int     `yaml:"octave"`
	BeatsPerChord int     `yaml:"beats_per_chord"`
}

func Default() Config {
	return Config{
		Server: ServerConfig{
			Port:           constants.DefaultPort,
			AllowedOrigins: []string{"*"},
			RateLimit:      constants.DefaultRateLimit,
			Burst:          constants.DefaultBurst,
		},
		Midi: MidiConfig{
			Tempo:         constants.DefaultTempo,
			Octave:        constants.DefaultOctave,
			BeatsPerChord: constants.DefaultBeatsPerChord,
		},
		LogLevel: "info",
	}
}

// Load starts from Default, applies the YAML file at path if it exists and
// then environment overrides. An empty path only reads the environment.
func Load(fs afero.Fs, path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := afero.ReadFile(fs, path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("reading config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parsing config %s: %w", path, err)
			}
		}
	}

	cfg.applyEnv()
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv() {
	c.Server.Port = envInt(constants.EnvPort, c.Server.Port)
	c.Server.RateLimit = envFloat(constants.EnvRate, c.Server.RateLimit)
	c.Server.Burst = envInt(constants.EnvBurst, c.Server.Burst)
	if v := os.Getenv(constants.EnvOrigins); v != "" {
		c.Server.AllowedOrigins = splitList(v)
	}
	c.Workers = envInt(constants.EnvWorkers, c.Workers)
	c.LogLevel = envStr(constants.EnvLogLevel, c.LogLevel)
	c.Midi.Tempo = envFloat(constants.EnvTempo, c.Midi.Tempo)
	c.Midi.Octave = envInt(constants.EnvOctave, c.Midi.Octave)
}

func (c Config) Validate() error {
	switch {
	case c.Server.Port <= 0 || c.Server.Port > 65535:
		return fmt.Errorf("%w: port %d", ErrInvalid, c.Server.Port)
	case c.Server.RateLimit < 0:
		return fmt.Errorf("%w: rate_limit %v", ErrInvalid, c.Server.RateLimit)
	case c.Server.RateLimit > 0 && c.Server.Burst <= 0:
		return fmt.Errorf("%w: burst must be positive when rate_limit is set", ErrInvalid)
	case c.Workers < 0:
		return fmt.Errorf("%w: workers %d", ErrInvalid, c.Workers)
	case c.Midi.Tempo <= 0:
		return fmt.Errorf("%w: tempo %v", ErrInvalid, c.Midi.Tempo)
	case c.Midi.Octave < 0 || c.Midi.Octave > 8:
		return fmt.Errorf("%w: octave %d", ErrInvalid, c.Midi.Octave)
	case c.Midi.BeatsPerChord <= 0 || c.Midi.BeatsPerChord > constants.MaxBeatsPerChord:
		return fmt.Errorf("%w: beats_per_chord %d", ErrInvalid, c.Midi.BeatsPerChord)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// Path returns the config file to use: the env override or the default
// name in the working directory.
func Path() string {
	return envStr(constants.EnvConfig, constants.ConfigFilename)
}

func splitList(s string) []string {
	var res []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			res = append(res, part)
		}
	}
	return res
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
