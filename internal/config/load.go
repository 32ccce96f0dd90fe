package config

import (
	"bytes"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/lgbarn/checkers-go/internal/errors"
)

// FileName is the config file location relative to the XDG config dirs.
const FileName = "checkers/config.yaml"

// DotEnvFile is read from the working directory when present.
const DotEnvFile = ".env"

// Environment variables that override file settings.
const (
	EnvLogLevel       = "CHECKERS_LOG_LEVEL"
	EnvLogFormat      = "CHECKERS_LOG_FORMAT"
	EnvWorkers        = "CHECKERS_WORKERS"
	EnvLongestCapture = "CHECKERS_LONGEST_CAPTURE"
	EnvOutputFormat   = "CHECKERS_OUTPUT_FORMAT"
)

// readDotEnv parses a dotenv file. A missing file yields an empty map.
func readDotEnv(path string) (map[string]string, error) {
	env, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "%s: %v", path, err)
	}
	return env, nil
}

// Load builds the effective configuration. Defaults are overlaid by the
// YAML file at path (or the first XDG match when path is empty), then by
// a .env file in the working directory, then by the process environment.
func Load(path string) (*Config, error) {
	cfg := NewConfig()

	if path == "" {
		if found, err := xdg.SearchConfigFile(FileName); err == nil {
			path = found
		}
	}
	if path != "" {
		if err := cfg.ReadFile(path); err != nil {
			return nil, err
		}
	}

	env, err := readDotEnv(DotEnvFile)
	if err != nil {
		return nil, err
	}
	for _, key := range []string{EnvLogLevel, EnvLogFormat, EnvWorkers, EnvLongestCapture, EnvOutputFormat} {
		if v, ok := os.LookupEnv(key); ok {
			env[key] = v
		}
	}
	if err := cfg.ApplyEnv(env); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ReadFile overlays the YAML document at path onto c.
func (c *Config) ReadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(errors.ErrInvalidConfig, "read %s: %v", path, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return errors.Wrapf(errors.ErrInvalidConfig, "parse %s: %v", path, err)
	}
	c.fillDefaults()
	c.Source = path
	return nil
}

// ApplyEnv overlays recognised CHECKERS_* variables onto c.
func (c *Config) ApplyEnv(env map[string]string) error {
	if v := env[EnvLogLevel]; v != "" {
		c.Log.Level = strings.ToLower(v)
	}
	if v := env[EnvLogFormat]; v != "" {
		c.Log.Format = strings.ToLower(v)
	}
	if v := env[EnvOutputFormat]; v != "" {
		c.Output.Format = OutputFormat(strings.ToLower(v))
	}
	if v := env[EnvWorkers]; v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrapf(errors.ErrInvalidConfig, "%s=%q", EnvWorkers, v)
		}
		c.Runner.Workers = n
	}
	if v := env[EnvLongestCapture]; v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return errors.Wrapf(errors.ErrInvalidConfig, "%s=%q", EnvLongestCapture, v)
		}
		c.Engine.LongestCapture = b
	}
	return nil
}

// Save writes c as YAML to path, or to the XDG config location when path
// is empty, and returns the path written.
func (c *Config) Save(path string) (string, error) {
	if path == "" {
		p, err := xdg.ConfigFile(FileName)
		if err != nil {
			return "", err
		}
		path = p
	}
	data, err := c.Marshal()
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// Marshal returns c as a YAML document.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// fillDefaults replaces sections a file explicitly set to null.
func (c *Config) fillDefaults() {
	if c.Log == nil {
		c.Log = NewLogConfig()
	}
	if c.Engine == nil {
		c.Engine = NewEngineConfig()
	}
	if c.Output == nil {
		c.Output = NewOutputConfig()
	}
	if c.Runner == nil {
		c.Runner = NewRunnerConfig()
	}
}
