package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/on-the-ground/memo_ive_go/pure"
	"github.com/on-the-ground/memo_ive_go/store"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config drives the swatch demo.
type Config struct {
	Memoizer string   `yaml:"memoizer"`
	Table    string   `yaml:"table"`
	LogLevel string   `yaml:"log_level"`
	Keys     []string `yaml:"keys"`
	Trail    int      `yaml:"trail"`
}

// Resolved is a validated Config in library types.
type Resolved struct {
	Kind    pure.Kind
	Backend store.Backend
	Level   zapcore.Level
	Keys    []string
	Trail   int
}

func Default() Config {
	return Config{
		Memoizer: pure.KindSingleSlot.String(),
		Table:    string(store.BackendMap),
		LogLevel: string(pure.LogInfo),
		Keys:     []string{"red", "blue", "red", "blue"},
		Trail:    256,
	}
}

// Load starts from Default, overlays the YAML file at path when path is not
// empty, then applies MEMO_* environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv(EnvVarName(ConfigMemoMemoizer)); ok {
		c.Memoizer = v
	}
	if v, ok := os.LookupEnv(EnvVarName(ConfigMemoTable)); ok {
		c.Table = v
	}
	if v, ok := os.LookupEnv(EnvVarName(ConfigLogLevel)); ok {
		c.LogLevel = v
	}
	if v, ok := os.LookupEnv(EnvVarName(ConfigMemoKeys)); ok {
		c.Keys = splitKeys(v)
	}
	if v, ok := os.LookupEnv(EnvVarName(ConfigLogTrail)); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %w", ErrInvalidConfig, EnvVarName(ConfigLogTrail), v, err)
		}
		c.Trail = n
	}
	return nil
}

func splitKeys(s string) []string {
	parts := strings.Split(s, ",")
	keys := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			keys = append(keys, p)
		}
	}
	return keys
}

// Resolve validates c and converts it to library types.
func (c Config) Resolve() (Resolved, error) {
	kind, err := pure.ParseKind(c.Memoizer)
	if err != nil {
		return Resolved{}, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, ConfigMemoMemoizer, err)
	}
	backend, err := store.ParseBackend(c.Table)
	if err != nil {
		return Resolved{}, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, ConfigMemoTable, err)
	}
	level, err := pure.ParseLevel(c.LogLevel)
	if err != nil {
		return Resolved{}, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, ConfigLogLevel, err)
	}
	if c.Trail <= 0 {
		return Resolved{}, fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidConfig, ConfigLogTrail, c.Trail)
	}
	return Resolved{
		Kind:    kind,
		Backend: backend,
		Level:   level,
		Keys:    c.Keys,
		Trail:   c.Trail,
	}, nil
}

func (c Config) Validate() error {
	_, err := c.Resolve()
	return err
}
