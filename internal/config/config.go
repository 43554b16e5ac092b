// Package config loads server settings from flags, falling back to
// environment variables and then to defaults.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/benbeisheim/chess-ai-backend/internal/engine"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	Addr         string
	AllowOrigins string

	// DefaultDifficulty is used when a create request omits one.
	DefaultDifficulty engine.Difficulty

	// The computer waits ThinkingDelayBase + difficulty*ThinkingDelayPerLevel
	// before answering.
	ThinkingDelayBase     time.Duration
	ThinkingDelayPerLevel time.Duration

	LogLevel    string
	Development bool
}

func Default() Config {
	return Config{
		Addr:                  ":3000",
		AllowOrigins:          "http://localhost:5173",
		DefaultDifficulty:     5,
		ThinkingDelayBase:     300 * time.Millisecond,
		ThinkingDelayPerLevel: 50 * time.Millisecond,
		LogLevel:              "info",
	}
}

// Load parses args (without the program name) on top of the environment.
func Load(args []string) (Config, error) {
	return load(args, os.LookupEnv)
}

func load(args []string, lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()
	if err := applyEnv(&cfg, lookup); err != nil {
		return Config{}, err
	}

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "listen address")
	fs.StringVar(&cfg.AllowOrigins, "allow-origins", cfg.AllowOrigins, "comma separated CORS origins")
	difficulty := fs.Int("difficulty", int(cfg.DefaultDifficulty), "default computer difficulty (1-10)")
	fs.DurationVar(&cfg.ThinkingDelayBase, "think-base", cfg.ThinkingDelayBase, "base computer thinking delay")
	fs.DurationVar(&cfg.ThinkingDelayPerLevel, "think-per-level", cfg.ThinkingDelayPerLevel, "extra thinking delay per difficulty level")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	fs.BoolVar(&cfg.Development, "dev", cfg.Development, "human readable logs")
	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	cfg.DefaultDifficulty = engine.Difficulty(*difficulty)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if v, ok := lookup("CHESS_ADDR"); ok {
		cfg.Addr = v
	}
	if v, ok := lookup("CHESS_ALLOW_ORIGINS"); ok {
		cfg.AllowOrigins = v
	}
	if v, ok := lookup("CHESS_DIFFICULTY"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: CHESS_DIFFICULTY: %v", ErrInvalidConfig, err)
		}
		cfg.DefaultDifficulty = engine.Difficulty(n)
	}
	if v, ok := lookup("CHESS_THINK_BASE"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%w: CHESS_THINK_BASE: %v", ErrInvalidConfig, err)
		}
		cfg.ThinkingDelayBase = d
	}
	if v, ok := lookup("CHESS_THINK_PER_LEVEL"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%w: CHESS_THINK_PER_LEVEL: %v", ErrInvalidConfig, err)
		}
		cfg.ThinkingDelayPerLevel = d
	}
	if v, ok := lookup("CHESS_LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	if v, ok := lookup("CHESS_DEV"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: CHESS_DEV: %v", ErrInvalidConfig, err)
		}
		cfg.Development = b
	}
	return nil
}

func (c Config) Validate() error {
	if err := c.DefaultDifficulty.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.ThinkingDelayBase < 0 || c.ThinkingDelayPerLevel < 0 {
		return fmt.Errorf("%w: thinking delays must not be negative", ErrInvalidConfig)
	}
	if strings.TrimSpace(c.Addr) == "" {
		return fmt.Errorf("%w: empty listen address", ErrInvalidConfig)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// ThinkingDelay is how long the computer pretends to think at difficulty d.
func (c Config) ThinkingDelay(d engine.Difficulty) time.Duration {
	return c.ThinkingDelayBase + time.Duration(d)*c.ThinkingDelayPerLevel
}

// NewLogger builds a JSON logger, or a console logger in development mode.
func (c Config) NewLogger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	zc := zap.NewProductionConfig()
	if c.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}
