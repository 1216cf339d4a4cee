// Package config loads the icon generator configuration from the environment and flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Errors
var (
	ErrInvalidSize        = errors.New("config: icon size must be positive")
	ErrInvalidSupersample = errors.New("config: supersample factor must be at least 1")
)

// Config holds the generator configuration.
type Config struct {
	OutputDir   string `env:"WALLETICON_OUTPUT_DIR" envDefault:"public/icons"`
	Sizes       []int  `env:"WALLETICON_SIZES" envSeparator:"," envDefault:"16,32,48,128"`
	Supersample int    `env:"WALLETICON_SUPERSAMPLE" envDefault:"1"`
	Sheet       bool   `env:"WALLETICON_SHEET"`
	ICO         bool   `env:"WALLETICON_ICO"`
}

// ParseConfig reads the environment, then lets flags in args override it.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	sizes := sizeList(cfg.Sizes)
	fs.StringVar(&cfg.OutputDir, "out", cfg.OutputDir, "output directory (default: WALLETICON_OUTPUT_DIR or public/icons)")
	fs.Var(&sizes, "sizes", "comma-separated icon sizes in pixels (default: WALLETICON_SIZES or 16,32,48,128)")
	fs.IntVar(&cfg.Supersample, "supersample", cfg.Supersample, "render at this multiple of each size and scale down")
	fs.BoolVar(&cfg.Sheet, "sheet", cfg.Sheet, "also write a preview.png sheet of all icons")
	fs.BoolVar(&cfg.ICO, "ico", cfg.ICO, "also write a favicon.ico bundling all icons")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	cfg.Sizes = sizes

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the sizes and supersample factor.
func (cfg Config) Validate() error {
	for _, size := range cfg.Sizes {
		if size <= 0 {
			return fmt.Errorf("%w: %d", ErrInvalidSize, size)
		}
	}
	if cfg.Supersample < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidSupersample, cfg.Supersample)
	}
	return nil
}

// sizeList is a flag.Value for comma-separated sizes.
type sizeList []int

func (l *sizeList) String() string {
	if l == nil {
		return ""
	}
	parts := make([]string, len(*l))
	for i, size := range *l {
		parts[i] = strconv.Itoa(size)
	}
	return strings.Join(parts, ",")
}

func (l *sizeList) Set(value string) error {
	var sizes sizeList
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		size, err := strconv.Atoi(part)
		if err != nil {
			return fmt.Errorf("invalid size %q", part)
		}
		sizes = append(sizes, size)
	}
	*l = sizes
	return nil
}
