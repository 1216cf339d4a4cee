package config

import (
	"errors"
	"flag"
	"io"
	"reflect"
	"strings"
	"testing"
)

func testFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("walleticon", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig(testFlagSet(), nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	want := Config{
		OutputDir:   "public/icons",
		Sizes:       []int{16, 32, 48, 128},
		Supersample: 1,
	}
	if !reflect.DeepEqual(cfg, want) {
		t.Fatalf("expected %+v, got %+v", want, cfg)
	}
}

func TestParseConfigEnv(t *testing.T) {
	t.Setenv("WALLETICON_OUTPUT_DIR", "build/icons")
	t.Setenv("WALLETICON_SIZES", "24,64")
	t.Setenv("WALLETICON_SUPERSAMPLE", "4")
	t.Setenv("WALLETICON_SHEET", "true")
	t.Setenv("WALLETICON_ICO", "1")

	cfg, err := ParseConfig(testFlagSet(), nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	want := Config{
		OutputDir:   "build/icons",
		Sizes:       []int{24, 64},
		Supersample: 4,
		Sheet:       true,
		ICO:         true,
	}
	if !reflect.DeepEqual(cfg, want) {
		t.Fatalf("expected %+v, got %+v", want, cfg)
	}
}

func TestParseConfigFlagsOverrideEnv(t *testing.T) {
	t.Setenv("WALLETICON_OUTPUT_DIR", "build/icons")
	t.Setenv("WALLETICON_SIZES", "24,64")

	cfg, err := ParseConfig(testFlagSet(), []string{"-out", "dist", "-sizes", "16, 256", "-sheet"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.OutputDir != "dist" {
		t.Errorf("expected output dir dist, got %q", cfg.OutputDir)
	}
	if !reflect.DeepEqual(cfg.Sizes, []int{16, 256}) {
		t.Errorf("expected sizes [16 256], got %v", cfg.Sizes)
	}
	if !cfg.Sheet {
		t.Error("expected sheet to be enabled")
	}
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		Name string
		Env  map[string]string
		Args []string
		Want error
		Text string
	}{
		{Name: "zero-size", Args: []string{"-sizes", "16,0"}, Want: ErrInvalidSize},
		{Name: "negative-size", Env: map[string]string{"WALLETICON_SIZES": "-8"}, Want: ErrInvalidSize},
		{Name: "supersample", Args: []string{"-supersample", "0"}, Want: ErrInvalidSupersample},
		{Name: "bad-size-flag", Args: []string{"-sizes", "big"}, Text: "invalid size"},
		{Name: "bad-env", Env: map[string]string{"WALLETICON_SUPERSAMPLE": "lots"}, Text: "parse env:"},
	}
	for _, test := range tests {
		t.Run(test.Name, func(it *testing.T) {
			for k, v := range test.Env {
				it.Setenv(k, v)
			}
			_, err := ParseConfig(testFlagSet(), test.Args)
			if err == nil {
				it.Fatal("expected error")
			}
			if test.Want != nil && !errors.Is(err, test.Want) {
				it.Errorf("expected %v, got %v", test.Want, err)
			}
			if test.Text != "" && !strings.Contains(err.Error(), test.Text) {
				it.Errorf("expected error containing %q, got %v", test.Text, err)
			}
		})
	}
}

func TestSizeListString(t *testing.T) {
	l := sizeList{16, 32}
	if v := l.String(); v != "16,32" {
		t.Errorf("expected 16,32, got %q", v)
	}
}
