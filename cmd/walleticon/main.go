package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/BeatGlow/walleticon"
	"github.com/BeatGlow/walleticon/internal/config"
)

func main() {
	cfg, err := config.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		fatal(err)
	}

	if _, err = walleticon.Generate(walleticon.Options{
		Dir:         cfg.OutputDir,
		Sizes:       cfg.Sizes,
		Supersample: cfg.Supersample,
		Sheet:       cfg.Sheet,
		ICO:         cfg.ICO,
		Out:         os.Stdout,
	}); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "fatal: "+err.Error())
	os.Exit(1)
}
