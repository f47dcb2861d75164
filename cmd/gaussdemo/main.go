package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"
	"golang.org/x/xerrors"

	"github.com/virtualscript/gauss"
)

func loadConfig(path string) (gauss.Config, error) {
	cfg := gauss.DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, xerrors.Errorf("reading config %s: %w", path, err)
	}
	if cfg.N < 0 {
		return cfg, xerrors.Errorf("config %s: n must not be negative, got %d", path, cfg.N)
	}
	return cfg, nil
}

func main() {
	var (
		configPath = flag.String("config", "", "TOML file overriding mean, sd and n")
		key        = flag.String("key", "", "agent key seeding the random source (default: a fresh key)")
	)
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	k := *key
	if k == "" {
		k = uuid.NewString()
	}
	gauss.Demo(cfg, gauss.SourceForKey(k), func(text string) {
		fmt.Println(text)
	})
}
