package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/danmuck/gutters/internal/relay"
)

type fileConfig struct {
	Name   string `toml:"name"`
	Listen string `toml:"listen"`
	Admin  string `toml:"admin"`
	Echo   bool   `toml:"echo"`
}

func loadServiceConfig(path string) (relay.Config, error) {
	cfg := relay.DefaultConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return relay.Config{}, fmt.Errorf("load gutterd config: %w", err)
	}

	if meta.IsDefined("name") {
		if name := strings.TrimSpace(raw.Name); name != "" {
			cfg.Name = name
		}
	}
	if meta.IsDefined("listen") {
		if addr := strings.TrimSpace(raw.Listen); addr != "" {
			cfg.ListenAddr = addr
		}
	}
	if meta.IsDefined("admin") {
		cfg.AdminAddr = strings.TrimSpace(raw.Admin)
	}
	if meta.IsDefined("echo") {
		cfg.Echo = raw.Echo
	}

	if err := cfg.Validate(); err != nil {
		return relay.Config{}, err
	}
	return cfg, nil
}
