package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"

	"solarsystem/internal/bodies"
	"solarsystem/internal/config"
	"solarsystem/internal/game"
)

func main() {
	configPath := flag.String("config", "", "JSON config file")
	bodiesPath := flag.String("bodies", "", "JSON body table, overrides the config's")
	width := flag.Int("width", 0, "window width override")
	height := flag.Int("height", 0, "window height override")
	flag.Parse()

	// Paths given on the command line are relative to where we were started.
	absolute(configPath)
	absolute(bodiesPath)

	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			os.Chdir(execDir)
		}
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatalf("Config: %v", err)
		}
	}
	if *bodiesPath != "" {
		cfg.Bodies = *bodiesPath
	}
	if *width > 0 {
		cfg.Window.Width = int32(*width)
	}
	if *height > 0 {
		cfg.Window.Height = int32(*height)
	}

	table := bodies.Default()
	if cfg.Bodies != "" {
		var err error
		if table, err = bodies.LoadTable(cfg.Bodies); err != nil {
			log.Fatalf("Config: %v", err)
		}
	}

	if err := game.New(cfg, table).Run(); err != nil {
		log.Fatalf("Solar system: %v", err)
	}
}

func absolute(path *string) {
	if *path == "" {
		return
	}
	if abs, err := filepath.Abs(*path); err == nil {
		*path = abs
	}
}
