// Command hemview builds a half-edge mesh from a model file and shows it as
// a wireframe, with boundary edges in their own colour.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/smasonuk/hemesh"
)

func main() {
	configPath := flag.String("config", "", "TOML file with viewer settings")
	width := flag.Int("width", 0, "window width, overrides the config file")
	height := flag.Int("height", 0, "window height, overrides the config file")
	verbose := flag.Bool("v", false, "log debug records")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] model.{dxf,obj,stl}\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	if *verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		slog.Error("could not load config", "error", err)
		os.Exit(1)
	}
	if *width > 0 {
		cfg.Width = *width
	}
	if *height > 0 {
		cfg.Height = *height
	}

	if err := run(flag.Arg(0), cfg); err != nil {
		slog.Error("hemview failed", "error", err)
		os.Exit(1)
	}
}

func run(fileName string, cfg Config) error {
	m, err := loadMesh(fileName)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("hemview - " + filepath.Base(fileName))
	return ebiten.RunGame(newViewer(m, cfg))
}

func loadMesh(fileName string) (*hemesh.Mesh[float64], error) {
	slog.Info("loading model", "file", fileName)
	g, err := hemesh.LoadFile[float64](fileName)
	if err != nil {
		return nil, err
	}

	m, err := g.Build()
	var nm *hemesh.NonManifoldError
	if errors.As(err, &nm) {
		slog.Error("edge shared by more than two faces",
			"origin", nm.Origin, "destination", nm.Destination, "face", nm.Face, "first", nm.Existing)
	}
	if err != nil {
		return nil, fmt.Errorf("could not build mesh from %s: %w", fileName, err)
	}

	slog.Info("built half-edge mesh", "stats", m.Stats())
	return m, nil
}
