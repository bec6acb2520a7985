package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"moonlit-scene/app"
	"moonlit-scene/config"
	"moonlit-scene/logging"
	"moonlit-scene/renderer"
	"moonlit-scene/window"
)

type options struct {
	configPath string
	layout     string
	shading    string
	width      int
	height     int
	dev        bool
}

func parseFlags() options {
	var opts options
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.StringVar(&opts.configPath, "config", "", "Path to a TOML configuration file")
	flag.StringVar(&opts.layout, "layout", "", "Scene layout: tree or house")
	flag.StringVar(&opts.shading, "shading", "", "Initial shading style: gouraud, phong or toon")
	flag.IntVar(&opts.width, "width", 0, "Window width in pixels")
	flag.IntVar(&opts.height, "height", 0, "Window height in pixels")
	flag.BoolVar(&opts.dev, "dev", false, "Human-readable debug logging")
	flag.Parse()
	return opts
}

// loadConfig layers the file, when given, and the command line over the defaults.
func loadConfig(opts options) (config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		var err error
		if cfg, err = config.Load(opts.configPath); err != nil {
			return cfg, err
		}
	}
	if opts.layout != "" {
		cfg.Scene.Layout = opts.layout
	}
	if opts.shading != "" {
		cfg.Scene.Shading = opts.shading
	}
	if opts.width > 0 {
		cfg.Window.Width = opts.width
	}
	if opts.height > 0 {
		cfg.Window.Height = opts.height
	}
	if opts.dev {
		cfg.Log.Dev = true
		cfg.Log.Level = "debug"
	}
	return cfg, cfg.Validate()
}

func main() {
	cfg, err := loadConfig(parseFlags())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logging: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Error("Exiting", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(logging.Context(context.Background(), logger), os.Interrupt, syscall.SIGTERM)
	defer stop()

	win, err := window.New(window.Config{
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Title:      cfg.Window.Title,
		Resizable:  cfg.Window.Resizable,
		VSync:      cfg.Window.VSync,
		Fullscreen: cfg.Window.Fullscreen,
	})
	if err != nil {
		return err
	}
	win.SetTitle(fmt.Sprintf("%s (%s)", cfg.Window.Title, cfg.Scene.Layout))

	width, height := win.FramebufferSize()
	renderLog, _ := logging.SubFrom(ctx, "renderer")
	engine, err := renderer.NewRenderEngine(width, height, renderLog)
	if err != nil {
		win.Destroy()
		return err
	}

	a, err := app.New(cfg, win, engine, logging.From(ctx))
	if err != nil {
		engine.Destroy()
		win.Destroy()
		return err
	}

	runErr := a.Run(ctx)
	if err := a.Close(); err != nil {
		logger.Warn("Shutdown", zap.Error(err))
	}
	return runErr
}
