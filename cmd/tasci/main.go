// Package main is the entry point for the tasci editor.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/tasci/internal/app"
	"github.com/dshills/tasci/internal/config"
	"github.com/dshills/tasci/internal/logging"
	"github.com/dshills/tasci/internal/renderer/backend"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type flags struct {
	configPath string
	logLevel   string
	logFile    string
	noLSP      bool
	files      []string
}

func main() {
	os.Exit(run())
}

func run() int {
	f := parseFlags()

	cfg, err := config.Load(config.Options{Path: f.configPath})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: loading configuration: %v\n", err)
		return 1
	}
	if f.logLevel != "" {
		cfg.Logging.Level = f.logLevel
	}
	if f.logFile != "" {
		cfg.Logging.File = f.logFile
	}

	logPath := cfg.LogPath()
	if logPath == "" {
		logPath = logging.DefaultPath()
	}
	logger, err := logging.OpenFile(logPath, logging.ParseLevel(cfg.Logging.Level))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v; logging disabled\n", err)
		logger = logging.Discard
	}
	defer logger.Close()
	logging.Set(logger)
	if cfg.Source != "" {
		logger.Info("configuration loaded from %s", cfg.Source)
	}

	term, err := backend.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}

	application, err := app.New(app.Options{
		Config:  cfg,
		Logger:  logger,
		Backend: term,
		Files:   f.files,
		NoLSP:   f.noLSP,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	defer application.Shutdown()

	// Handle signals for graceful shutdown
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		application.Shutdown()
	}()

	if err := application.Run(); err != nil {
		if errors.Is(err, app.ErrQuit) {
			return 0
		}
		logger.Error("%v", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags() flags {
	var f flags
	var showVersion bool

	flag.StringVar(&f.configPath, "config", "", "Path to configuration file")
	flag.StringVar(&f.configPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&f.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.StringVar(&f.logFile, "log-file", "", "Log file path")
	flag.BoolVar(&f.noLSP, "no-lsp", false, "Disable language servers")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "tasci - terminal multi-document code editor\n\n")
		fmt.Fprintf(os.Stderr, "Usage: tasci [options] [files...]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nKeys:\n")
		fmt.Fprintf(os.Stderr, "  Ctrl+S save  Ctrl+E save as  Ctrl+O open  Ctrl+N new  Ctrl+W close\n")
		fmt.Fprintf(os.Stderr, "  Ctrl+T/Ctrl+P next/previous tab  Ctrl+F find  Ctrl+R replace\n")
		fmt.Fprintf(os.Stderr, "  Ctrl+G go to line  Ctrl+K cut line  Ctrl+U paste  Ctrl+Space complete\n")
		fmt.Fprintf(os.Stderr, "  Ctrl+L line numbers  Ctrl+B status bar  Ctrl+Q quit\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("tasci %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	switch f.logLevel {
	case "", "debug", "info", "warn", "error":
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", f.logLevel)
		os.Exit(1)
	}

	f.files = flag.Args()
	return f
}
