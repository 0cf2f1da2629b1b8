// Package main is the entry point for tabletop.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/dshills/tabletop/internal/app"
	"github.com/dshills/tabletop/internal/config"
	"github.com/dshills/tabletop/internal/logging"
	"github.com/dshills/tabletop/internal/renderer/backend"
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
}

func main() {
	os.Exit(run())
}

func run() int {
	f := parseFlags()

	logger, closeLog, err := openLogger(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer closeLog()

	application, err := app.New(app.Options{
		ConfigPath: f.configPath,
		LogLevel:   f.logLevel,
		Logger:     logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	defer application.Stop()

	term, err := backend.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	if err := application.SetBackend(term); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to set backend: %v\n", err)
		return 1
	}

	// Handle signals for graceful shutdown
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signals)

	go func() {
		sig := <-signals
		logger.Info("received %v", sig)
		application.Stop()
	}()

	if err := application.Run(); err != nil {
		logger.Error("exit: %v", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags() flags {
	var f flags
	var showVersion bool
	var showHelp bool

	flag.StringVar(&f.configPath, "config", "", "Path to configuration file (.toml, .yaml)")
	flag.StringVar(&f.configPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&f.logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides the config file")
	flag.StringVar(&f.logFile, "log-file", "", "Log file path")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Tabletop - terminal companion for tabletop role-playing games\n\n")
		fmt.Fprintf(os.Stderr, "Usage: tabletop [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  tabletop                         Use the default config file\n")
		fmt.Fprintf(os.Stderr, "  tabletop -c ./tabletop.yaml      Use a specific config file\n")
		fmt.Fprintf(os.Stderr, "  tabletop -log-level debug        Verbose logging\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("Tabletop %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	if f.logLevel != "" {
		if _, err := logging.ParseLevel(f.logLevel); err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", f.logLevel)
			os.Exit(1)
		}
	}

	if f.configPath == "" {
		if path, err := config.DefaultPath(); err == nil {
			f.configPath = path
		}
	}

	return f
}

// openLogger opens the log file named by the flag, the config file or the
// default location, in that order.
func openLogger(f flags) (*logging.Logger, func(), error) {
	path := f.logFile
	if path == "" {
		if cfg, err := config.Load(f.configPath); err == nil && cfg.Log.File != "" {
			path = cfg.Log.File
			if !filepath.IsAbs(path) && cfg.Path != "" {
				path = filepath.Join(filepath.Dir(cfg.Path), path)
			}
		}
	}
	if path == "" {
		p, err := logging.DefaultPath()
		if err != nil {
			return logging.Discard(), func() {}, nil
		}
		path = p
	}

	file, err := logging.OpenFile(path)
	if err != nil {
		return nil, nil, err
	}
	logger := logging.New(logging.Config{Output: file})
	return logger, func() { _ = file.Close() }, nil
}
