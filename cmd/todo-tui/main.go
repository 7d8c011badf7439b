package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/clive/todo-tui/internal/config"
	"github.com/clive/todo-tui/internal/logging"
	"github.com/clive/todo-tui/internal/taskapi"
	"github.com/clive/todo-tui/internal/tui"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type flags struct {
	configPath string
	serverURL  string
	debug      bool
	noLoad     bool
	initConfig bool
}

func parseFlags(args []string) (flags, error) {
	var f flags
	fs := flag.NewFlagSet("todo-tui", flag.ContinueOnError)
	fs.StringVar(&f.configPath, "config", "", "Path to a config file (default: .todo-tui/config.yaml, then ~/.todo-tui/config.yaml)")
	fs.StringVar(&f.serverURL, "server", "", "Task store base URL")
	fs.BoolVar(&f.debug, "debug", false, "Show the activity panel and log at debug level")
	fs.BoolVar(&f.noLoad, "no-load", false, "Do not fetch existing tasks on start")
	fs.BoolVar(&f.initConfig, "init", false, "Write the effective config to ~/.todo-tui/config.yaml and exit")
	if err := fs.Parse(args); err != nil {
		return flags{}, err
	}
	return f, nil
}

// loadConfig resolves file, env, then flags, in that order of precedence
func loadConfig(f flags) (*config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}
	if f.serverURL != "" {
		cfg.ServerURL = f.serverURL
	}
	if f.debug {
		cfg.Log.Level = "debug"
	}
	if f.noLoad {
		cfg.LoadOnStart = false
	}
	if cfg.Log.File == "" {
		path, err := config.DefaultLogFile()
		if err != nil {
			return nil, fmt.Errorf("resolve log file: %w", err)
		}
		cfg.Log.File = path
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func run(args []string, stdout io.Writer) error {
	f, err := parseFlags(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	cfg, err := loadConfig(f)
	if err != nil {
		return err
	}

	if f.initConfig {
		path, err := config.SaveToGlobal(cfg)
		if err != nil {
			return fmt.Errorf("save config: %w", err)
		}
		fmt.Fprintf(stdout, "Wrote %s\n", path)
		return nil
	}

	logger, closer, err := logging.New(logging.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
	})
	if err != nil {
		return err
	}
	defer closer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := taskapi.NewClient(cfg.ServerURL, cfg.Timeout).WithLogger(logger)
	logger.Info("starting", "server", client.BaseURL(), "timeout", cfg.Timeout, "load_on_start", cfg.LoadOnStart)

	p := tea.NewProgram(
		tui.NewModel(ctx, client, tui.Options{
			ServerURL:   client.BaseURL(),
			LoadOnStart: cfg.LoadOnStart,
			Debug:       f.debug,
			Logger:      logger,
		}),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		logger.Error("program exited", "error", err)
		return fmt.Errorf("running program: %w", err)
	}
	logger.Info("stopped")
	return nil
}
