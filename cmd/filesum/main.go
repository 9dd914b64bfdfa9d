package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"filesum/internal/adapters/editor"
	"filesum/internal/adapters/filesystem"
	"filesum/internal/adapters/tui"
	"filesum/internal/config"
	"filesum/internal/logging"
)

func main() {
	configFlag := flag.String("config", "", "config file (default $XDG_CONFIG_HOME/filesum/config.yaml)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: filesum [--config file] <file>\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*configFlag, flag.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configFile, path string) error {
	cfg, _, err := config.Load(config.LoadOptions{ConfigFile: configFile})
	if err != nil {
		return err
	}

	// Log output would tear the alt screen, so the TUI only logs to a file
	// when FILESUM_LOG_FILE is set.
	logger := logging.Discard()
	if logPath := os.Getenv("FILESUM_LOG_FILE"); logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return err
		}
		defer f.Close()
		if logger, err = logging.NewWithWriter(f, cfg.LogLevel); err != nil {
			return err
		}
	}

	// Initialize adapters
	resolver := filesystem.NewOSResolver(filesystem.WithLogger(logger))
	editorOpener := editor.NewOpener(cfg.Editor)

	// Create and run TUI app
	app := tui.NewApp(resolver, editorOpener, path)

	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
