// Package main is the entry point for the minigrep tool.
// minigrep prints the lines of a file that contain (or do not contain) a
// query string, or a word frequency report of the whole file.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/f4ah6o/minigrep-go/internal/diag"
	"github.com/f4ah6o/minigrep-go/internal/loader"
	"github.com/f4ah6o/minigrep-go/internal/options"
	"github.com/f4ah6o/minigrep-go/internal/report"
	"github.com/f4ah6o/minigrep-go/internal/search"
	"github.com/f4ah6o/minigrep-go/internal/settings"
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

// run executes one invocation and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := options.Parse(args)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	prefs, found, settingsErr := settings.Load()
	if !prefs.Output.Color {
		color.NoColor = true
	}

	logger, err := diag.NewLogger(prefs.Log.Level, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	defer logger.Sync()

	if settingsErr != nil {
		logger.Warn("ignoring settings file", zap.Error(settingsErr))
	}
	logger.Debug("invocation parsed",
		zap.Stringer("mode", cfg.Mode),
		zap.Bool("settings_file", found),
		zap.String("format", prefs.Output.Format))

	switch cfg.Mode {
	case options.ModeHelp:
		report.Help(stdout)
		return 0
	case options.ModeVersion:
		report.Version(stdout)
		return 0
	}

	content, err := loader.New(loader.Options{HTML: prefs.Input.HTML}, logger).Load(cfg.Target)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	renderer := report.New(stdout, prefs.Output.Format)
	if cfg.Mode == options.ModeStats {
		err = renderer.Stats(cfg.Target, search.Stats(content))
	} else {
		res := search.Scan(cfg, content)
		logger.Debug("scan finished",
			zap.Int("matching_lines", res.MatchingLines),
			zap.Int("occurrences", res.Occurrences))
		err = renderer.Search(cfg.Target, cfg, res)
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}
