// Package report renders scan results for people (colored text) and for
// tools (JSON or YAML). It decides nothing about which lines matched.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/f4ah6o/minigrep-go/internal/options"
	"github.com/f4ah6o/minigrep-go/internal/search"
	"github.com/f4ah6o/minigrep-go/internal/settings"
)

// topWords is how many frequency entries the text stats view prints.
const topWords = 10

var (
	// ANSI colors for terminal output
	colorFile   = color.New(color.FgYellow)
	colorLineNo = color.New(color.FgCyan)
	colorTotal  = color.New(color.FgGreen, color.Bold)
	colorTitle  = color.New(color.FgYellow, color.Bold)
	colorLabel  = color.New(color.FgCyan, color.Bold)
	colorFlag   = color.New(color.FgBlue, color.Bold)
)

// Renderer writes results to w in one of the settings formats.
type Renderer struct {
	w      io.Writer
	format string
}

// New creates a Renderer. Unknown formats fall back to text.
func New(w io.Writer, format string) *Renderer {
	switch format {
	case settings.FormatJSON, settings.FormatYAML:
	default:
		format = settings.FormatText
	}
	return &Renderer{w: w, format: format}
}

// searchDocument is the machine-readable form of a search.
type searchDocument struct {
	Target        string `json:"target" yaml:"target"`
	Query         string `json:"query" yaml:"query"`
	search.Result `yaml:",inline"`
}

// statsDocument is the machine-readable form of a stats report.
type statsDocument struct {
	Target      string             `json:"target" yaml:"target"`
	Lines       int                `json:"lines" yaml:"lines"`
	Characters  int                `json:"characters" yaml:"characters"`
	Words       int                `json:"words" yaml:"words"`
	Frequencies []search.WordCount `json:"frequencies" yaml:"frequencies"`
}

// Search prints the records of res. Line numbers are shown 1-based.
func (r *Renderer) Search(target string, cfg options.Config, res search.Result) error {
	if r.format != settings.FormatText {
		return r.encode(searchDocument{Target: target, Query: cfg.Query, Result: res})
	}

	colorFile.Fprintf(r.w, "\n%s:\n", target)

	if len(res.Records) == 0 {
		fmt.Fprintln(r.w, "No results")
	}

	for _, rec := range res.Records {
		if cfg.LineNumbers {
			colorLineNo.Fprintf(r.w, "%d", rec.Index+1)
			fmt.Fprintf(r.w, ":  %s\n", rec.Text)
		} else {
			fmt.Fprintln(r.w, rec.Text)
		}
	}

	if cfg.QueryCount || cfg.LineCount {
		fmt.Fprintln(r.w)
	}
	if cfg.QueryCount {
		colorTotal.Fprintf(r.w, "Count: %d\n", res.Occurrences)
	}
	if cfg.LineCount {
		colorTotal.Fprintf(r.w, "Lines: %d\n", res.MatchingLines)
	}
	return nil
}

// Stats prints a word frequency report.
func (r *Renderer) Stats(target string, stats search.WordStats) error {
	if r.format != settings.FormatText {
		return r.encode(statsDocument{
			Target:      target,
			Lines:       stats.Lines,
			Characters:  stats.Characters,
			Words:       stats.Words(),
			Frequencies: stats.Top(0),
		})
	}

	colorFile.Fprintf(r.w, "\n%s:\n", target)
	colorLabel.Fprint(r.w, "Lines")
	fmt.Fprintf(r.w, ": %d\n", stats.Lines)
	colorLabel.Fprint(r.w, "Characters")
	fmt.Fprintf(r.w, ": %d\n", stats.Characters)
	colorLabel.Fprint(r.w, "Words")
	fmt.Fprintf(r.w, ": %d (%d unique)\n", stats.Words(), len(stats.Frequencies))

	top := stats.Top(topWords)
	if len(top) == 0 {
		return nil
	}

	colorTitle.Fprintf(r.w, "\nTop %d words:\n", len(top))
	width := 0
	for _, wc := range top {
		width = max(width, len(wc.Word))
	}
	for _, wc := range top {
		fmt.Fprintf(r.w, "   %-*s  %d\n", width, wc.Word, wc.Count)
	}
	return nil
}

func (r *Renderer) encode(v any) error {
	switch r.format {
	case settings.FormatYAML:
		encoder := yaml.NewEncoder(r.w)
		encoder.SetIndent(2)
		if err := encoder.Encode(v); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		return encoder.Close()
	default:
		encoder := json.NewEncoder(r.w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(v); err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		return nil
	}
}
