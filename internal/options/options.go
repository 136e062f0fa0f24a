// Package options turns a raw argument vector into a validated Config.
// The grammar is positional and decided by token count; see Parse.
package options

import (
	"errors"
	"fmt"
	"slices"
)

const (
	// HelpTrigger is the single argument that prints the help menu.
	HelpTrigger = "minigrep_help"
	// MetaTrigger is the first argument of the version form.
	MetaTrigger = "minigrep"
)

// ErrInvalidArguments is returned for any invocation shape Parse does not accept.
var ErrInvalidArguments = errors.New("invalid arguments")

// Mode selects which path of the program runs.
type Mode int

const (
	ModeSearch Mode = iota
	ModeHelp
	ModeVersion
	ModeStats
)

// String returns the lowercase name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeHelp:
		return "help"
	case ModeVersion:
		return "version"
	case ModeStats:
		return "stats"
	default:
		return "search"
	}
}

// Config is the parsed invocation. It is returned by value and never
// modified after Parse returns.
type Config struct {
	Query  string
	Target string
	Mode   Mode

	IgnoreCase  bool
	InvertMatch bool
	LineNumbers bool
	QueryCount  bool
	LineCount   bool
}

// flag is a recognized switch with its short and long spelling.
type flag struct {
	short string
	long  string
}

func (f flag) in(tokens []string) bool {
	return slices.Contains(tokens, f.short) || slices.Contains(tokens, f.long)
}

func (f flag) is(token string) bool {
	return token == f.short || token == f.long
}

var (
	flagHelp        = flag{"-h", "--help"}
	flagVersion     = flag{"-v", "--version"}
	flagStats       = flag{"-S", "--stats"}
	flagIgnoreCase  = flag{"-i", "--ignore-case"}
	flagLineNumber  = flag{"-n", "--line-number"}
	flagQueryCount  = flag{"-c", "--query-count"}
	flagLineCount   = flag{"-lc", "--line-count"}
	flagInvertMatch = flag{"-I", "--invert-match"}
)

// Parse interprets tokens, where tokens[0] is the program name.
//
//	minigrep_help                  help
//	minigrep -v|--version          version
//	<target> -S|--stats            stats
//	<query> <target>               search
//	<query> <target> flags...      search (or stats when -S is present)
//
// Flags after the target are independent toggles; unknown ones are ignored.
func Parse(tokens []string) (Config, error) {
	switch {
	case len(tokens) == 2:
		if tokens[1] == HelpTrigger || flagHelp.is(tokens[1]) {
			return Config{Mode: ModeHelp}, nil
		}
	case len(tokens) == 3:
		if tokens[1] == MetaTrigger && flagVersion.is(tokens[2]) {
			return Config{Mode: ModeVersion}, nil
		}
		if flagStats.is(tokens[2]) {
			return Config{Mode: ModeStats, Target: tokens[1]}, nil
		}
		if tokens[1] != MetaTrigger {
			return Config{Mode: ModeSearch, Query: tokens[1], Target: tokens[2]}, nil
		}
	case len(tokens) >= 4:
		return parseFlags(tokens[1], tokens[2], tokens[3:]), nil
	}
	return Config{}, usageError(tokens)
}

func parseFlags(query, target string, rest []string) Config {
	if flagStats.in(rest) {
		return Config{Mode: ModeStats, Target: target}
	}
	return Config{
		Mode:        ModeSearch,
		Query:       query,
		Target:      target,
		IgnoreCase:  flagIgnoreCase.in(rest),
		InvertMatch: flagInvertMatch.in(rest),
		LineNumbers: flagLineNumber.in(rest),
		QueryCount:  flagQueryCount.in(rest),
		LineCount:   flagLineCount.in(rest),
	}
}

func usageError(tokens []string) error {
	return fmt.Errorf("%w: unknown command (%d arguments), run '%s %s' to learn more",
		ErrInvalidArguments, max(len(tokens)-1, 0), MetaTrigger, HelpTrigger)
}
