package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		want   Config
	}{
		{
			name:   "help trigger",
			tokens: []string{"minigrep", "minigrep_help"},
			want:   Config{Mode: ModeHelp},
		},
		{
			name:   "help long flag",
			tokens: []string{"minigrep", "--help"},
			want:   Config{Mode: ModeHelp},
		},
		{
			name:   "version short",
			tokens: []string{"minigrep", "minigrep", "-v"},
			want:   Config{Mode: ModeVersion},
		},
		{
			name:   "version long",
			tokens: []string{"minigrep", "minigrep", "--version"},
			want:   Config{Mode: ModeVersion},
		},
		{
			name:   "stats three tokens",
			tokens: []string{"minigrep", "poem.txt", "-S"},
			want:   Config{Mode: ModeStats, Target: "poem.txt"},
		},
		{
			name:   "stats among flags",
			tokens: []string{"minigrep", "the", "poem.txt", "-n", "--stats"},
			want:   Config{Mode: ModeStats, Target: "poem.txt"},
		},
		{
			name:   "plain search",
			tokens: []string{"minigrep", "hello", "hello.txt"},
			want:   Config{Mode: ModeSearch, Query: "hello", Target: "hello.txt"},
		},
		{
			name:   "version flag without meta trigger is a search",
			tokens: []string{"minigrep", "hello", "-v"},
			want:   Config{Mode: ModeSearch, Query: "hello", Target: "-v"},
		},
		{
			name:   "all flags short",
			tokens: []string{"minigrep", "hello", "hello.txt", "-i", "-n", "-c", "-lc", "-I"},
			want: Config{
				Mode: ModeSearch, Query: "hello", Target: "hello.txt",
				IgnoreCase: true, LineNumbers: true, QueryCount: true, LineCount: true, InvertMatch: true,
			},
		},
		{
			name:   "long flags in any order",
			tokens: []string{"minigrep", "hello", "hello.txt", "--query-count", "--ignore-case"},
			want: Config{
				Mode: ModeSearch, Query: "hello", Target: "hello.txt",
				IgnoreCase: true, QueryCount: true,
			},
		},
		{
			name:   "unknown flags are ignored",
			tokens: []string{"minigrep", "hello", "hello.txt", "--bogus"},
			want:   Config{Mode: ModeSearch, Query: "hello", Target: "hello.txt"},
		},
		{
			name:   "flags are case sensitive",
			tokens: []string{"minigrep", "hello", "hello.txt", "-N", "-LC"},
			want:   Config{Mode: ModeSearch, Query: "hello", Target: "hello.txt"},
		},
		{
			name:   "empty query",
			tokens: []string{"minigrep", "", "hello.txt"},
			want:   Config{Mode: ModeSearch, Query: "", Target: "hello.txt"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.tokens)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
	}{
		{"no tokens", nil},
		{"program name only", []string{"minigrep"}},
		{"single non help token", []string{"minigrep", "hello"}},
		{"meta trigger without version flag", []string{"minigrep", "minigrep", "-x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.tokens)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidArguments))
			assert.Contains(t, err.Error(), HelpTrigger)
		})
	}
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "search", ModeSearch.String())
	assert.Equal(t, "help", ModeHelp.String())
	assert.Equal(t, "version", ModeVersion.String())
	assert.Equal(t, "stats", ModeStats.String())
}
