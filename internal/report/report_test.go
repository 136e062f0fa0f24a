package report

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/f4ah6o/minigrep-go/internal/options"
	"github.com/f4ah6o/minigrep-go/internal/search"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

const content = "hello world\nHELLO again\ngoodbye\n"

func TestSearchText(t *testing.T) {
	tests := []struct {
		name string
		cfg  options.Config
		want string
	}{
		{
			name: "plain",
			cfg:  options.Config{Query: "hello"},
			want: "\nnotes.txt:\nhello world\n",
		},
		{
			name: "line numbers and counts",
			cfg:  options.Config{Query: "hello", IgnoreCase: true, LineNumbers: true, QueryCount: true, LineCount: true},
			want: "\nnotes.txt:\n1:  hello world\n2:  HELLO again\n\nCount: 2\nLines: 2\n",
		},
		{
			name: "no results",
			cfg:  options.Config{Query: "zebra", QueryCount: true},
			want: "\nnotes.txt:\nNo results\n\nCount: 0\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := New(&buf, "text").Search("notes.txt", tt.cfg, search.Scan(tt.cfg, content))
			require.NoError(t, err)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestSearchJSON(t *testing.T) {
	cfg := options.Config{Query: "hello", IgnoreCase: true}
	var buf bytes.Buffer
	require.NoError(t, New(&buf, "json").Search("notes.txt", cfg, search.Scan(cfg, content)))

	var doc struct {
		Target        string          `json:"target"`
		Query         string          `json:"query"`
		Records       []search.Record `json:"records"`
		Occurrences   int             `json:"occurrences"`
		MatchingLines int             `json:"matching_lines"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "notes.txt", doc.Target)
	assert.Equal(t, "hello", doc.Query)
	assert.Equal(t, 2, doc.Occurrences)
	assert.Equal(t, 2, doc.MatchingLines)
	require.Len(t, doc.Records, 2)
	assert.Equal(t, "HELLO again", doc.Records[1].Text)
}

func TestStatsYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(&buf, "yaml").Stats("cats.txt", search.Stats("The cat sat. The Cat ran.")))

	var doc struct {
		Target      string             `yaml:"target"`
		Lines       int                `yaml:"lines"`
		Characters  int                `yaml:"characters"`
		Words       int                `yaml:"words"`
		Frequencies []search.WordCount `yaml:"frequencies"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "cats.txt", doc.Target)
	assert.Equal(t, 1, doc.Lines)
	assert.Equal(t, 20, doc.Characters)
	assert.Equal(t, 6, doc.Words)
	require.Len(t, doc.Frequencies, 4)
	assert.Equal(t, search.WordCount{Word: "cat", Count: 2}, doc.Frequencies[0])
	assert.Equal(t, search.WordCount{Word: "the", Count: 2}, doc.Frequencies[1])
}

func TestStatsText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(&buf, "text").Stats("cats.txt", search.Stats("The cat sat. The Cat ran.")))

	out := buf.String()
	assert.Contains(t, out, "cats.txt:")
	assert.Contains(t, out, "Lines: 1\n")
	assert.Contains(t, out, "Characters: 20\n")
	assert.Contains(t, out, "Words: 6 (4 unique)\n")
	assert.Contains(t, out, "Top 4 words:")
	assert.Contains(t, out, "   the   2\n")
}

func TestUnknownFormatFallsBackToText(t *testing.T) {
	var buf bytes.Buffer
	cfg := options.Config{Query: "goodbye"}
	require.NoError(t, New(&buf, "xml").Search("notes.txt", cfg, search.Scan(cfg, content)))
	assert.Equal(t, "\nnotes.txt:\ngoodbye\n", buf.String())
}

func TestHelp(t *testing.T) {
	var buf bytes.Buffer
	Help(&buf)

	out := buf.String()
	for _, flag := range []string{"--ignore-case", "--invert-match", "--line-number", "--query-count", "--line-count", "--stats", "--version"} {
		assert.Contains(t, out, flag)
	}
	assert.Contains(t, out, "Usage: minigrep")
}

func TestVersion(t *testing.T) {
	var buf bytes.Buffer
	Version(&buf)
	assert.Equal(t, "\nminigrep v"+Release+"\nMade by the minigrep-go authors\n"+Project+"\n", buf.String())
}
