// Package search implements the line scanning algorithms: exact,
// case-insensitive and inverted substring matching, plus word frequency
// statistics. All functions are pure and safe for concurrent use.
package search

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/f4ah6o/minigrep-go/internal/options"
)

// Lines splits content into records on "\n", dropping one trailing "\r"
// per line. A final newline does not produce an empty record.
func Lines(content string) []Record {
	var records []Record
	for i := 0; len(content) > 0; i++ {
		line, rest, found := strings.Cut(content, "\n")
		if !found {
			rest = ""
		}
		records = append(records, Record{Index: i, Text: strings.TrimSuffix(line, "\r")})
		content = rest
	}
	return records
}

// Scan runs the algorithm selected by cfg. IgnoreCase wins over
// InvertMatch; with neither set the exact match is used.
func Scan(cfg options.Config, content string) Result {
	switch {
	case cfg.IgnoreCase:
		return SearchCaseInsensitive(cfg.Query, content)
	case cfg.InvertMatch:
		return SearchInverted(cfg.Query, content)
	default:
		return Search(cfg.Query, content)
	}
}

// Search returns the lines containing query. Occurrences counts
// non-overlapping matches, so "aa" in "aaa" counts once.
func Search(query, content string) Result {
	return scan(content, func(line string) (bool, int) {
		if !strings.Contains(line, query) {
			return false, 0
		}
		return true, countOccurrences(line, query)
	})
}

// SearchCaseInsensitive is Search with both sides lowercased.
func SearchCaseInsensitive(query, content string) Result {
	query = strings.ToLower(query)
	return scan(content, func(line string) (bool, int) {
		line = strings.ToLower(line)
		if !strings.Contains(line, query) {
			return false, 0
		}
		return true, countOccurrences(line, query)
	})
}

// SearchInverted returns the lines that do not contain query.
// Occurrences is always zero.
func SearchInverted(query, content string) Result {
	return scan(content, func(line string) (bool, int) {
		return !strings.Contains(line, query), 0
	})
}

func scan(content string, match func(line string) (bool, int)) Result {
	var res Result
	for _, rec := range Lines(content) {
		ok, n := match(rec.Text)
		if !ok {
			continue
		}
		res.Records = append(res.Records, rec)
		res.Occurrences += n
	}
	res.MatchingLines = len(res.Records)
	return res
}

// countOccurrences counts non-overlapping matches left to right. An empty
// query matches at every rune boundary: rune length + 1.
func countOccurrences(line, query string) int {
	if query == "" {
		return utf8.RuneCountInString(line) + 1
	}
	return strings.Count(line, query)
}

// Stats lowercases content, splits it on whitespace and counts words.
// Characters is the sum of word lengths in runes, so whitespace is excluded.
func Stats(content string) WordStats {
	stats := WordStats{
		Frequencies: make(map[string]int),
		Lines:       len(Lines(content)),
	}
	for _, word := range strings.Fields(strings.ToLower(content)) {
		stats.Frequencies[word]++
		stats.Characters += utf8.RuneCountInString(word)
	}
	return stats
}

// Words returns the total number of words counted.
func (s WordStats) Words() int {
	total := 0
	for _, n := range s.Frequencies {
		total += n
	}
	return total
}

// Top returns up to n entries ordered by count, then word. n <= 0 returns all.
func (s WordStats) Top(n int) []WordCount {
	entries := make([]WordCount, 0, len(s.Frequencies))
	for word, count := range s.Frequencies {
		entries = append(entries, WordCount{Word: word, Count: count})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Word < entries[j].Word
	})

	if n > 0 && len(entries) > n {
		entries = entries[:n]
	}
	return entries
}
