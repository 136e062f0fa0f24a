package search

// Record is one line of the scanned content. Text is a substring of the
// content passed to the scan and shares its memory; a Record is only
// meaningful while that content is.
type Record struct {
	// Index is the 0-based line position.
	Index int    `json:"index" yaml:"index"`
	Text  string `json:"text" yaml:"text"`
}

// Result is the outcome of one scan.
type Result struct {
	Records       []Record `json:"records" yaml:"records"`
	Occurrences   int      `json:"occurrences" yaml:"occurrences"`
	MatchingLines int      `json:"matching_lines" yaml:"matching_lines"`
}

// WordStats is the word frequency report of a whole content.
type WordStats struct {
	// Frequencies maps a lowercased word to its count. Iteration order is unspecified.
	Frequencies map[string]int `json:"frequencies" yaml:"frequencies"`
	Characters  int            `json:"characters" yaml:"characters"`
	Lines       int            `json:"lines" yaml:"lines"`
}

// WordCount is a single entry of WordStats.Top.
type WordCount struct {
	Word  string `json:"word" yaml:"word"`
	Count int    `json:"count" yaml:"count"`
}
