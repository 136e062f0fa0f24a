package report

import (
	"fmt"
	"io"
)

const (
	// Name is the program name shown in help and version output.
	Name = "minigrep"
	// Release is the version string printed by Version.
	Release = "1.1.0"
	// Project is the home of the tool, printed under the version.
	Project = "https://github.com/f4ah6o/minigrep-go"
)

// flagHelp is one row of the help menu.
type flagHelp struct {
	flags   string
	about   string
	example string
}

var (
	patternFlags = []flagHelp{
		{"-i, --ignore-case", "ignore case distinctions", "minigrep hello hello_world.txt -i"},
		{"-I, --invert-match", "select non-matching lines", "minigrep hello hello_world.txt -I"},
	}
	outputFlags = []flagHelp{
		{"-n, --line-number", "print line numbers with output lines", "minigrep hello hello_world.txt -n"},
		{"-c, --query-count", "output total occurrences of query", "minigrep butter recipe.txt -c"},
		{"-lc, --line-count", "output number of matching lines", "minigrep butter recipe.txt -lc"},
		{"-S, --stats", "word frequency, character and line counts", "minigrep recipe.txt -S"},
	}
	miscFlags = []flagHelp{
		{"-v, --version", "display version information", "minigrep minigrep -v"},
	}
)

// Help prints the help menu.
func Help(w io.Writer) {
	fmt.Fprint(w, "\n")
	colorTitle.Fprint(w, Name)
	fmt.Fprint(w, " help menu\n\n")

	colorLabel.Fprint(w, "Usage")
	fmt.Fprintf(w, ": %s [QUERY] [FILE_NAME] [OPTION...]\n", Name)
	colorLabel.Fprint(w, "Description")
	fmt.Fprint(w, ": Search for QUERY i.e a word in the FILE_NAME provided\n")
	colorLabel.Fprint(w, "Example")
	fmt.Fprintf(w, ": '%s hello hello_world.txt -i'\n", Name)

	section(w, "Pattern Selection", patternFlags)
	section(w, "Output Control", outputFlags)
	section(w, "Miscellaneous", miscFlags)
}

func section(w io.Writer, title string, rows []flagHelp) {
	colorTitle.Fprintf(w, "\n%s:\n", title)
	for _, row := range rows {
		colorFlag.Fprintf(w, "   %-20s", row.flags)
		fmt.Fprintf(w, "%-45s'%s'\n", row.about, row.example)
	}
}

// Version prints the version banner.
func Version(w io.Writer) {
	fmt.Fprint(w, "\n")
	colorTitle.Fprintf(w, "%s v%s\n", Name, Release)
	fmt.Fprintln(w, "Made by the minigrep-go authors")
	fmt.Fprintln(w, Project)
}
