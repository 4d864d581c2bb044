package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/harrison/tailseek/internal/search"
)

// ShowResult writes the located path on its own line, or a not-found warning.
func ShowResult(w io.Writer, goal string, res search.Result, useColor bool) {
	if res.Found {
		fmt.Fprintln(w, paint(color.FgGreen, useColor, res.Path))
		return
	}
	NotFound(goal, res).Display(w, useColor)
}

// NotFound builds the warning shown when a search is exhausted.
func NotFound(goal string, res search.Result) Warning {
	rounds := "rounds"
	if res.Rounds == 1 {
		rounds = "round"
	}
	return Warning{
		Title:      fmt.Sprintf("%s not found", goal),
		Message:    fmt.Sprintf("Searched %d directories in %d %s", res.Listings, res.Rounds, rounds),
		Items:      res.Roots,
		ItemLabel:  "Root",
		Suggestion: "Add a --root, or adjust --priority and --exclude",
	}
}

// ShowList writes a titled, numbered list. An empty list prints "(none)".
func ShowList(w io.Writer, title string, items []string) {
	var b strings.Builder
	b.WriteString(title)
	b.WriteString(":\n")
	if len(items) == 0 {
		b.WriteString("  (none)\n")
	}
	writeNumbered(&b, items, "  ")
	fmt.Fprint(w, b.String())
}
