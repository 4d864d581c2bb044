package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Warning represents a user-facing warning message
type Warning struct {
	Title      string   // Main warning title
	Message    string   // Detailed explanation (optional)
	Items      []string // Related paths (optional)
	ItemLabel  string   // Heading for Items, defaults to "Affected path"
	Suggestion string   // Action to take (optional)
}

// Display shows a formatted warning, in yellow when useColor is set
func (w Warning) Display(out io.Writer, useColor bool) {
	var b strings.Builder

	b.WriteString("Warning: ")
	b.WriteString(w.Title)
	b.WriteString("\n")

	if w.Message != "" {
		b.WriteString("    ")
		b.WriteString(w.Message)
		b.WriteString("\n")
	}

	if len(w.Items) > 0 {
		label := w.ItemLabel
		if label == "" {
			label = "Affected path"
		}
		b.WriteString("    ")
		b.WriteString(label)
		if len(w.Items) > 1 {
			b.WriteString("s")
		}
		b.WriteString(":\n")
		writeNumbered(&b, w.Items, "      ")
	}

	if w.Suggestion != "" {
		b.WriteString("    Suggestion:\n")
		b.WriteString("    ")
		b.WriteString(w.Suggestion)
		b.WriteString("\n")
	}

	fmt.Fprint(out, paint(color.FgYellow, useColor, b.String()))
}

// writeNumbered appends "N. item" lines with the given indent.
func writeNumbered(b *strings.Builder, items []string, indent string) {
	for i, item := range items {
		b.WriteString(indent)
		b.WriteString(fmt.Sprintf("%d. %s", i+1, item))
		b.WriteString("\n")
	}
}

// paint colors s when enabled, independent of the global NO_COLOR detection.
func paint(attr color.Attribute, enabled bool, s string) string {
	c := color.New(attr)
	if enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprint(s)
}
