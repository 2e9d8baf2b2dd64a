package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/webinit-labs/webinit/internal/branding"
)

// printBanner writes the startup banner: the product name in a frame and the
// copyright line.
func printBanner(w io.Writer) {
	title := "  " + branding.DisplayName() + "  "
	rule := "+" + strings.Repeat("-", len(title)) + "+"

	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "|%s|\n", title)
	fmt.Fprintln(w, rule)
	if c := branding.Copyright(); c != "" {
		fmt.Fprintln(w, c)
	}
	fmt.Fprintln(w)
}
