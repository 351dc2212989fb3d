package display

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/grovetools/tocfmt/internal/outline"
)

// PrintEntriesTable prints every entry with the header it belongs to.
func PrintEntriesTable(o outline.Outline, writer io.Writer) error {
	w := tabwriter.NewWriter(writer, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "HEADER\tTIMESTAMP\tTITLE")
	header := "-"
	for _, l := range o.Lines {
		switch l.Kind {
		case outline.KindHeader:
			header = l.Title
		case outline.KindEntry:
			fmt.Fprintf(w, "%s\t%s\t%s\n", header, l.Timestamp, l.Title)
		}
	}
	return w.Flush()
}
