package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/nfrund/b2bsite/internal/pubsub"
)

// WriteTopicsTable displays topics in a formatted table.
func WriteTopicsTable(w io.Writer, topics []pubsub.Topic) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tDESCRIPTION")
	fmt.Fprintln(tw, "----\t-----------")
	if len(topics) == 0 {
		fmt.Fprintln(tw, "No topics found")
	}
	for _, t := range topics {
		fmt.Fprintf(tw, "%s\t%s\n", t.Name, truncate(t.Description, 60))
	}
	return tw.Flush()
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
