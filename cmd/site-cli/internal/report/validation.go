package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/nfrund/b2bsite/internal/contact"
)

// Validation is the outcome of checking one set of contact fields.
type Validation struct {
	Valid  bool           `json:"valid"`
	Errors contact.Errors `json:"errors,omitempty"`
	// Acknowledgment is set when the fields were also submitted.
	Acknowledgment string `json:"acknowledgment,omitempty"`
}

// WriteValidation prints one line per field, in form order.
func WriteValidation(w io.Writer, v Validation) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, f := range contact.AllFields {
		msg, bad := v.Errors[f]
		if !bad {
			msg = "ok"
		}
		fmt.Fprintf(tw, "%s\t%s\n", f, msg)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if v.Acknowledgment != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, v.Acknowledgment)
	}
	return nil
}
