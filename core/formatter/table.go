package formatter

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/DevNathan/codemasterpiece-frontend-sub001/domain/result"
)

// TableFormatter writes aligned text tables.
type TableFormatter struct{}

// Name returns the formatter name.
func (TableFormatter) Name() string { return "table" }

// Format writes v's table form.
func (f TableFormatter) Format(w io.Writer, v any, opts FormatOptions) error {
	tab, ok := v.(Tabular)
	if !ok {
		return fmt.Errorf("%w: %T", ErrNotTabular, v)
	}
	t := tab.Table()

	if len(t.Rows) == 0 && t.Empty != "" {
		_, err := fmt.Fprintln(w, t.Empty)
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if !opts.NoHeader && len(t.Headers) > 0 {
		fmt.Fprintln(tw, strings.Join(t.Headers, "\t"))
		rule := make([]string, len(t.Headers))
		for i, h := range t.Headers {
			rule[i] = strings.Repeat("-", len(h))
		}
		fmt.Fprintln(tw, strings.Join(rule, "\t"))
	}
	for _, row := range t.Rows {
		cells := make([]string, len(row))
		for i, c := range row {
			cells[i] = truncate(c, opts.MaxWidth)
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if t.Footer != "" {
		_, err := fmt.Fprintf(w, "\n%s\n", t.Footer)
		return err
	}
	return nil
}

// FormatError writes the message followed by one line per field error.
func (TableFormatter) FormatError(w io.Writer, err *result.Error) error {
	fmt.Fprintf(w, "Error: %s (%s)\n", err.Message, err.Code)
	for _, fe := range err.FieldErrors {
		fmt.Fprintf(w, "  %s: %s\n", fe.Path, strings.Join(fe.Messages, "; "))
	}
	return nil
}

func truncate(s string, max int) string {
	if max <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
