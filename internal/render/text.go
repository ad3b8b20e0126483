package render

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// Text renders an aligned plain text table.
type Text struct{}

func (Text) ContentType() string {
	return "text/plain; charset=utf-8"
}

func (Text) Extension() string {
	return "txt"
}

func (Text) Render(w io.Writer, rows []Row) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	if _, err := fmt.Fprintf(tw, "%s\t%s\n", Header.Label, Header.Quantity); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, row := range rows {
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", row.Label, row.Quantity); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("tw.Flush: %w", err)
	}

	return nil
}
