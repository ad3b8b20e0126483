package render

import (
	"encoding/csv"
	"fmt"
	"io"
)

type CSV struct{}

func (CSV) ContentType() string {
	return "text/csv; charset=utf-8"
}

func (CSV) Extension() string {
	return "csv"
}

func (CSV) Render(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{Header.Label, Header.Quantity}); err != nil {
		return fmt.Errorf("cw.Write: %w", err)
	}
	for _, row := range rows {
		if err := cw.Write([]string{row.Label, row.Quantity}); err != nil {
			return fmt.Errorf("cw.Write: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("cw.Flush: %w", err)
	}

	return nil
}
