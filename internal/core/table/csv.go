package table

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// CSVOptions tunes ReadCSV
type CSVOptions struct {
	// Limit stops after this many data rows, 0 reads everything
	Limit int
	// Comma overrides the field delimiter, zero means ','
	Comma rune
}

// ReadCSV reads a headered CSV stream into a Table
// header cells are matched to schema columns by name, in any order
// extra CSV columns are ignored, a schema column missing from the header is an error
func ReadCSV(r io.Reader, s Schema, opt CSVOptions) (*Table, error) {
	b, err := NewBuilder(s)
	if err != nil {
		return nil, err
	}

	cr := csv.NewReader(bufio.NewReader(r))
	if opt.Comma != 0 {
		cr.Comma = opt.Comma
	}
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("table %s: empty csv", s.Name)
		}
		return nil, fmt.Errorf("table %s: read header: %w", s.Name, err)
	}

	pos, err := headerPositions(s, header)
	if err != nil {
		return nil, err
	}
	// every row must be as wide as the header, extra columns are still read then dropped
	cr.FieldsPerRecord = len(header)

	cells := make([]string, len(s.Columns))
	for opt.Limit <= 0 || b.Len() < opt.Limit {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("table %s: %w", s.Name, err)
		}
		for i, p := range pos {
			cells[i] = strings.TrimSpace(rec[p])
		}
		if err := b.AppendStrings(cells); err != nil {
			return nil, err
		}
	}
	return b.Build(), nil
}

// headerPositions maps each schema column to its CSV position
func headerPositions(s Schema, header []string) ([]int, error) {
	at := make(map[string]int, len(header))
	for i, h := range header {
		// tolerate a UTF-8 BOM on the first header cell
		h = strings.TrimPrefix(strings.TrimSpace(h), "\ufeff")
		at[h] = i
	}
	pos := make([]int, len(s.Columns))
	var missing []string
	for i, c := range s.Columns {
		p, ok := at[c.Name]
		if !ok {
			missing = append(missing, c.Name)
			continue
		}
		pos[i] = p
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("table %s: csv header %v is missing columns %v", s.Name, header, missing)
	}
	return pos, nil
}
