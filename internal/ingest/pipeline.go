// Package ingest turns a vendor CSV export into normalized catalog product
// records: filter out header/noise rows, clean locale-formatted numbers,
// classify category/brand/stock from the product name, and assemble the
// final records in input order.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

type Pipeline struct {
	Variant Variant
}

func New(variant Variant) *Pipeline {
	return &Pipeline{Variant: variant}
}

// ProcessFile runs the pipeline over a CSV file. Unreadable input is fatal;
// no partial output is produced.
func (p *Pipeline) ProcessFile(path string) ([]ProductRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()
	return p.Process(f)
}

// Process reads header-keyed rows from r and emits one ProductRecord per
// accepted row. Ids are contiguous from 1 and follow input order; rejected
// rows never consume an id.
func (p *Pipeline) Process(r io.Reader) ([]ProductRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // vendor exports have ragged rows

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	var records []ProductRecord
	nextID := 1
	for {
		line, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}
		row := make(RawRow, len(header))
		for i, col := range header {
			if i < len(line) {
				row[col] = line[i]
			}
		}
		if !p.Variant.Accept(row) {
			continue
		}
		fields := NormalizedFields{
			Name:       CleanName(row["description"]),
			UnitPrice:  ParseCurrency(row["unit_price"]),
			PromoPrice: ParseCurrency(row["promo_price"]),
			Cost:       ParseCurrency(row["cost"]),
			Margin:     ParsePercent(row["margin"]),
		}
		rec, ok := BuildRecord(nextID, fields, row, p.Variant)
		if !ok {
			continue
		}
		records = append(records, rec)
		nextID++
	}
	return records, nil
}
