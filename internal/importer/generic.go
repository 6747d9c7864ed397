package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"
)

// GenericParser parses the common "date,description,category,amount" export
// shape most banks can produce. The category column may be empty.
type GenericParser struct{}

const (
	genericDateFormat = "2006-01-02"
	genericNumFields  = 4
	genericColDate    = 0
	genericColDesc    = 1
	genericColCat     = 2
	genericColAmount  = 3
)

// Format returns the parser name.
func (p *GenericParser) Format() string { return "generic" }

// Parse reads a generic CSV export and returns BankRows.
func (p *GenericParser) Parse(r io.Reader) ([]BankRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = genericNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading generic CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var rows []BankRow
	for i, rec := range records[1:] {
		row, err := parseGenericRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func parseGenericRow(rec []string) (BankRow, error) {
	date, err := time.Parse(genericDateFormat, rec[genericColDate])
	if err != nil {
		return BankRow{}, fmt.Errorf("parsing date %q: %w", rec[genericColDate], err)
	}

	amount, err := decimal.NewFromString(rec[genericColAmount])
	if err != nil {
		return BankRow{}, fmt.Errorf("parsing amount %q: %w", rec[genericColAmount], err)
	}

	return BankRow{
		Date:        date,
		Description: rec[genericColDesc],
		Category:    rec[genericColCat],
		Amount:      amount,
	}, nil
}
