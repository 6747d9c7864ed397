package snapcsv

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/pocketbook-dev/pocketbook/internal/model"
)

// WalletsHeader is the CSV header for wallets.csv.
const WalletsHeader = "id,name,balance,currency"

const (
	walNumFields   = 4
	walColID       = 0
	walColName     = 1
	walColBalance  = 2
	walColCurrency = 3
)

// ReadWallets reads all wallets from a wallets.csv reader.
func ReadWallets(r io.Reader) ([]model.Wallet, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = walNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading wallets CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var wallets []model.Wallet
	for i, rec := range records[1:] {
		w, err := UnmarshalWallet(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		wallets = append(wallets, w)
	}
	return wallets, nil
}

// WriteWallets writes wallets to a wallets.csv writer (including header).
func WriteWallets(w io.Writer, wallets []model.Wallet) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(WalletsHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, wal := range wallets {
		if err := cw.Write(MarshalWallet(wal)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalWallet converts a Wallet to a CSV row.
func MarshalWallet(w model.Wallet) []string {
	row := make([]string, walNumFields)
	row[walColID] = w.ID
	row[walColName] = w.Name
	row[walColBalance] = w.Balance.StringFixed(2)
	row[walColCurrency] = w.Currency
	return row
}

// UnmarshalWallet converts a CSV row to a Wallet.
func UnmarshalWallet(record []string) (model.Wallet, error) {
	if len(record) != walNumFields {
		return model.Wallet{}, fmt.Errorf("expected %d fields, got %d", walNumFields, len(record))
	}

	balance, err := decimal.NewFromString(record[walColBalance])
	if err != nil {
		return model.Wallet{}, fmt.Errorf("parsing balance %q: %w", record[walColBalance], err)
	}

	return model.Wallet{
		ID:       record[walColID],
		Name:     record[walColName],
		Balance:  balance,
		Currency: record[walColCurrency],
	}, nil
}
