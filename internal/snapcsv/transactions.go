// Package snapcsv reads and writes the snapshot CSV files under a data
// directory: transactions.csv, wallets.csv, and budgets.csv. Values are
// stored exactly as recorded; nothing is reconciled or recomputed on load.
package snapcsv

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pocketbook-dev/pocketbook/internal/model"
)

// TransactionsHeader is the CSV header for transactions.csv.
const TransactionsHeader = "id,kind,amount,category,description,timestamp,wallet_id,wallet_name"

const (
	txnNumFields  = 8
	txnColID      = 0
	txnColKind    = 1
	txnColAmount  = 2
	txnColCat     = 3
	txnColDesc    = 4
	txnColTime    = 5
	txnColWallet  = 6
	txnColWalName = 7
)

// ReadTransactions reads all transactions from a transactions.csv reader.
func ReadTransactions(r io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = txnNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading transactions CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var txns []model.Transaction
	for i, rec := range records[1:] {
		t, err := UnmarshalTransaction(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txns = append(txns, t)
	}
	return txns, nil
}

// WriteTransactions writes transactions to a transactions.csv writer
// (including header).
func WriteTransactions(w io.Writer, txns []model.Transaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(TransactionsHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, t := range txns {
		if err := cw.Write(MarshalTransaction(t)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalTransaction converts a Transaction to a CSV row.
func MarshalTransaction(t model.Transaction) []string {
	row := make([]string, txnNumFields)
	row[txnColID] = t.ID
	row[txnColKind] = string(t.Kind)
	row[txnColAmount] = t.Amount.StringFixed(2)
	row[txnColCat] = t.Category
	row[txnColDesc] = t.Description
	row[txnColTime] = t.Timestamp.Format(time.RFC3339)
	row[txnColWallet] = t.WalletID
	row[txnColWalName] = t.WalletName
	return row
}

// UnmarshalTransaction converts a CSV row to a Transaction.
func UnmarshalTransaction(record []string) (model.Transaction, error) {
	if len(record) != txnNumFields {
		return model.Transaction{}, fmt.Errorf("expected %d fields, got %d", txnNumFields, len(record))
	}

	kind := model.TransactionKind(record[txnColKind])
	if kind != model.KindIncome && kind != model.KindExpense {
		return model.Transaction{}, fmt.Errorf("unknown kind %q", record[txnColKind])
	}

	amount, err := decimal.NewFromString(record[txnColAmount])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing amount %q: %w", record[txnColAmount], err)
	}
	if amount.IsNegative() {
		return model.Transaction{}, fmt.Errorf("negative amount %q: direction is carried by kind", record[txnColAmount])
	}

	ts, err := time.Parse(time.RFC3339, record[txnColTime])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing timestamp %q: %w", record[txnColTime], err)
	}

	return model.Transaction{
		ID:          record[txnColID],
		Kind:        kind,
		Amount:      amount,
		Category:    record[txnColCat],
		Description: record[txnColDesc],
		Timestamp:   ts,
		WalletID:    record[txnColWallet],
		WalletName:  record[txnColWalName],
	}, nil
}
