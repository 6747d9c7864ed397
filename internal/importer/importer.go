// Package importer turns bank CSV exports into transactions for the snapshot.
package importer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pocketbook-dev/pocketbook/internal/id"
	"github.com/pocketbook-dev/pocketbook/internal/model"
)

// BankRow is one parsed row of a bank export. Amount is signed: negative
// means money out, positive money in.
type BankRow struct {
	Date        time.Time
	Description string
	Category    string
	Amount      decimal.Decimal
}

// Parser converts a bank CSV file into BankRows.
type Parser interface {
	Parse(r io.Reader) ([]BankRow, error)
	Format() string
}

// Registry holds named parsers.
type Registry struct {
	parsers map[string]Parser
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]Parser)}
}

// Register adds a parser. Panics on duplicate format.
func (r *Registry) Register(p Parser) {
	key := strings.ToLower(p.Format())
	if _, ok := r.parsers[key]; ok {
		panic("duplicate parser format: " + key)
	}
	r.parsers[key] = p
}

// Get returns the parser for format, or nil.
func (r *Registry) Get(format string) Parser {
	return r.parsers[strings.ToLower(format)]
}

// Formats returns the registered format names.
func (r *Registry) Formats() []string {
	var formats []string
	for k := range r.parsers {
		formats = append(formats, k)
	}
	return formats
}

// DefaultRegistry returns a registry with all built-in parsers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&GenericParser{})
	return r
}

// importDir is the subdirectory for pending bank exports.
const importDir = "import"

// FileInfo describes a CSV file in the import directory.
type FileInfo struct {
	Name string
	Path string
	Size int64
}

// Scan returns CSV files in <dataDir>/import/.
func Scan(dataDir string) ([]FileInfo, error) {
	dir := filepath.Join(dataDir, importDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading import dir: %w", err)
	}

	var files []FileInfo
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if !strings.HasSuffix(strings.ToLower(e.Name()), ".csv") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", e.Name(), err)
		}
		files = append(files, FileInfo{
			Name: e.Name(),
			Path: filepath.Join(dir, e.Name()),
			Size: info.Size(),
		})
	}
	return files, nil
}

// Assign converts parsed rows into transactions against a wallet, splitting
// kind by the sign of the row amount. Amounts are stored non-negative.
func Assign(rows []BankRow, wallet model.Wallet) []model.Transaction {
	txns := make([]model.Transaction, len(rows))
	for i, row := range rows {
		kind := model.KindIncome
		amount := row.Amount
		if row.Amount.IsNegative() {
			kind = model.KindExpense
			amount = row.Amount.Neg()
		}
		txns[i] = model.Transaction{
			ID:          id.NewTransactionID(),
			Kind:        kind,
			Amount:      amount,
			Category:    row.Category,
			Description: row.Description,
			Timestamp:   row.Date,
			WalletID:    wallet.ID,
			WalletName:  wallet.Name,
		}
	}
	return txns
}
