package snapcsv

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pocketbook-dev/pocketbook/internal/snapshot"
)

// Snapshot file names under a data directory.
const (
	TransactionsFile = "transactions.csv"
	WalletsFile      = "wallets.csv"
	BudgetsFile      = "budgets.csv"
)

// LoadSnapshot reads the three snapshot files from a data directory. Missing
// files load as empty collections. The snapshot's user is left zero; the
// caller attaches it from config.
func LoadSnapshot(dataDir string) (snapshot.Snapshot, error) {
	txns, err := loadFile(dataDir, TransactionsFile, ReadTransactions)
	if err != nil {
		return snapshot.Snapshot{}, err
	}
	wallets, err := loadFile(dataDir, WalletsFile, ReadWallets)
	if err != nil {
		return snapshot.Snapshot{}, err
	}
	budgets, err := loadFile(dataDir, BudgetsFile, ReadBudgets)
	if err != nil {
		return snapshot.Snapshot{}, err
	}

	return snapshot.Snapshot{
		Transactions: txns,
		Wallets:      wallets,
		Budgets:      budgets,
	}, nil
}

// SaveSnapshot writes all three snapshot files to a data directory.
func SaveSnapshot(dataDir string, snap snapshot.Snapshot) error {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	if err := saveFile(dataDir, TransactionsFile, snap.Transactions, WriteTransactions); err != nil {
		return err
	}
	if err := saveFile(dataDir, WalletsFile, snap.Wallets, WriteWallets); err != nil {
		return err
	}
	return saveFile(dataDir, BudgetsFile, snap.Budgets, WriteBudgets)
}

// Exists reports whether a data directory has been initialized (its wallets
// file is present).
func Exists(dataDir string) bool {
	_, err := os.Stat(filepath.Join(dataDir, WalletsFile))
	return err == nil
}

func loadFile[T any](dataDir, name string, read func(io.Reader) ([]T, error)) ([]T, error) {
	path := filepath.Join(dataDir, name)
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", name, err)
	}
	defer f.Close()

	items, err := read(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	return items, nil
}

func saveFile[T any](dataDir, name string, items []T, write func(io.Writer, []T) error) error {
	path := filepath.Join(dataDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", name, err)
	}
	defer f.Close()

	if err := write(f, items); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}
