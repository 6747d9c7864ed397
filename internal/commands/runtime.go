package commands

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pocketbook-dev/pocketbook/internal/auditlog"
	"github.com/pocketbook-dev/pocketbook/internal/config"
	"github.com/pocketbook-dev/pocketbook/internal/gitops"
	"github.com/pocketbook-dev/pocketbook/internal/log"
	"github.com/pocketbook-dev/pocketbook/internal/snapcsv"
	"github.com/pocketbook-dev/pocketbook/internal/snapshot"
)

var hundred = decimal.NewFromInt(100)

// runtime bundles everything a command needs: the loaded config and the
// current snapshot. Mutating commands go through apply, which persists the
// new snapshot, records the action, and optionally auto-commits.
type runtime struct {
	dir    string
	cfg    *config.Config
	snap   snapshot.Snapshot
	logger *slog.Logger
}

func loadRuntime(dir string) (*runtime, error) {
	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	if err != nil {
		return nil, fmt.Errorf("loading config (did you run 'pocketbook init'?): %w", err)
	}

	snap, err := snapcsv.LoadSnapshot(dir)
	if err != nil {
		return nil, err
	}
	snap.User = cfg.User()

	return &runtime{
		dir:    dir,
		cfg:    cfg,
		snap:   snap,
		logger: log.New("cli"),
	}, nil
}

// apply persists a new snapshot, appends an audit entry, and auto-commits the
// data directory when configured. A failed auto-commit is logged, not fatal:
// the snapshot on disk is already consistent.
func (r *runtime) apply(next snapshot.Snapshot, action, details, recordID string) error {
	if err := snapcsv.SaveSnapshot(r.dir, next); err != nil {
		return err
	}

	entry := auditlog.Entry{
		Timestamp: time.Now(),
		Actor:     r.cfg.Profile.Name,
		Action:    action,
		Details:   details,
		RecordID:  recordID,
	}
	if err := auditlog.Append(r.dir, []auditlog.Entry{entry}); err != nil {
		return err
	}

	r.snap = next
	r.autoCommit(action + ": " + details)
	return nil
}

func (r *runtime) autoCommit(message string) {
	if !r.cfg.Git.AutoCommit || !gitops.IsRepo(r.dir) {
		return
	}
	changed, err := gitops.HasChanges(r.dir)
	if err != nil {
		r.logger.Warn("auto-commit skipped", "err", err)
		return
	}
	if !changed {
		return
	}
	if _, err := gitops.CommitAll(r.dir, message, r.cfg.Git.AuthorName, r.cfg.Git.AuthorEmail); err != nil {
		r.logger.Warn("auto-commit failed", "err", err)
	}
}

// money renders an amount with the profile's display currency.
func (r *runtime) money(d decimal.Decimal) string {
	return fmt.Sprintf("%s %s", r.cfg.Preferences.Currency, d.StringFixed(2))
}
