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

// BudgetsHeader is the CSV header for budgets.csv.
const BudgetsHeader = "id,category,amount,spent,period,start_date"

const (
	budNumFields  = 6
	budColID      = 0
	budColCat     = 1
	budColAmount  = 2
	budColSpent   = 3
	budColPeriod  = 4
	budColStart   = 5
	budDateFormat = "2006-01-02"
)

// ReadBudgets reads all budgets from a budgets.csv reader.
func ReadBudgets(r io.Reader) ([]model.Budget, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = budNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading budgets CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var budgets []model.Budget
	for i, rec := range records[1:] {
		b, err := UnmarshalBudget(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		budgets = append(budgets, b)
	}
	return budgets, nil
}

// WriteBudgets writes budgets to a budgets.csv writer (including header).
func WriteBudgets(w io.Writer, budgets []model.Budget) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(BudgetsHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, b := range budgets {
		if err := cw.Write(MarshalBudget(b)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalBudget converts a Budget to a CSV row.
func MarshalBudget(b model.Budget) []string {
	row := make([]string, budNumFields)
	row[budColID] = b.ID
	row[budColCat] = b.Category
	row[budColAmount] = b.Amount.StringFixed(2)
	row[budColSpent] = b.Spent.StringFixed(2)
	row[budColPeriod] = string(b.Period)
	row[budColStart] = b.StartDate.Format(budDateFormat)
	return row
}

// UnmarshalBudget converts a CSV row to a Budget.
func UnmarshalBudget(record []string) (model.Budget, error) {
	if len(record) != budNumFields {
		return model.Budget{}, fmt.Errorf("expected %d fields, got %d", budNumFields, len(record))
	}

	amount, err := decimal.NewFromString(record[budColAmount])
	if err != nil {
		return model.Budget{}, fmt.Errorf("parsing amount %q: %w", record[budColAmount], err)
	}

	spent, err := decimal.NewFromString(record[budColSpent])
	if err != nil {
		return model.Budget{}, fmt.Errorf("parsing spent %q: %w", record[budColSpent], err)
	}

	period := model.BudgetPeriod(record[budColPeriod])
	if !period.Valid() {
		return model.Budget{}, fmt.Errorf("unknown period %q", record[budColPeriod])
	}

	start, err := time.Parse(budDateFormat, record[budColStart])
	if err != nil {
		return model.Budget{}, fmt.Errorf("parsing start_date %q: %w", record[budColStart], err)
	}

	return model.Budget{
		ID:        record[budColID],
		Category:  record[budColCat],
		Amount:    amount,
		Spent:     spent,
		Period:    period,
		StartDate: start,
	}, nil
}
