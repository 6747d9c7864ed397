package insight

import (
	"fmt"

	"github.com/pocketbook-dev/pocketbook/internal/model"
)

const savingsTip = "Set aside savings at the start of each period, before discretionary spending."

// Tips produces advisory messages for a budget collection. The order is
// fixed: an overspending tip when any budget is over its limit, then the
// highest-spending category (ties resolved by input order), then a generic
// savings tip.
func Tips(budgets []model.Budget) []string {
	var tips []string

	over := 0
	for _, b := range budgets {
		if b.Spent.GreaterThan(b.Amount) {
			over++
		}
	}
	switch {
	case over == 1:
		tips = append(tips, "You are over budget in 1 category. Consider trimming spend there or raising the limit.")
	case over > 1:
		tips = append(tips, fmt.Sprintf("You are over budget in %d categories. Consider trimming spend there or raising the limits.", over))
	}

	if len(budgets) > 0 {
		top := budgets[0]
		for _, b := range budgets[1:] {
			if b.Spent.GreaterThan(top.Spent) {
				top = b
			}
		}
		tips = append(tips, fmt.Sprintf("Your highest spending is in %s. Small cuts there make the biggest difference.", top.Category))
	}

	tips = append(tips, savingsTip)
	return tips
}
