package watchlist

import (
	"errors"
	"math"
)

// ErrInvalidBudget rejects a time budget that is not a positive finite
// number of hours. Nothing is evaluated when it is returned.
var ErrInvalidBudget = errors.New("time budget must be a positive number of hours")

// ItemEvaluation is the per-item result of a budget evaluation.
type ItemEvaluation struct {
	Item Item `json:"item"`
	// CumulativeMinutes includes this item's runtime.
	CumulativeMinutes int  `json:"cumulativeMinutes"`
	Fits              bool `json:"fits"`
}

// Evaluation is a transient, recomputed-on-demand view of how an ordered
// watchlist fits a time budget. It is never persisted.
type Evaluation struct {
	Items        []ItemEvaluation `json:"items"`
	TotalMinutes int              `json:"totalMinutes"`
	OverBudgetBy int              `json:"overBudgetBy"`
}

// BudgetFromHours converts a user-supplied hour count to a budget in
// minutes. Non-positive or non-finite hours are an input error.
func BudgetFromHours(hours float64) (int, error) {
	if math.IsNaN(hours) || math.IsInf(hours, 0) || hours <= 0 {
		return 0, ErrInvalidBudget
	}
	return int(math.Round(hours * 60)), nil
}

// Evaluate walks items in the given order, accumulating parsed runtimes, and
// marks each item as fitting while the running total stays within
// budgetMinutes. Runtimes are non-negative, so once an item overflows every
// later item overflows too. A nil budget means no constraint has been
// entered yet: everything fits and nothing is over budget.
func Evaluate(items []Item, budgetMinutes *int) Evaluation {
	eval := Evaluation{Items: make([]ItemEvaluation, 0, len(items))}

	cumulative := 0
	for _, item := range items {
		cumulative += item.RuntimeMinutes()
		eval.Items = append(eval.Items, ItemEvaluation{
			Item:              item,
			CumulativeMinutes: cumulative,
			Fits:              budgetMinutes == nil || cumulative <= *budgetMinutes,
		})
	}
	eval.TotalMinutes = cumulative

	if budgetMinutes != nil && eval.TotalMinutes > *budgetMinutes {
		eval.OverBudgetBy = eval.TotalMinutes - *budgetMinutes
	}
	return eval
}
