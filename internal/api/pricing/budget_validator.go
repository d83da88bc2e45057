package pricing

import (
	"math"

	"github.com/FACorreiaa/go-trip-planner/internal/types"
)

// FlightBudgetShare is the portion of the total budget flights may consume.
const FlightBudgetShare = 0.5

// Annotate returns a copy of options with TotalCost, WithinBudget and
// BudgetPercentage filled for the given party size. The input is not modified,
// so annotating twice yields the same result. totalBudget must be positive.
func Annotate(options []types.FlightOption, totalBudget float64, travelers int) []types.FlightOption {
	if travelers < 1 {
		travelers = 1
	}
	maxFlightBudget := totalBudget * FlightBudgetShare

	out := make([]types.FlightOption, len(options))
	for i, opt := range options {
		total := opt.Cost * travelers
		opt.TotalCost = total
		opt.WithinBudget = float64(total) <= maxFlightBudget
		if totalBudget > 0 {
			opt.BudgetPercentage = int(math.Round(float64(total) / totalBudget * 100))
		} else {
			opt.BudgetPercentage = 0
		}
		out[i] = opt
	}
	return out
}
