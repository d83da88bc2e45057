package pricing

import (
	"time"

	"github.com/FACorreiaa/go-trip-planner/internal/types"
)

// Insights describes how prices to a destination tend to behave.
func Insights(destination string, asOf time.Time) types.FlightInsights {
	fare, ok := LookupFare(destination)
	if !ok {
		return types.FlightInsights{
			PriceRange:  "Standard pricing",
			BestTime:    "Book 2-8 weeks in advance for best rates",
			Seasonality: "Prices may vary by season",
		}
	}

	var insights types.FlightInsights
	switch fare.Distance {
	case types.HaulShort:
		insights.PriceRange = "Domestic/Short-haul rates"
	case types.HaulMedium:
		insights.PriceRange = "Medium-haul international rates"
	default:
		insights.PriceRange = "Long-haul international rates"
	}

	if fare.Distance == types.HaulLong {
		insights.BestTime = "Book 2-3 months in advance"
	} else {
		insights.BestTime = "Book 3-8 weeks in advance"
	}

	switch {
	case fare.SeasonMultiplier > 1.2:
		insights.Seasonality = "Peak season destination - expect higher prices"
	case fare.SeasonMultiplier > 1.1:
		insights.Seasonality = "Popular season - moderate price increase"
	default:
		insights.Seasonality = "Off-peak pricing available"
	}

	switch season := SeasonMultiplier(asOf); {
	case season > 1.2:
		insights.CurrentSeason = "Peak travel season - prices are elevated"
	case season > 1.1:
		insights.CurrentSeason = "Busy season - moderate price increase"
	default:
		insights.CurrentSeason = "Good time to book - reasonable prices"
	}
	return insights
}
