package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/go-trip-planner/internal/types"
)

var october = time.Date(2025, time.October, 10, 12, 0, 0, 0, time.UTC)

func optionIDs(opts []types.FlightOption) []string {
	ids := make([]string, 0, len(opts))
	for _, o := range opts {
		ids = append(ids, o.ID)
	}
	return ids
}

func TestGenerateFlightOptions_UnknownDestination(t *testing.T) {
	july := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)
	opts := GenerateFlightOptions("Atlantis, Ocean", "", july)

	require.Len(t, opts, 1)
	opt := opts[0]
	assert.Equal(t, "economy", opt.ID)
	assert.Equal(t, 650, opt.Cost)
	assert.Equal(t, "SkyConnect Airlines", opt.Airline)
	assert.Equal(t, "12h 30m (1 stop)", opt.Duration)
	assert.Equal(t, "Frankfurt (2h 15m)", opt.Stopover)
	assert.Equal(t, "11:00 PM (+1 day)", opt.Arrival)
	assert.Equal(t, DefaultDepartureCity+" → Atlantis, Ocean", opt.Route)
}

func TestGenerateFlightOptions_MediumHaulWithoutBudgetTier(t *testing.T) {
	opts := GenerateFlightOptions("Paris, France", "London, UK (LHR)", october)

	require.Equal(t, []string{"economy", "premium", "business"}, optionIDs(opts))
	assert.Equal(t, 429, opts[0].Cost)
	assert.Equal(t, 909, opts[1].Cost)
	assert.Equal(t, 1616, opts[2].Cost)

	assert.Equal(t, "8h 30m (1 stop)", opts[0].Duration)
	assert.Equal(t, "Frankfurt (1h 45m)", opts[0].Stopover)
	assert.Equal(t, "3 premium meals + snacks", opts[1].Meals)
	assert.Equal(t, "Airbus A321", opts[2].Aircraft)
	assert.Equal(t, "London, UK (LHR) → Paris, France", opts[0].Route)
}

func TestGenerateFlightOptions_LongHaulAddsBudgetTier(t *testing.T) {
	opts := GenerateFlightOptions("Tokyo, Japan", "New York, NY (JFK)", october)

	require.Equal(t, []string{"budget", "economy", "premium", "business"}, optionIDs(opts))
	assert.Equal(t, 494, opts[0].Cost)
	assert.Equal(t, 799, opts[1].Cost)
	assert.Equal(t, 1693, opts[2].Cost)
	assert.Equal(t, 3010, opts[3].Cost)

	assert.Equal(t, "Chicago (3h), Frankfurt (2h 30m)", opts[0].Stopover)
	assert.Equal(t, "Boeing 777-300ER", opts[3].Aircraft)
	assert.Equal(t, "Singapore (2h 30m)", opts[1].Stopover)
}

func TestGenerateFlightOptions_ShortHaulText(t *testing.T) {
	opts := GenerateFlightOptions("Chicago, United States", "Boston, MA (BOS)", october)

	require.NotEmpty(t, opts)
	economy := opts[0]
	assert.Equal(t, "economy", economy.ID)
	assert.Equal(t, "3h 45m (Direct)", economy.Duration)
	assert.Equal(t, "Snacks and beverages", economy.Meals)
	assert.Equal(t, "Direct flight", economy.Stopover)
}

func TestGenerateFlightOptions_Properties(t *testing.T) {
	months := []time.Month{time.January, time.April, time.July, time.October}
	departures := []string{"", "Mumbai, India (BOM)", "London, UK (LHR)", "Boston, MA (BOS)", "Nowhere"}

	for _, fare := range DestinationFares() {
		for _, dep := range departures {
			for _, m := range months {
				asOf := time.Date(2025, m, 1, 0, 0, 0, 0, time.UTC)
				opts := GenerateFlightOptions(fare.Destination, dep, asOf)

				require.NotEmpty(t, opts)
				seen := map[string]bool{}
				costs := map[string]int{}
				for _, o := range opts {
					assert.GreaterOrEqual(t, o.Cost, 0)
					assert.False(t, seen[o.ID], "duplicate id %s for %s", o.ID, fare.Destination)
					seen[o.ID] = true
					costs[o.ID] = o.Cost
				}
				require.True(t, seen["economy"] && seen["premium"] && seen["business"], fare.Destination)
				assert.Less(t, costs["economy"], costs["premium"], "%s from %q in %s", fare.Destination, dep, m)
				assert.Less(t, costs["premium"], costs["business"], "%s from %q in %s", fare.Destination, dep, m)
				if seen["budget"] {
					assert.Less(t, costs["budget"], costs["economy"], fare.Destination)
				}

				adjusted, ok := AdjustedBaseFare(fare.Destination, dep, asOf)
				require.True(t, ok)
				assert.Equal(t, adjusted > BudgetTierThreshold, seen["budget"], fare.Destination)
			}
		}
	}
}

func TestGenerateFlightOptions_Deterministic(t *testing.T) {
	a := GenerateFlightOptions("Bali, Indonesia", "Mumbai, India (BOM)", october)
	b := GenerateFlightOptions("Bali, Indonesia", "Mumbai, India (BOM)", october)
	assert.Equal(t, a, b)
}

func TestCheapestCost(t *testing.T) {
	assert.Equal(t, 0, CheapestCost(nil))
	opts := []types.FlightOption{{Cost: 700}, {Cost: 300}, {Cost: 900}}
	assert.Equal(t, 300, CheapestCost(opts))
}
