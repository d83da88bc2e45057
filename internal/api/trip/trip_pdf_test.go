package trip

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/go-trip-planner/internal/types"
)

func TestRenderPDF(t *testing.T) {
	plan := samplePlan()
	plan.FlightOptions = []types.FlightOption{{Airline: "SkyConnect Airlines", Type: "Economy Class", Cost: 429, Duration: "1h 20m (Direct)", Route: "London → Rome"}}
	plan.BudgetAllocation = types.BudgetAllocation{Flights: 5000, OverBudget: true, Shortfall: 1000}

	doc, err := RenderPDF(&types.Trip{Budget: 4000, TravelStyle: types.TravelStyleCultural, TripData: *plan}, october)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF-")))
	assert.Greater(t, len(doc), 1000)
}

func TestRenderPDF_EmptyPlan(t *testing.T) {
	doc, err := RenderPDF(&types.Trip{}, october)
	require.NoError(t, err)
	assert.NotEmpty(t, doc)
}
