package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/go-trip-planner/internal/types"
)

func TestValidateStruct_TripRequest(t *testing.T) {
	t.Run("valid request", func(t *testing.T) {
		req := types.TripRequest{Budget: 3000, Travelers: "2", Duration: "7-10", TravelStyle: types.TravelStyleCultural}
		assert.NoError(t, ValidateStruct(req))
	})

	t.Run("open ended ranges are accepted", func(t *testing.T) {
		req := types.TripRequest{Budget: 3000, Travelers: "9+", Duration: "5 days"}
		assert.NoError(t, ValidateStruct(req))
	})

	t.Run("budget must be positive", func(t *testing.T) {
		req := types.TripRequest{Budget: 0, Travelers: "2", Duration: "7"}
		err := ValidateStruct(req)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "budget")
	})

	t.Run("duration without digits is rejected", func(t *testing.T) {
		req := types.TripRequest{Budget: 1000, Travelers: "2", Duration: "a week"}
		err := ValidateStruct(req)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duration must be a number or a range")
	})

	t.Run("budget must fit the trips table", func(t *testing.T) {
		req := types.TripRequest{Budget: 1e20, Travelers: "2", Duration: "7"}
		err := ValidateStruct(req)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "budget must be at most 9999999999")

		req.Budget = types.MaxBudget
		assert.NoError(t, ValidateStruct(req))
	})

	t.Run("party size is capped", func(t *testing.T) {
		for _, travelers := range []string{"100000000000000000", "51", "2-80"} {
			req := types.TripRequest{Budget: 5000, Travelers: travelers, Duration: "7"}
			err := ValidateStruct(req)
			require.Error(t, err, travelers)
			assert.Contains(t, err.Error(), "travelers must be a number or a range of at most 50 people")
		}
	})

	t.Run("range fields must fit their columns", func(t *testing.T) {
		req := types.TripRequest{Budget: 5000, Travelers: "2", Duration: "7-10 days, flexible dates"}
		err := ValidateStruct(req)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duration must be at most 20")

		req = types.TripRequest{Budget: 5000, Travelers: "2 adults and 2 children", Duration: "7"}
		err = ValidateStruct(req)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "travelers must be at most 20")
	})

	t.Run("unknown travel style is rejected", func(t *testing.T) {
		req := types.TripRequest{Budget: 1000, Travelers: "2", Duration: "7", TravelStyle: "party"}
		err := ValidateStruct(req)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "travelStyle")
	})
}

func TestValidateStruct_RegisterRequest(t *testing.T) {
	base := types.RegisterRequest{Username: "trip_fan", Email: "fan@example.com", Password: "Secret1"}
	assert.NoError(t, ValidateStruct(base))

	badUser := base
	badUser.Username = "no spaces"
	assert.Error(t, ValidateStruct(badUser))

	badMail := base
	badMail.Email = "not-an-email"
	assert.Error(t, ValidateStruct(badMail))
}

func TestStrongPassword(t *testing.T) {
	cases := map[string]bool{
		"Secret1":  true,
		"secret1":  false,
		"SECRET1":  false,
		"Secreto":  false,
		"Ab1":      false,
		"Passw0rd": true,
	}
	for pw, want := range cases {
		assert.Equal(t, want, StrongPassword(pw), pw)
	}
}
