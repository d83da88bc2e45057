package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchDestinations(t *testing.T) {
	t.Run("short query lists popular destinations", func(t *testing.T) {
		got := SearchDestinations("p", 5, false)
		require.Len(t, got.Destinations, 5)
		assert.Equal(t, 5, got.Total)
		for _, d := range got.Destinations {
			assert.True(t, d.Popular)
		}
	})

	t.Run("exact name match ranks first", func(t *testing.T) {
		got := SearchDestinations("paris", 10, false)
		require.NotEmpty(t, got.Destinations)
		assert.Equal(t, "Paris", got.Destinations[0].Name)
		assert.Equal(t, "France", got.Destinations[0].Country)
		assert.Equal(t, "Europe", got.Destinations[0].Region)
		assert.Equal(t, "Paris, France", got.Destinations[0].Display)
	})

	t.Run("country and region matches are included", func(t *testing.T) {
		got := SearchDestinations("india", 50, false)
		assert.Equal(t, 9, got.Total)
		for _, d := range got.Destinations {
			assert.Equal(t, "India", d.Country)
		}
	})

	t.Run("popular only filter", func(t *testing.T) {
		all := SearchDestinations("india", 50, false)
		popular := SearchDestinations("india", 50, true)
		assert.Less(t, popular.Total, all.Total)
		for _, d := range popular.Destinations {
			assert.True(t, d.Popular)
		}
	})

	t.Run("total counts matches beyond the limit", func(t *testing.T) {
		got := SearchDestinations("united states", 2, false)
		assert.Len(t, got.Destinations, 2)
		assert.Greater(t, got.Total, 2)
	})

	t.Run("prefix matches rank above popular substring matches", func(t *testing.T) {
		got := SearchDestinations("ban", 10, false)
		require.GreaterOrEqual(t, len(got.Destinations), 2)
		assert.Equal(t, "Bangalore", got.Destinations[0].Name)
		assert.Equal(t, "Bangkok", got.Destinations[1].Name)
	})
}

func TestPopularDestinations(t *testing.T) {
	all := PopularDestinations(0, "")
	assert.NotEmpty(t, all)

	limited := PopularDestinations(3, "")
	assert.Len(t, limited, 3)

	oceania := PopularDestinations(0, "oceania")
	require.Len(t, oceania, 3)
	for _, d := range oceania {
		assert.Equal(t, "Oceania", d.Region)
	}
}

func TestDestinationsByRegion(t *testing.T) {
	grouped := DestinationsByRegion()

	india, ok := grouped["India"]
	require.True(t, ok)
	require.NotEmpty(t, india)
	assert.True(t, india[0].Popular)
	assert.False(t, india[len(india)-1].Popular)

	_, ok = grouped["Middle East"]
	assert.True(t, ok)
}
