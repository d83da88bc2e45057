package flights

import (
	"context"
	"errors"

	"github.com/FACorreiaa/go-trip-planner/internal/types"
)

var (
	ErrNotConfigured   = errors.New("flight provider credentials are not configured")
	ErrUnknownRoute    = errors.New("no airport codes for route")
	ErrNoOffers        = errors.New("provider returned no offers")
	ErrProviderFailure = errors.New("flight provider request failed")
)

// SearchResult is the outcome of a live search: either offers, or the reason
// none are available. Callers branch on Available instead of on errors.
type SearchResult struct {
	Offers []types.FlightOption
	Reason error
}

func Found(offers []types.FlightOption) SearchResult {
	if len(offers) == 0 {
		return Unavailable(ErrNoOffers)
	}
	return SearchResult{Offers: offers}
}

func Unavailable(reason error) SearchResult {
	return SearchResult{Reason: reason}
}

func (r SearchResult) Available() bool {
	return r.Reason == nil && len(r.Offers) > 0
}

// Provider searches live flight offers for a one-way trip.
// departureDate is an ISO date (2006-01-02).
type Provider interface {
	Configured() bool
	SearchOffers(ctx context.Context, origin, destination, departureDate string, travelers int) SearchResult
}
