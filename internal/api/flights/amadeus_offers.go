package flights

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"time"

	"github.com/FACorreiaa/go-trip-planner/internal/types"
)

const maxParsedOffers = 4

var cabinLabels = map[string]string{
	"budget":   "Economy Basic",
	"economy":  "Economy Class",
	"premium":  "Premium Economy",
	"business": "Business Class",
	"first":    "First Class",
}

type flightOffersResponse struct {
	Data []flightOffer `json:"data"`
}

type flightOffer struct {
	ID    string `json:"id"`
	Price struct {
		Total      string `json:"total"`
		GrandTotal string `json:"grandTotal"`
		Currency   string `json:"currency"`
	} `json:"price"`
	Itineraries []struct {
		Duration string    `json:"duration"`
		Segments []segment `json:"segments"`
	} `json:"itineraries"`
	ValidatingAirlineCodes []string `json:"validatingAirlineCodes"`
	TravelerPricings       []struct {
		Price struct {
			Total string `json:"total"`
		} `json:"price"`
	} `json:"travelerPricings"`
}

type segment struct {
	Departure struct {
		IataCode string `json:"iataCode"`
		At       string `json:"at"`
	} `json:"departure"`
	Arrival struct {
		IataCode string `json:"iataCode"`
		At       string `json:"at"`
	} `json:"arrival"`
	CarrierCode string `json:"carrierCode"`
	Number      string `json:"number"`
	Aircraft    struct {
		Code string `json:"code"`
	} `json:"aircraft"`
}

// classify buckets an offer by price. Only the first offer can be "budget".
func classify(price float64, index int) string {
	switch {
	case price < 500:
		if index == 0 {
			return "budget"
		}
		return "economy"
	case price < 1000:
		return "economy"
	case price < 2000:
		return "premium"
	default:
		return "business"
	}
}

// parseOffers converts the first few provider offers into flight options.
// Offers without an itinerary or a usable price are skipped. Costs are per
// traveler for a search made with the given number of adults.
func parseOffers(body []byte, originCity, destination string, travelers int) ([]types.FlightOption, error) {
	var resp flightOffersResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse flight offers: %w", err)
	}

	out := make([]types.FlightOption, 0, maxParsedOffers)
	for index, offer := range resp.Data {
		if len(out) == maxParsedOffers {
			break
		}
		if len(offer.Itineraries) == 0 || len(offer.Itineraries[0].Segments) == 0 {
			continue
		}
		price := offerPrice(offer, travelers)
		if price <= 0 {
			continue
		}

		itinerary := offer.Itineraries[0]
		first := itinerary.Segments[0]
		last := itinerary.Segments[len(itinerary.Segments)-1]

		class := classify(price, index)
		stopover := "Direct flight"
		if stops := len(itinerary.Segments) - 1; stops > 0 {
			stopover = fmt.Sprintf("%d stop(s)", stops)
		}
		aircraft := first.Aircraft.Code
		if aircraft == "" {
			aircraft = "Various"
		}
		meals := "Meals available for purchase"
		if price > 1000 {
			meals = "Meals included"
		}

		out = append(out, types.FlightOption{
			ID:                     fmt.Sprintf("%s_%d", class, index),
			Airline:                AirlineName(first.CarrierCode),
			Type:                   cabinLabels[class],
			Route:                  fmt.Sprintf("%s → %s", originCity, destination),
			Duration:               formatISODuration(itinerary.Duration),
			Cost:                   int(math.Round(price)),
			Departure:              formatClock(first.Departure.At),
			Arrival:                formatClock(last.Arrival.At),
			Stopover:               stopover,
			Aircraft:               aircraft,
			Baggage:                "Included as per airline policy",
			Meals:                  meals,
			Entertainment:          "As per airline offering",
			BookingLink:            "https://amadeus.com/book/" + offer.ID,
			OfferID:                offer.ID,
			ValidatingAirlineCodes: offer.ValidatingAirlineCodes,
			IsRealData:             true,
		})
	}
	return out, nil
}

// offerPrice is the per-traveler price. The offer total covers the whole
// party, so it is split evenly unless a traveler breakdown is present.
func offerPrice(o flightOffer, travelers int) float64 {
	if len(o.TravelerPricings) > 0 {
		if v, err := strconv.ParseFloat(o.TravelerPricings[0].Price.Total, 64); err == nil && v > 0 {
			return v
		}
	}
	raw := o.Price.Total
	if raw == "" {
		raw = o.Price.GrandTotal
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	if travelers < 1 {
		travelers = 1
	}
	return v / float64(travelers)
}

var isoDuration = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?`)

// formatISODuration turns PT2H30M into "2h 30m".
func formatISODuration(d string) string {
	m := isoDuration.FindStringSubmatch(d)
	if m == nil {
		return d
	}
	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])
	switch {
	case hours > 0 && minutes > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	case hours > 0:
		return fmt.Sprintf("%dh", hours)
	default:
		return fmt.Sprintf("%dm", minutes)
	}
}

// formatClock renders a local ISO timestamp as "08:30 AM".
func formatClock(at string) string {
	for _, layout := range []string{"2006-01-02T15:04:05", "2006-01-02T15:04", time.RFC3339} {
		if t, err := time.Parse(layout, at); err == nil {
			return t.Format("03:04 PM")
		}
	}
	return at
}
