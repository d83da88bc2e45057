package types

type HaulClass string

const (
	HaulShort  HaulClass = "short"
	HaulMedium HaulClass = "medium"
	HaulLong   HaulClass = "long"
)

// DepartureCity is a static catalog row for an origin city.
type DepartureCity struct {
	City     string `json:"city"`
	Region   string `json:"region"`
	Timezone string `json:"timezone"`
	IsHub    bool   `json:"isHub"`
}

// DestinationFare is a static catalog row for a known destination.
type DestinationFare struct {
	Destination      string    `json:"destination"`
	Base             float64   `json:"base"`
	Distance         HaulClass `json:"distance"`
	Popular          bool      `json:"popular"`
	SeasonMultiplier float64   `json:"seasonMultiplier"`
}

// FlightOption is a priced flight for one traveler. TotalCost, WithinBudget and
// BudgetPercentage are only set once the option has been checked against a budget.
type FlightOption struct {
	ID                     string   `json:"id"`
	Airline                string   `json:"airline"`
	Type                   string   `json:"type"`
	Route                  string   `json:"route"`
	Duration               string   `json:"duration"`
	Cost                   int      `json:"cost"`
	Departure              string   `json:"departure"`
	Arrival                string   `json:"arrival"`
	Stopover               string   `json:"stopover"`
	Aircraft               string   `json:"aircraft"`
	Baggage                string   `json:"baggage"`
	Meals                  string   `json:"meals"`
	Entertainment          string   `json:"entertainment"`
	BookingLink            string   `json:"bookingLink"`
	OfferID                string   `json:"offerId,omitempty"`
	ValidatingAirlineCodes []string `json:"validatingAirlineCodes,omitempty"`
	IsRealData             bool     `json:"isRealData"`
	TotalCost              int      `json:"totalCost"`
	WithinBudget           bool     `json:"withinBudget"`
	BudgetPercentage       int      `json:"budgetPercentage"`
}

type FlightInsights struct {
	PriceRange    string `json:"priceRange"`
	BestTime      string `json:"bestTime"`
	Seasonality   string `json:"seasonality"`
	CurrentSeason string `json:"currentSeason,omitempty"`
}

// Destination is a searchable destination entry derived from the fare catalog.
type Destination struct {
	Name    string `json:"name"`
	Country string `json:"country"`
	Region  string `json:"region"`
	Display string `json:"display"`
	Popular bool   `json:"popular"`
}

type DestinationSearchResponse struct {
	Destinations []Destination `json:"destinations"`
	Total        int           `json:"total"`
}
