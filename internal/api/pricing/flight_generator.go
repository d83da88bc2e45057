package pricing

import (
	"fmt"
	"math"
	"time"

	"github.com/FACorreiaa/go-trip-planner/internal/types"
)

// BudgetTierThreshold is the adjusted base fare above which a basic-economy
// option is offered in front of the regular classes.
const BudgetTierThreshold = 600.0

// byHaul picks the text for a haul class.
type byHaul struct {
	short, medium, long string
}

func (b byHaul) pick(h types.HaulClass) string {
	switch h {
	case types.HaulShort:
		return b.short
	case types.HaulMedium:
		return b.medium
	default:
		return b.long
	}
}

type flightTemplate struct {
	id            string
	airline       string
	cabin         string
	departure     string
	duration      byHaul
	arrival       byHaul
	stopover      byHaul
	aircraft      byHaul
	baggage       string
	meals         byHaul
	entertainment string
	bookingLink   string
}

var (
	economyTemplate = flightTemplate{
		id:            "economy",
		airline:       "SkyConnect Airlines",
		cabin:         "Economy Class",
		departure:     "08:30 AM",
		duration:      byHaul{"3h 45m (Direct)", "8h 30m (1 stop)", "14h 30m (1 stop)"},
		arrival:       byHaul{"12:15 PM (same day)", "5:00 PM (same day)", "11:00 PM (+1 day)"},
		stopover:      byHaul{"Direct flight", "Frankfurt (1h 45m)", "Singapore (2h 30m)"},
		aircraft:      byHaul{"Boeing 787-9", "Boeing 787-9", "Boeing 787-9"},
		baggage:       "23kg checked, 7kg carry-on",
		meals:         byHaul{"Snacks and beverages", "2 meals included", "2 meals included"},
		entertainment: "Personal screen with 1000+ movies",
		bookingLink:   "https://skyconnect.com/book/flight123",
	}
	premiumTemplate = flightTemplate{
		id:            "premium",
		airline:       "Premium Airways",
		cabin:         "Premium Economy",
		departure:     "10:15 AM",
		duration:      byHaul{"3h 30m (Direct)", "7h 45m (Direct)", "12h 45m (Direct)"},
		arrival:       byHaul{"1:45 PM (same day)", "6:00 PM (same day)", "11:00 PM (same day)"},
		stopover:      byHaul{"Direct flight", "Direct flight", "Direct flight"},
		aircraft:      byHaul{"Airbus A350-900", "Airbus A350-900", "Airbus A350-900"},
		baggage:       "32kg checked, 10kg carry-on",
		meals:         byHaul{"Premium snacks and drinks", "3 premium meals + snacks", "3 premium meals + snacks"},
		entertainment: "Large personal screen, noise-canceling headphones",
		bookingLink:   "https://premiumairways.com/book/flight456",
	}
	businessTemplate = flightTemplate{
		id:            "business",
		airline:       "Luxury Airlines",
		cabin:         "Business Class",
		departure:     "09:45 AM",
		duration:      byHaul{"3h 20m (Direct)", "7h 20m (Direct)", "11h 20m (Direct)"},
		arrival:       byHaul{"1:05 PM (same day)", "5:05 PM (same day)", "9:05 PM (same day)"},
		stopover:      byHaul{"Direct flight", "Direct flight", "Direct flight"},
		aircraft:      byHaul{"Airbus A321", "Airbus A321", "Boeing 777-300ER"},
		baggage:       "40kg checked, 14kg carry-on",
		meals:         byHaul{"Gourmet dining, premium beverages", "Gourmet dining, premium beverages", "Gourmet dining, premium beverages"},
		entertainment: "Lie-flat seats, premium entertainment system",
		bookingLink:   "https://luxuryairlines.com/book/flight789",
	}
	budgetTemplate = flightTemplate{
		id:            "budget",
		airline:       "Budget Connect",
		cabin:         "Economy Basic",
		departure:     "05:30 AM",
		duration:      byHaul{"5h 15m (1 stop)", "12h 30m (2 stops)", "18h 45m (2 stops)"},
		arrival:       byHaul{"10:45 AM (same day)", "6:00 PM (same day)", "12:15 PM (+1 day)"},
		stopover:      byHaul{"Chicago (1h 30m)", "Chicago (2h), Frankfurt (1h 45m)", "Chicago (3h), Frankfurt (2h 30m)"},
		aircraft:      byHaul{"Boeing 737-800", "Boeing 737-800", "Boeing 737-800"},
		baggage:       "15kg checked, 7kg carry-on",
		meals:         byHaul{"Meals available for purchase", "Meals available for purchase", "Meals available for purchase"},
		entertainment: "Overhead screens, WiFi available",
		bookingLink:   "https://budgetconnect.com/book/flight101",
	}
)

func (t flightTemplate) build(route string, haul types.HaulClass, cost int) types.FlightOption {
	return types.FlightOption{
		ID:            t.id,
		Airline:       t.airline,
		Type:          t.cabin,
		Route:         route,
		Duration:      t.duration.pick(haul),
		Cost:          cost,
		Departure:     t.departure,
		Arrival:       t.arrival.pick(haul),
		Stopover:      t.stopover.pick(haul),
		Aircraft:      t.aircraft.pick(haul),
		Baggage:       t.baggage,
		Meals:         t.meals.pick(haul),
		Entertainment: t.entertainment,
		BookingLink:   t.bookingLink,
	}
}

func routeLabel(departureCity, destination string) string {
	return fmt.Sprintf("%s → %s", departureCity, destination)
}

func priceOf(v float64) int {
	if v < 0 {
		return 0
	}
	return int(math.Round(v))
}

// AdjustedBaseFare combines the catalog base fare with the season, popularity,
// destination season and route multipliers. ok is false for unknown destinations.
func AdjustedBaseFare(destination, departureCity string, asOf time.Time) (float64, bool) {
	fare, ok := LookupFare(destination)
	if !ok {
		return 0, false
	}
	popularity := UnpopularMultiplier
	if fare.Popular {
		popularity = PopularMultiplier
	}
	return fare.Base * SeasonMultiplier(asOf) * popularity * fare.SeasonMultiplier *
		RouteMultiplier(departureCity, destination), true
}

// GenerateFlightOptions prices simulated flights for a route. Unknown
// destinations get a single economy option at the default fare; known ones get
// economy, premium and business, preceded by a budget option when the adjusted
// base fare exceeds BudgetTierThreshold. The result is never empty.
func GenerateFlightOptions(destination, departureCity string, asOf time.Time) []types.FlightOption {
	if departureCity == "" {
		departureCity = DefaultDepartureCity
	}
	route := routeLabel(departureCity, destination)

	adjusted, ok := AdjustedBaseFare(destination, departureCity, asOf)
	if !ok {
		cost := priceOf(DefaultBaseFare * SeasonMultiplier(asOf) * RouteMultiplier(departureCity, destination))
		opt := economyTemplate.build(route, types.HaulLong, cost)
		opt.Duration = "12h 30m (1 stop)"
		opt.Stopover = "Frankfurt (2h 15m)"
		return []types.FlightOption{opt}
	}

	fare, _ := LookupFare(destination)
	haul := fare.Distance

	options := make([]types.FlightOption, 0, 4)
	if adjusted > BudgetTierThreshold {
		options = append(options, budgetTemplate.build(route, haul, priceOf(adjusted*0.7*RouteMultiStop)))
	}
	options = append(options,
		economyTemplate.build(route, haul, priceOf(adjusted*ClassEconomy*RouteOneStop)),
		premiumTemplate.build(route, haul, priceOf(adjusted*ClassPremium*RouteDirect)),
		businessTemplate.build(route, haul, priceOf(adjusted*ClassBusiness*RouteDirect)),
	)
	return options
}

// CheapestCost returns the lowest per-traveler cost, or 0 for an empty slice.
func CheapestCost(options []types.FlightOption) int {
	if len(options) == 0 {
		return 0
	}
	min := options[0].Cost
	for _, o := range options[1:] {
		if o.Cost < min {
			min = o.Cost
		}
	}
	return min
}
