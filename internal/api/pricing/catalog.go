package pricing

import (
	"strings"
	"time"

	"github.com/FACorreiaa/go-trip-planner/internal/types"
)

// DefaultDepartureCity is used when a request does not name an origin.
const DefaultDepartureCity = "New York, NY (JFK)"

// DefaultBaseFare prices routes to destinations missing from the catalog.
const DefaultBaseFare = 500.0

const (
	ClassEconomy  = 1.0
	ClassPremium  = 1.8
	ClassBusiness = 3.2
	ClassFirst    = 5.5

	RouteDirect    = 1.0
	RouteOneStop   = 0.85
	RouteMultiStop = 0.75

	BookingAdvance    = 0.9
	BookingNormal     = 1.0
	BookingLastMinute = 1.4

	PopularMultiplier   = 1.1
	UnpopularMultiplier = 0.95
)

// RegionInternational is returned for destinations outside the region table.
const RegionInternational = "international"

var departureCities = []types.DepartureCity{
	// North America
	{City: "New York, NY (JFK)", Region: "northeast", Timezone: "EST", IsHub: true},
	{City: "Los Angeles, CA (LAX)", Region: "west", Timezone: "PST", IsHub: true},
	{City: "Chicago, IL (ORD)", Region: "midwest", Timezone: "CST", IsHub: true},
	{City: "San Francisco, CA (SFO)", Region: "west", Timezone: "PST", IsHub: true},
	{City: "Miami, FL (MIA)", Region: "southeast", Timezone: "EST", IsHub: true},
	{City: "Boston, MA (BOS)", Region: "northeast", Timezone: "EST", IsHub: false},
	{City: "Washington, DC (DCA)", Region: "northeast", Timezone: "EST", IsHub: false},
	{City: "Atlanta, GA (ATL)", Region: "southeast", Timezone: "EST", IsHub: true},
	{City: "Seattle, WA (SEA)", Region: "west", Timezone: "PST", IsHub: false},
	{City: "Denver, CO (DEN)", Region: "west", Timezone: "MST", IsHub: true},
	{City: "Phoenix, AZ (PHX)", Region: "west", Timezone: "MST", IsHub: false},
	{City: "Las Vegas, NV (LAS)", Region: "west", Timezone: "PST", IsHub: false},
	{City: "Dallas, TX (DFW)", Region: "south", Timezone: "CST", IsHub: true},
	{City: "Houston, TX (IAH)", Region: "south", Timezone: "CST", IsHub: true},

	// Europe
	{City: "London, UK (LHR)", Region: "europe", Timezone: "GMT", IsHub: true},
	{City: "Paris, France (CDG)", Region: "europe", Timezone: "CET", IsHub: true},
	{City: "Frankfurt, Germany (FRA)", Region: "europe", Timezone: "CET", IsHub: true},
	{City: "Amsterdam, Netherlands (AMS)", Region: "europe", Timezone: "CET", IsHub: true},
	{City: "Madrid, Spain (MAD)", Region: "europe", Timezone: "CET", IsHub: false},
	{City: "Rome, Italy (FCO)", Region: "europe", Timezone: "CET", IsHub: false},
	{City: "Zurich, Switzerland (ZUR)", Region: "europe", Timezone: "CET", IsHub: false},

	// Asia Pacific
	{City: "Tokyo, Japan (NRT)", Region: "asia", Timezone: "JST", IsHub: true},
	{City: "Singapore (SIN)", Region: "asia", Timezone: "SGT", IsHub: true},
	{City: "Hong Kong (HKG)", Region: "asia", Timezone: "HKT", IsHub: true},
	{City: "Sydney, Australia (SYD)", Region: "oceania", Timezone: "AEST", IsHub: true},
	{City: "Dubai, UAE (DXB)", Region: "middle_east", Timezone: "GST", IsHub: true},

	// India
	{City: "New Delhi, India (DEL)", Region: "india", Timezone: "IST", IsHub: true},
	{City: "Mumbai, India (BOM)", Region: "india", Timezone: "IST", IsHub: true},
	{City: "Bangalore, India (BLR)", Region: "india", Timezone: "IST", IsHub: true},
	{City: "Chennai, India (MAA)", Region: "india", Timezone: "IST", IsHub: false},
	{City: "Kolkata, India (CCU)", Region: "india", Timezone: "IST", IsHub: false},
	{City: "Hyderabad, India (HYD)", Region: "india", Timezone: "IST", IsHub: false},
	{City: "Pune, India (PNQ)", Region: "india", Timezone: "IST", IsHub: false},
	{City: "Ahmedabad, India (AMD)", Region: "india", Timezone: "IST", IsHub: false},
}

var destinationFares = []types.DestinationFare{
	// Europe
	{Destination: "Paris, France", Base: 450, Distance: types.HaulMedium, Popular: true, SeasonMultiplier: 1.2},
	{Destination: "London, United Kingdom", Base: 400, Distance: types.HaulMedium, Popular: true, SeasonMultiplier: 1.15},
	{Destination: "Rome, Italy", Base: 480, Distance: types.HaulMedium, Popular: true, SeasonMultiplier: 1.3},
	{Destination: "Barcelona, Spain", Base: 420, Distance: types.HaulMedium, Popular: true, SeasonMultiplier: 1.25},
	{Destination: "Amsterdam, Netherlands", Base: 380, Distance: types.HaulMedium, Popular: true, SeasonMultiplier: 1.1},
	{Destination: "Prague, Czech Republic", Base: 350, Distance: types.HaulMedium, Popular: true, SeasonMultiplier: 1.05},
	{Destination: "Vienna, Austria", Base: 390, Distance: types.HaulMedium, Popular: false, SeasonMultiplier: 1.1},
	{Destination: "Berlin, Germany", Base: 370, Distance: types.HaulMedium, Popular: true, SeasonMultiplier: 1.1},
	{Destination: "Santorini, Greece", Base: 520, Distance: types.HaulMedium, Popular: true, SeasonMultiplier: 1.4},
	{Destination: "Venice, Italy", Base: 460, Distance: types.HaulMedium, Popular: true, SeasonMultiplier: 1.3},
	{Destination: "Reykjavik, Iceland", Base: 280, Distance: types.HaulShort, Popular: true, SeasonMultiplier: 1.0},
	{Destination: "Istanbul, Turkey", Base: 550, Distance: types.HaulLong, Popular: true, SeasonMultiplier: 1.2},
	{Destination: "Lisbon, Portugal", Base: 400, Distance: types.HaulMedium, Popular: true, SeasonMultiplier: 1.15},
	{Destination: "Edinburgh, Scotland", Base: 380, Distance: types.HaulMedium, Popular: true, SeasonMultiplier: 1.1},

	// Asia
	{Destination: "Tokyo, Japan", Base: 750, Distance: types.HaulLong, Popular: true, SeasonMultiplier: 1.2},
	{Destination: "Bali, Indonesia", Base: 850, Distance: types.HaulLong, Popular: true, SeasonMultiplier: 1.3},
	{Destination: "Bangkok, Thailand", Base: 680, Distance: types.HaulLong, Popular: true, SeasonMultiplier: 1.1},
	{Destination: "Singapore, Singapore", Base: 720, Distance: types.HaulLong, Popular: true, SeasonMultiplier: 1.15},
	{Destination: "Seoul, South Korea", Base: 780, Distance: types.HaulLong, Popular: true, SeasonMultiplier: 1.1},
	{Destination: "Dubai, UAE", Base: 650, Distance: types.HaulLong, Popular: true, SeasonMultiplier: 1.2},
	{Destination: "Kyoto, Japan", Base: 760, Distance: types.HaulLong, Popular: true, SeasonMultiplier: 1.2},
	{Destination: "Hong Kong, Hong Kong", Base: 700, Distance: types.HaulLong, Popular: true, SeasonMultiplier: 1.15},
	{Destination: "Mumbai, India", Base: 650, Distance: types.HaulLong, Popular: true, SeasonMultiplier: 1.1},
	{Destination: "Phuket, Thailand", Base: 720, Distance: types.HaulLong, Popular: true, SeasonMultiplier: 1.25},
	{Destination: "Maldives, Maldives", Base: 950, Distance: types.HaulLong, Popular: true, SeasonMultiplier: 1.4},

	// North America
	{Destination: "New York, United States", Base: 250, Distance: types.HaulShort, Popular: true, SeasonMultiplier: 1.1},
	{Destination: "Los Angeles, United States", Base: 180, Distance: types.HaulShort, Popular: true, SeasonMultiplier: 1.05},
	{Destination: "San Francisco, United States", Base: 200, Distance: types.HaulShort, Popular: true, SeasonMultiplier: 1.1},
	{Destination: "Las Vegas, United States", Base: 150, Distance: types.HaulShort, Popular: true, SeasonMultiplier: 1.2},
	{Destination: "Toronto, Canada", Base: 220, Distance: types.HaulShort, Popular: true, SeasonMultiplier: 1.0},
	{Destination: "Vancouver, Canada", Base: 240, Distance: types.HaulShort, Popular: true, SeasonMultiplier: 1.05},
	{Destination: "Miami, United States", Base: 190, Distance: types.HaulShort, Popular: true, SeasonMultiplier: 1.15},
	{Destination: "Chicago, United States", Base: 170, Distance: types.HaulShort, Popular: true, SeasonMultiplier: 1.0},
	{Destination: "Cancun, Mexico", Base: 320, Distance: types.HaulMedium, Popular: true, SeasonMultiplier: 1.3},

	// South America
	{Destination: "Rio de Janeiro, Brazil", Base: 580, Distance: types.HaulLong, Popular: true, SeasonMultiplier: 1.2},
	{Destination: "Buenos Aires, Argentina", Base: 620, Distance: types.HaulLong, Popular: true, SeasonMultiplier: 1.1},
	{Destination: "Lima, Peru", Base: 450, Distance: types.HaulMedium, Popular: true, SeasonMultiplier: 1.15},

	// Africa
	{Destination: "Cape Town, South Africa", Base: 850, Distance: types.HaulLong, Popular: true, SeasonMultiplier: 1.2},
	{Destination: "Marrakech, Morocco", Base: 520, Distance: types.HaulMedium, Popular: true, SeasonMultiplier: 1.25},
	{Destination: "Cairo, Egypt", Base: 580, Distance: types.HaulLong, Popular: true, SeasonMultiplier: 1.1},

	// Oceania
	{Destination: "Sydney, Australia", Base: 950, Distance: types.HaulLong, Popular: true, SeasonMultiplier: 1.15},
	{Destination: "Melbourne, Australia", Base: 920, Distance: types.HaulLong, Popular: true, SeasonMultiplier: 1.1},
	{Destination: "Auckland, New Zealand", Base: 880, Distance: types.HaulLong, Popular: true, SeasonMultiplier: 1.1},

	// Central America
	{Destination: "Costa Rica, Costa Rica", Base: 380, Distance: types.HaulMedium, Popular: true, SeasonMultiplier: 1.2},

	// India
	{Destination: "New Delhi, India", Base: 680, Distance: types.HaulLong, Popular: true, SeasonMultiplier: 1.15},
	{Destination: "Bangalore, India", Base: 720, Distance: types.HaulLong, Popular: true, SeasonMultiplier: 1.1},
	{Destination: "Chennai, India", Base: 660, Distance: types.HaulLong, Popular: false, SeasonMultiplier: 1.05},
	{Destination: "Kolkata, India", Base: 640, Distance: types.HaulLong, Popular: false, SeasonMultiplier: 1.0},
	{Destination: "Hyderabad, India", Base: 690, Distance: types.HaulLong, Popular: false, SeasonMultiplier: 1.05},
	{Destination: "Jaipur, India", Base: 620, Distance: types.HaulLong, Popular: true, SeasonMultiplier: 1.2},
	{Destination: "Cochin, India", Base: 670, Distance: types.HaulLong, Popular: true, SeasonMultiplier: 1.25},
	{Destination: "Varanasi, India", Base: 580, Distance: types.HaulLong, Popular: true, SeasonMultiplier: 1.15},
}

// regionMembers is ordered so that listings keep a stable region order.
var regionMembers = []struct {
	Name    string
	Members []string
}{
	{"Europe", []string{"Paris, France", "London, United Kingdom", "Rome, Italy", "Barcelona, Spain",
		"Amsterdam, Netherlands", "Prague, Czech Republic", "Vienna, Austria", "Berlin, Germany",
		"Santorini, Greece", "Venice, Italy", "Reykjavik, Iceland", "Istanbul, Turkey",
		"Lisbon, Portugal", "Edinburgh, Scotland"}},
	{"Asia", []string{"Tokyo, Japan", "Bali, Indonesia", "Bangkok, Thailand", "Singapore, Singapore",
		"Seoul, South Korea", "Kyoto, Japan", "Hong Kong, Hong Kong", "Phuket, Thailand"}},
	{"India", []string{"Mumbai, India", "New Delhi, India", "Bangalore, India", "Chennai, India",
		"Kolkata, India", "Hyderabad, India", "Pune, India", "Ahmedabad, India",
		"Jaipur, India", "Cochin, India", "Varanasi, India"}},
	{"Middle East", []string{"Dubai, UAE"}},
	{"North America", []string{"New York, United States", "Los Angeles, United States", "San Francisco, United States",
		"Las Vegas, United States", "Toronto, Canada", "Vancouver, Canada",
		"Miami, United States", "Chicago, United States"}},
	{"Central America", []string{"Cancun, Mexico", "Costa Rica, Costa Rica"}},
	{"South America", []string{"Rio de Janeiro, Brazil", "Buenos Aires, Argentina", "Lima, Peru"}},
	{"Africa", []string{"Cape Town, South Africa", "Marrakech, Morocco", "Cairo, Egypt"}},
	{"Oceania", []string{"Sydney, Australia", "Melbourne, Australia", "Auckland, New Zealand"}},
	{"Special", []string{"Maldives, Maldives"}},
}

var (
	departureIndex   = indexDepartures(departureCities)
	fareIndex        = indexFares(destinationFares)
	regionIndex      = indexRegions()
	regionNamesByTag = indexRegionNames()
)

func indexDepartures(rows []types.DepartureCity) map[string]types.DepartureCity {
	m := make(map[string]types.DepartureCity, len(rows))
	for _, r := range rows {
		m[r.City] = r
	}
	return m
}

func indexFares(rows []types.DestinationFare) map[string]types.DestinationFare {
	m := make(map[string]types.DestinationFare, len(rows))
	for _, r := range rows {
		m[r.Destination] = r
	}
	return m
}

func indexRegions() map[string]string {
	m := make(map[string]string)
	for _, region := range regionMembers {
		tag := RegionTag(region.Name)
		for _, dest := range region.Members {
			if _, seen := m[dest]; !seen {
				m[dest] = tag
			}
		}
	}
	return m
}

func indexRegionNames() map[string]string {
	m := make(map[string]string, len(regionMembers))
	for _, region := range regionMembers {
		m[RegionTag(region.Name)] = region.Name
	}
	return m
}

// RegionTag turns a display region name into its tag ("Middle East" -> "middle_east").
func RegionTag(name string) string {
	return strings.Replace(strings.ToLower(name), " ", "_", 1)
}

// LookupFare returns the catalog row for a destination.
func LookupFare(destination string) (types.DestinationFare, bool) {
	f, ok := fareIndex[strings.TrimSpace(destination)]
	return f, ok
}

// LookupDeparture returns the catalog row for a departure city.
func LookupDeparture(city string) (types.DepartureCity, bool) {
	d, ok := departureIndex[strings.TrimSpace(city)]
	return d, ok
}

// RegionOf returns the region tag of a destination, or RegionInternational.
func RegionOf(destination string) string {
	if tag, ok := regionIndex[strings.TrimSpace(destination)]; ok {
		return tag
	}
	return RegionInternational
}

// RouteMultiplier discounts same-region routes, Indian origins flying to
// Asia, the Middle East or Europe, and hub origins. The first rule that
// applies wins.
func RouteMultiplier(departureCity, destination string) float64 {
	dep, ok := LookupDeparture(departureCity)
	if !ok {
		return 1.0
	}
	if _, ok := LookupFare(destination); !ok {
		return 1.0
	}

	destRegion := RegionOf(destination)
	if dep.Region == destRegion {
		return 0.85
	}
	if dep.Region == "india" {
		switch destRegion {
		case "asia", "middle_east":
			return 0.75
		case "europe":
			return 0.90
		}
	}
	if dep.IsHub {
		return 0.95
	}
	return 1.0
}

// SeasonMultiplier applies calendar bands: Jun-Aug 1.3, Dec-Feb 1.2, Mar-May 1.1, else 1.0.
func SeasonMultiplier(t time.Time) float64 {
	switch t.Month() {
	case time.June, time.July, time.August:
		return 1.3
	case time.December, time.January, time.February:
		return 1.2
	case time.March, time.April, time.May:
		return 1.1
	default:
		return 1.0
	}
}

// DepartureCities returns every known departure city in catalog order.
func DepartureCities() []types.DepartureCity {
	out := make([]types.DepartureCity, len(departureCities))
	copy(out, departureCities)
	return out
}

// PopularDepartureCities returns the hub cities. A limit <= 0 returns all of them.
func PopularDepartureCities(limit int) []types.DepartureCity {
	out := make([]types.DepartureCity, 0, len(departureCities))
	for _, c := range departureCities {
		if c.IsHub {
			out = append(out, c)
		}
	}
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out
}

// DepartureCitiesByRegion matches the region tag case-insensitively.
func DepartureCitiesByRegion(region string) []types.DepartureCity {
	out := make([]types.DepartureCity, 0)
	for _, c := range departureCities {
		if strings.EqualFold(c.Region, region) {
			out = append(out, c)
		}
	}
	return out
}

// DestinationFares returns every catalog fare in catalog order.
func DestinationFares() []types.DestinationFare {
	out := make([]types.DestinationFare, len(destinationFares))
	copy(out, destinationFares)
	return out
}
