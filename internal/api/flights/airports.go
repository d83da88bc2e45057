package flights

import "strings"

var departureAirports = map[string]string{
	"New York, NY (JFK)":      "JFK",
	"Los Angeles, CA (LAX)":   "LAX",
	"Chicago, IL (ORD)":       "ORD",
	"San Francisco, CA (SFO)": "SFO",
	"Miami, FL (MIA)":         "MIA",
	"Boston, MA (BOS)":        "BOS",
	"Washington, DC (DCA)":    "DCA",
	"Atlanta, GA (ATL)":       "ATL",
	"Seattle, WA (SEA)":       "SEA",
	"Denver, CO (DEN)":        "DEN",
	"Phoenix, AZ (PHX)":       "PHX",
	"Las Vegas, NV (LAS)":     "LAS",
	"Dallas, TX (DFW)":        "DFW",
	"Houston, TX (IAH)":       "IAH",

	"London, UK (LHR)":             "LHR",
	"Paris, France (CDG)":          "CDG",
	"Frankfurt, Germany (FRA)":     "FRA",
	"Amsterdam, Netherlands (AMS)": "AMS",
	"Madrid, Spain (MAD)":          "MAD",
	"Rome, Italy (FCO)":            "FCO",
	"Zurich, Switzerland (ZUR)":    "ZUR",

	"Tokyo, Japan (NRT)":      "NRT",
	"Singapore (SIN)":         "SIN",
	"Hong Kong (HKG)":         "HKG",
	"Sydney, Australia (SYD)": "SYD",
	"Dubai, UAE (DXB)":        "DXB",

	"New Delhi, India (DEL)": "DEL",
	"Mumbai, India (BOM)":    "BOM",
	"Bangalore, India (BLR)": "BLR",
	"Chennai, India (MAA)":   "MAA",
	"Kolkata, India (CCU)":   "CCU",
	"Hyderabad, India (HYD)": "HYD",
	"Pune, India (PNQ)":      "PNQ",
	"Ahmedabad, India (AMD)": "AMD",
}

var destinationAirports = map[string]string{
	"Paris, France":          "CDG",
	"London, United Kingdom": "LHR",
	"Rome, Italy":            "FCO",
	"Barcelona, Spain":       "BCN",
	"Amsterdam, Netherlands": "AMS",
	"Prague, Czech Republic": "PRG",
	"Vienna, Austria":        "VIE",
	"Berlin, Germany":        "BER",
	"Santorini, Greece":      "JTR",
	"Venice, Italy":          "VCE",
	"Reykjavik, Iceland":     "KEF",
	"Istanbul, Turkey":       "IST",
	"Lisbon, Portugal":       "LIS",
	"Edinburgh, Scotland":    "EDI",

	"Tokyo, Japan":         "NRT",
	"Bali, Indonesia":      "DPS",
	"Bangkok, Thailand":    "BKK",
	"Singapore, Singapore": "SIN",
	"Seoul, South Korea":   "ICN",
	"Dubai, UAE":           "DXB",
	"Kyoto, Japan":         "KIX",
	"Hong Kong, Hong Kong": "HKG",
	"Mumbai, India":        "BOM",
	"Phuket, Thailand":     "HKT",
	"Maldives, Maldives":   "MLE",

	"New York, United States":      "JFK",
	"Los Angeles, United States":   "LAX",
	"San Francisco, United States": "SFO",
	"Las Vegas, United States":     "LAS",
	"Toronto, Canada":              "YYZ",
	"Vancouver, Canada":            "YVR",
	"Miami, United States":         "MIA",
	"Chicago, United States":       "ORD",
	"Cancun, Mexico":               "CUN",

	"New Delhi, India": "DEL",
	"Bangalore, India": "BLR",
	"Chennai, India":   "MAA",
	"Kolkata, India":   "CCU",
	"Hyderabad, India": "HYD",
	"Jaipur, India":    "JAI",
	"Cochin, India":    "COK",
	"Varanasi, India":  "VNS",

	"Rio de Janeiro, Brazil":  "GIG",
	"Buenos Aires, Argentina": "EZE",
	"Lima, Peru":              "LIM",
	"Cape Town, South Africa": "CPT",
	"Marrakech, Morocco":      "RAK",
	"Cairo, Egypt":            "CAI",
	"Sydney, Australia":       "SYD",
	"Melbourne, Australia":    "MEL",
	"Auckland, New Zealand":   "AKL",
	"Costa Rica, Costa Rica":  "SJO",
}

var airlineNames = map[string]string{
	"AA": "American Airlines",
	"UA": "United Airlines",
	"DL": "Delta Air Lines",
	"BA": "British Airways",
	"LH": "Lufthansa",
	"AF": "Air France",
	"KL": "KLM",
	"EK": "Emirates",
	"QR": "Qatar Airways",
	"SQ": "Singapore Airlines",
	"AI": "Air India",
	"6E": "IndiGo",
	"SG": "SpiceJet",
	"UK": "Vistara",
}

// DepartureAirport maps a departure city label to its IATA code.
func DepartureAirport(city string) (string, bool) {
	code, ok := departureAirports[strings.TrimSpace(city)]
	return code, ok
}

// DestinationAirport maps a destination name to its IATA code.
func DestinationAirport(destination string) (string, bool) {
	code, ok := destinationAirports[strings.TrimSpace(destination)]
	return code, ok
}

// AirlineName resolves a carrier code, falling back to "<code> Airlines".
func AirlineName(code string) string {
	if name, ok := airlineNames[code]; ok {
		return name
	}
	if code == "" {
		return "Multiple Airlines"
	}
	return code + " Airlines"
}
