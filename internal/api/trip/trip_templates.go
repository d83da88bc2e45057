package trip

import "github.com/FACorreiaa/go-trip-planner/internal/types"

// destinationPool is sampled when a request leaves the destination empty.
var destinationPool = []string{
	"Bali, Indonesia", "Paris, France", "Tokyo, Japan", "Barcelona, Spain",
	"Santorini, Greece", "Dubai, UAE", "Bangkok, Thailand", "New York, United States",
	"Rome, Italy", "Reykjavik, Iceland", "Marrakech, Morocco", "Costa Rica, Costa Rica",
}

// DestinationPool returns the destinations picked from when none is requested.
func DestinationPool() []string {
	out := make([]string, len(destinationPool))
	copy(out, destinationPool)
	return out
}

type accommodationTemplate struct {
	option     types.AccommodationOption
	multiplier float64
}

var accommodationTemplates = []accommodationTemplate{
	{
		multiplier: 0.6,
		option: types.AccommodationOption{
			ID:           "budget",
			Name:         "Cozy Beach Hostel",
			Type:         "3-star boutique hostel",
			Amenities:    []string{"Pool", "Free WiFi", "Beach Access"},
			Location:     "Central Area",
			Description:  "A charming hostel with modern amenities and vibrant social atmosphere",
			RoomType:     "Shared dormitory (4-bed)",
			CheckIn:      "2:00 PM",
			CheckOut:     "11:00 AM",
			Included:     []string{"Free breakfast", "Beach towels", "Luggage storage"},
			Facilities:   []string{"24/7 reception", "Laundry service", "Tour desk", "Bicycle rental"},
			Distance:     "50m from beach, 5 min walk to restaurants",
			Cancellation: "Free cancellation up to 24 hours",
			Rating:       "4.2/5 (Based on 1,250 reviews)",
			BookingLink:  "https://beachhostel.com/book/room123",
		},
	},
	{
		multiplier: 1.0,
		option: types.AccommodationOption{
			ID:           "standard",
			Name:         "Tropical Paradise Resort",
			Type:         "4-star beachfront resort",
			Amenities:    []string{"Pool", "Spa", "Beach Access", "Free WiFi"},
			Location:     "Premium Beach Area",
			Description:  "Elegant resort offering perfect blend of comfort and traditional hospitality",
			RoomType:     "Deluxe Ocean View Room",
			CheckIn:      "3:00 PM",
			CheckOut:     "12:00 PM",
			Included:     []string{"Daily breakfast", "Airport shuttle", "Welcome drink", "Beach activities"},
			Facilities:   []string{"3 restaurants", "Infinity pool", "Spa & wellness center", "Kids club", "Fitness center"},
			Distance:     "Beachfront location, 15 min to shopping center",
			Cancellation: "Free cancellation up to 48 hours",
			Rating:       "4.6/5 (Based on 2,180 reviews)",
			BookingLink:  "https://tropicalparadise.com/book/room456",
		},
	},
	{
		multiplier: 1.8,
		option: types.AccommodationOption{
			ID:           "luxury",
			Name:         "Royal Ocean Villa",
			Type:         "5-star luxury villa",
			Amenities:    []string{"Private Pool", "Spa", "Butler Service", "Beach Access", "Free WiFi", "Restaurant"},
			Location:     "Exclusive Cliffs",
			Description:  "Ultra-luxurious private villa with breathtaking ocean views and personalized butler service",
			RoomType:     "Private Villa with Ocean View",
			CheckIn:      "2:00 PM",
			CheckOut:     "1:00 PM",
			Included:     []string{"Personal butler", "Private chef available", "Luxury transfers", "Spa treatments", "All meals"},
			Facilities:   []string{"Private infinity pool", "Home theater", "Wine cellar", "Private beach access", "Helipad"},
			Distance:     "Private beach access, helicopter transfers available",
			Cancellation: "Free cancellation up to 7 days",
			Rating:       "4.9/5 (Based on 850 reviews)",
			BookingLink:  "https://royaloceanvilla.com/book/villa789",
		},
	},
}

var defaultCategories = []string{"culture", "nature", "food"}

// styleCategories maps a travel style to the activity categories drawn from.
// Styles without an entry use defaultCategories.
var styleCategories = map[types.TravelStyle][]string{
	types.TravelStyleAdventure:  {"adventure", "nature", "sports"},
	types.TravelStyleCultural:   {"culture", "history", "art"},
	types.TravelStyleRelaxation: {"wellness", "beach", "spa"},
	types.TravelStyleLuxury:     {"fine_dining", "shopping", "exclusive"},
	types.TravelStyleBudget:     {"free", "local", "walking"},
}

// activityTitles has no "food" pool; that category borrows the culture titles.
var activityTitles = map[string][]string{
	"adventure": {
		"Mountain Hiking & Sunrise Trek", "White Water Rafting Adventure", "Rock Climbing & Rappelling",
		"Jungle Zip-lining Experience", "Scuba Diving Expedition", "Paragliding Over Valleys",
		"Off-road ATV Adventure",
	},
	"culture": {
		"Historic Temple & Museum Tour", "Traditional Cooking Class", "Local Art & Craft Workshop",
		"Cultural Dance Performance", "Heritage Walking Tour", "Traditional Market Experience",
		"Local Festival Participation",
	},
	"history": {
		"Ancient Architecture Tour", "Historical Sites Exploration", "War Memorial & Museum Visit",
		"Archaeological Site Discovery", "Colonial Heritage Walk",
	},
	"art": {
		"Local Gallery & Artist Studio Tour", "Traditional Craft Workshop", "Street Art & Mural Discovery",
		"Contemporary Art Museum Visit", "Artisan Market Exploration",
	},
	"wellness": {
		"Beach Day & Spa Treatment", "Yoga & Meditation Session", "Hot Springs & Wellness",
		"Ayurvedic Massage & Therapy", "Mindfulness & Nature Therapy",
	},
	"beach": {
		"Luxury Resort Pool Day", "Beach Massage & Cocktails", "Sunset Cruise & Dinner",
		"Water Sports & Snorkeling", "Beachside Dining Experience",
	},
	"spa": {
		"Full Day Spa & Wellness Package", "Traditional Healing & Spa", "Couples Massage & Relaxation",
		"Detox & Rejuvenation Program", "Luxury Spa & Beauty Treatment",
	},
	"fine_dining": {
		"Michelin Star Restaurant Experience", "Wine Tasting & Gourmet Dinner", "Chef's Table & Culinary Journey",
		"Private Dining with Local Chef", "Rooftop Restaurant & City Views",
	},
	"shopping": {
		"Luxury Shopping Districts Tour", "Designer Boutique & Fashion Walk", "Local Markets & Artisan Shopping",
		"Vintage & Antique Hunting", "Shopping Mall & Entertainment",
	},
	"exclusive": {
		"Private Yacht Charter Experience", "Helicopter City Tour", "VIP Cultural Site Access",
		"Private Guide & Exclusive Tour", "Celebrity Chef Cooking Class",
	},
	"nature": {
		"National Park & Wildlife Safari", "Botanical Garden & Nature Walk", "Bird Watching & Photography",
		"Waterfall Hike & Swimming", "Scenic Nature Trail & Picnic",
	},
	"sports": {
		"Golf Course & Country Club", "Tennis & Racquet Sports", "Cycling Tour & Adventure",
		"Water Sports & Activities", "Fitness & Outdoor Training",
	},
	"free": {
		"Free Walking Tour of City", "Public Park & Garden Visit", "Free Museum Day Exploration",
		"Street Performance & Art", "Local Community Event",
	},
	"local": {
		"Local Neighborhood Exploration", "Community Market Visit", "Traditional Craft Demonstration",
		"Local Family Home Visit", "Authentic Street Food Tour",
	},
	"walking": {
		"Historic City Center Walk", "Architectural Heritage Tour", "Local Neighborhood Discovery",
		"Self-Guided Cultural Walk", "Scenic Waterfront Promenade",
	},
}

func titlesFor(category string) []string {
	if titles, ok := activityTitles[category]; ok {
		return titles
	}
	return activityTitles["culture"]
}

// CategoriesForStyle returns the activity categories used for a travel style.
func CategoriesForStyle(style types.TravelStyle) []string {
	if cats, ok := styleCategories[style]; ok {
		return cats
	}
	return defaultCategories
}

var defaultRecommendations = types.Recommendations{
	BestTime: "April to October (peak season)",
	Weather:  "Tropical climate, average 28°C",
	Currency: "Local Currency",
	Language: "English widely spoken",
	Timezone: "+8 GMT",
}
