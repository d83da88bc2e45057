package tripChat

import (
	"fmt"
	"strings"
)

// Categories is the fixed edit vocabulary, in matching order.
var Categories = []string{"cultural", "food", "outdoor", "adventure", "shopping", "relaxation", "nightlife"}

var categorySynonyms = map[string][]string{
	"cultural":  {"culture", "museum", "historic"},
	"food":      {"dining", "restaurant", "cuisine"},
	"outdoor":   {"nature", "hiking"},
	"adventure": {"adventurous", "extreme", "thrilling"},
}

var activityPools = map[string][]string{
	"cultural": {
		"Visit local museums",
		"Explore historic districts",
		"Traditional cultural shows",
		"Art gallery tours",
		"Heritage site visits",
		"Local craft workshops",
		"Cultural performances",
		"Religious site tours",
	},
	"food": {
		"Food market exploration",
		"Cooking classes",
		"Street food tours",
		"Local restaurant experiences",
		"Wine/beer tasting",
		"Traditional cuisine workshops",
		"Food festivals",
		"Farm-to-table experiences",
	},
	"outdoor": {
		"Nature hikes",
		"Park exploration",
		"Outdoor sports",
		"Beach activities",
		"Mountain climbing",
		"Cycling tours",
		"Water sports",
		"Wildlife watching",
	},
	"adventure": {
		"Extreme sports",
		"Rock climbing",
		"Bungee jumping",
		"Zip lining",
		"Skydiving",
		"White water rafting",
		"Paragliding",
		"Adventure parks",
	},
	"shopping": {
		"Local markets",
		"Shopping districts",
		"Boutique stores",
		"Souvenir hunting",
		"Fashion shopping",
		"Antique shopping",
		"Craft markets",
		"Designer outlets",
	},
	"relaxation": {
		"Spa treatments",
		"Beach lounging",
		"Peaceful gardens",
		"Meditation sessions",
		"Yoga classes",
		"Wellness retreats",
		"Hot springs",
		"Scenic viewpoints",
	},
	"nightlife": {
		"Local bars and pubs",
		"Night markets",
		"Live music venues",
		"Dance clubs",
		"Evening cruises",
		"Rooftop lounges",
		"Night tours",
		"Entertainment shows",
	},
}

var timeSlots = []string{
	"Morning (9:00 AM - 12:00 PM)",
	"Afternoon (1:00 PM - 5:00 PM)",
	"Evening (6:00 PM - 9:00 PM)",
}

var descriptionTemplates = map[string]string{
	"Visit local museums":     "Explore the rich history and culture at %s's renowned museums",
	"Food market exploration": "Discover local flavors and ingredients at bustling markets in %s",
	"Nature hikes":            "Experience the natural beauty surrounding %s with guided hiking trails",
	"Local bars and pubs":     "Experience %s's nightlife scene at authentic local establishments",
	"Shopping districts":      "Browse unique local goods and international brands in %s's shopping areas",
}

var durations = map[string]string{
	"Visit local museums":     "2-3 hours",
	"Food market exploration": "1-2 hours",
	"Nature hikes":            "3-4 hours",
	"Cooking classes":         "2-3 hours",
	"Shopping districts":      "2-4 hours",
}

var costRanges = map[string]string{
	"Visit local museums":     "$15-25",
	"Food market exploration": "$20-40",
	"Nature hikes":            "$10-30",
	"Cooking classes":         "$50-80",
	"Shopping districts":      "$50-200+",
}

const (
	defaultDuration  = "2-3 hours"
	defaultCostRange = "$20-50"
)

var suggestions = []string{
	"Make day 2 more cultural",
	"Add food experiences to day 1",
	"Replace shopping with nature activities",
	"Make day 3 more adventurous",
	"Add relaxation activities to day 4",
	"Focus on nightlife for day 5",
	"Replace indoor activities with outdoor ones",
	"Add more local cultural experiences",
}

// Suggestions returns example edit requests for the chat UI.
func Suggestions() []string {
	out := make([]string, len(suggestions))
	copy(out, suggestions)
	return out
}

// ActivityPool returns the content pool of a category, nil if unknown.
func ActivityPool(category string) []string {
	pool, ok := activityPools[category]
	if !ok {
		return nil
	}
	out := make([]string, len(pool))
	copy(out, pool)
	return out
}

func describe(activity, destination string) string {
	if tpl, ok := descriptionTemplates[activity]; ok {
		return fmt.Sprintf(tpl, destination)
	}
	return fmt.Sprintf("Enjoy %s in the beautiful city of %s", strings.ToLower(activity), destination)
}

func durationOf(activity string) string {
	if d, ok := durations[activity]; ok {
		return d
	}
	return defaultDuration
}

func costRangeOf(activity string) string {
	if c, ok := costRanges[activity]; ok {
		return c
	}
	return defaultCostRange
}
