package types

import (
	"time"

	"github.com/google/uuid"
)

type TravelStyle string

const (
	TravelStyleAdventure  TravelStyle = "adventure"
	TravelStyleCultural   TravelStyle = "cultural"
	TravelStyleRelaxation TravelStyle = "relaxation"
	TravelStyleCity       TravelStyle = "city"
	TravelStyleNature     TravelStyle = "nature"
	TravelStyleLuxury     TravelStyle = "luxury"
	TravelStyleBudget     TravelStyle = "budget"
)

type DataSource string

const (
	DataSourceRealAPI   DataSource = "real_api_data"
	DataSourceSimulated DataSource = "simulated_data"
)

type TripStatus string

const (
	TripStatusActive  TripStatus = "active"
	TripStatusDeleted TripStatus = "deleted"
)

const (
	// MaxBudget is the largest budget the trips table can store.
	MaxBudget = 9_999_999_999.0
	// MaxTravelers caps the party size a plan is priced for.
	MaxTravelers = 50
)

// TripRequest carries the user's preferences for a generated plan.
type TripRequest struct {
	Destination         string      `json:"destination,omitempty" validate:"omitempty,min=1,max=100" example:"Paris, France"`
	Budget              float64     `json:"budget" validate:"required,gt=0,lte=9999999999" example:"5000"`
	Travelers           string      `json:"travelers" validate:"required,max=20,travelers" example:"2"`
	Duration            string      `json:"duration" validate:"required,max=20,travelrange" example:"7-10"`
	TravelStyle         TravelStyle `json:"travelStyle,omitempty" validate:"omitempty,oneof=adventure cultural relaxation city nature luxury budget" example:"cultural"`
	DepartureCity       string      `json:"departureCity,omitempty" validate:"omitempty,max=100" example:"London, UK (LHR)"`
	SpecialRequirements string      `json:"specialRequirements,omitempty" validate:"omitempty,max=500"`
}

// BudgetAllocation splits the trip budget. Flights are deducted first and the
// remaining shares are taken from what is left.
type BudgetAllocation struct {
	Flights       int  `json:"flights"`
	Accommodation int  `json:"accommodation"`
	Activities    int  `json:"activities"`
	Food          int  `json:"food"`
	Transport     int  `json:"transport"`
	OverBudget    bool `json:"overBudget"`
	Shortfall     int  `json:"shortfall,omitempty"`
}

type AccommodationOption struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Type         string   `json:"type"`
	Cost         int      `json:"cost"`
	Amenities    []string `json:"amenities"`
	Location     string   `json:"location"`
	Description  string   `json:"description"`
	RoomType     string   `json:"roomType"`
	CheckIn      string   `json:"checkIn"`
	CheckOut     string   `json:"checkOut"`
	Included     []string `json:"included"`
	Facilities   []string `json:"facilities"`
	Distance     string   `json:"distance"`
	Cancellation string   `json:"cancellation"`
	Rating       string   `json:"rating"`
	BookingLink  string   `json:"bookingLink"`
}

// Activity is a single itinerary entry. Plans produced by the synthesizer only
// fill Day, Title, Cost and Category; chat edits also carry the slot fields.
type Activity struct {
	Day         int    `json:"day"`
	Title       string `json:"title"`
	Cost        int    `json:"cost"`
	Category    string `json:"category"`
	Time        string `json:"time,omitempty"`
	Description string `json:"description,omitempty"`
	Duration    string `json:"duration,omitempty"`
	CostRange   string `json:"costRange,omitempty"`
}

type Recommendations struct {
	BestTime string `json:"bestTime"`
	Weather  string `json:"weather"`
	Currency string `json:"currency"`
	Language string `json:"language"`
	Timezone string `json:"timezone"`
}

// TripPlan is the generated itinerary document stored as a trip's payload.
type TripPlan struct {
	Destination          string                `json:"destination"`
	DepartureCity        string                `json:"departureCity"`
	Duration             string                `json:"duration"`
	Travelers            string                `json:"travelers"`
	BudgetAllocation     BudgetAllocation      `json:"budgetAllocation"`
	FlightOptions        []FlightOption        `json:"flightOptions"`
	AccommodationOptions []AccommodationOption `json:"accommodationOptions"`
	Activities           []Activity            `json:"activities"`
	TotalActivitiesCost  int                   `json:"totalActivitiesCost"`
	FlightInsights       FlightInsights        `json:"flightInsights"`
	Recommendations      Recommendations       `json:"recommendations"`
	GeneratedAt          time.Time             `json:"generatedAt"`
	DataSource           DataSource            `json:"dataSource"`
}

// Trip is a persisted plan owned by a user.
type Trip struct {
	ID                  uuid.UUID   `json:"id"`
	UserID              uuid.UUID   `json:"userId"`
	Destination         string      `json:"destination"`
	Budget              float64     `json:"budget"`
	Travelers           string      `json:"travelers"`
	Duration            string      `json:"duration"`
	TravelStyle         TravelStyle `json:"travelStyle,omitempty"`
	DepartureCity       string      `json:"departureCity,omitempty"`
	SpecialRequirements string      `json:"specialRequirements,omitempty"`
	TripData            TripPlan    `json:"tripData"`
	Status              TripStatus  `json:"status"`
	CreatedAt           time.Time   `json:"createdAt"`
	UpdatedAt           time.Time   `json:"updatedAt"`
}

type TripStats struct {
	TotalTrips    int        `json:"totalTrips"`
	ActiveTrips   int        `json:"activeTrips"`
	AverageBudget float64    `json:"averageBudget"`
	LastTripDate  *time.Time `json:"lastTripDate,omitempty"`
}

type TripListResponse struct {
	Trips []Trip    `json:"trips"`
	Stats TripStats `json:"stats"`
}
