package metrics

import (
	"log"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// AppMetrics holds the application's metric instruments.
type AppMetrics struct {
	TripsGeneratedTotal           metric.Int64Counter
	TripGenerationDurationSeconds metric.Float64Histogram
	TripGenerationFailuresTotal   metric.Int64Counter
	FlightFallbacksTotal          metric.Int64Counter
	ChatRequestsTotal             metric.Int64Counter
	RegisterRequestsTotal         metric.Int64Counter
	DbQueryDurationSeconds        metric.Float64Histogram
	DbQueryErrorsTotal            metric.Int64Counter
}

var (
	appMetrics *AppMetrics
	once       sync.Once
)

func mustCounter(meter metric.Meter, name, desc, unit string) metric.Int64Counter {
	c, err := meter.Int64Counter(name, metric.WithDescription(desc), metric.WithUnit(unit))
	if err != nil {
		log.Fatalf("Metrics: Failed to create %s: %v", name, err)
	}
	return c
}

func mustHistogram(meter metric.Meter, name, desc string) metric.Float64Histogram {
	h, err := meter.Float64Histogram(name, metric.WithDescription(desc), metric.WithUnit("s"))
	if err != nil {
		log.Fatalf("Metrics: Failed to create %s: %v", name, err)
	}
	return h
}

// InitAppMetrics creates the instruments once, from the global MeterProvider.
// Call it after the provider is installed so the instruments are exported.
func InitAppMetrics() {
	once.Do(func() {
		meter := otel.GetMeterProvider().Meter("TripPlanner")

		appMetrics = &AppMetrics{
			TripsGeneratedTotal: mustCounter(meter, "trips_generated_total",
				"Total number of trip plans generated", "{trip}"),
			TripGenerationDurationSeconds: mustHistogram(meter, "trip_generation_duration_seconds",
				"Duration of trip plan synthesis in seconds"),
			TripGenerationFailuresTotal: mustCounter(meter, "trip_generation_failures_total",
				"Total number of failed trip plan generations", "{error}"),
			FlightFallbacksTotal: mustCounter(meter, "flight_provider_fallbacks_total",
				"Live flight searches that fell back to simulated pricing", "{search}"),
			ChatRequestsTotal: mustCounter(meter, "chat_requests_total",
				"Total number of itinerary chat edits", "{request}"),
			RegisterRequestsTotal: mustCounter(meter, "register_requests_total",
				"Total number of register requests completed", "{request}"),
			DbQueryDurationSeconds: mustHistogram(meter, "db_query_duration_seconds",
				"Duration of database queries in seconds"),
			DbQueryErrorsTotal: mustCounter(meter, "db_query_errors_total",
				"Total number of database query errors", "{error}"),
		}
		log.Println("Application metrics instruments initialized.")
	})
}

// Get returns the application instruments, creating them on first use.
func Get() *AppMetrics {
	InitAppMetrics()
	return appMetrics
}
