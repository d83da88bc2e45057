package flights

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/FACorreiaa/go-trip-planner/config"
)

const (
	productionBaseURL = "https://api.amadeus.com"
	testBaseURL       = "https://test.api.amadeus.com"

	tokenPath  = "/v1/security/oauth2/token"
	offersPath = "/v2/shopping/flight-offers"

	tokenExpirySlack = 30 * time.Second
	maxSearchResults = 10
)

var _ Provider = (*AmadeusProvider)(nil)

// AmadeusProvider searches the Amadeus flight offers API using the OAuth2
// client-credentials flow. The access token is shared and refreshed under mu.
type AmadeusProvider struct {
	logger       *slog.Logger
	clientID     string
	clientSecret string
	baseURL      string
	httpClient   *http.Client
	cache        OfferCache
	now          func() time.Time

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

type AmadeusOption func(*AmadeusProvider)

// WithBaseURL points the client at another host, e.g. a test server.
func WithBaseURL(u string) AmadeusOption {
	return func(p *AmadeusProvider) { p.baseURL = strings.TrimRight(u, "/") }
}

func WithHTTPClient(c *http.Client) AmadeusOption {
	return func(p *AmadeusProvider) { p.httpClient = c }
}

func WithClock(now func() time.Time) AmadeusOption {
	return func(p *AmadeusProvider) { p.now = now }
}

// NewAmadeusProvider builds a provider from config. cache may be nil.
func NewAmadeusProvider(cfg config.FlightAPIConfig, cache OfferCache, logger *slog.Logger, opts ...AmadeusOption) *AmadeusProvider {
	baseURL := testBaseURL
	if strings.EqualFold(cfg.Hostname, "production") {
		baseURL = productionBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	p := &AmadeusProvider{
		logger:       logger,
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		baseURL:      baseURL,
		httpClient:   &http.Client{Timeout: timeout},
		cache:        cache,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *AmadeusProvider) Configured() bool {
	return p.clientID != "" && p.clientSecret != ""
}

// SearchOffers never returns an error: every failure becomes an Unavailable
// result carrying the reason.
func (p *AmadeusProvider) SearchOffers(ctx context.Context, origin, destination, departureDate string, travelers int) SearchResult {
	ctx, span := otel.Tracer("FlightProvider").Start(ctx, "SearchOffers")
	defer span.End()
	span.SetAttributes(
		attribute.String("flight.origin", origin),
		attribute.String("flight.destination", destination),
		attribute.String("flight.date", departureDate),
		attribute.Int("flight.travelers", travelers),
	)
	l := p.logger.With(slog.String("provider", "amadeus"))

	if !p.Configured() {
		span.SetStatus(codes.Error, "not configured")
		return Unavailable(ErrNotConfigured)
	}
	originCode, okOrigin := DepartureAirport(origin)
	destCode, okDest := DestinationAirport(destination)
	if !okOrigin || !okDest {
		span.SetStatus(codes.Error, "unknown route")
		return Unavailable(fmt.Errorf("%w: %s -> %s", ErrUnknownRoute, origin, destination))
	}
	if travelers < 1 {
		travelers = 1
	}

	key := OfferKey(originCode, destCode, departureDate, travelers)
	if p.cache != nil {
		if offers, ok := p.cache.Get(ctx, key); ok && len(offers) > 0 {
			l.DebugContext(ctx, "Flight offers served from cache", slog.String("key", key))
			span.SetAttributes(attribute.Bool("cache.hit", true))
			span.SetStatus(codes.Ok, "cache hit")
			return Found(offers)
		}
	}

	q := url.Values{}
	q.Set("originLocationCode", originCode)
	q.Set("destinationLocationCode", destCode)
	q.Set("departureDate", departureDate)
	q.Set("adults", strconv.Itoa(travelers))
	q.Set("max", strconv.Itoa(maxSearchResults))
	q.Set("currencyCode", "USD")

	l.InfoContext(ctx, "Searching live flight offers",
		slog.String("origin", originCode), slog.String("destination", destCode), slog.String("date", departureDate))

	body, err := p.get(ctx, offersPath+"?"+q.Encode())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "search failed")
		return Unavailable(fmt.Errorf("%w: %v", ErrProviderFailure, err))
	}

	offers, err := parseOffers(body, origin, destination, travelers)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "parse failed")
		return Unavailable(fmt.Errorf("%w: %v", ErrProviderFailure, err))
	}
	if len(offers) == 0 {
		span.SetStatus(codes.Error, "no offers")
		return Unavailable(ErrNoOffers)
	}

	if p.cache != nil {
		p.cache.Set(ctx, key, offers)
	}
	span.SetAttributes(attribute.Int("flight.offers", len(offers)))
	span.SetStatus(codes.Ok, "offers found")
	return Found(offers)
}

func (p *AmadeusProvider) token(ctx context.Context) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.accessToken != "" && p.now().Before(p.tokenExpiry) {
		return p.accessToken, nil
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", p.clientID)
	form.Set("client_secret", p.clientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+tokenPath, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("token request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read token response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("token request failed (%d): %s", resp.StatusCode, string(body))
	}

	var result struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("parse token response: %w", err)
	}

	p.accessToken = result.AccessToken
	p.tokenExpiry = p.now().Add(time.Duration(result.ExpiresIn)*time.Second - tokenExpirySlack)
	return p.accessToken, nil
}

func (p *AmadeusProvider) get(ctx context.Context, path string) ([]byte, error) {
	token, err := p.token(ctx)
	if err != nil {
		return nil, fmt.Errorf("auth failed: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("amadeus error (%d): %s", resp.StatusCode, string(body))
	}
	return body, nil
}
