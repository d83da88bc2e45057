package pricing

import (
	"sort"
	"strings"

	"github.com/FACorreiaa/go-trip-planner/internal/types"
)

const (
	DefaultSearchLimit           = 10
	DefaultPopularLimit          = 20
	DefaultPopularDepartureLimit = 10
	minSearchQueryLength         = 2
)

var destinationListing = buildDestinations()

func buildDestinations() []types.Destination {
	out := make([]types.Destination, 0, len(destinationFares))
	seen := make(map[string]struct{}, len(destinationFares))
	for _, f := range destinationFares {
		if _, dup := seen[f.Destination]; dup {
			continue
		}
		seen[f.Destination] = struct{}{}

		fare, _ := LookupFare(f.Destination)
		name, country := splitDestination(fare.Destination)
		region := "International"
		if display, ok := regionNamesByTag[RegionOf(fare.Destination)]; ok {
			region = display
		}
		out = append(out, types.Destination{
			Name:    name,
			Country: country,
			Region:  region,
			Display: fare.Destination,
			Popular: fare.Popular,
		})
	}
	return out
}

func splitDestination(d string) (name, country string) {
	i := strings.LastIndex(d, ", ")
	if i < 0 {
		return d, d
	}
	return d[:i], d[i+2:]
}

func limitDestinations(in []types.Destination, limit int) []types.Destination {
	if limit > 0 && limit < len(in) {
		return in[:limit]
	}
	return in
}

// SearchDestinations matches q against name, country and region. Exact name
// matches rank first, then name prefixes, then popular entries, then by name.
// Queries shorter than two characters list popular destinations instead.
// Total counts every match before the limit is applied.
func SearchDestinations(q string, limit int, popularOnly bool) types.DestinationSearchResponse {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	term := strings.ToLower(strings.TrimSpace(q))
	if len(term) < minSearchQueryLength {
		popular := limitDestinations(PopularDestinations(0, ""), limit)
		return types.DestinationSearchResponse{Destinations: popular, Total: len(popular)}
	}

	matches := make([]types.Destination, 0)
	for _, d := range destinationListing {
		if popularOnly && !d.Popular {
			continue
		}
		if strings.Contains(strings.ToLower(d.Name), term) ||
			strings.Contains(strings.ToLower(d.Country), term) ||
			strings.Contains(strings.ToLower(d.Region), term) {
			matches = append(matches, d)
		}
	}

	rank := func(d types.Destination) int {
		name := strings.ToLower(d.Name)
		switch {
		case name == term:
			return 0
		case strings.HasPrefix(name, term):
			return 1
		default:
			return 2
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		a, b := matches[i], matches[j]
		if ra, rb := rank(a), rank(b); ra != rb {
			return ra < rb
		}
		if a.Popular != b.Popular {
			return a.Popular
		}
		return a.Name < b.Name
	})

	total := len(matches)
	return types.DestinationSearchResponse{
		Destinations: limitDestinations(matches, limit),
		Total:        total,
	}
}

// PopularDestinations lists popular destinations in catalog order, optionally
// restricted to a region display name. A limit <= 0 returns all of them.
func PopularDestinations(limit int, region string) []types.Destination {
	out := make([]types.Destination, 0)
	for _, d := range destinationListing {
		if !d.Popular {
			continue
		}
		if region != "" && !strings.EqualFold(d.Region, region) {
			continue
		}
		out = append(out, d)
	}
	return limitDestinations(out, limit)
}

// DestinationsByRegion groups every destination under its region display name,
// popular entries first and then alphabetically.
func DestinationsByRegion() map[string][]types.Destination {
	grouped := make(map[string][]types.Destination)
	for _, d := range destinationListing {
		grouped[d.Region] = append(grouped[d.Region], d)
	}
	for _, list := range grouped {
		sort.SliceStable(list, func(i, j int) bool {
			if list[i].Popular != list[j].Popular {
				return list[i].Popular
			}
			return list[i].Name < list[j].Name
		})
	}
	return grouped
}
