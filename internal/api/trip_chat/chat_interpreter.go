package tripChat

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/FACorreiaa/go-trip-planner/internal/types"
)

const (
	fallbackDestination = "your destination"
	maxPlanDays         = 7
	defaultPlanDays     = 5
)

// Randomizer is the randomness the interpreter needs.
type Randomizer interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

type Interpreter struct {
	rng Randomizer
}

type Option func(*Interpreter)

func WithRandomizer(r Randomizer) Option {
	return func(i *Interpreter) { i.rng = r }
}

func NewInterpreter(opts ...Option) *Interpreter {
	i := &Interpreter{rng: globalRand{}}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Process parses message and applies it to plan.
func (i *Interpreter) Process(message string, plan *types.TripPlan) (types.ChatIntent, types.ChatResult) {
	intent := ParseIntent(message)
	return intent, i.Apply(intent, plan)
}

// Apply turns an intent into a reply and an activity patch for one day.
// plan is read, never modified.
func (i *Interpreter) Apply(intent types.ChatIntent, plan *types.TripPlan) types.ChatResult {
	if intent.DayNumber == nil {
		return types.ChatResult{
			Response: "I'd be happy to help! Please specify which day you'd like to modify (e.g., 'day 2', 'day 3', etc.)",
		}
	}
	day := *intent.DayNumber

	if limit := dayLimit(plan); day < 1 || day > limit {
		return types.ChatResult{
			Response: fmt.Sprintf("Your itinerary covers days 1 to %d. Please pick a day in that range.", limit),
		}
	}

	if len(intent.Categories) == 0 {
		return types.ChatResult{
			Response: fmt.Sprintf("I understand you want to modify day %d. Could you please specify what type of activities you're interested in? For example: cultural, food, outdoor, adventure, shopping, relaxation, or nightlife activities.", day),
		}
	}

	destination := fallbackDestination
	if plan != nil && plan.Destination != "" {
		destination = plan.Destination
	}

	generated := i.generate(intent.Categories, destination, day)
	var updated []types.Activity
	if intent.Verb == types.EditVerbAdd {
		updated = append(DayActivities(plan, day), generated...)
	} else {
		updated = generated
	}

	return types.ChatResult{
		Response:          reply(intent.Verb, day, strings.Join(intent.Categories, ", "), destination),
		DayModified:       &day,
		UpdatedActivities: updated,
	}
}

func reply(verb types.EditVerb, day int, categories, destination string) string {
	switch verb {
	case types.EditVerbReplace:
		return fmt.Sprintf("Perfect! I've replaced day %d with %s activities in %s. Your day now focuses on these exciting experiences!", day, categories, destination)
	case types.EditVerbAdd:
		return fmt.Sprintf("Great! I've added %s activities to day %d. You now have a nice mix of experiences for that day!", categories, day)
	case types.EditVerbEnhance:
		return fmt.Sprintf("Excellent! I've enhanced day %d with more %s experiences in %s. This should give you a richer %s experience!", day, categories, destination, categories)
	default:
		return fmt.Sprintf("I've updated day %d with %s activities in %s. Hope you love the new itinerary!", day, categories, destination)
	}
}

// generate draws two or three activities per category, each from a shuffled
// copy of the category pool, with time slots cycling per category.
func (i *Interpreter) generate(categories []string, destination string, day int) []types.Activity {
	out := make([]types.Activity, 0, len(categories)*3)
	for _, category := range categories {
		pool := ActivityPool(category)
		if len(pool) == 0 {
			continue
		}
		i.shuffle(pool)
		count := min(2+i.rng.IntN(2), len(pool))
		for idx, name := range pool[:count] {
			costRange := costRangeOf(name)
			out = append(out, types.Activity{
				Day:         day,
				Title:       fmt.Sprintf("%s in %s", name, destination),
				Category:    category,
				Time:        timeSlots[idx%len(timeSlots)],
				Description: describe(name, destination),
				Duration:    durationOf(name),
				CostRange:   costRange,
				Cost:        estimateCost(costRange),
			})
		}
	}
	return out
}

func (i *Interpreter) shuffle(s []string) {
	for n := len(s) - 1; n > 0; n-- {
		j := i.rng.IntN(n + 1)
		s[n], s[j] = s[j], s[n]
	}
}

// estimateCost is the midpoint of a "$lo-hi" range.
func estimateCost(costRange string) int {
	r, err := types.ParseRange(costRange)
	if err != nil {
		return 0
	}
	return (r.Min + r.Max) / 2
}

// dayLimit is the highest day present in the plan, or the day count implied
// by its duration when it has no activities.
func dayLimit(plan *types.TripPlan) int {
	limit := 0
	if plan != nil {
		for _, a := range plan.Activities {
			limit = max(limit, a.Day)
		}
	}
	if limit > 0 {
		return limit
	}
	duration := ""
	if plan != nil {
		duration = plan.Duration
	}
	return min(maxPlanDays, types.LowerBound(duration, defaultPlanDays))
}

// DayActivities returns a copy of the activities scheduled on day.
func DayActivities(plan *types.TripPlan, day int) []types.Activity {
	if plan == nil {
		return nil
	}
	var out []types.Activity
	for _, a := range plan.Activities {
		if a.Day == day {
			out = append(out, a)
		}
	}
	return out
}

// MergeDayActivities returns a copy of plan whose activities for day are
// replaced by patch. Other days are untouched and activities stay ordered by
// day. TotalActivitiesCost is recomputed.
func MergeDayActivities(plan types.TripPlan, day int, patch []types.Activity) types.TripPlan {
	merged := make([]types.Activity, 0, len(plan.Activities)+len(patch))
	for _, a := range plan.Activities {
		if a.Day != day {
			merged = append(merged, a)
		}
	}
	for _, a := range patch {
		a.Day = day
		merged = append(merged, a)
	}
	slices.SortStableFunc(merged, func(a, b types.Activity) int { return a.Day - b.Day })

	total := 0
	for _, a := range merged {
		total += a.Cost
	}
	plan.Activities = merged
	plan.TotalActivitiesCost = total
	return plan
}
