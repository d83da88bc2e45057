package tripChat

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/FACorreiaa/go-trip-planner/internal/types"
)

var dayPattern = regexp.MustCompile(`day\s+(\d+)`)

type verbRule struct {
	verb     types.EditVerb
	keywords []string
}

// verbRules are checked in order; the first rule with a matching keyword wins.
var verbRules = []verbRule{
	{types.EditVerbReplace, []string{"replace", "change"}},
	{types.EditVerbAdd, []string{"add", "include"}},
	{types.EditVerbRemove, []string{"remove", "delete"}},
	{types.EditVerbEnhance, []string{"more", "focus on"}},
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

// ParseIntent extracts the day, verb and categories of an edit request.
// Matching is case-insensitive substring matching.
func ParseIntent(message string) types.ChatIntent {
	lower := strings.ToLower(message)
	intent := types.ChatIntent{
		Verb:            types.EditVerbModify,
		Categories:      []string{},
		OriginalMessage: message,
	}

	if m := dayPattern.FindStringSubmatch(lower); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			intent.DayNumber = &n
		}
	}

	for _, rule := range verbRules {
		if containsAny(lower, rule.keywords) {
			intent.Verb = rule.verb
			break
		}
	}

	for _, category := range Categories {
		if strings.Contains(lower, category) || containsAny(lower, categorySynonyms[category]) {
			intent.Categories = append(intent.Categories, category)
		}
	}
	return intent
}
