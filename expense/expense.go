package expense

import (
	"regexp"
	"strconv"
	"strings"

	"wayfarer/models"
	"wayfarer/utils"
)

// Breakdown is the derived, non-persistent spend report. It is recomputed
// wholesale from the current entries plus the stated budget text.
type Breakdown struct {
	Lodging   int        `json:"lodging"`
	Food      int        `json:"food"`
	Activity  int        `json:"activity"`
	Transport int        `json:"transport"`
	Reserve   int        `json:"reserve"`
	Budget    int        `json:"budget"`
	Items     []LineItem `json:"items"`
}

// LineItem backs the detail view.
type LineItem struct {
	Name     string `json:"name"`
	Amount   int    `json:"amount"`
	Category string `json:"category"`
	Day      string `json:"day"`
}

// cost text containing any of these denotes "free" or "not determined";
// such entries contribute nothing and get no line item
var zeroCostVocabulary = []string{
	"free", "免费", "included", "含", "undetermined", "待定", "未定", "tbd",
}

// transit words in an entry name override its declared category
var transportKeywords = []string{
	"transfer", "pickup", "pick-up", "drop-off", "dropoff", "shuttle",
	"taxi", "接送", "专车", "送机", "接机",
}

var (
	digitRun        = regexp.MustCompile(`\d+`)
	stripSeparators = strings.NewReplacer(",", "", "，", "")
)

// Aggregate derives categorized totals from free-text cost fields,
// reconciled against the separately stated total budget. Reserve is the
// unallocated remainder, floored at zero no matter how far tracked spend
// exceeds the budget.
func Aggregate(entries []models.ItineraryEntry, budgetText string) Breakdown {
	b := Breakdown{Budget: ParseBudget(budgetText), Items: []LineItem{}}

	for _, e := range entries {
		amount, ok := parseCost(e.Cost)
		if !ok || amount == 0 {
			continue
		}

		category := classify(e)
		switch category {
		case models.CategoryLodging:
			b.Lodging += amount
		case models.CategoryFood:
			b.Food += amount
		case "transport":
			b.Transport += amount
		default:
			category = "activity"
			b.Activity += amount
		}

		b.Items = append(b.Items, LineItem{
			Name:     e.Name,
			Amount:   amount,
			Category: category,
			Day:      e.Day,
		})
	}

	spent := b.Lodging + b.Food + b.Activity + b.Transport
	if b.Budget > spent {
		b.Reserve = b.Budget - spent
	}
	return b
}

// ParseBudget extracts the first integer run after stripping thousand
// separators. Unparseable text counts as zero, which pins reserve to zero.
func ParseBudget(text string) int {
	n, err := strconv.Atoi(digitRun.FindString(stripSeparators.Replace(text)))
	if err != nil {
		return 0
	}
	return n
}

func parseCost(text string) (int, bool) {
	if strings.TrimSpace(text) == "" {
		return 0, false
	}
	for _, word := range zeroCostVocabulary {
		if utils.ContainsIgnoreCase(text, word) {
			return 0, false
		}
	}
	n, err := strconv.Atoi(digitRun.FindString(stripSeparators.Replace(text)))
	if err != nil {
		return 0, false
	}
	return n, true
}

func classify(e models.ItineraryEntry) string {
	for _, word := range transportKeywords {
		if utils.ContainsIgnoreCase(e.Name, word) {
			return "transport"
		}
	}
	switch e.Category {
	case models.CategoryLodging, models.CategoryFood:
		return e.Category
	default:
		return "activity"
	}
}
