package types

// Currency is the closed set of currencies itinerary costs may use.
// Totals are kept per currency and never converted or combined.
type Currency string

const (
	CurrencyTWD Currency = "TWD"
	CurrencyJPY Currency = "JPY"
	CurrencyUSD Currency = "USD"
)

// Currencies lists the supported currencies in display order.
var Currencies = []Currency{CurrencyTWD, CurrencyJPY, CurrencyUSD}

// IsValid checks if the currency is supported.
func (c Currency) IsValid() bool {
	switch c {
	case CurrencyTWD, CurrencyJPY, CurrencyUSD:
		return true
	default:
		return false
	}
}

// ExpenseCategory identifies one of the three expense breakdowns.
type ExpenseCategory string

const (
	ExpenseTransport ExpenseCategory = "transport"
	ExpenseConcert   ExpenseCategory = "concert"
	ExpenseShopping  ExpenseCategory = "shopping"
)

// ExpenseLine is one contributing entry within a category breakdown.
type ExpenseLine struct {
	Name     string   `json:"name"`
	Date     string   `json:"date"`
	Amount   float64  `json:"amount"`
	Currency Currency `json:"currency"`
}

// CategoryBreakdown holds one category's lines and per-currency totals.
type CategoryBreakdown struct {
	Category ExpenseCategory      `json:"category"`
	Totals   map[Currency]float64 `json:"totals"`
	Lines    []ExpenseLine        `json:"lines"`
}

// ExpenseSummary is the derived, read-only expense view of one itinerary.
// Transport and concert costs are always included; shopping items only
// when checked. Currencies are never mixed.
type ExpenseSummary struct {
	ItineraryID string               `json:"itineraryId"`
	Totals      map[Currency]float64 `json:"totals"`
	Categories  []CategoryBreakdown  `json:"categories"`
}
