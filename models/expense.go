package models

import (
	"github.com/VoyageGenie/voyage-backend/errors"
	"github.com/VoyageGenie/voyage-backend/pkg/valueobjects"
	"github.com/VoyageGenie/voyage-backend/types"
)

// ComputeExpenseSummary derives the read-only expense view of one
// itinerary. Totals are bucketed per currency and never converted or
// combined. Transport costs and concert ticket+merch costs always count;
// shopping items count price times quantity only when checked.
func ComputeExpenseSummary(it *types.Itinerary) (*types.ExpenseSummary, error) {
	transport := newBucket(types.ExpenseTransport)
	concert := newBucket(types.ExpenseConcert)
	shopping := newBucket(types.ExpenseShopping)

	for i := range it.Transports {
		tr := &it.Transports[i]
		if err := transport.add(tr.Detail, tr.Date(), tr.Cost, tr.Currency); err != nil {
			return nil, err
		}
	}

	for i := range it.Concerts {
		c := &it.Concerts[i]
		if err := concert.add(c.Artist, c.Date, c.TicketCost+c.MerchCost, c.Currency); err != nil {
			return nil, err
		}
	}

	for i := range it.ShoppingList {
		item := &it.ShoppingList[i]
		if !item.Checked {
			continue
		}
		quantity := item.Quantity
		if quantity < 1 {
			quantity = 1
		}
		price, err := valueobjects.NewMoneyFromFloat(item.Price, item.Currency)
		if err != nil {
			return nil, errors.ValidationFailed("invalid shopping item", err.Error())
		}
		total := price.Mul(quantity)
		if err := shopping.addMoney(item.Name, item.Date, total); err != nil {
			return nil, err
		}
	}

	grand := make(map[types.Currency]float64)
	categories := make([]types.CategoryBreakdown, 0, 3)
	for _, b := range []*bucket{transport, concert, shopping} {
		breakdown := b.breakdown()
		categories = append(categories, breakdown)
		for currency, amount := range breakdown.Totals {
			grand[currency] += amount
		}
	}

	return &types.ExpenseSummary{
		ItineraryID: it.ID,
		Totals:      grand,
		Categories:  categories,
	}, nil
}

// bucket accumulates one category's lines and per-currency totals.
type bucket struct {
	category types.ExpenseCategory
	totals   map[types.Currency]valueobjects.Money
	lines    []types.ExpenseLine
}

func newBucket(category types.ExpenseCategory) *bucket {
	return &bucket{
		category: category,
		totals:   make(map[types.Currency]valueobjects.Money),
		lines:    []types.ExpenseLine{},
	}
}

func (b *bucket) add(name, date string, amount float64, currency types.Currency) error {
	money, err := valueobjects.NewMoneyFromFloat(amount, currency)
	if err != nil {
		return errors.ValidationFailed("invalid expense amount", err.Error())
	}
	return b.addMoney(name, date, *money)
}

func (b *bucket) addMoney(name, date string, money valueobjects.Money) error {
	currency := money.Currency()
	running, ok := b.totals[currency]
	if !ok {
		running = valueobjects.Zero(currency)
	}
	sum, err := running.Add(money)
	if err != nil {
		return errors.InternalServerError(err.Error())
	}
	b.totals[currency] = *sum

	b.lines = append(b.lines, types.ExpenseLine{
		Name:     name,
		Date:     date,
		Amount:   money.Float64(),
		Currency: currency,
	})
	return nil
}

func (b *bucket) breakdown() types.CategoryBreakdown {
	totals := make(map[types.Currency]float64, len(b.totals))
	for currency, money := range b.totals {
		totals[currency] = money.Float64()
	}
	return types.CategoryBreakdown{
		Category: b.category,
		Totals:   totals,
		Lines:    b.lines,
	}
}
