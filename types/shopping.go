package types

// ShoppingPriority is the closed set of shopping item priority tags.
type ShoppingPriority string

const (
	PriorityMustBuy  ShoppingPriority = "重要必買"
	PriorityOptional ShoppingPriority = "不買沒關係"
	PriorityLocal    ShoppingPriority = "在地美食"
)

// IsValid checks if the priority is one of the supported tags.
func (p ShoppingPriority) IsValid() bool {
	switch p {
	case PriorityMustBuy, PriorityOptional, PriorityLocal:
		return true
	default:
		return false
	}
}

// ShoppingItem is one shopping-list entry. Checked gates inclusion in the
// expense summary: unchecked items are wishlist entries with no cost impact.
type ShoppingItem struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Price       float64          `json:"price"`
	Currency    Currency         `json:"currency"`
	Quantity    int              `json:"quantity"`
	Priority    ShoppingPriority `json:"priority"`
	Date        string           `json:"date"`
	ImageURL    string           `json:"imageUrl,omitempty"`
	LocationURL string           `json:"locationUrl,omitempty"`
	Link        string           `json:"link,omitempty"`
	Checked     bool             `json:"checked"`
}

// ShoppingItemCreate is the request body for adding or editing a
// shopping-list entry.
type ShoppingItemCreate struct {
	Name        string           `json:"name" binding:"required"`
	Price       float64          `json:"price"`
	Currency    Currency         `json:"currency" binding:"required"`
	Quantity    int              `json:"quantity"`
	Priority    ShoppingPriority `json:"priority" binding:"required"`
	Date        string           `json:"date"`
	ImageURL    string           `json:"imageUrl"`
	LocationURL string           `json:"locationUrl"`
	Link        string           `json:"link"`
}
