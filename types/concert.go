package types

// ChecklistItem is one named boolean entry on a concert's checklist.
type ChecklistItem struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Checked bool   `json:"checked"`
}

// DefaultConcertChecklist returns the fixed starter checklist every new
// concert entry gets (ticket, ID, light stick, fan goods).
func DefaultConcertChecklist() []ChecklistItem {
	return []ChecklistItem{
		{ID: "1", Name: "票券", Checked: false},
		{ID: "2", Name: "證件", Checked: false},
		{ID: "3", Name: "手燈", Checked: false},
		{ID: "4", Name: "應援物", Checked: false},
	}
}

// ConcertInfo is one concert/event entry. The three time labels
// (merch, entry, start) are free text. Ticket and merch costs are both
// always counted in the expense summary.
type ConcertInfo struct {
	ID          string          `json:"id"`
	Artist      string          `json:"artist"`
	Venue       string          `json:"venue"`
	Date        string          `json:"date"`
	MerchTime   string          `json:"merchTime"`
	EntryTime   string          `json:"entryTime"`
	StartTime   string          `json:"startTime"`
	VenueMapURL string          `json:"venueMapUrl,omitempty"`
	Seat        string          `json:"seat"`
	TicketCost  float64         `json:"ticketCost"`
	MerchCost   float64         `json:"merchCost"`
	Currency    Currency        `json:"currency"`
	Notes       string          `json:"notes"`
	Checklist   []ChecklistItem `json:"checklist"`
	ImageURL    string          `json:"imageUrl,omitempty"`
}

// ConcertCreate is the request body for adding or editing a concert entry.
type ConcertCreate struct {
	Artist     string   `json:"artist" binding:"required"`
	Venue      string   `json:"venue" binding:"required"`
	Date       string   `json:"date" binding:"required"`
	MerchTime  string   `json:"merchTime"`
	EntryTime  string   `json:"entryTime"`
	StartTime  string   `json:"startTime"`
	Seat       string   `json:"seat"`
	TicketCost float64  `json:"ticketCost"`
	MerchCost  float64  `json:"merchCost"`
	Currency   Currency `json:"currency" binding:"required"`
	Notes      string   `json:"notes"`
	ImageURL   string   `json:"imageUrl"`
}
