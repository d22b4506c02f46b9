package types

// DateLayout is the calendar date format used throughout itinerary
// documents (start/end dates, daily plan dates, booking dates).
const DateLayout = "2006-01-02"

// MapSearchURL is the template every free-text location is encoded into.
// No geocoding is performed; the query is URL-escaped verbatim.
const MapSearchURL = "https://www.google.com/maps/search/?api=1&query="

// TripSummary holds the headline facts about a trip.
type TripSummary struct {
	City      string   `json:"city"`
	TotalDays int      `json:"total_days"`
	Vibe      []string `json:"vibe"`
}

// Activity is a single stop within a daily plan. TimeSlot is a free-text
// label, not a parsed time. MapURL is derived from Location.
type Activity struct {
	ID       string `json:"id"`
	TimeSlot string `json:"time_slot"`
	Location string `json:"location"`
	Notes    string `json:"notes"`
	MapURL   string `json:"mapUrl,omitempty"`
}

// DailyPlan is one calendar day's slot within an itinerary. Day is 1-based
// and contiguous; Date is the trip start date plus the plan's index.
// Plans are created and removed only by trip-date reconciliation.
type DailyPlan struct {
	ID         string     `json:"id"`
	Day        int        `json:"day"`
	Date       string     `json:"date"`
	Theme      string     `json:"theme"`
	Activities []Activity `json:"activities"`
}

// Itinerary is the top-level trip document containing all user content for
// one voyage. Invariant: TripSummary.TotalDays == len(DailyItinerary) ==
// inclusive day count between StartDate and EndDate.
type Itinerary struct {
	ID             string          `json:"id"`
	Title          string          `json:"title"`
	StartDate      string          `json:"startDate"`
	EndDate        string          `json:"endDate"`
	TripSummary    TripSummary     `json:"trip_summary"`
	DailyItinerary []DailyPlan     `json:"daily_itinerary"`
	PackingList    []PackingItem   `json:"packing_list"`
	Transports     []TransportInfo `json:"transports"`
	Concerts       []ConcertInfo   `json:"concerts"`
	ShoppingList   []ShoppingItem  `json:"shopping_list"`
	CreatedAt      int64           `json:"createdAt"`
}

// TripCreate is the request body for creating a new itinerary.
type TripCreate struct {
	Title     string   `json:"title" binding:"required"`
	City      string   `json:"city" binding:"required"`
	StartDate string   `json:"startDate" binding:"required"`
	EndDate   string   `json:"endDate" binding:"required"`
	Vibe      []string `json:"vibe"`
}

// TripUpdate is the request body for editing an itinerary's headline data.
// Changing the date range triggers daily-plan reconciliation.
type TripUpdate struct {
	Title     string   `json:"title" binding:"required"`
	City      string   `json:"city" binding:"required"`
	StartDate string   `json:"startDate" binding:"required"`
	EndDate   string   `json:"endDate" binding:"required"`
	Vibe      []string `json:"vibe"`
}

// ActivityCreate is the request body for adding or editing an activity.
type ActivityCreate struct {
	Location string `json:"location" binding:"required"`
	TimeSlot string `json:"time_slot"`
	Notes    string `json:"notes"`
}

// ActivityMove names the target day for moving an activity.
type ActivityMove struct {
	TargetDay int `json:"targetDay" binding:"required"`
}
