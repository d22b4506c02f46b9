package types

// TransportMode is the closed set of supported transport kinds.
type TransportMode string

const (
	TransportFlight TransportMode = "flight"
	TransportMetro  TransportMode = "metro"
	TransportBus    TransportMode = "bus"
	TransportRental TransportMode = "rental"
)

// IsValid checks if the mode is a supported transport mode.
func (m TransportMode) IsValid() bool {
	switch m {
	case TransportFlight, TransportMetro, TransportBus, TransportRental:
		return true
	default:
		return false
	}
}

// FlightDetails carries the fields that only exist for flights.
type FlightDetails struct {
	FlightNumber    string `json:"flightNumber"`
	Gate            string `json:"gate,omitempty"`
	Seat            string `json:"seat,omitempty"`
	Terminal        string `json:"terminal,omitempty"`
	ArrivalTerminal string `json:"arrivalTerminal,omitempty"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	ArrivalTime     string `json:"arrivalTime,omitempty"`
}

// RentalDetails carries the fields that only exist for car rentals.
// SameLocation mirrors the pickup location into the return location.
type RentalDetails struct {
	PickupLocation string `json:"pickupLocation"`
	PickupDate     string `json:"pickupDate"`
	PickupTime     string `json:"pickupTime"`
	ReturnLocation string `json:"returnLocation"`
	ReturnDate     string `json:"returnDate"`
	ReturnTime     string `json:"returnTime"`
	SameLocation   bool   `json:"isSameLocation"`
}

// TransitDetails carries the fields shared by metro and bus entries.
type TransitDetails struct {
	Date        string `json:"date"`
	Time        string `json:"time"`
	ArrivalTime string `json:"arrivalTime,omitempty"`
}

// TransportInfo is a tagged union keyed by Mode: exactly one of Flight,
// Rental, or Transit is populated, and it must match the mode. Images hold
// inline-encoded attachments embedded directly in the document.
type TransportInfo struct {
	ID       string          `json:"id"`
	Mode     TransportMode   `json:"mode"`
	Detail   string          `json:"detail"`
	Cost     float64         `json:"cost"`
	Currency Currency        `json:"currency"`
	Images   []string        `json:"images,omitempty"`
	Flight   *FlightDetails  `json:"flight,omitempty"`
	Rental   *RentalDetails  `json:"rental,omitempty"`
	Transit  *TransitDetails `json:"transit,omitempty"`
}

// ValidVariant reports whether at most one variant payload is present and,
// if one is, whether it matches the mode. A flight payload on a rental
// entry (or two payloads at once) is an invalid combination.
func (t *TransportInfo) ValidVariant() bool {
	present := 0
	matches := true
	if t.Flight != nil {
		present++
		matches = t.Mode == TransportFlight
	}
	if t.Rental != nil {
		present++
		matches = t.Mode == TransportRental
	}
	if t.Transit != nil {
		present++
		matches = t.Mode == TransportMetro || t.Mode == TransportBus
	}
	return present <= 1 && matches
}

// Date returns the entry's reference date for expense breakdowns:
// pickup date for rentals, departure date otherwise.
func (t *TransportInfo) Date() string {
	switch {
	case t.Rental != nil:
		return t.Rental.PickupDate
	case t.Flight != nil:
		return t.Flight.Date
	case t.Transit != nil:
		return t.Transit.Date
	default:
		return ""
	}
}
