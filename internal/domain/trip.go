package domain

// TimeSlot is the part of day an activity is scheduled in.
type TimeSlot string

const (
	Morning   TimeSlot = "Morning"
	Afternoon TimeSlot = "Afternoon"
	Evening   TimeSlot = "Evening"
	Night     TimeSlot = "Night"
)

// TripRequest is the validated form submission the engine renders. It is
// constructed once per build and read-only from then on.
type TripRequest struct {
	CustomerName  string `json:"customerName" binding:"required"`
	Destination   string `json:"destination" binding:"required"`
	Travelers     int    `json:"travelers"`
	DepartureFrom string `json:"departureFrom"`
	DepartureDate string `json:"departureDate"`
	ReturnDate    string `json:"returnDate"`

	Days    []DayPlan `json:"days"`
	Flights []Flight  `json:"flights"`
	Hotels  []Hotel   `json:"hotels"`

	// TotalAmount may be supplied by the form; when zero the estimate is used.
	TotalAmount  int64 `json:"totalAmount"`
	Installment1 int64 `json:"installment1"`
	Installment2 int64 `json:"installment2"`
}

// DayPlan is one calendar day of the itinerary. Date is optional; the day is
// still rendered by ordinal position when absent.
type DayPlan struct {
	Date       string     `json:"date"`
	Activities []Activity `json:"activities"`
}

// Activity is a single itinerary entry. Every field except the time slot is
// optional; a long description wraps at the page content width.
type Activity struct {
	Time        TimeSlot `json:"time"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Duration    string   `json:"duration"`
	Type        string   `json:"type"` // display-only category tag
}

// Flight is one leg of the trip. Flights render in input order.
type Flight struct {
	Date      string `json:"date"`
	Airline   string `json:"airline"`
	From      string `json:"from"`
	To        string `json:"to"`
	Departure string `json:"departure"`
	Arrival   string `json:"arrival"`
}

// Hotel is one stay. Nights is accepted as supplied by the form and is not
// reconciled against the check-in/check-out dates.
type Hotel struct {
	City     string `json:"city"`
	Name     string `json:"name"`
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
	Nights   int    `json:"nights"`
}

// Installment is one row of the payment plan. The due date is a fixed label,
// not a calendar date.
type Installment struct {
	Label   string `json:"label"`
	Amount  int64  `json:"amount"`
	DueDate string `json:"dueDate"`
}

// Form vocabulary shared with the collaborating form UI.

func TimeSlots() []TimeSlot {
	return []TimeSlot{Morning, Afternoon, Evening, Night}
}

func ActivityTypes() []string {
	return []string{
		"Sightseeing", "Adventure", "Cultural", "Relaxation",
		"Shopping", "Food", "Entertainment", "Nature",
	}
}

func Airlines() []string {
	return []string{
		"Air India", "IndiGo", "SpiceJet", "Vistara",
		"Singapore Airlines", "Emirates", "Qatar Airways", "Thai Airways",
	}
}

func PopularDestinations() []string {
	return []string{
		"Singapore", "Dubai", "Thailand", "Malaysia", "Indonesia", "Vietnam",
		"Japan", "South Korea", "Europe", "USA", "Australia", "New Zealand",
	}
}
