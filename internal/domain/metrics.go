package domain

import (
	"fmt"
	"math"

	"vigovia/internal/utils"
)

// UnitCosts are the per-unit pricing constants used for the estimate.
// Injected via config so deployments can retune pricing without touching
// layout code.
type UnitCosts struct {
	HotelNight int64 // per night per room
	Flight     int64 // per flight per traveler
	Activity   int64 // per activity per traveler
}

// Estimate is the quote shown on screen. It is derived from the same
// functions the document renderer uses, so the two can never disagree.
type Estimate struct {
	Travelers    int    `json:"travelers"`
	Nights       int    `json:"nights"`
	TripLength   string `json:"tripLength"`
	HotelCost    int64  `json:"hotelCost"`
	FlightCost   int64  `json:"flightCost"`
	ActivityCost int64  `json:"activityCost"`
	Total        int64  `json:"total"`
	Installment1 int64  `json:"installment1"`
	Installment2 int64  `json:"installment2"`
	Remaining    int64  `json:"remaining"`
}

// Nights returns the ceiling of the absolute day difference between two
// YYYY-MM-DD dates, or 0 when either is missing or unparseable. Same-day
// trips yield 0 nights.
func Nights(date1, date2 string) int {
	d1, err1 := utils.ParseDate(date1)
	d2, err2 := utils.ParseDate(date2)
	if err1 != nil || err2 != nil {
		return 0
	}
	diff := d2.Sub(d1).Hours() / 24
	return int(math.Ceil(math.Abs(diff)))
}

// TripLength formats the trip duration as "N Days M Nights".
func TripLength(departureDate, returnDate string) string {
	n := Nights(departureDate, returnDate)
	return fmt.Sprintf("%d Days %d Nights", n+1, n)
}

// TravelersOrDefault treats a missing or non-positive traveler count as 1.
func TravelersOrDefault(travelers int) int {
	if travelers <= 0 {
		return 1
	}
	return travelers
}

// ActivityCount totals the activities across all days.
func ActivityCount(days []DayPlan) int {
	total := 0
	for _, d := range days {
		total += len(d.Activities)
	}
	return total
}

// costBreakdown prices the trip components: hotel nights at the per-night
// rate, flights and activities at per-traveler rates. Negative nights coerce
// to 0 rather than failing the build. Both the estimate and the quote are
// sums over this one function.
func costBreakdown(req TripRequest, costs UnitCosts) (hotel, flight, activity int64) {
	travelers := int64(TravelersOrDefault(req.Travelers))

	for _, h := range req.Hotels {
		nights := int64(h.Nights)
		if nights < 0 {
			nights = 0
		}
		hotel += nights * costs.HotelNight
	}

	flight = int64(len(req.Flights)) * costs.Flight * travelers
	activity = int64(ActivityCount(req.Days)) * costs.Activity * travelers
	return hotel, flight, activity
}

// EstimatedCost is the derived total for the whole trip.
func EstimatedCost(req TripRequest, costs UnitCosts) int64 {
	hotel, flight, activity := costBreakdown(req, costs)
	return hotel + flight + activity
}

// EffectiveTotal prefers the form-supplied total and falls back to the
// estimate when none was given.
func EffectiveTotal(req TripRequest, costs UnitCosts) int64 {
	if req.TotalAmount > 0 {
		return req.TotalAmount
	}
	return EstimatedCost(req, costs)
}

// RemainingBalance clamps total minus the first two installments at zero.
// Overpayment displays as zero, it is never signaled as an error.
func RemainingBalance(total, installment1, installment2 int64) int64 {
	rest := total - installment1 - installment2
	if rest < 0 {
		return 0
	}
	return rest
}

// Quote assembles the on-screen estimate for a request.
func Quote(req TripRequest, costs UnitCosts) Estimate {
	hotelCost, flightCost, activityCost := costBreakdown(req, costs)
	total := EffectiveTotal(req, costs)

	return Estimate{
		Travelers:    TravelersOrDefault(req.Travelers),
		Nights:       Nights(req.DepartureDate, req.ReturnDate),
		TripLength:   TripLength(req.DepartureDate, req.ReturnDate),
		HotelCost:    hotelCost,
		FlightCost:   flightCost,
		ActivityCost: activityCost,
		Total:        total,
		Installment1: req.Installment1,
		Installment2: req.Installment2,
		Remaining:    RemainingBalance(total, req.Installment1, req.Installment2),
	}
}
