package report

import (
	"fmt"

	"vigovia/internal/domain"
	"vigovia/internal/utils"
)

const flightCardAdvance = 35

// renderFlights draws one fixed-height card per flight in input order, with
// an overflow check per card.
func (b *Builder) renderFlights(cur *Cursor, req domain.TripRequest) {
	pal := b.cfg.Palette
	geo := cur.Geometry()

	cur.Add(text(geo.Margin, cur.Y(), "Flight Summary",
		TextStyle{Size: 20, Bold: true, Color: pal.Primary}))
	cur.Advance(20)

	for _, f := range req.Flights {
		cur.EnsureRoom(flightCardAdvance)

		y := cur.Y()
		cur.Add(
			rect(geo.Margin, y, geo.ContentWidth(), 25, pal.Shade),
			text(geo.Margin+5, y+8, utils.DisplayDate(f.Date),
				TextStyle{Size: 10, Bold: true, Color: pal.Primary}),
			text(geo.Margin+5, y+16, fmt.Sprintf("Fly %s From %s To %s", f.Airline, f.From, f.To),
				TextStyle{Size: 10, Color: pal.Text}),
		)
		if f.Departure != "" && f.Arrival != "" {
			cur.Add(text(geo.Margin+5, y+22,
				fmt.Sprintf("Departure: %s | Arrival: %s", f.Departure, f.Arrival),
				TextStyle{Size: 10, Color: pal.Text}))
		}

		cur.Advance(flightCardAdvance)
	}

	cur.Advance(15)
}
