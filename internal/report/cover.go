package report

import (
	"fmt"
	"strconv"

	"vigovia/internal/domain"
	"vigovia/internal/utils"
)

// renderCover draws the brand banner and trip details box. The section has a
// fixed maximum height and always fits page one, so it makes no pagination
// decisions.
func (b *Builder) renderCover(cur *Cursor, req domain.TripRequest) {
	pal := b.cfg.Palette
	geo := cur.Geometry()
	center := geo.PageW / 2

	// full-bleed brand banner
	cur.Add(
		rect(0, 0, geo.PageW, 60, pal.Primary),
		text(center, 25, "vigovia", TextStyle{Size: 32, Bold: true, Align: "C", Color: pal.White}),
		text(center, 35, "PLAN.PACK.GO", TextStyle{Size: 10, Align: "C", Color: pal.White}),
		text(center, 48, fmt.Sprintf("Hi, %s!", req.CustomerName), TextStyle{Size: 18, Align: "C", Color: pal.White}),
	)

	y := 80.0
	cur.Add(text(center, y, fmt.Sprintf("%s Itinerary", req.Destination),
		TextStyle{Size: 24, Bold: true, Align: "C", Color: pal.Primary}))

	y += 15
	cur.Add(text(center, y, domain.TripLength(req.DepartureDate, req.ReturnDate),
		TextStyle{Size: 14, Align: "C", Color: pal.Text}))

	y += 10
	cur.Add(rect(geo.Margin, y, geo.ContentWidth(), 40, pal.Shade))

	labels := []string{"Departure From:", "Departure:", "Arrival:", "Destination:", "No. Of Travellers:"}
	values := []string{
		req.DepartureFrom,
		utils.DisplayDate(req.DepartureDate),
		utils.DisplayDate(req.ReturnDate),
		req.Destination,
		strconv.Itoa(domain.TravelersOrDefault(req.Travelers)),
	}
	rowY := y + 10
	for i := range labels {
		cur.Add(
			text(geo.Margin+5, rowY+float64(i)*7, labels[i], TextStyle{Size: 10, Bold: true, Color: pal.Text}),
			text(geo.Margin+40, rowY+float64(i)*7, values[i], TextStyle{Size: 10, Color: pal.Text}),
		)
	}

	cur.MoveTo(y + 60)
}
