package report

import (
	"strconv"

	"vigovia/internal/domain"
	"vigovia/internal/utils"
)

const hotelRowHeight = 12

var hotelColumns = []string{"City", "Check In", "Check Out", "Nights", "Hotel Name"}

// renderHotels draws the hotel table: a header row of five equal-width
// columns, then one row per hotel in input order with alternating shading
// by row parity. The overflow check is per row; whether the header is
// re-emitted after a break is controlled by RepeatHotelHeader.
func (b *Builder) renderHotels(cur *Cursor, req domain.TripRequest) {
	pal := b.cfg.Palette
	geo := cur.Geometry()

	cur.Add(text(geo.Margin, cur.Y(), "Hotel Bookings",
		TextStyle{Size: 20, Bold: true, Color: pal.Primary}))
	cur.Advance(20)

	if len(req.Hotels) == 0 {
		return
	}

	colW := geo.ContentWidth() / float64(len(hotelColumns))
	b.hotelHeader(cur, colW)

	for i, h := range req.Hotels {
		if cur.EnsureRoom(hotelRowHeight) && b.cfg.RepeatHotelHeader {
			b.hotelHeader(cur, colW)
		}

		y := cur.Y()
		if i%2 == 0 {
			cur.Add(rect(geo.Margin, y, geo.ContentWidth(), hotelRowHeight, pal.Shade))
		}

		cells := []string{
			h.City,
			utils.DisplayDate(h.CheckIn),
			utils.DisplayDate(h.CheckOut),
			strconv.Itoa(h.Nights),
			h.Name,
		}
		for j, cell := range cells {
			cur.Add(text(geo.Margin+float64(j)*colW+2, y+8, cell,
				TextStyle{Size: 8, Color: pal.Text}))
		}

		cur.Advance(hotelRowHeight)
	}
}

func (b *Builder) hotelHeader(cur *Cursor, colW float64) {
	pal := b.cfg.Palette
	geo := cur.Geometry()

	y := cur.Y()
	cur.Add(rect(geo.Margin, y, geo.ContentWidth(), hotelRowHeight, pal.Primary))
	for j, label := range hotelColumns {
		cur.Add(text(geo.Margin+float64(j)*colW+2, y+8, label,
			TextStyle{Size: 8, Bold: true, Color: pal.White}))
	}
	cur.Advance(hotelRowHeight)
}
