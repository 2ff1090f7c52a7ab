package report

import (
	"fmt"
	"strconv"

	"vigovia/internal/domain"
	"vigovia/internal/utils"
)

const (
	dayHeaderHeight = 20
	descLineHeight  = 4
)

// renderDailyItinerary draws the day-by-day timeline. Overflow is checked
// before every day header and every activity block; an individual activity
// never straddles a page boundary.
func (b *Builder) renderDailyItinerary(cur *Cursor, req domain.TripRequest) error {
	pal := b.cfg.Palette
	geo := cur.Geometry()

	cur.Add(text(geo.Margin, cur.Y(), "Daily Itinerary",
		TextStyle{Size: 20, Bold: true, Color: pal.Primary}))
	cur.Advance(20)

	for i, day := range req.Days {
		cur.EnsureRoom(dayHeaderHeight)

		y := cur.Y()
		cur.Add(
			circle(geo.Margin+8, y+5, 8, pal.Primary),
			text(geo.Margin+8, y+7, strconv.Itoa(i+1),
				TextStyle{Size: 12, Bold: true, Align: "C", Color: pal.White}),
			text(geo.Margin+25, y+5, fmt.Sprintf("Day %d", i+1),
				TextStyle{Size: 14, Bold: true, Color: pal.Text}),
		)
		if day.Date != "" {
			cur.Add(text(geo.Margin+25, y+12, utils.DisplayDate(day.Date),
				TextStyle{Size: 10, Color: pal.Text}))
		}
		cur.Advance(dayHeaderHeight)

		for _, act := range day.Activities {
			var descLines []string
			if act.Description != "" {
				lines, err := b.measure.Split(act.Description, geo.PageW-50)
				if err != nil {
					return err
				}
				descLines = lines
			}

			cur.EnsureRoom(activityHeight(act, len(descLines)))

			y := cur.Y()
			cur.Add(
				line(geo.Margin+8, y-5, geo.Margin+8, y+10, pal.Line),
				circle(geo.Margin+8, y+2, 3, pal.Secondary),
			)

			slot := act.Time
			if slot == "" {
				slot = domain.Morning
			}
			cur.Add(text(geo.Margin+20, y, string(slot),
				TextStyle{Size: 10, Bold: true, Color: pal.Text}))

			offset := 7.0
			if act.Title != "" {
				cur.Add(text(geo.Margin+20, y+offset, "- "+act.Title,
					TextStyle{Size: 10, Color: pal.Text}))
				offset += 6
			}
			for j, ln := range descLines {
				cur.Add(text(geo.Margin+22, y+offset+float64(j)*descLineHeight, ln,
					TextStyle{Size: 10, Color: pal.Text}))
			}
			if len(descLines) > 0 {
				offset += float64(len(descLines))*descLineHeight + 2
			}
			if act.Duration != "" {
				cur.Add(text(geo.Margin+22, y+offset, "Duration: "+act.Duration,
					TextStyle{Size: 10, Color: pal.Muted}))
				offset += 10
			}

			cur.Advance(offset + 6)
		}

		cur.Advance(10)
	}

	return nil
}

// activityHeight is the exact vertical room one activity block advances the
// cursor by. Keeping it in one place lets the fits-check run before any
// command is emitted.
func activityHeight(act domain.Activity, descLines int) float64 {
	h := 7.0
	if act.Title != "" {
		h += 6
	}
	if descLines > 0 {
		h += float64(descLines)*descLineHeight + 2
	}
	if act.Duration != "" {
		h += 10
	}
	return h + 6
}
