package report

// renderTerms draws the static visa details box and the closing
// call-to-action banner. No data dependency beyond styling.
func (b *Builder) renderTerms(cur *Cursor) {
	pal := b.cfg.Palette
	geo := cur.Geometry()

	cur.Add(text(geo.Margin, cur.Y(), "Visa Details",
		TextStyle{Size: 16, Bold: true, Color: pal.Primary}))
	cur.Advance(15)

	y := cur.Y()
	cur.Add(
		rect(geo.Margin, y, geo.ContentWidth(), 20, pal.Shade),
		text(geo.Margin+5, y+8, "Visa Type: Tourist", TextStyle{Size: 10, Color: pal.Text}),
		text(geo.Margin+60, y+8, "Validity: 30 Days", TextStyle{Size: 10, Color: pal.Text}),
		text(geo.Margin+120, y+8, "Processing Date: 14/06/2025", TextStyle{Size: 10, Color: pal.Text}),
	)
	cur.Advance(30)

	y = cur.Y()
	cur.Add(
		rect(geo.Margin, y, geo.ContentWidth(), 30, pal.Primary),
		text(geo.PageW/2, y+20, "PLAN.PACK.GO!",
			TextStyle{Size: 24, Bold: true, Align: "C", Color: pal.White}),
	)
	cur.Advance(30)
}
