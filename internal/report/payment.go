package report

import (
	"fmt"

	"vigovia/internal/domain"
	"vigovia/internal/utils"
)

const installmentRowHeight = 12

// renderPayment draws the total-amount banner and the three-row installment
// table. Installments 1 and 2 come from the request; installment 3 is the
// computed remaining balance. Due-date labels are fixed text.
func (b *Builder) renderPayment(cur *Cursor, req domain.TripRequest) {
	pal := b.cfg.Palette
	geo := cur.Geometry()

	cur.Add(text(geo.Margin, cur.Y(), "Payment Plan",
		TextStyle{Size: 20, Bold: true, Color: pal.Primary}))
	cur.Advance(20)

	total := domain.EffectiveTotal(req, b.cfg.Costs)

	y := cur.Y()
	cur.Add(
		rect(geo.Margin, y, geo.ContentWidth(), 15, pal.Shade),
		text(geo.Margin+5, y+8, "Total Amount",
			TextStyle{Size: 12, Bold: true, Color: pal.Text}),
		text(geo.Margin+50, y+8,
			fmt.Sprintf("Rs %s For %d Pax (Inclusive Of GST)",
				utils.GroupDigits(total), domain.TravelersOrDefault(req.Travelers)),
			TextStyle{Size: 12, Bold: true, Color: pal.Text}),
	)
	cur.Advance(25)

	colW := geo.ContentWidth() / 3
	y = cur.Y()
	cur.Add(rect(geo.Margin, y, geo.ContentWidth(), installmentRowHeight, pal.Primary))
	for j, label := range []string{"Installment", "Amount", "Due Date"} {
		cur.Add(text(geo.Margin+float64(j)*colW+5, y+8, label,
			TextStyle{Size: 10, Bold: true, Color: pal.White}))
	}
	cur.Advance(installmentRowHeight)

	installments := []domain.Installment{
		{Label: "Installment 1", Amount: req.Installment1, DueDate: "Initial Payment"},
		{Label: "Installment 2", Amount: req.Installment2, DueDate: "Post Visa Approval"},
		{Label: "Installment 3",
			Amount:  domain.RemainingBalance(total, req.Installment1, req.Installment2),
			DueDate: "20 Days Before Departure"},
	}

	for i, inst := range installments {
		y := cur.Y()
		if i%2 == 0 {
			cur.Add(rect(geo.Margin, y, geo.ContentWidth(), installmentRowHeight, pal.Shade))
		}

		amount := "Remaining"
		if inst.Amount > 0 {
			amount = "Rs" + utils.GroupDigits(inst.Amount)
		}

		cur.Add(
			text(geo.Margin+5, y+8, inst.Label, TextStyle{Size: 9, Color: pal.Text}),
			text(geo.Margin+colW+5, y+8, amount, TextStyle{Size: 9, Color: pal.Text}),
			text(geo.Margin+2*colW+5, y+8, inst.DueDate, TextStyle{Size: 9, Color: pal.Text}),
		)
		cur.Advance(installmentRowHeight)
	}

	cur.Advance(20)
}
