package report

import (
	"vigovia/internal/config"
	"vigovia/internal/domain"
)

const footerContact = "Vigovia Tech Pvt. Ltd | Phone: +91-99X9999999 | Email: Contact@Vigovia.Com"

// Builder composes a trip request into a page sequence. It holds no state
// across builds; every Build call constructs its own cursor, so concurrent
// independent builds never interfere.
type Builder struct {
	cfg     config.Report
	measure TextMeasurer
}

func NewBuilder(cfg config.Report, measure TextMeasurer) *Builder {
	return &Builder{cfg: cfg, measure: measure}
}

func (b *Builder) geometry() Geometry {
	return Geometry{PageW: b.cfg.PageWidth, PageH: b.cfg.PageHeight, Margin: b.cfg.Margin}
}

// Build runs the section renderers in report order. The two breaks between
// the itinerary, logistics, and payment groups are unconditional: the cover
// stays self-contained and logistics stay separate from payment regardless
// of remaining space.
func (b *Builder) Build(req domain.TripRequest) ([]Page, error) {
	cur := NewCursor(b.geometry(), b.stampFooter)

	b.renderCover(cur, req)
	if err := b.renderDailyItinerary(cur, req); err != nil {
		return nil, domain.RenderError{Section: "daily itinerary", Err: err}
	}
	cur.Break()
	b.renderFlights(cur, req)
	b.renderHotels(cur, req)
	cur.Break()
	b.renderPayment(cur, req)
	b.renderTerms(cur)

	return cur.Close(), nil
}

// stampFooter is applied once to every finalized page.
func (b *Builder) stampFooter(p *Page) {
	pal := b.cfg.Palette
	geo := b.geometry()
	y := geo.FooterY()
	p.Commands = append(p.Commands,
		text(geo.Margin, y, "vigovia", TextStyle{Size: 8, Color: pal.Primary}),
		text(geo.Margin+40, y, "PLAN.PACK.GO", TextStyle{Size: 8, Color: pal.Footer}),
		text(geo.PageW-geo.Margin, y, footerContact, TextStyle{Size: 8, Align: "R", Color: pal.Footer}),
	)
}
