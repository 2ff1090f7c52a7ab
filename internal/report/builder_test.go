package report

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"vigovia/internal/config"
	"vigovia/internal/domain"
)

// fixedWidthMeasurer splits text into fixed-size chunks so layout heights
// are deterministic without a PDF backend.
type fixedWidthMeasurer struct {
	charsPerLine int
}

func (m fixedWidthMeasurer) Split(text string, width float64) ([]string, error) {
	n := m.charsPerLine
	if n <= 0 {
		n = 40
	}
	var lines []string
	for len(text) > n {
		lines = append(lines, text[:n])
		text = text[n:]
	}
	return append(lines, text), nil
}

type failingMeasurer struct{}

func (failingMeasurer) Split(string, float64) ([]string, error) {
	return nil, errors.New("font metrics unavailable")
}

func testRequest() domain.TripRequest {
	return domain.TripRequest{
		CustomerName:  "Jane Doe",
		Destination:   "Singapore",
		Travelers:     1,
		DepartureFrom: "Mumbai",
		DepartureDate: "2025-01-10",
		ReturnDate:    "2025-01-15",
		Days: []domain.DayPlan{
			{Date: "2025-01-10", Activities: []domain.Activity{
				{Time: domain.Morning, Title: "Gardens by the Bay", Description: "Walk the cloud forest dome", Duration: "3 hours"},
				{Time: domain.Evening, Title: "Marina Bay"},
			}},
			{Activities: []domain.Activity{
				{Time: domain.Afternoon, Title: "Sentosa"},
			}},
		},
		Flights: []domain.Flight{
			{Date: "2025-01-10", Airline: "Air India", From: "Mumbai", To: "Singapore", Departure: "09:00", Arrival: "17:30"},
			{Date: "2025-01-15", Airline: "Air India", From: "Singapore", To: "Mumbai"},
		},
		Hotels: []domain.Hotel{
			{City: "Singapore", Name: "Marina View", CheckIn: "2025-01-10", CheckOut: "2025-01-15", Nights: 5},
		},
		Installment1: 10000,
		Installment2: 10000,
	}
}

func newTestBuilder(cfg config.Report) *Builder {
	return NewBuilder(cfg, fixedWidthMeasurer{charsPerLine: 60})
}

func pageTexts(p Page) []string {
	var out []string
	for _, cmd := range p.Commands {
		if cmd.Op == OpText {
			out = append(out, cmd.Text)
		}
	}
	return out
}

func pageWithText(pages []Page, s string) int {
	for _, p := range pages {
		for _, txt := range pageTexts(p) {
			if txt == s {
				return p.Index
			}
		}
	}
	return -1
}

func TestBuildSectionOrderAndForcedBreaks(t *testing.T) {
	pages, err := newTestBuilder(config.DefaultReport()).Build(testRequest())
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	if len(pages) != 4 {
		t.Fatalf("request used %d pages, want 4", len(pages))
	}

	if got := pageWithText(pages, "Daily Itinerary"); got != 0 {
		t.Fatalf("Daily Itinerary on page %d, want 0 (shares the cover page)", got)
	}
	// day 2 overflows past the safe bottom, so the itinerary legally
	// straddles onto page 1 mid-section
	if got := pageWithText(pages, "Day 2"); got != 1 {
		t.Fatalf("Day 2 on page %d, want 1", got)
	}
	// the two breaks are unconditional: logistics and payment each start a
	// fresh page even though plenty of room remained
	if got := pageWithText(pages, "Flight Summary"); got != 2 {
		t.Fatalf("Flight Summary on page %d, want 2", got)
	}
	if got := pageWithText(pages, "Hotel Bookings"); got != 2 {
		t.Fatalf("Hotel Bookings on page %d, want 2", got)
	}
	if got := pageWithText(pages, "Payment Plan"); got != 3 {
		t.Fatalf("Payment Plan on page %d, want 3", got)
	}
	if got := pageWithText(pages, "PLAN.PACK.GO!"); got != 3 {
		t.Fatalf("closing banner on page %d, want 3", got)
	}
}

func TestBuildIdempotent(t *testing.T) {
	b := newTestBuilder(config.DefaultReport())
	first, err := b.Build(testRequest())
	if err != nil {
		t.Fatalf("first build: %v", err)
	}
	second, err := b.Build(testRequest())
	if err != nil {
		t.Fatalf("second build: %v", err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("repeated builds differ (-first +second):\n%s", diff)
	}
}

func TestFooterOnEveryBuiltPage(t *testing.T) {
	pages, err := newTestBuilder(config.DefaultReport()).Build(testRequest())
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	for _, p := range pages {
		stamps := 0
		for _, txt := range pageTexts(p) {
			if txt == footerContact {
				stamps++
			}
		}
		if stamps != 1 {
			t.Fatalf("page %d has %d footer stamps, want exactly 1", p.Index, stamps)
		}
	}
}

func TestHotelRowsSurvivePageBreaks(t *testing.T) {
	req := testRequest()
	req.Hotels = nil
	for i := 0; i < 30; i++ {
		req.Hotels = append(req.Hotels, domain.Hotel{
			City:     fmt.Sprintf("Metro%02d", i),
			Name:     fmt.Sprintf("Hotel %02d", i),
			CheckIn:  "2025-01-10",
			CheckOut: "2025-01-11",
			Nights:   1,
		})
	}

	pages, err := newTestBuilder(config.DefaultReport()).Build(req)
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}

	var cities []string
	for _, p := range pages {
		for _, txt := range pageTexts(p) {
			if strings.HasPrefix(txt, "Metro") {
				cities = append(cities, txt)
			}
		}
	}
	if len(cities) != len(req.Hotels) {
		t.Fatalf("emitted %d hotel rows, want %d", len(cities), len(req.Hotels))
	}
	for i, city := range cities {
		if want := fmt.Sprintf("Metro%02d", i); city != want {
			t.Fatalf("row %d out of order: got %s, want %s", i, city, want)
		}
	}

	// the table must actually have straddled a page boundary
	first := pageWithText(pages, "Metro00")
	last := pageWithText(pages, "Metro29")
	if first == last {
		t.Fatalf("30 hotel rows did not force a page break")
	}
}

func countText(pages []Page, s string) int {
	n := 0
	for _, p := range pages {
		for _, txt := range pageTexts(p) {
			if txt == s {
				n++
			}
		}
	}
	return n
}

func TestHotelHeaderRepeatConfigurable(t *testing.T) {
	req := testRequest()
	req.Hotels = nil
	for i := 0; i < 30; i++ {
		req.Hotels = append(req.Hotels, domain.Hotel{City: "Metro", Nights: 1})
	}

	cfg := config.DefaultReport()
	pages, err := newTestBuilder(cfg).Build(req)
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	if got := countText(pages, "Check In"); got != 1 {
		t.Fatalf("default config emitted %d hotel headers, want 1", got)
	}

	cfg.RepeatHotelHeader = true
	pages, err = newTestBuilder(cfg).Build(req)
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	if got := countText(pages, "Check In"); got < 2 {
		t.Fatalf("repeat-header config emitted %d hotel headers, want at least 2", got)
	}
}

func TestActivityPaginationExact(t *testing.T) {
	// each activity block below advances the cursor by a fixed 13mm
	// (7 base + 6 trailing gap): no title, description, or duration
	req := domain.TripRequest{
		CustomerName: "T",
		Destination:  "D",
		Days: []domain.DayPlan{{Activities: make([]domain.Activity, 60)}},
	}

	pages, err := newTestBuilder(config.DefaultReport()).Build(req)
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}

	// itinerary content before the forced break: title(20) + header(20) +
	// 60 activities at 13mm each, from y=165 on the cover page
	slots := countText(pages, string(domain.Morning))
	if slots != 60 {
		t.Fatalf("emitted %d activity slots, want 60", slots)
	}
	if len(pages) < 4 {
		t.Fatalf("60 activities used only %d pages", len(pages))
	}
}

func TestPaymentInstallments(t *testing.T) {
	req := testRequest()
	// derived total: 5*4000 + 2*8000 + 3*500 = 37500; remaining = 17500
	pages, err := newTestBuilder(config.DefaultReport()).Build(req)
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	if countText(pages, "Rs17,500") != 1 {
		t.Fatalf("computed third installment Rs17,500 not found")
	}
	if countText(pages, "Rs 37,500 For 1 Pax (Inclusive Of GST)") != 1 {
		t.Fatalf("total amount banner not found")
	}

	// overpaid installments clamp to zero and display as "Remaining"
	req.Installment1 = 30000
	req.Installment2 = 30000
	pages, err = newTestBuilder(config.DefaultReport()).Build(req)
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	if countText(pages, "Remaining") == 0 {
		t.Fatalf("clamped installment should display as Remaining")
	}
}

func TestRenderErrorAbortsBuild(t *testing.T) {
	b := NewBuilder(config.DefaultReport(), failingMeasurer{})
	pages, err := b.Build(testRequest())
	if err == nil {
		t.Fatalf("expected a render error")
	}
	if !domain.IsRender(err) {
		t.Fatalf("error is not a RenderError: %v", err)
	}
	if pages != nil {
		t.Fatalf("failed build must not return partial pages")
	}
}
