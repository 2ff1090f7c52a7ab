package config

import (
	"os"
	"strconv"
	"strings"

	"vigovia/internal/domain"
)

// Color is an RGB triple for report styling.
type Color struct {
	R, G, B int
}

// Palette holds the report color scheme. Cosmetic constants only; layout
// code never branches on color values.
type Palette struct {
	Primary   Color // section banners, headers
	Secondary Color // timeline accents
	Text      Color
	Muted     Color
	Shade     Color // alternating row / box background
	Line      Color // timeline connectors
	White     Color
	Footer    Color
}

// Report carries everything the composition engine needs that is not part
// of the trip itself: page geometry, pricing, colors, and layout toggles.
// All values are injected into the builder; layout code reads only this.
type Report struct {
	PageWidth  float64 // mm
	PageHeight float64 // mm
	Margin     float64 // mm

	Costs   domain.UnitCosts
	Palette Palette

	// RepeatHotelHeader re-emits the hotel table header after a page break.
	// The original report does not repeat it, so the default is off.
	RepeatHotelHeader bool
}

// DefaultReport returns the production A4 layout and pricing.
func DefaultReport() Report {
	return Report{
		PageWidth:  210,
		PageHeight: 297,
		Margin:     20,
		Costs: domain.UnitCosts{
			HotelNight: 4000,
			Flight:     8000,
			Activity:   500,
		},
		Palette: Palette{
			Primary:   Color{107, 70, 193},
			Secondary: Color{59, 130, 246},
			Text:      Color{55, 65, 81},
			Muted:     Color{120, 120, 120},
			Shade:     Color{248, 250, 252},
			Line:      Color{200, 200, 200},
			White:     Color{255, 255, 255},
			Footer:    Color{102, 102, 102},
		},
	}
}

// LoadReport builds the report config from defaults plus env overrides, so
// pricing can be retuned per deployment without touching layout code.
func LoadReport() Report {
	cfg := DefaultReport()
	cfg.Costs.HotelNight = envInt64("COST_PER_HOTEL_NIGHT", cfg.Costs.HotelNight)
	cfg.Costs.Flight = envInt64("COST_PER_FLIGHT", cfg.Costs.Flight)
	cfg.Costs.Activity = envInt64("COST_PER_ACTIVITY", cfg.Costs.Activity)
	cfg.RepeatHotelHeader = envBool("REPORT_REPEAT_HOTEL_HEADER", cfg.RepeatHotelHeader)
	return cfg
}

func envInt64(key string, fallback int64) int64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v < 0 {
		return fallback
	}
	return v
}

func envBool(key string, fallback bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return v
}
