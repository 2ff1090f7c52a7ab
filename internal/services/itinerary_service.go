package services

import (
	"fmt"

	"vigovia/internal/config"
	"vigovia/internal/domain"
	"vigovia/internal/report"
	"vigovia/internal/utils"
)

// ItineraryService is the public entry point of the composition engine.
// Every call builds its own cursor and page set, so concurrent builds from
// independent requests are safe without locking.
type ItineraryService struct {
	Config    config.Report
	RequestID string
}

// BuildItinerary renders the request into a PDF artifact and its filename.
// A build either fully succeeds or returns nothing; errors bubble to the
// caller unmodified for user-facing messaging.
func (s ItineraryService) BuildItinerary(req domain.TripRequest) ([]byte, string, error) {
	emitter := report.NewPDFEmitter(s.Config)
	builder := report.NewBuilder(s.Config, emitter.Measurer())

	pages, err := builder.Build(req)
	if err != nil {
		return nil, "", err
	}

	artifact, err := emitter.Emit(pages)
	if err != nil {
		return nil, "", err
	}

	filename := report.Filename(req.CustomerName, req.Destination)
	utils.LogEvent(s.RequestID, "itinerary", "build",
		fmt.Sprintf("pages=%d bytes=%d file=%s", len(pages), len(artifact), filename))
	return artifact, filename, nil
}

// Quote derives the on-screen estimate from the same metric functions the
// document renderer uses.
func (s ItineraryService) Quote(req domain.TripRequest) domain.Estimate {
	return domain.Quote(req, s.Config.Costs)
}
