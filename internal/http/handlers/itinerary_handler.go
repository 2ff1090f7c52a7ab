package handlers

import (
	"net/http"

	"vigovia/internal/config"
	"vigovia/internal/domain"
	"vigovia/internal/http/middleware"
	"vigovia/internal/services"

	"github.com/gin-gonic/gin"
)

// GenerateItinerary builds the travel itinerary PDF for a submitted trip
// request and returns it inline.
func GenerateItinerary(c *gin.Context) {
	var req domain.TripRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	svc := services.ItineraryService{
		Config:    config.LoadReport(),
		RequestID: middleware.GetRequestID(c),
	}
	artifact, filename, err := svc.BuildItinerary(req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", artifact)
}

// QuoteItinerary returns the cost estimate and trip length for the form's
// on-screen summary, derived with the same functions the PDF uses.
func QuoteItinerary(c *gin.Context) {
	var req domain.TripRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	svc := services.ItineraryService{
		Config:    config.LoadReport(),
		RequestID: middleware.GetRequestID(c),
	}
	c.JSON(http.StatusOK, svc.Quote(req))
}
