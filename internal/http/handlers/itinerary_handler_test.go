package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"vigovia/internal/http/middleware"
)

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RequestID())
	api := r.Group("/api")
	api.GET("/health", Health)
	api.GET("/options", Options)
	api.POST("/itineraries", GenerateItinerary)
	api.POST("/itineraries/quote", QuoteItinerary)
	return r
}

const tripJSON = `{
	"customerName": "Jane Doe",
	"destination": "Singapore",
	"travelers": 1,
	"departureFrom": "Mumbai",
	"departureDate": "2025-01-10",
	"returnDate": "2025-01-15",
	"days": [
		{"date": "2025-01-10", "activities": [
			{"time": "Morning", "title": "Gardens by the Bay"},
			{"time": "Evening", "title": "Marina Bay Sands"}
		]},
		{"activities": [
			{"time": "Afternoon", "title": "Sentosa", "description": "Cable car and beaches", "duration": "Full day"}
		]}
	],
	"flights": [
		{"date": "2025-01-10", "airline": "Air India", "from": "Mumbai", "to": "Singapore", "departure": "09:00", "arrival": "17:30"},
		{"date": "2025-01-15", "airline": "Air India", "from": "Singapore", "to": "Mumbai"}
	],
	"hotels": [
		{"city": "Singapore", "name": "Marina View", "checkIn": "2025-01-10", "checkOut": "2025-01-15", "nights": 5}
	],
	"installment1": 10000,
	"installment2": 10000
}`

func TestGenerateItinerary(t *testing.T) {
	r := testRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/itineraries", strings.NewReader(tripJSON))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("content type = %q", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "Jane_Doe_Singapore_Itinerary.pdf") {
		t.Fatalf("content disposition = %q", cd)
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")) {
		t.Fatalf("response body is not a PDF")
	}
}

func TestGenerateItineraryRejectsInvalidPayload(t *testing.T) {
	r := testRouter()

	// customerName and destination are required
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/itineraries", strings.NewReader(`{"travelers": 1}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestQuoteItinerary(t *testing.T) {
	r := testRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/itineraries/quote", strings.NewReader(tripJSON))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var quote struct {
		Total      int64  `json:"total"`
		TripLength string `json:"tripLength"`
		Remaining  int64  `json:"remaining"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &quote); err != nil {
		t.Fatalf("decode quote: %v", err)
	}
	if quote.Total != 37500 {
		t.Fatalf("quote total = %d, want 37500", quote.Total)
	}
	if quote.TripLength != "6 Days 5 Nights" {
		t.Fatalf("trip length = %q", quote.TripLength)
	}
	if quote.Remaining != 17500 {
		t.Fatalf("remaining = %d, want 17500", quote.Remaining)
	}
}

func TestHealth(t *testing.T) {
	r := testRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestOptionsVocabulary(t *testing.T) {
	r := testRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/options", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var opts map[string][]string
	if err := json.Unmarshal(w.Body.Bytes(), &opts); err != nil {
		t.Fatalf("decode options: %v", err)
	}
	if len(opts["timeSlots"]) != 4 {
		t.Fatalf("time slots = %v", opts["timeSlots"])
	}
	if len(opts["airlines"]) == 0 || len(opts["popularDestinations"]) == 0 {
		t.Fatalf("options vocabulary incomplete: %v", opts)
	}
}
