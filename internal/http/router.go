package api

import (
	"log"
	stdhttp "net/http"

	intconfig "vigovia/internal/config"
	h "vigovia/internal/http/handlers"
	"vigovia/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/options", h.Options)

		itineraries := api.Group("/itineraries")
		itineraries.POST("", h.GenerateItinerary)
		itineraries.POST("/quote", h.QuoteItinerary)
	}

	return r
}
