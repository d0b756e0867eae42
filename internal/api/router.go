// Package api wires the HTTP adapter: middleware, handlers and routes.
package api

import (
	"dcf-valuation/internal/api/handlers"
	"dcf-valuation/internal/api/middleware"
	"dcf-valuation/internal/config"
	"dcf-valuation/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Deps are the shared components the routes need.
type Deps struct {
	Config  *config.Config
	Presets *config.PresetSet
	Results *store.ResultCache[handlers.StoredValuation]
	Log     zerolog.Logger
}

// NewRouter builds the gin engine with all API routes registered.
func NewRouter(d Deps) *gin.Engine {
	router := gin.New()

	router.Use(middleware.CORS(d.Config.Server.AllowedOrigins))
	router.Use(middleware.Logger(d.Log))
	router.Use(middleware.ErrorHandler(d.Log))

	valuationHandler := handlers.NewValuationHandler(d.Presets, d.Results, d.Config.Limits.MaxForecastYears, d.Log)
	presetHandler := handlers.NewPresetHandler(d.Presets)

	router.GET("/health", handlers.HealthCheck)

	v1 := router.Group("/api/v1")
	{
		v1.POST("/valuation", valuationHandler.RunValuation)
		v1.GET("/valuation/:id", valuationHandler.GetValuation)
		v1.GET("/valuation/:id/table.csv", valuationHandler.GetValuationTable)

		v1.GET("/presets", presetHandler.ListPresets)
		v1.GET("/presets/:id", presetHandler.GetPreset)
	}

	return router
}
