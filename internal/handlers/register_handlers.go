package handlers

import (
	"path/filepath"

	portssvc "github.com/country-insights/country_insights_app/internal/core/ports/services"
	"github.com/country-insights/country_insights_app/internal/platform/config"
	"github.com/country-insights/country_insights_app/internal/summaryimage"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	root := r.Group("")
	imagePath := filepath.Join(cfg.CacheDir, summaryimage.FileName)
	registerCountryRoutes(root, services.Country, services.Refresh, imagePath)
	registerStatusRoutes(root, services.Status)
}
