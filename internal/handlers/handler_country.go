package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"os"

	"github.com/country-insights/country_insights_app/internal/apperrors"
	portssvc "github.com/country-insights/country_insights_app/internal/core/ports/services"
	"github.com/country-insights/country_insights_app/internal/dto"
	"github.com/country-insights/country_insights_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// countryHandler handles HTTP requests related to countries.
type countryHandler struct {
	countryService portssvc.CountrySvcFacade
	refreshService portssvc.RefreshSvc
	imagePath      string
}

// newCountryHandler creates a new countryHandler.
func newCountryHandler(cs portssvc.CountrySvcFacade, rs portssvc.RefreshSvc, imagePath string) *countryHandler {
	return &countryHandler{
		countryService: cs,
		refreshService: rs,
		imagePath:      imagePath,
	}
}

// registerCountryRoutes registers routes related to countries.
func registerCountryRoutes(rg *gin.RouterGroup, cs portssvc.CountrySvcFacade, rs portssvc.RefreshSvc, imagePath string) {
	h := newCountryHandler(cs, rs, imagePath)

	countries := rg.Group("/countries")
	{
		countries.POST("/refresh", h.refreshCountries)
		countries.GET("", h.listCountries)
		countries.GET("/image", h.getSummaryImage)
		countries.GET("/:name", h.getCountryByName)
		countries.DELETE("/:name", h.deleteCountryByName)
	}
}

// refreshCountries runs a full refresh: fetch both external sources,
// merge, persist, and regenerate the summary image. Upstream failures are
// reported as 503 so callers can tell them apart from internal errors.
func (h *countryHandler) refreshCountries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request to refresh countries")

	result, err := h.refreshService.RefreshCountries(c.Request.Context())
	if err != nil {
		if apperrors.IsExternalSource(err) {
			logger.Warn("External data source unavailable", slog.String("error", err.Error()))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error":   "External data source unavailable",
				"details": err.Error(),
			})
			return
		}
		logger.Error("Failed to refresh countries", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Internal server error",
			"details": "Failed to refresh countries data",
		})
		return
	}

	logger.Info("Countries refreshed successfully", slog.Int64("total_countries", result.TotalCountries))
	c.JSON(http.StatusOK, dto.ToRefreshResponse(result))
}

// listCountries returns all countries, optionally filtered by region or
// currency and sorted by GDP or population.
func (h *countryHandler) listCountries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var query dto.ListCountriesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warn("Invalid query parameters for ListCountries", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	countries, err := h.countryService.ListCountries(c.Request.Context(), query.Filter())
	if err != nil {
		logger.Error("Failed to list countries from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error", "details": "Failed to fetch countries"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListCountryResponse(countries))
}

// getCountryByName returns one country or 404.
func (h *countryHandler) getCountryByName(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	name := c.Param("name")

	country, err := h.countryService.GetCountryByName(c.Request.Context(), name)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Country not found"})
			return
		}
		logger.Error("Failed to get country from service", slog.String("name", name), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error", "details": "Failed to fetch country"})
		return
	}

	c.JSON(http.StatusOK, dto.ToCountryResponse(country))
}

// deleteCountryByName removes one country or returns 404.
func (h *countryHandler) deleteCountryByName(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	name := c.Param("name")

	if err := h.countryService.DeleteCountryByName(c.Request.Context(), name); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Country not found"})
			return
		}
		logger.Error("Failed to delete country from service", slog.String("name", name), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error", "details": "Failed to delete country"})
		return
	}

	c.Status(http.StatusNoContent)
}

// getSummaryImage serves the summary image rendered by the last refresh.
func (h *countryHandler) getSummaryImage(c *gin.Context) {
	if _, err := os.Stat(h.imagePath); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Summary image not found"})
		return
	}

	c.Header("Cache-Control", "public, max-age=300")
	c.Header("Content-Type", "image/png")
	c.File(h.imagePath)
}
