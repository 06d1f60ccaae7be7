package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/country-insights/country_insights_app/internal/core/ports/services"
	"github.com/country-insights/country_insights_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// statusHandler handles HTTP requests for the system status.
type statusHandler struct {
	statusService portssvc.StatusSvc
}

func newStatusHandler(ss portssvc.StatusSvc) *statusHandler {
	return &statusHandler{statusService: ss}
}

// registerStatusRoutes registers the system status route.
func registerStatusRoutes(rg *gin.RouterGroup, ss portssvc.StatusSvc) {
	h := newStatusHandler(ss)
	rg.GET("/status", h.getSystemStatus)
}

// getSystemStatus returns the total country count and the last refresh
// timestamp (null before the first successful refresh).
func (h *statusHandler) getSystemStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	status, err := h.statusService.GetSystemStatus(c.Request.Context())
	if err != nil {
		logger.Error("Failed to get system status from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error", "details": "Failed to fetch system status"})
		return
	}

	c.JSON(http.StatusOK, status)
}
