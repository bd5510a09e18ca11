package routes

import (
	"net/http"

	"evoting-backend/app/service"
	"evoting-backend/middleware"
	"evoting-backend/utils"

	"github.com/gin-gonic/gin"
)

// DashboardHandler adalah struct pengelola request untuk dashboard admin.
type DashboardHandler struct {
	dashboardService service.DashboardService
}

// NewDashboardHandler membuat instance handler baru; disambungkan di main.go.
func NewDashboardHandler(dashboardService service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// SetupDashboardRoutes mengatur routing dashboard (admin only).
func (h *DashboardHandler) SetupDashboardRoutes(r *gin.Engine) {
	group := r.Group("/api/v1/dashboard")
	group.Use(middleware.AuthMiddleware(), middleware.RequireRole("admin"))
	{
		group.GET("/stats", h.Stats)
	}
}

// Stats mengembalikan rekap angka dashboard.
// Query param ?department= opsional untuk membatasi count voter & admin.
func (h *DashboardHandler) Stats(ctx *gin.Context) {
	stats, err := h.dashboardService.Stats(ctx.Query("department"))
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK,
		utils.BuildResponseSuccess("Dashboard stats retrieved", stats))
}
