package routes

import (
	"net/http"
	"time"

	"evoting-backend/app/service"
	"evoting-backend/middleware"
	"evoting-backend/utils"

	"github.com/gin-gonic/gin"
)

// ScheduleHandler adalah struct pengelola request untuk jadwal
// pencalonan dan pemilihan.
type ScheduleHandler struct {
	scheduleService service.ScheduleService
}

// NewScheduleHandler membuat instance handler baru; disambungkan di main.go.
func NewScheduleHandler(scheduleService service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleService: scheduleService}
}

// SetupScheduleRoutes mengatur routing jadwal. GET publik, PUT hanya admin.
func (h *ScheduleHandler) SetupScheduleRoutes(r *gin.Engine) {
	group := r.Group("/api/v1/schedules")
	{
		group.GET("/candidacy/:type", h.GetCandidacySchedule)
		group.GET("/election/:type", h.GetElectionSchedule)

		adminOnly := group.Group("")
		adminOnly.Use(middleware.AuthMiddleware(), middleware.RequireRole("admin"))
		{
			adminOnly.PUT("/candidacy/:type", h.UpsertCandidacySchedule)
			adminOnly.PUT("/election/:type", h.UpsertElectionSchedule)
		}
	}
}

// scheduleInput adalah DTO bersama untuk upsert kedua jenis jadwal.
// open_date tidak diterima dari frontend: selalu di-set now oleh service.
type scheduleInput struct {
	CloseDate time.Time `json:"closeDate" binding:"required"`
	Status    string    `json:"status" binding:"required"`
}

// GetCandidacySchedule mengembalikan jadwal pencalonan satu tipe.
func (h *ScheduleHandler) GetCandidacySchedule(ctx *gin.Context) {
	sched, err := h.scheduleService.GetCandidacySchedule(ctx.Param("type"))
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK,
		utils.BuildResponseSuccess("Candidacy schedule retrieved", sched))
}

// UpsertCandidacySchedule membuka/memperbarui jadwal pencalonan satu tipe.
func (h *ScheduleHandler) UpsertCandidacySchedule(ctx *gin.Context) {
	var input scheduleInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Invalid input", err.Error(), nil))
		return
	}

	openedByI, _ := ctx.Get("subjectID")
	openedBy, _ := openedByI.(string)

	sched, err := h.scheduleService.UpsertCandidacySchedule(
		ctx.Param("type"), input.CloseDate, input.Status, openedBy)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK,
		utils.BuildResponseSuccess("Candidacy schedule saved", sched))
}

// GetElectionSchedule mengembalikan jadwal pemilihan satu tipe.
func (h *ScheduleHandler) GetElectionSchedule(ctx *gin.Context) {
	sched, err := h.scheduleService.GetElectionSchedule(ctx.Param("type"))
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK,
		utils.BuildResponseSuccess("Election schedule retrieved", sched))
}

// UpsertElectionSchedule membuka/memperbarui jadwal pemilihan satu tipe.
func (h *ScheduleHandler) UpsertElectionSchedule(ctx *gin.Context) {
	var input scheduleInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Invalid input", err.Error(), nil))
		return
	}

	openedByI, _ := ctx.Get("subjectID")
	openedBy, _ := openedByI.(string)

	sched, err := h.scheduleService.UpsertElectionSchedule(
		ctx.Param("type"), input.CloseDate, input.Status, openedBy)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK,
		utils.BuildResponseSuccess("Election schedule saved", sched))
}
