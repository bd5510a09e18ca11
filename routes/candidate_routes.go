package routes

import (
	"net/http"

	"evoting-backend/app/model"
	"evoting-backend/app/service"
	"evoting-backend/middleware"
	"evoting-backend/utils"

	"github.com/gin-gonic/gin"
)

// CandidateHandler adalah struct pengelola request untuk fitur pencalonan.
type CandidateHandler struct {
	candidateService service.CandidateService
}

// NewCandidateHandler membuat instance handler baru; disambungkan di main.go.
func NewCandidateHandler(candidateService service.CandidateService) *CandidateHandler {
	return &CandidateHandler{candidateService: candidateService}
}

// SetupCandidateRoutes mengatur routing fitur pencalonan.
func (h *CandidateHandler) SetupCandidateRoutes(r *gin.Engine) {
	group := r.Group("/api/v1/candidates")
	{
		group.POST("", h.File)
		group.GET("", h.GetAll)
		group.GET("/student/:studentId", h.GetByStudentID)
		group.GET("/election/:type", h.GetByElectionType)
		group.GET("/election/:type/approved", h.GetApprovedByElectionType)

		// Update status hanya untuk admin.
		group.PUT("/:studentId/status",
			middleware.AuthMiddleware(), middleware.RequireRole("admin"), h.UpdateStatus)
	}
}

// File menangani pengajuan pencalonan baru.
func (h *CandidateHandler) File(ctx *gin.Context) {
	// DTO: wadah sementara JSON dari frontend.
	var input struct {
		StudentID     string  `json:"studentId" binding:"required"`
		Firstname     string  `json:"firstname" binding:"required"`
		Lastname      string  `json:"lastname" binding:"required"`
		Department    string  `json:"department"`
		Email         string  `json:"email" binding:"omitempty,email"`
		Position      string  `json:"position" binding:"required"`
		ElectionType  string  `json:"electionType" binding:"required"`
		Party         string  `json:"party"`
		AboutYourself string  `json:"aboutYourself"`
		Purpose       string  `json:"purpose"`
		Status        string  `json:"status"`
		Image         *string `json:"image"`
	}

	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Invalid input", err.Error(), nil))
		return
	}

	candidate := model.Candidate{
		StudentID:     input.StudentID,
		Firstname:     input.Firstname,
		Lastname:      input.Lastname,
		Department:    input.Department,
		Email:         input.Email,
		Position:      input.Position,
		ElectionType:  input.ElectionType,
		Party:         input.Party,
		AboutYourself: input.AboutYourself,
		Purpose:       input.Purpose,
		Status:        input.Status, // dinormalisasi di service (uppercase, default PENDING)
		Image:         input.Image,
	}

	created, err := h.candidateService.File(&candidate)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated,
		utils.BuildResponseSuccess("Candidacy filed successfully", created))
}

// GetAll mengembalikan seluruh kandidat (image sudah berupa URL absolut).
func (h *CandidateHandler) GetAll(ctx *gin.Context) {
	candidates, err := h.candidateService.GetAll()
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK,
		utils.BuildResponseSuccess("Candidates retrieved", candidates))
}

// GetByStudentID mengembalikan kandidat milik satu student_id.
func (h *CandidateHandler) GetByStudentID(ctx *gin.Context) {
	candidate, err := h.candidateService.GetByStudentID(ctx.Param("studentId"))
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK,
		utils.BuildResponseSuccess("Candidate retrieved", candidate))
}

// GetByElectionType mengembalikan kandidat satu tipe pemilihan tahun berjalan.
func (h *CandidateHandler) GetByElectionType(ctx *gin.Context) {
	candidates, err := h.candidateService.GetByElectionType(ctx.Param("type"))
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK,
		utils.BuildResponseSuccess("Candidates retrieved", candidates))
}

// GetApprovedByElectionType sama seperti GetByElectionType tapi hanya APPROVED.
func (h *CandidateHandler) GetApprovedByElectionType(ctx *gin.Context) {
	candidates, err := h.candidateService.GetApprovedByElectionType(ctx.Param("type"))
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK,
		utils.BuildResponseSuccess("Approved candidates retrieved", candidates))
}

// UpdateStatus menangani persetujuan/penolakan pencalonan oleh admin.
func (h *CandidateHandler) UpdateStatus(ctx *gin.Context) {
	var input struct {
		Status  string `json:"status" binding:"required"`
		Remarks string `json:"remarks"`
	}

	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Invalid input", err.Error(), nil))
		return
	}

	// Actor untuk audit trail diambil dari token.
	actorI, _ := ctx.Get("subjectID")
	actor, _ := actorI.(string)

	if err := h.candidateService.UpdateStatus(actor, ctx.Param("studentId"), input.Status, input.Remarks); err != nil {
		respondServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK,
		utils.BuildResponseSuccess("Candidate status updated", nil))
}
