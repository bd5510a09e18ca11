package routes

import (
	"net/http"

	"evoting-backend/app/model"
	"evoting-backend/app/service"
	"evoting-backend/middleware"
	"evoting-backend/utils"

	"github.com/gin-gonic/gin"
)

// VoteHandler adalah struct pengelola request untuk pencatatan suara dan
// seluruh endpoint agregasi (hasil, statistik, riwayat).
type VoteHandler struct {
	voteService service.VoteService
}

// NewVoteHandler membuat instance handler baru; disambungkan di main.go.
func NewVoteHandler(voteService service.VoteService) *VoteHandler {
	return &VoteHandler{voteService: voteService}
}

// SetupVoteRoutes mengatur routing suara & agregasi.
// Cast wajib token voter; riwayat hanya untuk admin.
func (h *VoteHandler) SetupVoteRoutes(r *gin.Engine) {
	group := r.Group("/api/v1/votes")
	{
		group.POST("",
			middleware.AuthMiddleware(), middleware.RequireRole("voter"), h.Cast)

		group.GET("/:type/results", h.Results)
		group.GET("/:type/statistics", h.Statistics)
		group.GET("/:type/history",
			middleware.AuthMiddleware(), middleware.RequireRole("admin"), h.History)
	}
}

// Cast menangani pencatatan satu surat suara.
func (h *VoteHandler) Cast(ctx *gin.Context) {
	// Field posisi semuanya opsional: kosong artinya tidak memilih /
	// posisinya tidak dikontes.
	var input struct {
		StudentID       string `json:"studentId" binding:"required"`
		VotersID        string `json:"votersId" binding:"required"`
		Fullname        string `json:"fullname"`
		Email           string `json:"email" binding:"omitempty,email"`
		Department      string `json:"department"`
		ElectionType    string `json:"electionType" binding:"required"`
		President       string `json:"president"`
		VicePresident   string `json:"vicePresident"`
		Secretary       string `json:"secretary"`
		Treasurer       string `json:"treasurer"`
		Auditor         string `json:"auditor"`
		MMO             string `json:"mmo"`
		Representatives string `json:"representatives"`
	}

	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Invalid input", err.Error(), nil))
		return
	}

	vote := model.Vote{
		StudentID:       input.StudentID,
		VotersID:        input.VotersID,
		Fullname:        input.Fullname,
		Email:           input.Email,
		Department:      input.Department,
		ElectionType:    input.ElectionType,
		President:       input.President,
		VicePresident:   input.VicePresident,
		Secretary:       input.Secretary,
		Treasurer:       input.Treasurer,
		Auditor:         input.Auditor,
		MMO:             input.MMO,
		Representatives: input.Representatives,
	}

	if err := h.voteService.Cast(&vote); err != nil {
		respondServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated,
		utils.BuildResponseSuccess("Vote recorded successfully", nil))
}

// Results mengembalikan tally per posisi untuk satu tipe pemilihan.
func (h *VoteHandler) Results(ctx *gin.Context) {
	results, err := h.voteService.Results(ctx.Param("type"))
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK,
		utils.BuildResponseSuccess("Results retrieved", results))
}

// Statistics mengembalikan statistik partisipasi tahun berjalan.
func (h *VoteHandler) Statistics(ctx *gin.Context) {
	stats, err := h.voteService.Statistics(ctx.Param("type"))
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK,
		utils.BuildResponseSuccess("Statistics retrieved", stats))
}

// History mengembalikan partisi pemilih sudah/belum memberikan suara.
func (h *VoteHandler) History(ctx *gin.Context) {
	history, err := h.voteService.History(ctx.Param("type"))
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK,
		utils.BuildResponseSuccess("Voting history retrieved", history))
}
