package routes

import (
	"net/http"

	"evoting-backend/app/model"
	"evoting-backend/app/service"
	"evoting-backend/middleware"
	"evoting-backend/utils"

	"github.com/gin-gonic/gin"
)

// VoterHandler adalah struct pengelola request untuk fitur pemilih.
type VoterHandler struct {
	voterService service.VoterService
}

// NewVoterHandler membuat instance handler baru; disambungkan di main.go.
func NewVoterHandler(voterService service.VoterService) *VoterHandler {
	return &VoterHandler{voterService: voterService}
}

// SetupVoterRoutes mengatur routing fitur pemilih.
func (h *VoterHandler) SetupVoterRoutes(r *gin.Engine) {
	group := r.Group("/api/v1/voters")
	{
		group.POST("/register", h.Register)
		group.POST("/login", h.Login)

		// Daftar lengkap voter hanya untuk admin.
		group.GET("",
			middleware.AuthMiddleware(), middleware.RequireRole("admin"), h.GetAll)
	}
}

// Register menangani pendaftaran pemilih baru.
func (h *VoterHandler) Register(ctx *gin.Context) {
	var input struct {
		StudentID        string `json:"studentId" binding:"required"`
		Firstname        string `json:"firstname" binding:"required"`
		Lastname         string `json:"lastname" binding:"required"`
		Department       string `json:"department"`
		Course           string `json:"course"`
		Year             string `json:"year"`
		Email            string `json:"email" binding:"omitempty,email"`
		Password         string `json:"password" binding:"required,min=6"`
		FacialDescriptor string `json:"facialDescriptor"`
		Gender           string `json:"gender"`
	}

	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Invalid input", err.Error(), nil))
		return
	}

	voter := model.Voter{
		StudentID:        input.StudentID,
		Firstname:        input.Firstname,
		Lastname:         input.Lastname,
		Department:       input.Department,
		Course:           input.Course,
		Year:             input.Year,
		Email:            input.Email,
		Password:         input.Password, // masih plaintext, di-hash di service
		FacialDescriptor: input.FacialDescriptor,
		Gender:           input.Gender, // default 'Other' di service kalau kosong
	}

	created, err := h.voterService.Register(&voter)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated,
		utils.BuildResponseSuccess("Voter registered successfully", created))
}

// Login menangani autentikasi pemilih dan menerbitkan token JWT.
func (h *VoterHandler) Login(ctx *gin.Context) {
	var input struct {
		StudentID string `json:"studentId" binding:"required"`
		Password  string `json:"password" binding:"required"`
	}

	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Invalid input", err.Error(), nil))
		return
	}

	voter, err := h.voterService.Login(input.StudentID, input.Password)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	token, err := utils.GenerateToken(voter.VotersID, voter.StudentID, "voter")
	if err != nil {
		ctx.JSON(http.StatusInternalServerError,
			utils.BuildResponseFailed("Failed to generate token", err.Error(), nil))
		return
	}

	data := map[string]interface{}{
		"token": token,
		"voter": voter,
	}

	ctx.JSON(http.StatusOK,
		utils.BuildResponseSuccess("Login successful", data))
}

// GetAll mengembalikan seluruh pemilih terdaftar.
func (h *VoterHandler) GetAll(ctx *gin.Context) {
	voters, err := h.voterService.GetAll()
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK,
		utils.BuildResponseSuccess("Voters retrieved", voters))
}
