package routes

import (
	"net/http"

	"evoting-backend/app/model"
	"evoting-backend/app/service"
	"evoting-backend/middleware"
	"evoting-backend/utils"

	"github.com/gin-gonic/gin"
)

// AdminHandler adalah struct pengelola request untuk lifecycle akun admin.
type AdminHandler struct {
	adminService service.AdminService
}

// NewAdminHandler membuat instance handler baru; disambungkan di main.go.
func NewAdminHandler(adminService service.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// SetupAdminRoutes mengatur routing lifecycle admin.
// Selain login, semuanya wajib token admin.
func (h *AdminHandler) SetupAdminRoutes(r *gin.Engine) {
	group := r.Group("/api/v1/admins")
	{
		group.POST("/login", h.Login)

		protected := group.Group("")
		protected.Use(middleware.AuthMiddleware(), middleware.RequireRole("admin"))
		{
			protected.POST("", h.Create)
			protected.GET("", h.GetAll)
			protected.PUT("/:adminId", h.Update)
			protected.DELETE("/:adminId", h.Delete)
			protected.PUT("/:adminId/password", h.ChangePassword)
		}
	}
}

// Create menangani pembuatan akun admin baru (oleh admin lain).
func (h *AdminHandler) Create(ctx *gin.Context) {
	var input struct {
		AdminID     string   `json:"adminId" binding:"required"`
		Password    string   `json:"password" binding:"required,min=6"`
		Fullname    string   `json:"fullname" binding:"required"`
		Email       string   `json:"email" binding:"omitempty,email"`
		Departments []string `json:"departments"`
		Position    string   `json:"position"`
	}

	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Invalid input", err.Error(), nil))
		return
	}

	// AddedBy diambil dari token admin yang sedang login.
	addedByI, _ := ctx.Get("subjectID")
	addedBy, _ := addedByI.(string)

	admin := model.Admin{
		AdminID:  input.AdminID,
		Password: input.Password, // masih plaintext, di-hash di service
		Fullname: input.Fullname,
		Email:    input.Email,
		Position: input.Position,
		AddedBy:  addedBy,
	}

	if err := h.adminService.Create(&admin, input.Departments); err != nil {
		respondServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated,
		utils.BuildResponseSuccess("Admin created successfully", admin))
}

// Login menangani autentikasi admin dan menerbitkan token JWT.
func (h *AdminHandler) Login(ctx *gin.Context) {
	var input struct {
		AdminID  string `json:"adminId" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Invalid input", err.Error(), nil))
		return
	}

	admin, err := h.adminService.Login(input.AdminID, input.Password)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	token, err := utils.GenerateToken(admin.AdminID, "", "admin")
	if err != nil {
		ctx.JSON(http.StatusInternalServerError,
			utils.BuildResponseFailed("Failed to generate token", err.Error(), nil))
		return
	}

	data := map[string]interface{}{
		"token": token,
		"admin": admin,
	}

	ctx.JSON(http.StatusOK,
		utils.BuildResponseSuccess("Login successful", data))
}

// GetAll mengembalikan seluruh akun admin.
func (h *AdminHandler) GetAll(ctx *gin.Context) {
	admins, err := h.adminService.GetAll()
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK,
		utils.BuildResponseSuccess("Admins retrieved", admins))
}

// Update mengubah fullname/email/position/departments satu admin.
func (h *AdminHandler) Update(ctx *gin.Context) {
	var input struct {
		Fullname    string   `json:"fullname"`
		Email       string   `json:"email" binding:"omitempty,email"`
		Position    string   `json:"position"`
		Departments []string `json:"departments"`
	}

	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Invalid input", err.Error(), nil))
		return
	}

	err := h.adminService.Update(ctx.Param("adminId"),
		input.Fullname, input.Email, input.Position, input.Departments)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK,
		utils.BuildResponseSuccess("Admin updated successfully", nil))
}

// Delete menghapus satu akun admin.
func (h *AdminHandler) Delete(ctx *gin.Context) {
	if err := h.adminService.Delete(ctx.Param("adminId")); err != nil {
		respondServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK,
		utils.BuildResponseSuccess("Admin deleted successfully", nil))
}

// ChangePassword mengganti password admin setelah verifikasi password lama.
func (h *AdminHandler) ChangePassword(ctx *gin.Context) {
	var input struct {
		OldPassword string `json:"oldPassword" binding:"required"`
		NewPassword string `json:"newPassword" binding:"required,min=6"`
	}

	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Invalid input", err.Error(), nil))
		return
	}

	err := h.adminService.ChangePassword(ctx.Param("adminId"),
		input.OldPassword, input.NewPassword)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK,
		utils.BuildResponseSuccess("Password changed successfully", nil))
}
