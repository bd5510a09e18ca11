package routes

import (
	"errors"
	"log"
	"net/http"

	"evoting-backend/app/service"
	"evoting-backend/utils"

	"github.com/gin-gonic/gin"
)

// respondServiceError memetakan sentinel error dari service ke status code +
// envelope {success:false, message}. Konflik domain dan not-found adalah hasil
// yang diharapkan, bukan 500; hanya error infrastruktur yang jadi internal error.
func respondServiceError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrAlreadyFiled),
		errors.Is(err, service.ErrVoterExists),
		errors.Is(err, service.ErrAlreadyVoted),
		errors.Is(err, service.ErrAdminExists):
		ctx.JSON(http.StatusConflict, utils.BuildResponseFailed(err.Error(), nil, nil))

	case errors.Is(err, service.ErrStudentNotFound),
		errors.Is(err, service.ErrVoterNotFound),
		errors.Is(err, service.ErrAdminNotFound),
		errors.Is(err, service.ErrScheduleNotFound),
		errors.Is(err, service.ErrNoDataFound):
		ctx.JSON(http.StatusNotFound, utils.BuildResponseFailed(err.Error(), nil, nil))

	case errors.Is(err, service.ErrInvalidPassword):
		ctx.JSON(http.StatusUnauthorized, utils.BuildResponseFailed(err.Error(), nil, nil))

	case errors.Is(err, utils.ErrEmptyCredential):
		ctx.JSON(http.StatusBadRequest, utils.BuildResponseFailed("Invalid input", err.Error(), nil))

	default:
		// Error infrastruktur: di-log dengan konteks request, jangan ditelan diam-diam.
		log.Printf("[HTTP] %s %s gagal: %v", ctx.Request.Method, ctx.FullPath(), err)
		ctx.JSON(http.StatusInternalServerError,
			utils.BuildResponseFailed("Internal server error", err.Error(), nil))
	}
}
