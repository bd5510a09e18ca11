package middleware

import (
	"net/http"
	"strings"

	"evoting-backend/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware memvalidasi JWT dari header Authorization (Bearer token)
// dan menyimpan identitas pemegang token (subjectID, studentID, role)
// ke dalam context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Ambil header Authorization
		auth := c.GetHeader("Authorization")
		if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
			c.JSON(http.StatusUnauthorized,
				utils.BuildResponseFailed("Authorization token required", "missing_or_invalid_authorization_header", nil))
			c.Abort()
			return
		}

		// Ambil token string dan trim spasi sisa
		tokenString := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized,
				utils.BuildResponseFailed("Authorization token required", "empty_token", nil))
			c.Abort()
			return
		}

		// Validasi token (JWT parsing & verifikasi signature/expired)
		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized,
				utils.BuildResponseFailed("Invalid or expired token", err.Error(), nil))
			c.Abort()
			return
		}

		// Inject nilai-nilai penting ke context untuk dipakai di handler
		c.Set("subjectID", claims.SubjectID) // admin_id untuk admin, voters_id untuk voter
		c.Set("studentID", claims.StudentID) // kosong kalau admin
		c.Set("role", claims.Role)           // "admin" / "voter"

		c.Next()
	}
}

// RequireRole membatasi akses ke pemegang role tertentu.
// Dipasang SETELAH AuthMiddleware.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleI, _ := c.Get("role")
		if actual, _ := roleI.(string); actual != role {
			c.JSON(http.StatusForbidden,
				utils.BuildResponseFailed("You are not allowed to access this resource", "forbidden", nil))
			c.Abort()
			return
		}
		c.Next()
	}
}
