package main

import (
	"log"
	"os"

	"evoting-backend/app/repository"
	"evoting-backend/app/service"
	"evoting-backend/database"
	"evoting-backend/routes"
	"evoting-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	// =================================================================
	// LOAD ENV
	// =================================================================
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env tidak ditemukan, menggunakan environment default")
	}

	// =================================================================
	// INIT DB (POSTGRES + MONGODB)
	// =================================================================
	dbConn, err := database.InitDB()
	if err != nil {
		log.Fatalf("❌ Gagal koneksi database: %v", err)
	}

	// =================================================================
	// SEED DATA (STUDENT ROSTER + SUPERADMIN)
	// =================================================================
	database.RunSeeders(dbConn.Postgres)

	// =================================================================
	// GATEWAYS (MAILER + IMAGE URL RESOLVER)
	// =================================================================
	mailer, err := utils.NewMailerFromEnv()
	if err != nil {
		log.Fatalf("❌ Konfigurasi SMTP tidak valid: %v", err)
	}
	if mailer == nil {
		log.Println("⚠️  SMTP_HOST kosong, email notifikasi dinonaktifkan")
	}

	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	resolver := utils.NewImageURLResolver(baseURL)

	// =================================================================
	// REPOSITORIES
	// =================================================================
	studentRepo := repository.NewStudentRepository(dbConn.Postgres)
	voterRepo := repository.NewVoterRepository(dbConn.Postgres)
	candidateRepo := repository.NewCandidateRepository(dbConn.Postgres)
	adminRepo := repository.NewAdminRepository(dbConn.Postgres)
	scheduleRepo := repository.NewScheduleRepository(dbConn.Postgres)
	voteRepo := repository.NewVoteRepository(dbConn.Postgres)
	auditRepo := repository.NewAuditRepository(dbConn.Mongo)

	// =================================================================
	// SERVICES
	// =================================================================
	voterService := service.NewVoterService(voterRepo, studentRepo)
	candidateService := service.NewCandidateService(candidateRepo, auditRepo, resolver)
	adminService := service.NewAdminService(adminRepo, auditRepo, mailer)
	scheduleService := service.NewScheduleService(scheduleRepo)
	voteService := service.NewVoteService(voteRepo, voterRepo, auditRepo)
	dashboardService := service.NewDashboardService(studentRepo, voterRepo, adminRepo, auditRepo)

	// =================================================================
	// ROUTER
	// =================================================================
	r := gin.Default()

	routes.NewVoterHandler(voterService).SetupVoterRoutes(r)
	routes.NewCandidateHandler(candidateService).SetupCandidateRoutes(r)
	routes.NewAdminHandler(adminService).SetupAdminRoutes(r)
	routes.NewScheduleHandler(scheduleService).SetupScheduleRoutes(r)
	routes.NewVoteHandler(voteService).SetupVoteRoutes(r)
	routes.NewDashboardHandler(dashboardService).SetupDashboardRoutes(r)

	// Root endpoint (optional)
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "E-Voting API RUNNING",
			"version": "1.0.0",
		})
	})

	// =================================================================
	// START SERVER
	// =================================================================
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	log.Println("🚀 Server running at http://localhost:" + port)

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Gagal menjalankan server: %v", err)
	}
}
