package service

import (
	"context"
	"log"
	"time"

	"evoting-backend/app/model"
	"evoting-backend/app/repository"
)

// DashboardStats adalah rekap angka untuk dashboard admin.
// Tiap count berdiri sendiri: satu sumber gagal → angkanya didegradasi ke 0,
// respons tetap utuh.
type DashboardStats struct {
	TotalStudents       int64                        `json:"totalStudents"`
	TotalVoters         int64                        `json:"totalVoters"`
	TotalAdmins         int64                        `json:"totalAdmins"`
	VotersPerDepartment []repository.DepartmentCount `json:"votersPerDepartment"`
	AuditCounts         map[string]int64             `json:"auditCounts"`
	RecentActivity      []model.AuditLog             `json:"recentActivity"`
}

// DashboardService merakit statistik dashboard dari beberapa query independen.
// Query-query ini tidak dijamin melihat snapshot konsisten satu sama lain.
type DashboardService interface {
	// Stats menghitung rekap dashboard. department opsional: kalau diisi,
	// count voter & admin difilter ke department itu.
	Stats(department string) (*DashboardStats, error)
}

type dashboardService struct {
	studentRepo repository.StudentRepository
	voterRepo   repository.VoterRepository
	adminRepo   repository.AdminRepository
	auditRepo   repository.AuditRepository
}

// NewDashboardService menghubungkan Service dengan Repository-repository sumber angka.
func NewDashboardService(
	studentRepo repository.StudentRepository,
	voterRepo   repository.VoterRepository,
	adminRepo   repository.AdminRepository,
	auditRepo   repository.AuditRepository,
) DashboardService {
	return &dashboardService{
		studentRepo: studentRepo,
		voterRepo:   voterRepo,
		adminRepo:   adminRepo,
		auditRepo:   auditRepo,
	}
}

func (s *dashboardService) Stats(department string) (*DashboardStats, error) {
	stats := &DashboardStats{
		VotersPerDepartment: []repository.DepartmentCount{},
		AuditCounts:         map[string]int64{},
		RecentActivity:      []model.AuditLog{},
	}

	// Semua filter department di bawah ini parameterized di repository ,
	// tidak ada input yang dirangkai langsung ke SQL.

	if count, err := s.studentRepo.Count(); err != nil {
		log.Printf("[DASHBOARD] gagal menghitung students, pakai 0: %v", err)
	} else {
		stats.TotalStudents = count
	}

	var voterCount int64
	var err error
	if department != "" {
		voterCount, err = s.voterRepo.CountByDepartment(department)
	} else {
		voterCount, err = s.voterRepo.Count()
	}
	if err != nil {
		log.Printf("[DASHBOARD] gagal menghitung voters, pakai 0: %v", err)
	} else {
		stats.TotalVoters = voterCount
	}

	var adminCount int64
	if department != "" {
		adminCount, err = s.adminRepo.CountByDepartmentMembership(department)
	} else {
		adminCount, err = s.adminRepo.Count()
	}
	if err != nil {
		log.Printf("[DASHBOARD] gagal menghitung admins, pakai 0: %v", err)
	} else {
		stats.TotalAdmins = adminCount
	}

	if perDept, err := s.voterRepo.CountGroupedByDepartment(); err != nil {
		log.Printf("[DASHBOARD] gagal breakdown per department, pakai kosong: %v", err)
	} else {
		stats.VotersPerDepartment = perDept
	}

	// Jejak aktivitas dari Mongo: sama-sama best-effort.
	if s.auditRepo != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if counts, err := s.auditRepo.CountByAction(ctx); err != nil {
			log.Printf("[DASHBOARD] gagal mengambil audit counts: %v", err)
		} else {
			stats.AuditCounts = counts
		}

		if recent, err := s.auditRepo.FindRecent(ctx, 20); err != nil {
			log.Printf("[DASHBOARD] gagal mengambil aktivitas terakhir: %v", err)
		} else {
			stats.RecentActivity = recent
		}
	}

	return stats, nil
}
