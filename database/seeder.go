package database

import (
	"log"
	"os"

	"evoting-backend/app/model"
	"evoting-backend/utils"

	"gorm.io/gorm"
)

// RunSeeders menjalankan seluruh seeder yang dibutuhkan.
// Panggil ini sekali di main.go setelah InitDB berhasil.
func RunSeeders(db *gorm.DB) {
	SeedStudents(db)
	SeedSuperAdmin(db)
}

// ===============================
//  SEED STUDENT ROSTER
// ===============================

// SeedStudents mengisi roster mahasiswa contoh kalau tabelnya masih kosong.
// Di deployment sebenarnya roster ini diimpor dari sistem akademik.
func SeedStudents(db *gorm.DB) {
	var count int64
	db.Model(&model.Student{}).Count(&count)
	if count > 0 {
		log.Println("[SEEDER] Roster student sudah ada, skip seeding students.")
		return
	}

	students := []model.Student{
		{StudentID: "2021-0001", Firstname: "Juan"},
		{StudentID: "2021-0002", Firstname: "Maria"},
		{StudentID: "2022-0001", Firstname: "Jose"},
		{StudentID: "2023-0001", Firstname: "Ana"},
		{StudentID: "2024-0001", Firstname: "Pedro"},
	}

	if err := db.Create(&students).Error; err != nil {
		log.Fatalf("[SEEDER] Gagal seed students: %v", err)
	}

	log.Printf("[SEEDER] Berhasil seed %d baris roster student", len(students))
}

// ===============================
//  SEED SUPERADMIN
// ===============================

// SeedSuperAdmin membuat akun admin bootstrap kalau belum ada admin sama sekali.
// Password diambil dari SUPERADMIN_PASSWORD (default "changeme123") dan
// langsung di-hash, sama seperti jalur create admin biasa.
func SeedSuperAdmin(db *gorm.DB) {
	var count int64
	db.Model(&model.Admin{}).Count(&count)
	if count > 0 {
		log.Println("[SEEDER] Admin sudah ada, skip seeding superadmin.")
		return
	}

	password := os.Getenv("SUPERADMIN_PASSWORD")
	if password == "" {
		password = "changeme123"
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		log.Fatalf("[SEEDER] Gagal hash password superadmin: %v", err)
	}

	admin := model.Admin{
		AdminID:  "superadmin",
		Password: hashed,
		Fullname: "Super Administrator",
		Position: "System Administrator",
		AddedBy:  "system",
	}

	if err := db.Create(&admin).Error; err != nil {
		log.Fatalf("[SEEDER] Gagal seed superadmin: %v", err)
	}

	log.Println("[SEEDER] Berhasil seed superadmin (ganti password setelah login pertama!)")
}
