package service

import (
	"testing"
	"time"

	"evoting-backend/app/model"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB membuka database sqlite in-memory dengan skema lengkap.
// TranslateError diaktifkan supaya perilaku unique-constraint-nya sama
// dengan Postgres di produksi (gorm.ErrDuplicatedKey).
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// Satu koneksi saja: tiap koneksi baru ke ":memory:" adalah database baru.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.Student{},
		&model.Voter{},
		&model.Candidate{},
		&model.Admin{},
		&model.CandidacySchedule{},
		&model.ElectionSchedule{},
		&model.Vote{},
	))

	return db
}

// testingDeps membawa dependency bersama yang kadang perlu dipegang test
// (mis. akses langsung ke db untuk verifikasi baris).
type testingDeps struct {
	db *gorm.DB
}

// seedStudents mengisi roster untuk test registrasi voter.
func seedStudents(t *testing.T, db *gorm.DB, students ...model.Student) {
	t.Helper()
	require.NoError(t, db.Create(&students).Error)
}

// stepClock menghasilkan fungsi now() yang maju 1 detik tiap panggilan,
// supaya urutan timestamp di test deterministik.
func stepClock(start time.Time) func() time.Time {
	current := start
	return func() time.Time {
		current = current.Add(time.Second)
		return current
	}
}

// fixedClock menghasilkan fungsi now() yang selalu mengembalikan waktu sama.
func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}
