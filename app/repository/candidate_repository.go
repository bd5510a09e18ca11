package repository

import (
	"time"

	"evoting-backend/app/model"

	"gorm.io/gorm"
)

// yearStart mengembalikan awal tahun kalender (UTC), untuk filter rentang
// "tahun berjalan" pada kolom bertipe timestamp.
func yearStart(year int) time.Time {
	return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
}

// CandidateRepository mendefinisikan kontrak operasi database untuk entity Candidate.
type CandidateRepository interface {
	// Create menyimpan pengajuan pencalonan baru. Duplikat student_id
	// kembali sebagai gorm.ErrDuplicatedKey.
	Create(candidate *model.Candidate) error

	FindByStudentID(studentID string) (*model.Candidate, error)
	FindAll() ([]model.Candidate, error)

	// FindByElectionType mengambil kandidat untuk satu tipe pemilihan,
	// dibatasi filed_date di tahun kalender yang diminta.
	FindByElectionType(electionType string, year int) ([]model.Candidate, error)

	// FindApprovedByElectionType sama seperti FindByElectionType tapi hanya
	// status APPROVED.
	FindApprovedByElectionType(electionType string, year int) ([]model.Candidate, error)

	// UpdateStatus mengubah status + approver_remarks untuk satu student_id.
	// Mengembalikan jumlah baris yang berubah (0 = tidak ada data).
	UpdateStatus(studentID, status, remarks string) (int64, error)
}

// candidateRepository adalah implementasi konkret CandidateRepository berbasis GORM.
type candidateRepository struct {
	db *gorm.DB
}

// NewCandidateRepository membuat instance baru candidateRepository.
func NewCandidateRepository(db *gorm.DB) CandidateRepository {
	return &candidateRepository{db}
}

func (r *candidateRepository) Create(candidate *model.Candidate) error {
	return r.db.Create(candidate).Error
}

func (r *candidateRepository) FindByStudentID(studentID string) (*model.Candidate, error) {
	var c model.Candidate
	err := r.db.Where("student_id = ?", studentID).First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *candidateRepository) FindAll() ([]model.Candidate, error) {
	var candidates []model.Candidate
	err := r.db.Order("filed_date DESC").Find(&candidates).Error
	return candidates, err
}

func (r *candidateRepository) FindByElectionType(electionType string, year int) ([]model.Candidate, error) {
	var candidates []model.Candidate
	err := r.db.
		Where("election_type = ? AND filed_date >= ? AND filed_date < ?",
			electionType, yearStart(year), yearStart(year+1)).
		Order("position ASC, lastname ASC").
		Find(&candidates).Error
	return candidates, err
}

func (r *candidateRepository) FindApprovedByElectionType(electionType string, year int) ([]model.Candidate, error) {
	var candidates []model.Candidate
	err := r.db.
		Where("election_type = ? AND status = ? AND filed_date >= ? AND filed_date < ?",
			electionType, "APPROVED", yearStart(year), yearStart(year+1)).
		Order("position ASC, lastname ASC").
		Find(&candidates).Error
	return candidates, err
}

func (r *candidateRepository) UpdateStatus(studentID, status, remarks string) (int64, error) {
	result := r.db.Model(&model.Candidate{}).
		Where("student_id = ?", studentID).
		Updates(map[string]interface{}{
			"status":           status,
			"approver_remarks": remarks,
		})
	return result.RowsAffected, result.Error
}
