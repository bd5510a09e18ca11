package repository

import (
	"errors"
	"fmt"

	"evoting-backend/app/model"

	"gorm.io/gorm"
)

// votersIDPrefix membentuk prefix voters_id untuk satu tahun, mis. "VOTER-2026-".
func votersIDPrefix(year int) string {
	return fmt.Sprintf("VOTER-%d-", year)
}

// DepartmentCount menampung hasil breakdown jumlah voter per department.
type DepartmentCount struct {
	Department string `json:"department"`
	Count      int64  `json:"count"`
}

// VoterRepository mendefinisikan kontrak operasi database untuk entity Voter.
type VoterRepository interface {
	// Create menyimpan voter baru. Duplikat student_id/voters_id akan
	// kembali sebagai gorm.ErrDuplicatedKey (unique index yang jadi wasit).
	Create(voter *model.Voter) error

	FindByStudentID(studentID string) (*model.Voter, error)
	FindAll() ([]model.Voter, error)
	FindByDepartment(department string) ([]model.Voter, error)

	// LastVotersIDForYear mengambil voters_id terbesar untuk prefix tahun
	// tertentu (VOTER-<tahun>-%), dipakai untuk minting sequence berikutnya.
	// Mengembalikan string kosong kalau belum ada voter di tahun itu.
	LastVotersIDForYear(year int) (string, error)

	Count() (int64, error)
	CountByDepartment(department string) (int64, error)
	CountGroupedByDepartment() ([]DepartmentCount, error)
}

// voterRepository adalah implementasi konkret VoterRepository berbasis GORM.
type voterRepository struct {
	db *gorm.DB
}

// NewVoterRepository membuat instance baru voterRepository.
func NewVoterRepository(db *gorm.DB) VoterRepository {
	return &voterRepository{db}
}

func (r *voterRepository) Create(voter *model.Voter) error {
	return r.db.Create(voter).Error
}

func (r *voterRepository) FindByStudentID(studentID string) (*model.Voter, error) {
	var v model.Voter
	err := r.db.Where("student_id = ?", studentID).First(&v).Error
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *voterRepository) FindAll() ([]model.Voter, error) {
	var voters []model.Voter
	err := r.db.Order("voters_id ASC").Find(&voters).Error
	return voters, err
}

func (r *voterRepository) FindByDepartment(department string) ([]model.Voter, error) {
	var voters []model.Voter
	err := r.db.
		Where("department = ?", department).
		Order("voters_id ASC").
		Find(&voters).Error
	return voters, err
}

func (r *voterRepository) LastVotersIDForYear(year int) (string, error) {
	var v model.Voter
	err := r.db.
		Where("voters_id LIKE ?", votersIDPrefix(year)+"%").
		Order("voters_id DESC").
		First(&v).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}
	return v.VotersID, nil
}

func (r *voterRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Voter{}).Count(&count).Error
	return count, err
}

func (r *voterRepository) CountByDepartment(department string) (int64, error) {
	var count int64
	err := r.db.Model(&model.Voter{}).
		Where("department = ?", department).
		Count(&count).Error
	return count, err
}

func (r *voterRepository) CountGroupedByDepartment() ([]DepartmentCount, error) {
	var rows []DepartmentCount
	err := r.db.Model(&model.Voter{}).
		Select("department, COUNT(*) AS count").
		Group("department").
		Order("department ASC").
		Scan(&rows).Error
	return rows, err
}
