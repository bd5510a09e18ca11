package repository

import (
	"evoting-backend/app/model"

	"gorm.io/gorm"
)

// StudentRepository mendefinisikan akses read-only ke roster mahasiswa.
// Aplikasi tidak pernah menulis ke tabel ini (sumbernya sistem akademik).
type StudentRepository interface {
	// FindByStudentIDAndFirstname dipakai untuk validasi kelayakan registrasi:
	// student_id DAN firstname harus cocok dengan baris roster.
	FindByStudentIDAndFirstname(studentID, firstname string) (*model.Student, error)

	// Count menghitung seluruh baris roster (untuk dashboard stats).
	Count() (int64, error)
}

type studentRepository struct {
	db *gorm.DB
}

// NewStudentRepository membuat instance baru studentRepository.
func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &studentRepository{db}
}

func (r *studentRepository) FindByStudentIDAndFirstname(studentID, firstname string) (*model.Student, error) {
	var s model.Student
	err := r.db.
		Where("student_id = ? AND firstname = ?", studentID, firstname).
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *studentRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Student{}).Count(&count).Error
	return count, err
}
