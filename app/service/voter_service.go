package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"evoting-backend/app/model"
	"evoting-backend/app/repository"
	"evoting-backend/utils"

	"gorm.io/gorm"
)

// VoterService mengurus registrasi pemilih (dengan validasi roster dan
// minting voters_id) serta autentikasinya.
type VoterService interface {
	// Register mendaftarkan pemilih baru. voter.Password masih plaintext
	// saat masuk dan di-hash di sini sebelum disimpan.
	Register(voter *model.Voter) (*model.Voter, error)

	// Login mencocokkan student_id + password terhadap hash di database.
	Login(studentID, password string) (*model.Voter, error)

	GetAll() ([]model.Voter, error)
}

type voterService struct {
	voterRepo   repository.VoterRepository
	studentRepo repository.StudentRepository
	now         func() time.Time
}

// NewVoterService menghubungkan Service dengan Repository.
func NewVoterService(voterRepo repository.VoterRepository, studentRepo repository.StudentRepository) VoterService {
	return &voterService{
		voterRepo:   voterRepo,
		studentRepo: studentRepo,
		now:         time.Now,
	}
}

// Register mendaftarkan pemilih baru.
//
// Rantai precondition:
//  a. student_id + firstname harus cocok dengan roster → ErrStudentNotFound
//  b. student_id belum punya baris Voter → ErrVoterExists (ditangkap lewat
//     unique index, bukan pre-check terpisah, supaya bebas race)
func (s *voterService) Register(voter *model.Voter) (*model.Voter, error) {
	// 1. Validasi kelayakan terhadap roster mahasiswa.
	if _, err := s.studentRepo.FindByStudentIDAndFirstname(voter.StudentID, voter.Firstname); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}

	// 2. Hash password. Plaintext tidak pernah menyentuh database.
	hashed, err := utils.HashPassword(voter.Password)
	if err != nil {
		return nil, err
	}
	voter.Password = hashed

	// 3. Gender default 'Other' kalau tidak diisi.
	if strings.TrimSpace(voter.Gender) == "" {
		voter.Gender = "Other"
	}

	// 4. Minting voters_id: VOTER-<tahun>-<seq 3 digit>, sequence reset tiap
	// tahun, diturunkan dari sequence terbesar yang sudah ada.
	votersID, err := s.mintVotersID()
	if err != nil {
		return nil, err
	}
	voter.VotersID = votersID

	// 5. Insert. Unique index student_id adalah wasit duplikat registrasi.
	if err := s.voterRepo.Create(voter); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrVoterExists
		}
		return nil, err
	}

	return voter, nil
}

func (s *voterService) Login(studentID, password string) (*model.Voter, error) {
	voter, err := s.voterRepo.FindByStudentID(studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVoterNotFound
		}
		return nil, err
	}

	// Input kosong ditolak sebagai input error (ErrEmptyCredential),
	// bukan dibanding-bandingkan diam-diam.
	ok, err := utils.VerifyPassword(password, voter.Password)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidPassword
	}

	return voter, nil
}

func (s *voterService) GetAll() ([]model.Voter, error) {
	return s.voterRepo.FindAll()
}

// mintVotersID membentuk voters_id berikutnya untuk tahun berjalan.
// Tahun baru tanpa voter → sequence mulai dari 001.
func (s *voterService) mintVotersID() (string, error) {
	year := s.now().UTC().Year()

	last, err := s.voterRepo.LastVotersIDForYear(year)
	if err != nil {
		return "", err
	}

	seq := 1
	if last != "" {
		// Format: VOTER-<tahun>-<seq>. Ambil segmen terakhir.
		parts := strings.Split(last, "-")
		lastSeq, convErr := strconv.Atoi(parts[len(parts)-1])
		if convErr != nil {
			return "", fmt.Errorf("voters_id terakhir tidak valid (%q): %w", last, convErr)
		}
		seq = lastSeq + 1
	}

	return fmt.Sprintf("VOTER-%d-%03d", year, seq), nil
}
