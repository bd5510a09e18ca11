package repository

import (
	"evoting-backend/app/model"

	"gorm.io/gorm"
)

// VoteWithVoterInfo adalah hasil join votes × voters untuk kebutuhan statistik:
// surat suara plus gender & year-level pemilihnya.
type VoteWithVoterInfo struct {
	StudentID  string `json:"studentId"`
	Department string `json:"department"`
	Gender     string `json:"gender"`
	YearLevel  string `json:"yearLevel"`
}

// VoteRepository mendefinisikan kontrak operasi database untuk entity Vote.
// Vote append-only: tidak ada Update/Delete di kontrak ini.
type VoteRepository interface {
	// Create menyimpan satu surat suara. Pelanggaran invariant
	// satu-suara-per-siklus kembali sebagai gorm.ErrDuplicatedKey dari
	// composite unique index, insert-nya sendiri yang jadi wasit, tanpa
	// pre-check terpisah.
	Create(vote *model.Vote) error

	FindByElectionType(electionType string) ([]model.Vote, error)
	CountByElectionType(electionType string) (int64, error)

	// VotedStudentIDs mengambil daftar student_id yang sudah memberikan suara
	// untuk satu tipe pemilihan di tahun tertentu.
	VotedStudentIDs(electionType string, year int) ([]string, error)

	// FindWithVoterInfo mengambil surat suara tahun tertentu berikut
	// gender/year-level pemilihnya (join ke voters lewat student_id).
	FindWithVoterInfo(electionType string, year int) ([]VoteWithVoterInfo, error)
}

// voteRepository adalah implementasi konkret VoteRepository berbasis GORM.
type voteRepository struct {
	db *gorm.DB
}

// NewVoteRepository membuat instance baru voteRepository.
func NewVoteRepository(db *gorm.DB) VoteRepository {
	return &voteRepository{db}
}

func (r *voteRepository) Create(vote *model.Vote) error {
	return r.db.Create(vote).Error
}

func (r *voteRepository) FindByElectionType(electionType string) ([]model.Vote, error) {
	var votes []model.Vote
	err := r.db.
		Where("election_type = ?", electionType).
		Order("voted_date ASC").
		Find(&votes).Error
	return votes, err
}

func (r *voteRepository) CountByElectionType(electionType string) (int64, error) {
	var count int64
	err := r.db.Model(&model.Vote{}).
		Where("election_type = ?", electionType).
		Count(&count).Error
	return count, err
}

func (r *voteRepository) VotedStudentIDs(electionType string, year int) ([]string, error) {
	var ids []string
	err := r.db.Model(&model.Vote{}).
		Where("election_type = ? AND vote_year = ?", electionType, year).
		Distinct("student_id").
		Pluck("student_id", &ids).Error
	return ids, err
}

func (r *voteRepository) FindWithVoterInfo(electionType string, year int) ([]VoteWithVoterInfo, error) {
	var rows []VoteWithVoterInfo
	err := r.db.Table("votes").
		Select("votes.student_id AS student_id, votes.department AS department, "+
			"COALESCE(voters.gender, '') AS gender, COALESCE(voters.year, '') AS year_level").
		Joins("LEFT JOIN voters ON voters.student_id = votes.student_id").
		Where("votes.election_type = ? AND votes.vote_year = ?", electionType, year).
		Scan(&rows).Error
	return rows, err
}
