package repository

import (
	"evoting-backend/app/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ScheduleRepository mengurus jadwal pencalonan dan jadwal pemilihan.
// Keduanya di-upsert keyed by tipe: INSERT ... ON CONFLICT DO UPDATE,
// satu statement atomik (bukan lookup lalu insert terpisah).
type ScheduleRepository interface {
	UpsertCandidacySchedule(sched *model.CandidacySchedule) error
	FindCandidacySchedule(candidacyType string) (*model.CandidacySchedule, error)

	UpsertElectionSchedule(sched *model.ElectionSchedule) error
	FindElectionSchedule(electionType string) (*model.ElectionSchedule, error)
}

// scheduleRepository adalah implementasi konkret ScheduleRepository berbasis GORM.
type scheduleRepository struct {
	db *gorm.DB
}

// NewScheduleRepository membuat instance baru scheduleRepository.
func NewScheduleRepository(db *gorm.DB) ScheduleRepository {
	return &scheduleRepository{db}
}

func (r *scheduleRepository) UpsertCandidacySchedule(sched *model.CandidacySchedule) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "candidacy_type"}},
		DoUpdates: clause.AssignmentColumns([]string{"open_date", "close_date", "status", "opened_by"}),
	}).Create(sched).Error
}

func (r *scheduleRepository) FindCandidacySchedule(candidacyType string) (*model.CandidacySchedule, error) {
	var s model.CandidacySchedule
	err := r.db.Where("candidacy_type = ?", candidacyType).First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *scheduleRepository) UpsertElectionSchedule(sched *model.ElectionSchedule) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "election_type"}},
		DoUpdates: clause.AssignmentColumns([]string{"open_date", "close_date", "status", "opened_by"}),
	}).Create(sched).Error
}

func (r *scheduleRepository) FindElectionSchedule(electionType string) (*model.ElectionSchedule, error) {
	var s model.ElectionSchedule
	err := r.db.Where("election_type = ?", electionType).First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}
