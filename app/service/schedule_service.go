package service

import (
	"errors"
	"time"

	"evoting-backend/app/model"
	"evoting-backend/app/repository"

	"gorm.io/gorm"
)

// ScheduleService mengurus jendela waktu pencalonan dan pemilihan.
// Semantik keduanya upsert keyed by tipe; open_date selalu di-set ke waktu
// sekarang setiap kali jadwal (re)diaktifkan.
type ScheduleService interface {
	UpsertCandidacySchedule(candidacyType string, closeDate time.Time, status, openedBy string) (*model.CandidacySchedule, error)
	GetCandidacySchedule(candidacyType string) (*model.CandidacySchedule, error)

	UpsertElectionSchedule(electionType string, closeDate time.Time, status, openedBy string) (*model.ElectionSchedule, error)
	GetElectionSchedule(electionType string) (*model.ElectionSchedule, error)
}

type scheduleService struct {
	scheduleRepo repository.ScheduleRepository
	now          func() time.Time
}

// NewScheduleService menghubungkan Service dengan Repository.
func NewScheduleService(scheduleRepo repository.ScheduleRepository) ScheduleService {
	return &scheduleService{
		scheduleRepo: scheduleRepo,
		now:          time.Now,
	}
}

func (s *scheduleService) UpsertCandidacySchedule(candidacyType string, closeDate time.Time, status, openedBy string) (*model.CandidacySchedule, error) {
	sched := &model.CandidacySchedule{
		CandidacyType: candidacyType,
		OpenDate:      s.now().UTC(),
		CloseDate:     closeDate,
		Status:        status,
		OpenedBy:      openedBy,
	}

	if err := s.scheduleRepo.UpsertCandidacySchedule(sched); err != nil {
		return nil, err
	}

	// Baca ulang supaya ID dan nilai tersimpan ikut terbawa setelah upsert.
	return s.scheduleRepo.FindCandidacySchedule(candidacyType)
}

func (s *scheduleService) GetCandidacySchedule(candidacyType string) (*model.CandidacySchedule, error) {
	sched, err := s.scheduleRepo.FindCandidacySchedule(candidacyType)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrScheduleNotFound
		}
		return nil, err
	}
	return sched, nil
}

func (s *scheduleService) UpsertElectionSchedule(electionType string, closeDate time.Time, status, openedBy string) (*model.ElectionSchedule, error) {
	sched := &model.ElectionSchedule{
		ElectionType: electionType,
		OpenDate:     s.now().UTC(),
		CloseDate:    closeDate,
		Status:       status,
		OpenedBy:     openedBy,
	}

	if err := s.scheduleRepo.UpsertElectionSchedule(sched); err != nil {
		return nil, err
	}

	return s.scheduleRepo.FindElectionSchedule(electionType)
}

func (s *scheduleService) GetElectionSchedule(electionType string) (*model.ElectionSchedule, error) {
	sched, err := s.scheduleRepo.FindElectionSchedule(electionType)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrScheduleNotFound
		}
		return nil, err
	}
	return sched, nil
}
