package service

import (
	"errors"
	"strings"
	"time"

	"evoting-backend/app/model"
	"evoting-backend/app/repository"
	"evoting-backend/utils"

	"gorm.io/gorm"
)

// CandidateService mengurus pengajuan pencalonan, retrieval kandidat
// (termasuk normalisasi URL gambar), dan update status oleh approver.
type CandidateService interface {
	// File memproses satu pengajuan pencalonan baru.
	// Precondition: belum ada pencalonan untuk student_id tersebut.
	File(candidate *model.Candidate) (*model.Candidate, error)

	GetAll() ([]model.Candidate, error)
	GetByStudentID(studentID string) (*model.Candidate, error)
	GetByElectionType(electionType string) ([]model.Candidate, error)
	GetApprovedByElectionType(electionType string) ([]model.Candidate, error)

	// UpdateStatus mengubah status + approver_remarks satu kandidat.
	UpdateStatus(actor, studentID, status, remarks string) error
}

type candidateService struct {
	candidateRepo repository.CandidateRepository
	auditRepo     repository.AuditRepository
	resolver      *utils.ImageURLResolver
	now           func() time.Time
}

// NewCandidateService menghubungkan Service dengan Repository dan resolver URL gambar.
func NewCandidateService(
	candidateRepo repository.CandidateRepository,
	auditRepo repository.AuditRepository,
	resolver *utils.ImageURLResolver,
) CandidateService {
	return &candidateService{
		candidateRepo: candidateRepo,
		auditRepo:     auditRepo,
		resolver:      resolver,
		now:           time.Now,
	}
}

// File menyimpan pengajuan pencalonan baru.
//
// Di sini ada dua lapis penjagaan duplikat:
//  1. lookup dulu supaya pesan error-nya ramah (jalur umum),
//  2. unique index di storage yang jadi wasit terakhir kalau ada race ,
//     pelanggarannya dipetakan ke ErrAlreadyFiled juga.
func (s *candidateService) File(candidate *model.Candidate) (*model.Candidate, error) {
	// 1. Pre-check: sudah pernah mengajukan?
	if _, err := s.candidateRepo.FindByStudentID(candidate.StudentID); err == nil {
		return nil, ErrAlreadyFiled
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	// 2. Normalisasi status: uppercase, default PENDING.
	candidate.Status = strings.ToUpper(strings.TrimSpace(candidate.Status))
	if candidate.Status == "" {
		candidate.Status = "PENDING"
	}

	// 3. Normalisasi image ke path relatif kanonik.
	// URL absolut → path saja; nama file polos → diberi prefix "/".
	if candidate.Image != nil {
		normalized := utils.NormalizeIncomingPath(*candidate.Image)
		if normalized == "" {
			candidate.Image = nil
		} else {
			candidate.Image = &normalized
		}
	}

	// 4. Stamp filed_date dengan tanggal hari ini (presisi hari, UTC).
	now := s.now().UTC()
	candidate.FiledDate = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	// 5. Insert. Unique index student_id menangkap race yang lolos pre-check.
	if err := s.candidateRepo.Create(candidate); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyFiled
		}
		return nil, err
	}

	return candidate, nil
}

func (s *candidateService) GetAll() ([]model.Candidate, error) {
	candidates, err := s.candidateRepo.FindAll()
	if err != nil {
		return nil, err
	}
	s.resolveImages(candidates)
	return candidates, nil
}

func (s *candidateService) GetByStudentID(studentID string) (*model.Candidate, error) {
	candidate, err := s.candidateRepo.FindByStudentID(studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoDataFound
		}
		return nil, err
	}
	s.resolveImage(candidate)
	return candidate, nil
}

func (s *candidateService) GetByElectionType(electionType string) ([]model.Candidate, error) {
	candidates, err := s.candidateRepo.FindByElectionType(electionType, s.now().UTC().Year())
	if err != nil {
		return nil, err
	}
	s.resolveImages(candidates)
	return candidates, nil
}

func (s *candidateService) GetApprovedByElectionType(electionType string) ([]model.Candidate, error) {
	candidates, err := s.candidateRepo.FindApprovedByElectionType(electionType, s.now().UTC().Year())
	if err != nil {
		return nil, err
	}
	s.resolveImages(candidates)
	return candidates, nil
}

func (s *candidateService) UpdateStatus(actor, studentID, status, remarks string) error {
	status = strings.ToUpper(strings.TrimSpace(status))

	affected, err := s.candidateRepo.UpdateStatus(studentID, status, remarks)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNoDataFound
	}

	logAudit(s.auditRepo, actor, model.AuditActionCandidateStatusUpdate, studentID, status)
	return nil
}

// resolveImage menulis ulang field image menjadi URL absolut.
// Normalisasi ini harus identik di keempat operasi retrieval.
func (s *candidateService) resolveImage(c *model.Candidate) {
	if c.Image == nil {
		return
	}
	c.Image = s.resolver.ToAbsoluteURL(*c.Image)
}

func (s *candidateService) resolveImages(candidates []model.Candidate) {
	for i := range candidates {
		s.resolveImage(&candidates[i])
	}
}
