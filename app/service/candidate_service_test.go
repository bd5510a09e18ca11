package service

import (
	"testing"
	"time"

	"evoting-backend/app/model"
	"evoting-backend/app/repository"
	"evoting-backend/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCandidateServiceForTest(t *testing.T, at time.Time) (*candidateService, *testingDeps) {
	t.Helper()

	db := setupTestDB(t)
	deps := &testingDeps{db: db}

	svc := NewCandidateService(
		repository.NewCandidateRepository(db),
		nil, // audit trail tidak relevan untuk test ini
		utils.NewImageURLResolver("http://api.example.edu"),
	).(*candidateService)
	svc.now = fixedClock(at)

	return svc, deps
}

func filingInput(studentID string) *model.Candidate {
	image := "http://host/uploads/candidates/a.jpg"
	return &model.Candidate{
		StudentID:    studentID,
		Firstname:    "Juan",
		Lastname:     "Dela Cruz",
		Department:   "CCS",
		Email:        "juan@example.edu",
		Position:     "president",
		ElectionType: "SSG",
		Party:        "Partido Uno",
		Image:        &image,
	}
}

func TestFileCandidacyNormalizesFields(t *testing.T) {
	at := time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)
	svc, _ := newCandidateServiceForTest(t, at)

	created, err := svc.File(filingInput("2024-0001"))
	require.NoError(t, err)

	// Status default PENDING kalau tidak diisi.
	assert.Equal(t, "PENDING", created.Status)

	// URL absolut → disimpan path relatifnya saja.
	require.NotNil(t, created.Image)
	assert.Equal(t, "/uploads/candidates/a.jpg", *created.Image)

	// filed_date presisi hari (UTC).
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), created.FiledDate)
}

func TestFileCandidacyUppercasesStatusAndPrefixesBareImage(t *testing.T) {
	svc, _ := newCandidateServiceForTest(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC))

	input := filingInput("2024-0002")
	input.Status = "approved"
	bare := "a.jpg"
	input.Image = &bare

	created, err := svc.File(input)
	require.NoError(t, err)

	assert.Equal(t, "APPROVED", created.Status)
	require.NotNil(t, created.Image)
	assert.Equal(t, "/a.jpg", *created.Image)
}

func TestFileCandidacyDuplicate(t *testing.T) {
	svc, deps := newCandidateServiceForTest(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC))

	_, err := svc.File(filingInput("2024-0001"))
	require.NoError(t, err)

	// Field lain boleh beda semua, student_id sama tetap ditolak.
	again := filingInput("2024-0001")
	again.Position = "secretary"
	again.Party = "Partido Dos"
	_, err = svc.File(again)
	assert.ErrorIs(t, err, ErrAlreadyFiled)

	var count int64
	require.NoError(t, deps.db.Model(&model.Candidate{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestRetrievalRewritesImageToAbsoluteURL(t *testing.T) {
	svc, _ := newCandidateServiceForTest(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC))

	_, err := svc.File(filingInput("2024-0001"))
	require.NoError(t, err)

	// GetByStudentID
	candidate, err := svc.GetByStudentID("2024-0001")
	require.NoError(t, err)
	require.NotNil(t, candidate.Image)
	assert.Equal(t, "http://api.example.edu/uploads/candidates/a.jpg", *candidate.Image)

	// Normalisasi harus identik di retrieval yang lain.
	all, err := svc.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.NotNil(t, all[0].Image)
	assert.Equal(t, "http://api.example.edu/uploads/candidates/a.jpg", *all[0].Image)

	byType, err := svc.GetByElectionType("SSG")
	require.NoError(t, err)
	require.Len(t, byType, 1)
	require.NotNil(t, byType[0].Image)
	assert.Equal(t, "http://api.example.edu/uploads/candidates/a.jpg", *byType[0].Image)
}

func TestRetrievalLeavesMissingImageNull(t *testing.T) {
	svc, _ := newCandidateServiceForTest(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC))

	input := filingInput("2024-0003")
	input.Image = nil
	_, err := svc.File(input)
	require.NoError(t, err)

	candidate, err := svc.GetByStudentID("2024-0003")
	require.NoError(t, err)
	assert.Nil(t, candidate.Image)
}

func TestGetApprovedByElectionTypeFiltersStatusAndYear(t *testing.T) {
	svc, deps := newCandidateServiceForTest(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC))

	approved := filingInput("2024-0001")
	approved.Status = "APPROVED"
	_, err := svc.File(approved)
	require.NoError(t, err)

	pending := filingInput("2024-0002")
	_, err = svc.File(pending)
	require.NoError(t, err)

	// Kandidat APPROVED tahun lalu tidak boleh ikut.
	lastYear := model.Candidate{
		StudentID:    "2023-0009",
		Firstname:    "Lama",
		Lastname:     "Sekali",
		Position:     "president",
		ElectionType: "SSG",
		Status:       "APPROVED",
		FiledDate:    time.Date(2025, 11, 2, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, deps.db.Create(&lastYear).Error)

	result, err := svc.GetApprovedByElectionType("SSG")
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "2024-0001", result[0].StudentID)
}

func TestUpdateStatus(t *testing.T) {
	svc, deps := newCandidateServiceForTest(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC))

	_, err := svc.File(filingInput("2024-0001"))
	require.NoError(t, err)

	require.NoError(t, svc.UpdateStatus("superadmin", "2024-0001", "rejected", "incomplete requirements"))

	var updated model.Candidate
	require.NoError(t, deps.db.Where("student_id = ?", "2024-0001").First(&updated).Error)
	assert.Equal(t, "REJECTED", updated.Status)
	assert.Equal(t, "incomplete requirements", updated.ApproverRemarks)

	// Nol baris ter-update → no data found.
	err = svc.UpdateStatus("superadmin", "2099-9999", "APPROVED", "")
	assert.ErrorIs(t, err, ErrNoDataFound)
}
