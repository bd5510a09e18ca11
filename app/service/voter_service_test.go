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

func newVoterServiceForTest(t *testing.T, at time.Time) (*voterService, *testingDeps) {
	t.Helper()

	db := setupTestDB(t)
	deps := &testingDeps{db: db}

	svc := NewVoterService(
		repository.NewVoterRepository(db),
		repository.NewStudentRepository(db),
	).(*voterService)
	svc.now = fixedClock(at)

	return svc, deps
}

func registrationInput(studentID, firstname string) *model.Voter {
	return &model.Voter{
		StudentID:  studentID,
		Firstname:  firstname,
		Lastname:   "Dela Cruz",
		Department: "CCS",
		Course:     "BSIT",
		Year:       "3rd Year",
		Email:      firstname + "@example.edu",
		Password:   "secret123",
	}
}

func TestVoterRegisterMintsYearlySequence(t *testing.T) {
	svc, deps := newVoterServiceForTest(t, time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC))
	seedStudents(t, deps.db,
		model.Student{StudentID: "2024-0001", Firstname: "Juan"},
		model.Student{StudentID: "2024-0002", Firstname: "Maria"},
	)

	first, err := svc.Register(registrationInput("2024-0001", "Juan"))
	require.NoError(t, err)
	assert.Equal(t, "VOTER-2026-001", first.VotersID)

	second, err := svc.Register(registrationInput("2024-0002", "Maria"))
	require.NoError(t, err)
	assert.Equal(t, "VOTER-2026-002", second.VotersID)
}

func TestVoterRegisterHashesPasswordAndDefaultsGender(t *testing.T) {
	svc, deps := newVoterServiceForTest(t, time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC))
	seedStudents(t, deps.db, model.Student{StudentID: "2024-0001", Firstname: "Juan"})

	created, err := svc.Register(registrationInput("2024-0001", "Juan"))
	require.NoError(t, err)

	// Plaintext tidak boleh tersimpan.
	assert.NotEqual(t, "secret123", created.Password)
	ok, err := utils.VerifyPassword("secret123", created.Password)
	require.NoError(t, err)
	assert.True(t, ok)

	assert.Equal(t, "Other", created.Gender)
}

func TestVoterRegisterStudentNotInRoster(t *testing.T) {
	svc, deps := newVoterServiceForTest(t, time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC))
	seedStudents(t, deps.db, model.Student{StudentID: "2024-0001", Firstname: "Juan"})

	// student_id benar tapi firstname tidak cocok → tetap ditolak.
	_, err := svc.Register(registrationInput("2024-0001", "NotJuan"))
	assert.ErrorIs(t, err, ErrStudentNotFound)

	_, err = svc.Register(registrationInput("2099-9999", "Ghost"))
	assert.ErrorIs(t, err, ErrStudentNotFound)
}

func TestVoterRegisterDuplicateStudentID(t *testing.T) {
	svc, deps := newVoterServiceForTest(t, time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC))
	seedStudents(t, deps.db, model.Student{StudentID: "2024-0001", Firstname: "Juan"})

	_, err := svc.Register(registrationInput("2024-0001", "Juan"))
	require.NoError(t, err)

	_, err = svc.Register(registrationInput("2024-0001", "Juan"))
	assert.ErrorIs(t, err, ErrVoterExists)

	// Tidak boleh ada baris kedua.
	var count int64
	require.NoError(t, deps.db.Model(&model.Voter{}).Where("student_id = ?", "2024-0001").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestVoterLogin(t *testing.T) {
	svc, deps := newVoterServiceForTest(t, time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC))
	seedStudents(t, deps.db, model.Student{StudentID: "2024-0001", Firstname: "Juan"})

	_, err := svc.Register(registrationInput("2024-0001", "Juan"))
	require.NoError(t, err)

	voter, err := svc.Login("2024-0001", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "2024-0001", voter.StudentID)

	_, err = svc.Login("2024-0001", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidPassword)

	_, err = svc.Login("2099-9999", "secret123")
	assert.ErrorIs(t, err, ErrVoterNotFound)

	// Password kosong adalah input error, bukan "password salah".
	_, err = svc.Login("2024-0001", "")
	assert.ErrorIs(t, err, utils.ErrEmptyCredential)
}
