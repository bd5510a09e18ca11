package service

import (
	"errors"
	"testing"
	"time"

	"evoting-backend/app/model"
	"evoting-backend/app/repository"
	"evoting-backend/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingMailer selalu gagal mengirim, untuk memastikan kegagalan email
// tidak membatalkan pembuatan admin.
type failingMailer struct{}

func (failingMailer) Send(to, subject, textBody, htmlBody string) error {
	return errors.New("smtp unreachable")
}

// channelMailer melaporkan penerima via channel supaya test bisa menunggu
// goroutine pengirimnya tanpa race.
type channelMailer struct {
	sent chan string
}

func (m *channelMailer) Send(to, subject, textBody, htmlBody string) error {
	m.sent <- to
	return nil
}

func newAdminServiceForTest(t *testing.T, mailer utils.Mailer) (*adminService, *testingDeps) {
	t.Helper()

	db := setupTestDB(t)
	svc := NewAdminService(repository.NewAdminRepository(db), nil, mailer).(*adminService)
	return svc, &testingDeps{db: db}
}

func adminInput(adminID string) *model.Admin {
	return &model.Admin{
		AdminID:  adminID,
		Password: "adminpass1",
		Fullname: "Election Officer",
		Email:    "officer@example.edu",
		Position: "Comelec Chair",
		AddedBy:  "superadmin",
	}
}

func TestAdminCreateAndLogin(t *testing.T) {
	svc, deps := newAdminServiceForTest(t, nil)

	require.NoError(t, svc.Create(adminInput("officer1"), []string{" CCS", "CBA ", ""}))

	// Departments dirapikan dan digabung koma.
	var stored model.Admin
	require.NoError(t, deps.db.Where("admin_id = ?", "officer1").First(&stored).Error)
	assert.Equal(t, "CCS,CBA", stored.Departments)
	assert.NotEqual(t, "adminpass1", stored.Password)

	// Login benar → tepat satu record admin yang cocok.
	admin, err := svc.Login("officer1", "adminpass1")
	require.NoError(t, err)
	assert.Equal(t, "officer1", admin.AdminID)

	_, err = svc.Login("officer1", "wrongpass")
	assert.ErrorIs(t, err, ErrInvalidPassword)

	_, err = svc.Login("ghost", "adminpass1")
	assert.ErrorIs(t, err, ErrAdminNotFound)
}

func TestAdminCreateDuplicateID(t *testing.T) {
	svc, _ := newAdminServiceForTest(t, nil)

	require.NoError(t, svc.Create(adminInput("officer1"), nil))

	err := svc.Create(adminInput("officer1"), nil)
	assert.ErrorIs(t, err, ErrAdminExists)
}

func TestAdminCreateSurvivesMailerFailure(t *testing.T) {
	svc, _ := newAdminServiceForTest(t, failingMailer{})

	// Mailer error ditelan: create tetap sukses.
	require.NoError(t, svc.Create(adminInput("officer1"), nil))
}

func TestAdminCreateSendsCredentialMail(t *testing.T) {
	mailer := &channelMailer{sent: make(chan string, 1)}
	svc, _ := newAdminServiceForTest(t, mailer)

	require.NoError(t, svc.Create(adminInput("officer1"), nil))

	select {
	case to := <-mailer.sent:
		assert.Equal(t, "officer@example.edu", to)
	case <-time.After(2 * time.Second):
		t.Fatal("email kredensial tidak terkirim")
	}
}

func TestAdminUpdateAndDelete(t *testing.T) {
	svc, deps := newAdminServiceForTest(t, nil)

	require.NoError(t, svc.Create(adminInput("officer1"), []string{"CCS"}))

	require.NoError(t, svc.Update("officer1", "New Name", "", "Comelec Member", []string{"CBA", "COE"}))

	var updated model.Admin
	require.NoError(t, deps.db.Where("admin_id = ?", "officer1").First(&updated).Error)
	assert.Equal(t, "New Name", updated.Fullname)
	assert.Equal(t, "officer@example.edu", updated.Email) // kosong → tidak diubah
	assert.Equal(t, "Comelec Member", updated.Position)
	assert.Equal(t, "CBA,COE", updated.Departments)

	assert.ErrorIs(t, svc.Update("ghost", "X", "", "", nil), ErrAdminNotFound)

	require.NoError(t, svc.Delete("officer1"))
	assert.ErrorIs(t, svc.Delete("officer1"), ErrAdminNotFound)
}

func TestAdminChangePasswordRequiresOldPassword(t *testing.T) {
	svc, _ := newAdminServiceForTest(t, nil)

	require.NoError(t, svc.Create(adminInput("officer1"), nil))

	// Password lama salah → ditolak dan hash tersimpan tidak berubah.
	err := svc.ChangePassword("officer1", "wrong-old", "newpass123")
	assert.ErrorIs(t, err, ErrInvalidPassword)

	_, err = svc.Login("officer1", "adminpass1")
	require.NoError(t, err)

	// Password lama benar → password baru berlaku, yang lama tidak.
	require.NoError(t, svc.ChangePassword("officer1", "adminpass1", "newpass123"))

	_, err = svc.Login("officer1", "newpass123")
	require.NoError(t, err)

	_, err = svc.Login("officer1", "adminpass1")
	assert.ErrorIs(t, err, ErrInvalidPassword)
}
