package service

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"evoting-backend/app/model"
	"evoting-backend/app/repository"
	"evoting-backend/utils"

	"gorm.io/gorm"
)

// AdminService mengurus lifecycle akun admin: create (plus email kredensial
// best-effort), login, list, update, delete, dan ganti password.
//
// Catatan: login admin sengaja disatukan ke perbandingan hash bcrypt yang
// sama dengan voter (sistem lamanya membandingkan plaintext).
type AdminService interface {
	// Create menyimpan admin baru. admin.Password masih plaintext saat masuk.
	// departments dinormalisasi dan disimpan sebagai string gabungan koma.
	Create(admin *model.Admin, departments []string) error

	Login(adminID, password string) (*model.Admin, error)
	GetAll() ([]model.Admin, error)

	// Update mengubah fullname/email/position/departments; field kosong dilewati.
	Update(adminID, fullname, email, position string, departments []string) error

	Delete(adminID string) error

	// ChangePassword memverifikasi ulang password lama lewat jalur login yang
	// sama sebelum menerima password baru.
	ChangePassword(adminID, oldPassword, newPassword string) error
}

type adminService struct {
	adminRepo repository.AdminRepository
	auditRepo repository.AuditRepository
	mailer    utils.Mailer
}

// NewAdminService menghubungkan Service dengan Repository dan Mailer.
// mailer boleh nil; admin tetap bisa dibuat tanpa email notifikasi.
func NewAdminService(adminRepo repository.AdminRepository, auditRepo repository.AuditRepository, mailer utils.Mailer) AdminService {
	return &adminService{
		adminRepo: adminRepo,
		auditRepo: auditRepo,
		mailer:    mailer,
	}
}

func (s *adminService) Create(admin *model.Admin, departments []string) error {
	// Simpan plaintext sebentar untuk isi email kredensial, lalu hash.
	plaintext := admin.Password

	hashed, err := utils.HashPassword(plaintext)
	if err != nil {
		return err
	}
	admin.Password = hashed
	admin.Departments = joinDepartments(departments)

	// Unique index admin_id yang menjaga collision.
	if err := s.adminRepo.Create(admin); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAdminExists
		}
		return err
	}

	// Email kredensial: fire-and-forget. Gagal kirim tidak membatalkan
	// pembuatan admin, cukup di-log lalu ditelan.
	if s.mailer != nil && admin.Email != "" {
		to := admin.Email
		adminID := admin.AdminID
		fullname := admin.Fullname
		go func() {
			text := fmt.Sprintf(
				"Hello %s,\n\nYour election admin account has been created.\nAdmin ID: %s\nPassword: %s\n\nPlease change your password after your first login.",
				fullname, adminID, plaintext,
			)
			html := fmt.Sprintf(
				"<p>Hello %s,</p><p>Your election admin account has been created.</p><p><b>Admin ID:</b> %s<br><b>Password:</b> %s</p><p>Please change your password after your first login.</p>",
				fullname, adminID, plaintext,
			)
			if err := s.mailer.Send(to, "Your election admin account", text, html); err != nil {
				log.Printf("[MAILER] gagal mengirim kredensial ke %s: %v", to, err)
			}
		}()
	}

	logAudit(s.auditRepo, admin.AddedBy, model.AuditActionAdminCreated, admin.AdminID, admin.Fullname)
	return nil
}

func (s *adminService) Login(adminID, password string) (*model.Admin, error) {
	admin, err := s.adminRepo.FindByAdminID(adminID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}

	ok, err := utils.VerifyPassword(password, admin.Password)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidPassword
	}

	return admin, nil
}

func (s *adminService) GetAll() ([]model.Admin, error) {
	return s.adminRepo.FindAll()
}

func (s *adminService) Update(adminID, fullname, email, position string, departments []string) error {
	fields := map[string]interface{}{}
	if fullname != "" {
		fields["fullname"] = fullname
	}
	if email != "" {
		fields["email"] = email
	}
	if position != "" {
		fields["position"] = position
	}
	if len(departments) > 0 {
		fields["departments"] = joinDepartments(departments)
	}

	if len(fields) == 0 {
		return nil
	}

	affected, err := s.adminRepo.Update(adminID, fields)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrAdminNotFound
	}
	return nil
}

func (s *adminService) Delete(adminID string) error {
	affected, err := s.adminRepo.Delete(adminID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrAdminNotFound
	}
	return nil
}

func (s *adminService) ChangePassword(adminID, oldPassword, newPassword string) error {
	// Verifikasi ulang password lama lewat jalur login yang sama. Kalau gagal,
	// hash tersimpan tidak berubah sama sekali.
	if _, err := s.Login(adminID, oldPassword); err != nil {
		return err
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}

	affected, err := s.adminRepo.UpdatePassword(adminID, hashed)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrAdminNotFound
	}
	return nil
}

// joinDepartments merapikan daftar department menjadi string gabungan koma:
// whitespace dibuang, entri kosong dilewati.
func joinDepartments(departments []string) string {
	cleaned := make([]string, 0, len(departments))
	for _, d := range departments {
		d = strings.TrimSpace(d)
		if d != "" {
			cleaned = append(cleaned, d)
		}
	}
	return strings.Join(cleaned, ",")
}
