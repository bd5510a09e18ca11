package repository

import (
	"evoting-backend/app/model"

	"gorm.io/gorm"
)

// AdminRepository mendefinisikan kontrak operasi database untuk entity Admin.
type AdminRepository interface {
	// Create menyimpan admin baru. Duplikat admin_id kembali sebagai
	// gorm.ErrDuplicatedKey.
	Create(admin *model.Admin) error

	FindByAdminID(adminID string) (*model.Admin, error)
	FindAll() ([]model.Admin, error)

	// Update mengubah fullname/email/position/departments untuk satu admin_id.
	// Mengembalikan jumlah baris yang berubah.
	Update(adminID string, fields map[string]interface{}) (int64, error)

	// Delete menghapus admin berdasarkan admin_id (hard delete, sesuai perilaku
	// sistem: Admin satu-satunya entity yang boleh dihapus).
	Delete(adminID string) (int64, error)

	// UpdatePassword mengganti hash password untuk satu admin_id.
	UpdatePassword(adminID, hashedPassword string) (int64, error)

	Count() (int64, error)

	// CountByDepartmentMembership menghitung admin yang departments-nya memuat
	// department tertentu (kolom disimpan sebagai string gabungan koma).
	CountByDepartmentMembership(department string) (int64, error)
}

// adminRepository adalah implementasi konkret AdminRepository berbasis GORM.
type adminRepository struct {
	db *gorm.DB
}

// NewAdminRepository membuat instance baru adminRepository.
func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db}
}

func (r *adminRepository) Create(admin *model.Admin) error {
	return r.db.Create(admin).Error
}

func (r *adminRepository) FindByAdminID(adminID string) (*model.Admin, error) {
	var a model.Admin
	err := r.db.Where("admin_id = ?", adminID).First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *adminRepository) FindAll() ([]model.Admin, error) {
	var admins []model.Admin
	err := r.db.Order("date_added DESC").Find(&admins).Error
	return admins, err
}

func (r *adminRepository) Update(adminID string, fields map[string]interface{}) (int64, error) {
	result := r.db.Model(&model.Admin{}).
		Where("admin_id = ?", adminID).
		Updates(fields)
	return result.RowsAffected, result.Error
}

func (r *adminRepository) Delete(adminID string) (int64, error) {
	result := r.db.Where("admin_id = ?", adminID).Delete(&model.Admin{})
	return result.RowsAffected, result.Error
}

func (r *adminRepository) UpdatePassword(adminID, hashedPassword string) (int64, error) {
	result := r.db.Model(&model.Admin{}).
		Where("admin_id = ?", adminID).
		Update("password", hashedPassword)
	return result.RowsAffected, result.Error
}

func (r *adminRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Admin{}).Count(&count).Error
	return count, err
}

func (r *adminRepository) CountByDepartmentMembership(department string) (int64, error) {
	// Departments gabungan koma, jadi cocokkan dengan boundary koma di kiri-kanan
	// supaya "CBA" tidak ikut ke-match dengan "CBAX". Tetap parameterized.
	var count int64
	err := r.db.Model(&model.Admin{}).
		Where("(',' || departments || ',') LIKE ?", "%,"+department+",%").
		Count(&count).Error
	return count, err
}
