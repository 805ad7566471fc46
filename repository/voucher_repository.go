package repository

import (
	"orderweb/entity"

	"gorm.io/gorm"
)

type VoucherRepository struct{ DB *gorm.DB }

func NewVoucherRepository(db *gorm.DB) *VoucherRepository { return &VoucherRepository{DB: db} }

func (r *VoucherRepository) FindByCode(tenantID uint, code string) (*entity.Voucher, error) {
	var v entity.Voucher
	if err := r.DB.Where("tenant_id = ? AND code = ?", tenantID, code).First(&v).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

// IncrementUsage bumps used_count, guarded against racing past max_uses.
func (r *VoucherRepository) IncrementUsage(tenantID, voucherID uint) error {
	return r.DB.Exec(`
		UPDATE vouchers
		   SET used_count = used_count + 1
		 WHERE id = ? AND tenant_id = ?
		   AND (max_uses = 0 OR used_count < max_uses)
	`, voucherID, tenantID).Error
}

func (r *VoucherRepository) List(tenantID uint) ([]entity.Voucher, error) {
	var rows []entity.Voucher
	err := r.DB.Where("tenant_id = ?", tenantID).Order("id DESC").Find(&rows).Error
	return rows, err
}

func (r *VoucherRepository) Create(v *entity.Voucher) error { return r.DB.Create(v).Error }

func (r *VoucherRepository) Update(tenantID, id uint, updates map[string]any) error {
	return r.DB.Model(&entity.Voucher{}).
		Where("id = ? AND tenant_id = ?", id, tenantID).
		Updates(updates).Error
}

func (r *VoucherRepository) Delete(tenantID, id uint) error {
	return r.DB.Where("id = ? AND tenant_id = ?", id, tenantID).Delete(&entity.Voucher{}).Error
}
