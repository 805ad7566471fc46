package repository

import (
	"errors"

	"orderweb/entity"

	"gorm.io/gorm"
)

type SettingsRepository struct{ DB *gorm.DB }

func NewSettingsRepository(db *gorm.DB) *SettingsRepository { return &SettingsRepository{DB: db} }

func (r *SettingsRepository) GetEmail(tenantID uint) (*entity.EmailSetting, error) {
	var s entity.EmailSetting
	err := r.DB.Where("tenant_id = ?", tenantID).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &entity.EmailSetting{TenantID: tenantID}, nil
	}
	return &s, err
}

func (r *SettingsRepository) UpsertEmail(s *entity.EmailSetting) error {
	var exist entity.EmailSetting
	err := r.DB.Where("tenant_id = ?", s.TenantID).First(&exist).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.DB.Create(s).Error
	}
	if err != nil {
		return err
	}
	s.ID = exist.ID
	return r.DB.Save(s).Error
}

func (r *SettingsRepository) GetBranding(tenantID uint) (*entity.BrandingSetting, error) {
	var s entity.BrandingSetting
	err := r.DB.Where("tenant_id = ?", tenantID).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &entity.BrandingSetting{TenantID: tenantID}, nil
	}
	return &s, err
}

func (r *SettingsRepository) UpsertBranding(s *entity.BrandingSetting) error {
	var exist entity.BrandingSetting
	err := r.DB.Where("tenant_id = ?", s.TenantID).First(&exist).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.DB.Create(s).Error
	}
	if err != nil {
		return err
	}
	s.ID = exist.ID
	return r.DB.Save(s).Error
}

func (r *SettingsRepository) GetGateway(tenantID uint) (*entity.GatewaySetting, error) {
	var s entity.GatewaySetting
	err := r.DB.Where("tenant_id = ?", tenantID).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &entity.GatewaySetting{TenantID: tenantID}, nil
	}
	return &s, err
}

func (r *SettingsRepository) UpsertGateway(s *entity.GatewaySetting) error {
	var exist entity.GatewaySetting
	err := r.DB.Where("tenant_id = ?", s.TenantID).First(&exist).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.DB.Create(s).Error
	}
	if err != nil {
		return err
	}
	s.ID = exist.ID
	return r.DB.Save(s).Error
}

func (r *SettingsRepository) ListHours(tenantID uint) ([]entity.OpeningHour, error) {
	var rows []entity.OpeningHour
	err := r.DB.Where("tenant_id = ?", tenantID).Order("weekday").Find(&rows).Error
	return rows, err
}

// ReplaceHours swaps the whole weekly schedule in one transaction.
func (r *SettingsRepository) ReplaceHours(tenantID uint, rows []entity.OpeningHour) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("tenant_id = ?", tenantID).
			Delete(&entity.OpeningHour{}).Error; err != nil {
			return err
		}
		for i := range rows {
			rows[i].ID = 0
			rows[i].TenantID = tenantID
			if err := tx.Create(&rows[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
