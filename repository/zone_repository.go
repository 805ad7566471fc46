package repository

import (
	"orderweb/entity"

	"gorm.io/gorm"
)

type ZoneRepository struct{ DB *gorm.DB }

func NewZoneRepository(db *gorm.DB) *ZoneRepository { return &ZoneRepository{DB: db} }

// ListByTenant returns zones longest prefix first so the resolver can take
// the first match.
func (r *ZoneRepository) ListByTenant(tenantID uint) ([]entity.DeliveryZone, error) {
	var rows []entity.DeliveryZone
	err := r.DB.Where("tenant_id = ?", tenantID).
		Order("length(prefix) DESC, id").
		Find(&rows).Error
	return rows, err
}

func (r *ZoneRepository) Create(z *entity.DeliveryZone) error { return r.DB.Create(z).Error }

func (r *ZoneRepository) Update(tenantID, id uint, updates map[string]any) error {
	return r.DB.Model(&entity.DeliveryZone{}).
		Where("id = ? AND tenant_id = ?", id, tenantID).
		Updates(updates).Error
}

func (r *ZoneRepository) Delete(tenantID, id uint) error {
	return r.DB.Where("id = ? AND tenant_id = ?", id, tenantID).Delete(&entity.DeliveryZone{}).Error
}
