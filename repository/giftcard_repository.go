package repository

import (
	"orderweb/entity"

	"gorm.io/gorm"
)

type GiftCardRepository struct{ DB *gorm.DB }

func NewGiftCardRepository(db *gorm.DB) *GiftCardRepository { return &GiftCardRepository{DB: db} }

func (r *GiftCardRepository) FindByCode(tenantID uint, code string) (*entity.GiftCard, error) {
	var g entity.GiftCard
	if err := r.DB.Where("tenant_id = ? AND code = ?", tenantID, code).First(&g).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *GiftCardRepository) Create(g *entity.GiftCard) error { return r.DB.Create(g).Error }

func (r *GiftCardRepository) List(tenantID uint) ([]entity.GiftCard, error) {
	var rows []entity.GiftCard
	err := r.DB.Where("tenant_id = ?", tenantID).Order("id DESC").Find(&rows).Error
	return rows, err
}

// Deduct takes amount off the balance only when the card still covers it.
func (r *GiftCardRepository) Deduct(tx *gorm.DB, cardID uint, amount int64) (int64, error) {
	res := tx.Exec(`
		UPDATE gift_cards
		   SET balance = balance - ?
		 WHERE id = ? AND active = ? AND balance >= ?
	`, amount, cardID, true, amount)
	return res.RowsAffected, res.Error
}

func (r *GiftCardRepository) SetActive(tenantID, id uint, active bool) error {
	return r.DB.Model(&entity.GiftCard{}).
		Where("id = ? AND tenant_id = ?", id, tenantID).
		Update("active", active).Error
}
