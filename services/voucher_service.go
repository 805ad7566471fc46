package services

import (
	"errors"
	"log"
	"strings"
	"time"

	"orderweb/entity"
	"orderweb/repository"

	"gorm.io/gorm"
)

var (
	ErrVoucherNotFound  = errors.New("voucher not found")
	ErrVoucherInactive  = errors.New("voucher is no longer active")
	ErrVoucherNotYet    = errors.New("voucher is not valid yet")
	ErrVoucherExpired   = errors.New("voucher has expired")
	ErrVoucherMinOrder  = errors.New("order does not meet the voucher minimum")
	ErrVoucherExhausted = errors.New("voucher usage limit reached")
)

type VoucherService struct {
	Repo *repository.VoucherRepository
}

func NewVoucherService(repo *repository.VoucherRepository) *VoucherService {
	return &VoucherService{Repo: repo}
}

// Validate checks the code against tenant rules and returns the computed
// discount. Validation has no side effects, so applying the same code twice
// yields the same result.
func (s *VoucherService) Validate(tenantID uint, code string, subtotal int64) (*entity.Voucher, int64, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, 0, ErrVoucherNotFound
	}

	v, err := s.Repo.FindByCode(tenantID, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, ErrVoucherNotFound
		}
		return nil, 0, err
	}

	now := time.Now()
	switch {
	case !v.Active:
		return nil, 0, ErrVoucherInactive
	case v.StartAt != nil && now.Before(*v.StartAt):
		return nil, 0, ErrVoucherNotYet
	case v.EndAt != nil && now.After(*v.EndAt):
		return nil, 0, ErrVoucherExpired
	case v.MaxUses > 0 && v.UsedCount >= v.MaxUses:
		return nil, 0, ErrVoucherExhausted
	case subtotal < v.MinOrder:
		return nil, 0, ErrVoucherMinOrder
	}

	return v, Discount(v, subtotal), nil
}

// Discount computes the voucher amount, clamped to the subtotal.
func Discount(v *entity.Voucher, subtotal int64) int64 {
	if subtotal <= 0 {
		return 0
	}
	var d int64
	switch v.DiscountType {
	case entity.VoucherTypePercent:
		d = subtotal * v.Value / 10000
	case entity.VoucherTypeFixed:
		d = v.Value
	}
	if d < 0 {
		d = 0
	}
	if d > subtotal {
		d = subtotal
	}
	return d
}

// MarkUsed bumps the usage counter after a successful order. Best effort:
// callers log the error and never fail the placed order over it.
func (s *VoucherService) MarkUsed(tenantID, voucherID uint) {
	if err := s.Repo.IncrementUsage(tenantID, voucherID); err != nil {
		log.Printf("voucher usage increment failed (tenant %d voucher %d): %v", tenantID, voucherID, err)
	}
}

// ----- voucher management (owner dashboard) -----

type VoucherIn struct {
	Code         string     `json:"code" binding:"required"`
	Description  string     `json:"description"`
	DiscountType string     `json:"discountType" binding:"required,oneof=percent fixed"`
	Value        int64      `json:"value" binding:"required,min=1"`
	MinOrder     int64      `json:"minOrder" binding:"min=0"`
	MaxUses      int64      `json:"maxUses" binding:"min=0"`
	StartAt      *time.Time `json:"startAt"`
	EndAt        *time.Time `json:"endAt"`
}

func (s *VoucherService) List(tenantID uint) ([]entity.Voucher, error) {
	return s.Repo.List(tenantID)
}

func (s *VoucherService) Create(tenantID uint, in *VoucherIn) (*entity.Voucher, error) {
	if in.DiscountType == entity.VoucherTypePercent && in.Value > 10000 {
		return nil, errors.New("percent voucher cannot exceed 100%")
	}
	v := &entity.Voucher{
		TenantID:     tenantID,
		Code:         strings.ToUpper(strings.TrimSpace(in.Code)),
		Description:  in.Description,
		DiscountType: in.DiscountType,
		Value:        in.Value,
		MinOrder:     in.MinOrder,
		MaxUses:      in.MaxUses,
		StartAt:      in.StartAt,
		EndAt:        in.EndAt,
		Active:       true,
	}
	if err := s.Repo.Create(v); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errors.New("voucher code already exists")
		}
		return nil, err
	}
	return v, nil
}

func (s *VoucherService) SetActive(tenantID, id uint, active bool) error {
	return s.Repo.Update(tenantID, id, map[string]any{"active": active})
}

func (s *VoucherService) Delete(tenantID, id uint) error {
	return s.Repo.Delete(tenantID, id)
}
