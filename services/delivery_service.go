package services

import (
	"errors"
	"fmt"
	"strings"

	"orderweb/entity"
	"orderweb/repository"
)

// ErrOutsideZones means the postcode matched none of the tenant's zones.
// It is non-fatal while quoting; placing a delivery order with it is blocked.
var ErrOutsideZones = errors.New("postcode is outside our delivery area")

type DeliveryService struct {
	Zones *repository.ZoneRepository
}

func NewDeliveryService(zones *repository.ZoneRepository) *DeliveryService {
	return &DeliveryService{Zones: zones}
}

// Resolve maps a postcode and subtotal to a delivery fee. Zones are matched
// by normalized prefix, longest first.
func (s *DeliveryService) Resolve(tenantID uint, postcode string, subtotal int64) (int64, error) {
	pc := NormalizePostcode(postcode)
	if pc == "" {
		return 0, errors.New("postcode is required")
	}

	zones, err := s.Zones.ListByTenant(tenantID)
	if err != nil {
		return 0, err
	}

	for _, z := range zones {
		if !strings.HasPrefix(pc, NormalizePostcode(z.Prefix)) {
			continue
		}
		if z.MinOrder > 0 && subtotal < z.MinOrder {
			return 0, fmt.Errorf("minimum order for delivery to %s is %d", z.Prefix, z.MinOrder)
		}
		if z.FreeAbove > 0 && subtotal >= z.FreeAbove {
			return 0, nil
		}
		return z.Fee, nil
	}
	return 0, ErrOutsideZones
}

func NormalizePostcode(pc string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(pc), " ", ""))
}

// ----- zone management (owner dashboard) -----

type ZoneIn struct {
	Name      string `json:"name"`
	Prefix    string `json:"prefix" binding:"required"`
	Fee       int64  `json:"fee" binding:"min=0"`
	MinOrder  int64  `json:"minOrder" binding:"min=0"`
	FreeAbove int64  `json:"freeAbove" binding:"min=0"`
}

func (s *DeliveryService) ListZones(tenantID uint) ([]entity.DeliveryZone, error) {
	return s.Zones.ListByTenant(tenantID)
}

func (s *DeliveryService) CreateZone(tenantID uint, in *ZoneIn) (*entity.DeliveryZone, error) {
	z := &entity.DeliveryZone{
		TenantID:  tenantID,
		Name:      in.Name,
		Prefix:    NormalizePostcode(in.Prefix),
		Fee:       in.Fee,
		MinOrder:  in.MinOrder,
		FreeAbove: in.FreeAbove,
	}
	if z.Prefix == "" {
		return nil, errors.New("prefix is required")
	}
	if err := s.Zones.Create(z); err != nil {
		return nil, err
	}
	return z, nil
}

func (s *DeliveryService) UpdateZone(tenantID, id uint, in *ZoneIn) error {
	return s.Zones.Update(tenantID, id, map[string]any{
		"name":       in.Name,
		"prefix":     NormalizePostcode(in.Prefix),
		"fee":        in.Fee,
		"min_order":  in.MinOrder,
		"free_above": in.FreeAbove,
	})
}

func (s *DeliveryService) DeleteZone(tenantID, id uint) error {
	return s.Zones.Delete(tenantID, id)
}
