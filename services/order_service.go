package services

import (
	"errors"

	"orderweb/entity"
	"orderweb/repository"
	"orderweb/ws"

	"gorm.io/gorm"
)

var (
	ErrForbidden         = errors.New("forbidden")
	ErrInvalidTransition = errors.New("order is not in the expected status")
)

type OrderService struct {
	DB         *gorm.DB
	Repo       *repository.OrderRepository
	TenantRepo *repository.TenantRepository
	Feed       *ws.OrderHub
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, tenantRepo *repository.TenantRepository, feed *ws.OrderHub) *OrderService {
	return &OrderService{DB: db, Repo: repo, TenantRepo: tenantRepo, Feed: feed}
}

func (s *OrderService) ListForUser(userID uint, limit int) ([]repository.OrderSummary, error) {
	return s.Repo.ListOrdersForUser(userID, limit)
}

type OrderDetail struct {
	Order entity.Order       `json:"order"`
	Items []entity.OrderItem `json:"items"`
}

func (s *OrderService) DetailForUser(userID, orderID uint) (*OrderDetail, error) {
	o, err := s.Repo.GetOrderForUser(userID, orderID)
	if err != nil {
		return nil, err
	}
	items, err := s.Repo.GetOrderItems(o.ID)
	if err != nil {
		return nil, err
	}
	return &OrderDetail{Order: *o, Items: items}, nil
}

// ----- partner dashboard -----

type TenantOrderListOut struct {
	Items []repository.TenantOrderSummary `json:"items"`
	Total int64                           `json:"total"`
	Page  int                             `json:"page"`
	Limit int                             `json:"limit"`
}

func (s *OrderService) ownerCheck(tenantID, userID uint, role string) error {
	if role == "admin" {
		return nil
	}
	ok, err := s.TenantRepo.IsOwnedBy(tenantID, userID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrForbidden
	}
	return nil
}

func (s *OrderService) ListForTenant(userID uint, role string, tenantID uint, status string, page, limit int) (*TenantOrderListOut, error) {
	if err := s.ownerCheck(tenantID, userID, role); err != nil {
		return nil, err
	}
	items, total, err := s.Repo.ListOrdersForTenant(tenantID, status, page, limit)
	if err != nil {
		return nil, err
	}
	return &TenantOrderListOut{Items: items, Total: total, Page: page, Limit: limit}, nil
}

func (s *OrderService) DetailForTenant(userID uint, role string, tenantID, orderID uint) (*OrderDetail, error) {
	if err := s.ownerCheck(tenantID, userID, role); err != nil {
		return nil, err
	}
	o, err := s.Repo.GetOrderForTenant(tenantID, orderID)
	if err != nil {
		return nil, err
	}
	items, err := s.Repo.GetOrderItems(o.ID)
	if err != nil {
		return nil, err
	}
	return &OrderDetail{Order: *o, Items: items}, nil
}

// transition guards: each step only moves forward from its expected status
var transitions = map[string]string{
	entity.OrderStatusAccepted:  entity.OrderStatusPending,
	entity.OrderStatusReady:     entity.OrderStatusAccepted,
	entity.OrderStatusCompleted: entity.OrderStatusReady,
}

// SetStatus moves an order along the pipeline. Cancel is allowed from
// pending or accepted.
func (s *OrderService) SetStatus(userID uint, role string, tenantID, orderID uint, to string) error {
	if err := s.ownerCheck(tenantID, userID, role); err != nil {
		return err
	}

	o, err := s.Repo.GetOrderForTenant(tenantID, orderID)
	if err != nil {
		return err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		var affected int64
		var err error
		if to == entity.OrderStatusCancelled {
			if o.Status != entity.OrderStatusPending && o.Status != entity.OrderStatusAccepted {
				return ErrInvalidTransition
			}
			affected, err = s.Repo.UpdateStatusGuard(tx, o.ID, o.Status, to)
		} else {
			from, ok := transitions[to]
			if !ok {
				return errors.New("unknown status")
			}
			affected, err = s.Repo.UpdateStatusGuard(tx, o.ID, from, to)
		}
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrInvalidTransition
		}
		return nil
	})
	if err != nil {
		return err
	}

	if s.Feed != nil {
		s.Feed.Broadcast(tenantID, ws.OrderEvent{
			Type:        "order.status",
			OrderID:     o.ID,
			OrderNumber: o.OrderNumber,
			OrderType:   o.OrderType,
			Status:      to,
			Total:       o.Total,
		})
	}
	return nil
}
