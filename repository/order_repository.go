package repository

import (
	"time"

	"orderweb/entity"

	"gorm.io/gorm"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) CreatePayment(tx *gorm.DB, p *entity.Payment) error {
	return tx.Create(p).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderForUser(userID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Where("id = ? AND user_id = ?", orderID, userID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderForTenant(tenantID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Where("id = ? AND tenant_id = ?", orderID, tenantID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderItems(orderID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.DB.Where("order_id = ?", orderID).Preload("Addons").Find(&items).Error
	return items, err
}

func (r *OrderRepository) GetPayment(orderID uint) (*entity.Payment, error) {
	var p entity.Payment
	if err := r.DB.Where("order_id = ?", orderID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

type OrderSummary struct {
	ID          uint       `json:"id"`
	OrderNumber string     `json:"orderNumber"`
	OrderType   string     `json:"orderType"`
	Status      string     `json:"status"`
	Total       int64      `json:"total"`
	CreatedAt   time.Time  `json:"createdAt"`
	ScheduledAt *time.Time `json:"scheduledAt,omitempty"`
}

func (r *OrderRepository) ListOrdersForUser(userID uint, limit int) ([]OrderSummary, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	var rows []OrderSummary
	err := r.DB.Model(&entity.Order{}).
		Select("id", "order_number", "order_type", "status", "total", "created_at", "scheduled_at").
		Where("user_id = ?", userID).
		Order("id DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

type TenantOrderSummary struct {
	ID           uint       `json:"id"`
	OrderNumber  string     `json:"orderNumber"`
	OrderType    string     `json:"orderType"`
	Status       string     `json:"status"`
	CustomerName string     `json:"customerName"`
	Total        int64      `json:"total"`
	CreatedAt    time.Time  `json:"createdAt"`
	ScheduledAt  *time.Time `json:"scheduledAt,omitempty"`
}

func (r *OrderRepository) ListOrdersForTenant(tenantID uint, status string, page, limit int) ([]TenantOrderSummary, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	q := r.DB.Model(&entity.Order{}).Where("tenant_id = ?", tenantID)
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []TenantOrderSummary
	err := q.Select("id", "order_number", "order_type", "status", "customer_name", "total", "created_at", "scheduled_at").
		Order("id DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Scan(&rows).Error
	return rows, total, err
}

// UpdateStatusGuard moves an order between statuses only when it is still in
// the expected one; the affected count tells the caller whether it won.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID uint, from, to string) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}
