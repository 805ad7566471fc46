package repository

import (
	"time"

	"orderweb/entity"

	"gorm.io/gorm"
)

type AnalyticsRepository struct{ DB *gorm.DB }

func NewAnalyticsRepository(db *gorm.DB) *AnalyticsRepository {
	return &AnalyticsRepository{DB: db}
}

type SalesSummary struct {
	Orders  int64 `json:"orders"`
	Revenue int64 `json:"revenue"`
}

// Summary counts non-cancelled orders in [from, to).
func (r *AnalyticsRepository) Summary(tenantID uint, from, to time.Time) (*SalesSummary, error) {
	var out SalesSummary
	err := r.DB.Model(&entity.Order{}).
		Select("COUNT(*) AS orders, COALESCE(SUM(total), 0) AS revenue").
		Where("tenant_id = ? AND status <> ? AND created_at >= ? AND created_at < ?",
			tenantID, entity.OrderStatusCancelled, from, to).
		Scan(&out).Error
	return &out, err
}

type TopItem struct {
	Name    string `json:"name"`
	Qty     int64  `json:"qty"`
	Revenue int64  `json:"revenue"`
}

func (r *AnalyticsRepository) TopItems(tenantID uint, from, to time.Time, limit int) ([]TopItem, error) {
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	var rows []TopItem
	err := r.DB.Raw(`
		SELECT oi.name AS name, SUM(oi.qty) AS qty, SUM(oi.total) AS revenue
		  FROM order_items oi
		  JOIN orders o ON o.id = oi.order_id
		 WHERE o.tenant_id = ? AND o.status <> ?
		   AND o.created_at >= ? AND o.created_at < ?
		   AND oi.deleted_at IS NULL AND o.deleted_at IS NULL
		 GROUP BY oi.name
		 ORDER BY qty DESC
		 LIMIT ?
	`, tenantID, entity.OrderStatusCancelled, from, to, limit).Scan(&rows).Error
	return rows, err
}

type DailyRevenue struct {
	Day     string `json:"day"` // "YYYY-MM-DD"
	Orders  int64  `json:"orders"`
	Revenue int64  `json:"revenue"`
}

func (r *AnalyticsRepository) DailyRevenue(tenantID uint, from, to time.Time) ([]DailyRevenue, error) {
	var rows []DailyRevenue
	err := r.DB.Raw(`
		SELECT date(created_at) AS day, COUNT(*) AS orders, COALESCE(SUM(total), 0) AS revenue
		  FROM orders
		 WHERE tenant_id = ? AND status <> ?
		   AND created_at >= ? AND created_at < ?
		   AND deleted_at IS NULL
		 GROUP BY date(created_at)
		 ORDER BY day
	`, tenantID, entity.OrderStatusCancelled, from, to).Scan(&rows).Error
	return rows, err
}
