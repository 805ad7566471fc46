package services

import (
	"time"

	"orderweb/repository"
)

type AnalyticsService struct {
	Repo *repository.AnalyticsRepository
}

func NewAnalyticsService(repo *repository.AnalyticsRepository) *AnalyticsService {
	return &AnalyticsService{Repo: repo}
}

type AnalyticsOut struct {
	From          time.Time                 `json:"from"`
	To            time.Time                 `json:"to"`
	Orders        int64                     `json:"orders"`
	Revenue       int64                     `json:"revenue"`
	AvgOrderValue int64                     `json:"avgOrderValue"`
	TopItems      []repository.TopItem      `json:"topItems"`
	Daily         []repository.DailyRevenue `json:"daily"`
}

// Dashboard assembles the owner analytics view for [from, to). A zero range
// defaults to the last 30 days.
func (s *AnalyticsService) Dashboard(tenantID uint, from, to time.Time) (*AnalyticsOut, error) {
	if to.IsZero() {
		to = time.Now()
	}
	if from.IsZero() {
		from = to.AddDate(0, 0, -30)
	}

	sum, err := s.Repo.Summary(tenantID, from, to)
	if err != nil {
		return nil, err
	}
	top, err := s.Repo.TopItems(tenantID, from, to, 10)
	if err != nil {
		return nil, err
	}
	daily, err := s.Repo.DailyRevenue(tenantID, from, to)
	if err != nil {
		return nil, err
	}

	out := &AnalyticsOut{
		From: from, To: to,
		Orders:   sum.Orders,
		Revenue:  sum.Revenue,
		TopItems: top,
		Daily:    daily,
	}
	if sum.Orders > 0 {
		out.AvgOrderValue = sum.Revenue / sum.Orders
	}
	return out, nil
}
