package services

import (
	"fmt"
	"sort"
	"time"

	"orderweb/entity"
)

type RestaurantStatus struct {
	IsOpen  bool   `json:"isOpen"`
	Message string `json:"message"`
}

// HoursStatus decides whether the restaurant accepts orders right now.
// A tenant with no configured hours is treated as always open. A window that
// closes at or before it opens runs past midnight into the next day.
func HoursStatus(hours []entity.OpeningHour, now time.Time) RestaurantStatus {
	if len(hours) == 0 {
		return RestaurantStatus{IsOpen: true, Message: "Open"}
	}

	weekday := int(now.Weekday())
	yesterday := (weekday + 6) % 7
	minute := now.Hour()*60 + now.Minute()

	// an overnight window (closes at or before it opens) started yesterday
	// and still covers the early hours of today
	for _, h := range hours {
		if h.Weekday != yesterday || h.Closed {
			continue
		}
		open, err1 := parseClock(h.Opens)
		close, err2 := parseClock(h.Closes)
		if err1 != nil || err2 != nil {
			continue
		}
		if close <= open && minute < close {
			return RestaurantStatus{IsOpen: true, Message: fmt.Sprintf("Open until %s", h.Closes)}
		}
	}

	var nextOpen string
	for _, h := range hours {
		if h.Weekday != weekday || h.Closed {
			continue
		}
		open, err1 := parseClock(h.Opens)
		close, err2 := parseClock(h.Closes)
		if err1 != nil || err2 != nil {
			continue
		}
		overnight := close <= open
		if minute >= open && (overnight || minute < close) {
			return RestaurantStatus{IsOpen: true, Message: fmt.Sprintf("Open until %s", h.Closes)}
		}
		if minute < open && (nextOpen == "" || h.Opens < nextOpen) {
			nextOpen = h.Opens
		}
	}

	if nextOpen != "" {
		return RestaurantStatus{IsOpen: false, Message: fmt.Sprintf("Closed. Opens today at %s", nextOpen)}
	}
	return RestaurantStatus{IsOpen: false, Message: "Closed for today"}
}

func parseClock(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

// SortHours orders a weekly schedule for display.
func SortHours(rows []entity.OpeningHour) {
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Weekday != rows[j].Weekday {
			return rows[i].Weekday < rows[j].Weekday
		}
		return rows[i].Opens < rows[j].Opens
	})
}
