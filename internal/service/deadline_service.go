package service

import (
	"strings"
	"time"

	"grafica-order-bot/internal/constant"
)

type IDeadlineService interface {
	ParseOrderDate(text string) (time.Time, error)
	DeliveryDate(orderDate time.Time) time.Time
	AddBusinessDays(start time.Time, n int) time.Time
	Format(t time.Time) string
}

type deadlineService struct {
	leadTimeDays int
}

func NewDeadlineService(leadTimeDays int) IDeadlineService {
	return &deadlineService{
		leadTimeDays: leadTimeDays,
	}
}

func (s *deadlineService) ParseOrderDate(text string) (time.Time, error) {
	return time.Parse(constant.DateLayout, strings.TrimSpace(text))
}

func (s *deadlineService) DeliveryDate(orderDate time.Time) time.Time {
	return s.AddBusinessDays(orderDate, s.leadTimeDays)
}

// AddBusinessDays walks forward one calendar day at a time and counts
// only Monday through Friday, so the result is never the start date and
// never a weekend. Month, year and leap-year rollovers are the calendar
// library's problem.
func (s *deadlineService) AddBusinessDays(start time.Time, n int) time.Time {
	current := start
	added := 0
	for added < n {
		current = current.AddDate(0, 0, 1)
		if wd := current.Weekday(); wd != time.Saturday && wd != time.Sunday {
			added++
		}
	}
	return current
}

func (s *deadlineService) Format(t time.Time) string {
	return t.Format(constant.DateLayout)
}
