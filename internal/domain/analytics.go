package domain

import "time"

type Metrics struct {
	TodayBookings     int64   `json:"today_bookings"`
	PendingBookings   int64   `json:"pending_bookings"`
	CompletedBookings int64   `json:"completed_bookings"`
	CancelledBookings int64   `json:"cancelled_bookings"`
	TotalBookings     int64   `json:"total_bookings"`
	TotalRevenue      float64 `json:"total_revenue"`
	ActiveWorkers     int64   `json:"active_workers"`
	TotalUsers        int64   `json:"total_users"`
	ActiveServices    int64   `json:"active_services"`
}

// RevenuePoint: выручка завершенных броней за день (UTC).
type RevenuePoint struct {
	Day      string  `json:"day"`
	Revenue  float64 `json:"revenue"`
	Bookings int64   `json:"bookings"`
}

type ServiceShare struct {
	ServiceID string `json:"service_id"`
	Name      string `json:"name"`
	Bookings  int64  `json:"bookings"`
}

type RevenuePeriod string

const (
	RevenuePeriod7Days    RevenuePeriod = "7days"
	RevenuePeriod30Days   RevenuePeriod = "30days"
	RevenuePeriod6Months  RevenuePeriod = "6months"
	RevenuePeriod12Months RevenuePeriod = "12months"
)

// Since возвращает начало окна. Неизвестный период считается 30 днями.
func (p RevenuePeriod) Since(now time.Time) time.Time {
	switch p {
	case RevenuePeriod7Days:
		return now.AddDate(0, 0, -7)
	case RevenuePeriod6Months:
		return now.AddDate(0, -6, 0)
	case RevenuePeriod12Months:
		return now.AddDate(0, -12, 0)
	default:
		return now.AddDate(0, 0, -30)
	}
}
