package status

import (
	"time"

	"gym-admin/internal/model"
)

// DashboardHorizonDays 是儀表板「即將續約」的天數
const DashboardHorizonDays = 7

type DashboardStats struct {
	TotalMembers      int     `json:"total_members"`
	ActiveMembers     int     `json:"active_members"`
	ExpiredMembers    int     `json:"expired_members"`
	PaymentsThisMonth float64 `json:"payments_this_month"`
	UpcomingRenewals  int     `json:"upcoming_renewals"`
}

// AggregateDashboard 計算儀表板數字；active = total - expired，
// payments 只計入 PaidAt >= monthStart 者。
func AggregateDashboard(members []model.Member, payments []model.Payment, today, monthStart time.Time) DashboardStats {
	s := DashboardStats{TotalMembers: len(members)}
	for _, m := range members {
		switch ClassifyMembership(m, today, DashboardHorizonDays) {
		case Expired:
			s.ExpiredMembers++
		case ExpiringSoon:
			s.UpcomingRenewals++
		}
	}
	s.ActiveMembers = s.TotalMembers - s.ExpiredMembers

	for _, p := range payments {
		if !p.PaidAt.Before(monthStart) {
			s.PaymentsThisMonth += p.Amount
		}
	}
	return s
}
