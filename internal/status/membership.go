package status

import (
	"time"

	"gym-admin/internal/model"
)

// Window 是會籍狀態
type Window string

const (
	Active       Window = "active"
	ExpiringSoon Window = "expiring_soon"
	Expired      Window = "expired"
)

// ClassifyMembership 的邊界：
// end < today 為 expired；today <= end <= today+horizon 為 expiring_soon；其餘為 active。
// horizon 小於 0 時當作 0。
func ClassifyMembership(m model.Member, today time.Time, horizonDays int) Window {
	if horizonDays < 0 {
		horizonDays = 0
	}
	end := Day(m.EndDate)
	t := Day(today)
	switch {
	case end.Before(t):
		return Expired
	case !end.After(t.AddDate(0, 0, horizonDays)):
		return ExpiringSoon
	default:
		return Active
	}
}

// InWindow 篩出指定狀態的會員，保留原順序
func InWindow(members []model.Member, today time.Time, horizonDays int, w Window) []model.Member {
	out := []model.Member{}
	for _, m := range members {
		if ClassifyMembership(m, today, horizonDays) == w {
			out = append(out, m)
		}
	}
	return out
}

// EndingOn 篩出 end_date 剛好是 today 的會員
func EndingOn(members []model.Member, today time.Time) []model.Member {
	out := []model.Member{}
	t := Day(today)
	for _, m := range members {
		if Day(m.EndDate).Equal(t) {
			out = append(out, m)
		}
	}
	return out
}
