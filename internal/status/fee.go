package status

import (
	"time"

	"gym-admin/internal/model"
)

// FeeStatus 是讀取時重新判斷後的費用狀態
type FeeStatus string

const (
	Paid    FeeStatus = model.FeeStatusPaid
	Pending FeeStatus = model.FeeStatusPending
	Due     FeeStatus = model.FeeStatusDue
)

// ClassifyFee 不信任寫入時的 status：已付款但 next_due <= today 視為 due。
// fee 為 nil 時回傳 pending。
func ClassifyFee(fee *model.Fee, today time.Time) FeeStatus {
	if fee == nil || fee.Status != model.FeeStatusPaid {
		return Pending
	}
	if fee.NextDue != nil && !Day(*fee.NextDue).After(Day(today)) {
		return Due
	}
	return Paid
}

// LatestFee 取 next_due 最大者；nil 視為最小，同值取 ID 最大。
// 與 store.GetLatestFee 的 ORDER BY 一致。
func LatestFee(fees []model.Fee) *model.Fee {
	var latest *model.Fee
	for i := range fees {
		if latest == nil || newer(&fees[i], latest) {
			latest = &fees[i]
		}
	}
	return latest
}

func newer(a, b *model.Fee) bool {
	switch {
	case a.NextDue == nil && b.NextDue == nil:
		return a.ID > b.ID
	case a.NextDue == nil:
		return false
	case b.NextDue == nil:
		return true
	case !Day(*a.NextDue).Equal(Day(*b.NextDue)):
		return Day(*a.NextDue).After(Day(*b.NextDue))
	default:
		return a.ID > b.ID
	}
}

// GroupByMember 依 MemberID 分組
func GroupByMember(fees []model.Fee) map[int][]model.Fee {
	out := make(map[int][]model.Fee)
	for _, f := range fees {
		out[f.MemberID] = append(out[f.MemberID], f)
	}
	return out
}

// FeeEntry 是摘要中每位會員的投影；沒有費用紀錄時 Amount / DueDate 為 null
type FeeEntry struct {
	MemberID int      `json:"member_id"`
	Name     string   `json:"name"`
	Amount   *float64 `json:"amount"`
	DueDate  *string  `json:"due_date"`
}

// FeeSummary 三個桶子剛好分割所有會員
type FeeSummary struct {
	Paid    []FeeEntry `json:"paid"`
	Pending []FeeEntry `json:"pending"`
	Due     []FeeEntry `json:"due"`
}

// Len 回傳三個桶子的總數
func (s FeeSummary) Len() int {
	return len(s.Paid) + len(s.Pending) + len(s.Due)
}

// Entry 產生單一會員的投影與狀態
func Entry(m model.Member, fees []model.Fee, today time.Time) (FeeEntry, FeeStatus) {
	latest := LatestFee(fees)
	e := FeeEntry{MemberID: m.ID, Name: m.Name}
	if latest != nil {
		amount := latest.Amount
		e.Amount = &amount
		e.DueDate = FormatDate(latest.NextDue)
	}
	return e, ClassifyFee(latest, today)
}

// SummarizeFees 依會員順序放入 paid / pending / due
func SummarizeFees(members []model.Member, feesByMember map[int][]model.Fee, today time.Time) FeeSummary {
	s := FeeSummary{Paid: []FeeEntry{}, Pending: []FeeEntry{}, Due: []FeeEntry{}}
	for _, m := range members {
		e, st := Entry(m, feesByMember[m.ID], today)
		switch st {
		case Paid:
			s.Paid = append(s.Paid, e)
		case Due:
			s.Due = append(s.Due, e)
		default:
			s.Pending = append(s.Pending, e)
		}
	}
	return s
}
