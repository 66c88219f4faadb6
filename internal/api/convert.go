// File: internal/api/convert.go
package api

import (
	"time"

	"gym-admin/internal/model"
)

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(DateLayout)
	return &s
}

func NewMemberResponse(m model.Member) MemberResponse {
	return MemberResponse{
		ID:        m.ID,
		Name:      m.Name,
		Phone:     m.Phone,
		Email:     m.Email,
		PlanType:  m.PlanType,
		StartDate: m.StartDate.Format(DateLayout),
		EndDate:   m.EndDate.Format(DateLayout),
		Notes:     m.Notes,
	}
}

func NewMemberResponses(ms []model.Member) []MemberResponse {
	out := make([]MemberResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, NewMemberResponse(m))
	}
	return out
}

func NewFeeResponse(f model.Fee) FeeResponse {
	return FeeResponse{
		ID:       f.ID,
		MemberID: f.MemberID,
		Amount:   f.Amount,
		PaidOn:   formatDate(f.PaidOn),
		NextDue:  formatDate(f.NextDue),
		Status:   f.Status,
	}
}

func NewPaymentResponse(p model.Payment) PaymentResponse {
	return PaymentResponse{
		ID:       p.ID,
		MemberID: p.MemberID,
		PlanType: p.PlanType,
		Amount:   p.Amount,
		Method:   p.Method,
		PaidAt:   p.PaidAt,
		Notes:    p.Notes,
	}
}
