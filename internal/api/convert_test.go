package api

import (
	"encoding/json"
	"testing"
	"time"

	"gym-admin/internal/model"

	"github.com/stretchr/testify/require"
)

func TestNewMemberResponse(t *testing.T) {
	m := model.Member{
		ID: 1, Name: "Jane", Phone: "0912", PlanType: "monthly",
		StartDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
	}
	b, err := json.Marshal(NewMemberResponse(m))
	require.NoError(t, err)
	require.JSONEq(t, `{"id":1,"name":"Jane","phone":"0912","email":null,"plan_type":"monthly",
		"start_date":"2025-01-01","end_date":"2025-02-01","notes":null}`, string(b))

	require.NotNil(t, NewMemberResponses(nil))
	require.Len(t, NewMemberResponses([]model.Member{m, m}), 2)
}

func TestNewFeeResponse(t *testing.T) {
	due := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	r := NewFeeResponse(model.Fee{ID: 2, MemberID: 1, Amount: 1200, NextDue: &due, Status: "paid"})
	require.Nil(t, r.PaidOn)
	require.Equal(t, "2025-02-01", *r.NextDue)
	require.Equal(t, "paid", r.Status)
}
