package status

import (
	"testing"
	"time"

	"gym-admin/internal/model"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func d(y int, m time.Month, day int) time.Time {
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

func dp(y int, m time.Month, day int) *time.Time {
	t := d(y, m, day)
	return &t
}

func TestClassifyFee(t *testing.T) {
	today := d(2024, 6, 1)
	cases := []struct {
		name string
		fee  *model.Fee
		want FeeStatus
	}{
		{"absent", nil, Pending},
		{"paid but lapsed", &model.Fee{Status: "paid", NextDue: dp(2024, 1, 1)}, Due},
		{"paid due today", &model.Fee{Status: "paid", NextDue: dp(2024, 6, 1)}, Due},
		{"paid in period", &model.Fee{Status: "paid", NextDue: dp(2025, 1, 1)}, Paid},
		{"paid without next_due", &model.Fee{Status: "paid"}, Paid},
		{"stored pending", &model.Fee{Status: "pending", NextDue: dp(2025, 1, 1)}, Pending},
		{"stored due", &model.Fee{Status: "due", NextDue: dp(2024, 1, 1)}, Pending},
		{"unknown status", &model.Fee{Status: "overdue"}, Pending},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, ClassifyFee(tc.fee, today))
		})
	}
}

func TestClassifyFeeIgnoresTimeOfDay(t *testing.T) {
	fee := &model.Fee{Status: "paid", NextDue: dp(2024, 6, 2)}
	require.Equal(t, Paid, ClassifyFee(fee, time.Date(2024, 6, 1, 23, 59, 59, 0, time.UTC)))
	require.Equal(t, Due, ClassifyFee(fee, time.Date(2024, 6, 2, 0, 0, 1, 0, time.UTC)))
}

func TestLatestFee(t *testing.T) {
	require.Nil(t, LatestFee(nil))

	fees := []model.Fee{
		{ID: 1, NextDue: dp(2024, 3, 1)},
		{ID: 2, NextDue: dp(2024, 5, 1)},
		{ID: 3, NextDue: nil},
		{ID: 4, NextDue: dp(2024, 5, 1)},
		{ID: 5, NextDue: dp(2024, 4, 1)},
	}
	require.Equal(t, 4, LatestFee(fees).ID)

	onlyNull := []model.Fee{{ID: 8}, {ID: 11}, {ID: 9}}
	require.Equal(t, 11, LatestFee(onlyNull).ID)

	mixed := []model.Fee{{ID: 20}, {ID: 2, NextDue: dp(2020, 1, 1)}}
	require.Equal(t, 2, LatestFee(mixed).ID)
}

func TestLatestFeeOrderIndependent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 8).Draw(t, "n")
		fees := make([]model.Fee, n)
		for i := range fees {
			fees[i].ID = i + 1
			if rapid.Bool().Draw(t, "hasDue") {
				fees[i].NextDue = dp(2024, 1, rapid.IntRange(1, 5).Draw(t, "day"))
			}
		}
		want := LatestFee(fees).ID

		perm := rapid.Permutation(fees).Draw(t, "perm")
		if got := LatestFee(perm).ID; got != want {
			t.Fatalf("latest depends on order: %d vs %d", got, want)
		}
	})
}

func TestSummarizeFees(t *testing.T) {
	today := d(2024, 6, 1)
	members := []model.Member{
		{ID: 1, Name: "No Fee"},
		{ID: 2, Name: "Lapsed"},
		{ID: 3, Name: "Current"},
		{ID: 4, Name: "Pending"},
	}
	fees := GroupByMember([]model.Fee{
		{ID: 1, MemberID: 2, Amount: 1000, Status: "paid", NextDue: dp(2024, 1, 1)},
		{ID: 2, MemberID: 3, Amount: 1200, Status: "paid", NextDue: dp(2025, 1, 1)},
		{ID: 3, MemberID: 3, Amount: 900, Status: "pending", NextDue: dp(2024, 2, 1)},
		{ID: 4, MemberID: 4, Amount: 800, Status: "pending"},
	})

	s := SummarizeFees(members, fees, today)
	require.Equal(t, 4, s.Len())

	require.Len(t, s.Pending, 2)
	require.Equal(t, FeeEntry{MemberID: 1, Name: "No Fee"}, s.Pending[0])
	require.Nil(t, s.Pending[0].Amount)
	require.Nil(t, s.Pending[0].DueDate)
	require.Equal(t, 4, s.Pending[1].MemberID)
	require.Equal(t, 800.0, *s.Pending[1].Amount)
	require.Nil(t, s.Pending[1].DueDate)

	require.Len(t, s.Due, 1)
	require.Equal(t, 2, s.Due[0].MemberID)
	require.Equal(t, "2024-01-01", *s.Due[0].DueDate)

	require.Len(t, s.Paid, 1)
	require.Equal(t, 3, s.Paid[0].MemberID)
	require.Equal(t, 1200.0, *s.Paid[0].Amount)
	require.Equal(t, "2025-01-01", *s.Paid[0].DueDate)
}

func TestSummarizeFeesEmptyBucketsAreNotNil(t *testing.T) {
	s := SummarizeFees(nil, nil, d(2024, 6, 1))
	require.NotNil(t, s.Paid)
	require.NotNil(t, s.Pending)
	require.NotNil(t, s.Due)
	require.Zero(t, s.Len())
}

func TestSummarizeFeesPartitionProperty(t *testing.T) {
	statuses := []string{"paid", "pending", "due"}
	rapid.Check(t, func(t *rapid.T) {
		today := d(2024, 6, 1)
		n := rapid.IntRange(0, 20).Draw(t, "members")
		members := make([]model.Member, n)
		var all []model.Fee
		feeID := 0
		for i := range members {
			members[i] = model.Member{ID: i + 1, Name: "m"}
			k := rapid.IntRange(0, 3).Draw(t, "fees")
			for j := 0; j < k; j++ {
				feeID++
				f := model.Fee{ID: feeID, MemberID: i + 1, Status: rapid.SampledFrom(statuses).Draw(t, "status")}
				if rapid.Bool().Draw(t, "hasDue") {
					f.NextDue = dp(2024, time.Month(rapid.IntRange(1, 12).Draw(t, "month")), 1)
				}
				all = append(all, f)
			}
		}

		s := SummarizeFees(members, GroupByMember(all), today)
		if s.Len() != n {
			t.Fatalf("buckets hold %d entries for %d members", s.Len(), n)
		}
		seen := map[int]int{}
		for _, b := range [][]FeeEntry{s.Paid, s.Pending, s.Due} {
			for _, e := range b {
				seen[e.MemberID]++
			}
		}
		for _, m := range members {
			if seen[m.ID] != 1 {
				t.Fatalf("member %d appears %d times", m.ID, seen[m.ID])
			}
		}
	})
}
