package status

import (
	"testing"

	"gym-admin/internal/model"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestClassifyMembership(t *testing.T) {
	today := d(2025, 3, 15)
	end := func(days int) model.Member { return model.Member{EndDate: today.AddDate(0, 0, days)} }

	cases := []struct {
		name    string
		m       model.Member
		horizon int
		want    Window
	}{
		{"yesterday", end(-1), 7, Expired},
		{"today inclusive", end(0), 7, ExpiringSoon},
		{"today with zero horizon", end(0), 0, ExpiringSoon},
		{"in three days", end(3), 7, ExpiringSoon},
		{"horizon edge", end(7), 7, ExpiringSoon},
		{"past horizon", end(8), 7, Active},
		{"in thirty days", end(30), 7, Active},
		{"negative horizon", end(1), -3, Active},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, ClassifyMembership(tc.m, today, tc.horizon))
		})
	}
}

func TestClassifyMembershipExclusive(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		today := d(2025, 3, 15)
		offset := rapid.IntRange(-60, 60).Draw(t, "offset")
		horizon := rapid.IntRange(0, 30).Draw(t, "horizon")
		m := model.Member{EndDate: today.AddDate(0, 0, offset)}

		got := ClassifyMembership(m, today, horizon)
		var want Window
		switch {
		case offset < 0:
			want = Expired
		case offset <= horizon:
			want = ExpiringSoon
		default:
			want = Active
		}
		if got != want {
			t.Fatalf("offset %d horizon %d: got %s want %s", offset, horizon, got, want)
		}
	})
}

func TestInWindowAndEndingOn(t *testing.T) {
	today := d(2025, 3, 15)
	members := []model.Member{
		{ID: 1, EndDate: d(2025, 3, 14)},
		{ID: 2, EndDate: d(2025, 3, 15)},
		{ID: 3, EndDate: d(2025, 3, 20)},
		{ID: 4, EndDate: d(2025, 5, 1)},
	}

	ids := func(ms []model.Member) []int {
		out := []int{}
		for _, m := range ms {
			out = append(out, m.ID)
		}
		return out
	}

	require.Equal(t, []int{1}, ids(InWindow(members, today, 7, Expired)))
	require.Equal(t, []int{2, 3}, ids(InWindow(members, today, 7, ExpiringSoon)))
	require.Equal(t, []int{2}, ids(InWindow(members, today, 0, ExpiringSoon)))
	require.Equal(t, []int{4}, ids(InWindow(members, today, 7, Active)))
	require.Equal(t, []int{2}, ids(EndingOn(members, today)))
	require.NotNil(t, InWindow(nil, today, 7, Active))
	require.NotNil(t, EndingOn(nil, today))
}
