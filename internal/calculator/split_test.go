package calculator

import (
	"fmt"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/splitledger/internal/money"
)

func pct(s string) ShareLine {
	return ShareLine{Percent: decimal.NewNullDecimal(decimal.RequireFromString(s))}
}

func percentLine(member, percent string) ShareLine {
	l := pct(percent)
	l.MemberID = member
	return l
}

func amountLine(member, amount string) ShareLine {
	return ShareLine{MemberID: member, Amount: decimal.NewNullDecimal(decimal.RequireFromString(amount))}
}

func TestParseSplitType(t *testing.T) {
	tests := []struct {
		input   string
		want    SplitType
		wantErr bool
	}{
		{"", SplitEqual, false},
		{"equal", SplitEqual, false},
		{" Percent ", SplitPercent, false},
		{"CUSTOM", SplitCustom, false},
		{"shares", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSplitType(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAllocate_Equal(t *testing.T) {
	tests := []struct {
		name    string
		total   money.Cents
		members []string
		want    Allocation
	}{
		{
			name:    "remainder goes to lowest id",
			total:   1000,
			members: []string{"3", "1", "2"},
			want:    Allocation{"1": 334, "2": 333, "3": 333},
		},
		{
			name:    "even split",
			total:   10000,
			members: []string{"A", "B"},
			want:    Allocation{"A": 5000, "B": 5000},
		},
		{
			name:    "two leftover cents",
			total:   1001,
			members: []string{"d", "c", "b", "a"},
			want:    Allocation{"a": 251, "b": 250, "c": 250, "d": 250},
		},
		{
			name:    "fewer cents than members",
			total:   2,
			members: []string{"z", "y", "x"},
			want:    Allocation{"x": 1, "y": 1, "z": 0},
		},
		{
			name:    "zero total",
			total:   0,
			members: []string{"A", "B"},
			want:    Allocation{"A": 0, "B": 0},
		},
		{
			name:    "duplicate members collapse",
			total:   100,
			members: []string{"A", "A", "B"},
			want:    Allocation{"A": 50, "B": 50},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Allocate(tt.total, SplitPolicy{Type: SplitEqual}, tt.members)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.total, got.Sum())
		})
	}
}

func TestAllocate_Percent(t *testing.T) {
	t.Run("halves", func(t *testing.T) {
		got, err := Allocate(1000, SplitPolicy{
			Type:   SplitPercent,
			Shares: []ShareLine{percentLine("1", "50"), percentLine("2", "50")},
		}, []string{"1", "2"})
		require.NoError(t, err)
		assert.Equal(t, Allocation{"1": 500, "2": 500}, got)
	})

	t.Run("thirds are exact", func(t *testing.T) {
		got, err := Allocate(1000, SplitPolicy{
			Type: SplitPercent,
			Shares: []ShareLine{
				percentLine("1", "33.33"),
				percentLine("2", "33.33"),
				percentLine("3", "33.34"),
			},
		}, []string{"1", "2", "3"})
		require.NoError(t, err)
		assert.Equal(t, Allocation{"1": 333, "2": 333, "3": 334}, got)
		assert.Equal(t, money.Cents(1000), got.Sum())
	})

	t.Run("leftover goes to largest fraction", func(t *testing.T) {
		// 101 cents: exact shares 33.33, 33.33, 34.34 -> floors 33, 33, 34 = 100.
		// Fractions .33, .33, .34 -> member 3 gets the leftover cent.
		got, err := Allocate(101, SplitPolicy{
			Type: SplitPercent,
			Shares: []ShareLine{
				percentLine("1", "33.00"),
				percentLine("2", "33.00"),
				percentLine("3", "34.00"),
			},
		}, []string{"1", "2", "3"})
		require.NoError(t, err)
		assert.Equal(t, Allocation{"1": 33, "2": 33, "3": 35}, got)
	})

	t.Run("fraction ties broken by ascending id", func(t *testing.T) {
		// exact 33.33, 33.33, 33.33, 0.01 -> floors 33, 33, 33, 0 = 99, one cent left.
		// Fractions .33 tie between b, c and d; b sorts first.
		got, err := Allocate(100, SplitPolicy{
			Type: SplitPercent,
			Shares: []ShareLine{
				percentLine("d", "33.33"),
				percentLine("c", "33.33"),
				percentLine("b", "33.33"),
				percentLine("a", "0.01"),
			},
		}, []string{"a", "b", "c", "d"})
		require.NoError(t, err)
		assert.Equal(t, Allocation{"a": 0, "b": 34, "c": 33, "d": 33}, got)
	})

	t.Run("subset of members", func(t *testing.T) {
		got, err := Allocate(999, SplitPolicy{
			Type:   SplitPercent,
			Shares: []ShareLine{percentLine("A", "100")},
		}, []string{"A", "B", "C"})
		require.NoError(t, err)
		assert.Equal(t, Allocation{"A": 999}, got)
	})
}

func TestAllocate_PercentValidation(t *testing.T) {
	members := []string{"1", "2"}
	tests := []struct {
		name   string
		shares []ShareLine
	}{
		{"does not sum to 100", []ShareLine{percentLine("1", "50"), percentLine("2", "49.99")}},
		{"over 100", []ShareLine{percentLine("1", "60"), percentLine("2", "50")}},
		{"missing percent", []ShareLine{percentLine("1", "100"), {MemberID: "2"}}},
		{"negative percent", []ShareLine{percentLine("1", "110"), percentLine("2", "-10")}},
		{"three decimals", []ShareLine{percentLine("1", "50.005"), percentLine("2", "49.995")}},
		{"non-member", []ShareLine{percentLine("1", "50"), percentLine("9", "50")}},
		{"duplicate member", []ShareLine{percentLine("1", "50"), percentLine("1", "50")}},
		{"no shares", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Allocate(1000, SplitPolicy{Type: SplitPercent, Shares: tt.shares}, members)
			assert.ErrorIs(t, err, ErrValidation)
			assert.Nil(t, got)
		})
	}
}

func TestAllocate_Custom(t *testing.T) {
	t.Run("exact partition", func(t *testing.T) {
		got, err := Allocate(1000, SplitPolicy{
			Type:   SplitCustom,
			Shares: []ShareLine{amountLine("1", "4.00"), amountLine("2", "6.00")},
		}, []string{"1", "2"})
		require.NoError(t, err)
		assert.Equal(t, Allocation{"1": 400, "2": 600}, got)
	})

	t.Run("sum mismatch", func(t *testing.T) {
		got, err := Allocate(1000, SplitPolicy{
			Type:   SplitCustom,
			Shares: []ShareLine{amountLine("1", "4.00"), amountLine("2", "5.00")},
		}, []string{"1", "2"})
		require.ErrorIs(t, err, ErrValidation)
		assert.Contains(t, err.Error(), "expected=1000 actual=900")
		assert.Nil(t, got)
	})

	t.Run("three decimals", func(t *testing.T) {
		_, err := Allocate(1000, SplitPolicy{
			Type:   SplitCustom,
			Shares: []ShareLine{amountLine("1", "4.005"), amountLine("2", "5.995")},
		}, []string{"1", "2"})
		assert.ErrorIs(t, err, money.ErrInvalidAmount)
	})

	t.Run("missing amount", func(t *testing.T) {
		_, err := Allocate(1000, SplitPolicy{
			Type:   SplitCustom,
			Shares: []ShareLine{amountLine("1", "10.00"), {MemberID: "2"}},
		}, []string{"1", "2"})
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("non-member", func(t *testing.T) {
		_, err := Allocate(1000, SplitPolicy{
			Type:   SplitCustom,
			Shares: []ShareLine{amountLine("1", "5.00"), amountLine("X", "5.00")},
		}, []string{"1", "2"})
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestAllocate_Failures(t *testing.T) {
	_, err := Allocate(1000, SplitPolicy{Type: SplitEqual}, nil)
	assert.ErrorIs(t, err, ErrEmptyMemberSet)

	_, err = Allocate(-1, SplitPolicy{Type: SplitEqual}, []string{"A"})
	assert.ErrorIs(t, err, money.ErrInvalidAmount)

	_, err = Allocate(1000, SplitPolicy{Type: "SHARES"}, []string{"A"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = Allocate(1000, SplitPolicy{Type: SplitEqual, Shares: []ShareLine{amountLine("A", "10.00")}}, []string{"A"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAllocate_BlankMemberID(t *testing.T) {
	for _, members := range [][]string{{""}, {"A", ""}} {
		alloc, err := Allocate(100, SplitPolicy{Type: SplitEqual}, members)
		assert.ErrorIs(t, err, ErrValidation, "members %q", members)
		assert.Nil(t, alloc)
	}

	_, err := Allocate(100, SplitPolicy{Type: SplitCustom, Shares: []ShareLine{amountLine("A", "1.00")}}, []string{"A", ""})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAllocate_Conservation(t *testing.T) {
	members := []string{"m1", "m2", "m3", "m4", "m5", "m6", "m7"}
	percents := []ShareLine{
		percentLine("m1", "12.34"),
		percentLine("m2", "23.45"),
		percentLine("m3", "0.01"),
		percentLine("m4", "14.20"),
		percentLine("m5", "25.00"),
		percentLine("m6", "24.99"),
		percentLine("m7", "0.01"),
	}

	for total := money.Cents(0); total < 5000; total += 37 {
		for _, policy := range []SplitPolicy{{Type: SplitEqual}, {Type: SplitPercent, Shares: percents}} {
			got, err := Allocate(total, policy, members)
			require.NoError(t, err, "total=%d type=%s", total, policy.Type)
			assert.Equal(t, total, got.Sum(), "total=%d type=%s", total, policy.Type)
			for id := range got {
				assert.Contains(t, members, id)
			}
		}
	}
}

func TestAllocate_Deterministic(t *testing.T) {
	policy := SplitPolicy{
		Type: SplitPercent,
		Shares: []ShareLine{
			percentLine("c", "33.33"),
			percentLine("a", "33.33"),
			percentLine("b", "33.34"),
		},
	}
	members := []string{"b", "c", "a"}

	first, err := Allocate(1001, policy, members)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]Allocation, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = Allocate(1001, policy, members)
		}(i)
	}
	wg.Wait()

	for i, r := range results {
		assert.Equal(t, first, r, fmt.Sprintf("run %d", i))
	}
}

func TestAllocation_Members(t *testing.T) {
	a := Allocation{"c": 1, "a": 2, "b": 3}
	assert.Equal(t, []string{"a", "b", "c"}, a.Members())
}
