package service

import (
	"testing"
	"time"

	"github.com/ikkim/bohoja-backend/internal/app/catalog"
	"github.com/ikkim/bohoja-backend/internal/app/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterByCategory_AllReturnsCatalogInOrder(t *testing.T) {
	all := catalog.Benefits()
	assert.Equal(t, all, FilterByCategory(all, model.AllCategories))
}

func TestFilterByCategory_ConcreteCategoryKeepsOrder(t *testing.T) {
	all := catalog.Benefits()

	for _, category := range catalog.Categories[1:] {
		got := FilterByCategory(all, category)

		var want []model.Benefit
		for _, b := range all {
			if b.Category == category {
				want = append(want, b)
			}
		}
		if len(want) == 0 {
			assert.Empty(t, got, category)
			continue
		}
		assert.Equal(t, want, got, category)
	}

	care := FilterByCategory(all, "돌봄서비스")
	require.Len(t, care, 2)
	assert.Equal(t, "3", care[0].ID)
	assert.Equal(t, "7", care[1].ID)
}

func TestParseSavingsOrZero(t *testing.T) {
	cases := map[string]int64{
		"월 80만원":  80,
		"월 120만원": 120,
		"80":      80,
		"무료":      0,
		"":        0,
		"월 1,200만원": 1200,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseSavingsOrZero(in), in)
	}
}

func TestTotalSavings(t *testing.T) {
	applied := []model.AppliedBenefit{
		{ID: "1", Savings: "월 80만원"},
		{ID: "2", Savings: "월 120만원"},
	}
	assert.Equal(t, int64(2_000_000), TotalSavings(applied))

	applied = append(applied, model.AppliedBenefit{ID: "9", Savings: "상담 후 결정"})
	assert.Equal(t, int64(2_000_000), TotalSavings(applied))
	assert.Zero(t, TotalSavings(nil))
}

func TestIsApplied(t *testing.T) {
	applied := []model.AppliedBenefit{{ID: "1"}, {ID: "4"}}
	assert.True(t, IsApplied(applied, "4"))
	assert.False(t, IsApplied(applied, "2"))
	assert.False(t, IsApplied(nil, "1"))
}

func TestProjectCost(t *testing.T) {
	assert.Equal(t, CostProjection{}, ProjectCost(0))

	p := ProjectCost(80)
	assert.Equal(t, int64(240), p.OriginalCost)
	assert.Equal(t, int64(160), p.DiscountedCost)
	assert.InDelta(t, 33.333, p.SavingsPercentage, 0.001)
}

func TestDDay(t *testing.T) {
	today := day(2025, 1, 1)

	cases := []struct {
		deadline string
		label    string
		tier     DDayTier
	}{
		{"2025-01-01", "D-Day", DDayUrgent},
		{"2025-01-02", "D-1", DDayUrgent},
		{"2025-01-08", "D-7", DDayUrgent},
		{"2025-01-09", "D-8", DDayNormal},
		{"2024-12-31", "마감", DDayExpired},
	}
	for _, tc := range cases {
		badge := DDay(tc.deadline, today)
		require.NotNil(t, badge, tc.deadline)
		assert.Equal(t, tc.label, badge.Label, tc.deadline)
		assert.Equal(t, tc.tier, badge.Tier, tc.deadline)
	}
}

func TestDDay_IgnoresTimeOfDay(t *testing.T) {
	late := day(2025, 1, 1).Add(23*time.Hour + 59*time.Minute)
	assert.Equal(t, "D-Day", DDay("2025-01-01", late).Label)
}

func TestDDay_NoBadge(t *testing.T) {
	assert.Nil(t, DDay("", day(2025, 1, 1)))
	assert.Nil(t, DDay("2025/01/01", day(2025, 1, 1)))
}
