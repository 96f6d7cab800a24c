package service

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/ikkim/bohoja-backend/internal/app/model"
	"github.com/ikkim/bohoja-backend/pkg/util"
)

// SavingsUnit 혜택 금액 표시 단위 (만원)
const SavingsUnit = 10000

// costMultiplier is the fixed heuristic used by the benefit detail screen
const costMultiplier = 3

// FilterByCategory returns the entries of catalog in category, keeping their order.
// model.AllCategories returns the whole catalog.
func FilterByCategory(catalog []model.Benefit, category string) []model.Benefit {
	if category == model.AllCategories {
		return append([]model.Benefit(nil), catalog...)
	}
	out := make([]model.Benefit, 0, len(catalog))
	for _, b := range catalog {
		if b.Category == category {
			out = append(out, b)
		}
	}
	return out
}

// ParseSavingsOrZero reads the amount in 만원 from a display string such as "월 80만원".
// Every non-digit is dropped; a string with no digits is 0.
func ParseSavingsOrZero(savings string) int64 {
	digits := util.Digits(savings)
	if digits == "" {
		return 0
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// TotalSavings sums the applied benefits in won
func TotalSavings(applied []model.AppliedBenefit) int64 {
	var total int64
	for _, b := range applied {
		total += ParseSavingsOrZero(b.Savings) * SavingsUnit
	}
	return total
}

// IsApplied reports whether benefitID is already in the history
func IsApplied(applied []model.AppliedBenefit, benefitID string) bool {
	for _, b := range applied {
		if b.ID == benefitID {
			return true
		}
	}
	return false
}

// CostProjection 혜택 적용 전후 예상 비용 (만원 단위)
type CostProjection struct {
	OriginalCost      int64   `json:"original_cost"`
	DiscountedCost    int64   `json:"discounted_cost"`
	SavingsPercentage float64 `json:"savings_percentage"`
}

// ProjectCost applies the 3x heuristic to a savings amount in 만원.
// A zero amount yields an all-zero projection.
func ProjectCost(savings int64) CostProjection {
	original := savings * costMultiplier
	discounted := original - savings

	var pct float64
	if discounted > 0 {
		pct = float64(savings) / float64(original) * 100
	}
	return CostProjection{
		OriginalCost:      original,
		DiscountedCost:    discounted,
		SavingsPercentage: pct,
	}
}

type DDayTier string

const (
	DDayExpired DDayTier = "expired"
	DDayUrgent  DDayTier = "urgent"
	DDayNormal  DDayTier = "normal"
)

// urgentWindowDays deadlines this close share the D-Day treatment
const urgentWindowDays = 7

// DDayBadge 마감 배지
type DDayBadge struct {
	Label string   `json:"label"`
	Tier  DDayTier `json:"tier"`
	Days  int      `json:"days"`
}

// DDay computes the badge for a YYYY-MM-DD deadline relative to today's calendar date.
// An empty or unparseable deadline has no badge.
func DDay(deadline string, today time.Time) *DDayBadge {
	if deadline == "" {
		return nil
	}
	due, err := time.Parse(util.DateLayout, deadline)
	if err != nil {
		return nil
	}
	start := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	days := int(math.Ceil(due.Sub(start).Hours() / 24))

	switch {
	case days < 0:
		return &DDayBadge{Label: "마감", Tier: DDayExpired, Days: days}
	case days == 0:
		return &DDayBadge{Label: "D-Day", Tier: DDayUrgent, Days: 0}
	case days <= urgentWindowDays:
		return &DDayBadge{Label: fmt.Sprintf("D-%d", days), Tier: DDayUrgent, Days: days}
	default:
		return &DDayBadge{Label: fmt.Sprintf("D-%d", days), Tier: DDayNormal, Days: days}
	}
}
