package service

import (
	"testing"

	"github.com/ikkim/bohoja-backend/internal/app/catalog"
	"github.com/ikkim/bohoja-backend/internal/app/model"
	"github.com/ikkim/bohoja-backend/internal/app/store"
	"github.com/ikkim/bohoja-backend/internal/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBenefitService(s *store.UserStore) BenefitService {
	return NewBenefitService(s, metrics.New())
}

func TestListBenefits_MarksAppliedAndDDay(t *testing.T) {
	s := newTestStore(day(2026, 10, 25))
	svc := newBenefitService(s)
	_, err := svc.ApplyBenefit("1")
	require.NoError(t, err)

	items := svc.ListBenefits("")
	require.Len(t, items, len(catalog.Benefits()))
	assert.True(t, items[0].Applied)
	assert.False(t, items[1].Applied)
	assert.Nil(t, items[0].DDay)
	require.NotNil(t, items[3].DDay)
	assert.Equal(t, "D-6", items[3].DDay.Label)

	care := svc.ListBenefits("간병지원")
	require.Len(t, care, 1)
	assert.Equal(t, "4", care[0].ID)

	assert.Empty(t, svc.ListBenefits("없는카테고리"))
}

func TestGetBenefitDetail(t *testing.T) {
	svc := newBenefitService(newTestStore(day(2025, 1, 1)))

	detail, err := svc.GetBenefitDetail("1")
	require.NoError(t, err)
	assert.Equal(t, "국민건강보험공단", detail.Agency)
	assert.Equal(t, int64(240), detail.Projection.OriginalCost)
	assert.Equal(t, int64(160), detail.Projection.DiscountedCost)
	assert.Len(t, detail.Requirements, 3)

	_, err = svc.GetBenefitDetail("404")
	assert.ErrorIs(t, err, ErrBenefitNotFound)
}

func TestApplyBenefit_Duplicate(t *testing.T) {
	s := newTestStore(day(2025, 1, 1))
	svc := newBenefitService(s)

	entry, err := svc.ApplyBenefit("2")
	require.NoError(t, err)
	assert.Equal(t, "중증환자 의료비 지원", entry.Name)
	assert.Equal(t, model.BenefitStatusApplied, entry.Status)

	_, err = svc.ApplyBenefit("2")
	assert.ErrorIs(t, err, store.ErrBenefitAlreadyApplied)

	_, err = svc.ApplyBenefit("999")
	assert.ErrorIs(t, err, ErrBenefitNotFound)
	assert.Len(t, s.AppliedBenefits(), 1)
}

func TestCategories(t *testing.T) {
	cats := newBenefitService(newTestStore(day(2025, 1, 1))).Categories()
	assert.Equal(t, []string{"전체", "요양급여", "의료비지원", "돌봄서비스", "간병지원", "생활지원", "주거지원"}, cats)
}
