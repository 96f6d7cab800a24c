package service

import (
	"bytes"
	"testing"

	"github.com/ikkim/bohoja-backend/internal/app/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func applyTwo(t *testing.T, svc BenefitService) {
	t.Helper()
	_, err := svc.ApplyBenefit("1")
	require.NoError(t, err)
	_, err = svc.ApplyBenefit("2")
	require.NoError(t, err)
}

func TestHistory_StatusTextAndTotals(t *testing.T) {
	s := registeredStore(t, day(2025, 1, 1), model.NotificationSettings{})
	applyTwo(t, newBenefitService(s))

	history := NewHistoryService(s, 4_500_000).GetHistory()
	require.Len(t, history.AppliedBenefits, 2)
	assert.Equal(t, "신청완료", history.AppliedBenefits[0].StatusText)
	assert.Equal(t, int64(800_000), history.AppliedBenefits[0].Amount)
	assert.Equal(t, int64(2_000_000), history.TotalSavings)
	assert.Len(t, history.Prescriptions, 0)
}

func TestExpenditure(t *testing.T) {
	s := registeredStore(t, day(2025, 1, 1), model.NotificationSettings{})
	svc := NewHistoryService(s, 4_500_000)

	empty := svc.GetExpenditure()
	assert.Equal(t, int64(4_500_000), empty.FinalCost)
	assert.Equal(t, "신청한 혜택이 없습니다.", empty.Summary)

	applyTwo(t, newBenefitService(s))

	exp := svc.GetExpenditure()
	assert.Equal(t, int64(4_500_000), exp.OriginalCost)
	assert.Equal(t, int64(2_000_000), exp.TotalSavings)
	assert.Equal(t, int64(2_500_000), exp.FinalCost)
	require.Len(t, exp.Benefits, 2)
	assert.Equal(t, int64(1_200_000), exp.Benefits[1].Amount)
	assert.Equal(t, "매월 약 200만원의 예산이 절감됩니다!", exp.Summary)
}

func TestExpenditure_FinalCostNeverNegative(t *testing.T) {
	s := registeredStore(t, day(2025, 1, 1), model.NotificationSettings{})
	applyTwo(t, newBenefitService(s))

	exp := NewHistoryService(s, 1_000_000).GetExpenditure()
	assert.Zero(t, exp.FinalCost)
}

func TestExportHistory(t *testing.T) {
	s := registeredStore(t, day(2025, 1, 1), model.NotificationSettings{})
	applyTwo(t, newBenefitService(s))
	s.AddPrescription(model.NewPrescription{HospitalName: "마산병원", Date: "2025-12-10", ImageURI: "https://cdn/p.jpg"})

	data, err := NewHistoryService(s, 4_500_000).ExportHistory()
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Len(t, f.GetSheetList(), 2)
}
