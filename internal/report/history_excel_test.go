package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/ikkim/bohoja-backend/internal/app/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestHistoryWorkbook(t *testing.T) {
	applied := time.Date(2025, 1, 2, 10, 30, 0, 0, time.UTC)
	data, err := HistoryWorkbook(History{
		Benefits: []BenefitRow{{
			Name:        "장기요양보험 재가급여",
			Category:    "요양급여",
			Savings:     "월 80만원",
			Amount:      800000,
			AppliedDate: applied,
			StatusText:  "신청완료",
		}},
		TotalSavings: 800000,
		Prescriptions: []model.PrescriptionRecord{{
			ID:           "1",
			HospitalName: "마산병원",
			Date:         "2025-12-10",
			ImageURI:     model.PlaceholderImageURI,
			AddedDate:    applied,
		}},
	})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{benefitSheet, prescriptionSheet}, f.GetSheetList())

	rows, err := f.GetRows(benefitSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "혜택명", rows[0][0])
	assert.Equal(t, "장기요양보험 재가급여", rows[1][0])
	assert.Equal(t, "800000", rows[1][3])
	assert.Equal(t, "2025-01-02 10:30", rows[1][4])
	assert.Equal(t, "합계", rows[2][0])

	rows, err = f.GetRows(prescriptionSheet)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "마산병원", rows[1][0])
	assert.Equal(t, "없음", rows[1][2])
}
