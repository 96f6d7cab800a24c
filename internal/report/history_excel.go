package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/ikkim/bohoja-backend/internal/app/model"
	"github.com/xuri/excelize/v2"
)

const (
	benefitSheet      = "신청 혜택"
	prescriptionSheet = "병원 방문 기록"
	timeLayout        = "2006-01-02 15:04"
)

// BenefitRow 신청 혜택 한 줄 (금액은 원 단위)
type BenefitRow struct {
	Name        string
	Category    string
	Savings     string
	Amount      int64
	AppliedDate time.Time
	StatusText  string
}

// History 이력 내보내기 데이터
type History struct {
	Benefits      []BenefitRow
	TotalSavings  int64
	Prescriptions []model.PrescriptionRecord
}

// HistoryWorkbook renders the history as an xlsx file with one sheet per list
func HistoryWorkbook(h History) ([]byte, error) {
	f := excelize.NewFile()

	if _, err := f.NewSheet(benefitSheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	if _, err := f.NewSheet(prescriptionSheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	// 기본 Sheet1 삭제
	if err := f.DeleteSheet("Sheet1"); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to delete default sheet: %w", err)
	}
	index, err := f.GetSheetIndex(benefitSheet)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to find sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	benefitRows := make([][]interface{}, 0, len(h.Benefits)+1)
	for _, b := range h.Benefits {
		benefitRows = append(benefitRows, []interface{}{
			b.Name, b.Category, b.Savings, b.Amount, b.AppliedDate.Format(timeLayout), b.StatusText,
		})
	}
	benefitRows = append(benefitRows, []interface{}{"합계", "", "", h.TotalSavings, "", ""})

	if err := writeTable(f, benefitSheet, headerStyle,
		[]string{"혜택명", "카테고리", "절감액", "금액(원)", "신청일", "상태"},
		[]float64{28, 14, 14, 14, 18, 10},
		benefitRows,
	); err != nil {
		f.Close()
		return nil, err
	}

	prescriptionRows := make([][]interface{}, 0, len(h.Prescriptions))
	for _, p := range h.Prescriptions {
		image := "없음"
		if p.HasImage() {
			image = p.ImageURI
		}
		prescriptionRows = append(prescriptionRows, []interface{}{
			p.HospitalName, p.Date, image, p.AddedDate.Format(timeLayout),
		})
	}

	if err := writeTable(f, prescriptionSheet, headerStyle,
		[]string{"병원명", "방문일", "처방전 이미지", "등록일"},
		[]float64{20, 14, 40, 18},
		prescriptionRows,
	); err != nil {
		f.Close()
		return nil, err
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write to buffer: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("failed to close file: %w", err)
	}
	return buf.Bytes(), nil
}

func writeTable(f *excelize.File, sheet string, headerStyle int, headers []string, widths []float64, rows [][]interface{}) error {
	for col, header := range headers {
		if err := setCellValue(f, sheet, col+1, 1, header); err != nil {
			return fmt.Errorf("failed to set header cell: %w", err)
		}
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return fmt.Errorf("failed to convert column number: %w", err)
		}
		if err := f.SetColWidth(sheet, name, name, widths[col]); err != nil {
			return fmt.Errorf("failed to set column width: %w", err)
		}
	}

	last, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
		return fmt.Errorf("failed to set header style: %w", err)
	}

	for r, row := range rows {
		for c, value := range row {
			if err := setCellValue(f, sheet, c+1, r+2, value); err != nil {
				return fmt.Errorf("failed to set cell value at row %d, col %d: %w", r+2, c+1, err)
			}
		}
	}

	// 헤더 고정
	return f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

func setCellValue(f *excelize.File, sheet string, col, row int, value interface{}) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(sheet, cell, value)
}
