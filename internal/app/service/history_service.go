package service

import (
	"fmt"
	"time"

	"github.com/ikkim/bohoja-backend/internal/app/model"
	"github.com/ikkim/bohoja-backend/internal/app/store"
	"github.com/ikkim/bohoja-backend/internal/report"
	"github.com/ikkim/bohoja-backend/pkg/logger"
)

// HistoryService 신청 이력 / 지출 분석 서비스 인터페이스
type HistoryService interface {
	GetHistory() *HistoryResponse
	GetExpenditure() *ExpenditureResponse
	ExportHistory() ([]byte, error)
}

// AppliedBenefitView 이력 화면 항목
type AppliedBenefitView struct {
	model.AppliedBenefit
	StatusText string `json:"status_text"`
	Amount     int64  `json:"amount"`
}

// HistoryResponse 이력 화면
type HistoryResponse struct {
	AppliedBenefits []AppliedBenefitView      `json:"applied_benefits"`
	Prescriptions   []model.PrescriptionRecord `json:"prescriptions"`
	TotalSavings    int64                      `json:"total_savings"`
}

// ExpenditureItem 혜택별 절감액
type ExpenditureItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Amount   int64  `json:"amount"`
}

// ExpenditureResponse 월 지출 분석
type ExpenditureResponse struct {
	OriginalCost int64             `json:"original_cost"`
	TotalSavings int64             `json:"total_savings"`
	FinalCost    int64             `json:"final_cost"`
	Benefits     []ExpenditureItem `json:"benefits"`
	Summary      string            `json:"summary"`
}

type historyService struct {
	store        *store.UserStore
	expectedCost int64
}

// NewHistoryService expectedCost is the monthly care cost before any benefit, in won
func NewHistoryService(userStore *store.UserStore, expectedCost int64) HistoryService {
	return &historyService{
		store:        userStore,
		expectedCost: expectedCost,
	}
}

func (s *historyService) GetHistory() *HistoryResponse {
	applied := s.store.AppliedBenefits()

	views := make([]AppliedBenefitView, 0, len(applied))
	for _, b := range applied {
		views = append(views, AppliedBenefitView{
			AppliedBenefit: b,
			StatusText:     b.Status.Text(),
			Amount:         ParseSavingsOrZero(b.Savings) * SavingsUnit,
		})
	}

	prescriptions := s.store.Prescriptions()
	if prescriptions == nil {
		prescriptions = []model.PrescriptionRecord{}
	}

	return &HistoryResponse{
		AppliedBenefits: views,
		Prescriptions:   prescriptions,
		TotalSavings:    TotalSavings(applied),
	}
}

// GetExpenditure 예상 간병비에서 신청 혜택 절감액을 뺀 최종 부담액 (0 미만은 0)
func (s *historyService) GetExpenditure() *ExpenditureResponse {
	applied := s.store.AppliedBenefits()

	items := make([]ExpenditureItem, 0, len(applied))
	for _, b := range applied {
		items = append(items, ExpenditureItem{
			ID:       b.ID,
			Name:     b.Name,
			Category: b.Category,
			Amount:   ParseSavingsOrZero(b.Savings) * SavingsUnit,
		})
	}

	total := TotalSavings(applied)
	final := s.expectedCost - total
	if final < 0 {
		final = 0
	}

	summary := "신청한 혜택이 없습니다."
	if total > 0 {
		summary = fmt.Sprintf("매월 약 %d만원의 예산이 절감됩니다!", total/SavingsUnit)
	}

	return &ExpenditureResponse{
		OriginalCost: s.expectedCost,
		TotalSavings: total,
		FinalCost:    final,
		Benefits:     items,
		Summary:      summary,
	}
}

// ExportHistory 이력 엑셀 파일 생성
func (s *historyService) ExportHistory() ([]byte, error) {
	history := s.GetHistory()

	rows := make([]report.BenefitRow, 0, len(history.AppliedBenefits))
	for _, b := range history.AppliedBenefits {
		rows = append(rows, report.BenefitRow{
			Name:        b.Name,
			Category:    b.Category,
			Savings:     b.Savings,
			Amount:      b.Amount,
			AppliedDate: b.AppliedDate,
			StatusText:  b.StatusText,
		})
	}

	start := time.Now()
	data, err := report.HistoryWorkbook(report.History{
		Benefits:      rows,
		TotalSavings:  history.TotalSavings,
		Prescriptions: history.Prescriptions,
	})
	if err != nil {
		logger.Error("Failed to build history workbook", err)
		return nil, err
	}

	logger.Info("History exported", map[string]interface{}{
		"benefits":      len(rows),
		"prescriptions": len(history.Prescriptions),
		"bytes":         len(data),
		"duration":      time.Since(start).String(),
	})
	return data, nil
}
