package service

import (
	"errors"

	"github.com/ikkim/bohoja-backend/internal/app/catalog"
	"github.com/ikkim/bohoja-backend/internal/app/model"
	"github.com/ikkim/bohoja-backend/internal/app/store"
	apperrors "github.com/ikkim/bohoja-backend/internal/errors"
	"github.com/ikkim/bohoja-backend/internal/metrics"
	"github.com/ikkim/bohoja-backend/pkg/logger"
)

const msgNoSelection = "신청할 항목을 선택해주세요."

// RecommendationService 진단 기반 추천 혜택 (복지 처방전) 서비스 인터페이스
type RecommendationService interface {
	GetRecommendations() (*RecommendationResponse, error)
	ApplyRecommendations(req ApplyRecommendationsRequest) (*ApplyRecommendationsResult, error)
}

// RecommendationResponse 복지 처방전 화면
type RecommendationResponse struct {
	Patient  model.PatientSummary `json:"patient"`
	Benefits []BenefitListItem    `json:"benefits"`
}

// ApplyRecommendationsRequest 선택 신청 또는 전체 신청
type ApplyRecommendationsRequest struct {
	BenefitIDs []string `json:"benefit_ids"`
	All        bool     `json:"all"`
}

// ApplyRecommendationsResult 신청 완료 화면
type ApplyRecommendationsResult struct {
	Applied      []model.AppliedBenefit `json:"applied"`
	Skipped      []string               `json:"skipped"`
	AppliedCount int                    `json:"applied_count"`
	// 이번에 신청한 혜택의 월 절감액 (원)
	TotalSavings int64 `json:"total_savings"`
}

type recommendationService struct {
	store   *store.UserStore
	metrics *metrics.Metrics
}

func NewRecommendationService(userStore *store.UserStore, m *metrics.Metrics) RecommendationService {
	return &recommendationService{
		store:   userStore,
		metrics: m,
	}
}

// GetRecommendations 환자 진단에 따른 추천 혜택 목록
func (s *recommendationService) GetRecommendations() (*RecommendationResponse, error) {
	patient := s.store.Patient()
	if patient == nil {
		return nil, ErrNoPatient
	}

	applied := s.store.AppliedBenefits()
	today := s.store.Now()

	items := make([]BenefitListItem, 0, len(catalog.RecommendedBenefitIDs))
	for _, id := range catalog.RecommendedBenefitIDs {
		b, ok := catalog.FindBenefit(id)
		if !ok {
			continue
		}
		items = append(items, BenefitListItem{
			Benefit: b,
			Applied: IsApplied(applied, b.ID),
			DDay:    DDay(b.Deadline, today),
		})
	}

	return &RecommendationResponse{
		Patient:  patient.Summary(),
		Benefits: items,
	}, nil
}

// ApplyRecommendations applies the selected recommendations in order, skipping ones
// already in the history
func (s *recommendationService) ApplyRecommendations(req ApplyRecommendationsRequest) (*ApplyRecommendationsResult, error) {
	ids := req.BenefitIDs
	if req.All {
		ids = catalog.RecommendedBenefitIDs
	}
	if len(ids) == 0 {
		return nil, newValidationError(apperrors.ValidationRequired, "benefit_ids", msgNoSelection)
	}

	result := &ApplyRecommendationsResult{
		Applied: []model.AppliedBenefit{},
		Skipped: []string{},
	}
	for _, id := range ids {
		if !isRecommended(id) {
			return nil, ErrBenefitNotFound
		}
	}

	for _, id := range ids {
		b, _ := catalog.FindBenefit(id)
		entry, err := s.store.ApplyBenefit(b.Application())
		if errors.Is(err, store.ErrBenefitAlreadyApplied) {
			result.Skipped = append(result.Skipped, id)
			continue
		}
		if err != nil {
			return nil, err
		}

		s.metrics.BenefitsApplied.WithLabelValues(b.Category).Inc()
		result.Applied = append(result.Applied, entry)
		result.TotalSavings += ParseSavingsOrZero(b.Savings) * SavingsUnit
	}
	result.AppliedCount = len(result.Applied)

	logger.Info("Recommended benefits applied", map[string]interface{}{
		"applied": result.AppliedCount,
		"skipped": len(result.Skipped),
		"all":     req.All,
	})
	return result, nil
}

func isRecommended(id string) bool {
	for _, rid := range catalog.RecommendedBenefitIDs {
		if rid == id {
			return true
		}
	}
	return false
}
