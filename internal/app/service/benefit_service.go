package service

import (
	"errors"

	"github.com/ikkim/bohoja-backend/internal/app/catalog"
	"github.com/ikkim/bohoja-backend/internal/app/model"
	"github.com/ikkim/bohoja-backend/internal/app/store"
	"github.com/ikkim/bohoja-backend/internal/metrics"
	"github.com/ikkim/bohoja-backend/pkg/logger"
)

// BenefitService 혜택 목록/상세/신청 서비스 인터페이스
type BenefitService interface {
	ListBenefits(category string) []BenefitListItem
	Categories() []string
	GetBenefitDetail(id string) (*BenefitDetail, error)
	ApplyBenefit(id string) (*model.AppliedBenefit, error)
}

// BenefitListItem 혜택 목록 항목
type BenefitListItem struct {
	model.Benefit
	Applied bool       `json:"applied"`
	DDay    *DDayBadge `json:"dday,omitempty"`
}

// BenefitDetail 혜택 상세 (예상 비용 포함)
type BenefitDetail struct {
	model.Benefit
	Applied    bool           `json:"applied"`
	DDay       *DDayBadge     `json:"dday,omitempty"`
	Projection CostProjection `json:"cost_projection"`
}

type benefitService struct {
	store   *store.UserStore
	metrics *metrics.Metrics
}

// NewBenefitService 혜택 서비스 생성자
func NewBenefitService(userStore *store.UserStore, m *metrics.Metrics) BenefitService {
	return &benefitService{
		store:   userStore,
		metrics: m,
	}
}

// ListBenefits 카테고리별 혜택 목록. 빈 카테고리는 전체로 취급
func (s *benefitService) ListBenefits(category string) []BenefitListItem {
	if category == "" {
		category = model.AllCategories
	}

	applied := s.store.AppliedBenefits()
	today := s.store.Now()

	benefits := FilterByCategory(catalog.Benefits(), category)
	items := make([]BenefitListItem, 0, len(benefits))
	for _, b := range benefits {
		items = append(items, BenefitListItem{
			Benefit: b,
			Applied: IsApplied(applied, b.ID),
			DDay:    DDay(b.Deadline, today),
		})
	}
	return items
}

func (s *benefitService) Categories() []string {
	return append([]string(nil), catalog.Categories...)
}

// GetBenefitDetail 혜택 상세 조회
func (s *benefitService) GetBenefitDetail(id string) (*BenefitDetail, error) {
	b, ok := catalog.FindBenefit(id)
	if !ok {
		return nil, ErrBenefitNotFound
	}

	return &BenefitDetail{
		Benefit:    b,
		Applied:    IsApplied(s.store.AppliedBenefits(), b.ID),
		DDay:       DDay(b.Deadline, s.store.Now()),
		Projection: ProjectCost(ParseSavingsOrZero(b.Savings)),
	}, nil
}

// ApplyBenefit 혜택 신청
func (s *benefitService) ApplyBenefit(id string) (*model.AppliedBenefit, error) {
	b, ok := catalog.FindBenefit(id)
	if !ok {
		return nil, ErrBenefitNotFound
	}

	entry, err := s.store.ApplyBenefit(b.Application())
	if err != nil {
		if errors.Is(err, store.ErrBenefitAlreadyApplied) {
			logger.Warn("Benefit already applied", map[string]interface{}{
				"benefit_id": id,
			})
		}
		return nil, err
	}

	s.metrics.BenefitsApplied.WithLabelValues(b.Category).Inc()
	logger.Info("Benefit applied", map[string]interface{}{
		"benefit_id": b.ID,
		"name":       b.Name,
		"savings":    b.Savings,
	})
	return &entry, nil
}
