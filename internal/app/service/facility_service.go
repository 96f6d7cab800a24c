package service

import (
	"strings"

	"github.com/ikkim/bohoja-backend/internal/app/catalog"
	"github.com/ikkim/bohoja-backend/internal/app/model"
)

// FacilityService 주변 기관 안내 서비스 인터페이스
type FacilityService interface {
	ListFacilities(category, region string) []model.Facility
	GetFacility(id string) (*model.Facility, error)
	FacilityTypes() []model.FacilityType
}

type facilityService struct{}

func NewFacilityService() FacilityService {
	return &facilityService{}
}

// ListFacilities filters by category (empty or 전체 for all) and by a region
// substring of the address
func (s *facilityService) ListFacilities(category, region string) []model.Facility {
	region = strings.TrimSpace(region)

	out := []model.Facility{}
	for _, f := range catalog.Facilities() {
		if category != "" && category != model.AllCategories && f.Category != category {
			continue
		}
		if region != "" && region != model.AllCategories && !strings.Contains(f.Address, region) {
			continue
		}
		out = append(out, f)
	}
	return out
}

func (s *facilityService) GetFacility(id string) (*model.Facility, error) {
	f, ok := catalog.FindFacility(id)
	if !ok {
		return nil, ErrFacilityNotFound
	}
	return &f, nil
}

func (s *facilityService) FacilityTypes() []model.FacilityType {
	return append([]model.FacilityType(nil), catalog.FacilityTypes...)
}
