package service

import (
	"strings"

	"github.com/ikkim/bohoja-backend/internal/app/model"
	"github.com/ikkim/bohoja-backend/internal/app/store"
	"github.com/ikkim/bohoja-backend/pkg/logger"
)

var prescriptionMessages = fieldMessages{
	"hospital_name.required": "병원명을 입력해주세요.",
	"date.required":          "날짜를 입력해주세요.",
	"image_uri.required":     "처방전 이미지를 선택해주세요.",
}

// PrescriptionService 병원 방문 기록 서비스 인터페이스
type PrescriptionService interface {
	ListPrescriptions() []model.PrescriptionRecord
	AddPrescription(req model.NewPrescription) (*model.PrescriptionRecord, error)
}

type prescriptionService struct {
	store *store.UserStore
}

func NewPrescriptionService(userStore *store.UserStore) PrescriptionService {
	return &prescriptionService{store: userStore}
}

func (s *prescriptionService) ListPrescriptions() []model.PrescriptionRecord {
	records := s.store.Prescriptions()
	if records == nil {
		return []model.PrescriptionRecord{}
	}
	return records
}

// AddPrescription 병원명, 날짜, 처방전 이미지는 모두 필수
func (s *prescriptionService) AddPrescription(req model.NewPrescription) (*model.PrescriptionRecord, error) {
	req.HospitalName = strings.TrimSpace(req.HospitalName)
	req.Date = strings.TrimSpace(req.Date)
	req.ImageURI = strings.TrimSpace(req.ImageURI)

	if err := validateFormWith(req, prescriptionMessages); err != nil {
		return nil, err
	}

	record := s.store.AddPrescription(req)
	logger.Info("Prescription added", map[string]interface{}{
		"prescription_id": record.ID,
		"hospital_name":   record.HospitalName,
	})
	return &record, nil
}
