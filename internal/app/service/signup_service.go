package service

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ikkim/bohoja-backend/internal/app/model"
	"github.com/ikkim/bohoja-backend/internal/app/store"
	"github.com/ikkim/bohoja-backend/internal/metrics"
	"github.com/ikkim/bohoja-backend/pkg/logger"
)

// SignupService 회원가입 진행 상태 관리 서비스 인터페이스
type SignupService interface {
	StartSignup() SignupDraftView
	GetDraft(id string) (*SignupDraftView, error)
	SubmitCredentials(id string, form CredentialsForm) (*SignupDraftView, error)
	SubmitGuardian(id string, form GuardianForm) (*SignupDraftView, error)
	SubmitPatient(id string, form PatientForm) (*SignupDraftView, error)
	CompleteSignup(id string, form CompletionForm) error
	Back(id string) (*SignupDraftView, error)
	Options() SignupOptions
	PurgeStaleDrafts(maxAge time.Duration) int
}

// SignupOptions 선택 항목 목록
type SignupOptions struct {
	Relationships []string `json:"relationships"`
	Regions       []string `json:"regions"`
}

type signupService struct {
	store         *store.UserStore
	notifications NotificationService
	metrics       *metrics.Metrics

	mu     sync.Mutex
	drafts map[string]*SignupWizard
}

// NewSignupService 회원가입 서비스 생성자
func NewSignupService(userStore *store.UserStore, notifications NotificationService, m *metrics.Metrics) SignupService {
	return &signupService{
		store:         userStore,
		notifications: notifications,
		metrics:       m,
		drafts:        make(map[string]*SignupWizard),
	}
}

// StartSignup 새 가입 진행 상태 생성
func (s *signupService) StartSignup() SignupDraftView {
	id := uuid.NewString()
	w := NewSignupWizard(s.store.Now())

	s.mu.Lock()
	s.drafts[id] = w
	s.mu.Unlock()

	logger.Debug("Signup draft started", map[string]interface{}{
		"draft_id": id,
	})
	return w.view(id)
}

func (s *signupService) GetDraft(id string) (*SignupDraftView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.drafts[id]
	if !ok {
		return nil, ErrDraftNotFound
	}
	v := w.view(id)
	return &v, nil
}

func (s *signupService) SubmitCredentials(id string, form CredentialsForm) (*SignupDraftView, error) {
	return s.step(id, StageCredentials, func(w *SignupWizard, now time.Time) error {
		return w.SubmitCredentials(form, now)
	})
}

func (s *signupService) SubmitGuardian(id string, form GuardianForm) (*SignupDraftView, error) {
	return s.step(id, StageGuardian, func(w *SignupWizard, now time.Time) error {
		return w.SubmitGuardian(form, now)
	})
}

func (s *signupService) SubmitPatient(id string, form PatientForm) (*SignupDraftView, error) {
	return s.step(id, StagePatient, func(w *SignupWizard, now time.Time) error {
		return w.SubmitPatient(form, now)
	})
}

// CompleteSignup 4단계 완료: 저장소에 한 번에 반영하고 진행 상태를 삭제
func (s *signupService) CompleteSignup(id string, form CompletionForm) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.drafts[id]
	if !ok {
		return ErrDraftNotFound
	}

	if err := w.Complete(form, s.store, s.store.Now()); err != nil {
		s.recordStep(StageDocuments, err)
		return err
	}
	s.recordStep(StageDocuments, nil)
	delete(s.drafts, id)

	logger.Info("Signup completed", map[string]interface{}{
		"draft_id":  id,
		"documents": len(form.Documents),
	})

	s.notifications.NotifySignupComplete(w.patient.PatientName)
	return nil
}

// Back 이전 단계로 이동 (입력값 유지)
func (s *signupService) Back(id string) (*SignupDraftView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.drafts[id]
	if !ok {
		return nil, ErrDraftNotFound
	}
	if err := w.Back(s.store.Now()); err != nil {
		return nil, err
	}
	v := w.view(id)
	return &v, nil
}

func (s *signupService) Options() SignupOptions {
	return SignupOptions{
		Relationships: append([]string(nil), model.Relationships...),
		Regions:       append([]string(nil), model.Regions...),
	}
}

// PurgeStaleDrafts 오래 방치된 가입 진행 상태 정리. 삭제 건수 반환
func (s *signupService) PurgeStaleDrafts(maxAge time.Duration) int {
	cutoff := s.store.Now().Add(-maxAge)

	s.mu.Lock()
	defer s.mu.Unlock()

	purged := 0
	for id, w := range s.drafts {
		if w.updatedAt.Before(cutoff) {
			delete(s.drafts, id)
			purged++
		}
	}
	if purged > 0 {
		logger.Info("Stale signup drafts purged", map[string]interface{}{
			"count": purged,
		})
	}
	return purged
}

func (s *signupService) step(id string, stage SignupStage, fn func(*SignupWizard, time.Time) error) (*SignupDraftView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.drafts[id]
	if !ok {
		return nil, ErrDraftNotFound
	}

	if err := fn(w, s.store.Now()); err != nil {
		s.recordStep(stage, err)
		if ve, ok := AsValidationError(err); ok {
			logger.Debug("Signup validation failed", map[string]interface{}{
				"draft_id": id,
				"stage":    stage.String(),
				"field":    ve.Field,
			})
		}
		return nil, err
	}
	s.recordStep(stage, nil)

	v := w.view(id)
	return &v, nil
}

func (s *signupService) recordStep(stage SignupStage, err error) {
	result := "ok"
	if err != nil {
		result = "rejected"
	}
	s.metrics.SignupSteps.WithLabelValues(stage.String(), result).Inc()
}
