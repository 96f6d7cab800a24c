package service

import (
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/ikkim/bohoja-backend/internal/app/catalog"
	"github.com/ikkim/bohoja-backend/internal/app/model"
	"github.com/ikkim/bohoja-backend/internal/app/store"
	"github.com/ikkim/bohoja-backend/internal/metrics"
	"github.com/ikkim/bohoja-backend/internal/websocket"
	"github.com/ikkim/bohoja-backend/pkg/logger"
	"github.com/ikkim/bohoja-backend/pkg/util"
)

// maxNotifications 보관하는 최근 알림 수
const maxNotifications = 100

// NotificationService 알림 서비스 인터페이스
type NotificationService interface {
	GetNotifications() []model.Notification
	NotifySignupComplete(patientName string) model.Notification
	SendDeadlineReminders() int
}

type notificationService struct {
	store   *store.UserStore
	hub     *websocket.Hub
	metrics *metrics.Metrics

	mu            sync.Mutex
	notifications []model.Notification
	// benefit id + date, so each reminder goes out once a day
	reminded map[string]bool
}

// NewNotificationService 알림 서비스 생성자. hub가 nil이면 푸시 없이 목록에만 쌓는다
func NewNotificationService(userStore *store.UserStore, hub *websocket.Hub, m *metrics.Metrics) NotificationService {
	return &notificationService{
		store:    userStore,
		hub:      hub,
		metrics:  m,
		reminded: make(map[string]bool),
	}
}

// GetNotifications 최신순 알림 목록
func (s *notificationService) GetNotifications() []model.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Notification, len(s.notifications))
	for i, n := range s.notifications {
		out[len(s.notifications)-1-i] = n
	}
	return out
}

// NotifySignupComplete 가입 완료 후 맞춤 혜택 안내
func (s *notificationService) NotifySignupComplete(patientName string) model.Notification {
	n := model.Notification{
		ID:      uuid.NewString(),
		Type:    model.NotificationTypeRecommendation,
		Title:   "맞춤 혜택 안내",
		Content: fmt.Sprintf("%s님의 진단결과에 따른 맞춤 혜택 %d종이 산출되었습니다.", patientName, len(catalog.RecommendedBenefitIDs)),
		Link:    "/recommendations",
	}
	s.publish(n)
	return n
}

// SendDeadlineReminders 마감 임박(D-7 이내) 미신청 혜택 알림. 보낸 건수 반환
func (s *notificationService) SendDeadlineReminders() int {
	if s.store.Guardian() == nil {
		return 0
	}

	today := s.store.Now()
	applied := s.store.AppliedBenefits()
	dateKey := today.Format(util.DateLayout)
	s.pruneReminded(dateKey)

	sent := 0
	for _, b := range catalog.Benefits() {
		if IsApplied(applied, b.ID) {
			continue
		}
		badge := DDay(b.Deadline, today)
		if badge == nil || badge.Tier != DDayUrgent {
			continue
		}

		key := b.ID + "@" + dateKey
		s.mu.Lock()
		already := s.reminded[key]
		s.reminded[key] = true
		s.mu.Unlock()
		if already {
			continue
		}

		s.publish(model.Notification{
			ID:        uuid.NewString(),
			Type:      model.NotificationTypeDeadlineReminder,
			Title:     fmt.Sprintf("[%s] %s", badge.Label, b.Name),
			Content:   fmt.Sprintf("%s 신청 마감이 %s입니다. 지금 신청하세요.", b.Name, b.Deadline),
			Link:      "/benefits/" + b.ID,
			BenefitID: b.ID,
		})
		sent++
	}

	if sent > 0 {
		logger.Info("Deadline reminders sent", map[string]interface{}{
			"count": sent,
			"date":  dateKey,
		})
	}
	return sent
}

// pruneReminded drops keys from earlier days
func (s *notificationService) pruneReminded(dateKey string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key := range s.reminded {
		if !strings.HasSuffix(key, "@"+dateKey) {
			delete(s.reminded, key)
		}
	}
}

func (s *notificationService) publish(n model.Notification) {
	n.CreatedAt = s.store.Now()

	s.mu.Lock()
	s.notifications = append(s.notifications, n)
	if len(s.notifications) > maxNotifications {
		s.notifications = s.notifications[len(s.notifications)-maxNotifications:]
	}
	s.mu.Unlock()

	s.metrics.NotificationsSent.WithLabelValues(string(n.Type)).Inc()

	if s.hub == nil || !s.store.NotificationSettings().App {
		return
	}
	if err := s.hub.Broadcast(n); err != nil {
		logger.Error("Failed to push notification", err, map[string]interface{}{
			"notification_id": n.ID,
		})
	}
}
