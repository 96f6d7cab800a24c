package scheduler

import (
	"time"

	"github.com/ikkim/bohoja-backend/pkg/logger"
	"github.com/robfig/cron/v3"
)

const (
	draftPurgeSpec = "@every 1h"
	// 하루 넘게 방치된 회원가입 진행 정보는 삭제
	draftMaxAge = 24 * time.Hour
)

// DeadlineNotifier sends reminders for unapplied benefits whose deadline is near
type DeadlineNotifier interface {
	SendDeadlineReminders() int
}

// DraftPurger removes abandoned signup drafts
type DraftPurger interface {
	PurgeStaleDrafts(maxAge time.Duration) int
}

// ReminderScheduler 마감 임박 알림 + 가입 진행 정보 정리 스케줄러
type ReminderScheduler struct {
	cron         *cron.Cron
	reminderSpec string
	notifier     DeadlineNotifier
	drafts       DraftPurger
}

// NewReminderScheduler 스케줄러 생성. reminderSpec은 표준 5필드 cron 표현식
func NewReminderScheduler(reminderSpec string, notifier DeadlineNotifier, drafts DraftPurger) *ReminderScheduler {
	return &ReminderScheduler{
		cron:         cron.New(),
		reminderSpec: reminderSpec,
		notifier:     notifier,
		drafts:       drafts,
	}
}

// Start 스케줄러 시작
func (s *ReminderScheduler) Start() error {
	if _, err := s.cron.AddFunc(s.reminderSpec, s.runDeadlineReminders); err != nil {
		logger.Error("Failed to add cron job for deadline reminders", err, map[string]interface{}{
			"spec": s.reminderSpec,
		})
		return err
	}

	if _, err := s.cron.AddFunc(draftPurgeSpec, s.runDraftPurge); err != nil {
		logger.Error("Failed to add cron job for signup draft purge", err)
		return err
	}

	s.cron.Start()
	logger.Info("Reminder scheduler started", map[string]interface{}{
		"deadline_reminder_spec": s.reminderSpec,
	})

	return nil
}

// Stop 스케줄러 중지. 실행 중인 작업이 끝날 때까지 기다림
func (s *ReminderScheduler) Stop() {
	logger.Info("Stopping reminder scheduler...", nil)
	<-s.cron.Stop().Done()
	logger.Info("Reminder scheduler stopped", nil)
}

func (s *ReminderScheduler) runDeadlineReminders() {
	logger.Info("Starting scheduled deadline reminders", nil)
	sent := s.notifier.SendDeadlineReminders()
	logger.Info("Deadline reminders finished", map[string]interface{}{
		"sent": sent,
	})
}

func (s *ReminderScheduler) runDraftPurge() {
	if purged := s.drafts.PurgeStaleDrafts(draftMaxAge); purged > 0 {
		logger.Info("Purged stale signup drafts", map[string]interface{}{
			"purged": purged,
		})
	}
}
