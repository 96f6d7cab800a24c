package model

import "time"

type NotificationType string

const (
	NotificationTypeRecommendation   NotificationType = "recommendation"
	NotificationTypeDeadlineReminder NotificationType = "deadline_reminder"
)

// Notification 알림
type Notification struct {
	ID        string           `json:"id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Content   string           `json:"content"`
	Link      string           `json:"link"`
	BenefitID string           `json:"benefit_id,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
}
