package domain

import (
	"fmt"
	"time"
)

// Notification types
const (
	NotificationReviewRequested = "review-requested"
	NotificationReviewDecided   = "review-decided"
	NotificationContentRemoved  = "content-removed"
)

// Notification represents a message delivered to a member.
// DedupKey is set for fan-out notifications; the unique index on it makes
// redelivery of the same logical event to the same recipient a no-op.
// Decision notices carry no dedup key (one decision, one notice).
type Notification struct {
	ID          uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	RecipientID uint64    `gorm:"column:recipient_id;index" json:"recipient_id"`
	SenderID    uint64    `gorm:"column:sender_id" json:"sender_id"`
	Type        string    `gorm:"column:type;type:varchar(30)" json:"type"`
	Content     string    `gorm:"column:content;type:varchar(500)" json:"content"`
	Link        string    `gorm:"column:link;type:varchar(255)" json:"link,omitempty"`
	DedupKey    *string   `gorm:"column:dedup_key;type:varchar(120);uniqueIndex" json:"-"`
	IsRead      bool      `gorm:"column:is_read;default:false" json:"is_read"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Notification) TableName() string { return "notifications" }

// NotificationDedupKey derives the suppression key for one logical event
// delivered to one recipient.
func NotificationDedupKey(eventType string, senderID, subjectID, recipientID uint64) string {
	return fmt.Sprintf("%s:%d:%d:%d", eventType, senderID, subjectID, recipientID)
}

// NotificationItem represents a single notification in a list response
type NotificationItem struct {
	ID        uint64 `json:"id"`
	Type      string `json:"type"`
	Content   string `json:"content"`
	Link      string `json:"link,omitempty"`
	SenderID  uint64 `json:"sender_id,omitempty"`
	IsRead    bool   `json:"is_read"`
	CreatedAt string `json:"created_at"`
}

// NotificationListResponse represents a paginated notification list
type NotificationListResponse struct {
	Items       []NotificationItem `json:"items"`
	Total       int64              `json:"total"`
	UnreadCount int64              `json:"unread_count"`
	Page        int                `json:"page"`
	Limit       int                `json:"limit"`
	TotalPages  int                `json:"total_pages"`
}

// NotificationSummaryResponse represents the unread count response
type NotificationSummaryResponse struct {
	TotalUnread int `json:"total_unread"`
}
