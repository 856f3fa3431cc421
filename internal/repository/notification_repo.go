package repository

import (
	"errors"

	"github.com/charapedia/charapedia-backend/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// NotificationRepository notification data access
type NotificationRepository interface {
	// Create inserts a notification. When DedupKey is set, an existing row
	// with the same key makes the insert a no-op; the bool reports whether
	// the row was actually written.
	Create(n *domain.Notification) (bool, error)
	FindByID(id uint64) (*domain.Notification, error)
	GetList(recipientID uint64, offset, limit int) ([]*domain.Notification, int64, error)
	GetUnreadCount(recipientID uint64) (int64, error)
	MarkAsRead(id uint64) error
	MarkAllAsRead(recipientID uint64) error
	Delete(id uint64) error
}

type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new NotificationRepository
func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(n *domain.Notification) (bool, error) {
	if n.DedupKey == nil {
		if err := r.db.Create(n).Error; err != nil {
			return false, err
		}
		return true, nil
	}

	res := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "dedup_key"}},
		DoNothing: true,
	}).Create(n)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *notificationRepository) FindByID(id uint64) (*domain.Notification, error) {
	var n domain.Notification
	err := r.db.First(&n, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &n, nil
}

func (r *notificationRepository) GetList(recipientID uint64, offset, limit int) ([]*domain.Notification, int64, error) {
	var total int64
	if err := r.db.Model(&domain.Notification{}).
		Where("recipient_id = ?", recipientID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var notifications []*domain.Notification
	err := r.db.Where("recipient_id = ?", recipientID).
		Order("id DESC").
		Offset(offset).Limit(limit).
		Find(&notifications).Error
	return notifications, total, err
}

func (r *notificationRepository) GetUnreadCount(recipientID uint64) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Notification{}).
		Where("recipient_id = ? AND is_read = ?", recipientID, false).
		Count(&count).Error
	return count, err
}

func (r *notificationRepository) MarkAsRead(id uint64) error {
	return r.db.Model(&domain.Notification{}).
		Where("id = ?", id).
		Update("is_read", true).Error
}

func (r *notificationRepository) MarkAllAsRead(recipientID uint64) error {
	return r.db.Model(&domain.Notification{}).
		Where("recipient_id = ? AND is_read = ?", recipientID, false).
		Update("is_read", true).Error
}

func (r *notificationRepository) Delete(id uint64) error {
	return r.db.Delete(&domain.Notification{}, id).Error
}
