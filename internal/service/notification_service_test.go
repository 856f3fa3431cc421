package service

import (
	"testing"

	"github.com/charapedia/charapedia-backend/internal/common"
	"github.com/charapedia/charapedia-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestNotificationGetList(t *testing.T) {
	notifRepo := new(MockNotificationRepository)
	svc := NewNotificationService(notifRepo)

	notifRepo.On("GetList", uint64(1), 0, 20).Return([]*domain.Notification{
		{ID: 5, RecipientID: 1, Type: domain.NotificationReviewDecided, Content: "approved"},
		{ID: 4, RecipientID: 1, Type: domain.NotificationContentRemoved, Content: "removed", IsRead: true},
	}, int64(2), nil)
	notifRepo.On("GetUnreadCount", uint64(1)).Return(int64(1), nil)

	resp, err := svc.GetList(1, 0, 0)

	assert.NoError(t, err)
	assert.Len(t, resp.Items, 2)
	assert.Equal(t, int64(2), resp.Total)
	assert.Equal(t, int64(1), resp.UnreadCount)
	assert.Equal(t, 1, resp.TotalPages)
	assert.Equal(t, uint64(5), resp.Items[0].ID)
}

func TestNotificationMarkAsRead_OwnershipEnforced(t *testing.T) {
	notifRepo := new(MockNotificationRepository)
	svc := NewNotificationService(notifRepo)

	notifRepo.On("FindByID", uint64(5)).Return(&domain.Notification{ID: 5, RecipientID: 2}, nil)

	err := svc.MarkAsRead(1, 5)

	assert.ErrorIs(t, err, common.ErrPermissionDenied)
	notifRepo.AssertNotCalled(t, "MarkAsRead", mock.Anything)
}

func TestNotificationMarkAsRead_NotFound(t *testing.T) {
	notifRepo := new(MockNotificationRepository)
	svc := NewNotificationService(notifRepo)

	notifRepo.On("FindByID", uint64(5)).Return(nil, nil)

	err := svc.MarkAsRead(1, 5)

	assert.ErrorIs(t, err, common.ErrNotificationNotFound)
}

func TestNotificationDelete_OwnerOnly(t *testing.T) {
	notifRepo := new(MockNotificationRepository)
	svc := NewNotificationService(notifRepo)

	notifRepo.On("FindByID", uint64(5)).Return(&domain.Notification{ID: 5, RecipientID: 1}, nil)
	notifRepo.On("Delete", uint64(5)).Return(nil)

	err := svc.Delete(1, 5)

	assert.NoError(t, err)
	notifRepo.AssertCalled(t, "Delete", uint64(5))
}
