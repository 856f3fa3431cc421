package service

import (
	"context"
	"testing"

	"github.com/charapedia/charapedia-backend/internal/common"
	"github.com/charapedia/charapedia-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newReviewServiceForTest() (*MockCharacterRepository, *MockNotificationRepository, ReviewService) {
	charRepo := new(MockCharacterRepository)
	notifRepo := new(MockNotificationRepository)
	memberRepo := new(MockMemberRepository)
	notifier := NewNotifier(notifRepo, memberRepo, nil)
	svc := NewReviewService(charRepo, notifier, nil)
	return charRepo, notifRepo, svc
}

func TestReview_PermissionDenied(t *testing.T) {
	charRepo, _, svc := newReviewServiceForTest()

	_, err := svc.Review(context.Background(), 1, testAuthor, DecisionApprove)

	assert.ErrorIs(t, err, common.ErrPermissionDenied)
	charRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestReview_InvalidDecision(t *testing.T) {
	charRepo, _, svc := newReviewServiceForTest()

	_, err := svc.Review(context.Background(), 1, testAdmin, "escalate")

	assert.ErrorIs(t, err, common.ErrInvalidInput)
	charRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestReview_Approve_PublishesAndNotifiesAuthor(t *testing.T) {
	charRepo, notifRepo, svc := newReviewServiceForTest()

	ch := &domain.Character{ID: 1, WorkID: 7, AuthorID: testAuthor.ID,
		Status: domain.StatusPending, IsLatest: true, Name: "Mira"}
	charRepo.On("FindByID", uint64(1)).Return(ch, nil)
	charRepo.On("UpdateStatus", uint64(1), domain.StatusPending, domain.StatusPublished).
		Return(true, nil)

	var captured *domain.Notification
	notifRepo.On("Create", mock.AnythingOfType("*domain.Notification")).
		Run(func(args mock.Arguments) {
			captured = args.Get(0).(*domain.Notification)
		}).
		Return(true, nil)

	resp, err := svc.Review(context.Background(), 1, testAdmin, DecisionApprove)

	assert.NoError(t, err)
	assert.Equal(t, "published", resp.Status)
	notifRepo.AssertNumberOfCalls(t, "Create", 1)
	assert.Equal(t, testAuthor.ID, captured.RecipientID)
	assert.Equal(t, domain.NotificationReviewDecided, captured.Type)
	// Decision notices are not deduplicated
	assert.Nil(t, captured.DedupKey)
}

func TestReview_Reject(t *testing.T) {
	charRepo, notifRepo, svc := newReviewServiceForTest()

	ch := &domain.Character{ID: 1, WorkID: 7, AuthorID: testAuthor.ID,
		Status: domain.StatusPending, IsLatest: true, Name: "Mira"}
	charRepo.On("FindByID", uint64(1)).Return(ch, nil)
	charRepo.On("UpdateStatus", uint64(1), domain.StatusPending, domain.StatusRejected).
		Return(true, nil)
	notifRepo.On("Create", mock.AnythingOfType("*domain.Notification")).Return(true, nil)

	resp, err := svc.Review(context.Background(), 1, testAdmin, DecisionReject)

	assert.NoError(t, err)
	assert.Equal(t, "rejected", resp.Status)
}

func TestReview_ConcurrentLoserGetsInvalidState(t *testing.T) {
	charRepo, notifRepo, svc := newReviewServiceForTest()

	ch := &domain.Character{ID: 1, WorkID: 7, AuthorID: testAuthor.ID,
		Status: domain.StatusPending, IsLatest: true, Name: "Mira"}
	charRepo.On("FindByID", uint64(1)).Return(ch, nil)
	// Another reviewer's compare-and-swap won; this one affects no rows.
	charRepo.On("UpdateStatus", uint64(1), domain.StatusPending, domain.StatusPublished).
		Return(false, nil)

	_, err := svc.Review(context.Background(), 1, testAdmin, DecisionApprove)

	assert.ErrorIs(t, err, common.ErrInvalidState)
	notifRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestReview_AlreadyDecided(t *testing.T) {
	charRepo, _, svc := newReviewServiceForTest()

	ch := &domain.Character{ID: 1, WorkID: 7, AuthorID: testAuthor.ID,
		Status: domain.StatusPublished, IsLatest: true, Name: "Mira"}
	charRepo.On("FindByID", uint64(1)).Return(ch, nil)
	charRepo.On("UpdateStatus", uint64(1), domain.StatusPending, domain.StatusRejected).
		Return(false, nil)

	_, err := svc.Review(context.Background(), 1, testAdmin, DecisionReject)

	assert.ErrorIs(t, err, common.ErrInvalidState)
}
