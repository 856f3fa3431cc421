package service

import (
	"context"
	"fmt"

	"github.com/charapedia/charapedia-backend/internal/common"
	"github.com/charapedia/charapedia-backend/internal/domain"
	"github.com/charapedia/charapedia-backend/internal/repository"
	"github.com/charapedia/charapedia-backend/pkg/cache"
	"github.com/charapedia/charapedia-backend/pkg/logger"
)

// Review decisions
const (
	DecisionApprove = "approve"
	DecisionReject  = "reject"
)

// ReviewService applies admin review decisions to pending submissions
type ReviewService interface {
	Review(ctx context.Context, id uint64, reviewer domain.Principal, decision string) (*domain.CharacterResponse, error)
}

type reviewService struct {
	repo     repository.CharacterRepository
	notifier *Notifier
	cache    cache.Service // nil when Redis is unavailable
}

// NewReviewService creates a new ReviewService
func NewReviewService(repo repository.CharacterRepository, notifier *Notifier, cacheService cache.Service) ReviewService {
	return &reviewService{repo: repo, notifier: notifier, cache: cacheService}
}

// Review moves a pending record to published or rejected. The status change
// is a compare-and-swap: of two concurrent reviews exactly one wins, the
// other sees a record no longer pending.
func (s *reviewService) Review(ctx context.Context, id uint64, reviewer domain.Principal, decision string) (*domain.CharacterResponse, error) {
	if !reviewer.IsAdmin() {
		return nil, common.ErrPermissionDenied
	}

	var to domain.CharacterStatus
	switch decision {
	case DecisionApprove:
		to = domain.StatusPublished
	case DecisionReject:
		to = domain.StatusRejected
	default:
		return nil, common.ErrInvalidInput
	}

	ch, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	ok, err := s.repo.UpdateStatus(id, domain.StatusPending, to)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, common.ErrInvalidState
	}
	reviewDecisionsTotal.WithLabelValues(decision).Inc()
	ch.Status = to

	// One decision, one notice: no dedup key on decision notifications.
	s.notifier.NotifyDirect(ctx, NotificationEvent{
		Type:      domain.NotificationReviewDecided,
		SenderID:  reviewer.ID,
		SubjectID: ch.ID,
		Content:   decisionNotice(ch.Name, to),
		Link:      fmt.Sprintf("/characters/%d", ch.ID),
	}, ch.AuthorID)

	if s.cache != nil {
		if err := s.cache.InvalidateWorkCharacters(ctx, ch.WorkID); err != nil {
			logger.GetLogger().Warn().Err(err).Uint64("work_id", ch.WorkID).Msg("cache invalidation failed")
		}
	}

	return ch.ToResponse(), nil
}

func decisionNotice(name string, to domain.CharacterStatus) string {
	if to == domain.StatusPublished {
		return fmt.Sprintf("Your character %q was approved and published", name)
	}
	return fmt.Sprintf("Your character %q was rejected", name)
}
