package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/charapedia/charapedia-backend/internal/common"
	"github.com/charapedia/charapedia-backend/internal/domain"
	"github.com/charapedia/charapedia-backend/internal/repository"
	"github.com/charapedia/charapedia-backend/pkg/cache"
	"github.com/charapedia/charapedia-backend/pkg/logger"
	"github.com/microcosm-cc/bluemonday"
)

// CharacterService business logic for character submission, revision and
// deletion
type CharacterService interface {
	Submit(ctx context.Context, workID uint64, req *domain.CreateCharacterRequest, author domain.Principal) (*domain.CharacterResponse, error)
	Edit(ctx context.Context, id uint64, req *domain.CreateCharacterRequest, editor domain.Principal) (*domain.CharacterResponse, error)
	Delete(ctx context.Context, id uint64, requester domain.Principal) error
	Get(id uint64, viewer *domain.Principal) (*domain.CharacterResponse, error)
	History(id uint64, viewer domain.Principal) ([]*domain.CharacterResponse, error)
	ListPublishedByWork(ctx context.Context, workID uint64, page, limit int) ([]*domain.CharacterResponse, *common.Meta, error)
	ListPending(workID uint64, page, limit int) ([]*domain.CharacterResponse, *common.Meta, error)
}

type characterService struct {
	repo      repository.CharacterRepository
	works     repository.WorkRepository
	notifier  *Notifier
	cache     cache.Service // nil when Redis is unavailable
	sanitizer *bluemonday.Policy
}

// NewCharacterService creates a new CharacterService
func NewCharacterService(repo repository.CharacterRepository, works repository.WorkRepository, notifier *Notifier, cacheService cache.Service) CharacterService {
	return &characterService{
		repo:      repo,
		works:     works,
		notifier:  notifier,
		cache:     cacheService,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

// Submit creates a new pending submission for a work. The pending quota
// check and the insert happen atomically in the repository.
func (s *characterService) Submit(ctx context.Context, workID uint64, req *domain.CreateCharacterRequest, author domain.Principal) (*domain.CharacterResponse, error) {
	work, err := s.works.FindByID(workID)
	if err != nil {
		return nil, err
	}

	ch, err := s.buildRecord(workID, author.ID, req)
	if err != nil {
		return nil, err
	}

	if err := s.repo.CreatePending(ch, domain.PendingQuota); err != nil {
		if err == common.ErrQuotaExceeded {
			submissionsTotal.WithLabelValues("quota_exceeded").Inc()
		}
		return nil, err
	}
	submissionsTotal.WithLabelValues("created").Inc()

	s.notifier.NotifyAdmins(ctx, NotificationEvent{
		Type:      domain.NotificationReviewRequested,
		SenderID:  author.ID,
		SubjectID: ch.ID,
		Content:   fmt.Sprintf("New character %q submitted for %s", ch.Name, work.Title),
		Link:      reviewLink(ch.ID),
	})

	return ch.ToResponse(), nil
}

// Edit creates a new revision superseding the given record. Authorship is
// preserved; an author edit sends the new head back to pending review while
// an admin edit keeps the predecessor's status.
func (s *characterService) Edit(ctx context.Context, id uint64, req *domain.CreateCharacterRequest, editor domain.Principal) (*domain.CharacterResponse, error) {
	pred, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if !editor.IsAdmin() && editor.ID != pred.AuthorID {
		return nil, common.ErrPermissionDenied
	}
	resetStatus := !editor.IsAdmin()

	successor, err := s.buildRecord(pred.WorkID, pred.AuthorID, req)
	if err != nil {
		return nil, err
	}

	successor, err = s.repo.CreateRevision(pred.ID, successor, resetStatus)
	if err != nil {
		return nil, err
	}
	revisionsTotal.WithLabelValues(revisionKind(resetStatus)).Inc()

	// A published or rejected record re-entering review needs admin eyes
	// again. Revising an already-pending head keeps its place in the queue.
	if resetStatus && pred.Status != domain.StatusPending {
		s.notifier.NotifyAdmins(ctx, NotificationEvent{
			Type:      domain.NotificationReviewRequested,
			SenderID:  editor.ID,
			SubjectID: successor.ID,
			Content:   fmt.Sprintf("Character %q was revised and awaits re-review", successor.Name),
			Link:      reviewLink(successor.ID),
		})
	}

	s.invalidate(ctx, pred.WorkID)
	return successor.ToResponse(), nil
}

// Delete removes a revision. An admin deleting another member's record
// notifies that member.
func (s *characterService) Delete(ctx context.Context, id uint64, requester domain.Principal) error {
	ch, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}

	if !requester.IsAdmin() && requester.ID != ch.AuthorID {
		return common.ErrPermissionDenied
	}

	if err := s.repo.Delete(id); err != nil {
		return err
	}

	if requester.IsAdmin() && requester.ID != ch.AuthorID {
		s.notifier.Notify(ctx, NotificationEvent{
			Type:      domain.NotificationContentRemoved,
			SenderID:  requester.ID,
			SubjectID: ch.ID,
			Content:   fmt.Sprintf("Your character %q was removed by an administrator", ch.Name),
			Link:      fmt.Sprintf("/works/%d/characters", ch.WorkID),
		}, []uint64{ch.AuthorID})
	}

	s.invalidate(ctx, ch.WorkID)
	return nil
}

// Get returns a single revision. Unpublished revisions are visible only to
// their author and administrators.
func (s *characterService) Get(id uint64, viewer *domain.Principal) (*domain.CharacterResponse, error) {
	ch, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if ch.Status != domain.StatusPublished {
		if viewer == nil || (!viewer.IsAdmin() && viewer.ID != ch.AuthorID) {
			return nil, common.ErrCharacterNotFound
		}
	}
	return ch.ToResponse(), nil
}

// History returns the revision chain containing id, newest first
func (s *characterService) History(id uint64, viewer domain.Principal) ([]*domain.CharacterResponse, error) {
	ch, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if !viewer.IsAdmin() && viewer.ID != ch.AuthorID {
		return nil, common.ErrPermissionDenied
	}

	chain, err := s.repo.History(id)
	if err != nil {
		return nil, err
	}
	responses := make([]*domain.CharacterResponse, len(chain))
	for i, rev := range chain {
		responses[i] = rev.ToResponse()
	}
	return responses, nil
}

// ListPublishedByWork returns the public character listing for a work
func (s *characterService) ListPublishedByWork(ctx context.Context, workID uint64, page, limit int) ([]*domain.CharacterResponse, *common.Meta, error) {
	page, limit = normalizePagination(page, limit)

	type cachedPage struct {
		Items []*domain.CharacterResponse `json:"items"`
		Meta  *common.Meta                `json:"meta"`
	}

	key := cache.CharactersKey(workID, page, limit)
	if s.cache != nil {
		var cached cachedPage
		if err := s.cache.Get(ctx, key, &cached); err == nil {
			return cached.Items, cached.Meta, nil
		}
	}

	if ok, err := s.works.Exists(workID); err != nil {
		return nil, nil, err
	} else if !ok {
		return nil, nil, common.ErrWorkNotFound
	}

	characters, total, err := s.repo.ListPublishedByWork(workID, page, limit)
	if err != nil {
		return nil, nil, err
	}

	responses := make([]*domain.CharacterResponse, len(characters))
	for i, ch := range characters {
		responses[i] = ch.ToResponse()
	}
	meta := &common.Meta{WorkID: workID, Page: page, Limit: limit, Total: total}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, cachedPage{Items: responses, Meta: meta}, cache.TTLCharacters); err != nil {
			logger.GetLogger().Warn().Err(err).Str("key", key).Msg("cache set failed")
		}
	}
	return responses, meta, nil
}

// ListPending returns the admin review queue, oldest first
func (s *characterService) ListPending(workID uint64, page, limit int) ([]*domain.CharacterResponse, *common.Meta, error) {
	page, limit = normalizePagination(page, limit)

	characters, total, err := s.repo.ListPending(workID, page, limit)
	if err != nil {
		return nil, nil, err
	}

	responses := make([]*domain.CharacterResponse, len(characters))
	for i, ch := range characters {
		responses[i] = ch.ToResponse()
	}
	meta := &common.Meta{WorkID: workID, Page: page, Limit: limit, Total: total}
	return responses, meta, nil
}

// buildRecord sanitizes the payload and assembles a new revision
func (s *characterService) buildRecord(workID, authorID uint64, req *domain.CreateCharacterRequest) (*domain.Character, error) {
	name := strings.TrimSpace(s.sanitizer.Sanitize(req.Name))
	if name == "" {
		return nil, common.ErrInvalidInput
	}

	return &domain.Character{
		WorkID:      workID,
		AuthorID:    authorID,
		Name:        name,
		ImageURL:    strings.TrimSpace(req.ImageURL),
		Description: s.sanitizer.Sanitize(req.Description),
		Attributes:  req.Attributes,
	}, nil
}

func (s *characterService) invalidate(ctx context.Context, workID uint64) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateWorkCharacters(ctx, workID); err != nil {
		logger.GetLogger().Warn().Err(err).Uint64("work_id", workID).Msg("cache invalidation failed")
	}
}

func normalizePagination(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return page, limit
}

func revisionKind(resetStatus bool) string {
	if resetStatus {
		return "author"
	}
	return "admin"
}

func reviewLink(characterID uint64) string {
	return fmt.Sprintf("/admin/characters/%d", characterID)
}
