package repository

import (
	"errors"

	"github.com/charapedia/charapedia-backend/internal/common"
	"github.com/charapedia/charapedia-backend/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CharacterRepository character revision data access.
//
// All lineage-mutating operations run inside a single transaction so a
// reader never observes a chain with zero or two latest revisions, and the
// pending quota cannot be bypassed by concurrent submissions.
type CharacterRepository interface {
	FindByID(id uint64) (*domain.Character, error)
	// CreatePending inserts a new pending submission after checking the
	// author's pending quota for the work under a row lock on the work.
	CreatePending(ch *domain.Character, maxPending int64) error
	// CreateRevision inserts a successor for predecessorID and flips the
	// predecessor's latest flag in the same transaction. When resetStatus is
	// set the successor re-enters pending review; otherwise it inherits the
	// predecessor's status.
	CreateRevision(predecessorID uint64, successor *domain.Character, resetStatus bool) (*domain.Character, error)
	// UpdateStatus performs a compare-and-swap on the record's status.
	// Returns false when the record was not in the expected state.
	UpdateStatus(id uint64, from, to domain.CharacterStatus) (bool, error)
	// Delete removes a revision and repairs the lineage around it.
	Delete(id uint64) error
	CountPending(authorID, workID uint64) (int64, error)
	// ListPending returns pending revisions, oldest first. workID zero means
	// all works.
	ListPending(workID uint64, page, limit int) ([]*domain.Character, int64, error)
	// ListPublishedByWork returns published latest heads for a work.
	ListPublishedByWork(workID uint64, page, limit int) ([]*domain.Character, int64, error)
	// History returns the full lineage containing id, newest first.
	History(id uint64) ([]*domain.Character, error)
}

type characterRepository struct {
	db *gorm.DB
}

// NewCharacterRepository creates a new CharacterRepository
func NewCharacterRepository(db *gorm.DB) CharacterRepository {
	return &characterRepository{db: db}
}

func (r *characterRepository) FindByID(id uint64) (*domain.Character, error) {
	var ch domain.Character
	err := r.db.First(&ch, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrCharacterNotFound
		}
		return nil, err
	}
	return &ch, nil
}

func (r *characterRepository) CreatePending(ch *domain.Character, maxPending int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		// The work row serves as the lock anchor for the (author, work)
		// quota: concurrent submissions for the same work serialize here.
		var work domain.Work
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&work, ch.WorkID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return common.ErrWorkNotFound
			}
			return err
		}

		var pending int64
		if err := tx.Model(&domain.Character{}).
			Where("author_id = ? AND work_id = ? AND status = ?",
				ch.AuthorID, ch.WorkID, domain.StatusPending).
			Count(&pending).Error; err != nil {
			return err
		}
		if pending >= maxPending {
			return common.ErrQuotaExceeded
		}

		ch.Status = domain.StatusPending
		ch.OriginalID = nil
		ch.IsLatest = true
		return tx.Create(ch).Error
	})
}

func (r *characterRepository) CreateRevision(predecessorID uint64, successor *domain.Character, resetStatus bool) (*domain.Character, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var pred domain.Character
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&pred, predecessorID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return common.ErrCharacterNotFound
			}
			return err
		}

		// Only the lineage head can be edited; a concurrent edit that got
		// there first leaves this one with a stale predecessor.
		if !pred.IsLatest {
			return common.ErrInvalidState
		}

		res := tx.Model(&domain.Character{}).
			Where("id = ? AND is_latest = ?", pred.ID, true).
			Update("is_latest", false)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected != 1 {
			return common.ErrInvalidState
		}

		predID := pred.ID
		successor.WorkID = pred.WorkID
		// Authorship is preserved across revisions; an admin edit does not
		// transfer ownership.
		successor.AuthorID = pred.AuthorID
		successor.OriginalID = &predID
		successor.IsLatest = true
		if resetStatus {
			successor.Status = domain.StatusPending
		} else {
			successor.Status = pred.Status
		}
		return tx.Create(successor).Error
	})
	if err != nil {
		return nil, err
	}
	return successor, nil
}

func (r *characterRepository) UpdateStatus(id uint64, from, to domain.CharacterStatus) (bool, error) {
	res := r.db.Model(&domain.Character{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *characterRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var ch domain.Character
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&ch, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return common.ErrCharacterNotFound
			}
			return err
		}

		var successor domain.Character
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("original_id = ?", ch.ID).First(&successor).Error
		switch {
		case err == nil:
			// Splice an interior revision out of the chain. OriginalID may
			// be nil, which makes the successor the new lineage root.
			if err := tx.Model(&successor).
				Update("original_id", ch.OriginalID).Error; err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			// Deleting the head promotes its predecessor, if any.
			if ch.IsLatest && ch.OriginalID != nil {
				if err := tx.Model(&domain.Character{}).
					Where("id = ?", *ch.OriginalID).
					Update("is_latest", true).Error; err != nil {
					return err
				}
			}
		default:
			return err
		}

		return tx.Delete(&domain.Character{}, ch.ID).Error
	})
}

func (r *characterRepository) CountPending(authorID, workID uint64) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Character{}).
		Where("author_id = ? AND work_id = ? AND status = ?",
			authorID, workID, domain.StatusPending).
		Count(&count).Error
	return count, err
}

func (r *characterRepository) ListPending(workID uint64, page, limit int) ([]*domain.Character, int64, error) {
	query := r.db.Model(&domain.Character{}).Where("status = ?", domain.StatusPending)
	if workID != 0 {
		query = query.Where("work_id = ?", workID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var characters []*domain.Character
	offset := (page - 1) * limit
	err := query.Order("id ASC").
		Offset(offset).Limit(limit).
		Find(&characters).Error
	return characters, total, err
}

func (r *characterRepository) ListPublishedByWork(workID uint64, page, limit int) ([]*domain.Character, int64, error) {
	query := r.db.Model(&domain.Character{}).
		Where("work_id = ? AND status = ? AND is_latest = ?",
			workID, domain.StatusPublished, true)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var characters []*domain.Character
	offset := (page - 1) * limit
	err := query.Order("name ASC").
		Offset(offset).Limit(limit).
		Find(&characters).Error
	return characters, total, err
}

func (r *characterRepository) History(id uint64) ([]*domain.Character, error) {
	ch, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}

	// Walk forward to the head, then back to the root. Chains are short;
	// one query per hop is fine.
	head := ch
	for {
		var next domain.Character
		err := r.db.Where("original_id = ?", head.ID).First(&next).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			break
		}
		if err != nil {
			return nil, err
		}
		head = &next
	}

	history := []*domain.Character{head}
	cur := head
	for cur.OriginalID != nil {
		var prev domain.Character
		if err := r.db.First(&prev, *cur.OriginalID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				break
			}
			return nil, err
		}
		history = append(history, &prev)
		cur = &prev
	}
	return history, nil
}
