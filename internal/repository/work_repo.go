package repository

import (
	"errors"

	"github.com/charapedia/charapedia-backend/internal/common"
	"github.com/charapedia/charapedia-backend/internal/domain"
	"gorm.io/gorm"
)

// WorkRepository parent work data access
type WorkRepository interface {
	FindByID(id uint64) (*domain.Work, error)
	Exists(id uint64) (bool, error)
	List(page, limit int) ([]*domain.Work, int64, error)
}

type workRepository struct {
	db *gorm.DB
}

// NewWorkRepository creates a new WorkRepository
func NewWorkRepository(db *gorm.DB) WorkRepository {
	return &workRepository{db: db}
}

func (r *workRepository) FindByID(id uint64) (*domain.Work, error) {
	var w domain.Work
	err := r.db.Where("is_active = ?", true).First(&w, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrWorkNotFound
		}
		return nil, err
	}
	return &w, nil
}

func (r *workRepository) Exists(id uint64) (bool, error) {
	var count int64
	err := r.db.Model(&domain.Work{}).
		Where("id = ? AND is_active = ?", id, true).
		Count(&count).Error
	return count > 0, err
}

func (r *workRepository) List(page, limit int) ([]*domain.Work, int64, error) {
	query := r.db.Model(&domain.Work{}).Where("is_active = ?", true)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var works []*domain.Work
	offset := (page - 1) * limit
	err := query.Order("title ASC").
		Offset(offset).Limit(limit).
		Find(&works).Error
	return works, total, err
}
