package repository

import (
	"errors"

	"github.com/charapedia/charapedia-backend/internal/common"
	"github.com/charapedia/charapedia-backend/internal/domain"
	"gorm.io/gorm"
)

// MemberRepository member data access. Members are written by the identity
// side of the platform; this backend only reads them.
type MemberRepository interface {
	FindByID(id uint64) (*domain.Member, error)
	// ListAdmins returns all active members with administrator level,
	// the audience for review fan-out notifications.
	ListAdmins() ([]*domain.Member, error)
}

type memberRepository struct {
	db *gorm.DB
}

// NewMemberRepository creates a new MemberRepository
func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepository{db: db}
}

func (r *memberRepository) FindByID(id uint64) (*domain.Member, error) {
	var m domain.Member
	err := r.db.First(&m, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *memberRepository) ListAdmins() ([]*domain.Member, error) {
	var admins []*domain.Member
	err := r.db.Where("level >= ? AND status = ?", domain.AdminLevel, "active").
		Order("id ASC").
		Find(&admins).Error
	return admins, err
}
