package domain

import "time"

// CharacterStatus is the review state of one character revision.
type CharacterStatus uint8

const (
	StatusPending CharacterStatus = iota
	StatusPublished
	StatusRejected
)

// String returns the API representation of the status
func (s CharacterStatus) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusPublished:
		return "published"
	case StatusRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Valid reports whether s is one of the three known states
func (s CharacterStatus) Valid() bool {
	return s <= StatusRejected
}

// PendingQuota is the maximum number of simultaneous pending submissions
// one author may hold for the same work.
const PendingQuota = 3

// Character represents one revision of a character record attached to a work.
// Revisions of the same character are chained through OriginalID; exactly one
// revision per chain carries IsLatest.
type Character struct {
	ID          uint64          `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	WorkID      uint64          `gorm:"column:work_id;index:idx_work_status" json:"work_id"`
	AuthorID    uint64          `gorm:"column:author_id;index:idx_author_work_status" json:"author_id"`
	Status      CharacterStatus `gorm:"column:status;type:tinyint unsigned;default:0;index:idx_work_status;index:idx_author_work_status" json:"-"`
	OriginalID  *uint64         `gorm:"column:original_id;index" json:"original_id,omitempty"`
	IsLatest    bool            `gorm:"column:is_latest;default:true;index" json:"is_latest"`
	Name        string          `gorm:"column:name;type:varchar(100)" json:"name"`
	ImageURL    string          `gorm:"column:image_url;type:varchar(500)" json:"image_url,omitempty"`
	Description string          `gorm:"column:description;type:mediumtext" json:"description"`
	Attributes  *string         `gorm:"column:attributes;type:json" json:"attributes,omitempty"`
	CreatedAt   time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Character) TableName() string { return "characters" }

// CreateCharacterRequest is the payload for submitting or editing a character
type CreateCharacterRequest struct {
	Name        string  `json:"name" binding:"required,max=100"`
	ImageURL    string  `json:"image_url" binding:"omitempty,url,max=500"`
	Description string  `json:"description" binding:"max=20000"`
	Attributes  *string `json:"attributes"`
}

// CharacterResponse is the API shape of a character revision
type CharacterResponse struct {
	ID          uint64  `json:"id"`
	WorkID      uint64  `json:"work_id"`
	AuthorID    uint64  `json:"author_id"`
	Status      string  `json:"status"`
	OriginalID  *uint64 `json:"original_id,omitempty"`
	IsLatest    bool    `json:"is_latest"`
	Name        string  `json:"name"`
	ImageURL    string  `json:"image_url,omitempty"`
	Description string  `json:"description"`
	Attributes  *string `json:"attributes,omitempty"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

// ToResponse converts a Character to its API representation
func (c *Character) ToResponse() *CharacterResponse {
	return &CharacterResponse{
		ID:          c.ID,
		WorkID:      c.WorkID,
		AuthorID:    c.AuthorID,
		Status:      c.Status.String(),
		OriginalID:  c.OriginalID,
		IsLatest:    c.IsLatest,
		Name:        c.Name,
		ImageURL:    c.ImageURL,
		Description: c.Description,
		Attributes:  c.Attributes,
		CreatedAt:   c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   c.UpdatedAt.Format(time.RFC3339),
	}
}
