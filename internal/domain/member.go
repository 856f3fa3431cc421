package domain

import "time"

// AdminLevel is the minimum member level treated as administrator
const AdminLevel = 10

// Member represents a community member
type Member struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Username  string    `gorm:"column:username;type:varchar(50);uniqueIndex" json:"username"`
	Nickname  string    `gorm:"column:nickname;type:varchar(100)" json:"nickname"`
	Level     int       `gorm:"column:level;default:1;index" json:"level"`
	Status    string    `gorm:"column:status;type:enum('active','inactive','banned');default:'active'" json:"status"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Member) TableName() string { return "members" }

// IsAdmin reports whether the member has administrator level
func (m *Member) IsAdmin() bool { return m.Level >= AdminLevel }

// Principal is the authenticated identity attached to a request.
// Token issuance belongs to the external identity provider; this backend
// only verifies and carries the resulting identity.
type Principal struct {
	ID       uint64
	Nickname string
	Level    int
}

// IsAdmin reports whether the principal has administrator level
func (p Principal) IsAdmin() bool { return p.Level >= AdminLevel }
