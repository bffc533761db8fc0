package member

import (
	"time"

	"gorm.io/gorm"
)

type Role string

const (
	RoleMember Role = "member"
	// RoleAdmin grants the approver/authorizer capability.
	RoleAdmin Role = "admin"
)

type Member struct {
	ID uint64 `gorm:"primaryKey;column:id" json:"-"`
	// Public identifier (32-char lowercase hex)
	MemberUID string         `gorm:"column:member_uid;size:32;uniqueIndex:ux_members_uid_active" json:"member_uid"`
	Name      string         `gorm:"column:name;size:128" json:"name"`
	Email     string         `gorm:"column:email;size:255" json:"email"`
	Role      Role           `gorm:"column:role;type:enum('member','admin');default:'member'" json:"role"`
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (Member) TableName() string { return "members" }

func (m *Member) IsApprover() bool { return m.Role == RoleAdmin }
