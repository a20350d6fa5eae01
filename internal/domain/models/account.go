package models

import (
	"time"
)

// Role 表示账户角色，取值范围固定为三级角色
type Role string

const (
	RoleSuperAdmin Role = "SUPER_ADMIN"
	RoleAdmin      Role = "ADMIN"
	RoleEmployee   Role = "EMPLOYEE"
)

// Valid 检查角色是否为合法取值
func (r Role) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleEmployee:
		return true
	}
	return false
}

// IsAdminLevel 检查角色是否具有管理员层级的权限
func (r Role) IsAdminLevel() bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin:
		return true
	case RoleEmployee:
		return false
	}
	return false
}

// Account represents the root identity record holding credentials and role.
// Role is write-once; email uniqueness is enforced among non-deleted
// accounts by the services (soft-deleted emails stay reusable).
type Account struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(50);not null" json:"name"`
	Email     string    `gorm:"type:varchar(254);not null;index:idx_accounts_email" json:"email"`
	Password  string    `gorm:"type:varchar(100);not null" json:"-"` // Password hash not exposed in JSON
	Role      Role      `gorm:"type:varchar(20);not null" json:"role"`
	Deleted   bool      `gorm:"not null;default:false;index" json:"-"` // 软删除墓碑标记，不对外暴露
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
