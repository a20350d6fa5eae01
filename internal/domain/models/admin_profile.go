package models

import (
	"time"
)

// AdminProfile 表示管理员档案，与角色为ADMIN的账户一一对应
type AdminProfile struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	AccountID  uint    `gorm:"not null;index" json:"account_id"`
	Code       string  `gorm:"type:varchar(20);not null;index" json:"code"` // 格式: ADMIN + 2-6位数字
	Age        int     `json:"age"`
	Department string  `gorm:"type:varchar(50)" json:"department"`
	Phone      string  `gorm:"type:varchar(20)" json:"phone"`
	Salary     string  `gorm:"type:varchar(20)" json:"salary"`
	Address    Address `gorm:"embedded;embeddedPrefix:address_" json:"address"`

	// Permission 是独立于软删除的第二层开关：REVOKED的管理员即使账户
	// 仍然有效，授权检查也会失败
	Permission string `gorm:"type:varchar(10);not null;default:'GRANTED'" json:"permission"`

	Active    bool      `gorm:"not null;default:true" json:"active"`
	Deleted   bool      `gorm:"not null;default:false;index" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// 关联关系
	Account *Account `gorm:"foreignKey:AccountID" json:"account,omitempty"`
}
