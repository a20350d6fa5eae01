package models

import (
	"time"
)

// EmployeeProfile 表示员工档案，与角色为EMPLOYEE的账户一一对应，
// 并记录创建它的管理员档案
type EmployeeProfile struct {
	ID             uint    `gorm:"primaryKey" json:"id"`
	AccountID      uint    `gorm:"not null;index" json:"account_id"`
	AdminProfileID uint    `gorm:"not null;index" json:"admin_profile_id"` // 创建该员工的管理员档案
	Code           string  `gorm:"type:varchar(20);not null;index" json:"code"` // 格式: EMP + 3-7位数字
	Age            int     `json:"age"`
	Department     string  `gorm:"type:varchar(50)" json:"department"`
	Phone          string  `gorm:"type:varchar(20)" json:"phone"`
	Salary         string  `gorm:"type:varchar(20)" json:"salary"`
	Address        Address `gorm:"embedded;embeddedPrefix:address_" json:"address"`

	// ReportingManager 按原系统行为保存为自由文本姓名，不是外键
	ReportingManager string `gorm:"type:varchar(50)" json:"reporting_manager"`
	JoiningDate      string `gorm:"type:varchar(10)" json:"joining_date"` // DD-MM-YYYY

	Active    bool      `gorm:"not null;default:true" json:"active"`
	Deleted   bool      `gorm:"not null;default:false;index" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// 关联关系
	Account *Account `gorm:"foreignKey:AccountID" json:"account,omitempty"`
}
