package models

import (
	"time"
)

// ActivityLog represents the append-only audit record of request outcomes
type ActivityLog struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	AccountID  *uint     `gorm:"index" json:"account_id,omitempty"`
	Email      string    `gorm:"type:varchar(254);not null;default:'Guest'" json:"email"` // 请求时的邮箱快照，未登录时为Guest
	Action     string    `gorm:"type:varchar(20);not null" json:"action"`                 // HTTP动词标签
	URL        string    `gorm:"type:varchar(255)" json:"url"`
	StatusCode int       `json:"status_code"`
	SourceIP   string    `gorm:"type:varchar(45)" json:"source_ip"`
	DurationMs int64     `json:"duration_ms"`
	Activity   string    `gorm:"type:varchar(255)" json:"activity"` // 活动描述
	CreatedAt  time.Time `json:"created_at"`
	Deleted    bool      `gorm:"not null;default:false;index" json:"-"`
}
