package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	// SubscriptionStatusActive 生效中
	SubscriptionStatusActive = "active"
	// SubscriptionStatusExpired 已过期
	SubscriptionStatusExpired = "expired"
	// SubscriptionStatusCancelled 已取消
	SubscriptionStatusCancelled = "cancelled"
)

// Subscription 用户订阅记录
type Subscription struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	UserID    uint           `json:"user_id" gorm:"index;not null"`
	Plan      string         `json:"plan" gorm:"size:50;not null"` // 套餐名称，如 Basic/Pro
	Status    string         `json:"status" gorm:"size:20;default:active;index"`
	ExpiresAt *time.Time     `json:"expires_at"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName 设置表名
func (Subscription) TableName() string {
	return "subscriptions"
}
