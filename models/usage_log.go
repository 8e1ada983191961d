package models

import (
	"time"
)

// UsageLog 使用日志，只写不读，供后台统计导出
type UsageLog struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	APIKeyID  uint      `json:"api_key_id" gorm:"index;not null"`
	EventType string    `json:"event_type" gorm:"size:50;not null;index"` // 事件类型，如 widget_chat
	Payload   string    `json:"payload" gorm:"type:text"`                 // 事件内容，JSON
	CreatedAt time.Time `json:"created_at"`
}

// TableName 设置表名
func (UsageLog) TableName() string {
	return "usage_logs"
}
