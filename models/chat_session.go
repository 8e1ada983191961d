package models

import (
	"time"
)

const (
	// RoleUser 用户消息
	RoleUser = "user"
	// RoleAssistant AI回复
	RoleAssistant = "assistant"
)

// ChatMessage 会话中的单条消息
type ChatMessage struct {
	Role    string `json:"role"` // user | assistant
	Content string `json:"content"`
}

// ChatSession 会话记录，Messages 以JSON数组整体覆盖写入
type ChatSession struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	SessionID string    `json:"session_id" gorm:"size:64;not null;uniqueIndex"`
	APIKeyID  uint      `json:"api_key_id" gorm:"index;not null"`
	Messages  string    `json:"-" gorm:"type:longtext"` // ChatMessage JSON数组
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName 设置表名
func (ChatSession) TableName() string {
	return "chat_sessions"
}
