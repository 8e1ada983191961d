package service

import (
	"encoding/json"

	"chatbridge/database"
	"chatbridge/models"

	"github.com/google/uuid"
)

// MaxHistoryMessages 每个会话保留的最近消息条数
const MaxHistoryMessages = 10

// SessionIDPrefix 会话ID前缀，便于日志排查
const SessionIDPrefix = "sess_"

// HistoryService 会话历史服务
type HistoryService struct{}

// NewHistoryService 创建会话历史服务
func NewHistoryService() *HistoryService {
	return &HistoryService{}
}

// GetHistory 读取会话历史，不存在或解析失败时返回空列表
func (s *HistoryService) GetHistory(sessionID string) []models.ChatMessage {
	var session models.ChatSession
	if err := database.DB.Where("session_id = ?", sessionID).First(&session).Error; err != nil {
		return nil
	}
	if session.Messages == "" {
		return nil
	}
	var messages []models.ChatMessage
	if err := json.Unmarshal([]byte(session.Messages), &messages); err != nil {
		// 历史数据损坏时按空会话处理
		return nil
	}
	return messages
}

// UpsertHistory 覆盖写入会话历史，失败静默丢弃
func (s *HistoryService) UpsertHistory(apiKeyID uint, sessionID string, messages []models.ChatMessage) {
	b, err := json.Marshal(messages)
	if err != nil {
		return
	}

	var session models.ChatSession
	if err := database.DB.Where("session_id = ?", sessionID).First(&session).Error; err != nil {
		// 首条消息时隐式创建会话
		_ = database.DB.Create(&models.ChatSession{
			SessionID: sessionID,
			APIKeyID:  apiKeyID,
			Messages:  string(b),
		}).Error
		return
	}

	_ = database.DB.Model(&session).Update("messages", string(b)).Error
}

// GenerateSessionID 生成新的会话ID
func (s *HistoryService) GenerateSessionID() string {
	return SessionIDPrefix + uuid.NewString()
}

// TrimMessages 保留最近 limit 条消息，超出时丢弃最旧的
func TrimMessages(messages []models.ChatMessage, limit int) []models.ChatMessage {
	if len(messages) <= limit {
		return messages
	}
	return messages[len(messages)-limit:]
}
