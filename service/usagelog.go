package service

import (
	"encoding/json"

	"chatbridge/database"
	"chatbridge/models"
)

// UsageLogService 使用日志服务
type UsageLogService struct{}

// NewUsageLogService 创建使用日志服务
func NewUsageLogService() *UsageLogService {
	return &UsageLogService{}
}

// InsertLog 异步写入使用日志，失败静默丢弃，不阻塞响应
func (s *UsageLogService) InsertLog(apiKeyID uint, eventType string, payload map[string]interface{}) {
	b, err := json.Marshal(payload)
	if err != nil {
		return
	}
	go func() {
		_ = database.DB.Create(&models.UsageLog{
			APIKeyID:  apiKeyID,
			EventType: eventType,
			Payload:   string(b),
		}).Error
	}()
}

// InsertLogSync 同步写入使用日志，供测试和后台任务使用
func (s *UsageLogService) InsertLogSync(apiKeyID uint, eventType string, payload map[string]interface{}) {
	b, err := json.Marshal(payload)
	if err != nil {
		return
	}
	_ = database.DB.Create(&models.UsageLog{
		APIKeyID:  apiKeyID,
		EventType: eventType,
		Payload:   string(b),
	}).Error
}
