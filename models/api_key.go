package models

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

const (
	// ApiKeyStatusActive 正常：可调用桥接接口
	ApiKeyStatusActive = "active"
	// ApiKeyStatusDisabled 停用：拒绝调用
	ApiKeyStatusDisabled = "disabled"
)

// ApiKey 接入方API密钥配置
type ApiKey struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Key       string         `json:"key" gorm:"size:64;not null;uniqueIndex"` // 密钥值，格式 wk_xxx
	UserID    uint           `json:"user_id" gorm:"index;not null"`           // 所属用户ID
	Status    string         `json:"status" gorm:"size:20;default:active;index"`
	Context   string         `json:"context" gorm:"type:text"` // 注入系统提示词的租户上下文
	FAQs      string         `json:"-" gorm:"type:text"`       // FAQ知识库，JSON字符串数组
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName 设置表名
func (ApiKey) TableName() string {
	return "api_keys"
}

// FAQList 解析FAQ知识库，解析失败视为空列表
func (k *ApiKey) FAQList() []string {
	if k.FAQs == "" {
		return nil
	}
	var faqs []string
	if err := json.Unmarshal([]byte(k.FAQs), &faqs); err != nil {
		return nil
	}
	return faqs
}

// SetFAQList 序列化FAQ知识库
func (k *ApiKey) SetFAQList(faqs []string) {
	if len(faqs) == 0 {
		k.FAQs = ""
		return
	}
	b, err := json.Marshal(faqs)
	if err != nil {
		return
	}
	k.FAQs = string(b)
}
