package service

import (
	"strings"

	"chatbridge/database"
	"chatbridge/models"
)

// FreePlan 无有效订阅时返回的套餐名
const FreePlan = "Free"

// AccessService 接入校验服务
type AccessService struct{}

// NewAccessService 创建接入校验服务
func NewAccessService() *AccessService {
	return &AccessService{}
}

// CheckAccess 校验API密钥及其订阅状态
// 返回：是否有效、密钥配置、套餐名
// 任何查询失败都视为无效，不向调用方抛错
func (s *AccessService) CheckAccess(apiKey string) (bool, *models.ApiKey, string) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return false, nil, FreePlan
	}

	// 按密钥值精确查找
	var key models.ApiKey
	if err := database.DB.Where("`key` = ?", apiKey).First(&key).Error; err != nil {
		return false, nil, FreePlan
	}
	if key.Status != models.ApiKeyStatusActive {
		return false, nil, FreePlan
	}

	// 查找所属用户的有效订阅，多条时取最新一条
	var sub models.Subscription
	if err := database.DB.
		Where("user_id = ? AND status = ?", key.UserID, models.SubscriptionStatusActive).
		Order("created_at DESC, id DESC").
		First(&sub).Error; err != nil {
		// 密钥有效但无订阅，同样拒绝
		return false, nil, FreePlan
	}

	return true, &key, sub.Plan
}
