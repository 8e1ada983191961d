package api

import (
	"strconv"

	"chatbridge/database"
	"chatbridge/middleware"
	"chatbridge/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ApiKeyHandler API密钥管理处理器
type ApiKeyHandler struct{}

// NewApiKeyHandler 创建API密钥管理处理器
func NewApiKeyHandler() *ApiKeyHandler {
	return &ApiKeyHandler{}
}

// CreateApiKeyRequest 创建密钥请求
type CreateApiKeyRequest struct {
	Context string   `json:"context"` // 注入系统提示词的租户上下文
	FAQs    []string `json:"faqs"`    // FAQ知识库条目
}

// ApiKeyResponse 密钥详情响应（含FAQ列表）
type ApiKeyResponse struct {
	models.ApiKey
	FAQList []string `json:"faqs"`
}

func toApiKeyResponse(key models.ApiKey) ApiKeyResponse {
	return ApiKeyResponse{ApiKey: key, FAQList: key.FAQList()}
}

// Create 创建API密钥
// @Summary 创建API密钥
// @Description 为当前用户创建新的挂件接入密钥，密钥值自动生成
// @Tags API密钥
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateApiKeyRequest true "密钥配置"
// @Success 200 {object} Response{data=ApiKeyResponse} "创建成功"
// @Failure 400 {object} Response "请求参数错误"
// @Router /api/v1/api-keys [post]
func (h *ApiKeyHandler) Create(c *gin.Context) {
	var req CreateApiKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	key := models.ApiKey{
		Key:     "wk_" + uuid.NewString(),
		UserID:  middleware.GetCurrentUserID(c),
		Status:  models.ApiKeyStatusActive,
		Context: req.Context,
	}
	key.SetFAQList(req.FAQs)

	if err := database.DB.Create(&key).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "创建密钥失败"))
		return
	}

	SuccessWithMessage(c, "创建成功", toApiKeyResponse(key))
}

// List 获取密钥列表
// @Summary 获取API密钥列表
// @Description 获取当前用户的全部接入密钥
// @Tags API密钥
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]ApiKeyResponse} "获取成功"
// @Router /api/v1/api-keys [get]
func (h *ApiKeyHandler) List(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var keys []models.ApiKey
	if err := database.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&keys).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	list := make([]ApiKeyResponse, 0, len(keys))
	for _, k := range keys {
		list = append(list, toApiKeyResponse(k))
	}
	Success(c, list)
}

// Get 获取密钥详情
// @Summary 获取API密钥详情
// @Tags API密钥
// @Produce json
// @Security BearerAuth
// @Param id path int true "密钥ID"
// @Success 200 {object} Response{data=ApiKeyResponse} "获取成功"
// @Failure 404 {object} Response "密钥不存在"
// @Router /api/v1/api-keys/{id} [get]
func (h *ApiKeyHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	var key models.ApiKey
	if err := database.DB.Where("user_id = ?", middleware.GetCurrentUserID(c)).First(&key, uint(id)).Error; err != nil {
		NotFound(c, "密钥不存在")
		return
	}

	Success(c, toApiKeyResponse(key))
}

// UpdateApiKeyRequest 更新密钥请求
type UpdateApiKeyRequest struct {
	Status  *string   `json:"status"` // active/disabled
	Context *string   `json:"context"`
	FAQs    *[]string `json:"faqs"`
}

// Update 更新密钥配置
// @Summary 更新API密钥
// @Description 更新密钥状态、上下文或FAQ知识库
// @Tags API密钥
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "密钥ID"
// @Param request body UpdateApiKeyRequest true "更新内容"
// @Success 200 {object} Response{data=ApiKeyResponse} "更新成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 404 {object} Response "密钥不存在"
// @Router /api/v1/api-keys/{id} [put]
func (h *ApiKeyHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	var req UpdateApiKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	var key models.ApiKey
	if err := database.DB.Where("user_id = ?", middleware.GetCurrentUserID(c)).First(&key, uint(id)).Error; err != nil {
		NotFound(c, "密钥不存在")
		return
	}

	if req.Status != nil {
		if *req.Status != models.ApiKeyStatusActive && *req.Status != models.ApiKeyStatusDisabled {
			BadRequest(c, "无效的状态值")
			return
		}
		key.Status = *req.Status
	}
	if req.Context != nil {
		key.Context = *req.Context
	}
	if req.FAQs != nil {
		key.SetFAQList(*req.FAQs)
	}

	if err := database.DB.Save(&key).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "更新失败"))
		return
	}

	SuccessWithMessage(c, "更新成功", toApiKeyResponse(key))
}

// Delete 删除密钥（软删除）
// @Summary 删除API密钥
// @Tags API密钥
// @Produce json
// @Security BearerAuth
// @Param id path int true "密钥ID"
// @Success 200 {object} Response "删除成功"
// @Failure 404 {object} Response "密钥不存在"
// @Router /api/v1/api-keys/{id} [delete]
func (h *ApiKeyHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	var key models.ApiKey
	if err := database.DB.Where("user_id = ?", middleware.GetCurrentUserID(c)).First(&key, uint(id)).Error; err != nil {
		NotFound(c, "密钥不存在")
		return
	}

	if err := database.DB.Delete(&key).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "删除失败"))
		return
	}

	SuccessWithMessage(c, "删除成功", nil)
}
