package api

import (
	"strconv"
	"time"

	"chatbridge/database"
	"chatbridge/middleware"
	"chatbridge/models"

	"github.com/gin-gonic/gin"
)

// SubscriptionHandler 订阅管理处理器
type SubscriptionHandler struct{}

// NewSubscriptionHandler 创建订阅管理处理器
func NewSubscriptionHandler() *SubscriptionHandler {
	return &SubscriptionHandler{}
}

// CreateSubscriptionRequest 创建订阅请求
type CreateSubscriptionRequest struct {
	Plan       string `json:"plan" binding:"required" example:"Pro"`
	ExpireDays int    `json:"expire_days" binding:"omitempty,min=1" example:"30"`
}

// Create 创建订阅
// @Summary 创建订阅
// @Description 为当前用户创建新的订阅记录，新订阅优先生效
// @Tags 订阅
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateSubscriptionRequest true "订阅信息"
// @Success 200 {object} Response{data=models.Subscription} "创建成功"
// @Failure 400 {object} Response "请求参数错误"
// @Router /api/v1/subscriptions [post]
func (h *SubscriptionHandler) Create(c *gin.Context) {
	var req CreateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	sub := models.Subscription{
		UserID: middleware.GetCurrentUserID(c),
		Plan:   req.Plan,
		Status: models.SubscriptionStatusActive,
	}
	if req.ExpireDays > 0 {
		expiresAt := time.Now().AddDate(0, 0, req.ExpireDays)
		sub.ExpiresAt = &expiresAt
	}

	if err := database.DB.Create(&sub).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "创建订阅失败"))
		return
	}

	SuccessWithMessage(c, "创建成功", sub)
}

// List 获取订阅列表
// @Summary 获取订阅列表
// @Description 获取当前用户的全部订阅记录，最新的在前
// @Tags 订阅
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]models.Subscription} "获取成功"
// @Router /api/v1/subscriptions [get]
func (h *SubscriptionHandler) List(c *gin.Context) {
	var subs []models.Subscription
	if err := database.DB.Where("user_id = ?", middleware.GetCurrentUserID(c)).
		Order("created_at DESC, id DESC").Find(&subs).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	Success(c, subs)
}

// Cancel 取消订阅
// @Summary 取消订阅
// @Description 将指定订阅标记为已取消，之后该订阅不再参与接入校验
// @Tags 订阅
// @Produce json
// @Security BearerAuth
// @Param id path int true "订阅ID"
// @Success 200 {object} Response "取消成功"
// @Failure 404 {object} Response "订阅不存在"
// @Router /api/v1/subscriptions/{id}/cancel [post]
func (h *SubscriptionHandler) Cancel(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	var sub models.Subscription
	if err := database.DB.Where("user_id = ?", middleware.GetCurrentUserID(c)).First(&sub, uint(id)).Error; err != nil {
		NotFound(c, "订阅不存在")
		return
	}

	if err := database.DB.Model(&sub).Update("status", models.SubscriptionStatusCancelled).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "取消失败"))
		return
	}

	SuccessWithMessage(c, "取消成功", nil)
}
