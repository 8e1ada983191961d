package api

import (
	"encoding/json"
	"strconv"

	"chatbridge/database"
	"chatbridge/models"

	"github.com/gin-gonic/gin"
)

// SessionHandler 会话查询处理器
type SessionHandler struct{}

// NewSessionHandler 创建会话查询处理器
func NewSessionHandler() *SessionHandler {
	return &SessionHandler{}
}

// List 获取会话列表（分页）
// @Summary 获取会话列表
// @Description 分页返回当前用户名下密钥产生的会话，可按密钥过滤
// @Tags 会话
// @Produce json
// @Security BearerAuth
// @Param api_key_id query int false "按密钥ID过滤"
// @Param page query int false "页码，默认1"
// @Param page_size query int false "每页条数，默认20，最大100"
// @Success 200 {object} Response{data=PageResponse} "获取成功"
// @Router /api/v1/sessions [get]
func (h *SessionHandler) List(c *gin.Context) {
	page := 1
	pageSize := 20
	if p := c.Query("page"); p != "" {
		if v, e := strconv.Atoi(p); e == nil && v > 0 {
			page = v
		}
	}
	if ps := c.Query("page_size"); ps != "" {
		if v, e := strconv.Atoi(ps); e == nil && v > 0 {
			pageSize = v
		}
	}
	if pageSize > 100 {
		pageSize = 100
	}

	query := database.DB.Model(&models.ChatSession{}).Where("api_key_id IN ?", userKeyIDs(c))
	if keyIDStr := c.Query("api_key_id"); keyIDStr != "" {
		keyID, err := strconv.ParseUint(keyIDStr, 10, 32)
		if err != nil {
			BadRequest(c, "无效的 api_key_id")
			return
		}
		query = query.Where("api_key_id = ?", uint(keyID))
	}

	var total int64
	query.Count(&total)

	var list []models.ChatSession
	offset := (page - 1) * pageSize
	if err := query.Order("updated_at DESC").Offset(offset).Limit(pageSize).Find(&list).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	Success(c, PageResponse{
		Total:    total,
		Page:     page,
		PageSize: pageSize,
		List:     list,
	})
}

// SessionDetailResponse 会话详情响应（含解析后的消息列表）
type SessionDetailResponse struct {
	models.ChatSession
	MessageList []models.ChatMessage `json:"messages"`
}

// Get 获取会话详情
// @Summary 获取会话详情
// @Description 返回指定会话的完整消息记录
// @Tags 会话
// @Produce json
// @Security BearerAuth
// @Param session_id path string true "会话ID"
// @Success 200 {object} Response{data=SessionDetailResponse} "获取成功"
// @Failure 404 {object} Response "会话不存在"
// @Router /api/v1/sessions/{session_id} [get]
func (h *SessionHandler) Get(c *gin.Context) {
	sessionID := c.Param("session_id")

	var session models.ChatSession
	if err := database.DB.
		Where("session_id = ? AND api_key_id IN ?", sessionID, userKeyIDs(c)).
		First(&session).Error; err != nil {
		NotFound(c, "会话不存在")
		return
	}

	var messages []models.ChatMessage
	if session.Messages != "" {
		_ = json.Unmarshal([]byte(session.Messages), &messages)
	}

	Success(c, SessionDetailResponse{
		ChatSession: session,
		MessageList: messages,
	})
}

// Delete 删除会话
// @Summary 删除会话
// @Tags 会话
// @Produce json
// @Security BearerAuth
// @Param session_id path string true "会话ID"
// @Success 200 {object} Response "删除成功"
// @Failure 404 {object} Response "会话不存在"
// @Router /api/v1/sessions/{session_id} [delete]
func (h *SessionHandler) Delete(c *gin.Context) {
	sessionID := c.Param("session_id")

	var session models.ChatSession
	if err := database.DB.
		Where("session_id = ? AND api_key_id IN ?", sessionID, userKeyIDs(c)).
		First(&session).Error; err != nil {
		NotFound(c, "会话不存在")
		return
	}

	if err := database.DB.Delete(&session).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "删除失败"))
		return
	}

	SuccessWithMessage(c, "删除成功", nil)
}
