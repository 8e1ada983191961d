package api

import (
	"net/http"

	"chatbridge/models"
	"chatbridge/service"

	"github.com/gin-gonic/gin"
)

// BridgeHandler 聊天挂件桥接处理器
type BridgeHandler struct {
	access     *service.AccessService
	history    *service.HistoryService
	usageLog   *service.UsageLogService
	completion *service.CompletionService
}

// NewBridgeHandler 创建桥接处理器
func NewBridgeHandler(access *service.AccessService, history *service.HistoryService,
	usageLog *service.UsageLogService, completion *service.CompletionService) *BridgeHandler {
	return &BridgeHandler{
		access:     access,
		history:    history,
		usageLog:   usageLog,
		completion: completion,
	}
}

// BridgeRequest 挂件聊天请求
type BridgeRequest struct {
	Message   string  `json:"message" binding:"required,min=1"`
	SessionID *string `json:"session_id"` // 可为 null，表示尚无会话
}

// BridgeResponse 挂件聊天响应
type BridgeResponse struct {
	Response  string `json:"response"`
	SessionID string `json:"session_id"`
}

// Chat 处理挂件聊天请求
// 流程：校验密钥 → 解析会话 → 读历史 → 生成回复 → 写日志 → 存历史 → 返回
// @Summary 挂件聊天桥接
// @Description 网站聊天挂件的对话入口。按 api_key 校验接入方及订阅状态，携带最近10条会话历史调用AI生成回复。日志与历史为尽力写入，失败不影响响应。
// @Tags 挂件桥接
// @Accept json
// @Produce json
// @Param api_key query string true "接入方API密钥"
// @Param request body BridgeRequest true "聊天请求"
// @Success 200 {object} BridgeResponse "回复内容与会话ID"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 403 {string} string "密钥无效或无有效订阅"
// @Router /client-widget-bridge [post]
func (h *BridgeHandler) Chat(c *gin.Context) {
	var req BridgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	// 1. 校验密钥与订阅，失败直接403结束
	valid, key, _ := h.access.CheckAccess(c.Query("api_key"))
	if !valid {
		c.Status(http.StatusForbidden)
		return
	}

	// 2. 解析会话ID，空值、null 或字面量 "null" 时生成新会话
	sessionID := ""
	if req.SessionID != nil {
		sessionID = *req.SessionID
	}
	if sessionID == "" || sessionID == "null" {
		sessionID = h.history.GenerateSessionID()
	}

	// 3. 读取会话历史（可能为空）
	history := h.history.GetHistory(sessionID)

	// 4. 生成回复，失败时返回兜底文案，状态仍为200
	reply := h.completion.GetResponse(history, req.Message, key.Context, key.FAQList())

	// 5. 写使用日志（异步，失败不影响响应）
	h.usageLog.InsertLog(key.ID, "widget_chat", map[string]interface{}{
		"session_id": sessionID,
	})

	// 6. 追加本轮问答并截断到最近10条后覆盖写入
	updated := append(history,
		models.ChatMessage{Role: models.RoleUser, Content: req.Message},
		models.ChatMessage{Role: models.RoleAssistant, Content: reply},
	)
	updated = service.TrimMessages(updated, service.MaxHistoryMessages)
	h.history.UpsertHistory(key.ID, sessionID, updated)

	// 7. 返回回复与会话ID
	c.JSON(http.StatusOK, BridgeResponse{
		Response:  reply,
		SessionID: sessionID,
	})
}
