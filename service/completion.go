package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"chatbridge/config"
	"chatbridge/models"
)

// FallbackReply 补全失败时返回的固定回复
const FallbackReply = "Sorry, I'm having trouble answering right now. Please try again in a moment."

// CompletionService AI补全服务（OpenAI兼容 chat/completions）
type CompletionService struct {
	cfg    *config.AIConfig
	client *http.Client
}

// NewCompletionService 创建AI补全服务，http.Client 进程内复用
func NewCompletionService(cfg *config.AIConfig) *CompletionService {
	return &CompletionService{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

// GetResponse 根据会话历史和新消息生成回复
// 任何失败（网络、非200、解析）都返回固定兜底回复，不向调用方抛错
func (s *CompletionService) GetResponse(history []models.ChatMessage, message, context string, faqs []string) string {
	messages := []map[string]string{
		{"role": "system", "content": s.buildSystemPrompt(context, faqs)},
	}

	// 按原始顺序重放历史
	for _, m := range history {
		role := m.Role
		if role != models.RoleAssistant {
			role = models.RoleUser
		}
		messages = append(messages, map[string]string{"role": role, "content": m.Content})
	}

	// 新消息作为最后一轮
	messages = append(messages, map[string]string{"role": "user", "content": message})

	requestBody := map[string]interface{}{
		"model":    s.cfg.Model,
		"messages": messages,
	}

	jsonData, err := json.Marshal(requestBody)
	if err != nil {
		return FallbackReply
	}

	req, err := http.NewRequest("POST", strings.TrimRight(s.cfg.BaseURL, "/")+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return FallbackReply
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return FallbackReply
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return FallbackReply
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return FallbackReply
	}

	// choices[0].message.content
	var respData map[string]interface{}
	if err := json.Unmarshal(body, &respData); err != nil {
		return FallbackReply
	}
	if choices, ok := respData["choices"].([]interface{}); ok && len(choices) > 0 {
		if choice, ok := choices[0].(map[string]interface{}); ok {
			if msg, ok := choice["message"].(map[string]interface{}); ok {
				if content, ok := msg["content"].(string); ok && content != "" {
					return content
				}
			}
		}
	}

	return FallbackReply
}

// buildSystemPrompt 构建系统提示词：字数限制 + 租户上下文 + FAQ知识库
func (s *CompletionService) buildSystemPrompt(context string, faqs []string) string {
	prompt := "You are a helpful customer support assistant embedded in a website chat widget. Keep every reply within 40 words."
	if context != "" {
		prompt += "\n\nBusiness context:\n" + context
	}
	if len(faqs) > 0 {
		if b, err := json.Marshal(faqs); err == nil {
			prompt += fmt.Sprintf("\n\nFAQ knowledge base:\n%s", string(b))
		}
	}
	return prompt
}
