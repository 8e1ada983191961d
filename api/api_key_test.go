package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupKeyRouter 组装带模拟登录态的密钥管理路由
func setupKeyRouter(userID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("userID", userID)
		c.Next()
	})

	h := NewApiKeyHandler()
	router.POST("/api-keys", h.Create)
	router.GET("/api-keys", h.List)
	router.PUT("/api-keys/:id", h.Update)
	return router
}

func TestApiKeyHandler_Create(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `api_keys`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	router := setupKeyRouter(5)
	body := `{"context":"宠物店客服","faqs":["营业时间 9:00-18:00"]}`
	req := httptest.NewRequest("POST", "/api-keys", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})

	// 密钥值自动生成且带前缀
	assert.True(t, strings.HasPrefix(data["key"].(string), "wk_"))
	assert.Equal(t, "active", data["status"])
	assert.Equal(t, "宠物店客服", data["context"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestApiKeyHandler_List(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `api_keys`").
		WithArgs(uint(5)).
		WillReturnRows(apiKeyRows().
			AddRow(1, "wk_a", 5, "active", "", "", time.Now(), time.Now(), nil).
			AddRow(2, "wk_b", 5, "disabled", "", "", time.Now(), time.Now(), nil))

	router := setupKeyRouter(5)
	req := httptest.NewRequest("GET", "/api-keys", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	list := resp["data"].([]interface{})
	assert.Len(t, list, 2)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestApiKeyHandler_Update_InvalidStatus(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `api_keys`").
		WithArgs(uint(5), 1).
		WillReturnRows(apiKeyRows().
			AddRow(1, "wk_a", 5, "active", "", "", time.Now(), time.Now(), nil))

	router := setupKeyRouter(5)
	body := `{"status":"whatever"}`
	req := httptest.NewRequest("PUT", "/api-keys/1", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestApiKeyHandler_Update_NotFound(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `api_keys`").
		WithArgs(uint(5), 99).
		WillReturnRows(apiKeyRows())

	router := setupKeyRouter(5)
	body := `{"context":"new"}`
	req := httptest.NewRequest("PUT", "/api-keys/99", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 404, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}
