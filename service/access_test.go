package service

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func apiKeyRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "key", "user_id", "status", "context", "faqs", "created_at", "updated_at", "deleted_at"})
}

func subscriptionRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "user_id", "plan", "status", "expires_at", "created_at", "updated_at", "deleted_at"})
}

func TestCheckAccess_EmptyKey(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	s := NewAccessService()

	// 空密钥和纯空白密钥不触发任何查询
	valid, key, plan := s.CheckAccess("")
	assert.False(t, valid)
	assert.Nil(t, key)
	assert.Equal(t, "Free", plan)

	valid, key, plan = s.CheckAccess("   ")
	assert.False(t, valid)
	assert.Nil(t, key)
	assert.Equal(t, "Free", plan)
}

func TestCheckAccess_KeyNotFound(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `api_keys`").
		WithArgs("wk_missing").
		WillReturnRows(apiKeyRows())

	s := NewAccessService()
	valid, key, plan := s.CheckAccess("wk_missing")
	assert.False(t, valid)
	assert.Nil(t, key)
	assert.Equal(t, "Free", plan)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckAccess_KeyDisabled(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	// 停用密钥直接拒绝，不再查询订阅
	mock.ExpectQuery("SELECT .* FROM `api_keys`").
		WithArgs("wk_disabled").
		WillReturnRows(apiKeyRows().
			AddRow(1, "wk_disabled", 5, "disabled", "", "", time.Now(), time.Now(), nil))

	s := NewAccessService()
	valid, key, plan := s.CheckAccess("wk_disabled")
	assert.False(t, valid)
	assert.Nil(t, key)
	assert.Equal(t, "Free", plan)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckAccess_NoActiveSubscription(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	// 密钥有效但所属用户无有效订阅，同样拒绝
	mock.ExpectQuery("SELECT .* FROM `api_keys`").
		WithArgs("wk_abc").
		WillReturnRows(apiKeyRows().
			AddRow(1, "wk_abc", 5, "active", "宠物店客服", "", time.Now(), time.Now(), nil))

	mock.ExpectQuery("SELECT .* FROM `subscriptions`").
		WithArgs(uint(5), "active").
		WillReturnRows(subscriptionRows())

	s := NewAccessService()
	valid, key, plan := s.CheckAccess("wk_abc")
	assert.False(t, valid)
	assert.Nil(t, key)
	assert.Equal(t, "Free", plan)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckAccess_Valid(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `api_keys`").
		WithArgs("wk_abc").
		WillReturnRows(apiKeyRows().
			AddRow(1, "wk_abc", 5, "active", "宠物店客服", `["营业时间 9:00-18:00"]`, time.Now(), time.Now(), nil))

	mock.ExpectQuery("SELECT .* FROM `subscriptions`").
		WithArgs(uint(5), "active").
		WillReturnRows(subscriptionRows().
			AddRow(3, 5, "Pro", "active", nil, time.Now(), time.Now(), nil))

	s := NewAccessService()
	valid, key, plan := s.CheckAccess("wk_abc")
	assert.True(t, valid)
	require.NotNil(t, key)
	assert.Equal(t, uint(1), key.ID)
	assert.Equal(t, "宠物店客服", key.Context)
	assert.Equal(t, []string{"营业时间 9:00-18:00"}, key.FAQList())
	assert.Equal(t, "Pro", plan)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckAccess_TrimsKey(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	// 首尾空白在查询前被去除
	mock.ExpectQuery("SELECT .* FROM `api_keys`").
		WithArgs("wk_abc").
		WillReturnRows(apiKeyRows())

	s := NewAccessService()
	valid, _, _ := s.CheckAccess("  wk_abc  ")
	assert.False(t, valid)
	require.NoError(t, mock.ExpectationsWereMet())
}
