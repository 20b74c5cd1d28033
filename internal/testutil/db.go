// Package testutil 测试用的内存数据库和数据构造
package testutil

import (
	"context"
	"testing"

	"Memora/dao"
	"Memora/models"
	"Memora/pkg/database"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// NewDB 每个测试一个独立的内存 sqlite，单连接保证同一个库
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := database.NewSQLite(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func NewStore(t testing.TB) *dao.Store {
	t.Helper()
	return dao.NewStore(NewDB(t))
}

func CreateUser(t testing.TB, store *dao.Store, username string) *models.User {
	t.Helper()
	u := &models.User{Username: username}
	require.NoError(t, store.Users.Create(context.Background(), u))
	return u
}

func CreateMemory(t testing.TB, store *dao.Store, owner *models.User, title string) *models.Memory {
	t.Helper()
	m := &models.Memory{UserID: owner.ID, Title: title}
	require.NoError(t, store.Memories.Create(context.Background(), m))
	return m
}

// ReloadUser 重新读取用户，用于校验计数
func ReloadUser(t testing.TB, store *dao.Store, id uint64) *models.User {
	t.Helper()
	u, err := store.Users.FindById(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, u)
	return u
}

func ReloadMemory(t testing.TB, store *dao.Store, id uint64) *models.Memory {
	t.Helper()
	m, err := store.Memories.FindById(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, m)
	return m
}
