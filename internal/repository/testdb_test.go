package repository

import (
	"context"
	"fmt"
	"testing"

	"bitacora/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens an isolated in-memory database migrated with the full
// schema. The database name carries the test name so parallel tests never
// share state.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A pool of connections to an in-memory database must stay on one handle.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Post{}, &models.Comment{}))
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	user := &models.User{
		Name:     "Test User",
		Email:    email,
		Password: "hashed-password",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestPost(t *testing.T, db *gorm.DB, userID uint) *models.Post {
	t.Helper()

	post := &models.Post{
		Title:   "Test Post",
		Content: "Test content",
		UserID:  userID,
	}
	require.NoError(t, db.Create(post).Error)
	return post
}

func createTestComment(t *testing.T, db *gorm.DB, userID, postID uint) *models.Comment {
	t.Helper()

	comment := &models.Comment{
		Content: "Test comment",
		UserID:  userID,
		PostID:  postID,
	}
	require.NoError(t, db.Create(comment).Error)
	return comment
}

var testCtx = context.Background()
