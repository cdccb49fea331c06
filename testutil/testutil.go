// Package testutil holds fixtures shared by package tests: an in-memory
// roster database and a wired auth service.
package testutil

import (
	"fmt"
	"testing"
	"time"

	"footballclub/logger"
	"footballclub/models"
	"footballclub/services"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const (
	AdminUser     = "admin"
	AdminPassword = "admin-secret"
	PlainUser     = "user0"
	PlainPassword = "user0-secret"
	Secret        = "test-secret-key"
)

// NewDB opens a private in-memory SQLite database with foreign keys on and
// the roster schema migrated.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.NewGormLogger(zerolog.Nop()),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, models.Migrate(db))
	return db
}

func Credentials(t *testing.T) []models.Credential {
	t.Helper()
	return []models.Credential{
		{Username: AdminUser, PasswordHash: Hash(t, AdminPassword), Role: models.RoleAdmin},
		{Username: PlainUser, PasswordHash: Hash(t, PlainPassword), Role: models.RoleUser},
	}
}

func Hash(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

// NewAuthService returns an auth service knowing AdminUser and PlainUser.
func NewAuthService(t *testing.T) (*services.AuthService, *services.TokenService) {
	t.Helper()
	tokens := services.NewTokenService(Secret)
	auth, err := services.NewAuthService(services.NewStaticCredentialStore(Credentials(t)), tokens, 30*time.Minute)
	require.NoError(t, err)
	return auth, tokens
}
