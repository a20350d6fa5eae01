package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"staffdesk-http-service/internal/domain/models"
	"staffdesk-http-service/internal/infrastructure/config"
	"staffdesk-http-service/pkg/utils"
)

// setupTestDB 创建内存数据库并迁移全部模型
func setupTestDB(t *testing.T) (*gorm.DB, *config.Config) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// 内存库在多个连接下会各自独立，限制为单连接
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Account{},
		&models.AdminProfile{},
		&models.EmployeeProfile{},
		&models.ActivityLog{},
	))

	cfg := &config.Config{
		JWTSecretKey:      "test-secret-key",
		SessionCookieName: "token",
	}
	return db, cfg
}

// seedAccount 创建一个指定角色的账户，密码统一为 Passw0rd!
func seedAccount(t *testing.T, db *gorm.DB, name, email string, role models.Role) *models.Account {
	hash, err := utils.HashPassword("Passw0rd!")
	require.NoError(t, err)

	account := &models.Account{
		Name:     name,
		Email:    email,
		Password: hash,
		Role:     role,
	}
	require.NoError(t, db.Create(account).Error)
	return account
}

// seedAdminProfile 为账户创建管理员档案
func seedAdminProfile(t *testing.T, db *gorm.DB, accountID uint, code string) *models.AdminProfile {
	profile := &models.AdminProfile{
		AccountID:  accountID,
		Code:       code,
		Age:        35,
		Department: "Operations",
		Phone:      "+1 555 0100",
		Permission: models.PermissionGranted,
		Active:     true,
	}
	require.NoError(t, db.Create(profile).Error)
	return profile
}

// seedEmployee 创建一个员工账户及档案，创建时间可指定以便排序断言
func seedEmployee(t *testing.T, db *gorm.DB, name, email, code string, createdAt time.Time) *models.EmployeeProfile {
	account := seedAccount(t, db, name, email, models.RoleEmployee)

	profile := &models.EmployeeProfile{
		AccountID:  account.ID,
		Code:       code,
		Age:        28,
		Department: "Engineering",
		Phone:      "+1 555 0101",
		Active:     true,
		CreatedAt:  createdAt,
	}
	require.NoError(t, db.Create(profile).Error)
	profile.Account = account
	return profile
}
