package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"staffdesk-http-service/internal/domain/models"
	"staffdesk-http-service/internal/domain/services/container"
	"staffdesk-http-service/internal/infrastructure/config"
	"staffdesk-http-service/pkg/utils"
)

// setupEmployeeRouter 搭建内存数据库和员工路由，返回路由与数据库
func setupEmployeeRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	gin.SetMode(gin.TestMode)

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

	factory := NewControllerFactory(container.NewServiceContainer(db, cfg))

	r := gin.New()
	r.GET("/api/employees", HandleEmployeeFunc(factory, "list"))
	r.PATCH("/api/employees/:id", HandleEmployeeFunc(factory, "update"))
	return r, db
}

// seedEmployeeRecord 创建一个员工账户及档案
func seedEmployeeRecord(t *testing.T, db *gorm.DB, name, email, code string) *models.EmployeeProfile {
	hash, err := utils.HashPassword("Passw0rd!")
	require.NoError(t, err)

	account := &models.Account{
		Name:     name,
		Email:    email,
		Password: hash,
		Role:     models.RoleEmployee,
	}
	require.NoError(t, db.Create(account).Error)

	profile := &models.EmployeeProfile{
		AccountID:  account.ID,
		Code:       code,
		Age:        28,
		Department: "Engineering",
		Active:     true,
	}
	require.NoError(t, db.Create(profile).Error)
	profile.Account = account
	return profile
}

func TestUpdateEmployee_IgnoresNonWhitelistedFields(t *testing.T) {
	r, db := setupEmployeeRouter(t)
	profile := seedEmployeeRecord(t, db, "John Smith", "john.smith@staffdesk.in", "EMP101")
	originalHash := profile.Account.Password

	// 请求体夹带未知字段及不可更新的deleted与password
	body := `{"age":31,"unknownField":"x","deleted":true,"password":"Hacked1!"}`
	req := httptest.NewRequest(http.MethodPatch,
		"/api/employees/"+strconv.Itoa(int(profile.ID)), strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"SUCCESS"`)

	// 只有age落库，deleted与密码哈希保持原样
	var updated models.EmployeeProfile
	require.NoError(t, db.First(&updated, profile.ID).Error)
	assert.Equal(t, 31, updated.Age)
	assert.False(t, updated.Deleted)

	var account models.Account
	require.NoError(t, db.First(&account, profile.AccountID).Error)
	assert.False(t, account.Deleted)
	assert.Equal(t, originalHash, account.Password)
}

func TestGetEmployees_PaginationEnvelope(t *testing.T) {
	r, db := setupEmployeeRouter(t)
	seedEmployeeRecord(t, db, "John Smith", "john.smith@staffdesk.in", "EMP101")
	seedEmployeeRecord(t, db, "Mary Major", "mary.major@staffdesk.in", "EMP102")

	req := httptest.NewRequest(http.MethodGet, "/api/employees?page=2&limit=1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data struct {
			Items      []json.RawMessage       `json:"items"`
			Pagination models.PaginationResult `json:"pagination"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))

	assert.Len(t, envelope.Data.Items, 1)
	assert.Equal(t, int64(2), envelope.Data.Pagination.Total)
	assert.Equal(t, 2, envelope.Data.Pagination.PageNum)
	assert.Equal(t, 1, envelope.Data.Pagination.PageSize)
}
