package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"staffdesk-http-service/internal/domain/models"
	"staffdesk-http-service/internal/domain/services"
	"staffdesk-http-service/internal/infrastructure/config"
	"staffdesk-http-service/pkg/utils"
)

func setupAuthTest(t *testing.T) (*gorm.DB, *config.Config, services.InterfaceJWTService) {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
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
	InitAuthMiddleware(cfg, db, nil)
	return db, cfg, services.NewJWTService(cfg)
}

func createAccount(t *testing.T, db *gorm.DB, email string, role models.Role) *models.Account {
	hash, err := utils.HashPassword("Passw0rd!")
	require.NoError(t, err)
	account := &models.Account{
		Name:     "Test Account",
		Email:    email,
		Password: hash,
		Role:     role,
	}
	require.NoError(t, db.Create(account).Error)
	return account
}

// protectedRouter 搭建一个用指定角色列表保护的探针路由
func protectedRouter(permittedRoles ...models.Role) *gin.Engine {
	r := gin.New()
	r.GET("/probe", Authenticate(permittedRoles...), func(c *gin.Context) {
		account := CurrentAccount(c)
		c.JSON(http.StatusOK, gin.H{"email": account.Email})
	})
	return r
}

func doRequest(r *gin.Engine, cookie string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: "token", Value: cookie})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthenticate_ValidToken(t *testing.T) {
	db, _, jwtSvc := setupAuthTest(t)
	account := createAccount(t, db, "john.smith@staffdesk.in", models.RoleEmployee)

	token, err := jwtSvc.GenerateToken(account.ID, string(account.Role))
	require.NoError(t, err)

	w := doRequest(protectedRouter(), token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "john.smith@staffdesk.in")
}

func TestAuthenticate_FailuresAreUniform(t *testing.T) {
	db, _, jwtSvc := setupAuthTest(t)
	account := createAccount(t, db, "john.smith@staffdesk.in", models.RoleEmployee)

	token, err := jwtSvc.GenerateToken(account.ID, string(account.Role))
	require.NoError(t, err)

	// Cookie缺失
	w := doRequest(protectedRouter(), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	missingBody := w.Body.String()

	// 令牌伪造
	w = doRequest(protectedRouter(), "garbage-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, missingBody, w.Body.String())

	// 账户已被软删除
	require.NoError(t, db.Model(&models.Account{}).Where("id = ?", account.ID).
		Update("deleted", true).Error)
	w = doRequest(protectedRouter(), token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, missingBody, w.Body.String())
}

func TestAuthenticate_RoleAllowList(t *testing.T) {
	db, _, jwtSvc := setupAuthTest(t)
	employee := createAccount(t, db, "john.smith@staffdesk.in", models.RoleEmployee)
	super := createAccount(t, db, "superadmin@staffdesk.com", models.RoleSuperAdmin)

	employeeToken, err := jwtSvc.GenerateToken(employee.ID, string(employee.Role))
	require.NoError(t, err)
	superToken, err := jwtSvc.GenerateToken(super.ID, string(super.Role))
	require.NoError(t, err)

	r := protectedRouter(models.RoleAdmin, models.RoleSuperAdmin)

	// 员工访问管理员路由，与认证失败返回同样的401
	w := doRequest(r, employeeToken)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// 超级管理员放行
	w = doRequest(r, superToken)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthenticate_RevokedAdminBlocked(t *testing.T) {
	db, _, jwtSvc := setupAuthTest(t)
	admin := createAccount(t, db, "jane.doe@staffdesk.com", models.RoleAdmin)
	require.NoError(t, db.Create(&models.AdminProfile{
		AccountID:  admin.ID,
		Code:       "ADMIN12",
		Permission: models.PermissionRevoked,
		Active:     true,
	}).Error)

	token, err := jwtSvc.GenerateToken(admin.ID, string(admin.Role))
	require.NoError(t, err)

	// 账户有效但权限被吊销，授权失败
	r := protectedRouter(models.RoleAdmin, models.RoleSuperAdmin)
	w := doRequest(r, token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// 重新授予后放行
	require.NoError(t, db.Model(&models.AdminProfile{}).
		Where("account_id = ?", admin.ID).
		Update("permission", models.PermissionGranted).Error)
	w = doRequest(r, token)
	assert.Equal(t, http.StatusOK, w.Code)
}
