package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staffdesk-http-service/internal/domain/models"
)

func TestAuthenticate_Success(t *testing.T) {
	db, cfg := setupTestDB(t)
	svc := NewAccountService(db, cfg)

	seedAccount(t, db, "Jane Doe", "jane.doe@staffdesk.com", models.RoleAdmin)

	account, err := svc.Authenticate("jane.doe@staffdesk.com", "Passw0rd!")
	require.NoError(t, err)
	assert.Equal(t, "jane.doe@staffdesk.com", account.Email)
	assert.Equal(t, models.RoleAdmin, account.Role)
}

func TestAuthenticate_NormalizesEmail(t *testing.T) {
	db, cfg := setupTestDB(t)
	svc := NewAccountService(db, cfg)

	seedAccount(t, db, "Jane Doe", "jane.doe@staffdesk.com", models.RoleAdmin)

	account, err := svc.Authenticate("  Jane.Doe@STAFFDESK.COM  ", "Passw0rd!")
	require.NoError(t, err)
	assert.Equal(t, "jane.doe@staffdesk.com", account.Email)
}

func TestAuthenticate_FailuresAreIndistinguishable(t *testing.T) {
	db, cfg := setupTestDB(t)
	svc := NewAccountService(db, cfg)

	account := seedAccount(t, db, "Jane Doe", "jane.doe@staffdesk.com", models.RoleAdmin)

	// 账户不存在
	_, err := svc.Authenticate("ghost@staffdesk.com", "Passw0rd!")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// 密码错误
	_, err = svc.Authenticate("jane.doe@staffdesk.com", "WrongPass1!")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// 已软删除的账户，错误与上面两种完全相同
	require.NoError(t, db.Model(&models.Account{}).Where("id = ?", account.ID).
		Update("deleted", true).Error)
	_, err = svc.Authenticate("jane.doe@staffdesk.com", "Passw0rd!")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestGetSelfProfile_ByRole(t *testing.T) {
	db, cfg := setupTestDB(t)
	svc := NewAccountService(db, cfg)

	// 员工返回员工档案
	employee := seedEmployee(t, db, "John Smith", "john.smith@staffdesk.in", "EMP123", time.Now())
	result, err := svc.GetSelfProfile(employee.Account)
	require.NoError(t, err)
	profile, ok := result.(*models.EmployeeProfile)
	require.True(t, ok)
	assert.Equal(t, "EMP123", profile.Code)
	require.NotNil(t, profile.Account)
	assert.Equal(t, "john.smith@staffdesk.in", profile.Account.Email)

	// 管理员返回管理员档案
	adminAccount := seedAccount(t, db, "Jane Doe", "jane.doe@staffdesk.com", models.RoleAdmin)
	seedAdminProfile(t, db, adminAccount.ID, "ADMIN12")
	result, err = svc.GetSelfProfile(adminAccount)
	require.NoError(t, err)
	adminProfile, ok := result.(*models.AdminProfile)
	require.True(t, ok)
	assert.Equal(t, "ADMIN12", adminProfile.Code)

	// 档案缺失时退回账户本身
	orphan := seedAccount(t, db, "No Profile", "no.profile@staffdesk.com", models.RoleAdmin)
	result, err = svc.GetSelfProfile(orphan)
	require.NoError(t, err)
	_, ok = result.(*models.Account)
	assert.True(t, ok)
}

func TestUpdateSelf(t *testing.T) {
	db, cfg := setupTestDB(t)
	svc := NewAccountService(db, cfg)

	account := seedAccount(t, db, "Jane Doe", "jane.doe@staffdesk.com", models.RoleAdmin)
	oldHash := account.Password

	newName := "Janet Doe"
	newPassword := "NewPassw0rd!"
	updated, err := svc.UpdateSelf(account, models.UpdateSelfRequest{
		Name:     &newName,
		Password: &newPassword,
	})
	require.NoError(t, err)
	assert.Equal(t, "Janet Doe", updated.Name)
	assert.NotEqual(t, oldHash, updated.Password) // 密码被重新哈希

	// 新旧密码的登录结果
	_, err = svc.Authenticate("jane.doe@staffdesk.com", "NewPassw0rd!")
	assert.NoError(t, err)
	_, err = svc.Authenticate("jane.doe@staffdesk.com", "Passw0rd!")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestDeleteSelf_CascadesAndBlocksLogin(t *testing.T) {
	db, cfg := setupTestDB(t)
	svc := NewAccountService(db, cfg)

	employee := seedEmployee(t, db, "John Smith", "john.smith@staffdesk.in", "EMP123", time.Now())

	deleted, err := svc.DeleteSelf(employee.Account)
	require.NoError(t, err)
	assert.True(t, deleted.Deleted)

	// 级联到员工档案
	var profile models.EmployeeProfile
	require.NoError(t, db.Where("id = ?", employee.ID).First(&profile).Error)
	assert.True(t, profile.Deleted)

	// 删除后不再能登录
	_, err = svc.Authenticate("john.smith@staffdesk.in", "Passw0rd!")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestDeleteSelf_SuperAdminProtected(t *testing.T) {
	db, cfg := setupTestDB(t)
	svc := NewAccountService(db, cfg)

	super := seedAccount(t, db, "Super Admin", "superadmin@staffdesk.com", models.RoleSuperAdmin)

	_, err := svc.DeleteSelf(super)
	assert.ErrorIs(t, err, ErrSuperAdminProtected)

	// 账户保持可用
	_, err = svc.Authenticate("superadmin@staffdesk.com", "Passw0rd!")
	assert.NoError(t, err)
}
