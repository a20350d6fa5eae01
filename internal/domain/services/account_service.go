package services

import (
	"errors"
	"staffdesk-http-service/internal/domain/models"
	"staffdesk-http-service/internal/domain/validators"
	"staffdesk-http-service/internal/infrastructure/config"
	"staffdesk-http-service/pkg/utils"

	"gorm.io/gorm"
)

// InterfaceAccountService defines the account service interface
type InterfaceAccountService interface {
	Authenticate(email, password string) (*models.Account, error)
	GetAccountByID(id uint) (*models.Account, error)
	GetSelfProfile(account *models.Account) (interface{}, error)
	UpdateSelf(account *models.Account, req models.UpdateSelfRequest) (*models.Account, error)
	DeleteSelf(account *models.Account) (*models.Account, error)
}

// AccountService 提供账户本人相关的服务
type AccountService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewAccountService 创建一个新的账户服务
func NewAccountService(db *gorm.DB, cfg *config.Config) InterfaceAccountService {
	return &AccountService{
		DB:     db,
		Config: cfg,
	}
}

// Authenticate 用邮箱和密码认证账户。账户不存在、已软删除、密码错误
// 一律返回相同的认证错误，不泄露失败原因
func (s *AccountService) Authenticate(email, password string) (*models.Account, error) {
	var account models.Account
	err := s.DB.Where("email = ? AND deleted = ?", validators.NormalizeEmail(email), false).
		First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !utils.CheckPasswordHash(password, account.Password) {
		return nil, ErrInvalidCredentials
	}
	return &account, nil
}

// GetAccountByID 根据ID获取未删除的账户
func (s *AccountService) GetAccountByID(id uint) (*models.Account, error) {
	var account models.Account
	err := s.DB.Where("id = ? AND deleted = ?", id, false).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &account, nil
}

// GetSelfProfile 获取账户本人的档案视图。员工返回员工档案，
// 管理员及超级管理员返回管理员档案，档案缺失时退回账户本身
func (s *AccountService) GetSelfProfile(account *models.Account) (interface{}, error) {
	switch account.Role {
	case models.RoleEmployee:
		var profile models.EmployeeProfile
		err := s.DB.Preload("Account").
			Where("account_id = ? AND deleted = ?", account.ID, false).
			First(&profile).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return account, nil
			}
			return nil, err
		}
		return &profile, nil
	case models.RoleAdmin, models.RoleSuperAdmin:
		var profile models.AdminProfile
		err := s.DB.Preload("Account").
			Where("account_id = ? AND deleted = ?", account.ID, false).
			First(&profile).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return account, nil
			}
			return nil, err
		}
		return &profile, nil
	}
	return nil, ErrNotFound
}

// UpdateSelf 更新账户本人资料，仅允许姓名和密码
func (s *AccountService) UpdateSelf(account *models.Account, req models.UpdateSelfRequest) (*models.Account, error) {
	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Password != nil {
		hashedPassword, err := utils.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		updates["password"] = hashedPassword
	}

	if len(updates) > 0 {
		if err := s.DB.Model(&models.Account{}).Where("id = ?", account.ID).
			Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	return s.GetAccountByID(account.ID)
}

// DeleteSelf 软删除账户本人并级联到关联档案。超级管理员账户不可删除
func (s *AccountService) DeleteSelf(account *models.Account) (*models.Account, error) {
	if account.Role == models.RoleSuperAdmin {
		return nil, ErrSuperAdminProtected
	}

	if err := s.DB.Model(&models.Account{}).Where("id = ?", account.ID).
		Update("deleted", true).Error; err != nil {
		return nil, err
	}

	// 级联软删除关联档案
	switch account.Role {
	case models.RoleEmployee:
		if err := s.DB.Model(&models.EmployeeProfile{}).
			Where("account_id = ?", account.ID).
			Update("deleted", true).Error; err != nil {
			return nil, err
		}
	case models.RoleAdmin:
		if err := s.DB.Model(&models.AdminProfile{}).
			Where("account_id = ?", account.ID).
			Update("deleted", true).Error; err != nil {
			return nil, err
		}
	case models.RoleSuperAdmin:
		// 前面已拒绝
	}

	account.Deleted = true
	return account, nil
}
