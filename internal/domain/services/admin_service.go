package services

import (
	"errors"
	"staffdesk-http-service/internal/domain/models"
	"staffdesk-http-service/internal/domain/validators"
	"staffdesk-http-service/internal/infrastructure/config"
	"staffdesk-http-service/pkg/utils"
	"strings"

	"gorm.io/gorm"
)

// InterfaceAdminService defines the admin service interface
type InterfaceAdminService interface {
	GetAllAdmins(q models.ListQuery) ([]models.AdminProfile, int64, error)
	GetAdminByID(id uint) (*models.AdminProfile, error)
	GetAdminByAccountID(accountID uint) (*models.AdminProfile, error)
	CreateAdmin(req models.CreateAdminRequest) (*models.AdminProfile, error)
	UpdateAdmin(id uint, req models.UpdateAdminRequest) (*models.AdminProfile, error)
	DeleteAdmin(id uint) (*models.AdminProfile, error)
}

// AdminService 提供管理员档案相关的服务
type AdminService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewAdminService 创建一个新的管理员服务
func NewAdminService(db *gorm.DB, cfg *config.Config) InterfaceAdminService {
	return &AdminService{
		DB:     db,
		Config: cfg,
	}
}

// listQuery 构造管理员列表的联表查询，分页施加在档案表上
func (s *AdminService) listQuery(search string) *gorm.DB {
	query := s.DB.Model(&models.AdminProfile{}).
		Joins("JOIN accounts ON accounts.id = admin_profiles.account_id").
		Where("admin_profiles.deleted = ? AND accounts.deleted = ?", false, false)

	if search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(accounts.name) LIKE ? OR LOWER(accounts.email) LIKE ?",
			pattern, pattern)
	}
	return query
}

// GetAllAdmins 获取管理员列表，支持分页和搜索，按创建时间倒序返回
func (s *AdminService) GetAllAdmins(q models.ListQuery) ([]models.AdminProfile, int64, error) {
	var admins []models.AdminProfile
	var total int64

	query := s.listQuery(q.Search)

	// 获取匹配过滤条件的总数
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// 分页查询
	limit, offset := q.Normalize()
	err := query.Order("admin_profiles.created_at DESC").
		Limit(limit).Offset(offset).
		Preload("Account").
		Find(&admins).Error
	if err != nil {
		return nil, 0, err
	}

	return admins, total, nil
}

// GetAdminByID 根据ID获取管理员档案及其账户视图
func (s *AdminService) GetAdminByID(id uint) (*models.AdminProfile, error) {
	var admin models.AdminProfile
	err := s.DB.Preload("Account").
		Where("id = ? AND deleted = ?", id, false).
		First(&admin).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &admin, nil
}

// GetAdminByAccountID 根据账户ID获取未删除的管理员档案
func (s *AdminService) GetAdminByAccountID(accountID uint) (*models.AdminProfile, error) {
	var admin models.AdminProfile
	err := s.DB.Where("account_id = ? AND deleted = ?", accountID, false).
		First(&admin).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &admin, nil
}

// CreateAdmin 创建管理员：先创建账户，再创建关联档案。两次写入之间
// 没有事务包裹，档案写入失败会留下孤儿账户，与原系统行为一致
func (s *AdminService) CreateAdmin(req models.CreateAdminRequest) (*models.AdminProfile, error) {
	email := validators.NormalizeEmail(req.Email)

	// 邮箱在非删除账户中必须唯一
	var count int64
	if err := s.DB.Model(&models.Account{}).
		Where("email = ? AND deleted = ?", email, false).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailConflict
	}

	// 管理员编号缺省时生成，给出时检查唯一性
	code := validators.NormalizeCode(req.Code)
	if code == "" {
		generated, err := s.generateUniqueCode()
		if err != nil {
			return nil, err
		}
		code = generated
	} else {
		if err := s.DB.Model(&models.AdminProfile{}).
			Where("code = ? AND deleted = ?", code, false).
			Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrCodeConflict
		}
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	account := models.Account{
		Name:     strings.TrimSpace(req.Name),
		Email:    email,
		Password: hashedPassword,
		Role:     models.RoleAdmin,
	}
	if err := s.DB.Create(&account).Error; err != nil {
		return nil, err
	}

	permission := req.Permission
	if permission == "" {
		permission = models.PermissionGranted
	}

	profile := models.AdminProfile{
		AccountID:  account.ID,
		Code:       code,
		Age:        req.Age,
		Department: req.Department,
		Phone:      strings.TrimSpace(req.Phone),
		Address:    req.Address,
		Permission: permission,
		Active:     true,
	}
	if req.Salary != nil {
		profile.Salary = *req.Salary
	}

	if err := s.DB.Create(&profile).Error; err != nil {
		return nil, err
	}

	profile.Account = &account
	return &profile, nil
}

// UpdateAdmin 部分更新管理员档案，仅应用白名单内给出的字段。
// 姓名和邮箱属于账户，在第二次写入中同步过去
func (s *AdminService) UpdateAdmin(id uint, req models.UpdateAdminRequest) (*models.AdminProfile, error) {
	admin, err := s.GetAdminByID(id)
	if err != nil {
		return nil, err
	}

	profileUpdates := make(map[string]interface{})
	accountUpdates := make(map[string]interface{})

	if req.Name != nil {
		accountUpdates["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		email := validators.NormalizeEmail(*req.Email)
		var count int64
		if err := s.DB.Model(&models.Account{}).
			Where("email = ? AND deleted = ? AND id != ?", email, false, admin.AccountID).
			Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrEmailConflict
		}
		accountUpdates["email"] = email
	}
	if req.Code != nil {
		code := validators.NormalizeCode(*req.Code)
		var count int64
		if err := s.DB.Model(&models.AdminProfile{}).
			Where("code = ? AND deleted = ? AND id != ?", code, false, id).
			Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrCodeConflict
		}
		profileUpdates["code"] = code
	}
	if req.Age != nil {
		profileUpdates["age"] = *req.Age
	}
	if req.Department != nil {
		profileUpdates["department"] = *req.Department
	}
	if req.Phone != nil {
		profileUpdates["phone"] = strings.TrimSpace(*req.Phone)
	}
	if req.Salary != nil {
		profileUpdates["salary"] = *req.Salary
	}
	if req.Address != nil {
		profileUpdates["address_line1"] = req.Address.Line1
		profileUpdates["address_line2"] = req.Address.Line2
		profileUpdates["address_city"] = req.Address.City
		profileUpdates["address_state"] = req.Address.State
		profileUpdates["address_zip"] = req.Address.Zip
	}
	if req.Permission != nil {
		profileUpdates["permission"] = *req.Permission
	}
	if req.Active != nil {
		profileUpdates["active"] = *req.Active
	}

	if len(profileUpdates) > 0 {
		if err := s.DB.Model(&models.AdminProfile{}).Where("id = ?", id).
			Updates(profileUpdates).Error; err != nil {
			return nil, err
		}
	}
	if len(accountUpdates) > 0 {
		if err := s.DB.Model(&models.Account{}).Where("id = ?", admin.AccountID).
			Updates(accountUpdates).Error; err != nil {
			return nil, err
		}
	}

	return s.GetAdminByID(id)
}

// DeleteAdmin 软删除管理员档案并级联软删除关联账户。
// 目标账户是超级管理员时拒绝删除
func (s *AdminService) DeleteAdmin(id uint) (*models.AdminProfile, error) {
	admin, err := s.GetAdminByID(id)
	if err != nil {
		return nil, err
	}

	if admin.Account != nil && admin.Account.Role == models.RoleSuperAdmin {
		return nil, ErrSuperAdminProtected
	}

	if err := s.DB.Model(&models.AdminProfile{}).Where("id = ?", id).
		Update("deleted", true).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.Account{}).Where("id = ?", admin.AccountID).
		Update("deleted", true).Error; err != nil {
		return nil, err
	}

	admin.Deleted = true
	if admin.Account != nil {
		admin.Account.Deleted = true
	}
	return admin, nil
}

// generateUniqueCode 生成未被占用的管理员编号
func (s *AdminService) generateUniqueCode() (string, error) {
	for i := 0; i < 10; i++ {
		code := utils.GenerateAdminCode()
		var count int64
		if err := s.DB.Model(&models.AdminProfile{}).
			Where("code = ? AND deleted = ?", code, false).
			Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return code, nil
		}
	}
	return "", errors.New("无法生成唯一的管理员编号")
}
