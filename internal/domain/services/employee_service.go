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

// InterfaceEmployeeService defines the employee service interface
type InterfaceEmployeeService interface {
	GetAllEmployees(q models.ListQuery, department string) ([]models.EmployeeProfile, int64, error)
	GetEmployeeByID(id uint) (*models.EmployeeProfile, error)
	CreateEmployee(req models.CreateEmployeeRequest, createdBy *models.Account) (*models.EmployeeProfile, error)
	UpdateEmployee(id uint, req models.UpdateEmployeeRequest) (*models.EmployeeProfile, error)
	DeleteEmployee(id uint) (*models.EmployeeProfile, error)
}

// EmployeeService 提供员工档案相关的服务
type EmployeeService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewEmployeeService 创建一个新的员工服务
func NewEmployeeService(db *gorm.DB, cfg *config.Config) InterfaceEmployeeService {
	return &EmployeeService{
		DB:     db,
		Config: cfg,
	}
}

// listQuery 构造员工列表的联表查询。档案表是扫描目标，账户表只用于
// 读取姓名和邮箱；分页在联表之后、取数之前施加在档案表上
func (s *EmployeeService) listQuery(search, department string) *gorm.DB {
	query := s.DB.Model(&models.EmployeeProfile{}).
		Joins("JOIN accounts ON accounts.id = employee_profiles.account_id").
		Where("employee_profiles.deleted = ? AND accounts.deleted = ?", false, false)

	if search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(accounts.name) LIKE ? OR LOWER(accounts.email) LIKE ?",
			pattern, pattern)
	}
	if department != "" {
		query = query.Where("employee_profiles.department = ?", department)
	}
	return query
}

// GetAllEmployees 获取员工列表，支持分页、搜索和部门过滤，
// 按创建时间倒序返回
func (s *EmployeeService) GetAllEmployees(q models.ListQuery, department string) ([]models.EmployeeProfile, int64, error) {
	var employees []models.EmployeeProfile
	var total int64

	query := s.listQuery(q.Search, department)

	// 获取匹配过滤条件的总数
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// 分页查询
	limit, offset := q.Normalize()
	err := query.Order("employee_profiles.created_at DESC").
		Limit(limit).Offset(offset).
		Preload("Account").
		Find(&employees).Error
	if err != nil {
		return nil, 0, err
	}

	return employees, total, nil
}

// GetEmployeeByID 根据ID获取员工档案及其账户视图
func (s *EmployeeService) GetEmployeeByID(id uint) (*models.EmployeeProfile, error) {
	var employee models.EmployeeProfile
	err := s.DB.Preload("Account").
		Where("id = ? AND deleted = ?", id, false).
		First(&employee).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &employee, nil
}

// CreateEmployee 创建员工：先创建账户，再创建关联档案。两次写入之间
// 没有事务包裹，档案写入失败会留下孤儿账户，与原系统行为一致
func (s *EmployeeService) CreateEmployee(req models.CreateEmployeeRequest, createdBy *models.Account) (*models.EmployeeProfile, error) {
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

	// 员工编号缺省时生成，给出时检查唯一性
	code := validators.NormalizeCode(req.Code)
	if code == "" {
		generated, err := s.generateUniqueCode()
		if err != nil {
			return nil, err
		}
		code = generated
	} else {
		if err := s.DB.Model(&models.EmployeeProfile{}).
			Where("code = ? AND deleted = ?", code, false).
			Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrCodeConflict
		}
	}

	// 解析创建者的管理员档案，用于归属记录
	adminProfileID, err := s.resolveCreatorProfile(createdBy)
	if err != nil {
		return nil, err
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	account := models.Account{
		Name:     strings.TrimSpace(req.Name),
		Email:    email,
		Password: hashedPassword,
		Role:     models.RoleEmployee,
	}
	if err := s.DB.Create(&account).Error; err != nil {
		return nil, err
	}

	profile := models.EmployeeProfile{
		AccountID:        account.ID,
		AdminProfileID:   adminProfileID,
		Code:             code,
		Age:              req.Age,
		Department:       req.Department,
		Phone:            strings.TrimSpace(req.Phone),
		Address:          req.Address,
		ReportingManager: strings.TrimSpace(req.ReportingManager),
		Active:           true,
	}
	if req.Salary != nil {
		profile.Salary = *req.Salary
	}
	if req.JoiningDate != nil {
		profile.JoiningDate = *req.JoiningDate
	}

	if err := s.DB.Create(&profile).Error; err != nil {
		return nil, err
	}

	profile.Account = &account
	return &profile, nil
}

// UpdateEmployee 部分更新员工档案，仅应用白名单内给出的字段。
// 姓名和邮箱属于账户，在第二次写入中同步过去
func (s *EmployeeService) UpdateEmployee(id uint, req models.UpdateEmployeeRequest) (*models.EmployeeProfile, error) {
	employee, err := s.GetEmployeeByID(id)
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
			Where("email = ? AND deleted = ? AND id != ?", email, false, employee.AccountID).
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
		if err := s.DB.Model(&models.EmployeeProfile{}).
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
	if req.ReportingManager != nil {
		profileUpdates["reporting_manager"] = strings.TrimSpace(*req.ReportingManager)
	}
	if req.JoiningDate != nil {
		profileUpdates["joining_date"] = *req.JoiningDate
	}
	if req.Active != nil {
		profileUpdates["active"] = *req.Active
	}

	if len(profileUpdates) > 0 {
		if err := s.DB.Model(&models.EmployeeProfile{}).Where("id = ?", id).
			Updates(profileUpdates).Error; err != nil {
			return nil, err
		}
	}
	if len(accountUpdates) > 0 {
		if err := s.DB.Model(&models.Account{}).Where("id = ?", employee.AccountID).
			Updates(accountUpdates).Error; err != nil {
			return nil, err
		}
	}

	return s.GetEmployeeByID(id)
}

// DeleteEmployee 软删除员工档案并级联软删除关联账户，
// 删除后该账户不再能登录
func (s *EmployeeService) DeleteEmployee(id uint) (*models.EmployeeProfile, error) {
	employee, err := s.GetEmployeeByID(id)
	if err != nil {
		return nil, err
	}

	// 删除前按角色核对，超级管理员账户永远不可被删除
	if employee.Account != nil && employee.Account.Role == models.RoleSuperAdmin {
		return nil, ErrSuperAdminProtected
	}

	if err := s.DB.Model(&models.EmployeeProfile{}).Where("id = ?", id).
		Update("deleted", true).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.Account{}).Where("id = ?", employee.AccountID).
		Update("deleted", true).Error; err != nil {
		return nil, err
	}

	employee.Deleted = true
	if employee.Account != nil {
		employee.Account.Deleted = true
	}
	return employee, nil
}

// generateUniqueCode 生成未被占用的员工编号
func (s *EmployeeService) generateUniqueCode() (string, error) {
	for i := 0; i < 10; i++ {
		code := utils.GenerateEmployeeCode()
		var count int64
		if err := s.DB.Model(&models.EmployeeProfile{}).
			Where("code = ? AND deleted = ?", code, false).
			Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return code, nil
		}
	}
	return "", errors.New("无法生成唯一的员工编号")
}

// resolveCreatorProfile 解析创建者账户对应的管理员档案ID，
// 仅管理员级别的角色才会记录归属
func (s *EmployeeService) resolveCreatorProfile(createdBy *models.Account) (uint, error) {
	if createdBy == nil || !createdBy.Role.IsAdminLevel() {
		return 0, nil
	}
	var profile models.AdminProfile
	err := s.DB.Where("account_id = ? AND deleted = ?", createdBy.ID, false).
		First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return profile.ID, nil
}
